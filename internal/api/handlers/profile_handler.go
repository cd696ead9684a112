package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/solestore/storefront-service/internal/api/middleware"
	"github.com/solestore/storefront-service/internal/models"
	"github.com/solestore/storefront-service/internal/repository"
)

type CreateProfileRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Address     string `json:"address,omitempty"`
}

type ProfileHandler struct {
	profiles *repository.ProfileRepo
	log      *logrus.Logger
}

func NewProfileHandler(profiles *repository.ProfileRepo, log *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, log: log}
}

// Create handles POST /profile. The profile owner is the authenticated
// caller; a user_id in the body is ignored.
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.FirstName == "" || req.LastName == "" {
		writeMsg(w, http.StatusBadRequest, "first_name and last_name are required")
		return
	}

	profile, err := h.profiles.Create(r.Context(), models.Profile{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		UserID:      userID,
	})
	if err != nil {
		h.log.WithError(err).Error("create profile failed")
		writeMsg(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"msg":     "Profile created successfully!",
		"profile": profile,
	})
}

// Get handles GET /profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	profile, err := h.profiles.GetByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeMsg(w, http.StatusNotFound, "Profile not found")
			return
		}
		h.log.WithError(err).Error("get profile failed")
		writeMsg(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
