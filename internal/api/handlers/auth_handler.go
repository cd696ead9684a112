package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/solestore/storefront-service/internal/api/middleware"
	"github.com/solestore/storefront-service/internal/service"
)

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthHandler struct {
	auth *service.AuthService
	log  *logrus.Logger
}

func NewAuthHandler(auth *service.AuthService, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeMsg(w, http.StatusBadRequest, "Missing email or password")
		return
	}

	if _, err := h.auth.Signup(r.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeMsg(w, http.StatusBadRequest, "Email already registered")
			return
		}
		h.log.WithError(err).Error("signup failed")
		writeMsg(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeMsg(w, http.StatusCreated, "Welcome to the Shoe Store!")
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeMsg(w, http.StatusBadRequest, "Missing email or password")
		return
	}

	token, user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeMsg(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.log.WithError(err).Error("login failed")
		writeMsg(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"msg":   "Login successful!",
		"token": token,
		"user":  user.Public(),
	})
}

// Me handles GET /me and returns the account behind the bearer token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "Missing or invalid token")
		return
	}

	user, err := h.auth.CurrentUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			writeMsg(w, http.StatusUnauthorized, "Missing or invalid token")
			return
		}
		h.log.WithError(err).Error("current user lookup failed")
		writeMsg(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, user.Public())
}
