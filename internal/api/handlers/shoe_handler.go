package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/solestore/storefront-service/internal/cache"
	"github.com/solestore/storefront-service/internal/models"
	"github.com/solestore/storefront-service/internal/repository"
)

type CreateShoeRequest struct {
	Brand     string  `json:"brand"`
	ModelName string  `json:"model_name"`
	Price     float64 `json:"price"`
	ImgURL    string  `json:"img_url,omitempty"`
}

type ShoeHandler struct {
	shoes *repository.ShoeRepo
	cache *cache.CatalogCache
	log   *logrus.Logger
}

func NewShoeHandler(shoes *repository.ShoeRepo, catalogCache *cache.CatalogCache, log *logrus.Logger) *ShoeHandler {
	return &ShoeHandler{shoes: shoes, cache: catalogCache, log: log}
}

// List handles GET /shoes, read-through the catalog cache.
func (h *ShoeHandler) List(w http.ResponseWriter, r *http.Request) {
	if shoes, ok := h.cache.Get(r.Context()); ok {
		writeJSON(w, http.StatusOK, shoes)
		return
	}

	shoes, err := h.shoes.List(r.Context())
	if err != nil {
		h.log.WithError(err).Error("list shoes failed")
		writeMsg(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.cache.Set(r.Context(), shoes)
	writeJSON(w, http.StatusOK, shoes)
}

// Get handles GET /shoes/{shoeID}.
func (h *ShoeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "shoeID"), 10, 64)
	if err != nil || id < 1 {
		writeMsg(w, http.StatusBadRequest, "invalid shoe id")
		return
	}

	shoe, err := h.shoes.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeMsg(w, http.StatusNotFound, "Shoe not found")
			return
		}
		h.log.WithError(err).Error("get shoe failed")
		writeMsg(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, shoe)
}

// Create handles POST /admin/shoes.
func (h *ShoeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateShoeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Brand == "" || req.ModelName == "" {
		writeMsg(w, http.StatusBadRequest, "brand and model_name are required")
		return
	}
	if req.Price < 0 {
		writeMsg(w, http.StatusBadRequest, "price must be non-negative")
		return
	}

	id, err := h.shoes.Create(r.Context(), models.Shoe{
		Brand:     req.Brand,
		ModelName: req.ModelName,
		Price:     req.Price,
		ImgURL:    req.ImgURL,
	})
	if err != nil {
		h.log.WithError(err).Error("create shoe failed")
		writeMsg(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.cache.Invalidate(r.Context())

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"msg":     "Shoe added successfully!",
		"shoe_id": id,
	})
}
