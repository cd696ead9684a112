package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/solestore/storefront-service/internal/api/middleware"
	"github.com/solestore/storefront-service/internal/service"
)

type AddCartItemRequest struct {
	ShoeID   int64 `json:"shoe_id"`
	Quantity int   `json:"quantity,omitempty"`
}

type UpdateCartItemRequest struct {
	CartItemID int64 `json:"cart_item_id"`
	Quantity   int   `json:"quantity,omitempty"`
}

type RemoveCartItemRequest struct {
	CartItemID int64 `json:"cart_item_id"`
}

type CartHandler struct {
	carts *service.CartService
	log   *logrus.Logger
}

func NewCartHandler(carts *service.CartService, log *logrus.Logger) *CartHandler {
	return &CartHandler{carts: carts, log: log}
}

// AddItem handles POST /cart: get-or-create the caller's cart and merge the
// shoe into it.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ShoeID == 0 {
		writeMsg(w, http.StatusBadRequest, "shoe_id is required")
		return
	}
	if req.Quantity < 0 {
		writeMsg(w, http.StatusBadRequest, "quantity must be a positive integer")
		return
	}

	if err := h.carts.AddItem(r.Context(), userID, req.ShoeID, req.Quantity); err != nil {
		if errors.Is(err, service.ErrShoeNotFound) {
			writeMsg(w, http.StatusBadRequest, "shoe does not exist")
			return
		}
		h.log.WithError(err).Error("add cart item failed")
		writeMsg(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeMsg(w, http.StatusOK, "Item added to cart")
}

// GetCart handles GET /cart. A user with no cart gets an empty list.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	lines, err := h.carts.GetCart(r.Context(), userID)
	if err != nil {
		h.log.WithError(err).Error("get cart failed")
		writeMsg(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"items": lines})
}

// UpdateItem handles PUT /cart: overwrite the quantity of one of the
// caller's cart items.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.CartItemID == 0 {
		writeMsg(w, http.StatusBadRequest, "cart_item_id is required")
		return
	}
	if req.Quantity < 1 {
		writeMsg(w, http.StatusBadRequest, "quantity must be a positive integer")
		return
	}

	item, err := h.carts.UpdateItem(r.Context(), userID, req.CartItemID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrInvalidQuantity) {
			writeMsg(w, http.StatusBadRequest, "quantity must be a positive integer")
			return
		}
		if errors.Is(err, service.ErrCartItemNotFound) {
			writeMsg(w, http.StatusNotFound, "Cart item not found")
			return
		}
		h.log.WithError(err).Error("update cart item failed")
		writeMsg(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"msg":       "Cart item updated",
		"cart_item": item,
	})
}

// RemoveItem handles DELETE /cart.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req RemoveCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.CartItemID == 0 {
		writeMsg(w, http.StatusBadRequest, "cart_item_id is required")
		return
	}

	if err := h.carts.RemoveItem(r.Context(), userID, req.CartItemID); err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			writeMsg(w, http.StatusNotFound, "Cart item not found")
			return
		}
		h.log.WithError(err).Error("remove cart item failed")
		writeMsg(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeMsg(w, http.StatusOK, "Item removed from cart")
}
