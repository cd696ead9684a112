package models

import "time"

// Cart is the single active cart for one user. carts.user_id carries a unique
// constraint, so concurrent first adds cannot create two of them.
type Cart struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CartItem is one (shoe, quantity) line within a cart. At most one row exists
// per (cart_id, shoe_id); adding the same shoe again merges quantities.
type CartItem struct {
	ID       int64 `json:"id"`
	CartID   int64 `json:"cart_id"`
	ShoeID   int64 `json:"shoe_id"`
	Quantity int   `json:"quantity"`
}

// CartLine is a cart item joined with its catalog display data, as returned
// by the get-cart endpoint.
type CartLine struct {
	ItemID    int64   `json:"cart_item_id"`
	ShoeID    int64   `json:"shoe_id"`
	Brand     string  `json:"brand"`
	ModelName string  `json:"model_name"`
	Price     float64 `json:"price"`
	ImgURL    string  `json:"img_url,omitempty"`
	Quantity  int     `json:"quantity"`
}
