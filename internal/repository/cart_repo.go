package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/solestore/storefront-service/internal/models"
)

// CartRepo holds the SQL for the cart engine. Mutations that must share a
// transaction take the *sql.Tx explicitly; single-statement operations and
// reads run against the pool.
type CartRepo struct {
	db *sql.DB
}

func NewCartRepo(db *sql.DB) *CartRepo {
	return &CartRepo{db: db}
}

// UpsertCart returns the id of the user's cart, creating it when absent. The
// DO UPDATE arm is a no-op write that makes RETURNING yield the existing row,
// so concurrent first adds both land on the same cart.
func (r *CartRepo) UpsertCart(ctx context.Context, tx *sql.Tx, userID int64) (int64, error) {
	query := `
		INSERT INTO carts (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = excluded.user_id
		RETURNING id
	`

	var cartID int64
	if err := tx.QueryRowContext(ctx, query, userID).Scan(&cartID); err != nil {
		return 0, fmt.Errorf("upsert cart: %w", translate(err))
	}
	return cartID, nil
}

// UpsertItem adds quantity to the (cart, shoe) line, creating it when absent.
func (r *CartRepo) UpsertItem(ctx context.Context, tx *sql.Tx, cartID, shoeID int64, quantity int) error {
	query := `
		INSERT INTO cart_items (cart_id, shoe_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, shoe_id) DO UPDATE SET quantity = cart_items.quantity + excluded.quantity
	`

	if _, err := tx.ExecContext(ctx, query, cartID, shoeID, quantity); err != nil {
		return fmt.Errorf("upsert cart item: %w", translate(err))
	}
	return nil
}

// UpdateItemQuantity overwrites the quantity of a cart item owned by userID.
// The join through carts is the ownership check: an item id belonging to
// another user's cart matches no rows.
func (r *CartRepo) UpdateItemQuantity(ctx context.Context, userID, itemID int64, quantity int) (models.CartItem, error) {
	query := `
		UPDATE cart_items ci
		SET quantity = $3
		FROM carts c
		WHERE ci.id = $1 AND ci.cart_id = c.id AND c.user_id = $2
		RETURNING ci.id, ci.cart_id, ci.shoe_id, ci.quantity
	`

	var item models.CartItem
	err := r.db.QueryRowContext(ctx, query, itemID, userID, quantity).Scan(
		&item.ID,
		&item.CartID,
		&item.ShoeID,
		&item.Quantity,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CartItem{}, ErrNotFound
		}
		return models.CartItem{}, fmt.Errorf("update cart item: %w", err)
	}
	return item, nil
}

// DeleteItem removes a cart item owned by userID, with the same ownership
// semantics as UpdateItemQuantity.
func (r *CartRepo) DeleteItem(ctx context.Context, userID, itemID int64) error {
	query := `
		DELETE FROM cart_items ci
		USING carts c
		WHERE ci.id = $1 AND ci.cart_id = c.id AND c.user_id = $2
	`

	res, err := r.db.ExecContext(ctx, query, itemID, userID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListLines returns the user's cart lines joined to catalog display data.
// A user with no cart simply gets zero rows.
func (r *CartRepo) ListLines(ctx context.Context, userID int64) ([]models.CartLine, error) {
	query := `
		SELECT ci.id, ci.shoe_id, s.brand, s.model_name, s.price, COALESCE(s.img_url, ''), ci.quantity
		FROM cart_items ci
		JOIN carts c ON c.id = ci.cart_id
		JOIN shoes s ON s.id = ci.shoe_id
		WHERE c.user_id = $1
		ORDER BY ci.id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}
	defer rows.Close()

	lines := []models.CartLine{}
	for rows.Next() {
		var l models.CartLine
		err := rows.Scan(&l.ItemID, &l.ShoeID, &l.Brand, &l.ModelName, &l.Price, &l.ImgURL, &l.Quantity)
		if err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
