package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/solestore/storefront-service/internal/models"
	"github.com/solestore/storefront-service/internal/repository"
)

// CartStore is the repository surface the cart engine needs (interface here
// to allow mocking in tests).
type CartStore interface {
	UpsertCart(ctx context.Context, tx *sql.Tx, userID int64) (int64, error)
	UpsertItem(ctx context.Context, tx *sql.Tx, cartID, shoeID int64, quantity int) error
	UpdateItemQuantity(ctx context.Context, userID, itemID int64, quantity int) (models.CartItem, error)
	DeleteItem(ctx context.Context, userID, itemID int64) error
	ListLines(ctx context.Context, userID int64) ([]models.CartLine, error)
}

// CartService maintains exactly one active cart per authenticated user.
// The acting user always comes from the resolved bearer claim, never from
// request data, so every operation is scoped to the caller's own cart.
type CartService struct {
	db    *sql.DB // transactions
	store CartStore
}

func NewCartService(db *sql.DB, store CartStore) *CartService {
	return &CartService{db: db, store: store}
}

// AddItem adds quantity of a shoe to the user's cart, creating the cart on
// first use and merging into an existing line for the same shoe. Both steps
// run in one transaction; a failure leaves no write applied.
func (s *CartService) AddItem(ctx context.Context, userID, shoeID int64, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	cartID, err := s.store.UpsertCart(ctx, tx, userID)
	if err != nil {
		return err
	}

	if err := s.store.UpsertItem(ctx, tx, cartID, shoeID, quantity); err != nil {
		if errors.Is(err, repository.ErrReference) {
			return ErrShoeNotFound
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}

// GetCart returns the user's cart lines with catalog display data. A user
// who never added anything gets an empty list, not an error.
func (s *CartService) GetCart(ctx context.Context, userID int64) ([]models.CartLine, error) {
	return s.store.ListLines(ctx, userID)
}

// UpdateItem overwrites the quantity of one of the caller's cart items.
// An overwrite to zero or below is rejected rather than clamped; removal
// goes through RemoveItem. Items outside the caller's cart are reported
// as not found.
func (s *CartService) UpdateItem(ctx context.Context, userID, itemID int64, quantity int) (models.CartItem, error) {
	if quantity < 1 {
		return models.CartItem{}, ErrInvalidQuantity
	}

	item, err := s.store.UpdateItemQuantity(ctx, userID, itemID, quantity)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.CartItem{}, ErrCartItemNotFound
		}
		return models.CartItem{}, err
	}
	return item, nil
}

// RemoveItem deletes one of the caller's cart items.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID int64) error {
	if err := s.store.DeleteItem(ctx, userID, itemID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCartItemNotFound
		}
		return err
	}
	return nil
}
