// Package migrations applies the storefront schema at boot. Statements are
// idempotent and run in order; there is no down path.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		email         VARCHAR(120) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		is_active     BOOLEAN NOT NULL DEFAULT TRUE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id           SERIAL PRIMARY KEY,
		first_name   VARCHAR(120) NOT NULL,
		last_name    VARCHAR(120) NOT NULL,
		phone_number VARCHAR(20),
		address      VARCHAR(500),
		user_id      INTEGER NOT NULL REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS shoes (
		id         SERIAL PRIMARY KEY,
		brand      VARCHAR(80) NOT NULL,
		model_name VARCHAR(120) NOT NULL,
		price      NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		img_url    VARCHAR(500)
	)`,
	// user_id is unique: at most one cart per user, enforced by the store
	// rather than by read-then-write application code.
	`CREATE TABLE IF NOT EXISTS carts (
		id         SERIAL PRIMARY KEY,
		user_id    INTEGER NOT NULL UNIQUE REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	// (cart_id, shoe_id) is unique so add-to-cart can upsert instead of
	// racing a lookup against an insert.
	`CREATE TABLE IF NOT EXISTS cart_items (
		id       SERIAL PRIMARY KEY,
		cart_id  INTEGER NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
		shoe_id  INTEGER NOT NULL REFERENCES shoes(id),
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		UNIQUE (cart_id, shoe_id)
	)`,
}

func Apply(ctx context.Context, db *sql.DB) error {
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration %d: %w", i, err)
		}
	}
	return nil
}
