package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/solestore/storefront-service/internal/models"
)

type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Create(ctx context.Context, p models.Profile) (models.Profile, error) {
	query := `
		INSERT INTO profiles (first_name, last_name, phone_number, address, user_id)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		p.FirstName,
		p.LastName,
		p.PhoneNumber,
		p.Address,
		p.UserID,
	).Scan(&p.ID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("insert profile: %w", translate(err))
	}
	return p, nil
}

func (r *ProfileRepo) GetByUserID(ctx context.Context, userID int64) (models.Profile, error) {
	query := `
		SELECT id, first_name, last_name, COALESCE(phone_number, ''), COALESCE(address, ''), user_id
		FROM profiles
		WHERE user_id = $1
		ORDER BY id
		LIMIT 1
	`

	var p models.Profile
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.PhoneNumber,
		&p.Address,
		&p.UserID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrNotFound
		}
		return models.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}
