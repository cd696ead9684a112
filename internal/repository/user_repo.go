package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/solestore/storefront-service/internal/models"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, email, passwordHash string) (int64, error) {
	query := `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	if err := r.db.QueryRowContext(ctx, query, email, passwordHash).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert user: %w", translate(err))
	}
	return id, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	query := `
		SELECT id, email, password_hash, is_active, created_at
		FROM users
		WHERE email = $1
	`

	var u models.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.IsActive,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (models.User, error) {
	query := `
		SELECT id, email, password_hash, is_active, created_at
		FROM users
		WHERE id = $1
	`

	var u models.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.IsActive,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}
