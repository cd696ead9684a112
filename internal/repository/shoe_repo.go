package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/solestore/storefront-service/internal/models"
)

type ShoeRepo struct {
	db *sql.DB
}

func NewShoeRepo(db *sql.DB) *ShoeRepo {
	return &ShoeRepo{db: db}
}

func (r *ShoeRepo) Create(ctx context.Context, shoe models.Shoe) (int64, error) {
	query := `
		INSERT INTO shoes (brand, model_name, price, img_url)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, shoe.Brand, shoe.ModelName, shoe.Price, shoe.ImgURL).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert shoe: %w", translate(err))
	}
	return id, nil
}

func (r *ShoeRepo) List(ctx context.Context) ([]models.Shoe, error) {
	query := `
		SELECT id, brand, model_name, price, COALESCE(img_url, '')
		FROM shoes
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list shoes: %w", err)
	}
	defer rows.Close()

	shoes := []models.Shoe{}
	for rows.Next() {
		var s models.Shoe
		if err := rows.Scan(&s.ID, &s.Brand, &s.ModelName, &s.Price, &s.ImgURL); err != nil {
			return nil, fmt.Errorf("scan shoe: %w", err)
		}
		shoes = append(shoes, s)
	}
	return shoes, rows.Err()
}

func (r *ShoeRepo) GetByID(ctx context.Context, id int64) (models.Shoe, error) {
	query := `
		SELECT id, brand, model_name, price, COALESCE(img_url, '')
		FROM shoes
		WHERE id = $1
	`

	var s models.Shoe
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Brand, &s.ModelName, &s.Price, &s.ImgURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Shoe{}, ErrNotFound
		}
		return models.Shoe{}, fmt.Errorf("get shoe: %w", err)
	}
	return s, nil
}
