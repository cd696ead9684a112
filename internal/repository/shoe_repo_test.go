package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestShoeListScansRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "brand", "model_name", "price", "img_url"}).
		AddRow(int64(1), "Nike", "Air Max 90", 129.99, "").
		AddRow(int64(2), "Adidas", "Samba", 99.50, "https://img.example/samba.jpg")
	mock.ExpectQuery("SELECT id, brand, model_name").WillReturnRows(rows)

	repo := NewShoeRepo(db)
	shoes, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list shoes: %v", err)
	}
	if len(shoes) != 2 {
		t.Fatalf("expected 2 shoes, got %d", len(shoes))
	}
	if shoes[1].ImgURL != "https://img.example/samba.jpg" {
		t.Fatalf("unexpected img url: %q", shoes[1].ImgURL)
	}
}

func TestShoeListEmptyReturnsEmptySlice(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, brand, model_name").
		WillReturnRows(sqlmock.NewRows([]string{"id", "brand", "model_name", "price", "img_url"}))

	repo := NewShoeRepo(db)
	shoes, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list shoes: %v", err)
	}
	if shoes == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestShoeGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, brand, model_name").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "brand", "model_name", "price", "img_url"}))

	repo := NewShoeRepo(db)
	_, err = repo.GetByID(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
