package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a lookup matches no rows.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when an insert violates a unique constraint.
	ErrConflict = errors.New("record already exists")
	// ErrReference is returned when a write points at a row that does not
	// exist (foreign key violation).
	ErrReference = errors.New("referenced record does not exist")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// translate maps driver-level constraint errors onto the package sentinels so
// callers never inspect pq error codes themselves.
func translate(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return ErrConflict
		case pqForeignKeyViolation:
			return ErrReference
		}
	}
	return err
}
