package service

import "errors"

// Sentinel errors surfaced to the API layer. Handlers map these onto HTTP
// statuses; anything else is a 500.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrShoeNotFound       = errors.New("shoe does not exist")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
)
