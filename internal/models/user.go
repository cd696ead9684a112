package models

import "time"

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
}

// PublicUser is the serialized form returned to clients. The credential hash
// never leaves the service.
type PublicUser struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Email:    u.Email,
		IsActive: u.IsActive,
	}
}
