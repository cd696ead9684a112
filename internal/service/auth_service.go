package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/solestore/storefront-service/internal/models"
	"github.com/solestore/storefront-service/internal/repository"
)

// UserStore is the slice of the user repository the auth service needs
// (interface here to allow mocking in tests).
type UserStore interface {
	Create(ctx context.Context, email, passwordHash string) (int64, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
}

// AuthService is the identity store: it owns credential verification and
// bearer token issue/verify. Tokens are HS256 with the user id as subject.
type AuthService struct {
	users    UserStore
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(users UserStore, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

func (s *AuthService) Signup(ctx context.Context, email, password string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.users.Create(ctx, email, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return 0, ErrEmailTaken
		}
		return 0, err
	}
	return id, nil
}

// Login verifies the credentials and issues a bearer token. Unknown emails,
// wrong passwords and deactivated accounts are indistinguishable to callers.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", models.User{}, ErrInvalidCredentials
		}
		return "", models.User{}, err
	}

	if !user.IsActive {
		return "", models.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(user.ID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", models.User{}, fmt.Errorf("sign token: %w", err)
	}

	return token, user, nil
}

// CurrentUser resolves an authenticated user id back to its account, for
// callers that present a valid token naming a user that no longer exists or
// has been deactivated.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.User{}, ErrInvalidToken
		}
		return models.User{}, err
	}
	if !user.IsActive {
		return models.User{}, ErrInvalidToken
	}
	return user, nil
}

// VerifyToken validates a bearer token and returns the user id it names.
func (s *AuthService) VerifyToken(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return userID, nil
}
