package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/solestore/storefront-service/internal/models"
	"github.com/solestore/storefront-service/internal/repository"
)

// fakeUserStore is an in-memory UserStore for auth tests.
type fakeUserStore struct {
	nextID int64
	users  map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, users: make(map[string]models.User)}
}

func (f *fakeUserStore) Create(_ context.Context, email, passwordHash string) (int64, error) {
	if _, ok := f.users[email]; ok {
		return 0, repository.ErrConflict
	}
	id := f.nextID
	f.nextID++
	f.users[email] = models.User{ID: id, Email: email, PasswordHash: passwordHash, IsActive: true}
	return id, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func newAuthService(store UserStore) *AuthService {
	return NewAuthService(store, "test-secret", time.Hour)
}

func TestSignupHashesPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	id, err := svc.Signup(context.Background(), "a@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	stored := store.users["a@example.com"]
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")))
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	_, err := svc.Signup(context.Background(), "a@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), "a@example.com", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	id, err := svc.Signup(context.Background(), "a@example.com", "hunter22")
	require.NoError(t, err)

	token, user, err := svc.Login(context.Background(), "a@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.NotEmpty(t, token)

	verified, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, verified)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	_, err := svc.Signup(context.Background(), "a@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "a@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	_, err := svc.Signup(context.Background(), "a@example.com", "hunter22")
	require.NoError(t, err)

	u := store.users["a@example.com"]
	u.IsActive = false
	store.users["a@example.com"] = u

	_, _, err = svc.Login(context.Background(), "a@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyTokenRejectsTamperedToken(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	_, err := svc.Signup(context.Background(), "a@example.com", "hunter22")
	require.NoError(t, err)

	token, _, err := svc.Login(context.Background(), "a@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsExpiredToken(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, "test-secret", -time.Minute)

	_, err := svc.Signup(context.Background(), "a@example.com", "hunter22")
	require.NoError(t, err)

	token, _, err := svc.Login(context.Background(), "a@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsForeignSecret(t *testing.T) {
	store := newFakeUserStore()
	issuer := NewAuthService(store, "secret-a", time.Hour)
	verifier := NewAuthService(store, "secret-b", time.Hour)

	_, err := issuer.Signup(context.Background(), "a@example.com", "hunter22")
	require.NoError(t, err)

	token, _, err := issuer.Login(context.Background(), "a@example.com", "hunter22")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCurrentUserReturnsAccount(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	id, err := svc.Signup(context.Background(), "a@example.com", "hunter22")
	require.NoError(t, err)

	user, err := svc.CurrentUser(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", user.Email)
}

func TestCurrentUserRejectsUnknownID(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	_, err := svc.CurrentUser(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCurrentUserRejectsInactiveUser(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	id, err := svc.Signup(context.Background(), "a@example.com", "hunter22")
	require.NoError(t, err)

	u := store.users["a@example.com"]
	u.IsActive = false
	store.users["a@example.com"] = u

	_, err = svc.CurrentUser(context.Background(), id)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
