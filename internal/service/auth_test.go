package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sikemausa/todo-server/internal/logger"
	"github.com/sikemausa/todo-server/internal/mocks"
	"github.com/sikemausa/todo-server/internal/model"
)

func newAuthForTest(t *testing.T) (*Auth, *mocks.UserStore, *mocks.TokenManager) {
	t.Helper()
	store := mocks.NewUserStore(t)
	manager := mocks.NewTokenManager(t)
	log := logger.New(0)
	return NewAuth(store, NewTokenService(manager, store, log), log), store, manager
}

func TestAuth_Signup_Success(t *testing.T) {
	ctx := context.Background()
	a, store, manager := newAuthForTest(t)

	store.On("GetByEmail", mock.Anything, "a@b.com").Return(model.User{}, model.ErrNotFound).Once()
	store.On("Create", mock.Anything, mock.Anything).Return(func(_ context.Context, u model.User) (model.User, error) {
		return u, nil
	}).Once()
	manager.On("Issue", mock.Anything, model.AccessAuth).Return("tok", nil).Once()
	store.On("AddToken", mock.Anything, mock.Anything, model.AccessAuth, "tok").Return(nil).Once()

	user, tok, err := a.Signup(ctx, "a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, "tok", tok)
	assert.NotEqual(t, uuid.Nil, user.ID)

	// plaintext must never be stored; stored hash verifies only the
	// original password
	assert.NotContains(t, string(user.PasswordHash), "secret1")
	assert.True(t, a.VerifyPassword(user, "secret1"))
	assert.False(t, a.VerifyPassword(user, "secret2"))
}

func TestAuth_Signup_SaltedHashes(t *testing.T) {
	// identical passwords never produce identical stored hashes
	h1, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)
	h2, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestAuth_Signup_InvalidEmail(t *testing.T) {
	a, _, _ := newAuthForTest(t)

	for _, email := range []string{"", "yo", "a@", "@b.com", "a b@c.com"} {
		_, _, err := a.Signup(context.Background(), email, "secret1")
		var ve *model.ValidationError
		require.ErrorAs(t, err, &ve, "email %q", email)
	}
}

func TestAuth_Signup_WeakPassword(t *testing.T) {
	a, _, _ := newAuthForTest(t)

	// "ééé" is 6 bytes but only 3 characters, the policy counts characters
	for _, password := range []string{"s", "short", "ééé"} {
		_, _, err := a.Signup(context.Background(), "a@b.com", password)
		var ve *model.ValidationError
		require.ErrorAs(t, err, &ve, "password %q", password)
		assert.Equal(t, "password", ve.Field)
	}
}

func TestAuth_Signup_EmailTaken(t *testing.T) {
	a, store, _ := newAuthForTest(t)

	store.On("GetByEmail", mock.Anything, "taken@b.com").Return(model.User{ID: uuid.New()}, nil).Once()

	_, _, err := a.Signup(context.Background(), "taken@b.com", "secret1")
	require.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestAuth_Login_Success(t *testing.T) {
	a, store, manager := newAuthForTest(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := model.User{ID: uuid.New(), Email: "a@b.com", PasswordHash: hash}

	store.On("GetByEmail", mock.Anything, "a@b.com").Return(user, nil).Once()
	manager.On("Issue", user.ID, model.AccessAuth).Return("tok", nil).Once()
	store.On("AddToken", mock.Anything, user.ID, model.AccessAuth, "tok").Return(nil).Once()

	got, tok, err := a.Login(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "tok", tok)
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	a, store, _ := newAuthForTest(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	store.On("GetByEmail", mock.Anything, "a@b.com").Return(model.User{ID: uuid.New(), PasswordHash: hash}, nil).Once()

	_, _, err = a.Login(context.Background(), "a@b.com", "wrong")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_Login_UnknownEmail(t *testing.T) {
	a, store, _ := newAuthForTest(t)

	store.On("GetByEmail", mock.Anything, "ghost@b.com").Return(model.User{}, model.ErrNotFound).Once()

	_, _, err := a.Login(context.Background(), "ghost@b.com", "secret1")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_Logout_Idempotent(t *testing.T) {
	ctx := context.Background()
	a, store, _ := newAuthForTest(t)
	userID := uuid.New()

	store.On("RemoveToken", ctx, userID, "tok").Return(nil).Twice()

	require.NoError(t, a.Logout(ctx, userID, "tok"))
	require.NoError(t, a.Logout(ctx, userID, "tok"))
}
