package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sikemausa/todo-server/internal/logger"
	"github.com/sikemausa/todo-server/internal/mocks"
	"github.com/sikemausa/todo-server/internal/model"
)

func TestTokenService_Issue(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	manager := mocks.NewTokenManager(t)
	store := mocks.NewUserStore(t)

	manager.On("Issue", userID, model.AccessAuth).Return("token", nil).Once()
	store.On("AddToken", ctx, userID, model.AccessAuth, "token").Return(nil).Once()

	svc := NewTokenService(manager, store, logger.New(0))

	tok, err := svc.Issue(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "token", tok)
}

func TestTokenService_Issue_ManagerError(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	manager := mocks.NewTokenManager(t)
	store := mocks.NewUserStore(t)

	manager.On("Issue", userID, model.AccessAuth).Return("", assert.AnError).Once()

	svc := NewTokenService(manager, store, logger.New(0))

	_, err := svc.Issue(ctx, userID)
	require.Error(t, err)
}

func TestTokenService_Authenticate_EmptyToken(t *testing.T) {
	manager := mocks.NewTokenManager(t)
	store := mocks.NewUserStore(t)

	svc := NewTokenService(manager, store, logger.New(0))

	_, err := svc.Authenticate(context.Background(), "")
	require.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestTokenService_Authenticate_InvalidSignature(t *testing.T) {
	manager := mocks.NewTokenManager(t)
	store := mocks.NewUserStore(t)

	manager.On("Verify", "forged").Return(uuid.Nil, "", assert.AnError).Once()

	svc := NewTokenService(manager, store, logger.New(0))

	_, err := svc.Authenticate(context.Background(), "forged")
	require.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestTokenService_Authenticate_WrongPurpose(t *testing.T) {
	userID := uuid.New()
	manager := mocks.NewTokenManager(t)
	store := mocks.NewUserStore(t)

	manager.On("Verify", "reset-token").Return(userID, "reset", nil).Once()

	svc := NewTokenService(manager, store, logger.New(0))

	_, err := svc.Authenticate(context.Background(), "reset-token")
	require.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestTokenService_Authenticate_Revoked(t *testing.T) {
	userID := uuid.New()
	manager := mocks.NewTokenManager(t)
	store := mocks.NewUserStore(t)

	manager.On("Verify", "revoked").Return(userID, model.AccessAuth, nil).Once()
	store.On("GetByToken", mock.Anything, "revoked", model.AccessAuth).Return(model.User{}, model.ErrNotFound).Once()

	svc := NewTokenService(manager, store, logger.New(0))

	_, err := svc.Authenticate(context.Background(), "revoked")
	require.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestTokenService_Authenticate_ClaimMismatch(t *testing.T) {
	manager := mocks.NewTokenManager(t)
	store := mocks.NewUserStore(t)

	manager.On("Verify", "tok").Return(uuid.New(), model.AccessAuth, nil).Once()
	store.On("GetByToken", mock.Anything, "tok", model.AccessAuth).Return(model.User{ID: uuid.New()}, nil).Once()

	svc := NewTokenService(manager, store, logger.New(0))

	_, err := svc.Authenticate(context.Background(), "tok")
	require.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestTokenService_Authenticate_Success(t *testing.T) {
	userID := uuid.New()
	user := model.User{ID: userID, Email: "a@b.com"}

	manager := mocks.NewTokenManager(t)
	store := mocks.NewUserStore(t)

	manager.On("Verify", "tok").Return(userID, model.AccessAuth, nil).Once()
	store.On("GetByToken", mock.Anything, "tok", model.AccessAuth).Return(user, nil).Once()

	svc := NewTokenService(manager, store, logger.New(0))

	got, err := svc.Authenticate(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestTokenService_Revoke_Idempotent(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	manager := mocks.NewTokenManager(t)
	store := mocks.NewUserStore(t)

	store.On("RemoveToken", ctx, userID, "tok").Return(nil).Twice()

	svc := NewTokenService(manager, store, logger.New(0))

	require.NoError(t, svc.Revoke(ctx, userID, "tok"))
	require.NoError(t, svc.Revoke(ctx, userID, "tok"))
}
