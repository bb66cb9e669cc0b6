package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sikemausa/todo-server/internal/logger"
	"github.com/sikemausa/todo-server/internal/model"
)

// TokenService issues session tokens and resolves users from presented
// tokens. Resolution checks the signature first, then the user's stored
// token set, so a logged-out token is rejected even though it remains
// cryptographically valid.
type TokenService struct {
	manager model.TokenManager
	store   model.UserStore
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, store model.UserStore, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, store: store, logger: logger}
}

// Issue mints an auth token for the user and records it in the user's
// active token set.
func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	tok, err := s.manager.Issue(userID, model.AccessAuth)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	if err := s.store.AddToken(ctx, userID, model.AccessAuth, tok); err != nil {
		return "", fmt.Errorf("persist token: %w", err)
	}

	return tok, nil
}

// Authenticate resolves the user behind a raw token. Every failure mode
// collapses to ErrUnauthorized so callers cannot tell a malformed token
// from a revoked one.
func (s *TokenService) Authenticate(ctx context.Context, tokenString string) (model.User, error) {
	if tokenString == "" {
		return model.User{}, model.ErrUnauthorized
	}

	userID, access, err := s.manager.Verify(tokenString)
	if err != nil {
		return model.User{}, model.ErrUnauthorized
	}
	if access != model.AccessAuth {
		return model.User{}, model.ErrUnauthorized
	}

	user, err := s.store.GetByToken(ctx, tokenString, model.AccessAuth)
	if err != nil {
		return model.User{}, model.ErrUnauthorized
	}
	if user.ID != userID {
		s.logger.Error("Token service: token claims a different user than the store",
			"claimed_user_id", userID,
			"stored_user_id", user.ID)
		return model.User{}, model.ErrUnauthorized
	}

	return user, nil
}

// Revoke removes the token from the user's active set. Removing a token
// that is already gone is not an error.
func (s *TokenService) Revoke(ctx context.Context, userID uuid.UUID, tokenString string) error {
	if err := s.store.RemoveToken(ctx, userID, tokenString); err != nil {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
