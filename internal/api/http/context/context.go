// Package context carries the authenticated session through a request's
// context.Context.
package context

import (
	"context"

	"github.com/sikemausa/todo-server/internal/model"
)

type ctxKey int

const (
	userKey ctxKey = iota
	tokenKey
)

// Manager implements model.ContextManager over request contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetSessionToContext stores the authenticated user and the token that
// authenticated them.
func (m *Manager) SetSessionToContext(ctx context.Context, user model.User, token string) context.Context {
	ctx = context.WithValue(ctx, userKey, user)
	return context.WithValue(ctx, tokenKey, token)
}

// GetUserFromContext retrieves the authenticated user, if any.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey).(model.User)
	return user, ok
}

// GetTokenFromContext retrieves the raw session token, if any.
func (m *Manager) GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}
