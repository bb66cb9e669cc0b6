package model

import "context"

// ContextManager stores and retrieves the authenticated session on a
// request context. The token is kept alongside the user so logout can
// revoke exactly the credential that authenticated the request.
type ContextManager interface {
	SetSessionToContext(ctx context.Context, user User, token string) context.Context
	GetUserFromContext(ctx context.Context) (User, bool)
	GetTokenFromContext(ctx context.Context) (string, bool)
}
