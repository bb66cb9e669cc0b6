package middleware

import (
	"context"
	"net/http"

	"github.com/sikemausa/todo-server/internal/logger"
	"github.com/sikemausa/todo-server/internal/model"
)

// AuthHeader is the request header carrying the session token, and the
// response header conveying a freshly issued one.
const AuthHeader = "x-auth"

// TokenService resolves users from presented session tokens.
type TokenService interface {
	Authenticate(ctx context.Context, token string) (model.User, error)
}

// Authenticate validates the x-auth token and injects the session into
// the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle wraps a protected handler. Every authentication failure is a
// bare 401 so the response does not leak which check failed.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.Header.Get(AuthHeader)

		user, err := m.tokenService.Authenticate(r.Context(), tokenString)
		if err != nil {
			m.logger.Info("Authenticate middleware: request rejected",
				"path", r.URL.Path)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ctx := m.contextManager.SetSessionToContext(r.Context(), user, tokenString)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
