package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sikemausa/todo-server/internal/api/http/middleware"
	"github.com/sikemausa/todo-server/internal/logger"
	"github.com/sikemausa/todo-server/internal/model"
)

// AuthService defines signup, login and logout operations.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (model.User, string, error)
	Login(ctx context.Context, email, password string) (model.User, string, error)
	Logout(ctx context.Context, userID uuid.UUID, token string) error
}

// Auth handles HTTP endpoints for user accounts and sessions.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func toUserResponse(user model.User) userResponse {
	// the password hash never leaves the core
	return userResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	}
}

// Signup creates a user and conveys the first session token in the
// x-auth response header.
func (h *Auth) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	user, tok, err := h.authService.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: signup failed",
			"error", err.Error())
		handleError(w, err)
		return
	}

	w.Header().Set(middleware.AuthHeader, tok)
	respondJSON(w, http.StatusOK, toUserResponse(user))
}

// Login verifies credentials and conveys a fresh session token in the
// x-auth response header.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	user, tok, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"error", err.Error())
		handleError(w, err)
		return
	}

	w.Header().Set(middleware.AuthHeader, tok)
	respondJSON(w, http.StatusOK, toUserResponse(user))
}

// Me returns the authenticated user.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		handleError(w, model.ErrUnauthorized)
		return
	}

	respondJSON(w, http.StatusOK, toUserResponse(user))
}

// Logout revokes the token that authenticated this request.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		handleError(w, model.ErrUnauthorized)
		return
	}
	tok, ok := h.contextManager.GetTokenFromContext(r.Context())
	if !ok {
		handleError(w, model.ErrUnauthorized)
		return
	}

	if err := h.authService.Logout(r.Context(), user.ID, tok); err != nil {
		h.logger.Error("Auth handler: logout failed",
			"user_id", user.ID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
