package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sikemausa/todo-server/internal/api/http/handler"
	"github.com/sikemausa/todo-server/internal/api/http/middleware"
	"github.com/sikemausa/todo-server/internal/logger"
	"github.com/sikemausa/todo-server/internal/model"
	"github.com/sikemausa/todo-server/internal/service"
)

// Router wires handlers and middleware onto the HTTP mux.
type Router struct {
	authService    *service.Auth
	todoService    *service.Todo
	tokenService   *service.TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	todoService *service.Todo,
	tokenService *service.TokenService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		todoService:    todoService,
		tokenService:   tokenService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the route table. Signup and login are public, every
// other route goes through the authenticate middleware.
func (r *Router) Register() *mux.Router {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger)
	todoHandler := handler.NewTodo(r.todoService, r.contextManager, r.logger)

	m := mux.NewRouter()
	m.Use(logging.Handle)

	m.HandleFunc("/users", authHandler.Signup).Methods(http.MethodPost)
	m.HandleFunc("/users/login", authHandler.Login).Methods(http.MethodPost)

	protected := func(h http.HandlerFunc) http.Handler {
		return authenticate.Handle(h)
	}

	m.Handle("/users/me", protected(authHandler.Me)).Methods(http.MethodGet)
	m.Handle("/users/me/token", protected(authHandler.Logout)).Methods(http.MethodDelete)

	m.Handle("/todos", protected(todoHandler.Create)).Methods(http.MethodPost)
	m.Handle("/todos", protected(todoHandler.List)).Methods(http.MethodGet)
	m.Handle("/todos/{id}", protected(todoHandler.Get)).Methods(http.MethodGet)
	m.Handle("/todos/{id}", protected(todoHandler.Update)).Methods(http.MethodPatch)
	m.Handle("/todos/{id}", protected(todoHandler.Delete)).Methods(http.MethodDelete)

	return m
}
