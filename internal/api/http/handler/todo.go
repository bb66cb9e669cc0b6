package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/sikemausa/todo-server/internal/logger"
	"github.com/sikemausa/todo-server/internal/model"
)

// TodoService defines the owner-scoped todo operations.
type TodoService interface {
	CreateTodo(ctx context.Context, userID uuid.UUID, text string) (model.Todo, error)
	GetTodos(ctx context.Context, userID uuid.UUID) ([]model.Todo, error)
	GetTodo(ctx context.Context, userID uuid.UUID, todoID uuid.UUID) (model.Todo, error)
	UpdateTodo(ctx context.Context, userID uuid.UUID, todoID uuid.UUID, patch model.TodoPatch) (model.Todo, error)
	DeleteTodo(ctx context.Context, userID uuid.UUID, todoID uuid.UUID) (model.Todo, error)
}

// Todo handles HTTP endpoints for todo items.
type Todo struct {
	todoService    TodoService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTodo creates a new Todo handler.
func NewTodo(todoService TodoService, contextManager model.ContextManager, logger *logger.Logger) *Todo {
	return &Todo{
		todoService:    todoService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createTodoRequest struct {
	Text string `json:"text"`
}

type patchTodoRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

type todoResponse struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Completed   bool   `json:"completed"`
	CompletedAt *int64 `json:"completedAt"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

type todoWrapper struct {
	Todo todoResponse `json:"todo"`
}

type todoListResponse struct {
	Todos []todoResponse `json:"todos"`
}

func toTodoResponse(todo model.Todo) todoResponse {
	resp := todoResponse{
		ID:        todo.ID.String(),
		Text:      todo.Text,
		Completed: todo.Completed,
		CreatedAt: todo.CreatedAt.UnixMilli(),
		UpdatedAt: todo.UpdatedAt.UnixMilli(),
	}
	if todo.CompletedAt != nil {
		ms := todo.CompletedAt.UnixMilli()
		resp.CompletedAt = &ms
	}
	return resp
}

// todoID parses the path id. A malformed id reports false and the
// caller responds NotFound, indistinguishable from an unknown id.
func todoID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (h *Todo) requester(w http.ResponseWriter, r *http.Request) (model.User, bool) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		handleError(w, model.ErrUnauthorized)
		return model.User{}, false
	}
	return user, true
}

// Create creates a todo owned by the requester.
func (h *Todo) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requester(w, r)
	if !ok {
		return
	}

	var req createTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	todo, err := h.todoService.CreateTodo(r.Context(), user.ID, req.Text)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, todoWrapper{Todo: toTodoResponse(todo)})
}

// List returns the requester's todos wrapped in an object.
func (h *Todo) List(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requester(w, r)
	if !ok {
		return
	}

	todos, err := h.todoService.GetTodos(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("Todo handler: list failed",
			"user_id", user.ID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	resp := todoListResponse{Todos: make([]todoResponse, 0, len(todos))}
	for _, todo := range todos {
		resp.Todos = append(resp.Todos, toTodoResponse(todo))
	}
	respondJSON(w, http.StatusOK, resp)
}

// Get returns one owned todo.
func (h *Todo) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requester(w, r)
	if !ok {
		return
	}

	id, ok := todoID(r)
	if !ok {
		handleError(w, model.ErrNotFound)
		return
	}

	todo, err := h.todoService.GetTodo(r.Context(), user.ID, id)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, todoWrapper{Todo: toTodoResponse(todo)})
}

// Update applies a partial update to one owned todo.
func (h *Todo) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requester(w, r)
	if !ok {
		return
	}

	id, ok := todoID(r)
	if !ok {
		handleError(w, model.ErrNotFound)
		return
	}

	var req patchTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	todo, err := h.todoService.UpdateTodo(r.Context(), user.ID, id, model.TodoPatch{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, todoWrapper{Todo: toTodoResponse(todo)})
}

// Delete removes one owned todo and returns its prior state.
func (h *Todo) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requester(w, r)
	if !ok {
		return
	}

	id, ok := todoID(r)
	if !ok {
		handleError(w, model.ErrNotFound)
		return
	}

	todo, err := h.todoService.DeleteTodo(r.Context(), user.ID, id)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, todoWrapper{Todo: toTodoResponse(todo)})
}
