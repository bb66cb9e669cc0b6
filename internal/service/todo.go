package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sikemausa/todo-server/internal/logger"
	"github.com/sikemausa/todo-server/internal/model"
)

// Todo enforces per-user ownership over todo records and maintains the
// completion timestamp invariant.
type Todo struct {
	todoStore model.TodoStore
	logger    *logger.Logger
}

func NewTodo(todoStore model.TodoStore, logger *logger.Logger) *Todo {
	return &Todo{
		todoStore: todoStore,
		logger:    logger,
	}
}

// CreateTodo creates a pending todo owned by the requesting user.
func (s *Todo) CreateTodo(ctx context.Context, userID uuid.UUID, text string) (model.Todo, error) {
	if strings.TrimSpace(text) == "" {
		return model.Todo{}, model.NewValidationError("text", "must not be empty")
	}

	now := time.Now()
	todo := model.Todo{
		ID:        uuid.New(),
		OwnerID:   userID,
		Text:      text,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	todo, err := s.todoStore.Create(ctx, todo)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	s.logger.Info("Todo service: todo created",
		"todo_id", todo.ID,
		"user_id", userID)

	return todo, nil
}

// GetTodos returns the user's todos in creation order.
func (s *Todo) GetTodos(ctx context.Context, userID uuid.UUID) ([]model.Todo, error) {
	todos, err := s.todoStore.GetByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get todos by owner: %w", err)
	}

	return todos, nil
}

// GetTodo returns the todo only if the requesting user owns it. A todo
// owned by someone else is reported exactly like a missing one.
func (s *Todo) GetTodo(ctx context.Context, userID uuid.UUID, todoID uuid.UUID) (model.Todo, error) {
	todo, err := s.todoStore.GetByID(ctx, todoID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Todo{}, model.ErrNotFound
	}
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to get todo by id: %w", err)
	}

	if todo.OwnerID != userID {
		return model.Todo{}, model.ErrNotFound
	}

	return todo, nil
}

// UpdateTodo applies a partial update to an owned todo. Only text and
// completed are mutable. Completion transitions drive CompletedAt:
// pending to completed stamps it, completed to pending clears it, and
// self-transitions leave it untouched. The store applies the whole patch
// atomically against the row's current state, so concurrent patches
// cannot revert each other.
func (s *Todo) UpdateTodo(ctx context.Context, userID uuid.UUID, todoID uuid.UUID, patch model.TodoPatch) (model.Todo, error) {
	if patch.Text != nil && strings.TrimSpace(*patch.Text) == "" {
		return model.Todo{}, model.NewValidationError("text", "must not be empty")
	}

	todo, err := s.todoStore.Update(ctx, todoID, userID, patch)
	if errors.Is(err, model.ErrNotFound) {
		return model.Todo{}, model.ErrNotFound
	}
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to update todo: %w", err)
	}

	return todo, nil
}

// DeleteTodo permanently deletes an owned todo and returns its prior
// state.
func (s *Todo) DeleteTodo(ctx context.Context, userID uuid.UUID, todoID uuid.UUID) (model.Todo, error) {
	todo, err := s.GetTodo(ctx, userID, todoID)
	if err != nil {
		return model.Todo{}, err
	}

	if err := s.todoStore.Delete(ctx, todoID, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Todo{}, model.ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to delete todo: %w", err)
	}

	s.logger.Info("Todo service: todo deleted",
		"todo_id", todoID,
		"user_id", userID)

	return todo, nil
}
