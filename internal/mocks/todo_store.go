package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/sikemausa/todo-server/internal/model"
)

// TodoStore is a testify mock of model.TodoStore.
type TodoStore struct {
	mock.Mock
}

func NewTodoStore(t *testing.T) *TodoStore {
	m := &TodoStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TodoStore) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	args := m.Called(ctx, todo)
	if rf, ok := args.Get(0).(func(context.Context, model.Todo) (model.Todo, error)); ok {
		return rf(ctx, todo)
	}
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *TodoStore) GetByID(ctx context.Context, id uuid.UUID) (model.Todo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *TodoStore) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Todo, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Todo), args.Error(1)
}

func (m *TodoStore) Update(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, patch model.TodoPatch) (model.Todo, error) {
	args := m.Called(ctx, id, ownerID, patch)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *TodoStore) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}
