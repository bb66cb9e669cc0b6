package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/sikemausa/todo-server/internal/model"
)

// TokenService is a testify mock of the middleware TokenService interface.
type TokenService struct {
	mock.Mock
}

func NewTokenService(t *testing.T) *TokenService {
	m := &TokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TokenService) Authenticate(ctx context.Context, token string) (model.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.User), args.Error(1)
}

// AuthService is a testify mock of the handler AuthService interface.
type AuthService struct {
	mock.Mock
}

func NewAuthService(t *testing.T) *AuthService {
	m := &AuthService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AuthService) Signup(ctx context.Context, email, password string) (model.User, string, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.User), args.String(1), args.Error(2)
}

func (m *AuthService) Login(ctx context.Context, email, password string) (model.User, string, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.User), args.String(1), args.Error(2)
}

func (m *AuthService) Logout(ctx context.Context, userID uuid.UUID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

// TodoService is a testify mock of the handler TodoService interface.
type TodoService struct {
	mock.Mock
}

func NewTodoService(t *testing.T) *TodoService {
	m := &TodoService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TodoService) CreateTodo(ctx context.Context, userID uuid.UUID, text string) (model.Todo, error) {
	args := m.Called(ctx, userID, text)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *TodoService) GetTodos(ctx context.Context, userID uuid.UUID) ([]model.Todo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Todo), args.Error(1)
}

func (m *TodoService) GetTodo(ctx context.Context, userID uuid.UUID, todoID uuid.UUID) (model.Todo, error) {
	args := m.Called(ctx, userID, todoID)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *TodoService) UpdateTodo(ctx context.Context, userID uuid.UUID, todoID uuid.UUID, patch model.TodoPatch) (model.Todo, error) {
	args := m.Called(ctx, userID, todoID, patch)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *TodoService) DeleteTodo(ctx context.Context, userID uuid.UUID, todoID uuid.UUID) (model.Todo, error) {
	args := m.Called(ctx, userID, todoID)
	return args.Get(0).(model.Todo), args.Error(1)
}
