package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/sikemausa/todo-server/internal/model"
)

// UserStore is a testify mock of model.UserStore.
type UserStore struct {
	mock.Mock
}

func NewUserStore(t *testing.T) *UserStore {
	m := &UserStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	if rf, ok := args.Get(0).(func(context.Context, model.User) (model.User, error)); ok {
		return rf(ctx, user)
	}
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *UserStore) AddToken(ctx context.Context, userID uuid.UUID, access, token string) error {
	args := m.Called(ctx, userID, access, token)
	return args.Error(0)
}

func (m *UserStore) RemoveToken(ctx context.Context, userID uuid.UUID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *UserStore) GetByToken(ctx context.Context, token, access string) (model.User, error) {
	args := m.Called(ctx, token, access)
	return args.Get(0).(model.User), args.Error(1)
}
