package mocks

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// TokenManager is a testify mock of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func NewTokenManager(t *testing.T) *TokenManager {
	m := &TokenManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TokenManager) Issue(userID uuid.UUID, access string) (string, error) {
	args := m.Called(userID, access)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) Verify(token string) (uuid.UUID, string, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.String(1), args.Error(2)
}
