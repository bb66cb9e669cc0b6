package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AccessAuth is the purpose tag carried by session tokens. A token minted
// for one purpose must never be accepted for another.
const AccessAuth = "auth"

// UserStore defines persistence operations for users and their active
// token sets.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddToken(ctx context.Context, userID uuid.UUID, access, token string) error
	RemoveToken(ctx context.Context, userID uuid.UUID, token string) error
	GetByToken(ctx context.Context, token, access string) (User, error)
}

// User represents a stored user with authentication material.
// PasswordHash is a salted bcrypt digest; the plaintext is never stored.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SessionToken is one entry of a user's active token set. A token string
// maps to exactly one user and one access purpose until revoked.
type SessionToken struct {
	Access string
	Token  string
}
