package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TodoStore defines persistence operations for todos.
type TodoStore interface {
	Create(ctx context.Context, todo Todo) (Todo, error)
	GetByID(ctx context.Context, id uuid.UUID) (Todo, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]Todo, error)
	Update(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, patch TodoPatch) (Todo, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
}

// Todo represents a stored todo item. Ownership is permanent: OwnerID is
// set at creation and never reassigned. CompletedAt is non-nil iff
// Completed is true.
type Todo struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Text        string
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TodoPatch describes a partial update. Nil fields leave the current
// value unchanged.
type TodoPatch struct {
	Text      *string
	Completed *bool
}
