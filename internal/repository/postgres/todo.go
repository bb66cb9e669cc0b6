package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sikemausa/todo-server/internal/model"
)

var _ model.TodoStore = (*TodoRepository)(nil)

type TodoRepository struct {
	db *Connection
}

func NewTodoRepository(db *Connection) *TodoRepository {
	return &TodoRepository{
		db: db,
	}
}

func (r *TodoRepository) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	query := `INSERT INTO todos (id, owner_id, text, completed, completed_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, owner_id, text, completed, completed_at, created_at, updated_at`

	var savedTodo model.Todo
	err := r.db.QueryRow(ctx, query,
		todo.ID, todo.OwnerID, todo.Text, todo.Completed, todo.CompletedAt,
		todo.CreatedAt, todo.UpdatedAt,
	).Scan(
		&savedTodo.ID, &savedTodo.OwnerID, &savedTodo.Text, &savedTodo.Completed,
		&savedTodo.CompletedAt, &savedTodo.CreatedAt, &savedTodo.UpdatedAt,
	)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	return savedTodo, nil
}

func (r *TodoRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Todo, error) {
	query := `SELECT id, owner_id, text, completed, completed_at, created_at, updated_at
			  FROM todos WHERE id = $1`

	var todo model.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&todo.ID, &todo.OwnerID, &todo.Text, &todo.Completed,
		&todo.CompletedAt, &todo.CreatedAt, &todo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Todo{}, model.ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to get todo by id: %w", err)
	}

	return todo, nil
}

func (r *TodoRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Todo, error) {
	query := `SELECT id, owner_id, text, completed, completed_at, created_at, updated_at
			  FROM todos WHERE owner_id = $1
			  ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get todos by owner: %w", err)
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		var todo model.Todo
		err := rows.Scan(
			&todo.ID, &todo.OwnerID, &todo.Text, &todo.Completed,
			&todo.CompletedAt, &todo.CreatedAt, &todo.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return todos, nil
}

// Update applies the patch in a single conditional statement, so two
// concurrent patches to the same row cannot revert each other's fields.
// The completion transition is resolved against the row's current state:
// pending to completed stamps completed_at, completed to pending clears
// it, self-transitions and text-only patches leave it untouched.
func (r *TodoRepository) Update(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, patch model.TodoPatch) (model.Todo, error) {
	query := `UPDATE todos
			  SET text = COALESCE($3::text, text),
				  completed = COALESCE($4::boolean, completed),
				  completed_at = CASE
					  WHEN $4::boolean IS NULL THEN completed_at
					  WHEN $4::boolean AND NOT completed THEN now()
					  WHEN NOT $4::boolean THEN NULL
					  ELSE completed_at
				  END,
				  updated_at = now()
			  WHERE id = $1 AND owner_id = $2
			  RETURNING id, owner_id, text, completed, completed_at, created_at, updated_at`

	var savedTodo model.Todo
	err := r.db.QueryRow(ctx, query,
		id, ownerID, patch.Text, patch.Completed,
	).Scan(
		&savedTodo.ID, &savedTodo.OwnerID, &savedTodo.Text, &savedTodo.Completed,
		&savedTodo.CompletedAt, &savedTodo.CreatedAt, &savedTodo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Todo{}, model.ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to update todo: %w", err)
	}

	return savedTodo, nil
}

// Delete is a hard delete scoped to the owner.
func (r *TodoRepository) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	const query = `DELETE FROM todos WHERE id = $1 AND owner_id = $2`
	cmd, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
