package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sikemausa/todo-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const uniqueViolation = "23505"

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, email, password_hash, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, email, password_hash, created_at, updated_at`

	var savedUser model.User
	err := r.db.QueryRow(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	).Scan(
		&savedUser.ID, &savedUser.Email, &savedUser.PasswordHash,
		&savedUser.CreatedAt, &savedUser.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.User{}, model.ErrEmailTaken
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return savedUser, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	query := `SELECT id, email, password_hash, created_at, updated_at
			  FROM users WHERE email = $1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	var user model.User
	query := `SELECT id, email, password_hash, created_at, updated_at
			  FROM users WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// Delete removes the user record; the token set goes with it via the
// foreign key cascade.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM users WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *UserRepository) AddToken(ctx context.Context, userID uuid.UUID, access, token string) error {
	const query = `INSERT INTO user_tokens (id, user_id, access, token) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.Exec(ctx, query, uuid.New(), userID, access, token); err != nil {
		return fmt.Errorf("failed to add token: %w", err)
	}
	return nil
}

// RemoveToken is idempotent: deleting a token that is not present is
// not an error.
func (r *UserRepository) RemoveToken(ctx context.Context, userID uuid.UUID, token string) error {
	const query = `DELETE FROM user_tokens WHERE user_id = $1 AND token = $2`
	if _, err := r.db.Exec(ctx, query, userID, token); err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}

// GetByToken resolves a user from a token string still present in their
// active token set for the given purpose. Absence means the token was
// revoked or never issued.
func (r *UserRepository) GetByToken(ctx context.Context, token, access string) (model.User, error) {
	var user model.User
	query := `SELECT u.id, u.email, u.password_hash, u.created_at, u.updated_at
			  FROM users u
			  JOIN user_tokens t ON t.user_id = u.id
			  WHERE t.token = $1 AND t.access = $2`

	err := r.db.QueryRow(ctx, query, token, access).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by token: %w", err)
	}

	return user, nil
}
