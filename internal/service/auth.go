package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sikemausa/todo-server/internal/logger"
	"github.com/sikemausa/todo-server/internal/model"
)

// minPasswordLength is the signup password policy.
const minPasswordLength = 6

// Auth manages user credentials: signup, login and logout.
type Auth struct {
	userStore    model.UserStore
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(userStore model.UserStore, tokenService *TokenService, logger *logger.Logger) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Signup creates a user from email and plaintext password and issues the
// first session token. The password is stored only as a salted bcrypt
// hash.
func (a *Auth) Signup(ctx context.Context, email, password string) (model.User, string, error) {
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return model.User{}, "", err
	}
	// counted in runes so multibyte passwords are not over-credited
	if utf8.RuneCountInString(password) < minPasswordLength {
		return model.User{}, "", model.NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}

	existing, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}
	if existing.ID != uuid.Nil {
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return model.User{}, "", model.ErrEmailTaken
	}

	// bcrypt generates a fresh random salt per call, identical passwords
	// never hash the same.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	user, err = a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			return model.User{}, "", model.ErrEmailTaken
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to create user: %w", err)
	}

	tok, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user signed up",
		"user_id", user.ID,
		"email", email)

	return user, tok, nil
}

// Login verifies the password against the stored hash and issues a new
// session token. Unknown email and wrong password are reported the same.
func (a *Auth) Login(ctx context.Context, email, password string) (model.User, string, error) {
	user, err := a.userStore.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, "", model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.VerifyPassword(user, password) {
		return model.User{}, "", model.ErrInvalidCredentials
	}

	tok, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return user, tok, nil
}

// VerifyPassword checks a plaintext password against the stored hash.
// The comparison is delegated to bcrypt, which is constant-time over the
// digest.
func (a *Auth) VerifyPassword(user model.User, password string) bool {
	return bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) == nil
}

// Logout revokes the presented session token. It is idempotent.
func (a *Auth) Logout(ctx context.Context, userID uuid.UUID, tokenString string) error {
	if err := a.tokenService.Revoke(ctx, userID, tokenString); err != nil {
		a.logger.Error("Auth service: failed to revoke token",
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	a.logger.Info("Auth service: user logged out",
		"user_id", userID)

	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return model.NewValidationError("email", "is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return model.NewValidationError("email", "is not a valid email address")
	}
	return nil
}
