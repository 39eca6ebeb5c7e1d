package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/erazemk/evidenca/internal/auth"
	"github.com/erazemk/evidenca/internal/model"
	"github.com/erazemk/evidenca/internal/store"
)

// Users registers and looks up users.
type Users struct {
	db     *sqlx.DB
	hasher PasswordHasher
}

// NewUsers returns a user service.
func NewUsers(db *sqlx.DB, hasher PasswordHasher) *Users {
	return &Users{db: db, hasher: hasher}
}

// CreateUser registers a new active user. The email check here gives the
// common case a clean error; the unique index on users.email catches
// concurrent registrations that both pass it.
func (s *Users) CreateUser(ctx context.Context, email, password string) (*model.User, error) {
	if err := model.ValidateEmail(email); err != nil {
		return nil, invalidInput(err)
	}
	if err := model.ValidatePassword(password); err != nil {
		return nil, invalidInput(err)
	}

	_, err := store.GetUserByEmail(ctx, s.db, email)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := store.CreateUser(ctx, s.db, email, hash)
	if errors.Is(err, store.ErrDuplicate) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByEmail returns the user with exactly this email.
func (s *Users) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := store.GetUserByEmail(ctx, s.db, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// GetUserByID returns a user by ID.
func (s *Users) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	return getUser(ctx, s.db, id)
}

// Authenticate checks an email/password pair. Unknown emails, wrong
// passwords and inactive users all yield ErrInvalidCredentials.
func (s *Users) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := store.GetUserByEmail(ctx, s.db, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	err = s.hasher.Compare(user.PasswordHash, password)
	if errors.Is(err, auth.ErrMismatchedPassword) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("authenticating %s: %w", email, err)
	}
	return user, nil
}

func getUser(ctx context.Context, q sqlx.ExtContext, id int64) (*model.User, error) {
	user, err := store.GetUser(ctx, q, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}
