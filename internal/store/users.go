package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/erazemk/evidenca/internal/model"
)

const userColumns = `id, email, password_hash, is_active, created_at`

// CreateUser creates a new active user. Returns ErrDuplicate if the email is
// already registered.
func CreateUser(ctx context.Context, q sqlx.ExtContext, email, passwordHash string) (*model.User, error) {
	id, err := insertReturningID(ctx, q,
		`INSERT INTO users (email, password_hash, is_active) VALUES (?, ?, ?)`,
		email, passwordHash, true,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("creating user: %w", ErrDuplicate)
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return GetUser(ctx, q, id)
}

// GetUser returns a user by ID.
func GetUser(ctx context.Context, q sqlx.ExtContext, id int64) (*model.User, error) {
	u := &model.User{}
	err := sqlx.GetContext(ctx, q, u,
		q.Rebind(`SELECT `+userColumns+` FROM users WHERE id = ?`), id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

// GetUserByEmail returns a user by exact (case-sensitive) email.
func GetUserByEmail(ctx context.Context, q sqlx.ExtContext, email string) (*model.User, error) {
	u := &model.User{}
	err := sqlx.GetContext(ctx, q, u,
		q.Rebind(`SELECT `+userColumns+` FROM users WHERE email = ?`), email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return u, nil
}
