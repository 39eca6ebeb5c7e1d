// Package service implements the user, item and ownership workflows on top
// of the store. Every lookup that finds nothing returns an error wrapping
// ErrNotFound, never a nil value.
package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is wrapped by every "absent" error below.
	ErrNotFound = errors.New("not found")

	ErrItemNotFound = fmt.Errorf("item %w", ErrNotFound)
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)

	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// PasswordHasher is the one-way hash used for user credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

func invalidInput(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
