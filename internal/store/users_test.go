package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/evidenca/internal/db"
)

func TestCreateAndGetUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, database, "a@x.com", "hash123")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Email != "a@x.com" {
		t.Errorf("expected email 'a@x.com', got %q", user.Email)
	}
	if !user.IsActive {
		t.Error("expected new user to be active")
	}
	if user.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	got, err := GetUser(ctx, database, user.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.PasswordHash != "hash123" {
		t.Errorf("expected password hash 'hash123', got %q", got.PasswordHash)
	}
}

func TestGetUserByEmail(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, "alice@x.com", "hash")

	user, err := GetUserByEmail(ctx, database, "alice@x.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if user.Email != "alice@x.com" {
		t.Errorf("expected 'alice@x.com', got %q", user.Email)
	}

	_, err = GetUserByEmail(ctx, database, "bob@x.com")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing user, got %v", err)
	}
}

func TestGetUserByEmailIsCaseSensitive(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, "alice@x.com", "hash")

	_, err := GetUserByEmail(ctx, database, "Alice@x.com")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for differently cased email, got %v", err)
	}

	// A differently cased email is a different user.
	if _, err := CreateUser(ctx, database, "Alice@x.com", "hash"); err != nil {
		t.Errorf("expected differently cased email to be accepted, got %v", err)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateUser(ctx, database, "dup@x.com", "hash"); err != nil {
		t.Fatalf("first CreateUser: %v", err)
	}

	_, err := CreateUser(ctx, database, "dup@x.com", "other")
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestGetUserMissing(t *testing.T) {
	database := db.NewTestDB(t)

	_, err := GetUser(context.Background(), database, 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
