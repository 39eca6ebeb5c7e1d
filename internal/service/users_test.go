package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHashesPassword(t *testing.T) {
	f := newFixture(t)

	user, err := f.users.CreateUser(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", user.Email)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.NoError(t, f.users.hasher.Compare(user.PasswordHash, "secret"))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.user(t, "a@x.com")

	_, err := f.users.CreateUser(ctx, "a@x.com", "other")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestCreateTwoUsersIndependentlyRetrievable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.user(t, "a@x.com")
	b := f.user(t, "b@x.com")
	require.NotEqual(t, a.ID, b.ID)

	gotA, err := f.users.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, a.ID, gotA.ID)

	gotB, err := f.users.GetUserByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, b.ID, gotB.ID)

	byID, err := f.users.GetUserByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", byID.Email)
}

func TestCreateUserInvalidInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.CreateUser(ctx, "not-an-email", "password")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.users.CreateUser(ctx, "a@x.com", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.GetUserByID(ctx, 404)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.users.GetUserByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := f.user(t, "a@x.com")

	user, err := f.users.Authenticate(ctx, "a@x.com", "password")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = f.users.Authenticate(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.users.Authenticate(ctx, "nobody@x.com", "password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateInactiveUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.user(t, "a@x.com")
	f.db.MustExec(`UPDATE users SET is_active = 0 WHERE id = ?`, u.ID)

	_, err := f.users.Authenticate(ctx, "a@x.com", "password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
