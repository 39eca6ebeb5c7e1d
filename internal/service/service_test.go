package service

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/erazemk/evidenca/internal/auth"
	"github.com/erazemk/evidenca/internal/db"
	"github.com/erazemk/evidenca/internal/model"
	"github.com/erazemk/evidenca/internal/store"
)

type fixture struct {
	db        *sqlx.DB
	users     *Users
	items     *Items
	ownership *Ownership
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := db.NewTestDB(t)
	return &fixture{
		db:        database,
		users:     NewUsers(database, &auth.BcryptHasher{Cost: bcrypt.MinCost}),
		items:     NewItems(database),
		ownership: NewOwnership(database),
	}
}

func (f *fixture) user(t *testing.T, email string) *model.User {
	t.Helper()
	u, err := f.users.CreateUser(context.Background(), email, "password")
	require.NoError(t, err)
	return u
}

func (f *fixture) item(t *testing.T, title string, ownerID int64) *model.Item {
	t.Helper()
	item, err := f.items.CreateItem(context.Background(), title, "", ownerID)
	require.NoError(t, err)
	return item
}

func (f *fixture) history(t *testing.T, itemID int64) []model.ItemHistory {
	t.Helper()
	h, err := store.ListItemHistory(context.Background(), f.db, itemID)
	require.NoError(t, err)
	return h
}
