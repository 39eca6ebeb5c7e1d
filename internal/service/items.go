package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/erazemk/evidenca/internal/model"
	"github.com/erazemk/evidenca/internal/store"
)

// Items creates and lists items.
type Items struct {
	db *sqlx.DB
}

// NewItems returns an item service.
func NewItems(db *sqlx.DB) *Items {
	return &Items{db: db}
}

// CreateItem creates an item owned by ownerID, with no status. The owner is
// checked in the same transaction as the insert.
func (s *Items) CreateItem(ctx context.Context, title, description string, ownerID int64) (*model.Item, error) {
	if strings.TrimSpace(title) == "" {
		return nil, invalidInput(fmt.Errorf("title required"))
	}

	var item *model.Item
	err := store.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if _, err := getUser(ctx, tx, ownerID); err != nil {
			return err
		}

		var err error
		item, err = store.CreateItem(ctx, tx, title, description, ownerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// GetItemByID returns an item or ErrItemNotFound.
func (s *Items) GetItemByID(ctx context.Context, id int64) (*model.Item, error) {
	return getItem(ctx, s.db, id)
}

// ListItems returns the items whose current status is status. An empty
// status returns every item.
func (s *Items) ListItems(ctx context.Context, status model.ItemStatus) ([]model.Item, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w %q", ErrInvalidStatus, status)
	}
	return store.ListItems(ctx, s.db, status)
}

// ItemsByOwner returns the items a user currently owns.
func (s *Items) ItemsByOwner(ctx context.Context, userID int64) ([]model.Item, error) {
	if _, err := getUser(ctx, s.db, userID); err != nil {
		return nil, err
	}
	return store.ListItemsByOwner(ctx, s.db, userID)
}

func getItem(ctx context.Context, q sqlx.ExtContext, id int64) (*model.Item, error) {
	item, err := store.GetItem(ctx, q, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	return item, err
}
