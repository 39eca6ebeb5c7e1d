package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/erazemk/evidenca/internal/model"
)

const itemColumns = `id, title, COALESCE(description, '') AS description,
	COALESCE(status, '') AS status, owner_id, created_at, updated_at`

// CreateItem creates a new item with no status. An empty description is
// stored as NULL.
func CreateItem(ctx context.Context, q sqlx.ExtContext, title, description string, ownerID int64) (*model.Item, error) {
	id, err := insertReturningID(ctx, q,
		`INSERT INTO items (title, description, owner_id) VALUES (?, ?, ?)`,
		title, sql.NullString{String: description, Valid: description != ""}, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	return GetItem(ctx, q, id)
}

// GetItem returns an item by ID.
func GetItem(ctx context.Context, q sqlx.ExtContext, id int64) (*model.Item, error) {
	item := &model.Item{}
	err := sqlx.GetContext(ctx, q, item,
		q.Rebind(`SELECT `+itemColumns+` FROM items WHERE id = ?`), id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListItems returns items ordered by ID, optionally filtered by status.
func ListItems(ctx context.Context, q sqlx.ExtContext, status model.ItemStatus) ([]model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items`
	var args []any

	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY id`

	var items []model.Item
	if err := sqlx.SelectContext(ctx, q, &items, q.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	return items, nil
}

// ListItemsByOwner returns the items currently owned by a user.
func ListItemsByOwner(ctx context.Context, q sqlx.ExtContext, ownerID int64) ([]model.Item, error) {
	var items []model.Item
	err := sqlx.SelectContext(ctx, q, &items,
		q.Rebind(`SELECT `+itemColumns+` FROM items WHERE owner_id = ? ORDER BY id`), ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items by owner: %w", err)
	}
	return items, nil
}

// UpdateItemOwner sets an item's owner.
func UpdateItemOwner(ctx context.Context, q sqlx.ExtContext, id, ownerID int64) error {
	return updateItem(ctx, q, "updating item owner",
		`UPDATE items SET owner_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		ownerID, id,
	)
}

// UpdateItemStatus sets an item's status.
func UpdateItemStatus(ctx context.Context, q sqlx.ExtContext, id int64, status model.ItemStatus) error {
	return updateItem(ctx, q, "updating item status",
		`UPDATE items SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		status, id,
	)
}

func updateItem(ctx context.Context, q sqlx.ExtContext, op, query string, args ...any) error {
	result, err := q.ExecContext(ctx, q.Rebind(query), args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
