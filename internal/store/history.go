package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/erazemk/evidenca/internal/model"
)

const historyColumns = `id, item_id, old_owner_id, new_owner_id,
	COALESCE(status, '') AS status, created_at`

// AddReassignment appends an owner change to an item's history.
func AddReassignment(ctx context.Context, q sqlx.ExtContext, itemID, oldOwnerID, newOwnerID int64) (int64, error) {
	id, err := insertReturningID(ctx, q,
		`INSERT INTO item_history (item_id, old_owner_id, new_owner_id) VALUES (?, ?, ?)`,
		itemID, oldOwnerID, newOwnerID,
	)
	if err != nil {
		return 0, fmt.Errorf("recording reassignment: %w", err)
	}
	return id, nil
}

// AddStatusChange appends a status change to an item's history.
func AddStatusChange(ctx context.Context, q sqlx.ExtContext, itemID int64, status model.ItemStatus) (int64, error) {
	id, err := insertReturningID(ctx, q,
		`INSERT INTO item_history (item_id, status) VALUES (?, ?)`,
		itemID, status,
	)
	if err != nil {
		return 0, fmt.Errorf("recording status change: %w", err)
	}
	return id, nil
}

// ListItemHistory returns an item's history in insertion order.
func ListItemHistory(ctx context.Context, q sqlx.ExtContext, itemID int64) ([]model.ItemHistory, error) {
	var history []model.ItemHistory
	err := sqlx.SelectContext(ctx, q, &history,
		q.Rebind(`SELECT `+historyColumns+` FROM item_history WHERE item_id = ? ORDER BY id`), itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing item history: %w", err)
	}
	return history, nil
}
