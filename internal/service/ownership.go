package service

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/erazemk/evidenca/internal/model"
	"github.com/erazemk/evidenca/internal/store"
)

// Ownership moves items between owners and changes their status, recording
// every change in the item's history.
type Ownership struct {
	db *sqlx.DB
}

// NewOwnership returns an ownership service.
func NewOwnership(db *sqlx.DB) *Ownership {
	return &Ownership{db: db}
}

// Reassignment is the outcome of ReassignItem.
type Reassignment struct {
	Item       *model.Item
	OldOwnerID int64
}

// ReassignItem hands an item to newOwnerID and appends (old, new) to its
// history. Both lookups happen before any write, and the owner update and
// history row commit together or not at all. Reassigning to the current
// owner is allowed and still recorded.
func (s *Ownership) ReassignItem(ctx context.Context, itemID, newOwnerID int64) (*Reassignment, error) {
	var result Reassignment
	err := store.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		item, err := getItem(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if _, err := getUser(ctx, tx, newOwnerID); err != nil {
			return err
		}

		result.OldOwnerID = item.OwnerID

		if err := store.UpdateItemOwner(ctx, tx, itemID, newOwnerID); err != nil {
			return err
		}
		if _, err := store.AddReassignment(ctx, tx, itemID, result.OldOwnerID, newOwnerID); err != nil {
			return err
		}

		result.Item, err = store.GetItem(ctx, tx, itemID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ChangeItemStatus sets an item's status and appends it to the history.
// Any status may replace any other.
func (s *Ownership) ChangeItemStatus(ctx context.Context, itemID int64, status model.ItemStatus) (*model.Item, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w %q", ErrInvalidStatus, status)
	}

	var updated *model.Item
	err := store.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if _, err := getItem(ctx, tx, itemID); err != nil {
			return err
		}

		if err := store.UpdateItemStatus(ctx, tx, itemID, status); err != nil {
			return err
		}
		if _, err := store.AddStatusChange(ctx, tx, itemID, status); err != nil {
			return err
		}

		var err error
		updated, err = store.GetItem(ctx, tx, itemID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// History returns an item's history in the order it was recorded.
func (s *Ownership) History(ctx context.Context, itemID int64) ([]model.ItemHistory, error) {
	if _, err := getItem(ctx, s.db, itemID); err != nil {
		return nil, err
	}
	return store.ListItemHistory(ctx, s.db, itemID)
}
