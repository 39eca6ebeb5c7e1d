package store

import (
	"context"
	"testing"

	"github.com/erazemk/evidenca/internal/db"
	"github.com/erazemk/evidenca/internal/model"
)

func TestItemHistoryInInsertionOrder(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	alice, _ := CreateUser(ctx, database, "alice@x.com", "hash")
	bob, _ := CreateUser(ctx, database, "bob@x.com", "hash")
	item, _ := CreateItem(ctx, database, "Widget", "", alice.ID)

	if _, err := AddReassignment(ctx, database, item.ID, alice.ID, bob.ID); err != nil {
		t.Fatalf("AddReassignment: %v", err)
	}
	if _, err := AddStatusChange(ctx, database, item.ID, model.ItemStatusApproved); err != nil {
		t.Fatalf("AddStatusChange: %v", err)
	}

	history, err := ListItemHistory(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("ListItemHistory: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 history rows, got %d", len(history))
	}

	first := history[0]
	if first.Kind() != model.HistoryKindReassignment {
		t.Errorf("expected first row to be a reassignment, got %q", first.Kind())
	}
	if first.OldOwnerID == nil || *first.OldOwnerID != alice.ID {
		t.Errorf("expected old owner %d, got %v", alice.ID, first.OldOwnerID)
	}
	if first.NewOwnerID == nil || *first.NewOwnerID != bob.ID {
		t.Errorf("expected new owner %d, got %v", bob.ID, first.NewOwnerID)
	}
	if first.Status != "" {
		t.Errorf("expected no status on reassignment row, got %q", first.Status)
	}

	second := history[1]
	if second.Kind() != model.HistoryKindStatus {
		t.Errorf("expected second row to be a status change, got %q", second.Kind())
	}
	if second.Status != model.ItemStatusApproved {
		t.Errorf("expected status APPROVED, got %q", second.Status)
	}
	if second.OldOwnerID != nil || second.NewOwnerID != nil {
		t.Errorf("expected no owners on status row, got %v/%v", second.OldOwnerID, second.NewOwnerID)
	}
	if second.CreatedAt.IsZero() {
		t.Error("expected timestamp on history row")
	}
}

func TestItemHistoryIsPerItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	owner, _ := CreateUser(ctx, database, "a@x.com", "hash")
	item1, _ := CreateItem(ctx, database, "Widget", "", owner.ID)
	item2, _ := CreateItem(ctx, database, "Gadget", "", owner.ID)

	AddStatusChange(ctx, database, item1.ID, model.ItemStatusNew)
	AddStatusChange(ctx, database, item2.ID, model.ItemStatusNew)
	AddStatusChange(ctx, database, item2.ID, model.ItemStatusEOL)

	h1, _ := ListItemHistory(ctx, database, item1.ID)
	if len(h1) != 1 {
		t.Errorf("expected 1 history row for item1, got %d", len(h1))
	}

	h2, _ := ListItemHistory(ctx, database, item2.ID)
	if len(h2) != 2 {
		t.Errorf("expected 2 history rows for item2, got %d", len(h2))
	}
}

func TestAddReassignmentMissingUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	owner, _ := CreateUser(ctx, database, "a@x.com", "hash")
	item, _ := CreateItem(ctx, database, "Widget", "", owner.ID)

	if _, err := AddReassignment(ctx, database, item.ID, owner.ID, 999); err == nil {
		t.Error("expected foreign key violation for missing new owner")
	}
}
