package model

import "time"

// ItemHistory is one append-only fact about an item: either an owner
// reassignment (OldOwnerID and NewOwnerID set) or a status change (Status set).
type ItemHistory struct {
	ID         int64      `json:"id" db:"id"`
	ItemID     int64      `json:"item_id" db:"item_id"`
	OldOwnerID *int64     `json:"old_owner_id,omitempty" db:"old_owner_id"`
	NewOwnerID *int64     `json:"new_owner_id,omitempty" db:"new_owner_id"`
	Status     ItemStatus `json:"status,omitempty" db:"status"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// History event kinds.
const (
	HistoryKindReassignment = "reassignment"
	HistoryKindStatus       = "status"
)

// Kind returns which of the two event shapes the row holds.
func (h ItemHistory) Kind() string {
	if h.NewOwnerID != nil {
		return HistoryKindReassignment
	}
	return HistoryKindStatus
}
