package model

import "time"

// Item is a single tracked thing owned by exactly one user.
type Item struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description,omitempty" db:"description"`
	Status      ItemStatus `json:"status,omitempty" db:"status"`
	OwnerID     int64      `json:"owner_id" db:"owner_id"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// ItemStatus is the lifecycle state of an item. The zero value means the
// status has not been set yet.
type ItemStatus string

// Item statuses.
const (
	ItemStatusNew      ItemStatus = "NEW"
	ItemStatusApproved ItemStatus = "APPROVED"
	ItemStatusEOL      ItemStatus = "EOL"
)

// ItemStatuses lists every settable status.
var ItemStatuses = []ItemStatus{ItemStatusNew, ItemStatusApproved, ItemStatusEOL}

// Valid reports whether s is one of the settable statuses.
func (s ItemStatus) Valid() bool {
	switch s {
	case ItemStatusNew, ItemStatusApproved, ItemStatusEOL:
		return true
	}
	return false
}
