package models

import "time"

// Adjustment types recorded in the activity log.
const (
	ActivityAdded    = "added"
	ActivityRemoved  = "removed"
	ActivityAdjusted = "adjusted"
)

// ActivityLog is one append-only record of a stock-affecting event.
// Entries are created exactly once, in the same transaction as the item
// mutation they describe, and are never updated or deleted.
type ActivityLog struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	ItemID    string    `json:"item"`
	ItemName  string    `json:"itemName"`
	Quantity  string    `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user"`
	UserName  string    `json:"userName"`
	Notes     string    `json:"notes,omitempty"`

	// OwnerID is the admin tenant the entry belongs to, inherited from the
	// item at creation time. It drives scoping and is not exposed.
	OwnerID string `json:"-"`
}
