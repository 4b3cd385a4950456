package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripItem records that an item is needed for a trip, independent of which bag it goes in.
type TripItem struct {
	TripID    uuid.UUID
	ItemID    uuid.UUID
	Quantity  int
	Status    ItemStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TripItemDetail is a TripItem with its item joined in.
type TripItemDetail struct {
	TripItem
	Item Item
}

// TripItemPatch carries the fields of a partial trip item update.
// ItemID moves the entry to a different item.
type TripItemPatch struct {
	ItemID   *uuid.UUID
	Quantity *int
	Status   *ItemStatus
}

// Apply returns a copy of ti with every non-nil patch field written over it.
func (p TripItemPatch) Apply(ti TripItem) TripItem {
	if p.ItemID != nil {
		ti.ItemID = *p.ItemID
	}
	if p.Quantity != nil {
		ti.Quantity = *p.Quantity
	}
	if p.Status != nil {
		ti.Status = *p.Status
	}
	return ti
}

// DefaultQuantity and DefaultStatus apply when a trip item or packing entry
// is created without them.
const (
	DefaultQuantity            = 1
	DefaultStatus   ItemStatus = StatusUnpacked
)
