package domain

import (
	"time"

	"github.com/google/uuid"
)

// PackingKey identifies a packing entry: one item in one bag for one trip.
type PackingKey struct {
	TripID uuid.UUID
	ItemID uuid.UUID
	BagID  uuid.UUID
}

// Packing records that an item is packed (or to be packed) into a bag for a trip.
type Packing struct {
	PackingKey
	Quantity  int
	Status    ItemStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PackingDetail is a Packing with its item and bag joined in.
type PackingDetail struct {
	Packing
	Item Item
	Bag  Bag
}

// BagContent is a packing entry seen from the bag side: what is in the bag,
// for which trip, and whether it has been packed.
type BagContent struct {
	Packing
	Item Item
}

// IsPacked reports whether the entry has status PACKED.
func (c BagContent) IsPacked() bool {
	return c.Status == StatusPacked
}

// PackingPatch carries the fields of a partial packing update.
// BagID moves the entry to a different bag within the same trip.
type PackingPatch struct {
	BagID    *uuid.UUID
	Quantity *int
	Status   *ItemStatus
}

// Apply returns a copy of p with every non-nil patch field written over it.
func (pp PackingPatch) Apply(p Packing) Packing {
	if pp.BagID != nil {
		p.BagID = *pp.BagID
	}
	if pp.Quantity != nil {
		p.Quantity = *pp.Quantity
	}
	if pp.Status != nil {
		p.Status = *pp.Status
	}
	return p
}
