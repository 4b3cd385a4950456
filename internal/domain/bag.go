package domain

import (
	"time"

	"github.com/google/uuid"
)

// BagType classifies a piece of luggage.
type BagType string

const (
	BagBackpack      BagType = "BACKPACK"
	BagCarryOn       BagType = "CARRY_ON"
	BagCheckedMedium BagType = "CHECKED_MEDIUM"
	BagCheckedLarge  BagType = "CHECKED_LARGE"
)

// Valid reports whether t is one of the known bag types.
func (t BagType) Valid() bool {
	switch t {
	case BagBackpack, BagCarryOn, BagCheckedMedium, BagCheckedLarge:
		return true
	}
	return false
}

// Bag is a piece of luggage. Bags are global and can be taken on many trips.
type Bag struct {
	ID        uuid.UUID
	Name      string
	Type      BagType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BagPatch carries the fields of a partial bag update.
type BagPatch struct {
	Name *string
	Type *BagType
}

// Apply returns a copy of b with every non-nil patch field written over it.
func (p BagPatch) Apply(b Bag) Bag {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Type != nil {
		b.Type = *p.Type
	}
	return b
}
