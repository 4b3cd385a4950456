package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemCategory groups packable items.
type ItemCategory string

const (
	CategoryClothing    ItemCategory = "CLOTHING"
	CategoryElectronics ItemCategory = "ELECTRONICS"
	CategoryToiletries  ItemCategory = "TOILETRIES"
	CategoryDocuments   ItemCategory = "DOCUMENTS"
	CategoryMedication  ItemCategory = "MEDICATION"
	CategoryAccessories ItemCategory = "ACCESSORIES"
	CategoryOther       ItemCategory = "OTHER"
)

// Valid reports whether c is one of the known categories.
func (c ItemCategory) Valid() bool {
	switch c {
	case CategoryClothing, CategoryElectronics, CategoryToiletries, CategoryDocuments,
		CategoryMedication, CategoryAccessories, CategoryOther:
		return true
	}
	return false
}

// ItemStatus tracks whether an item has been packed for a trip.
type ItemStatus string

const (
	StatusUnpacked ItemStatus = "UNPACKED"
	StatusPacked   ItemStatus = "PACKED"
	StatusToBuy    ItemStatus = "TO_BUY"
)

// Valid reports whether s is one of the known statuses.
func (s ItemStatus) Valid() bool {
	switch s {
	case StatusUnpacked, StatusPacked, StatusToBuy:
		return true
	}
	return false
}

// Item is a packable thing. Items are global templates shared by all trips.
type Item struct {
	ID        uuid.UUID
	Name      string
	Category  ItemCategory
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemPatch carries the fields of a partial item update.
type ItemPatch struct {
	Name     *string
	Category *ItemCategory
}

// Apply returns a copy of i with every non-nil patch field written over it.
func (p ItemPatch) Apply(i Item) Item {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.Category != nil {
		i.Category = *p.Category
	}
	return i
}
