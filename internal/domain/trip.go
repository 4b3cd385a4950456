// Package domain contains the core data types for the Trip Packer application.
// This package has no database or HTTP dependencies and is imported by every
// other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is a named travel event with a date range.
// Trip is the top-level aggregate; bags, trip items, and packing entries hang off it.
type Trip struct {
	ID        uuid.UUID
	Name      string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TripPatch carries the fields of a partial trip update.
// A nil field is left unchanged.
type TripPatch struct {
	Name      *string
	StartDate *time.Time
	EndDate   *time.Time
}

// Apply returns a copy of t with every non-nil patch field written over it.
func (p TripPatch) Apply(t Trip) Trip {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		t.EndDate = *p.EndDate
	}
	return t
}

// TripDetail is a trip together with the bags assigned to it and the items it needs.
type TripDetail struct {
	Trip
	Bags      []Bag
	TripItems []TripItemDetail
}

// TripOverview summarises the packing list of a trip by status.
type TripOverview struct {
	Total    int
	Packed   int
	Unpacked int
	ToBuy    int
}

// Count adds n packing entries with the given status to the overview.
func (o *TripOverview) Count(status ItemStatus, n int) {
	o.Total += n
	switch status {
	case StatusPacked:
		o.Packed += n
	case StatusUnpacked:
		o.Unpacked += n
	case StatusToBuy:
		o.ToBuy += n
	}
}
