package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripBag records that a bag is taken on a trip.
type TripBag struct {
	TripID    uuid.UUID
	BagID     uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
