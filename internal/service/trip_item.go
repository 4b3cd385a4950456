package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ricardofviana/trip-packer/internal/domain"
	"github.com/ricardofviana/trip-packer/internal/repo"
)

const tripItemTaken = "This trip item entry already exists"

// TripItemService manages the items a trip needs, independent of bags.
type TripItemService struct {
	store repo.Store
}

// NewTripItemService constructs a TripItemService backed by the provided Store.
func NewTripItemService(store repo.Store) *TripItemService {
	return &TripItemService{store: store}
}

func tripItemMissing(err error, tripID, itemID uuid.UUID) error {
	return withDetail(err, domain.ErrNotFound, "Trip item entry for item %s in trip %s not found", itemID, tripID)
}

// Create adds an item to a trip. The trip is checked before the item.
// Returns domain.ErrConflict if the item is already on the trip.
func (s *TripItemService) Create(ctx context.Context, ti domain.TripItem) (domain.TripItem, error) {
	if err := validateAmount(ti.Quantity, ti.Status); err != nil {
		return domain.TripItem{}, err
	}
	var result domain.TripItem
	err := s.store.WithinTx(ctx, func(r repo.Repos) error {
		if _, err := requireTrip(ctx, r, ti.TripID); err != nil {
			return err
		}
		if _, err := requireItem(ctx, r, ti.ItemID); err != nil {
			return err
		}
		exists, err := found(r.TripItems.Get(ctx, ti.TripID, ti.ItemID))
		if err != nil {
			return err
		}
		if exists {
			return domain.Conflictf(tripItemTaken)
		}
		result, err = r.TripItems.Create(ctx, ti)
		return withDetail(err, domain.ErrConflict, tripItemTaken)
	})
	if err != nil {
		return domain.TripItem{}, fmt.Errorf("service.TripItemService.Create: %w", err)
	}
	return result, nil
}

// List returns a trip's items with item details joined in.
func (s *TripItemService) List(ctx context.Context, tripID uuid.UUID) ([]domain.TripItemDetail, error) {
	r := s.store.Repos()
	if _, err := requireTrip(ctx, r, tripID); err != nil {
		return nil, fmt.Errorf("service.TripItemService.List: %w", err)
	}
	items, err := r.TripItems.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.TripItemService.List: %w", err)
	}
	if items == nil {
		return []domain.TripItemDetail{}, nil
	}
	return items, nil
}

// Update merges patch into the trip item keyed by (tripID, itemID).
// When the patch moves the entry to another item, that item must exist and
// must not already be on the trip.
func (s *TripItemService) Update(ctx context.Context, tripID, itemID uuid.UUID, patch domain.TripItemPatch) (domain.TripItem, error) {
	var result domain.TripItem
	err := s.store.WithinTx(ctx, func(r repo.Repos) error {
		if _, err := requireTrip(ctx, r, tripID); err != nil {
			return err
		}
		current, err := r.TripItems.Get(ctx, tripID, itemID)
		if err != nil {
			return tripItemMissing(err, tripID, itemID)
		}
		updated := patch.Apply(current)
		if err := validateAmount(updated.Quantity, updated.Status); err != nil {
			return err
		}
		if updated.ItemID != itemID {
			if _, err := requireItem(ctx, r, updated.ItemID); err != nil {
				return err
			}
			taken, err := found(r.TripItems.Get(ctx, tripID, updated.ItemID))
			if err != nil {
				return err
			}
			if taken {
				return domain.Conflictf(tripItemTaken)
			}
		}
		result, err = r.TripItems.Update(ctx, itemID, updated)
		if err != nil {
			return withDetail(tripItemMissing(err, tripID, itemID), domain.ErrConflict, tripItemTaken)
		}
		return nil
	})
	if err != nil {
		return domain.TripItem{}, fmt.Errorf("service.TripItemService.Update: %w", err)
	}
	return result, nil
}

// Delete removes one item from a trip.
func (s *TripItemService) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	err := s.store.WithinTx(ctx, func(r repo.Repos) error {
		if _, err := requireTrip(ctx, r, tripID); err != nil {
			return err
		}
		return tripItemMissing(r.TripItems.Delete(ctx, tripID, itemID), tripID, itemID)
	})
	if err != nil {
		return fmt.Errorf("service.TripItemService.Delete: %w", err)
	}
	return nil
}
