package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ricardofviana/trip-packer/internal/domain"
	"github.com/ricardofviana/trip-packer/internal/repo"
)

const packingTaken = "This packing entry already exists"

// PackingService manages which item goes into which bag for which trip.
type PackingService struct {
	store repo.Store
}

// NewPackingService constructs a PackingService backed by the provided Store.
func NewPackingService(store repo.Store) *PackingService {
	return &PackingService{store: store}
}

func packingMissing(err error, key domain.PackingKey) error {
	return withDetail(err, domain.ErrNotFound,
		"Packing entry for item %s in trip %s in bag %s not found", key.ItemID, key.TripID, key.BagID)
}

// Create records an item packed into a bag for a trip.
// Existence is checked in the order trip, item, bag, so the error names the
// first missing entity. Returns domain.ErrConflict for a duplicate triple.
func (s *PackingService) Create(ctx context.Context, p domain.Packing) (domain.Packing, error) {
	if err := validateAmount(p.Quantity, p.Status); err != nil {
		return domain.Packing{}, err
	}
	var result domain.Packing
	err := s.store.WithinTx(ctx, func(r repo.Repos) error {
		if _, err := requireTrip(ctx, r, p.TripID); err != nil {
			return err
		}
		if _, err := requireItem(ctx, r, p.ItemID); err != nil {
			return err
		}
		if _, err := requireBag(ctx, r, p.BagID); err != nil {
			return err
		}
		exists, err := found(r.Packings.Get(ctx, p.PackingKey))
		if err != nil {
			return err
		}
		if exists {
			return domain.Conflictf(packingTaken)
		}
		result, err = r.Packings.Create(ctx, p)
		return withDetail(err, domain.ErrConflict, packingTaken)
	})
	if err != nil {
		return domain.Packing{}, fmt.Errorf("service.PackingService.Create: %w", err)
	}
	return result, nil
}

// List returns a trip's packing list with items and bags joined in.
func (s *PackingService) List(ctx context.Context, tripID uuid.UUID) ([]domain.PackingDetail, error) {
	r := s.store.Repos()
	if _, err := requireTrip(ctx, r, tripID); err != nil {
		return nil, fmt.Errorf("service.PackingService.List: %w", err)
	}
	list, err := r.Packings.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.PackingService.List: %w", err)
	}
	if list == nil {
		return []domain.PackingDetail{}, nil
	}
	return list, nil
}

// Update merges patch into the entry at key.
// When the patch moves the entry to another bag, that bag must exist and the
// new triple must be free.
func (s *PackingService) Update(ctx context.Context, key domain.PackingKey, patch domain.PackingPatch) (domain.Packing, error) {
	var result domain.Packing
	err := s.store.WithinTx(ctx, func(r repo.Repos) error {
		if _, err := requireTrip(ctx, r, key.TripID); err != nil {
			return err
		}
		current, err := r.Packings.Get(ctx, key)
		if err != nil {
			return packingMissing(err, key)
		}
		updated := patch.Apply(current)
		if err := validateAmount(updated.Quantity, updated.Status); err != nil {
			return err
		}
		if updated.BagID != key.BagID {
			if _, err := requireBag(ctx, r, updated.BagID); err != nil {
				return err
			}
			taken, err := found(r.Packings.Get(ctx, updated.PackingKey))
			if err != nil {
				return err
			}
			if taken {
				return domain.Conflictf(packingTaken)
			}
		}
		result, err = r.Packings.Update(ctx, key, updated)
		if err != nil {
			return withDetail(packingMissing(err, key), domain.ErrConflict, packingTaken)
		}
		return nil
	})
	if err != nil {
		return domain.Packing{}, fmt.Errorf("service.PackingService.Update: %w", err)
	}
	return result, nil
}

// Delete removes exactly the entry at key. The same item in other bags is untouched.
func (s *PackingService) Delete(ctx context.Context, key domain.PackingKey) error {
	err := s.store.WithinTx(ctx, func(r repo.Repos) error {
		if _, err := requireTrip(ctx, r, key.TripID); err != nil {
			return err
		}
		return packingMissing(r.Packings.Delete(ctx, key), key)
	})
	if err != nil {
		return fmt.Errorf("service.PackingService.Delete: %w", err)
	}
	return nil
}

// ListByBag returns what is stored in a bag. A non-nil tripID restricts the
// result to that trip, which must exist.
func (s *PackingService) ListByBag(ctx context.Context, bagID uuid.UUID, tripID *uuid.UUID) ([]domain.BagContent, error) {
	r := s.store.Repos()
	if _, err := requireBag(ctx, r, bagID); err != nil {
		return nil, fmt.Errorf("service.PackingService.ListByBag: %w", err)
	}
	if tripID != nil {
		if _, err := requireTrip(ctx, r, *tripID); err != nil {
			return nil, fmt.Errorf("service.PackingService.ListByBag: %w", err)
		}
	}
	contents, err := r.Packings.ListByBag(ctx, bagID, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.PackingService.ListByBag: %w", err)
	}
	if contents == nil {
		return []domain.BagContent{}, nil
	}
	return contents, nil
}
