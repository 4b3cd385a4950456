package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ricardofviana/trip-packer/internal/domain"
	"github.com/ricardofviana/trip-packer/internal/repo"
)

// TripBagService manages which bags are taken on which trip.
type TripBagService struct {
	store repo.Store
}

// NewTripBagService constructs a TripBagService backed by the provided Store.
func NewTripBagService(store repo.Store) *TripBagService {
	return &TripBagService{store: store}
}

// List returns the bags assigned to a trip.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripBagService) List(ctx context.Context, tripID uuid.UUID) ([]domain.Bag, error) {
	r := s.store.Repos()
	if _, err := requireTrip(ctx, r, tripID); err != nil {
		return nil, fmt.Errorf("service.TripBagService.List: %w", err)
	}
	bags, err := r.Bags.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.TripBagService.List: %w", err)
	}
	if bags == nil {
		return []domain.Bag{}, nil
	}
	return bags, nil
}

// Add assigns a bag to a trip. Both must exist and must not already be linked.
func (s *TripBagService) Add(ctx context.Context, tripID, bagID uuid.UUID) (domain.TripBag, error) {
	var result domain.TripBag
	err := s.store.WithinTx(ctx, func(r repo.Repos) error {
		if _, err := requireTrip(ctx, r, tripID); err != nil {
			return err
		}
		if _, err := requireBag(ctx, r, bagID); err != nil {
			return err
		}
		linked, err := found(r.TripBags.Get(ctx, tripID, bagID))
		if err != nil {
			return err
		}
		if linked {
			return domain.Conflictf("Bag with id %s is already associated with trip %s", bagID, tripID)
		}
		result, err = r.TripBags.Create(ctx, domain.TripBag{TripID: tripID, BagID: bagID})
		return withDetail(err, domain.ErrConflict, "Bag with id %s is already associated with trip %s", bagID, tripID)
	})
	if err != nil {
		return domain.TripBag{}, fmt.Errorf("service.TripBagService.Add: %w", err)
	}
	return result, nil
}

// Remove unassigns a bag from a trip. The bag itself is kept.
func (s *TripBagService) Remove(ctx context.Context, tripID, bagID uuid.UUID) error {
	err := s.store.WithinTx(ctx, func(r repo.Repos) error {
		if _, err := requireTrip(ctx, r, tripID); err != nil {
			return err
		}
		err := r.TripBags.Delete(ctx, tripID, bagID)
		return withDetail(err, domain.ErrNotFound, "Bag with id %s is not associated with trip %s", bagID, tripID)
	})
	if err != nil {
		return fmt.Errorf("service.TripBagService.Remove: %w", err)
	}
	return nil
}
