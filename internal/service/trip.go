package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ricardofviana/trip-packer/internal/domain"
	"github.com/ricardofviana/trip-packer/internal/repo"
)

const tripNameTaken = "A trip with this name already exists"

// TripService implements business logic for Trip operations.
type TripService struct {
	store repo.Store
}

// NewTripService constructs a TripService backed by the provided Store.
func NewTripService(store repo.Store) *TripService {
	return &TripService{store: store}
}

// Create validates and persists a new trip.
// Returns domain.ErrValidation for invalid input and domain.ErrConflict if the
// name is already taken.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	var result domain.Trip
	err := s.store.WithinTx(ctx, func(r repo.Repos) error {
		var err error
		result, err = r.Trips.Create(ctx, trip)
		return withDetail(err, domain.ErrConflict, tripNameTaken)
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := requireTrip(ctx, s.store.Repos(), id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// List returns one page of trips.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, p domain.ListParams) ([]domain.Trip, error) {
	trips, err := s.store.Repos().Trips.List(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Update merges patch into the stored trip, validates the result, and persists it.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Update(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error) {
	var result domain.Trip
	err := s.store.WithinTx(ctx, func(r repo.Repos) error {
		current, err := requireTrip(ctx, r, id)
		if err != nil {
			return err
		}
		updated := patch.Apply(current)
		if err := validateTrip(updated); err != nil {
			return err
		}
		result, err = r.Trips.Update(ctx, updated)
		return withDetail(err, domain.ErrConflict, tripNameTaken)
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID. Its association rows go with it.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.WithinTx(ctx, func(r repo.Repos) error {
		err := r.Trips.Delete(ctx, id)
		return withDetail(err, domain.ErrNotFound, "Trip with id %s not found", id)
	})
	if err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// Detail returns a trip with its bags and its trip items.
func (s *TripService) Detail(ctx context.Context, id uuid.UUID) (domain.TripDetail, error) {
	r := s.store.Repos()
	trip, err := requireTrip(ctx, r, id)
	if err != nil {
		return domain.TripDetail{}, fmt.Errorf("service.TripService.Detail: %w", err)
	}
	bags, err := r.Bags.ListByTrip(ctx, id)
	if err != nil {
		return domain.TripDetail{}, fmt.Errorf("service.TripService.Detail: %w", err)
	}
	items, err := r.TripItems.ListByTrip(ctx, id)
	if err != nil {
		return domain.TripDetail{}, fmt.Errorf("service.TripService.Detail: %w", err)
	}
	if bags == nil {
		bags = []domain.Bag{}
	}
	if items == nil {
		items = []domain.TripItemDetail{}
	}
	return domain.TripDetail{Trip: trip, Bags: bags, TripItems: items}, nil
}

// Overview counts a trip's packing entries by status.
func (s *TripService) Overview(ctx context.Context, id uuid.UUID) (domain.TripOverview, error) {
	r := s.store.Repos()
	if _, err := requireTrip(ctx, r, id); err != nil {
		return domain.TripOverview{}, fmt.Errorf("service.TripService.Overview: %w", err)
	}
	overview, err := r.Packings.CountByStatus(ctx, id)
	if err != nil {
		return domain.TripOverview{}, fmt.Errorf("service.TripService.Overview: %w", err)
	}
	return overview, nil
}
