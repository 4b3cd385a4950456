package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ricardofviana/trip-packer/internal/domain"
	"github.com/ricardofviana/trip-packer/internal/repo"
)

const bagNameTaken = "A bag with this name already exists"

// BagService implements business logic for Bag operations.
type BagService struct {
	store repo.Store
}

// NewBagService constructs a BagService backed by the provided Store.
func NewBagService(store repo.Store) *BagService {
	return &BagService{store: store}
}

// Create validates and persists a new bag.
func (s *BagService) Create(ctx context.Context, bag domain.Bag) (domain.Bag, error) {
	if err := validateBag(bag); err != nil {
		return domain.Bag{}, err
	}
	var result domain.Bag
	err := s.store.WithinTx(ctx, func(r repo.Repos) error {
		var err error
		result, err = r.Bags.Create(ctx, bag)
		return withDetail(err, domain.ErrConflict, bagNameTaken)
	})
	if err != nil {
		return domain.Bag{}, fmt.Errorf("service.BagService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns the bag with the given id, or a not-found error naming it.
func (s *BagService) GetByID(ctx context.Context, id uuid.UUID) (domain.Bag, error) {
	bag, err := requireBag(ctx, s.store.Repos(), id)
	if err != nil {
		return domain.Bag{}, fmt.Errorf("service.BagService.GetByID: %w", err)
	}
	return bag, nil
}

// List returns one page of bags ordered by name.
func (s *BagService) List(ctx context.Context, p domain.ListParams) ([]domain.Bag, error) {
	bags, err := s.store.Repos().Bags.List(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("service.BagService.List: %w", err)
	}
	if bags == nil {
		return []domain.Bag{}, nil
	}
	return bags, nil
}

// Update merges patch into the stored bag, validates the result, and persists it.
func (s *BagService) Update(ctx context.Context, id uuid.UUID, patch domain.BagPatch) (domain.Bag, error) {
	var result domain.Bag
	err := s.store.WithinTx(ctx, func(r repo.Repos) error {
		current, err := requireBag(ctx, r, id)
		if err != nil {
			return err
		}
		updated := patch.Apply(current)
		if err := validateBag(updated); err != nil {
			return err
		}
		result, err = r.Bags.Update(ctx, updated)
		return withDetail(err, domain.ErrConflict, bagNameTaken)
	})
	if err != nil {
		return domain.Bag{}, fmt.Errorf("service.BagService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a bag and every trip assignment and packing entry using it.
func (s *BagService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.WithinTx(ctx, func(r repo.Repos) error {
		err := r.Bags.Delete(ctx, id)
		return withDetail(err, domain.ErrNotFound, "Bag with id %s not found", id)
	})
	if err != nil {
		return fmt.Errorf("service.BagService.Delete: %w", err)
	}
	return nil
}
