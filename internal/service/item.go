package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ricardofviana/trip-packer/internal/domain"
	"github.com/ricardofviana/trip-packer/internal/repo"
)

const itemNameTaken = "An item with this name already exists"

// ItemService implements business logic for Item operations.
type ItemService struct {
	store repo.Store
}

// NewItemService constructs an ItemService backed by the provided Store.
func NewItemService(store repo.Store) *ItemService {
	return &ItemService{store: store}
}

func (s *ItemService) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	if err := validateItem(item); err != nil {
		return domain.Item{}, err
	}
	var result domain.Item
	err := s.store.WithinTx(ctx, func(r repo.Repos) error {
		var err error
		result, err = r.Items.Create(ctx, item)
		return withDetail(err, domain.ErrConflict, itemNameTaken)
	})
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns the item with the given id, or a not-found error naming it.
func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (domain.Item, error) {
	item, err := requireItem(ctx, s.store.Repos(), id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.GetByID: %w", err)
	}
	return item, nil
}

func (s *ItemService) List(ctx context.Context, p domain.ListParams) ([]domain.Item, error) {
	items, err := s.store.Repos().Items.List(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("service.ItemService.List: %w", err)
	}
	if items == nil {
		return []domain.Item{}, nil
	}
	return items, nil
}

func (s *ItemService) Update(ctx context.Context, id uuid.UUID, patch domain.ItemPatch) (domain.Item, error) {
	var result domain.Item
	err := s.store.WithinTx(ctx, func(r repo.Repos) error {
		current, err := requireItem(ctx, r, id)
		if err != nil {
			return err
		}
		updated := patch.Apply(current)
		if err := validateItem(updated); err != nil {
			return err
		}
		result, err = r.Items.Update(ctx, updated)
		return withDetail(err, domain.ErrConflict, itemNameTaken)
	})
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.Update: %w", err)
	}
	return result, nil
}

func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.WithinTx(ctx, func(r repo.Repos) error {
		err := r.Items.Delete(ctx, id)
		return withDetail(err, domain.ErrNotFound, "Item with id %s not found", id)
	})
	if err != nil {
		return fmt.Errorf("service.ItemService.Delete: %w", err)
	}
	return nil
}
