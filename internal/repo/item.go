package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ricardofviana/trip-packer/internal/domain"
)

// ItemRepo defines the persistence operations for Items.
type ItemRepo interface {
	// Create inserts a new item. Returns domain.ErrConflict if the name is taken.
	Create(ctx context.Context, item domain.Item) (domain.Item, error)

	// GetByID returns domain.ErrNotFound if no item with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Item, error)

	// List returns one page of items ordered by category, then name.
	List(ctx context.Context, p domain.ListParams) ([]domain.Item, error)

	// Update overwrites name and category. Returns domain.ErrNotFound or domain.ErrConflict.
	Update(ctx context.Context, item domain.Item) (domain.Item, error)

	// Delete removes an item and its association rows. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgItemRepo is the Postgres implementation of ItemRepo.
type pgItemRepo struct {
	db db
}

// NewItemRepo constructs an ItemRepo backed by the provided db connection.
func NewItemRepo(db db) ItemRepo {
	return &pgItemRepo{db: db}
}

const itemColumns = `id, name, category, created_at, updated_at`

func (r *pgItemRepo) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	const q = `
		INSERT INTO items (name, category)
		VALUES (@name, @category)
		RETURNING ` + itemColumns

	args := pgx.NamedArgs{"name": item.Name, "category": string(item.Category)}
	result, err := scanItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Item{}, fmt.Errorf("repo.ItemRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgItemRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Item, error) {
	const q = `SELECT ` + itemColumns + ` FROM items WHERE id = @id`

	result, err := scanItem(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Item{}, fmt.Errorf("repo.ItemRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgItemRepo) List(ctx context.Context, p domain.ListParams) ([]domain.Item, error) {
	const q = `
		SELECT ` + itemColumns + `
		FROM items
		ORDER BY category, name
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Skip})
	if err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.List: %w", err)
	}
	items, err := collect(rows, scanItem)
	if err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.List: %w", err)
	}
	return items, nil
}

func (r *pgItemRepo) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	const q = `
		UPDATE items
		SET name       = @name,
		    category   = @category,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + itemColumns

	args := pgx.NamedArgs{"id": item.ID, "name": item.Name, "category": string(item.Category)}
	result, err := scanItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Item{}, fmt.Errorf("repo.ItemRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM items WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ItemRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItemRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanItem maps a single database row into a domain.Item.
func scanItem(s scanner) (domain.Item, error) {
	var (
		i        domain.Item
		id       pgtype.UUID
		category string
	)
	if err := s.Scan(&id, &i.Name, &category, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return domain.Item{}, mapError(err)
	}
	i.ID = fromPgUUID(id)
	i.Category = domain.ItemCategory(category)
	return i, nil
}
