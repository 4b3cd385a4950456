package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ricardofviana/trip-packer/internal/domain"
)

// BagRepo defines the persistence operations for Bags.
type BagRepo interface {
	// Create inserts a new bag. Returns domain.ErrConflict if the name is taken.
	Create(ctx context.Context, bag domain.Bag) (domain.Bag, error)

	// GetByID returns domain.ErrNotFound if no bag with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Bag, error)

	// List returns one page of bags ordered by name.
	List(ctx context.Context, p domain.ListParams) ([]domain.Bag, error)

	// ListByTrip returns the bags assigned to a trip, ordered by name.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Bag, error)

	// Update overwrites name and type. Returns domain.ErrNotFound or domain.ErrConflict.
	Update(ctx context.Context, bag domain.Bag) (domain.Bag, error)

	// Delete removes a bag and its association rows. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgBagRepo is the Postgres implementation of BagRepo.
type pgBagRepo struct {
	db db
}

// NewBagRepo constructs a BagRepo backed by the provided db connection.
func NewBagRepo(db db) BagRepo {
	return &pgBagRepo{db: db}
}

const bagColumns = `id, name, type, created_at, updated_at`

func (r *pgBagRepo) Create(ctx context.Context, bag domain.Bag) (domain.Bag, error) {
	const q = `
		INSERT INTO bags (name, type)
		VALUES (@name, @type)
		RETURNING ` + bagColumns

	result, err := scanBag(r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": bag.Name, "type": string(bag.Type)}))
	if err != nil {
		return domain.Bag{}, fmt.Errorf("repo.BagRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgBagRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Bag, error) {
	const q = `SELECT ` + bagColumns + ` FROM bags WHERE id = @id`

	result, err := scanBag(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Bag{}, fmt.Errorf("repo.BagRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgBagRepo) List(ctx context.Context, p domain.ListParams) ([]domain.Bag, error) {
	const q = `
		SELECT ` + bagColumns + `
		FROM bags
		ORDER BY name
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Skip})
	if err != nil {
		return nil, fmt.Errorf("repo.BagRepo.List: %w", err)
	}
	bags, err := collect(rows, scanBag)
	if err != nil {
		return nil, fmt.Errorf("repo.BagRepo.List: %w", err)
	}
	return bags, nil
}

func (r *pgBagRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Bag, error) {
	const q = `
		SELECT b.id, b.name, b.type, b.created_at, b.updated_at
		FROM bags b
		JOIN trip_bags tb ON tb.bag_id = b.id
		WHERE tb.trip_id = @trip_id
		ORDER BY b.name`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.BagRepo.ListByTrip: %w", err)
	}
	bags, err := collect(rows, scanBag)
	if err != nil {
		return nil, fmt.Errorf("repo.BagRepo.ListByTrip: %w", err)
	}
	return bags, nil
}

func (r *pgBagRepo) Update(ctx context.Context, bag domain.Bag) (domain.Bag, error) {
	const q = `
		UPDATE bags
		SET name       = @name,
		    type       = @type,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + bagColumns

	args := pgx.NamedArgs{"id": bag.ID, "name": bag.Name, "type": string(bag.Type)}
	result, err := scanBag(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Bag{}, fmt.Errorf("repo.BagRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgBagRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM bags WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.BagRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.BagRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanBag maps a single database row into a domain.Bag.
func scanBag(s scanner) (domain.Bag, error) {
	var (
		b       domain.Bag
		id      pgtype.UUID
		bagType string
	)
	if err := s.Scan(&id, &b.Name, &bagType, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return domain.Bag{}, mapError(err)
	}
	b.ID = fromPgUUID(id)
	b.Type = domain.BagType(bagType)
	return b, nil
}
