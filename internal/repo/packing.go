package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ricardofviana/trip-packer/internal/domain"
)

// PackingRepo defines the persistence operations for the packings table.
// Every single-row operation is addressed by the full (trip, item, bag) key.
type PackingRepo interface {
	// Create inserts a packing entry. Returns domain.ErrConflict if the
	// (trip, item, bag) triple already exists.
	Create(ctx context.Context, p domain.Packing) (domain.Packing, error)

	// Get returns domain.ErrNotFound if no entry exists for key.
	Get(ctx context.Context, key domain.PackingKey) (domain.Packing, error)

	// ListByTrip returns every packing entry of a trip with item and bag
	// joined in, ordered by bag name, then item name.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.PackingDetail, error)

	// ListByBag returns the entries stored in a bag with their items joined in.
	// A nil tripID lists entries across all trips.
	ListByBag(ctx context.Context, bagID uuid.UUID, tripID *uuid.UUID) ([]domain.BagContent, error)

	// Update rewrites the row currently keyed by key with the values in p,
	// which may carry a different BagID.
	// Returns domain.ErrNotFound if no such row exists and domain.ErrConflict
	// if the new key is already taken.
	Update(ctx context.Context, key domain.PackingKey, p domain.Packing) (domain.Packing, error)

	// Delete removes exactly the row keyed by key. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, key domain.PackingKey) error

	// CountByStatus tallies a trip's packing entries by status.
	CountByStatus(ctx context.Context, tripID uuid.UUID) (domain.TripOverview, error)
}

// pgPackingRepo is the Postgres implementation of PackingRepo.
type pgPackingRepo struct {
	db db
}

// NewPackingRepo constructs a PackingRepo backed by the provided db connection.
func NewPackingRepo(db db) PackingRepo {
	return &pgPackingRepo{db: db}
}

const packingColumns = `trip_id, item_id, bag_id, quantity, status, created_at, updated_at`

func keyArgs(key domain.PackingKey) pgx.NamedArgs {
	return pgx.NamedArgs{"trip_id": key.TripID, "item_id": key.ItemID, "bag_id": key.BagID}
}

func (r *pgPackingRepo) Create(ctx context.Context, p domain.Packing) (domain.Packing, error) {
	const q = `
		INSERT INTO packings (trip_id, item_id, bag_id, quantity, status)
		VALUES (@trip_id, @item_id, @bag_id, @quantity, @status)
		RETURNING ` + packingColumns

	args := keyArgs(p.PackingKey)
	args["quantity"] = p.Quantity
	args["status"] = string(p.Status)

	result, err := scanPacking(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Packing{}, fmt.Errorf("repo.PackingRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgPackingRepo) Get(ctx context.Context, key domain.PackingKey) (domain.Packing, error) {
	const q = `
		SELECT ` + packingColumns + `
		FROM packings
		WHERE trip_id = @trip_id AND item_id = @item_id AND bag_id = @bag_id`

	result, err := scanPacking(r.db.QueryRow(ctx, q, keyArgs(key)))
	if err != nil {
		return domain.Packing{}, fmt.Errorf("repo.PackingRepo.Get: %w", err)
	}
	return result, nil
}

func (r *pgPackingRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.PackingDetail, error) {
	const q = `
		SELECT p.trip_id, p.item_id, p.bag_id, p.quantity, p.status, p.created_at, p.updated_at,
		       i.id, i.name, i.category, i.created_at, i.updated_at,
		       b.id, b.name, b.type, b.created_at, b.updated_at
		FROM packings p
		JOIN items i ON i.id = p.item_id
		JOIN bags b  ON b.id = p.bag_id
		WHERE p.trip_id = @trip_id
		ORDER BY b.name, i.name`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.PackingRepo.ListByTrip: %w", err)
	}
	details, err := collect(rows, scanPackingDetail)
	if err != nil {
		return nil, fmt.Errorf("repo.PackingRepo.ListByTrip: %w", err)
	}
	return details, nil
}

func (r *pgPackingRepo) ListByBag(ctx context.Context, bagID uuid.UUID, tripID *uuid.UUID) ([]domain.BagContent, error) {
	const q = `
		SELECT p.trip_id, p.item_id, p.bag_id, p.quantity, p.status, p.created_at, p.updated_at,
		       i.id, i.name, i.category, i.created_at, i.updated_at
		FROM packings p
		JOIN items i ON i.id = p.item_id
		WHERE p.bag_id = @bag_id
		  AND (@trip_id::uuid IS NULL OR p.trip_id = @trip_id::uuid)
		ORDER BY i.category, i.name`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"bag_id": bagID, "trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.PackingRepo.ListByBag: %w", err)
	}
	contents, err := collect(rows, scanBagContent)
	if err != nil {
		return nil, fmt.Errorf("repo.PackingRepo.ListByBag: %w", err)
	}
	return contents, nil
}

func (r *pgPackingRepo) Update(ctx context.Context, key domain.PackingKey, p domain.Packing) (domain.Packing, error) {
	const q = `
		UPDATE packings
		SET bag_id     = @new_bag_id,
		    quantity   = @quantity,
		    status     = @status,
		    updated_at = now()
		WHERE trip_id = @trip_id AND item_id = @item_id AND bag_id = @bag_id
		RETURNING ` + packingColumns

	args := keyArgs(key)
	args["new_bag_id"] = p.BagID
	args["quantity"] = p.Quantity
	args["status"] = string(p.Status)

	result, err := scanPacking(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Packing{}, fmt.Errorf("repo.PackingRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgPackingRepo) Delete(ctx context.Context, key domain.PackingKey) error {
	const q = `DELETE FROM packings WHERE trip_id = @trip_id AND item_id = @item_id AND bag_id = @bag_id`

	tag, err := r.db.Exec(ctx, q, keyArgs(key))
	if err != nil {
		return fmt.Errorf("repo.PackingRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PackingRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgPackingRepo) CountByStatus(ctx context.Context, tripID uuid.UUID) (domain.TripOverview, error) {
	const q = `
		SELECT status, count(*)
		FROM packings
		WHERE trip_id = @trip_id
		GROUP BY status`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return domain.TripOverview{}, fmt.Errorf("repo.PackingRepo.CountByStatus: %w", err)
	}
	defer rows.Close()

	var overview domain.TripOverview
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return domain.TripOverview{}, fmt.Errorf("repo.PackingRepo.CountByStatus: scan: %w", err)
		}
		overview.Count(domain.ItemStatus(status), n)
	}
	if err := rows.Err(); err != nil {
		return domain.TripOverview{}, fmt.Errorf("repo.PackingRepo.CountByStatus: rows: %w", err)
	}
	return overview, nil
}

func scanPacking(s scanner) (domain.Packing, error) {
	var (
		p                     domain.Packing
		tripID, itemID, bagID pgtype.UUID
		status                string
	)
	if err := s.Scan(&tripID, &itemID, &bagID, &p.Quantity, &status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.Packing{}, mapError(err)
	}
	p.TripID = fromPgUUID(tripID)
	p.ItemID = fromPgUUID(itemID)
	p.BagID = fromPgUUID(bagID)
	p.Status = domain.ItemStatus(status)
	return p, nil
}

func scanPackingDetail(s scanner) (domain.PackingDetail, error) {
	var (
		d                     domain.PackingDetail
		tripID, itemID, bagID pgtype.UUID
		joinedItem, joinedBag pgtype.UUID
		status, category, typ string
	)
	err := s.Scan(
		&tripID, &itemID, &bagID, &d.Quantity, &status, &d.CreatedAt, &d.UpdatedAt,
		&joinedItem, &d.Item.Name, &category, &d.Item.CreatedAt, &d.Item.UpdatedAt,
		&joinedBag, &d.Bag.Name, &typ, &d.Bag.CreatedAt, &d.Bag.UpdatedAt,
	)
	if err != nil {
		return domain.PackingDetail{}, mapError(err)
	}
	d.TripID = fromPgUUID(tripID)
	d.ItemID = fromPgUUID(itemID)
	d.BagID = fromPgUUID(bagID)
	d.Status = domain.ItemStatus(status)
	d.Item.ID = fromPgUUID(joinedItem)
	d.Item.Category = domain.ItemCategory(category)
	d.Bag.ID = fromPgUUID(joinedBag)
	d.Bag.Type = domain.BagType(typ)
	return d, nil
}

func scanBagContent(s scanner) (domain.BagContent, error) {
	var (
		c                     domain.BagContent
		tripID, itemID, bagID pgtype.UUID
		joinedItem            pgtype.UUID
		status, category      string
	)
	err := s.Scan(
		&tripID, &itemID, &bagID, &c.Quantity, &status, &c.CreatedAt, &c.UpdatedAt,
		&joinedItem, &c.Item.Name, &category, &c.Item.CreatedAt, &c.Item.UpdatedAt,
	)
	if err != nil {
		return domain.BagContent{}, mapError(err)
	}
	c.TripID = fromPgUUID(tripID)
	c.ItemID = fromPgUUID(itemID)
	c.BagID = fromPgUUID(bagID)
	c.Status = domain.ItemStatus(status)
	c.Item.ID = fromPgUUID(joinedItem)
	c.Item.Category = domain.ItemCategory(category)
	return c, nil
}
