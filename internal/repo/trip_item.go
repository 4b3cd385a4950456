package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ricardofviana/trip-packer/internal/domain"
)

// TripItemRepo defines the persistence operations for the trip_items table.
type TripItemRepo interface {
	// Create inserts a trip item. Returns domain.ErrConflict if the item is
	// already on the trip.
	Create(ctx context.Context, ti domain.TripItem) (domain.TripItem, error)

	// Get returns domain.ErrNotFound if the item is not on the trip.
	Get(ctx context.Context, tripID, itemID uuid.UUID) (domain.TripItem, error)

	// ListByTrip returns all trip items for a trip with their items joined in,
	// ordered by item category, then name.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.TripItemDetail, error)

	// Update rewrites the row currently keyed by (ti.TripID, itemID) with the
	// values in ti, which may carry a different ItemID.
	// Returns domain.ErrNotFound if no such row exists and domain.ErrConflict
	// if the new key is already taken.
	Update(ctx context.Context, itemID uuid.UUID, ti domain.TripItem) (domain.TripItem, error)

	// Delete removes one trip item. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error
}

// pgTripItemRepo is the Postgres implementation of TripItemRepo.
type pgTripItemRepo struct {
	db db
}

// NewTripItemRepo constructs a TripItemRepo backed by the provided db connection.
func NewTripItemRepo(db db) TripItemRepo {
	return &pgTripItemRepo{db: db}
}

const tripItemColumns = `trip_id, item_id, quantity, status, created_at, updated_at`

func (r *pgTripItemRepo) Create(ctx context.Context, ti domain.TripItem) (domain.TripItem, error) {
	const q = `
		INSERT INTO trip_items (trip_id, item_id, quantity, status)
		VALUES (@trip_id, @item_id, @quantity, @status)
		RETURNING ` + tripItemColumns

	args := pgx.NamedArgs{
		"trip_id":  ti.TripID,
		"item_id":  ti.ItemID,
		"quantity": ti.Quantity,
		"status":   string(ti.Status),
	}
	result, err := scanTripItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.TripItem{}, fmt.Errorf("repo.TripItemRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTripItemRepo) Get(ctx context.Context, tripID, itemID uuid.UUID) (domain.TripItem, error) {
	const q = `
		SELECT ` + tripItemColumns + `
		FROM trip_items
		WHERE trip_id = @trip_id AND item_id = @item_id`

	result, err := scanTripItem(r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID, "item_id": itemID}))
	if err != nil {
		return domain.TripItem{}, fmt.Errorf("repo.TripItemRepo.Get: %w", err)
	}
	return result, nil
}

func (r *pgTripItemRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.TripItemDetail, error) {
	const q = `
		SELECT ti.trip_id, ti.item_id, ti.quantity, ti.status, ti.created_at, ti.updated_at,
		       i.id, i.name, i.category, i.created_at, i.updated_at
		FROM trip_items ti
		JOIN items i ON i.id = ti.item_id
		WHERE ti.trip_id = @trip_id
		ORDER BY i.category, i.name`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.TripItemRepo.ListByTrip: %w", err)
	}
	details, err := collect(rows, scanTripItemDetail)
	if err != nil {
		return nil, fmt.Errorf("repo.TripItemRepo.ListByTrip: %w", err)
	}
	return details, nil
}

func (r *pgTripItemRepo) Update(ctx context.Context, itemID uuid.UUID, ti domain.TripItem) (domain.TripItem, error) {
	const q = `
		UPDATE trip_items
		SET item_id    = @new_item_id,
		    quantity   = @quantity,
		    status     = @status,
		    updated_at = now()
		WHERE trip_id = @trip_id AND item_id = @item_id
		RETURNING ` + tripItemColumns

	args := pgx.NamedArgs{
		"trip_id":     ti.TripID,
		"item_id":     itemID,
		"new_item_id": ti.ItemID,
		"quantity":    ti.Quantity,
		"status":      string(ti.Status),
	}
	result, err := scanTripItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.TripItem{}, fmt.Errorf("repo.TripItemRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgTripItemRepo) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	const q = `DELETE FROM trip_items WHERE trip_id = @trip_id AND item_id = @item_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"trip_id": tripID, "item_id": itemID})
	if err != nil {
		return fmt.Errorf("repo.TripItemRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripItemRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanTripItem(s scanner) (domain.TripItem, error) {
	var (
		ti     domain.TripItem
		tripID pgtype.UUID
		itemID pgtype.UUID
		status string
	)
	if err := s.Scan(&tripID, &itemID, &ti.Quantity, &status, &ti.CreatedAt, &ti.UpdatedAt); err != nil {
		return domain.TripItem{}, mapError(err)
	}
	ti.TripID = fromPgUUID(tripID)
	ti.ItemID = fromPgUUID(itemID)
	ti.Status = domain.ItemStatus(status)
	return ti, nil
}

func scanTripItemDetail(s scanner) (domain.TripItemDetail, error) {
	var (
		d        domain.TripItemDetail
		tripID   pgtype.UUID
		itemID   pgtype.UUID
		status   string
		joinedID pgtype.UUID
		category string
	)
	err := s.Scan(
		&tripID, &itemID, &d.Quantity, &status, &d.CreatedAt, &d.UpdatedAt,
		&joinedID, &d.Item.Name, &category, &d.Item.CreatedAt, &d.Item.UpdatedAt,
	)
	if err != nil {
		return domain.TripItemDetail{}, mapError(err)
	}
	d.TripID = fromPgUUID(tripID)
	d.ItemID = fromPgUUID(itemID)
	d.Status = domain.ItemStatus(status)
	d.Item.ID = fromPgUUID(joinedID)
	d.Item.Category = domain.ItemCategory(category)
	return d, nil
}
