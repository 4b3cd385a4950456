package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ricardofviana/trip-packer/internal/domain"
)

// TripBagRepo defines the persistence operations for the trip_bags join table.
// Listing the bags of a trip lives on BagRepo.ListByTrip.
type TripBagRepo interface {
	// Create links a bag to a trip. Returns domain.ErrConflict if already linked
	// and domain.ErrNotFound if either side does not exist.
	Create(ctx context.Context, tb domain.TripBag) (domain.TripBag, error)

	// Get returns domain.ErrNotFound if the bag is not linked to the trip.
	Get(ctx context.Context, tripID, bagID uuid.UUID) (domain.TripBag, error)

	// Delete unlinks a bag from a trip. Returns domain.ErrNotFound if not linked.
	Delete(ctx context.Context, tripID, bagID uuid.UUID) error
}

// pgTripBagRepo is the Postgres implementation of TripBagRepo.
type pgTripBagRepo struct {
	db db
}

// NewTripBagRepo constructs a TripBagRepo backed by the provided db connection.
func NewTripBagRepo(db db) TripBagRepo {
	return &pgTripBagRepo{db: db}
}

func (r *pgTripBagRepo) Create(ctx context.Context, tb domain.TripBag) (domain.TripBag, error) {
	const q = `
		INSERT INTO trip_bags (trip_id, bag_id)
		VALUES (@trip_id, @bag_id)
		RETURNING trip_id, bag_id, created_at, updated_at`

	result, err := scanTripBag(r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tb.TripID, "bag_id": tb.BagID}))
	if err != nil {
		return domain.TripBag{}, fmt.Errorf("repo.TripBagRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTripBagRepo) Get(ctx context.Context, tripID, bagID uuid.UUID) (domain.TripBag, error) {
	const q = `
		SELECT trip_id, bag_id, created_at, updated_at
		FROM trip_bags
		WHERE trip_id = @trip_id AND bag_id = @bag_id`

	result, err := scanTripBag(r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID, "bag_id": bagID}))
	if err != nil {
		return domain.TripBag{}, fmt.Errorf("repo.TripBagRepo.Get: %w", err)
	}
	return result, nil
}

func (r *pgTripBagRepo) Delete(ctx context.Context, tripID, bagID uuid.UUID) error {
	const q = `DELETE FROM trip_bags WHERE trip_id = @trip_id AND bag_id = @bag_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"trip_id": tripID, "bag_id": bagID})
	if err != nil {
		return fmt.Errorf("repo.TripBagRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripBagRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanTripBag(s scanner) (domain.TripBag, error) {
	var (
		tb     domain.TripBag
		tripID pgtype.UUID
		bagID  pgtype.UUID
	)
	if err := s.Scan(&tripID, &bagID, &tb.CreatedAt, &tb.UpdatedAt); err != nil {
		return domain.TripBag{}, mapError(err)
	}
	tb.TripID = fromPgUUID(tripID)
	tb.BagID = fromPgUUID(bagID)
	return tb, nil
}
