// Package service contains the business logic for the Trip Packer API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here. Services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ricardofviana/trip-packer/internal/domain"
	"github.com/ricardofviana/trip-packer/internal/repo"
)

// withDetail turns a bare kind error into a domain.DetailError carrying the
// client message. Errors of another kind, and errors that already carry a
// detail, are returned unchanged. A nil err stays nil.
func withDetail(err, kind error, format string, args ...any) error {
	if err == nil || !errors.Is(err, kind) {
		return err
	}
	var de *domain.DetailError
	if errors.As(err, &de) {
		return err
	}
	return &domain.DetailError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// found reports whether a Get result means the row exists. It takes the
// lookup's (value, error) pair directly; the value is discarded.
// Not-found is a normal answer; anything else is returned as an error.
func found[T any](_ T, err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

func requireTrip(ctx context.Context, r repo.Repos, id uuid.UUID) (domain.Trip, error) {
	trip, err := r.Trips.GetByID(ctx, id)
	return trip, withDetail(err, domain.ErrNotFound, "Trip with id %s not found", id)
}

func requireBag(ctx context.Context, r repo.Repos, id uuid.UUID) (domain.Bag, error) {
	bag, err := r.Bags.GetByID(ctx, id)
	return bag, withDetail(err, domain.ErrNotFound, "Bag with id %s not found", id)
}

func requireItem(ctx context.Context, r repo.Repos, id uuid.UUID) (domain.Item, error) {
	item, err := r.Items.GetByID(ctx, id)
	return item, withDetail(err, domain.ErrNotFound, "Item with id %s not found", id)
}

// requireName rejects empty and whitespace-only names.
func requireName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.Validationf("name is required")
	}
	return nil
}

// validateTrip enforces business rules common to both Create and Update.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - EndDate must not be before StartDate. A one-day trip is valid.
func validateTrip(trip domain.Trip) error {
	if err := requireName(trip.Name); err != nil {
		return err
	}
	if trip.StartDate.IsZero() || trip.EndDate.IsZero() {
		return domain.Validationf("start_date and end_date are required")
	}
	if truncateDay(trip.EndDate).Before(truncateDay(trip.StartDate)) {
		return domain.Validationf("end_date must not be before start_date")
	}
	return nil
}

func validateBag(bag domain.Bag) error {
	if err := requireName(bag.Name); err != nil {
		return err
	}
	if !bag.Type.Valid() {
		return domain.Validationf("unknown bag type %q", bag.Type)
	}
	return nil
}

func validateItem(item domain.Item) error {
	if err := requireName(item.Name); err != nil {
		return err
	}
	if !item.Category.Valid() {
		return domain.Validationf("unknown item category %q", item.Category)
	}
	return nil
}

// validateAmount checks the quantity and status shared by trip items and packing entries.
func validateAmount(quantity int, status domain.ItemStatus) error {
	if quantity < 1 {
		return domain.Validationf("quantity must be at least 1")
	}
	if !status.Valid() {
		return domain.Validationf("unknown item status %q", status)
	}
	return nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
