package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/ricardofviana/trip-packer/internal/domain"
	"github.com/ricardofviana/trip-packer/internal/repo"
	"github.com/ricardofviana/trip-packer/testutil"
)

// newTestTx returns a rolled-back transaction on the test database.
//
// Postgres aborts a transaction after any failed statement, so tests that
// expect a constraint violation make that call last.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	return testutil.NewTx(t)
}

// newTestRepos returns every repo bound to a rolled-back test transaction.
func newTestRepos(t *testing.T) repo.Repos {
	t.Helper()
	return repo.NewRepos(newTestTx(t))
}

// tripFixture returns a domain.Trip with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func tripFixture() domain.Trip {
	return domain.Trip{
		Name:      "Lisbon Weekend",
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
	}
}

func bagFixture() domain.Bag {
	return domain.Bag{Name: "Blue Backpack", Type: domain.BagBackpack}
}

func itemFixture() domain.Item {
	return domain.Item{Name: "Toothbrush", Category: domain.CategoryToiletries}
}

// seed inserts one trip, one bag, and one item and returns them.
func seed(t *testing.T, r repo.Repos) (domain.Trip, domain.Bag, domain.Item) {
	t.Helper()
	ctx := context.Background()

	trip, err := r.Trips.Create(ctx, tripFixture())
	require.NoError(t, err, "seed trip")
	bag, err := r.Bags.Create(ctx, bagFixture())
	require.NoError(t, err, "seed bag")
	item, err := r.Items.Create(ctx, itemFixture())
	require.NoError(t, err, "seed item")
	return trip, bag, item
}

// missingID is a UUID that is never inserted.
var missingID = uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")
