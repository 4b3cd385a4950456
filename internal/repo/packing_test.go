package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardofviana/trip-packer/internal/domain"
)

func packingFixture(trip domain.Trip, item domain.Item, bag domain.Bag) domain.Packing {
	return domain.Packing{
		PackingKey: domain.PackingKey{TripID: trip.ID, ItemID: item.ID, BagID: bag.ID},
		Quantity:   1,
		Status:     domain.StatusUnpacked,
	}
}

func TestPackingRepo_CreateAndListByTrip(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	trip, bag, item := seed(t, r)

	created, err := r.Packings.Create(ctx, packingFixture(trip, item, bag))
	require.NoError(t, err)

	got, err := r.Packings.Get(ctx, created.PackingKey)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	list, err := r.Packings.ListByTrip(ctx, trip.ID)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, item.Name, list[0].Item.Name)
	assert.Equal(t, bag.Name, list[0].Bag.Name)
	assert.Equal(t, domain.BagBackpack, list[0].Bag.Type)
}

func TestPackingRepo_ListByBag_FiltersByTrip(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	trip, bag, item := seed(t, r)

	second := tripFixture()
	second.Name = "Porto Weekend"
	other, err := r.Trips.Create(ctx, second)
	require.NoError(t, err)

	_, err = r.Packings.Create(ctx, packingFixture(trip, item, bag))
	require.NoError(t, err)
	p := packingFixture(other, item, bag)
	p.Status = domain.StatusPacked
	_, err = r.Packings.Create(ctx, p)
	require.NoError(t, err)

	all, err := r.Packings.ListByBag(ctx, bag.ID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := r.Packings.ListByBag(ctx, bag.ID, &other.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, other.ID, filtered[0].TripID)
	assert.True(t, filtered[0].IsPacked())
	assert.Equal(t, item.Name, filtered[0].Item.Name)
}

func TestPackingRepo_Update_MovesBag(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	trip, bag, item := seed(t, r)

	nb := bagFixture()
	nb.Name = "Checked Suitcase"
	nb.Type = domain.BagCheckedMedium
	suitcase, err := r.Bags.Create(ctx, nb)
	require.NoError(t, err)

	created, err := r.Packings.Create(ctx, packingFixture(trip, item, bag))
	require.NoError(t, err)

	moved := created
	moved.BagID = suitcase.ID
	moved.Quantity = 2
	updated, err := r.Packings.Update(ctx, created.PackingKey, moved)

	require.NoError(t, err)
	assert.Equal(t, suitcase.ID, updated.BagID)
	assert.Equal(t, 2, updated.Quantity)

	_, err = r.Packings.Get(ctx, created.PackingKey)
	assert.ErrorIs(t, err, domain.ErrNotFound, "entry should no longer be in the old bag")
}

func TestPackingRepo_Delete_OnlyExactKey(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	trip, bag, item := seed(t, r)

	nb := bagFixture()
	nb.Name = "Carry On"
	nb.Type = domain.BagCarryOn
	carry, err := r.Bags.Create(ctx, nb)
	require.NoError(t, err)

	first, err := r.Packings.Create(ctx, packingFixture(trip, item, bag))
	require.NoError(t, err)
	sibling, err := r.Packings.Create(ctx, packingFixture(trip, item, carry))
	require.NoError(t, err)

	require.NoError(t, r.Packings.Delete(ctx, first.PackingKey))

	_, err = r.Packings.Get(ctx, sibling.PackingKey)
	assert.NoError(t, err, "same item in another bag must survive")

	err = r.Packings.Delete(ctx, first.PackingKey)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPackingRepo_CountByStatus(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	trip, bag, item := seed(t, r)

	statuses := []domain.ItemStatus{domain.StatusPacked, domain.StatusToBuy}
	for _, status := range statuses {
		it := itemFixture()
		it.Name = string(status) + " thing"
		extra, err := r.Items.Create(ctx, it)
		require.NoError(t, err)

		p := packingFixture(trip, extra, bag)
		p.Status = status
		_, err = r.Packings.Create(ctx, p)
		require.NoError(t, err)
	}
	_, err := r.Packings.Create(ctx, packingFixture(trip, item, bag))
	require.NoError(t, err)

	got, err := r.Packings.CountByStatus(ctx, trip.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.TripOverview{Total: 3, Packed: 1, Unpacked: 1, ToBuy: 1}, got)
}

func TestPackingRepo_Create_Duplicate(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	trip, bag, item := seed(t, r)

	_, err := r.Packings.Create(ctx, packingFixture(trip, item, bag))
	require.NoError(t, err)

	_, err = r.Packings.Create(ctx, packingFixture(trip, item, bag))

	assert.ErrorIs(t, err, domain.ErrConflict)
}
