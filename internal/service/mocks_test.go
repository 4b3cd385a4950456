package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/ricardofviana/trip-packer/internal/domain"
	"github.com/ricardofviana/trip-packer/internal/repo"
)

// Hand-written test doubles for the repo interfaces.
// Each method is a function field. Set only the ones your test needs.

// fakeStore hands the same mock repos to direct reads and to WithinTx.
// txCalls counts how many transactions a service opened.
type fakeStore struct {
	repos   repo.Repos
	txCalls int
}

func (s *fakeStore) Repos() repo.Repos { return s.repos }

func (s *fakeStore) WithinTx(_ context.Context, fn func(r repo.Repos) error) error {
	s.txCalls++
	return fn(s.repos)
}

var _ repo.Store = (*fakeStore)(nil)

type mockTripRepo struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list    func(ctx context.Context, p domain.ListParams) ([]domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context, p domain.ListParams) ([]domain.Trip, error) {
	return m.list(ctx, p)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

type mockBagRepo struct {
	create     func(ctx context.Context, bag domain.Bag) (domain.Bag, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Bag, error)
	list       func(ctx context.Context, p domain.ListParams) ([]domain.Bag, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Bag, error)
	update     func(ctx context.Context, bag domain.Bag) (domain.Bag, error)
	delete     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockBagRepo) Create(ctx context.Context, bag domain.Bag) (domain.Bag, error) {
	return m.create(ctx, bag)
}
func (m *mockBagRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Bag, error) {
	return m.getByID(ctx, id)
}
func (m *mockBagRepo) List(ctx context.Context, p domain.ListParams) ([]domain.Bag, error) {
	return m.list(ctx, p)
}
func (m *mockBagRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Bag, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockBagRepo) Update(ctx context.Context, bag domain.Bag) (domain.Bag, error) {
	return m.update(ctx, bag)
}
func (m *mockBagRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.BagRepo = (*mockBagRepo)(nil)

type mockItemRepo struct {
	create  func(ctx context.Context, item domain.Item) (domain.Item, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Item, error)
	list    func(ctx context.Context, p domain.ListParams) ([]domain.Item, error)
	update  func(ctx context.Context, item domain.Item) (domain.Item, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockItemRepo) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	return m.create(ctx, item)
}
func (m *mockItemRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Item, error) {
	return m.getByID(ctx, id)
}
func (m *mockItemRepo) List(ctx context.Context, p domain.ListParams) ([]domain.Item, error) {
	return m.list(ctx, p)
}
func (m *mockItemRepo) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	return m.update(ctx, item)
}
func (m *mockItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.ItemRepo = (*mockItemRepo)(nil)

type mockTripBagRepo struct {
	create func(ctx context.Context, tb domain.TripBag) (domain.TripBag, error)
	get    func(ctx context.Context, tripID, bagID uuid.UUID) (domain.TripBag, error)
	delete func(ctx context.Context, tripID, bagID uuid.UUID) error
}

func (m *mockTripBagRepo) Create(ctx context.Context, tb domain.TripBag) (domain.TripBag, error) {
	return m.create(ctx, tb)
}
func (m *mockTripBagRepo) Get(ctx context.Context, tripID, bagID uuid.UUID) (domain.TripBag, error) {
	return m.get(ctx, tripID, bagID)
}
func (m *mockTripBagRepo) Delete(ctx context.Context, tripID, bagID uuid.UUID) error {
	return m.delete(ctx, tripID, bagID)
}

var _ repo.TripBagRepo = (*mockTripBagRepo)(nil)

type mockTripItemRepo struct {
	create     func(ctx context.Context, ti domain.TripItem) (domain.TripItem, error)
	get        func(ctx context.Context, tripID, itemID uuid.UUID) (domain.TripItem, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.TripItemDetail, error)
	update     func(ctx context.Context, itemID uuid.UUID, ti domain.TripItem) (domain.TripItem, error)
	delete     func(ctx context.Context, tripID, itemID uuid.UUID) error
}

func (m *mockTripItemRepo) Create(ctx context.Context, ti domain.TripItem) (domain.TripItem, error) {
	return m.create(ctx, ti)
}
func (m *mockTripItemRepo) Get(ctx context.Context, tripID, itemID uuid.UUID) (domain.TripItem, error) {
	return m.get(ctx, tripID, itemID)
}
func (m *mockTripItemRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.TripItemDetail, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockTripItemRepo) Update(ctx context.Context, itemID uuid.UUID, ti domain.TripItem) (domain.TripItem, error) {
	return m.update(ctx, itemID, ti)
}
func (m *mockTripItemRepo) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	return m.delete(ctx, tripID, itemID)
}

var _ repo.TripItemRepo = (*mockTripItemRepo)(nil)

type mockPackingRepo struct {
	create        func(ctx context.Context, p domain.Packing) (domain.Packing, error)
	get           func(ctx context.Context, key domain.PackingKey) (domain.Packing, error)
	listByTrip    func(ctx context.Context, tripID uuid.UUID) ([]domain.PackingDetail, error)
	listByBag     func(ctx context.Context, bagID uuid.UUID, tripID *uuid.UUID) ([]domain.BagContent, error)
	update        func(ctx context.Context, key domain.PackingKey, p domain.Packing) (domain.Packing, error)
	delete        func(ctx context.Context, key domain.PackingKey) error
	countByStatus func(ctx context.Context, tripID uuid.UUID) (domain.TripOverview, error)
}

func (m *mockPackingRepo) Create(ctx context.Context, p domain.Packing) (domain.Packing, error) {
	return m.create(ctx, p)
}
func (m *mockPackingRepo) Get(ctx context.Context, key domain.PackingKey) (domain.Packing, error) {
	return m.get(ctx, key)
}
func (m *mockPackingRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.PackingDetail, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockPackingRepo) ListByBag(ctx context.Context, bagID uuid.UUID, tripID *uuid.UUID) ([]domain.BagContent, error) {
	return m.listByBag(ctx, bagID, tripID)
}
func (m *mockPackingRepo) Update(ctx context.Context, key domain.PackingKey, p domain.Packing) (domain.Packing, error) {
	return m.update(ctx, key, p)
}
func (m *mockPackingRepo) Delete(ctx context.Context, key domain.PackingKey) error {
	return m.delete(ctx, key)
}
func (m *mockPackingRepo) CountByStatus(ctx context.Context, tripID uuid.UUID) (domain.TripOverview, error) {
	return m.countByStatus(ctx, tripID)
}

var _ repo.PackingRepo = (*mockPackingRepo)(nil)

// ---- lookup helpers --------------------------------------------------------

// tripsWith returns a trip repo whose GetByID finds only the given IDs.
func tripsWith(ids ...uuid.UUID) *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			for _, want := range ids {
				if id == want {
					return domain.Trip{ID: id, Name: "Trip"}, nil
				}
			}
			return domain.Trip{}, domain.ErrNotFound
		},
	}
}

func bagsWith(ids ...uuid.UUID) *mockBagRepo {
	return &mockBagRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Bag, error) {
			for _, want := range ids {
				if id == want {
					return domain.Bag{ID: id, Name: "Bag", Type: domain.BagCarryOn}, nil
				}
			}
			return domain.Bag{}, domain.ErrNotFound
		},
	}
}

func itemsWith(ids ...uuid.UUID) *mockItemRepo {
	return &mockItemRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Item, error) {
			for _, want := range ids {
				if id == want {
					return domain.Item{ID: id, Name: "Item", Category: domain.CategoryOther}, nil
				}
			}
			return domain.Item{}, domain.ErrNotFound
		},
	}
}
