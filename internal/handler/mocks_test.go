package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ricardofviana/trip-packer/internal/domain"
	"github.com/ricardofviana/trip-packer/internal/handler"
)

// Test doubles for the servicer interfaces.
// Set only the method fields your test needs.

type mockTripServicer struct {
	create   func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID  func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list     func(ctx context.Context, p domain.ListParams) ([]domain.Trip, error)
	update   func(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error)
	delete   func(ctx context.Context, id uuid.UUID) error
	detail   func(ctx context.Context, id uuid.UUID) (domain.TripDetail, error)
	overview func(ctx context.Context, id uuid.UUID) (domain.TripOverview, error)
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) List(ctx context.Context, p domain.ListParams) ([]domain.Trip, error) {
	return m.list(ctx, p)
}
func (m *mockTripServicer) Update(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error) {
	return m.update(ctx, id, patch)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockTripServicer) Detail(ctx context.Context, id uuid.UUID) (domain.TripDetail, error) {
	return m.detail(ctx, id)
}
func (m *mockTripServicer) Overview(ctx context.Context, id uuid.UUID) (domain.TripOverview, error) {
	return m.overview(ctx, id)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

type mockBagServicer struct {
	create  func(ctx context.Context, bag domain.Bag) (domain.Bag, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Bag, error)
	list    func(ctx context.Context, p domain.ListParams) ([]domain.Bag, error)
	update  func(ctx context.Context, id uuid.UUID, patch domain.BagPatch) (domain.Bag, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockBagServicer) Create(ctx context.Context, b domain.Bag) (domain.Bag, error) {
	return m.create(ctx, b)
}
func (m *mockBagServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Bag, error) {
	return m.getByID(ctx, id)
}
func (m *mockBagServicer) List(ctx context.Context, p domain.ListParams) ([]domain.Bag, error) {
	return m.list(ctx, p)
}
func (m *mockBagServicer) Update(ctx context.Context, id uuid.UUID, patch domain.BagPatch) (domain.Bag, error) {
	return m.update(ctx, id, patch)
}
func (m *mockBagServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.BagServicer = (*mockBagServicer)(nil)

type mockItemServicer struct {
	create  func(ctx context.Context, item domain.Item) (domain.Item, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Item, error)
	list    func(ctx context.Context, p domain.ListParams) ([]domain.Item, error)
	update  func(ctx context.Context, id uuid.UUID, patch domain.ItemPatch) (domain.Item, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockItemServicer) Create(ctx context.Context, i domain.Item) (domain.Item, error) {
	return m.create(ctx, i)
}
func (m *mockItemServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Item, error) {
	return m.getByID(ctx, id)
}
func (m *mockItemServicer) List(ctx context.Context, p domain.ListParams) ([]domain.Item, error) {
	return m.list(ctx, p)
}
func (m *mockItemServicer) Update(ctx context.Context, id uuid.UUID, patch domain.ItemPatch) (domain.Item, error) {
	return m.update(ctx, id, patch)
}
func (m *mockItemServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.ItemServicer = (*mockItemServicer)(nil)

type mockTripBagServicer struct {
	list   func(ctx context.Context, tripID uuid.UUID) ([]domain.Bag, error)
	add    func(ctx context.Context, tripID, bagID uuid.UUID) (domain.TripBag, error)
	remove func(ctx context.Context, tripID, bagID uuid.UUID) error
}

func (m *mockTripBagServicer) List(ctx context.Context, tripID uuid.UUID) ([]domain.Bag, error) {
	return m.list(ctx, tripID)
}
func (m *mockTripBagServicer) Add(ctx context.Context, tripID, bagID uuid.UUID) (domain.TripBag, error) {
	return m.add(ctx, tripID, bagID)
}
func (m *mockTripBagServicer) Remove(ctx context.Context, tripID, bagID uuid.UUID) error {
	return m.remove(ctx, tripID, bagID)
}

var _ handler.TripBagServicer = (*mockTripBagServicer)(nil)

type mockTripItemServicer struct {
	create func(ctx context.Context, ti domain.TripItem) (domain.TripItem, error)
	list   func(ctx context.Context, tripID uuid.UUID) ([]domain.TripItemDetail, error)
	update func(ctx context.Context, tripID, itemID uuid.UUID, patch domain.TripItemPatch) (domain.TripItem, error)
	delete func(ctx context.Context, tripID, itemID uuid.UUID) error
}

func (m *mockTripItemServicer) Create(ctx context.Context, ti domain.TripItem) (domain.TripItem, error) {
	return m.create(ctx, ti)
}
func (m *mockTripItemServicer) List(ctx context.Context, tripID uuid.UUID) ([]domain.TripItemDetail, error) {
	return m.list(ctx, tripID)
}
func (m *mockTripItemServicer) Update(ctx context.Context, tripID, itemID uuid.UUID, patch domain.TripItemPatch) (domain.TripItem, error) {
	return m.update(ctx, tripID, itemID, patch)
}
func (m *mockTripItemServicer) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	return m.delete(ctx, tripID, itemID)
}

var _ handler.TripItemServicer = (*mockTripItemServicer)(nil)

type mockPackingServicer struct {
	create    func(ctx context.Context, p domain.Packing) (domain.Packing, error)
	list      func(ctx context.Context, tripID uuid.UUID) ([]domain.PackingDetail, error)
	update    func(ctx context.Context, key domain.PackingKey, patch domain.PackingPatch) (domain.Packing, error)
	delete    func(ctx context.Context, key domain.PackingKey) error
	listByBag func(ctx context.Context, bagID uuid.UUID, tripID *uuid.UUID) ([]domain.BagContent, error)
}

func (m *mockPackingServicer) Create(ctx context.Context, p domain.Packing) (domain.Packing, error) {
	return m.create(ctx, p)
}
func (m *mockPackingServicer) List(ctx context.Context, tripID uuid.UUID) ([]domain.PackingDetail, error) {
	return m.list(ctx, tripID)
}
func (m *mockPackingServicer) Update(ctx context.Context, key domain.PackingKey, patch domain.PackingPatch) (domain.Packing, error) {
	return m.update(ctx, key, patch)
}
func (m *mockPackingServicer) Delete(ctx context.Context, key domain.PackingKey) error {
	return m.delete(ctx, key)
}
func (m *mockPackingServicer) ListByBag(ctx context.Context, bagID uuid.UUID, tripID *uuid.UUID) ([]domain.BagContent, error) {
	return m.listByBag(ctx, bagID, tripID)
}

var _ handler.PackingServicer = (*mockPackingServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into its chi router.
// This mirrors how the serve command wires it in production.
func newHTTPHandler(svc handler.Services) http.Handler {
	return handler.NewServer(svc).Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// do sends one request through h and returns the recorder.
func do(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Message
}

// doUnknownLength is like do but hides Content-Length, so size limits are
// only discovered while the body is read.
func doUnknownLength(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	req.ContentLength = -1
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
