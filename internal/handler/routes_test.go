package handler_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardofviana/trip-packer/internal/domain"
	"github.com/ricardofviana/trip-packer/internal/handler"
	"github.com/ricardofviana/trip-packer/internal/middleware"
)

// TestRoutes_TrailingSlashOptional verifies that every path routes identically
// with and without a trailing slash.
func TestRoutes_TrailingSlashOptional(t *testing.T) {
	tripID := uuid.New()
	h := newHTTPHandler(handler.Services{
		Trips: &mockTripServicer{
			list:    func(_ context.Context, _ domain.ListParams) ([]domain.Trip, error) { return nil, nil },
			getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) { return domain.Trip{ID: id}, nil },
		},
		Bags: &mockBagServicer{
			list: func(_ context.Context, _ domain.ListParams) ([]domain.Bag, error) { return nil, nil },
		},
		TripItems: &mockTripItemServicer{
			list: func(_ context.Context, _ uuid.UUID) ([]domain.TripItemDetail, error) { return nil, nil },
		},
	})

	for _, path := range []string{
		"/api/trips",
		"/api/trips/" + tripID.String(),
		"/api/bags",
		"/api/trips/" + tripID.String() + "/trip-items",
	} {
		bare := do(h, http.MethodGet, path, nil)
		slashed := do(h, http.MethodGet, path+"/", nil)

		require.Equal(t, http.StatusOK, bare.Code, path)
		assert.Equal(t, bare.Code, slashed.Code, path)
		assert.Equal(t, bare.Body.String(), slashed.Body.String(), path)
	}
}

func TestRoutes_UnknownPath404(t *testing.T) {
	rec := do(newHTTPHandler(handler.Services{}), http.MethodGet, "/api/luggage", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_WrongMethod405(t *testing.T) {
	rec := do(newHTTPHandler(handler.Services{}), http.MethodPatch, "/api/trips", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// TestCreateItem_413_StreamingBodyTooLarge verifies that a body exceeding the
// limit during decoding is answered with 413 in the standard error envelope.
func TestCreateItem_413_StreamingBodyTooLarge(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(32)(newHTTPHandler(handler.Services{Items: &mockItemServicer{}}))

	body := `{"name":"` + strings.Repeat("x", 100) + `","category":"OTHER"}`
	req := strings.NewReader(body)
	rec := doUnknownLength(h, http.MethodPost, "/api/items", req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "payload_too_large", decodeError(t, rec).Error.Code)
}
