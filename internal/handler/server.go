// Package handler implements the HTTP handlers for the Trip Packer API.
// All handlers are methods on Server. Methods are split into resource-specific
// files (health.go, trip.go, etc.) but share the same Server struct so they can
// access its dependencies. Routes wires them into a chi router.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ricardofviana/trip-packer/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, p domain.ListParams) ([]domain.Trip, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Detail(ctx context.Context, id uuid.UUID) (domain.TripDetail, error)
	Overview(ctx context.Context, id uuid.UUID) (domain.TripOverview, error)
}

// BagServicer defines the bag catalog operations.
type BagServicer interface {
	Create(ctx context.Context, bag domain.Bag) (domain.Bag, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Bag, error)
	List(ctx context.Context, p domain.ListParams) ([]domain.Bag, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.BagPatch) (domain.Bag, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ItemServicer defines the item catalog operations.
type ItemServicer interface {
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Item, error)
	List(ctx context.Context, p domain.ListParams) ([]domain.Item, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ItemPatch) (domain.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TripBagServicer defines the trip-to-bag assignment operations.
type TripBagServicer interface {
	List(ctx context.Context, tripID uuid.UUID) ([]domain.Bag, error)
	Add(ctx context.Context, tripID, bagID uuid.UUID) (domain.TripBag, error)
	Remove(ctx context.Context, tripID, bagID uuid.UUID) error
}

// TripItemServicer defines the trip item operations.
type TripItemServicer interface {
	Create(ctx context.Context, ti domain.TripItem) (domain.TripItem, error)
	List(ctx context.Context, tripID uuid.UUID) ([]domain.TripItemDetail, error)
	Update(ctx context.Context, tripID, itemID uuid.UUID, patch domain.TripItemPatch) (domain.TripItem, error)
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error
}

// PackingServicer defines the packing list and bag contents operations.
type PackingServicer interface {
	Create(ctx context.Context, p domain.Packing) (domain.Packing, error)
	List(ctx context.Context, tripID uuid.UUID) ([]domain.PackingDetail, error)
	Update(ctx context.Context, key domain.PackingKey, patch domain.PackingPatch) (domain.Packing, error)
	Delete(ctx context.Context, key domain.PackingKey) error
	ListByBag(ctx context.Context, bagID uuid.UUID, tripID *uuid.UUID) ([]domain.BagContent, error)
}

// Services bundles the servicers a Server depends on.
// Tests may leave fields nil for routes they do not exercise.
type Services struct {
	Trips     TripServicer
	Bags      BagServicer
	Items     ItemServicer
	TripBags  TripBagServicer
	TripItems TripItemServicer
	Packings  PackingServicer
}

// Server implements every API endpoint.
// Methods are in resource-specific files but all operate on this struct.
type Server struct {
	svc      Services
	log      *slog.Logger
	validate *validator.Validate
	openapi  []byte
}

// Option configures optional Server dependencies.
type Option func(*Server)

// WithLogger sets the logger used for unexpected errors. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) { s.log = log }
}

// WithOpenAPI sets the document served at GET /openapi.yaml.
// Without it the route answers 404.
func WithOpenAPI(doc []byte) Option {
	return func(s *Server) { s.openapi = doc }
}

// NewServer constructs the Server with all its dependencies.
func NewServer(svc Services, opts ...Option) *Server {
	s := &Server{svc: svc, log: slog.Default(), validate: newValidator()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(Services{})
}

// Routes returns the API router. Trailing slashes are stripped before routing,
// so /api/trips and /api/trips/ reach the same handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.StripSlashes)

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.ListTrips)
			r.Post("/", s.CreateTrip)
			r.Route("/{trip_id}", func(r chi.Router) {
				r.Get("/", s.GetTrip)
				r.Put("/", s.UpdateTrip)
				r.Delete("/", s.DeleteTrip)
				r.Get("/details", s.GetTripDetails)
				r.Get("/overview", s.GetTripOverview)

				r.Get("/bags", s.ListTripBags)
				r.Post("/bags", s.AddTripBag)
				r.Post("/bags/{bag_id}", s.AddTripBag)
				r.Delete("/bags/{bag_id}", s.RemoveTripBag)

				r.Get("/trip-items", s.ListTripItems)
				r.Post("/trip-items", s.CreateTripItem)
				r.Put("/trip-items/{item_id}", s.UpdateTripItem)
				r.Delete("/trip-items/{item_id}", s.DeleteTripItem)

				r.Get("/packing-list", s.ListPackings)
				r.Post("/packing-list", s.CreatePacking)
				r.Put("/packing-list/{item_id}/{bag_id}", s.UpdatePacking)
				r.Delete("/packing-list/{item_id}/{bag_id}", s.DeletePacking)
			})
		})

		r.Route("/bags", func(r chi.Router) {
			r.Get("/", s.ListBags)
			r.Post("/", s.CreateBag)
			r.Get("/{bag_id}", s.GetBag)
			r.Put("/{bag_id}", s.UpdateBag)
			r.Delete("/{bag_id}", s.DeleteBag)
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", s.ListItems)
			r.Post("/", s.CreateItem)
			r.Get("/{item_id}", s.GetItem)
			r.Put("/{item_id}", s.UpdateItem)
			r.Delete("/{item_id}", s.DeleteItem)
		})

		// "luggage" is the original name of the bag resource and is kept as an alias.
		r.Get("/packing/bag/{bag_id}/items", s.ListBagContents)
		r.Get("/packing/luggage/{bag_id}/items", s.ListBagContents)
	})

	return r
}
