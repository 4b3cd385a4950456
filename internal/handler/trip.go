package handler

import (
	"fmt"
	"net/http"

	"github.com/ricardofviana/trip-packer/internal/domain"
)

// ListTrips handles GET /api/trips.
// Supports ?skip= and ?limit= query parameters (defaults: skip=0, limit=100, max=500).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	params, err := listParams(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	trips, err := s.svc.Trips.List(r.Context(), params)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(trips, toTripResponse))
}

// CreateTrip handles POST /api/trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body createTripRequest
	if err := s.decode(r, &body); err != nil {
		s.respondError(w, r, err)
		return
	}
	created, err := s.svc.Trips.Create(r.Context(), domain.Trip{
		Name:      body.Name,
		StartDate: body.StartDate.Time,
		EndDate:   body.EndDate.Time,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTripResponse(created))
}

// GetTrip handles GET /api/trips/{trip_id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "trip_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	trip, err := s.svc.Trips.GetByID(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTripResponse(trip))
}

// UpdateTrip handles PUT /api/trips/{trip_id}. Only supplied fields change.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "trip_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	var body updateTripRequest
	if err := s.decode(r, &body); err != nil {
		s.respondError(w, r, err)
		return
	}
	updated, err := s.svc.Trips.Update(r.Context(), id, domain.TripPatch{
		Name:      body.Name,
		StartDate: dateOf(body.StartDate),
		EndDate:   dateOf(body.EndDate),
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTripResponse(updated))
}

// DeleteTrip handles DELETE /api/trips/{trip_id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "trip_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if err := s.svc.Trips.Delete(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Trip with id %s has been deleted successfully", id),
	})
}

// GetTripDetails handles GET /api/trips/{trip_id}/details.
func (s *Server) GetTripDetails(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "trip_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	detail, err := s.svc.Trips.Detail(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripDetailResponse{
		tripResponse: toTripResponse(detail.Trip),
		Bags:         mapSlice(detail.Bags, toBagResponse),
		TripItems:    mapSlice(detail.TripItems, toTripItemDetailResponse),
	})
}

// GetTripOverview handles GET /api/trips/{trip_id}/overview.
func (s *Server) GetTripOverview(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "trip_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	o, err := s.svc.Trips.Overview(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripOverviewResponse{
		Total:    o.Total,
		Packed:   o.Packed,
		Unpacked: o.Unpacked,
		ToBuy:    o.ToBuy,
	})
}
