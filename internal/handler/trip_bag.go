package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListTripBags handles GET /api/trips/{trip_id}/bags.
func (s *Server) ListTripBags(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "trip_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	bags, err := s.svc.TripBags.List(r.Context(), tripID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(bags, toBagResponse))
}

// AddTripBag handles POST /api/trips/{trip_id}/bags with a {"bag_id"} body
// and POST /api/trips/{trip_id}/bags/{bag_id} with the bag in the path.
func (s *Server) AddTripBag(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "trip_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	bagID, err := s.tripBagTarget(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	tb, err := s.svc.TripBags.Add(r.Context(), tripID, bagID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTripBagResponse(tb))
}

func (s *Server) tripBagTarget(r *http.Request) (uuid.UUID, error) {
	if chi.URLParam(r, "bag_id") != "" {
		return pathUUID(r, "bag_id")
	}
	var body addTripBagRequest
	if err := s.decode(r, &body); err != nil {
		return uuid.Nil, err
	}
	return *body.BagID, nil
}

// RemoveTripBag handles DELETE /api/trips/{trip_id}/bags/{bag_id}.
func (s *Server) RemoveTripBag(w http.ResponseWriter, r *http.Request) {
	ids, err := pathUUIDs(r, "trip_id", "bag_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	tripID, bagID := ids[0], ids[1]
	if err := s.svc.TripBags.Remove(r.Context(), tripID, bagID); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Bag with id %s has been removed from trip %s successfully", bagID, tripID),
	})
}
