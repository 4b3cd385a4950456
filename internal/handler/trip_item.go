package handler

import (
	"fmt"
	"net/http"

	"github.com/ricardofviana/trip-packer/internal/domain"
)

// amountOrDefault fills in the quantity and status a create payload omitted.
func amountOrDefault(quantity *int, status *domain.ItemStatus) (int, domain.ItemStatus) {
	q, st := domain.DefaultQuantity, domain.DefaultStatus
	if quantity != nil {
		q = *quantity
	}
	if status != nil {
		st = *status
	}
	return q, st
}

// ListTripItems handles GET /api/trips/{trip_id}/trip-items.
func (s *Server) ListTripItems(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "trip_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	items, err := s.svc.TripItems.List(r.Context(), tripID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toTripItemDetailResponse))
}

// CreateTripItem handles POST /api/trips/{trip_id}/trip-items.
func (s *Server) CreateTripItem(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "trip_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	var body createTripItemRequest
	if err := s.decode(r, &body); err != nil {
		s.respondError(w, r, err)
		return
	}
	quantity, status := amountOrDefault(body.Quantity, body.Status)
	created, err := s.svc.TripItems.Create(r.Context(), domain.TripItem{
		TripID:   tripID,
		ItemID:   *body.ItemID,
		Quantity: quantity,
		Status:   status,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTripItemResponse(created))
}

// UpdateTripItem handles PUT /api/trips/{trip_id}/trip-items/{item_id}.
func (s *Server) UpdateTripItem(w http.ResponseWriter, r *http.Request) {
	ids, err := pathUUIDs(r, "trip_id", "item_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	var body updateTripItemRequest
	if err := s.decode(r, &body); err != nil {
		s.respondError(w, r, err)
		return
	}
	updated, err := s.svc.TripItems.Update(r.Context(), ids[0], ids[1], domain.TripItemPatch{
		ItemID:   body.ItemID,
		Quantity: body.Quantity,
		Status:   body.Status,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTripItemResponse(updated))
}

// DeleteTripItem handles DELETE /api/trips/{trip_id}/trip-items/{item_id}.
func (s *Server) DeleteTripItem(w http.ResponseWriter, r *http.Request) {
	ids, err := pathUUIDs(r, "trip_id", "item_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	tripID, itemID := ids[0], ids[1]
	if err := s.svc.TripItems.Delete(r.Context(), tripID, itemID); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Trip item entry for item %s in trip %s has been deleted successfully", itemID, tripID),
	})
}
