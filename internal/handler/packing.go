package handler

import (
	"fmt"
	"net/http"

	"github.com/ricardofviana/trip-packer/internal/domain"
)

// ListPackings handles GET /api/trips/{trip_id}/packing-list.
func (s *Server) ListPackings(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "trip_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	list, err := s.svc.Packings.List(r.Context(), tripID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, func(d domain.PackingDetail) packingDetailResponse {
		return packingDetailResponse{
			packingResponse: toPackingResponse(d.Packing),
			Item:            toItemResponse(d.Item),
			Bag:             toBagResponse(d.Bag),
		}
	}))
}

// CreatePacking handles POST /api/trips/{trip_id}/packing-list.
func (s *Server) CreatePacking(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "trip_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	var body createPackingRequest
	if err := s.decode(r, &body); err != nil {
		s.respondError(w, r, err)
		return
	}
	quantity, status := amountOrDefault(body.Quantity, body.Status)
	created, err := s.svc.Packings.Create(r.Context(), domain.Packing{
		PackingKey: domain.PackingKey{TripID: tripID, ItemID: *body.ItemID, BagID: *body.BagID},
		Quantity:   quantity,
		Status:     status,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPackingResponse(created))
}

// packingKey binds the (trip, item, bag) key from the path.
func packingKey(r *http.Request) (domain.PackingKey, error) {
	ids, err := pathUUIDs(r, "trip_id", "item_id", "bag_id")
	if err != nil {
		return domain.PackingKey{}, err
	}
	return domain.PackingKey{TripID: ids[0], ItemID: ids[1], BagID: ids[2]}, nil
}

// UpdatePacking handles PUT /api/trips/{trip_id}/packing-list/{item_id}/{bag_id}.
func (s *Server) UpdatePacking(w http.ResponseWriter, r *http.Request) {
	key, err := packingKey(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	var body updatePackingRequest
	if err := s.decode(r, &body); err != nil {
		s.respondError(w, r, err)
		return
	}
	updated, err := s.svc.Packings.Update(r.Context(), key, domain.PackingPatch{
		BagID:    body.BagID,
		Quantity: body.Quantity,
		Status:   body.Status,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPackingResponse(updated))
}

// DeletePacking handles DELETE /api/trips/{trip_id}/packing-list/{item_id}/{bag_id}.
// Only the addressed row is removed.
func (s *Server) DeletePacking(w http.ResponseWriter, r *http.Request) {
	key, err := packingKey(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if err := s.svc.Packings.Delete(r.Context(), key); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Packing entry for item %s in trip %s in bag %s has been deleted successfully",
			key.ItemID, key.TripID, key.BagID),
	})
}

// ListBagContents handles GET /api/packing/bag/{bag_id}/items and its
// /api/packing/luggage alias. ?trip_id= restricts the result to one trip.
func (s *Server) ListBagContents(w http.ResponseWriter, r *http.Request) {
	bagID, err := pathUUID(r, "bag_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	tripID, err := queryUUID(r, "trip_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	contents, err := s.svc.Packings.ListByBag(r.Context(), bagID, tripID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(contents, func(c domain.BagContent) bagContentResponse {
		return bagContentResponse{
			packingResponse: toPackingResponse(c.Packing),
			Item:            toItemResponse(c.Item),
			IsPacked:        c.IsPacked(),
		}
	}))
}
