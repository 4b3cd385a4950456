package handler

import (
	"fmt"
	"net/http"

	"github.com/ricardofviana/trip-packer/internal/domain"
)

// ListBags handles GET /api/bags.
func (s *Server) ListBags(w http.ResponseWriter, r *http.Request) {
	params, err := listParams(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	bags, err := s.svc.Bags.List(r.Context(), params)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(bags, toBagResponse))
}

// CreateBag handles POST /api/bags.
func (s *Server) CreateBag(w http.ResponseWriter, r *http.Request) {
	var body createBagRequest
	if err := s.decode(r, &body); err != nil {
		s.respondError(w, r, err)
		return
	}
	created, err := s.svc.Bags.Create(r.Context(), domain.Bag{Name: body.Name, Type: body.Type})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBagResponse(created))
}

// GetBag handles GET /api/bags/{bag_id}.
func (s *Server) GetBag(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "bag_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	bag, err := s.svc.Bags.GetByID(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBagResponse(bag))
}

// UpdateBag handles PUT /api/bags/{bag_id}.
func (s *Server) UpdateBag(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "bag_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	var body updateBagRequest
	if err := s.decode(r, &body); err != nil {
		s.respondError(w, r, err)
		return
	}
	updated, err := s.svc.Bags.Update(r.Context(), id, domain.BagPatch{Name: body.Name, Type: body.Type})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBagResponse(updated))
}

// DeleteBag handles DELETE /api/bags/{bag_id}.
func (s *Server) DeleteBag(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "bag_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if err := s.svc.Bags.Delete(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Bag with id %s has been deleted successfully", id),
	})
}
