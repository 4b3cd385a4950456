package handler

import (
	"fmt"
	"net/http"

	"github.com/ricardofviana/trip-packer/internal/domain"
)

// ListItems handles GET /api/items.
func (s *Server) ListItems(w http.ResponseWriter, r *http.Request) {
	params, err := listParams(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	items, err := s.svc.Items.List(r.Context(), params)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toItemResponse))
}

// CreateItem handles POST /api/items.
func (s *Server) CreateItem(w http.ResponseWriter, r *http.Request) {
	var body createItemRequest
	if err := s.decode(r, &body); err != nil {
		s.respondError(w, r, err)
		return
	}
	created, err := s.svc.Items.Create(r.Context(), domain.Item{Name: body.Name, Category: body.Category})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemResponse(created))
}

// GetItem handles GET /api/items/{item_id}.
func (s *Server) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "item_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	item, err := s.svc.Items.GetByID(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// UpdateItem handles PUT /api/items/{item_id}.
func (s *Server) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "item_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	var body updateItemRequest
	if err := s.decode(r, &body); err != nil {
		s.respondError(w, r, err)
		return
	}
	updated, err := s.svc.Items.Update(r.Context(), id, domain.ItemPatch{Name: body.Name, Category: body.Category})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(updated))
}

// DeleteItem handles DELETE /api/items/{item_id}.
func (s *Server) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "item_id")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if err := s.svc.Items.Delete(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Item with id %s has been deleted successfully", id),
	})
}
