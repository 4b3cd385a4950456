package handler

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/ricardofviana/trip-packer/internal/domain"
)

// Request bodies. Create payloads require every identifying field; update
// payloads make every field optional so only supplied fields change.

type createTripRequest struct {
	Name      string              `json:"name" validate:"required,max=255"`
	StartDate *openapi_types.Date `json:"start_date" validate:"required"`
	EndDate   *openapi_types.Date `json:"end_date" validate:"required"`
}

type updateTripRequest struct {
	Name      *string             `json:"name" validate:"omitempty,min=1,max=255"`
	StartDate *openapi_types.Date `json:"start_date"`
	EndDate   *openapi_types.Date `json:"end_date"`
}

type createBagRequest struct {
	Name string         `json:"name" validate:"required,max=255"`
	Type domain.BagType `json:"type" validate:"required,oneof=BACKPACK CARRY_ON CHECKED_MEDIUM CHECKED_LARGE"`
}

type updateBagRequest struct {
	Name *string         `json:"name" validate:"omitempty,min=1,max=255"`
	Type *domain.BagType `json:"type" validate:"omitempty,oneof=BACKPACK CARRY_ON CHECKED_MEDIUM CHECKED_LARGE"`
}

type createItemRequest struct {
	Name     string              `json:"name" validate:"required,max=255"`
	Category domain.ItemCategory `json:"category" validate:"required,oneof=CLOTHING ELECTRONICS TOILETRIES DOCUMENTS MEDICATION ACCESSORIES OTHER"`
}

type updateItemRequest struct {
	Name     *string              `json:"name" validate:"omitempty,min=1,max=255"`
	Category *domain.ItemCategory `json:"category" validate:"omitempty,oneof=CLOTHING ELECTRONICS TOILETRIES DOCUMENTS MEDICATION ACCESSORIES OTHER"`
}

type addTripBagRequest struct {
	BagID *uuid.UUID `json:"bag_id" validate:"required"`
}

type createTripItemRequest struct {
	ItemID   *uuid.UUID         `json:"item_id" validate:"required"`
	Quantity *int               `json:"quantity" validate:"omitempty,min=1"`
	Status   *domain.ItemStatus `json:"status" validate:"omitempty,oneof=UNPACKED PACKED TO_BUY"`
}

type updateTripItemRequest struct {
	ItemID   *uuid.UUID         `json:"item_id"`
	Quantity *int               `json:"quantity" validate:"omitempty,min=1"`
	Status   *domain.ItemStatus `json:"status" validate:"omitempty,oneof=UNPACKED PACKED TO_BUY"`
}

type createPackingRequest struct {
	ItemID   *uuid.UUID         `json:"item_id" validate:"required"`
	BagID    *uuid.UUID         `json:"bag_id" validate:"required"`
	Quantity *int               `json:"quantity" validate:"omitempty,min=1"`
	Status   *domain.ItemStatus `json:"status" validate:"omitempty,oneof=UNPACKED PACKED TO_BUY"`
}

type updatePackingRequest struct {
	BagID    *uuid.UUID         `json:"bag_id"`
	Quantity *int               `json:"quantity" validate:"omitempty,min=1"`
	Status   *domain.ItemStatus `json:"status" validate:"omitempty,oneof=UNPACKED PACKED TO_BUY"`
}

// Response bodies. Detail types embed their base so the JSON stays flat.

type tripResponse struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	StartDate openapi_types.Date `json:"start_date"`
	EndDate   openapi_types.Date `json:"end_date"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type tripDetailResponse struct {
	tripResponse
	Bags      []bagResponse            `json:"bags"`
	TripItems []tripItemDetailResponse `json:"trip_items"`
}

type tripOverviewResponse struct {
	Total    int `json:"total"`
	Packed   int `json:"PACKED"`
	Unpacked int `json:"UNPACKED"`
	ToBuy    int `json:"TO_BUY"`
}

type bagResponse struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Type      domain.BagType `json:"type"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type itemResponse struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Category  domain.ItemCategory `json:"category"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

type tripBagResponse struct {
	TripID    uuid.UUID `json:"trip_id"`
	BagID     uuid.UUID `json:"bag_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type tripItemResponse struct {
	TripID    uuid.UUID         `json:"trip_id"`
	ItemID    uuid.UUID         `json:"item_id"`
	Quantity  int               `json:"quantity"`
	Status    domain.ItemStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type tripItemDetailResponse struct {
	tripItemResponse
	Item itemResponse `json:"item"`
}

type packingResponse struct {
	TripID    uuid.UUID         `json:"trip_id"`
	ItemID    uuid.UUID         `json:"item_id"`
	BagID     uuid.UUID         `json:"bag_id"`
	Quantity  int               `json:"quantity"`
	Status    domain.ItemStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type packingDetailResponse struct {
	packingResponse
	Item itemResponse `json:"item"`
	Bag  bagResponse  `json:"bag"`
}

type bagContentResponse struct {
	packingResponse
	Item     itemResponse `json:"item"`
	IsPacked bool         `json:"is_packed"`
}

// --- mapping helpers --------------------------------------------------------

func toTripResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:        t.ID,
		Name:      t.Name,
		StartDate: openapi_types.Date{Time: t.StartDate},
		EndDate:   openapi_types.Date{Time: t.EndDate},
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toBagResponse(b domain.Bag) bagResponse {
	return bagResponse{ID: b.ID, Name: b.Name, Type: b.Type, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

func toItemResponse(i domain.Item) itemResponse {
	return itemResponse{ID: i.ID, Name: i.Name, Category: i.Category, CreatedAt: i.CreatedAt, UpdatedAt: i.UpdatedAt}
}

func toTripBagResponse(tb domain.TripBag) tripBagResponse {
	return tripBagResponse{TripID: tb.TripID, BagID: tb.BagID, CreatedAt: tb.CreatedAt, UpdatedAt: tb.UpdatedAt}
}

func toTripItemResponse(ti domain.TripItem) tripItemResponse {
	return tripItemResponse{
		TripID:    ti.TripID,
		ItemID:    ti.ItemID,
		Quantity:  ti.Quantity,
		Status:    ti.Status,
		CreatedAt: ti.CreatedAt,
		UpdatedAt: ti.UpdatedAt,
	}
}

func toTripItemDetailResponse(d domain.TripItemDetail) tripItemDetailResponse {
	return tripItemDetailResponse{tripItemResponse: toTripItemResponse(d.TripItem), Item: toItemResponse(d.Item)}
}

func toPackingResponse(p domain.Packing) packingResponse {
	return packingResponse{
		TripID:    p.TripID,
		ItemID:    p.ItemID,
		BagID:     p.BagID,
		Quantity:  p.Quantity,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// mapSlice converts every element of in with fn. The result is never nil,
// so empty lists encode as [] rather than null.
func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// dateOf returns the time inside an optional request date.
func dateOf(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
