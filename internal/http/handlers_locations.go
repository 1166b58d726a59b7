package httpx

import (
	"net/http"

	"github.com/hireground/catalog-api/internal/domain/model"
	apperrors "github.com/hireground/catalog-api/internal/errors"
	"github.com/hireground/catalog-api/internal/service"
)

// LocationHandlers provides HTTP handlers for location operations.
type LocationHandlers struct {
	Svc *service.LocationService
}

// Create handles HTTP requests to create a new location.
func (h *LocationHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateLocationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	loc, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, loc)
}

// GetByID handles HTTP requests to fetch a single location.
func (h *LocationHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r)
	if !ok {
		WriteAppError(w, apperrors.InvalidArgument("location id must be a positive integer"))
		return
	}

	loc, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, loc)
}

// Update handles HTTP requests to replace a location's fields.
func (h *LocationHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r)
	if !ok {
		WriteAppError(w, apperrors.InvalidArgument("location id must be a positive integer"))
		return
	}

	var req model.UpdateLocationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	loc, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, loc)
}

// List handles HTTP requests to list locations with limit/offset paging.
func (h *LocationHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, 100)

	locs, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, locs)
}
