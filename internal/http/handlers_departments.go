package httpx

import (
	"net/http"

	"github.com/hireground/catalog-api/internal/domain/model"
	apperrors "github.com/hireground/catalog-api/internal/errors"
	"github.com/hireground/catalog-api/internal/service"
)

// DepartmentHandlers provides HTTP handlers for department operations.
type DepartmentHandlers struct {
	Svc *service.DepartmentService
}

// Create handles HTTP requests to create a new department.
func (h *DepartmentHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateDepartmentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	dept, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, dept)
}

// GetByID handles HTTP requests to fetch a single department.
func (h *DepartmentHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r)
	if !ok {
		WriteAppError(w, apperrors.InvalidArgument("department id must be a positive integer"))
		return
	}

	dept, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, dept)
}

// Update handles HTTP requests to rename a department.
func (h *DepartmentHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r)
	if !ok {
		WriteAppError(w, apperrors.InvalidArgument("department id must be a positive integer"))
		return
	}

	var req model.UpdateDepartmentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	dept, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, dept)
}

// List handles HTTP requests to list departments with limit/offset paging.
func (h *DepartmentHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, 100)

	depts, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, depts)
}
