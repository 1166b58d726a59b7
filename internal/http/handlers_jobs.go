// Package httpx provides HTTP handlers and utilities for the job catalog API.
package httpx

import (
	"net/http"
	"time"

	"github.com/hireground/catalog-api/internal/domain/model"
	apperrors "github.com/hireground/catalog-api/internal/errors"
	"github.com/hireground/catalog-api/internal/service"
)

// unknownTitle is substituted for a missing location or department title in
// listing responses. Dangling references keep the row; they never hide it.
const unknownTitle = "Unknown"

// JobHandlers provides HTTP handlers for job posting operations.
type JobHandlers struct {
	Svc *service.JobService
}

// jobSummaryResponse is the wire shape of one listing row. Titles are
// resolved strings, not nullable references.
type jobSummaryResponse struct {
	ID              int64     `json:"id"`
	Code            string    `json:"code"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LocationID      int64     `json:"location_id"`
	LocationTitle   string    `json:"location_title"`
	DepartmentID    int64     `json:"department_id"`
	DepartmentTitle string    `json:"department_title"`
	PostedAt        time.Time `json:"posted_at"`
	ClosingAt       time.Time `json:"closing_at"`
}

// jobPageResponse is the wire shape of a job listing page.
type jobPageResponse struct {
	Total    int                   `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
	Items    []*jobSummaryResponse `json:"items"`
}

// Create handles HTTP requests to create a new job posting.
func (h *JobHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, job)
}

// GetByID handles HTTP requests to fetch a single job posting.
func (h *JobHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r)
	if !ok {
		WriteAppError(w, apperrors.InvalidArgument("job id must be a positive integer"))
		return
	}

	job, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, job)
}

// Update handles HTTP requests to replace a job posting's fields.
func (h *JobHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r)
	if !ok {
		WriteAppError(w, apperrors.InvalidArgument("job id must be a positive integer"))
		return
	}

	var req model.UpdateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, job)
}

// List handles HTTP requests to search and page through job postings.
// Query params: q (text search), location_id, department_id, page, page_size.
func (h *JobHandlers) List(w http.ResponseWriter, r *http.Request) {
	pageNumber, ok := parseIntQueryStrict(r, "page", 1)
	if !ok {
		WriteAppError(w, apperrors.InvalidArgumentField("page", "must be an integer"))
		return
	}
	pageSize, ok := parseIntQueryStrict(r, "page_size", 20)
	if !ok {
		WriteAppError(w, apperrors.InvalidArgumentField("page_size", "must be an integer"))
		return
	}

	opts := model.JobListOptions{
		Query:        r.URL.Query().Get("q"),
		LocationID:   parseInt64Query(r, "location_id"),
		DepartmentID: parseInt64Query(r, "department_id"),
		PageNumber:   pageNumber,
		PageSize:     pageSize,
	}

	page, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	resp := &jobPageResponse{
		Total:    page.Total,
		Page:     opts.PageNumber,
		PageSize: opts.PageSize,
		Items:    make([]*jobSummaryResponse, 0, len(page.Items)),
	}
	for _, item := range page.Items {
		resp.Items = append(resp.Items, toJobSummaryResponse(item))
	}
	WriteJSON(w, http.StatusOK, resp)
}

func toJobSummaryResponse(item *model.JobSummary) *jobSummaryResponse {
	out := &jobSummaryResponse{
		ID:              item.ID,
		Code:            item.Code,
		Title:           item.Title,
		Description:     item.Description,
		LocationID:      item.LocationID,
		LocationTitle:   unknownTitle,
		DepartmentID:    item.DepartmentID,
		DepartmentTitle: unknownTitle,
		PostedAt:        item.PostedAt,
		ClosingAt:       item.ClosingAt,
	}
	if item.LocationTitle != nil {
		out.LocationTitle = *item.LocationTitle
	}
	if item.DepartmentTitle != nil {
		out.DepartmentTitle = *item.DepartmentTitle
	}
	return out
}
