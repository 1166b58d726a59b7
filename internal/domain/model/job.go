//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxJobTitleLen       = 255
	maxJobDescriptionLen = 4000
)

// CodePattern matches a generated job code: "JOB-" plus 8 uppercase hex characters.
var CodePattern = regexp.MustCompile(`^JOB-[0-9A-F]{8}$`)

// Job represents a posted job opening. Code and PostedAt are assigned at
// creation and never change afterwards.
type Job struct {
	ID           int64     `json:"id"            db:"id"`
	Code         string    `json:"code"          db:"code"`
	Title        string    `json:"title"         db:"title"`
	Description  string    `json:"description"   db:"description"`
	LocationID   int64     `json:"location_id"   db:"location_id"`
	DepartmentID int64     `json:"department_id" db:"department_id"`
	PostedAt     time.Time `json:"posted_at"     db:"posted_at"`
	ClosingAt    time.Time `json:"closing_at"    db:"closing_at"`
}

// JobSummary is a listing row: a job joined with its location and department
// titles. The titles are optional; a dangling reference leaves them nil and
// the presentation layer decides what to render in that case.
type JobSummary struct {
	ID              int64     `json:"id"                         db:"id"`
	Code            string    `json:"code"                       db:"code"`
	Title           string    `json:"title"                      db:"title"`
	Description     string    `json:"description"                db:"description"`
	LocationID      int64     `json:"location_id"                db:"location_id"`
	DepartmentID    int64     `json:"department_id"              db:"department_id"`
	PostedAt        time.Time `json:"posted_at"                  db:"posted_at"`
	ClosingAt       time.Time `json:"closing_at"                 db:"closing_at"`
	LocationTitle   *string   `json:"location_title,omitempty"   db:"location_title"`
	DepartmentTitle *string   `json:"department_title,omitempty" db:"department_title"`
}

// JobPage is one page of a job listing with the total count of matching rows.
// Total is independent of pagination.
type JobPage struct {
	Total int           `json:"total"`
	Items []*JobSummary `json:"items"`
}

// JobListOptions controls filtering and pagination for listing jobs.
// Query matches title or description via ILIKE substring after trimming.
// LocationID and DepartmentID match exactly when set.
// PageNumber and PageSize are 1-based and must both be >= 1.
type JobListOptions struct {
	Query        string
	LocationID   *int64
	DepartmentID *int64
	PageNumber   int
	PageSize     int
}

// CreateJobRequest represents parameters to create a Job.
type CreateJobRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	LocationID   int64     `json:"location_id"`
	DepartmentID int64     `json:"department_id"`
	ClosingAt    time.Time `json:"closing_at"`
}

// UpdateJobRequest represents parameters to update a Job. Updates replace
// every caller-writable field; code and posted timestamp are immutable.
type UpdateJobRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	LocationID   int64     `json:"location_id"`
	DepartmentID int64     `json:"department_id"`
	ClosingAt    time.Time `json:"closing_at"`
}

// Validate validates CreateJobRequest and normalizes the closing time to UTC.
func (r *CreateJobRequest) Validate() error {
	if err := validateJobFields(r.Title, r.Description, r.LocationID, r.DepartmentID, r.ClosingAt); err != nil {
		return err
	}
	r.Title = strings.TrimSpace(r.Title)
	r.ClosingAt = r.ClosingAt.UTC()
	return nil
}

// Validate validates UpdateJobRequest and normalizes the closing time to UTC.
func (r *UpdateJobRequest) Validate() error {
	if err := validateJobFields(r.Title, r.Description, r.LocationID, r.DepartmentID, r.ClosingAt); err != nil {
		return err
	}
	r.Title = strings.TrimSpace(r.Title)
	r.ClosingAt = r.ClosingAt.UTC()
	return nil
}

func validateJobFields(title, description string, locationID, departmentID int64, closingAt time.Time) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(strings.TrimSpace(title)) > maxJobTitleLen {
		return errors.New("title cannot exceed 255 characters")
	}
	if utf8.RuneCountInString(description) > maxJobDescriptionLen {
		return errors.New("description cannot exceed 4000 characters")
	}
	if locationID <= 0 {
		return errors.New("location_id is required and cannot be empty")
	}
	if departmentID <= 0 {
		return errors.New("department_id is required and cannot be empty")
	}
	if closingAt.IsZero() {
		return errors.New("closing_at is required and cannot be empty")
	}
	return nil
}
