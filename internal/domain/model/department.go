package model

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const maxDepartmentTitleLen = 255

// Department represents an organizational unit a job belongs to.
// Titles are unique across all departments, compared case-sensitively.
type Department struct {
	ID    int64  `json:"id"    db:"id"`
	Title string `json:"title" db:"title"`
}

// CreateDepartmentRequest represents parameters to create a Department.
type CreateDepartmentRequest struct {
	Title string `json:"title"`
}

// UpdateDepartmentRequest represents parameters to update a Department.
type UpdateDepartmentRequest struct {
	Title string `json:"title"`
}

// Validate validates CreateDepartmentRequest.
func (r *CreateDepartmentRequest) Validate() error {
	title, err := validateDepartmentTitle(r.Title)
	if err != nil {
		return err
	}
	r.Title = title
	return nil
}

// Validate validates UpdateDepartmentRequest.
func (r *UpdateDepartmentRequest) Validate() error {
	title, err := validateDepartmentTitle(r.Title)
	if err != nil {
		return err
	}
	r.Title = title
	return nil
}

func validateDepartmentTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > maxDepartmentTitleLen {
		return "", errors.New("title cannot exceed 255 characters")
	}
	return trimmed, nil
}
