package model

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const maxLocationFieldLen = 255

// Location represents a physical place a job can be posted for.
type Location struct {
	ID         int64  `json:"id"          db:"id"`
	Title      string `json:"title"       db:"title"`
	City       string `json:"city"        db:"city"`
	State      string `json:"state"       db:"state"`
	Country    string `json:"country"     db:"country"`
	PostalCode string `json:"postal_code" db:"postal_code"`
}

// CreateLocationRequest represents parameters to create a Location.
type CreateLocationRequest struct {
	Title      string `json:"title"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// UpdateLocationRequest represents parameters to update a Location.
// Updates replace every field.
type UpdateLocationRequest struct {
	Title      string `json:"title"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// Validate validates CreateLocationRequest.
func (r *CreateLocationRequest) Validate() error {
	if err := validateLocationFields(r.Title, r.City, r.State, r.Country, r.PostalCode); err != nil {
		return err
	}
	r.Title = strings.TrimSpace(r.Title)
	return nil
}

// Validate validates UpdateLocationRequest.
func (r *UpdateLocationRequest) Validate() error {
	if err := validateLocationFields(r.Title, r.City, r.State, r.Country, r.PostalCode); err != nil {
		return err
	}
	r.Title = strings.TrimSpace(r.Title)
	return nil
}

func validateLocationFields(title, city, state, country, postalCode string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("title is required and cannot be empty")
	}
	for name, v := range map[string]string{
		"title":       title,
		"city":        city,
		"state":       state,
		"country":     country,
		"postal_code": postalCode,
	} {
		if utf8.RuneCountInString(v) > maxLocationFieldLen {
			return errors.New(name + " cannot exceed 255 characters")
		}
	}
	return nil
}
