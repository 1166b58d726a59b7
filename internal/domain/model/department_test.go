package model

import (
	"strings"
	"testing"
)

func TestCreateDepartmentRequest_Validate(t *testing.T) {
	req := CreateDepartmentRequest{Title: "  Engineering  "}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Title != "Engineering" {
		t.Errorf("title not trimmed: %q", req.Title)
	}

	empty := CreateDepartmentRequest{Title: "   "}
	if err := empty.Validate(); err == nil || err.Error() != "title is required and cannot be empty" {
		t.Errorf("error = %v", err)
	}

	long := CreateDepartmentRequest{Title: strings.Repeat("x", 256)}
	if err := long.Validate(); err == nil || err.Error() != "title cannot exceed 255 characters" {
		t.Errorf("error = %v", err)
	}
}

func TestUpdateDepartmentRequest_Validate(t *testing.T) {
	req := UpdateDepartmentRequest{Title: "Sales"}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	empty := UpdateDepartmentRequest{}
	if err := empty.Validate(); err == nil {
		t.Fatal("expected error for empty title")
	}
}

func TestCreateLocationRequest_Validate(t *testing.T) {
	req := CreateLocationRequest{
		Title:      " HQ ",
		City:       "Minneapolis",
		State:      "MN",
		Country:    "US",
		PostalCode: "55403",
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Title != "HQ" {
		t.Errorf("title not trimmed: %q", req.Title)
	}

	empty := CreateLocationRequest{City: "Somewhere"}
	if err := empty.Validate(); err == nil || err.Error() != "title is required and cannot be empty" {
		t.Errorf("error = %v", err)
	}

	long := CreateLocationRequest{Title: "HQ", City: strings.Repeat("c", 256)}
	if err := long.Validate(); err == nil || err.Error() != "city cannot exceed 255 characters" {
		t.Errorf("error = %v", err)
	}
}
