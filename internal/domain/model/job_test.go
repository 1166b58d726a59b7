package model

import (
	"strings"
	"testing"
	"time"
)

func validCreateJobRequest() CreateJobRequest {
	return CreateJobRequest{
		Title:        "Backend Engineer",
		Description:  "Build services",
		LocationID:   1,
		DepartmentID: 2,
		ClosingAt:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateJobRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateJobRequest)
		wantErr string
	}{
		{"valid", func(*CreateJobRequest) {}, ""},
		{"empty title", func(r *CreateJobRequest) { r.Title = "  " }, "title is required and cannot be empty"},
		{
			"title too long",
			func(r *CreateJobRequest) { r.Title = strings.Repeat("a", 256) },
			"title cannot exceed 255 characters",
		},
		{
			"description too long",
			func(r *CreateJobRequest) { r.Description = strings.Repeat("d", 4001) },
			"description cannot exceed 4000 characters",
		},
		{"missing location", func(r *CreateJobRequest) { r.LocationID = 0 }, "location_id is required and cannot be empty"},
		{
			"missing department",
			func(r *CreateJobRequest) { r.DepartmentID = 0 },
			"department_id is required and cannot be empty",
		},
		{
			"missing closing time",
			func(r *CreateJobRequest) { r.ClosingAt = time.Time{} },
			"closing_at is required and cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateJobRequest()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Fatalf("error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestCreateJobRequest_ValidateNormalizesClosingToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	req := validCreateJobRequest()
	req.ClosingAt = time.Date(2024, 2, 1, 10, 0, 0, 0, loc)

	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.ClosingAt.Location() != time.UTC {
		t.Errorf("closing time not normalized to UTC: %v", req.ClosingAt)
	}
	if !req.ClosingAt.Equal(time.Date(2024, 2, 1, 5, 0, 0, 0, time.UTC)) {
		t.Errorf("closing instant changed during normalization: %v", req.ClosingAt)
	}
}

func TestUpdateJobRequest_ValidateMirrorsCreate(t *testing.T) {
	req := UpdateJobRequest{
		Title:        "  Platform Engineer  ",
		Description:  "Run platforms",
		LocationID:   3,
		DepartmentID: 4,
		ClosingAt:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Title != "Platform Engineer" {
		t.Errorf("title not trimmed: %q", req.Title)
	}

	bad := UpdateJobRequest{Title: "x", LocationID: 1, DepartmentID: 0, ClosingAt: time.Now()}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for missing department_id")
	}
}

func TestCodePattern(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"JOB-0A1B2C3D", true},
		{"JOB-DEADBEEF", true},
		{"JOB-deadbeef", false},
		{"JOB-12345", false},
		{"JOB-123456789", false},
		{"JOBX12345678", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := CodePattern.MatchString(tt.code); got != tt.want {
			t.Errorf("CodePattern.MatchString(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
