package core

import (
	"context"

	"github.com/hireground/catalog-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	// Create inserts a job. The repository stamps the posted timestamp from
	// its time provider; code generation is the caller's responsibility.
	Create(ctx context.Context, code string, req *model.CreateJobRequest) (*model.Job, error)
	GetByID(ctx context.Context, id int64) (*model.Job, error)
	// Update replaces every caller-writable field of the job. Code and the
	// posted timestamp are never modified.
	Update(ctx context.Context, id int64, req model.UpdateJobRequest) (*model.Job, error)
	// List returns the total count of matching rows (independent of
	// pagination) and one page of summaries joined with location and
	// department titles.
	List(ctx context.Context, opts model.JobListOptions) (*model.JobPage, error)
}

// LocationRepository defines the interface for location data operations.
type LocationRepository interface {
	Create(ctx context.Context, req *model.CreateLocationRequest) (*model.Location, error)
	GetByID(ctx context.Context, id int64) (*model.Location, error)
	Update(ctx context.Context, id int64, req model.UpdateLocationRequest) (*model.Location, error)
	List(ctx context.Context, limit, offset int) ([]*model.Location, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// DepartmentRepository defines the interface for department data operations.
type DepartmentRepository interface {
	Create(ctx context.Context, req *model.CreateDepartmentRequest) (*model.Department, error)
	GetByID(ctx context.Context, id int64) (*model.Department, error)
	// GetByTitle performs a case-sensitive exact match on the title.
	GetByTitle(ctx context.Context, title string) (*model.Department, error)
	Update(ctx context.Context, id int64, req model.UpdateDepartmentRequest) (*model.Department, error)
	List(ctx context.Context, limit, offset int) ([]*model.Department, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
