package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hireground/catalog-api/internal/core"
	"github.com/hireground/catalog-api/internal/data"
	"github.com/hireground/catalog-api/internal/domain/model"
	apperrors "github.com/hireground/catalog-api/internal/errors"
)

// JobServiceOptions groups dependencies for JobService.
type JobServiceOptions struct {
	JobRepo   core.JobRepository
	Integrity *IntegrityService
	// MaxPageSize caps the page size accepted by List. Zero means the
	// default of 100.
	MaxPageSize int
}

// JobService orchestrates job postings: reference validation, code
// generation, and listing.
type JobService struct {
	jobs        core.JobRepository
	integrity   *IntegrityService
	maxPageSize int
}

const defaultMaxPageSize = 100

// NewJobService constructs a new JobService.
func NewJobService(opts JobServiceOptions) *JobService {
	maxPageSize := opts.MaxPageSize
	if maxPageSize <= 0 {
		maxPageSize = defaultMaxPageSize
	}
	return &JobService{
		jobs:        opts.JobRepo,
		integrity:   opts.Integrity,
		maxPageSize: maxPageSize,
	}
}

// Create validates the referenced location and department, generates a unique
// job code, and persists the posting. The posting timestamp is stamped by the
// store layer.
func (s *JobService) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	if req == nil {
		return nil, apperrors.InvalidArgument("create job request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInvalidArgument, err.Error())
	}
	if err := s.integrity.ValidateJobReferences(ctx, req.LocationID, req.DepartmentID); err != nil {
		return nil, err
	}

	job, err := s.jobs.Create(ctx, generateJobCode(), req)
	if err != nil {
		return nil, mapJobStoreErr(err)
	}
	return job, nil
}

// GetByID retrieves a job by ID.
func (s *JobService) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, mapJobStoreErr(err)
	}
	return job, nil
}

// Update replaces every caller-writable field of a job after re-validating
// the references. Code and posting timestamp survive unchanged.
func (s *JobService) Update(ctx context.Context, id int64, req model.UpdateJobRequest) (*model.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInvalidArgument, err.Error())
	}
	if err := s.integrity.ValidateJobReferences(ctx, req.LocationID, req.DepartmentID); err != nil {
		return nil, err
	}

	job, err := s.jobs.Update(ctx, id, req)
	if err != nil {
		return nil, mapJobStoreErr(err)
	}
	return job, nil
}

// List returns one page of job summaries with the total match count.
// Page numbering starts at 1.
func (s *JobService) List(ctx context.Context, opts model.JobListOptions) (*model.JobPage, error) {
	if opts.PageNumber < 1 {
		return nil, apperrors.InvalidArgumentField("page", "page must be at least 1")
	}
	if opts.PageSize < 1 {
		return nil, apperrors.InvalidArgumentField("page_size", "page_size must be at least 1")
	}
	if opts.PageSize > s.maxPageSize {
		return nil, apperrors.InvalidArgumentField("page_size",
			fmt.Sprintf("page_size cannot exceed %d", s.maxPageSize))
	}

	page, err := s.jobs.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return page, nil
}

// generateJobCode produces a code of the form JOB-XXXXXXXX with eight
// uppercase hex digits drawn from a random UUID. Collisions are left to the
// store's unique constraint; they are not retried.
func generateJobCode() string {
	id := uuid.New()
	return "JOB-" + strings.ToUpper(hex.EncodeToString(id[:4]))
}

func mapJobStoreErr(err error) error {
	switch {
	case errors.Is(err, data.ErrJobNotFound):
		return apperrors.NotFound("job not found")
	case errors.Is(err, data.ErrJobCodeExists):
		return apperrors.Conflict("generated job code already exists")
	case errors.Is(err, data.ErrJobReferenceMissing):
		return apperrors.FailedPrecondition("referenced location or department does not exist")
	default:
		return apperrors.MapDBError(err)
	}
}
