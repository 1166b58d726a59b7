package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hireground/catalog-api/internal/core"
	"github.com/hireground/catalog-api/internal/data"
	apperrors "github.com/hireground/catalog-api/internal/errors"
)

// IntegrityServiceOptions groups dependencies for IntegrityService.
type IntegrityServiceOptions struct {
	LocationRepo   core.LocationRepository
	DepartmentRepo core.DepartmentRepository
}

// IntegrityService performs cross-entity checks before writes: job reference
// existence and department title uniqueness. The store constraints back these
// checks up, so a concurrent writer slipping between check and write still
// cannot corrupt the catalog.
type IntegrityService struct {
	locations   core.LocationRepository
	departments core.DepartmentRepository
}

// NewIntegrityService constructs a new IntegrityService.
func NewIntegrityService(opts IntegrityServiceOptions) *IntegrityService {
	return &IntegrityService{
		locations:   opts.LocationRepo,
		departments: opts.DepartmentRepo,
	}
}

// ValidateJobReferences verifies that both referenced entities exist. Each
// reference is checked independently so the caller learns which one is
// missing.
func (s *IntegrityService) ValidateJobReferences(ctx context.Context, locationID, departmentID int64) error {
	ok, err := s.locations.Exists(ctx, locationID)
	if err != nil {
		return fmt.Errorf("check location reference: %w", err)
	}
	if !ok {
		return apperrors.FailedPreconditionf("location %d does not exist", locationID)
	}

	ok, err = s.departments.Exists(ctx, departmentID)
	if err != nil {
		return fmt.Errorf("check department reference: %w", err)
	}
	if !ok {
		return apperrors.FailedPreconditionf("department %d does not exist", departmentID)
	}
	return nil
}

// ValidateDepartmentTitleUnique verifies no other department already carries
// the given title. The comparison is exact and case-sensitive. Pass excludeID
// 0 on create; on update pass the department's own ID so a self-match (saving
// without renaming) is allowed.
func (s *IntegrityService) ValidateDepartmentTitleUnique(ctx context.Context, title string, excludeID int64) error {
	existing, err := s.departments.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, data.ErrDepartmentNotFound) {
			return nil
		}
		return fmt.Errorf("check department title: %w", err)
	}
	if existing.ID != excludeID {
		return apperrors.Conflictf("department title %q already exists", title)
	}
	return nil
}
