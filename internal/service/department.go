package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hireground/catalog-api/internal/core"
	"github.com/hireground/catalog-api/internal/data"
	"github.com/hireground/catalog-api/internal/domain/model"
	apperrors "github.com/hireground/catalog-api/internal/errors"
)

// DepartmentServiceOptions groups dependencies for DepartmentService.
type DepartmentServiceOptions struct {
	DepartmentRepo core.DepartmentRepository
	Integrity      *IntegrityService
}

// DepartmentService provides CRU operations for departments with title
// uniqueness enforcement. Departments are never deleted.
type DepartmentService struct {
	departments core.DepartmentRepository
	integrity   *IntegrityService
}

// NewDepartmentService constructs a new DepartmentService.
func NewDepartmentService(opts DepartmentServiceOptions) *DepartmentService {
	return &DepartmentService{
		departments: opts.DepartmentRepo,
		integrity:   opts.Integrity,
	}
}

// Create creates a department after checking the title is unused.
func (s *DepartmentService) Create(ctx context.Context, req *model.CreateDepartmentRequest) (*model.Department, error) {
	if req == nil {
		return nil, apperrors.InvalidArgument("create department request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInvalidArgument, err.Error())
	}
	if err := s.integrity.ValidateDepartmentTitleUnique(ctx, req.Title, 0); err != nil {
		return nil, err
	}

	dept, err := s.departments.Create(ctx, req)
	if err != nil {
		return nil, mapDepartmentStoreErr(err)
	}
	return dept, nil
}

// GetByID retrieves a department by ID.
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*model.Department, error) {
	dept, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return nil, mapDepartmentStoreErr(err)
	}
	return dept, nil
}

// Update renames a department. Keeping the current title is allowed; taking
// another department's title is not.
func (s *DepartmentService) Update(ctx context.Context, id int64, req model.UpdateDepartmentRequest) (*model.Department, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInvalidArgument, err.Error())
	}
	if err := s.integrity.ValidateDepartmentTitleUnique(ctx, req.Title, id); err != nil {
		return nil, err
	}

	dept, err := s.departments.Update(ctx, id, req)
	if err != nil {
		return nil, mapDepartmentStoreErr(err)
	}
	return dept, nil
}

// List returns a page of departments.
func (s *DepartmentService) List(ctx context.Context, limit, offset int) ([]*model.Department, error) {
	depts, err := s.departments.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return depts, nil
}

func mapDepartmentStoreErr(err error) error {
	switch {
	case errors.Is(err, data.ErrDepartmentNotFound):
		return apperrors.NotFound("department not found")
	case errors.Is(err, data.ErrDepartmentTitleExists):
		return apperrors.Conflict("department title already exists")
	default:
		return apperrors.MapDBError(err)
	}
}
