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

// LocationServiceOptions groups dependencies for LocationService.
type LocationServiceOptions struct {
	LocationRepo core.LocationRepository
}

// LocationService provides CRU operations for locations. Locations are never
// deleted; jobs keep referencing them for their lifetime.
type LocationService struct {
	locations core.LocationRepository
}

// NewLocationService constructs a new LocationService.
func NewLocationService(opts LocationServiceOptions) *LocationService {
	return &LocationService{locations: opts.LocationRepo}
}

// Create creates a location.
func (s *LocationService) Create(ctx context.Context, req *model.CreateLocationRequest) (*model.Location, error) {
	if req == nil {
		return nil, apperrors.InvalidArgument("create location request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInvalidArgument, err.Error())
	}

	loc, err := s.locations.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create location: %w", err)
	}
	return loc, nil
}

// GetByID retrieves a location by ID.
func (s *LocationService) GetByID(ctx context.Context, id int64) (*model.Location, error) {
	loc, err := s.locations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrLocationNotFound) {
			return nil, apperrors.NotFound("location not found")
		}
		return nil, err
	}
	return loc, nil
}

// Update replaces every field of a location.
func (s *LocationService) Update(ctx context.Context, id int64, req model.UpdateLocationRequest) (*model.Location, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInvalidArgument, err.Error())
	}

	loc, err := s.locations.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, data.ErrLocationNotFound) {
			return nil, apperrors.NotFound("location not found")
		}
		return nil, err
	}
	return loc, nil
}

// List returns a page of locations.
func (s *LocationService) List(ctx context.Context, limit, offset int) ([]*model.Location, error) {
	locs, err := s.locations.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locs, nil
}
