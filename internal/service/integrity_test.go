package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hireground/catalog-api/internal/data"
	"github.com/hireground/catalog-api/internal/domain/model"
	apperrors "github.com/hireground/catalog-api/internal/errors"
	"github.com/hireground/catalog-api/internal/mocks"
)

func newIntegrityService(ctrl *gomock.Controller) (*IntegrityService, *mocks.MockLocationRepository, *mocks.MockDepartmentRepository) {
	mockLocs := mocks.NewMockLocationRepository(ctrl)
	mockDepts := mocks.NewMockDepartmentRepository(ctrl)
	svc := NewIntegrityService(IntegrityServiceOptions{
		LocationRepo:   mockLocs,
		DepartmentRepo: mockDepts,
	})
	return svc, mockLocs, mockDepts
}

func TestIntegrityService_ValidateJobReferences_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, mockLocs, mockDepts := newIntegrityService(ctrl)

	mockLocs.EXPECT().Exists(ctx, int64(1)).Return(true, nil)
	mockDepts.EXPECT().Exists(ctx, int64(2)).Return(true, nil)

	require.NoError(t, svc.ValidateJobReferences(ctx, 1, 2))
}

func TestIntegrityService_ValidateJobReferences_MissingLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, mockLocs, mockDepts := newIntegrityService(ctrl)

	mockLocs.EXPECT().Exists(ctx, int64(9)).Return(false, nil)
	// the location failure short-circuits, the department is never checked
	mockDepts.EXPECT().Exists(gomock.Any(), gomock.Any()).Times(0)

	err := svc.ValidateJobReferences(ctx, 9, 2)
	require.Error(t, err)
	assert.True(t, apperrors.IsFailedPrecondition(err))
	assert.Contains(t, err.Error(), "location 9 does not exist")
}

func TestIntegrityService_ValidateJobReferences_MissingDepartment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, mockLocs, mockDepts := newIntegrityService(ctrl)

	mockLocs.EXPECT().Exists(ctx, int64(1)).Return(true, nil)
	mockDepts.EXPECT().Exists(ctx, int64(8)).Return(false, nil)

	err := svc.ValidateJobReferences(ctx, 1, 8)
	require.Error(t, err)
	assert.True(t, apperrors.IsFailedPrecondition(err))
	assert.Contains(t, err.Error(), "department 8 does not exist")
}

func TestIntegrityService_ValidateDepartmentTitleUnique(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, _, mockDepts := newIntegrityService(ctrl)

	// unused title passes
	mockDepts.EXPECT().GetByTitle(ctx, "Engineering").Return(nil, data.ErrDepartmentNotFound)
	require.NoError(t, svc.ValidateDepartmentTitleUnique(ctx, "Engineering", 0))

	// taken by another department conflicts
	mockDepts.EXPECT().GetByTitle(ctx, "Sales").Return(&model.Department{ID: 3, Title: "Sales"}, nil)
	err := svc.ValidateDepartmentTitleUnique(ctx, "Sales", 0)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	// self-match on update passes
	mockDepts.EXPECT().GetByTitle(ctx, "Sales").Return(&model.Department{ID: 3, Title: "Sales"}, nil)
	require.NoError(t, svc.ValidateDepartmentTitleUnique(ctx, "Sales", 3))
}
