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

func newDepartmentService(ctrl *gomock.Controller) (*DepartmentService, *mocks.MockDepartmentRepository) {
	mockDepts := mocks.NewMockDepartmentRepository(ctrl)
	integrity := NewIntegrityService(IntegrityServiceOptions{
		LocationRepo:   mocks.NewMockLocationRepository(ctrl),
		DepartmentRepo: mockDepts,
	})
	svc := NewDepartmentService(DepartmentServiceOptions{
		DepartmentRepo: mockDepts,
		Integrity:      integrity,
	})
	return svc, mockDepts
}

func TestDepartmentService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, mockDepts := newDepartmentService(ctrl)

	req := &model.CreateDepartmentRequest{Title: "Engineering"}
	mockDepts.EXPECT().GetByTitle(ctx, "Engineering").Return(nil, data.ErrDepartmentNotFound)
	mockDepts.EXPECT().Create(ctx, req).Return(&model.Department{ID: 1, Title: "Engineering"}, nil)

	dept, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), dept.ID)
}

func TestDepartmentService_Create_DuplicateTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, mockDepts := newDepartmentService(ctrl)

	mockDepts.EXPECT().GetByTitle(ctx, "Engineering").Return(&model.Department{ID: 7, Title: "Engineering"}, nil)
	mockDepts.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Create(ctx, &model.CreateDepartmentRequest{Title: "Engineering"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestDepartmentService_Update_SelfRenameAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, mockDepts := newDepartmentService(ctrl)

	req := model.UpdateDepartmentRequest{Title: "Engineering"}
	mockDepts.EXPECT().GetByTitle(ctx, "Engineering").Return(&model.Department{ID: 7, Title: "Engineering"}, nil)
	mockDepts.EXPECT().Update(ctx, int64(7), req).Return(&model.Department{ID: 7, Title: "Engineering"}, nil)

	dept, err := svc.Update(ctx, 7, req)
	require.NoError(t, err)
	assert.Equal(t, int64(7), dept.ID)
}

func TestDepartmentService_Update_TitleTakenByOther(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, mockDepts := newDepartmentService(ctrl)

	mockDepts.EXPECT().GetByTitle(ctx, "Sales").Return(&model.Department{ID: 3, Title: "Sales"}, nil)
	mockDepts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Update(ctx, 7, model.UpdateDepartmentRequest{Title: "Sales"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestDepartmentService_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, mockDepts := newDepartmentService(ctrl)

	mockDepts.EXPECT().GetByID(ctx, int64(404)).Return(nil, data.ErrDepartmentNotFound)
	_, err := svc.GetByID(ctx, 404)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDepartmentService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, mockDepts := newDepartmentService(ctrl)

	want := []*model.Department{{ID: 1, Title: "Engineering"}}
	mockDepts.EXPECT().List(ctx, 10, 0).Return(want, nil)

	depts, err := svc.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, want, depts)
}
