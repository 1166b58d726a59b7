package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hireground/catalog-api/internal/data"
	"github.com/hireground/catalog-api/internal/domain/model"
	apperrors "github.com/hireground/catalog-api/internal/errors"
	"github.com/hireground/catalog-api/internal/mocks"
)

type jobServiceMocks struct {
	jobs  *mocks.MockJobRepository
	locs  *mocks.MockLocationRepository
	depts *mocks.MockDepartmentRepository
}

func newJobService(ctrl *gomock.Controller) (*JobService, jobServiceMocks) {
	m := jobServiceMocks{
		jobs:  mocks.NewMockJobRepository(ctrl),
		locs:  mocks.NewMockLocationRepository(ctrl),
		depts: mocks.NewMockDepartmentRepository(ctrl),
	}
	integrity := NewIntegrityService(IntegrityServiceOptions{
		LocationRepo:   m.locs,
		DepartmentRepo: m.depts,
	})
	svc := NewJobService(JobServiceOptions{JobRepo: m.jobs, Integrity: integrity})
	return svc, m
}

func validJobCreate() *model.CreateJobRequest {
	return &model.CreateJobRequest{
		Title:        "Backend Engineer",
		Description:  "Build services.",
		LocationID:   1,
		DepartmentID: 2,
		ClosingAt:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestJobService_Create_GeneratesCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newJobService(ctrl)

	req := validJobCreate()
	m.locs.EXPECT().Exists(ctx, int64(1)).Return(true, nil)
	m.depts.EXPECT().Exists(ctx, int64(2)).Return(true, nil)
	m.jobs.EXPECT().Create(ctx, gomock.Any(), req).DoAndReturn(
		func(_ context.Context, code string, r *model.CreateJobRequest) (*model.Job, error) {
			assert.Regexp(t, model.CodePattern, code)
			return &model.Job{ID: 10, Code: code, Title: r.Title}, nil
		},
	).Times(1)

	job, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Regexp(t, model.CodePattern, job.Code)
}

func TestJobService_Create_MissingReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newJobService(ctrl)

	m.locs.EXPECT().Exists(ctx, int64(1)).Return(false, nil)
	m.jobs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Create(ctx, validJobCreate())
	require.Error(t, err)
	assert.True(t, apperrors.IsFailedPrecondition(err))
}

func TestJobService_Create_InvalidRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newJobService(ctrl)

	// validation failures never reach the reference checks or the store
	m.locs.EXPECT().Exists(gomock.Any(), gomock.Any()).Times(0)
	m.jobs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	req := validJobCreate()
	req.Title = "   "
	_, err := svc.Create(ctx, req)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidArgument(err))

	_, err = svc.Create(ctx, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidArgument(err))
}

func TestJobService_Create_CodeCollisionSurfacesConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newJobService(ctrl)

	m.locs.EXPECT().Exists(ctx, int64(1)).Return(true, nil)
	m.depts.EXPECT().Exists(ctx, int64(2)).Return(true, nil)
	// a collision is surfaced once, never retried with a fresh code
	m.jobs.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil, data.ErrJobCodeExists).Times(1)

	_, err := svc.Create(ctx, validJobCreate())
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestJobService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newJobService(ctrl)

	m.jobs.EXPECT().GetByID(ctx, int64(10)).Return(&model.Job{ID: 10, Code: "JOB-0A1B2C3D"}, nil)
	job, err := svc.GetByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), job.ID)

	m.jobs.EXPECT().GetByID(ctx, int64(404)).Return(nil, data.ErrJobNotFound)
	_, err = svc.GetByID(ctx, 404)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestJobService_Update_RevalidatesReferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newJobService(ctrl)

	req := model.UpdateJobRequest{
		Title:        "Staff Engineer",
		Description:  "Lead services.",
		LocationID:   3,
		DepartmentID: 4,
		ClosingAt:    time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	m.locs.EXPECT().Exists(ctx, int64(3)).Return(true, nil)
	m.depts.EXPECT().Exists(ctx, int64(4)).Return(true, nil)
	m.jobs.EXPECT().Update(ctx, int64(10), req).Return(&model.Job{ID: 10, Title: req.Title}, nil)

	job, err := svc.Update(ctx, 10, req)
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", job.Title)
}

func TestJobService_List_ValidatesPaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newJobService(ctrl)
	m.jobs.EXPECT().List(gomock.Any(), gomock.Any()).Times(0)

	cases := []struct {
		name  string
		opts  model.JobListOptions
		field string
	}{
		{"zero page", model.JobListOptions{PageNumber: 0, PageSize: 10}, "page"},
		{"zero page size", model.JobListOptions{PageNumber: 1, PageSize: 0}, "page_size"},
		{"oversized page", model.JobListOptions{PageNumber: 1, PageSize: defaultMaxPageSize + 1}, "page_size"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.List(ctx, tc.opts)
			require.Error(t, err)
			assert.True(t, apperrors.IsInvalidArgument(err))
			assert.Equal(t, tc.field, apperrors.GetField(err))
		})
	}
}

func TestJobService_List_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newJobService(ctrl)

	opts := model.JobListOptions{Query: "engineer", PageNumber: 2, PageSize: 25}
	want := &model.JobPage{Total: 51, Items: []*model.JobSummary{{ID: 1, Title: "Backend Engineer"}}}
	m.jobs.EXPECT().List(ctx, opts).Return(want, nil).Times(1)

	page, err := svc.List(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, want, page)
}
