package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireground/catalog-api/internal/domain/model"
	"github.com/hireground/catalog-api/internal/testutil"
)

func createTestDepartment(t *testing.T, db *sql.DB, title string) *model.Department {
	t.Helper()
	repo := NewDepartmentRepo(db)
	dept, err := repo.Create(context.Background(), &model.CreateDepartmentRequest{Title: title})
	require.NoError(t, err)
	return dept
}

func TestDepartmentRepo_Create_Get_List_Update(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewDepartmentRepo(db)

		title := fmt.Sprintf("Engineering-%d", time.Now().UnixNano())
		dept, err := repo.Create(ctx, &model.CreateDepartmentRequest{Title: title})
		require.NoError(t, err)
		require.NotZero(t, dept.ID)
		assert.Equal(t, title, dept.Title)

		got, err := repo.GetByID(ctx, dept.ID)
		require.NoError(t, err)
		assert.Equal(t, title, got.Title)

		byTitle, err := repo.GetByTitle(ctx, title)
		require.NoError(t, err)
		assert.Equal(t, dept.ID, byTitle.ID)

		lst, err := repo.List(ctx, 10, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(lst), 1)

		updated, err := repo.Update(ctx, dept.ID, model.UpdateDepartmentRequest{Title: title + "-renamed"})
		require.NoError(t, err)
		assert.Equal(t, dept.ID, updated.ID)
		assert.Equal(t, title+"-renamed", updated.Title)

		exists, err := repo.Exists(ctx, dept.ID)
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestDepartmentRepo_TitleIsCaseSensitive(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewDepartmentRepo(db)

		title := fmt.Sprintf("Sales-%d", time.Now().UnixNano())
		created := createTestDepartment(t, db, title)

		_, err := repo.GetByTitle(ctx, title)
		require.NoError(t, err)

		// lookup with different casing misses
		_, err = repo.GetByTitle(ctx, "sALES"+title[5:])
		assert.ErrorIs(t, err, ErrDepartmentNotFound)

		// different casing is a distinct title, so the insert succeeds
		other, err := repo.Create(ctx, &model.CreateDepartmentRequest{Title: "sales-" + title[6:]})
		require.NoError(t, err)
		assert.NotEqual(t, created.ID, other.ID)
	})
}

func TestDepartmentRepo_DuplicateTitle(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewDepartmentRepo(db)

		title := fmt.Sprintf("Finance-%d", time.Now().UnixNano())
		first := createTestDepartment(t, db, title)

		_, err := repo.Create(ctx, &model.CreateDepartmentRequest{Title: title})
		assert.ErrorIs(t, err, ErrDepartmentTitleExists)

		// renaming a second department onto the first's title also collides
		second := createTestDepartment(t, db, title+"-b")
		_, err = repo.Update(ctx, second.ID, model.UpdateDepartmentRequest{Title: title})
		assert.ErrorIs(t, err, ErrDepartmentTitleExists)

		// self-rename to the same title is allowed
		same, err := repo.Update(ctx, first.ID, model.UpdateDepartmentRequest{Title: title})
		require.NoError(t, err)
		assert.Equal(t, first.ID, same.ID)
	})
}

func TestDepartmentRepo_NotFound(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewDepartmentRepo(db)

		_, err := repo.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, ErrDepartmentNotFound)

		_, err = repo.GetByTitle(ctx, "no-such-department")
		assert.ErrorIs(t, err, ErrDepartmentNotFound)

		_, err = repo.Update(ctx, 999999, model.UpdateDepartmentRequest{Title: "nope"})
		assert.ErrorIs(t, err, ErrDepartmentNotFound)
	})
}
