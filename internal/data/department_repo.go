package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hireground/catalog-api/internal/data/pgxutil"
	"github.com/hireground/catalog-api/internal/domain/model"
)

var (
	// ErrDepartmentNotFound is returned when a department is not found.
	ErrDepartmentNotFound = errors.New("department not found")
	// ErrDepartmentTitleExists is returned when the unique title constraint
	// rejects a write. The application-level uniqueness guard normally fires
	// first; this surfaces the store-level backstop losing a race.
	ErrDepartmentTitleExists = errors.New("department title already exists")
)

// DepartmentRepo provides database operations for departments.
type DepartmentRepo struct {
	DB *sql.DB
}

// NewDepartmentRepo creates a new DepartmentRepo.
func NewDepartmentRepo(db *sql.DB) *DepartmentRepo {
	return &DepartmentRepo{DB: db}
}

const (
	departmentGetByIDQuery = `
		SELECT id, title
		FROM departments
		WHERE id = $1`

	departmentGetByTitleQuery = `
		SELECT id, title
		FROM departments
		WHERE title = $1`

	departmentListQuery = `
		SELECT id, title
		FROM departments
		ORDER BY id ASC
		LIMIT $1 OFFSET $2`

	departmentInsertQuery = `
		INSERT INTO departments (title)
		VALUES ($1)
		RETURNING id, title`

	departmentUpdateQuery = `
		UPDATE departments
		SET title = $1
		WHERE id = $2
		RETURNING id, title`

	departmentExistsQuery = `SELECT EXISTS(SELECT 1 FROM departments WHERE id = $1)`
)

// Create inserts a new department.
func (r *DepartmentRepo) Create(ctx context.Context, req *model.CreateDepartmentRequest) (*model.Department, error) {
	if req == nil {
		return nil, errors.New("create department request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Department
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, departmentInsertQuery, req.Title)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Department])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves a department by ID.
func (r *DepartmentRepo) GetByID(ctx context.Context, id int64) (*model.Department, error) {
	return r.getByQuery(ctx, departmentGetByIDQuery, "failed to get department by ID", id)
}

// GetByTitle retrieves a department by exact, case-sensitive title.
func (r *DepartmentRepo) GetByTitle(ctx context.Context, title string) (*model.Department, error) {
	return r.getByQuery(ctx, departmentGetByTitleQuery, "failed to get department by title", title)
}

// Update replaces the department title.
func (r *DepartmentRepo) Update(ctx context.Context, id int64, req model.UpdateDepartmentRequest) (*model.Department, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Department
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, departmentUpdateQuery, req.Title, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Department])
		return err
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// List retrieves departments with pagination.
func (r *DepartmentRepo) List(ctx context.Context, limit, offset int) ([]*model.Department, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.Department
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, departmentListQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Department])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	res := make([]*model.Department, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Exists reports whether a department row with the given ID exists.
func (r *DepartmentRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, departmentExistsQuery, id).Scan(&exists)
	})
	if err != nil {
		return false, fmt.Errorf("failed to check department existence: %w", err)
	}
	return exists, nil
}

// getByQuery executes a query expected to return a single department.
func (r *DepartmentRepo) getByQuery(
	ctx context.Context,
	q string,
	errMsg string,
	args ...any,
) (*model.Department, error) {
	var dept model.Department
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		dept, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Department])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return &dept, nil
}

func (r *DepartmentRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrDepartmentNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrDepartmentTitleExists
	}
	return err
}
