package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hireground/catalog-api/internal/data/database"
	"github.com/hireground/catalog-api/internal/data/pgxutil"
	"github.com/hireground/catalog-api/internal/domain/model"
)

var (
	// ErrJobNotFound is returned when a job is not found.
	ErrJobNotFound = errors.New("job not found")
	// ErrJobCodeExists is returned when the generated job code collides with
	// an existing one. Codes are random; a collision is surfaced, not retried.
	ErrJobCodeExists = errors.New("job code already exists")
	// ErrJobReferenceMissing is returned when the store-level FK backstop
	// rejects a write whose location or department vanished after the
	// application-level reference check.
	ErrJobReferenceMissing = errors.New("job references a missing location or department")
)

// JobRepo provides database operations for jobs.
type JobRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewJobRepo creates a new JobRepo with real time provider.
func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewJobRepoWithTimeProvider creates a new JobRepo with a custom time provider (useful for tests).
func NewJobRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *JobRepo {
	return &JobRepo{DB: db, timeProvider: tp}
}

const (
	jobColumns = `id, code, title, description, location_id, department_id, posted_at, closing_at`

	jobGetByIDQuery = `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE id = $1`

	jobInsertQuery = `
		INSERT INTO jobs (code, title, description, location_id, department_id, posted_at, closing_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + jobColumns

	// Code and posted_at are immutable after creation and never appear in
	// the SET clause.
	jobUpdateQuery = `
		UPDATE jobs
		SET title = $1, description = $2, location_id = $3, department_id = $4, closing_at = $5
		WHERE id = $6
		RETURNING ` + jobColumns
)

// Create inserts a new job with the given code, stamping the posted timestamp
// from the repository's time provider in UTC.
func (r *JobRepo) Create(ctx context.Context, code string, req *model.CreateJobRequest) (*model.Job, error) {
	if req == nil {
		return nil, errors.New("create job request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	postedAt := r.timeProvider.Now().UTC()
	var out model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, jobInsertQuery,
			code,
			req.Title,
			req.Description,
			req.LocationID,
			req.DepartmentID,
			postedAt,
			req.ClosingAt.UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves a job by ID.
func (r *JobRepo) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	var out model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, jobGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job by ID: %w", err)
	}
	return &out, nil
}

// Update replaces every caller-writable field of a job.
func (r *JobRepo) Update(ctx context.Context, id int64, req model.UpdateJobRequest) (*model.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, jobUpdateQuery,
			req.Title,
			req.Description,
			req.LocationID,
			req.DepartmentID,
			req.ClosingAt.UTC(),
			id,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// List returns one page of job summaries plus the total count of rows
// matching the filters. The count ignores pagination so callers can derive
// page counts. Ordering is newest-posted first with ID as the tie-break.
func (r *JobRepo) List(ctx context.Context, opts model.JobListOptions) (*model.JobPage, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}
	pageNumber := opts.PageNumber
	if pageNumber < 1 {
		pageNumber = 1
	}
	offset := (pageNumber - 1) * pageSize

	conditions := buildJobConditions(opts)

	countQuery, countArgs := database.BuildListQuery(jobQueryOptions(conditions,
		database.WithCountOnly(),
	))
	pageQuery, pageArgs := database.BuildListQuery(jobQueryOptions(conditions,
		database.WithColumns(jobSummaryColumns()...),
		database.WithOrderBy("jobs.posted_at", "DESC"),
		database.WithOrderBy("jobs.id", "DESC"),
		database.WithLimit(pageSize),
		database.WithOffset(offset),
	))

	// A read-only tx keeps total and items consistent with each other.
	page := &model.JobPage{Items: []*model.JobSummary{}}
	if err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Opts: &sql.TxOptions{ReadOnly: true},
		Fn: func(tx pgx.Tx) error {
			if err := tx.QueryRow(ctx, countQuery, countArgs...).Scan(&page.Total); err != nil {
				return err
			}

			rows, err := tx.Query(ctx, pageQuery, pageArgs...)
			if err != nil {
				return err
			}
			defer rows.Close()
			items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.JobSummary])
			if err != nil {
				return err
			}
			for i := range items {
				page.Items = append(page.Items, &items[i])
			}
			return nil
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return page, nil
}

// jobSummaryColumns returns the column list for the job listing join.
// Location and department titles come from LEFT JOINs so a dangling
// reference yields NULL instead of dropping the row.
func jobSummaryColumns() []string {
	return []string{
		"jobs.id",
		"jobs.code",
		"jobs.title",
		"jobs.description",
		"jobs.location_id",
		"jobs.department_id",
		"jobs.posted_at",
		"jobs.closing_at",
		"locations.title AS location_title",
		"departments.title AS department_title",
	}
}

// jobQueryOptions assembles the shared base (table, joins, filters) for both
// the count and page queries so the two always agree.
func jobQueryOptions(conditions []database.Condition, extra ...database.ListQueryOption) *database.ListQueryOptions {
	queryOpts := []database.ListQueryOption{
		database.WithLeftJoin("locations", "jobs.location_id", "locations.id"),
		database.WithLeftJoin("departments", "jobs.department_id", "departments.id"),
	}
	for _, cond := range conditions {
		queryOpts = append(queryOpts, database.WithCondition(cond))
	}
	queryOpts = append(queryOpts, extra...)
	return database.NewListQueryOptions("jobs", queryOpts...)
}

func buildJobConditions(opts model.JobListOptions) []database.Condition {
	var conditions []database.Condition
	if q := strings.TrimSpace(opts.Query); q != "" {
		conditions = append(conditions,
			database.WhereAnyILike("%"+q+"%", "jobs.title", "jobs.description"))
	}
	if opts.LocationID != nil {
		conditions = append(conditions,
			database.WhereCond("jobs.location_id", database.Equal, *opts.LocationID))
	}
	if opts.DepartmentID != nil {
		conditions = append(conditions,
			database.WhereCond("jobs.department_id", database.Equal, *opts.DepartmentID))
	}
	return conditions
}

func (r *JobRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrJobNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrJobCodeExists
		case pgerrcode.ForeignKeyViolation:
			return ErrJobReferenceMissing
		}
	}
	return err
}
