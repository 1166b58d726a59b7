package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hireground/catalog-api/internal/data/pgxutil"
	"github.com/hireground/catalog-api/internal/domain/model"
)

// ErrLocationNotFound is returned when a location is not found.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepo provides database operations for locations.
type LocationRepo struct {
	DB *sql.DB
}

// NewLocationRepo creates a new LocationRepo.
func NewLocationRepo(db *sql.DB) *LocationRepo {
	return &LocationRepo{DB: db}
}

// SQL query constants for static queries (no dynamic WHERE/ORDER BY).
const (
	locationColumns = `id, title, city, state, country, postal_code`

	locationGetByIDQuery = `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE id = $1`

	locationListQuery = `
		SELECT ` + locationColumns + `
		FROM locations
		ORDER BY id ASC
		LIMIT $1 OFFSET $2`

	locationInsertQuery = `
		INSERT INTO locations (title, city, state, country, postal_code)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + locationColumns

	locationUpdateQuery = `
		UPDATE locations
		SET title = $1, city = $2, state = $3, country = $4, postal_code = $5
		WHERE id = $6
		RETURNING ` + locationColumns

	locationExistsQuery = `SELECT EXISTS(SELECT 1 FROM locations WHERE id = $1)`
)

// Create inserts a new location.
func (r *LocationRepo) Create(ctx context.Context, req *model.CreateLocationRequest) (*model.Location, error) {
	if req == nil {
		return nil, errors.New("create location request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Location
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, locationInsertQuery,
			req.Title, req.City, req.State, req.Country, req.PostalCode)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Location])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a location by ID.
func (r *LocationRepo) GetByID(ctx context.Context, id int64) (*model.Location, error) {
	var out model.Location
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, locationGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Location])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get location by ID: %w", err)
	}
	return &out, nil
}

// Update replaces every field of a location.
func (r *LocationRepo) Update(ctx context.Context, id int64, req model.UpdateLocationRequest) (*model.Location, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Location
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, locationUpdateQuery,
			req.Title, req.City, req.State, req.Country, req.PostalCode, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Location])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	return &out, nil
}

// List retrieves locations with pagination.
func (r *LocationRepo) List(ctx context.Context, limit, offset int) ([]*model.Location, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.Location
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, locationListQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Location])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	res := make([]*model.Location, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Exists reports whether a location row with the given ID exists.
func (r *LocationRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, locationExistsQuery, id).Scan(&exists)
	})
	if err != nil {
		return false, fmt.Errorf("failed to check location existence: %w", err)
	}
	return exists, nil
}
