package errors

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapDBError_NilError(t *testing.T) {
	if err := MapDBError(nil); err != nil {
		t.Errorf("MapDBError(nil) = %v, want nil", err)
	}
}

func TestMapDBError_ContextErrors(t *testing.T) {
	for _, cause := range []error{context.DeadlineExceeded, context.Canceled} {
		err := MapDBError(cause)
		if !IsInternal(err) {
			t.Errorf("MapDBError(%v) code = %v, want internal", cause, GetCode(err))
		}
		if !errors.Is(err, cause) {
			t.Errorf("MapDBError(%v) should preserve cause", cause)
		}
	}
}

func TestMapDBError_NoRows(t *testing.T) {
	err := MapDBError(pgx.ErrNoRows)
	if !IsNotFound(err) {
		t.Errorf("MapDBError(pgx.ErrNoRows) should be NotFound, got %v", GetCode(err))
	}
}

func TestMapDBError_UniqueViolation(t *testing.T) {
	tests := []struct {
		name      string
		pgErr     *pgconn.PgError
		wantField string
	}{
		{
			name: "column name metadata",
			pgErr: &pgconn.PgError{
				Code:       pgerrcode.UniqueViolation,
				ColumnName: "title",
			},
			wantField: "title",
		},
		{
			name: "detail parsing",
			pgErr: &pgconn.PgError{
				Code:   pgerrcode.UniqueViolation,
				Detail: "Key (title)=(Engineering) already exists.",
			},
			wantField: "title",
		},
		{
			name: "constraint name inference",
			pgErr: &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "departments_title_key",
			},
			wantField: "title",
		},
		{
			name: "ambiguous constraint name",
			pgErr: &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "jobs_location_id_department_id_key",
			},
			wantField: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapDBError(tt.pgErr)
			if !IsConflict(err) {
				t.Fatalf("expected conflict, got %v", GetCode(err))
			}
			if got := GetField(err); got != tt.wantField {
				t.Errorf("field = %q, want %q", got, tt.wantField)
			}
		})
	}
}

func TestMapDBError_ForeignKeyViolation(t *testing.T) {
	tests := []struct {
		name    string
		pgErr   *pgconn.PgError
		wantMsg string
	}{
		{
			name: "missing location parent",
			pgErr: &pgconn.PgError{
				Code:   pgerrcode.ForeignKeyViolation,
				Detail: `Key (location_id)=(99) is not present in table "locations".`,
			},
			wantMsg: "referenced location does not exist",
		},
		{
			name: "missing department parent",
			pgErr: &pgconn.PgError{
				Code:   pgerrcode.ForeignKeyViolation,
				Detail: `Key (department_id)=(7) is not present in table "departments".`,
			},
			wantMsg: "referenced department does not exist",
		},
		{
			name: "table metadata fallback",
			pgErr: &pgconn.PgError{
				Code:      pgerrcode.ForeignKeyViolation,
				TableName: "jobs",
			},
			wantMsg: "referenced job does not exist",
		},
		{
			name: "no metadata at all",
			pgErr: &pgconn.PgError{
				Code: pgerrcode.ForeignKeyViolation,
			},
			wantMsg: "a referenced entity does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapDBError(tt.pgErr)
			if !IsFailedPrecondition(err) {
				t.Fatalf("expected failed_precondition, got %v", GetCode(err))
			}
			var appErr *AppError
			if !errors.As(err, &appErr) {
				t.Fatal("expected AppError")
			}
			if appErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", appErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestMapDBError_NotNullViolation(t *testing.T) {
	err := MapDBError(&pgconn.PgError{
		Code:       pgerrcode.NotNullViolation,
		ColumnName: "title",
	})
	if !IsInvalidArgument(err) {
		t.Fatalf("expected invalid_argument, got %v", GetCode(err))
	}
	if GetField(err) != "title" {
		t.Errorf("field = %q, want title", GetField(err))
	}
}

func TestMapDBError_UnrecognizedPgError(t *testing.T) {
	err := MapDBError(&pgconn.PgError{Code: pgerrcode.AdminShutdown})
	if !IsInternal(err) {
		t.Errorf("expected internal, got %v", GetCode(err))
	}
}

func TestMapDBError_PassThrough(t *testing.T) {
	plain := errors.New("not a db error")
	if got := MapDBError(plain); !errors.Is(got, plain) {
		t.Errorf("MapDBError should pass through unrecognized errors, got %v", got)
	}
}
