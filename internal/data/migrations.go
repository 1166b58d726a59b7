package data

import (
	"context"
	"database/sql"

	"github.com/hireground/catalog-api/internal/migrate"
)

// RunMigrations applies all pending schema migrations. Safe to call on every
// startup.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrate.Run(ctx, db)
}
