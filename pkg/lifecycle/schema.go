// Package lifecycle defines contracts of the database lifecycle phases.
package lifecycle

import (
	"context"
)

// SchemaManager defines the interface for PostgreSQL schema management.
// It uses GORM AutoMigrate to handle both initial schema creation and
// migrations. Schema management is idempotent, it is safe to run
// multiple times.
type SchemaManager interface {
	// Create creates tag store tables using GORM AutoMigrate and sets
	// byte-order collation on text columns used for sorting.
	Create(ctx context.Context) error

	// Migrate updates tag store tables to the latest models.
	Migrate(ctx context.Context) error
}
