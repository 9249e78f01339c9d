// Package db defines the PostgreSQL connection contract of the tag store.
package db

import (
	"context"

	"github.com/gnames/ncbitax/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplicationName identifies ncbitax sessions in pg_stat_activity.
const ApplicationName = "ncbitax"

// Operator manages the connection pool of a PostgreSQL tag store.
// Table methods work with explicit table names, so a database shared
// with other applications keeps their tables.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.StoreConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool. It is nil before Connect.
	Pool() *pgxpool.Pool

	// ExistingTables returns the given tables that exist in the public
	// schema, in the given order.
	ExistingTables(ctx context.Context, tables ...string) ([]string, error)

	// DropTables drops the given tables in one transaction.
	DropTables(ctx context.Context, tables ...string) error
}
