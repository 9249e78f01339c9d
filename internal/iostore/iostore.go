// Package iostore implements tag stores on top of SQLite and PostgreSQL.
package iostore

import (
	"context"
	"log/slog"

	"github.com/gnames/ncbitax/pkg/config"
	"github.com/gnames/ncbitax/pkg/store"
)

// Store types.
const (
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// New opens a store of the type given in configuration.
func New(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Type {
	case SQLite:
		path := cfg.SQLitePath()
		slog.Info("Opening SQLite store", "path", path)
		return NewSQLite(ctx, path)
	case Postgres:
		slog.Info("Opening PostgreSQL store",
			"host", cfg.Store.Host, "database", cfg.Store.Database)
		return NewPostgres(ctx, &cfg.Store)
	default:
		return nil, UnknownTypeError(cfg.Store.Type)
	}
}

const (
	selectQuery = `
SELECT CAST(o.id AS TEXT), o.about, t.path, t.kind, t.value
  FROM objects o
    JOIN tags t ON t.object_id = o.id
  WHERE o.id IN (SELECT object_id FROM tags WHERE path = %s)
  ORDER BY o.about, t.path`
)
