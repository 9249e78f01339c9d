package iostore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gnames/ncbitax/pkg/schema"
	"github.com/gnames/ncbitax/pkg/store"
	"github.com/gnames/ncbitax/pkg/tagset"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

type sqliteStore struct {
	path string
	db   *sql.DB
}

// NewSQLite opens an SQLite tag store, the file and its directory are
// created when missing.
func NewSQLite(ctx context.Context, path string) (store.Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, OpenError(path, err)
	}

	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, OpenError(path, err)
	}
	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, OpenError(path, err)
	}
	return &sqliteStore{path: path, db: db}, nil
}

// HasTables is true when any of the tag store tables exists.
func (s *sqliteStore) HasTables(ctx context.Context) (bool, error) {
	tables := schema.TableNames()
	q := "SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name IN (?" +
		strings.Repeat(", ?", len(tables)-1) + ")"
	args := make([]any, len(tables))
	for i, t := range tables {
		args[i] = t
	}

	var n int
	if err := s.db.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return false, QueryError("sqlite_master", err)
	}
	return n > 0, nil
}

func (s *sqliteStore) DropTables(ctx context.Context) error {
	tables := schema.TableNames()
	slices.Reverse(tables)
	for _, t := range tables {
		if _, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+t); err != nil {
			return OpenError(s.path, err)
		}
	}
	return nil
}

func (s *sqliteStore) CreateTables(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OpenError(s.path, err)
	}
	defer tx.Rollback()

	for _, q := range schema.DDL() {
		if _, err = tx.ExecContext(ctx, q); err != nil {
			return OpenError(s.path, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return OpenError(s.path, err)
	}
	return nil
}

func (s *sqliteStore) Write(
	ctx context.Context,
	about string,
	tags tagset.TagSet,
) (uuid.UUID, error) {
	id := store.ObjectID(about)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, WriteError(about, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
INSERT INTO objects (id, about) VALUES (?, ?)
  ON CONFLICT (id) DO NOTHING`, id.String(), about)
	if err != nil {
		return uuid.Nil, WriteError(about, err)
	}

	stale, err := s.stalePaths(ctx, tx, id, tags)
	if err != nil {
		return uuid.Nil, WriteError(about, err)
	}
	for _, path := range stale {
		_, err = tx.ExecContext(ctx,
			"DELETE FROM tags WHERE object_id = ? AND path = ?", id.String(), path)
		if err != nil {
			return uuid.Nil, WriteError(about, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO tags (object_id, path, kind, value) VALUES (?, ?, ?, ?)
  ON CONFLICT (object_id, path)
  DO UPDATE SET kind = excluded.kind, value = excluded.value`)
	if err != nil {
		return uuid.Nil, WriteError(about, err)
	}
	defer stmt.Close()

	for _, path := range tags.Paths() {
		kind, val, err := store.EncodeValue(path, tags[path])
		if err != nil {
			return uuid.Nil, err
		}
		if _, err = stmt.ExecContext(ctx, id.String(), path, kind, val); err != nil {
			return uuid.Nil, WriteError(about, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, WriteError(about, err)
	}
	return id, nil
}

func (s *sqliteStore) stalePaths(
	ctx context.Context,
	tx *sql.Tx,
	id uuid.UUID,
	tags tagset.TagSet,
) ([]string, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT path FROM tags WHERE object_id = ?", id.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var existing []string
	for rows.Next() {
		var path string
		if err = rows.Scan(&path); err != nil {
			return nil, err
		}
		existing = append(existing, path)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return store.StalePaths(existing, tags), nil
}

func (s *sqliteStore) Query(
	ctx context.Context,
	tagPath string,
) ([]store.Object, error) {
	q := fmt.Sprintf(selectQuery, "?")
	rows, err := s.db.QueryContext(ctx, q, tagPath)
	if err != nil {
		return nil, QueryError(tagPath, err)
	}
	defer rows.Close()

	var res []store.Row
	for rows.Next() {
		var r store.Row
		if err = rows.Scan(&r.ID, &r.About, &r.Path, &r.Kind, &r.Value); err != nil {
			return nil, QueryError(tagPath, err)
		}
		res = append(res, r)
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError(tagPath, err)
	}
	return store.Collect(res)
}

func (s *sqliteStore) Describe(
	ctx context.Context,
	namespace, description string,
) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO namespaces (path, description, updated_at) VALUES (?, ?, ?)
  ON CONFLICT (path)
  DO UPDATE SET description = excluded.description,
    updated_at = excluded.updated_at`,
		namespace, description, time.Now().UTC())
	if err != nil {
		return WriteError(namespace, err)
	}
	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
