package iostore

import (
	"context"
	"fmt"
	"time"

	"github.com/gnames/ncbitax/internal/iodb"
	"github.com/gnames/ncbitax/internal/ioschema"
	"github.com/gnames/ncbitax/pkg/config"
	"github.com/gnames/ncbitax/pkg/db"
	"github.com/gnames/ncbitax/pkg/lifecycle"
	"github.com/gnames/ncbitax/pkg/schema"
	"github.com/gnames/ncbitax/pkg/store"
	"github.com/gnames/ncbitax/pkg/tagset"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type pgStore struct {
	op  db.Operator
	mgr lifecycle.SchemaManager
}

// NewPostgres connects to a PostgreSQL tag store.
func NewPostgres(
	ctx context.Context,
	cfg *config.StoreConfig,
) (store.Store, error) {
	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, cfg); err != nil {
		return nil, err
	}
	return &pgStore{op: op, mgr: ioschema.NewManager(op)}, nil
}

// HasTables is true when any of the tag store tables exists.
func (s *pgStore) HasTables(ctx context.Context) (bool, error) {
	found, err := s.op.ExistingTables(ctx, schema.TableNames()...)
	if err != nil {
		return false, err
	}
	return len(found) > 0, nil
}

// DropTables drops tag store tables, other tables of the database stay.
func (s *pgStore) DropTables(ctx context.Context) error {
	return s.op.DropTables(ctx, schema.TableNames()...)
}

func (s *pgStore) CreateTables(ctx context.Context) error {
	return s.mgr.Create(ctx)
}

func (s *pgStore) Write(
	ctx context.Context,
	about string,
	tags tagset.TagSet,
) (uuid.UUID, error) {
	id := store.ObjectID(about)

	b := &pgx.Batch{}
	b.Queue(`
INSERT INTO objects (id, about) VALUES ($1, $2)
  ON CONFLICT (id) DO NOTHING`, id.String(), about)
	for _, path := range tags.Paths() {
		kind, val, err := store.EncodeValue(path, tags[path])
		if err != nil {
			return uuid.Nil, err
		}
		b.Queue(`
INSERT INTO tags (object_id, path, kind, value) VALUES ($1, $2, $3, $4)
  ON CONFLICT (object_id, path)
  DO UPDATE SET kind = EXCLUDED.kind, value = EXCLUDED.value`,
			id.String(), path, kind, val)
	}

	err := pgx.BeginFunc(ctx, s.op.Pool(), func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			"SELECT path FROM tags WHERE object_id = $1", id.String())
		if err != nil {
			return err
		}
		existing, err := pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
			return err
		}
		if stale := store.StalePaths(existing, tags); len(stale) > 0 {
			b.Queue(
				"DELETE FROM tags WHERE object_id = $1 AND path = ANY($2)",
				id.String(), stale)
		}
		return tx.SendBatch(ctx, b).Close()
	})
	if err != nil {
		return uuid.Nil, WriteError(about, err)
	}
	return id, nil
}

func (s *pgStore) Query(
	ctx context.Context,
	tagPath string,
) ([]store.Object, error) {
	q := fmt.Sprintf(selectQuery, "$1")
	rows, err := s.op.Pool().Query(ctx, q, tagPath)
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

func (s *pgStore) Describe(
	ctx context.Context,
	namespace, description string,
) error {
	_, err := s.op.Pool().Exec(ctx, `
INSERT INTO namespaces (path, description, updated_at) VALUES ($1, $2, $3)
  ON CONFLICT (path)
  DO UPDATE SET description = EXCLUDED.description,
    updated_at = EXCLUDED.updated_at`,
		namespace, description, time.Now().UTC())
	if err != nil {
		return WriteError(namespace, err)
	}
	return nil
}

func (s *pgStore) Close() error {
	return s.op.Close()
}
