// Package iodb implements db.Operator with a pgxpool connection pool.
package iodb

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gnames/ncbitax/pkg/config"
	"github.com/gnames/ncbitax/pkg/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool limits. Import and LinkOut write one object at a time, GORM
// borrows a connection during schema creation.
const (
	maxConns        = 4
	minConns        = 1
	maxConnIdleTime = 5 * time.Minute
	connectTimeout  = 10 * time.Second
)

type pgxOperator struct {
	pool *pgxpool.Pool
}

// NewPgxOperator creates a new database operator
// (without connecting).
func NewPgxOperator() db.Operator {
	return &pgxOperator{}
}

// Connect establishes a connection pool to PostgreSQL and checks it with
// a ping.
func (p *pgxOperator) Connect(
	ctx context.Context,
	cfg *config.StoreConfig,
) error {
	poolConfig, err := PoolConfig(cfg)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	p.pool = pool
	return nil
}

// PoolConfig converts store settings to a pgxpool configuration.
// Credentials are escaped, so passwords may contain any characters.
func PoolConfig(cfg *config.StoreConfig) (*pgxpool.Config, error) {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     cfg.Host + ":" + strconv.Itoa(cfg.Port),
		Path:     "/" + cfg.Database,
		RawQuery: url.Values{"sslmode": {cfg.SSLMode}}.Encode(),
	}
	res, err := pgxpool.ParseConfig(dsn.String())
	if err != nil {
		return nil, err
	}

	res.MaxConns = maxConns
	res.MinConns = minConns
	res.MaxConnIdleTime = maxConnIdleTime
	res.ConnConfig.ConnectTimeout = connectTimeout
	res.ConnConfig.RuntimeParams["application_name"] = db.ApplicationName
	return res, nil
}

// Close releases all database connections.
func (p *pgxOperator) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *pgxOperator) Pool() *pgxpool.Pool {
	return p.pool
}

// ExistingTables returns tables from the list that exist in the public
// schema.
func (p *pgxOperator) ExistingTables(
	ctx context.Context,
	tables ...string,
) ([]string, error) {
	if p.pool == nil {
		return nil, NotConnectedError()
	}

	rows, err := p.pool.Query(ctx, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name = ANY($1)`,
		tables)
	if err != nil {
		return nil, TableCheckError(tables, err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, TableCheckError(tables, err)
	}

	var res []string
	for _, t := range tables {
		if slices.Contains(found, t) {
			res = append(res, t)
		}
	}
	return res, nil
}

// DropTables drops the tables with CASCADE. Missing tables are ignored.
func (p *pgxOperator) DropTables(ctx context.Context, tables ...string) error {
	if p.pool == nil {
		return NotConnectedError()
	}
	if len(tables) == 0 {
		return nil
	}

	q := dropSQL(tables)
	err := pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, q)
		return err
	})
	if err != nil {
		return DropTableError(tables, err)
	}
	return nil
}

func dropSQL(tables []string) string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = pgx.Identifier{t}.Sanitize()
	}
	return fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE",
		strings.Join(names, ", "))
}
