package store

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/JonMunkholm/shopseed/internal/config"
	"github.com/JonMunkholm/shopseed/internal/core"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres is a pgx connection pool store. Unquoted identifiers fold to
// lower case in PostgreSQL, so COPY targets use lower-cased names.
type Postgres struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects a pool configured from cfg and verifies it.
func OpenPostgres(ctx context.Context, cfg config.StoreConfig) (*Postgres, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if u, err := url.Parse(cfg.URL); err == nil {
		slog.Info("connected to database", "name", strings.TrimPrefix(u.Path, "/"))
	} else {
		slog.Info("connected to database")
	}

	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Dialect() core.Dialect { return core.DialectPostgres }

// Recreate drops every registered table, children first.
func (p *Postgres) Recreate(ctx context.Context) error {
	defs, err := core.LoadOrder()
	if err != nil {
		return err
	}
	for i := len(defs) - 1; i >= 0; i-- {
		if _, err := p.pool.Exec(ctx, core.DropTableSQL(defs[i], core.DialectPostgres)); err != nil {
			return fmt.Errorf("drop %s: %w", defs[i].Info.Key, err)
		}
	}
	return nil
}

func (p *Postgres) Exec(ctx context.Context, stmt string) error {
	_, err := p.pool.Exec(ctx, stmt)
	return err
}

// InsertRows streams rows with the COPY protocol inside a transaction.
func (p *Postgres) InsertRows(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = strings.ToLower(c)
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{strings.ToLower(table)}, cols, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copy into %s: %w", table, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit %s: %w", table, err)
	}
	return n, nil
}

func (p *Postgres) Query(ctx context.Context, query string, args ...any) (core.Rows, error) {
	return p.pool.Query(ctx, query, args...)
}

func (p *Postgres) Close() {
	p.pool.Close()
}
