// Package postgres implements a pgx connection pool with a squirrel query builder.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultMaxPoolSize = 10
	defaultConnTimeout = 20 * time.Second
)

// Executor is the subset of pgxpool.Pool/pgx.Tx the repositories use.
type Executor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres holds the connection pool and the statement builder.
type Postgres struct {
	Pool    *pgxpool.Pool
	Builder squirrel.StatementBuilderType

	maxPoolSize int
}

// Option configures Postgres.
type Option func(*Postgres)

// MaxPoolSize sets the maximum pool size.
func MaxPoolSize(size int) Option {
	return func(p *Postgres) {
		p.maxPoolSize = size
	}
}

// New creates a Postgres instance and verifies connectivity.
func New(url string, opts ...Option) (*Postgres, error) {
	pg := &Postgres{
		maxPoolSize: defaultMaxPoolSize,
		Builder:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}

	for _, opt := range opts {
		opt(pg)
	}

	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("postgres - New - ParseConfig: %w", err)
	}
	cfg.MaxConns = int32(pg.maxPoolSize)

	ctx, cancel := context.WithTimeout(context.Background(), defaultConnTimeout)
	defer cancel()

	pg.Pool, err = pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres - New - NewWithConfig: %w", err)
	}

	if err := pg.Pool.Ping(ctx); err != nil {
		pg.Pool.Close()
		return nil, fmt.Errorf("postgres - New - Ping: %w", err)
	}

	return pg, nil
}

// InTransaction runs fn inside a transaction, committing on nil and rolling
// back on error or panic.
func (p *Postgres) InTransaction(ctx context.Context, fn func(tx Executor) error) error {
	tx, err := p.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback(ctx)
			panic(rec)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// Close closes the pool.
func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
}
