// Package postgres wraps pgxpool with the query builder and transaction
// helper shared by every repository.
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

const connectTimeout = 20 * time.Second

// Executor is the query surface shared by the pool and a transaction, so
// repository code runs unchanged inside and outside transactions.
type Executor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres bundles the connection pool with a placeholder-aware statement
// builder.
type Postgres struct {
	Pool    *pgxpool.Pool
	Builder squirrel.StatementBuilderType
}

// Option configures the pool before it is created.
type Option func(*pgxpool.Config)

// MaxPoolSize caps the number of pooled connections.
func MaxPoolSize(size int) Option {
	return func(cfg *pgxpool.Config) {
		cfg.MaxConns = int32(size)
	}
}

// New connects to the database and returns the shared wrapper.
func New(url string, opts ...Option) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}

	return &Postgres{
		Pool:    pool,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// InTransaction runs fn inside a transaction, rolling back on error.
func (p *Postgres) InTransaction(ctx context.Context, fn func(tx Executor) error) error {
	tx, err := p.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Close releases the pool.
func (p *Postgres) Close() {
	p.Pool.Close()
}
