package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/core/db/queries"
)

// DB owns the connection pool behind feedback_session and good_or_bad.
type DB struct {
	pool *pgxpool.Pool
}

// Config sizes the pool; zero values fall back to 10 max and 2 min connections.
type Config struct {
	DSN      string
	MaxConns int32
	MinConns int32
}

// New opens the pool and pings it once so a bad DSN fails at startup.
func New(ctx context.Context, cfg Config) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	poolCfg.MaxConns, poolCfg.MinConns = 10, 2
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if poolCfg.MinConns > poolCfg.MaxConns {
		poolCfg.MinConns = poolCfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &DB{pool: pool}, nil
}

func (db *DB) Close() {
	db.pool.Close()
}

// Pool exposes the underlying pool for callers that manage their own
// transactions, such as the migration runner.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// WithTx runs fn against a transaction-bound Queries. An error from fn rolls
// back; otherwise the transaction commits.
func (db *DB) WithTx(ctx context.Context, fn func(q *queries.Queries) error) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	q := queries.New(tx)
	if err := fn(q); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
