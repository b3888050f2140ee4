package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const blobSchema = `
CREATE TABLE IF NOT EXISTS health_blob (
	key  TEXT PRIMARY KEY,
	data JSONB NOT NULL
)`

// PostgresStorage keeps the aggregate blob in a single-row table,
// keyed by Key. Suited to running the dashboard against a shared
// Postgres instead of a local file.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresStorage connects to databaseURL, ensures the blob table
// exists, and returns the backend. Close releases the pool.
func NewPostgresStorage(ctx context.Context, databaseURL string) (*PostgresStorage, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, blobSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure health_blob table: %w", err)
	}

	return &PostgresStorage{pool: pool}, nil
}

// Read returns the stored blob or ErrNotFound.
func (s *PostgresStorage) Read(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM health_blob WHERE key = $1`, Key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading blob: %w", err)
	}
	return data, nil
}

// Write upserts the blob row.
func (s *PostgresStorage) Write(ctx context.Context, data []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO health_blob (key, data) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data`, Key, data)
	if err != nil {
		return fmt.Errorf("writing blob: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *PostgresStorage) Close() {
	s.pool.Close()
}
