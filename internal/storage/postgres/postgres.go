// Package postgres backs the Store contract with a single key-value table.
// Unlike the other drivers it carries a version column and performs a
// compare-and-swap on writes, so two storefront processes racing on the same
// collection retry instead of silently losing one side's update.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_blobs (
	key     TEXT PRIMARY KEY,
	value   JSONB NOT NULL,
	version BIGINT NOT NULL DEFAULT 1
)`

// casAttempts bounds the write retry loop under contention.
const casAttempts = 5

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type Store struct {
	pool *pgxpool.Pool
}

func Connect(ctx context.Context, cfg Config) (*Store, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database)

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create kv_blobs table: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_blobs WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	for attempt := 0; attempt < casAttempts; attempt++ {
		var version int64
		err := s.pool.QueryRow(ctx, `SELECT version FROM kv_blobs WHERE key = $1`, key).Scan(&version)
		if errors.Is(err, pgx.ErrNoRows) {
			tag, err := s.pool.Exec(ctx,
				`INSERT INTO kv_blobs (key, value) VALUES ($1, $2) ON CONFLICT (key) DO NOTHING`,
				key, value)
			if err != nil {
				return fmt.Errorf("failed to insert key %s: %w", key, err)
			}
			if tag.RowsAffected() == 1 {
				return nil
			}
			// Lost the insert race; retry as an update.
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read version for key %s: %w", key, err)
		}

		tag, err := s.pool.Exec(ctx,
			`UPDATE kv_blobs SET value = $2, version = version + 1 WHERE key = $1 AND version = $3`,
			key, value, version)
		if err != nil {
			return fmt.Errorf("failed to update key %s: %w", key, err)
		}
		if tag.RowsAffected() == 1 {
			return nil
		}
	}
	return fmt.Errorf("failed to write key %s: version conflict after %d attempts", key, casAttempts)
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_blobs WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to remove key %s: %w", key, err)
	}
	return nil
}

func (s *Store) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT key FROM kv_blobs ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

func (s *Store) Close() {
	s.pool.Close()
}
