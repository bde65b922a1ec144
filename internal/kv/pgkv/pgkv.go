// Package pgkv is a Postgres-backed implementation of the kv.Store
// contract. Each key lives in one row of the kv_entries table; writes
// are upserts, so last write wins per key.
package pgkv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/lockerhub/boxhub/internal/db"
	"github.com/lockerhub/boxhub/internal/kv"
)

type PgStore struct {
	db db.DB
}

func New(database db.DB) *PgStore {
	return &PgStore{db: database}
}

// EnsureSchema creates the kv_entries table if it does not exist yet.
func (s *PgStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS kv_entries (
            key        TEXT PRIMARY KEY,
            value      TEXT NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL
        )
    `)
	if err != nil {
		return fmt.Errorf("failed to create kv_entries table: %w", err)
	}
	return nil
}

func (s *PgStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.Get(ctx, &value, "SELECT value FROM kv_entries WHERE key = $1", key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", kv.ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to get key %q: %w", key, err)
	}
	return value, nil
}

func (s *PgStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO kv_entries (key, value, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = $3
    `, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}
	return nil
}

func (s *PgStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.Exec(ctx, "DELETE FROM kv_entries WHERE key = $1", key)
	if err != nil {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}

type kvRow struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

func (s *PgStore) MultiGet(ctx context.Context, keys []string) (map[string]string, error) {
	var rows []kvRow
	err := s.db.Select(ctx, &rows, "SELECT key, value FROM kv_entries WHERE key = ANY($1)", keys)
	if err != nil {
		return nil, fmt.Errorf("failed to multi-get keys: %w", err)
	}

	result := make(map[string]string, len(rows))
	for _, row := range rows {
		result[row.Key] = row.Value
	}
	return result, nil
}

// MultiSet writes all pairs in one transaction so a restart never
// observes half of a bulk update.
func (s *PgStore) MultiSet(ctx context.Context, pairs map[string]string) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	now := time.Now().UTC()
	for key, value := range pairs {
		_, err := tx.Exec(ctx, `
            INSERT INTO kv_entries (key, value, updated_at)
            VALUES ($1, $2, $3)
            ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = $3
        `, key, value, now)
		if err != nil {
			return fmt.Errorf("failed to set key %q: %w", key, err)
		}
	}

	return tx.Commit(ctx)
}

func (s *PgStore) MultiRemove(ctx context.Context, keys []string) error {
	_, err := s.db.Exec(ctx, "DELETE FROM kv_entries WHERE key = ANY($1)", keys)
	if err != nil {
		return fmt.Errorf("failed to multi-remove keys: %w", err)
	}
	return nil
}
