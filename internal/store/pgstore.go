package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PGStore persists snapshots in a single Postgres table, one row per key.
// Batches run inside a transaction so cascades commit atomically.
type PGStore struct {
	db *sqlx.DB
}

// NewPGStore ensures the snapshot table exists and returns the store.
func NewPGStore(db *sqlx.DB) (*PGStore, error) {
	const ddl = `CREATE TABLE IF NOT EXISTS snapshots (
		key TEXT PRIMARY KEY,
		value JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	if _, err := db.Exec(ddl); err != nil {
		return nil, fmt.Errorf("ensure snapshots table: %w", err)
	}
	return &PGStore{db: db}, nil
}

// Load fetches the snapshot for the key.
func (s *PGStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var raw []byte
	err := s.db.GetContext(ctx, &raw, "SELECT value FROM snapshots WHERE key = $1", key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return raw, true, nil
}

// Apply upserts and deletes the staged keys in one transaction.
func (s *PGStore) Apply(ctx context.Context, batch *Batch) error {
	if batch == nil || batch.Empty() {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	for _, kv := range batch.Sets() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snapshots (key, value, updated_at) VALUES ($1, $2, now())
			 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
			kv.Key, kv.Value); err != nil {
			return fmt.Errorf("upsert snapshot %s: %w", kv.Key, err)
		}
	}
	for _, key := range batch.Deletes() {
		if _, err := tx.ExecContext(ctx, "DELETE FROM snapshots WHERE key = $1", key); err != nil {
			return fmt.Errorf("delete snapshot %s: %w", key, err)
		}
	}

	return tx.Commit()
}

// Close releases the database pool.
func (s *PGStore) Close() error {
	return s.db.Close()
}
