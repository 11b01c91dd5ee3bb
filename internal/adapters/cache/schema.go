package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema creates the provider response cache table in Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createCacheQuery := `
	CREATE TABLE IF NOT EXISTS provider_cache (
		cache_key TEXT PRIMARY KEY,
		body BYTEA NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_provider_cache_expires_at
	ON provider_cache(expires_at);
	`

	statements := []string{
		createCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
