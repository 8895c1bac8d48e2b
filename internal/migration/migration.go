package migration

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gomendel/internal/errors"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createUsageEventsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create usage_events table")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	return nil
}

func (r *MigrationRunner) createUsageEventsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS usage_events (
			id UUID PRIMARY KEY,
			operation VARCHAR(20) NOT NULL,
			trait_key VARCHAR(100) NOT NULL DEFAULT '',
			inheritance_pattern VARCHAR(50) NOT NULL DEFAULT '',
			duration_ms DOUBLE PRECISION NOT NULL DEFAULT 0,
			error_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_usage_operation ON usage_events(operation)",
		"CREATE INDEX IF NOT EXISTS idx_usage_trait_key ON usage_events(trait_key)",
		"CREATE INDEX IF NOT EXISTS idx_usage_created_at ON usage_events(created_at DESC)",
	}

	for _, idxSQL := range indexes {
		if _, err := db.ExecContext(ctx, idxSQL); err != nil {
			// Log but don't fail on index creation errors
			fmt.Printf("Warning: failed to create index: %v\n", err)
		}
	}

	return nil
}
