package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"gomendel/models"
	"gomendel/ports"
)

// UsageRepositoryImpl implements UsageRepository for PostgreSQL
type UsageRepositoryImpl struct {
	db *sqlx.DB
}

// NewUsageRepository creates a new PostgreSQL usage repository
func NewUsageRepository(db *sqlx.DB) ports.UsageRepository {
	return &UsageRepositoryImpl{db: db}
}

// RecordEvent stores one computation event
func (r *UsageRepositoryImpl) RecordEvent(ctx context.Context, event *models.UsageEvent) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO usage_events (
			id, operation, trait_key, inheritance_pattern,
			duration_ms, error_count, created_at
		) VALUES (
			:id, :operation, :trait_key, :inheritance_pattern,
			:duration_ms, :error_count, :created_at
		)
	`, event)
	return err
}

// Totals returns event counts grouped by operation
func (r *UsageRepositoryImpl) Totals(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT operation, COUNT(*) AS total
		FROM usage_events
		GROUP BY operation
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int64)
	for rows.Next() {
		var operation string
		var total int64
		if err := rows.Scan(&operation, &total); err != nil {
			return nil, err
		}
		totals[operation] = total
	}
	return totals, rows.Err()
}

// PopularTraits returns the most-requested trait keys, highest first
func (r *UsageRepositoryImpl) PopularTraits(ctx context.Context, limit int) ([]models.TraitCount, error) {
	var ranking []models.TraitCount
	err := r.db.SelectContext(ctx, &ranking, `
		SELECT trait_key, COUNT(*) AS count
		FROM usage_events
		WHERE trait_key <> ''
		GROUP BY trait_key
		ORDER BY count DESC, trait_key ASC
		LIMIT $1
	`, limit)
	return ranking, err
}

// RecentDurations returns up to limit recent computation durations in
// milliseconds, newest first
func (r *UsageRepositoryImpl) RecentDurations(ctx context.Context, limit int) ([]float64, error) {
	var durations []float64
	err := r.db.SelectContext(ctx, &durations, `
		SELECT duration_ms
		FROM usage_events
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	return durations, err
}

// Kind names the backing store for diagnostics
func (r *UsageRepositoryImpl) Kind() string {
	return "postgres"
}
