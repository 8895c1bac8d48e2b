package ports

import (
	"context"

	"gomendel/models"
)

// UsageRepository defines the interface for preview usage tracking
type UsageRepository interface {
	// RecordEvent stores one computation event
	RecordEvent(ctx context.Context, event *models.UsageEvent) error

	// Totals returns event counts grouped by operation
	Totals(ctx context.Context) (map[string]int64, error)

	// PopularTraits returns the most-requested trait keys, highest first
	PopularTraits(ctx context.Context, limit int) ([]models.TraitCount, error)

	// RecentDurations returns up to limit recent computation durations in
	// milliseconds, newest first
	RecentDurations(ctx context.Context, limit int) ([]float64, error)

	// Kind names the backing store for diagnostics ("postgres", "memory")
	Kind() string
}
