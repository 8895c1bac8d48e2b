package memory

import (
	"context"
	"sort"
	"sync"

	"gomendel/models"
)

// maxRetainedEvents bounds the in-process event buffer so a long-running
// dev server does not grow without limit.
const maxRetainedEvents = 10000

// UsageRepositoryImpl implements UsageRepository without a database. It
// backs local development and deployments that leave DATABASE_URL unset.
type UsageRepositoryImpl struct {
	mu     sync.RWMutex
	events []*models.UsageEvent
}

// NewUsageRepository creates an empty in-memory usage repository
func NewUsageRepository() *UsageRepositoryImpl {
	return &UsageRepositoryImpl{}
}

// RecordEvent stores one computation event
func (r *UsageRepositoryImpl) RecordEvent(_ context.Context, event *models.UsageEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
	if len(r.events) > maxRetainedEvents {
		r.events = r.events[len(r.events)-maxRetainedEvents:]
	}
	return nil
}

// Totals returns event counts grouped by operation
func (r *UsageRepositoryImpl) Totals(_ context.Context) (map[string]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	totals := make(map[string]int64)
	for _, event := range r.events {
		totals[event.Operation]++
	}
	return totals, nil
}

// PopularTraits returns the most-requested trait keys, highest first
func (r *UsageRepositoryImpl) PopularTraits(_ context.Context, limit int) ([]models.TraitCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	for _, event := range r.events {
		if event.TraitKey != "" {
			counts[event.TraitKey]++
		}
	}

	ranking := make([]models.TraitCount, 0, len(counts))
	for key, count := range counts {
		ranking = append(ranking, models.TraitCount{TraitKey: key, Count: count})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return ranking[i].TraitKey < ranking[j].TraitKey
	})

	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking, nil
}

// RecentDurations returns up to limit recent computation durations in
// milliseconds, newest first
func (r *UsageRepositoryImpl) RecentDurations(_ context.Context, limit int) ([]float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.events) {
		limit = len(r.events)
	}

	durations := make([]float64, 0, limit)
	for i := len(r.events) - 1; i >= 0 && len(durations) < limit; i-- {
		durations = append(durations, r.events[i].DurationMs)
	}
	return durations, nil
}

// Kind names the backing store for diagnostics
func (r *UsageRepositoryImpl) Kind() string {
	return "memory"
}
