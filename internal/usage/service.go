package usage

import (
	"context"
	"log"
	"time"

	"gomendel/models"
	"gomendel/ports"

	"github.com/google/uuid"
)

// Service records computation usage without ever failing the request that
// produced it.
type Service struct {
	repo ports.UsageRepository
}

// NewService creates a new usage service
func NewService(repo ports.UsageRepository) *Service {
	return &Service{repo: repo}
}

// Record asynchronously persists one computation event. Tracking problems
// are logged, never returned to the caller.
func (s *Service) Record(ctx context.Context, event *models.UsageEvent) error {
	if event == nil {
		log.Printf("[UsageService] ERROR: nil usage event provided")
		return nil
	}

	if event.DurationMs < 0 || event.ErrorCount < 0 {
		log.Printf("[UsageService] ERROR: invalid measurements: %+v", event)
		return nil
	}

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	// Async persistence to avoid blocking the response path
	go func() {
		if err := s.persistWithRetry(event); err != nil {
			log.Printf("[UsageService] ERROR: failed to persist usage after retries: %v", err)
		}
	}()

	return nil
}

// persistWithRetry attempts to persist the event with linear backoff
func (s *Service) persistWithRetry(event *models.UsageEvent) error {
	const maxRetries = 3
	const baseDelay = 100 * time.Millisecond

	for attempt := 0; attempt < maxRetries; attempt++ {
		if err := s.repo.RecordEvent(context.Background(), event); err == nil {
			return nil
		}

		if attempt < maxRetries-1 {
			delay := time.Duration(attempt+1) * baseDelay
			time.Sleep(delay)
		}
	}

	// Final attempt
	return s.repo.RecordEvent(context.Background(), event)
}

// Totals returns event counts grouped by operation.
func (s *Service) Totals(ctx context.Context) (map[string]int64, error) {
	return s.repo.Totals(ctx)
}

// PopularTraits returns the most-requested trait keys, highest first.
func (s *Service) PopularTraits(ctx context.Context, limit int) ([]models.TraitCount, error) {
	return s.repo.PopularTraits(ctx, limit)
}

// RecentDurations returns recent computation durations in milliseconds.
func (s *Service) RecentDurations(ctx context.Context, limit int) ([]float64, error) {
	return s.repo.RecentDurations(ctx, limit)
}

// StoreKind names the backing store for diagnostics.
func (s *Service) StoreKind() string {
	return s.repo.Kind()
}
