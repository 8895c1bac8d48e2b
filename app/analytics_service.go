package app

import (
	"context"

	"github.com/montanaflynn/stats"

	"gomendel/internal/usage"
	"gomendel/models"
)

const (
	popularTraitLimit  = 10
	latencySampleLimit = 200
)

// AnalyticsService summarizes recorded usage for the ops dashboard.
type AnalyticsService struct {
	usage *usage.Service
}

// NewAnalyticsService creates an analytics service
func NewAnalyticsService(usageSvc *usage.Service) *AnalyticsService {
	return &AnalyticsService{usage: usageSvc}
}

// Snapshot assembles totals, the popular-trait ranking, and a latency
// summary over the most recent computations.
func (s *AnalyticsService) Snapshot(ctx context.Context) (*models.AnalyticsResponse, error) {
	totals, err := s.usage.Totals(ctx)
	if err != nil {
		return nil, err
	}

	popular, err := s.usage.PopularTraits(ctx, popularTraitLimit)
	if err != nil {
		return nil, err
	}

	durations, err := s.usage.RecentDurations(ctx, latencySampleLimit)
	if err != nil {
		return nil, err
	}

	latency, err := summarizeLatency(durations)
	if err != nil {
		return nil, err
	}

	if popular == nil {
		popular = []models.TraitCount{}
	}

	return &models.AnalyticsResponse{
		Totals:        totals,
		PopularTraits: popular,
		Latency:       latency,
		Store:         s.usage.StoreKind(),
	}, nil
}

// StoreKind names the usage store backing the summaries.
func (s *AnalyticsService) StoreKind() string {
	return s.usage.StoreKind()
}

func summarizeLatency(durations []float64) (models.LatencySummary, error) {
	summary := models.LatencySummary{Count: len(durations)}
	if len(durations) == 0 {
		return summary, nil
	}

	data := stats.Float64Data(durations)

	mean, err := stats.Mean(data)
	if err != nil {
		return summary, err
	}

	median, err := stats.Median(data)
	if err != nil {
		return summary, err
	}

	p95, err := stats.Percentile(data, 95)
	if err != nil {
		return summary, err
	}

	summary.MeanMs = mean
	summary.P50Ms = median
	summary.P95Ms = p95
	return summary, nil
}
