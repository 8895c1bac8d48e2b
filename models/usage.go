package models

import (
	"time"

	"github.com/google/uuid"
)

// Operation names recorded with every usage event.
const (
	OperationPreview   = "preview"
	OperationSimulate  = "simulate"
	OperationGenotypes = "genotypes"
)

// UsageEvent is one computed cross, recorded asynchronously after the
// response is sent. TraitKey is empty for ad-hoc preview traits.
type UsageEvent struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	Operation          string    `db:"operation" json:"operation"`
	TraitKey           string    `db:"trait_key" json:"trait_key,omitempty"`
	InheritancePattern string    `db:"inheritance_pattern" json:"inheritance_pattern,omitempty"`
	DurationMs         float64   `db:"duration_ms" json:"duration_ms"`
	ErrorCount         int       `db:"error_count" json:"error_count"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

// NewUsageEvent stamps identity and time; callers fill the measurements.
func NewUsageEvent(operation string) *UsageEvent {
	return &UsageEvent{
		ID:        uuid.New(),
		Operation: operation,
		CreatedAt: time.Now().UTC(),
	}
}

// TraitCount is one row of the popular-traits ranking.
type TraitCount struct {
	TraitKey string `db:"trait_key" json:"trait_key"`
	Count    int    `db:"count" json:"count"`
}

// LatencySummary condenses recent request durations.
type LatencySummary struct {
	Count  int     `json:"count"`
	MeanMs float64 `json:"mean_ms"`
	P50Ms  float64 `json:"p50_ms"`
	P95Ms  float64 `json:"p95_ms"`
}

// AnalyticsResponse is the internal analytics payload. Totals counts
// events by operation.
type AnalyticsResponse struct {
	Totals        map[string]int64 `json:"totals"`
	PopularTraits []TraitCount     `json:"popular_traits"`
	Latency       LatencySummary   `json:"latency"`
	Store         string           `json:"store"`
}
