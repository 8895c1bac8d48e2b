package app

import (
	"context"
	"time"

	"gomendel/domain/genetics"
	"gomendel/internal"
	"gomendel/internal/usage"
	"gomendel/models"
)

// PreviewService computes live cross previews for the trait editor. Every
// outcome is a 200-shaped result; validation problems travel in the
// result's Errors field rather than as Go errors.
type PreviewService struct {
	usage  *usage.Service
	logger *internal.Logger
}

// NewPreviewService creates a preview service
func NewPreviewService(usageSvc *usage.Service, logger *internal.Logger) *PreviewService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &PreviewService{usage: usageSvc, logger: logger}
}

// Preview sanitizes the request, runs the cross, and records usage.
func (s *PreviewService) Preview(ctx context.Context, req models.PreviewRequest) genetics.PreviewResult {
	start := time.Now()

	if req.Seed != nil {
		s.logger.Debug("ignoring reserved seed %d", *req.Seed)
	}

	def, parent1, parent2, msgs := req.Sanitize()

	var result genetics.PreviewResult
	if len(msgs) > 0 {
		result = genetics.EmptyResult()
		result.Errors = msgs
	} else {
		result = genetics.Preview(def, parent1, parent2, req.AsPercentagesValue())
	}

	for _, msg := range result.Errors {
		if genetics.IsInternalError(msg) {
			s.logger.Error("preview consistency failure: %s", msg)
		}
	}

	s.record(ctx, models.OperationPreview, "", def.InheritancePattern, start, len(result.Errors))
	return result
}

func (s *PreviewService) record(ctx context.Context, operation, traitKey, pattern string, start time.Time, errorCount int) {
	if s.usage == nil {
		return
	}
	event := models.NewUsageEvent(operation)
	event.TraitKey = traitKey
	event.InheritancePattern = pattern
	event.DurationMs = float64(time.Since(start).Microseconds()) / 1000.0
	event.ErrorCount = errorCount
	if err := s.usage.Record(ctx, event); err != nil {
		s.logger.Warn("usage recording failed: %v", err)
	}
}
