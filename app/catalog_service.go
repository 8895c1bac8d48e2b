package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gomendel/domain/trait"
	"gomendel/internal"
	apperrors "gomendel/internal/errors"
	"gomendel/models"
	"gomendel/ports"
)

// CatalogService owns the trait catalog: listing for the public API and
// bulk imports from spreadsheet files.
type CatalogService struct {
	registry ports.TraitRegistry
	reader   ports.CatalogReader
	logger   *internal.Logger
}

// CatalogLoadResult summarizes one import run.
type CatalogLoadResult struct {
	Loaded   int      `json:"loaded"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
	Registry int      `json:"registry_count"`
}

// NewCatalogService creates a catalog service
func NewCatalogService(registry ports.TraitRegistry, reader ports.CatalogReader, logger *internal.Logger) *CatalogService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &CatalogService{registry: registry, reader: reader, logger: logger}
}

// List returns catalog traits matching the filter, rendered for the API.
func (s *CatalogService) List(ctx context.Context, filter ports.TraitFilter) (*models.TraitListResponse, error) {
	traits, err := s.registry.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.TraitSummary, 0, len(traits))
	for _, t := range traits {
		summaries = append(summaries, models.NewTraitSummary(t))
	}

	return &models.TraitListResponse{Traits: summaries, Count: len(summaries)}, nil
}

// Get returns one catalog trait rendered for the API.
func (s *CatalogService) Get(ctx context.Context, key string) (models.TraitSummary, error) {
	t, err := s.registry.Get(ctx, key)
	if err != nil {
		return models.TraitSummary{}, err
	}
	return models.NewTraitSummary(t), nil
}

// LoadFromFile imports a spreadsheet catalog. Rows that fail validation
// are skipped with a message; valid rows replace any trait already
// registered under the same key.
func (s *CatalogService) LoadFromFile(ctx context.Context, path string) (*CatalogLoadResult, error) {
	if s.reader == nil {
		return nil, apperrors.CatalogError("no catalog reader configured", nil)
	}

	traits, rowErrs, err := s.reader.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	result := &CatalogLoadResult{Errors: append([]string{}, rowErrs...)}
	result.Skipped = len(rowErrs)

	for _, t := range traits {
		if problems := t.Validate(); len(problems) > 0 {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("trait '%s': %s", t.Key, strings.Join(problems, "; ")))
			continue
		}
		if err := s.registry.Upsert(ctx, t); err != nil {
			return nil, err
		}
		result.Loaded++
	}

	count, err := s.registry.Count(ctx)
	if err != nil {
		return nil, err
	}
	result.Registry = count

	s.logger.Info("catalog load from %s: %d loaded, %d skipped", path, result.Loaded, result.Skipped)
	return result, nil
}

// Count returns the number of registered traits.
func (s *CatalogService) Count(ctx context.Context) (int, error) {
	return s.registry.Count(ctx)
}

// SeedBuiltins registers the built-in classroom traits. Existing keys are
// left untouched so a spreadsheet import survives restarts within one
// process.
func (s *CatalogService) SeedBuiltins(ctx context.Context) error {
	var seeded []string
	for _, t := range trait.Builtins() {
		if _, err := s.registry.Get(ctx, t.Key); err == nil {
			continue
		}
		if err := s.registry.Upsert(ctx, t); err != nil {
			return err
		}
		seeded = append(seeded, t.Key)
	}

	if len(seeded) > 0 {
		sort.Strings(seeded)
		s.logger.Info("seeded built-in traits: %s", strings.Join(seeded, ", "))
	}
	return nil
}
