package app

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"gomendel/domain/genetics"
	"gomendel/internal"
	apperrors "gomendel/internal/errors"
	"gomendel/internal/usage"
	"gomendel/models"
	"gomendel/ports"
)

// SimulationService runs registry-backed crosses for several traits in one
// call. Traits are independent, so they fan out concurrently.
type SimulationService struct {
	registry  ports.TraitRegistry
	usage     *usage.Service
	logger    *internal.Logger
	maxTraits int
}

// NewSimulationService creates a simulation service
func NewSimulationService(registry ports.TraitRegistry, usageSvc *usage.Service, logger *internal.Logger, maxTraits int) *SimulationService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &SimulationService{
		registry:  registry,
		usage:     usageSvc,
		logger:    logger,
		maxTraits: maxTraits,
	}
}

// Simulate crosses the parents for every requested trait. Unknown trait
// keys are reported in MissingTraits; a genotype the trait cannot express
// fails the whole call.
func (s *SimulationService) Simulate(ctx context.Context, req models.SimulationRequest) (*models.SimulationResponse, error) {
	if err := req.Validate(s.maxTraits); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	parent1, parent2 := req.SanitizedParents()
	keys := s.requestedKeys(parent1, parent2, req.TraitFilter)

	response := &models.SimulationResponse{
		Results:       make(map[string]models.TraitSimulationResult, len(keys)),
		MissingTraits: []string{},
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	for _, key := range keys {
		key := key
		g.Go(func() error {
			start := time.Now()

			def, pattern, err := s.lookup(gctx, key)
			if err != nil {
				if apperrors.GetCode(err) == apperrors.CodeNotFound {
					mu.Lock()
					response.MissingTraits = append(response.MissingTraits, key)
					mu.Unlock()
					return nil
				}
				return err
			}

			result := genetics.Preview(def, parent1[key], parent2[key], req.AsPercentages)
			s.recordTrait(gctx, models.OperationSimulate, key, pattern, start, len(result.Errors))
			if len(result.Errors) > 0 {
				return apperrors.ValidationError("trait '" + key + "': " + result.Errors[0])
			}

			mu.Lock()
			response.Results[key] = models.TraitSimulationResult{
				GenotypicRatios:  result.GenotypeDist,
				PhenotypicRatios: result.PhenotypeDist,
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(response.MissingTraits)
	return response, nil
}

// PossibleGenotypes lists each trait's canonical genotype space in
// declared allele order.
func (s *SimulationService) PossibleGenotypes(ctx context.Context, req models.GenotypeRequest) (*models.GenotypeResponse, error) {
	if err := req.Validate(s.maxTraits); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	response := &models.GenotypeResponse{
		Genotypes:     make(map[string][]string, len(req.TraitKeys)),
		MissingTraits: []string{},
	}

	start := time.Now()
	missing := map[string]bool{}
	for _, key := range req.TraitKeys {
		if _, seen := response.Genotypes[key]; seen || missing[key] {
			continue
		}

		t, err := s.registry.Get(ctx, key)
		if err != nil {
			if apperrors.GetCode(err) == apperrors.CodeNotFound {
				missing[key] = true
				response.MissingTraits = append(response.MissingTraits, key)
				continue
			}
			return nil, err
		}

		response.Genotypes[key] = t.AllGenotypes()
		s.recordTrait(ctx, models.OperationGenotypes, key, t.InheritancePattern, start, 0)
	}

	sort.Strings(response.MissingTraits)
	return response, nil
}

// requestedKeys intersects the parent maps, restricted by the filter when
// one is given, and returns the keys sorted for stable iteration.
func (s *SimulationService) requestedKeys(parent1, parent2 map[string]string, filter []string) []string {
	allowed := make(map[string]bool, len(filter))
	for _, key := range filter {
		allowed[key] = true
	}

	var keys []string
	for key := range parent1 {
		if _, ok := parent2[key]; !ok {
			continue
		}
		if len(filter) > 0 && !allowed[key] {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (s *SimulationService) lookup(ctx context.Context, key string) (genetics.TraitDefinition, string, error) {
	t, err := s.registry.Get(ctx, key)
	if err != nil {
		return genetics.TraitDefinition{}, "", err
	}
	return t.Definition(), t.InheritancePattern, nil
}

func (s *SimulationService) recordTrait(ctx context.Context, operation, key, pattern string, start time.Time, errorCount int) {
	if s.usage == nil {
		return
	}
	event := models.NewUsageEvent(operation)
	event.TraitKey = key
	event.InheritancePattern = pattern
	event.DurationMs = float64(time.Since(start).Microseconds()) / 1000.0
	event.ErrorCount = errorCount
	if err := s.usage.Record(ctx, event); err != nil {
		s.logger.Warn("usage recording failed: %v", err)
	}
}
