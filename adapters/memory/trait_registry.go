package memory

import (
	"context"
	"sort"
	"sync"

	"gomendel/domain/trait"
	apperrors "gomendel/internal/errors"
	"gomendel/ports"
)

// TraitRegistryImpl implements TraitRegistry with an in-process map. The
// catalog is small enough that a spreadsheet reload replaces it wholesale.
type TraitRegistryImpl struct {
	mu     sync.RWMutex
	traits map[string]trait.Trait
}

// NewTraitRegistry creates an empty in-memory trait registry
func NewTraitRegistry() *TraitRegistryImpl {
	return &TraitRegistryImpl{traits: make(map[string]trait.Trait)}
}

// Get retrieves one trait by its key
func (r *TraitRegistryImpl) Get(_ context.Context, key string) (trait.Trait, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.traits[key]
	if !ok {
		return trait.Trait{}, apperrors.NotFound("trait '" + key + "'")
	}
	return t, nil
}

// List returns traits matching the filter, ordered by key
func (r *TraitRegistryImpl) List(_ context.Context, filter ports.TraitFilter) ([]trait.Trait, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]trait.Trait, 0, len(r.traits))
	for _, t := range r.traits {
		if t.MatchesFilter(filter.InheritancePattern, filter.Category, filter.Search) {
			matches = append(matches, t)
		}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Key < matches[j].Key })
	return matches, nil
}

// Upsert inserts or replaces a trait under its key
func (r *TraitRegistryImpl) Upsert(_ context.Context, t trait.Trait) error {
	if t.Key == "" {
		return apperrors.ValidationError("Trait key cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.traits[t.Key] = t
	return nil
}

// Count returns the number of registered traits
func (r *TraitRegistryImpl) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.traits), nil
}
