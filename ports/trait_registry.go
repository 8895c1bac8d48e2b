package ports

import (
	"context"

	"gomendel/domain/trait"
)

// TraitFilter narrows a registry listing. Zero-value fields match
// everything.
type TraitFilter struct {
	InheritancePattern string
	Category           string
	Search             string
}

// TraitRegistry defines the interface for trait catalog operations
type TraitRegistry interface {
	// Get retrieves one trait by its key
	Get(ctx context.Context, key string) (trait.Trait, error)

	// List returns traits matching the filter, ordered by key
	List(ctx context.Context, filter TraitFilter) ([]trait.Trait, error)

	// Upsert inserts or replaces a trait under its key
	Upsert(ctx context.Context, t trait.Trait) error

	// Count returns the number of registered traits
	Count(ctx context.Context) (int, error)
}
