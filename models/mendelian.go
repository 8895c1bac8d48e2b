package models

import (
	"fmt"
	"strings"

	"gomendel/domain/genetics"
)

// SimulationRequest is the POST /api/mendelian/simulate body: per-trait
// parent genotypes keyed by registry trait key. AsPercentages defaults to
// false on this endpoint.
type SimulationRequest struct {
	Parent1Genotypes map[string]string `json:"parent1_genotypes"`
	Parent2Genotypes map[string]string `json:"parent2_genotypes"`
	TraitFilter      []string          `json:"trait_filter,omitempty"`
	AsPercentages    bool              `json:"as_percentages"`
}

// SanitizedParents returns both genotype maps with all spaces removed from
// the genotype values.
func (r SimulationRequest) SanitizedParents() (map[string]string, map[string]string) {
	return stripGenotypeMap(r.Parent1Genotypes), stripGenotypeMap(r.Parent2Genotypes)
}

func stripGenotypeMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for key, genotype := range in {
		out[key] = strings.ReplaceAll(genotype, " ", "")
	}
	return out
}

// Validate enforces the request-level limits. maxTraits bounds how many
// traits one call may simulate.
func (r SimulationRequest) Validate(maxTraits int) error {
	if len(r.Parent1Genotypes) == 0 || len(r.Parent2Genotypes) == 0 {
		return fmt.Errorf("both parent genotype maps are required")
	}
	requested := len(r.TraitFilter)
	if requested == 0 {
		requested = len(r.Parent1Genotypes)
	}
	if requested > maxTraits {
		return fmt.Errorf("Maximum %d traits allowed, got %d", maxTraits, requested)
	}
	return nil
}

// TraitSimulationResult carries one trait's offspring ratios. Distributions
// keep first-seen ordering so responses serialize identically run to run.
type TraitSimulationResult struct {
	GenotypicRatios  genetics.Distribution `json:"genotypic_ratios"`
	PhenotypicRatios genetics.Distribution `json:"phenotypic_ratios"`
}

// SimulationResponse is the /simulate reply. MissingTraits lists requested
// keys the registry does not hold.
type SimulationResponse struct {
	Results       map[string]TraitSimulationResult `json:"results"`
	MissingTraits []string                         `json:"missing_traits"`
}

// GenotypeRequest asks for the possible genotypes of registry traits.
type GenotypeRequest struct {
	TraitKeys []string `json:"trait_keys"`
}

// Validate enforces the trait-count cap shared with simulation.
func (r GenotypeRequest) Validate(maxTraits int) error {
	if len(r.TraitKeys) == 0 {
		return fmt.Errorf("at least one trait key is required")
	}
	if len(r.TraitKeys) > maxTraits {
		return fmt.Errorf("Maximum %d traits allowed, got %d", maxTraits, len(r.TraitKeys))
	}
	return nil
}

// GenotypeResponse lists each trait's canonical genotypes in declared
// allele order.
type GenotypeResponse struct {
	Genotypes     map[string][]string `json:"genotypes"`
	MissingTraits []string            `json:"missing_traits"`
}
