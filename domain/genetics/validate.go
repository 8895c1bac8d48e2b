package genetics

import (
	"fmt"
	"sort"
)

// Validate runs every structural and semantic check on a trait and two
// parent genotypes, collecting all failures instead of stopping at the
// first so a caller can show every problem at once. An empty slice means
// the input is computable. Draft traits (IsDraft) are not an error and are
// not checked here; the caller skips computation for them.
func Validate(trait TraitDefinition, parent1, parent2 string) []string {
	errs, declared := ValidateTrait(trait)
	errs = append(errs, validateParent(parent1, declared)...)
	errs = append(errs, validateParent(parent2, declared)...)
	return errs
}

// ValidateTrait runs the trait-level subset of the checks: allele symbols
// and phenotype-map structure, independent of any parent genotypes. It also
// returns the set of validly declared allele symbols so callers can extend
// the check (the registry does).
func ValidateTrait(trait TraitDefinition) ([]string, map[string]bool) {
	errs := []string{}

	declared := map[string]bool{}
	seen := map[string]bool{}
	for _, a := range trait.Alleles {
		if seen[a] {
			errs = append(errs, fmt.Sprintf("Duplicate allele '%s' in trait definition", a))
			continue
		}
		seen[a] = true
		if len([]rune(a)) != 1 {
			errs = append(errs, fmt.Sprintf("Allele '%s' must be a single character", a))
			continue
		}
		declared[a] = true
	}
	if len(declared) > MaxAlleles {
		errs = append(errs, fmt.Sprintf("Trait declares %d alleles; a single-locus cross supports at most %d", len(declared), MaxAlleles))
	}

	mapKeys := make([]string, 0, len(trait.PhenotypeMap))
	for k := range trait.PhenotypeMap {
		mapKeys = append(mapKeys, k)
	}
	sort.Strings(mapKeys)
	for _, k := range mapKeys {
		runes := []rune(k)
		if len(runes) != 2 {
			errs = append(errs, fmt.Sprintf("Phenotype map key '%s' must be exactly 2 characters", k))
		} else {
			flagged := map[string]bool{}
			for _, r := range runes {
				s := string(r)
				if !declared[s] && !flagged[s] {
					flagged[s] = true
					errs = append(errs, fmt.Sprintf("Phenotype map key '%s' uses undeclared allele '%s'", k, s))
				}
			}
		}
		if trait.PhenotypeMap[k] == "" {
			errs = append(errs, fmt.Sprintf("Empty phenotype label for genotype '%s'", k))
		}
	}

	return errs, declared
}

// validateParent checks one parent genotype: exactly two characters, all of
// them declared alleles. Each unknown symbol is named individually; a
// symbol repeated within the same genotype is reported once.
func validateParent(genotype string, declared map[string]bool) []string {
	errs := []string{}
	runes := []rune(genotype)
	if len(runes) != 2 {
		errs = append(errs, fmt.Sprintf("Parent genotype '%s' must be exactly 2 characters", genotype))
	}
	reported := map[string]bool{}
	for _, r := range runes {
		s := string(r)
		if !declared[s] && !reported[s] {
			reported[s] = true
			errs = append(errs, fmt.Sprintf("Unknown allele '%s' in parent genotype", s))
		}
	}
	return errs
}
