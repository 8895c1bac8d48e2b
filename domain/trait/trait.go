package trait

import (
	"fmt"
	"sort"
	"strings"

	"gomendel/domain/genetics"
)

// ============================================================================
// REGISTRY TRAIT - a curated trait definition plus product metadata
// ============================================================================

// Trait is a registry entry: the computational definition the engine needs
// together with the descriptive metadata the education product shows on
// trait cards. Description is markdown source; transport layers render it.
type Trait struct {
	Key                string            `json:"key"`
	Name               string            `json:"name"`
	Description        string            `json:"description,omitempty"`
	Alleles            []string          `json:"alleles"`
	PhenotypeMap       map[string]string `json:"phenotype_map"`
	InheritancePattern string            `json:"inheritance_pattern,omitempty"`
	Category           string            `json:"category,omitempty"`
	Tags               []string          `json:"tags,omitempty"`
}

// Definition projects the registry entry onto the engine's input type.
func (t Trait) Definition() genetics.TraitDefinition {
	return genetics.TraitDefinition{
		Alleles:            t.Alleles,
		PhenotypeMap:       t.PhenotypeMap,
		InheritancePattern: t.InheritancePattern,
	}
}

// AllGenotypes enumerates every canonical diploid genotype the declared
// alleles can form, pairs-with-replacement in declared order. For alleles
// (B, b) that is BB, Bb, bb.
func (t Trait) AllGenotypes() []string {
	canon := genetics.NewCanonicalizer(t.Alleles)
	out := make([]string, 0, len(t.Alleles)*(len(t.Alleles)+1)/2)
	for i := 0; i < len(t.Alleles); i++ {
		for j := i; j < len(t.Alleles); j++ {
			out = append(out, canon(t.Alleles[i], t.Alleles[j]))
		}
	}
	return out
}

// Validate checks a registry entry for completeness, collecting every
// problem: identity fields, engine-level definition checks, and full
// phenotype coverage (each expected genotype mapped, no stray keys).
func (t Trait) Validate() []string {
	errs := []string{}
	if strings.TrimSpace(t.Key) == "" {
		errs = append(errs, "Trait key cannot be empty")
	}
	if strings.TrimSpace(t.Name) == "" {
		errs = append(errs, "Trait name cannot be empty")
	}
	if len(t.Alleles) == 0 {
		errs = append(errs, "At least one allele must be provided")
		return errs
	}

	defErrs, _ := genetics.ValidateTrait(t.Definition())
	errs = append(errs, defErrs...)

	errs = append(errs, t.validateCoverage()...)
	return errs
}

// validateCoverage compares the declared phenotype map against the full
// genotype space.
func (t Trait) validateCoverage() []string {
	expected := map[string]bool{}
	for _, g := range t.AllGenotypes() {
		expected[g] = true
	}

	def := t.Definition()
	provided := map[string]bool{}
	for k := range t.PhenotypeMap {
		provided[def.Canonical(k)] = true
	}

	errs := []string{}
	if missing := subtract(expected, provided); len(missing) > 0 {
		errs = append(errs, fmt.Sprintf("Missing genotype phenotypes: %s", strings.Join(missing, ", ")))
	}
	if extra := subtract(provided, expected); len(extra) > 0 {
		errs = append(errs, fmt.Sprintf("Unexpected genotypes in phenotype map: %s", strings.Join(extra, ", ")))
	}
	return errs
}

func subtract(a, b map[string]bool) []string {
	out := []string{}
	for k := range a {
		if !b[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// MatchesFilter reports whether the trait satisfies a registry listing
// filter. Empty filter fields match everything; search scans key, name and
// description case-insensitively.
func (t Trait) MatchesFilter(inheritancePattern, category, search string) bool {
	if inheritancePattern != "" && t.InheritancePattern != inheritancePattern {
		return false
	}
	if category != "" && t.Category != category {
		return false
	}
	if search != "" {
		needle := strings.ToLower(search)
		haystack := strings.ToLower(t.Key + " " + t.Name + " " + t.Description)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
