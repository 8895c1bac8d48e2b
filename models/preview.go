package models

import (
	"sort"
	"strings"

	"gomendel/domain/genetics"
)

// PreviewTrait is the ad-hoc trait definition a preview request carries.
// The widget sends whatever the trait editor currently holds, so the fields
// arrive unsanitized.
type PreviewTrait struct {
	Alleles            []string          `json:"alleles"`
	PhenotypeMap       map[string]string `json:"phenotype_map"`
	InheritancePattern string            `json:"inheritance_pattern,omitempty"`
}

// PreviewRequest is the POST /api/mendelian/preview body. AsPercentages
// defaults to true when omitted; Seed is reserved for a sampling mode that
// the analytical engine does not implement, so it is parsed and ignored.
type PreviewRequest struct {
	Trait         PreviewTrait `json:"trait"`
	Parent1       string       `json:"parent1"`
	Parent2       string       `json:"parent2"`
	AsPercentages *bool        `json:"as_percentages,omitempty"`
	Seed          *int64       `json:"seed,omitempty"`
}

// AsPercentagesValue resolves the tri-state flag to its default.
func (r PreviewRequest) AsPercentagesValue() bool {
	if r.AsPercentages == nil {
		return true
	}
	return *r.AsPercentages
}

// Sanitize normalizes the raw payload the way the trait editor's contract
// promises: allele symbols are whitespace-trimmed and deduplicated
// preserving first occurrence, phenotype-map keys and parent genotypes lose
// all spaces. Values that vanish under cleaning are reported as messages in
// the preview's errors channel rather than failing the request.
func (r PreviewRequest) Sanitize() (genetics.TraitDefinition, string, string, []string) {
	msgs := []string{}

	alleles := make([]string, 0, len(r.Trait.Alleles))
	seen := map[string]bool{}
	emptyAllele := false
	for _, raw := range r.Trait.Alleles {
		allele := strings.TrimSpace(raw)
		if allele == "" {
			emptyAllele = true
			continue
		}
		if !seen[allele] {
			seen[allele] = true
			alleles = append(alleles, allele)
		}
	}
	if emptyAllele {
		msgs = append(msgs, "Allele symbols cannot be empty")
	}

	phenotypeMap := make(map[string]string, len(r.Trait.PhenotypeMap))
	emptyKey := false
	rawKeys := make([]string, 0, len(r.Trait.PhenotypeMap))
	for k := range r.Trait.PhenotypeMap {
		rawKeys = append(rawKeys, k)
	}
	sort.Strings(rawKeys)
	for _, k := range rawKeys {
		genotype := strings.ReplaceAll(k, " ", "")
		if genotype == "" {
			emptyKey = true
			continue
		}
		phenotypeMap[genotype] = r.Trait.PhenotypeMap[k]
	}
	if emptyKey {
		msgs = append(msgs, "Genotype keys in phenotype_map cannot be empty")
	}

	parent1 := strings.ReplaceAll(r.Parent1, " ", "")
	parent2 := strings.ReplaceAll(r.Parent2, " ", "")
	if parent1 == "" || parent2 == "" {
		msgs = append(msgs, "Parent genotypes cannot be empty")
	}

	def := genetics.TraitDefinition{
		Alleles:            alleles,
		PhenotypeMap:       phenotypeMap,
		InheritancePattern: strings.TrimSpace(r.Trait.InheritancePattern),
	}
	return def, parent1, parent2, msgs
}
