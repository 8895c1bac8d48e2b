package genetics

// ============================================================================
// CORE TYPES - Single-locus diploid cross model
// ============================================================================

// NormalizationTolerance bounds how far a probability distribution may drift
// from 1.0 before the aggregator reports an internal-consistency error. The
// tolerance is always applied in fraction space, before any percentage
// scaling.
const NormalizationTolerance = 0.001

// MaxAlleles is the number of distinct allele symbols a trait may declare.
// The model is single-locus diploid; larger allele sets are rejected by
// Validate rather than by the types themselves.
const MaxAlleles = 2

// TraitDefinition describes one heritable trait as supplied by the caller.
//
// INVARIANTS (enforced by Validate, not by construction):
// - Alleles holds 1-2 distinct single-character symbols
// - Alleles order is the declared dominance/display order
// - every PhenotypeMap key is a 2-character string over declared alleles
// - PhenotypeMap labels are non-empty
type TraitDefinition struct {
	Alleles            []string          `json:"alleles"`
	PhenotypeMap       map[string]string `json:"phenotype_map"`
	InheritancePattern string            `json:"inheritance_pattern,omitempty"`
}

// IsDraft reports whether the trait is still being drafted. A draft trait
// (no alleles yet, or no phenotype map yet) produces an empty preview with
// no errors, mirroring an editor that shows nothing until the definition is
// usable.
func (t TraitDefinition) IsDraft() bool {
	return len(t.Alleles) == 0 || len(t.PhenotypeMap) == 0
}

// Gamete is one allele a parent can contribute, with the probability of a
// gamete carrying it. A parent's gamete probabilities sum to 1.0.
type Gamete struct {
	Allele      string  `json:"allele"`
	Probability float64 `json:"probability"`
}

// GameteSet groups both parents' gamete sequences. Order within each
// sequence is meaningful: it fixes the Punnett grid's row and column order.
type GameteSet struct {
	P1 []Gamete `json:"p1"`
	P2 []Gamete `json:"p2"`
}

// PunnettCell is one cell of the cross grid: the canonical genotype formed
// by a row gamete and a column gamete, with the joint probability.
type PunnettCell struct {
	Parent1Allele string  `json:"parent1_allele"`
	Parent2Allele string  `json:"parent2_allele"`
	Genotype      string  `json:"genotype"`
	Probability   float64 `json:"probability"`
}

// Grid is the Punnett square. Rows follow parent 1's gamete order, columns
// parent 2's. The ordering is presentational; aggregation does not depend
// on it.
type Grid [][]PunnettCell

// PreviewResult is the full output of one preview computation. Expected
// failure modes travel in Errors; the engine never panics or returns a Go
// error for user input.
type PreviewResult struct {
	Gametes       GameteSet    `json:"gametes"`
	Punnett       Grid         `json:"punnett"`
	GenotypeDist  Distribution `json:"genotype_dist"`
	PhenotypeDist Distribution `json:"phenotype_dist"`
	Steps         []string     `json:"steps"`
	Errors        []string     `json:"errors"`
}

// EmptyResult returns a result with every collection initialized and empty,
// so transport layers marshal [] and {} instead of null.
func EmptyResult() PreviewResult {
	return PreviewResult{
		Gametes:       GameteSet{P1: []Gamete{}, P2: []Gamete{}},
		Punnett:       Grid{},
		GenotypeDist:  NewDistribution(),
		PhenotypeDist: NewDistribution(),
		Steps:         []string{},
		Errors:        []string{},
	}
}
