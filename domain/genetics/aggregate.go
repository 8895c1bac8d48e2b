package genetics

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

const internalErrorPrefix = "Internal consistency check failed"

// IsInternalError reports whether an engine error message denotes an
// internal-consistency defect rather than bad user input. Hosts log these
// at error level; they should be unreachable when Validate passed.
func IsInternalError(msg string) bool {
	return strings.HasPrefix(msg, internalErrorPrefix)
}

// Aggregate reduces the grid into a genotype distribution and, through the
// phenotype map, a phenotype distribution. Keys enter each distribution in
// first-seen row-major traversal order.
//
// A genotype missing from the phenotype map is a data-consistency error:
// the message names the genotype and its mass is excluded from the
// phenotype distribution without renormalizing, so the shortfall stays
// visible to the caller.
//
// The genotype masses must sum to 1.0 within NormalizationTolerance
// (fraction space). A breach is reported as an internal-consistency error:
// it means a gamete invariant was violated upstream, not that the user
// supplied bad input.
func Aggregate(grid Grid, phenotypeMap map[string]string) (Distribution, Distribution, []string) {
	genotypeDist := NewDistribution()
	phenotypeDist := NewDistribution()
	errs := []string{}

	for _, row := range grid {
		for _, cell := range row {
			genotypeDist.Add(cell.Genotype, cell.Probability)
		}
	}

	for _, g := range genotypeDist.Keys() {
		mass, _ := genotypeDist.Get(g)
		phenotype, ok := phenotypeMap[g]
		if !ok {
			errs = append(errs, fmt.Sprintf("No phenotype mapping for genotype '%s'", g))
			continue
		}
		phenotypeDist.Add(phenotype, mass)
	}

	if genotypeDist.Len() > 0 && !scalar.EqualWithinAbs(genotypeDist.Sum(), 1.0, NormalizationTolerance) {
		errs = append(errs, fmt.Sprintf("%s: genotype distribution sums to %.6f", internalErrorPrefix, genotypeDist.Sum()))
	}

	return genotypeDist, phenotypeDist, errs
}
