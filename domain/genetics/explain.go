package genetics

import (
	"fmt"
	"strings"
)

// Explain produces the plain-language derivation trail the preview widget
// renders as a numbered list. The contract is the step order and the six
// categories, not the wording: (1) parent 1 gametes, (2) parent 2 gametes,
// (3) grid shape, (4) genotype distribution, (5) phenotype distribution,
// (6) governing assumptions.
func Explain(parent1, parent2 string, gametes GameteSet, genotypeDist, phenotypeDist Distribution, inheritancePattern string) []string {
	steps := make([]string, 0, 6)
	steps = append(steps, describeGametes(1, parent1, gametes.P1))
	steps = append(steps, describeGametes(2, parent2, gametes.P2))

	rows, cols := len(gametes.P1), len(gametes.P2)
	steps = append(steps, fmt.Sprintf("Crossing every gamete pair fills a %dx%d Punnett square with %d cells.", rows, cols, rows*cols))

	steps = append(steps, "Summing cells by genotype: "+describeDistribution(genotypeDist)+".")
	steps = append(steps, "Applying the phenotype map: "+describeDistribution(phenotypeDist)+".")

	assumption := "Assumes independent assortment and the dominance relationships encoded by the phenotype map."
	if inheritancePattern != "" {
		assumption += fmt.Sprintf(" Inheritance pattern: %s.", inheritancePattern)
	}
	steps = append(steps, assumption)

	return steps
}

func describeGametes(parentNum int, genotype string, gametes []Gamete) string {
	if len(gametes) == 1 {
		return fmt.Sprintf("Parent %d (%s) is homozygous: every gamete carries %s (%s).",
			parentNum, genotype, gametes[0].Allele, formatPercent(gametes[0].Probability))
	}
	parts := make([]string, 0, len(gametes))
	for _, g := range gametes {
		parts = append(parts, fmt.Sprintf("%s (%s)", g.Allele, formatPercent(g.Probability)))
	}
	return fmt.Sprintf("Parent %d (%s) is heterozygous: gametes %s.",
		parentNum, genotype, strings.Join(parts, " and "))
}

func describeDistribution(d Distribution) string {
	if d.Len() == 0 {
		return "no entries"
	}
	parts := make([]string, 0, d.Len())
	for _, k := range d.Keys() {
		v, _ := d.Get(k)
		parts = append(parts, fmt.Sprintf("%s %s", k, formatPercent(v)))
	}
	return strings.Join(parts, ", ")
}

// formatPercent renders a fraction as a percentage for prose. Cross masses
// are dyadic (multiples of 0.25), so %g prints them without float noise.
func formatPercent(p float64) string {
	return fmt.Sprintf("%g%%", p*100)
}
