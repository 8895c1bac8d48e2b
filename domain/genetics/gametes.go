package genetics

// Gametes derives a parent's gametes under independent assortment. A
// homozygous parent yields one gamete with probability 1.0; a heterozygous
// parent yields two gametes at 0.5 each, ordered as the characters appear
// in the input genotype. That order is what fixes the Punnett grid's row
// and column order between repeated calls, which the UI relies on when it
// recomputes cell products from the displayed per-gamete probabilities.
//
// Inputs that are not 2 characters return nil; Validate reports those
// before this stage runs.
func Gametes(genotype string) []Gamete {
	runes := []rune(genotype)
	if len(runes) != 2 {
		return nil
	}
	first, second := string(runes[0]), string(runes[1])
	if first == second {
		return []Gamete{{Allele: first, Probability: 1.0}}
	}
	return []Gamete{
		{Allele: first, Probability: 0.5},
		{Allele: second, Probability: 0.5},
	}
}
