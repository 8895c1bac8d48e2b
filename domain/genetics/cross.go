package genetics

// Cross builds the Punnett grid from both parents' gametes. Rows follow
// parent 1's gamete order, columns parent 2's. Each cell multiplies the two
// gamete probabilities exactly; no rounding happens at this stage.
func Cross(p1, p2 []Gamete, canon Canonicalizer) Grid {
	grid := make(Grid, 0, len(p1))
	for _, row := range p1 {
		cells := make([]PunnettCell, 0, len(p2))
		for _, col := range p2 {
			cells = append(cells, PunnettCell{
				Parent1Allele: row.Allele,
				Parent2Allele: col.Allele,
				Genotype:      canon(row.Allele, col.Allele),
				Probability:   row.Probability * col.Probability,
			})
		}
		grid = append(grid, cells)
	}
	return grid
}
