package genetics

// Format applies the caller's output preference. With asPercentages every
// probability in the gametes, the grid cells, and both distributions is
// multiplied by 100; otherwise the result passes through untouched. All
// upstream stages work in fractions, and the normalization tolerance is
// checked before this scaling ever happens. The input result is not
// mutated.
func Format(result PreviewResult, asPercentages bool) PreviewResult {
	if !asPercentages {
		return result
	}
	out := result
	out.Gametes = GameteSet{
		P1: scaleGametes(result.Gametes.P1),
		P2: scaleGametes(result.Gametes.P2),
	}
	out.Punnett = scaleGrid(result.Punnett)
	out.GenotypeDist = result.GenotypeDist.Scale(100)
	out.PhenotypeDist = result.PhenotypeDist.Scale(100)
	return out
}

func scaleGametes(in []Gamete) []Gamete {
	out := make([]Gamete, len(in))
	for i, g := range in {
		g.Probability *= 100
		out[i] = g
	}
	return out
}

func scaleGrid(in Grid) Grid {
	out := make(Grid, len(in))
	for i, row := range in {
		cells := make([]PunnettCell, len(row))
		for j, cell := range row {
			cell.Probability *= 100
			cells[j] = cell
		}
		out[i] = cells
	}
	return out
}
