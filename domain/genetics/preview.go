package genetics

// Preview runs the whole pipeline for one trait and two parent genotypes:
// validate, resolve gametes, cross, aggregate, explain, format. It is a
// pure function of its inputs and safe to call from any number of
// goroutines.
//
// Draft traits (no alleles or no phenotype map yet) short-circuit to an
// empty result with no errors. Validation failures return the same empty
// shape with every collected message in Errors. Mapping gaps and
// internal-consistency findings surface in Errors alongside the completed
// computation.
func Preview(trait TraitDefinition, parent1, parent2 string, asPercentages bool) PreviewResult {
	result := EmptyResult()

	if trait.IsDraft() {
		return result
	}

	if errs := Validate(trait, parent1, parent2); len(errs) > 0 {
		result.Errors = errs
		return result
	}

	result.Gametes = GameteSet{P1: Gametes(parent1), P2: Gametes(parent2)}

	canon := NewCanonicalizer(trait.Alleles)
	result.Punnett = Cross(result.Gametes.P1, result.Gametes.P2, canon)

	genotypeDist, phenotypeDist, errs := Aggregate(result.Punnett, trait.PhenotypeMap)
	result.GenotypeDist = genotypeDist
	result.PhenotypeDist = phenotypeDist
	result.Errors = append(result.Errors, errs...)

	result.Steps = Explain(parent1, parent2, result.Gametes, genotypeDist, phenotypeDist, trait.InheritancePattern)

	return Format(result, asPercentages)
}
