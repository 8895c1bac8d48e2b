package genetics

import (
	"strings"
	"testing"
)

func TestExplain_SixStepsInOrder(t *testing.T) {
	trait := dominantTrait()
	gametes := GameteSet{P1: Gametes("Aa"), P2: Gametes("Aa")}
	genotypeDist, phenotypeDist, _ := Aggregate(Cross(gametes.P1, gametes.P2, NewCanonicalizer(trait.Alleles)), trait.PhenotypeMap)

	steps := Explain("Aa", "Aa", gametes, genotypeDist, phenotypeDist, trait.InheritancePattern)

	if len(steps) != 6 {
		t.Fatalf("expected 6 steps, got %d: %v", len(steps), steps)
	}
	if !strings.Contains(steps[0], "Parent 1") {
		t.Fatalf("step 1 should cover parent 1, got %q", steps[0])
	}
	if !strings.Contains(steps[1], "Parent 2") {
		t.Fatalf("step 2 should cover parent 2, got %q", steps[1])
	}
	if !strings.Contains(steps[2], "Punnett") {
		t.Fatalf("step 3 should describe the grid, got %q", steps[2])
	}

	// Every genotype share must be readable somewhere in the trail.
	for _, fact := range []string{"AA 25%", "Aa 50%", "aa 25%"} {
		if !strings.Contains(steps[3], fact) {
			t.Errorf("step 4 missing %q: %q", fact, steps[3])
		}
	}
	for _, fact := range []string{"Dominant 75%", "Recessive 25%"} {
		if !strings.Contains(steps[4], fact) {
			t.Errorf("step 5 missing %q: %q", fact, steps[4])
		}
	}
	if !strings.Contains(steps[5], "independent assortment") {
		t.Fatalf("step 6 should state the assumptions, got %q", steps[5])
	}
	if !strings.Contains(steps[5], "autosomal_dominant") {
		t.Fatalf("step 6 should carry the inheritance pattern, got %q", steps[5])
	}
}

func TestExplain_HomozygousPhrasing(t *testing.T) {
	gametes := GameteSet{P1: Gametes("AA"), P2: Gametes("aa")}
	genotypeDist := NewDistribution()
	genotypeDist.Add("Aa", 1.0)
	phenotypeDist := NewDistribution()
	phenotypeDist.Add("Dominant", 1.0)

	steps := Explain("AA", "aa", gametes, genotypeDist, phenotypeDist, "")

	if !strings.Contains(steps[0], "homozygous") || !strings.Contains(steps[0], "100%") {
		t.Fatalf("homozygous parent step = %q", steps[0])
	}
	if !strings.Contains(steps[2], "1x1") {
		t.Fatalf("grid step should be 1x1, got %q", steps[2])
	}
	if strings.Contains(steps[5], "Inheritance pattern") {
		t.Fatalf("no pattern was supplied, step 6 = %q", steps[5])
	}
}
