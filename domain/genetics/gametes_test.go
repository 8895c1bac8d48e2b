package genetics

import "testing"

func TestGametes(t *testing.T) {
	tests := []struct {
		name     string
		genotype string
		want     []Gamete
	}{
		{
			name:     "homozygous dominant",
			genotype: "AA",
			want:     []Gamete{{Allele: "A", Probability: 1.0}},
		},
		{
			name:     "homozygous recessive",
			genotype: "aa",
			want:     []Gamete{{Allele: "a", Probability: 1.0}},
		},
		{
			name:     "heterozygous keeps input order",
			genotype: "Aa",
			want:     []Gamete{{Allele: "A", Probability: 0.5}, {Allele: "a", Probability: 0.5}},
		},
		{
			name:     "heterozygous reversed input reverses order",
			genotype: "aA",
			want:     []Gamete{{Allele: "a", Probability: 0.5}, {Allele: "A", Probability: 0.5}},
		},
		{
			name:     "wrong length yields nothing",
			genotype: "AAa",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Gametes(tt.genotype)
			if len(got) != len(tt.want) {
				t.Fatalf("Gametes(%q) = %+v, want %+v", tt.genotype, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Gametes(%q)[%d] = %+v, want %+v", tt.genotype, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGametes_ProbabilitiesSumToOne(t *testing.T) {
	for _, genotype := range []string{"AA", "Aa", "aA", "aa", "Bb"} {
		sum := 0.0
		for _, g := range Gametes(genotype) {
			sum += g.Probability
		}
		if sum != 1.0 {
			t.Fatalf("gamete probabilities for %q sum to %v", genotype, sum)
		}
	}
}

func TestGametes_StableAcrossCalls(t *testing.T) {
	first := Gametes("Aa")
	for i := 0; i < 10; i++ {
		again := Gametes("Aa")
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("gamete order changed between calls: %+v vs %+v", first, again)
			}
		}
	}
}
