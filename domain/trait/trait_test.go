package trait

import (
	"strings"
	"testing"
)

func TestTrait_Validate(t *testing.T) {
	tests := []struct {
		name          string
		trait         Trait
		wantFragments []string
	}{
		{
			name: "complete trait passes",
			trait: Trait{
				Key:          "eye_color",
				Name:         "Eye Color",
				Alleles:      []string{"B", "b"},
				PhenotypeMap: map[string]string{"BB": "Brown", "Bb": "Brown", "bb": "Blue"},
			},
			wantFragments: nil,
		},
		{
			name: "empty identity fields",
			trait: Trait{
				Key:          "  ",
				Name:         "",
				Alleles:      []string{"A", "a"},
				PhenotypeMap: map[string]string{"AA": "x", "Aa": "x", "aa": "y"},
			},
			wantFragments: []string{"Trait key cannot be empty", "Trait name cannot be empty"},
		},
		{
			name:          "no alleles",
			trait:         Trait{Key: "k", Name: "n"},
			wantFragments: []string{"At least one allele must be provided"},
		},
		{
			name: "missing coverage",
			trait: Trait{
				Key:          "k",
				Name:         "n",
				Alleles:      []string{"A", "a"},
				PhenotypeMap: map[string]string{"AA": "x"},
			},
			wantFragments: []string{"Missing genotype phenotypes: Aa, aa"},
		},
		{
			name: "unexpected genotype key",
			trait: Trait{
				Key:          "k",
				Name:         "n",
				Alleles:      []string{"A", "a"},
				PhenotypeMap: map[string]string{"AA": "x", "Aa": "x", "aa": "y", "zz": "ghost"},
			},
			wantFragments: []string{"Unexpected genotypes in phenotype map: zz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.trait.Validate()
			if tt.wantFragments == nil {
				if len(errs) != 0 {
					t.Fatalf("expected clean trait, got %v", errs)
				}
				return
			}
			for _, frag := range tt.wantFragments {
				found := false
				for _, e := range errs {
					if strings.Contains(e, frag) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("missing %q in %v", frag, errs)
				}
			}
		})
	}
}

func TestTrait_AllGenotypes(t *testing.T) {
	tr := Trait{Alleles: []string{"B", "b"}}
	got := tr.AllGenotypes()
	want := []string{"BB", "Bb", "bb"}
	if len(got) != len(want) {
		t.Fatalf("AllGenotypes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AllGenotypes = %v, want %v", got, want)
		}
	}

	single := Trait{Alleles: []string{"A"}}
	got = single.AllGenotypes()
	if len(got) != 1 || got[0] != "AA" {
		t.Fatalf("single-allele genotypes = %v, want [AA]", got)
	}
}

func TestTrait_MatchesFilter(t *testing.T) {
	tr := Trait{
		Key:                "eye_color",
		Name:               "Eye Color",
		Description:        "Brown dominant over blue.",
		InheritancePattern: "autosomal_dominant",
		Category:           "physical",
	}

	if !tr.MatchesFilter("", "", "") {
		t.Fatal("empty filter must match")
	}
	if !tr.MatchesFilter("autosomal_dominant", "physical", "brown") {
		t.Fatal("full filter should match")
	}
	if tr.MatchesFilter("codominant", "", "") {
		t.Fatal("pattern mismatch should fail")
	}
	if tr.MatchesFilter("", "", "freckles") {
		t.Fatal("search miss should fail")
	}
}

func TestBuiltins_AreValid(t *testing.T) {
	builtins := Builtins()
	if len(builtins) == 0 {
		t.Fatal("expected seeded builtins")
	}
	seen := map[string]bool{}
	for _, tr := range builtins {
		if errs := tr.Validate(); len(errs) != 0 {
			t.Errorf("builtin %q fails validation: %v", tr.Key, errs)
		}
		if seen[tr.Key] {
			t.Errorf("duplicate builtin key %q", tr.Key)
		}
		seen[tr.Key] = true
	}
}
