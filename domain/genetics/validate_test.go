package genetics

import (
	"strings"
	"testing"
)

func TestValidate_CollectsAllFailures(t *testing.T) {
	trait := TraitDefinition{
		Alleles: []string{"A", "A", "ab"},
		PhenotypeMap: map[string]string{
			"AAA": "Triplet",
			"AZ":  "",
		},
	}

	errs := Validate(trait, "Ax", "A")

	wantFragments := []string{
		"Duplicate allele 'A'",
		"Allele 'ab' must be a single character",
		"Phenotype map key 'AAA' must be exactly 2 characters",
		"uses undeclared allele 'Z'",
		"Empty phenotype label for genotype 'AZ'",
		"Unknown allele 'x' in parent genotype",
		"Parent genotype 'A' must be exactly 2 characters",
	}
	for _, frag := range wantFragments {
		found := false
		for _, e := range errs {
			if strings.Contains(e, frag) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing failure %q in %v", frag, errs)
		}
	}
}

func TestValidate_PassesWellFormedInput(t *testing.T) {
	trait := TraitDefinition{
		Alleles:      []string{"B", "b"},
		PhenotypeMap: map[string]string{"BB": "Brown", "Bb": "Brown", "bb": "Blue"},
	}
	if errs := Validate(trait, "Bb", "bb"); len(errs) != 0 {
		t.Fatalf("expected clean validation, got %v", errs)
	}
}

func TestValidate_RejectsMoreThanTwoAlleles(t *testing.T) {
	trait := TraitDefinition{
		Alleles:      []string{"A", "B", "O"},
		PhenotypeMap: map[string]string{"AA": "A"},
	}
	errs := Validate(trait, "AB", "AO")
	found := false
	for _, e := range errs {
		if strings.Contains(e, "at most 2") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected allele-count rejection, got %v", errs)
	}
}

func TestValidate_NamesEachUnknownSymbolOnce(t *testing.T) {
	trait := TraitDefinition{
		Alleles:      []string{"A", "a"},
		PhenotypeMap: map[string]string{"AA": "Dominant", "Aa": "Dominant", "aa": "Recessive"},
	}
	errs := Validate(trait, "xy", "Aa")

	var unknown []string
	for _, e := range errs {
		if strings.Contains(e, "Unknown allele") {
			unknown = append(unknown, e)
		}
	}
	if len(unknown) != 2 {
		t.Fatalf("expected two unknown-allele messages, got %v", unknown)
	}
	if unknown[0] != "Unknown allele 'x' in parent genotype" {
		t.Fatalf("unexpected message %q", unknown[0])
	}
	if unknown[1] != "Unknown allele 'y' in parent genotype" {
		t.Fatalf("unexpected message %q", unknown[1])
	}

	errs = Validate(trait, "xx", "Aa")
	count := 0
	for _, e := range errs {
		if strings.Contains(e, "Unknown allele 'x'") {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("repeated unknown symbol should be reported once per parent, got %d messages", count)
	}
}

func TestValidate_MapCheckOrderIsDeterministic(t *testing.T) {
	trait := TraitDefinition{
		Alleles: []string{"A", "a"},
		PhenotypeMap: map[string]string{
			"zz": "one",
			"qq": "two",
		},
	}
	first := Validate(trait, "Aa", "Aa")
	for i := 0; i < 20; i++ {
		again := Validate(trait, "Aa", "Aa")
		if len(again) != len(first) {
			t.Fatalf("validation output length changed between runs: %v vs %v", first, again)
		}
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("validation message order changed: %v vs %v", first, again)
			}
		}
	}
}
