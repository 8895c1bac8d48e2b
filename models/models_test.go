package models

import (
	"reflect"
	"strings"
	"testing"

	"gomendel/domain/trait"
)

func TestPreviewRequestSanitizeStripsWhitespace(t *testing.T) {
	req := PreviewRequest{
		Trait: PreviewTrait{
			Alleles:            []string{" A", "a ", "A"},
			PhenotypeMap:       map[string]string{"A A": "Dominant", "Aa": "Dominant", "aa": "Recessive"},
			InheritancePattern: " autosomal_dominant ",
		},
		Parent1: " A a ",
		Parent2: "aa",
	}

	def, p1, p2, msgs := req.Sanitize()
	if len(msgs) != 0 {
		t.Fatalf("unexpected sanitize messages: %v", msgs)
	}
	if !reflect.DeepEqual(def.Alleles, []string{"A", "a"}) {
		t.Errorf("alleles = %v, want [A a]", def.Alleles)
	}
	wantMap := map[string]string{"AA": "Dominant", "Aa": "Dominant", "aa": "Recessive"}
	if !reflect.DeepEqual(def.PhenotypeMap, wantMap) {
		t.Errorf("phenotype map = %v, want %v", def.PhenotypeMap, wantMap)
	}
	if def.InheritancePattern != "autosomal_dominant" {
		t.Errorf("inheritance pattern = %q", def.InheritancePattern)
	}
	if p1 != "Aa" || p2 != "aa" {
		t.Errorf("parents = %q, %q, want Aa, aa", p1, p2)
	}
}

func TestPreviewRequestSanitizeMessages(t *testing.T) {
	tests := []struct {
		name string
		req  PreviewRequest
		want string
	}{
		{
			name: "blank allele",
			req: PreviewRequest{
				Trait:   PreviewTrait{Alleles: []string{"A", "  "}, PhenotypeMap: map[string]string{"AA": "x"}},
				Parent1: "AA", Parent2: "AA",
			},
			want: "Allele symbols cannot be empty",
		},
		{
			name: "blank phenotype key",
			req: PreviewRequest{
				Trait:   PreviewTrait{Alleles: []string{"A"}, PhenotypeMap: map[string]string{"  ": "x"}},
				Parent1: "AA", Parent2: "AA",
			},
			want: "Genotype keys in phenotype_map cannot be empty",
		},
		{
			name: "blank parent",
			req: PreviewRequest{
				Trait:   PreviewTrait{Alleles: []string{"A"}, PhenotypeMap: map[string]string{"AA": "x"}},
				Parent1: "  ", Parent2: "AA",
			},
			want: "Parent genotypes cannot be empty",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, msgs := tc.req.Sanitize()
			if len(msgs) != 1 {
				t.Fatalf("got %d messages %v, want exactly one", len(msgs), msgs)
			}
			if msgs[0] != tc.want {
				t.Errorf("message = %q, want %q", msgs[0], tc.want)
			}
		})
	}
}

func TestPreviewRequestAsPercentagesDefault(t *testing.T) {
	var req PreviewRequest
	if !req.AsPercentagesValue() {
		t.Error("preview should default to percentages")
	}

	off := false
	req.AsPercentages = &off
	if req.AsPercentagesValue() {
		t.Error("explicit false should disable percentages")
	}
}

func TestSimulationRequestValidate(t *testing.T) {
	parents := map[string]string{
		"t1": "Aa", "t2": "Aa", "t3": "Aa", "t4": "Aa", "t5": "Aa", "t6": "Aa",
	}

	tests := []struct {
		name    string
		req     SimulationRequest
		wantErr string
	}{
		{
			name:    "missing parents",
			req:     SimulationRequest{},
			wantErr: "both parent genotype maps are required",
		},
		{
			name:    "too many traits",
			req:     SimulationRequest{Parent1Genotypes: parents, Parent2Genotypes: parents},
			wantErr: "Maximum 5 traits allowed, got 6",
		},
		{
			name: "filter caps the count",
			req: SimulationRequest{
				Parent1Genotypes: parents,
				Parent2Genotypes: parents,
				TraitFilter:      []string{"t1", "t2"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate(5)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tc.wantErr {
				t.Errorf("error = %v, want %q", err, tc.wantErr)
			}
		})
	}
}

func TestSimulationRequestSanitizedParents(t *testing.T) {
	req := SimulationRequest{
		Parent1Genotypes: map[string]string{"eye_color": "B b"},
		Parent2Genotypes: map[string]string{"eye_color": " bb "},
	}

	p1, p2 := req.SanitizedParents()
	if p1["eye_color"] != "Bb" {
		t.Errorf("parent1 = %q, want Bb", p1["eye_color"])
	}
	if p2["eye_color"] != "bb" {
		t.Errorf("parent2 = %q, want bb", p2["eye_color"])
	}
}

func TestGenotypeRequestValidate(t *testing.T) {
	if err := (GenotypeRequest{}).Validate(5); err == nil {
		t.Error("empty request should fail")
	}

	req := GenotypeRequest{TraitKeys: []string{"a", "b", "c", "d", "e", "f"}}
	err := req.Validate(5)
	if err == nil || err.Error() != "Maximum 5 traits allowed, got 6" {
		t.Errorf("error = %v, want trait cap message", err)
	}

	if err := (GenotypeRequest{TraitKeys: []string{"eye_color"}}).Validate(5); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewTraitSummaryRendersMarkdown(t *testing.T) {
	src := trait.Trait{
		Key:         "eye_color",
		Name:        "Eye Color",
		Description: "**Brown** is dominant over blue.",
	}

	summary := NewTraitSummary(src)
	if !strings.Contains(summary.DescriptionHTML, "<strong>Brown</strong>") {
		t.Errorf("description html = %q, want rendered emphasis", summary.DescriptionHTML)
	}
	if summary.Key != "eye_color" {
		t.Errorf("key = %q, want eye_color", summary.Key)
	}

	empty := NewTraitSummary(trait.Trait{Key: "bare"})
	if empty.DescriptionHTML != "" {
		t.Errorf("empty description should render empty, got %q", empty.DescriptionHTML)
	}
}
