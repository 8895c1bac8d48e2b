package genetics

// Canonicalizer fixes a single deterministic 2-character genotype for any
// unordered pair of alleles, so "Aa" from p1xp2 and "aA" from the symmetric
// cross aggregate into the same bucket.
type Canonicalizer func(a, b string) string

// NewCanonicalizer builds the canonical ordering for a trait: the allele
// declared earlier in the trait's allele list is written first. Identical
// alleles double. Symbols missing from the declared list (only reachable
// when validation was skipped) keep their given order, which is still
// deterministic for fixed input.
func NewCanonicalizer(alleles []string) Canonicalizer {
	rank := make(map[string]int, len(alleles))
	for i, a := range alleles {
		if _, ok := rank[a]; !ok {
			rank[a] = i
		}
	}
	return func(a, b string) string {
		if a == b {
			return a + b
		}
		ra, aOK := rank[a]
		rb, bOK := rank[b]
		switch {
		case aOK && bOK:
			if rb < ra {
				return b + a
			}
			return a + b
		case bOK:
			return b + a
		default:
			return a + b
		}
	}
}

// Canonical applies the trait's declared-order canonicalization to an
// arbitrary 2-character genotype string.
func (t TraitDefinition) Canonical(genotype string) string {
	runes := []rune(genotype)
	if len(runes) != 2 {
		return genotype
	}
	canon := NewCanonicalizer(t.Alleles)
	return canon(string(runes[0]), string(runes[1]))
}
