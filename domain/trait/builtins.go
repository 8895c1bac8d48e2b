package trait

// Builtins returns the traits every fresh registry is seeded with. They are
// the classic classroom examples, kept to two alleles to stay inside the
// engine's single-locus diploid model.
func Builtins() []Trait {
	return []Trait{
		{
			Key:                "eye_color",
			Name:               "Eye Color",
			Description:        "Simplified eye color model with **Brown** dominant over Blue.",
			Alleles:            []string{"B", "b"},
			PhenotypeMap:       map[string]string{"BB": "Brown", "Bb": "Brown", "bb": "Blue"},
			InheritancePattern: "autosomal_dominant",
			Category:           "physical",
			Tags:               []string{"classroom", "visible"},
		},
		{
			Key:                "hair_color",
			Name:               "Hair Color",
			Description:        "Simplified hair color model with **Brown** dominant over Blonde.",
			Alleles:            []string{"H", "h"},
			PhenotypeMap:       map[string]string{"HH": "Brown", "Hh": "Brown", "hh": "Blonde"},
			InheritancePattern: "autosomal_dominant",
			Category:           "physical",
			Tags:               []string{"classroom", "visible"},
		},
		{
			Key:                "earlobe_attachment",
			Name:               "Earlobe Attachment",
			Description:        "Free earlobes (**F**) are modeled as dominant over attached earlobes.",
			Alleles:            []string{"F", "f"},
			PhenotypeMap:       map[string]string{"FF": "Free", "Ff": "Free", "ff": "Attached"},
			InheritancePattern: "autosomal_dominant",
			Category:           "physical",
			Tags:               []string{"classroom"},
		},
	}
}
