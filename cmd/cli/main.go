package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"gomendel/adapters/excel"
	"gomendel/app"
	"gomendel/domain/genetics"
	"gomendel/domain/trait"
	"gomendel/models"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gomendel-cli",
		Short: "Gomendel CLI for previewing Mendelian crosses and checking trait catalogs",
	}

	rootCmd.AddCommand(
		newPreviewCmd(),
		newGenotypesCmd(),
		newCheckCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newPreviewCmd() *cobra.Command {
	var alleles string
	var phenotypes string
	var pattern string
	var fractions bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "preview [parent1] [parent2]",
		Short: "Compute the live preview for a single cross",
		Long: `Compute gametes, Punnett square, ratios, and explanation steps for one cross.

The trait is described inline: --alleles lists the symbols in dominance
order and --phenotypes maps each genotype to a label. Leaving both empty
is treated as a draft trait and produces an empty preview.

Example: gomendel-cli preview Bb bb --alleles "B,b" --phenotypes "BB=Brown;Bb=Brown;bb=Blue"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			phenotypeMap, err := parsePhenotypes(phenotypes)
			if err != nil {
				return err
			}

			req := models.PreviewRequest{
				Trait: models.PreviewTrait{
					Alleles:            splitList(alleles),
					PhenotypeMap:       phenotypeMap,
					InheritancePattern: pattern,
				},
				Parent1: args[0],
				Parent2: args[1],
			}
			if fractions {
				f := false
				req.AsPercentages = &f
			}

			return runPreview(cmd.Context(), req, asJSON)
		},
	}

	cmd.Flags().StringVar(&alleles, "alleles", "", "Comma separated allele symbols in dominance order")
	cmd.Flags().StringVar(&phenotypes, "phenotypes", "", "Semicolon separated genotype=phenotype pairs")
	cmd.Flags().StringVar(&pattern, "pattern", "", "Inheritance pattern label shown in the explanation")
	cmd.Flags().BoolVar(&fractions, "fractions", false, "Report probabilities as fractions instead of percentages")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw preview result as JSON")

	return cmd
}

func newGenotypesCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "genotypes [trait-keys...]",
		Short: "List the possible genotypes for catalog traits",
		Long: `List every canonical genotype a trait's alleles can form.

Without arguments all known traits are listed. Built-in traits are always
available; --catalog merges a workbook or CSV on top of them.

Example: gomendel-cli genotypes eye_color --catalog traits.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenotypes(cmd.Context(), catalogPath, args)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file merged over the built-in traits")

	return cmd
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [catalog-file]",
		Short: "Validate a trait catalog file without loading it anywhere",
		Long: `Parse a catalog workbook or CSV and run full trait validation on every row.

Exits non-zero when any row fails to parse or any trait is incomplete, so
it can gate catalog uploads in CI.

Example: gomendel-cli check traits.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), args[0])
		},
	}

	return cmd
}

func runPreview(ctx context.Context, req models.PreviewRequest, asJSON bool) error {
	service := app.NewPreviewService(nil, nil)
	result := service.Preview(ctx, req)

	if asJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(data))
		if len(result.Errors) > 0 {
			return fmt.Errorf("preview reported %d validation errors", len(result.Errors))
		}
		return nil
	}

	if len(result.Errors) > 0 {
		fmt.Printf("❌ VALIDATION ERRORS\n")
		for i, msg := range result.Errors {
			fmt.Printf("%d. %s\n", i+1, msg)
		}
		return fmt.Errorf("preview reported %d validation errors", len(result.Errors))
	}

	if len(result.Steps) == 0 {
		fmt.Println("Draft trait: nothing to compute yet.")
		return nil
	}

	percent := req.AsPercentagesValue()

	fmt.Printf("=== GAMETES ===\n")
	fmt.Printf("Parent 1 (%s): %s\n", req.Parent1, formatGametes(result.Gametes.P1, percent))
	fmt.Printf("Parent 2 (%s): %s\n", req.Parent2, formatGametes(result.Gametes.P2, percent))

	fmt.Printf("\n=== PUNNETT SQUARE ===\n")
	for _, row := range result.Punnett {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cell.Genotype
		}
		fmt.Println(strings.Join(cells, "  "))
	}

	fmt.Printf("\n=== GENOTYPE RATIOS ===\n")
	printDistribution(result.GenotypeDist, percent)

	fmt.Printf("\n=== PHENOTYPE RATIOS ===\n")
	printDistribution(result.PhenotypeDist, percent)

	fmt.Printf("\n=== STEPS ===\n")
	for i, step := range result.Steps {
		fmt.Printf("%d. %s\n", i+1, step)
	}

	return nil
}

func runGenotypes(ctx context.Context, catalogPath string, keys []string) error {
	traits := trait.Builtins()
	if catalogPath != "" {
		loaded, rowErrs, err := excel.NewCatalogReader().Read(ctx, catalogPath)
		if err != nil {
			return fmt.Errorf("failed to read catalog: %w", err)
		}
		for _, msg := range rowErrs {
			fmt.Printf("⚠️  %s\n", msg)
		}
		traits = append(traits, loaded...)
	}

	// Later entries win, so catalog traits override builtins per key.
	byKey := make(map[string]trait.Trait, len(traits))
	for _, t := range traits {
		byKey[t.Key] = t
	}

	if len(keys) == 0 {
		keys = make([]string, 0, len(byKey))
		for key := range byKey {
			keys = append(keys, key)
		}
		sort.Strings(keys)
	}

	var missing []string
	for _, key := range keys {
		t, ok := byKey[key]
		if !ok {
			missing = append(missing, key)
			continue
		}
		fmt.Printf("%s: %s\n", key, strings.Join(t.AllGenotypes(), ", "))
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		fmt.Printf("\n⚠️  Unknown traits: %s\n", strings.Join(missing, ", "))
		if len(missing) == len(keys) {
			return fmt.Errorf("no matching traits found")
		}
	}

	return nil
}

func runCheck(ctx context.Context, path string) error {
	fmt.Printf("🔬 Checking trait catalog %s...\n", path)

	traits, rowErrs, err := excel.NewCatalogReader().Read(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}

	problems := append([]string{}, rowErrs...)
	valid := 0
	for _, t := range traits {
		if issues := t.Validate(); len(issues) > 0 {
			problems = append(problems, fmt.Sprintf("trait '%s': %s", t.Key, strings.Join(issues, "; ")))
			continue
		}
		valid++
	}

	fmt.Printf("\n=== CATALOG CHECK RESULTS ===\n")
	fmt.Printf("Rows parsed: %d\n", len(traits)+len(rowErrs))
	fmt.Printf("Valid traits: %d\n", valid)
	fmt.Printf("Problems: %d\n", len(problems))

	if len(problems) > 0 {
		fmt.Printf("\n❌ PROBLEMS:\n")
		for i, msg := range problems {
			fmt.Printf("%d. %s\n", i+1, msg)
		}
		return fmt.Errorf("catalog has %d problems", len(problems))
	}

	fmt.Printf("\n✅ CATALOG OK\n")
	return nil
}

// formatGametes always displays gametes as percentages; percent reports
// whether the result probabilities are already on that scale.
func formatGametes(gametes []genetics.Gamete, percent bool) string {
	parts := make([]string, len(gametes))
	for i, g := range gametes {
		p := g.Probability
		if !percent {
			p *= 100
		}
		parts[i] = fmt.Sprintf("%s (%.0f%%)", g.Allele, p)
	}
	return strings.Join(parts, ", ")
}

func printDistribution(dist genetics.Distribution, percent bool) {
	for _, key := range dist.Keys() {
		value, _ := dist.Get(key)
		if percent {
			fmt.Printf("%-16s %6.2f%%\n", key, value)
		} else {
			fmt.Printf("%-16s %.4f\n", key, value)
		}
	}
}

func splitList(raw string) []string {
	var out []string
	for _, piece := range strings.Split(raw, ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

func parsePhenotypes(raw string) (map[string]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	out := make(map[string]string)
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
			return nil, fmt.Errorf("malformed phenotype entry '%s' (expected genotype=phenotype)", entry)
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}

	return out, nil
}
