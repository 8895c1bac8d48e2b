package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gomendel/adapters/excel"
	"gomendel/domain/genetics"
	"gomendel/domain/trait"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gomendel-dev",
		Short: "Gomendel development tools",
	}

	rootCmd.AddCommand(
		newSeedCmd(),
		newSmokeTestCmd(),
		newDeterminismTestCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed [output-file]",
		Short: "Generate a demo trait catalog file from the built-in traits",
		Long: `Write the built-in traits to a catalog workbook or CSV.

The output format follows the file extension (.csv for CSV, anything else
for an xlsx workbook). The file round-trips through the catalog importer.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "./traits_seed.xlsx"
			if len(args) == 1 {
				path = args[0]
			}
			return generateSeedCatalog(path)
		},
	}
	return cmd
}

func newSmokeTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Run smoke tests against the preview engine and catalog importer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSmokeTests(cmd.Context())
		},
	}
	return cmd
}

func newDeterminismTestCmd() *cobra.Command {
	var runs int

	cmd := &cobra.Command{
		Use:   "determinism",
		Short: "Verify that repeated previews produce identical results",
		RunE: func(cmd *cobra.Command, args []string) error {
			return testDeterminism(runs)
		},
	}

	cmd.Flags().IntVar(&runs, "runs", 5, "Number of repeated previews per trait")

	return cmd
}

func generateSeedCatalog(path string) error {
	fmt.Println("Generating seed catalog...")

	rows := [][]interface{}{
		{"key", "name", "description", "alleles", "phenotype_map", "inheritance_pattern", "category", "tags"},
	}
	for _, t := range trait.Builtins() {
		rows = append(rows, []interface{}{
			t.Key,
			t.Name,
			t.Description,
			strings.Join(t.Alleles, ","),
			joinPhenotypes(t),
			t.InheritancePattern,
			t.Category,
			strings.Join(t.Tags, ","),
		})
		fmt.Printf("Added trait: %s\n", t.Key)
	}

	var err error
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		err = writeCSV(path, rows)
	} else {
		err = writeWorkbook(path, rows)
	}
	if err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	fmt.Printf("Seed catalog written to %s\n", path)
	return nil
}

func writeWorkbook(path string, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Traits"); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow("Traits", cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeCSV(path string, rows [][]interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	records := make([][]string, len(rows))
	for i, row := range rows {
		record := make([]string, len(row))
		for j, value := range row {
			record[j] = fmt.Sprint(value)
		}
		records[i] = record
	}

	return csv.NewWriter(file).WriteAll(records)
}

// joinPhenotypes serializes a phenotype map in canonical genotype order so
// repeated seed runs produce identical files.
func joinPhenotypes(t trait.Trait) string {
	entries := make([]string, 0, len(t.PhenotypeMap))
	for _, genotype := range t.AllGenotypes() {
		if phenotype, ok := t.PhenotypeMap[genotype]; ok {
			entries = append(entries, genotype+"="+phenotype)
		}
	}
	return strings.Join(entries, ";")
}

func runSmokeTests(ctx context.Context) error {
	fmt.Println("Running smoke tests...")

	tests := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"builtin_catalog_valid", func(context.Context) error {
			for _, t := range trait.Builtins() {
				if problems := t.Validate(); len(problems) > 0 {
					return fmt.Errorf("trait %s: %s", t.Key, strings.Join(problems, "; "))
				}
			}
			return nil
		}},
		{"dominant_cross_preview", func(context.Context) error {
			def := trait.Builtins()[0].Definition()
			result := genetics.Preview(def, "Bb", "Bb", true)
			if len(result.Errors) > 0 {
				return fmt.Errorf("unexpected errors: %v", result.Errors)
			}
			brown, ok := result.PhenotypeDist.Get("Brown")
			if !ok || math.Abs(brown-75.0) > 1e-9 {
				return fmt.Errorf("Brown = %.4f, want 75.0", brown)
			}
			if len(result.Steps) != 6 {
				return fmt.Errorf("got %d steps, want 6", len(result.Steps))
			}
			return nil
		}},
		{"validation_errors_collected", func(context.Context) error {
			def := trait.Builtins()[0].Definition()
			result := genetics.Preview(def, "Bx", "bb", true)
			if len(result.Errors) == 0 {
				return fmt.Errorf("expected a validation error for unknown allele")
			}
			return nil
		}},
		{"catalog_roundtrip", func(ctx context.Context) error {
			dir, err := os.MkdirTemp("", "gomendel-dev-*")
			if err != nil {
				return err
			}
			defer os.RemoveAll(dir)

			path := filepath.Join(dir, "smoke_catalog.xlsx")
			if err := generateSeedCatalog(path); err != nil {
				return err
			}

			traits, rowErrs, err := excel.NewCatalogReader().Read(ctx, path)
			if err != nil {
				return err
			}
			if len(rowErrs) > 0 {
				return fmt.Errorf("row errors: %v", rowErrs)
			}
			if len(traits) != len(trait.Builtins()) {
				return fmt.Errorf("got %d traits back, want %d", len(traits), len(trait.Builtins()))
			}
			return nil
		}},
	}

	passed := 0
	for _, test := range tests {
		fmt.Printf("  Running %s...", test.name)
		if err := test.fn(ctx); err != nil {
			fmt.Printf(" FAILED: %v\n", err)
		} else {
			fmt.Println(" PASSED")
			passed++
		}
	}

	fmt.Printf("\nSmoke tests: %d/%d passed\n", passed, len(tests))
	if passed < len(tests) {
		return fmt.Errorf("some smoke tests failed")
	}

	return nil
}

func testDeterminism(runs int) error {
	fmt.Printf("Testing determinism over %d runs per trait...\n", runs)

	for _, t := range trait.Builtins() {
		def := t.Definition()
		parent := t.Alleles[0] + t.Alleles[1]

		var baseline []byte
		for run := 0; run < runs; run++ {
			result := genetics.Preview(def, parent, parent, true)
			data, err := json.Marshal(result)
			if err != nil {
				return fmt.Errorf("failed to encode result for %s: %w", t.Key, err)
			}
			if baseline == nil {
				baseline = data
				continue
			}
			if string(data) != string(baseline) {
				return fmt.Errorf("determinism test failed: run %d of %s differs", run+1, t.Key)
			}
		}
		fmt.Printf("  %s: %d identical runs\n", t.Key, runs)
	}

	fmt.Println("✓ Determinism test passed - results identical")
	return nil
}
