package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"gomendel/domain/trait"
	apperrors "gomendel/internal/errors"
)

// catalogSheet is the preferred sheet name; the first sheet is used when a
// workbook does not have it.
const catalogSheet = "Traits"

// CatalogReaderImpl reads trait catalogs from Excel and CSV files. Each row
// is one trait; list cells use commas (alleles, tags) and the phenotype map
// uses "BB=Brown;Bb=Brown;bb=Blue".
type CatalogReaderImpl struct{}

// NewCatalogReader creates a catalog reader for Excel and CSV files
func NewCatalogReader() *CatalogReaderImpl {
	return &CatalogReaderImpl{}
}

// Read parses the catalog and returns the valid traits plus one message
// per rejected row. A non-nil error means the file itself was unreadable.
func (r *CatalogReaderImpl) Read(_ context.Context, path string) ([]trait.Trait, []string, error) {
	log.Printf("[CatalogReader] Reading trait catalog: %s", path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil, apperrors.CatalogError(fmt.Sprintf("catalog file not found: %s", path), err)
	}

	var rows [][]string
	var err error
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		rows, err = readCSVRows(path)
	} else {
		rows, err = readExcelRows(path)
	}
	if err != nil {
		return nil, nil, err
	}

	if len(rows) < 2 {
		return nil, nil, apperrors.CatalogError("catalog must have at least a header row and one data row", nil)
	}

	return r.parseRows(rows)
}

func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.CatalogError("failed to open Excel catalog", err)
	}
	defer f.Close()

	sheet := catalogSheet
	if idx, _ := f.GetSheetIndex(catalogSheet); idx < 0 {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.CatalogError(fmt.Sprintf("failed to read sheet %s", sheet), err)
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.CatalogError("failed to open CSV catalog", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, apperrors.CatalogError("failed to read CSV catalog", err)
	}
	return rows, nil
}

// parseRows converts raw string rows into traits. Rows that cannot be
// parsed become messages instead of failing the whole file.
func (r *CatalogReaderImpl) parseRows(rows [][]string) ([]trait.Trait, []string, error) {
	headers := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		headers[strings.ToLower(strings.TrimSpace(header))] = i
	}

	for _, required := range []string{"key", "name", "alleles", "phenotype_map"} {
		if _, ok := headers[required]; !ok {
			return nil, nil, apperrors.CatalogError(fmt.Sprintf("catalog is missing required column '%s'", required), nil)
		}
	}

	var traits []trait.Trait
	var rowErrs []string
	for i := 1; i < len(rows); i++ {
		if isBlankRow(rows[i]) {
			continue
		}
		t, err := parseTraitRow(headers, rows[i])
		if err != nil {
			rowErrs = append(rowErrs, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		traits = append(traits, t)
	}

	log.Printf("[CatalogReader] Parsed %d traits (%d rows rejected)", len(traits), len(rowErrs))
	return traits, rowErrs, nil
}

func parseTraitRow(headers map[string]int, row []string) (trait.Trait, error) {
	t := trait.Trait{
		Key:                cell(headers, row, "key"),
		Name:               cell(headers, row, "name"),
		Description:        cell(headers, row, "description"),
		InheritancePattern: cell(headers, row, "inheritance_pattern"),
		Category:           cell(headers, row, "category"),
	}

	if t.Key == "" {
		return trait.Trait{}, fmt.Errorf("missing trait key")
	}

	t.Alleles = splitList(cell(headers, row, "alleles"))
	if len(t.Alleles) == 0 {
		return trait.Trait{}, fmt.Errorf("trait '%s' has no alleles", t.Key)
	}

	phenotypes, err := parsePhenotypeMap(cell(headers, row, "phenotype_map"))
	if err != nil {
		return trait.Trait{}, fmt.Errorf("trait '%s': %v", t.Key, err)
	}
	t.PhenotypeMap = phenotypes

	if tags := splitList(cell(headers, row, "tags")); len(tags) > 0 {
		t.Tags = tags
	}
	return t, nil
}

func parsePhenotypeMap(raw string) (map[string]string, error) {
	phenotypes := make(map[string]string)
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed phenotype entry '%s'", entry)
		}
		genotype := strings.ReplaceAll(parts[0], " ", "")
		label := strings.TrimSpace(parts[1])
		if genotype == "" || label == "" {
			return nil, fmt.Errorf("malformed phenotype entry '%s'", entry)
		}
		phenotypes[genotype] = label
	}
	if len(phenotypes) == 0 {
		return nil, fmt.Errorf("empty phenotype map")
	}
	return phenotypes, nil
}

func cell(headers map[string]int, row []string, name string) string {
	idx, ok := headers[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
