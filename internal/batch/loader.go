package batch

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"mockview/internal/interview"
	companyrepo "mockview/internal/repository/company"
	reviewrepo "mockview/internal/repository/review"
)

// CSV column headers of the review export format.
const (
	colField      = "Job Field"
	colDifficulty = "Interview Difficulty"
	colSummary    = "Summary/Review"
	colQuestions  = "Interview Questions"
)

// Loader imports company review CSV exports. The company name is taken from
// the file name (everything before the first underscore), one company per
// file.
type Loader struct {
	companies companyrepo.Store
	reviews   reviewrepo.Store
}

func NewLoader(companies companyrepo.Store, reviews reviewrepo.Store) *Loader {
	return &Loader{companies: companies, reviews: reviews}
}

// LoadDirectory processes every .csv file in dir. A failing file is logged
// and skipped; the others still load.
func (l *Loader) LoadDirectory(ctx context.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		log.Printf("loading %s", entry.Name())
		if err := l.LoadFile(ctx, path); err != nil {
			log.Printf("load %s failed: %v", entry.Name(), err)
		}
	}
	return nil
}

// LoadFile imports a single CSV file. Rows whose job field does not match a
// known category are skipped.
func (l *Loader) LoadFile(ctx context.Context, path string) error {
	companyName := companyNameFromFile(path)
	if companyName == "" {
		return fmt.Errorf("cannot derive company name from %s", filepath.Base(path))
	}
	company, err := l.companies.EnsureCompany(ctx, companyName)
	if err != nil {
		return fmt.Errorf("ensure company %s: %w", companyName, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	loaded, skipped, err := l.loadRows(ctx, company, f)
	if err != nil {
		return err
	}
	log.Printf("loaded %s: %d reviews (%d rows skipped)", filepath.Base(path), loaded, skipped)
	return nil
}

func (l *Loader) loadRows(ctx context.Context, company interview.Company, r io.Reader) (loaded, skipped int, err error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, 0, fmt.Errorf("read header: %w", err)
	}
	cols := indexColumns(header)
	for _, required := range []string{colField, colDifficulty, colSummary, colQuestions} {
		if _, ok := cols[required]; !ok {
			return 0, 0, fmt.Errorf("missing column %q", required)
		}
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return loaded, skipped, fmt.Errorf("read row: %w", err)
		}
		field, err := interview.ParseFieldCategory(cell(row, cols[colField]))
		if err != nil {
			skipped++
			continue
		}
		review := interview.Review{
			Difficulty: cell(row, cols[colDifficulty]),
			Questions:  cell(row, cols[colQuestions]),
			Summary:    cell(row, cols[colSummary]),
		}
		if err := l.reviews.AddReview(ctx, company, field, review); err != nil {
			return loaded, skipped, fmt.Errorf("store review: %w", err)
		}
		loaded++
	}
	return loaded, skipped, nil
}

func companyNameFromFile(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if i := strings.Index(name, "_"); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
