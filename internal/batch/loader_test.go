package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"mockview/internal/interview"
	companyrepo "mockview/internal/repository/company"
	reviewrepo "mockview/internal/repository/review"
)

const sampleCSV = `Job Field,Job Level,Interview Difficulty,Summary/Review,Interview Questions
development,junior,medium,Mostly project questions,Tell me about your project
development,senior,hard,System design heavy,Design a rate limiter
marketing,junior,easy,Not a technical track,Why this company
`

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileDerivesCompanyFromFilename(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "Acme_reviews_2026.csv", sampleCSV)

	companies := companyrepo.NewMemoryStore()
	reviews := reviewrepo.NewMemoryStore()
	loader := NewLoader(companies, reviews)

	require.NoError(t, loader.LoadFile(context.Background(), path))

	company, err := companies.FindCompany(context.Background(), "Acme")
	require.NoError(t, err)
	require.Equal(t, "Acme", company.Name)

	list, err := reviews.ListReviews(context.Background(), "Acme", interview.FieldDevelopment)
	require.NoError(t, err)
	// The marketing row does not map to a known field category.
	require.Len(t, list, 2)
	require.Equal(t, "medium", list[0].Difficulty)
	require.Equal(t, "Tell me about your project", list[0].Questions)
	require.Equal(t, "Mostly project questions", list[0].Summary)
}

func TestLoadFileRejectsMissingColumns(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "Acme_reviews.csv", "Job Field,Interview Difficulty\ndevelopment,easy\n")

	loader := NewLoader(companyrepo.NewMemoryStore(), reviewrepo.NewMemoryStore())
	err := loader.LoadFile(context.Background(), path)
	require.ErrorContains(t, err, "missing column")
}

func TestLoadDirectorySkipsNonCSV(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "Acme_reviews.csv", sampleCSV)
	writeCSV(t, dir, "notes.txt", "ignore me")

	companies := companyrepo.NewMemoryStore()
	reviews := reviewrepo.NewMemoryStore()
	loader := NewLoader(companies, reviews)

	require.NoError(t, loader.LoadDirectory(context.Background(), dir))

	list, err := reviews.ListReviews(context.Background(), "Acme", interview.FieldDevelopment)
	require.NoError(t, err)
	require.Len(t, list, 2)
}
