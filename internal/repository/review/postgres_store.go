package review

import (
	"context"
	"database/sql"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"

	"mockview/internal/interview"
)

// PostgresStore queries the ent-managed company_reviews table directly;
// random sampling is pushed down to the database.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const reviewColumns = `cr.difficulty, cr.questions_text, cr.summary_text`

func (s *PostgresStore) ListReviews(ctx context.Context, companyName string, field interview.FieldCategory) ([]interview.Review, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT `+reviewColumns+`
FROM company_reviews cr
JOIN companies c ON c.id = cr.company_id
WHERE c.name = $1 AND cr.field = $2`,
		strings.TrimSpace(companyName), string(field))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

func (s *PostgresStore) SampleReviews(ctx context.Context, companyName string, field interview.FieldCategory, limit int) ([]interview.Review, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT `+reviewColumns+`
FROM company_reviews cr
JOIN companies c ON c.id = cr.company_id
WHERE c.name = $1 AND cr.field = $2
ORDER BY RANDOM()
LIMIT $3`,
		strings.TrimSpace(companyName), string(field), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

func (s *PostgresStore) AddReview(ctx context.Context, c interview.Company, field interview.FieldCategory, r interview.Review) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO company_reviews (company_id, field, difficulty, questions_text, summary_text, created_at)
VALUES ($1, $2, $3, $4, $5, NOW())`,
		c.ID, string(field), r.Difficulty, r.Questions, r.Summary)
	return err
}

func scanReviews(rows *sql.Rows) ([]interview.Review, error) {
	var out []interview.Review
	for rows.Next() {
		var r interview.Review
		if err := rows.Scan(&r.Difficulty, &r.Questions, &r.Summary); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
