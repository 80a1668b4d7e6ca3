package review

import (
	"context"

	"mockview/internal/interview"
)

// Store keeps ingested company interview reviews and serves random samples
// of them as prompt context.
type Store interface {
	interview.ReviewSampler
	ListReviews(ctx context.Context, companyName string, field interview.FieldCategory) ([]interview.Review, error)
	AddReview(ctx context.Context, c interview.Company, field interview.FieldCategory, r interview.Review) error
}
