package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"mockview/internal/interview"
)

// countingStore wraps a MemoryStore and counts origin list queries.
type countingStore struct {
	*MemoryStore
	listCalls int
}

func (s *countingStore) ListReviews(ctx context.Context, companyName string, field interview.FieldCategory) ([]interview.Review, error) {
	s.listCalls++
	return s.MemoryStore.ListReviews(ctx, companyName, field)
}

func newCachedFixture(t *testing.T) (*CachedStore, *countingStore) {
	t.Helper()
	origin := &countingStore{MemoryStore: NewMemoryStore()}
	cached, err := NewCachedStore(origin)
	require.NoError(t, err)
	return cached, origin
}

func TestCachedStoreHitsOriginOnce(t *testing.T) {
	cached, origin := newCachedFixture(t)
	ctx := context.Background()
	company := interview.Company{ID: "c1", Name: "Acme"}

	require.NoError(t, origin.AddReview(ctx, company, interview.FieldDevelopment, interview.Review{Summary: "s1"}))

	for i := 0; i < 3; i++ {
		reviews, err := cached.SampleReviews(ctx, "Acme", interview.FieldDevelopment, 10)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
	}
	require.Equal(t, 1, origin.listCalls)
}

func TestCachedStoreInvalidatesOnAdd(t *testing.T) {
	cached, origin := newCachedFixture(t)
	ctx := context.Background()
	company := interview.Company{ID: "c1", Name: "Acme"}

	_, err := cached.ListReviews(ctx, "Acme", interview.FieldDevelopment)
	require.NoError(t, err)
	require.Equal(t, 1, origin.listCalls)

	require.NoError(t, cached.AddReview(ctx, company, interview.FieldDevelopment, interview.Review{Summary: "s1"}))

	reviews, err := cached.ListReviews(ctx, "Acme", interview.FieldDevelopment)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.Equal(t, 2, origin.listCalls)
}

func TestSampleBoundedByLimit(t *testing.T) {
	all := make([]interview.Review, 30)
	sampled := sample(all, 20)
	require.Len(t, sampled, 20)

	sampled = sample(all[:5], 20)
	require.Len(t, sampled, 5)
}
