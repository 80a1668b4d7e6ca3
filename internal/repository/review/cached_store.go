package review

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"mockview/internal/interview"
)

const defaultCacheEntries = 256

// CachedStore keeps full review lists per (company, field) in an LRU cache
// and draws each sample in memory, so repeated session starts against the
// same company do not re-query the database.
type CachedStore struct {
	origin Store
	cache  *lru.Cache[string, []interview.Review]
}

func NewCachedStore(origin Store) (*CachedStore, error) {
	cache, err := lru.New[string, []interview.Review](defaultCacheEntries)
	if err != nil {
		return nil, err
	}
	return &CachedStore{origin: origin, cache: cache}, nil
}

func (s *CachedStore) ListReviews(ctx context.Context, companyName string, field interview.FieldCategory) ([]interview.Review, error) {
	k := key(companyName, field)
	if cached, ok := s.cache.Get(k); ok {
		return append([]interview.Review(nil), cached...), nil
	}
	all, err := s.origin.ListReviews(ctx, companyName, field)
	if err != nil {
		return nil, err
	}
	s.cache.Add(k, all)
	return append([]interview.Review(nil), all...), nil
}

func (s *CachedStore) SampleReviews(ctx context.Context, companyName string, field interview.FieldCategory, limit int) ([]interview.Review, error) {
	all, err := s.ListReviews(ctx, companyName, field)
	if err != nil {
		return nil, err
	}
	return sample(all, limit), nil
}

// AddReview writes through and invalidates the cached list.
func (s *CachedStore) AddReview(ctx context.Context, c interview.Company, field interview.FieldCategory, r interview.Review) error {
	if err := s.origin.AddReview(ctx, c, field, r); err != nil {
		return err
	}
	s.cache.Remove(key(c.Name, field))
	return nil
}
