package review

import (
	"context"
	"math/rand"
	"strings"
	"sync"

	"mockview/internal/interview"
)

type MemoryStore struct {
	mu    sync.RWMutex
	byKey map[string][]interview.Review
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byKey: make(map[string][]interview.Review)}
}

func key(companyName string, field interview.FieldCategory) string {
	return strings.TrimSpace(companyName) + "|" + string(field)
}

func (s *MemoryStore) ListReviews(_ context.Context, companyName string, field interview.FieldCategory) ([]interview.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]interview.Review(nil), s.byKey[key(companyName, field)]...), nil
}

func (s *MemoryStore) SampleReviews(ctx context.Context, companyName string, field interview.FieldCategory, limit int) ([]interview.Review, error) {
	all, err := s.ListReviews(ctx, companyName, field)
	if err != nil {
		return nil, err
	}
	return sample(all, limit), nil
}

func (s *MemoryStore) AddReview(_ context.Context, c interview.Company, field interview.FieldCategory, r interview.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(c.Name, field)
	s.byKey[k] = append(s.byKey[k], r)
	return nil
}

// sample shuffles a copy and truncates to limit.
func sample(all []interview.Review, limit int) []interview.Review {
	out := append([]interview.Review(nil), all...)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
