package company

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"mockview/internal/interview"
)

type MemoryStore struct {
	mu     sync.RWMutex
	byName map[string]interview.Company
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byName: make(map[string]interview.Company)}
}

func (s *MemoryStore) FindCompany(_ context.Context, name string) (interview.Company, error) {
	name = strings.TrimSpace(name)
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byName[name]
	if !ok {
		return interview.Company{}, fmt.Errorf("%w: %s", interview.ErrCompanyNotFound, name)
	}
	return c, nil
}

func (s *MemoryStore) EnsureCompany(_ context.Context, name string) (interview.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return interview.Company{}, fmt.Errorf("company name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.byName[name]; ok {
		return c, nil
	}
	c := interview.Company{ID: uuid.NewString(), Name: name}
	s.byName[name] = c
	return c, nil
}
