package member

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"mockview/internal/interview"
)

type MemoryStore struct {
	mu   sync.RWMutex
	byID map[string]interview.Member
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]interview.Member)}
}

func (s *MemoryStore) FindMember(_ context.Context, id string) (interview.Member, error) {
	id = strings.TrimSpace(id)
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.byID[id]
	if !ok {
		return interview.Member{}, fmt.Errorf("%w: %s", interview.ErrMemberNotFound, id)
	}
	return m, nil
}

func (s *MemoryStore) CreateMember(_ context.Context, m interview.Member) error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("member id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[m.ID] = m
	return nil
}

func (s *MemoryStore) UpdateMember(_ context.Context, m interview.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[m.ID]; !ok {
		return fmt.Errorf("%w: %s", interview.ErrMemberNotFound, m.ID)
	}
	s.byID[m.ID] = m
	return nil
}
