package session

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"mockview/internal/interview"
)

// MemoryStore implements interview.Store in memory. Used when no database
// is configured and by tests. It enforces the same uniqueness constraints
// as the Postgres schema.
type MemoryStore struct {
	mu          sync.RWMutex
	sessions    map[string]*interview.Session
	records     map[string][]*interview.QARecord
	evaluations map[string]*interview.Evaluation
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions:    make(map[string]*interview.Session),
		records:     make(map[string][]*interview.QARecord),
		evaluations: make(map[string]*interview.Evaluation),
	}
}

func (s *MemoryStore) CreateSession(_ context.Context, sess *interview.Session) error {
	if strings.TrimSpace(sess.ID) == "" {
		return fmt.Errorf("session id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sess.ID]; ok {
		return fmt.Errorf("session %s already exists", sess.ID)
	}
	cp := *sess
	s.sessions[sess.ID] = &cp
	return nil
}

func (s *MemoryStore) GetSession(_ context.Context, id string) (*interview.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", interview.ErrSessionNotFound, id)
	}
	cp := *sess
	return &cp, nil
}

func (s *MemoryStore) CompleteSession(_ context.Context, sess *interview.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.sessions[sess.ID]
	if !ok {
		return fmt.Errorf("%w: %s", interview.ErrSessionNotFound, sess.ID)
	}
	stored.Status = sess.Status
	stored.CompletedAt = sess.CompletedAt
	return nil
}

func (s *MemoryStore) ListSessionsByMember(_ context.Context, memberID string) ([]*interview.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*interview.Session
	for _, sess := range s.sessions {
		if sess.MemberID == memberID {
			cp := *sess
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	return out, nil
}

func (s *MemoryStore) CreateRecord(_ context.Context, r *interview.QARecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[r.SessionID]; !ok {
		return fmt.Errorf("%w: %s", interview.ErrSessionNotFound, r.SessionID)
	}
	for _, existing := range s.records[r.SessionID] {
		if existing.MainOrder == r.MainOrder && existing.FollowUpOrder == r.FollowUpOrder {
			return fmt.Errorf("duplicate record (%d,%d) for session %s", r.MainOrder, r.FollowUpOrder, r.SessionID)
		}
	}
	cp := *r
	s.records[r.SessionID] = append(s.records[r.SessionID], &cp)
	return nil
}

func (s *MemoryStore) ListRecords(_ context.Context, sessionID string) ([]*interview.QARecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := s.records[sessionID]
	out := make([]*interview.QARecord, 0, len(records))
	for _, r := range records {
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MainOrder != out[j].MainOrder {
			return out[i].MainOrder < out[j].MainOrder
		}
		return out[i].FollowUpOrder < out[j].FollowUpOrder
	})
	return out, nil
}

func (s *MemoryStore) AnswerRecord(_ context.Context, r *interview.QARecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, stored := range s.records[r.SessionID] {
		if stored.MainOrder == r.MainOrder && stored.FollowUpOrder == r.FollowUpOrder {
			if stored.Answered {
				return fmt.Errorf("record (%d,%d) of session %s already answered", r.MainOrder, r.FollowUpOrder, r.SessionID)
			}
			stored.Answer = r.Answer
			stored.AudioRef = r.AudioRef
			stored.Answered = true
			return nil
		}
	}
	return fmt.Errorf("%w: record (%d,%d) missing", interview.ErrInconsistent, r.MainOrder, r.FollowUpOrder)
}

func (s *MemoryStore) UnanswerRecord(_ context.Context, r *interview.QARecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, stored := range s.records[r.SessionID] {
		if stored.MainOrder == r.MainOrder && stored.FollowUpOrder == r.FollowUpOrder {
			stored.Answer = ""
			stored.AudioRef = ""
			stored.Answered = false
			return nil
		}
	}
	return fmt.Errorf("%w: record (%d,%d) missing", interview.ErrInconsistent, r.MainOrder, r.FollowUpOrder)
}

func (s *MemoryStore) DeleteSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", interview.ErrSessionNotFound, id)
	}
	delete(s.sessions, id)
	delete(s.records, id)
	delete(s.evaluations, id)
	return nil
}

func (s *MemoryStore) GetEvaluation(_ context.Context, sessionID string) (*interview.Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.evaluations[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: session %s", interview.ErrEvaluationNotFound, sessionID)
	}
	cp := *e
	return &cp, nil
}

func (s *MemoryStore) SaveEvaluation(_ context.Context, e *interview.Evaluation) (*interview.Evaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.evaluations[e.SessionID]; ok {
		cp := *existing
		return &cp, nil
	}
	cp := *e
	s.evaluations[e.SessionID] = &cp
	out := cp
	return &out, nil
}
