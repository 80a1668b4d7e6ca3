package interview

import (
	"context"
	"fmt"
)

// SessionResult is the full outcome of an evaluated session: the scored
// evaluation plus the ordered question/answer timeline.
type SessionResult struct {
	Session    *Session
	Records    []*QARecord
	Evaluation *Evaluation
}

// Results returns the evaluation together with the QA timeline. The session
// must already have been evaluated.
func (s *Service) Results(ctx context.Context, sessionID string) (*SessionResult, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	evaluation, err := s.store.GetEvaluation(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	records, err := s.store.ListRecords(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: session %s", ErrNoData, sessionID)
	}
	return &SessionResult{Session: session, Records: records, Evaluation: evaluation}, nil
}

// Timeline returns the session with its ordered question records. Used by
// the live watch endpoint.
func (s *Service) Timeline(ctx context.Context, sessionID string) (*Session, []*QARecord, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	records, err := s.store.ListRecords(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	return session, records, nil
}
