package interview

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// Evaluate produces the scored assessment of a session exactly once. A
// stored evaluation is always returned as-is without another generator
// call; nothing is persisted when parsing fails.
func (s *Service) Evaluate(ctx context.Context, sessionID string) (*Evaluation, error) {
	release := s.locks.acquire(sessionID)
	defer release()

	if _, err := s.store.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	records, err := s.store.ListRecords(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: session %s", ErrNoData, sessionID)
	}

	existing, err := s.store.GetEvaluation(ctx, sessionID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrEvaluationNotFound) {
		return nil, err
	}

	raw, err := s.gen.Generate(ctx, evaluationPrompt(flattenTranscript(records)))
	if err != nil {
		return nil, err
	}
	evaluation, err := parseEvaluation(raw)
	if err != nil {
		return nil, err
	}
	evaluation.SessionID = sessionID

	stored, err := s.store.SaveEvaluation(ctx, evaluation)
	if err != nil {
		return nil, fmt.Errorf("save evaluation: %w", err)
	}
	log.Printf("interview: session %s evaluated, total score %d", sessionID, stored.TotalScore)
	return stored, nil
}
