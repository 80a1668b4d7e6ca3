package interview

import (
	"context"
	"strings"
)

// shouldFollowUp asks the generator to judge the latest question/answer
// pair. Only output containing the follow-up sentinel triggers a follow-up;
// anything else means "move on".
func (s *Service) shouldFollowUp(ctx context.Context, history []string) (bool, error) {
	if len(history) < 2 {
		return false, nil
	}
	verdict, err := s.gen.Generate(ctx, answerJudgementPrompt(history))
	if err != nil {
		return false, err
	}
	return strings.Contains(verdict, verdictFollowUp), nil
}
