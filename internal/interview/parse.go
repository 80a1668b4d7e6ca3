package interview

import (
	"encoding/json"
	"fmt"
	"strings"
)

// stripFence removes a markdown code-fence wrapper from generator output.
// Handled shapes: no fence at all, ```json fence, bare ``` fence, and a
// trailing fence with no opening one.
func stripFence(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}
	return strings.TrimSpace(s)
}

// parseQuestionList parses generator output as an ordered JSON array of
// question strings. Blank entries are dropped; an empty result is an error.
func parseQuestionList(raw string) ([]string, error) {
	clean := stripFence(raw)
	var items []string
	if err := json.Unmarshal([]byte(clean), &items); err != nil {
		return nil, fmt.Errorf("%w: question list: %v", ErrBadGeneration, err)
	}
	questions := make([]string, 0, len(items))
	for _, q := range items {
		if q = strings.TrimSpace(q); q != "" {
			questions = append(questions, q)
		}
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: question list is empty", ErrBadGeneration)
	}
	return questions, nil
}

type evaluationPayload struct {
	TotalScore                      int    `json:"totalScore"`
	TechnicalExpertiseScore         int    `json:"technicalExpertiseScore"`
	CollaborationCommunicationScore int    `json:"collaborationCommunicationScore"`
	ProblemSolvingScore             int    `json:"problemSolvingScore"`
	GrowthPotentialScore            int    `json:"growthPotentialScore"`
	Summary                         string `json:"summary"`
	Strengths                       string `json:"strengths"`
	Improvements                    string `json:"improvements"`
}

// parseEvaluation parses generator output as a scored evaluation object.
// Sub-scores must be within 1..5 and a summary must be present.
func parseEvaluation(raw string) (*Evaluation, error) {
	clean := stripFence(raw)
	var payload evaluationPayload
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return nil, fmt.Errorf("%w: evaluation object: %v", ErrBadGeneration, err)
	}
	for name, score := range map[string]int{
		"technicalExpertiseScore":         payload.TechnicalExpertiseScore,
		"collaborationCommunicationScore": payload.CollaborationCommunicationScore,
		"problemSolvingScore":             payload.ProblemSolvingScore,
		"growthPotentialScore":            payload.GrowthPotentialScore,
	} {
		if score < 1 || score > 5 {
			return nil, fmt.Errorf("%w: %s %d out of range", ErrBadGeneration, name, score)
		}
	}
	if strings.TrimSpace(payload.Summary) == "" {
		return nil, fmt.Errorf("%w: evaluation summary is empty", ErrBadGeneration)
	}
	return &Evaluation{
		TotalScore:          payload.TotalScore,
		TechnicalScore:      payload.TechnicalExpertiseScore,
		CollaborationScore:  payload.CollaborationCommunicationScore,
		ProblemSolvingScore: payload.ProblemSolvingScore,
		GrowthScore:         payload.GrowthPotentialScore,
		Summary:             payload.Summary,
		Strengths:           payload.Strengths,
		Improvements:        payload.Improvements,
	}, nil
}
