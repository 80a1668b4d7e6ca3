package interview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripFence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `["a"]`, `["a"]`},
		{"json fence", "```json\n[\"a\"]\n```", `["a"]`},
		{"bare fence", "```\n[\"a\"]\n```", `["a"]`},
		{"trailing only", "[\"a\"]\n```", `["a"]`},
		{"surrounding whitespace", "  \n```json\n[\"a\"]\n```\n ", `["a"]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, stripFence(tc.in))
		})
	}
}

func TestParseQuestionList(t *testing.T) {
	questions, err := parseQuestionList("```json\n[\"one\", \" two \", \"\"]\n```")
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two"}, questions)
}

func TestParseQuestionListRejectsGarbage(t *testing.T) {
	_, err := parseQuestionList("I think good questions would be...")
	require.ErrorIs(t, err, ErrBadGeneration)

	_, err = parseQuestionList(`["", "  "]`)
	require.ErrorIs(t, err, ErrBadGeneration)
}

func TestParseEvaluation(t *testing.T) {
	raw := "```json\n" + `{
		"totalScore": 4,
		"problemSolvingScore": 4,
		"technicalExpertiseScore": 5,
		"collaborationCommunicationScore": 4,
		"growthPotentialScore": 3,
		"summary": "solid candidate",
		"strengths": "clear explanations",
		"improvements": "more depth on databases"
	}` + "\n```"

	e, err := parseEvaluation(raw)
	require.NoError(t, err)
	require.Equal(t, 4, e.TotalScore)
	require.Equal(t, 5, e.TechnicalScore)
	require.Equal(t, 4, e.CollaborationScore)
	require.Equal(t, 4, e.ProblemSolvingScore)
	require.Equal(t, 3, e.GrowthScore)
	require.Equal(t, "solid candidate", e.Summary)
}

func TestParseEvaluationValidatesScores(t *testing.T) {
	_, err := parseEvaluation(`{
		"totalScore": 4,
		"problemSolvingScore": 0,
		"technicalExpertiseScore": 5,
		"collaborationCommunicationScore": 4,
		"growthPotentialScore": 3,
		"summary": "x"
	}`)
	require.ErrorIs(t, err, ErrBadGeneration)

	_, err = parseEvaluation(`{
		"totalScore": 4,
		"problemSolvingScore": 4,
		"technicalExpertiseScore": 5,
		"collaborationCommunicationScore": 4,
		"growthPotentialScore": 3,
		"summary": "   "
	}`)
	require.ErrorIs(t, err, ErrBadGeneration)
}
