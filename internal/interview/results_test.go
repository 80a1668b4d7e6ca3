package interview_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"mockview/internal/interview"
)

func TestResultsRequireEvaluation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sessionID := f.runFullInterview(t)

	_, err := f.svc.Results(ctx, sessionID)
	require.ErrorIs(t, err, interview.ErrEvaluationNotFound)

	f.gen.push(evaluationJSON)
	_, err = f.svc.Evaluate(ctx, sessionID)
	require.NoError(t, err)

	result, err := f.svc.Results(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, result.Records, 3)
	require.Equal(t, 4, result.Evaluation.TotalScore)
	require.Equal(t, interview.StatusCompleted, result.Session.Status)
}

func TestTimelineTracksProgress(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	result := f.start(t)

	session, records, err := f.svc.Timeline(ctx, result.SessionID)
	require.NoError(t, err)
	require.Equal(t, interview.StatusInProgress, session.Status)
	require.Len(t, records, 3)
	require.False(t, records[0].Answered)

	f.gen.push("NEXT_QUESTION")
	_, err = f.svc.AdvanceSession(ctx, result.SessionID, "m1", "a1", "")
	require.NoError(t, err)

	_, records, err = f.svc.Timeline(ctx, result.SessionID)
	require.NoError(t, err)
	require.True(t, records[0].Answered)
}
