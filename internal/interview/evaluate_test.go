package interview_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mockview/internal/interview"
)

const evaluationJSON = `{
	"totalScore": 4,
	"problemSolvingScore": 4,
	"technicalExpertiseScore": 5,
	"collaborationCommunicationScore": 4,
	"growthPotentialScore": 3,
	"summary": "solid candidate",
	"strengths": "clear explanations",
	"improvements": "more depth on databases"
}`

func (f *fixture) runFullInterview(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	result := f.start(t)
	f.gen.push("NEXT_QUESTION")
	_, err := f.svc.AdvanceSession(ctx, result.SessionID, "m1", "a1", "")
	require.NoError(t, err)
	f.gen.push("NEXT_QUESTION")
	_, err = f.svc.AdvanceSession(ctx, result.SessionID, "m1", "a2", "")
	require.NoError(t, err)
	f.gen.push("NEXT_QUESTION", "closing remark")
	_, err = f.svc.AdvanceSession(ctx, result.SessionID, "m1", "a3", "")
	require.NoError(t, err)
	return result.SessionID
}

func TestEvaluateStoresOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sessionID := f.runFullInterview(t)

	f.gen.push(evaluationJSON)
	first, err := f.svc.Evaluate(ctx, sessionID)
	require.NoError(t, err)
	require.Equal(t, sessionID, first.SessionID)
	require.Equal(t, 4, first.TotalScore)

	// The second call returns the stored row without another generator call.
	before := f.gen.callCount()
	second, err := f.svc.Evaluate(ctx, sessionID)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, before, f.gen.callCount())
}

func TestEvaluateUnknownSession(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Evaluate(context.Background(), "no-such-session")
	require.ErrorIs(t, err, interview.ErrSessionNotFound)
}

func TestEvaluateNoRecords(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// A session with no seeded questions cannot be scored.
	session := interview.NewSession("m1", "c1", interview.FieldDevelopment, time.Now())
	require.NoError(t, f.store.CreateSession(ctx, session))

	_, err := f.svc.Evaluate(ctx, session.ID)
	require.ErrorIs(t, err, interview.ErrNoData)
}

func TestEvaluateBadPayloadPersistsNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sessionID := f.runFullInterview(t)

	f.gen.push("this is not json")
	_, err := f.svc.Evaluate(ctx, sessionID)
	require.ErrorIs(t, err, interview.ErrBadGeneration)

	// A retry with well-formed output still succeeds.
	f.gen.push(evaluationJSON)
	evaluation, err := f.svc.Evaluate(ctx, sessionID)
	require.NoError(t, err)
	require.Equal(t, 4, evaluation.TotalScore)
}

func TestEvaluateWorksMidInterview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	result := f.start(t)

	f.gen.push("NEXT_QUESTION")
	_, err := f.svc.AdvanceSession(ctx, result.SessionID, "m1", "a1", "")
	require.NoError(t, err)

	f.gen.push(evaluationJSON)
	evaluation, err := f.svc.Evaluate(ctx, result.SessionID)
	require.NoError(t, err)
	require.Equal(t, 4, evaluation.TotalScore)
}
