package interview_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"mockview/internal/interview"
)

func TestStatisticsCountsEvaluatedSessionsOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.runFullInterview(t)
	f.gen.push(evaluationJSON)
	_, err := f.svc.Evaluate(ctx, first)
	require.NoError(t, err)

	// A second session is started but never evaluated.
	f.start(t)

	stats, err := f.svc.Statistics(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, 1, stats.TotalInterviews)
	require.Equal(t, 4.0, stats.AverageScore)
	require.Equal(t, 4, stats.BestScore)
	require.Equal(t, 1, stats.InterviewsThisWeek)
}

func TestStatisticsUnknownMember(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Statistics(context.Background(), "nobody")
	require.ErrorIs(t, err, interview.ErrMemberNotFound)
}

func TestHistoryAttachesScores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	evaluated := f.runFullInterview(t)
	f.gen.push(evaluationJSON)
	_, err := f.svc.Evaluate(ctx, evaluated)
	require.NoError(t, err)

	open := f.start(t)

	entries, err := f.svc.History(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byID := map[string]interview.HistoryEntry{}
	for _, e := range entries {
		byID[e.SessionID] = e
	}

	done := byID[evaluated]
	require.Equal(t, interview.StatusCompleted, done.Status)
	require.NotNil(t, done.TotalScore)
	require.Equal(t, 4, *done.TotalScore)

	pending := byID[open.SessionID]
	require.Equal(t, interview.StatusInProgress, pending.Status)
	require.Nil(t, pending.TotalScore)
}
