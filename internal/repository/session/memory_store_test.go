package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mockview/internal/interview"
)

func seedSession(t *testing.T, store *MemoryStore) *interview.Session {
	t.Helper()
	sess := interview.NewSession("m1", "c1", interview.FieldDevelopment, time.Now())
	require.NoError(t, store.CreateSession(context.Background(), sess))
	return sess
}

func TestCreateRecordRejectsDuplicateTriple(t *testing.T) {
	store := NewMemoryStore()
	sess := seedSession(t, store)
	ctx := context.Background()

	rec := &interview.QARecord{SessionID: sess.ID, MainOrder: 1, FollowUpOrder: 0, Question: "Q1"}
	require.NoError(t, store.CreateRecord(ctx, rec))
	require.Error(t, store.CreateRecord(ctx, rec))
}

func TestAnswerRecordOnlyOnce(t *testing.T) {
	store := NewMemoryStore()
	sess := seedSession(t, store)
	ctx := context.Background()

	rec := &interview.QARecord{SessionID: sess.ID, MainOrder: 1, FollowUpOrder: 0, Question: "Q1"}
	require.NoError(t, store.CreateRecord(ctx, rec))

	rec.Answer = "a1"
	rec.Answered = true
	require.NoError(t, store.AnswerRecord(ctx, rec))
	require.Error(t, store.AnswerRecord(ctx, rec))
}

func TestListRecordsOrdersByMainThenFollowUp(t *testing.T) {
	store := NewMemoryStore()
	sess := seedSession(t, store)
	ctx := context.Background()

	for _, r := range []*interview.QARecord{
		{SessionID: sess.ID, MainOrder: 2, FollowUpOrder: 0, Question: "Q2"},
		{SessionID: sess.ID, MainOrder: 1, FollowUpOrder: 1, Question: "Q1-f"},
		{SessionID: sess.ID, MainOrder: 1, FollowUpOrder: 0, Question: "Q1"},
	} {
		require.NoError(t, store.CreateRecord(ctx, r))
	}

	records, err := store.ListRecords(ctx, sess.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Q1", "Q1-f", "Q2"}, []string{
		records[0].Question, records[1].Question, records[2].Question,
	})
}

func TestUnanswerRecordReopensQuestion(t *testing.T) {
	store := NewMemoryStore()
	sess := seedSession(t, store)
	ctx := context.Background()

	rec := &interview.QARecord{SessionID: sess.ID, MainOrder: 1, FollowUpOrder: 0, Question: "Q1"}
	require.NoError(t, store.CreateRecord(ctx, rec))

	rec.Answer = "a1"
	rec.AudioRef = "memory://a1.webm"
	rec.Answered = true
	require.NoError(t, store.AnswerRecord(ctx, rec))
	require.NoError(t, store.UnanswerRecord(ctx, rec))

	records, err := store.ListRecords(ctx, sess.ID)
	require.NoError(t, err)
	require.False(t, records[0].Answered)
	require.Empty(t, records[0].Answer)
	require.Empty(t, records[0].AudioRef)

	// The reopened record accepts a fresh answer.
	rec.Answer = "a1 again"
	require.NoError(t, store.AnswerRecord(ctx, rec))
}

func TestUnanswerRecordMissingTriple(t *testing.T) {
	store := NewMemoryStore()
	sess := seedSession(t, store)

	err := store.UnanswerRecord(context.Background(), &interview.QARecord{SessionID: sess.ID, MainOrder: 9})
	require.ErrorIs(t, err, interview.ErrInconsistent)
}

func TestDeleteSessionRemovesEverything(t *testing.T) {
	store := NewMemoryStore()
	sess := seedSession(t, store)
	ctx := context.Background()

	rec := &interview.QARecord{SessionID: sess.ID, MainOrder: 1, FollowUpOrder: 0, Question: "Q1"}
	require.NoError(t, store.CreateRecord(ctx, rec))
	_, err := store.SaveEvaluation(ctx, &interview.Evaluation{SessionID: sess.ID, TotalScore: 4, Summary: "s"})
	require.NoError(t, err)

	require.NoError(t, store.DeleteSession(ctx, sess.ID))

	_, err = store.GetSession(ctx, sess.ID)
	require.ErrorIs(t, err, interview.ErrSessionNotFound)
	records, err := store.ListRecords(ctx, sess.ID)
	require.NoError(t, err)
	require.Empty(t, records)
	_, err = store.GetEvaluation(ctx, sess.ID)
	require.ErrorIs(t, err, interview.ErrEvaluationNotFound)

	require.ErrorIs(t, store.DeleteSession(ctx, sess.ID), interview.ErrSessionNotFound)
}

func TestSaveEvaluationReturnsExistingOnDuplicate(t *testing.T) {
	store := NewMemoryStore()
	sess := seedSession(t, store)
	ctx := context.Background()

	first := &interview.Evaluation{SessionID: sess.ID, TotalScore: 4, Summary: "first"}
	stored, err := store.SaveEvaluation(ctx, first)
	require.NoError(t, err)
	require.Equal(t, "first", stored.Summary)

	second := &interview.Evaluation{SessionID: sess.ID, TotalScore: 2, Summary: "second"}
	stored, err = store.SaveEvaluation(ctx, second)
	require.NoError(t, err)
	require.Equal(t, "first", stored.Summary)
	require.Equal(t, 4, stored.TotalScore)
}

func TestListSessionsByMemberNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	older := interview.NewSession("m1", "c1", interview.FieldDevelopment, time.Now().Add(-time.Hour))
	newer := interview.NewSession("m1", "c1", interview.FieldDevelopment, time.Now())
	other := interview.NewSession("m2", "c1", interview.FieldDevelopment, time.Now())
	for _, s := range []*interview.Session{older, newer, other} {
		require.NoError(t, store.CreateSession(ctx, s))
	}

	sessions, err := store.ListSessionsByMember(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.Equal(t, newer.ID, sessions[0].ID)
	require.Equal(t, older.ID, sessions[1].ID)
}

func TestGetSessionCopiesState(t *testing.T) {
	store := NewMemoryStore()
	sess := seedSession(t, store)
	ctx := context.Background()

	got, err := store.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	got.Status = interview.StatusCompleted

	again, err := store.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	require.Equal(t, interview.StatusInProgress, again.Status)
}
