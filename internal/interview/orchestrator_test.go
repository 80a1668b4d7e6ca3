package interview_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"mockview/internal/interview"
	companyrepo "mockview/internal/repository/company"
	memberrepo "mockview/internal/repository/member"
	reviewrepo "mockview/internal/repository/review"
	sessionrepo "mockview/internal/repository/session"
)

// scriptedGen replays canned generator output in order and records every
// prompt it was asked.
type scriptedGen struct {
	mu        sync.Mutex
	responses []string
	prompts   []string
}

func (g *scriptedGen) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	if len(g.responses) == 0 {
		return "", fmt.Errorf("scripted generator exhausted after %d calls", len(g.prompts))
	}
	out := g.responses[0]
	g.responses = g.responses[1:]
	return out, nil
}

func (g *scriptedGen) push(responses ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.responses = append(g.responses, responses...)
}

func (g *scriptedGen) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

type fixture struct {
	svc   *interview.Service
	store *sessionrepo.MemoryStore
	gen   *scriptedGen
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	members := memberrepo.NewMemoryStore()
	require.NoError(t, members.CreateMember(ctx, interview.Member{ID: "m1", Email: "m1@example.com", Name: "M One"}))

	companies := companyrepo.NewMemoryStore()
	company, err := companies.EnsureCompany(ctx, "Acme")
	require.NoError(t, err)

	reviews := reviewrepo.NewMemoryStore()
	require.NoError(t, reviews.AddReview(ctx, company, interview.FieldDevelopment, interview.Review{
		Difficulty: "medium",
		Questions:  "What is a goroutine",
		Summary:    "language basics",
	}))

	store := sessionrepo.NewMemoryStore()
	gen := &scriptedGen{}
	svc := interview.NewService(members, companies, reviews, store, gen, interview.DefaultPolicy())
	return &fixture{svc: svc, store: store, gen: gen}
}

const questionPlan = `["Q1", "Q2", "Q3"]`

func (f *fixture) start(t *testing.T) *interview.StartResult {
	t.Helper()
	f.gen.push(questionPlan)
	result, err := f.svc.StartSession(context.Background(), "m1", "Acme", interview.FieldDevelopment)
	require.NoError(t, err)
	return result
}

func TestStartSessionSeedsMainQuestions(t *testing.T) {
	f := newFixture(t)
	result := f.start(t)

	require.NotEmpty(t, result.SessionID)
	require.Equal(t, "Q1", result.Question)

	records, err := f.store.ListRecords(context.Background(), result.SessionID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, r := range records {
		require.Equal(t, i+1, r.MainOrder)
		require.Equal(t, 0, r.FollowUpOrder)
		require.False(t, r.Answered)
	}
}

func TestStartSessionTruncatesOversizedPlan(t *testing.T) {
	f := newFixture(t)
	f.gen.push(`["Q1", "Q2", "Q3", "Q4", "Q5"]`)

	result, err := f.svc.StartSession(context.Background(), "m1", "Acme", interview.FieldDevelopment)
	require.NoError(t, err)

	records, err := f.store.ListRecords(context.Background(), result.SessionID)
	require.NoError(t, err)
	require.Len(t, records, 3)
}

func TestStartSessionUnknownMember(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.StartSession(context.Background(), "nobody", "Acme", interview.FieldDevelopment)
	require.ErrorIs(t, err, interview.ErrMemberNotFound)
	require.Zero(t, f.gen.callCount())
}

func TestStartSessionUnknownCompany(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.StartSession(context.Background(), "m1", "NoSuchCo", interview.FieldDevelopment)
	require.ErrorIs(t, err, interview.ErrCompanyNotFound)
}

func TestStartSessionRejectsMalformedPlan(t *testing.T) {
	f := newFixture(t)
	f.gen.push("here are some great questions for you")
	_, err := f.svc.StartSession(context.Background(), "m1", "Acme", interview.FieldDevelopment)
	require.ErrorIs(t, err, interview.ErrBadGeneration)
}

func TestAdvanceWithoutFollowUpsRunsToClosing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	result := f.start(t)

	f.gen.push("NEXT_QUESTION")
	adv, err := f.svc.AdvanceSession(ctx, result.SessionID, "m1", "answer one", "")
	require.NoError(t, err)
	require.False(t, adv.Finished)
	require.Equal(t, "Q2", adv.Question)

	f.gen.push("NEXT_QUESTION")
	adv, err = f.svc.AdvanceSession(ctx, result.SessionID, "m1", "answer two", "")
	require.NoError(t, err)
	require.False(t, adv.Finished)
	require.Equal(t, "Q3", adv.Question)

	f.gen.push("NEXT_QUESTION", "Thanks for your time, any questions for us?")
	adv, err = f.svc.AdvanceSession(ctx, result.SessionID, "m1", "answer three", "")
	require.NoError(t, err)
	require.True(t, adv.Finished)
	require.Equal(t, "Thanks for your time, any questions for us?", adv.Question)

	session, err := f.store.GetSession(ctx, result.SessionID)
	require.NoError(t, err)
	require.Equal(t, interview.StatusCompleted, session.Status)
	require.NotNil(t, session.CompletedAt)

	// All questions answered, nothing left to advance.
	_, err = f.svc.AdvanceSession(ctx, result.SessionID, "m1", "one more", "")
	require.ErrorIs(t, err, interview.ErrNoOpenQuestion)
}

func TestAdvanceFollowUpIsBounded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	result := f.start(t)

	f.gen.push("FOLLOW_UP_NEEDED", "Could you be more specific?")
	adv, err := f.svc.AdvanceSession(ctx, result.SessionID, "m1", "vague answer", "")
	require.NoError(t, err)
	require.False(t, adv.Finished)
	require.Equal(t, "Could you be more specific?", adv.Question)

	// The follow-up answer is never judged again: the next main question
	// comes back without any generator call.
	before := f.gen.callCount()
	adv, err = f.svc.AdvanceSession(ctx, result.SessionID, "m1", "specific answer", "")
	require.NoError(t, err)
	require.Equal(t, "Q2", adv.Question)
	require.Equal(t, before, f.gen.callCount())

	records, err := f.store.ListRecords(ctx, result.SessionID)
	require.NoError(t, err)
	require.Len(t, records, 4)
	require.Equal(t, 1, records[1].MainOrder)
	require.Equal(t, 1, records[1].FollowUpOrder)
}

func TestAdvanceAmbiguousVerdictMovesOn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	result := f.start(t)

	f.gen.push("Hmm, I am not sure what to make of that answer.")
	adv, err := f.svc.AdvanceSession(ctx, result.SessionID, "m1", "answer", "")
	require.NoError(t, err)
	require.Equal(t, "Q2", adv.Question)
}

func TestAdvanceRejectsNonOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	result := f.start(t)

	_, err := f.svc.AdvanceSession(ctx, result.SessionID, "intruder", "answer", "")
	require.ErrorIs(t, err, interview.ErrNotOwner)

	// Nothing was recorded.
	records, err := f.store.ListRecords(ctx, result.SessionID)
	require.NoError(t, err)
	for _, r := range records {
		require.False(t, r.Answered)
	}
}

func TestAdvanceUnknownSession(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.AdvanceSession(context.Background(), "no-such-session", "m1", "answer", "")
	require.ErrorIs(t, err, interview.ErrSessionNotFound)
}

func TestStartSessionCleansUpWhenPlanGenerationFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Empty script: the question-plan call fails.
	_, err := f.svc.StartSession(ctx, "m1", "Acme", interview.FieldDevelopment)
	require.Error(t, err)

	sessions, err := f.store.ListSessionsByMember(ctx, "m1")
	require.NoError(t, err)
	require.Empty(t, sessions)
}

func TestAdvanceRevertsAnswerWhenVerdictFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	result := f.start(t)

	// Empty script: the judgement call fails after the answer is stored.
	_, err := f.svc.AdvanceSession(ctx, result.SessionID, "m1", "lost answer", "")
	require.Error(t, err)

	records, err := f.store.ListRecords(ctx, result.SessionID)
	require.NoError(t, err)
	require.False(t, records[0].Answered)
	require.Empty(t, records[0].Answer)

	// The retry replays the same question instead of skipping ahead.
	f.gen.push("NEXT_QUESTION")
	adv, err := f.svc.AdvanceSession(ctx, result.SessionID, "m1", "retried answer", "")
	require.NoError(t, err)
	require.Equal(t, "Q2", adv.Question)

	records, err = f.store.ListRecords(ctx, result.SessionID)
	require.NoError(t, err)
	require.Equal(t, "retried answer", records[0].Answer)
	require.False(t, records[1].Answered)
}

func TestAdvanceRevertsAnswerWhenFollowUpGenerationFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	result := f.start(t)

	// Verdict asks for a follow-up, then the follow-up call fails.
	f.gen.push("FOLLOW_UP_NEEDED")
	_, err := f.svc.AdvanceSession(ctx, result.SessionID, "m1", "vague answer", "")
	require.Error(t, err)

	records, err := f.store.ListRecords(ctx, result.SessionID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.False(t, records[0].Answered)
}

func TestAdvanceRevertsAnswerWhenClosingFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	result := f.start(t)

	f.gen.push("NEXT_QUESTION")
	_, err := f.svc.AdvanceSession(ctx, result.SessionID, "m1", "a1", "")
	require.NoError(t, err)
	f.gen.push("NEXT_QUESTION")
	_, err = f.svc.AdvanceSession(ctx, result.SessionID, "m1", "a2", "")
	require.NoError(t, err)

	// Last answer: the verdict passes but the closing-remark call fails.
	f.gen.push("NEXT_QUESTION")
	_, err = f.svc.AdvanceSession(ctx, result.SessionID, "m1", "a3", "")
	require.Error(t, err)

	session, err := f.store.GetSession(ctx, result.SessionID)
	require.NoError(t, err)
	require.Equal(t, interview.StatusInProgress, session.Status)

	// The session is not stranded: the retry completes it.
	f.gen.push("NEXT_QUESTION", "closing remark")
	adv, err := f.svc.AdvanceSession(ctx, result.SessionID, "m1", "a3 again", "")
	require.NoError(t, err)
	require.True(t, adv.Finished)
	require.Equal(t, "closing remark", adv.Question)
}

func TestAdvanceKeepsAudioRef(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	result := f.start(t)

	f.gen.push("NEXT_QUESTION")
	_, err := f.svc.AdvanceSession(ctx, result.SessionID, "m1", "spoken answer", "s3://bucket/key.webm")
	require.NoError(t, err)

	records, err := f.store.ListRecords(ctx, result.SessionID)
	require.NoError(t, err)
	require.True(t, records[0].Answered)
	require.Equal(t, "spoken answer", records[0].Answer)
	require.Equal(t, "s3://bucket/key.webm", records[0].AudioRef)
}
