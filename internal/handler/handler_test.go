package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mockview/internal/audio"
	"mockview/internal/interview"
	"mockview/internal/middleware"
	companyrepo "mockview/internal/repository/company"
	memberrepo "mockview/internal/repository/member"
	reviewrepo "mockview/internal/repository/review"
	sessionrepo "mockview/internal/repository/session"
)

type scriptedGen struct {
	mu        sync.Mutex
	responses []string
}

func (g *scriptedGen) Generate(_ context.Context, _ string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.responses) == 0 {
		return "", fmt.Errorf("scripted generator exhausted")
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

type fakeTranscriber struct {
	text string
}

func (f *fakeTranscriber) Transcribe(_ context.Context, _ string, _ io.Reader) (string, error) {
	return f.text, nil
}

type testServer struct {
	gen         *scriptedGen
	audio       *audio.MemoryStore
	transcriber *fakeTranscriber
	auth        *middleware.Auth
	srv         *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	members := memberrepo.NewMemoryStore()
	require.NoError(t, members.CreateMember(ctx, interview.Member{ID: "m1", Email: "m1@example.com", Name: "M One"}))
	require.NoError(t, members.CreateMember(ctx, interview.Member{ID: "m2", Email: "m2@example.com", Name: "M Two"}))

	companies := companyrepo.NewMemoryStore()
	_, err := companies.EnsureCompany(ctx, "Acme")
	require.NoError(t, err)

	gen := &scriptedGen{}
	audioStore := audio.NewMemoryStore()
	transcriber := &fakeTranscriber{text: "transcribed answer"}
	svc := interview.NewService(members, companies, reviewrepo.NewMemoryStore(), sessionrepo.NewMemoryStore(), gen, interview.DefaultPolicy())

	auth := middleware.NewAuth("test-secret")
	var root http.Handler = New(svc, audioStore, transcriber).Routes()
	root = middleware.RequireAuth(root)
	root = auth.WithAuth(root)

	srv := httptest.NewServer(root)
	t.Cleanup(srv.Close)
	return &testServer{gen: gen, audio: audioStore, transcriber: transcriber, auth: auth, srv: srv}
}

func (ts *testServer) token(t *testing.T, memberID string) string {
	t.Helper()
	token, err := ts.auth.SignToken(memberID, time.Hour)
	require.NoError(t, err)
	return token
}

func (ts *testServer) do(t *testing.T, method, path, token, contentType string, body io.Reader) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, ts.srv.URL+path, body)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := ts.srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (ts *testServer) startInterview(t *testing.T, token string) startResponse {
	t.Helper()
	ts.gen.push(`["Q1", "Q2", "Q3"]`)
	resp := ts.do(t, http.MethodPost, "/interviews/start", token, "application/json",
		strings.NewReader(`{"companyName": "Acme", "field": "development"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeBody[startResponse](t, resp)
}

func TestStartRequiresAuth(t *testing.T) {
	ts := newTestServer(t)
	resp := ts.do(t, http.MethodPost, "/interviews/start", "", "application/json",
		strings.NewReader(`{"companyName": "Acme", "field": "development"}`))
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestStartRejectsUnknownField(t *testing.T) {
	ts := newTestServer(t)
	resp := ts.do(t, http.MethodPost, "/interviews/start", ts.token(t, "m1"), "application/json",
		strings.NewReader(`{"companyName": "Acme", "field": "astrology"}`))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStartReturnsFirstQuestion(t *testing.T) {
	ts := newTestServer(t)
	started := ts.startInterview(t, ts.token(t, "m1"))
	require.NotEmpty(t, started.InterviewSessionID)
	require.Equal(t, "Q1", started.Question)
}

func TestNextWithJSONAnswer(t *testing.T) {
	ts := newTestServer(t)
	token := ts.token(t, "m1")
	started := ts.startInterview(t, token)

	ts.gen.push("NEXT_QUESTION")
	body := fmt.Sprintf(`{"interviewSessionId": %q, "answerText": "my answer"}`, started.InterviewSessionID)
	resp := ts.do(t, http.MethodPost, "/interviews/next", token, "application/json", strings.NewReader(body))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	next := decodeBody[nextResponse](t, resp)
	require.Equal(t, "Q2", next.Question)
	require.False(t, next.Finished)
}

func TestNextWithAudioUpload(t *testing.T) {
	ts := newTestServer(t)
	token := ts.token(t, "m1")
	started := ts.startInterview(t, token)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("interviewSessionId", started.InterviewSessionID))
	part, err := form.CreateFormFile("audioFile", "answer.webm")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake audio bytes"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	ts.gen.push("NEXT_QUESTION")
	resp := ts.do(t, http.MethodPost, "/interviews/next", token, form.FormDataContentType(), &buf)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	next := decodeBody[nextResponse](t, resp)
	require.Equal(t, "Q2", next.Question)
}

func TestNextForbiddenForNonOwner(t *testing.T) {
	ts := newTestServer(t)
	started := ts.startInterview(t, ts.token(t, "m1"))

	body := fmt.Sprintf(`{"interviewSessionId": %q, "answerText": "hi"}`, started.InterviewSessionID)
	resp := ts.do(t, http.MethodPost, "/interviews/next", ts.token(t, "m2"), "application/json", strings.NewReader(body))
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAnalyzeAndResults(t *testing.T) {
	ts := newTestServer(t)
	token := ts.token(t, "m1")
	started := ts.startInterview(t, token)

	for i, script := range [][]string{
		{"NEXT_QUESTION"},
		{"NEXT_QUESTION"},
		{"NEXT_QUESTION", "closing remark"},
	} {
		ts.gen.push(script...)
		body := fmt.Sprintf(`{"interviewSessionId": %q, "answerText": "answer %d"}`, started.InterviewSessionID, i+1)
		resp := ts.do(t, http.MethodPost, "/interviews/next", token, "application/json", strings.NewReader(body))
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	ts.gen.push(`{
		"totalScore": 4,
		"problemSolvingScore": 4,
		"technicalExpertiseScore": 5,
		"collaborationCommunicationScore": 4,
		"growthPotentialScore": 3,
		"summary": "solid candidate",
		"strengths": "clear",
		"improvements": "depth"
	}`)
	resp := ts.do(t, http.MethodPost, "/interviews/analyze/"+started.InterviewSessionID, token, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	evaluation := decodeBody[evaluationResponse](t, resp)
	require.Equal(t, 4, evaluation.TotalScore)
	require.Equal(t, 5, evaluation.TechnicalExpertiseScore)

	resp = ts.do(t, http.MethodGet, "/interviews/results/"+started.InterviewSessionID, token, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	results := decodeBody[resultsResponse](t, resp)
	require.Len(t, results.QARecords, 3)
	require.Equal(t, "Q1", results.QARecords[0].QuestionText)
	require.Equal(t, "answer 1", results.QARecords[0].AnswerText)
	require.Equal(t, 4, results.Evaluation.TotalScore)
}

func TestAnalyzeUnknownSession(t *testing.T) {
	ts := newTestServer(t)
	resp := ts.do(t, http.MethodPost, "/interviews/analyze/no-such-session", ts.token(t, "m1"), "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProfileRoundTrip(t *testing.T) {
	ts := newTestServer(t)
	token := ts.token(t, "m1")

	resp := ts.do(t, http.MethodGet, "/members/me", token, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	profile := decodeBody[profileResponse](t, resp)
	require.Equal(t, "M One", profile.Nickname)
	require.Empty(t, profile.JobField)
	require.Empty(t, profile.PreferredField)

	resp = ts.do(t, http.MethodPut, "/members/me", token, "application/json",
		strings.NewReader(`{"jobField": "backend", "preferredField": "development"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	profile = decodeBody[profileResponse](t, resp)
	require.Equal(t, "backend", profile.JobField)
	require.Equal(t, "development", profile.PreferredField)

	resp = ts.do(t, http.MethodGet, "/members/me", token, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	profile = decodeBody[profileResponse](t, resp)
	require.Equal(t, "M One", profile.Nickname)
	require.Equal(t, "backend", profile.JobField)
	require.Equal(t, "development", profile.PreferredField)
}

func TestUpdateProfileRejectsUnknownField(t *testing.T) {
	ts := newTestServer(t)
	resp := ts.do(t, http.MethodPut, "/members/me", ts.token(t, "m1"), "application/json",
		strings.NewReader(`{"preferredField": "astrology"}`))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStatisticsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	token := ts.token(t, "m1")
	ts.startInterview(t, token)

	resp := ts.do(t, http.MethodGet, "/members/me/statistics", token, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decodeBody[statisticsResponse](t, resp)
	require.Zero(t, stats.TotalInterviews)

	resp = ts.do(t, http.MethodGet, "/members/me/interviews", token, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	history := decodeBody[[]historyItem](t, resp)
	require.Len(t, history, 1)
	require.Equal(t, "IN_PROGRESS", history[0].Status)
}
