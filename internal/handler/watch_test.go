package handler

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func (ts *testServer) dialWatch(t *testing.T, sessionID, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.srv.URL, "http") + "/interviews/" + sessionID + "/watch"
	header := http.Header{"Authorization": {"Bearer " + token}}
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func (ts *testServer) finishInterview(t *testing.T, token string) string {
	t.Helper()
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
	return started.InterviewSessionID
}

func TestWatchDeliversTerminalFrame(t *testing.T) {
	ts := newTestServer(t)
	token := ts.token(t, "m1")
	sessionID := ts.finishInterview(t, token)

	conn := ts.dialWatch(t, sessionID, token)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var frame watchWSOutbound
	require.NoError(t, conn.ReadJSON(&frame))
	require.Equal(t, "timeline", frame.Type)
	require.True(t, frame.Finished)
	require.Equal(t, sessionID, frame.SessionID)
	require.Len(t, frame.Records, 3)
	require.Equal(t, "answer 3", frame.Records[2].AnswerText)
}

func TestWatchRejectsUnknownSession(t *testing.T) {
	ts := newTestServer(t)
	url := "ws" + strings.TrimPrefix(ts.srv.URL, "http") + "/interviews/no-such-session/watch"
	header := http.Header{"Authorization": {"Bearer " + ts.token(t, "m1")}}

	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	if conn != nil {
		conn.Close()
	}
	require.NotNil(t, resp)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWatchStreamsProgress(t *testing.T) {
	ts := newTestServer(t)
	token := ts.token(t, "m1")
	started := ts.startInterview(t, token)

	conn := ts.dialWatch(t, started.InterviewSessionID, token)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var frame watchWSOutbound
	require.NoError(t, conn.ReadJSON(&frame))
	require.Equal(t, "timeline", frame.Type)
	require.False(t, frame.Finished)
	require.Len(t, frame.Records, 3)
	require.Empty(t, frame.Records[0].AnswerText)
}
