package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"mockview/internal/interview"
)

const (
	watchWSWriteWait = 10 * time.Second
	watchWSPongWait  = 60 * time.Second
	watchWSPingEvery = (watchWSPongWait * 9) / 10
	watchPollEvery   = 2 * time.Second
)

var watchWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type watchWSOutbound struct {
	Type      string   `json:"type"`
	SessionID string   `json:"sessionId,omitempty"`
	Records   []qaItem `json:"records,omitempty"`
	Finished  bool     `json:"finished,omitempty"`
	Code      string   `json:"code,omitempty"`
	Message   string   `json:"message,omitempty"`
}

// handleWatch streams the session's question/answer timeline over a
// websocket. The timeline is polled and pushed whenever it grows or an
// answer lands; the stream ends once the session is completed.
func (h *Handler) handleWatch(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}
	// Reject unknown sessions before upgrading.
	if _, _, err := h.svc.Timeline(r.Context(), sessionID); err != nil {
		writeError(w, err)
		return
	}

	conn, err := watchWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(watchWSPongWait)); err != nil {
		log.Printf("watch ws set read deadline failed: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(watchWSPongWait))
	})

	writeCh := make(chan watchWSOutbound, 32)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(watchWSPingEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case out := <-writeCh:
				if err := conn.SetWriteDeadline(time.Now().Add(watchWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(out); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(watchWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	// Drain inbound frames so pong handlers run and closure is noticed.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	poll := time.NewTicker(watchPollEvery)
	defer poll.Stop()

	var lastAnswered, lastTotal int = -1, -1
	for {
		records, finished, err := h.snapshotTimeline(ctx, sessionID)
		if err != nil {
			cancel()
			<-writerDone
			writeWatchFinal(conn, writeCh, watchWSOutbound{
				Type:    "error",
				Code:    "internal",
				Message: err.Error(),
			})
			return
		}
		if finished {
			// Terminal frame: stop the writer first, then flush anything
			// still queued and write the frame from this goroutine so it
			// cannot be dropped on shutdown.
			cancel()
			<-writerDone
			writeWatchFinal(conn, writeCh, watchWSOutbound{
				Type:      "timeline",
				SessionID: sessionID,
				Records:   records,
				Finished:  true,
			})
			return
		}
		answered := 0
		for _, rec := range records {
			if rec.AnswerText != "" {
				answered++
			}
		}
		if len(records) != lastTotal || answered != lastAnswered {
			lastTotal, lastAnswered = len(records), answered
			pushWatchWS(writeCh, watchWSOutbound{
				Type:      "timeline",
				SessionID: sessionID,
				Records:   records,
			})
		}

		select {
		case <-ctx.Done():
			<-writerDone
			return
		case <-poll.C:
		}
	}
}

// writeWatchFinal drains frames the writer goroutine never got to and then
// writes the final frame. Callers must have stopped the writer goroutine.
func writeWatchFinal(conn *websocket.Conn, writeCh chan watchWSOutbound, final watchWSOutbound) {
	for {
		select {
		case out := <-writeCh:
			if conn.SetWriteDeadline(time.Now().Add(watchWSWriteWait)) != nil {
				return
			}
			if conn.WriteJSON(out) != nil {
				return
			}
		default:
			if conn.SetWriteDeadline(time.Now().Add(watchWSWriteWait)) != nil {
				return
			}
			_ = conn.WriteJSON(final)
			return
		}
	}
}

func (h *Handler) snapshotTimeline(ctx context.Context, sessionID string) ([]qaItem, bool, error) {
	session, records, err := h.svc.Timeline(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	return toQAItems(records), session.Status == interview.StatusCompleted, nil
}

func toQAItems(records []*interview.QARecord) []qaItem {
	items := make([]qaItem, 0, len(records))
	for _, rec := range records {
		items = append(items, qaItem{
			QuestionOrder: rec.MainOrder,
			FollowUpOrder: rec.FollowUpOrder,
			QuestionText:  rec.Question,
			AnswerText:    rec.Answer,
			AudioRef:      rec.AudioRef,
		})
	}
	return items
}

func pushWatchWS(writeCh chan watchWSOutbound, out watchWSOutbound) {
	select {
	case writeCh <- out:
		return
	default:
	}
	select {
	case <-writeCh:
	default:
	}
	select {
	case writeCh <- out:
	default:
	}
}
