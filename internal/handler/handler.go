package handler

import (
	"context"
	"io"
	"net/http"

	"mockview/internal/audio"
	"mockview/internal/interview"
)

// Transcriber converts an uploaded answer recording to text.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

// Handler exposes the interview service over REST. Identity is resolved by
// the auth middleware and passed into the core as an explicit member id.
type Handler struct {
	svc         *interview.Service
	audio       audio.Store
	transcriber Transcriber
}

func New(svc *interview.Service, audioStore audio.Store, transcriber Transcriber) *Handler {
	return &Handler{svc: svc, audio: audioStore, transcriber: transcriber}
}

// Routes registers all endpoints on a new ServeMux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /interviews/start", h.handleStart)
	mux.HandleFunc("POST /interviews/next", h.handleNext)
	mux.HandleFunc("POST /interviews/analyze/{id}", h.handleAnalyze)
	mux.HandleFunc("GET /interviews/results/{id}", h.handleResults)
	mux.HandleFunc("GET /interviews/{id}/watch", h.handleWatch)
	mux.HandleFunc("GET /members/me", h.handleProfile)
	mux.HandleFunc("PUT /members/me", h.handleUpdateProfile)
	mux.HandleFunc("GET /members/me/statistics", h.handleStatistics)
	mux.HandleFunc("GET /members/me/interviews", h.handleHistory)
	return mux
}
