package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mockview/internal/interview"
	"mockview/internal/llm"
	"mockview/internal/transcribe"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("handler: encode response: %v", err)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// writeError maps the interview error taxonomy onto HTTP status codes:
// missing entities are client errors, ownership violations are forbidden,
// broken state invariants are server errors, and generator trouble is an
// upstream (gateway) error.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, interview.ErrMemberNotFound),
		errors.Is(err, interview.ErrCompanyNotFound),
		errors.Is(err, interview.ErrSessionNotFound),
		errors.Is(err, interview.ErrEvaluationNotFound):
		status = http.StatusNotFound
	case errors.Is(err, interview.ErrNotOwner):
		status = http.StatusForbidden
	case errors.Is(err, interview.ErrBadGeneration),
		errors.Is(err, llm.ErrUnavailable),
		errors.Is(err, transcribe.ErrTranscribe):
		status = http.StatusBadGateway
	}
	if status == http.StatusInternalServerError {
		log.Printf("handler: internal error: %v", err)
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}
