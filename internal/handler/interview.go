package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"mockview/internal/interview"
	"mockview/internal/middleware"
)

const audioFolder = "interview-audio"

type startRequest struct {
	CompanyName string `json:"companyName"`
	Field       string `json:"field"`
}

type startResponse struct {
	InterviewSessionID string `json:"interviewSessionId"`
	Question           string `json:"question"`
}

func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	memberID, ok := middleware.MemberID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	field, err := interview.ParseFieldCategory(req.Field)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result, err := h.svc.StartSession(r.Context(), memberID, req.CompanyName, field)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, startResponse{
		InterviewSessionID: result.SessionID,
		Question:           result.Question,
	})
}

type nextRequest struct {
	InterviewSessionID string `json:"interviewSessionId"`
	AnswerText         string `json:"answerText"`
}

type nextResponse struct {
	Question string `json:"question"`
	Finished bool   `json:"finished"`
}

// handleNext accepts either a multipart upload (audioFile stored and
// transcribed here) or a JSON body carrying already-transcribed answerText.
func (h *Handler) handleNext(w http.ResponseWriter, r *http.Request) {
	memberID, ok := middleware.MemberID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var sessionID, answerText, audioRef string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		var err error
		sessionID, answerText, audioRef, err = h.processAnswerUpload(w, r)
		if err != nil {
			return // response already written
		}
	} else {
		var req nextRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		sessionID, answerText = req.InterviewSessionID, req.AnswerText
	}
	if strings.TrimSpace(sessionID) == "" {
		http.Error(w, "interviewSessionId is required", http.StatusBadRequest)
		return
	}

	result, err := h.svc.AdvanceSession(r.Context(), sessionID, memberID, answerText, audioRef)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nextResponse{Question: result.Question, Finished: result.Finished})
}

// processAnswerUpload stores the recording and transcribes it. On error the
// HTTP response is written before returning.
func (h *Handler) processAnswerUpload(w http.ResponseWriter, r *http.Request) (sessionID, answerText, audioRef string, err error) {
	if err = r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	sessionID = r.FormValue("interviewSessionId")
	file, header, ferr := r.FormFile("audioFile")
	if ferr != nil {
		err = ferr
		http.Error(w, "audioFile is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err = buf.ReadFrom(file); err != nil {
		http.Error(w, "read audio file", http.StatusBadRequest)
		return
	}

	key := fmt.Sprintf("%s/%s%s", audioFolder, uuid.NewString(), filepath.Ext(header.Filename))
	audioRef, err = h.audio.Upload(r.Context(), key, bytes.NewReader(buf.Bytes()), int64(buf.Len()), header.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, err)
		return
	}

	answerText, err = h.transcriber.Transcribe(r.Context(), header.Filename, bytes.NewReader(buf.Bytes()))
	if err != nil {
		writeError(w, err)
		return
	}
	return
}

type evaluationResponse struct {
	InterviewSessionID              string `json:"interviewSessionId"`
	TotalScore                      int    `json:"totalScore"`
	TechnicalExpertiseScore         int    `json:"technicalExpertiseScore"`
	CollaborationCommunicationScore int    `json:"collaborationCommunicationScore"`
	ProblemSolvingScore             int    `json:"problemSolvingScore"`
	GrowthPotentialScore            int    `json:"growthPotentialScore"`
	Summary                         string `json:"summary"`
	Strengths                       string `json:"strengths"`
	Improvements                    string `json:"improvements"`
}

func toEvaluationResponse(e *interview.Evaluation) evaluationResponse {
	return evaluationResponse{
		InterviewSessionID:              e.SessionID,
		TotalScore:                      e.TotalScore,
		TechnicalExpertiseScore:         e.TechnicalScore,
		CollaborationCommunicationScore: e.CollaborationScore,
		ProblemSolvingScore:             e.ProblemSolvingScore,
		GrowthPotentialScore:            e.GrowthScore,
		Summary:                         e.Summary,
		Strengths:                       e.Strengths,
		Improvements:                    e.Improvements,
	}
}

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	evaluation, err := h.svc.Evaluate(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEvaluationResponse(evaluation))
}

type qaItem struct {
	QuestionOrder int    `json:"questionOrder"`
	FollowUpOrder int    `json:"followUpOrder"`
	QuestionText  string `json:"questionText"`
	AnswerText    string `json:"answerText,omitempty"`
	AudioRef      string `json:"audioRef,omitempty"`
}

type resultsResponse struct {
	Evaluation evaluationResponse `json:"evaluation"`
	QARecords  []qaItem           `json:"qaRecords"`
}

func (h *Handler) handleResults(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Results(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	items := make([]qaItem, 0, len(result.Records))
	for _, rec := range result.Records {
		items = append(items, qaItem{
			QuestionOrder: rec.MainOrder,
			FollowUpOrder: rec.FollowUpOrder,
			QuestionText:  rec.Question,
			AnswerText:    rec.Answer,
			AudioRef:      rec.AudioRef,
		})
	}
	writeJSON(w, http.StatusOK, resultsResponse{
		Evaluation: toEvaluationResponse(result.Evaluation),
		QARecords:  items,
	})
}
