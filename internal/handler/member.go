package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"mockview/internal/interview"
	"mockview/internal/middleware"
)

type profileResponse struct {
	Nickname       string `json:"nickname"`
	JobField       string `json:"jobField,omitempty"`
	PreferredField string `json:"preferredField,omitempty"`
}

func toProfileResponse(p *interview.MemberProfile) profileResponse {
	return profileResponse{
		Nickname:       p.Nickname,
		JobField:       p.JobField,
		PreferredField: string(p.PreferredField),
	}
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	memberID, ok := middleware.MemberID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	profile, err := h.svc.Profile(r.Context(), memberID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}

type profileUpdateRequest struct {
	JobField       string `json:"jobField"`
	PreferredField string `json:"preferredField"`
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	memberID, ok := middleware.MemberID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req profileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	var preferred interview.FieldCategory
	if strings.TrimSpace(req.PreferredField) != "" {
		var err error
		preferred, err = interview.ParseFieldCategory(req.PreferredField)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	profile, err := h.svc.UpdateProfile(r.Context(), memberID, strings.TrimSpace(req.JobField), preferred)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}

type statisticsResponse struct {
	TotalInterviews    int     `json:"totalInterviews"`
	AverageScore       float64 `json:"averageScore"`
	BestScore          int     `json:"bestScore"`
	InterviewsThisWeek int     `json:"interviewsThisWeek"`
}

func (h *Handler) handleStatistics(w http.ResponseWriter, r *http.Request) {
	memberID, ok := middleware.MemberID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	stats, err := h.svc.Statistics(r.Context(), memberID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statisticsResponse{
		TotalInterviews:    stats.TotalInterviews,
		AverageScore:       stats.AverageScore,
		BestScore:          stats.BestScore,
		InterviewsThisWeek: stats.InterviewsThisWeek,
	})
}

type historyItem struct {
	InterviewSessionID string     `json:"interviewSessionId"`
	CompanyID          string     `json:"companyId"`
	Field              string     `json:"field"`
	Status             string     `json:"status"`
	StartedAt          time.Time  `json:"startedAt"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
	TotalScore         *int       `json:"totalScore,omitempty"`
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	memberID, ok := middleware.MemberID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	entries, err := h.svc.History(r.Context(), memberID)
	if err != nil {
		writeError(w, err)
		return
	}
	items := make([]historyItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, historyItem{
			InterviewSessionID: e.SessionID,
			CompanyID:          e.CompanyID,
			Field:              string(e.Field),
			Status:             string(e.Status),
			StartedAt:          e.StartedAt,
			CompletedAt:        e.CompletedAt,
			TotalScore:         e.TotalScore,
		})
	}
	writeJSON(w, http.StatusOK, items)
}
