package interview

import (
	"context"
	"errors"
	"time"
)

// MemberStatistics aggregates a member's evaluated interviews.
type MemberStatistics struct {
	TotalInterviews    int
	AverageScore       float64
	BestScore          int
	InterviewsThisWeek int
}

// HistoryEntry is one session in a member's interview history.
type HistoryEntry struct {
	SessionID   string
	CompanyID   string
	Field       FieldCategory
	Status      SessionStatus
	StartedAt   time.Time
	CompletedAt *time.Time
	TotalScore  *int
}

// Statistics computes interview counts and score aggregates over the
// member's evaluated sessions. The weekly window runs Monday through Sunday.
func (s *Service) Statistics(ctx context.Context, memberID string) (*MemberStatistics, error) {
	if _, err := s.members.FindMember(ctx, memberID); err != nil {
		return nil, err
	}
	sessions, err := s.store.ListSessionsByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	weekStart, weekEnd := weekBounds(s.now())
	stats := &MemberStatistics{}
	scoreSum := 0
	for _, session := range sessions {
		evaluation, err := s.store.GetEvaluation(ctx, session.ID)
		if errors.Is(err, ErrEvaluationNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		stats.TotalInterviews++
		scoreSum += evaluation.TotalScore
		if evaluation.TotalScore > stats.BestScore {
			stats.BestScore = evaluation.TotalScore
		}
		if session.CompletedAt != nil && !session.CompletedAt.Before(weekStart) && session.CompletedAt.Before(weekEnd) {
			stats.InterviewsThisWeek++
		}
	}
	if stats.TotalInterviews > 0 {
		stats.AverageScore = float64(scoreSum) / float64(stats.TotalInterviews)
	}
	return stats, nil
}

// History lists the member's sessions with the evaluation score attached
// when one exists. Ordering follows the store (newest first).
func (s *Service) History(ctx context.Context, memberID string) ([]HistoryEntry, error) {
	if _, err := s.members.FindMember(ctx, memberID); err != nil {
		return nil, err
	}
	sessions, err := s.store.ListSessionsByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(sessions))
	for _, session := range sessions {
		entry := HistoryEntry{
			SessionID:   session.ID,
			CompanyID:   session.CompanyID,
			Field:       session.Field,
			Status:      session.Status,
			StartedAt:   session.StartedAt,
			CompletedAt: session.CompletedAt,
		}
		evaluation, err := s.store.GetEvaluation(ctx, session.ID)
		if err == nil {
			score := evaluation.TotalScore
			entry.TotalScore = &score
		} else if !errors.Is(err, ErrEvaluationNotFound) {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// weekBounds returns [Monday 00:00, next Monday 00:00) around t.
func weekBounds(t time.Time) (time.Time, time.Time) {
	day := t.Weekday()
	offset := int(day - time.Monday)
	if day == time.Sunday {
		offset = 6
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}
