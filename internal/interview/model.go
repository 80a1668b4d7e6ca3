package interview

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FieldCategory is the job field a session is scoped to.
type FieldCategory string

const (
	FieldDevelopment FieldCategory = "development"
	FieldData        FieldCategory = "data"
	FieldRnd         FieldCategory = "rnd"
)

// ParseFieldCategory maps a request string onto a known category.
func ParseFieldCategory(raw string) (FieldCategory, error) {
	switch FieldCategory(strings.ToLower(strings.TrimSpace(raw))) {
	case FieldDevelopment:
		return FieldDevelopment, nil
	case FieldData:
		return FieldData, nil
	case FieldRnd:
		return FieldRnd, nil
	}
	return "", fmt.Errorf("unknown field category %q", raw)
}

type SessionStatus string

const (
	StatusInProgress SessionStatus = "IN_PROGRESS"
	StatusCompleted  SessionStatus = "COMPLETED"
)

type Member struct {
	ID    string
	Email string
	Name  string
	// JobField is the free-form job field from the member's profile.
	JobField string
	// PreferredField is the member's default interview field, empty when
	// not chosen yet.
	PreferredField FieldCategory
}

type Company struct {
	ID   string
	Name string
}

// Review is one historical interview review excerpt used as prompt context.
type Review struct {
	Difficulty string
	Questions  string
	Summary    string
}

// Session is one interview attempt. It is owned by the orchestration
// service once created and mutated only through it.
type Session struct {
	ID          string
	MemberID    string
	CompanyID   string
	Field       FieldCategory
	Status      SessionStatus
	StartedAt   time.Time
	CompletedAt *time.Time
}

func NewSession(memberID, companyID string, field FieldCategory, now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		MemberID:  memberID,
		CompanyID: companyID,
		Field:     field,
		Status:    StatusInProgress,
		StartedAt: now,
	}
}

// Complete closes the session. The status is terminal.
func (s *Session) Complete(now time.Time) {
	s.Status = StatusCompleted
	s.CompletedAt = &now
}

// QARecord is one question within a session. FollowUpOrder 0 marks a main
// question; follow-ups count from 1. The triple (SessionID, MainOrder,
// FollowUpOrder) is unique, and a record moves from unanswered to answered
// exactly once.
type QARecord struct {
	SessionID     string
	MainOrder     int
	FollowUpOrder int
	Question      string
	Answer        string
	AudioRef      string
	Answered      bool
}

// Evaluation is the scored assessment of a session. At most one exists per
// session and it is immutable once stored.
type Evaluation struct {
	SessionID           string
	TotalScore          int
	TechnicalScore      int
	CollaborationScore  int
	ProblemSolvingScore int
	GrowthScore         int
	Summary             string
	Strengths           string
	Improvements        string
}
