package interview

import "context"

// MemberDirectory resolves and updates members by id.
type MemberDirectory interface {
	FindMember(ctx context.Context, id string) (Member, error)
	UpdateMember(ctx context.Context, m Member) error
}

// CompanyDirectory resolves companies by name.
type CompanyDirectory interface {
	FindCompany(ctx context.Context, name string) (Company, error)
}

// ReviewSampler returns up to limit review excerpts for (company, field).
// The result order is a sampling policy, not a ranking; an empty slice is
// valid input.
type ReviewSampler interface {
	SampleReviews(ctx context.Context, companyName string, field FieldCategory, limit int) ([]Review, error)
}

// Generator is the text-generation collaborator. Calls are blocking and may
// fail; retry policy, if any, lives behind this interface.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Store persists sessions, their question records and evaluations.
// Implementations must enforce the (session, main_order, follow_up_order)
// uniqueness on records and at-most-one evaluation per session.
type Store interface {
	CreateSession(ctx context.Context, s *Session) error
	GetSession(ctx context.Context, id string) (*Session, error)
	CompleteSession(ctx context.Context, s *Session) error
	ListSessionsByMember(ctx context.Context, memberID string) ([]*Session, error)
	// DeleteSession removes a session together with its records and
	// evaluation. Used to compensate a failed session start.
	DeleteSession(ctx context.Context, id string) error

	CreateRecord(ctx context.Context, r *QARecord) error
	// ListRecords returns all records of a session ordered by
	// (main_order, follow_up_order).
	ListRecords(ctx context.Context, sessionID string) ([]*QARecord, error)
	AnswerRecord(ctx context.Context, r *QARecord) error
	// UnanswerRecord reverts a recorded answer, reopening the record. Used
	// to compensate a failed advance step.
	UnanswerRecord(ctx context.Context, r *QARecord) error

	GetEvaluation(ctx context.Context, sessionID string) (*Evaluation, error)
	// SaveEvaluation inserts the evaluation. When one already exists for the
	// session it returns the stored row instead of overwriting it.
	SaveEvaluation(ctx context.Context, e *Evaluation) (*Evaluation, error)
}
