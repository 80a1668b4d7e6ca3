package interview

import "errors"

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrCompanyNotFound    = errors.New("company not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrEvaluationNotFound = errors.New("evaluation not found")

	// ErrNotOwner is returned when a caller touches a session that belongs
	// to someone else. The check never mutates state.
	ErrNotOwner = errors.New("session does not belong to caller")

	ErrNoOpenQuestion = errors.New("no open question left to answer")
	ErrNoData         = errors.New("session has no question records")
	ErrInconsistent   = errors.New("session question sequence is inconsistent")

	// ErrBadGeneration marks generator output that could not be parsed into
	// the expected structure. The triggering call is not retried here.
	ErrBadGeneration = errors.New("generator returned unparsable content")
)
