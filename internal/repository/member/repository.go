package member

import (
	"context"

	"mockview/internal/interview"
)

// Store resolves and registers members. Misses surface as
// interview.ErrMemberNotFound.
type Store interface {
	interview.MemberDirectory
	CreateMember(ctx context.Context, m interview.Member) error
}
