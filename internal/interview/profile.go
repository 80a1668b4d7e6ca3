package interview

import "context"

// MemberProfile is the member-facing slice of the account: the display
// nickname plus the mutable profile fields.
type MemberProfile struct {
	Nickname       string
	JobField       string
	PreferredField FieldCategory
}

func (s *Service) Profile(ctx context.Context, memberID string) (*MemberProfile, error) {
	m, err := s.members.FindMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return &MemberProfile{
		Nickname:       m.Name,
		JobField:       m.JobField,
		PreferredField: m.PreferredField,
	}, nil
}

// UpdateProfile replaces the member's job field and preferred interview
// field. An empty preferred field clears the preference.
func (s *Service) UpdateProfile(ctx context.Context, memberID, jobField string, preferred FieldCategory) (*MemberProfile, error) {
	m, err := s.members.FindMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	m.JobField = jobField
	m.PreferredField = preferred
	if err := s.members.UpdateMember(ctx, m); err != nil {
		return nil, err
	}
	return &MemberProfile{
		Nickname:       m.Name,
		JobField:       m.JobField,
		PreferredField: m.PreferredField,
	}, nil
}
