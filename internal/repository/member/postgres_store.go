package member

import (
	"context"
	"fmt"
	"strings"

	"mockview/internal/ent"
	entmember "mockview/internal/ent/member"
	"mockview/internal/interview"
)

type PostgresStore struct {
	client *ent.Client
}

func NewPostgresStore(client *ent.Client) *PostgresStore {
	return &PostgresStore{client: client}
}

func (s *PostgresStore) FindMember(ctx context.Context, id string) (interview.Member, error) {
	if s == nil || s.client == nil {
		return interview.Member{}, fmt.Errorf("ent client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return interview.Member{}, fmt.Errorf("%w: empty id", interview.ErrMemberNotFound)
	}
	row, err := s.client.Member.Query().
		Where(entmember.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return interview.Member{}, fmt.Errorf("%w: %s", interview.ErrMemberNotFound, id)
		}
		return interview.Member{}, err
	}
	return interview.Member{
		ID:             row.ID,
		Email:          row.Email,
		Name:           row.Name,
		JobField:       row.JobField,
		PreferredField: interview.FieldCategory(row.PreferredField),
	}, nil
}

func (s *PostgresStore) CreateMember(ctx context.Context, m interview.Member) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("ent client is nil")
	}
	return s.client.Member.Create().
		SetID(m.ID).
		SetEmail(m.Email).
		SetName(m.Name).
		SetJobField(m.JobField).
		SetPreferredField(string(m.PreferredField)).
		Exec(ctx)
}

func (s *PostgresStore) UpdateMember(ctx context.Context, m interview.Member) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("ent client is nil")
	}
	err := s.client.Member.UpdateOneID(m.ID).
		SetName(m.Name).
		SetJobField(m.JobField).
		SetPreferredField(string(m.PreferredField)).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("%w: %s", interview.ErrMemberNotFound, m.ID)
	}
	return err
}
