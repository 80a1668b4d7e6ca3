package company

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"mockview/internal/ent"
	entcompany "mockview/internal/ent/company"
	"mockview/internal/interview"
)

type PostgresStore struct {
	client *ent.Client
}

func NewPostgresStore(client *ent.Client) *PostgresStore {
	return &PostgresStore{client: client}
}

func (s *PostgresStore) FindCompany(ctx context.Context, name string) (interview.Company, error) {
	if s == nil || s.client == nil {
		return interview.Company{}, fmt.Errorf("ent client is nil")
	}
	name = strings.TrimSpace(name)
	row, err := s.client.Company.Query().
		Where(entcompany.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return interview.Company{}, fmt.Errorf("%w: %s", interview.ErrCompanyNotFound, name)
		}
		return interview.Company{}, err
	}
	return interview.Company{ID: row.ID, Name: row.Name}, nil
}

func (s *PostgresStore) EnsureCompany(ctx context.Context, name string) (interview.Company, error) {
	existing, err := s.FindCompany(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, interview.ErrCompanyNotFound) {
		return interview.Company{}, err
	}
	id := uuid.NewString()
	created, err := s.client.Company.Create().
		SetID(id).
		SetName(strings.TrimSpace(name)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// lost the insert race, reload
			return s.FindCompany(ctx, name)
		}
		return interview.Company{}, err
	}
	return interview.Company{ID: created.ID, Name: created.Name}, nil
}
