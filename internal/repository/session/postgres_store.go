package session

import (
	"context"
	"fmt"

	"mockview/internal/ent"
	enteval "mockview/internal/ent/interviewevaluation"
	entqa "mockview/internal/ent/interviewqa"
	entsession "mockview/internal/ent/interviewsession"
	"mockview/internal/interview"
)

// PostgresStore implements interview.Store on the ent client. Uniqueness of
// (session, main_order, follow_up_order) and at-most-one evaluation per
// session are enforced by the schema's unique indexes.
type PostgresStore struct {
	client *ent.Client
}

func NewPostgresStore(client *ent.Client) *PostgresStore {
	return &PostgresStore{client: client}
}

func (s *PostgresStore) CreateSession(ctx context.Context, sess *interview.Session) error {
	create := s.client.InterviewSession.Create().
		SetID(sess.ID).
		SetMemberID(sess.MemberID).
		SetCompanyID(sess.CompanyID).
		SetField(string(sess.Field)).
		SetStatus(string(sess.Status)).
		SetStartedAt(sess.StartedAt)
	if sess.CompletedAt != nil {
		create.SetCompletedAt(*sess.CompletedAt)
	}
	return create.Exec(ctx)
}

func (s *PostgresStore) GetSession(ctx context.Context, id string) (*interview.Session, error) {
	row, err := s.client.InterviewSession.Query().
		Where(entsession.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", interview.ErrSessionNotFound, id)
		}
		return nil, err
	}
	return mapSession(row), nil
}

func (s *PostgresStore) CompleteSession(ctx context.Context, sess *interview.Session) error {
	update := s.client.InterviewSession.UpdateOneID(sess.ID).
		SetStatus(string(sess.Status))
	if sess.CompletedAt != nil {
		update.SetCompletedAt(*sess.CompletedAt)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: %s", interview.ErrSessionNotFound, sess.ID)
		}
		return err
	}
	return nil
}

func (s *PostgresStore) ListSessionsByMember(ctx context.Context, memberID string) ([]*interview.Session, error) {
	rows, err := s.client.InterviewSession.Query().
		Where(entsession.MemberID(memberID)).
		Order(ent.Desc(entsession.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*interview.Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapSession(row))
	}
	return out, nil
}

func (s *PostgresStore) CreateRecord(ctx context.Context, r *interview.QARecord) error {
	create := s.client.InterviewQA.Create().
		SetSessionID(r.SessionID).
		SetMainOrder(r.MainOrder).
		SetFollowUpOrder(r.FollowUpOrder).
		SetQuestionText(r.Question).
		SetAudioRef(r.AudioRef)
	if r.Answered {
		create.SetAnswerText(r.Answer)
	}
	return create.Exec(ctx)
}

func (s *PostgresStore) ListRecords(ctx context.Context, sessionID string) ([]*interview.QARecord, error) {
	rows, err := s.client.InterviewQA.Query().
		Where(entqa.SessionID(sessionID)).
		Order(ent.Asc(entqa.FieldMainOrder, entqa.FieldFollowUpOrder)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*interview.QARecord, 0, len(rows))
	for _, row := range rows {
		record := &interview.QARecord{
			SessionID:     row.SessionID,
			MainOrder:     row.MainOrder,
			FollowUpOrder: row.FollowUpOrder,
			Question:      row.QuestionText,
			AudioRef:      row.AudioRef,
		}
		if row.AnswerText != nil {
			record.Answer = *row.AnswerText
			record.Answered = true
		}
		out = append(out, record)
	}
	return out, nil
}

func (s *PostgresStore) AnswerRecord(ctx context.Context, r *interview.QARecord) error {
	row, err := s.client.InterviewQA.Query().
		Where(
			entqa.SessionID(r.SessionID),
			entqa.MainOrder(r.MainOrder),
			entqa.FollowUpOrder(r.FollowUpOrder),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: record (%d,%d) missing", interview.ErrInconsistent, r.MainOrder, r.FollowUpOrder)
		}
		return err
	}
	if row.AnswerText != nil {
		return fmt.Errorf("record (%d,%d) of session %s already answered", r.MainOrder, r.FollowUpOrder, r.SessionID)
	}
	return s.client.InterviewQA.UpdateOne(row).
		SetAnswerText(r.Answer).
		SetAudioRef(r.AudioRef).
		Exec(ctx)
}

func (s *PostgresStore) UnanswerRecord(ctx context.Context, r *interview.QARecord) error {
	row, err := s.client.InterviewQA.Query().
		Where(
			entqa.SessionID(r.SessionID),
			entqa.MainOrder(r.MainOrder),
			entqa.FollowUpOrder(r.FollowUpOrder),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: record (%d,%d) missing", interview.ErrInconsistent, r.MainOrder, r.FollowUpOrder)
		}
		return err
	}
	return s.client.InterviewQA.UpdateOne(row).
		ClearAnswerText().
		SetAudioRef("").
		Exec(ctx)
}

func (s *PostgresStore) DeleteSession(ctx context.Context, id string) error {
	if _, err := s.client.InterviewQA.Delete().
		Where(entqa.SessionID(id)).
		Exec(ctx); err != nil {
		return err
	}
	if _, err := s.client.InterviewEvaluation.Delete().
		Where(enteval.SessionID(id)).
		Exec(ctx); err != nil {
		return err
	}
	if err := s.client.InterviewSession.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: %s", interview.ErrSessionNotFound, id)
		}
		return err
	}
	return nil
}

func (s *PostgresStore) GetEvaluation(ctx context.Context, sessionID string) (*interview.Evaluation, error) {
	row, err := s.client.InterviewEvaluation.Query().
		Where(enteval.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: session %s", interview.ErrEvaluationNotFound, sessionID)
		}
		return nil, err
	}
	return mapEvaluation(row), nil
}

func (s *PostgresStore) SaveEvaluation(ctx context.Context, e *interview.Evaluation) (*interview.Evaluation, error) {
	row, err := s.client.InterviewEvaluation.Create().
		SetSessionID(e.SessionID).
		SetTotalScore(e.TotalScore).
		SetTechnicalScore(e.TechnicalScore).
		SetCollaborationScore(e.CollaborationScore).
		SetProblemSolvingScore(e.ProblemSolvingScore).
		SetGrowthScore(e.GrowthScore).
		SetSummary(e.Summary).
		SetStrengths(e.Strengths).
		SetImprovements(e.Improvements).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// lost the insert race, the stored row wins
			return s.GetEvaluation(ctx, e.SessionID)
		}
		return nil, err
	}
	return mapEvaluation(row), nil
}

func mapSession(row *ent.InterviewSession) *interview.Session {
	return &interview.Session{
		ID:          row.ID,
		MemberID:    row.MemberID,
		CompanyID:   row.CompanyID,
		Field:       interview.FieldCategory(row.Field),
		Status:      interview.SessionStatus(row.Status),
		StartedAt:   row.StartedAt,
		CompletedAt: row.CompletedAt,
	}
}

func mapEvaluation(row *ent.InterviewEvaluation) *interview.Evaluation {
	return &interview.Evaluation{
		SessionID:           row.SessionID,
		TotalScore:          row.TotalScore,
		TechnicalScore:      row.TechnicalScore,
		CollaborationScore:  row.CollaborationScore,
		ProblemSolvingScore: row.ProblemSolvingScore,
		GrowthScore:         row.GrowthScore,
		Summary:             row.Summary,
		Strengths:           row.Strengths,
		Improvements:        row.Improvements,
	}
}
