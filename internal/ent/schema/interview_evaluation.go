package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// InterviewEvaluation holds the one-time scored assessment of a session.
// The unique session_id enforces at most one row per session.
type InterviewEvaluation struct {
	ent.Schema
}

func (InterviewEvaluation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Unique().
			Immutable(),
		field.String("session_id").
			Unique().
			NotEmpty(),
		field.Int("total_score"),
		field.Int("technical_score"),
		field.Int("collaboration_score"),
		field.Int("problem_solving_score"),
		field.Int("growth_score"),
		field.Text("summary").
			Default(""),
		field.Text("strengths").
			Default(""),
		field.Text("improvements").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
