package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InterviewQA holds one question (main or follow-up) within a session.
// The (session_id, main_order, follow_up_order) triple is unique.
type InterviewQA struct {
	ent.Schema
}

func (InterviewQA) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Unique().
			Immutable(),
		field.String("session_id").
			NotEmpty(),
		field.Int("main_order").
			Positive(),
		field.Int("follow_up_order").
			NonNegative(),
		field.Text("question_text").
			NotEmpty(),
		field.Text("answer_text").
			Optional().
			Nillable(),
		field.String("audio_ref").
			Default(""),
	}
}

func (InterviewQA) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "main_order", "follow_up_order").Unique(),
		index.Fields("session_id"),
	}
}
