package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InterviewSession holds the schema definition for one interview attempt.
type InterviewSession struct {
	ent.Schema
}

func (InterviewSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("member_id").
			NotEmpty(),
		field.String("company_id").
			NotEmpty(),
		field.String("field").
			NotEmpty(),
		field.String("status").
			Default("IN_PROGRESS"),
		field.Time("started_at"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (InterviewSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("member_id"),
	}
}
