package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompanyReview holds one ingested interview review excerpt, keyed by
// company and job field for sampling.
type CompanyReview struct {
	ent.Schema
}

func (CompanyReview) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Unique().
			Immutable(),
		field.String("company_id").
			NotEmpty(),
		field.String("field").
			NotEmpty(),
		field.String("difficulty").
			Default(""),
		field.Text("questions_text").
			Default(""),
		field.Text("summary_text").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (CompanyReview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "field"),
	}
}
