package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Member holds the schema definition for the Member entity.
type Member struct {
	ent.Schema
}

func (Member) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("email").
			Unique().
			NotEmpty(),
		field.String("name").
			Default(""),
		field.String("job_field").
			Default(""),
		field.String("preferred_field").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
