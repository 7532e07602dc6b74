package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Report is an immutable signed snapshot of a completed assessment.
// Only archive_key changes after creation.
type Report struct {
	ent.Schema
}

func (Report) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.UUID("assessment_id", uuid.UUID{}).
			Immutable(),
		field.UUID("child_id", uuid.UUID{}).
			Immutable(),

		field.String("child_name").
			Immutable(),
		field.String("psychologist").
			Default("").
			Immutable(),

		// sha256 of the canonical snapshot
		field.String("signature").
			Immutable(),

		// Object key of the rendered PDF once archived.
		field.String("archive_key").
			Default(""),

		field.Text("data").
			Sensitive().
			Immutable(),
	}
}

func (Report) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("assessment_id"),
	}
}
