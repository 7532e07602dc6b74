package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Assessment is one testing session for a child. The whole session state
// lives in data as a sealed JSON document.
type Assessment struct {
	ent.Schema
}

func (Assessment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Assessment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),

		// Non-FK reference: deleting a child removes its assessments in the
		// same transaction.
		field.UUID("child_id", uuid.UUID{}).
			Immutable(),

		// Denormalized for list views.
		field.String("child_name"),

		// in_progress | completed
		field.String("status"),

		field.Text("data").
			Sensitive(),
	}
}

func (Assessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "child_id"),
		index.Fields("user_id", "status"),
	}
}
