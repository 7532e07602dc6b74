package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Child is a person under assessment, owned by one psychologist.
type Child struct {
	ent.Schema
}

func (Child) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Child) Fields() []ent.Field {
	return []ent.Field{
		// Non-FK reference to the owning account.
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),

		field.String("name"),

		// Calendar date, YYYY-MM-DD.
		field.String("date_of_birth"),

		field.Text("notes").
			Default(""),
	}
}

func (Child) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
