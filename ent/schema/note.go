package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Note holds the lazily generated study notes for a single chapter.
// Created only on explicit request and never regenerated once present.
type Note struct {
	ent.Schema
}

func (Note) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("chapter_id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.Text("content").
			NotEmpty(),
		field.Time("generated_at").
			Default(time.Now).
			Immutable(),
	}
}
