package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/EAGLE1309/placecraft-sub002/internal/types"
)

// Chapter is one ordered unit of a subject's content. Chapters are written
// as a single batch per subject; overview/concepts are filled in later,
// once, by the content service.
type Chapter struct {
	ent.Schema
}

func (Chapter) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("subject_id", uuid.UUID{}).
			Immutable(),
		field.Int("order").
			Immutable().
			Comment("Dense 0-based position within the subject"),
		field.String("title").
			NotEmpty().
			Immutable(),
		field.String("summary").
			Default("").
			Immutable().
			Comment("One-line synopsis from chapter-list generation"),
		field.Text("overview").
			Optional().
			Comment("Long-form overview; empty until content generation"),
		field.JSON("concepts", []types.Concept{}).
			Optional().
			Comment("Ordered concept entries; nil until content generation"),
		field.Time("content_generated_at").
			Optional().
			Nillable(),
	}
}

func (Chapter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
		index.Fields("subject_id", "order").Unique(),
	}
}
