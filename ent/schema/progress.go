package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Progress is the per-(student, subject) completion and engagement record.
// It is created by an explicit start action, mutated by completion/view
// actions, and never deleted.
type Progress struct {
	ent.Schema
}

func (Progress) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty().
			Immutable(),
		field.UUID("subject_id", uuid.UUID{}).
			Immutable(),
		field.String("subject_name").
			Default(""),
		field.Int("total_chapters").
			Default(0).
			NonNegative(),
		field.JSON("completed_chapter_ids", []string{}).
			Optional(),
		field.JSON("notes_viewed_chapter_ids", []string{}).
			Optional(),
		field.JSON("videos_viewed_chapter_ids", []string{}).
			Optional(),
		field.Int("percent_complete").
			Default(0).
			Range(0, 100),
		field.Enum("status").
			Values("not-started", "in-progress", "completed").
			Default("not-started"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Progress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("student_id", "subject_id").Unique(),
	}
}
