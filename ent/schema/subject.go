package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/EAGLE1309/placecraft-sub002/internal/types"
)

// Subject is a skill's generated roadmap and identity.
// Immutable after creation; re-generation is disallowed.
type Subject struct {
	ent.Schema
}

func (Subject) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("skill_key").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Trimmed, case-folded skill name; one subject per key"),
		field.String("display_name").
			NotEmpty().
			Immutable().
			Comment("Skill name as the learner typed it"),
		field.String("learning_type").
			Default("").
			Immutable().
			Comment("Optional learning style hint passed to generation"),
		field.JSON("roadmap", []types.RoadmapTopic{}).
			Comment("Ordered topic nodes; chapter order mirrors this"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Subject) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_key"),
	}
}
