package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"

	"github.com/EAGLE1309/placecraft-sub002/internal/types"
)

// VideoSet caches the curated video recommendations for a chapter.
// Only successful fetches are persisted; failed or empty searches leave
// no record so the next request retries.
type VideoSet struct {
	ent.Schema
}

func (VideoSet) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("chapter_id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.JSON("videos", []types.Video{}).
			Comment("Ranked results, capped at the service maximum"),
		field.String("fallback_url").
			NotEmpty().
			Comment("Templated search link usable even without stored videos"),
		field.Time("fetched_at").
			Default(time.Now).
			Immutable(),
	}
}
