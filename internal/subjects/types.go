package subjects

import "github.com/EAGLE1309/placecraft-sub002/internal/store"

// Result is a resolved subject plus whether it came from the cache.
type Result struct {
	Subject *store.Subject
	Cached  bool
}

// roadmapOutput mirrors the roadmap generation schema.
type roadmapOutput struct {
	Topics []topicOutput `json:"topics"`
}

type topicOutput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
