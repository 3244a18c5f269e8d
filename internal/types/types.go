// Package types holds the shared domain value types stored as JSON columns
// and passed between services. Keeping them in a leaf package lets both the
// ent schemas and the service layer reference them without import cycles.
package types

// RoadmapTopic is one ordered node of a subject's learning roadmap.
type RoadmapTopic struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Concept is one ordered concept entry of a chapter's generated content.
type Concept struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
}

// Video is a single recommended instructional video.
type Video struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	ChannelName  string `json:"channelName"`
}
