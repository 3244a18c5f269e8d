package chapters

import "github.com/EAGLE1309/placecraft-sub002/internal/store"

// ListResult is a subject's chapter list plus whether it came from the cache.
type ListResult struct {
	Chapters []*store.Chapter
	Cached   bool
}

// chapterListOutput mirrors the chapter-list generation schema.
type chapterListOutput struct {
	Chapters []chapterOutput `json:"chapters"`
}

type chapterOutput struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// contentOutput mirrors the chapter-content generation schema.
type contentOutput struct {
	Overview string          `json:"overview"`
	Concepts []conceptOutput `json:"concepts"`
}

type conceptOutput struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
}
