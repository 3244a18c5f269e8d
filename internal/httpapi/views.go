package httpapi

import (
	"time"

	"github.com/EAGLE1309/placecraft-sub002/internal/store"
	"github.com/EAGLE1309/placecraft-sub002/internal/types"
)

// JSON views of the stored records. Kept separate from the store types so
// wire field names can stay stable if the store changes.

type subjectView struct {
	ID           string               `json:"id"`
	SkillKey     string               `json:"skillKey"`
	DisplayName  string               `json:"displayName"`
	LearningType string               `json:"learningType,omitempty"`
	Roadmap      []types.RoadmapTopic `json:"roadmap"`
	CreatedAt    time.Time            `json:"createdAt"`
}

func toSubjectView(s *store.Subject) subjectView {
	return subjectView{
		ID:           s.ID.String(),
		SkillKey:     s.SkillKey,
		DisplayName:  s.DisplayName,
		LearningType: s.LearningType,
		Roadmap:      s.Roadmap,
		CreatedAt:    s.CreatedAt,
	}
}

type chapterView struct {
	ID                 string          `json:"id"`
	SubjectID          string          `json:"subjectId"`
	Order              int             `json:"order"`
	Title              string          `json:"title"`
	Summary            string          `json:"summary,omitempty"`
	Overview           string          `json:"overview,omitempty"`
	Concepts           []types.Concept `json:"concepts,omitempty"`
	ContentGeneratedAt *time.Time      `json:"contentGeneratedAt,omitempty"`
}

func toChapterView(c *store.Chapter) chapterView {
	return chapterView{
		ID:                 c.ID.String(),
		SubjectID:          c.SubjectID.String(),
		Order:              c.Order,
		Title:              c.Title,
		Summary:            c.Summary,
		Overview:           c.Overview,
		Concepts:           c.Concepts,
		ContentGeneratedAt: c.ContentGeneratedAt,
	}
}

func toChapterViews(chapters []*store.Chapter) []chapterView {
	out := make([]chapterView, len(chapters))
	for i, c := range chapters {
		out[i] = toChapterView(c)
	}
	return out
}

type noteView struct {
	ChapterID   string    `json:"chapterId"`
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generatedAt"`
}

func toNoteView(n *store.Note) noteView {
	return noteView{
		ChapterID:   n.ChapterID.String(),
		Content:     n.Content,
		GeneratedAt: n.GeneratedAt,
	}
}

type progressView struct {
	StudentID              string     `json:"studentId"`
	SubjectID              string     `json:"subjectId"`
	SubjectName            string     `json:"subjectName,omitempty"`
	TotalChapters          int        `json:"totalChapters"`
	CompletedChapterIDs    []string   `json:"completedChapterIds"`
	NotesViewedChapterIDs  []string   `json:"notesViewedChapterIds"`
	VideosViewedChapterIDs []string   `json:"videosViewedChapterIds"`
	PercentComplete        int        `json:"percentComplete"`
	Status                 string     `json:"status"`
	StartedAt              time.Time  `json:"startedAt"`
	CompletedAt            *time.Time `json:"completedAt,omitempty"`
}

func toProgressView(p *store.Progress) progressView {
	return progressView{
		StudentID:              p.StudentID,
		SubjectID:              p.SubjectID.String(),
		SubjectName:            p.SubjectName,
		TotalChapters:          p.TotalChapters,
		CompletedChapterIDs:    emptyIfNil(p.CompletedChapterIDs),
		NotesViewedChapterIDs:  emptyIfNil(p.NotesViewedChapterIDs),
		VideosViewedChapterIDs: emptyIfNil(p.VideosViewedChapterIDs),
		PercentComplete:        p.PercentComplete,
		Status:                 string(p.Status),
		StartedAt:              p.StartedAt,
		CompletedAt:            p.CompletedAt,
	}
}

func toProgressViews(list []*store.Progress) []progressView {
	out := make([]progressView, len(list))
	for i, p := range list {
		out[i] = toProgressView(p)
	}
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
