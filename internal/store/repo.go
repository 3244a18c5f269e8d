package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/EAGLE1309/placecraft-sub002/internal/types"
)

// Subject is a skill's generated roadmap and identity.
type Subject struct {
	ID           uuid.UUID
	SkillKey     string
	DisplayName  string
	LearningType string
	Roadmap      []types.RoadmapTopic
	CreatedAt    time.Time
}

// Chapter is one ordered unit of a subject's content.
type Chapter struct {
	ID                 uuid.UUID
	SubjectID          uuid.UUID
	Order              int
	Title              string
	Summary            string
	Overview           string
	Concepts           []types.Concept
	ContentGeneratedAt *time.Time
}

// HasContent reports whether overview and concepts have been generated.
func (c *Chapter) HasContent() bool {
	return c.Overview != "" && len(c.Concepts) > 0
}

// Note holds generated study notes for a chapter.
type Note struct {
	ChapterID   uuid.UUID
	Content     string
	GeneratedAt time.Time
}

// VideoSet holds the cached video recommendations for a chapter.
type VideoSet struct {
	ChapterID   uuid.UUID
	Videos      []types.Video
	FallbackURL string
	FetchedAt   time.Time
}

// Status is the progress state for a (student, subject) pair.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Progress is the per-(student, subject) completion record.
type Progress struct {
	StudentID              string
	SubjectID              uuid.UUID
	SubjectName            string
	TotalChapters          int
	CompletedChapterIDs    []string
	NotesViewedChapterIDs  []string
	VideosViewedChapterIDs []string
	PercentComplete        int
	Status                 Status
	StartedAt              time.Time
	CompletedAt            *time.Time
}

// SubjectRepo persists subjects. Lookups return (nil, nil) when absent.
type SubjectRepo interface {
	// Create persists a new subject. When another writer already created a
	// subject with the same skill key, the existing row is returned instead.
	Create(ctx context.Context, s *Subject) (*Subject, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Subject, error)
	GetBySkillKey(ctx context.Context, key string) (*Subject, error)
}

// ChapterRepo persists chapters.
type ChapterRepo interface {
	// CreateBatch writes all chapters of a subject in one transaction.
	// Either every chapter is persisted or none are.
	CreateBatch(ctx context.Context, chapters []*Chapter) ([]*Chapter, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Chapter, error)

	// ListBySubject returns the subject's chapters ordered by their
	// position, or an empty slice when none have been generated.
	ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]*Chapter, error)

	// AttachContent fills overview/concepts on an existing chapter and
	// returns the updated row.
	AttachContent(ctx context.Context, id uuid.UUID, overview string, concepts []types.Concept, at time.Time) (*Chapter, error)
}

// NoteRepo persists per-chapter study notes.
type NoteRepo interface {
	GetByChapter(ctx context.Context, chapterID uuid.UUID) (*Note, error)

	// Create persists new notes. When notes already exist for the chapter
	// (a racing writer won), the existing row is returned instead.
	Create(ctx context.Context, n *Note) (*Note, error)
}

// VideoRepo persists per-chapter video sets.
type VideoRepo interface {
	GetByChapter(ctx context.Context, chapterID uuid.UUID) (*VideoSet, error)

	// Create persists a new video set. When one already exists for the
	// chapter, the existing row is returned instead.
	Create(ctx context.Context, v *VideoSet) (*VideoSet, error)
}

// ProgressRepo persists progress records.
type ProgressRepo interface {
	Get(ctx context.Context, studentID string, subjectID uuid.UUID) (*Progress, error)

	// ListByStudent returns every record for the student ordered by
	// started_at, then subject id for records started in the same instant.
	ListByStudent(ctx context.Context, studentID string) ([]*Progress, error)

	// Create persists a new record. When one already exists for the
	// (student, subject) pair, the existing row is returned instead.
	Create(ctx context.Context, p *Progress) (*Progress, error)

	// Mutate applies fn to the stored record inside a transaction and
	// persists the result, preventing lost updates from concurrent
	// sessions. Returns (nil, nil) when no record exists.
	Mutate(ctx context.Context, studentID string, subjectID uuid.UUID, fn func(*Progress) error) (*Progress, error)
}

// QueryOpts configures LLM event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates token usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo records and queries LLM request telemetry.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns one event by id, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]*LLMPurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]*LLMModelUsage, error)
}
