package progress

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/EAGLE1309/placecraft-sub002/internal/apperr"
	"github.com/EAGLE1309/placecraft-sub002/internal/logger"
	"github.com/EAGLE1309/placecraft-sub002/internal/store"
)

// Service maintains per-(student, subject) completion state. It operates
// purely on identifiers and never triggers content generation.
type Service struct {
	repo store.ProgressRepo
	log  *logger.Logger
}

// NewService creates a progress tracker.
func NewService(repo store.ProgressRepo, log *logger.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("service", "progress"),
	}
}

// Start creates the progress record for (studentID, subjectID), or returns
// the existing one unchanged. Idempotent.
func (s *Service) Start(ctx context.Context, studentID string, subjectID uuid.UUID, subjectName string) (*store.Progress, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, apperr.Validation("studentId is required")
	}
	if strings.TrimSpace(subjectName) == "" {
		return nil, apperr.Validation("subjectName is required")
	}

	p, err := s.repo.Create(ctx, &store.Progress{
		StudentID:              studentID,
		SubjectID:              subjectID,
		SubjectName:            subjectName,
		TotalChapters:          0,
		CompletedChapterIDs:    []string{},
		NotesViewedChapterIDs:  []string{},
		VideosViewedChapterIDs: []string{},
		PercentComplete:        0,
		Status:                 store.StatusNotStarted,
		StartedAt:              time.Now().UTC(),
	})
	if err != nil {
		return nil, apperr.Store("progress create", err)
	}
	return p, nil
}

// MarkChapterComplete adds chapterID to the completed set, updates the
// chapter total and recomputes percent and status. Completing an already
// completed chapter changes nothing.
func (s *Service) MarkChapterComplete(ctx context.Context, studentID string, subjectID uuid.UUID, chapterID string, totalChapters int) (*store.Progress, error) {
	if strings.TrimSpace(chapterID) == "" {
		return nil, apperr.Validation("chapterId is required")
	}
	if totalChapters < 1 {
		return nil, apperr.Validation("totalChapters must be a positive chapter count")
	}

	return s.mutate(ctx, studentID, subjectID, func(p *store.Progress) error {
		p.CompletedChapterIDs = addToSet(p.CompletedChapterIDs, chapterID)
		p.TotalChapters = totalChapters
		recalc(p, time.Now().UTC())
		return nil
	})
}

// UnmarkChapterComplete removes chapterID from the completed set and
// recomputes. Unmarking an absent chapter changes nothing. A record that has
// ever had a completion never returns to not-started.
func (s *Service) UnmarkChapterComplete(ctx context.Context, studentID string, subjectID uuid.UUID, chapterID string, totalChapters int) (*store.Progress, error) {
	if strings.TrimSpace(chapterID) == "" {
		return nil, apperr.Validation("chapterId is required")
	}
	if totalChapters < 1 {
		return nil, apperr.Validation("totalChapters must be a positive chapter count")
	}

	return s.mutate(ctx, studentID, subjectID, func(p *store.Progress) error {
		p.CompletedChapterIDs = removeFromSet(p.CompletedChapterIDs, chapterID)
		p.TotalChapters = totalChapters
		recalc(p, time.Now().UTC())
		return nil
	})
}

// TrackNotesViewed records that the student opened the chapter's notes.
// Informational only, never changes percent or status.
func (s *Service) TrackNotesViewed(ctx context.Context, studentID string, subjectID uuid.UUID, chapterID string) (*store.Progress, error) {
	if strings.TrimSpace(chapterID) == "" {
		return nil, apperr.Validation("chapterId is required")
	}
	return s.mutate(ctx, studentID, subjectID, func(p *store.Progress) error {
		p.NotesViewedChapterIDs = addToSet(p.NotesViewedChapterIDs, chapterID)
		return nil
	})
}

// TrackVideosViewed records that the student opened the chapter's videos.
// Informational only, never changes percent or status.
func (s *Service) TrackVideosViewed(ctx context.Context, studentID string, subjectID uuid.UUID, chapterID string) (*store.Progress, error) {
	if strings.TrimSpace(chapterID) == "" {
		return nil, apperr.Validation("chapterId is required")
	}
	return s.mutate(ctx, studentID, subjectID, func(p *store.Progress) error {
		p.VideosViewedChapterIDs = addToSet(p.VideosViewedChapterIDs, chapterID)
		return nil
	})
}

// GetSubjectProgress returns the stored record and found=true, or a
// zero-value record and found=false when none exists. Never writes.
func (s *Service) GetSubjectProgress(ctx context.Context, studentID string, subjectID uuid.UUID) (*store.Progress, bool, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, false, apperr.Validation("studentId is required")
	}
	p, err := s.repo.Get(ctx, studentID, subjectID)
	if err != nil {
		return nil, false, apperr.Store("progress lookup", err)
	}
	if p == nil {
		return &store.Progress{
			StudentID:              studentID,
			SubjectID:              subjectID,
			CompletedChapterIDs:    []string{},
			NotesViewedChapterIDs:  []string{},
			VideosViewedChapterIDs: []string{},
			Status:                 store.StatusNotStarted,
		}, false, nil
	}
	return p, true, nil
}

// GetAllProgress returns every record for the student, oldest started first.
func (s *Service) GetAllProgress(ctx context.Context, studentID string) ([]*store.Progress, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, apperr.Validation("studentId is required")
	}
	list, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, apperr.Store("progress list", err)
	}
	return list, nil
}

func (s *Service) mutate(ctx context.Context, studentID string, subjectID uuid.UUID, fn func(*store.Progress) error) (*store.Progress, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, apperr.Validation("studentId is required")
	}
	p, err := s.repo.Mutate(ctx, studentID, subjectID, fn)
	if err != nil {
		return nil, apperr.Store("progress mutate", err)
	}
	if p == nil {
		return nil, apperr.NotFound("progress", studentID+"/"+subjectID.String())
	}
	return p, nil
}

// recalc recomputes percent, status and completedAt from the completed set.
// A record with any completion history never returns to not-started.
func recalc(p *store.Progress, now time.Time) {
	if p.TotalChapters <= 0 {
		p.PercentComplete = 0
	} else {
		pct := int(math.Round(100 * float64(len(p.CompletedChapterIDs)) / float64(p.TotalChapters)))
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		p.PercentComplete = pct
	}

	switch {
	case p.TotalChapters > 0 && p.PercentComplete == 100:
		if p.Status != store.StatusCompleted {
			p.Status = store.StatusCompleted
			if p.CompletedAt == nil {
				at := now
				p.CompletedAt = &at
			}
		}
	case len(p.CompletedChapterIDs) == 0 && p.Status == store.StatusNotStarted:
		// Never had a completion; stays not-started.
	default:
		p.Status = store.StatusInProgress
		p.CompletedAt = nil
	}
}

func addToSet(set []string, v string) []string {
	for _, s := range set {
		if s == v {
			return set
		}
	}
	return append(set, v)
}

func removeFromSet(set []string, v string) []string {
	out := set[:0]
	for _, s := range set {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}
