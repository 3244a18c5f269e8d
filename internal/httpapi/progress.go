package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/EAGLE1309/placecraft-sub002/internal/apperr"
	"github.com/EAGLE1309/placecraft-sub002/internal/store"
)

// ProgressService is the part of the progress tracker the handlers use.
type ProgressService interface {
	Start(ctx context.Context, studentID string, subjectID uuid.UUID, subjectName string) (*store.Progress, error)
	MarkChapterComplete(ctx context.Context, studentID string, subjectID uuid.UUID, chapterID string, totalChapters int) (*store.Progress, error)
	UnmarkChapterComplete(ctx context.Context, studentID string, subjectID uuid.UUID, chapterID string, totalChapters int) (*store.Progress, error)
	TrackNotesViewed(ctx context.Context, studentID string, subjectID uuid.UUID, chapterID string) (*store.Progress, error)
	TrackVideosViewed(ctx context.Context, studentID string, subjectID uuid.UUID, chapterID string) (*store.Progress, error)
	GetSubjectProgress(ctx context.Context, studentID string, subjectID uuid.UUID) (*store.Progress, bool, error)
	GetAllProgress(ctx context.Context, studentID string) ([]*store.Progress, error)
}

type ProgressHandler struct {
	svc ProgressService
}

func NewProgressHandler(svc ProgressService) *ProgressHandler {
	return &ProgressHandler{svc: svc}
}

// GET /api/progress?studentId=...&subjectId=...
// Without subjectId, returns every record for the student.
func (h *ProgressHandler) Get(c *gin.Context) {
	studentID := c.Query("studentId")
	if studentID == "" {
		respondError(c, apperr.Validation("studentId is required"))
		return
	}

	if id := c.Query("subjectId"); id != "" {
		subjectID, err := uuid.Parse(id)
		if err != nil {
			respondError(c, apperr.Validation("invalid subjectId"))
			return
		}
		p, found, err := h.svc.GetSubjectProgress(c.Request.Context(), studentID, subjectID)
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, gin.H{
			"progress": toProgressView(p),
			"found":    found,
		})
		return
	}

	list, err := h.svc.GetAllProgress(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"progressList": toProgressViews(list)})
}

type mutateProgressRequest struct {
	StudentID     string `json:"studentId" binding:"required"`
	SubjectID     string `json:"subjectId" binding:"required"`
	SubjectName   string `json:"subjectName"`
	Action        string `json:"action" binding:"required"`
	ChapterID     string `json:"chapterId"`
	TotalChapters int    `json:"totalChapters"`
}

// POST /api/progress
func (h *ProgressHandler) Mutate(c *gin.Context) {
	var req mutateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("studentId, subjectId and action are required"))
		return
	}
	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		respondError(c, apperr.Validation("invalid subjectId"))
		return
	}

	ctx := c.Request.Context()
	var p *store.Progress
	switch req.Action {
	case "start":
		p, err = h.svc.Start(ctx, req.StudentID, subjectID, req.SubjectName)
	case "complete-chapter":
		p, err = h.svc.MarkChapterComplete(ctx, req.StudentID, subjectID, req.ChapterID, req.TotalChapters)
	case "uncomplete-chapter":
		p, err = h.svc.UnmarkChapterComplete(ctx, req.StudentID, subjectID, req.ChapterID, req.TotalChapters)
	case "track-notes":
		p, err = h.svc.TrackNotesViewed(ctx, req.StudentID, subjectID, req.ChapterID)
	case "track-videos":
		p, err = h.svc.TrackVideosViewed(ctx, req.StudentID, subjectID, req.ChapterID)
	default:
		respondError(c, apperr.Validation("unknown action %q", req.Action))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"progress": toProgressView(p)})
}
