package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/EAGLE1309/placecraft-sub002/internal/apperr"
	"github.com/EAGLE1309/placecraft-sub002/internal/chapters"
	"github.com/EAGLE1309/placecraft-sub002/internal/store"
)

// ChapterService is the part of the chapters service the handlers use.
type ChapterService interface {
	GetOrGenerate(ctx context.Context, subjectID uuid.UUID) (*chapters.ListResult, error)
	GetBySubjectID(ctx context.Context, subjectID uuid.UUID) ([]*store.Chapter, error)
	GetWithContent(ctx context.Context, chapterID uuid.UUID) (*store.Chapter, bool, error)
}

type ChapterHandler struct {
	svc ChapterService
}

func NewChapterHandler(svc ChapterService) *ChapterHandler {
	return &ChapterHandler{svc: svc}
}

// GET /api/chapters?subjectId=...
// Cache-only: never triggers generation.
func (h *ChapterHandler) List(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Query("subjectId"))
	if err != nil {
		respondError(c, apperr.Validation("invalid subjectId"))
		return
	}

	list, err := h.svc.GetBySubjectID(c.Request.Context(), subjectID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"chapters":    toChapterViews(list),
		"cached":      true,
		"hasChapters": len(list) > 0,
	})
}

type generateChaptersRequest struct {
	SubjectID string `json:"subjectId" binding:"required"`
}

// POST /api/chapters
func (h *ChapterHandler) Generate(c *gin.Context) {
	var req generateChaptersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("subjectId is required"))
		return
	}
	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		respondError(c, apperr.Validation("invalid subjectId"))
		return
	}

	res, err := h.svc.GetOrGenerate(c.Request.Context(), subjectID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"chapters": toChapterViews(res.Chapters),
		"cached":   res.Cached,
	})
}

// GET /api/chapters/:chapterId/content
func (h *ChapterHandler) Content(c *gin.Context) {
	chapterID, err := uuid.Parse(c.Param("chapterId"))
	if err != nil {
		respondError(c, apperr.Validation("invalid chapterId"))
		return
	}

	chapter, cached, err := h.svc.GetWithContent(c.Request.Context(), chapterID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"chapter": toChapterView(chapter),
		"cached":  cached,
	})
}
