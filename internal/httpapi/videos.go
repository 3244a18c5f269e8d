package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/EAGLE1309/placecraft-sub002/internal/apperr"
	"github.com/EAGLE1309/placecraft-sub002/internal/videos"
)

// VideoService is the part of the videos service the handlers use.
type VideoService interface {
	GetOrFetch(ctx context.Context, chapterID uuid.UUID) (*videos.Result, error)
}

type VideoHandler struct {
	svc VideoService
}

func NewVideoHandler(svc VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// GET /api/chapters/:chapterId/videos
func (h *VideoHandler) GetOrFetch(c *gin.Context) {
	chapterID, err := uuid.Parse(c.Param("chapterId"))
	if err != nil {
		respondError(c, apperr.Validation("invalid chapterId"))
		return
	}

	res, err := h.svc.GetOrFetch(c.Request.Context(), chapterID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"videos":      res.Videos,
		"cached":      res.Cached,
		"fallbackUrl": res.FallbackURL,
	})
}
