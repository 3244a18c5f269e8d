package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/EAGLE1309/placecraft-sub002/internal/apperr"
	"github.com/EAGLE1309/placecraft-sub002/internal/notes"
)

// NoteService is the part of the notes service the handlers use.
type NoteService interface {
	GetOrGenerate(ctx context.Context, chapterID uuid.UUID) (*notes.Result, error)
}

type NoteHandler struct {
	svc NoteService
}

func NewNoteHandler(svc NoteService) *NoteHandler {
	return &NoteHandler{svc: svc}
}

// POST /api/chapters/:chapterId/notes
func (h *NoteHandler) GetOrGenerate(c *gin.Context) {
	chapterID, err := uuid.Parse(c.Param("chapterId"))
	if err != nil {
		respondError(c, apperr.Validation("invalid chapterId"))
		return
	}

	res, err := h.svc.GetOrGenerate(c.Request.Context(), chapterID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"notes":  toNoteView(res.Note),
		"cached": res.Cached,
	})
}
