package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/EAGLE1309/placecraft-sub002/internal/apperr"
	"github.com/EAGLE1309/placecraft-sub002/internal/store"
	"github.com/EAGLE1309/placecraft-sub002/internal/subjects"
)

// SubjectService is the part of the subjects service the handlers use.
type SubjectService interface {
	GetOrGenerate(ctx context.Context, skillName, learningType string) (*subjects.Result, error)
	CheckExists(ctx context.Context, skillName string) (bool, *store.Subject, error)
	GetByID(ctx context.Context, id uuid.UUID) (*store.Subject, error)
}

type SubjectHandler struct {
	svc SubjectService
}

func NewSubjectHandler(svc SubjectService) *SubjectHandler {
	return &SubjectHandler{svc: svc}
}

// GET /api/subjects?subjectId=...
func (h *SubjectHandler) Get(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Query("subjectId"))
	if err != nil {
		respondError(c, apperr.Validation("invalid subjectId"))
		return
	}
	subj, err := h.svc.GetByID(c.Request.Context(), subjectID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"subject": toSubjectView(subj)})
}

// GET /api/subjects/check?skillName=...
// Pure lookup, never generates.
func (h *SubjectHandler) Check(c *gin.Context) {
	skillName := c.Query("skillName")
	if skillName == "" {
		respondError(c, apperr.Validation("skillName is required"))
		return
	}
	exists, subj, err := h.svc.CheckExists(c.Request.Context(), skillName)
	if err != nil {
		respondError(c, err)
		return
	}
	payload := gin.H{"exists": exists}
	if subj != nil {
		payload["subject"] = toSubjectView(subj)
	}
	respondOK(c, payload)
}

type generateSubjectRequest struct {
	SkillName    string `json:"skillName" binding:"required"`
	LearningType string `json:"learningType"`
}

// POST /api/subjects
func (h *SubjectHandler) Generate(c *gin.Context) {
	var req generateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("skillName is required"))
		return
	}

	res, err := h.svc.GetOrGenerate(c.Request.Context(), req.SkillName, req.LearningType)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"subject": toSubjectView(res.Subject),
		"cached":  res.Cached,
	})
}
