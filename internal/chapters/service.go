package chapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/EAGLE1309/placecraft-sub002/internal/apperr"
	"github.com/EAGLE1309/placecraft-sub002/internal/llm"
	"github.com/EAGLE1309/placecraft-sub002/internal/logger"
	"github.com/EAGLE1309/placecraft-sub002/internal/store"
	"github.com/EAGLE1309/placecraft-sub002/internal/types"
)

// Service resolves a subject's chapters cache-first. The chapter list is
// generated and persisted as one atomic batch; long-form content is filled
// in per chapter on first request.
type Service struct {
	subjects store.SubjectRepo
	repo     store.ChapterRepo
	provider llm.Provider
	log      *logger.Logger
	cfg      Config

	listFlight    singleflight.Group
	contentFlight singleflight.Group
}

// NewService creates a chapter resolver.
func NewService(subjects store.SubjectRepo, repo store.ChapterRepo, provider llm.Provider, log *logger.Logger, cfg Config) *Service {
	return &Service{
		subjects: subjects,
		repo:     repo,
		provider: provider,
		log:      log.With("service", "chapters"),
		cfg:      cfg,
	}
}

// GetOrGenerate returns the subject's chapter list, generating and persisting
// it when none exists. Concurrent calls for the same subject share one
// generation, and the batch write is all-or-nothing so a subject never ends
// up with a partial list.
func (s *Service) GetOrGenerate(ctx context.Context, subjectID uuid.UUID) (*ListResult, error) {
	subject, err := s.subjects.GetByID(ctx, subjectID)
	if err != nil {
		return nil, apperr.Store("subject lookup", err)
	}
	if subject == nil {
		return nil, apperr.NotFound("subject", subjectID.String())
	}

	existing, err := s.repo.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, apperr.Store("chapter list", err)
	}
	if len(existing) > 0 {
		return &ListResult{Chapters: existing, Cached: true}, nil
	}

	v, err, _ := s.listFlight.Do(subjectID.String(), func() (any, error) {
		// Another flight member may have finished between our read and
		// this call.
		cached, err := s.repo.ListBySubject(ctx, subjectID)
		if err != nil {
			return nil, apperr.Store("chapter list", err)
		}
		if len(cached) > 0 {
			return &ListResult{Chapters: cached, Cached: true}, nil
		}

		drafts, err := s.generateList(ctx, subject)
		if err != nil {
			return nil, err
		}

		created, err := s.repo.CreateBatch(ctx, drafts)
		if err != nil {
			return nil, apperr.Store("chapter batch create", err)
		}
		s.log.Info("chapters created", "subject_id", subjectID, "chapters", len(created))
		return &ListResult{Chapters: created, Cached: false}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*ListResult), nil
}

// GetBySubjectID returns the subject's chapters from the cache.
// Pure lookup: an ungenerated subject yields an empty list.
func (s *Service) GetBySubjectID(ctx context.Context, subjectID uuid.UUID) ([]*store.Chapter, error) {
	subject, err := s.subjects.GetByID(ctx, subjectID)
	if err != nil {
		return nil, apperr.Store("subject lookup", err)
	}
	if subject == nil {
		return nil, apperr.NotFound("subject", subjectID.String())
	}
	list, err := s.repo.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, apperr.Store("chapter list", err)
	}
	return list, nil
}

// GetByID returns the chapter with the given id.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*store.Chapter, error) {
	ch, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Store("chapter lookup", err)
	}
	if ch == nil {
		return nil, apperr.NotFound("chapter", id.String())
	}
	return ch, nil
}

// GetWithContent returns the chapter with its overview and concepts filled,
// generating them on first request. Once generated, content never changes.
func (s *Service) GetWithContent(ctx context.Context, chapterID uuid.UUID) (*store.Chapter, bool, error) {
	ch, err := s.GetByID(ctx, chapterID)
	if err != nil {
		return nil, false, err
	}
	if ch.HasContent() {
		return ch, true, nil
	}

	type contentResult struct {
		chapter *store.Chapter
		cached  bool
	}

	v, err, _ := s.contentFlight.Do(chapterID.String(), func() (any, error) {
		cached, err := s.repo.GetByID(ctx, chapterID)
		if err != nil {
			return nil, apperr.Store("chapter lookup", err)
		}
		if cached == nil {
			return nil, apperr.NotFound("chapter", chapterID.String())
		}
		if cached.HasContent() {
			return &contentResult{chapter: cached, cached: true}, nil
		}

		subject, err := s.subjects.GetByID(ctx, cached.SubjectID)
		if err != nil {
			return nil, apperr.Store("subject lookup", err)
		}
		if subject == nil {
			return nil, apperr.NotFound("subject", cached.SubjectID.String())
		}

		overview, concepts, err := s.generateContent(ctx, cached, subject)
		if err != nil {
			return nil, err
		}

		updated, err := s.repo.AttachContent(ctx, chapterID, overview, concepts, time.Now().UTC())
		if err != nil {
			return nil, apperr.Store("chapter content attach", err)
		}
		s.log.Info("chapter content generated", "chapter_id", chapterID, "concepts", len(concepts))
		return &contentResult{chapter: updated, cached: false}, nil
	})
	if err != nil {
		return nil, false, err
	}
	res := v.(*contentResult)
	return res.chapter, res.cached, nil
}

func (s *Service) generateList(ctx context.Context, subject *store.Subject) ([]*store.Chapter, error) {
	ctx = llm.WithPurpose(ctx, "chapters")

	req := llm.Request{
		System: chapterListSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildChapterListUserMessage(subject)},
		},
		Schema:      ChapterListSchema,
		MaxTokens:   s.cfg.ListMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, &apperr.GenerationError{Purpose: "chapters", Err: err}
	}

	var out chapterListOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &apperr.GenerationError{Purpose: "chapters", Err: fmt.Errorf("parse response: %w", err)}
	}
	if len(out.Chapters) == 0 {
		return nil, &apperr.GenerationError{Purpose: "chapters", Err: fmt.Errorf("empty chapter list")}
	}

	drafts := make([]*store.Chapter, len(out.Chapters))
	for i, c := range out.Chapters {
		if strings.TrimSpace(c.Title) == "" {
			return nil, &apperr.GenerationError{Purpose: "chapters", Err: fmt.Errorf("chapter %d has no title", i)}
		}
		drafts[i] = &store.Chapter{
			SubjectID: subject.ID,
			Order:     i,
			Title:     c.Title,
			Summary:   c.Summary,
		}
	}
	return drafts, nil
}

func (s *Service) generateContent(ctx context.Context, ch *store.Chapter, subject *store.Subject) (string, []types.Concept, error) {
	ctx = llm.WithPurpose(ctx, "chapter-content")

	req := llm.Request{
		System: chapterContentSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildChapterContentUserMessage(ch, subject)},
		},
		Schema:      ChapterContentSchema,
		MaxTokens:   s.cfg.ContentMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", nil, &apperr.GenerationError{Purpose: "chapter-content", Err: err}
	}

	var out contentOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", nil, &apperr.GenerationError{Purpose: "chapter-content", Err: fmt.Errorf("parse response: %w", err)}
	}
	if strings.TrimSpace(out.Overview) == "" {
		return "", nil, &apperr.GenerationError{Purpose: "chapter-content", Err: fmt.Errorf("empty overview")}
	}
	if len(out.Concepts) == 0 {
		return "", nil, &apperr.GenerationError{Purpose: "chapter-content", Err: fmt.Errorf("no concepts")}
	}

	concepts := make([]types.Concept, len(out.Concepts))
	for i, c := range out.Concepts {
		concepts[i] = types.Concept{Title: c.Title, Explanation: c.Explanation}
	}
	return out.Overview, concepts, nil
}
