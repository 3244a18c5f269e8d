package notes

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
)

// Result is a chapter's notes plus whether they came from the cache.
type Result struct {
	Note   *store.Note
	Cached bool
}

// ContentProvider returns a chapter with its overview and concepts present,
// generating them first when missing.
type ContentProvider interface {
	GetWithContent(ctx context.Context, chapterID uuid.UUID) (*store.Chapter, bool, error)
}

// Service resolves per-chapter study notes cache-first. Notes are only ever
// created by an explicit call here, never as a side effect of another
// operation.
type Service struct {
	repo     store.NoteRepo
	content  ContentProvider
	provider llm.Provider
	log      *logger.Logger
	cfg      Config

	flight singleflight.Group
}

// NewService creates a notes resolver.
func NewService(repo store.NoteRepo, content ContentProvider, provider llm.Provider, log *logger.Logger, cfg Config) *Service {
	return &Service{
		repo:     repo,
		content:  content,
		provider: provider,
		log:      log.With("service", "notes"),
		cfg:      cfg,
	}
}

// GetOrGenerate returns the chapter's notes, generating and persisting them
// when none exist. Chapter content is generated first when the chapter has
// none yet, since notes are written from the overview and concepts.
func (s *Service) GetOrGenerate(ctx context.Context, chapterID uuid.UUID) (*Result, error) {
	existing, err := s.repo.GetByChapter(ctx, chapterID)
	if err != nil {
		return nil, apperr.Store("notes lookup", err)
	}
	if existing != nil {
		return &Result{Note: existing, Cached: true}, nil
	}

	v, err, _ := s.flight.Do(chapterID.String(), func() (any, error) {
		cached, err := s.repo.GetByChapter(ctx, chapterID)
		if err != nil {
			return nil, apperr.Store("notes lookup", err)
		}
		if cached != nil {
			return &Result{Note: cached, Cached: true}, nil
		}

		chapter, _, err := s.content.GetWithContent(ctx, chapterID)
		if err != nil {
			return nil, err
		}

		text, err := s.generateNotes(ctx, chapter)
		if err != nil {
			return nil, err
		}

		created, err := s.repo.Create(ctx, &store.Note{
			ChapterID:   chapterID,
			Content:     text,
			GeneratedAt: time.Now().UTC(),
		})
		if err != nil {
			return nil, apperr.Store("notes create", err)
		}
		s.log.Info("notes created", "chapter_id", chapterID, "chars", len(created.Content))
		return &Result{Note: created, Cached: false}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}

func (s *Service) generateNotes(ctx context.Context, chapter *store.Chapter) (string, error) {
	ctx = llm.WithPurpose(ctx, "notes")

	req := llm.Request{
		System: notesSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildNotesUserMessage(chapter)},
		},
		Schema:      NotesSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", &apperr.GenerationError{Purpose: "notes", Err: err}
	}

	var out struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", &apperr.GenerationError{Purpose: "notes", Err: fmt.Errorf("parse response: %w", err)}
	}
	if strings.TrimSpace(out.Content) == "" {
		return "", &apperr.GenerationError{Purpose: "notes", Err: fmt.Errorf("empty notes")}
	}
	return out.Content, nil
}
