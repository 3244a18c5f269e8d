package videos

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/EAGLE1309/placecraft-sub002/internal/apperr"
	"github.com/EAGLE1309/placecraft-sub002/internal/logger"
	"github.com/EAGLE1309/placecraft-sub002/internal/store"
	"github.com/EAGLE1309/placecraft-sub002/internal/types"
)

// maxVideos caps how many results are persisted per chapter.
const maxVideos = 5

// Result is a chapter's video recommendations. Videos may be empty with a
// usable FallbackURL when the search service is down or found nothing.
type Result struct {
	Videos      []types.Video
	FallbackURL string
	Cached      bool
}

// Searcher finds instructional videos for a query, ranked best-first.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]types.Video, error)
}

// Service resolves per-chapter video recommendations cache-first with a
// degraded mode: when the search fails or finds nothing, callers get an
// empty list plus a search-site link, and nothing is cached so the next
// call retries.
type Service struct {
	repo     store.VideoRepo
	chapters store.ChapterRepo
	subjects store.SubjectRepo
	searcher Searcher
	log      *logger.Logger

	flight singleflight.Group
}

// NewService creates a video recommendation resolver.
func NewService(repo store.VideoRepo, chapters store.ChapterRepo, subjects store.SubjectRepo, searcher Searcher, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		chapters: chapters,
		subjects: subjects,
		searcher: searcher,
		log:      log.With("service", "videos"),
	}
}

// GetOrFetch returns the chapter's videos, fetching and persisting them on
// first success. Search failures and empty results degrade to an empty list
// with the fallback link and are not persisted.
func (s *Service) GetOrFetch(ctx context.Context, chapterID uuid.UUID) (*Result, error) {
	chapter, err := s.chapters.GetByID(ctx, chapterID)
	if err != nil {
		return nil, apperr.Store("chapter lookup", err)
	}
	if chapter == nil {
		return nil, apperr.NotFound("chapter", chapterID.String())
	}

	existing, err := s.repo.GetByChapter(ctx, chapterID)
	if err != nil {
		return nil, apperr.Store("video lookup", err)
	}
	if existing != nil {
		return &Result{Videos: existing.Videos, FallbackURL: existing.FallbackURL, Cached: true}, nil
	}

	subject, err := s.subjects.GetByID(ctx, chapter.SubjectID)
	if err != nil {
		return nil, apperr.Store("subject lookup", err)
	}
	if subject == nil {
		return nil, apperr.NotFound("subject", chapter.SubjectID.String())
	}

	v, err, _ := s.flight.Do(chapterID.String(), func() (any, error) {
		cached, err := s.repo.GetByChapter(ctx, chapterID)
		if err != nil {
			return nil, apperr.Store("video lookup", err)
		}
		if cached != nil {
			return &Result{Videos: cached.Videos, FallbackURL: cached.FallbackURL, Cached: true}, nil
		}

		query := buildQuery(chapter, subject)
		fallback := fallbackURL(query)

		found, err := s.searcher.Search(ctx, query, maxVideos)
		if err != nil || len(found) == 0 {
			if err != nil {
				s.log.Warn("video search failed, degrading", "chapter_id", chapterID, "error", err)
			}
			return &Result{Videos: []types.Video{}, FallbackURL: fallback, Cached: false}, nil
		}
		if len(found) > maxVideos {
			found = found[:maxVideos]
		}

		created, err := s.repo.Create(ctx, &store.VideoSet{
			ChapterID:   chapterID,
			Videos:      found,
			FallbackURL: fallback,
			FetchedAt:   time.Now().UTC(),
		})
		if err != nil {
			return nil, apperr.Store("video set create", err)
		}
		s.log.Info("videos cached", "chapter_id", chapterID, "videos", len(created.Videos))
		return &Result{Videos: created.Videos, FallbackURL: created.FallbackURL, Cached: false}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}

func buildQuery(chapter *store.Chapter, subject *store.Subject) string {
	return fmt.Sprintf("%s %s tutorial", subject.DisplayName, chapter.Title)
}

func fallbackURL(query string) string {
	return "https://www.youtube.com/results?search_query=" + url.QueryEscape(query)
}
