package videos

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/EAGLE1309/placecraft-sub002/internal/apperr"
	"github.com/EAGLE1309/placecraft-sub002/internal/logger"
	"github.com/EAGLE1309/placecraft-sub002/internal/store"
	"github.com/EAGLE1309/placecraft-sub002/internal/types"
)

// fakeVideoRepo is an in-memory VideoRepo with the real store's
// one-row-per-chapter behavior.
type fakeVideoRepo struct {
	mu        sync.Mutex
	byChapter map[uuid.UUID]*store.VideoSet
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{byChapter: map[uuid.UUID]*store.VideoSet{}}
}

func (f *fakeVideoRepo) GetByChapter(_ context.Context, chapterID uuid.UUID) (*store.VideoSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byChapter[chapterID], nil
}

func (f *fakeVideoRepo) Create(_ context.Context, v *store.VideoSet) (*store.VideoSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.byChapter[v.ChapterID]; ok {
		return existing, nil
	}
	cp := *v
	f.byChapter[v.ChapterID] = &cp
	return &cp, nil
}

type fakeChapterRepo struct {
	byID map[uuid.UUID]*store.Chapter
}

func (f *fakeChapterRepo) CreateBatch(_ context.Context, chapters []*store.Chapter) ([]*store.Chapter, error) {
	return chapters, nil
}

func (f *fakeChapterRepo) GetByID(_ context.Context, id uuid.UUID) (*store.Chapter, error) {
	return f.byID[id], nil
}

func (f *fakeChapterRepo) ListBySubject(_ context.Context, _ uuid.UUID) ([]*store.Chapter, error) {
	return []*store.Chapter{}, nil
}

func (f *fakeChapterRepo) AttachContent(_ context.Context, id uuid.UUID, _ string, _ []types.Concept, _ time.Time) (*store.Chapter, error) {
	return f.byID[id], nil
}

type fakeSubjectRepo struct {
	byID map[uuid.UUID]*store.Subject
}

func (f *fakeSubjectRepo) Create(_ context.Context, s *store.Subject) (*store.Subject, error) {
	return s, nil
}

func (f *fakeSubjectRepo) GetByID(_ context.Context, id uuid.UUID) (*store.Subject, error) {
	return f.byID[id], nil
}

func (f *fakeSubjectRepo) GetBySkillKey(_ context.Context, _ string) (*store.Subject, error) {
	return nil, nil
}

// fakeSearcher returns a canned result or error and counts calls.
type fakeSearcher struct {
	mu      sync.Mutex
	results []types.Video
	err     error
	calls   int
}

func (f *fakeSearcher) Search(_ context.Context, _ string, _ int) ([]types.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func (f *fakeSearcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testFixture() (*store.Subject, *store.Chapter, *fakeChapterRepo, *fakeSubjectRepo) {
	subject := &store.Subject{ID: uuid.New(), SkillKey: "react", DisplayName: "React"}
	chapter := &store.Chapter{ID: uuid.New(), SubjectID: subject.ID, Title: "State with Hooks"}
	chRepo := &fakeChapterRepo{byID: map[uuid.UUID]*store.Chapter{chapter.ID: chapter}}
	subjRepo := &fakeSubjectRepo{byID: map[uuid.UUID]*store.Subject{subject.ID: subject}}
	return subject, chapter, chRepo, subjRepo
}

func sampleVideos(n int) []types.Video {
	out := make([]types.Video, n)
	for i := range out {
		out[i] = types.Video{
			Title:       "Hooks explained",
			URL:         "https://www.youtube.com/watch?v=abc",
			ChannelName: "React School",
		}
	}
	return out
}

func TestGetOrFetch_FetchesAndCaches(t *testing.T) {
	_, chapter, chRepo, subjRepo := testFixture()
	repo := newFakeVideoRepo()
	search := &fakeSearcher{results: sampleVideos(3)}
	svc := NewService(repo, chRepo, subjRepo, search, logger.Nop())

	first, err := svc.GetOrFetch(context.Background(), chapter.ID)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if first.Cached {
		t.Error("first call should not be cached")
	}
	if len(first.Videos) != 3 {
		t.Fatalf("got %d videos, want 3", len(first.Videos))
	}
	if first.FallbackURL == "" {
		t.Error("fallback url should always be set")
	}

	second, err := svc.GetOrFetch(context.Background(), chapter.ID)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if !second.Cached {
		t.Error("second call should be cached")
	}
	if search.callCount() != 1 {
		t.Errorf("searcher called %d times, want 1", search.callCount())
	}
}

func TestGetOrFetch_UnknownChapter(t *testing.T) {
	_, _, _, subjRepo := testFixture()
	svc := NewService(newFakeVideoRepo(), &fakeChapterRepo{byID: map[uuid.UUID]*store.Chapter{}}, subjRepo, &fakeSearcher{}, logger.Nop())

	_, err := svc.GetOrFetch(context.Background(), uuid.New())
	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %T (%v)", err, err)
	}
}

func TestGetOrFetch_CapsStoredVideos(t *testing.T) {
	_, chapter, chRepo, subjRepo := testFixture()
	repo := newFakeVideoRepo()
	search := &fakeSearcher{results: sampleVideos(9)}
	svc := NewService(repo, chRepo, subjRepo, search, logger.Nop())

	res, err := svc.GetOrFetch(context.Background(), chapter.ID)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(res.Videos) != maxVideos {
		t.Errorf("got %d videos, want %d", len(res.Videos), maxVideos)
	}
	stored, _ := repo.GetByChapter(context.Background(), chapter.ID)
	if len(stored.Videos) != maxVideos {
		t.Errorf("stored %d videos, want %d", len(stored.Videos), maxVideos)
	}
}

func TestGetOrFetch_SearchFailureDegrades(t *testing.T) {
	subject, chapter, chRepo, subjRepo := testFixture()
	repo := newFakeVideoRepo()
	search := &fakeSearcher{err: &apperr.SearchServiceError{Err: errors.New("quota exceeded")}}
	svc := NewService(repo, chRepo, subjRepo, search, logger.Nop())

	res, err := svc.GetOrFetch(context.Background(), chapter.ID)
	if err != nil {
		t.Fatalf("degraded fetch should not error: %v", err)
	}
	if res.Cached {
		t.Error("degraded result must not claim cache")
	}
	if len(res.Videos) != 0 {
		t.Errorf("degraded result has %d videos, want 0", len(res.Videos))
	}
	if !strings.Contains(res.FallbackURL, "youtube.com/results") {
		t.Errorf("fallback url = %q, want a search link", res.FallbackURL)
	}
	if !strings.Contains(res.FallbackURL, "React") || !strings.Contains(res.FallbackURL, "Hooks") {
		t.Errorf("fallback url %q should carry subject %q and chapter title", res.FallbackURL, subject.DisplayName)
	}
	if len(repo.byChapter) != 0 {
		t.Error("failed fetch must not persist a video set")
	}

	// The next call retries and succeeds.
	search.mu.Lock()
	search.err = nil
	search.results = sampleVideos(2)
	search.mu.Unlock()

	retry, err := svc.GetOrFetch(context.Background(), chapter.ID)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if retry.Cached || len(retry.Videos) != 2 {
		t.Errorf("retry got cached=%v videos=%d, want fresh fetch with 2", retry.Cached, len(retry.Videos))
	}
}

func TestGetOrFetch_EmptyResultDegrades(t *testing.T) {
	_, chapter, chRepo, subjRepo := testFixture()
	repo := newFakeVideoRepo()
	search := &fakeSearcher{results: nil}
	svc := NewService(repo, chRepo, subjRepo, search, logger.Nop())

	res, err := svc.GetOrFetch(context.Background(), chapter.ID)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if res.Cached || len(res.Videos) != 0 || res.FallbackURL == "" {
		t.Errorf("want empty degraded result with fallback, got %+v", res)
	}
	if len(repo.byChapter) != 0 {
		t.Error("empty fetch must not persist a video set")
	}
}

func TestGetOrFetch_ConcurrentCallsShareOneFetch(t *testing.T) {
	_, chapter, chRepo, subjRepo := testFixture()
	search := &fakeSearcher{results: sampleVideos(2)}
	svc := NewService(newFakeVideoRepo(), chRepo, subjRepo, search, logger.Nop())

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.GetOrFetch(context.Background(), chapter.ID)
		}()
	}
	wg.Wait()

	for i := range callers {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
	}
	if search.callCount() != 1 {
		t.Errorf("searcher called %d times, want 1", search.callCount())
	}
}
