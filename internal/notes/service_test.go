package notes

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/EAGLE1309/placecraft-sub002/internal/apperr"
	"github.com/EAGLE1309/placecraft-sub002/internal/llm"
	"github.com/EAGLE1309/placecraft-sub002/internal/logger"
	"github.com/EAGLE1309/placecraft-sub002/internal/store"
	"github.com/EAGLE1309/placecraft-sub002/internal/types"
)

// fakeNoteRepo is an in-memory NoteRepo with the real store's
// one-row-per-chapter behavior.
type fakeNoteRepo struct {
	mu        sync.Mutex
	byChapter map[uuid.UUID]*store.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{byChapter: map[uuid.UUID]*store.Note{}}
}

func (f *fakeNoteRepo) GetByChapter(_ context.Context, chapterID uuid.UUID) (*store.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byChapter[chapterID], nil
}

func (f *fakeNoteRepo) Create(_ context.Context, n *store.Note) (*store.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.byChapter[n.ChapterID]; ok {
		return existing, nil
	}
	cp := *n
	f.byChapter[n.ChapterID] = &cp
	return &cp, nil
}

// fakeContentProvider hands out chapters and records whether content had to
// be generated for them.
type fakeContentProvider struct {
	mu        sync.Mutex
	chapters  map[uuid.UUID]*store.Chapter
	generated map[uuid.UUID]int
}

func newFakeContentProvider(chapters ...*store.Chapter) *fakeContentProvider {
	f := &fakeContentProvider{
		chapters:  map[uuid.UUID]*store.Chapter{},
		generated: map[uuid.UUID]int{},
	}
	for _, c := range chapters {
		f.chapters[c.ID] = c
	}
	return f
}

func (f *fakeContentProvider) GetWithContent(_ context.Context, chapterID uuid.UUID) (*store.Chapter, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.chapters[chapterID]
	if !ok {
		return nil, false, apperr.NotFound("chapter", chapterID.String())
	}
	if c.HasContent() {
		return c, true, nil
	}
	f.generated[chapterID]++
	c.Overview = "Components are the building blocks of a React interface."
	c.Concepts = []types.Concept{
		{Title: "JSX", Explanation: "A syntax for describing UI in JavaScript."},
	}
	return c, false, nil
}

func chapterWithContent() *store.Chapter {
	return &store.Chapter{
		ID:       uuid.New(),
		Title:    "Thinking in Components",
		Overview: "Components are the building blocks of a React interface.",
		Concepts: []types.Concept{
			{Title: "JSX", Explanation: "A syntax for describing UI in JavaScript."},
			{Title: "Props", Explanation: "Read-only inputs a parent passes to a child."},
		},
	}
}

func validNotesJSON() json.RawMessage {
	return json.RawMessage(`{"content": "## Recap\n- Components compose UI.\n- Props flow down."}`)
}

func TestGetOrGenerate_GeneratesAndCaches(t *testing.T) {
	chapter := chapterWithContent()
	repo := newFakeNoteRepo()
	mock := llm.NewMockProvider(llm.MockResponse{Content: validNotesJSON()})
	svc := NewService(repo, newFakeContentProvider(chapter), mock, logger.Nop(), DefaultConfig())

	first, err := svc.GetOrGenerate(context.Background(), chapter.ID)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if first.Cached {
		t.Error("first call should not be cached")
	}
	if first.Note.ChapterID != chapter.ID {
		t.Errorf("notes bound to chapter %s, want %s", first.Note.ChapterID, chapter.ID)
	}
	if first.Note.GeneratedAt.IsZero() {
		t.Error("generated timestamp should be set")
	}

	second, err := svc.GetOrGenerate(context.Background(), chapter.ID)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if !second.Cached {
		t.Error("second call should be cached")
	}
	if second.Note.Content != first.Note.Content {
		t.Error("cached notes should be identical")
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}
}

func TestGetOrGenerate_UnknownChapter(t *testing.T) {
	svc := NewService(newFakeNoteRepo(), newFakeContentProvider(), llm.NewMockProvider(), logger.Nop(), DefaultConfig())

	_, err := svc.GetOrGenerate(context.Background(), uuid.New())
	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %T (%v)", err, err)
	}
}

func TestGetOrGenerate_FillsMissingChapterContentFirst(t *testing.T) {
	bare := &store.Chapter{ID: uuid.New(), Title: "State with Hooks"}
	content := newFakeContentProvider(bare)
	mock := llm.NewMockProvider(llm.MockResponse{Content: validNotesJSON()})
	svc := NewService(newFakeNoteRepo(), content, mock, logger.Nop(), DefaultConfig())

	res, err := svc.GetOrGenerate(context.Background(), bare.ID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.Cached {
		t.Error("first call should not be cached")
	}
	if content.generated[bare.ID] != 1 {
		t.Errorf("content generated %d times, want 1", content.generated[bare.ID])
	}
}

func TestGetOrGenerate_EmptyNotesRejected(t *testing.T) {
	chapter := chapterWithContent()
	repo := newFakeNoteRepo()
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"content": "  "}`)})
	svc := NewService(repo, newFakeContentProvider(chapter), mock, logger.Nop(), DefaultConfig())

	_, err := svc.GetOrGenerate(context.Background(), chapter.ID)
	var ge *apperr.GenerationError
	if !errors.As(err, &ge) {
		t.Fatalf("expected GenerationError, got %T (%v)", err, err)
	}
	if len(repo.byChapter) != 0 {
		t.Errorf("expected no notes persisted, got %d", len(repo.byChapter))
	}
}

func TestGetOrGenerate_ProviderFailureRetriesLater(t *testing.T) {
	chapter := chapterWithContent()
	repo := newFakeNoteRepo()
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(repo, newFakeContentProvider(chapter), mock, logger.Nop(), DefaultConfig())

	_, err := svc.GetOrGenerate(context.Background(), chapter.ID)
	var ge *apperr.GenerationError
	if !errors.As(err, &ge) {
		t.Fatalf("expected GenerationError, got %T (%v)", err, err)
	}
	if len(repo.byChapter) != 0 {
		t.Errorf("expected no notes persisted, got %d", len(repo.byChapter))
	}

	mock.AddResponse(llm.MockResponse{Content: validNotesJSON()})
	res, err := svc.GetOrGenerate(context.Background(), chapter.ID)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if res.Cached {
		t.Error("retry should generate, not hit cache")
	}
}

func TestGetOrGenerate_ConcurrentCallsShareOneGeneration(t *testing.T) {
	chapter := chapterWithContent()
	mock := llm.NewMockProvider(llm.MockResponse{Content: validNotesJSON()})
	svc := NewService(newFakeNoteRepo(), newFakeContentProvider(chapter), mock, logger.Nop(), DefaultConfig())

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.GetOrGenerate(context.Background(), chapter.ID)
		}()
	}
	wg.Wait()

	for i := range callers {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}
}
