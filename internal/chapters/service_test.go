package chapters

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/EAGLE1309/placecraft-sub002/internal/apperr"
	"github.com/EAGLE1309/placecraft-sub002/internal/llm"
	"github.com/EAGLE1309/placecraft-sub002/internal/logger"
	"github.com/EAGLE1309/placecraft-sub002/internal/store"
	"github.com/EAGLE1309/placecraft-sub002/internal/types"
)

// fakeSubjectRepo is a minimal SubjectRepo for wiring chapters to a subject.
type fakeSubjectRepo struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*store.Subject
}

func newFakeSubjectRepo(subjects ...*store.Subject) *fakeSubjectRepo {
	f := &fakeSubjectRepo{byID: map[uuid.UUID]*store.Subject{}}
	for _, s := range subjects {
		f.byID[s.ID] = s
	}
	return f
}

func (f *fakeSubjectRepo) Create(_ context.Context, s *store.Subject) (*store.Subject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[s.ID] = s
	return s, nil
}

func (f *fakeSubjectRepo) GetByID(_ context.Context, id uuid.UUID) (*store.Subject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id], nil
}

func (f *fakeSubjectRepo) GetBySkillKey(_ context.Context, key string) (*store.Subject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.byID {
		if s.SkillKey == key {
			return s, nil
		}
	}
	return nil, nil
}

// fakeChapterRepo is an in-memory ChapterRepo with the real store's
// batch-atomicity and ordering behavior.
type fakeChapterRepo struct {
	mu        sync.Mutex
	byID      map[uuid.UUID]*store.Chapter
	batchFail error
}

func newFakeChapterRepo() *fakeChapterRepo {
	return &fakeChapterRepo{byID: map[uuid.UUID]*store.Chapter{}}
}

func (f *fakeChapterRepo) CreateBatch(_ context.Context, chapters []*store.Chapter) ([]*store.Chapter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.batchFail != nil {
		return nil, f.batchFail
	}
	out := make([]*store.Chapter, len(chapters))
	for i, c := range chapters {
		cp := *c
		cp.ID = uuid.New()
		f.byID[cp.ID] = &cp
		out[i] = &cp
	}
	return out, nil
}

func (f *fakeChapterRepo) GetByID(_ context.Context, id uuid.UUID) (*store.Chapter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.byID[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeChapterRepo) ListBySubject(_ context.Context, subjectID uuid.UUID) ([]*store.Chapter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []*store.Chapter
	for _, c := range f.byID {
		if c.SubjectID == subjectID {
			cp := *c
			list = append(list, &cp)
		}
	}
	for i := range list {
		for j := i + 1; j < len(list); j++ {
			if list[j].Order < list[i].Order {
				list[i], list[j] = list[j], list[i]
			}
		}
	}
	if list == nil {
		list = []*store.Chapter{}
	}
	return list, nil
}

func (f *fakeChapterRepo) AttachContent(_ context.Context, id uuid.UUID, overview string, concepts []types.Concept, at time.Time) (*store.Chapter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok {
		return nil, errors.New("chapter not found")
	}
	c.Overview = overview
	c.Concepts = concepts
	c.ContentGeneratedAt = &at
	cp := *c
	return &cp, nil
}

func testSubject() *store.Subject {
	return &store.Subject{
		ID:          uuid.New(),
		SkillKey:    "react",
		DisplayName: "React",
		Roadmap: []types.RoadmapTopic{
			{Title: "JSX and Components", Description: "How React describes UI."},
			{Title: "Hooks", Description: "State and effects in function components."},
			{Title: "Routing", Description: "Client-side navigation."},
		},
	}
}

func validChapterListJSON() json.RawMessage {
	return json.RawMessage(`{
		"chapters": [
			{"title": "Thinking in Components", "summary": "Build UI from JSX building blocks."},
			{"title": "State with Hooks", "summary": "Manage state and effects."},
			{"title": "Navigating with a Router", "summary": "Move between pages client-side."}
		]
	}`)
}

func validContentJSON() json.RawMessage {
	return json.RawMessage(`{
		"overview": "Components are the building blocks of a React interface.",
		"concepts": [
			{"title": "JSX", "explanation": "A syntax for describing UI in JavaScript."},
			{"title": "Props", "explanation": "Read-only inputs a parent passes to a child."}
		]
	}`)
}

func TestGetOrGenerate_GeneratesOrderedList(t *testing.T) {
	subject := testSubject()
	repo := newFakeChapterRepo()
	mock := llm.NewMockProvider(llm.MockResponse{Content: validChapterListJSON()})
	svc := NewService(newFakeSubjectRepo(subject), repo, mock, logger.Nop(), DefaultConfig())

	res, err := svc.GetOrGenerate(context.Background(), subject.ID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.Cached {
		t.Error("first call should not be cached")
	}
	if len(res.Chapters) != 3 {
		t.Fatalf("got %d chapters, want 3", len(res.Chapters))
	}
	for i, ch := range res.Chapters {
		if ch.Order != i {
			t.Errorf("chapter %d has order %d", i, ch.Order)
		}
		if ch.SubjectID != subject.ID {
			t.Errorf("chapter %d bound to subject %s", i, ch.SubjectID)
		}
	}

	// Second call hits the cache.
	again, err := svc.GetOrGenerate(context.Background(), subject.ID)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if !again.Cached {
		t.Error("second call should be cached")
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}
}

func TestGetOrGenerate_UnknownSubject(t *testing.T) {
	svc := NewService(newFakeSubjectRepo(), newFakeChapterRepo(), llm.NewMockProvider(), logger.Nop(), DefaultConfig())

	_, err := svc.GetOrGenerate(context.Background(), uuid.New())
	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %T (%v)", err, err)
	}
}

func TestGetOrGenerate_EmptyListRejected(t *testing.T) {
	subject := testSubject()
	repo := newFakeChapterRepo()
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"chapters": []}`)})
	svc := NewService(newFakeSubjectRepo(subject), repo, mock, logger.Nop(), DefaultConfig())

	_, err := svc.GetOrGenerate(context.Background(), subject.ID)
	var ge *apperr.GenerationError
	if !errors.As(err, &ge) {
		t.Fatalf("expected GenerationError, got %T (%v)", err, err)
	}
	if len(repo.byID) != 0 {
		t.Errorf("expected no chapters persisted, got %d", len(repo.byID))
	}
}

func TestGetOrGenerate_BatchFailurePersistsNothing(t *testing.T) {
	subject := testSubject()
	repo := newFakeChapterRepo()
	repo.batchFail = errors.New("disk full")
	mock := llm.NewMockProvider(llm.MockResponse{Content: validChapterListJSON()})
	svc := NewService(newFakeSubjectRepo(subject), repo, mock, logger.Nop(), DefaultConfig())

	_, err := svc.GetOrGenerate(context.Background(), subject.ID)
	if err == nil {
		t.Fatal("expected error from failed batch write")
	}
	if len(repo.byID) != 0 {
		t.Errorf("expected no chapters persisted, got %d", len(repo.byID))
	}

	// A later call retries the whole batch.
	repo.batchFail = nil
	mock.AddResponse(llm.MockResponse{Content: validChapterListJSON()})
	res, err := svc.GetOrGenerate(context.Background(), subject.ID)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if res.Cached {
		t.Error("retry should generate, not hit cache")
	}
	if len(res.Chapters) != 3 {
		t.Errorf("retry got %d chapters, want 3", len(res.Chapters))
	}
}

func TestGetBySubjectID_EmptyBeforeGeneration(t *testing.T) {
	subject := testSubject()
	mock := llm.NewMockProvider()
	svc := NewService(newFakeSubjectRepo(subject), newFakeChapterRepo(), mock, logger.Nop(), DefaultConfig())

	list, err := svc.GetBySubjectID(context.Background(), subject.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("got %d chapters, want 0", len(list))
	}
	if mock.CallCount() != 0 {
		t.Error("listing must not trigger generation")
	}
}

func TestGetWithContent_GeneratesOnceThenCaches(t *testing.T) {
	subject := testSubject()
	repo := newFakeChapterRepo()
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validChapterListJSON()},
		llm.MockResponse{Content: validContentJSON()},
	)
	svc := NewService(newFakeSubjectRepo(subject), repo, mock, logger.Nop(), DefaultConfig())

	res, err := svc.GetOrGenerate(context.Background(), subject.ID)
	if err != nil {
		t.Fatalf("generate list: %v", err)
	}
	target := res.Chapters[0]

	filled, cached, err := svc.GetWithContent(context.Background(), target.ID)
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	if cached {
		t.Error("first content call should not be cached")
	}
	if !filled.HasContent() {
		t.Fatal("chapter should have content after generation")
	}
	if filled.ContentGeneratedAt == nil {
		t.Error("content timestamp should be set")
	}

	again, cached, err := svc.GetWithContent(context.Background(), target.ID)
	if err != nil {
		t.Fatalf("second content call: %v", err)
	}
	if !cached {
		t.Error("second content call should be cached")
	}
	if again.Overview != filled.Overview {
		t.Error("cached content should be identical")
	}
	if mock.CallCount() != 2 {
		t.Errorf("provider called %d times, want 2 (list + one content)", mock.CallCount())
	}
}

func TestGetWithContent_UnknownChapter(t *testing.T) {
	svc := NewService(newFakeSubjectRepo(), newFakeChapterRepo(), llm.NewMockProvider(), logger.Nop(), DefaultConfig())

	_, _, err := svc.GetWithContent(context.Background(), uuid.New())
	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %T (%v)", err, err)
	}
}

func TestGetWithContent_FailureLeavesChapterBare(t *testing.T) {
	subject := testSubject()
	repo := newFakeChapterRepo()
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validChapterListJSON()},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	svc := NewService(newFakeSubjectRepo(subject), repo, mock, logger.Nop(), DefaultConfig())

	res, err := svc.GetOrGenerate(context.Background(), subject.ID)
	if err != nil {
		t.Fatalf("generate list: %v", err)
	}
	target := res.Chapters[1]

	_, _, err = svc.GetWithContent(context.Background(), target.ID)
	var ge *apperr.GenerationError
	if !errors.As(err, &ge) {
		t.Fatalf("expected GenerationError, got %T (%v)", err, err)
	}

	stored, _ := repo.GetByID(context.Background(), target.ID)
	if stored.HasContent() {
		t.Error("failed generation must not attach content")
	}

	// The next attempt generates again.
	mock.AddResponse(llm.MockResponse{Content: validContentJSON()})
	filled, cached, err := svc.GetWithContent(context.Background(), target.ID)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if cached || !filled.HasContent() {
		t.Error("retry should generate fresh content")
	}
}

func TestGetWithContent_ConcurrentCallsShareOneGeneration(t *testing.T) {
	subject := testSubject()
	repo := newFakeChapterRepo()
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validChapterListJSON()},
		llm.MockResponse{Content: validContentJSON()},
	)
	svc := NewService(newFakeSubjectRepo(subject), repo, mock, logger.Nop(), DefaultConfig())

	res, err := svc.GetOrGenerate(context.Background(), subject.ID)
	if err != nil {
		t.Fatalf("generate list: %v", err)
	}
	target := res.Chapters[0]

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, errs[i] = svc.GetWithContent(context.Background(), target.ID)
		}()
	}
	wg.Wait()

	for i := range callers {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
	}
	if mock.CallCount() != 2 {
		t.Errorf("provider called %d times, want 2 (list + one content)", mock.CallCount())
	}
}
