package progress

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/EAGLE1309/placecraft-sub002/internal/apperr"
	"github.com/EAGLE1309/placecraft-sub002/internal/logger"
	"github.com/EAGLE1309/placecraft-sub002/internal/store"
)

type progressKey struct {
	studentID string
	subjectID uuid.UUID
}

// fakeProgressRepo is an in-memory ProgressRepo with the real store's
// create-once and transactional-mutate behavior.
type fakeProgressRepo struct {
	mu      sync.Mutex
	records map[progressKey]*store.Progress
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: map[progressKey]*store.Progress{}}
}

func (f *fakeProgressRepo) Get(_ context.Context, studentID string, subjectID uuid.UUID) (*store.Progress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.records[progressKey{studentID, subjectID}]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeProgressRepo) ListByStudent(_ context.Context, studentID string) ([]*store.Progress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []*store.Progress
	for k, p := range f.records {
		if k.studentID == studentID {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].StartedAt.Equal(list[j].StartedAt) {
			return list[i].StartedAt.Before(list[j].StartedAt)
		}
		return list[i].SubjectID.String() < list[j].SubjectID.String()
	})
	return list, nil
}

func (f *fakeProgressRepo) Create(_ context.Context, p *store.Progress) (*store.Progress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := progressKey{p.StudentID, p.SubjectID}
	if existing, ok := f.records[key]; ok {
		cp := *existing
		return &cp, nil
	}
	cp := *p
	f.records[key] = &cp
	out := cp
	return &out, nil
}

func (f *fakeProgressRepo) Mutate(_ context.Context, studentID string, subjectID uuid.UUID, fn func(*store.Progress) error) (*store.Progress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.records[progressKey{studentID, subjectID}]
	if !ok {
		return nil, nil
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	cp := *p
	return &cp, nil
}

func newTestService() (*Service, *fakeProgressRepo) {
	repo := newFakeProgressRepo()
	return NewService(repo, logger.Nop()), repo
}

func TestStart_CreatesZeroValueRecord(t *testing.T) {
	svc, _ := newTestService()
	subjectID := uuid.New()

	p, err := svc.Start(context.Background(), "s1", subjectID, "React")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if p.Status != store.StatusNotStarted {
		t.Errorf("status = %q, want %q", p.Status, store.StatusNotStarted)
	}
	if p.TotalChapters != 0 || p.PercentComplete != 0 {
		t.Errorf("fresh record should be all-zero, got total=%d percent=%d", p.TotalChapters, p.PercentComplete)
	}
	if len(p.CompletedChapterIDs) != 0 {
		t.Errorf("fresh record has %d completed chapters", len(p.CompletedChapterIDs))
	}
	if p.StartedAt.IsZero() {
		t.Error("startedAt should be set")
	}
}

func TestStart_Idempotent(t *testing.T) {
	svc, _ := newTestService()
	subjectID := uuid.New()

	first, err := svc.Start(context.Background(), "s1", subjectID, "React")
	if err != nil {
		t.Fatalf("first start: %v", err)
	}

	if _, err := svc.MarkChapterComplete(context.Background(), "s1", subjectID, "c1", 5); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// A second start must not reset anything.
	again, err := svc.Start(context.Background(), "s1", subjectID, "React")
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	if !again.StartedAt.Equal(first.StartedAt) {
		t.Error("second start changed startedAt")
	}
	if len(again.CompletedChapterIDs) != 1 {
		t.Errorf("second start lost completions, got %d", len(again.CompletedChapterIDs))
	}
}

func TestStart_Validation(t *testing.T) {
	svc, _ := newTestService()

	var ve *apperr.ValidationError
	if _, err := svc.Start(context.Background(), " ", uuid.New(), "React"); !errors.As(err, &ve) {
		t.Errorf("blank student: expected ValidationError, got %v", err)
	}
	if _, err := svc.Start(context.Background(), "s1", uuid.New(), ""); !errors.As(err, &ve) {
		t.Errorf("blank subject name: expected ValidationError, got %v", err)
	}
}

func TestMarkChapterComplete_FullLifecycle(t *testing.T) {
	svc, _ := newTestService()
	subjectID := uuid.New()
	ctx := context.Background()

	if _, err := svc.Start(ctx, "s1", subjectID, "React"); err != nil {
		t.Fatalf("start: %v", err)
	}

	p, err := svc.MarkChapterComplete(ctx, "s1", subjectID, "c1", 5)
	if err != nil {
		t.Fatalf("complete c1: %v", err)
	}
	if p.PercentComplete != 20 {
		t.Errorf("percent = %d, want 20", p.PercentComplete)
	}
	if p.Status != store.StatusInProgress {
		t.Errorf("status = %q, want %q", p.Status, store.StatusInProgress)
	}
	if p.CompletedAt != nil {
		t.Error("completedAt should be unset before full completion")
	}

	for _, id := range []string{"c2", "c3", "c4", "c5"} {
		if p, err = svc.MarkChapterComplete(ctx, "s1", subjectID, id, 5); err != nil {
			t.Fatalf("complete %s: %v", id, err)
		}
	}
	if p.PercentComplete != 100 {
		t.Errorf("percent = %d, want 100", p.PercentComplete)
	}
	if p.Status != store.StatusCompleted {
		t.Errorf("status = %q, want %q", p.Status, store.StatusCompleted)
	}
	if p.CompletedAt == nil {
		t.Fatal("completedAt should be set on completion")
	}

	// Unmarking one chapter leaves completed and clears the timestamp.
	p, err = svc.UnmarkChapterComplete(ctx, "s1", subjectID, "c3", 5)
	if err != nil {
		t.Fatalf("unmark: %v", err)
	}
	if p.PercentComplete != 80 {
		t.Errorf("percent = %d, want 80", p.PercentComplete)
	}
	if p.Status != store.StatusInProgress {
		t.Errorf("status = %q, want %q", p.Status, store.StatusInProgress)
	}
	if p.CompletedAt != nil {
		t.Error("completedAt should be cleared after leaving completed")
	}
}

func TestMarkChapterComplete_Idempotent(t *testing.T) {
	svc, _ := newTestService()
	subjectID := uuid.New()
	ctx := context.Background()

	if _, err := svc.Start(ctx, "s1", subjectID, "React"); err != nil {
		t.Fatalf("start: %v", err)
	}

	first, err := svc.MarkChapterComplete(ctx, "s1", subjectID, "c1", 1)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if first.Status != store.StatusCompleted || first.CompletedAt == nil {
		t.Fatalf("single-chapter subject should complete immediately, got %+v", first)
	}
	completedAt := *first.CompletedAt

	time.Sleep(2 * time.Millisecond)
	again, err := svc.MarkChapterComplete(ctx, "s1", subjectID, "c1", 1)
	if err != nil {
		t.Fatalf("repeat complete: %v", err)
	}
	if len(again.CompletedChapterIDs) != 1 {
		t.Errorf("repeat grew the set to %d", len(again.CompletedChapterIDs))
	}
	if !again.CompletedAt.Equal(completedAt) {
		t.Error("repeat completion reset completedAt")
	}
}

func TestCompletionMutations_RejectNonPositiveTotal(t *testing.T) {
	svc, _ := newTestService()
	subjectID := uuid.New()
	ctx := context.Background()

	if _, err := svc.Start(ctx, "s1", subjectID, "React"); err != nil {
		t.Fatalf("start: %v", err)
	}

	// A zero or negative chapter count would let a completion exist with
	// totalChapters=0, breaking the completed-set bound.
	var ve *apperr.ValidationError
	for _, total := range []int{0, -1} {
		if _, err := svc.MarkChapterComplete(ctx, "s1", subjectID, "c1", total); !errors.As(err, &ve) {
			t.Errorf("mark with total=%d: expected ValidationError, got %v", total, err)
		}
		if _, err := svc.UnmarkChapterComplete(ctx, "s1", subjectID, "c1", total); !errors.As(err, &ve) {
			t.Errorf("unmark with total=%d: expected ValidationError, got %v", total, err)
		}
	}

	// The record is untouched by the rejected calls.
	p, found, err := svc.GetSubjectProgress(ctx, "s1", subjectID)
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if len(p.CompletedChapterIDs) != 0 || p.TotalChapters != 0 {
		t.Errorf("rejected mutation persisted state: %+v", p)
	}
	if p.Status != store.StatusNotStarted {
		t.Errorf("status = %q, want %q", p.Status, store.StatusNotStarted)
	}
}

func TestUnmarkAll_ReturnsToInProgressNotNotStarted(t *testing.T) {
	svc, _ := newTestService()
	subjectID := uuid.New()
	ctx := context.Background()

	if _, err := svc.Start(ctx, "s1", subjectID, "React"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.MarkChapterComplete(ctx, "s1", subjectID, "c1", 5); err != nil {
		t.Fatalf("complete: %v", err)
	}

	p, err := svc.UnmarkChapterComplete(ctx, "s1", subjectID, "c1", 5)
	if err != nil {
		t.Fatalf("unmark: %v", err)
	}
	if p.PercentComplete != 0 {
		t.Errorf("percent = %d, want 0", p.PercentComplete)
	}
	// Historical progress: the record never returns to not-started.
	if p.Status != store.StatusInProgress {
		t.Errorf("status = %q, want %q", p.Status, store.StatusInProgress)
	}
}

func TestUnmark_AbsentChapterIsNoOp(t *testing.T) {
	svc, _ := newTestService()
	subjectID := uuid.New()
	ctx := context.Background()

	if _, err := svc.Start(ctx, "s1", subjectID, "React"); err != nil {
		t.Fatalf("start: %v", err)
	}

	p, err := svc.UnmarkChapterComplete(ctx, "s1", subjectID, "never-completed", 5)
	if err != nil {
		t.Fatalf("unmark: %v", err)
	}
	if p.Status != store.StatusNotStarted {
		t.Errorf("status = %q, want %q", p.Status, store.StatusNotStarted)
	}
}

func TestTrackViews_DoNotAffectCompletion(t *testing.T) {
	svc, _ := newTestService()
	subjectID := uuid.New()
	ctx := context.Background()

	if _, err := svc.Start(ctx, "s1", subjectID, "React"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.MarkChapterComplete(ctx, "s1", subjectID, "c1", 5); err != nil {
		t.Fatalf("complete: %v", err)
	}

	p, err := svc.TrackNotesViewed(ctx, "s1", subjectID, "c2")
	if err != nil {
		t.Fatalf("track notes: %v", err)
	}
	if p.PercentComplete != 20 || p.Status != store.StatusInProgress {
		t.Errorf("tracking views changed completion: percent=%d status=%q", p.PercentComplete, p.Status)
	}
	if len(p.NotesViewedChapterIDs) != 1 {
		t.Errorf("notes viewed set size = %d, want 1", len(p.NotesViewedChapterIDs))
	}

	p, err = svc.TrackVideosViewed(ctx, "s1", subjectID, "c2")
	if err != nil {
		t.Fatalf("track videos: %v", err)
	}
	if len(p.VideosViewedChapterIDs) != 1 {
		t.Errorf("videos viewed set size = %d, want 1", len(p.VideosViewedChapterIDs))
	}

	// Tracking is idempotent too.
	p, err = svc.TrackNotesViewed(ctx, "s1", subjectID, "c2")
	if err != nil {
		t.Fatalf("repeat track: %v", err)
	}
	if len(p.NotesViewedChapterIDs) != 1 {
		t.Errorf("repeat track grew the set to %d", len(p.NotesViewedChapterIDs))
	}
}

func TestMutations_RequireExistingRecord(t *testing.T) {
	svc, _ := newTestService()

	var nf *apperr.NotFoundError
	if _, err := svc.MarkChapterComplete(context.Background(), "s1", uuid.New(), "c1", 5); !errors.As(err, &nf) {
		t.Errorf("complete without start: expected NotFoundError, got %v", err)
	}
	if _, err := svc.TrackNotesViewed(context.Background(), "s1", uuid.New(), "c1"); !errors.As(err, &nf) {
		t.Errorf("track without start: expected NotFoundError, got %v", err)
	}
}

func TestGetSubjectProgress_ZeroValueWhenAbsent(t *testing.T) {
	svc, repo := newTestService()
	subjectID := uuid.New()

	p, found, err := svc.GetSubjectProgress(context.Background(), "s1", subjectID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Error("found should be false for an absent record")
	}
	if p.Status != store.StatusNotStarted || p.PercentComplete != 0 {
		t.Errorf("zero-value record wrong: %+v", p)
	}
	// The read must not create a record.
	if len(repo.records) != 0 {
		t.Errorf("read created %d records", len(repo.records))
	}
}

func TestGetAllProgress_OrderedByStartedAt(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := range 3 {
		subjectID := uuid.New()
		repo.records[progressKey{"s1", subjectID}] = &store.Progress{
			StudentID:   "s1",
			SubjectID:   subjectID,
			SubjectName: fmt.Sprintf("Subject %d", i),
			Status:      store.StatusNotStarted,
			StartedAt:   base.Add(time.Duration(i) * time.Minute),
		}
	}
	repo.records[progressKey{"s2", uuid.New()}] = &store.Progress{
		StudentID: "s2",
		Status:    store.StatusNotStarted,
		StartedAt: base,
	}

	list, err := svc.GetAllProgress(ctx, "s1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d records, want 3", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].StartedAt.Before(list[i-1].StartedAt) {
			t.Errorf("records out of order at %d", i)
		}
	}
}

func TestMarkChapterComplete_ConcurrentSessions(t *testing.T) {
	svc, _ := newTestService()
	subjectID := uuid.New()
	ctx := context.Background()

	if _, err := svc.Start(ctx, "s1", subjectID, "React"); err != nil {
		t.Fatalf("start: %v", err)
	}

	const chaptersTotal = 10
	var wg sync.WaitGroup
	errs := make([]error, chaptersTotal)
	for i := range chaptersTotal {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.MarkChapterComplete(ctx, "s1", subjectID, fmt.Sprintf("c%d", i), chaptersTotal)
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("session %d: %v", i, err)
		}
	}

	p, found, err := svc.GetSubjectProgress(ctx, "s1", subjectID)
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if len(p.CompletedChapterIDs) != chaptersTotal {
		t.Errorf("lost updates: %d completions, want %d", len(p.CompletedChapterIDs), chaptersTotal)
	}
	if p.PercentComplete != 100 || p.Status != store.StatusCompleted {
		t.Errorf("final state percent=%d status=%q", p.PercentComplete, p.Status)
	}
}
