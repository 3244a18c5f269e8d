package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/EAGLE1309/placecraft-sub002/internal/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSubjectCreateAndLookup(t *testing.T) {
	s := openTestStore(t)
	repo := s.Subjects()
	ctx := context.Background()

	missing, err := repo.GetBySkillKey(ctx, "react")
	if err != nil {
		t.Fatalf("lookup (empty): %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil subject when none exist")
	}

	created, err := repo.Create(ctx, &Subject{
		SkillKey:    "react",
		DisplayName: "React",
		Roadmap:     []types.RoadmapTopic{{Title: "Components"}, {Title: "Hooks"}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected a generated subject id")
	}

	byKey, err := repo.GetBySkillKey(ctx, "react")
	if err != nil {
		t.Fatalf("lookup by key: %v", err)
	}
	if byKey == nil || byKey.ID != created.ID {
		t.Fatalf("lookup by key = %+v, want id %s", byKey, created.ID)
	}

	byID, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("lookup by id: %v", err)
	}
	if byID == nil || byID.DisplayName != "React" {
		t.Fatalf("lookup by id = %+v", byID)
	}
	if len(byID.Roadmap) != 2 || byID.Roadmap[1].Title != "Hooks" {
		t.Fatalf("roadmap not round-tripped: %+v", byID.Roadmap)
	}
}

func TestSubjectCreateDuplicateKeyReturnsExisting(t *testing.T) {
	s := openTestStore(t)
	repo := s.Subjects()
	ctx := context.Background()

	first, err := repo.Create(ctx, &Subject{
		SkillKey:    "golang",
		DisplayName: "Golang",
		Roadmap:     []types.RoadmapTopic{{Title: "Basics"}},
	})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}

	second, err := repo.Create(ctx, &Subject{
		SkillKey:    "golang",
		DisplayName: "GoLang",
		Roadmap:     []types.RoadmapTopic{{Title: "Other"}},
	})
	if err != nil {
		t.Fatalf("create duplicate: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("duplicate create returned id %s, want existing %s", second.ID, first.ID)
	}
	if second.DisplayName != "Golang" {
		t.Errorf("duplicate create returned %q, want the winner's row", second.DisplayName)
	}
}

func TestChapterBatchAndOrdering(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	subj, err := s.Subjects().Create(ctx, &Subject{
		SkillKey:    "kubernetes",
		DisplayName: "Kubernetes",
		Roadmap:     []types.RoadmapTopic{{Title: "Pods"}, {Title: "Services"}, {Title: "Deployments"}},
	})
	if err != nil {
		t.Fatalf("create subject: %v", err)
	}

	repo := s.Chapters()
	batch := []*Chapter{
		{SubjectID: subj.ID, Order: 0, Title: "Pods"},
		{SubjectID: subj.ID, Order: 1, Title: "Services"},
		{SubjectID: subj.ID, Order: 2, Title: "Deployments"},
	}
	created, err := repo.CreateBatch(ctx, batch)
	if err != nil {
		t.Fatalf("create batch: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("created %d chapters, want 3", len(created))
	}

	listed, err := repo.ListBySubject(ctx, subj.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, c := range listed {
		if c.Order != i {
			t.Errorf("chapter %d has order %d", i, c.Order)
		}
	}

	// A second batch with a colliding order must fail atomically.
	_, err = repo.CreateBatch(ctx, []*Chapter{
		{SubjectID: subj.ID, Order: 3, Title: "Extra"},
		{SubjectID: subj.ID, Order: 0, Title: "Colliding"},
	})
	if err == nil {
		t.Fatal("expected constraint error for colliding batch")
	}
	listed, err = repo.ListBySubject(ctx, subj.ID)
	if err != nil {
		t.Fatalf("list after failed batch: %v", err)
	}
	if len(listed) != 3 {
		t.Errorf("failed batch left %d chapters, want 3 (all-or-nothing)", len(listed))
	}
}

func TestChapterAttachContent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	subj, _ := s.Subjects().Create(ctx, &Subject{
		SkillKey:    "sql",
		DisplayName: "SQL",
		Roadmap:     []types.RoadmapTopic{{Title: "Joins"}},
	})
	created, err := s.Chapters().CreateBatch(ctx, []*Chapter{
		{SubjectID: subj.ID, Order: 0, Title: "Joins"},
	})
	if err != nil {
		t.Fatalf("create batch: %v", err)
	}

	ch := created[0]
	if ch.HasContent() {
		t.Fatal("fresh chapter should not have content")
	}

	at := time.Now().UTC().Truncate(time.Second)
	updated, err := s.Chapters().AttachContent(ctx, ch.ID, "All about joins",
		[]types.Concept{{Title: "Inner join", Explanation: "Rows present in both tables"}}, at)
	if err != nil {
		t.Fatalf("attach content: %v", err)
	}
	if !updated.HasContent() {
		t.Error("expected content after attach")
	}
	if updated.ContentGeneratedAt == nil {
		t.Error("expected content_generated_at to be set")
	}
}

func TestProgressCreateMutateAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.Progress()
	ctx := context.Background()

	subjectID := uuid.New()

	missing, err := repo.Get(ctx, "s1", subjectID)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil progress when none exist")
	}

	created, err := repo.Create(ctx, &Progress{
		StudentID:   "s1",
		SubjectID:   subjectID,
		SubjectName: "React",
		Status:      StatusNotStarted,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != StatusNotStarted {
		t.Errorf("status = %s, want not-started", created.Status)
	}

	// Creating again returns the existing record.
	again, err := repo.Create(ctx, &Progress{
		StudentID:   "s1",
		SubjectID:   subjectID,
		SubjectName: "Other",
		Status:      StatusNotStarted,
	})
	if err != nil {
		t.Fatalf("create duplicate: %v", err)
	}
	if again.SubjectName != "React" {
		t.Errorf("duplicate create returned %q, want existing record", again.SubjectName)
	}

	mutated, err := repo.Mutate(ctx, "s1", subjectID, func(p *Progress) error {
		p.CompletedChapterIDs = append(p.CompletedChapterIDs, "c1")
		p.TotalChapters = 4
		p.PercentComplete = 25
		p.Status = StatusInProgress
		return nil
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if mutated.PercentComplete != 25 || mutated.Status != StatusInProgress {
		t.Errorf("mutated = %d%% %s", mutated.PercentComplete, mutated.Status)
	}
	if len(mutated.CompletedChapterIDs) != 1 {
		t.Errorf("completed set = %v", mutated.CompletedChapterIDs)
	}

	// Mutate on a missing record reports absence, not an error.
	none, err := repo.Mutate(ctx, "s1", uuid.New(), func(p *Progress) error { return nil })
	if err != nil {
		t.Fatalf("mutate missing: %v", err)
	}
	if none != nil {
		t.Error("expected nil progress for missing record")
	}

	list, err := repo.ListByStudent(ctx, "s1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list returned %d records, want 1", len(list))
	}
}

func TestNoteAndVideoSetUniquePerChapter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	chapterID := uuid.New()

	n1, err := s.Notes().Create(ctx, &Note{ChapterID: chapterID, Content: "first"})
	if err != nil {
		t.Fatalf("create note: %v", err)
	}
	n2, err := s.Notes().Create(ctx, &Note{ChapterID: chapterID, Content: "second"})
	if err != nil {
		t.Fatalf("create duplicate note: %v", err)
	}
	if n2.Content != n1.Content {
		t.Errorf("duplicate note create returned %q, want existing %q", n2.Content, n1.Content)
	}

	v1, err := s.Videos().Create(ctx, &VideoSet{
		ChapterID:   chapterID,
		Videos:      []types.Video{{Title: "Intro", URL: "https://youtube.com/watch?v=a"}},
		FallbackURL: "https://www.youtube.com/results?search_query=intro",
	})
	if err != nil {
		t.Fatalf("create video set: %v", err)
	}
	v2, err := s.Videos().Create(ctx, &VideoSet{
		ChapterID:   chapterID,
		Videos:      nil,
		FallbackURL: "other",
	})
	if err != nil {
		t.Fatalf("create duplicate video set: %v", err)
	}
	if v2.FallbackURL != v1.FallbackURL {
		t.Errorf("duplicate video set returned %q, want existing", v2.FallbackURL)
	}
}

func TestNoteAndVideoSetKeepSuppliedTimestamps(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	noteChapter := uuid.New()
	n, err := s.Notes().Create(ctx, &Note{ChapterID: noteChapter, Content: "notes", GeneratedAt: at})
	if err != nil {
		t.Fatalf("create note: %v", err)
	}
	if !n.GeneratedAt.Equal(at) {
		t.Errorf("note generatedAt = %v, want supplied %v", n.GeneratedAt, at)
	}
	got, err := s.Notes().GetByChapter(ctx, noteChapter)
	if err != nil {
		t.Fatalf("get note: %v", err)
	}
	if !got.GeneratedAt.Equal(at) {
		t.Errorf("stored note generatedAt = %v, want supplied %v", got.GeneratedAt, at)
	}

	videoChapter := uuid.New()
	v, err := s.Videos().Create(ctx, &VideoSet{
		ChapterID:   videoChapter,
		FallbackURL: "https://www.youtube.com/results?search_query=hooks",
		FetchedAt:   at,
	})
	if err != nil {
		t.Fatalf("create video set: %v", err)
	}
	if !v.FetchedAt.Equal(at) {
		t.Errorf("video set fetchedAt = %v, want supplied %v", v.FetchedAt, at)
	}
}
