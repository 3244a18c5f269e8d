package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/EAGLE1309/placecraft-sub002/internal/apperr"
	"github.com/EAGLE1309/placecraft-sub002/internal/chapters"
	"github.com/EAGLE1309/placecraft-sub002/internal/notes"
	"github.com/EAGLE1309/placecraft-sub002/internal/store"
	"github.com/EAGLE1309/placecraft-sub002/internal/subjects"
	"github.com/EAGLE1309/placecraft-sub002/internal/types"
	"github.com/EAGLE1309/placecraft-sub002/internal/videos"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// The fakes below return canned values so handler behavior can be tested
// without live services.

type fakeSubjectService struct {
	subject *store.Subject
	err     error
}

func (f *fakeSubjectService) GetOrGenerate(_ context.Context, _, _ string) (*subjects.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &subjects.Result{Subject: f.subject, Cached: false}, nil
}

func (f *fakeSubjectService) CheckExists(_ context.Context, _ string) (bool, *store.Subject, error) {
	if f.err != nil {
		return false, nil, f.err
	}
	return f.subject != nil, f.subject, nil
}

func (f *fakeSubjectService) GetByID(_ context.Context, id uuid.UUID) (*store.Subject, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.subject == nil || f.subject.ID != id {
		return nil, apperr.NotFound("subject", id.String())
	}
	return f.subject, nil
}

type fakeChapterService struct {
	list []*store.Chapter
	err  error
}

func (f *fakeChapterService) GetOrGenerate(_ context.Context, _ uuid.UUID) (*chapters.ListResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &chapters.ListResult{Chapters: f.list, Cached: false}, nil
}

func (f *fakeChapterService) GetBySubjectID(_ context.Context, _ uuid.UUID) ([]*store.Chapter, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakeChapterService) GetWithContent(_ context.Context, id uuid.UUID) (*store.Chapter, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	for _, c := range f.list {
		if c.ID == id {
			return c, true, nil
		}
	}
	return nil, false, apperr.NotFound("chapter", id.String())
}

type fakeNoteService struct {
	note *store.Note
	err  error
}

func (f *fakeNoteService) GetOrGenerate(_ context.Context, _ uuid.UUID) (*notes.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &notes.Result{Note: f.note, Cached: true}, nil
}

type fakeVideoService struct {
	result *videos.Result
	err    error
}

func (f *fakeVideoService) GetOrFetch(_ context.Context, _ uuid.UUID) (*videos.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeProgressService struct {
	progress *store.Progress
	actions  []string
	err      error
}

func (f *fakeProgressService) record(action string) (*store.Progress, error) {
	f.actions = append(f.actions, action)
	if f.err != nil {
		return nil, f.err
	}
	return f.progress, nil
}

func (f *fakeProgressService) Start(_ context.Context, _ string, _ uuid.UUID, _ string) (*store.Progress, error) {
	return f.record("start")
}

func (f *fakeProgressService) MarkChapterComplete(_ context.Context, _ string, _ uuid.UUID, _ string, _ int) (*store.Progress, error) {
	return f.record("complete-chapter")
}

func (f *fakeProgressService) UnmarkChapterComplete(_ context.Context, _ string, _ uuid.UUID, _ string, _ int) (*store.Progress, error) {
	return f.record("uncomplete-chapter")
}

func (f *fakeProgressService) TrackNotesViewed(_ context.Context, _ string, _ uuid.UUID, _ string) (*store.Progress, error) {
	return f.record("track-notes")
}

func (f *fakeProgressService) TrackVideosViewed(_ context.Context, _ string, _ uuid.UUID, _ string) (*store.Progress, error) {
	return f.record("track-videos")
}

func (f *fakeProgressService) GetSubjectProgress(_ context.Context, studentID string, subjectID uuid.UUID) (*store.Progress, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	if f.progress != nil {
		return f.progress, true, nil
	}
	return &store.Progress{StudentID: studentID, SubjectID: subjectID, Status: store.StatusNotStarted}, false, nil
}

func (f *fakeProgressService) GetAllProgress(_ context.Context, _ string) ([]*store.Progress, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.progress == nil {
		return nil, nil
	}
	return []*store.Progress{f.progress}, nil
}

func testRouter(svcs Services) *gin.Engine {
	if svcs.Subjects == nil {
		svcs.Subjects = &fakeSubjectService{}
	}
	if svcs.Chapters == nil {
		svcs.Chapters = &fakeChapterService{}
	}
	if svcs.Notes == nil {
		svcs.Notes = &fakeNoteService{}
	}
	if svcs.Videos == nil {
		svcs.Videos = &fakeVideoService{}
	}
	if svcs.Progress == nil {
		svcs.Progress = &fakeProgressService{}
	}
	return NewRouter(svcs)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (int, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, w.Body.String())
	}
	return w.Code, parsed
}

func TestCheckSubject_ExistsFlag(t *testing.T) {
	subject := &store.Subject{ID: uuid.New(), SkillKey: "react", DisplayName: "React"}
	router := testRouter(Services{Subjects: &fakeSubjectService{subject: subject}})

	code, body := doJSON(t, router, http.MethodGet, "/api/subjects/check?skillName=React", "")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if body["success"] != true || body["exists"] != true {
		t.Errorf("body = %v", body)
	}
}

func TestCheckSubject_MissingSkillName(t *testing.T) {
	router := testRouter(Services{})

	code, body := doJSON(t, router, http.MethodGet, "/api/subjects/check", "")
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
	if body["success"] != false {
		t.Errorf("error envelope should have success=false, got %v", body)
	}
	if _, ok := body["error"].(string); !ok {
		t.Errorf("error envelope should carry a message, got %v", body)
	}
}

func TestGetSubjectByID(t *testing.T) {
	subject := &store.Subject{ID: uuid.New(), SkillKey: "react", DisplayName: "React"}
	router := testRouter(Services{Subjects: &fakeSubjectService{subject: subject}})

	code, body := doJSON(t, router, http.MethodGet, "/api/subjects?subjectId="+subject.ID.String(), "")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	got, ok := body["subject"].(map[string]any)
	if !ok {
		t.Fatalf("missing subject in %v", body)
	}
	if got["id"] != subject.ID.String() {
		t.Errorf("id = %v", got["id"])
	}

	code, _ = doJSON(t, router, http.MethodGet, "/api/subjects?subjectId="+uuid.NewString(), "")
	if code != http.StatusNotFound {
		t.Fatalf("unknown subject: status = %d, want 404", code)
	}
}

func TestGenerateSubject(t *testing.T) {
	subject := &store.Subject{
		ID:          uuid.New(),
		SkillKey:    "react",
		DisplayName: "React",
		Roadmap:     []types.RoadmapTopic{{Title: "Hooks"}},
	}
	router := testRouter(Services{Subjects: &fakeSubjectService{subject: subject}})

	code, body := doJSON(t, router, http.MethodPost, "/api/subjects", `{"skillName": "React"}`)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if body["cached"] != false {
		t.Errorf("cached = %v, want false", body["cached"])
	}
	subj, ok := body["subject"].(map[string]any)
	if !ok {
		t.Fatalf("missing subject in %v", body)
	}
	if subj["skillKey"] != "react" {
		t.Errorf("skillKey = %v", subj["skillKey"])
	}
}

func TestGenerateSubject_GenerationFailureIs500(t *testing.T) {
	fail := &apperr.GenerationError{Purpose: "roadmap", Err: context.DeadlineExceeded}
	router := testRouter(Services{Subjects: &fakeSubjectService{err: fail}})

	code, body := doJSON(t, router, http.MethodPost, "/api/subjects", `{"skillName": "React"}`)
	if code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", code)
	}
	if body["success"] != false {
		t.Errorf("body = %v", body)
	}
}

func TestListChapters_ReportsHasChapters(t *testing.T) {
	router := testRouter(Services{Chapters: &fakeChapterService{list: []*store.Chapter{}}})

	code, body := doJSON(t, router, http.MethodGet, "/api/chapters?subjectId="+uuid.NewString(), "")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if body["hasChapters"] != false {
		t.Errorf("hasChapters = %v, want false", body["hasChapters"])
	}
	if body["cached"] != true {
		t.Errorf("cache-only listing must report cached=true, got %v", body["cached"])
	}
}

func TestChapterContent_UnknownChapterIs404(t *testing.T) {
	router := testRouter(Services{})

	code, _ := doJSON(t, router, http.MethodGet, "/api/chapters/"+uuid.NewString()+"/content", "")
	if code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
}

func TestChapterContent_InvalidIDIs400(t *testing.T) {
	router := testRouter(Services{})

	code, _ := doJSON(t, router, http.MethodGet, "/api/chapters/not-a-uuid/content", "")
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
}

func TestGetNotes(t *testing.T) {
	note := &store.Note{ChapterID: uuid.New(), Content: "## Recap", GeneratedAt: time.Now()}
	router := testRouter(Services{Notes: &fakeNoteService{note: note}})

	code, body := doJSON(t, router, http.MethodPost, "/api/chapters/"+note.ChapterID.String()+"/notes", "")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	got, ok := body["notes"].(map[string]any)
	if !ok {
		t.Fatalf("missing notes in %v", body)
	}
	if got["content"] != "## Recap" {
		t.Errorf("content = %v", got["content"])
	}
}

func TestGetVideos_DegradedResult(t *testing.T) {
	router := testRouter(Services{Videos: &fakeVideoService{result: &videos.Result{
		Videos:      []types.Video{},
		FallbackURL: "https://www.youtube.com/results?search_query=React+Hooks",
		Cached:      false,
	}}})

	code, body := doJSON(t, router, http.MethodGet, "/api/chapters/"+uuid.NewString()+"/videos", "")
	if code != http.StatusOK {
		t.Fatalf("degraded result should still be 200, got %d", code)
	}
	if body["fallbackUrl"] == "" {
		t.Error("fallbackUrl missing from degraded response")
	}
	list, ok := body["videos"].([]any)
	if !ok || len(list) != 0 {
		t.Errorf("videos = %v, want empty list", body["videos"])
	}
}

func TestMutateProgress_DispatchesActions(t *testing.T) {
	subjectID := uuid.New()
	prog := &store.Progress{
		StudentID: "s1",
		SubjectID: subjectID,
		Status:    store.StatusInProgress,
		StartedAt: time.Now(),
	}
	svc := &fakeProgressService{progress: prog}
	router := testRouter(Services{Progress: svc})

	for _, action := range []string{"start", "complete-chapter", "uncomplete-chapter", "track-notes", "track-videos"} {
		body := `{"studentId": "s1", "subjectId": "` + subjectID.String() + `", "subjectName": "React", "action": "` + action + `", "chapterId": "c1", "totalChapters": 5}`
		code, resp := doJSON(t, router, http.MethodPost, "/api/progress", body)
		if code != http.StatusOK {
			t.Fatalf("action %s: status = %d (%v)", action, code, resp)
		}
	}
	if len(svc.actions) != 5 {
		t.Fatalf("dispatched %d actions, want 5", len(svc.actions))
	}
}

func TestMutateProgress_UnknownActionIs400(t *testing.T) {
	router := testRouter(Services{})

	body := `{"studentId": "s1", "subjectId": "` + uuid.NewString() + `", "action": "reset"}`
	code, _ := doJSON(t, router, http.MethodPost, "/api/progress", body)
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
}

func TestGetProgress_AllForStudent(t *testing.T) {
	prog := &store.Progress{StudentID: "s1", SubjectID: uuid.New(), Status: store.StatusNotStarted, StartedAt: time.Now()}
	router := testRouter(Services{Progress: &fakeProgressService{progress: prog}})

	code, body := doJSON(t, router, http.MethodGet, "/api/progress?studentId=s1", "")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if _, ok := body["progressList"].([]any); !ok {
		t.Errorf("missing progressList in %v", body)
	}
}

func TestGetProgress_AbsentRecordIsZeroValue(t *testing.T) {
	router := testRouter(Services{})

	code, body := doJSON(t, router, http.MethodGet, "/api/progress?studentId=s1&subjectId="+uuid.NewString(), "")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if body["found"] != false {
		t.Errorf("found = %v, want false", body["found"])
	}
	prog, ok := body["progress"].(map[string]any)
	if !ok {
		t.Fatalf("missing progress in %v", body)
	}
	if prog["status"] != string(store.StatusNotStarted) {
		t.Errorf("status = %v, want %q", prog["status"], store.StatusNotStarted)
	}
}
