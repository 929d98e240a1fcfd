package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/studymesh/cpaprep/internal/app"
	"github.com/studymesh/cpaprep/internal/config"
	"github.com/studymesh/cpaprep/internal/store"
)

// memRepo is an in-memory store.HistoryRepo for handler tests.
type memRepo struct {
	items    map[string]*store.ItemHistoryRecord
	tasks    map[string]*store.SimTaskRecord
	progress map[string]float64
	answered []string
}

func newMemRepo() *memRepo {
	return &memRepo{
		items:    make(map[string]*store.ItemHistoryRecord),
		tasks:    make(map[string]*store.SimTaskRecord),
		progress: make(map[string]float64),
	}
}

func (m *memRepo) GetItemHistory(_ context.Context, _, itemID string) (*store.ItemHistoryRecord, error) {
	return m.items[itemID], nil
}
func (m *memRepo) UpsertItemHistory(_ context.Context, _ string, rec *store.ItemHistoryRecord) error {
	cp := *rec
	m.items[rec.ItemID] = &cp
	return nil
}
func (m *memRepo) ListItemHistory(_ context.Context, _, section string) ([]*store.ItemHistoryRecord, error) {
	var out []*store.ItemHistoryRecord
	for _, rec := range m.items {
		if rec.Section == section {
			out = append(out, rec)
		}
	}
	return out, nil
}
func (m *memRepo) GetSimTaskHistory(_ context.Context, _, taskID string) (*store.SimTaskRecord, error) {
	return m.tasks[taskID], nil
}
func (m *memRepo) UpsertSimTaskHistory(_ context.Context, _ string, rec *store.SimTaskRecord) error {
	cp := *rec
	m.tasks[rec.TaskID] = &cp
	return nil
}
func (m *memRepo) ListSimTaskHistory(_ context.Context, _, section string) ([]*store.SimTaskRecord, error) {
	var out []*store.SimTaskRecord
	for _, rec := range m.tasks {
		if rec.Section == section {
			out = append(out, rec)
		}
	}
	return out, nil
}
func (m *memRepo) AnsweredItemIDs(_ context.Context, _, _ string) ([]string, error) {
	return m.answered, nil
}
func (m *memRepo) AddAnsweredItemID(_ context.Context, _, _, itemID string) error {
	m.answered = append(m.answered, itemID)
	return nil
}
func (m *memRepo) LessonProgress(_ context.Context, _, _ string) (map[string]float64, error) {
	return m.progress, nil
}
func (m *memRepo) SetLessonProgress(_ context.Context, _, lessonID, _ string, percent float64) error {
	m.progress[lessonID] = percent
	return nil
}
func (m *memRepo) TopicStats(_ context.Context, _, _ string) ([]*store.TopicStatRecord, error) {
	return nil, nil
}

func newTestRouter(repo *memRepo) http.Handler {
	cfg := &config.Config{
		Env:             "test",
		User:            "local",
		Section:         "far",
		DailyGoalPoints: 30,
	}
	services := app.NewServices(cfg, repo, nil)
	return New(services, nil).Router()
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(newMemRepo())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestGetPlan(t *testing.T) {
	router := newTestRouter(newMemRepo())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/plan?flashcardsDue=8", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var plan struct {
		Section    string `json:"section"`
		Activities []struct {
			Type string `json:"type"`
		} `json:"activities"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &plan); err != nil {
		t.Fatalf("invalid plan JSON: %v", err)
	}
	if plan.Section != "far" {
		t.Errorf("section = %s, want far (config default)", plan.Section)
	}
	if len(plan.Activities) == 0 {
		t.Error("plan has no activities")
	}
	var hasFlashcards bool
	for _, a := range plan.Activities {
		if a.Type == "flashcards" {
			hasFlashcards = true
		}
	}
	if !hasFlashcards {
		t.Error("flashcardsDue=8 should add a flashcard block")
	}
}

func TestPostAnswer(t *testing.T) {
	repo := newMemRepo()
	router := newTestRouter(repo)

	body := `{"itemId":"far-inventory-t1-q01","section":"far","topic":"Inventory","correct":true}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/answers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp struct {
		TimesAnswered int    `json:"timesAnswered"`
		MasteryLevel  string `json:"masteryLevel"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.TimesAnswered != 1 || resp.MasteryLevel != "learning" {
		t.Errorf("got %+v, want 1 answer at learning", resp)
	}
	if repo.items["far-inventory-t1-q01"] == nil {
		t.Error("answer not persisted to the repo")
	}
}

func TestPostAnswer_MissingFields(t *testing.T) {
	router := newTestRouter(newMemRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/answers", strings.NewReader(`{"correct":true}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 without itemId/section", w.Code)
	}
}

func TestPostTaskAttempt(t *testing.T) {
	router := newTestRouter(newMemRepo())

	body := `{"taskId":"tbs-far-1","section":"far","topic":"Leases","score":82,"timeSpentSec":900}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/attempts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Attempts int  `json:"attempts"`
		Mastered bool `json:"mastered"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Attempts != 1 || !resp.Mastered {
		t.Errorf("got %+v, want 1 attempt mastered at score 82", resp)
	}
}

func TestGetTaskUnlocks(t *testing.T) {
	repo := newMemRepo()
	repo.progress["far-conceptual-framework"] = 100
	router := newTestRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tasks/unlocks?section=far", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Tasks []struct {
			TaskType string  `json:"taskType"`
			Unlocked bool    `json:"isUnlocked"`
			Progress float64 `json:"progress"`
		} `json:"tasks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(resp.Tasks) == 0 {
		t.Fatal("no task statuses returned")
	}
	var researchUnlocked bool
	for _, task := range resp.Tasks {
		if task.TaskType == "research" && task.Unlocked {
			researchUnlocked = true
		}
	}
	if !researchUnlocked {
		t.Error("research should unlock with the conceptual framework lesson complete")
	}
}

func TestPutLessonProgress(t *testing.T) {
	repo := newMemRepo()
	router := newTestRouter(repo)

	body := `{"section":"far","percent":85}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/lessons/far-leases/progress", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if repo.progress["far-leases"] != 85 {
		t.Errorf("stored progress = %v, want 85", repo.progress["far-leases"])
	}
}
