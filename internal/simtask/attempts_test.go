package simtask

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/studymesh/cpaprep/internal/store"
)

// mockTaskRepo implements store.HistoryRepo; only the task methods matter here.
type mockTaskRepo struct {
	tasks    map[string]*store.SimTaskRecord
	readErr  error
	writeErr error
}

func newMockTaskRepo() *mockTaskRepo {
	return &mockTaskRepo{tasks: make(map[string]*store.SimTaskRecord)}
}

func (m *mockTaskRepo) GetItemHistory(_ context.Context, _, _ string) (*store.ItemHistoryRecord, error) {
	return nil, nil
}
func (m *mockTaskRepo) UpsertItemHistory(_ context.Context, _ string, _ *store.ItemHistoryRecord) error {
	return nil
}
func (m *mockTaskRepo) ListItemHistory(_ context.Context, _, _ string) ([]*store.ItemHistoryRecord, error) {
	return nil, nil
}
func (m *mockTaskRepo) GetSimTaskHistory(_ context.Context, _, taskID string) (*store.SimTaskRecord, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.tasks[taskID], nil
}
func (m *mockTaskRepo) UpsertSimTaskHistory(_ context.Context, _ string, rec *store.SimTaskRecord) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	cp := *rec
	m.tasks[rec.TaskID] = &cp
	return nil
}
func (m *mockTaskRepo) ListSimTaskHistory(_ context.Context, _, section string) ([]*store.SimTaskRecord, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	var out []*store.SimTaskRecord
	for _, rec := range m.tasks {
		if rec.Section == section {
			out = append(out, rec)
		}
	}
	return out, nil
}
func (m *mockTaskRepo) AnsweredItemIDs(_ context.Context, _, _ string) ([]string, error) {
	return nil, nil
}
func (m *mockTaskRepo) AddAnsweredItemID(_ context.Context, _, _, _ string) error { return nil }
func (m *mockTaskRepo) LessonProgress(_ context.Context, _, _ string) (map[string]float64, error) {
	return nil, nil
}
func (m *mockTaskRepo) SetLessonProgress(_ context.Context, _, _, _ string, _ float64) error {
	return nil
}
func (m *mockTaskRepo) TopicStats(_ context.Context, _, _ string) ([]*store.TopicStatRecord, error) {
	return nil, nil
}

func TestRecordAttempt_FirstAttempt(t *testing.T) {
	repo := newMockTaskRepo()
	r := NewRecorder("u1", repo, nil)
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	rec := r.RecordAttempt(context.Background(), "tbs-1", "far", "Leases", 62, 1200, now)

	if rec.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", rec.Attempts)
	}
	if rec.BestScore != 62 || rec.LastScore != 62 || rec.AvgScore != 62 {
		t.Errorf("scores = best %.0f last %.0f avg %.0f, want all 62", rec.BestScore, rec.LastScore, rec.AvgScore)
	}
	if rec.Mastered {
		t.Error("62 is below the mastery bar")
	}
	if rec.TotalTimeSpent != 1200 {
		t.Errorf("TotalTimeSpent = %d, want 1200", rec.TotalTimeSpent)
	}
}

func TestRecordAttempt_RunningMeanAndMastery(t *testing.T) {
	repo := newMockTaskRepo()
	r := NewRecorder("u1", repo, nil)
	now := time.Now()

	r.RecordAttempt(context.Background(), "tbs-1", "far", "Leases", 60, 600, now)
	r.RecordAttempt(context.Background(), "tbs-1", "far", "Leases", 80, 600, now)
	rec := r.RecordAttempt(context.Background(), "tbs-1", "far", "Leases", 70, 600, now)

	if rec.Attempts != 3 {
		t.Fatalf("Attempts = %d, want 3", rec.Attempts)
	}
	if rec.AvgScore != 70 {
		t.Errorf("AvgScore = %.1f, want 70", rec.AvgScore)
	}
	if rec.BestScore != 80 {
		t.Errorf("BestScore = %.0f, want 80", rec.BestScore)
	}
	if rec.LastScore != 70 {
		t.Errorf("LastScore = %.0f, want 70", rec.LastScore)
	}
	if !rec.Mastered {
		t.Error("best 80 >= 75, expected mastered")
	}
}

func TestRecordAttempt_LowerScoreKeepsBest(t *testing.T) {
	repo := newMockTaskRepo()
	r := NewRecorder("u1", repo, nil)
	now := time.Now()

	r.RecordAttempt(context.Background(), "tbs-1", "far", "Leases", 90, 600, now)
	rec := r.RecordAttempt(context.Background(), "tbs-1", "far", "Leases", 40, 600, now)

	if rec.BestScore != 90 {
		t.Errorf("BestScore = %.0f, want 90", rec.BestScore)
	}
	if !rec.Mastered {
		t.Error("mastered must not regress on a bad retry")
	}
}

func TestRecordAttempt_ReadFailureStartsFresh(t *testing.T) {
	repo := newMockTaskRepo()
	repo.readErr = errors.New("offline")
	r := NewRecorder("u1", repo, nil)

	rec := r.RecordAttempt(context.Background(), "tbs-1", "far", "Leases", 50, 300, time.Now())
	if rec == nil || rec.Attempts != 1 {
		t.Fatal("expected a usable record despite read failure")
	}
}

func TestSectionHistory_FailOpen(t *testing.T) {
	repo := newMockTaskRepo()
	repo.readErr = errors.New("offline")
	r := NewRecorder("u1", repo, nil)

	if recs := r.SectionHistory(context.Background(), "far"); len(recs) != 0 {
		t.Errorf("len(recs) = %d, want 0 on failure", len(recs))
	}
}
