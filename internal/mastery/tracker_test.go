package mastery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/studymesh/cpaprep/internal/store"
)

// mockHistoryRepo implements store.HistoryRepo for testing.
type mockHistoryRepo struct {
	items         map[string]*store.ItemHistoryRecord
	tasks         map[string]*store.SimTaskRecord
	answered      map[string][]string
	lessonPct     map[string]float64
	readErr       error
	writeErr      error
	answeredReads int
}

func newMockHistoryRepo() *mockHistoryRepo {
	return &mockHistoryRepo{
		items:     make(map[string]*store.ItemHistoryRecord),
		tasks:     make(map[string]*store.SimTaskRecord),
		answered:  make(map[string][]string),
		lessonPct: make(map[string]float64),
	}
}

func (m *mockHistoryRepo) GetItemHistory(_ context.Context, _, itemID string) (*store.ItemHistoryRecord, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.items[itemID], nil
}

func (m *mockHistoryRepo) UpsertItemHistory(_ context.Context, _ string, rec *store.ItemHistoryRecord) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	cp := *rec
	m.items[rec.ItemID] = &cp
	return nil
}

func (m *mockHistoryRepo) ListItemHistory(_ context.Context, _, section string) ([]*store.ItemHistoryRecord, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	var out []*store.ItemHistoryRecord
	for _, rec := range m.items {
		if rec.Section == section {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *mockHistoryRepo) GetSimTaskHistory(_ context.Context, _, taskID string) (*store.SimTaskRecord, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.tasks[taskID], nil
}

func (m *mockHistoryRepo) UpsertSimTaskHistory(_ context.Context, _ string, rec *store.SimTaskRecord) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	cp := *rec
	m.tasks[rec.TaskID] = &cp
	return nil
}

func (m *mockHistoryRepo) ListSimTaskHistory(_ context.Context, _, section string) ([]*store.SimTaskRecord, error) {
	var out []*store.SimTaskRecord
	for _, rec := range m.tasks {
		if rec.Section == section {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *mockHistoryRepo) AnsweredItemIDs(_ context.Context, _, section string) ([]string, error) {
	m.answeredReads++
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.answered[section], nil
}

func (m *mockHistoryRepo) AddAnsweredItemID(_ context.Context, _, section, itemID string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	for _, id := range m.answered[section] {
		if id == itemID {
			return nil
		}
	}
	m.answered[section] = append(m.answered[section], itemID)
	return nil
}

func (m *mockHistoryRepo) LessonProgress(_ context.Context, _, _ string) (map[string]float64, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.lessonPct, nil
}

func (m *mockHistoryRepo) SetLessonProgress(_ context.Context, _, lessonID, _ string, percent float64) error {
	m.lessonPct[lessonID] = percent
	return nil
}

func (m *mockHistoryRepo) TopicStats(_ context.Context, _, _ string) ([]*store.TopicStatRecord, error) {
	return nil, nil
}

func newTestTracker(repo *mockHistoryRepo) *Tracker {
	return NewTracker("u1", repo, NewAnsweredCache(DefaultCacheTTL), nil)
}

func TestRecordAnswer_FirstAnswer(t *testing.T) {
	repo := newMockHistoryRepo()
	tr := newTestTracker(repo)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	rec := tr.RecordAnswer(context.Background(), "q1", true, "Inventory", "far", now)

	if rec.TimesAnswered != 1 || rec.TimesCorrect != 1 {
		t.Errorf("counters = %d/%d, want 1/1", rec.TimesCorrect, rec.TimesAnswered)
	}
	if rec.MasteryLevel != string(LevelLearning) {
		t.Errorf("MasteryLevel = %s, want learning", rec.MasteryLevel)
	}
	want := now.AddDate(0, 0, 1)
	if !rec.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", rec.NextReviewAt, want)
	}
	if repo.items["q1"] == nil {
		t.Error("expected record persisted")
	}
}

func TestRecordAnswer_MasteredInterval(t *testing.T) {
	repo := newMockHistoryRepo()
	tr := newTestTracker(repo)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	// 4/4 correct, then a fifth correct answer reaches mastered.
	var rec *store.ItemHistoryRecord
	for i := 0; i < 5; i++ {
		rec = tr.RecordAnswer(context.Background(), "q1", true, "Inventory", "far", now)
	}

	if rec.MasteryLevel != string(LevelMastered) {
		t.Fatalf("MasteryLevel = %s, want mastered", rec.MasteryLevel)
	}
	want := now.AddDate(0, 0, 7)
	if !rec.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want lastAnsweredAt + 7 days", rec.NextReviewAt)
	}
}

func TestRecordAnswer_IncorrectForcesImmediateReview(t *testing.T) {
	repo := newMockHistoryRepo()
	tr := newTestTracker(repo)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		tr.RecordAnswer(context.Background(), "q1", true, "Inventory", "far", now)
	}
	rec := tr.RecordAnswer(context.Background(), "q1", false, "Inventory", "far", now)

	if !rec.NextReviewAt.Equal(now) {
		t.Errorf("NextReviewAt = %v, want %v (interval 0 after a miss)", rec.NextReviewAt, now)
	}
	if rec.TimesAnswered != 6 || rec.TimesCorrect != 5 {
		t.Errorf("counters = %d/%d, want 5/6", rec.TimesCorrect, rec.TimesAnswered)
	}
}

func TestRecordAnswer_ReadFailureStartsFresh(t *testing.T) {
	repo := newMockHistoryRepo()
	repo.readErr = errors.New("network down")
	tr := newTestTracker(repo)

	rec := tr.RecordAnswer(context.Background(), "q1", true, "Inventory", "far", time.Now())
	if rec == nil {
		t.Fatal("expected a record despite read failure")
	}
	if rec.TimesAnswered != 1 {
		t.Errorf("TimesAnswered = %d, want 1", rec.TimesAnswered)
	}
}

func TestDueItems_OrderAndCap(t *testing.T) {
	repo := newMockHistoryRepo()
	tr := newTestTracker(repo)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	repo.items["a"] = &store.ItemHistoryRecord{ItemID: "a", Section: "far", NextReviewAt: now.AddDate(0, 0, -1)}
	repo.items["b"] = &store.ItemHistoryRecord{ItemID: "b", Section: "far", NextReviewAt: now.AddDate(0, 0, -3)}
	repo.items["c"] = &store.ItemHistoryRecord{ItemID: "c", Section: "far", NextReviewAt: now.AddDate(0, 0, -2)}
	repo.items["d"] = &store.ItemHistoryRecord{ItemID: "d", Section: "far", NextReviewAt: now.AddDate(0, 0, 2)}
	repo.items["e"] = &store.ItemHistoryRecord{ItemID: "e", Section: "aud", NextReviewAt: now.AddDate(0, 0, -5)}

	due := tr.DueItems(context.Background(), "far", 2, now)
	if len(due) != 2 {
		t.Fatalf("len(due) = %d, want 2", len(due))
	}
	if due[0].ItemID != "b" || due[1].ItemID != "c" {
		t.Errorf("due order = [%s %s], want [b c]", due[0].ItemID, due[1].ItemID)
	}
}

func TestDueItems_IncludesExactlyDue(t *testing.T) {
	repo := newMockHistoryRepo()
	tr := newTestTracker(repo)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	repo.items["a"] = &store.ItemHistoryRecord{ItemID: "a", Section: "far", NextReviewAt: now}

	due := tr.DueItems(context.Background(), "far", 0, now)
	if len(due) != 1 {
		t.Errorf("an item due exactly now should be returned, got %d items", len(due))
	}
}

func TestRecentlyIncorrect(t *testing.T) {
	repo := newMockHistoryRepo()
	tr := newTestTracker(repo)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	repo.items["old-miss"] = &store.ItemHistoryRecord{ItemID: "old-miss", Section: "far", LastCorrect: false, LastAnsweredAt: now.AddDate(0, 0, -10)}
	repo.items["recent-miss"] = &store.ItemHistoryRecord{ItemID: "recent-miss", Section: "far", LastCorrect: false, LastAnsweredAt: now.AddDate(0, 0, -2)}
	repo.items["newer-miss"] = &store.ItemHistoryRecord{ItemID: "newer-miss", Section: "far", LastCorrect: false, LastAnsweredAt: now.AddDate(0, 0, -1)}
	repo.items["recent-hit"] = &store.ItemHistoryRecord{ItemID: "recent-hit", Section: "far", LastCorrect: true, LastAnsweredAt: now.AddDate(0, 0, -1)}

	missed := tr.RecentlyIncorrect(context.Background(), "far", 7, 10, now)
	if len(missed) != 2 {
		t.Fatalf("len(missed) = %d, want 2", len(missed))
	}
	if missed[0].ItemID != "newer-miss" || missed[1].ItemID != "recent-miss" {
		t.Errorf("order = [%s %s], want newest miss first", missed[0].ItemID, missed[1].ItemID)
	}
}

func TestAnsweredItemIDs_CachedUntilInvalidated(t *testing.T) {
	repo := newMockHistoryRepo()
	repo.answered["far"] = []string{"q1", "q2"}
	tr := newTestTracker(repo)
	now := time.Now()

	ids := tr.AnsweredItemIDs(context.Background(), "far", now)
	if len(ids) != 2 {
		t.Fatalf("len(ids) = %d, want 2", len(ids))
	}
	tr.AnsweredItemIDs(context.Background(), "far", now)
	if repo.answeredReads != 1 {
		t.Errorf("answeredReads = %d, want 1 (second call served from cache)", repo.answeredReads)
	}

	// Recording an answer invalidates the section's cache entry.
	tr.RecordAnswer(context.Background(), "q3", true, "Inventory", "far", now)
	ids = tr.AnsweredItemIDs(context.Background(), "far", now)
	if repo.answeredReads != 2 {
		t.Errorf("answeredReads = %d, want 2 (cache invalidated by write)", repo.answeredReads)
	}
	if !ids["q3"] {
		t.Error("expected q3 in refreshed answered set")
	}
}

func TestAnsweredItemIDs_ReadFailureIsEmpty(t *testing.T) {
	repo := newMockHistoryRepo()
	repo.readErr = errors.New("storage offline")
	tr := newTestTracker(repo)

	ids := tr.AnsweredItemIDs(context.Background(), "far", time.Now())
	if len(ids) != 0 {
		t.Errorf("len(ids) = %d, want 0 on read failure", len(ids))
	}
}

func TestListPools_FailOpen(t *testing.T) {
	repo := newMockHistoryRepo()
	repo.readErr = errors.New("storage offline")
	tr := newTestTracker(repo)
	now := time.Now()

	if due := tr.DueItems(context.Background(), "far", 10, now); len(due) != 0 {
		t.Errorf("DueItems on failure = %d items, want 0", len(due))
	}
	if missed := tr.RecentlyIncorrect(context.Background(), "far", 7, 10, now); len(missed) != 0 {
		t.Errorf("RecentlyIncorrect on failure = %d items, want 0", len(missed))
	}
}
