package selector

import (
	"context"
	"testing"
	"time"

	"github.com/studymesh/cpaprep/internal/mastery"
	"github.com/studymesh/cpaprep/internal/store"
)

// stubRepo implements store.HistoryRepo over fixed slices.
type stubRepo struct {
	items    []*store.ItemHistoryRecord
	answered []string
}

func (s *stubRepo) GetItemHistory(_ context.Context, _, itemID string) (*store.ItemHistoryRecord, error) {
	for _, rec := range s.items {
		if rec.ItemID == itemID {
			return rec, nil
		}
	}
	return nil, nil
}
func (s *stubRepo) UpsertItemHistory(_ context.Context, _ string, _ *store.ItemHistoryRecord) error {
	return nil
}
func (s *stubRepo) ListItemHistory(_ context.Context, _, section string) ([]*store.ItemHistoryRecord, error) {
	var out []*store.ItemHistoryRecord
	for _, rec := range s.items {
		if rec.Section == section {
			out = append(out, rec)
		}
	}
	return out, nil
}
func (s *stubRepo) GetSimTaskHistory(_ context.Context, _, _ string) (*store.SimTaskRecord, error) {
	return nil, nil
}
func (s *stubRepo) UpsertSimTaskHistory(_ context.Context, _ string, _ *store.SimTaskRecord) error {
	return nil
}
func (s *stubRepo) ListSimTaskHistory(_ context.Context, _, _ string) ([]*store.SimTaskRecord, error) {
	return nil, nil
}
func (s *stubRepo) AnsweredItemIDs(_ context.Context, _, _ string) ([]string, error) {
	return s.answered, nil
}
func (s *stubRepo) AddAnsweredItemID(_ context.Context, _, _, _ string) error { return nil }
func (s *stubRepo) LessonProgress(_ context.Context, _, _ string) (map[string]float64, error) {
	return nil, nil
}
func (s *stubRepo) SetLessonProgress(_ context.Context, _, _, _ string, _ float64) error {
	return nil
}
func (s *stubRepo) TopicStats(_ context.Context, _, _ string) ([]*store.TopicStatRecord, error) {
	return nil, nil
}

func newTestSelector(repo *stubRepo) *Selector {
	tracker := mastery.NewTracker("u1", repo, nil, nil)
	return New(tracker, nil)
}

func basePool() map[string]string {
	return map[string]string{
		"q1": "Inventory",
		"q2": "Inventory",
		"q3": "Leases",
		"q4": "Bonds",
		"q5": "Bonds",
		"q6": "Revenue Recognition",
		"q7": "Revenue Recognition",
		"q8": "PP&E",
	}
}

func TestSelect_DueBeforeIncorrectBeforeFresh(t *testing.T) {
	now := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)
	repo := &stubRepo{
		items: []*store.ItemHistoryRecord{
			{ItemID: "q1", Section: "far", Topic: "Inventory", NextReviewAt: now.AddDate(0, 0, -2), LastCorrect: true, LastAnsweredAt: now.AddDate(0, 0, -3)},
			{ItemID: "q2", Section: "far", Topic: "Inventory", NextReviewAt: now.AddDate(0, 0, 3), LastCorrect: false, LastAnsweredAt: now.AddDate(0, 0, -1)},
		},
		answered: []string{"q1", "q2"},
	}
	s := newTestSelector(repo)

	sel := s.Select(context.Background(), "far", Request{Pool: basePool(), Count: 4}, now)

	if len(sel.ItemIDs) != 4 {
		t.Fatalf("len(ItemIDs) = %d, want 4", len(sel.ItemIDs))
	}
	if sel.ItemIDs[0] != "q1" {
		t.Errorf("ItemIDs[0] = %s, want the due item q1", sel.ItemIDs[0])
	}
	if sel.ItemIDs[1] != "q2" {
		t.Errorf("ItemIDs[1] = %s, want the recently missed q2", sel.ItemIDs[1])
	}
	if sel.Breakdown.Due != 1 || sel.Breakdown.Incorrect != 1 || sel.Breakdown.Fresh != 2 {
		t.Errorf("breakdown = %+v, want due 1, incorrect 1, fresh 2", sel.Breakdown)
	}
}

func TestSelect_WeakTopicFreshFirst(t *testing.T) {
	now := time.Now()
	s := newTestSelector(&stubRepo{})

	sel := s.Select(context.Background(), "far", Request{
		Pool:       basePool(),
		Count:      2,
		WeakTopics: []string{"Bonds"},
	}, now)

	if len(sel.ItemIDs) != 2 {
		t.Fatalf("len(ItemIDs) = %d, want 2", len(sel.ItemIDs))
	}
	for i, id := range []string{"q4", "q5"} {
		if sel.ItemIDs[i] != id {
			t.Errorf("ItemIDs[%d] = %s, want weak-topic item %s", i, sel.ItemIDs[i], id)
		}
	}
}

func TestSelect_NoDuplicates(t *testing.T) {
	now := time.Now()
	repo := &stubRepo{
		items: []*store.ItemHistoryRecord{
			// Both due and recently incorrect: must be picked once.
			{ItemID: "q1", Section: "far", Topic: "Inventory", NextReviewAt: now.AddDate(0, 0, -1), LastCorrect: false, LastAnsweredAt: now.Add(-time.Hour)},
		},
		answered: []string{"q1"},
	}
	s := newTestSelector(repo)

	sel := s.Select(context.Background(), "far", Request{Pool: basePool(), Count: 8}, now)

	seen := make(map[string]int)
	for _, id := range sel.ItemIDs {
		seen[id]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("item %s selected %d times", id, n)
		}
	}
	if len(sel.ItemIDs) != 8 {
		t.Errorf("len(ItemIDs) = %d, want the full pool of 8", len(sel.ItemIDs))
	}
}

func TestSelect_ExamProximityShiftsCaps(t *testing.T) {
	tests := []struct {
		name       string
		daysOut    int
		wantDueCap int
	}{
		{"far out", 60, 4},     // ceil(10 * 0.4)
		{"crunch window", 10, 5}, // ceil(10 * 0.5)
		{"final week", 3, 6},     // ceil(10 * 0.6)
	}
	now := time.Now()
	for _, tt := range tests {
		exam := now.AddDate(0, 0, tt.daysOut)
		dueCap, _ := poolCaps(10, &exam, now)
		if dueCap != tt.wantDueCap {
			t.Errorf("%s: dueCap = %d, want %d", tt.name, dueCap, tt.wantDueCap)
		}
	}

	// No exam date uses the default shares.
	dueCap, incorrectCap := poolCaps(10, nil, now)
	if dueCap != 4 || incorrectCap != 3 {
		t.Errorf("no exam date: caps = %d/%d, want 4/3", dueCap, incorrectCap)
	}
}

func TestSelect_DueCapSpillsWhenFreshRunsDry(t *testing.T) {
	now := time.Now()
	var items []*store.ItemHistoryRecord
	answered := make([]string, 0, len(basePool()))
	for id, topic := range basePool() {
		items = append(items, &store.ItemHistoryRecord{
			ItemID: id, Section: "far", Topic: topic,
			NextReviewAt: now.AddDate(0, 0, -1), LastCorrect: true,
			LastAnsweredAt: now.AddDate(0, 0, -2),
		})
		answered = append(answered, id)
	}
	s := newTestSelector(&stubRepo{items: items, answered: answered})

	// Everything is due and nothing is fresh; the 40% cap must not leave
	// the request short.
	sel := s.Select(context.Background(), "far", Request{Pool: basePool(), Count: 6}, now)
	if len(sel.ItemIDs) != 6 {
		t.Errorf("len(ItemIDs) = %d, want 6 via spill", len(sel.ItemIDs))
	}
	if sel.Breakdown.Due != 6 {
		t.Errorf("Breakdown.Due = %d, want 6", sel.Breakdown.Due)
	}
}

func TestSelect_CurriculumFilter(t *testing.T) {
	now := time.Now()
	s := newTestSelector(&stubRepo{})

	sel := s.Select(context.Background(), "far", Request{
		Pool:    basePool(),
		Count:   2,
		Covered: map[string]bool{"Inventory": true},
		Preview: map[string]bool{},
	}, now)

	for _, id := range sel.ItemIDs {
		if id != "q1" && id != "q2" {
			t.Errorf("selected %s, outside the covered topic", id)
		}
	}
	if sel.Breakdown.FilteredOut != 6 {
		t.Errorf("FilteredOut = %d, want 6", sel.Breakdown.FilteredOut)
	}
}

func TestSelect_FilterStarvationFallsBack(t *testing.T) {
	now := time.Now()
	s := newTestSelector(&stubRepo{})

	// Only two items match the covered set but five are requested; the
	// filter must yield to the full pool rather than starve the session.
	sel := s.Select(context.Background(), "far", Request{
		Pool:    basePool(),
		Count:   5,
		Covered: map[string]bool{"Inventory": true},
		Preview: map[string]bool{},
	}, now)

	if len(sel.ItemIDs) != 5 {
		t.Errorf("len(ItemIDs) = %d, want 5 from the full pool", len(sel.ItemIDs))
	}
	if sel.Breakdown.FilteredOut != 0 {
		t.Errorf("FilteredOut = %d, want 0 after fallback", sel.Breakdown.FilteredOut)
	}
}

func TestSelect_DegenerateRequests(t *testing.T) {
	now := time.Now()
	s := newTestSelector(&stubRepo{})

	if sel := s.Select(context.Background(), "far", Request{Pool: basePool(), Count: 0}, now); len(sel.ItemIDs) != 0 {
		t.Errorf("Count 0 returned %d items", len(sel.ItemIDs))
	}
	if sel := s.Select(context.Background(), "far", Request{Pool: nil, Count: 5}, now); len(sel.ItemIDs) != 0 {
		t.Errorf("empty pool returned %d items", len(sel.ItemIDs))
	}
	if sel := s.Select(context.Background(), "far", Request{Pool: basePool(), Count: 100}, now); len(sel.ItemIDs) != len(basePool()) {
		t.Errorf("oversized request returned %d items, want %d", len(sel.ItemIDs), len(basePool()))
	}
}
