package curriculum

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/studymesh/cpaprep/internal/lessons"
)

// fakeProvider implements lessons.Provider with a fixed list.
type fakeProvider struct {
	list []lessons.Lesson
	err  error
}

func (f *fakeProvider) ListLessons(_ context.Context, _ string) ([]lessons.Lesson, error) {
	return f.list, f.err
}

func testLessons() []lessons.Lesson {
	return []lessons.Lesson{
		{ID: "l1", Section: "far", Topics: []string{"Revenue Recognition"}, Order: 10},
		{ID: "l2", Section: "far", Topics: []string{"Inventory"}, Order: 20},
		{ID: "l3", Section: "far", Topics: []string{"PP&E", "Depreciation"}, Order: 30},
		{ID: "l4", Section: "far", Topics: []string{"Leases"}, Order: 40},
	}
}

func TestCoveredTopics_Threshold(t *testing.T) {
	r := NewResolver(&fakeProvider{list: testLessons()}, nil)

	covered := r.CoveredTopics(context.Background(), map[string]float64{
		"l1": 79, // just under: not covered
		"l2": 80, // at the threshold: covered
	}, "far")

	if covered["Revenue Recognition"] {
		t.Error("79% lesson must not be covered")
	}
	if !covered["Inventory"] {
		t.Error("80% lesson must be covered")
	}
	// Both raw and normalized forms are in the set.
	if !covered["inventory"] {
		t.Error("normalized topic form missing from covered set")
	}
}

func TestCoveredTopics_OutOfRangeProgress(t *testing.T) {
	r := NewResolver(&fakeProvider{list: testLessons()}, nil)

	covered := r.CoveredTopics(context.Background(), map[string]float64{
		"l1": -10,        // negative: not started
		"l2": math.NaN(), // NaN: not started
		"l3": 150,        // past 100: complete
	}, "far")

	if covered["Revenue Recognition"] || covered["Inventory"] {
		t.Error("negative/NaN progress must count as uncovered")
	}
	if !covered["PP&E"] || !covered["Depreciation"] {
		t.Error(">100 progress must count as complete")
	}
}

func TestCoveredTopics_UnknownLessonIgnored(t *testing.T) {
	r := NewResolver(&fakeProvider{list: testLessons()}, nil)

	covered := r.CoveredTopics(context.Background(), map[string]float64{
		"ghost-lesson": 100,
	}, "far")
	if len(covered) != 0 {
		t.Errorf("unknown lesson contributed %d topics, want 0", len(covered))
	}
}

func TestCoveredTopics_ProviderFailureIsEmpty(t *testing.T) {
	r := NewResolver(&fakeProvider{err: errors.New("offline")}, nil)

	covered := r.CoveredTopics(context.Background(), map[string]float64{"l1": 100}, "far")
	if len(covered) != 0 {
		t.Errorf("provider failure yielded %d topics, want 0", len(covered))
	}
}

func TestPreviewTopics_Lookahead(t *testing.T) {
	r := NewResolver(&fakeProvider{list: testLessons()}, nil)

	// All four incomplete; ceil(4 * 0.1) = 1 → only the earliest previews.
	preview := r.PreviewTopics(context.Background(), map[string]float64{}, "far", 0)
	if !preview["Revenue Recognition"] {
		t.Error("earliest incomplete lesson should preview")
	}
	if preview["Inventory"] || preview["Leases"] {
		t.Error("preview window leaked beyond the lookahead fraction")
	}

	// Half lookahead takes two of four.
	preview = r.PreviewTopics(context.Background(), map[string]float64{}, "far", 0.5)
	if !preview["Revenue Recognition"] || !preview["Inventory"] {
		t.Error("0.5 lookahead should preview the two earliest lessons")
	}
}

func TestPreviewTopics_SkipsCompleted(t *testing.T) {
	r := NewResolver(&fakeProvider{list: testLessons()}, nil)

	preview := r.PreviewTopics(context.Background(), map[string]float64{
		"l1": 100,
		"l2": 95,
	}, "far", 0)
	if preview["Revenue Recognition"] || preview["Inventory"] {
		t.Error("completed lessons must not preview")
	}
	if !preview["PP&E"] {
		t.Error("earliest incomplete lesson (l3) should preview")
	}
}

func TestPreviewTopics_AllComplete(t *testing.T) {
	r := NewResolver(&fakeProvider{list: testLessons()}, nil)

	preview := r.PreviewTopics(context.Background(), map[string]float64{
		"l1": 100, "l2": 100, "l3": 100, "l4": 100,
	}, "far", 0)
	if len(preview) != 0 {
		t.Errorf("len(preview) = %d, want 0 when everything is complete", len(preview))
	}
}

func TestFilterItems(t *testing.T) {
	covered := map[string]bool{"Inventory": true}
	preview := map[string]bool{"Leases": true}
	items := map[string]string{
		"q1": "Inventory",
		"q2": "Leases",
		"q3": "Bonds",
		"q4": "inventory costing", // substring match against Inventory
	}

	kept := FilterItems(items, covered, preview)
	want := []string{"q1", "q2", "q4"}
	if len(kept) != len(want) {
		t.Fatalf("kept = %v, want %v", kept, want)
	}
	for i, id := range want {
		if kept[i] != id {
			t.Errorf("kept[%d] = %s, want %s", i, kept[i], id)
		}
	}
}
