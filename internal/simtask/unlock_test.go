package simtask

import (
	"context"
	"testing"

	"github.com/studymesh/cpaprep/internal/curriculum"
	"github.com/studymesh/cpaprep/internal/lessons"
)

func newTestEvaluator() *Evaluator {
	resolver := curriculum.NewResolver(lessons.NewStaticProvider(), nil)
	return NewEvaluator(resolver)
}

func TestCheckUnlocked_NoCoverage(t *testing.T) {
	e := newTestEvaluator()

	status := e.CheckUnlocked(context.Background(), "journal-entry", "far", map[string]float64{})
	if status.Unlocked {
		t.Error("expected locked with zero lesson progress")
	}
	if status.Progress != 0 {
		t.Errorf("Progress = %.0f, want 0", status.Progress)
	}
}

func TestCheckUnlocked_ThreeOfFour(t *testing.T) {
	e := newTestEvaluator()

	// journal-entry requires Revenue Recognition, Inventory, PP&E, Bonds.
	progress := map[string]float64{
		"far-revenue-recognition": 100,
		"far-inventory":           100,
		"far-ppe":                 85,
	}

	status := e.CheckUnlocked(context.Background(), "journal-entry", "far", progress)
	if status.Progress != 75 {
		t.Errorf("Progress = %.0f, want 75", status.Progress)
	}
	if !status.Unlocked {
		t.Error("75%% coverage is past the 70%% threshold, expected unlocked")
	}
}

func TestCheckUnlocked_UnknownTypeAlwaysOpen(t *testing.T) {
	e := newTestEvaluator()

	status := e.CheckUnlocked(context.Background(), "written-communication", "far", nil)
	if !status.Unlocked {
		t.Error("ungated task type must be unlocked")
	}
	if status.Progress != 100 {
		t.Errorf("Progress = %.0f, want 100", status.Progress)
	}
}

func TestUnlockedTaskTypes_CoversEveryGatedType(t *testing.T) {
	e := newTestEvaluator()

	statuses := e.UnlockedTaskTypes(context.Background(), "far", map[string]float64{})
	if len(statuses) != len(TaskTypes("far")) {
		t.Errorf("len(statuses) = %d, want %d", len(statuses), len(TaskTypes("far")))
	}
	for _, s := range statuses {
		if s.Unlocked {
			t.Errorf("task %s unlocked with no coverage", s.TaskType)
		}
	}
}

func TestAnyUnlocked(t *testing.T) {
	e := newTestEvaluator()

	if e.AnyUnlocked(context.Background(), "far", map[string]float64{}) {
		t.Error("nothing should be unlocked with zero progress")
	}

	progress := map[string]float64{
		"far-conceptual-framework": 100, // GAAP + Conceptual Framework → research unlocks
	}
	if !e.AnyUnlocked(context.Background(), "far", progress) {
		t.Error("research should unlock once its required topics are covered")
	}
}
