package planner

import (
	"context"
	"testing"
	"time"

	"github.com/studymesh/cpaprep/internal/curriculum"
	"github.com/studymesh/cpaprep/internal/lessons"
	"github.com/studymesh/cpaprep/internal/mastery"
	"github.com/studymesh/cpaprep/internal/selector"
	"github.com/studymesh/cpaprep/internal/simtask"
	"github.com/studymesh/cpaprep/internal/store"
)

// planRepo implements store.HistoryRepo; the composer only reads through it.
type planRepo struct {
	items    []*store.ItemHistoryRecord
	answered []string
}

func (p *planRepo) GetItemHistory(_ context.Context, _, _ string) (*store.ItemHistoryRecord, error) {
	return nil, nil
}
func (p *planRepo) UpsertItemHistory(_ context.Context, _ string, _ *store.ItemHistoryRecord) error {
	return nil
}
func (p *planRepo) ListItemHistory(_ context.Context, _, _ string) ([]*store.ItemHistoryRecord, error) {
	return p.items, nil
}
func (p *planRepo) GetSimTaskHistory(_ context.Context, _, _ string) (*store.SimTaskRecord, error) {
	return nil, nil
}
func (p *planRepo) UpsertSimTaskHistory(_ context.Context, _ string, _ *store.SimTaskRecord) error {
	return nil
}
func (p *planRepo) ListSimTaskHistory(_ context.Context, _, _ string) ([]*store.SimTaskRecord, error) {
	return nil, nil
}
func (p *planRepo) AnsweredItemIDs(_ context.Context, _, _ string) ([]string, error) {
	return p.answered, nil
}
func (p *planRepo) AddAnsweredItemID(_ context.Context, _, _, _ string) error { return nil }
func (p *planRepo) LessonProgress(_ context.Context, _, _ string) (map[string]float64, error) {
	return nil, nil
}
func (p *planRepo) SetLessonProgress(_ context.Context, _, _, _ string, _ float64) error {
	return nil
}
func (p *planRepo) TopicStats(_ context.Context, _, _ string) ([]*store.TopicStatRecord, error) {
	return nil, nil
}

func newTestComposer(repo *planRepo) *Composer {
	provider := lessons.NewStaticProvider()
	tracker := mastery.NewTracker("u1", repo, nil, nil)
	resolver := curriculum.NewResolver(provider, nil)
	evaluator := simtask.NewEvaluator(resolver)
	sel := selector.New(tracker, nil)
	return NewComposer(tracker, resolver, evaluator, sel, provider, nil)
}

func activityOfType(plan *Plan, typ ActivityType) (Activity, bool) {
	for _, a := range plan.Activities {
		if a.Type == typ {
			return a, true
		}
	}
	return Activity{}, false
}

func TestBuildPlan_CrunchWeek(t *testing.T) {
	c := newTestComposer(&planRepo{})
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	snap := Snapshot{
		Section:         "far",
		ExamDate:        now.AddDate(0, 0, 3).Format("2006-01-02"),
		DailyGoalPoints: 30,
		TopicStats: []TopicStat{
			{Topic: "Inventory", Accuracy: 50, TotalQuestions: 10, Correct: 5},
		},
		DueItemIDsHint: []string{"a", "b", "c", "d", "e"},
		LessonProgress: map[string]float64{"far-inventory": 60},
	}

	plan := c.BuildPlan(context.Background(), snap, now)
	if plan == nil {
		t.Fatal("BuildPlan returned nil")
	}

	// Exam in 3 days: 1.5x intensity on a 30-point goal.
	if plan.EstimatedMinutes == 0 {
		t.Error("EstimatedMinutes = 0, want a filled budget")
	}
	if plan.EstimatedMinutes > TargetMinutes(30, 1.5) {
		t.Errorf("EstimatedMinutes = %d, exceeds the %d-minute budget",
			plan.EstimatedMinutes, TargetMinutes(30, 1.5))
	}

	first := plan.Activities[0]
	if first.Priority != PriorityCritical || first.Type != ActivityMCQ {
		t.Errorf("first activity = %s/%s, want a critical mcq drill", first.Priority, first.Type)
	}
	if first.Params["topic"] != "Inventory" {
		t.Errorf("drill topic = %q, want Inventory", first.Params["topic"])
	}

	if _, ok := activityOfType(plan, ActivityReview); !ok {
		t.Error("5 due items should produce a retention review")
	}

	lesson, ok := activityOfType(plan, ActivityLesson)
	if !ok {
		t.Fatal("expected a lesson continuation activity")
	}
	if lesson.Params["lessonId"] != "far-inventory" {
		t.Errorf("lesson = %s, want the in-progress far-inventory", lesson.Params["lessonId"])
	}
	if lesson.Priority != PriorityHigh {
		t.Errorf("in-progress lesson priority = %s, want high", lesson.Priority)
	}

	// Only one lesson at 60%: nothing unlocks, so no simulation today.
	if _, ok := activityOfType(plan, ActivityTBS); ok {
		t.Error("no task type is unlocked yet, plan must not include a tbs")
	}
	if _, ok := activityOfType(plan, ActivityFlashcards); ok {
		t.Error("zero flashcards due, plan must not include a flashcard block")
	}

	if len(plan.Summary.WeakAreaFocus) != 1 || plan.Summary.WeakAreaFocus[0] != "Inventory" {
		t.Errorf("WeakAreaFocus = %v, want [Inventory]", plan.Summary.WeakAreaFocus)
	}
	if plan.Summary.TotalActivities != len(plan.Activities) {
		t.Errorf("TotalActivities = %d, want %d", plan.Summary.TotalActivities, len(plan.Activities))
	}
	if plan.Date != "2026-04-01" {
		t.Errorf("Date = %s, want 2026-04-01", plan.Date)
	}
}

func TestBuildPlan_NeverEmpty(t *testing.T) {
	c := newTestComposer(&planRepo{})
	now := time.Now()

	snaps := []Snapshot{
		{},                                    // zero everything
		{Section: "far", DailyGoalPoints: 0},  // no budget
		{Section: "far", ExamDate: "garbage"}, // malformed date
	}
	for i, snap := range snaps {
		plan := c.BuildPlan(context.Background(), snap, now)
		if plan == nil {
			t.Fatalf("snap %d: BuildPlan returned nil", i)
		}
		if len(plan.Activities) == 0 {
			t.Errorf("snap %d: empty plan, want at least the mixed-practice floor", i)
		}
		if plan.Section == "" {
			t.Errorf("snap %d: section not defaulted", i)
		}
	}
}

func TestBuildPlan_WeakTopicNeedsSample(t *testing.T) {
	c := newTestComposer(&planRepo{})
	now := time.Now()

	snap := Snapshot{
		Section:         "far",
		DailyGoalPoints: 30,
		TopicStats: []TopicStat{
			{Topic: "Inventory", Accuracy: 50, TotalQuestions: 10},
			{Topic: "Bonds", Accuracy: 20, TotalQuestions: 2}, // under the sample floor
		},
	}

	plan := c.BuildPlan(context.Background(), snap, now)
	for _, topic := range plan.Summary.WeakAreaFocus {
		if topic == "Bonds" {
			t.Error("2-question topic flagged weak; minimum sample is 3")
		}
	}
	if len(plan.Summary.WeakAreaFocus) != 1 || plan.Summary.WeakAreaFocus[0] != "Inventory" {
		t.Errorf("WeakAreaFocus = %v, want [Inventory]", plan.Summary.WeakAreaFocus)
	}
}

func TestBuildPlan_MediumWeakGetsHighPriority(t *testing.T) {
	c := newTestComposer(&planRepo{})
	now := time.Now()

	snap := Snapshot{
		Section:         "far",
		DailyGoalPoints: 30,
		TopicStats: []TopicStat{
			{Topic: "Leases", Accuracy: 65, TotalQuestions: 8},
		},
	}

	plan := c.BuildPlan(context.Background(), snap, now)
	var found bool
	for _, a := range plan.Activities {
		if a.Type == ActivityMCQ && a.Params["topic"] == "Leases" {
			found = true
			if a.Priority != PriorityHigh {
				t.Errorf("65%% topic priority = %s, want high", a.Priority)
			}
		}
	}
	if !found {
		t.Error("65% topic should produce a practice block")
	}
}

func TestBuildPlan_FlashcardsWhenDue(t *testing.T) {
	c := newTestComposer(&planRepo{})
	now := time.Now()

	plan := c.BuildPlan(context.Background(), Snapshot{
		Section:         "far",
		DailyGoalPoints: 30,
		FlashcardsDue:   12,
	}, now)

	a, ok := activityOfType(plan, ActivityFlashcards)
	if !ok {
		t.Fatal("12 cards due, expected a flashcard activity")
	}
	if a.Params["count"] != "12" {
		t.Errorf("flashcard count = %s, want 12", a.Params["count"])
	}
}

func TestBuildPlan_TBSWhenUnlocked(t *testing.T) {
	c := newTestComposer(&planRepo{})
	now := time.Now()

	// Full coverage of the research prerequisites.
	plan := c.BuildPlan(context.Background(), Snapshot{
		Section:         "far",
		DailyGoalPoints: 60,
		LessonProgress:  map[string]float64{"far-conceptual-framework": 100},
	}, now)

	a, ok := activityOfType(plan, ActivityTBS)
	if !ok {
		t.Fatal("research prerequisites covered, expected a tbs activity")
	}
	if a.Params["taskType"] == "" {
		t.Error("tbs activity missing taskType param")
	}
	if a.Priority != PriorityHigh {
		t.Errorf("tbs priority = %s, want high", a.Priority)
	}
}

func TestBuildPlan_PriorityOrdering(t *testing.T) {
	c := newTestComposer(&planRepo{})
	now := time.Now()

	plan := c.BuildPlan(context.Background(), Snapshot{
		Section:         "far",
		DailyGoalPoints: 100,
		TopicStats: []TopicStat{
			{Topic: "Inventory", Accuracy: 40, TotalQuestions: 10},
			{Topic: "Leases", Accuracy: 65, TotalQuestions: 10},
		},
		DueItemIDsHint: []string{"a", "b", "c", "d", "e", "f"},
		FlashcardsDue:  10,
	}, now)

	last := -1
	for _, a := range plan.Activities {
		rank := priorityRank[a.Priority]
		if rank < last {
			t.Fatalf("activity %q out of order: rank %d after %d", a.Title, rank, last)
		}
		last = rank
	}
}

func TestBuildPlan_MixedPracticeCarriesItemIDs(t *testing.T) {
	c := newTestComposer(&planRepo{})
	now := time.Now()

	plan := c.BuildPlan(context.Background(), Snapshot{
		Section:         "far",
		DailyGoalPoints: 100,
	}, now)

	var mixed *Activity
	for i := range plan.Activities {
		if plan.Activities[i].Title == "Mixed Practice" {
			mixed = &plan.Activities[i]
		}
	}
	if mixed == nil {
		t.Fatal("large budget with no weak topics should end in mixed practice")
	}
	if mixed.Params["itemIds"] == "" {
		t.Error("mixed practice selected no items from the bank")
	}
	if mixed.Priority != PriorityLow {
		t.Errorf("mixed practice priority = %s, want low", mixed.Priority)
	}
}
