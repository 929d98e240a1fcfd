package planner

import "time"

// ActivityType categorizes a study activity.
type ActivityType string

const (
	ActivityLesson     ActivityType = "lesson"
	ActivityMCQ        ActivityType = "mcq"
	ActivityTBS        ActivityType = "tbs"
	ActivityFlashcards ActivityType = "flashcards"
	ActivityReview     ActivityType = "review"
)

// Priority is the scheduling tier of an activity. The final plan is sorted
// by tier; insertion order is preserved within a tier.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// priorityRank orders tiers for sorting, lowest rank first.
var priorityRank = map[Priority]int{
	PriorityCritical: 0,
	PriorityHigh:     1,
	PriorityMedium:   2,
	PriorityLow:      3,
}

// Activity is a single recommended unit of study for the day.
type Activity struct {
	ID               string            `json:"id"`
	Type             ActivityType      `json:"type"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	EstimatedMinutes int               `json:"estimatedMinutes"`
	Points           int               `json:"points"`
	Priority         Priority          `json:"priority"`
	Reason           string            `json:"reason"`
	Params           map[string]string `json:"params,omitempty"`
	Completed        bool              `json:"completed"`
	CompletedAt      *time.Time        `json:"completedAt,omitempty"`
}

// Summary condenses the plan for dashboard display.
type Summary struct {
	TotalActivities int                  `json:"totalActivities"`
	Counts          map[ActivityType]int `json:"counts"`
	WeakAreaFocus   []string             `json:"weakAreaFocus"`
}

// Plan is a day's recommended activity list. Plans are ephemeral: they are
// recomputed from current state on every request, never persisted as a
// ledger.
type Plan struct {
	Date             string     `json:"date"`
	Section          string     `json:"section"`
	TargetPoints     int        `json:"targetPoints"`
	EstimatedMinutes int        `json:"estimatedMinutes"`
	Activities       []Activity `json:"activities"`
	Summary          Summary    `json:"summary"`
	GeneratedAt      time.Time  `json:"generatedAt"`
}

// Snapshot is the caller-supplied view of user state that a plan is
// computed from. All I/O needed to build it happens before composition;
// the composer itself is deterministic given a Snapshot and a clock.
type Snapshot struct {
	Section                 string             `json:"section"`
	ExamDate                string             `json:"examDate,omitempty"` // ISO date; malformed input is tolerated
	DailyGoalPoints         int                `json:"dailyGoalPoints"`
	TopicStats              []TopicStat        `json:"topicStats"`
	TaskStats               []TaskStat         `json:"taskStats"`
	DueItemIDsHint          []string           `json:"dueItemIdsHint,omitempty"`
	LessonProgress          map[string]float64 `json:"lessonProgress"`
	FlashcardsDue           int                `json:"flashcardsDue"`
	CurrentStreak           int                `json:"currentStreak"`
	TodayPoints             int                `json:"todayPoints"`
	CurriculumFilterEnabled bool               `json:"curriculumFilterEnabled,omitempty"`
	PreviewModeEnabled      bool               `json:"previewModeEnabled,omitempty"`
}

// TopicStat is a read-only per-topic accuracy aggregate.
type TopicStat struct {
	Topic           string     `json:"topic"`
	Accuracy        float64    `json:"accuracy"` // 0-100
	TotalQuestions  int        `json:"totalQuestions"`
	Correct         int        `json:"correct"`
	LastPracticedAt *time.Time `json:"lastPracticedAt,omitempty"`
}

// TaskStat is a read-only per-task attempt aggregate.
type TaskStat struct {
	TaskID   string  `json:"taskId"`
	Topic    string  `json:"topic"`
	Attempts int     `json:"attempts"`
	AvgScore float64 `json:"avgScore"`
	Mastered bool    `json:"mastered"`
}
