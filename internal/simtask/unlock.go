package simtask

import (
	"context"

	"github.com/studymesh/cpaprep/internal/curriculum"
)

// UnlockStatus reports gating progress for one task type.
type UnlockStatus struct {
	TaskType string  `json:"taskType"`
	Unlocked bool    `json:"isUnlocked"`
	Progress float64 `json:"progress"` // percent of required topics covered
}

// Evaluator decides which simulation-task types a learner may attempt,
// based on topic coverage from completed lessons.
type Evaluator struct {
	resolver *curriculum.Resolver
}

// NewEvaluator creates an evaluator over a coverage resolver.
func NewEvaluator(resolver *curriculum.Resolver) *Evaluator {
	return &Evaluator{resolver: resolver}
}

// CheckUnlocked evaluates one task type against current lesson progress.
// A type with no required-topic entry is always unlocked at progress 100.
func (e *Evaluator) CheckUnlocked(ctx context.Context, taskType, section string, lessonProgress map[string]float64) UnlockStatus {
	required := RequiredTopics(section, taskType)
	if len(required) == 0 {
		return UnlockStatus{TaskType: taskType, Unlocked: true, Progress: 100}
	}

	covered := e.resolver.CoveredTopics(ctx, lessonProgress, section)

	hit := 0
	for _, topic := range required {
		if curriculum.MatchesAny(topic, covered) {
			hit++
		}
	}

	progress := 100 * float64(hit) / float64(len(required))
	return UnlockStatus{
		TaskType: taskType,
		Unlocked: progress >= UnlockThreshold,
		Progress: progress,
	}
}

// UnlockedTaskTypes evaluates every gated task type for the section.
func (e *Evaluator) UnlockedTaskTypes(ctx context.Context, section string, lessonProgress map[string]float64) []UnlockStatus {
	types := TaskTypes(section)
	statuses := make([]UnlockStatus, 0, len(types))
	for _, t := range types {
		statuses = append(statuses, e.CheckUnlocked(ctx, t, section, lessonProgress))
	}
	return statuses
}

// AnyUnlocked reports whether at least one task type is open for the section.
func (e *Evaluator) AnyUnlocked(ctx context.Context, section string, lessonProgress map[string]float64) bool {
	for _, s := range e.UnlockedTaskTypes(ctx, section, lessonProgress) {
		if s.Unlocked {
			return true
		}
	}
	return false
}
