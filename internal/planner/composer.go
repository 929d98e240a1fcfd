package planner

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studymesh/cpaprep/internal/bank"
	"github.com/studymesh/cpaprep/internal/curriculum"
	"github.com/studymesh/cpaprep/internal/lessons"
	"github.com/studymesh/cpaprep/internal/mastery"
	"github.com/studymesh/cpaprep/internal/selector"
	"github.com/studymesh/cpaprep/internal/simtask"
)

// Weak-topic thresholds. A topic needs a minimum sample before it can be
// flagged weak at all.
const (
	criticalAccuracy = 60.0
	mediumAccuracy   = 70.0
	weakMinQuestions = 3

	maxCriticalWeak = 3
	maxMediumWeak   = 2
)

// Per-activity sizing.
const (
	criticalQuestions = 15
	criticalMinutes   = 20
	criticalPoints    = 15

	mediumQuestions = 10
	mediumMinutes   = 15
	mediumPoints    = 10

	retentionMinDue  = 5
	retentionMinutes = 15
	retentionPoints  = 10

	flashcardMinutes = 10
	flashcardPoints  = 5

	lessonMinRemaining = 15

	tbsMinutes = 20
	tbsPoints  = 15

	fillerMinQuestions = 5
	fillerMaxQuestions = 15
)

// Composer assembles the daily plan. It is stateless orchestration over a
// snapshot: identical inputs and clock produce identical plans, except for
// the generated activity IDs.
type Composer struct {
	tracker   *mastery.Tracker
	resolver  *curriculum.Resolver
	evaluator *simtask.Evaluator
	selector  *selector.Selector
	lessons   lessons.Provider
	log       *zap.Logger
}

// NewComposer wires the composer to its four collaborators.
func NewComposer(tracker *mastery.Tracker, resolver *curriculum.Resolver, evaluator *simtask.Evaluator, sel *selector.Selector, provider lessons.Provider, log *zap.Logger) *Composer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Composer{
		tracker:   tracker,
		resolver:  resolver,
		evaluator: evaluator,
		selector:  sel,
		lessons:   provider,
		log:       log,
	}
}

// BuildPlan composes a time-boxed, priority-ordered activity list. It never
// fails: degraded input yields a smaller or generic plan, never an error.
//
// The assembly order is fixed. Steps are skipped when the remaining budget
// is too small, never reordered.
func (c *Composer) BuildPlan(ctx context.Context, snap Snapshot, now time.Time) *Plan {
	section := snap.Section
	if section == "" {
		section = lessons.SectionFAR
	}

	intensity := Intensity(snap.ExamDate, now)
	target := TargetMinutes(snap.DailyGoalPoints, intensity)
	remaining := target

	var activities []Activity
	var weakFocus []string
	weakSeen := make(map[string]bool)

	add := func(a Activity) {
		a.ID = uuid.NewString()
		activities = append(activities, a)
		remaining -= a.EstimatedMinutes
	}
	focusOn := func(topic string) {
		if !weakSeen[topic] {
			weakSeen[topic] = true
			weakFocus = append(weakFocus, topic)
		}
	}

	critical, medium := weakTopics(snap.TopicStats)

	// 1. Critical weak topics.
	for i := 0; i < len(critical) && i < maxCriticalWeak; i++ {
		if remaining < criticalMinutes {
			break
		}
		t := critical[i]
		add(Activity{
			Type:             ActivityMCQ,
			Title:            fmt.Sprintf("Drill: %s", t.Topic),
			Description:      fmt.Sprintf("%d questions on %s", criticalQuestions, t.Topic),
			EstimatedMinutes: criticalMinutes,
			Points:           criticalPoints,
			Priority:         PriorityCritical,
			Reason:           fmt.Sprintf("Accuracy on %s is %.0f%% over %d questions", t.Topic, t.Accuracy, t.TotalQuestions),
			Params: map[string]string{
				"section": section,
				"topic":   t.Topic,
				"count":   fmt.Sprint(criticalQuestions),
			},
		})
		focusOn(t.Topic)
	}

	// 2. Medium weak topics.
	for i := 0; i < len(medium) && i < maxMediumWeak; i++ {
		if remaining < mediumMinutes {
			break
		}
		t := medium[i]
		add(Activity{
			Type:             ActivityMCQ,
			Title:            fmt.Sprintf("Practice: %s", t.Topic),
			Description:      fmt.Sprintf("%d questions on %s", mediumQuestions, t.Topic),
			EstimatedMinutes: mediumMinutes,
			Points:           mediumPoints,
			Priority:         PriorityHigh,
			Reason:           fmt.Sprintf("Accuracy on %s is %.0f%%, below the 70%% comfort bar", t.Topic, t.Accuracy),
			Params: map[string]string{
				"section": section,
				"topic":   t.Topic,
				"count":   fmt.Sprint(mediumQuestions),
			},
		})
		focusOn(t.Topic)
	}

	// 3. Retention review when enough items have come due.
	dueCount := len(snap.DueItemIDsHint)
	if dueCount == 0 {
		dueCount = len(c.tracker.DueItems(ctx, section, 0, now))
	}
	if dueCount >= retentionMinDue && remaining >= retentionMinutes {
		add(Activity{
			Type:             ActivityReview,
			Title:            "Retention Review",
			Description:      fmt.Sprintf("Revisit %d items scheduled for review", dueCount),
			EstimatedMinutes: retentionMinutes,
			Points:           retentionPoints,
			Priority:         PriorityHigh,
			Reason:           fmt.Sprintf("%d items have reached their spaced review date", dueCount),
			Params: map[string]string{
				"section": section,
				"count":   fmt.Sprint(dueCount),
			},
		})
	}

	// 4. Flashcards.
	if snap.FlashcardsDue > 0 && remaining >= flashcardMinutes {
		add(Activity{
			Type:             ActivityFlashcards,
			Title:            "Flashcard Review",
			Description:      fmt.Sprintf("%d cards due", snap.FlashcardsDue),
			EstimatedMinutes: flashcardMinutes,
			Points:           flashcardPoints,
			Priority:         PriorityMedium,
			Reason:           "Keep definitions fresh with a short card pass",
			Params: map[string]string{
				"section": section,
				"count":   fmt.Sprint(snap.FlashcardsDue),
			},
		})
	}

	// 5. Lesson continuation: an in-progress lesson beats starting a new one.
	if remaining >= lessonMinRemaining {
		if l, inProgress, ok := c.nextLesson(ctx, section, snap.LessonProgress); ok {
			priority := PriorityMedium
			reason := "Start the next lesson in your study path"
			if inProgress {
				priority = PriorityHigh
				reason = fmt.Sprintf("Finish the lesson you're %0.f%% through", snap.LessonProgress[l.ID])
			}
			minutes := l.DurationMinutes
			if minutes > remaining {
				minutes = remaining
			}
			add(Activity{
				Type:             ActivityLesson,
				Title:            l.Title,
				Description:      fmt.Sprintf("Lesson in %s", lessons.SectionDisplayName(section)),
				EstimatedMinutes: minutes,
				Points:           minutes * 2 / 3,
				Priority:         priority,
				Reason:           reason,
				Params: map[string]string{
					"section":  section,
					"lessonId": l.ID,
				},
			})
		}
	}

	// 6. One simulation task per day. Skipped outright when nothing is
	// unlocked; a locked placeholder would just be noise.
	if remaining >= tbsMinutes {
		if status, ok := c.firstUnlocked(ctx, section, snap.LessonProgress); ok {
			topic := c.taskTopic(ctx, section, snap.TaskStats, now)
			add(Activity{
				Type:             ActivityTBS,
				Title:            fmt.Sprintf("Simulation: %s", topic),
				Description:      fmt.Sprintf("One %s task-based simulation", status.TaskType),
				EstimatedMinutes: tbsMinutes,
				Points:           tbsPoints,
				Priority:         PriorityHigh,
				Reason:           "Daily simulation practice builds exam-day stamina",
				Params: map[string]string{
					"section":  section,
					"topic":    topic,
					"taskType": status.TaskType,
				},
			})
		}
	}

	// 7. General mixed practice fills whatever is left. Also the floor:
	// a plan is never empty, so a degraded snapshot still gets this block.
	if remaining >= 10 || len(activities) == 0 {
		add(c.mixedPractice(ctx, section, snap, weakFocus, remaining, now))
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return priorityRank[activities[i].Priority] < priorityRank[activities[j].Priority]
	})

	total := 0
	counts := make(map[ActivityType]int)
	for _, a := range activities {
		total += a.EstimatedMinutes
		counts[a.Type]++
	}

	if weakFocus == nil {
		weakFocus = []string{}
	}

	return &Plan{
		Date:             now.Format("2006-01-02"),
		Section:          section,
		TargetPoints:     snap.DailyGoalPoints,
		EstimatedMinutes: total,
		Activities:       activities,
		Summary: Summary{
			TotalActivities: len(activities),
			Counts:          counts,
			WeakAreaFocus:   weakFocus,
		},
		GeneratedAt: now,
	}
}

// weakTopics buckets sufficiently-sampled topics by accuracy, worst first.
func weakTopics(stats []TopicStat) (critical, medium []TopicStat) {
	for _, t := range stats {
		if t.TotalQuestions < weakMinQuestions {
			continue
		}
		switch {
		case t.Accuracy < criticalAccuracy:
			critical = append(critical, t)
		case t.Accuracy < mediumAccuracy:
			medium = append(medium, t)
		}
	}
	byAccuracy := func(list []TopicStat) func(i, j int) bool {
		return func(i, j int) bool {
			if list[i].Accuracy != list[j].Accuracy {
				return list[i].Accuracy < list[j].Accuracy
			}
			return list[i].Topic < list[j].Topic
		}
	}
	sort.Slice(critical, byAccuracy(critical))
	sort.Slice(medium, byAccuracy(medium))
	return critical, medium
}

// nextLesson picks the lesson-continuation candidate: the earliest
// in-progress lesson, else the earliest unstarted one.
func (c *Composer) nextLesson(ctx context.Context, section string, progress map[string]float64) (lessons.Lesson, bool, bool) {
	list, err := c.lessons.ListLessons(ctx, section)
	if err != nil {
		c.log.Warn("lesson list unavailable, skipping lesson step",
			zap.String("section", section), zap.Error(err))
		return lessons.Lesson{}, false, false
	}

	var unstarted *lessons.Lesson
	for i := range list {
		p := progress[list[i].ID]
		if p > 0 && p < 100 {
			return list[i], true, true
		}
		if p <= 0 && unstarted == nil {
			unstarted = &list[i]
		}
	}
	if unstarted != nil {
		return *unstarted, false, true
	}
	return lessons.Lesson{}, false, false
}

// firstUnlocked returns the first unlocked task type for the section.
func (c *Composer) firstUnlocked(ctx context.Context, section string, progress map[string]float64) (simtask.UnlockStatus, bool) {
	for _, s := range c.evaluator.UnlockedTaskTypes(ctx, section, progress) {
		if s.Unlocked {
			return s, true
		}
	}
	return simtask.UnlockStatus{}, false
}

// taskTopic chooses the simulation topic: first topic never attempted, else
// the lowest-average unmastered topic, else a day-of-year rotation so
// long-time users still see variety.
func (c *Composer) taskTopic(ctx context.Context, section string, stats []TaskStat, now time.Time) string {
	topics := c.sectionTopics(ctx, section)
	if len(topics) == 0 {
		return lessons.SectionDisplayName(section)
	}

	attempted := make(map[string]bool)
	for _, s := range stats {
		if s.Attempts > 0 && s.Topic != "" {
			attempted[curriculum.Normalize(s.Topic)] = true
		}
	}
	for _, t := range topics {
		if !attempted[curriculum.Normalize(t)] {
			return t
		}
	}

	best := ""
	bestScore := 101.0
	for _, s := range stats {
		if !s.Mastered && s.Topic != "" && s.AvgScore < bestScore {
			best, bestScore = s.Topic, s.AvgScore
		}
	}
	if best != "" {
		return best
	}

	return topics[now.YearDay()%len(topics)]
}

// sectionTopics lists the section's lead topics in lesson order.
func (c *Composer) sectionTopics(ctx context.Context, section string) []string {
	list, err := c.lessons.ListLessons(ctx, section)
	if err != nil {
		c.log.Warn("lesson list unavailable for topic rotation",
			zap.String("section", section), zap.Error(err))
		return nil
	}
	seen := make(map[string]bool)
	var topics []string
	for _, l := range list {
		if len(l.Topics) == 0 {
			continue
		}
		t := l.Topics[0]
		if !seen[t] {
			seen[t] = true
			topics = append(topics, t)
		}
	}
	return topics
}

// mixedPractice builds the filler block via the adaptive selector, sized to
// the remaining budget.
func (c *Composer) mixedPractice(ctx context.Context, section string, snap Snapshot, weakFocus []string, remaining int, now time.Time) Activity {
	questions := remaining * 2 / 3
	if questions < fillerMinQuestions {
		questions = fillerMinQuestions
	}
	if questions > fillerMaxQuestions {
		questions = fillerMaxQuestions
	}

	req := selector.Request{
		Pool:       bank.Items(section),
		Count:      questions,
		WeakTopics: weakFocus,
	}
	if exam, err := parseExamDate(snap.ExamDate); err == nil {
		req.ExamDate = &exam
	}
	if snap.CurriculumFilterEnabled {
		req.Covered = c.resolver.CoveredTopics(ctx, snap.LessonProgress, section)
		if snap.PreviewModeEnabled {
			req.Preview = c.resolver.PreviewTopics(ctx, snap.LessonProgress, section, 0)
		}
	}
	sel := c.selector.Select(ctx, section, req, now)

	minutes := questions * 3 / 2
	return Activity{
		Type:             ActivityMCQ,
		Title:            "Mixed Practice",
		Description:      fmt.Sprintf("%d questions across %s", len(sel.ItemIDs), lessons.SectionDisplayName(section)),
		EstimatedMinutes: minutes,
		Points:           questions,
		Priority:         PriorityLow,
		Reason:           "Round out the day with mixed review",
		Params: map[string]string{
			"section": section,
			"count":   fmt.Sprint(len(sel.ItemIDs)),
			"itemIds": strings.Join(sel.ItemIDs, ","),
		},
	}
}
