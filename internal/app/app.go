// Package app wires the scheduler services together for the CLI and the
// HTTP server.
package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/studymesh/cpaprep/internal/config"
	"github.com/studymesh/cpaprep/internal/curriculum"
	"github.com/studymesh/cpaprep/internal/lessons"
	"github.com/studymesh/cpaprep/internal/mastery"
	"github.com/studymesh/cpaprep/internal/planner"
	"github.com/studymesh/cpaprep/internal/selector"
	"github.com/studymesh/cpaprep/internal/simtask"
	"github.com/studymesh/cpaprep/internal/store"
)

// Services bundles the scheduler's components for one user.
type Services struct {
	Config    *config.Config
	Log       *zap.Logger
	Repo      store.HistoryRepo
	Lessons   lessons.Provider
	Tracker   *mastery.Tracker
	Resolver  *curriculum.Resolver
	Evaluator *simtask.Evaluator
	Recorder  *simtask.Recorder
	Selector  *selector.Selector
	Composer  *planner.Composer
}

// NewServices constructs the full service graph over a history repo.
func NewServices(cfg *config.Config, repo store.HistoryRepo, log *zap.Logger) *Services {
	if log == nil {
		log = zap.NewNop()
	}
	provider := lessons.NewStaticProvider()
	cache := mastery.NewAnsweredCache(mastery.DefaultCacheTTL)
	tracker := mastery.NewTracker(cfg.User, repo, cache, log)
	resolver := curriculum.NewResolver(provider, log)
	evaluator := simtask.NewEvaluator(resolver)
	recorder := simtask.NewRecorder(cfg.User, repo, log)
	sel := selector.New(tracker, log)
	composer := planner.NewComposer(tracker, resolver, evaluator, sel, provider, log)

	return &Services{
		Config:    cfg,
		Log:       log,
		Repo:      repo,
		Lessons:   provider,
		Tracker:   tracker,
		Resolver:  resolver,
		Evaluator: evaluator,
		Recorder:  recorder,
		Selector:  sel,
		Composer:  composer,
	}
}

// Snapshot gathers the user's current state for plan composition. Each read
// degrades independently: a failed store call leaves that part of the
// snapshot empty rather than aborting.
func (s *Services) Snapshot(ctx context.Context, section string, now time.Time) planner.Snapshot {
	snap := planner.Snapshot{
		Section:                 section,
		ExamDate:                s.Config.ExamDate,
		DailyGoalPoints:         s.Config.DailyGoalPoints,
		LessonProgress:          map[string]float64{},
		CurriculumFilterEnabled: s.Config.CurriculumFilter,
		PreviewModeEnabled:      s.Config.PreviewMode,
	}

	if stats, err := s.Repo.TopicStats(ctx, s.Config.User, section); err != nil {
		s.Log.Warn("topic stats unavailable", zap.Error(err))
	} else {
		for _, t := range stats {
			snap.TopicStats = append(snap.TopicStats, planner.TopicStat{
				Topic:           t.Topic,
				Accuracy:        t.Accuracy,
				TotalQuestions:  t.TotalQuestions,
				Correct:         t.Correct,
				LastPracticedAt: t.LastPracticedAt,
			})
		}
	}

	for _, rec := range s.Recorder.SectionHistory(ctx, section) {
		snap.TaskStats = append(snap.TaskStats, planner.TaskStat{
			TaskID:   rec.TaskID,
			Topic:    rec.Topic,
			Attempts: rec.Attempts,
			AvgScore: rec.AvgScore,
			Mastered: rec.Mastered,
		})
	}

	if progress, err := s.Repo.LessonProgress(ctx, s.Config.User, section); err != nil {
		s.Log.Warn("lesson progress unavailable", zap.Error(err))
	} else {
		snap.LessonProgress = progress
	}

	for _, rec := range s.Tracker.DueItems(ctx, section, 0, now) {
		snap.DueItemIDsHint = append(snap.DueItemIDsHint, rec.ItemID)
	}

	return snap
}
