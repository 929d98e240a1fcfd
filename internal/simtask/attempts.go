package simtask

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/studymesh/cpaprep/internal/store"
)

// Recorder maintains per-task attempt history for one user.
type Recorder struct {
	repo store.HistoryRepo
	log  *zap.Logger
	user string
}

// NewRecorder creates a recorder for one user.
func NewRecorder(userID string, repo store.HistoryRepo, log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{repo: repo, log: log, user: userID}
}

// RecordAttempt merges one scored attempt into the task's history: bumps the
// attempt count, updates best/last score and the running mean, and flips
// mastered once the best score reaches MasteryScore. Store failures are
// logged and the computed record returned regardless.
func (r *Recorder) RecordAttempt(ctx context.Context, taskID, section, topic string, score float64, timeSpentSec int, now time.Time) *store.SimTaskRecord {
	rec, err := r.repo.GetSimTaskHistory(ctx, r.user, taskID)
	if err != nil {
		r.log.Warn("task history read failed, starting fresh",
			zap.String("task", taskID), zap.Error(err))
		rec = nil
	}
	if rec == nil {
		rec = &store.SimTaskRecord{
			TaskID:  taskID,
			Section: section,
			Topic:   topic,
		}
	}

	prevAttempts := rec.Attempts
	rec.Attempts++
	rec.LastScore = score
	if score > rec.BestScore || prevAttempts == 0 {
		rec.BestScore = score
	}
	rec.AvgScore = (rec.AvgScore*float64(prevAttempts) + score) / float64(rec.Attempts)
	rec.LastAttemptedAt = now
	rec.TotalTimeSpent += timeSpentSec
	rec.Mastered = rec.BestScore >= MasteryScore
	if topic != "" {
		rec.Topic = topic
	}

	if err := r.repo.UpsertSimTaskHistory(ctx, r.user, rec); err != nil {
		r.log.Warn("task history write failed",
			zap.String("task", taskID), zap.Error(err))
	}
	return rec
}

// SectionHistory returns all task attempt records for a section, degrading
// to empty on store failure.
func (r *Recorder) SectionHistory(ctx context.Context, section string) []*store.SimTaskRecord {
	recs, err := r.repo.ListSimTaskHistory(ctx, r.user, section)
	if err != nil {
		r.log.Warn("task history list failed, treating as empty",
			zap.String("section", section), zap.Error(err))
		return nil
	}
	return recs
}
