package mastery

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/studymesh/cpaprep/internal/store"
)

// Tracker records answer outcomes and serves the review pools built from
// them. It is scoped to a single user; the cache may be shared across
// trackers since it keys by (user, section).
//
// Every store failure is absorbed here: reads degrade to empty data and
// writes are logged and dropped. Callers always get a usable result.
type Tracker struct {
	repo  store.HistoryRepo
	cache *AnsweredCache
	log   *zap.Logger
	user  string
}

// NewTracker creates a tracker for one user.
func NewTracker(userID string, repo store.HistoryRepo, cache *AnsweredCache, log *zap.Logger) *Tracker {
	if cache == nil {
		cache = NewAnsweredCache(DefaultCacheTTL)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{repo: repo, cache: cache, log: log, user: userID}
}

// RecordAnswer merges one answer outcome into the item's history and
// recomputes mastery level and next review time in full. Returns the
// updated record; persistence failures are logged, not surfaced.
func (t *Tracker) RecordAnswer(ctx context.Context, itemID string, correct bool, topic, section string, now time.Time) *store.ItemHistoryRecord {
	rec, err := t.repo.GetItemHistory(ctx, t.user, itemID)
	if err != nil {
		t.log.Warn("item history read failed, starting fresh",
			zap.String("item", itemID), zap.Error(err))
		rec = nil
	}
	if rec == nil {
		rec = &store.ItemHistoryRecord{
			ItemID:  itemID,
			Section: section,
			Topic:   topic,
		}
	}

	rec.TimesAnswered++
	if correct {
		rec.TimesCorrect++
	}
	rec.LastAnsweredAt = now
	rec.LastCorrect = correct
	if topic != "" {
		rec.Topic = topic
	}

	level := LevelFor(rec.TimesAnswered, rec.TimesCorrect)
	rec.MasteryLevel = string(level)
	intervalDays := ReviewIntervalDays(level, correct)
	rec.NextReviewAt = now.AddDate(0, 0, intervalDays)

	// The cache entry is stale the instant the answer lands, whether or
	// not the writes below succeed.
	t.cache.Invalidate(t.user, section)

	if err := t.repo.UpsertItemHistory(ctx, t.user, rec); err != nil {
		t.log.Warn("item history write failed",
			zap.String("item", itemID), zap.Error(err))
	}
	if err := t.repo.AddAnsweredItemID(ctx, t.user, section, itemID); err != nil {
		t.log.Warn("answered index write failed",
			zap.String("item", itemID), zap.Error(err))
	}

	return rec
}

// DueItems returns entries whose review time has passed, oldest due first,
// capped at maxCount. Backlog policy for long-inactive users is this same
// bounded oldest-first window; nothing ages out.
func (t *Tracker) DueItems(ctx context.Context, section string, maxCount int, now time.Time) []*store.ItemHistoryRecord {
	entries := t.listSection(ctx, section)

	var due []*store.ItemHistoryRecord
	for _, rec := range entries {
		if !rec.NextReviewAt.After(now) {
			due = append(due, rec)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if !due[i].NextReviewAt.Equal(due[j].NextReviewAt) {
			return due[i].NextReviewAt.Before(due[j].NextReviewAt)
		}
		return due[i].ItemID < due[j].ItemID
	})

	if maxCount > 0 && len(due) > maxCount {
		due = due[:maxCount]
	}
	return due
}

// RecentlyIncorrect returns entries last missed within daysBack, most
// recent first, capped at maxCount.
func (t *Tracker) RecentlyIncorrect(ctx context.Context, section string, daysBack, maxCount int, now time.Time) []*store.ItemHistoryRecord {
	entries := t.listSection(ctx, section)
	cutoff := now.AddDate(0, 0, -daysBack)

	var missed []*store.ItemHistoryRecord
	for _, rec := range entries {
		if !rec.LastCorrect && rec.LastAnsweredAt.After(cutoff) {
			missed = append(missed, rec)
		}
	}

	sort.Slice(missed, func(i, j int) bool {
		if !missed[i].LastAnsweredAt.Equal(missed[j].LastAnsweredAt) {
			return missed[i].LastAnsweredAt.After(missed[j].LastAnsweredAt)
		}
		return missed[i].ItemID < missed[j].ItemID
	})

	if maxCount > 0 && len(missed) > maxCount {
		missed = missed[:maxCount]
	}
	return missed
}

// AnsweredItemIDs returns the set of item IDs ever answered in the section,
// served from the TTL cache when fresh.
func (t *Tracker) AnsweredItemIDs(ctx context.Context, section string, now time.Time) map[string]bool {
	if ids, ok := t.cache.Get(t.user, section, now); ok {
		return ids
	}

	list, err := t.repo.AnsweredItemIDs(ctx, t.user, section)
	if err != nil {
		t.log.Warn("answered index read failed, treating as empty",
			zap.String("section", section), zap.Error(err))
		return map[string]bool{}
	}

	ids := make(map[string]bool, len(list))
	for _, id := range list {
		ids[id] = true
	}
	t.cache.Put(t.user, section, ids, now)
	return ids
}

func (t *Tracker) listSection(ctx context.Context, section string) []*store.ItemHistoryRecord {
	entries, err := t.repo.ListItemHistory(ctx, t.user, section)
	if err != nil {
		t.log.Warn("item history list failed, treating as empty",
			zap.String("section", section), zap.Error(err))
		return nil
	}
	return entries
}
