package selector

import (
	"context"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/studymesh/cpaprep/internal/curriculum"
	"github.com/studymesh/cpaprep/internal/mastery"
)

// Request describes one practice-session selection.
type Request struct {
	// Pool maps every candidate item ID to its topic tag.
	Pool map[string]string

	// Count is the target number of items.
	Count int

	// ExamDate, when set, biases composition toward review material as the
	// exam approaches.
	ExamDate *time.Time

	// WeakTopics are topics the learner underperforms on; fresh items
	// matching them are preferred over general fresh items.
	WeakTopics []string

	// Covered and Preview, when non-nil, activate the curriculum filter:
	// only items whose topic matches either set stay candidates.
	Covered map[string]bool
	Preview map[string]bool
}

// Breakdown reports where the selected items came from. It exists so the
// composition is observable and testable, not just the final ID list.
type Breakdown struct {
	Due         int `json:"due"`
	Incorrect   int `json:"incorrect"`
	Fresh       int `json:"fresh"`
	FilteredOut int `json:"filteredOut"`
}

// Selection is the result of a Select call.
type Selection struct {
	ItemIDs   []string  `json:"itemIds"`
	Breakdown Breakdown `json:"breakdown"`
}

// Exam proximity windows, in days.
const (
	finalWeekDays = 7
	crunchDays    = 14
)

// Selector assembles weighted practice sets from the mastery pools.
type Selector struct {
	tracker *mastery.Tracker
	log     *zap.Logger
}

// New creates a Selector over a user's mastery tracker.
func New(tracker *mastery.Tracker, log *zap.Logger) *Selector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Selector{tracker: tracker, log: log}
}

// Select fills up to req.Count item IDs greedily: due reviews first, then
// recently missed items, then fresh items on weak topics, then general
// fresh items. The per-pool caps are soft — when later pools run dry the
// earlier ones fill the remainder.
func (s *Selector) Select(ctx context.Context, section string, req Request, now time.Time) Selection {
	if req.Count <= 0 || len(req.Pool) == 0 {
		return Selection{ItemIDs: []string{}}
	}

	pool, filteredOut := s.effectivePool(section, req)

	dueCap, incorrectCap := poolCaps(req.Count, req.ExamDate, now)

	due := s.tracker.DueItems(ctx, section, 0, now)
	incorrect := s.tracker.RecentlyIncorrect(ctx, section, 7, 0, now)
	answered := s.tracker.AnsweredItemIDs(ctx, section, now)

	picked := make(map[string]bool, req.Count)
	var ids []string
	var breakdown Breakdown
	breakdown.FilteredOut = filteredOut

	take := func(id string) bool {
		if picked[id] || len(ids) >= req.Count {
			return false
		}
		if _, inPool := pool[id]; !inPool {
			return false
		}
		picked[id] = true
		ids = append(ids, id)
		return true
	}

	// 1. Due reviews, oldest due first.
	for _, rec := range due {
		if breakdown.Due >= dueCap {
			break
		}
		if take(rec.ItemID) {
			breakdown.Due++
		}
	}

	// 2. Recent misses, newest first.
	for _, rec := range incorrect {
		if breakdown.Incorrect >= incorrectCap {
			break
		}
		if take(rec.ItemID) {
			breakdown.Incorrect++
		}
	}

	// 3. Fresh items on weak topics, then any fresh item.
	freshWeak, freshOther := splitFresh(pool, answered, req.WeakTopics)
	for _, id := range freshWeak {
		if take(id) {
			breakdown.Fresh++
		}
	}
	for _, id := range freshOther {
		if take(id) {
			breakdown.Fresh++
		}
	}

	// 4. Still short: let due and incorrect spill past their caps, then
	// fall back to anything left in the pool.
	for _, rec := range due {
		if take(rec.ItemID) {
			breakdown.Due++
		}
	}
	for _, rec := range incorrect {
		if take(rec.ItemID) {
			breakdown.Incorrect++
		}
	}
	if len(ids) < req.Count {
		for _, id := range sortedIDs(pool) {
			if take(id) {
				breakdown.Fresh++
			}
		}
	}

	return Selection{ItemIDs: ids, Breakdown: breakdown}
}

// effectivePool applies the curriculum filter, falling back to the full
// pool when filtering would starve the request.
func (s *Selector) effectivePool(section string, req Request) (map[string]string, int) {
	if req.Covered == nil && req.Preview == nil {
		return req.Pool, 0
	}

	kept := curriculum.FilterItems(req.Pool, req.Covered, req.Preview)
	if len(kept) < req.Count {
		s.log.Debug("curriculum filter would starve selection, using full pool",
			zap.String("section", section),
			zap.Int("kept", len(kept)),
			zap.Int("requested", req.Count))
		return req.Pool, 0
	}

	pool := make(map[string]string, len(kept))
	for _, id := range kept {
		pool[id] = req.Pool[id]
	}
	return pool, len(req.Pool) - len(pool)
}

// poolCaps returns soft ceilings for the due and incorrect pools. Closer to
// the exam, review takes a larger share of the set; the shift is a bias on
// the caps, never an exclusion of fresh content.
func poolCaps(count int, examDate *time.Time, now time.Time) (dueCap, incorrectCap int) {
	dueShare, incorrectShare := 0.4, 0.3
	if examDate != nil {
		switch days := daysUntil(*examDate, now); {
		case days <= finalWeekDays:
			dueShare, incorrectShare = 0.6, 0.4
		case days <= crunchDays:
			dueShare, incorrectShare = 0.5, 0.35
		}
	}
	dueCap = int(math.Ceil(float64(count) * dueShare))
	incorrectCap = int(math.Ceil(float64(count) * incorrectShare))
	return dueCap, incorrectCap
}

func daysUntil(examDate, now time.Time) int {
	return int(math.Ceil(examDate.Sub(now).Hours() / 24))
}

// splitFresh partitions never-answered pool items into weak-topic matches
// and the rest, each sorted by ID for determinism.
func splitFresh(pool map[string]string, answered map[string]bool, weakTopics []string) (weak, other []string) {
	for _, id := range sortedIDs(pool) {
		if answered[id] {
			continue
		}
		topic := pool[id]
		matched := false
		for _, wt := range weakTopics {
			if curriculum.TopicsMatch(topic, wt) {
				matched = true
				break
			}
		}
		if matched {
			weak = append(weak, id)
		} else {
			other = append(other, id)
		}
	}
	return weak, other
}

func sortedIDs(pool map[string]string) []string {
	ids := make([]string, 0, len(pool))
	for id := range pool {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
