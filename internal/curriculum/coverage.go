package curriculum

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/studymesh/cpaprep/internal/lessons"
)

// CoverageThreshold is the completion percent at which a lesson's topics
// count as covered. Inclusive: 80 covers, 79 does not.
const CoverageThreshold = 80.0

// DefaultLookahead is the fraction of incomplete lessons whose topics are
// exposed as a preview ahead of completion.
const DefaultLookahead = 0.1

// Resolver turns lesson completion into covered/preview topic sets.
type Resolver struct {
	lessons lessons.Provider
	log     *zap.Logger
}

// NewResolver creates a Resolver over a lesson provider.
func NewResolver(provider lessons.Provider, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{lessons: provider, log: log}
}

// CoveredTopics returns the union of topic tags (raw and normalized) from
// every lesson in the section at or past the coverage threshold. Lessons
// absent from the provider's list are ignored; a provider failure degrades
// to an empty set.
func (r *Resolver) CoveredTopics(ctx context.Context, progress map[string]float64, section string) map[string]bool {
	covered := make(map[string]bool)
	for _, l := range r.sectionLessons(ctx, section) {
		if clampProgress(progress[l.ID]) >= CoverageThreshold {
			addTopics(covered, l.Topics)
		}
	}
	return covered
}

// PreviewTopics returns topics from the earliest incomplete lessons — a
// bounded sneak peek so learners can be quizzed slightly ahead of the
// lessons they have finished. lookahead <= 0 falls back to DefaultLookahead.
func (r *Resolver) PreviewTopics(ctx context.Context, progress map[string]float64, section string, lookahead float64) map[string]bool {
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}

	var incomplete []lessons.Lesson
	for _, l := range r.sectionLessons(ctx, section) {
		if clampProgress(progress[l.ID]) < CoverageThreshold {
			incomplete = append(incomplete, l)
		}
	}

	preview := make(map[string]bool)
	if len(incomplete) == 0 {
		return preview
	}

	take := int(math.Ceil(float64(len(incomplete)) * lookahead))
	if take < 1 {
		take = 1
	}
	if take > len(incomplete) {
		take = len(incomplete)
	}
	for _, l := range incomplete[:take] {
		addTopics(preview, l.Topics)
	}
	return preview
}

// FilterItems keeps the item IDs whose topic matches the covered or preview
// sets. Output is sorted for determinism.
func FilterItems(itemTopics map[string]string, covered, preview map[string]bool) []string {
	var kept []string
	for id, topic := range itemTopics {
		if MatchesAny(topic, covered) || MatchesAny(topic, preview) {
			kept = append(kept, id)
		}
	}
	sort.Strings(kept)
	return kept
}

func (r *Resolver) sectionLessons(ctx context.Context, section string) []lessons.Lesson {
	list, err := r.lessons.ListLessons(ctx, section)
	if err != nil {
		r.log.Warn("lesson list unavailable, treating section as uncovered",
			zap.String("section", section), zap.Error(err))
		return nil
	}
	return list
}

// clampProgress maps upstream progress glitches onto [0, 100]:
// NaN and negatives mean not started, anything past 100 means complete.
func clampProgress(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func addTopics(set map[string]bool, topics []string) {
	for _, t := range topics {
		if t == "" {
			continue
		}
		set[t] = true
		set[Normalize(t)] = true
	}
}
