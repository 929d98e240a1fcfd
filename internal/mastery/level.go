package mastery

// Level is a discrete competence tier derived from answer history.
type Level string

const (
	// LevelNew means no answer history exists. It is the implicit
	// pre-existence state and is never persisted.
	LevelNew       Level = "new"
	LevelLearning  Level = "learning"
	LevelReviewing Level = "reviewing"
	LevelMastered  Level = "mastered"
)

// LevelFor computes the mastery level from scratch. It is deliberately a
// pure function of the counters rather than an incremental state machine:
// a level can regress when accuracy drops across more attempts, and the
// evaluation order of the rules matters.
func LevelFor(timesAnswered, timesCorrect int) Level {
	if timesAnswered <= 0 {
		return LevelNew
	}
	accuracy := float64(timesCorrect) / float64(timesAnswered)

	switch {
	case timesAnswered >= 5 && accuracy >= 0.8:
		return LevelMastered
	case timesAnswered >= 3 && accuracy >= 0.6:
		return LevelReviewing
	default:
		return LevelLearning
	}
}

// reviewIntervalDays is the spaced repetition schedule per level.
var reviewIntervalDays = map[Level]int{
	LevelNew:       0,
	LevelLearning:  1,
	LevelReviewing: 3,
	LevelMastered:  7,
}

// ReviewIntervalDays returns the days until the next review. An incorrect
// answer forces immediate re-exposure regardless of level.
func ReviewIntervalDays(level Level, lastCorrect bool) int {
	if !lastCorrect {
		return 0
	}
	return reviewIntervalDays[level]
}
