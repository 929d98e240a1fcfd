package planner

import (
	"math"
	"time"
)

// Intensity scales the daily time budget by exam proximity. Unset or
// unparsable exam dates mean the default pace; bad input never propagates
// an error out of plan composition.
func Intensity(examDate string, now time.Time) float64 {
	if examDate == "" {
		return 1.0
	}
	exam, err := parseExamDate(examDate)
	if err != nil {
		return 1.0
	}

	days := int(math.Ceil(exam.Sub(now).Hours() / 24))
	switch {
	case days <= 7:
		return 1.5
	case days <= 14:
		return 1.3
	case days <= 30:
		return 1.2
	default:
		return 1.0
	}
}

// TargetMinutes converts the daily point goal into a time budget.
func TargetMinutes(dailyGoalPoints int, intensity float64) int {
	return int(math.Round(float64(dailyGoalPoints) * 1.5 * intensity))
}

// parseExamDate accepts the ISO forms the clients send: a bare date or a
// full RFC 3339 timestamp.
func parseExamDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
