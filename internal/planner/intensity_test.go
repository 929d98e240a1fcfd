package planner

import (
	"testing"
	"time"
)

func TestIntensity(t *testing.T) {
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	examIn := func(days int) string {
		return now.AddDate(0, 0, days).Format("2006-01-02")
	}

	tests := []struct {
		name     string
		examDate string
		expected float64
	}{
		{"no exam date", "", 1.0},
		{"malformed date", "next tuesday", 1.0},
		{"two months out", examIn(60), 1.0},
		{"31 days out", examIn(31), 1.0},
		{"30 days out", examIn(30), 1.2},
		{"15 days out", examIn(15), 1.2},
		{"14 days out", examIn(14), 1.3},
		{"8 days out", examIn(8), 1.3},
		{"7 days out", examIn(7), 1.5},
		{"tomorrow", examIn(1), 1.5},
		{"rfc3339 timestamp", now.AddDate(0, 0, 5).Format(time.RFC3339), 1.5},
	}
	for _, tt := range tests {
		if got := Intensity(tt.examDate, now); got != tt.expected {
			t.Errorf("%s: Intensity(%q) = %v, want %v", tt.name, tt.examDate, got, tt.expected)
		}
	}
}

func TestTargetMinutes(t *testing.T) {
	tests := []struct {
		points    int
		intensity float64
		expected  int
	}{
		{30, 1.0, 45},
		{30, 1.2, 54},
		{30, 1.5, 68}, // 67.5 rounds up
		{20, 1.3, 39},
		{0, 1.5, 0},
	}
	for _, tt := range tests {
		if got := TargetMinutes(tt.points, tt.intensity); got != tt.expected {
			t.Errorf("TargetMinutes(%d, %v) = %d, want %d", tt.points, tt.intensity, got, tt.expected)
		}
	}
}
