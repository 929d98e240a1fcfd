package mastery

import "testing"

func TestLevelFor(t *testing.T) {
	tests := []struct {
		answered int
		correct  int
		expected Level
	}{
		{0, 0, LevelNew},
		{1, 1, LevelLearning},
		{1, 0, LevelLearning},
		{2, 2, LevelLearning},
		{3, 2, LevelReviewing},
		{3, 1, LevelLearning},
		{4, 4, LevelReviewing}, // high accuracy but below the mastered sample size
		{5, 4, LevelMastered},
		{5, 3, LevelReviewing},
		{5, 2, LevelLearning},
		{10, 8, LevelMastered},
		{10, 6, LevelReviewing},
		{10, 4, LevelLearning},
	}
	for _, tt := range tests {
		got := LevelFor(tt.answered, tt.correct)
		if got != tt.expected {
			t.Errorf("LevelFor(%d, %d) = %s, want %s", tt.answered, tt.correct, got, tt.expected)
		}
	}
}

func TestLevelFor_RegressionWithMoreAttempts(t *testing.T) {
	// 5/4 is mastered; five straight misses later the same item is learning.
	if got := LevelFor(5, 4); got != LevelMastered {
		t.Fatalf("LevelFor(5, 4) = %s, want mastered", got)
	}
	if got := LevelFor(10, 4); got != LevelLearning {
		t.Errorf("LevelFor(10, 4) = %s, want learning", got)
	}
}

func TestReviewIntervalDays(t *testing.T) {
	tests := []struct {
		level    Level
		correct  bool
		expected int
	}{
		{LevelNew, true, 0},
		{LevelLearning, true, 1},
		{LevelReviewing, true, 3},
		{LevelMastered, true, 7},
		{LevelLearning, false, 0},
		{LevelReviewing, false, 0},
		{LevelMastered, false, 0},
	}
	for _, tt := range tests {
		got := ReviewIntervalDays(tt.level, tt.correct)
		if got != tt.expected {
			t.Errorf("ReviewIntervalDays(%s, %v) = %d, want %d", tt.level, tt.correct, got, tt.expected)
		}
	}
}
