package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// section resolves the section query parameter, defaulting from config.
func (s *Server) section(c *gin.Context) string {
	if sec := c.Query("section"); sec != "" {
		return sec
	}
	return s.services.Config.Section
}

// getPlan composes and returns today's plan. Query parameters can override
// snapshot fields the scheduler can't know itself (flashcardsDue comes from
// the flashcard app).
func (s *Server) getPlan(c *gin.Context) {
	now := time.Now()
	snap := s.services.Snapshot(c.Request.Context(), s.section(c), now)

	if v := c.Query("flashcardsDue"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			snap.FlashcardsDue = n
		}
	}
	if v := c.Query("examDate"); v != "" {
		snap.ExamDate = v
	}
	if v := c.Query("goalPoints"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			snap.DailyGoalPoints = n
		}
	}

	plan := s.services.Composer.BuildPlan(c.Request.Context(), snap, now)
	c.JSON(http.StatusOK, plan)
}

type answerRequest struct {
	ItemID  string `json:"itemId" binding:"required"`
	Section string `json:"section" binding:"required"`
	Topic   string `json:"topic"`
	Correct bool   `json:"correct"`
}

func (s *Server) postAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec := s.services.Tracker.RecordAnswer(c.Request.Context(),
		req.ItemID, req.Correct, req.Topic, req.Section, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"itemId":        rec.ItemID,
		"timesAnswered": rec.TimesAnswered,
		"timesCorrect":  rec.TimesCorrect,
		"masteryLevel":  rec.MasteryLevel,
		"nextReviewAt":  rec.NextReviewAt,
	})
}

type taskAttemptRequest struct {
	TaskID       string  `json:"taskId" binding:"required"`
	Section      string  `json:"section" binding:"required"`
	Topic        string  `json:"topic"`
	Score        float64 `json:"score"`
	TimeSpentSec int     `json:"timeSpentSec"`
}

func (s *Server) postTaskAttempt(c *gin.Context) {
	var req taskAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec := s.services.Recorder.RecordAttempt(c.Request.Context(),
		req.TaskID, req.Section, req.Topic, req.Score, req.TimeSpentSec, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"taskId":    rec.TaskID,
		"attempts":  rec.Attempts,
		"bestScore": rec.BestScore,
		"avgScore":  rec.AvgScore,
		"mastered":  rec.Mastered,
	})
}

func (s *Server) getTaskUnlocks(c *gin.Context) {
	section := s.section(c)
	ctx := c.Request.Context()

	progress, err := s.services.Repo.LessonProgress(ctx, s.services.Config.User, section)
	if err != nil {
		// Degraded mode: evaluate against zero progress.
		progress = map[string]float64{}
	}

	c.JSON(http.StatusOK, gin.H{
		"section": section,
		"tasks":   s.services.Evaluator.UnlockedTaskTypes(ctx, section, progress),
	})
}

func (s *Server) getStats(c *gin.Context) {
	section := s.section(c)
	stats, err := s.services.Repo.TopicStats(c.Request.Context(), s.services.Config.User, section)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"section": section, "topics": []any{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"section": section, "topics": stats})
}

type lessonProgressRequest struct {
	Section string  `json:"section" binding:"required"`
	Percent float64 `json:"percent"`
}

func (s *Server) putLessonProgress(c *gin.Context) {
	var req lessonProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lessonID := c.Param("id")
	err := s.services.Repo.SetLessonProgress(c.Request.Context(),
		s.services.Config.User, lessonID, req.Section, req.Percent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lessonId": lessonID, "percent": req.Percent})
}
