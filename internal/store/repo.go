package store

import (
	"context"
	"time"
)

// ItemHistoryRecord is the persisted answer history for one practice item.
type ItemHistoryRecord struct {
	ItemID         string
	Section        string
	Topic          string
	TimesAnswered  int
	TimesCorrect   int
	LastAnsweredAt time.Time
	LastCorrect    bool
	MasteryLevel   string
	NextReviewAt   time.Time
}

// SimTaskRecord is the persisted attempt history for one simulation task.
type SimTaskRecord struct {
	TaskID          string
	Section         string
	Topic           string
	Attempts        int
	BestScore       float64
	LastScore       float64
	AvgScore        float64
	LastAttemptedAt time.Time
	TotalTimeSpent  int
	Mastered        bool
}

// TopicStatRecord is a per-topic accuracy aggregate derived from item history.
type TopicStatRecord struct {
	Topic           string
	Accuracy        float64
	TotalQuestions  int
	Correct         int
	LastPracticedAt *time.Time
}

// HistoryRepo provides access to per-user study history documents.
//
// All write methods use merge/upsert (last writer wins). Two devices
// recording answers for the same item concurrently can under- or
// over-count; the product accepts this weak consistency rather than
// introducing storage-level atomic increments.
type HistoryRepo interface {
	// GetItemHistory returns the history for one item, or nil if the item
	// has never been answered.
	GetItemHistory(ctx context.Context, userID, itemID string) (*ItemHistoryRecord, error)

	// UpsertItemHistory creates or replaces the history row for rec.ItemID.
	UpsertItemHistory(ctx context.Context, userID string, rec *ItemHistoryRecord) error

	// ListItemHistory returns every item history row for a section.
	ListItemHistory(ctx context.Context, userID, section string) ([]*ItemHistoryRecord, error)

	// GetSimTaskHistory returns the attempt history for one task, or nil.
	GetSimTaskHistory(ctx context.Context, userID, taskID string) (*SimTaskRecord, error)

	// UpsertSimTaskHistory creates or replaces the row for rec.TaskID.
	UpsertSimTaskHistory(ctx context.Context, userID string, rec *SimTaskRecord) error

	// ListSimTaskHistory returns every task history row for a section.
	ListSimTaskHistory(ctx context.Context, userID, section string) ([]*SimTaskRecord, error)

	// AnsweredItemIDs returns the answered-index document for (user, section).
	AnsweredItemIDs(ctx context.Context, userID, section string) ([]string, error)

	// AddAnsweredItemID merges one item ID into the answered index.
	AddAnsweredItemID(ctx context.Context, userID, section, itemID string) error

	// LessonProgress returns lessonID -> percent complete for a section.
	LessonProgress(ctx context.Context, userID, section string) (map[string]float64, error)

	// SetLessonProgress upserts one lesson's completion percent.
	SetLessonProgress(ctx context.Context, userID, lessonID, section string, percent float64) error

	// TopicStats aggregates per-topic accuracy over a section's item history.
	TopicStats(ctx context.Context, userID, section string) ([]*TopicStatRecord, error)
}
