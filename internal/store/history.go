package store

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/studymesh/cpaprep/ent"
	"github.com/studymesh/cpaprep/ent/answeredindex"
	"github.com/studymesh/cpaprep/ent/itemhistory"
	"github.com/studymesh/cpaprep/ent/lessonprogress"
	"github.com/studymesh/cpaprep/ent/simtaskhistory"
)

// historyRepo implements HistoryRepo using the ent client.
type historyRepo struct {
	client *ent.Client
}

func (r *historyRepo) GetItemHistory(ctx context.Context, userID, itemID string) (*ItemHistoryRecord, error) {
	row, err := r.client.ItemHistory.Query().
		Where(itemhistory.UserID(userID), itemhistory.ItemID(itemID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query item history: %w", err)
	}
	return itemHistoryToRecord(row), nil
}

func (r *historyRepo) UpsertItemHistory(ctx context.Context, userID string, rec *ItemHistoryRecord) error {
	err := r.client.ItemHistory.Create().
		SetUserID(userID).
		SetItemID(rec.ItemID).
		SetSection(rec.Section).
		SetTopic(rec.Topic).
		SetTimesAnswered(rec.TimesAnswered).
		SetTimesCorrect(rec.TimesCorrect).
		SetLastAnsweredAt(rec.LastAnsweredAt).
		SetLastCorrect(rec.LastCorrect).
		SetMasteryLevel(rec.MasteryLevel).
		SetNextReviewAt(rec.NextReviewAt).
		OnConflictColumns(itemhistory.FieldUserID, itemhistory.FieldItemID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert item history: %w", err)
	}
	return nil
}

func (r *historyRepo) ListItemHistory(ctx context.Context, userID, section string) ([]*ItemHistoryRecord, error) {
	rows, err := r.client.ItemHistory.Query().
		Where(itemhistory.UserID(userID), itemhistory.Section(section)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list item history: %w", err)
	}
	recs := make([]*ItemHistoryRecord, len(rows))
	for i, row := range rows {
		recs[i] = itemHistoryToRecord(row)
	}
	return recs, nil
}

func (r *historyRepo) GetSimTaskHistory(ctx context.Context, userID, taskID string) (*SimTaskRecord, error) {
	row, err := r.client.SimTaskHistory.Query().
		Where(simtaskhistory.UserID(userID), simtaskhistory.TaskID(taskID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query sim task history: %w", err)
	}
	return simTaskToRecord(row), nil
}

func (r *historyRepo) UpsertSimTaskHistory(ctx context.Context, userID string, rec *SimTaskRecord) error {
	err := r.client.SimTaskHistory.Create().
		SetUserID(userID).
		SetTaskID(rec.TaskID).
		SetSection(rec.Section).
		SetTopic(rec.Topic).
		SetAttempts(rec.Attempts).
		SetBestScore(rec.BestScore).
		SetLastScore(rec.LastScore).
		SetAvgScore(rec.AvgScore).
		SetLastAttemptedAt(rec.LastAttemptedAt).
		SetTotalTimeSpent(rec.TotalTimeSpent).
		SetMastered(rec.Mastered).
		OnConflictColumns(simtaskhistory.FieldUserID, simtaskhistory.FieldTaskID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert sim task history: %w", err)
	}
	return nil
}

func (r *historyRepo) ListSimTaskHistory(ctx context.Context, userID, section string) ([]*SimTaskRecord, error) {
	rows, err := r.client.SimTaskHistory.Query().
		Where(simtaskhistory.UserID(userID), simtaskhistory.Section(section)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sim task history: %w", err)
	}
	recs := make([]*SimTaskRecord, len(rows))
	for i, row := range rows {
		recs[i] = simTaskToRecord(row)
	}
	return recs, nil
}

func (r *historyRepo) AnsweredItemIDs(ctx context.Context, userID, section string) ([]string, error) {
	row, err := r.client.AnsweredIndex.Query().
		Where(answeredindex.UserID(userID), answeredindex.Section(section)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query answered index: %w", err)
	}
	return row.ItemIds, nil
}

// AddAnsweredItemID merges one ID into the index document. Read-modify-write:
// a concurrent writer on another device can drop an ID until its next answer
// re-adds it. Accepted weak consistency, same as the counter merges.
func (r *historyRepo) AddAnsweredItemID(ctx context.Context, userID, section, itemID string) error {
	ids, err := r.AnsweredItemIDs(ctx, userID, section)
	if err != nil {
		return err
	}
	if slices.Contains(ids, itemID) {
		return nil
	}
	ids = append(ids, itemID)

	err = r.client.AnsweredIndex.Create().
		SetUserID(userID).
		SetSection(section).
		SetItemIds(ids).
		OnConflictColumns(answeredindex.FieldUserID, answeredindex.FieldSection).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert answered index: %w", err)
	}
	return nil
}

func (r *historyRepo) LessonProgress(ctx context.Context, userID, section string) (map[string]float64, error) {
	rows, err := r.client.LessonProgress.Query().
		Where(lessonprogress.UserID(userID), lessonprogress.Section(section)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lesson progress: %w", err)
	}
	progress := make(map[string]float64, len(rows))
	for _, row := range rows {
		progress[row.LessonID] = row.Percent
	}
	return progress, nil
}

func (r *historyRepo) SetLessonProgress(ctx context.Context, userID, lessonID, section string, percent float64) error {
	err := r.client.LessonProgress.Create().
		SetUserID(userID).
		SetLessonID(lessonID).
		SetSection(section).
		SetPercent(percent).
		OnConflictColumns(lessonprogress.FieldUserID, lessonprogress.FieldLessonID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert lesson progress: %w", err)
	}
	return nil
}

// TopicStats folds item history rows into per-topic accuracy aggregates.
// Aggregation happens in Go rather than SQL so the topic key can stay a
// free-form tag without a normalization table.
func (r *historyRepo) TopicStats(ctx context.Context, userID, section string) ([]*TopicStatRecord, error) {
	rows, err := r.ListItemHistory(ctx, userID, section)
	if err != nil {
		return nil, err
	}

	byTopic := make(map[string]*TopicStatRecord)
	for _, rec := range rows {
		if rec.Topic == "" {
			continue
		}
		stat, ok := byTopic[rec.Topic]
		if !ok {
			stat = &TopicStatRecord{Topic: rec.Topic}
			byTopic[rec.Topic] = stat
		}
		stat.TotalQuestions += rec.TimesAnswered
		stat.Correct += rec.TimesCorrect
		if stat.LastPracticedAt == nil || rec.LastAnsweredAt.After(*stat.LastPracticedAt) {
			t := rec.LastAnsweredAt
			stat.LastPracticedAt = &t
		}
	}

	stats := make([]*TopicStatRecord, 0, len(byTopic))
	for _, stat := range byTopic {
		if stat.TotalQuestions > 0 {
			stat.Accuracy = 100 * float64(stat.Correct) / float64(stat.TotalQuestions)
		}
		stats = append(stats, stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Topic < stats[j].Topic
	})
	return stats, nil
}

func itemHistoryToRecord(row *ent.ItemHistory) *ItemHistoryRecord {
	return &ItemHistoryRecord{
		ItemID:         row.ItemID,
		Section:        row.Section,
		Topic:          row.Topic,
		TimesAnswered:  row.TimesAnswered,
		TimesCorrect:   row.TimesCorrect,
		LastAnsweredAt: row.LastAnsweredAt,
		LastCorrect:    row.LastCorrect,
		MasteryLevel:   row.MasteryLevel,
		NextReviewAt:   row.NextReviewAt,
	}
}

func simTaskToRecord(row *ent.SimTaskHistory) *SimTaskRecord {
	return &SimTaskRecord{
		TaskID:          row.TaskID,
		Section:         row.Section,
		Topic:           row.Topic,
		Attempts:        row.Attempts,
		BestScore:       row.BestScore,
		LastScore:       row.LastScore,
		AvgScore:        row.AvgScore,
		LastAttemptedAt: row.LastAttemptedAt,
		TotalTimeSpent:  row.TotalTimeSpent,
		Mastered:        row.Mastered,
	}
}
