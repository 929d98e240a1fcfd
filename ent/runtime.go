// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/studymesh/cpaprep/ent/answeredindex"
	"github.com/studymesh/cpaprep/ent/itemhistory"
	"github.com/studymesh/cpaprep/ent/lessonprogress"
	"github.com/studymesh/cpaprep/ent/schema"
	"github.com/studymesh/cpaprep/ent/simtaskhistory"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answeredindexFields := schema.AnsweredIndex{}.Fields()
	_ = answeredindexFields
	// answeredindexDescUserID is the schema descriptor for user_id field.
	answeredindexDescUserID := answeredindexFields[0].Descriptor()
	// answeredindex.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	answeredindex.UserIDValidator = answeredindexDescUserID.Validators[0].(func(string) error)
	// answeredindexDescSection is the schema descriptor for section field.
	answeredindexDescSection := answeredindexFields[1].Descriptor()
	// answeredindex.SectionValidator is a validator for the "section" field. It is called by the builders before save.
	answeredindex.SectionValidator = answeredindexDescSection.Validators[0].(func(string) error)
	// answeredindexDescUpdatedAt is the schema descriptor for updated_at field.
	answeredindexDescUpdatedAt := answeredindexFields[3].Descriptor()
	// answeredindex.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	answeredindex.DefaultUpdatedAt = answeredindexDescUpdatedAt.Default.(func() time.Time)
	// answeredindex.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	answeredindex.UpdateDefaultUpdatedAt = answeredindexDescUpdatedAt.UpdateDefault.(func() time.Time)
	itemhistoryFields := schema.ItemHistory{}.Fields()
	_ = itemhistoryFields
	// itemhistoryDescUserID is the schema descriptor for user_id field.
	itemhistoryDescUserID := itemhistoryFields[0].Descriptor()
	// itemhistory.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	itemhistory.UserIDValidator = itemhistoryDescUserID.Validators[0].(func(string) error)
	// itemhistoryDescItemID is the schema descriptor for item_id field.
	itemhistoryDescItemID := itemhistoryFields[1].Descriptor()
	// itemhistory.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	itemhistory.ItemIDValidator = itemhistoryDescItemID.Validators[0].(func(string) error)
	// itemhistoryDescSection is the schema descriptor for section field.
	itemhistoryDescSection := itemhistoryFields[2].Descriptor()
	// itemhistory.SectionValidator is a validator for the "section" field. It is called by the builders before save.
	itemhistory.SectionValidator = itemhistoryDescSection.Validators[0].(func(string) error)
	// itemhistoryDescTimesAnswered is the schema descriptor for times_answered field.
	itemhistoryDescTimesAnswered := itemhistoryFields[4].Descriptor()
	// itemhistory.TimesAnsweredValidator is a validator for the "times_answered" field. It is called by the builders before save.
	itemhistory.TimesAnsweredValidator = itemhistoryDescTimesAnswered.Validators[0].(func(int) error)
	// itemhistoryDescTimesCorrect is the schema descriptor for times_correct field.
	itemhistoryDescTimesCorrect := itemhistoryFields[5].Descriptor()
	// itemhistory.TimesCorrectValidator is a validator for the "times_correct" field. It is called by the builders before save.
	itemhistory.TimesCorrectValidator = itemhistoryDescTimesCorrect.Validators[0].(func(int) error)
	lessonprogressFields := schema.LessonProgress{}.Fields()
	_ = lessonprogressFields
	// lessonprogressDescUserID is the schema descriptor for user_id field.
	lessonprogressDescUserID := lessonprogressFields[0].Descriptor()
	// lessonprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	lessonprogress.UserIDValidator = lessonprogressDescUserID.Validators[0].(func(string) error)
	// lessonprogressDescLessonID is the schema descriptor for lesson_id field.
	lessonprogressDescLessonID := lessonprogressFields[1].Descriptor()
	// lessonprogress.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonprogress.LessonIDValidator = lessonprogressDescLessonID.Validators[0].(func(string) error)
	// lessonprogressDescSection is the schema descriptor for section field.
	lessonprogressDescSection := lessonprogressFields[2].Descriptor()
	// lessonprogress.SectionValidator is a validator for the "section" field. It is called by the builders before save.
	lessonprogress.SectionValidator = lessonprogressDescSection.Validators[0].(func(string) error)
	// lessonprogressDescUpdatedAt is the schema descriptor for updated_at field.
	lessonprogressDescUpdatedAt := lessonprogressFields[4].Descriptor()
	// lessonprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lessonprogress.DefaultUpdatedAt = lessonprogressDescUpdatedAt.Default.(func() time.Time)
	// lessonprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lessonprogress.UpdateDefaultUpdatedAt = lessonprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
	simtaskhistoryFields := schema.SimTaskHistory{}.Fields()
	_ = simtaskhistoryFields
	// simtaskhistoryDescUserID is the schema descriptor for user_id field.
	simtaskhistoryDescUserID := simtaskhistoryFields[0].Descriptor()
	// simtaskhistory.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	simtaskhistory.UserIDValidator = simtaskhistoryDescUserID.Validators[0].(func(string) error)
	// simtaskhistoryDescTaskID is the schema descriptor for task_id field.
	simtaskhistoryDescTaskID := simtaskhistoryFields[1].Descriptor()
	// simtaskhistory.TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	simtaskhistory.TaskIDValidator = simtaskhistoryDescTaskID.Validators[0].(func(string) error)
	// simtaskhistoryDescSection is the schema descriptor for section field.
	simtaskhistoryDescSection := simtaskhistoryFields[2].Descriptor()
	// simtaskhistory.SectionValidator is a validator for the "section" field. It is called by the builders before save.
	simtaskhistory.SectionValidator = simtaskhistoryDescSection.Validators[0].(func(string) error)
	// simtaskhistoryDescAttempts is the schema descriptor for attempts field.
	simtaskhistoryDescAttempts := simtaskhistoryFields[4].Descriptor()
	// simtaskhistory.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	simtaskhistory.AttemptsValidator = simtaskhistoryDescAttempts.Validators[0].(func(int) error)
	// simtaskhistoryDescTotalTimeSpent is the schema descriptor for total_time_spent field.
	simtaskhistoryDescTotalTimeSpent := simtaskhistoryFields[9].Descriptor()
	// simtaskhistory.TotalTimeSpentValidator is a validator for the "total_time_spent" field. It is called by the builders before save.
	simtaskhistory.TotalTimeSpentValidator = simtaskhistoryDescTotalTimeSpent.Validators[0].(func(int) error)
}
