// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnsweredIndexesColumns holds the columns for the "answered_indexes" table.
	AnsweredIndexesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "section", Type: field.TypeString},
		{Name: "item_ids", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AnsweredIndexesTable holds the schema information for the "answered_indexes" table.
	AnsweredIndexesTable = &schema.Table{
		Name:       "answered_indexes",
		Columns:    AnsweredIndexesColumns,
		PrimaryKey: []*schema.Column{AnsweredIndexesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answeredindex_user_id_section",
				Unique:  true,
				Columns: []*schema.Column{AnsweredIndexesColumns[1], AnsweredIndexesColumns[2]},
			},
		},
	}
	// ItemHistoriesColumns holds the columns for the "item_histories" table.
	ItemHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "section", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "times_answered", Type: field.TypeInt},
		{Name: "times_correct", Type: field.TypeInt},
		{Name: "last_answered_at", Type: field.TypeTime},
		{Name: "last_correct", Type: field.TypeBool},
		{Name: "mastery_level", Type: field.TypeString},
		{Name: "next_review_at", Type: field.TypeTime},
	}
	// ItemHistoriesTable holds the schema information for the "item_histories" table.
	ItemHistoriesTable = &schema.Table{
		Name:       "item_histories",
		Columns:    ItemHistoriesColumns,
		PrimaryKey: []*schema.Column{ItemHistoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "itemhistory_user_id_item_id",
				Unique:  true,
				Columns: []*schema.Column{ItemHistoriesColumns[1], ItemHistoriesColumns[2]},
			},
			{
				Name:    "itemhistory_user_id_section",
				Unique:  false,
				Columns: []*schema.Column{ItemHistoriesColumns[1], ItemHistoriesColumns[3]},
			},
			{
				Name:    "itemhistory_next_review_at",
				Unique:  false,
				Columns: []*schema.Column{ItemHistoriesColumns[10]},
			},
		},
	}
	// LessonProgressesColumns holds the columns for the "lesson_progresses" table.
	LessonProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "section", Type: field.TypeString},
		{Name: "percent", Type: field.TypeFloat64},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LessonProgressesTable holds the schema information for the "lesson_progresses" table.
	LessonProgressesTable = &schema.Table{
		Name:       "lesson_progresses",
		Columns:    LessonProgressesColumns,
		PrimaryKey: []*schema.Column{LessonProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonprogress_user_id_lesson_id",
				Unique:  true,
				Columns: []*schema.Column{LessonProgressesColumns[1], LessonProgressesColumns[2]},
			},
			{
				Name:    "lessonprogress_user_id_section",
				Unique:  false,
				Columns: []*schema.Column{LessonProgressesColumns[1], LessonProgressesColumns[3]},
			},
		},
	}
	// SimTaskHistoriesColumns holds the columns for the "sim_task_histories" table.
	SimTaskHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString},
		{Name: "section", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "attempts", Type: field.TypeInt},
		{Name: "best_score", Type: field.TypeFloat64},
		{Name: "last_score", Type: field.TypeFloat64},
		{Name: "avg_score", Type: field.TypeFloat64},
		{Name: "last_attempted_at", Type: field.TypeTime},
		{Name: "total_time_spent", Type: field.TypeInt},
		{Name: "mastered", Type: field.TypeBool},
	}
	// SimTaskHistoriesTable holds the schema information for the "sim_task_histories" table.
	SimTaskHistoriesTable = &schema.Table{
		Name:       "sim_task_histories",
		Columns:    SimTaskHistoriesColumns,
		PrimaryKey: []*schema.Column{SimTaskHistoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "simtaskhistory_user_id_task_id",
				Unique:  true,
				Columns: []*schema.Column{SimTaskHistoriesColumns[1], SimTaskHistoriesColumns[2]},
			},
			{
				Name:    "simtaskhistory_user_id_section",
				Unique:  false,
				Columns: []*schema.Column{SimTaskHistoriesColumns[1], SimTaskHistoriesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnsweredIndexesTable,
		ItemHistoriesTable,
		LessonProgressesTable,
		SimTaskHistoriesTable,
	}
)

func init() {
}
