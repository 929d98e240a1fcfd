// Code generated by ent, DO NOT EDIT.

package simtaskhistory

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the simtaskhistory type in the database.
	Label = "sim_task_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldSection holds the string denoting the section field in the database.
	FieldSection = "section"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldBestScore holds the string denoting the best_score field in the database.
	FieldBestScore = "best_score"
	// FieldLastScore holds the string denoting the last_score field in the database.
	FieldLastScore = "last_score"
	// FieldAvgScore holds the string denoting the avg_score field in the database.
	FieldAvgScore = "avg_score"
	// FieldLastAttemptedAt holds the string denoting the last_attempted_at field in the database.
	FieldLastAttemptedAt = "last_attempted_at"
	// FieldTotalTimeSpent holds the string denoting the total_time_spent field in the database.
	FieldTotalTimeSpent = "total_time_spent"
	// FieldMastered holds the string denoting the mastered field in the database.
	FieldMastered = "mastered"
	// Table holds the table name of the simtaskhistory in the database.
	Table = "sim_task_histories"
)

// Columns holds all SQL columns for simtaskhistory fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTaskID,
	FieldSection,
	FieldTopic,
	FieldAttempts,
	FieldBestScore,
	FieldLastScore,
	FieldAvgScore,
	FieldLastAttemptedAt,
	FieldTotalTimeSpent,
	FieldMastered,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	TaskIDValidator func(string) error
	// SectionValidator is a validator for the "section" field. It is called by the builders before save.
	SectionValidator func(string) error
	// AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	AttemptsValidator func(int) error
	// TotalTimeSpentValidator is a validator for the "total_time_spent" field. It is called by the builders before save.
	TotalTimeSpentValidator func(int) error
)

// OrderOption defines the ordering options for the SimTaskHistory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// BySection orders the results by the section field.
func BySection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSection, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByBestScore orders the results by the best_score field.
func ByBestScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBestScore, opts...).ToFunc()
}

// ByLastScore orders the results by the last_score field.
func ByLastScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastScore, opts...).ToFunc()
}

// ByAvgScore orders the results by the avg_score field.
func ByAvgScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgScore, opts...).ToFunc()
}

// ByLastAttemptedAt orders the results by the last_attempted_at field.
func ByLastAttemptedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAttemptedAt, opts...).ToFunc()
}

// ByTotalTimeSpent orders the results by the total_time_spent field.
func ByTotalTimeSpent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTimeSpent, opts...).ToFunc()
}

// ByMastered orders the results by the mastered field.
func ByMastered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMastered, opts...).ToFunc()
}
