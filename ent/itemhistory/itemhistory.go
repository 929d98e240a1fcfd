// Code generated by ent, DO NOT EDIT.

package itemhistory

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the itemhistory type in the database.
	Label = "item_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldSection holds the string denoting the section field in the database.
	FieldSection = "section"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldTimesAnswered holds the string denoting the times_answered field in the database.
	FieldTimesAnswered = "times_answered"
	// FieldTimesCorrect holds the string denoting the times_correct field in the database.
	FieldTimesCorrect = "times_correct"
	// FieldLastAnsweredAt holds the string denoting the last_answered_at field in the database.
	FieldLastAnsweredAt = "last_answered_at"
	// FieldLastCorrect holds the string denoting the last_correct field in the database.
	FieldLastCorrect = "last_correct"
	// FieldMasteryLevel holds the string denoting the mastery_level field in the database.
	FieldMasteryLevel = "mastery_level"
	// FieldNextReviewAt holds the string denoting the next_review_at field in the database.
	FieldNextReviewAt = "next_review_at"
	// Table holds the table name of the itemhistory in the database.
	Table = "item_histories"
)

// Columns holds all SQL columns for itemhistory fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldItemID,
	FieldSection,
	FieldTopic,
	FieldTimesAnswered,
	FieldTimesCorrect,
	FieldLastAnsweredAt,
	FieldLastCorrect,
	FieldMasteryLevel,
	FieldNextReviewAt,
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
	// ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	ItemIDValidator func(string) error
	// SectionValidator is a validator for the "section" field. It is called by the builders before save.
	SectionValidator func(string) error
	// TimesAnsweredValidator is a validator for the "times_answered" field. It is called by the builders before save.
	TimesAnsweredValidator func(int) error
	// TimesCorrectValidator is a validator for the "times_correct" field. It is called by the builders before save.
	TimesCorrectValidator func(int) error
)

// OrderOption defines the ordering options for the ItemHistory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// BySection orders the results by the section field.
func BySection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSection, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByTimesAnswered orders the results by the times_answered field.
func ByTimesAnswered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimesAnswered, opts...).ToFunc()
}

// ByTimesCorrect orders the results by the times_correct field.
func ByTimesCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimesCorrect, opts...).ToFunc()
}

// ByLastAnsweredAt orders the results by the last_answered_at field.
func ByLastAnsweredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAnsweredAt, opts...).ToFunc()
}

// ByLastCorrect orders the results by the last_correct field.
func ByLastCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCorrect, opts...).ToFunc()
}

// ByMasteryLevel orders the results by the mastery_level field.
func ByMasteryLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryLevel, opts...).ToFunc()
}

// ByNextReviewAt orders the results by the next_review_at field.
func ByNextReviewAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReviewAt, opts...).ToFunc()
}
