// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/studymesh/cpaprep/ent/itemhistory"
)

// ItemHistory is the model entity for the ItemHistory schema.
type ItemHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ItemID holds the value of the "item_id" field.
	ItemID string `json:"item_id,omitempty"`
	// Exam section the item belongs to (far, aud, reg)
	Section string `json:"section,omitempty"`
	// Topic tag carried from the question bank
	Topic string `json:"topic,omitempty"`
	// TimesAnswered holds the value of the "times_answered" field.
	TimesAnswered int `json:"times_answered,omitempty"`
	// TimesCorrect holds the value of the "times_correct" field.
	TimesCorrect int `json:"times_correct,omitempty"`
	// LastAnsweredAt holds the value of the "last_answered_at" field.
	LastAnsweredAt time.Time `json:"last_answered_at,omitempty"`
	// LastCorrect holds the value of the "last_correct" field.
	LastCorrect bool `json:"last_correct,omitempty"`
	// learning, reviewing, or mastered; recomputed on every write
	MasteryLevel string `json:"mastery_level,omitempty"`
	// Spaced repetition due time
	NextReviewAt time.Time `json:"next_review_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ItemHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case itemhistory.FieldLastCorrect:
			values[i] = new(sql.NullBool)
		case itemhistory.FieldID, itemhistory.FieldTimesAnswered, itemhistory.FieldTimesCorrect:
			values[i] = new(sql.NullInt64)
		case itemhistory.FieldUserID, itemhistory.FieldItemID, itemhistory.FieldSection, itemhistory.FieldTopic, itemhistory.FieldMasteryLevel:
			values[i] = new(sql.NullString)
		case itemhistory.FieldLastAnsweredAt, itemhistory.FieldNextReviewAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ItemHistory fields.
func (ih *ItemHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case itemhistory.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ih.ID = int(value.Int64)
		case itemhistory.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				ih.UserID = value.String
			}
		case itemhistory.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				ih.ItemID = value.String
			}
		case itemhistory.FieldSection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section", values[i])
			} else if value.Valid {
				ih.Section = value.String
			}
		case itemhistory.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				ih.Topic = value.String
			}
		case itemhistory.FieldTimesAnswered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field times_answered", values[i])
			} else if value.Valid {
				ih.TimesAnswered = int(value.Int64)
			}
		case itemhistory.FieldTimesCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field times_correct", values[i])
			} else if value.Valid {
				ih.TimesCorrect = int(value.Int64)
			}
		case itemhistory.FieldLastAnsweredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_answered_at", values[i])
			} else if value.Valid {
				ih.LastAnsweredAt = value.Time
			}
		case itemhistory.FieldLastCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field last_correct", values[i])
			} else if value.Valid {
				ih.LastCorrect = value.Bool
			}
		case itemhistory.FieldMasteryLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_level", values[i])
			} else if value.Valid {
				ih.MasteryLevel = value.String
			}
		case itemhistory.FieldNextReviewAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_at", values[i])
			} else if value.Valid {
				ih.NextReviewAt = value.Time
			}
		default:
			ih.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ItemHistory.
// This includes values selected through modifiers, order, etc.
func (ih *ItemHistory) Value(name string) (ent.Value, error) {
	return ih.selectValues.Get(name)
}

// Update returns a builder for updating this ItemHistory.
// Note that you need to call ItemHistory.Unwrap() before calling this method if this ItemHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (ih *ItemHistory) Update() *ItemHistoryUpdateOne {
	return NewItemHistoryClient(ih.config).UpdateOne(ih)
}

// Unwrap unwraps the ItemHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ih *ItemHistory) Unwrap() *ItemHistory {
	_tx, ok := ih.config.driver.(*txDriver)
	if !ok {
		panic("ent: ItemHistory is not a transactional entity")
	}
	ih.config.driver = _tx.drv
	return ih
}

// String implements the fmt.Stringer.
func (ih *ItemHistory) String() string {
	var builder strings.Builder
	builder.WriteString("ItemHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ih.ID))
	builder.WriteString("user_id=")
	builder.WriteString(ih.UserID)
	builder.WriteString(", ")
	builder.WriteString("item_id=")
	builder.WriteString(ih.ItemID)
	builder.WriteString(", ")
	builder.WriteString("section=")
	builder.WriteString(ih.Section)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(ih.Topic)
	builder.WriteString(", ")
	builder.WriteString("times_answered=")
	builder.WriteString(fmt.Sprintf("%v", ih.TimesAnswered))
	builder.WriteString(", ")
	builder.WriteString("times_correct=")
	builder.WriteString(fmt.Sprintf("%v", ih.TimesCorrect))
	builder.WriteString(", ")
	builder.WriteString("last_answered_at=")
	builder.WriteString(ih.LastAnsweredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_correct=")
	builder.WriteString(fmt.Sprintf("%v", ih.LastCorrect))
	builder.WriteString(", ")
	builder.WriteString("mastery_level=")
	builder.WriteString(ih.MasteryLevel)
	builder.WriteString(", ")
	builder.WriteString("next_review_at=")
	builder.WriteString(ih.NextReviewAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ItemHistories is a parsable slice of ItemHistory.
type ItemHistories []*ItemHistory
