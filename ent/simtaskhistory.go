// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/studymesh/cpaprep/ent/simtaskhistory"
)

// SimTaskHistory is the model entity for the SimTaskHistory schema.
type SimTaskHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Section holds the value of the "section" field.
	Section string `json:"section,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// BestScore holds the value of the "best_score" field.
	BestScore float64 `json:"best_score,omitempty"`
	// LastScore holds the value of the "last_score" field.
	LastScore float64 `json:"last_score,omitempty"`
	// Running mean over all attempts
	AvgScore float64 `json:"avg_score,omitempty"`
	// LastAttemptedAt holds the value of the "last_attempted_at" field.
	LastAttemptedAt time.Time `json:"last_attempted_at,omitempty"`
	// Seconds across all attempts
	TotalTimeSpent int `json:"total_time_spent,omitempty"`
	// True once best_score reaches the task mastery bar
	Mastered     bool `json:"mastered,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SimTaskHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case simtaskhistory.FieldMastered:
			values[i] = new(sql.NullBool)
		case simtaskhistory.FieldBestScore, simtaskhistory.FieldLastScore, simtaskhistory.FieldAvgScore:
			values[i] = new(sql.NullFloat64)
		case simtaskhistory.FieldID, simtaskhistory.FieldAttempts, simtaskhistory.FieldTotalTimeSpent:
			values[i] = new(sql.NullInt64)
		case simtaskhistory.FieldUserID, simtaskhistory.FieldTaskID, simtaskhistory.FieldSection, simtaskhistory.FieldTopic:
			values[i] = new(sql.NullString)
		case simtaskhistory.FieldLastAttemptedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SimTaskHistory fields.
func (sth *SimTaskHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case simtaskhistory.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			sth.ID = int(value.Int64)
		case simtaskhistory.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				sth.UserID = value.String
			}
		case simtaskhistory.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				sth.TaskID = value.String
			}
		case simtaskhistory.FieldSection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section", values[i])
			} else if value.Valid {
				sth.Section = value.String
			}
		case simtaskhistory.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				sth.Topic = value.String
			}
		case simtaskhistory.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				sth.Attempts = int(value.Int64)
			}
		case simtaskhistory.FieldBestScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field best_score", values[i])
			} else if value.Valid {
				sth.BestScore = value.Float64
			}
		case simtaskhistory.FieldLastScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field last_score", values[i])
			} else if value.Valid {
				sth.LastScore = value.Float64
			}
		case simtaskhistory.FieldAvgScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_score", values[i])
			} else if value.Valid {
				sth.AvgScore = value.Float64
			}
		case simtaskhistory.FieldLastAttemptedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_attempted_at", values[i])
			} else if value.Valid {
				sth.LastAttemptedAt = value.Time
			}
		case simtaskhistory.FieldTotalTimeSpent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_time_spent", values[i])
			} else if value.Valid {
				sth.TotalTimeSpent = int(value.Int64)
			}
		case simtaskhistory.FieldMastered:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field mastered", values[i])
			} else if value.Valid {
				sth.Mastered = value.Bool
			}
		default:
			sth.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SimTaskHistory.
// This includes values selected through modifiers, order, etc.
func (sth *SimTaskHistory) Value(name string) (ent.Value, error) {
	return sth.selectValues.Get(name)
}

// Update returns a builder for updating this SimTaskHistory.
// Note that you need to call SimTaskHistory.Unwrap() before calling this method if this SimTaskHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (sth *SimTaskHistory) Update() *SimTaskHistoryUpdateOne {
	return NewSimTaskHistoryClient(sth.config).UpdateOne(sth)
}

// Unwrap unwraps the SimTaskHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (sth *SimTaskHistory) Unwrap() *SimTaskHistory {
	_tx, ok := sth.config.driver.(*txDriver)
	if !ok {
		panic("ent: SimTaskHistory is not a transactional entity")
	}
	sth.config.driver = _tx.drv
	return sth
}

// String implements the fmt.Stringer.
func (sth *SimTaskHistory) String() string {
	var builder strings.Builder
	builder.WriteString("SimTaskHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", sth.ID))
	builder.WriteString("user_id=")
	builder.WriteString(sth.UserID)
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(sth.TaskID)
	builder.WriteString(", ")
	builder.WriteString("section=")
	builder.WriteString(sth.Section)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(sth.Topic)
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", sth.Attempts))
	builder.WriteString(", ")
	builder.WriteString("best_score=")
	builder.WriteString(fmt.Sprintf("%v", sth.BestScore))
	builder.WriteString(", ")
	builder.WriteString("last_score=")
	builder.WriteString(fmt.Sprintf("%v", sth.LastScore))
	builder.WriteString(", ")
	builder.WriteString("avg_score=")
	builder.WriteString(fmt.Sprintf("%v", sth.AvgScore))
	builder.WriteString(", ")
	builder.WriteString("last_attempted_at=")
	builder.WriteString(sth.LastAttemptedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("total_time_spent=")
	builder.WriteString(fmt.Sprintf("%v", sth.TotalTimeSpent))
	builder.WriteString(", ")
	builder.WriteString("mastered=")
	builder.WriteString(fmt.Sprintf("%v", sth.Mastered))
	builder.WriteByte(')')
	return builder.String()
}

// SimTaskHistories is a parsable slice of SimTaskHistory.
type SimTaskHistories []*SimTaskHistory
