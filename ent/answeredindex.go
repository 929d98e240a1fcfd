// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/studymesh/cpaprep/ent/answeredindex"
)

// AnsweredIndex is the model entity for the AnsweredIndex schema.
type AnsweredIndex struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Section holds the value of the "section" field.
	Section string `json:"section,omitempty"`
	// ItemIds holds the value of the "item_ids" field.
	ItemIds []string `json:"item_ids,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnsweredIndex) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case answeredindex.FieldItemIds:
			values[i] = new([]byte)
		case answeredindex.FieldID:
			values[i] = new(sql.NullInt64)
		case answeredindex.FieldUserID, answeredindex.FieldSection:
			values[i] = new(sql.NullString)
		case answeredindex.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnsweredIndex fields.
func (ai *AnsweredIndex) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case answeredindex.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ai.ID = int(value.Int64)
		case answeredindex.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				ai.UserID = value.String
			}
		case answeredindex.FieldSection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section", values[i])
			} else if value.Valid {
				ai.Section = value.String
			}
		case answeredindex.FieldItemIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field item_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ai.ItemIds); err != nil {
					return fmt.Errorf("unmarshal field item_ids: %w", err)
				}
			}
		case answeredindex.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ai.UpdatedAt = value.Time
			}
		default:
			ai.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnsweredIndex.
// This includes values selected through modifiers, order, etc.
func (ai *AnsweredIndex) Value(name string) (ent.Value, error) {
	return ai.selectValues.Get(name)
}

// Update returns a builder for updating this AnsweredIndex.
// Note that you need to call AnsweredIndex.Unwrap() before calling this method if this AnsweredIndex
// was returned from a transaction, and the transaction was committed or rolled back.
func (ai *AnsweredIndex) Update() *AnsweredIndexUpdateOne {
	return NewAnsweredIndexClient(ai.config).UpdateOne(ai)
}

// Unwrap unwraps the AnsweredIndex entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ai *AnsweredIndex) Unwrap() *AnsweredIndex {
	_tx, ok := ai.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnsweredIndex is not a transactional entity")
	}
	ai.config.driver = _tx.drv
	return ai
}

// String implements the fmt.Stringer.
func (ai *AnsweredIndex) String() string {
	var builder strings.Builder
	builder.WriteString("AnsweredIndex(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ai.ID))
	builder.WriteString("user_id=")
	builder.WriteString(ai.UserID)
	builder.WriteString(", ")
	builder.WriteString("section=")
	builder.WriteString(ai.Section)
	builder.WriteString(", ")
	builder.WriteString("item_ids=")
	builder.WriteString(fmt.Sprintf("%v", ai.ItemIds))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ai.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnsweredIndexes is a parsable slice of AnsweredIndex.
type AnsweredIndexes []*AnsweredIndex
