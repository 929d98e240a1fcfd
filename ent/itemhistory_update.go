// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studymesh/cpaprep/ent/itemhistory"
	"github.com/studymesh/cpaprep/ent/predicate"
)

// ItemHistoryUpdate is the builder for updating ItemHistory entities.
type ItemHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *ItemHistoryMutation
}

// Where appends a list predicates to the ItemHistoryUpdate builder.
func (ihu *ItemHistoryUpdate) Where(ps ...predicate.ItemHistory) *ItemHistoryUpdate {
	ihu.mutation.Where(ps...)
	return ihu
}

// SetUserID sets the "user_id" field.
func (ihu *ItemHistoryUpdate) SetUserID(s string) *ItemHistoryUpdate {
	ihu.mutation.SetUserID(s)
	return ihu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (ihu *ItemHistoryUpdate) SetNillableUserID(s *string) *ItemHistoryUpdate {
	if s != nil {
		ihu.SetUserID(*s)
	}
	return ihu
}

// SetItemID sets the "item_id" field.
func (ihu *ItemHistoryUpdate) SetItemID(s string) *ItemHistoryUpdate {
	ihu.mutation.SetItemID(s)
	return ihu
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (ihu *ItemHistoryUpdate) SetNillableItemID(s *string) *ItemHistoryUpdate {
	if s != nil {
		ihu.SetItemID(*s)
	}
	return ihu
}

// SetSection sets the "section" field.
func (ihu *ItemHistoryUpdate) SetSection(s string) *ItemHistoryUpdate {
	ihu.mutation.SetSection(s)
	return ihu
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (ihu *ItemHistoryUpdate) SetNillableSection(s *string) *ItemHistoryUpdate {
	if s != nil {
		ihu.SetSection(*s)
	}
	return ihu
}

// SetTopic sets the "topic" field.
func (ihu *ItemHistoryUpdate) SetTopic(s string) *ItemHistoryUpdate {
	ihu.mutation.SetTopic(s)
	return ihu
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (ihu *ItemHistoryUpdate) SetNillableTopic(s *string) *ItemHistoryUpdate {
	if s != nil {
		ihu.SetTopic(*s)
	}
	return ihu
}

// SetTimesAnswered sets the "times_answered" field.
func (ihu *ItemHistoryUpdate) SetTimesAnswered(i int) *ItemHistoryUpdate {
	ihu.mutation.ResetTimesAnswered()
	ihu.mutation.SetTimesAnswered(i)
	return ihu
}

// SetNillableTimesAnswered sets the "times_answered" field if the given value is not nil.
func (ihu *ItemHistoryUpdate) SetNillableTimesAnswered(i *int) *ItemHistoryUpdate {
	if i != nil {
		ihu.SetTimesAnswered(*i)
	}
	return ihu
}

// AddTimesAnswered adds i to the "times_answered" field.
func (ihu *ItemHistoryUpdate) AddTimesAnswered(i int) *ItemHistoryUpdate {
	ihu.mutation.AddTimesAnswered(i)
	return ihu
}

// SetTimesCorrect sets the "times_correct" field.
func (ihu *ItemHistoryUpdate) SetTimesCorrect(i int) *ItemHistoryUpdate {
	ihu.mutation.ResetTimesCorrect()
	ihu.mutation.SetTimesCorrect(i)
	return ihu
}

// SetNillableTimesCorrect sets the "times_correct" field if the given value is not nil.
func (ihu *ItemHistoryUpdate) SetNillableTimesCorrect(i *int) *ItemHistoryUpdate {
	if i != nil {
		ihu.SetTimesCorrect(*i)
	}
	return ihu
}

// AddTimesCorrect adds i to the "times_correct" field.
func (ihu *ItemHistoryUpdate) AddTimesCorrect(i int) *ItemHistoryUpdate {
	ihu.mutation.AddTimesCorrect(i)
	return ihu
}

// SetLastAnsweredAt sets the "last_answered_at" field.
func (ihu *ItemHistoryUpdate) SetLastAnsweredAt(t time.Time) *ItemHistoryUpdate {
	ihu.mutation.SetLastAnsweredAt(t)
	return ihu
}

// SetNillableLastAnsweredAt sets the "last_answered_at" field if the given value is not nil.
func (ihu *ItemHistoryUpdate) SetNillableLastAnsweredAt(t *time.Time) *ItemHistoryUpdate {
	if t != nil {
		ihu.SetLastAnsweredAt(*t)
	}
	return ihu
}

// SetLastCorrect sets the "last_correct" field.
func (ihu *ItemHistoryUpdate) SetLastCorrect(b bool) *ItemHistoryUpdate {
	ihu.mutation.SetLastCorrect(b)
	return ihu
}

// SetNillableLastCorrect sets the "last_correct" field if the given value is not nil.
func (ihu *ItemHistoryUpdate) SetNillableLastCorrect(b *bool) *ItemHistoryUpdate {
	if b != nil {
		ihu.SetLastCorrect(*b)
	}
	return ihu
}

// SetMasteryLevel sets the "mastery_level" field.
func (ihu *ItemHistoryUpdate) SetMasteryLevel(s string) *ItemHistoryUpdate {
	ihu.mutation.SetMasteryLevel(s)
	return ihu
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (ihu *ItemHistoryUpdate) SetNillableMasteryLevel(s *string) *ItemHistoryUpdate {
	if s != nil {
		ihu.SetMasteryLevel(*s)
	}
	return ihu
}

// SetNextReviewAt sets the "next_review_at" field.
func (ihu *ItemHistoryUpdate) SetNextReviewAt(t time.Time) *ItemHistoryUpdate {
	ihu.mutation.SetNextReviewAt(t)
	return ihu
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (ihu *ItemHistoryUpdate) SetNillableNextReviewAt(t *time.Time) *ItemHistoryUpdate {
	if t != nil {
		ihu.SetNextReviewAt(*t)
	}
	return ihu
}

// Mutation returns the ItemHistoryMutation object of the builder.
func (ihu *ItemHistoryUpdate) Mutation() *ItemHistoryMutation {
	return ihu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ihu *ItemHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ihu.sqlSave, ihu.mutation, ihu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ihu *ItemHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := ihu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ihu *ItemHistoryUpdate) Exec(ctx context.Context) error {
	_, err := ihu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ihu *ItemHistoryUpdate) ExecX(ctx context.Context) {
	if err := ihu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ihu *ItemHistoryUpdate) check() error {
	if v, ok := ihu.mutation.UserID(); ok {
		if err := itemhistory.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ItemHistory.user_id": %w`, err)}
		}
	}
	if v, ok := ihu.mutation.ItemID(); ok {
		if err := itemhistory.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ItemHistory.item_id": %w`, err)}
		}
	}
	if v, ok := ihu.mutation.Section(); ok {
		if err := itemhistory.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "ItemHistory.section": %w`, err)}
		}
	}
	if v, ok := ihu.mutation.TimesAnswered(); ok {
		if err := itemhistory.TimesAnsweredValidator(v); err != nil {
			return &ValidationError{Name: "times_answered", err: fmt.Errorf(`ent: validator failed for field "ItemHistory.times_answered": %w`, err)}
		}
	}
	if v, ok := ihu.mutation.TimesCorrect(); ok {
		if err := itemhistory.TimesCorrectValidator(v); err != nil {
			return &ValidationError{Name: "times_correct", err: fmt.Errorf(`ent: validator failed for field "ItemHistory.times_correct": %w`, err)}
		}
	}
	return nil
}

func (ihu *ItemHistoryUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ihu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(itemhistory.Table, itemhistory.Columns, sqlgraph.NewFieldSpec(itemhistory.FieldID, field.TypeInt))
	if ps := ihu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ihu.mutation.UserID(); ok {
		_spec.SetField(itemhistory.FieldUserID, field.TypeString, value)
	}
	if value, ok := ihu.mutation.ItemID(); ok {
		_spec.SetField(itemhistory.FieldItemID, field.TypeString, value)
	}
	if value, ok := ihu.mutation.Section(); ok {
		_spec.SetField(itemhistory.FieldSection, field.TypeString, value)
	}
	if value, ok := ihu.mutation.Topic(); ok {
		_spec.SetField(itemhistory.FieldTopic, field.TypeString, value)
	}
	if value, ok := ihu.mutation.TimesAnswered(); ok {
		_spec.SetField(itemhistory.FieldTimesAnswered, field.TypeInt, value)
	}
	if value, ok := ihu.mutation.AddedTimesAnswered(); ok {
		_spec.AddField(itemhistory.FieldTimesAnswered, field.TypeInt, value)
	}
	if value, ok := ihu.mutation.TimesCorrect(); ok {
		_spec.SetField(itemhistory.FieldTimesCorrect, field.TypeInt, value)
	}
	if value, ok := ihu.mutation.AddedTimesCorrect(); ok {
		_spec.AddField(itemhistory.FieldTimesCorrect, field.TypeInt, value)
	}
	if value, ok := ihu.mutation.LastAnsweredAt(); ok {
		_spec.SetField(itemhistory.FieldLastAnsweredAt, field.TypeTime, value)
	}
	if value, ok := ihu.mutation.LastCorrect(); ok {
		_spec.SetField(itemhistory.FieldLastCorrect, field.TypeBool, value)
	}
	if value, ok := ihu.mutation.MasteryLevel(); ok {
		_spec.SetField(itemhistory.FieldMasteryLevel, field.TypeString, value)
	}
	if value, ok := ihu.mutation.NextReviewAt(); ok {
		_spec.SetField(itemhistory.FieldNextReviewAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ihu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ihu.mutation.done = true
	return n, nil
}

// ItemHistoryUpdateOne is the builder for updating a single ItemHistory entity.
type ItemHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemHistoryMutation
}

// SetUserID sets the "user_id" field.
func (ihuo *ItemHistoryUpdateOne) SetUserID(s string) *ItemHistoryUpdateOne {
	ihuo.mutation.SetUserID(s)
	return ihuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (ihuo *ItemHistoryUpdateOne) SetNillableUserID(s *string) *ItemHistoryUpdateOne {
	if s != nil {
		ihuo.SetUserID(*s)
	}
	return ihuo
}

// SetItemID sets the "item_id" field.
func (ihuo *ItemHistoryUpdateOne) SetItemID(s string) *ItemHistoryUpdateOne {
	ihuo.mutation.SetItemID(s)
	return ihuo
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (ihuo *ItemHistoryUpdateOne) SetNillableItemID(s *string) *ItemHistoryUpdateOne {
	if s != nil {
		ihuo.SetItemID(*s)
	}
	return ihuo
}

// SetSection sets the "section" field.
func (ihuo *ItemHistoryUpdateOne) SetSection(s string) *ItemHistoryUpdateOne {
	ihuo.mutation.SetSection(s)
	return ihuo
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (ihuo *ItemHistoryUpdateOne) SetNillableSection(s *string) *ItemHistoryUpdateOne {
	if s != nil {
		ihuo.SetSection(*s)
	}
	return ihuo
}

// SetTopic sets the "topic" field.
func (ihuo *ItemHistoryUpdateOne) SetTopic(s string) *ItemHistoryUpdateOne {
	ihuo.mutation.SetTopic(s)
	return ihuo
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (ihuo *ItemHistoryUpdateOne) SetNillableTopic(s *string) *ItemHistoryUpdateOne {
	if s != nil {
		ihuo.SetTopic(*s)
	}
	return ihuo
}

// SetTimesAnswered sets the "times_answered" field.
func (ihuo *ItemHistoryUpdateOne) SetTimesAnswered(i int) *ItemHistoryUpdateOne {
	ihuo.mutation.ResetTimesAnswered()
	ihuo.mutation.SetTimesAnswered(i)
	return ihuo
}

// SetNillableTimesAnswered sets the "times_answered" field if the given value is not nil.
func (ihuo *ItemHistoryUpdateOne) SetNillableTimesAnswered(i *int) *ItemHistoryUpdateOne {
	if i != nil {
		ihuo.SetTimesAnswered(*i)
	}
	return ihuo
}

// AddTimesAnswered adds i to the "times_answered" field.
func (ihuo *ItemHistoryUpdateOne) AddTimesAnswered(i int) *ItemHistoryUpdateOne {
	ihuo.mutation.AddTimesAnswered(i)
	return ihuo
}

// SetTimesCorrect sets the "times_correct" field.
func (ihuo *ItemHistoryUpdateOne) SetTimesCorrect(i int) *ItemHistoryUpdateOne {
	ihuo.mutation.ResetTimesCorrect()
	ihuo.mutation.SetTimesCorrect(i)
	return ihuo
}

// SetNillableTimesCorrect sets the "times_correct" field if the given value is not nil.
func (ihuo *ItemHistoryUpdateOne) SetNillableTimesCorrect(i *int) *ItemHistoryUpdateOne {
	if i != nil {
		ihuo.SetTimesCorrect(*i)
	}
	return ihuo
}

// AddTimesCorrect adds i to the "times_correct" field.
func (ihuo *ItemHistoryUpdateOne) AddTimesCorrect(i int) *ItemHistoryUpdateOne {
	ihuo.mutation.AddTimesCorrect(i)
	return ihuo
}

// SetLastAnsweredAt sets the "last_answered_at" field.
func (ihuo *ItemHistoryUpdateOne) SetLastAnsweredAt(t time.Time) *ItemHistoryUpdateOne {
	ihuo.mutation.SetLastAnsweredAt(t)
	return ihuo
}

// SetNillableLastAnsweredAt sets the "last_answered_at" field if the given value is not nil.
func (ihuo *ItemHistoryUpdateOne) SetNillableLastAnsweredAt(t *time.Time) *ItemHistoryUpdateOne {
	if t != nil {
		ihuo.SetLastAnsweredAt(*t)
	}
	return ihuo
}

// SetLastCorrect sets the "last_correct" field.
func (ihuo *ItemHistoryUpdateOne) SetLastCorrect(b bool) *ItemHistoryUpdateOne {
	ihuo.mutation.SetLastCorrect(b)
	return ihuo
}

// SetNillableLastCorrect sets the "last_correct" field if the given value is not nil.
func (ihuo *ItemHistoryUpdateOne) SetNillableLastCorrect(b *bool) *ItemHistoryUpdateOne {
	if b != nil {
		ihuo.SetLastCorrect(*b)
	}
	return ihuo
}

// SetMasteryLevel sets the "mastery_level" field.
func (ihuo *ItemHistoryUpdateOne) SetMasteryLevel(s string) *ItemHistoryUpdateOne {
	ihuo.mutation.SetMasteryLevel(s)
	return ihuo
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (ihuo *ItemHistoryUpdateOne) SetNillableMasteryLevel(s *string) *ItemHistoryUpdateOne {
	if s != nil {
		ihuo.SetMasteryLevel(*s)
	}
	return ihuo
}

// SetNextReviewAt sets the "next_review_at" field.
func (ihuo *ItemHistoryUpdateOne) SetNextReviewAt(t time.Time) *ItemHistoryUpdateOne {
	ihuo.mutation.SetNextReviewAt(t)
	return ihuo
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (ihuo *ItemHistoryUpdateOne) SetNillableNextReviewAt(t *time.Time) *ItemHistoryUpdateOne {
	if t != nil {
		ihuo.SetNextReviewAt(*t)
	}
	return ihuo
}

// Mutation returns the ItemHistoryMutation object of the builder.
func (ihuo *ItemHistoryUpdateOne) Mutation() *ItemHistoryMutation {
	return ihuo.mutation
}

// Where appends a list predicates to the ItemHistoryUpdate builder.
func (ihuo *ItemHistoryUpdateOne) Where(ps ...predicate.ItemHistory) *ItemHistoryUpdateOne {
	ihuo.mutation.Where(ps...)
	return ihuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ihuo *ItemHistoryUpdateOne) Select(field string, fields ...string) *ItemHistoryUpdateOne {
	ihuo.fields = append([]string{field}, fields...)
	return ihuo
}

// Save executes the query and returns the updated ItemHistory entity.
func (ihuo *ItemHistoryUpdateOne) Save(ctx context.Context) (*ItemHistory, error) {
	return withHooks(ctx, ihuo.sqlSave, ihuo.mutation, ihuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ihuo *ItemHistoryUpdateOne) SaveX(ctx context.Context) *ItemHistory {
	node, err := ihuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ihuo *ItemHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := ihuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ihuo *ItemHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := ihuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ihuo *ItemHistoryUpdateOne) check() error {
	if v, ok := ihuo.mutation.UserID(); ok {
		if err := itemhistory.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ItemHistory.user_id": %w`, err)}
		}
	}
	if v, ok := ihuo.mutation.ItemID(); ok {
		if err := itemhistory.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ItemHistory.item_id": %w`, err)}
		}
	}
	if v, ok := ihuo.mutation.Section(); ok {
		if err := itemhistory.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "ItemHistory.section": %w`, err)}
		}
	}
	if v, ok := ihuo.mutation.TimesAnswered(); ok {
		if err := itemhistory.TimesAnsweredValidator(v); err != nil {
			return &ValidationError{Name: "times_answered", err: fmt.Errorf(`ent: validator failed for field "ItemHistory.times_answered": %w`, err)}
		}
	}
	if v, ok := ihuo.mutation.TimesCorrect(); ok {
		if err := itemhistory.TimesCorrectValidator(v); err != nil {
			return &ValidationError{Name: "times_correct", err: fmt.Errorf(`ent: validator failed for field "ItemHistory.times_correct": %w`, err)}
		}
	}
	return nil
}

func (ihuo *ItemHistoryUpdateOne) sqlSave(ctx context.Context) (_node *ItemHistory, err error) {
	if err := ihuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(itemhistory.Table, itemhistory.Columns, sqlgraph.NewFieldSpec(itemhistory.FieldID, field.TypeInt))
	id, ok := ihuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ItemHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ihuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, itemhistory.FieldID)
		for _, f := range fields {
			if !itemhistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != itemhistory.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ihuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ihuo.mutation.UserID(); ok {
		_spec.SetField(itemhistory.FieldUserID, field.TypeString, value)
	}
	if value, ok := ihuo.mutation.ItemID(); ok {
		_spec.SetField(itemhistory.FieldItemID, field.TypeString, value)
	}
	if value, ok := ihuo.mutation.Section(); ok {
		_spec.SetField(itemhistory.FieldSection, field.TypeString, value)
	}
	if value, ok := ihuo.mutation.Topic(); ok {
		_spec.SetField(itemhistory.FieldTopic, field.TypeString, value)
	}
	if value, ok := ihuo.mutation.TimesAnswered(); ok {
		_spec.SetField(itemhistory.FieldTimesAnswered, field.TypeInt, value)
	}
	if value, ok := ihuo.mutation.AddedTimesAnswered(); ok {
		_spec.AddField(itemhistory.FieldTimesAnswered, field.TypeInt, value)
	}
	if value, ok := ihuo.mutation.TimesCorrect(); ok {
		_spec.SetField(itemhistory.FieldTimesCorrect, field.TypeInt, value)
	}
	if value, ok := ihuo.mutation.AddedTimesCorrect(); ok {
		_spec.AddField(itemhistory.FieldTimesCorrect, field.TypeInt, value)
	}
	if value, ok := ihuo.mutation.LastAnsweredAt(); ok {
		_spec.SetField(itemhistory.FieldLastAnsweredAt, field.TypeTime, value)
	}
	if value, ok := ihuo.mutation.LastCorrect(); ok {
		_spec.SetField(itemhistory.FieldLastCorrect, field.TypeBool, value)
	}
	if value, ok := ihuo.mutation.MasteryLevel(); ok {
		_spec.SetField(itemhistory.FieldMasteryLevel, field.TypeString, value)
	}
	if value, ok := ihuo.mutation.NextReviewAt(); ok {
		_spec.SetField(itemhistory.FieldNextReviewAt, field.TypeTime, value)
	}
	_node = &ItemHistory{config: ihuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ihuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ihuo.mutation.done = true
	return _node, nil
}
