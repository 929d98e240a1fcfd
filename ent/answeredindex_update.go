// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/studymesh/cpaprep/ent/answeredindex"
	"github.com/studymesh/cpaprep/ent/predicate"
)

// AnsweredIndexUpdate is the builder for updating AnsweredIndex entities.
type AnsweredIndexUpdate struct {
	config
	hooks    []Hook
	mutation *AnsweredIndexMutation
}

// Where appends a list predicates to the AnsweredIndexUpdate builder.
func (aiu *AnsweredIndexUpdate) Where(ps ...predicate.AnsweredIndex) *AnsweredIndexUpdate {
	aiu.mutation.Where(ps...)
	return aiu
}

// SetUserID sets the "user_id" field.
func (aiu *AnsweredIndexUpdate) SetUserID(s string) *AnsweredIndexUpdate {
	aiu.mutation.SetUserID(s)
	return aiu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (aiu *AnsweredIndexUpdate) SetNillableUserID(s *string) *AnsweredIndexUpdate {
	if s != nil {
		aiu.SetUserID(*s)
	}
	return aiu
}

// SetSection sets the "section" field.
func (aiu *AnsweredIndexUpdate) SetSection(s string) *AnsweredIndexUpdate {
	aiu.mutation.SetSection(s)
	return aiu
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (aiu *AnsweredIndexUpdate) SetNillableSection(s *string) *AnsweredIndexUpdate {
	if s != nil {
		aiu.SetSection(*s)
	}
	return aiu
}

// SetItemIds sets the "item_ids" field.
func (aiu *AnsweredIndexUpdate) SetItemIds(s []string) *AnsweredIndexUpdate {
	aiu.mutation.SetItemIds(s)
	return aiu
}

// AppendItemIds appends s to the "item_ids" field.
func (aiu *AnsweredIndexUpdate) AppendItemIds(s []string) *AnsweredIndexUpdate {
	aiu.mutation.AppendItemIds(s)
	return aiu
}

// SetUpdatedAt sets the "updated_at" field.
func (aiu *AnsweredIndexUpdate) SetUpdatedAt(t time.Time) *AnsweredIndexUpdate {
	aiu.mutation.SetUpdatedAt(t)
	return aiu
}

// Mutation returns the AnsweredIndexMutation object of the builder.
func (aiu *AnsweredIndexUpdate) Mutation() *AnsweredIndexMutation {
	return aiu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aiu *AnsweredIndexUpdate) Save(ctx context.Context) (int, error) {
	aiu.defaults()
	return withHooks(ctx, aiu.sqlSave, aiu.mutation, aiu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aiu *AnsweredIndexUpdate) SaveX(ctx context.Context) int {
	affected, err := aiu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aiu *AnsweredIndexUpdate) Exec(ctx context.Context) error {
	_, err := aiu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aiu *AnsweredIndexUpdate) ExecX(ctx context.Context) {
	if err := aiu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aiu *AnsweredIndexUpdate) defaults() {
	if _, ok := aiu.mutation.UpdatedAt(); !ok {
		v := answeredindex.UpdateDefaultUpdatedAt()
		aiu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aiu *AnsweredIndexUpdate) check() error {
	if v, ok := aiu.mutation.UserID(); ok {
		if err := answeredindex.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnsweredIndex.user_id": %w`, err)}
		}
	}
	if v, ok := aiu.mutation.Section(); ok {
		if err := answeredindex.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "AnsweredIndex.section": %w`, err)}
		}
	}
	return nil
}

func (aiu *AnsweredIndexUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aiu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(answeredindex.Table, answeredindex.Columns, sqlgraph.NewFieldSpec(answeredindex.FieldID, field.TypeInt))
	if ps := aiu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aiu.mutation.UserID(); ok {
		_spec.SetField(answeredindex.FieldUserID, field.TypeString, value)
	}
	if value, ok := aiu.mutation.Section(); ok {
		_spec.SetField(answeredindex.FieldSection, field.TypeString, value)
	}
	if value, ok := aiu.mutation.ItemIds(); ok {
		_spec.SetField(answeredindex.FieldItemIds, field.TypeJSON, value)
	}
	if value, ok := aiu.mutation.AppendedItemIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answeredindex.FieldItemIds, value)
		})
	}
	if value, ok := aiu.mutation.UpdatedAt(); ok {
		_spec.SetField(answeredindex.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aiu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answeredindex.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aiu.mutation.done = true
	return n, nil
}

// AnsweredIndexUpdateOne is the builder for updating a single AnsweredIndex entity.
type AnsweredIndexUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnsweredIndexMutation
}

// SetUserID sets the "user_id" field.
func (aiuo *AnsweredIndexUpdateOne) SetUserID(s string) *AnsweredIndexUpdateOne {
	aiuo.mutation.SetUserID(s)
	return aiuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (aiuo *AnsweredIndexUpdateOne) SetNillableUserID(s *string) *AnsweredIndexUpdateOne {
	if s != nil {
		aiuo.SetUserID(*s)
	}
	return aiuo
}

// SetSection sets the "section" field.
func (aiuo *AnsweredIndexUpdateOne) SetSection(s string) *AnsweredIndexUpdateOne {
	aiuo.mutation.SetSection(s)
	return aiuo
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (aiuo *AnsweredIndexUpdateOne) SetNillableSection(s *string) *AnsweredIndexUpdateOne {
	if s != nil {
		aiuo.SetSection(*s)
	}
	return aiuo
}

// SetItemIds sets the "item_ids" field.
func (aiuo *AnsweredIndexUpdateOne) SetItemIds(s []string) *AnsweredIndexUpdateOne {
	aiuo.mutation.SetItemIds(s)
	return aiuo
}

// AppendItemIds appends s to the "item_ids" field.
func (aiuo *AnsweredIndexUpdateOne) AppendItemIds(s []string) *AnsweredIndexUpdateOne {
	aiuo.mutation.AppendItemIds(s)
	return aiuo
}

// SetUpdatedAt sets the "updated_at" field.
func (aiuo *AnsweredIndexUpdateOne) SetUpdatedAt(t time.Time) *AnsweredIndexUpdateOne {
	aiuo.mutation.SetUpdatedAt(t)
	return aiuo
}

// Mutation returns the AnsweredIndexMutation object of the builder.
func (aiuo *AnsweredIndexUpdateOne) Mutation() *AnsweredIndexMutation {
	return aiuo.mutation
}

// Where appends a list predicates to the AnsweredIndexUpdate builder.
func (aiuo *AnsweredIndexUpdateOne) Where(ps ...predicate.AnsweredIndex) *AnsweredIndexUpdateOne {
	aiuo.mutation.Where(ps...)
	return aiuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aiuo *AnsweredIndexUpdateOne) Select(field string, fields ...string) *AnsweredIndexUpdateOne {
	aiuo.fields = append([]string{field}, fields...)
	return aiuo
}

// Save executes the query and returns the updated AnsweredIndex entity.
func (aiuo *AnsweredIndexUpdateOne) Save(ctx context.Context) (*AnsweredIndex, error) {
	aiuo.defaults()
	return withHooks(ctx, aiuo.sqlSave, aiuo.mutation, aiuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aiuo *AnsweredIndexUpdateOne) SaveX(ctx context.Context) *AnsweredIndex {
	node, err := aiuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aiuo *AnsweredIndexUpdateOne) Exec(ctx context.Context) error {
	_, err := aiuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aiuo *AnsweredIndexUpdateOne) ExecX(ctx context.Context) {
	if err := aiuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aiuo *AnsweredIndexUpdateOne) defaults() {
	if _, ok := aiuo.mutation.UpdatedAt(); !ok {
		v := answeredindex.UpdateDefaultUpdatedAt()
		aiuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aiuo *AnsweredIndexUpdateOne) check() error {
	if v, ok := aiuo.mutation.UserID(); ok {
		if err := answeredindex.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnsweredIndex.user_id": %w`, err)}
		}
	}
	if v, ok := aiuo.mutation.Section(); ok {
		if err := answeredindex.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "AnsweredIndex.section": %w`, err)}
		}
	}
	return nil
}

func (aiuo *AnsweredIndexUpdateOne) sqlSave(ctx context.Context) (_node *AnsweredIndex, err error) {
	if err := aiuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answeredindex.Table, answeredindex.Columns, sqlgraph.NewFieldSpec(answeredindex.FieldID, field.TypeInt))
	id, ok := aiuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnsweredIndex.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aiuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answeredindex.FieldID)
		for _, f := range fields {
			if !answeredindex.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answeredindex.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aiuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aiuo.mutation.UserID(); ok {
		_spec.SetField(answeredindex.FieldUserID, field.TypeString, value)
	}
	if value, ok := aiuo.mutation.Section(); ok {
		_spec.SetField(answeredindex.FieldSection, field.TypeString, value)
	}
	if value, ok := aiuo.mutation.ItemIds(); ok {
		_spec.SetField(answeredindex.FieldItemIds, field.TypeJSON, value)
	}
	if value, ok := aiuo.mutation.AppendedItemIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answeredindex.FieldItemIds, value)
		})
	}
	if value, ok := aiuo.mutation.UpdatedAt(); ok {
		_spec.SetField(answeredindex.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AnsweredIndex{config: aiuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aiuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answeredindex.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aiuo.mutation.done = true
	return _node, nil
}
