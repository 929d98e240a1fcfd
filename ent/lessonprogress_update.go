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
	"github.com/studymesh/cpaprep/ent/lessonprogress"
	"github.com/studymesh/cpaprep/ent/predicate"
)

// LessonProgressUpdate is the builder for updating LessonProgress entities.
type LessonProgressUpdate struct {
	config
	hooks    []Hook
	mutation *LessonProgressMutation
}

// Where appends a list predicates to the LessonProgressUpdate builder.
func (lpu *LessonProgressUpdate) Where(ps ...predicate.LessonProgress) *LessonProgressUpdate {
	lpu.mutation.Where(ps...)
	return lpu
}

// SetUserID sets the "user_id" field.
func (lpu *LessonProgressUpdate) SetUserID(s string) *LessonProgressUpdate {
	lpu.mutation.SetUserID(s)
	return lpu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (lpu *LessonProgressUpdate) SetNillableUserID(s *string) *LessonProgressUpdate {
	if s != nil {
		lpu.SetUserID(*s)
	}
	return lpu
}

// SetLessonID sets the "lesson_id" field.
func (lpu *LessonProgressUpdate) SetLessonID(s string) *LessonProgressUpdate {
	lpu.mutation.SetLessonID(s)
	return lpu
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (lpu *LessonProgressUpdate) SetNillableLessonID(s *string) *LessonProgressUpdate {
	if s != nil {
		lpu.SetLessonID(*s)
	}
	return lpu
}

// SetSection sets the "section" field.
func (lpu *LessonProgressUpdate) SetSection(s string) *LessonProgressUpdate {
	lpu.mutation.SetSection(s)
	return lpu
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (lpu *LessonProgressUpdate) SetNillableSection(s *string) *LessonProgressUpdate {
	if s != nil {
		lpu.SetSection(*s)
	}
	return lpu
}

// SetPercent sets the "percent" field.
func (lpu *LessonProgressUpdate) SetPercent(f float64) *LessonProgressUpdate {
	lpu.mutation.ResetPercent()
	lpu.mutation.SetPercent(f)
	return lpu
}

// SetNillablePercent sets the "percent" field if the given value is not nil.
func (lpu *LessonProgressUpdate) SetNillablePercent(f *float64) *LessonProgressUpdate {
	if f != nil {
		lpu.SetPercent(*f)
	}
	return lpu
}

// AddPercent adds f to the "percent" field.
func (lpu *LessonProgressUpdate) AddPercent(f float64) *LessonProgressUpdate {
	lpu.mutation.AddPercent(f)
	return lpu
}

// SetUpdatedAt sets the "updated_at" field.
func (lpu *LessonProgressUpdate) SetUpdatedAt(t time.Time) *LessonProgressUpdate {
	lpu.mutation.SetUpdatedAt(t)
	return lpu
}

// Mutation returns the LessonProgressMutation object of the builder.
func (lpu *LessonProgressUpdate) Mutation() *LessonProgressMutation {
	return lpu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (lpu *LessonProgressUpdate) Save(ctx context.Context) (int, error) {
	lpu.defaults()
	return withHooks(ctx, lpu.sqlSave, lpu.mutation, lpu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lpu *LessonProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := lpu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (lpu *LessonProgressUpdate) Exec(ctx context.Context) error {
	_, err := lpu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lpu *LessonProgressUpdate) ExecX(ctx context.Context) {
	if err := lpu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lpu *LessonProgressUpdate) defaults() {
	if _, ok := lpu.mutation.UpdatedAt(); !ok {
		v := lessonprogress.UpdateDefaultUpdatedAt()
		lpu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lpu *LessonProgressUpdate) check() error {
	if v, ok := lpu.mutation.UserID(); ok {
		if err := lessonprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.user_id": %w`, err)}
		}
	}
	if v, ok := lpu.mutation.LessonID(); ok {
		if err := lessonprogress.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.lesson_id": %w`, err)}
		}
	}
	if v, ok := lpu.mutation.Section(); ok {
		if err := lessonprogress.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.section": %w`, err)}
		}
	}
	return nil
}

func (lpu *LessonProgressUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := lpu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonprogress.Table, lessonprogress.Columns, sqlgraph.NewFieldSpec(lessonprogress.FieldID, field.TypeInt))
	if ps := lpu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := lpu.mutation.UserID(); ok {
		_spec.SetField(lessonprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := lpu.mutation.LessonID(); ok {
		_spec.SetField(lessonprogress.FieldLessonID, field.TypeString, value)
	}
	if value, ok := lpu.mutation.Section(); ok {
		_spec.SetField(lessonprogress.FieldSection, field.TypeString, value)
	}
	if value, ok := lpu.mutation.Percent(); ok {
		_spec.SetField(lessonprogress.FieldPercent, field.TypeFloat64, value)
	}
	if value, ok := lpu.mutation.AddedPercent(); ok {
		_spec.AddField(lessonprogress.FieldPercent, field.TypeFloat64, value)
	}
	if value, ok := lpu.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, lpu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	lpu.mutation.done = true
	return n, nil
}

// LessonProgressUpdateOne is the builder for updating a single LessonProgress entity.
type LessonProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonProgressMutation
}

// SetUserID sets the "user_id" field.
func (lpuo *LessonProgressUpdateOne) SetUserID(s string) *LessonProgressUpdateOne {
	lpuo.mutation.SetUserID(s)
	return lpuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (lpuo *LessonProgressUpdateOne) SetNillableUserID(s *string) *LessonProgressUpdateOne {
	if s != nil {
		lpuo.SetUserID(*s)
	}
	return lpuo
}

// SetLessonID sets the "lesson_id" field.
func (lpuo *LessonProgressUpdateOne) SetLessonID(s string) *LessonProgressUpdateOne {
	lpuo.mutation.SetLessonID(s)
	return lpuo
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (lpuo *LessonProgressUpdateOne) SetNillableLessonID(s *string) *LessonProgressUpdateOne {
	if s != nil {
		lpuo.SetLessonID(*s)
	}
	return lpuo
}

// SetSection sets the "section" field.
func (lpuo *LessonProgressUpdateOne) SetSection(s string) *LessonProgressUpdateOne {
	lpuo.mutation.SetSection(s)
	return lpuo
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (lpuo *LessonProgressUpdateOne) SetNillableSection(s *string) *LessonProgressUpdateOne {
	if s != nil {
		lpuo.SetSection(*s)
	}
	return lpuo
}

// SetPercent sets the "percent" field.
func (lpuo *LessonProgressUpdateOne) SetPercent(f float64) *LessonProgressUpdateOne {
	lpuo.mutation.ResetPercent()
	lpuo.mutation.SetPercent(f)
	return lpuo
}

// SetNillablePercent sets the "percent" field if the given value is not nil.
func (lpuo *LessonProgressUpdateOne) SetNillablePercent(f *float64) *LessonProgressUpdateOne {
	if f != nil {
		lpuo.SetPercent(*f)
	}
	return lpuo
}

// AddPercent adds f to the "percent" field.
func (lpuo *LessonProgressUpdateOne) AddPercent(f float64) *LessonProgressUpdateOne {
	lpuo.mutation.AddPercent(f)
	return lpuo
}

// SetUpdatedAt sets the "updated_at" field.
func (lpuo *LessonProgressUpdateOne) SetUpdatedAt(t time.Time) *LessonProgressUpdateOne {
	lpuo.mutation.SetUpdatedAt(t)
	return lpuo
}

// Mutation returns the LessonProgressMutation object of the builder.
func (lpuo *LessonProgressUpdateOne) Mutation() *LessonProgressMutation {
	return lpuo.mutation
}

// Where appends a list predicates to the LessonProgressUpdate builder.
func (lpuo *LessonProgressUpdateOne) Where(ps ...predicate.LessonProgress) *LessonProgressUpdateOne {
	lpuo.mutation.Where(ps...)
	return lpuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (lpuo *LessonProgressUpdateOne) Select(field string, fields ...string) *LessonProgressUpdateOne {
	lpuo.fields = append([]string{field}, fields...)
	return lpuo
}

// Save executes the query and returns the updated LessonProgress entity.
func (lpuo *LessonProgressUpdateOne) Save(ctx context.Context) (*LessonProgress, error) {
	lpuo.defaults()
	return withHooks(ctx, lpuo.sqlSave, lpuo.mutation, lpuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lpuo *LessonProgressUpdateOne) SaveX(ctx context.Context) *LessonProgress {
	node, err := lpuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (lpuo *LessonProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := lpuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lpuo *LessonProgressUpdateOne) ExecX(ctx context.Context) {
	if err := lpuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lpuo *LessonProgressUpdateOne) defaults() {
	if _, ok := lpuo.mutation.UpdatedAt(); !ok {
		v := lessonprogress.UpdateDefaultUpdatedAt()
		lpuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lpuo *LessonProgressUpdateOne) check() error {
	if v, ok := lpuo.mutation.UserID(); ok {
		if err := lessonprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.user_id": %w`, err)}
		}
	}
	if v, ok := lpuo.mutation.LessonID(); ok {
		if err := lessonprogress.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.lesson_id": %w`, err)}
		}
	}
	if v, ok := lpuo.mutation.Section(); ok {
		if err := lessonprogress.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.section": %w`, err)}
		}
	}
	return nil
}

func (lpuo *LessonProgressUpdateOne) sqlSave(ctx context.Context) (_node *LessonProgress, err error) {
	if err := lpuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonprogress.Table, lessonprogress.Columns, sqlgraph.NewFieldSpec(lessonprogress.FieldID, field.TypeInt))
	id, ok := lpuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := lpuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonprogress.FieldID)
		for _, f := range fields {
			if !lessonprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonprogress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := lpuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := lpuo.mutation.UserID(); ok {
		_spec.SetField(lessonprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := lpuo.mutation.LessonID(); ok {
		_spec.SetField(lessonprogress.FieldLessonID, field.TypeString, value)
	}
	if value, ok := lpuo.mutation.Section(); ok {
		_spec.SetField(lessonprogress.FieldSection, field.TypeString, value)
	}
	if value, ok := lpuo.mutation.Percent(); ok {
		_spec.SetField(lessonprogress.FieldPercent, field.TypeFloat64, value)
	}
	if value, ok := lpuo.mutation.AddedPercent(); ok {
		_spec.AddField(lessonprogress.FieldPercent, field.TypeFloat64, value)
	}
	if value, ok := lpuo.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LessonProgress{config: lpuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, lpuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	lpuo.mutation.done = true
	return _node, nil
}
