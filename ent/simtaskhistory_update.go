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
	"github.com/studymesh/cpaprep/ent/predicate"
	"github.com/studymesh/cpaprep/ent/simtaskhistory"
)

// SimTaskHistoryUpdate is the builder for updating SimTaskHistory entities.
type SimTaskHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *SimTaskHistoryMutation
}

// Where appends a list predicates to the SimTaskHistoryUpdate builder.
func (sthu *SimTaskHistoryUpdate) Where(ps ...predicate.SimTaskHistory) *SimTaskHistoryUpdate {
	sthu.mutation.Where(ps...)
	return sthu
}

// SetUserID sets the "user_id" field.
func (sthu *SimTaskHistoryUpdate) SetUserID(s string) *SimTaskHistoryUpdate {
	sthu.mutation.SetUserID(s)
	return sthu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (sthu *SimTaskHistoryUpdate) SetNillableUserID(s *string) *SimTaskHistoryUpdate {
	if s != nil {
		sthu.SetUserID(*s)
	}
	return sthu
}

// SetTaskID sets the "task_id" field.
func (sthu *SimTaskHistoryUpdate) SetTaskID(s string) *SimTaskHistoryUpdate {
	sthu.mutation.SetTaskID(s)
	return sthu
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (sthu *SimTaskHistoryUpdate) SetNillableTaskID(s *string) *SimTaskHistoryUpdate {
	if s != nil {
		sthu.SetTaskID(*s)
	}
	return sthu
}

// SetSection sets the "section" field.
func (sthu *SimTaskHistoryUpdate) SetSection(s string) *SimTaskHistoryUpdate {
	sthu.mutation.SetSection(s)
	return sthu
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (sthu *SimTaskHistoryUpdate) SetNillableSection(s *string) *SimTaskHistoryUpdate {
	if s != nil {
		sthu.SetSection(*s)
	}
	return sthu
}

// SetTopic sets the "topic" field.
func (sthu *SimTaskHistoryUpdate) SetTopic(s string) *SimTaskHistoryUpdate {
	sthu.mutation.SetTopic(s)
	return sthu
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (sthu *SimTaskHistoryUpdate) SetNillableTopic(s *string) *SimTaskHistoryUpdate {
	if s != nil {
		sthu.SetTopic(*s)
	}
	return sthu
}

// SetAttempts sets the "attempts" field.
func (sthu *SimTaskHistoryUpdate) SetAttempts(i int) *SimTaskHistoryUpdate {
	sthu.mutation.ResetAttempts()
	sthu.mutation.SetAttempts(i)
	return sthu
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (sthu *SimTaskHistoryUpdate) SetNillableAttempts(i *int) *SimTaskHistoryUpdate {
	if i != nil {
		sthu.SetAttempts(*i)
	}
	return sthu
}

// AddAttempts adds i to the "attempts" field.
func (sthu *SimTaskHistoryUpdate) AddAttempts(i int) *SimTaskHistoryUpdate {
	sthu.mutation.AddAttempts(i)
	return sthu
}

// SetBestScore sets the "best_score" field.
func (sthu *SimTaskHistoryUpdate) SetBestScore(f float64) *SimTaskHistoryUpdate {
	sthu.mutation.ResetBestScore()
	sthu.mutation.SetBestScore(f)
	return sthu
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (sthu *SimTaskHistoryUpdate) SetNillableBestScore(f *float64) *SimTaskHistoryUpdate {
	if f != nil {
		sthu.SetBestScore(*f)
	}
	return sthu
}

// AddBestScore adds f to the "best_score" field.
func (sthu *SimTaskHistoryUpdate) AddBestScore(f float64) *SimTaskHistoryUpdate {
	sthu.mutation.AddBestScore(f)
	return sthu
}

// SetLastScore sets the "last_score" field.
func (sthu *SimTaskHistoryUpdate) SetLastScore(f float64) *SimTaskHistoryUpdate {
	sthu.mutation.ResetLastScore()
	sthu.mutation.SetLastScore(f)
	return sthu
}

// SetNillableLastScore sets the "last_score" field if the given value is not nil.
func (sthu *SimTaskHistoryUpdate) SetNillableLastScore(f *float64) *SimTaskHistoryUpdate {
	if f != nil {
		sthu.SetLastScore(*f)
	}
	return sthu
}

// AddLastScore adds f to the "last_score" field.
func (sthu *SimTaskHistoryUpdate) AddLastScore(f float64) *SimTaskHistoryUpdate {
	sthu.mutation.AddLastScore(f)
	return sthu
}

// SetAvgScore sets the "avg_score" field.
func (sthu *SimTaskHistoryUpdate) SetAvgScore(f float64) *SimTaskHistoryUpdate {
	sthu.mutation.ResetAvgScore()
	sthu.mutation.SetAvgScore(f)
	return sthu
}

// SetNillableAvgScore sets the "avg_score" field if the given value is not nil.
func (sthu *SimTaskHistoryUpdate) SetNillableAvgScore(f *float64) *SimTaskHistoryUpdate {
	if f != nil {
		sthu.SetAvgScore(*f)
	}
	return sthu
}

// AddAvgScore adds f to the "avg_score" field.
func (sthu *SimTaskHistoryUpdate) AddAvgScore(f float64) *SimTaskHistoryUpdate {
	sthu.mutation.AddAvgScore(f)
	return sthu
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (sthu *SimTaskHistoryUpdate) SetLastAttemptedAt(t time.Time) *SimTaskHistoryUpdate {
	sthu.mutation.SetLastAttemptedAt(t)
	return sthu
}

// SetNillableLastAttemptedAt sets the "last_attempted_at" field if the given value is not nil.
func (sthu *SimTaskHistoryUpdate) SetNillableLastAttemptedAt(t *time.Time) *SimTaskHistoryUpdate {
	if t != nil {
		sthu.SetLastAttemptedAt(*t)
	}
	return sthu
}

// SetTotalTimeSpent sets the "total_time_spent" field.
func (sthu *SimTaskHistoryUpdate) SetTotalTimeSpent(i int) *SimTaskHistoryUpdate {
	sthu.mutation.ResetTotalTimeSpent()
	sthu.mutation.SetTotalTimeSpent(i)
	return sthu
}

// SetNillableTotalTimeSpent sets the "total_time_spent" field if the given value is not nil.
func (sthu *SimTaskHistoryUpdate) SetNillableTotalTimeSpent(i *int) *SimTaskHistoryUpdate {
	if i != nil {
		sthu.SetTotalTimeSpent(*i)
	}
	return sthu
}

// AddTotalTimeSpent adds i to the "total_time_spent" field.
func (sthu *SimTaskHistoryUpdate) AddTotalTimeSpent(i int) *SimTaskHistoryUpdate {
	sthu.mutation.AddTotalTimeSpent(i)
	return sthu
}

// SetMastered sets the "mastered" field.
func (sthu *SimTaskHistoryUpdate) SetMastered(b bool) *SimTaskHistoryUpdate {
	sthu.mutation.SetMastered(b)
	return sthu
}

// SetNillableMastered sets the "mastered" field if the given value is not nil.
func (sthu *SimTaskHistoryUpdate) SetNillableMastered(b *bool) *SimTaskHistoryUpdate {
	if b != nil {
		sthu.SetMastered(*b)
	}
	return sthu
}

// Mutation returns the SimTaskHistoryMutation object of the builder.
func (sthu *SimTaskHistoryUpdate) Mutation() *SimTaskHistoryMutation {
	return sthu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (sthu *SimTaskHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, sthu.sqlSave, sthu.mutation, sthu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sthu *SimTaskHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := sthu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (sthu *SimTaskHistoryUpdate) Exec(ctx context.Context) error {
	_, err := sthu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sthu *SimTaskHistoryUpdate) ExecX(ctx context.Context) {
	if err := sthu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sthu *SimTaskHistoryUpdate) check() error {
	if v, ok := sthu.mutation.UserID(); ok {
		if err := simtaskhistory.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SimTaskHistory.user_id": %w`, err)}
		}
	}
	if v, ok := sthu.mutation.TaskID(); ok {
		if err := simtaskhistory.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "SimTaskHistory.task_id": %w`, err)}
		}
	}
	if v, ok := sthu.mutation.Section(); ok {
		if err := simtaskhistory.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "SimTaskHistory.section": %w`, err)}
		}
	}
	if v, ok := sthu.mutation.Attempts(); ok {
		if err := simtaskhistory.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "SimTaskHistory.attempts": %w`, err)}
		}
	}
	if v, ok := sthu.mutation.TotalTimeSpent(); ok {
		if err := simtaskhistory.TotalTimeSpentValidator(v); err != nil {
			return &ValidationError{Name: "total_time_spent", err: fmt.Errorf(`ent: validator failed for field "SimTaskHistory.total_time_spent": %w`, err)}
		}
	}
	return nil
}

func (sthu *SimTaskHistoryUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := sthu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(simtaskhistory.Table, simtaskhistory.Columns, sqlgraph.NewFieldSpec(simtaskhistory.FieldID, field.TypeInt))
	if ps := sthu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sthu.mutation.UserID(); ok {
		_spec.SetField(simtaskhistory.FieldUserID, field.TypeString, value)
	}
	if value, ok := sthu.mutation.TaskID(); ok {
		_spec.SetField(simtaskhistory.FieldTaskID, field.TypeString, value)
	}
	if value, ok := sthu.mutation.Section(); ok {
		_spec.SetField(simtaskhistory.FieldSection, field.TypeString, value)
	}
	if value, ok := sthu.mutation.Topic(); ok {
		_spec.SetField(simtaskhistory.FieldTopic, field.TypeString, value)
	}
	if value, ok := sthu.mutation.Attempts(); ok {
		_spec.SetField(simtaskhistory.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := sthu.mutation.AddedAttempts(); ok {
		_spec.AddField(simtaskhistory.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := sthu.mutation.BestScore(); ok {
		_spec.SetField(simtaskhistory.FieldBestScore, field.TypeFloat64, value)
	}
	if value, ok := sthu.mutation.AddedBestScore(); ok {
		_spec.AddField(simtaskhistory.FieldBestScore, field.TypeFloat64, value)
	}
	if value, ok := sthu.mutation.LastScore(); ok {
		_spec.SetField(simtaskhistory.FieldLastScore, field.TypeFloat64, value)
	}
	if value, ok := sthu.mutation.AddedLastScore(); ok {
		_spec.AddField(simtaskhistory.FieldLastScore, field.TypeFloat64, value)
	}
	if value, ok := sthu.mutation.AvgScore(); ok {
		_spec.SetField(simtaskhistory.FieldAvgScore, field.TypeFloat64, value)
	}
	if value, ok := sthu.mutation.AddedAvgScore(); ok {
		_spec.AddField(simtaskhistory.FieldAvgScore, field.TypeFloat64, value)
	}
	if value, ok := sthu.mutation.LastAttemptedAt(); ok {
		_spec.SetField(simtaskhistory.FieldLastAttemptedAt, field.TypeTime, value)
	}
	if value, ok := sthu.mutation.TotalTimeSpent(); ok {
		_spec.SetField(simtaskhistory.FieldTotalTimeSpent, field.TypeInt, value)
	}
	if value, ok := sthu.mutation.AddedTotalTimeSpent(); ok {
		_spec.AddField(simtaskhistory.FieldTotalTimeSpent, field.TypeInt, value)
	}
	if value, ok := sthu.mutation.Mastered(); ok {
		_spec.SetField(simtaskhistory.FieldMastered, field.TypeBool, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, sthu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{simtaskhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	sthu.mutation.done = true
	return n, nil
}

// SimTaskHistoryUpdateOne is the builder for updating a single SimTaskHistory entity.
type SimTaskHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SimTaskHistoryMutation
}

// SetUserID sets the "user_id" field.
func (sthuo *SimTaskHistoryUpdateOne) SetUserID(s string) *SimTaskHistoryUpdateOne {
	sthuo.mutation.SetUserID(s)
	return sthuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (sthuo *SimTaskHistoryUpdateOne) SetNillableUserID(s *string) *SimTaskHistoryUpdateOne {
	if s != nil {
		sthuo.SetUserID(*s)
	}
	return sthuo
}

// SetTaskID sets the "task_id" field.
func (sthuo *SimTaskHistoryUpdateOne) SetTaskID(s string) *SimTaskHistoryUpdateOne {
	sthuo.mutation.SetTaskID(s)
	return sthuo
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (sthuo *SimTaskHistoryUpdateOne) SetNillableTaskID(s *string) *SimTaskHistoryUpdateOne {
	if s != nil {
		sthuo.SetTaskID(*s)
	}
	return sthuo
}

// SetSection sets the "section" field.
func (sthuo *SimTaskHistoryUpdateOne) SetSection(s string) *SimTaskHistoryUpdateOne {
	sthuo.mutation.SetSection(s)
	return sthuo
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (sthuo *SimTaskHistoryUpdateOne) SetNillableSection(s *string) *SimTaskHistoryUpdateOne {
	if s != nil {
		sthuo.SetSection(*s)
	}
	return sthuo
}

// SetTopic sets the "topic" field.
func (sthuo *SimTaskHistoryUpdateOne) SetTopic(s string) *SimTaskHistoryUpdateOne {
	sthuo.mutation.SetTopic(s)
	return sthuo
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (sthuo *SimTaskHistoryUpdateOne) SetNillableTopic(s *string) *SimTaskHistoryUpdateOne {
	if s != nil {
		sthuo.SetTopic(*s)
	}
	return sthuo
}

// SetAttempts sets the "attempts" field.
func (sthuo *SimTaskHistoryUpdateOne) SetAttempts(i int) *SimTaskHistoryUpdateOne {
	sthuo.mutation.ResetAttempts()
	sthuo.mutation.SetAttempts(i)
	return sthuo
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (sthuo *SimTaskHistoryUpdateOne) SetNillableAttempts(i *int) *SimTaskHistoryUpdateOne {
	if i != nil {
		sthuo.SetAttempts(*i)
	}
	return sthuo
}

// AddAttempts adds i to the "attempts" field.
func (sthuo *SimTaskHistoryUpdateOne) AddAttempts(i int) *SimTaskHistoryUpdateOne {
	sthuo.mutation.AddAttempts(i)
	return sthuo
}

// SetBestScore sets the "best_score" field.
func (sthuo *SimTaskHistoryUpdateOne) SetBestScore(f float64) *SimTaskHistoryUpdateOne {
	sthuo.mutation.ResetBestScore()
	sthuo.mutation.SetBestScore(f)
	return sthuo
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (sthuo *SimTaskHistoryUpdateOne) SetNillableBestScore(f *float64) *SimTaskHistoryUpdateOne {
	if f != nil {
		sthuo.SetBestScore(*f)
	}
	return sthuo
}

// AddBestScore adds f to the "best_score" field.
func (sthuo *SimTaskHistoryUpdateOne) AddBestScore(f float64) *SimTaskHistoryUpdateOne {
	sthuo.mutation.AddBestScore(f)
	return sthuo
}

// SetLastScore sets the "last_score" field.
func (sthuo *SimTaskHistoryUpdateOne) SetLastScore(f float64) *SimTaskHistoryUpdateOne {
	sthuo.mutation.ResetLastScore()
	sthuo.mutation.SetLastScore(f)
	return sthuo
}

// SetNillableLastScore sets the "last_score" field if the given value is not nil.
func (sthuo *SimTaskHistoryUpdateOne) SetNillableLastScore(f *float64) *SimTaskHistoryUpdateOne {
	if f != nil {
		sthuo.SetLastScore(*f)
	}
	return sthuo
}

// AddLastScore adds f to the "last_score" field.
func (sthuo *SimTaskHistoryUpdateOne) AddLastScore(f float64) *SimTaskHistoryUpdateOne {
	sthuo.mutation.AddLastScore(f)
	return sthuo
}

// SetAvgScore sets the "avg_score" field.
func (sthuo *SimTaskHistoryUpdateOne) SetAvgScore(f float64) *SimTaskHistoryUpdateOne {
	sthuo.mutation.ResetAvgScore()
	sthuo.mutation.SetAvgScore(f)
	return sthuo
}

// SetNillableAvgScore sets the "avg_score" field if the given value is not nil.
func (sthuo *SimTaskHistoryUpdateOne) SetNillableAvgScore(f *float64) *SimTaskHistoryUpdateOne {
	if f != nil {
		sthuo.SetAvgScore(*f)
	}
	return sthuo
}

// AddAvgScore adds f to the "avg_score" field.
func (sthuo *SimTaskHistoryUpdateOne) AddAvgScore(f float64) *SimTaskHistoryUpdateOne {
	sthuo.mutation.AddAvgScore(f)
	return sthuo
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (sthuo *SimTaskHistoryUpdateOne) SetLastAttemptedAt(t time.Time) *SimTaskHistoryUpdateOne {
	sthuo.mutation.SetLastAttemptedAt(t)
	return sthuo
}

// SetNillableLastAttemptedAt sets the "last_attempted_at" field if the given value is not nil.
func (sthuo *SimTaskHistoryUpdateOne) SetNillableLastAttemptedAt(t *time.Time) *SimTaskHistoryUpdateOne {
	if t != nil {
		sthuo.SetLastAttemptedAt(*t)
	}
	return sthuo
}

// SetTotalTimeSpent sets the "total_time_spent" field.
func (sthuo *SimTaskHistoryUpdateOne) SetTotalTimeSpent(i int) *SimTaskHistoryUpdateOne {
	sthuo.mutation.ResetTotalTimeSpent()
	sthuo.mutation.SetTotalTimeSpent(i)
	return sthuo
}

// SetNillableTotalTimeSpent sets the "total_time_spent" field if the given value is not nil.
func (sthuo *SimTaskHistoryUpdateOne) SetNillableTotalTimeSpent(i *int) *SimTaskHistoryUpdateOne {
	if i != nil {
		sthuo.SetTotalTimeSpent(*i)
	}
	return sthuo
}

// AddTotalTimeSpent adds i to the "total_time_spent" field.
func (sthuo *SimTaskHistoryUpdateOne) AddTotalTimeSpent(i int) *SimTaskHistoryUpdateOne {
	sthuo.mutation.AddTotalTimeSpent(i)
	return sthuo
}

// SetMastered sets the "mastered" field.
func (sthuo *SimTaskHistoryUpdateOne) SetMastered(b bool) *SimTaskHistoryUpdateOne {
	sthuo.mutation.SetMastered(b)
	return sthuo
}

// SetNillableMastered sets the "mastered" field if the given value is not nil.
func (sthuo *SimTaskHistoryUpdateOne) SetNillableMastered(b *bool) *SimTaskHistoryUpdateOne {
	if b != nil {
		sthuo.SetMastered(*b)
	}
	return sthuo
}

// Mutation returns the SimTaskHistoryMutation object of the builder.
func (sthuo *SimTaskHistoryUpdateOne) Mutation() *SimTaskHistoryMutation {
	return sthuo.mutation
}

// Where appends a list predicates to the SimTaskHistoryUpdate builder.
func (sthuo *SimTaskHistoryUpdateOne) Where(ps ...predicate.SimTaskHistory) *SimTaskHistoryUpdateOne {
	sthuo.mutation.Where(ps...)
	return sthuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (sthuo *SimTaskHistoryUpdateOne) Select(field string, fields ...string) *SimTaskHistoryUpdateOne {
	sthuo.fields = append([]string{field}, fields...)
	return sthuo
}

// Save executes the query and returns the updated SimTaskHistory entity.
func (sthuo *SimTaskHistoryUpdateOne) Save(ctx context.Context) (*SimTaskHistory, error) {
	return withHooks(ctx, sthuo.sqlSave, sthuo.mutation, sthuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sthuo *SimTaskHistoryUpdateOne) SaveX(ctx context.Context) *SimTaskHistory {
	node, err := sthuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (sthuo *SimTaskHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := sthuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sthuo *SimTaskHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := sthuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sthuo *SimTaskHistoryUpdateOne) check() error {
	if v, ok := sthuo.mutation.UserID(); ok {
		if err := simtaskhistory.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SimTaskHistory.user_id": %w`, err)}
		}
	}
	if v, ok := sthuo.mutation.TaskID(); ok {
		if err := simtaskhistory.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "SimTaskHistory.task_id": %w`, err)}
		}
	}
	if v, ok := sthuo.mutation.Section(); ok {
		if err := simtaskhistory.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "SimTaskHistory.section": %w`, err)}
		}
	}
	if v, ok := sthuo.mutation.Attempts(); ok {
		if err := simtaskhistory.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "SimTaskHistory.attempts": %w`, err)}
		}
	}
	if v, ok := sthuo.mutation.TotalTimeSpent(); ok {
		if err := simtaskhistory.TotalTimeSpentValidator(v); err != nil {
			return &ValidationError{Name: "total_time_spent", err: fmt.Errorf(`ent: validator failed for field "SimTaskHistory.total_time_spent": %w`, err)}
		}
	}
	return nil
}

func (sthuo *SimTaskHistoryUpdateOne) sqlSave(ctx context.Context) (_node *SimTaskHistory, err error) {
	if err := sthuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(simtaskhistory.Table, simtaskhistory.Columns, sqlgraph.NewFieldSpec(simtaskhistory.FieldID, field.TypeInt))
	id, ok := sthuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SimTaskHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := sthuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, simtaskhistory.FieldID)
		for _, f := range fields {
			if !simtaskhistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != simtaskhistory.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := sthuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sthuo.mutation.UserID(); ok {
		_spec.SetField(simtaskhistory.FieldUserID, field.TypeString, value)
	}
	if value, ok := sthuo.mutation.TaskID(); ok {
		_spec.SetField(simtaskhistory.FieldTaskID, field.TypeString, value)
	}
	if value, ok := sthuo.mutation.Section(); ok {
		_spec.SetField(simtaskhistory.FieldSection, field.TypeString, value)
	}
	if value, ok := sthuo.mutation.Topic(); ok {
		_spec.SetField(simtaskhistory.FieldTopic, field.TypeString, value)
	}
	if value, ok := sthuo.mutation.Attempts(); ok {
		_spec.SetField(simtaskhistory.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := sthuo.mutation.AddedAttempts(); ok {
		_spec.AddField(simtaskhistory.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := sthuo.mutation.BestScore(); ok {
		_spec.SetField(simtaskhistory.FieldBestScore, field.TypeFloat64, value)
	}
	if value, ok := sthuo.mutation.AddedBestScore(); ok {
		_spec.AddField(simtaskhistory.FieldBestScore, field.TypeFloat64, value)
	}
	if value, ok := sthuo.mutation.LastScore(); ok {
		_spec.SetField(simtaskhistory.FieldLastScore, field.TypeFloat64, value)
	}
	if value, ok := sthuo.mutation.AddedLastScore(); ok {
		_spec.AddField(simtaskhistory.FieldLastScore, field.TypeFloat64, value)
	}
	if value, ok := sthuo.mutation.AvgScore(); ok {
		_spec.SetField(simtaskhistory.FieldAvgScore, field.TypeFloat64, value)
	}
	if value, ok := sthuo.mutation.AddedAvgScore(); ok {
		_spec.AddField(simtaskhistory.FieldAvgScore, field.TypeFloat64, value)
	}
	if value, ok := sthuo.mutation.LastAttemptedAt(); ok {
		_spec.SetField(simtaskhistory.FieldLastAttemptedAt, field.TypeTime, value)
	}
	if value, ok := sthuo.mutation.TotalTimeSpent(); ok {
		_spec.SetField(simtaskhistory.FieldTotalTimeSpent, field.TypeInt, value)
	}
	if value, ok := sthuo.mutation.AddedTotalTimeSpent(); ok {
		_spec.AddField(simtaskhistory.FieldTotalTimeSpent, field.TypeInt, value)
	}
	if value, ok := sthuo.mutation.Mastered(); ok {
		_spec.SetField(simtaskhistory.FieldMastered, field.TypeBool, value)
	}
	_node = &SimTaskHistory{config: sthuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, sthuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{simtaskhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	sthuo.mutation.done = true
	return _node, nil
}
