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
	"github.com/studymesh/cpaprep/ent/simtaskhistory"
)

// SimTaskHistoryCreate is the builder for creating a SimTaskHistory entity.
type SimTaskHistoryCreate struct {
	config
	mutation *SimTaskHistoryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (sthc *SimTaskHistoryCreate) SetUserID(s string) *SimTaskHistoryCreate {
	sthc.mutation.SetUserID(s)
	return sthc
}

// SetTaskID sets the "task_id" field.
func (sthc *SimTaskHistoryCreate) SetTaskID(s string) *SimTaskHistoryCreate {
	sthc.mutation.SetTaskID(s)
	return sthc
}

// SetSection sets the "section" field.
func (sthc *SimTaskHistoryCreate) SetSection(s string) *SimTaskHistoryCreate {
	sthc.mutation.SetSection(s)
	return sthc
}

// SetTopic sets the "topic" field.
func (sthc *SimTaskHistoryCreate) SetTopic(s string) *SimTaskHistoryCreate {
	sthc.mutation.SetTopic(s)
	return sthc
}

// SetAttempts sets the "attempts" field.
func (sthc *SimTaskHistoryCreate) SetAttempts(i int) *SimTaskHistoryCreate {
	sthc.mutation.SetAttempts(i)
	return sthc
}

// SetBestScore sets the "best_score" field.
func (sthc *SimTaskHistoryCreate) SetBestScore(f float64) *SimTaskHistoryCreate {
	sthc.mutation.SetBestScore(f)
	return sthc
}

// SetLastScore sets the "last_score" field.
func (sthc *SimTaskHistoryCreate) SetLastScore(f float64) *SimTaskHistoryCreate {
	sthc.mutation.SetLastScore(f)
	return sthc
}

// SetAvgScore sets the "avg_score" field.
func (sthc *SimTaskHistoryCreate) SetAvgScore(f float64) *SimTaskHistoryCreate {
	sthc.mutation.SetAvgScore(f)
	return sthc
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (sthc *SimTaskHistoryCreate) SetLastAttemptedAt(t time.Time) *SimTaskHistoryCreate {
	sthc.mutation.SetLastAttemptedAt(t)
	return sthc
}

// SetTotalTimeSpent sets the "total_time_spent" field.
func (sthc *SimTaskHistoryCreate) SetTotalTimeSpent(i int) *SimTaskHistoryCreate {
	sthc.mutation.SetTotalTimeSpent(i)
	return sthc
}

// SetMastered sets the "mastered" field.
func (sthc *SimTaskHistoryCreate) SetMastered(b bool) *SimTaskHistoryCreate {
	sthc.mutation.SetMastered(b)
	return sthc
}

// Mutation returns the SimTaskHistoryMutation object of the builder.
func (sthc *SimTaskHistoryCreate) Mutation() *SimTaskHistoryMutation {
	return sthc.mutation
}

// Save creates the SimTaskHistory in the database.
func (sthc *SimTaskHistoryCreate) Save(ctx context.Context) (*SimTaskHistory, error) {
	return withHooks(ctx, sthc.sqlSave, sthc.mutation, sthc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sthc *SimTaskHistoryCreate) SaveX(ctx context.Context) *SimTaskHistory {
	v, err := sthc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sthc *SimTaskHistoryCreate) Exec(ctx context.Context) error {
	_, err := sthc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sthc *SimTaskHistoryCreate) ExecX(ctx context.Context) {
	if err := sthc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sthc *SimTaskHistoryCreate) check() error {
	if _, ok := sthc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SimTaskHistory.user_id"`)}
	}
	if v, ok := sthc.mutation.UserID(); ok {
		if err := simtaskhistory.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SimTaskHistory.user_id": %w`, err)}
		}
	}
	if _, ok := sthc.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "SimTaskHistory.task_id"`)}
	}
	if v, ok := sthc.mutation.TaskID(); ok {
		if err := simtaskhistory.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "SimTaskHistory.task_id": %w`, err)}
		}
	}
	if _, ok := sthc.mutation.Section(); !ok {
		return &ValidationError{Name: "section", err: errors.New(`ent: missing required field "SimTaskHistory.section"`)}
	}
	if v, ok := sthc.mutation.Section(); ok {
		if err := simtaskhistory.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "SimTaskHistory.section": %w`, err)}
		}
	}
	if _, ok := sthc.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "SimTaskHistory.topic"`)}
	}
	if _, ok := sthc.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "SimTaskHistory.attempts"`)}
	}
	if v, ok := sthc.mutation.Attempts(); ok {
		if err := simtaskhistory.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "SimTaskHistory.attempts": %w`, err)}
		}
	}
	if _, ok := sthc.mutation.BestScore(); !ok {
		return &ValidationError{Name: "best_score", err: errors.New(`ent: missing required field "SimTaskHistory.best_score"`)}
	}
	if _, ok := sthc.mutation.LastScore(); !ok {
		return &ValidationError{Name: "last_score", err: errors.New(`ent: missing required field "SimTaskHistory.last_score"`)}
	}
	if _, ok := sthc.mutation.AvgScore(); !ok {
		return &ValidationError{Name: "avg_score", err: errors.New(`ent: missing required field "SimTaskHistory.avg_score"`)}
	}
	if _, ok := sthc.mutation.LastAttemptedAt(); !ok {
		return &ValidationError{Name: "last_attempted_at", err: errors.New(`ent: missing required field "SimTaskHistory.last_attempted_at"`)}
	}
	if _, ok := sthc.mutation.TotalTimeSpent(); !ok {
		return &ValidationError{Name: "total_time_spent", err: errors.New(`ent: missing required field "SimTaskHistory.total_time_spent"`)}
	}
	if v, ok := sthc.mutation.TotalTimeSpent(); ok {
		if err := simtaskhistory.TotalTimeSpentValidator(v); err != nil {
			return &ValidationError{Name: "total_time_spent", err: fmt.Errorf(`ent: validator failed for field "SimTaskHistory.total_time_spent": %w`, err)}
		}
	}
	if _, ok := sthc.mutation.Mastered(); !ok {
		return &ValidationError{Name: "mastered", err: errors.New(`ent: missing required field "SimTaskHistory.mastered"`)}
	}
	return nil
}

func (sthc *SimTaskHistoryCreate) sqlSave(ctx context.Context) (*SimTaskHistory, error) {
	if err := sthc.check(); err != nil {
		return nil, err
	}
	_node, _spec := sthc.createSpec()
	if err := sqlgraph.CreateNode(ctx, sthc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	sthc.mutation.id = &_node.ID
	sthc.mutation.done = true
	return _node, nil
}

func (sthc *SimTaskHistoryCreate) createSpec() (*SimTaskHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &SimTaskHistory{config: sthc.config}
		_spec = sqlgraph.NewCreateSpec(simtaskhistory.Table, sqlgraph.NewFieldSpec(simtaskhistory.FieldID, field.TypeInt))
	)
	_spec.OnConflict = sthc.conflict
	if value, ok := sthc.mutation.UserID(); ok {
		_spec.SetField(simtaskhistory.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := sthc.mutation.TaskID(); ok {
		_spec.SetField(simtaskhistory.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := sthc.mutation.Section(); ok {
		_spec.SetField(simtaskhistory.FieldSection, field.TypeString, value)
		_node.Section = value
	}
	if value, ok := sthc.mutation.Topic(); ok {
		_spec.SetField(simtaskhistory.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := sthc.mutation.Attempts(); ok {
		_spec.SetField(simtaskhistory.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := sthc.mutation.BestScore(); ok {
		_spec.SetField(simtaskhistory.FieldBestScore, field.TypeFloat64, value)
		_node.BestScore = value
	}
	if value, ok := sthc.mutation.LastScore(); ok {
		_spec.SetField(simtaskhistory.FieldLastScore, field.TypeFloat64, value)
		_node.LastScore = value
	}
	if value, ok := sthc.mutation.AvgScore(); ok {
		_spec.SetField(simtaskhistory.FieldAvgScore, field.TypeFloat64, value)
		_node.AvgScore = value
	}
	if value, ok := sthc.mutation.LastAttemptedAt(); ok {
		_spec.SetField(simtaskhistory.FieldLastAttemptedAt, field.TypeTime, value)
		_node.LastAttemptedAt = value
	}
	if value, ok := sthc.mutation.TotalTimeSpent(); ok {
		_spec.SetField(simtaskhistory.FieldTotalTimeSpent, field.TypeInt, value)
		_node.TotalTimeSpent = value
	}
	if value, ok := sthc.mutation.Mastered(); ok {
		_spec.SetField(simtaskhistory.FieldMastered, field.TypeBool, value)
		_node.Mastered = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SimTaskHistory.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SimTaskHistoryUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (sthc *SimTaskHistoryCreate) OnConflict(opts ...sql.ConflictOption) *SimTaskHistoryUpsertOne {
	sthc.conflict = opts
	return &SimTaskHistoryUpsertOne{
		create: sthc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SimTaskHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (sthc *SimTaskHistoryCreate) OnConflictColumns(columns ...string) *SimTaskHistoryUpsertOne {
	sthc.conflict = append(sthc.conflict, sql.ConflictColumns(columns...))
	return &SimTaskHistoryUpsertOne{
		create: sthc,
	}
}

type (
	// SimTaskHistoryUpsertOne is the builder for "upsert"-ing
	//  one SimTaskHistory node.
	SimTaskHistoryUpsertOne struct {
		create *SimTaskHistoryCreate
	}

	// SimTaskHistoryUpsert is the "OnConflict" setter.
	SimTaskHistoryUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *SimTaskHistoryUpsert) SetUserID(v string) *SimTaskHistoryUpsert {
	u.Set(simtaskhistory.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SimTaskHistoryUpsert) UpdateUserID() *SimTaskHistoryUpsert {
	u.SetExcluded(simtaskhistory.FieldUserID)
	return u
}

// SetTaskID sets the "task_id" field.
func (u *SimTaskHistoryUpsert) SetTaskID(v string) *SimTaskHistoryUpsert {
	u.Set(simtaskhistory.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *SimTaskHistoryUpsert) UpdateTaskID() *SimTaskHistoryUpsert {
	u.SetExcluded(simtaskhistory.FieldTaskID)
	return u
}

// SetSection sets the "section" field.
func (u *SimTaskHistoryUpsert) SetSection(v string) *SimTaskHistoryUpsert {
	u.Set(simtaskhistory.FieldSection, v)
	return u
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *SimTaskHistoryUpsert) UpdateSection() *SimTaskHistoryUpsert {
	u.SetExcluded(simtaskhistory.FieldSection)
	return u
}

// SetTopic sets the "topic" field.
func (u *SimTaskHistoryUpsert) SetTopic(v string) *SimTaskHistoryUpsert {
	u.Set(simtaskhistory.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *SimTaskHistoryUpsert) UpdateTopic() *SimTaskHistoryUpsert {
	u.SetExcluded(simtaskhistory.FieldTopic)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *SimTaskHistoryUpsert) SetAttempts(v int) *SimTaskHistoryUpsert {
	u.Set(simtaskhistory.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *SimTaskHistoryUpsert) UpdateAttempts() *SimTaskHistoryUpsert {
	u.SetExcluded(simtaskhistory.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *SimTaskHistoryUpsert) AddAttempts(v int) *SimTaskHistoryUpsert {
	u.Add(simtaskhistory.FieldAttempts, v)
	return u
}

// SetBestScore sets the "best_score" field.
func (u *SimTaskHistoryUpsert) SetBestScore(v float64) *SimTaskHistoryUpsert {
	u.Set(simtaskhistory.FieldBestScore, v)
	return u
}

// UpdateBestScore sets the "best_score" field to the value that was provided on create.
func (u *SimTaskHistoryUpsert) UpdateBestScore() *SimTaskHistoryUpsert {
	u.SetExcluded(simtaskhistory.FieldBestScore)
	return u
}

// AddBestScore adds v to the "best_score" field.
func (u *SimTaskHistoryUpsert) AddBestScore(v float64) *SimTaskHistoryUpsert {
	u.Add(simtaskhistory.FieldBestScore, v)
	return u
}

// SetLastScore sets the "last_score" field.
func (u *SimTaskHistoryUpsert) SetLastScore(v float64) *SimTaskHistoryUpsert {
	u.Set(simtaskhistory.FieldLastScore, v)
	return u
}

// UpdateLastScore sets the "last_score" field to the value that was provided on create.
func (u *SimTaskHistoryUpsert) UpdateLastScore() *SimTaskHistoryUpsert {
	u.SetExcluded(simtaskhistory.FieldLastScore)
	return u
}

// AddLastScore adds v to the "last_score" field.
func (u *SimTaskHistoryUpsert) AddLastScore(v float64) *SimTaskHistoryUpsert {
	u.Add(simtaskhistory.FieldLastScore, v)
	return u
}

// SetAvgScore sets the "avg_score" field.
func (u *SimTaskHistoryUpsert) SetAvgScore(v float64) *SimTaskHistoryUpsert {
	u.Set(simtaskhistory.FieldAvgScore, v)
	return u
}

// UpdateAvgScore sets the "avg_score" field to the value that was provided on create.
func (u *SimTaskHistoryUpsert) UpdateAvgScore() *SimTaskHistoryUpsert {
	u.SetExcluded(simtaskhistory.FieldAvgScore)
	return u
}

// AddAvgScore adds v to the "avg_score" field.
func (u *SimTaskHistoryUpsert) AddAvgScore(v float64) *SimTaskHistoryUpsert {
	u.Add(simtaskhistory.FieldAvgScore, v)
	return u
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (u *SimTaskHistoryUpsert) SetLastAttemptedAt(v time.Time) *SimTaskHistoryUpsert {
	u.Set(simtaskhistory.FieldLastAttemptedAt, v)
	return u
}

// UpdateLastAttemptedAt sets the "last_attempted_at" field to the value that was provided on create.
func (u *SimTaskHistoryUpsert) UpdateLastAttemptedAt() *SimTaskHistoryUpsert {
	u.SetExcluded(simtaskhistory.FieldLastAttemptedAt)
	return u
}

// SetTotalTimeSpent sets the "total_time_spent" field.
func (u *SimTaskHistoryUpsert) SetTotalTimeSpent(v int) *SimTaskHistoryUpsert {
	u.Set(simtaskhistory.FieldTotalTimeSpent, v)
	return u
}

// UpdateTotalTimeSpent sets the "total_time_spent" field to the value that was provided on create.
func (u *SimTaskHistoryUpsert) UpdateTotalTimeSpent() *SimTaskHistoryUpsert {
	u.SetExcluded(simtaskhistory.FieldTotalTimeSpent)
	return u
}

// AddTotalTimeSpent adds v to the "total_time_spent" field.
func (u *SimTaskHistoryUpsert) AddTotalTimeSpent(v int) *SimTaskHistoryUpsert {
	u.Add(simtaskhistory.FieldTotalTimeSpent, v)
	return u
}

// SetMastered sets the "mastered" field.
func (u *SimTaskHistoryUpsert) SetMastered(v bool) *SimTaskHistoryUpsert {
	u.Set(simtaskhistory.FieldMastered, v)
	return u
}

// UpdateMastered sets the "mastered" field to the value that was provided on create.
func (u *SimTaskHistoryUpsert) UpdateMastered() *SimTaskHistoryUpsert {
	u.SetExcluded(simtaskhistory.FieldMastered)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SimTaskHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SimTaskHistoryUpsertOne) UpdateNewValues() *SimTaskHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SimTaskHistory.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SimTaskHistoryUpsertOne) Ignore() *SimTaskHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SimTaskHistoryUpsertOne) DoNothing() *SimTaskHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SimTaskHistoryCreate.OnConflict
// documentation for more info.
func (u *SimTaskHistoryUpsertOne) Update(set func(*SimTaskHistoryUpsert)) *SimTaskHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SimTaskHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *SimTaskHistoryUpsertOne) SetUserID(v string) *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertOne) UpdateUserID() *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateUserID()
	})
}

// SetTaskID sets the "task_id" field.
func (u *SimTaskHistoryUpsertOne) SetTaskID(v string) *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertOne) UpdateTaskID() *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateTaskID()
	})
}

// SetSection sets the "section" field.
func (u *SimTaskHistoryUpsertOne) SetSection(v string) *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertOne) UpdateSection() *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateSection()
	})
}

// SetTopic sets the "topic" field.
func (u *SimTaskHistoryUpsertOne) SetTopic(v string) *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertOne) UpdateTopic() *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateTopic()
	})
}

// SetAttempts sets the "attempts" field.
func (u *SimTaskHistoryUpsertOne) SetAttempts(v int) *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *SimTaskHistoryUpsertOne) AddAttempts(v int) *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertOne) UpdateAttempts() *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateAttempts()
	})
}

// SetBestScore sets the "best_score" field.
func (u *SimTaskHistoryUpsertOne) SetBestScore(v float64) *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetBestScore(v)
	})
}

// AddBestScore adds v to the "best_score" field.
func (u *SimTaskHistoryUpsertOne) AddBestScore(v float64) *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.AddBestScore(v)
	})
}

// UpdateBestScore sets the "best_score" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertOne) UpdateBestScore() *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateBestScore()
	})
}

// SetLastScore sets the "last_score" field.
func (u *SimTaskHistoryUpsertOne) SetLastScore(v float64) *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetLastScore(v)
	})
}

// AddLastScore adds v to the "last_score" field.
func (u *SimTaskHistoryUpsertOne) AddLastScore(v float64) *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.AddLastScore(v)
	})
}

// UpdateLastScore sets the "last_score" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertOne) UpdateLastScore() *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateLastScore()
	})
}

// SetAvgScore sets the "avg_score" field.
func (u *SimTaskHistoryUpsertOne) SetAvgScore(v float64) *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetAvgScore(v)
	})
}

// AddAvgScore adds v to the "avg_score" field.
func (u *SimTaskHistoryUpsertOne) AddAvgScore(v float64) *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.AddAvgScore(v)
	})
}

// UpdateAvgScore sets the "avg_score" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertOne) UpdateAvgScore() *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateAvgScore()
	})
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (u *SimTaskHistoryUpsertOne) SetLastAttemptedAt(v time.Time) *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetLastAttemptedAt(v)
	})
}

// UpdateLastAttemptedAt sets the "last_attempted_at" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertOne) UpdateLastAttemptedAt() *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateLastAttemptedAt()
	})
}

// SetTotalTimeSpent sets the "total_time_spent" field.
func (u *SimTaskHistoryUpsertOne) SetTotalTimeSpent(v int) *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetTotalTimeSpent(v)
	})
}

// AddTotalTimeSpent adds v to the "total_time_spent" field.
func (u *SimTaskHistoryUpsertOne) AddTotalTimeSpent(v int) *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.AddTotalTimeSpent(v)
	})
}

// UpdateTotalTimeSpent sets the "total_time_spent" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertOne) UpdateTotalTimeSpent() *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateTotalTimeSpent()
	})
}

// SetMastered sets the "mastered" field.
func (u *SimTaskHistoryUpsertOne) SetMastered(v bool) *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetMastered(v)
	})
}

// UpdateMastered sets the "mastered" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertOne) UpdateMastered() *SimTaskHistoryUpsertOne {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateMastered()
	})
}

// Exec executes the query.
func (u *SimTaskHistoryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SimTaskHistoryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SimTaskHistoryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SimTaskHistoryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SimTaskHistoryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SimTaskHistoryCreateBulk is the builder for creating many SimTaskHistory entities in bulk.
type SimTaskHistoryCreateBulk struct {
	config
	err      error
	builders []*SimTaskHistoryCreate
	conflict []sql.ConflictOption
}

// Save creates the SimTaskHistory entities in the database.
func (sthcb *SimTaskHistoryCreateBulk) Save(ctx context.Context) ([]*SimTaskHistory, error) {
	if sthcb.err != nil {
		return nil, sthcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(sthcb.builders))
	nodes := make([]*SimTaskHistory, len(sthcb.builders))
	mutators := make([]Mutator, len(sthcb.builders))
	for i := range sthcb.builders {
		func(i int, root context.Context) {
			builder := sthcb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SimTaskHistoryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, sthcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = sthcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, sthcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, sthcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (sthcb *SimTaskHistoryCreateBulk) SaveX(ctx context.Context) []*SimTaskHistory {
	v, err := sthcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sthcb *SimTaskHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := sthcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sthcb *SimTaskHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := sthcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SimTaskHistory.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SimTaskHistoryUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (sthcb *SimTaskHistoryCreateBulk) OnConflict(opts ...sql.ConflictOption) *SimTaskHistoryUpsertBulk {
	sthcb.conflict = opts
	return &SimTaskHistoryUpsertBulk{
		create: sthcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SimTaskHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (sthcb *SimTaskHistoryCreateBulk) OnConflictColumns(columns ...string) *SimTaskHistoryUpsertBulk {
	sthcb.conflict = append(sthcb.conflict, sql.ConflictColumns(columns...))
	return &SimTaskHistoryUpsertBulk{
		create: sthcb,
	}
}

// SimTaskHistoryUpsertBulk is the builder for "upsert"-ing
// a bulk of SimTaskHistory nodes.
type SimTaskHistoryUpsertBulk struct {
	create *SimTaskHistoryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SimTaskHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SimTaskHistoryUpsertBulk) UpdateNewValues() *SimTaskHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SimTaskHistory.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SimTaskHistoryUpsertBulk) Ignore() *SimTaskHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SimTaskHistoryUpsertBulk) DoNothing() *SimTaskHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SimTaskHistoryCreateBulk.OnConflict
// documentation for more info.
func (u *SimTaskHistoryUpsertBulk) Update(set func(*SimTaskHistoryUpsert)) *SimTaskHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SimTaskHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *SimTaskHistoryUpsertBulk) SetUserID(v string) *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertBulk) UpdateUserID() *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateUserID()
	})
}

// SetTaskID sets the "task_id" field.
func (u *SimTaskHistoryUpsertBulk) SetTaskID(v string) *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertBulk) UpdateTaskID() *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateTaskID()
	})
}

// SetSection sets the "section" field.
func (u *SimTaskHistoryUpsertBulk) SetSection(v string) *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertBulk) UpdateSection() *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateSection()
	})
}

// SetTopic sets the "topic" field.
func (u *SimTaskHistoryUpsertBulk) SetTopic(v string) *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertBulk) UpdateTopic() *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateTopic()
	})
}

// SetAttempts sets the "attempts" field.
func (u *SimTaskHistoryUpsertBulk) SetAttempts(v int) *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *SimTaskHistoryUpsertBulk) AddAttempts(v int) *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertBulk) UpdateAttempts() *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateAttempts()
	})
}

// SetBestScore sets the "best_score" field.
func (u *SimTaskHistoryUpsertBulk) SetBestScore(v float64) *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetBestScore(v)
	})
}

// AddBestScore adds v to the "best_score" field.
func (u *SimTaskHistoryUpsertBulk) AddBestScore(v float64) *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.AddBestScore(v)
	})
}

// UpdateBestScore sets the "best_score" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertBulk) UpdateBestScore() *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateBestScore()
	})
}

// SetLastScore sets the "last_score" field.
func (u *SimTaskHistoryUpsertBulk) SetLastScore(v float64) *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetLastScore(v)
	})
}

// AddLastScore adds v to the "last_score" field.
func (u *SimTaskHistoryUpsertBulk) AddLastScore(v float64) *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.AddLastScore(v)
	})
}

// UpdateLastScore sets the "last_score" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertBulk) UpdateLastScore() *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateLastScore()
	})
}

// SetAvgScore sets the "avg_score" field.
func (u *SimTaskHistoryUpsertBulk) SetAvgScore(v float64) *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetAvgScore(v)
	})
}

// AddAvgScore adds v to the "avg_score" field.
func (u *SimTaskHistoryUpsertBulk) AddAvgScore(v float64) *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.AddAvgScore(v)
	})
}

// UpdateAvgScore sets the "avg_score" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertBulk) UpdateAvgScore() *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateAvgScore()
	})
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (u *SimTaskHistoryUpsertBulk) SetLastAttemptedAt(v time.Time) *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetLastAttemptedAt(v)
	})
}

// UpdateLastAttemptedAt sets the "last_attempted_at" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertBulk) UpdateLastAttemptedAt() *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateLastAttemptedAt()
	})
}

// SetTotalTimeSpent sets the "total_time_spent" field.
func (u *SimTaskHistoryUpsertBulk) SetTotalTimeSpent(v int) *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetTotalTimeSpent(v)
	})
}

// AddTotalTimeSpent adds v to the "total_time_spent" field.
func (u *SimTaskHistoryUpsertBulk) AddTotalTimeSpent(v int) *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.AddTotalTimeSpent(v)
	})
}

// UpdateTotalTimeSpent sets the "total_time_spent" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertBulk) UpdateTotalTimeSpent() *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateTotalTimeSpent()
	})
}

// SetMastered sets the "mastered" field.
func (u *SimTaskHistoryUpsertBulk) SetMastered(v bool) *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.SetMastered(v)
	})
}

// UpdateMastered sets the "mastered" field to the value that was provided on create.
func (u *SimTaskHistoryUpsertBulk) UpdateMastered() *SimTaskHistoryUpsertBulk {
	return u.Update(func(s *SimTaskHistoryUpsert) {
		s.UpdateMastered()
	})
}

// Exec executes the query.
func (u *SimTaskHistoryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SimTaskHistoryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SimTaskHistoryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SimTaskHistoryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
