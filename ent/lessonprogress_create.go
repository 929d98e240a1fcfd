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
)

// LessonProgressCreate is the builder for creating a LessonProgress entity.
type LessonProgressCreate struct {
	config
	mutation *LessonProgressMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (lpc *LessonProgressCreate) SetUserID(s string) *LessonProgressCreate {
	lpc.mutation.SetUserID(s)
	return lpc
}

// SetLessonID sets the "lesson_id" field.
func (lpc *LessonProgressCreate) SetLessonID(s string) *LessonProgressCreate {
	lpc.mutation.SetLessonID(s)
	return lpc
}

// SetSection sets the "section" field.
func (lpc *LessonProgressCreate) SetSection(s string) *LessonProgressCreate {
	lpc.mutation.SetSection(s)
	return lpc
}

// SetPercent sets the "percent" field.
func (lpc *LessonProgressCreate) SetPercent(f float64) *LessonProgressCreate {
	lpc.mutation.SetPercent(f)
	return lpc
}

// SetUpdatedAt sets the "updated_at" field.
func (lpc *LessonProgressCreate) SetUpdatedAt(t time.Time) *LessonProgressCreate {
	lpc.mutation.SetUpdatedAt(t)
	return lpc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (lpc *LessonProgressCreate) SetNillableUpdatedAt(t *time.Time) *LessonProgressCreate {
	if t != nil {
		lpc.SetUpdatedAt(*t)
	}
	return lpc
}

// Mutation returns the LessonProgressMutation object of the builder.
func (lpc *LessonProgressCreate) Mutation() *LessonProgressMutation {
	return lpc.mutation
}

// Save creates the LessonProgress in the database.
func (lpc *LessonProgressCreate) Save(ctx context.Context) (*LessonProgress, error) {
	lpc.defaults()
	return withHooks(ctx, lpc.sqlSave, lpc.mutation, lpc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (lpc *LessonProgressCreate) SaveX(ctx context.Context) *LessonProgress {
	v, err := lpc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lpc *LessonProgressCreate) Exec(ctx context.Context) error {
	_, err := lpc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lpc *LessonProgressCreate) ExecX(ctx context.Context) {
	if err := lpc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lpc *LessonProgressCreate) defaults() {
	if _, ok := lpc.mutation.UpdatedAt(); !ok {
		v := lessonprogress.DefaultUpdatedAt()
		lpc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lpc *LessonProgressCreate) check() error {
	if _, ok := lpc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LessonProgress.user_id"`)}
	}
	if v, ok := lpc.mutation.UserID(); ok {
		if err := lessonprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.user_id": %w`, err)}
		}
	}
	if _, ok := lpc.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "LessonProgress.lesson_id"`)}
	}
	if v, ok := lpc.mutation.LessonID(); ok {
		if err := lessonprogress.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.lesson_id": %w`, err)}
		}
	}
	if _, ok := lpc.mutation.Section(); !ok {
		return &ValidationError{Name: "section", err: errors.New(`ent: missing required field "LessonProgress.section"`)}
	}
	if v, ok := lpc.mutation.Section(); ok {
		if err := lessonprogress.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.section": %w`, err)}
		}
	}
	if _, ok := lpc.mutation.Percent(); !ok {
		return &ValidationError{Name: "percent", err: errors.New(`ent: missing required field "LessonProgress.percent"`)}
	}
	if _, ok := lpc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LessonProgress.updated_at"`)}
	}
	return nil
}

func (lpc *LessonProgressCreate) sqlSave(ctx context.Context) (*LessonProgress, error) {
	if err := lpc.check(); err != nil {
		return nil, err
	}
	_node, _spec := lpc.createSpec()
	if err := sqlgraph.CreateNode(ctx, lpc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	lpc.mutation.id = &_node.ID
	lpc.mutation.done = true
	return _node, nil
}

func (lpc *LessonProgressCreate) createSpec() (*LessonProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonProgress{config: lpc.config}
		_spec = sqlgraph.NewCreateSpec(lessonprogress.Table, sqlgraph.NewFieldSpec(lessonprogress.FieldID, field.TypeInt))
	)
	_spec.OnConflict = lpc.conflict
	if value, ok := lpc.mutation.UserID(); ok {
		_spec.SetField(lessonprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := lpc.mutation.LessonID(); ok {
		_spec.SetField(lessonprogress.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := lpc.mutation.Section(); ok {
		_spec.SetField(lessonprogress.FieldSection, field.TypeString, value)
		_node.Section = value
	}
	if value, ok := lpc.mutation.Percent(); ok {
		_spec.SetField(lessonprogress.FieldPercent, field.TypeFloat64, value)
		_node.Percent = value
	}
	if value, ok := lpc.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LessonProgress.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (lpc *LessonProgressCreate) OnConflict(opts ...sql.ConflictOption) *LessonProgressUpsertOne {
	lpc.conflict = opts
	return &LessonProgressUpsertOne{
		create: lpc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LessonProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (lpc *LessonProgressCreate) OnConflictColumns(columns ...string) *LessonProgressUpsertOne {
	lpc.conflict = append(lpc.conflict, sql.ConflictColumns(columns...))
	return &LessonProgressUpsertOne{
		create: lpc,
	}
}

type (
	// LessonProgressUpsertOne is the builder for "upsert"-ing
	//  one LessonProgress node.
	LessonProgressUpsertOne struct {
		create *LessonProgressCreate
	}

	// LessonProgressUpsert is the "OnConflict" setter.
	LessonProgressUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *LessonProgressUpsert) SetUserID(v string) *LessonProgressUpsert {
	u.Set(lessonprogress.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *LessonProgressUpsert) UpdateUserID() *LessonProgressUpsert {
	u.SetExcluded(lessonprogress.FieldUserID)
	return u
}

// SetLessonID sets the "lesson_id" field.
func (u *LessonProgressUpsert) SetLessonID(v string) *LessonProgressUpsert {
	u.Set(lessonprogress.FieldLessonID, v)
	return u
}

// UpdateLessonID sets the "lesson_id" field to the value that was provided on create.
func (u *LessonProgressUpsert) UpdateLessonID() *LessonProgressUpsert {
	u.SetExcluded(lessonprogress.FieldLessonID)
	return u
}

// SetSection sets the "section" field.
func (u *LessonProgressUpsert) SetSection(v string) *LessonProgressUpsert {
	u.Set(lessonprogress.FieldSection, v)
	return u
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *LessonProgressUpsert) UpdateSection() *LessonProgressUpsert {
	u.SetExcluded(lessonprogress.FieldSection)
	return u
}

// SetPercent sets the "percent" field.
func (u *LessonProgressUpsert) SetPercent(v float64) *LessonProgressUpsert {
	u.Set(lessonprogress.FieldPercent, v)
	return u
}

// UpdatePercent sets the "percent" field to the value that was provided on create.
func (u *LessonProgressUpsert) UpdatePercent() *LessonProgressUpsert {
	u.SetExcluded(lessonprogress.FieldPercent)
	return u
}

// AddPercent adds v to the "percent" field.
func (u *LessonProgressUpsert) AddPercent(v float64) *LessonProgressUpsert {
	u.Add(lessonprogress.FieldPercent, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LessonProgressUpsert) SetUpdatedAt(v time.Time) *LessonProgressUpsert {
	u.Set(lessonprogress.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LessonProgressUpsert) UpdateUpdatedAt() *LessonProgressUpsert {
	u.SetExcluded(lessonprogress.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LessonProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LessonProgressUpsertOne) UpdateNewValues() *LessonProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LessonProgress.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LessonProgressUpsertOne) Ignore() *LessonProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonProgressUpsertOne) DoNothing() *LessonProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonProgressCreate.OnConflict
// documentation for more info.
func (u *LessonProgressUpsertOne) Update(set func(*LessonProgressUpsert)) *LessonProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *LessonProgressUpsertOne) SetUserID(v string) *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *LessonProgressUpsertOne) UpdateUserID() *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateUserID()
	})
}

// SetLessonID sets the "lesson_id" field.
func (u *LessonProgressUpsertOne) SetLessonID(v string) *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetLessonID(v)
	})
}

// UpdateLessonID sets the "lesson_id" field to the value that was provided on create.
func (u *LessonProgressUpsertOne) UpdateLessonID() *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateLessonID()
	})
}

// SetSection sets the "section" field.
func (u *LessonProgressUpsertOne) SetSection(v string) *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *LessonProgressUpsertOne) UpdateSection() *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateSection()
	})
}

// SetPercent sets the "percent" field.
func (u *LessonProgressUpsertOne) SetPercent(v float64) *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetPercent(v)
	})
}

// AddPercent adds v to the "percent" field.
func (u *LessonProgressUpsertOne) AddPercent(v float64) *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.AddPercent(v)
	})
}

// UpdatePercent sets the "percent" field to the value that was provided on create.
func (u *LessonProgressUpsertOne) UpdatePercent() *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdatePercent()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LessonProgressUpsertOne) SetUpdatedAt(v time.Time) *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LessonProgressUpsertOne) UpdateUpdatedAt() *LessonProgressUpsertOne {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LessonProgressUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonProgressCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonProgressUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LessonProgressUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LessonProgressUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LessonProgressCreateBulk is the builder for creating many LessonProgress entities in bulk.
type LessonProgressCreateBulk struct {
	config
	err      error
	builders []*LessonProgressCreate
	conflict []sql.ConflictOption
}

// Save creates the LessonProgress entities in the database.
func (lpcb *LessonProgressCreateBulk) Save(ctx context.Context) ([]*LessonProgress, error) {
	if lpcb.err != nil {
		return nil, lpcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(lpcb.builders))
	nodes := make([]*LessonProgress, len(lpcb.builders))
	mutators := make([]Mutator, len(lpcb.builders))
	for i := range lpcb.builders {
		func(i int, root context.Context) {
			builder := lpcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonProgressMutation)
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
					_, err = mutators[i+1].Mutate(root, lpcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = lpcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, lpcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, lpcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (lpcb *LessonProgressCreateBulk) SaveX(ctx context.Context) []*LessonProgress {
	v, err := lpcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lpcb *LessonProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := lpcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lpcb *LessonProgressCreateBulk) ExecX(ctx context.Context) {
	if err := lpcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LessonProgress.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (lpcb *LessonProgressCreateBulk) OnConflict(opts ...sql.ConflictOption) *LessonProgressUpsertBulk {
	lpcb.conflict = opts
	return &LessonProgressUpsertBulk{
		create: lpcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LessonProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (lpcb *LessonProgressCreateBulk) OnConflictColumns(columns ...string) *LessonProgressUpsertBulk {
	lpcb.conflict = append(lpcb.conflict, sql.ConflictColumns(columns...))
	return &LessonProgressUpsertBulk{
		create: lpcb,
	}
}

// LessonProgressUpsertBulk is the builder for "upsert"-ing
// a bulk of LessonProgress nodes.
type LessonProgressUpsertBulk struct {
	create *LessonProgressCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LessonProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LessonProgressUpsertBulk) UpdateNewValues() *LessonProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LessonProgress.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LessonProgressUpsertBulk) Ignore() *LessonProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonProgressUpsertBulk) DoNothing() *LessonProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonProgressCreateBulk.OnConflict
// documentation for more info.
func (u *LessonProgressUpsertBulk) Update(set func(*LessonProgressUpsert)) *LessonProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *LessonProgressUpsertBulk) SetUserID(v string) *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *LessonProgressUpsertBulk) UpdateUserID() *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateUserID()
	})
}

// SetLessonID sets the "lesson_id" field.
func (u *LessonProgressUpsertBulk) SetLessonID(v string) *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetLessonID(v)
	})
}

// UpdateLessonID sets the "lesson_id" field to the value that was provided on create.
func (u *LessonProgressUpsertBulk) UpdateLessonID() *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateLessonID()
	})
}

// SetSection sets the "section" field.
func (u *LessonProgressUpsertBulk) SetSection(v string) *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *LessonProgressUpsertBulk) UpdateSection() *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateSection()
	})
}

// SetPercent sets the "percent" field.
func (u *LessonProgressUpsertBulk) SetPercent(v float64) *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetPercent(v)
	})
}

// AddPercent adds v to the "percent" field.
func (u *LessonProgressUpsertBulk) AddPercent(v float64) *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.AddPercent(v)
	})
}

// UpdatePercent sets the "percent" field to the value that was provided on create.
func (u *LessonProgressUpsertBulk) UpdatePercent() *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdatePercent()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LessonProgressUpsertBulk) SetUpdatedAt(v time.Time) *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LessonProgressUpsertBulk) UpdateUpdatedAt() *LessonProgressUpsertBulk {
	return u.Update(func(s *LessonProgressUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LessonProgressUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LessonProgressCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonProgressCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonProgressUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
