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
	"github.com/studymesh/cpaprep/ent/answeredindex"
)

// AnsweredIndexCreate is the builder for creating a AnsweredIndex entity.
type AnsweredIndexCreate struct {
	config
	mutation *AnsweredIndexMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (aic *AnsweredIndexCreate) SetUserID(s string) *AnsweredIndexCreate {
	aic.mutation.SetUserID(s)
	return aic
}

// SetSection sets the "section" field.
func (aic *AnsweredIndexCreate) SetSection(s string) *AnsweredIndexCreate {
	aic.mutation.SetSection(s)
	return aic
}

// SetItemIds sets the "item_ids" field.
func (aic *AnsweredIndexCreate) SetItemIds(s []string) *AnsweredIndexCreate {
	aic.mutation.SetItemIds(s)
	return aic
}

// SetUpdatedAt sets the "updated_at" field.
func (aic *AnsweredIndexCreate) SetUpdatedAt(t time.Time) *AnsweredIndexCreate {
	aic.mutation.SetUpdatedAt(t)
	return aic
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (aic *AnsweredIndexCreate) SetNillableUpdatedAt(t *time.Time) *AnsweredIndexCreate {
	if t != nil {
		aic.SetUpdatedAt(*t)
	}
	return aic
}

// Mutation returns the AnsweredIndexMutation object of the builder.
func (aic *AnsweredIndexCreate) Mutation() *AnsweredIndexMutation {
	return aic.mutation
}

// Save creates the AnsweredIndex in the database.
func (aic *AnsweredIndexCreate) Save(ctx context.Context) (*AnsweredIndex, error) {
	aic.defaults()
	return withHooks(ctx, aic.sqlSave, aic.mutation, aic.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (aic *AnsweredIndexCreate) SaveX(ctx context.Context) *AnsweredIndex {
	v, err := aic.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aic *AnsweredIndexCreate) Exec(ctx context.Context) error {
	_, err := aic.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aic *AnsweredIndexCreate) ExecX(ctx context.Context) {
	if err := aic.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aic *AnsweredIndexCreate) defaults() {
	if _, ok := aic.mutation.UpdatedAt(); !ok {
		v := answeredindex.DefaultUpdatedAt()
		aic.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aic *AnsweredIndexCreate) check() error {
	if _, ok := aic.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AnsweredIndex.user_id"`)}
	}
	if v, ok := aic.mutation.UserID(); ok {
		if err := answeredindex.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnsweredIndex.user_id": %w`, err)}
		}
	}
	if _, ok := aic.mutation.Section(); !ok {
		return &ValidationError{Name: "section", err: errors.New(`ent: missing required field "AnsweredIndex.section"`)}
	}
	if v, ok := aic.mutation.Section(); ok {
		if err := answeredindex.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "AnsweredIndex.section": %w`, err)}
		}
	}
	if _, ok := aic.mutation.ItemIds(); !ok {
		return &ValidationError{Name: "item_ids", err: errors.New(`ent: missing required field "AnsweredIndex.item_ids"`)}
	}
	if _, ok := aic.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AnsweredIndex.updated_at"`)}
	}
	return nil
}

func (aic *AnsweredIndexCreate) sqlSave(ctx context.Context) (*AnsweredIndex, error) {
	if err := aic.check(); err != nil {
		return nil, err
	}
	_node, _spec := aic.createSpec()
	if err := sqlgraph.CreateNode(ctx, aic.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	aic.mutation.id = &_node.ID
	aic.mutation.done = true
	return _node, nil
}

func (aic *AnsweredIndexCreate) createSpec() (*AnsweredIndex, *sqlgraph.CreateSpec) {
	var (
		_node = &AnsweredIndex{config: aic.config}
		_spec = sqlgraph.NewCreateSpec(answeredindex.Table, sqlgraph.NewFieldSpec(answeredindex.FieldID, field.TypeInt))
	)
	_spec.OnConflict = aic.conflict
	if value, ok := aic.mutation.UserID(); ok {
		_spec.SetField(answeredindex.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := aic.mutation.Section(); ok {
		_spec.SetField(answeredindex.FieldSection, field.TypeString, value)
		_node.Section = value
	}
	if value, ok := aic.mutation.ItemIds(); ok {
		_spec.SetField(answeredindex.FieldItemIds, field.TypeJSON, value)
		_node.ItemIds = value
	}
	if value, ok := aic.mutation.UpdatedAt(); ok {
		_spec.SetField(answeredindex.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnsweredIndex.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnsweredIndexUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (aic *AnsweredIndexCreate) OnConflict(opts ...sql.ConflictOption) *AnsweredIndexUpsertOne {
	aic.conflict = opts
	return &AnsweredIndexUpsertOne{
		create: aic,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnsweredIndex.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (aic *AnsweredIndexCreate) OnConflictColumns(columns ...string) *AnsweredIndexUpsertOne {
	aic.conflict = append(aic.conflict, sql.ConflictColumns(columns...))
	return &AnsweredIndexUpsertOne{
		create: aic,
	}
}

type (
	// AnsweredIndexUpsertOne is the builder for "upsert"-ing
	//  one AnsweredIndex node.
	AnsweredIndexUpsertOne struct {
		create *AnsweredIndexCreate
	}

	// AnsweredIndexUpsert is the "OnConflict" setter.
	AnsweredIndexUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *AnsweredIndexUpsert) SetUserID(v string) *AnsweredIndexUpsert {
	u.Set(answeredindex.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AnsweredIndexUpsert) UpdateUserID() *AnsweredIndexUpsert {
	u.SetExcluded(answeredindex.FieldUserID)
	return u
}

// SetSection sets the "section" field.
func (u *AnsweredIndexUpsert) SetSection(v string) *AnsweredIndexUpsert {
	u.Set(answeredindex.FieldSection, v)
	return u
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *AnsweredIndexUpsert) UpdateSection() *AnsweredIndexUpsert {
	u.SetExcluded(answeredindex.FieldSection)
	return u
}

// SetItemIds sets the "item_ids" field.
func (u *AnsweredIndexUpsert) SetItemIds(v []string) *AnsweredIndexUpsert {
	u.Set(answeredindex.FieldItemIds, v)
	return u
}

// UpdateItemIds sets the "item_ids" field to the value that was provided on create.
func (u *AnsweredIndexUpsert) UpdateItemIds() *AnsweredIndexUpsert {
	u.SetExcluded(answeredindex.FieldItemIds)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AnsweredIndexUpsert) SetUpdatedAt(v time.Time) *AnsweredIndexUpsert {
	u.Set(answeredindex.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AnsweredIndexUpsert) UpdateUpdatedAt() *AnsweredIndexUpsert {
	u.SetExcluded(answeredindex.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AnsweredIndex.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AnsweredIndexUpsertOne) UpdateNewValues() *AnsweredIndexUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnsweredIndex.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AnsweredIndexUpsertOne) Ignore() *AnsweredIndexUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnsweredIndexUpsertOne) DoNothing() *AnsweredIndexUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnsweredIndexCreate.OnConflict
// documentation for more info.
func (u *AnsweredIndexUpsertOne) Update(set func(*AnsweredIndexUpsert)) *AnsweredIndexUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnsweredIndexUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AnsweredIndexUpsertOne) SetUserID(v string) *AnsweredIndexUpsertOne {
	return u.Update(func(s *AnsweredIndexUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AnsweredIndexUpsertOne) UpdateUserID() *AnsweredIndexUpsertOne {
	return u.Update(func(s *AnsweredIndexUpsert) {
		s.UpdateUserID()
	})
}

// SetSection sets the "section" field.
func (u *AnsweredIndexUpsertOne) SetSection(v string) *AnsweredIndexUpsertOne {
	return u.Update(func(s *AnsweredIndexUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *AnsweredIndexUpsertOne) UpdateSection() *AnsweredIndexUpsertOne {
	return u.Update(func(s *AnsweredIndexUpsert) {
		s.UpdateSection()
	})
}

// SetItemIds sets the "item_ids" field.
func (u *AnsweredIndexUpsertOne) SetItemIds(v []string) *AnsweredIndexUpsertOne {
	return u.Update(func(s *AnsweredIndexUpsert) {
		s.SetItemIds(v)
	})
}

// UpdateItemIds sets the "item_ids" field to the value that was provided on create.
func (u *AnsweredIndexUpsertOne) UpdateItemIds() *AnsweredIndexUpsertOne {
	return u.Update(func(s *AnsweredIndexUpsert) {
		s.UpdateItemIds()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AnsweredIndexUpsertOne) SetUpdatedAt(v time.Time) *AnsweredIndexUpsertOne {
	return u.Update(func(s *AnsweredIndexUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AnsweredIndexUpsertOne) UpdateUpdatedAt() *AnsweredIndexUpsertOne {
	return u.Update(func(s *AnsweredIndexUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AnsweredIndexUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnsweredIndexCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnsweredIndexUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AnsweredIndexUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AnsweredIndexUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AnsweredIndexCreateBulk is the builder for creating many AnsweredIndex entities in bulk.
type AnsweredIndexCreateBulk struct {
	config
	err      error
	builders []*AnsweredIndexCreate
	conflict []sql.ConflictOption
}

// Save creates the AnsweredIndex entities in the database.
func (aicb *AnsweredIndexCreateBulk) Save(ctx context.Context) ([]*AnsweredIndex, error) {
	if aicb.err != nil {
		return nil, aicb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(aicb.builders))
	nodes := make([]*AnsweredIndex, len(aicb.builders))
	mutators := make([]Mutator, len(aicb.builders))
	for i := range aicb.builders {
		func(i int, root context.Context) {
			builder := aicb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnsweredIndexMutation)
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
					_, err = mutators[i+1].Mutate(root, aicb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = aicb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, aicb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, aicb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (aicb *AnsweredIndexCreateBulk) SaveX(ctx context.Context) []*AnsweredIndex {
	v, err := aicb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aicb *AnsweredIndexCreateBulk) Exec(ctx context.Context) error {
	_, err := aicb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aicb *AnsweredIndexCreateBulk) ExecX(ctx context.Context) {
	if err := aicb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnsweredIndex.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnsweredIndexUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (aicb *AnsweredIndexCreateBulk) OnConflict(opts ...sql.ConflictOption) *AnsweredIndexUpsertBulk {
	aicb.conflict = opts
	return &AnsweredIndexUpsertBulk{
		create: aicb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnsweredIndex.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (aicb *AnsweredIndexCreateBulk) OnConflictColumns(columns ...string) *AnsweredIndexUpsertBulk {
	aicb.conflict = append(aicb.conflict, sql.ConflictColumns(columns...))
	return &AnsweredIndexUpsertBulk{
		create: aicb,
	}
}

// AnsweredIndexUpsertBulk is the builder for "upsert"-ing
// a bulk of AnsweredIndex nodes.
type AnsweredIndexUpsertBulk struct {
	create *AnsweredIndexCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AnsweredIndex.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AnsweredIndexUpsertBulk) UpdateNewValues() *AnsweredIndexUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnsweredIndex.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AnsweredIndexUpsertBulk) Ignore() *AnsweredIndexUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnsweredIndexUpsertBulk) DoNothing() *AnsweredIndexUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnsweredIndexCreateBulk.OnConflict
// documentation for more info.
func (u *AnsweredIndexUpsertBulk) Update(set func(*AnsweredIndexUpsert)) *AnsweredIndexUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnsweredIndexUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AnsweredIndexUpsertBulk) SetUserID(v string) *AnsweredIndexUpsertBulk {
	return u.Update(func(s *AnsweredIndexUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AnsweredIndexUpsertBulk) UpdateUserID() *AnsweredIndexUpsertBulk {
	return u.Update(func(s *AnsweredIndexUpsert) {
		s.UpdateUserID()
	})
}

// SetSection sets the "section" field.
func (u *AnsweredIndexUpsertBulk) SetSection(v string) *AnsweredIndexUpsertBulk {
	return u.Update(func(s *AnsweredIndexUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *AnsweredIndexUpsertBulk) UpdateSection() *AnsweredIndexUpsertBulk {
	return u.Update(func(s *AnsweredIndexUpsert) {
		s.UpdateSection()
	})
}

// SetItemIds sets the "item_ids" field.
func (u *AnsweredIndexUpsertBulk) SetItemIds(v []string) *AnsweredIndexUpsertBulk {
	return u.Update(func(s *AnsweredIndexUpsert) {
		s.SetItemIds(v)
	})
}

// UpdateItemIds sets the "item_ids" field to the value that was provided on create.
func (u *AnsweredIndexUpsertBulk) UpdateItemIds() *AnsweredIndexUpsertBulk {
	return u.Update(func(s *AnsweredIndexUpsert) {
		s.UpdateItemIds()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AnsweredIndexUpsertBulk) SetUpdatedAt(v time.Time) *AnsweredIndexUpsertBulk {
	return u.Update(func(s *AnsweredIndexUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AnsweredIndexUpsertBulk) UpdateUpdatedAt() *AnsweredIndexUpsertBulk {
	return u.Update(func(s *AnsweredIndexUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AnsweredIndexUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AnsweredIndexCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnsweredIndexCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnsweredIndexUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
