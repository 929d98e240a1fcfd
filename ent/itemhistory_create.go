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
)

// ItemHistoryCreate is the builder for creating a ItemHistory entity.
type ItemHistoryCreate struct {
	config
	mutation *ItemHistoryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (ihc *ItemHistoryCreate) SetUserID(s string) *ItemHistoryCreate {
	ihc.mutation.SetUserID(s)
	return ihc
}

// SetItemID sets the "item_id" field.
func (ihc *ItemHistoryCreate) SetItemID(s string) *ItemHistoryCreate {
	ihc.mutation.SetItemID(s)
	return ihc
}

// SetSection sets the "section" field.
func (ihc *ItemHistoryCreate) SetSection(s string) *ItemHistoryCreate {
	ihc.mutation.SetSection(s)
	return ihc
}

// SetTopic sets the "topic" field.
func (ihc *ItemHistoryCreate) SetTopic(s string) *ItemHistoryCreate {
	ihc.mutation.SetTopic(s)
	return ihc
}

// SetTimesAnswered sets the "times_answered" field.
func (ihc *ItemHistoryCreate) SetTimesAnswered(i int) *ItemHistoryCreate {
	ihc.mutation.SetTimesAnswered(i)
	return ihc
}

// SetTimesCorrect sets the "times_correct" field.
func (ihc *ItemHistoryCreate) SetTimesCorrect(i int) *ItemHistoryCreate {
	ihc.mutation.SetTimesCorrect(i)
	return ihc
}

// SetLastAnsweredAt sets the "last_answered_at" field.
func (ihc *ItemHistoryCreate) SetLastAnsweredAt(t time.Time) *ItemHistoryCreate {
	ihc.mutation.SetLastAnsweredAt(t)
	return ihc
}

// SetLastCorrect sets the "last_correct" field.
func (ihc *ItemHistoryCreate) SetLastCorrect(b bool) *ItemHistoryCreate {
	ihc.mutation.SetLastCorrect(b)
	return ihc
}

// SetMasteryLevel sets the "mastery_level" field.
func (ihc *ItemHistoryCreate) SetMasteryLevel(s string) *ItemHistoryCreate {
	ihc.mutation.SetMasteryLevel(s)
	return ihc
}

// SetNextReviewAt sets the "next_review_at" field.
func (ihc *ItemHistoryCreate) SetNextReviewAt(t time.Time) *ItemHistoryCreate {
	ihc.mutation.SetNextReviewAt(t)
	return ihc
}

// Mutation returns the ItemHistoryMutation object of the builder.
func (ihc *ItemHistoryCreate) Mutation() *ItemHistoryMutation {
	return ihc.mutation
}

// Save creates the ItemHistory in the database.
func (ihc *ItemHistoryCreate) Save(ctx context.Context) (*ItemHistory, error) {
	return withHooks(ctx, ihc.sqlSave, ihc.mutation, ihc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ihc *ItemHistoryCreate) SaveX(ctx context.Context) *ItemHistory {
	v, err := ihc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ihc *ItemHistoryCreate) Exec(ctx context.Context) error {
	_, err := ihc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ihc *ItemHistoryCreate) ExecX(ctx context.Context) {
	if err := ihc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ihc *ItemHistoryCreate) check() error {
	if _, ok := ihc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ItemHistory.user_id"`)}
	}
	if v, ok := ihc.mutation.UserID(); ok {
		if err := itemhistory.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ItemHistory.user_id": %w`, err)}
		}
	}
	if _, ok := ihc.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ItemHistory.item_id"`)}
	}
	if v, ok := ihc.mutation.ItemID(); ok {
		if err := itemhistory.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ItemHistory.item_id": %w`, err)}
		}
	}
	if _, ok := ihc.mutation.Section(); !ok {
		return &ValidationError{Name: "section", err: errors.New(`ent: missing required field "ItemHistory.section"`)}
	}
	if v, ok := ihc.mutation.Section(); ok {
		if err := itemhistory.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "ItemHistory.section": %w`, err)}
		}
	}
	if _, ok := ihc.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "ItemHistory.topic"`)}
	}
	if _, ok := ihc.mutation.TimesAnswered(); !ok {
		return &ValidationError{Name: "times_answered", err: errors.New(`ent: missing required field "ItemHistory.times_answered"`)}
	}
	if v, ok := ihc.mutation.TimesAnswered(); ok {
		if err := itemhistory.TimesAnsweredValidator(v); err != nil {
			return &ValidationError{Name: "times_answered", err: fmt.Errorf(`ent: validator failed for field "ItemHistory.times_answered": %w`, err)}
		}
	}
	if _, ok := ihc.mutation.TimesCorrect(); !ok {
		return &ValidationError{Name: "times_correct", err: errors.New(`ent: missing required field "ItemHistory.times_correct"`)}
	}
	if v, ok := ihc.mutation.TimesCorrect(); ok {
		if err := itemhistory.TimesCorrectValidator(v); err != nil {
			return &ValidationError{Name: "times_correct", err: fmt.Errorf(`ent: validator failed for field "ItemHistory.times_correct": %w`, err)}
		}
	}
	if _, ok := ihc.mutation.LastAnsweredAt(); !ok {
		return &ValidationError{Name: "last_answered_at", err: errors.New(`ent: missing required field "ItemHistory.last_answered_at"`)}
	}
	if _, ok := ihc.mutation.LastCorrect(); !ok {
		return &ValidationError{Name: "last_correct", err: errors.New(`ent: missing required field "ItemHistory.last_correct"`)}
	}
	if _, ok := ihc.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "ItemHistory.mastery_level"`)}
	}
	if _, ok := ihc.mutation.NextReviewAt(); !ok {
		return &ValidationError{Name: "next_review_at", err: errors.New(`ent: missing required field "ItemHistory.next_review_at"`)}
	}
	return nil
}

func (ihc *ItemHistoryCreate) sqlSave(ctx context.Context) (*ItemHistory, error) {
	if err := ihc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ihc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ihc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ihc.mutation.id = &_node.ID
	ihc.mutation.done = true
	return _node, nil
}

func (ihc *ItemHistoryCreate) createSpec() (*ItemHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &ItemHistory{config: ihc.config}
		_spec = sqlgraph.NewCreateSpec(itemhistory.Table, sqlgraph.NewFieldSpec(itemhistory.FieldID, field.TypeInt))
	)
	_spec.OnConflict = ihc.conflict
	if value, ok := ihc.mutation.UserID(); ok {
		_spec.SetField(itemhistory.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := ihc.mutation.ItemID(); ok {
		_spec.SetField(itemhistory.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := ihc.mutation.Section(); ok {
		_spec.SetField(itemhistory.FieldSection, field.TypeString, value)
		_node.Section = value
	}
	if value, ok := ihc.mutation.Topic(); ok {
		_spec.SetField(itemhistory.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := ihc.mutation.TimesAnswered(); ok {
		_spec.SetField(itemhistory.FieldTimesAnswered, field.TypeInt, value)
		_node.TimesAnswered = value
	}
	if value, ok := ihc.mutation.TimesCorrect(); ok {
		_spec.SetField(itemhistory.FieldTimesCorrect, field.TypeInt, value)
		_node.TimesCorrect = value
	}
	if value, ok := ihc.mutation.LastAnsweredAt(); ok {
		_spec.SetField(itemhistory.FieldLastAnsweredAt, field.TypeTime, value)
		_node.LastAnsweredAt = value
	}
	if value, ok := ihc.mutation.LastCorrect(); ok {
		_spec.SetField(itemhistory.FieldLastCorrect, field.TypeBool, value)
		_node.LastCorrect = value
	}
	if value, ok := ihc.mutation.MasteryLevel(); ok {
		_spec.SetField(itemhistory.FieldMasteryLevel, field.TypeString, value)
		_node.MasteryLevel = value
	}
	if value, ok := ihc.mutation.NextReviewAt(); ok {
		_spec.SetField(itemhistory.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ItemHistory.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ItemHistoryUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (ihc *ItemHistoryCreate) OnConflict(opts ...sql.ConflictOption) *ItemHistoryUpsertOne {
	ihc.conflict = opts
	return &ItemHistoryUpsertOne{
		create: ihc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ItemHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ihc *ItemHistoryCreate) OnConflictColumns(columns ...string) *ItemHistoryUpsertOne {
	ihc.conflict = append(ihc.conflict, sql.ConflictColumns(columns...))
	return &ItemHistoryUpsertOne{
		create: ihc,
	}
}

type (
	// ItemHistoryUpsertOne is the builder for "upsert"-ing
	//  one ItemHistory node.
	ItemHistoryUpsertOne struct {
		create *ItemHistoryCreate
	}

	// ItemHistoryUpsert is the "OnConflict" setter.
	ItemHistoryUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *ItemHistoryUpsert) SetUserID(v string) *ItemHistoryUpsert {
	u.Set(itemhistory.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ItemHistoryUpsert) UpdateUserID() *ItemHistoryUpsert {
	u.SetExcluded(itemhistory.FieldUserID)
	return u
}

// SetItemID sets the "item_id" field.
func (u *ItemHistoryUpsert) SetItemID(v string) *ItemHistoryUpsert {
	u.Set(itemhistory.FieldItemID, v)
	return u
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *ItemHistoryUpsert) UpdateItemID() *ItemHistoryUpsert {
	u.SetExcluded(itemhistory.FieldItemID)
	return u
}

// SetSection sets the "section" field.
func (u *ItemHistoryUpsert) SetSection(v string) *ItemHistoryUpsert {
	u.Set(itemhistory.FieldSection, v)
	return u
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *ItemHistoryUpsert) UpdateSection() *ItemHistoryUpsert {
	u.SetExcluded(itemhistory.FieldSection)
	return u
}

// SetTopic sets the "topic" field.
func (u *ItemHistoryUpsert) SetTopic(v string) *ItemHistoryUpsert {
	u.Set(itemhistory.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *ItemHistoryUpsert) UpdateTopic() *ItemHistoryUpsert {
	u.SetExcluded(itemhistory.FieldTopic)
	return u
}

// SetTimesAnswered sets the "times_answered" field.
func (u *ItemHistoryUpsert) SetTimesAnswered(v int) *ItemHistoryUpsert {
	u.Set(itemhistory.FieldTimesAnswered, v)
	return u
}

// UpdateTimesAnswered sets the "times_answered" field to the value that was provided on create.
func (u *ItemHistoryUpsert) UpdateTimesAnswered() *ItemHistoryUpsert {
	u.SetExcluded(itemhistory.FieldTimesAnswered)
	return u
}

// AddTimesAnswered adds v to the "times_answered" field.
func (u *ItemHistoryUpsert) AddTimesAnswered(v int) *ItemHistoryUpsert {
	u.Add(itemhistory.FieldTimesAnswered, v)
	return u
}

// SetTimesCorrect sets the "times_correct" field.
func (u *ItemHistoryUpsert) SetTimesCorrect(v int) *ItemHistoryUpsert {
	u.Set(itemhistory.FieldTimesCorrect, v)
	return u
}

// UpdateTimesCorrect sets the "times_correct" field to the value that was provided on create.
func (u *ItemHistoryUpsert) UpdateTimesCorrect() *ItemHistoryUpsert {
	u.SetExcluded(itemhistory.FieldTimesCorrect)
	return u
}

// AddTimesCorrect adds v to the "times_correct" field.
func (u *ItemHistoryUpsert) AddTimesCorrect(v int) *ItemHistoryUpsert {
	u.Add(itemhistory.FieldTimesCorrect, v)
	return u
}

// SetLastAnsweredAt sets the "last_answered_at" field.
func (u *ItemHistoryUpsert) SetLastAnsweredAt(v time.Time) *ItemHistoryUpsert {
	u.Set(itemhistory.FieldLastAnsweredAt, v)
	return u
}

// UpdateLastAnsweredAt sets the "last_answered_at" field to the value that was provided on create.
func (u *ItemHistoryUpsert) UpdateLastAnsweredAt() *ItemHistoryUpsert {
	u.SetExcluded(itemhistory.FieldLastAnsweredAt)
	return u
}

// SetLastCorrect sets the "last_correct" field.
func (u *ItemHistoryUpsert) SetLastCorrect(v bool) *ItemHistoryUpsert {
	u.Set(itemhistory.FieldLastCorrect, v)
	return u
}

// UpdateLastCorrect sets the "last_correct" field to the value that was provided on create.
func (u *ItemHistoryUpsert) UpdateLastCorrect() *ItemHistoryUpsert {
	u.SetExcluded(itemhistory.FieldLastCorrect)
	return u
}

// SetMasteryLevel sets the "mastery_level" field.
func (u *ItemHistoryUpsert) SetMasteryLevel(v string) *ItemHistoryUpsert {
	u.Set(itemhistory.FieldMasteryLevel, v)
	return u
}

// UpdateMasteryLevel sets the "mastery_level" field to the value that was provided on create.
func (u *ItemHistoryUpsert) UpdateMasteryLevel() *ItemHistoryUpsert {
	u.SetExcluded(itemhistory.FieldMasteryLevel)
	return u
}

// SetNextReviewAt sets the "next_review_at" field.
func (u *ItemHistoryUpsert) SetNextReviewAt(v time.Time) *ItemHistoryUpsert {
	u.Set(itemhistory.FieldNextReviewAt, v)
	return u
}

// UpdateNextReviewAt sets the "next_review_at" field to the value that was provided on create.
func (u *ItemHistoryUpsert) UpdateNextReviewAt() *ItemHistoryUpsert {
	u.SetExcluded(itemhistory.FieldNextReviewAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ItemHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ItemHistoryUpsertOne) UpdateNewValues() *ItemHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ItemHistory.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ItemHistoryUpsertOne) Ignore() *ItemHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ItemHistoryUpsertOne) DoNothing() *ItemHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ItemHistoryCreate.OnConflict
// documentation for more info.
func (u *ItemHistoryUpsertOne) Update(set func(*ItemHistoryUpsert)) *ItemHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ItemHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ItemHistoryUpsertOne) SetUserID(v string) *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ItemHistoryUpsertOne) UpdateUserID() *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.UpdateUserID()
	})
}

// SetItemID sets the "item_id" field.
func (u *ItemHistoryUpsertOne) SetItemID(v string) *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.SetItemID(v)
	})
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *ItemHistoryUpsertOne) UpdateItemID() *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.UpdateItemID()
	})
}

// SetSection sets the "section" field.
func (u *ItemHistoryUpsertOne) SetSection(v string) *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *ItemHistoryUpsertOne) UpdateSection() *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.UpdateSection()
	})
}

// SetTopic sets the "topic" field.
func (u *ItemHistoryUpsertOne) SetTopic(v string) *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *ItemHistoryUpsertOne) UpdateTopic() *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.UpdateTopic()
	})
}

// SetTimesAnswered sets the "times_answered" field.
func (u *ItemHistoryUpsertOne) SetTimesAnswered(v int) *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.SetTimesAnswered(v)
	})
}

// AddTimesAnswered adds v to the "times_answered" field.
func (u *ItemHistoryUpsertOne) AddTimesAnswered(v int) *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.AddTimesAnswered(v)
	})
}

// UpdateTimesAnswered sets the "times_answered" field to the value that was provided on create.
func (u *ItemHistoryUpsertOne) UpdateTimesAnswered() *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.UpdateTimesAnswered()
	})
}

// SetTimesCorrect sets the "times_correct" field.
func (u *ItemHistoryUpsertOne) SetTimesCorrect(v int) *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.SetTimesCorrect(v)
	})
}

// AddTimesCorrect adds v to the "times_correct" field.
func (u *ItemHistoryUpsertOne) AddTimesCorrect(v int) *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.AddTimesCorrect(v)
	})
}

// UpdateTimesCorrect sets the "times_correct" field to the value that was provided on create.
func (u *ItemHistoryUpsertOne) UpdateTimesCorrect() *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.UpdateTimesCorrect()
	})
}

// SetLastAnsweredAt sets the "last_answered_at" field.
func (u *ItemHistoryUpsertOne) SetLastAnsweredAt(v time.Time) *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.SetLastAnsweredAt(v)
	})
}

// UpdateLastAnsweredAt sets the "last_answered_at" field to the value that was provided on create.
func (u *ItemHistoryUpsertOne) UpdateLastAnsweredAt() *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.UpdateLastAnsweredAt()
	})
}

// SetLastCorrect sets the "last_correct" field.
func (u *ItemHistoryUpsertOne) SetLastCorrect(v bool) *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.SetLastCorrect(v)
	})
}

// UpdateLastCorrect sets the "last_correct" field to the value that was provided on create.
func (u *ItemHistoryUpsertOne) UpdateLastCorrect() *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.UpdateLastCorrect()
	})
}

// SetMasteryLevel sets the "mastery_level" field.
func (u *ItemHistoryUpsertOne) SetMasteryLevel(v string) *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.SetMasteryLevel(v)
	})
}

// UpdateMasteryLevel sets the "mastery_level" field to the value that was provided on create.
func (u *ItemHistoryUpsertOne) UpdateMasteryLevel() *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.UpdateMasteryLevel()
	})
}

// SetNextReviewAt sets the "next_review_at" field.
func (u *ItemHistoryUpsertOne) SetNextReviewAt(v time.Time) *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.SetNextReviewAt(v)
	})
}

// UpdateNextReviewAt sets the "next_review_at" field to the value that was provided on create.
func (u *ItemHistoryUpsertOne) UpdateNextReviewAt() *ItemHistoryUpsertOne {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.UpdateNextReviewAt()
	})
}

// Exec executes the query.
func (u *ItemHistoryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ItemHistoryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ItemHistoryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ItemHistoryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ItemHistoryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ItemHistoryCreateBulk is the builder for creating many ItemHistory entities in bulk.
type ItemHistoryCreateBulk struct {
	config
	err      error
	builders []*ItemHistoryCreate
	conflict []sql.ConflictOption
}

// Save creates the ItemHistory entities in the database.
func (ihcb *ItemHistoryCreateBulk) Save(ctx context.Context) ([]*ItemHistory, error) {
	if ihcb.err != nil {
		return nil, ihcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ihcb.builders))
	nodes := make([]*ItemHistory, len(ihcb.builders))
	mutators := make([]Mutator, len(ihcb.builders))
	for i := range ihcb.builders {
		func(i int, root context.Context) {
			builder := ihcb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemHistoryMutation)
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
					_, err = mutators[i+1].Mutate(root, ihcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = ihcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ihcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ihcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ihcb *ItemHistoryCreateBulk) SaveX(ctx context.Context) []*ItemHistory {
	v, err := ihcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ihcb *ItemHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := ihcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ihcb *ItemHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := ihcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ItemHistory.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ItemHistoryUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (ihcb *ItemHistoryCreateBulk) OnConflict(opts ...sql.ConflictOption) *ItemHistoryUpsertBulk {
	ihcb.conflict = opts
	return &ItemHistoryUpsertBulk{
		create: ihcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ItemHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ihcb *ItemHistoryCreateBulk) OnConflictColumns(columns ...string) *ItemHistoryUpsertBulk {
	ihcb.conflict = append(ihcb.conflict, sql.ConflictColumns(columns...))
	return &ItemHistoryUpsertBulk{
		create: ihcb,
	}
}

// ItemHistoryUpsertBulk is the builder for "upsert"-ing
// a bulk of ItemHistory nodes.
type ItemHistoryUpsertBulk struct {
	create *ItemHistoryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ItemHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ItemHistoryUpsertBulk) UpdateNewValues() *ItemHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ItemHistory.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ItemHistoryUpsertBulk) Ignore() *ItemHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ItemHistoryUpsertBulk) DoNothing() *ItemHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ItemHistoryCreateBulk.OnConflict
// documentation for more info.
func (u *ItemHistoryUpsertBulk) Update(set func(*ItemHistoryUpsert)) *ItemHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ItemHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ItemHistoryUpsertBulk) SetUserID(v string) *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ItemHistoryUpsertBulk) UpdateUserID() *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.UpdateUserID()
	})
}

// SetItemID sets the "item_id" field.
func (u *ItemHistoryUpsertBulk) SetItemID(v string) *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.SetItemID(v)
	})
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *ItemHistoryUpsertBulk) UpdateItemID() *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.UpdateItemID()
	})
}

// SetSection sets the "section" field.
func (u *ItemHistoryUpsertBulk) SetSection(v string) *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *ItemHistoryUpsertBulk) UpdateSection() *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.UpdateSection()
	})
}

// SetTopic sets the "topic" field.
func (u *ItemHistoryUpsertBulk) SetTopic(v string) *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *ItemHistoryUpsertBulk) UpdateTopic() *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.UpdateTopic()
	})
}

// SetTimesAnswered sets the "times_answered" field.
func (u *ItemHistoryUpsertBulk) SetTimesAnswered(v int) *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.SetTimesAnswered(v)
	})
}

// AddTimesAnswered adds v to the "times_answered" field.
func (u *ItemHistoryUpsertBulk) AddTimesAnswered(v int) *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.AddTimesAnswered(v)
	})
}

// UpdateTimesAnswered sets the "times_answered" field to the value that was provided on create.
func (u *ItemHistoryUpsertBulk) UpdateTimesAnswered() *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.UpdateTimesAnswered()
	})
}

// SetTimesCorrect sets the "times_correct" field.
func (u *ItemHistoryUpsertBulk) SetTimesCorrect(v int) *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.SetTimesCorrect(v)
	})
}

// AddTimesCorrect adds v to the "times_correct" field.
func (u *ItemHistoryUpsertBulk) AddTimesCorrect(v int) *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.AddTimesCorrect(v)
	})
}

// UpdateTimesCorrect sets the "times_correct" field to the value that was provided on create.
func (u *ItemHistoryUpsertBulk) UpdateTimesCorrect() *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.UpdateTimesCorrect()
	})
}

// SetLastAnsweredAt sets the "last_answered_at" field.
func (u *ItemHistoryUpsertBulk) SetLastAnsweredAt(v time.Time) *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.SetLastAnsweredAt(v)
	})
}

// UpdateLastAnsweredAt sets the "last_answered_at" field to the value that was provided on create.
func (u *ItemHistoryUpsertBulk) UpdateLastAnsweredAt() *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.UpdateLastAnsweredAt()
	})
}

// SetLastCorrect sets the "last_correct" field.
func (u *ItemHistoryUpsertBulk) SetLastCorrect(v bool) *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.SetLastCorrect(v)
	})
}

// UpdateLastCorrect sets the "last_correct" field to the value that was provided on create.
func (u *ItemHistoryUpsertBulk) UpdateLastCorrect() *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.UpdateLastCorrect()
	})
}

// SetMasteryLevel sets the "mastery_level" field.
func (u *ItemHistoryUpsertBulk) SetMasteryLevel(v string) *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.SetMasteryLevel(v)
	})
}

// UpdateMasteryLevel sets the "mastery_level" field to the value that was provided on create.
func (u *ItemHistoryUpsertBulk) UpdateMasteryLevel() *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.UpdateMasteryLevel()
	})
}

// SetNextReviewAt sets the "next_review_at" field.
func (u *ItemHistoryUpsertBulk) SetNextReviewAt(v time.Time) *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.SetNextReviewAt(v)
	})
}

// UpdateNextReviewAt sets the "next_review_at" field to the value that was provided on create.
func (u *ItemHistoryUpsertBulk) UpdateNextReviewAt() *ItemHistoryUpsertBulk {
	return u.Update(func(s *ItemHistoryUpsert) {
		s.UpdateNextReviewAt()
	})
}

// Exec executes the query.
func (u *ItemHistoryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ItemHistoryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ItemHistoryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ItemHistoryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
