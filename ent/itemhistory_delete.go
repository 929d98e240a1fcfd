// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studymesh/cpaprep/ent/itemhistory"
	"github.com/studymesh/cpaprep/ent/predicate"
)

// ItemHistoryDelete is the builder for deleting a ItemHistory entity.
type ItemHistoryDelete struct {
	config
	hooks    []Hook
	mutation *ItemHistoryMutation
}

// Where appends a list predicates to the ItemHistoryDelete builder.
func (ihd *ItemHistoryDelete) Where(ps ...predicate.ItemHistory) *ItemHistoryDelete {
	ihd.mutation.Where(ps...)
	return ihd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ihd *ItemHistoryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ihd.sqlExec, ihd.mutation, ihd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ihd *ItemHistoryDelete) ExecX(ctx context.Context) int {
	n, err := ihd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ihd *ItemHistoryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(itemhistory.Table, sqlgraph.NewFieldSpec(itemhistory.FieldID, field.TypeInt))
	if ps := ihd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ihd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ihd.mutation.done = true
	return affected, err
}

// ItemHistoryDeleteOne is the builder for deleting a single ItemHistory entity.
type ItemHistoryDeleteOne struct {
	ihd *ItemHistoryDelete
}

// Where appends a list predicates to the ItemHistoryDelete builder.
func (ihdo *ItemHistoryDeleteOne) Where(ps ...predicate.ItemHistory) *ItemHistoryDeleteOne {
	ihdo.ihd.mutation.Where(ps...)
	return ihdo
}

// Exec executes the deletion query.
func (ihdo *ItemHistoryDeleteOne) Exec(ctx context.Context) error {
	n, err := ihdo.ihd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{itemhistory.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ihdo *ItemHistoryDeleteOne) ExecX(ctx context.Context) {
	if err := ihdo.Exec(ctx); err != nil {
		panic(err)
	}
}
