// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studymesh/cpaprep/ent/predicate"
	"github.com/studymesh/cpaprep/ent/simtaskhistory"
)

// SimTaskHistoryDelete is the builder for deleting a SimTaskHistory entity.
type SimTaskHistoryDelete struct {
	config
	hooks    []Hook
	mutation *SimTaskHistoryMutation
}

// Where appends a list predicates to the SimTaskHistoryDelete builder.
func (sthd *SimTaskHistoryDelete) Where(ps ...predicate.SimTaskHistory) *SimTaskHistoryDelete {
	sthd.mutation.Where(ps...)
	return sthd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (sthd *SimTaskHistoryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, sthd.sqlExec, sthd.mutation, sthd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (sthd *SimTaskHistoryDelete) ExecX(ctx context.Context) int {
	n, err := sthd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (sthd *SimTaskHistoryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(simtaskhistory.Table, sqlgraph.NewFieldSpec(simtaskhistory.FieldID, field.TypeInt))
	if ps := sthd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, sthd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	sthd.mutation.done = true
	return affected, err
}

// SimTaskHistoryDeleteOne is the builder for deleting a single SimTaskHistory entity.
type SimTaskHistoryDeleteOne struct {
	sthd *SimTaskHistoryDelete
}

// Where appends a list predicates to the SimTaskHistoryDelete builder.
func (sthdo *SimTaskHistoryDeleteOne) Where(ps ...predicate.SimTaskHistory) *SimTaskHistoryDeleteOne {
	sthdo.sthd.mutation.Where(ps...)
	return sthdo
}

// Exec executes the deletion query.
func (sthdo *SimTaskHistoryDeleteOne) Exec(ctx context.Context) error {
	n, err := sthdo.sthd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{simtaskhistory.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (sthdo *SimTaskHistoryDeleteOne) ExecX(ctx context.Context) {
	if err := sthdo.Exec(ctx); err != nil {
		panic(err)
	}
}
