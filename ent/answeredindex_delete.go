// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studymesh/cpaprep/ent/answeredindex"
	"github.com/studymesh/cpaprep/ent/predicate"
)

// AnsweredIndexDelete is the builder for deleting a AnsweredIndex entity.
type AnsweredIndexDelete struct {
	config
	hooks    []Hook
	mutation *AnsweredIndexMutation
}

// Where appends a list predicates to the AnsweredIndexDelete builder.
func (aid *AnsweredIndexDelete) Where(ps ...predicate.AnsweredIndex) *AnsweredIndexDelete {
	aid.mutation.Where(ps...)
	return aid
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (aid *AnsweredIndexDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, aid.sqlExec, aid.mutation, aid.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (aid *AnsweredIndexDelete) ExecX(ctx context.Context) int {
	n, err := aid.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (aid *AnsweredIndexDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(answeredindex.Table, sqlgraph.NewFieldSpec(answeredindex.FieldID, field.TypeInt))
	if ps := aid.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, aid.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	aid.mutation.done = true
	return affected, err
}

// AnsweredIndexDeleteOne is the builder for deleting a single AnsweredIndex entity.
type AnsweredIndexDeleteOne struct {
	aid *AnsweredIndexDelete
}

// Where appends a list predicates to the AnsweredIndexDelete builder.
func (aido *AnsweredIndexDeleteOne) Where(ps ...predicate.AnsweredIndex) *AnsweredIndexDeleteOne {
	aido.aid.mutation.Where(ps...)
	return aido
}

// Exec executes the deletion query.
func (aido *AnsweredIndexDeleteOne) Exec(ctx context.Context) error {
	n, err := aido.aid.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{answeredindex.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (aido *AnsweredIndexDeleteOne) ExecX(ctx context.Context) {
	if err := aido.Exec(ctx); err != nil {
		panic(err)
	}
}
