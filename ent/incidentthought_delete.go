// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aurora-sre/aurora/ent/incidentthought"
	"github.com/aurora-sre/aurora/ent/predicate"
)

// IncidentThoughtDelete is the builder for deleting a IncidentThought entity.
type IncidentThoughtDelete struct {
	config
	hooks    []Hook
	mutation *IncidentThoughtMutation
}

// Where appends a list predicates to the IncidentThoughtDelete builder.
func (_d *IncidentThoughtDelete) Where(ps ...predicate.IncidentThought) *IncidentThoughtDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *IncidentThoughtDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *IncidentThoughtDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *IncidentThoughtDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(incidentthought.Table, sqlgraph.NewFieldSpec(incidentthought.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// IncidentThoughtDeleteOne is the builder for deleting a single IncidentThought entity.
type IncidentThoughtDeleteOne struct {
	_d *IncidentThoughtDelete
}

// Where appends a list predicates to the IncidentThoughtDelete builder.
func (_d *IncidentThoughtDeleteOne) Where(ps ...predicate.IncidentThought) *IncidentThoughtDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *IncidentThoughtDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{incidentthought.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *IncidentThoughtDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
