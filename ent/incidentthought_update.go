// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aurora-sre/aurora/ent/incidentthought"
	"github.com/aurora-sre/aurora/ent/predicate"
)

// IncidentThoughtUpdate is the builder for updating IncidentThought entities.
type IncidentThoughtUpdate struct {
	config
	hooks    []Hook
	mutation *IncidentThoughtMutation
}

// Where appends a list predicates to the IncidentThoughtUpdate builder.
func (_u *IncidentThoughtUpdate) Where(ps ...predicate.IncidentThought) *IncidentThoughtUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetThoughtType sets the "thought_type" field.
func (_u *IncidentThoughtUpdate) SetThoughtType(v string) *IncidentThoughtUpdate {
	_u.mutation.SetThoughtType(v)
	return _u
}

// SetNillableThoughtType sets the "thought_type" field if the given value is not nil.
func (_u *IncidentThoughtUpdate) SetNillableThoughtType(v *string) *IncidentThoughtUpdate {
	if v != nil {
		_u.SetThoughtType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *IncidentThoughtUpdate) SetContent(v string) *IncidentThoughtUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *IncidentThoughtUpdate) SetNillableContent(v *string) *IncidentThoughtUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the IncidentThoughtMutation object of the builder.
func (_u *IncidentThoughtUpdate) Mutation() *IncidentThoughtMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IncidentThoughtUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentThoughtUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IncidentThoughtUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentThoughtUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentThoughtUpdate) check() error {
	if _u.mutation.IncidentCleared() && len(_u.mutation.IncidentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IncidentThought.incident"`)
	}
	return nil
}

func (_u *IncidentThoughtUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incidentthought.Table, incidentthought.Columns, sqlgraph.NewFieldSpec(incidentthought.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ThoughtType(); ok {
		_spec.SetField(incidentthought.FieldThoughtType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(incidentthought.FieldContent, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incidentthought.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IncidentThoughtUpdateOne is the builder for updating a single IncidentThought entity.
type IncidentThoughtUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IncidentThoughtMutation
}

// SetThoughtType sets the "thought_type" field.
func (_u *IncidentThoughtUpdateOne) SetThoughtType(v string) *IncidentThoughtUpdateOne {
	_u.mutation.SetThoughtType(v)
	return _u
}

// SetNillableThoughtType sets the "thought_type" field if the given value is not nil.
func (_u *IncidentThoughtUpdateOne) SetNillableThoughtType(v *string) *IncidentThoughtUpdateOne {
	if v != nil {
		_u.SetThoughtType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *IncidentThoughtUpdateOne) SetContent(v string) *IncidentThoughtUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *IncidentThoughtUpdateOne) SetNillableContent(v *string) *IncidentThoughtUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the IncidentThoughtMutation object of the builder.
func (_u *IncidentThoughtUpdateOne) Mutation() *IncidentThoughtMutation {
	return _u.mutation
}

// Where appends a list predicates to the IncidentThoughtUpdate builder.
func (_u *IncidentThoughtUpdateOne) Where(ps ...predicate.IncidentThought) *IncidentThoughtUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IncidentThoughtUpdateOne) Select(field string, fields ...string) *IncidentThoughtUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IncidentThought entity.
func (_u *IncidentThoughtUpdateOne) Save(ctx context.Context) (*IncidentThought, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentThoughtUpdateOne) SaveX(ctx context.Context) *IncidentThought {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IncidentThoughtUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentThoughtUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentThoughtUpdateOne) check() error {
	if _u.mutation.IncidentCleared() && len(_u.mutation.IncidentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IncidentThought.incident"`)
	}
	return nil
}

func (_u *IncidentThoughtUpdateOne) sqlSave(ctx context.Context) (_node *IncidentThought, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incidentthought.Table, incidentthought.Columns, sqlgraph.NewFieldSpec(incidentthought.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IncidentThought.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, incidentthought.FieldID)
		for _, f := range fields {
			if !incidentthought.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != incidentthought.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ThoughtType(); ok {
		_spec.SetField(incidentthought.FieldThoughtType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(incidentthought.FieldContent, field.TypeString, value)
	}
	_node = &IncidentThought{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incidentthought.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
