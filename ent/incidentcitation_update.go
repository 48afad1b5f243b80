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
	"github.com/aurora-sre/aurora/ent/incidentcitation"
	"github.com/aurora-sre/aurora/ent/predicate"
)

// IncidentCitationUpdate is the builder for updating IncidentCitation entities.
type IncidentCitationUpdate struct {
	config
	hooks    []Hook
	mutation *IncidentCitationMutation
}

// Where appends a list predicates to the IncidentCitationUpdate builder.
func (_u *IncidentCitationUpdate) Where(ps ...predicate.IncidentCitation) *IncidentCitationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCitationKey sets the "citation_key" field.
func (_u *IncidentCitationUpdate) SetCitationKey(v string) *IncidentCitationUpdate {
	_u.mutation.SetCitationKey(v)
	return _u
}

// SetNillableCitationKey sets the "citation_key" field if the given value is not nil.
func (_u *IncidentCitationUpdate) SetNillableCitationKey(v *string) *IncidentCitationUpdate {
	if v != nil {
		_u.SetCitationKey(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *IncidentCitationUpdate) SetToolName(v string) *IncidentCitationUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *IncidentCitationUpdate) SetNillableToolName(v *string) *IncidentCitationUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetCommand sets the "command" field.
func (_u *IncidentCitationUpdate) SetCommand(v string) *IncidentCitationUpdate {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *IncidentCitationUpdate) SetNillableCommand(v *string) *IncidentCitationUpdate {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *IncidentCitationUpdate) ClearCommand() *IncidentCitationUpdate {
	_u.mutation.ClearCommand()
	return _u
}

// SetOutput sets the "output" field.
func (_u *IncidentCitationUpdate) SetOutput(v string) *IncidentCitationUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *IncidentCitationUpdate) SetNillableOutput(v *string) *IncidentCitationUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *IncidentCitationUpdate) ClearOutput() *IncidentCitationUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetExecutedAt sets the "executed_at" field.
func (_u *IncidentCitationUpdate) SetExecutedAt(v time.Time) *IncidentCitationUpdate {
	_u.mutation.SetExecutedAt(v)
	return _u
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_u *IncidentCitationUpdate) SetNillableExecutedAt(v *time.Time) *IncidentCitationUpdate {
	if v != nil {
		_u.SetExecutedAt(*v)
	}
	return _u
}

// Mutation returns the IncidentCitationMutation object of the builder.
func (_u *IncidentCitationUpdate) Mutation() *IncidentCitationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IncidentCitationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentCitationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IncidentCitationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentCitationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentCitationUpdate) check() error {
	if _u.mutation.IncidentCleared() && len(_u.mutation.IncidentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IncidentCitation.incident"`)
	}
	return nil
}

func (_u *IncidentCitationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incidentcitation.Table, incidentcitation.Columns, sqlgraph.NewFieldSpec(incidentcitation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CitationKey(); ok {
		_spec.SetField(incidentcitation.FieldCitationKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(incidentcitation.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(incidentcitation.FieldCommand, field.TypeString, value)
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(incidentcitation.FieldCommand, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(incidentcitation.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(incidentcitation.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutedAt(); ok {
		_spec.SetField(incidentcitation.FieldExecutedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incidentcitation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IncidentCitationUpdateOne is the builder for updating a single IncidentCitation entity.
type IncidentCitationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IncidentCitationMutation
}

// SetCitationKey sets the "citation_key" field.
func (_u *IncidentCitationUpdateOne) SetCitationKey(v string) *IncidentCitationUpdateOne {
	_u.mutation.SetCitationKey(v)
	return _u
}

// SetNillableCitationKey sets the "citation_key" field if the given value is not nil.
func (_u *IncidentCitationUpdateOne) SetNillableCitationKey(v *string) *IncidentCitationUpdateOne {
	if v != nil {
		_u.SetCitationKey(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *IncidentCitationUpdateOne) SetToolName(v string) *IncidentCitationUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *IncidentCitationUpdateOne) SetNillableToolName(v *string) *IncidentCitationUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetCommand sets the "command" field.
func (_u *IncidentCitationUpdateOne) SetCommand(v string) *IncidentCitationUpdateOne {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *IncidentCitationUpdateOne) SetNillableCommand(v *string) *IncidentCitationUpdateOne {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *IncidentCitationUpdateOne) ClearCommand() *IncidentCitationUpdateOne {
	_u.mutation.ClearCommand()
	return _u
}

// SetOutput sets the "output" field.
func (_u *IncidentCitationUpdateOne) SetOutput(v string) *IncidentCitationUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *IncidentCitationUpdateOne) SetNillableOutput(v *string) *IncidentCitationUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *IncidentCitationUpdateOne) ClearOutput() *IncidentCitationUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetExecutedAt sets the "executed_at" field.
func (_u *IncidentCitationUpdateOne) SetExecutedAt(v time.Time) *IncidentCitationUpdateOne {
	_u.mutation.SetExecutedAt(v)
	return _u
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_u *IncidentCitationUpdateOne) SetNillableExecutedAt(v *time.Time) *IncidentCitationUpdateOne {
	if v != nil {
		_u.SetExecutedAt(*v)
	}
	return _u
}

// Mutation returns the IncidentCitationMutation object of the builder.
func (_u *IncidentCitationUpdateOne) Mutation() *IncidentCitationMutation {
	return _u.mutation
}

// Where appends a list predicates to the IncidentCitationUpdate builder.
func (_u *IncidentCitationUpdateOne) Where(ps ...predicate.IncidentCitation) *IncidentCitationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IncidentCitationUpdateOne) Select(field string, fields ...string) *IncidentCitationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IncidentCitation entity.
func (_u *IncidentCitationUpdateOne) Save(ctx context.Context) (*IncidentCitation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentCitationUpdateOne) SaveX(ctx context.Context) *IncidentCitation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IncidentCitationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentCitationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentCitationUpdateOne) check() error {
	if _u.mutation.IncidentCleared() && len(_u.mutation.IncidentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IncidentCitation.incident"`)
	}
	return nil
}

func (_u *IncidentCitationUpdateOne) sqlSave(ctx context.Context) (_node *IncidentCitation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incidentcitation.Table, incidentcitation.Columns, sqlgraph.NewFieldSpec(incidentcitation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IncidentCitation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, incidentcitation.FieldID)
		for _, f := range fields {
			if !incidentcitation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != incidentcitation.FieldID {
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
	if value, ok := _u.mutation.CitationKey(); ok {
		_spec.SetField(incidentcitation.FieldCitationKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(incidentcitation.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(incidentcitation.FieldCommand, field.TypeString, value)
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(incidentcitation.FieldCommand, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(incidentcitation.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(incidentcitation.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutedAt(); ok {
		_spec.SetField(incidentcitation.FieldExecutedAt, field.TypeTime, value)
	}
	_node = &IncidentCitation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incidentcitation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
