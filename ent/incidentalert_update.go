// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aurora-sre/aurora/ent/incidentalert"
	"github.com/aurora-sre/aurora/ent/predicate"
)

// IncidentAlertUpdate is the builder for updating IncidentAlert entities.
type IncidentAlertUpdate struct {
	config
	hooks    []Hook
	mutation *IncidentAlertMutation
}

// Where appends a list predicates to the IncidentAlertUpdate builder.
func (_u *IncidentAlertUpdate) Where(ps ...predicate.IncidentAlert) *IncidentAlertUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCorrelationStrategy sets the "correlation_strategy" field.
func (_u *IncidentAlertUpdate) SetCorrelationStrategy(v incidentalert.CorrelationStrategy) *IncidentAlertUpdate {
	_u.mutation.SetCorrelationStrategy(v)
	return _u
}

// SetNillableCorrelationStrategy sets the "correlation_strategy" field if the given value is not nil.
func (_u *IncidentAlertUpdate) SetNillableCorrelationStrategy(v *incidentalert.CorrelationStrategy) *IncidentAlertUpdate {
	if v != nil {
		_u.SetCorrelationStrategy(*v)
	}
	return _u
}

// SetCorrelationScore sets the "correlation_score" field.
func (_u *IncidentAlertUpdate) SetCorrelationScore(v float64) *IncidentAlertUpdate {
	_u.mutation.ResetCorrelationScore()
	_u.mutation.SetCorrelationScore(v)
	return _u
}

// SetNillableCorrelationScore sets the "correlation_score" field if the given value is not nil.
func (_u *IncidentAlertUpdate) SetNillableCorrelationScore(v *float64) *IncidentAlertUpdate {
	if v != nil {
		_u.SetCorrelationScore(*v)
	}
	return _u
}

// AddCorrelationScore adds value to the "correlation_score" field.
func (_u *IncidentAlertUpdate) AddCorrelationScore(v float64) *IncidentAlertUpdate {
	_u.mutation.AddCorrelationScore(v)
	return _u
}

// SetCorrelationDetails sets the "correlation_details" field.
func (_u *IncidentAlertUpdate) SetCorrelationDetails(v map[string]interface{}) *IncidentAlertUpdate {
	_u.mutation.SetCorrelationDetails(v)
	return _u
}

// ClearCorrelationDetails clears the value of the "correlation_details" field.
func (_u *IncidentAlertUpdate) ClearCorrelationDetails() *IncidentAlertUpdate {
	_u.mutation.ClearCorrelationDetails()
	return _u
}

// Mutation returns the IncidentAlertMutation object of the builder.
func (_u *IncidentAlertUpdate) Mutation() *IncidentAlertMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IncidentAlertUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentAlertUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IncidentAlertUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentAlertUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentAlertUpdate) check() error {
	if v, ok := _u.mutation.CorrelationStrategy(); ok {
		if err := incidentalert.CorrelationStrategyValidator(v); err != nil {
			return &ValidationError{Name: "correlation_strategy", err: fmt.Errorf(`ent: validator failed for field "IncidentAlert.correlation_strategy": %w`, err)}
		}
	}
	if _u.mutation.IncidentCleared() && len(_u.mutation.IncidentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IncidentAlert.incident"`)
	}
	return nil
}

func (_u *IncidentAlertUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incidentalert.Table, incidentalert.Columns, sqlgraph.NewFieldSpec(incidentalert.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CorrelationStrategy(); ok {
		_spec.SetField(incidentalert.FieldCorrelationStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CorrelationScore(); ok {
		_spec.SetField(incidentalert.FieldCorrelationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCorrelationScore(); ok {
		_spec.AddField(incidentalert.FieldCorrelationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CorrelationDetails(); ok {
		_spec.SetField(incidentalert.FieldCorrelationDetails, field.TypeJSON, value)
	}
	if _u.mutation.CorrelationDetailsCleared() {
		_spec.ClearField(incidentalert.FieldCorrelationDetails, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incidentalert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IncidentAlertUpdateOne is the builder for updating a single IncidentAlert entity.
type IncidentAlertUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IncidentAlertMutation
}

// SetCorrelationStrategy sets the "correlation_strategy" field.
func (_u *IncidentAlertUpdateOne) SetCorrelationStrategy(v incidentalert.CorrelationStrategy) *IncidentAlertUpdateOne {
	_u.mutation.SetCorrelationStrategy(v)
	return _u
}

// SetNillableCorrelationStrategy sets the "correlation_strategy" field if the given value is not nil.
func (_u *IncidentAlertUpdateOne) SetNillableCorrelationStrategy(v *incidentalert.CorrelationStrategy) *IncidentAlertUpdateOne {
	if v != nil {
		_u.SetCorrelationStrategy(*v)
	}
	return _u
}

// SetCorrelationScore sets the "correlation_score" field.
func (_u *IncidentAlertUpdateOne) SetCorrelationScore(v float64) *IncidentAlertUpdateOne {
	_u.mutation.ResetCorrelationScore()
	_u.mutation.SetCorrelationScore(v)
	return _u
}

// SetNillableCorrelationScore sets the "correlation_score" field if the given value is not nil.
func (_u *IncidentAlertUpdateOne) SetNillableCorrelationScore(v *float64) *IncidentAlertUpdateOne {
	if v != nil {
		_u.SetCorrelationScore(*v)
	}
	return _u
}

// AddCorrelationScore adds value to the "correlation_score" field.
func (_u *IncidentAlertUpdateOne) AddCorrelationScore(v float64) *IncidentAlertUpdateOne {
	_u.mutation.AddCorrelationScore(v)
	return _u
}

// SetCorrelationDetails sets the "correlation_details" field.
func (_u *IncidentAlertUpdateOne) SetCorrelationDetails(v map[string]interface{}) *IncidentAlertUpdateOne {
	_u.mutation.SetCorrelationDetails(v)
	return _u
}

// ClearCorrelationDetails clears the value of the "correlation_details" field.
func (_u *IncidentAlertUpdateOne) ClearCorrelationDetails() *IncidentAlertUpdateOne {
	_u.mutation.ClearCorrelationDetails()
	return _u
}

// Mutation returns the IncidentAlertMutation object of the builder.
func (_u *IncidentAlertUpdateOne) Mutation() *IncidentAlertMutation {
	return _u.mutation
}

// Where appends a list predicates to the IncidentAlertUpdate builder.
func (_u *IncidentAlertUpdateOne) Where(ps ...predicate.IncidentAlert) *IncidentAlertUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IncidentAlertUpdateOne) Select(field string, fields ...string) *IncidentAlertUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IncidentAlert entity.
func (_u *IncidentAlertUpdateOne) Save(ctx context.Context) (*IncidentAlert, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentAlertUpdateOne) SaveX(ctx context.Context) *IncidentAlert {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IncidentAlertUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentAlertUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentAlertUpdateOne) check() error {
	if v, ok := _u.mutation.CorrelationStrategy(); ok {
		if err := incidentalert.CorrelationStrategyValidator(v); err != nil {
			return &ValidationError{Name: "correlation_strategy", err: fmt.Errorf(`ent: validator failed for field "IncidentAlert.correlation_strategy": %w`, err)}
		}
	}
	if _u.mutation.IncidentCleared() && len(_u.mutation.IncidentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IncidentAlert.incident"`)
	}
	return nil
}

func (_u *IncidentAlertUpdateOne) sqlSave(ctx context.Context) (_node *IncidentAlert, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incidentalert.Table, incidentalert.Columns, sqlgraph.NewFieldSpec(incidentalert.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IncidentAlert.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, incidentalert.FieldID)
		for _, f := range fields {
			if !incidentalert.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != incidentalert.FieldID {
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
	if value, ok := _u.mutation.CorrelationStrategy(); ok {
		_spec.SetField(incidentalert.FieldCorrelationStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CorrelationScore(); ok {
		_spec.SetField(incidentalert.FieldCorrelationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCorrelationScore(); ok {
		_spec.AddField(incidentalert.FieldCorrelationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CorrelationDetails(); ok {
		_spec.SetField(incidentalert.FieldCorrelationDetails, field.TypeJSON, value)
	}
	if _u.mutation.CorrelationDetailsCleared() {
		_spec.ClearField(incidentalert.FieldCorrelationDetails, field.TypeJSON)
	}
	_node = &IncidentAlert{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incidentalert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
