// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aurora-sre/aurora/ent/alertevent"
	"github.com/aurora-sre/aurora/ent/predicate"
)

// AlertEventUpdate is the builder for updating AlertEvent entities.
type AlertEventUpdate struct {
	config
	hooks    []Hook
	mutation *AlertEventMutation
}

// Where appends a list predicates to the AlertEventUpdate builder.
func (_u *AlertEventUpdate) Where(ps ...predicate.AlertEvent) *AlertEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *AlertEventUpdate) SetTitle(v string) *AlertEventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AlertEventUpdate) SetNillableTitle(v *string) *AlertEventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *AlertEventUpdate) ClearTitle() *AlertEventUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AlertEventUpdate) SetSeverity(v string) *AlertEventUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AlertEventUpdate) SetNillableSeverity(v *string) *AlertEventUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *AlertEventUpdate) ClearSeverity() *AlertEventUpdate {
	_u.mutation.ClearSeverity()
	return _u
}

// SetService sets the "service" field.
func (_u *AlertEventUpdate) SetService(v string) *AlertEventUpdate {
	_u.mutation.SetService(v)
	return _u
}

// SetNillableService sets the "service" field if the given value is not nil.
func (_u *AlertEventUpdate) SetNillableService(v *string) *AlertEventUpdate {
	if v != nil {
		_u.SetService(*v)
	}
	return _u
}

// ClearService clears the value of the "service" field.
func (_u *AlertEventUpdate) ClearService() *AlertEventUpdate {
	_u.mutation.ClearService()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertEventUpdate) SetStatus(v string) *AlertEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertEventUpdate) SetNillableStatus(v *string) *AlertEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *AlertEventUpdate) ClearStatus() *AlertEventUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetEventKind sets the "event_kind" field.
func (_u *AlertEventUpdate) SetEventKind(v string) *AlertEventUpdate {
	_u.mutation.SetEventKind(v)
	return _u
}

// SetNillableEventKind sets the "event_kind" field if the given value is not nil.
func (_u *AlertEventUpdate) SetNillableEventKind(v *string) *AlertEventUpdate {
	if v != nil {
		_u.SetEventKind(*v)
	}
	return _u
}

// ClearEventKind clears the value of the "event_kind" field.
func (_u *AlertEventUpdate) ClearEventKind() *AlertEventUpdate {
	_u.mutation.ClearEventKind()
	return _u
}

// Mutation returns the AlertEventMutation object of the builder.
func (_u *AlertEventUpdate) Mutation() *AlertEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlertEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlertEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AlertEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(alertevent.Table, alertevent.Columns, sqlgraph.NewFieldSpec(alertevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(alertevent.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(alertevent.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(alertevent.FieldSeverity, field.TypeString, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(alertevent.FieldSeverity, field.TypeString)
	}
	if value, ok := _u.mutation.Service(); ok {
		_spec.SetField(alertevent.FieldService, field.TypeString, value)
	}
	if _u.mutation.ServiceCleared() {
		_spec.ClearField(alertevent.FieldService, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alertevent.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(alertevent.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.EventKind(); ok {
		_spec.SetField(alertevent.FieldEventKind, field.TypeString, value)
	}
	if _u.mutation.EventKindCleared() {
		_spec.ClearField(alertevent.FieldEventKind, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alertevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlertEventUpdateOne is the builder for updating a single AlertEvent entity.
type AlertEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlertEventMutation
}

// SetTitle sets the "title" field.
func (_u *AlertEventUpdateOne) SetTitle(v string) *AlertEventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AlertEventUpdateOne) SetNillableTitle(v *string) *AlertEventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *AlertEventUpdateOne) ClearTitle() *AlertEventUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AlertEventUpdateOne) SetSeverity(v string) *AlertEventUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AlertEventUpdateOne) SetNillableSeverity(v *string) *AlertEventUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *AlertEventUpdateOne) ClearSeverity() *AlertEventUpdateOne {
	_u.mutation.ClearSeverity()
	return _u
}

// SetService sets the "service" field.
func (_u *AlertEventUpdateOne) SetService(v string) *AlertEventUpdateOne {
	_u.mutation.SetService(v)
	return _u
}

// SetNillableService sets the "service" field if the given value is not nil.
func (_u *AlertEventUpdateOne) SetNillableService(v *string) *AlertEventUpdateOne {
	if v != nil {
		_u.SetService(*v)
	}
	return _u
}

// ClearService clears the value of the "service" field.
func (_u *AlertEventUpdateOne) ClearService() *AlertEventUpdateOne {
	_u.mutation.ClearService()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertEventUpdateOne) SetStatus(v string) *AlertEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertEventUpdateOne) SetNillableStatus(v *string) *AlertEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *AlertEventUpdateOne) ClearStatus() *AlertEventUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetEventKind sets the "event_kind" field.
func (_u *AlertEventUpdateOne) SetEventKind(v string) *AlertEventUpdateOne {
	_u.mutation.SetEventKind(v)
	return _u
}

// SetNillableEventKind sets the "event_kind" field if the given value is not nil.
func (_u *AlertEventUpdateOne) SetNillableEventKind(v *string) *AlertEventUpdateOne {
	if v != nil {
		_u.SetEventKind(*v)
	}
	return _u
}

// ClearEventKind clears the value of the "event_kind" field.
func (_u *AlertEventUpdateOne) ClearEventKind() *AlertEventUpdateOne {
	_u.mutation.ClearEventKind()
	return _u
}

// Mutation returns the AlertEventMutation object of the builder.
func (_u *AlertEventUpdateOne) Mutation() *AlertEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AlertEventUpdate builder.
func (_u *AlertEventUpdateOne) Where(ps ...predicate.AlertEvent) *AlertEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlertEventUpdateOne) Select(field string, fields ...string) *AlertEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AlertEvent entity.
func (_u *AlertEventUpdateOne) Save(ctx context.Context) (*AlertEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertEventUpdateOne) SaveX(ctx context.Context) *AlertEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlertEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AlertEventUpdateOne) sqlSave(ctx context.Context) (_node *AlertEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(alertevent.Table, alertevent.Columns, sqlgraph.NewFieldSpec(alertevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AlertEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alertevent.FieldID)
		for _, f := range fields {
			if !alertevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != alertevent.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(alertevent.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(alertevent.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(alertevent.FieldSeverity, field.TypeString, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(alertevent.FieldSeverity, field.TypeString)
	}
	if value, ok := _u.mutation.Service(); ok {
		_spec.SetField(alertevent.FieldService, field.TypeString, value)
	}
	if _u.mutation.ServiceCleared() {
		_spec.ClearField(alertevent.FieldService, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alertevent.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(alertevent.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.EventKind(); ok {
		_spec.SetField(alertevent.FieldEventKind, field.TypeString, value)
	}
	if _u.mutation.EventKindCleared() {
		_spec.ClearField(alertevent.FieldEventKind, field.TypeString)
	}
	_node = &AlertEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alertevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
