// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aurora-sre/aurora/ent/alertevent"
)

// AlertEventCreate is the builder for creating a AlertEvent entity.
type AlertEventCreate struct {
	config
	mutation *AlertEventMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *AlertEventCreate) SetUserID(v string) *AlertEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *AlertEventCreate) SetSource(v string) *AlertEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetExternalID sets the "external_id" field.
func (_c *AlertEventCreate) SetExternalID(v string) *AlertEventCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetDedupeKey sets the "dedupe_key" field.
func (_c *AlertEventCreate) SetDedupeKey(v string) *AlertEventCreate {
	_c.mutation.SetDedupeKey(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *AlertEventCreate) SetTitle(v string) *AlertEventCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *AlertEventCreate) SetNillableTitle(v *string) *AlertEventCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *AlertEventCreate) SetSeverity(v string) *AlertEventCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *AlertEventCreate) SetNillableSeverity(v *string) *AlertEventCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetService sets the "service" field.
func (_c *AlertEventCreate) SetService(v string) *AlertEventCreate {
	_c.mutation.SetService(v)
	return _c
}

// SetNillableService sets the "service" field if the given value is not nil.
func (_c *AlertEventCreate) SetNillableService(v *string) *AlertEventCreate {
	if v != nil {
		_c.SetService(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AlertEventCreate) SetStatus(v string) *AlertEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AlertEventCreate) SetNillableStatus(v *string) *AlertEventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEventKind sets the "event_kind" field.
func (_c *AlertEventCreate) SetEventKind(v string) *AlertEventCreate {
	_c.mutation.SetEventKind(v)
	return _c
}

// SetNillableEventKind sets the "event_kind" field if the given value is not nil.
func (_c *AlertEventCreate) SetNillableEventKind(v *string) *AlertEventCreate {
	if v != nil {
		_c.SetEventKind(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *AlertEventCreate) SetPayload(v map[string]interface{}) *AlertEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *AlertEventCreate) SetReceivedAt(v time.Time) *AlertEventCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *AlertEventCreate) SetNillableReceivedAt(v *time.Time) *AlertEventCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AlertEventCreate) SetID(v string) *AlertEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AlertEventMutation object of the builder.
func (_c *AlertEventCreate) Mutation() *AlertEventMutation {
	return _c.mutation
}

// Save creates the AlertEvent in the database.
func (_c *AlertEventCreate) Save(ctx context.Context) (*AlertEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AlertEventCreate) SaveX(ctx context.Context) *AlertEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AlertEventCreate) defaults() {
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := alertevent.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AlertEventCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AlertEvent.user_id"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "AlertEvent.source"`)}
	}
	if _, ok := _c.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "AlertEvent.external_id"`)}
	}
	if _, ok := _c.mutation.DedupeKey(); !ok {
		return &ValidationError{Name: "dedupe_key", err: errors.New(`ent: missing required field "AlertEvent.dedupe_key"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "AlertEvent.payload"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "AlertEvent.received_at"`)}
	}
	return nil
}

func (_c *AlertEventCreate) sqlSave(ctx context.Context) (*AlertEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AlertEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AlertEventCreate) createSpec() (*AlertEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AlertEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(alertevent.Table, sqlgraph.NewFieldSpec(alertevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(alertevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(alertevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(alertevent.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.DedupeKey(); ok {
		_spec.SetField(alertevent.FieldDedupeKey, field.TypeString, value)
		_node.DedupeKey = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(alertevent.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(alertevent.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Service(); ok {
		_spec.SetField(alertevent.FieldService, field.TypeString, value)
		_node.Service = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(alertevent.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.EventKind(); ok {
		_spec.SetField(alertevent.FieldEventKind, field.TypeString, value)
		_node.EventKind = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(alertevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(alertevent.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	return _node, _spec
}

// AlertEventCreateBulk is the builder for creating many AlertEvent entities in bulk.
type AlertEventCreateBulk struct {
	config
	err      error
	builders []*AlertEventCreate
}

// Save creates the AlertEvent entities in the database.
func (_c *AlertEventCreateBulk) Save(ctx context.Context) ([]*AlertEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AlertEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AlertEventMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AlertEventCreateBulk) SaveX(ctx context.Context) []*AlertEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
