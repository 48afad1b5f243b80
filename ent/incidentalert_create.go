// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aurora-sre/aurora/ent/incident"
	"github.com/aurora-sre/aurora/ent/incidentalert"
)

// IncidentAlertCreate is the builder for creating a IncidentAlert entity.
type IncidentAlertCreate struct {
	config
	mutation *IncidentAlertMutation
	hooks    []Hook
}

// SetIncidentID sets the "incident_id" field.
func (_c *IncidentAlertCreate) SetIncidentID(v string) *IncidentAlertCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetAlertEventID sets the "alert_event_id" field.
func (_c *IncidentAlertCreate) SetAlertEventID(v string) *IncidentAlertCreate {
	_c.mutation.SetAlertEventID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *IncidentAlertCreate) SetUserID(v string) *IncidentAlertCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCorrelationStrategy sets the "correlation_strategy" field.
func (_c *IncidentAlertCreate) SetCorrelationStrategy(v incidentalert.CorrelationStrategy) *IncidentAlertCreate {
	_c.mutation.SetCorrelationStrategy(v)
	return _c
}

// SetCorrelationScore sets the "correlation_score" field.
func (_c *IncidentAlertCreate) SetCorrelationScore(v float64) *IncidentAlertCreate {
	_c.mutation.SetCorrelationScore(v)
	return _c
}

// SetNillableCorrelationScore sets the "correlation_score" field if the given value is not nil.
func (_c *IncidentAlertCreate) SetNillableCorrelationScore(v *float64) *IncidentAlertCreate {
	if v != nil {
		_c.SetCorrelationScore(*v)
	}
	return _c
}

// SetCorrelationDetails sets the "correlation_details" field.
func (_c *IncidentAlertCreate) SetCorrelationDetails(v map[string]interface{}) *IncidentAlertCreate {
	_c.mutation.SetCorrelationDetails(v)
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *IncidentAlertCreate) SetReceivedAt(v time.Time) *IncidentAlertCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *IncidentAlertCreate) SetNillableReceivedAt(v *time.Time) *IncidentAlertCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IncidentAlertCreate) SetID(v string) *IncidentAlertCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetIncident sets the "incident" edge to the Incident entity.
func (_c *IncidentAlertCreate) SetIncident(v *Incident) *IncidentAlertCreate {
	return _c.SetIncidentID(v.ID)
}

// Mutation returns the IncidentAlertMutation object of the builder.
func (_c *IncidentAlertCreate) Mutation() *IncidentAlertMutation {
	return _c.mutation
}

// Save creates the IncidentAlert in the database.
func (_c *IncidentAlertCreate) Save(ctx context.Context) (*IncidentAlert, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IncidentAlertCreate) SaveX(ctx context.Context) *IncidentAlert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncidentAlertCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncidentAlertCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IncidentAlertCreate) defaults() {
	if _, ok := _c.mutation.CorrelationScore(); !ok {
		v := incidentalert.DefaultCorrelationScore
		_c.mutation.SetCorrelationScore(v)
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := incidentalert.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IncidentAlertCreate) check() error {
	if _, ok := _c.mutation.IncidentID(); !ok {
		return &ValidationError{Name: "incident_id", err: errors.New(`ent: missing required field "IncidentAlert.incident_id"`)}
	}
	if _, ok := _c.mutation.AlertEventID(); !ok {
		return &ValidationError{Name: "alert_event_id", err: errors.New(`ent: missing required field "IncidentAlert.alert_event_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "IncidentAlert.user_id"`)}
	}
	if _, ok := _c.mutation.CorrelationStrategy(); !ok {
		return &ValidationError{Name: "correlation_strategy", err: errors.New(`ent: missing required field "IncidentAlert.correlation_strategy"`)}
	}
	if v, ok := _c.mutation.CorrelationStrategy(); ok {
		if err := incidentalert.CorrelationStrategyValidator(v); err != nil {
			return &ValidationError{Name: "correlation_strategy", err: fmt.Errorf(`ent: validator failed for field "IncidentAlert.correlation_strategy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrelationScore(); !ok {
		return &ValidationError{Name: "correlation_score", err: errors.New(`ent: missing required field "IncidentAlert.correlation_score"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "IncidentAlert.received_at"`)}
	}
	if len(_c.mutation.IncidentIDs()) == 0 {
		return &ValidationError{Name: "incident", err: errors.New(`ent: missing required edge "IncidentAlert.incident"`)}
	}
	return nil
}

func (_c *IncidentAlertCreate) sqlSave(ctx context.Context) (*IncidentAlert, error) {
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
			return nil, fmt.Errorf("unexpected IncidentAlert.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IncidentAlertCreate) createSpec() (*IncidentAlert, *sqlgraph.CreateSpec) {
	var (
		_node = &IncidentAlert{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(incidentalert.Table, sqlgraph.NewFieldSpec(incidentalert.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AlertEventID(); ok {
		_spec.SetField(incidentalert.FieldAlertEventID, field.TypeString, value)
		_node.AlertEventID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(incidentalert.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CorrelationStrategy(); ok {
		_spec.SetField(incidentalert.FieldCorrelationStrategy, field.TypeEnum, value)
		_node.CorrelationStrategy = value
	}
	if value, ok := _c.mutation.CorrelationScore(); ok {
		_spec.SetField(incidentalert.FieldCorrelationScore, field.TypeFloat64, value)
		_node.CorrelationScore = value
	}
	if value, ok := _c.mutation.CorrelationDetails(); ok {
		_spec.SetField(incidentalert.FieldCorrelationDetails, field.TypeJSON, value)
		_node.CorrelationDetails = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(incidentalert.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if nodes := _c.mutation.IncidentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   incidentalert.IncidentTable,
			Columns: []string{incidentalert.IncidentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.IncidentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// IncidentAlertCreateBulk is the builder for creating many IncidentAlert entities in bulk.
type IncidentAlertCreateBulk struct {
	config
	err      error
	builders []*IncidentAlertCreate
}

// Save creates the IncidentAlert entities in the database.
func (_c *IncidentAlertCreateBulk) Save(ctx context.Context) ([]*IncidentAlert, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IncidentAlert, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IncidentAlertMutation)
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
func (_c *IncidentAlertCreateBulk) SaveX(ctx context.Context) []*IncidentAlert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncidentAlertCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncidentAlertCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
