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
	"github.com/aurora-sre/aurora/ent/incidentcitation"
)

// IncidentCitationCreate is the builder for creating a IncidentCitation entity.
type IncidentCitationCreate struct {
	config
	mutation *IncidentCitationMutation
	hooks    []Hook
}

// SetIncidentID sets the "incident_id" field.
func (_c *IncidentCitationCreate) SetIncidentID(v string) *IncidentCitationCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *IncidentCitationCreate) SetUserID(v string) *IncidentCitationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCitationKey sets the "citation_key" field.
func (_c *IncidentCitationCreate) SetCitationKey(v string) *IncidentCitationCreate {
	_c.mutation.SetCitationKey(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *IncidentCitationCreate) SetToolName(v string) *IncidentCitationCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetCommand sets the "command" field.
func (_c *IncidentCitationCreate) SetCommand(v string) *IncidentCitationCreate {
	_c.mutation.SetCommand(v)
	return _c
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_c *IncidentCitationCreate) SetNillableCommand(v *string) *IncidentCitationCreate {
	if v != nil {
		_c.SetCommand(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *IncidentCitationCreate) SetOutput(v string) *IncidentCitationCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_c *IncidentCitationCreate) SetNillableOutput(v *string) *IncidentCitationCreate {
	if v != nil {
		_c.SetOutput(*v)
	}
	return _c
}

// SetExecutedAt sets the "executed_at" field.
func (_c *IncidentCitationCreate) SetExecutedAt(v time.Time) *IncidentCitationCreate {
	_c.mutation.SetExecutedAt(v)
	return _c
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_c *IncidentCitationCreate) SetNillableExecutedAt(v *time.Time) *IncidentCitationCreate {
	if v != nil {
		_c.SetExecutedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IncidentCitationCreate) SetID(v string) *IncidentCitationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetIncident sets the "incident" edge to the Incident entity.
func (_c *IncidentCitationCreate) SetIncident(v *Incident) *IncidentCitationCreate {
	return _c.SetIncidentID(v.ID)
}

// Mutation returns the IncidentCitationMutation object of the builder.
func (_c *IncidentCitationCreate) Mutation() *IncidentCitationMutation {
	return _c.mutation
}

// Save creates the IncidentCitation in the database.
func (_c *IncidentCitationCreate) Save(ctx context.Context) (*IncidentCitation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IncidentCitationCreate) SaveX(ctx context.Context) *IncidentCitation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncidentCitationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncidentCitationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IncidentCitationCreate) defaults() {
	if _, ok := _c.mutation.ExecutedAt(); !ok {
		v := incidentcitation.DefaultExecutedAt()
		_c.mutation.SetExecutedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IncidentCitationCreate) check() error {
	if _, ok := _c.mutation.IncidentID(); !ok {
		return &ValidationError{Name: "incident_id", err: errors.New(`ent: missing required field "IncidentCitation.incident_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "IncidentCitation.user_id"`)}
	}
	if _, ok := _c.mutation.CitationKey(); !ok {
		return &ValidationError{Name: "citation_key", err: errors.New(`ent: missing required field "IncidentCitation.citation_key"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "IncidentCitation.tool_name"`)}
	}
	if _, ok := _c.mutation.ExecutedAt(); !ok {
		return &ValidationError{Name: "executed_at", err: errors.New(`ent: missing required field "IncidentCitation.executed_at"`)}
	}
	if len(_c.mutation.IncidentIDs()) == 0 {
		return &ValidationError{Name: "incident", err: errors.New(`ent: missing required edge "IncidentCitation.incident"`)}
	}
	return nil
}

func (_c *IncidentCitationCreate) sqlSave(ctx context.Context) (*IncidentCitation, error) {
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
			return nil, fmt.Errorf("unexpected IncidentCitation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IncidentCitationCreate) createSpec() (*IncidentCitation, *sqlgraph.CreateSpec) {
	var (
		_node = &IncidentCitation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(incidentcitation.Table, sqlgraph.NewFieldSpec(incidentcitation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(incidentcitation.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CitationKey(); ok {
		_spec.SetField(incidentcitation.FieldCitationKey, field.TypeString, value)
		_node.CitationKey = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(incidentcitation.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.Command(); ok {
		_spec.SetField(incidentcitation.FieldCommand, field.TypeString, value)
		_node.Command = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(incidentcitation.FieldOutput, field.TypeString, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.ExecutedAt(); ok {
		_spec.SetField(incidentcitation.FieldExecutedAt, field.TypeTime, value)
		_node.ExecutedAt = value
	}
	if nodes := _c.mutation.IncidentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   incidentcitation.IncidentTable,
			Columns: []string{incidentcitation.IncidentColumn},
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

// IncidentCitationCreateBulk is the builder for creating many IncidentCitation entities in bulk.
type IncidentCitationCreateBulk struct {
	config
	err      error
	builders []*IncidentCitationCreate
}

// Save creates the IncidentCitation entities in the database.
func (_c *IncidentCitationCreateBulk) Save(ctx context.Context) ([]*IncidentCitation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IncidentCitation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IncidentCitationMutation)
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
func (_c *IncidentCitationCreateBulk) SaveX(ctx context.Context) []*IncidentCitation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncidentCitationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncidentCitationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
