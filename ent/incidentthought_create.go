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
	"github.com/aurora-sre/aurora/ent/incidentthought"
)

// IncidentThoughtCreate is the builder for creating a IncidentThought entity.
type IncidentThoughtCreate struct {
	config
	mutation *IncidentThoughtMutation
	hooks    []Hook
}

// SetIncidentID sets the "incident_id" field.
func (_c *IncidentThoughtCreate) SetIncidentID(v string) *IncidentThoughtCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *IncidentThoughtCreate) SetUserID(v string) *IncidentThoughtCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetThoughtType sets the "thought_type" field.
func (_c *IncidentThoughtCreate) SetThoughtType(v string) *IncidentThoughtCreate {
	_c.mutation.SetThoughtType(v)
	return _c
}

// SetNillableThoughtType sets the "thought_type" field if the given value is not nil.
func (_c *IncidentThoughtCreate) SetNillableThoughtType(v *string) *IncidentThoughtCreate {
	if v != nil {
		_c.SetThoughtType(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *IncidentThoughtCreate) SetContent(v string) *IncidentThoughtCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IncidentThoughtCreate) SetCreatedAt(v time.Time) *IncidentThoughtCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IncidentThoughtCreate) SetNillableCreatedAt(v *time.Time) *IncidentThoughtCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IncidentThoughtCreate) SetID(v string) *IncidentThoughtCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetIncident sets the "incident" edge to the Incident entity.
func (_c *IncidentThoughtCreate) SetIncident(v *Incident) *IncidentThoughtCreate {
	return _c.SetIncidentID(v.ID)
}

// Mutation returns the IncidentThoughtMutation object of the builder.
func (_c *IncidentThoughtCreate) Mutation() *IncidentThoughtMutation {
	return _c.mutation
}

// Save creates the IncidentThought in the database.
func (_c *IncidentThoughtCreate) Save(ctx context.Context) (*IncidentThought, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IncidentThoughtCreate) SaveX(ctx context.Context) *IncidentThought {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncidentThoughtCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncidentThoughtCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IncidentThoughtCreate) defaults() {
	if _, ok := _c.mutation.ThoughtType(); !ok {
		v := incidentthought.DefaultThoughtType
		_c.mutation.SetThoughtType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := incidentthought.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IncidentThoughtCreate) check() error {
	if _, ok := _c.mutation.IncidentID(); !ok {
		return &ValidationError{Name: "incident_id", err: errors.New(`ent: missing required field "IncidentThought.incident_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "IncidentThought.user_id"`)}
	}
	if _, ok := _c.mutation.ThoughtType(); !ok {
		return &ValidationError{Name: "thought_type", err: errors.New(`ent: missing required field "IncidentThought.thought_type"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "IncidentThought.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IncidentThought.created_at"`)}
	}
	if len(_c.mutation.IncidentIDs()) == 0 {
		return &ValidationError{Name: "incident", err: errors.New(`ent: missing required edge "IncidentThought.incident"`)}
	}
	return nil
}

func (_c *IncidentThoughtCreate) sqlSave(ctx context.Context) (*IncidentThought, error) {
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
			return nil, fmt.Errorf("unexpected IncidentThought.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IncidentThoughtCreate) createSpec() (*IncidentThought, *sqlgraph.CreateSpec) {
	var (
		_node = &IncidentThought{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(incidentthought.Table, sqlgraph.NewFieldSpec(incidentthought.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(incidentthought.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ThoughtType(); ok {
		_spec.SetField(incidentthought.FieldThoughtType, field.TypeString, value)
		_node.ThoughtType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(incidentthought.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(incidentthought.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.IncidentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   incidentthought.IncidentTable,
			Columns: []string{incidentthought.IncidentColumn},
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

// IncidentThoughtCreateBulk is the builder for creating many IncidentThought entities in bulk.
type IncidentThoughtCreateBulk struct {
	config
	err      error
	builders []*IncidentThoughtCreate
}

// Save creates the IncidentThought entities in the database.
func (_c *IncidentThoughtCreateBulk) Save(ctx context.Context) ([]*IncidentThought, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IncidentThought, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IncidentThoughtMutation)
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
func (_c *IncidentThoughtCreateBulk) SaveX(ctx context.Context) []*IncidentThought {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncidentThoughtCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncidentThoughtCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
