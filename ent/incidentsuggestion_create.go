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
	"github.com/aurora-sre/aurora/ent/incidentsuggestion"
)

// IncidentSuggestionCreate is the builder for creating a IncidentSuggestion entity.
type IncidentSuggestionCreate struct {
	config
	mutation *IncidentSuggestionMutation
	hooks    []Hook
}

// SetIncidentID sets the "incident_id" field.
func (_c *IncidentSuggestionCreate) SetIncidentID(v string) *IncidentSuggestionCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *IncidentSuggestionCreate) SetUserID(v string) *IncidentSuggestionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSuggestionType sets the "suggestion_type" field.
func (_c *IncidentSuggestionCreate) SetSuggestionType(v incidentsuggestion.SuggestionType) *IncidentSuggestionCreate {
	_c.mutation.SetSuggestionType(v)
	return _c
}

// SetRisk sets the "risk" field.
func (_c *IncidentSuggestionCreate) SetRisk(v string) *IncidentSuggestionCreate {
	_c.mutation.SetRisk(v)
	return _c
}

// SetNillableRisk sets the "risk" field if the given value is not nil.
func (_c *IncidentSuggestionCreate) SetNillableRisk(v *string) *IncidentSuggestionCreate {
	if v != nil {
		_c.SetRisk(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *IncidentSuggestionCreate) SetTitle(v string) *IncidentSuggestionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *IncidentSuggestionCreate) SetDescription(v string) *IncidentSuggestionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *IncidentSuggestionCreate) SetNillableDescription(v *string) *IncidentSuggestionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCommand sets the "command" field.
func (_c *IncidentSuggestionCreate) SetCommand(v string) *IncidentSuggestionCreate {
	_c.mutation.SetCommand(v)
	return _c
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_c *IncidentSuggestionCreate) SetNillableCommand(v *string) *IncidentSuggestionCreate {
	if v != nil {
		_c.SetCommand(*v)
	}
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *IncidentSuggestionCreate) SetFilePath(v string) *IncidentSuggestionCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_c *IncidentSuggestionCreate) SetNillableFilePath(v *string) *IncidentSuggestionCreate {
	if v != nil {
		_c.SetFilePath(*v)
	}
	return _c
}

// SetOriginalCode sets the "original_code" field.
func (_c *IncidentSuggestionCreate) SetOriginalCode(v string) *IncidentSuggestionCreate {
	_c.mutation.SetOriginalCode(v)
	return _c
}

// SetNillableOriginalCode sets the "original_code" field if the given value is not nil.
func (_c *IncidentSuggestionCreate) SetNillableOriginalCode(v *string) *IncidentSuggestionCreate {
	if v != nil {
		_c.SetOriginalCode(*v)
	}
	return _c
}

// SetSuggestedCode sets the "suggested_code" field.
func (_c *IncidentSuggestionCreate) SetSuggestedCode(v string) *IncidentSuggestionCreate {
	_c.mutation.SetSuggestedCode(v)
	return _c
}

// SetNillableSuggestedCode sets the "suggested_code" field if the given value is not nil.
func (_c *IncidentSuggestionCreate) SetNillableSuggestedCode(v *string) *IncidentSuggestionCreate {
	if v != nil {
		_c.SetSuggestedCode(*v)
	}
	return _c
}

// SetUserEditedCode sets the "user_edited_code" field.
func (_c *IncidentSuggestionCreate) SetUserEditedCode(v string) *IncidentSuggestionCreate {
	_c.mutation.SetUserEditedCode(v)
	return _c
}

// SetNillableUserEditedCode sets the "user_edited_code" field if the given value is not nil.
func (_c *IncidentSuggestionCreate) SetNillableUserEditedCode(v *string) *IncidentSuggestionCreate {
	if v != nil {
		_c.SetUserEditedCode(*v)
	}
	return _c
}

// SetRepo sets the "repo" field.
func (_c *IncidentSuggestionCreate) SetRepo(v string) *IncidentSuggestionCreate {
	_c.mutation.SetRepo(v)
	return _c
}

// SetNillableRepo sets the "repo" field if the given value is not nil.
func (_c *IncidentSuggestionCreate) SetNillableRepo(v *string) *IncidentSuggestionCreate {
	if v != nil {
		_c.SetRepo(*v)
	}
	return _c
}

// SetPrURL sets the "pr_url" field.
func (_c *IncidentSuggestionCreate) SetPrURL(v string) *IncidentSuggestionCreate {
	_c.mutation.SetPrURL(v)
	return _c
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_c *IncidentSuggestionCreate) SetNillablePrURL(v *string) *IncidentSuggestionCreate {
	if v != nil {
		_c.SetPrURL(*v)
	}
	return _c
}

// SetPrNumber sets the "pr_number" field.
func (_c *IncidentSuggestionCreate) SetPrNumber(v int) *IncidentSuggestionCreate {
	_c.mutation.SetPrNumber(v)
	return _c
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_c *IncidentSuggestionCreate) SetNillablePrNumber(v *int) *IncidentSuggestionCreate {
	if v != nil {
		_c.SetPrNumber(*v)
	}
	return _c
}

// SetCreatedBranch sets the "created_branch" field.
func (_c *IncidentSuggestionCreate) SetCreatedBranch(v string) *IncidentSuggestionCreate {
	_c.mutation.SetCreatedBranch(v)
	return _c
}

// SetNillableCreatedBranch sets the "created_branch" field if the given value is not nil.
func (_c *IncidentSuggestionCreate) SetNillableCreatedBranch(v *string) *IncidentSuggestionCreate {
	if v != nil {
		_c.SetCreatedBranch(*v)
	}
	return _c
}

// SetAppliedAt sets the "applied_at" field.
func (_c *IncidentSuggestionCreate) SetAppliedAt(v time.Time) *IncidentSuggestionCreate {
	_c.mutation.SetAppliedAt(v)
	return _c
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_c *IncidentSuggestionCreate) SetNillableAppliedAt(v *time.Time) *IncidentSuggestionCreate {
	if v != nil {
		_c.SetAppliedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IncidentSuggestionCreate) SetCreatedAt(v time.Time) *IncidentSuggestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IncidentSuggestionCreate) SetNillableCreatedAt(v *time.Time) *IncidentSuggestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IncidentSuggestionCreate) SetID(v string) *IncidentSuggestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetIncident sets the "incident" edge to the Incident entity.
func (_c *IncidentSuggestionCreate) SetIncident(v *Incident) *IncidentSuggestionCreate {
	return _c.SetIncidentID(v.ID)
}

// Mutation returns the IncidentSuggestionMutation object of the builder.
func (_c *IncidentSuggestionCreate) Mutation() *IncidentSuggestionMutation {
	return _c.mutation
}

// Save creates the IncidentSuggestion in the database.
func (_c *IncidentSuggestionCreate) Save(ctx context.Context) (*IncidentSuggestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IncidentSuggestionCreate) SaveX(ctx context.Context) *IncidentSuggestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncidentSuggestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncidentSuggestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IncidentSuggestionCreate) defaults() {
	if _, ok := _c.mutation.Risk(); !ok {
		v := incidentsuggestion.DefaultRisk
		_c.mutation.SetRisk(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := incidentsuggestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IncidentSuggestionCreate) check() error {
	if _, ok := _c.mutation.IncidentID(); !ok {
		return &ValidationError{Name: "incident_id", err: errors.New(`ent: missing required field "IncidentSuggestion.incident_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "IncidentSuggestion.user_id"`)}
	}
	if _, ok := _c.mutation.SuggestionType(); !ok {
		return &ValidationError{Name: "suggestion_type", err: errors.New(`ent: missing required field "IncidentSuggestion.suggestion_type"`)}
	}
	if v, ok := _c.mutation.SuggestionType(); ok {
		if err := incidentsuggestion.SuggestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "suggestion_type", err: fmt.Errorf(`ent: validator failed for field "IncidentSuggestion.suggestion_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Risk(); !ok {
		return &ValidationError{Name: "risk", err: errors.New(`ent: missing required field "IncidentSuggestion.risk"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "IncidentSuggestion.title"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IncidentSuggestion.created_at"`)}
	}
	if len(_c.mutation.IncidentIDs()) == 0 {
		return &ValidationError{Name: "incident", err: errors.New(`ent: missing required edge "IncidentSuggestion.incident"`)}
	}
	return nil
}

func (_c *IncidentSuggestionCreate) sqlSave(ctx context.Context) (*IncidentSuggestion, error) {
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
			return nil, fmt.Errorf("unexpected IncidentSuggestion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IncidentSuggestionCreate) createSpec() (*IncidentSuggestion, *sqlgraph.CreateSpec) {
	var (
		_node = &IncidentSuggestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(incidentsuggestion.Table, sqlgraph.NewFieldSpec(incidentsuggestion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(incidentsuggestion.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SuggestionType(); ok {
		_spec.SetField(incidentsuggestion.FieldSuggestionType, field.TypeEnum, value)
		_node.SuggestionType = value
	}
	if value, ok := _c.mutation.Risk(); ok {
		_spec.SetField(incidentsuggestion.FieldRisk, field.TypeString, value)
		_node.Risk = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(incidentsuggestion.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(incidentsuggestion.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Command(); ok {
		_spec.SetField(incidentsuggestion.FieldCommand, field.TypeString, value)
		_node.Command = &value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(incidentsuggestion.FieldFilePath, field.TypeString, value)
		_node.FilePath = &value
	}
	if value, ok := _c.mutation.OriginalCode(); ok {
		_spec.SetField(incidentsuggestion.FieldOriginalCode, field.TypeString, value)
		_node.OriginalCode = &value
	}
	if value, ok := _c.mutation.SuggestedCode(); ok {
		_spec.SetField(incidentsuggestion.FieldSuggestedCode, field.TypeString, value)
		_node.SuggestedCode = &value
	}
	if value, ok := _c.mutation.UserEditedCode(); ok {
		_spec.SetField(incidentsuggestion.FieldUserEditedCode, field.TypeString, value)
		_node.UserEditedCode = &value
	}
	if value, ok := _c.mutation.Repo(); ok {
		_spec.SetField(incidentsuggestion.FieldRepo, field.TypeString, value)
		_node.Repo = &value
	}
	if value, ok := _c.mutation.PrURL(); ok {
		_spec.SetField(incidentsuggestion.FieldPrURL, field.TypeString, value)
		_node.PrURL = &value
	}
	if value, ok := _c.mutation.PrNumber(); ok {
		_spec.SetField(incidentsuggestion.FieldPrNumber, field.TypeInt, value)
		_node.PrNumber = &value
	}
	if value, ok := _c.mutation.CreatedBranch(); ok {
		_spec.SetField(incidentsuggestion.FieldCreatedBranch, field.TypeString, value)
		_node.CreatedBranch = &value
	}
	if value, ok := _c.mutation.AppliedAt(); ok {
		_spec.SetField(incidentsuggestion.FieldAppliedAt, field.TypeTime, value)
		_node.AppliedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(incidentsuggestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.IncidentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   incidentsuggestion.IncidentTable,
			Columns: []string{incidentsuggestion.IncidentColumn},
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

// IncidentSuggestionCreateBulk is the builder for creating many IncidentSuggestion entities in bulk.
type IncidentSuggestionCreateBulk struct {
	config
	err      error
	builders []*IncidentSuggestionCreate
}

// Save creates the IncidentSuggestion entities in the database.
func (_c *IncidentSuggestionCreateBulk) Save(ctx context.Context) ([]*IncidentSuggestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IncidentSuggestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IncidentSuggestionMutation)
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
func (_c *IncidentSuggestionCreateBulk) SaveX(ctx context.Context) []*IncidentSuggestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncidentSuggestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncidentSuggestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
