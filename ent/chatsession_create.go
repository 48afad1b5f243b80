// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aurora-sre/aurora/ent/chatsession"
	"github.com/aurora-sre/aurora/ent/incident"
)

// ChatSessionCreate is the builder for creating a ChatSession entity.
type ChatSessionCreate struct {
	config
	mutation *ChatSessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ChatSessionCreate) SetUserID(v string) *ChatSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ChatSessionCreate) SetTitle(v string) *ChatSessionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableTitle(v *string) *ChatSessionCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetMessages sets the "messages" field.
func (_c *ChatSessionCreate) SetMessages(v []map[string]interface{}) *ChatSessionCreate {
	_c.mutation.SetMessages(v)
	return _c
}

// SetLlmContextHistory sets the "llm_context_history" field.
func (_c *ChatSessionCreate) SetLlmContextHistory(v []map[string]interface{}) *ChatSessionCreate {
	_c.mutation.SetLlmContextHistory(v)
	return _c
}

// SetUIState sets the "ui_state" field.
func (_c *ChatSessionCreate) SetUIState(v map[string]interface{}) *ChatSessionCreate {
	_c.mutation.SetUIState(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ChatSessionCreate) SetStatus(v chatsession.Status) *ChatSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableStatus(v *chatsession.Status) *ChatSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIncidentID sets the "incident_id" field.
func (_c *ChatSessionCreate) SetIncidentID(v string) *ChatSessionCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableIncidentID(v *string) *ChatSessionCreate {
	if v != nil {
		_c.SetIncidentID(*v)
	}
	return _c
}

// SetTriggerSource sets the "trigger_source" field.
func (_c *ChatSessionCreate) SetTriggerSource(v string) *ChatSessionCreate {
	_c.mutation.SetTriggerSource(v)
	return _c
}

// SetNillableTriggerSource sets the "trigger_source" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableTriggerSource(v *string) *ChatSessionCreate {
	if v != nil {
		_c.SetTriggerSource(*v)
	}
	return _c
}

// SetTriggerMetadata sets the "trigger_metadata" field.
func (_c *ChatSessionCreate) SetTriggerMetadata(v map[string]interface{}) *ChatSessionCreate {
	_c.mutation.SetTriggerMetadata(v)
	return _c
}

// SetPendingContext sets the "pending_context" field.
func (_c *ChatSessionCreate) SetPendingContext(v []map[string]interface{}) *ChatSessionCreate {
	_c.mutation.SetPendingContext(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ChatSessionCreate) SetIsActive(v bool) *ChatSessionCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableIsActive(v *bool) *ChatSessionCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetPlaceholderWarning sets the "placeholder_warning" field.
func (_c *ChatSessionCreate) SetPlaceholderWarning(v bool) *ChatSessionCreate {
	_c.mutation.SetPlaceholderWarning(v)
	return _c
}

// SetNillablePlaceholderWarning sets the "placeholder_warning" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillablePlaceholderWarning(v *bool) *ChatSessionCreate {
	if v != nil {
		_c.SetPlaceholderWarning(*v)
	}
	return _c
}

// SetLastToolFailure sets the "last_tool_failure" field.
func (_c *ChatSessionCreate) SetLastToolFailure(v string) *ChatSessionCreate {
	_c.mutation.SetLastToolFailure(v)
	return _c
}

// SetNillableLastToolFailure sets the "last_tool_failure" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableLastToolFailure(v *string) *ChatSessionCreate {
	if v != nil {
		_c.SetLastToolFailure(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *ChatSessionCreate) SetPodID(v string) *ChatSessionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillablePodID(v *string) *ChatSessionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *ChatSessionCreate) SetLastInteractionAt(v time.Time) *ChatSessionCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableLastInteractionAt(v *time.Time) *ChatSessionCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChatSessionCreate) SetCreatedAt(v time.Time) *ChatSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableCreatedAt(v *time.Time) *ChatSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChatSessionCreate) SetUpdatedAt(v time.Time) *ChatSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableUpdatedAt(v *time.Time) *ChatSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChatSessionCreate) SetID(v string) *ChatSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetIncident sets the "incident" edge to the Incident entity.
func (_c *ChatSessionCreate) SetIncident(v *Incident) *ChatSessionCreate {
	return _c.SetIncidentID(v.ID)
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_c *ChatSessionCreate) Mutation() *ChatSessionMutation {
	return _c.mutation
}

// Save creates the ChatSession in the database.
func (_c *ChatSessionCreate) Save(ctx context.Context) (*ChatSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatSessionCreate) SaveX(ctx context.Context) *ChatSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := chatsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := chatsession.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.PlaceholderWarning(); !ok {
		v := chatsession.DefaultPlaceholderWarning
		_c.mutation.SetPlaceholderWarning(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chatsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := chatsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatSessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ChatSession.user_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ChatSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := chatsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChatSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "ChatSession.is_active"`)}
	}
	if _, ok := _c.mutation.PlaceholderWarning(); !ok {
		return &ValidationError{Name: "placeholder_warning", err: errors.New(`ent: missing required field "ChatSession.placeholder_warning"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChatSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ChatSession.updated_at"`)}
	}
	return nil
}

func (_c *ChatSessionCreate) sqlSave(ctx context.Context) (*ChatSession, error) {
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
			return nil, fmt.Errorf("unexpected ChatSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatSessionCreate) createSpec() (*ChatSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatsession.Table, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(chatsession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(chatsession.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Messages(); ok {
		_spec.SetField(chatsession.FieldMessages, field.TypeJSON, value)
		_node.Messages = value
	}
	if value, ok := _c.mutation.LlmContextHistory(); ok {
		_spec.SetField(chatsession.FieldLlmContextHistory, field.TypeJSON, value)
		_node.LlmContextHistory = value
	}
	if value, ok := _c.mutation.UIState(); ok {
		_spec.SetField(chatsession.FieldUIState, field.TypeJSON, value)
		_node.UIState = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(chatsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TriggerSource(); ok {
		_spec.SetField(chatsession.FieldTriggerSource, field.TypeString, value)
		_node.TriggerSource = &value
	}
	if value, ok := _c.mutation.TriggerMetadata(); ok {
		_spec.SetField(chatsession.FieldTriggerMetadata, field.TypeJSON, value)
		_node.TriggerMetadata = value
	}
	if value, ok := _c.mutation.PendingContext(); ok {
		_spec.SetField(chatsession.FieldPendingContext, field.TypeJSON, value)
		_node.PendingContext = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(chatsession.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.PlaceholderWarning(); ok {
		_spec.SetField(chatsession.FieldPlaceholderWarning, field.TypeBool, value)
		_node.PlaceholderWarning = value
	}
	if value, ok := _c.mutation.LastToolFailure(); ok {
		_spec.SetField(chatsession.FieldLastToolFailure, field.TypeString, value)
		_node.LastToolFailure = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(chatsession.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(chatsession.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chatsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(chatsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.IncidentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatsession.IncidentTable,
			Columns: []string{chatsession.IncidentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.IncidentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ChatSessionCreateBulk is the builder for creating many ChatSession entities in bulk.
type ChatSessionCreateBulk struct {
	config
	err      error
	builders []*ChatSessionCreate
}

// Save creates the ChatSession entities in the database.
func (_c *ChatSessionCreateBulk) Save(ctx context.Context) ([]*ChatSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatSessionMutation)
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
func (_c *ChatSessionCreateBulk) SaveX(ctx context.Context) []*ChatSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
