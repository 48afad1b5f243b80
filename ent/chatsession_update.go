// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/aurora-sre/aurora/ent/chatsession"
	"github.com/aurora-sre/aurora/ent/incident"
	"github.com/aurora-sre/aurora/ent/predicate"
)

// ChatSessionUpdate is the builder for updating ChatSession entities.
type ChatSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ChatSessionMutation
}

// Where appends a list predicates to the ChatSessionUpdate builder.
func (_u *ChatSessionUpdate) Where(ps ...predicate.ChatSession) *ChatSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ChatSessionUpdate) SetTitle(v string) *ChatSessionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableTitle(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ChatSessionUpdate) ClearTitle() *ChatSessionUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetMessages sets the "messages" field.
func (_u *ChatSessionUpdate) SetMessages(v []map[string]interface{}) *ChatSessionUpdate {
	_u.mutation.SetMessages(v)
	return _u
}

// AppendMessages appends value to the "messages" field.
func (_u *ChatSessionUpdate) AppendMessages(v []map[string]interface{}) *ChatSessionUpdate {
	_u.mutation.AppendMessages(v)
	return _u
}

// ClearMessages clears the value of the "messages" field.
func (_u *ChatSessionUpdate) ClearMessages() *ChatSessionUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// SetLlmContextHistory sets the "llm_context_history" field.
func (_u *ChatSessionUpdate) SetLlmContextHistory(v []map[string]interface{}) *ChatSessionUpdate {
	_u.mutation.SetLlmContextHistory(v)
	return _u
}

// AppendLlmContextHistory appends value to the "llm_context_history" field.
func (_u *ChatSessionUpdate) AppendLlmContextHistory(v []map[string]interface{}) *ChatSessionUpdate {
	_u.mutation.AppendLlmContextHistory(v)
	return _u
}

// ClearLlmContextHistory clears the value of the "llm_context_history" field.
func (_u *ChatSessionUpdate) ClearLlmContextHistory() *ChatSessionUpdate {
	_u.mutation.ClearLlmContextHistory()
	return _u
}

// SetUIState sets the "ui_state" field.
func (_u *ChatSessionUpdate) SetUIState(v map[string]interface{}) *ChatSessionUpdate {
	_u.mutation.SetUIState(v)
	return _u
}

// ClearUIState clears the value of the "ui_state" field.
func (_u *ChatSessionUpdate) ClearUIState() *ChatSessionUpdate {
	_u.mutation.ClearUIState()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChatSessionUpdate) SetStatus(v chatsession.Status) *ChatSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableStatus(v *chatsession.Status) *ChatSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *ChatSessionUpdate) SetIncidentID(v string) *ChatSessionUpdate {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableIncidentID(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// ClearIncidentID clears the value of the "incident_id" field.
func (_u *ChatSessionUpdate) ClearIncidentID() *ChatSessionUpdate {
	_u.mutation.ClearIncidentID()
	return _u
}

// SetTriggerSource sets the "trigger_source" field.
func (_u *ChatSessionUpdate) SetTriggerSource(v string) *ChatSessionUpdate {
	_u.mutation.SetTriggerSource(v)
	return _u
}

// SetNillableTriggerSource sets the "trigger_source" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableTriggerSource(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetTriggerSource(*v)
	}
	return _u
}

// ClearTriggerSource clears the value of the "trigger_source" field.
func (_u *ChatSessionUpdate) ClearTriggerSource() *ChatSessionUpdate {
	_u.mutation.ClearTriggerSource()
	return _u
}

// SetTriggerMetadata sets the "trigger_metadata" field.
func (_u *ChatSessionUpdate) SetTriggerMetadata(v map[string]interface{}) *ChatSessionUpdate {
	_u.mutation.SetTriggerMetadata(v)
	return _u
}

// ClearTriggerMetadata clears the value of the "trigger_metadata" field.
func (_u *ChatSessionUpdate) ClearTriggerMetadata() *ChatSessionUpdate {
	_u.mutation.ClearTriggerMetadata()
	return _u
}

// SetPendingContext sets the "pending_context" field.
func (_u *ChatSessionUpdate) SetPendingContext(v []map[string]interface{}) *ChatSessionUpdate {
	_u.mutation.SetPendingContext(v)
	return _u
}

// AppendPendingContext appends value to the "pending_context" field.
func (_u *ChatSessionUpdate) AppendPendingContext(v []map[string]interface{}) *ChatSessionUpdate {
	_u.mutation.AppendPendingContext(v)
	return _u
}

// ClearPendingContext clears the value of the "pending_context" field.
func (_u *ChatSessionUpdate) ClearPendingContext() *ChatSessionUpdate {
	_u.mutation.ClearPendingContext()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ChatSessionUpdate) SetIsActive(v bool) *ChatSessionUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableIsActive(v *bool) *ChatSessionUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetPlaceholderWarning sets the "placeholder_warning" field.
func (_u *ChatSessionUpdate) SetPlaceholderWarning(v bool) *ChatSessionUpdate {
	_u.mutation.SetPlaceholderWarning(v)
	return _u
}

// SetNillablePlaceholderWarning sets the "placeholder_warning" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillablePlaceholderWarning(v *bool) *ChatSessionUpdate {
	if v != nil {
		_u.SetPlaceholderWarning(*v)
	}
	return _u
}

// SetLastToolFailure sets the "last_tool_failure" field.
func (_u *ChatSessionUpdate) SetLastToolFailure(v string) *ChatSessionUpdate {
	_u.mutation.SetLastToolFailure(v)
	return _u
}

// SetNillableLastToolFailure sets the "last_tool_failure" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableLastToolFailure(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetLastToolFailure(*v)
	}
	return _u
}

// ClearLastToolFailure clears the value of the "last_tool_failure" field.
func (_u *ChatSessionUpdate) ClearLastToolFailure() *ChatSessionUpdate {
	_u.mutation.ClearLastToolFailure()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ChatSessionUpdate) SetPodID(v string) *ChatSessionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillablePodID(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ChatSessionUpdate) ClearPodID() *ChatSessionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *ChatSessionUpdate) SetLastInteractionAt(v time.Time) *ChatSessionUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableLastInteractionAt(v *time.Time) *ChatSessionUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *ChatSessionUpdate) ClearLastInteractionAt() *ChatSessionUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatSessionUpdate) SetUpdatedAt(v time.Time) *ChatSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIncident sets the "incident" edge to the Incident entity.
func (_u *ChatSessionUpdate) SetIncident(v *Incident) *ChatSessionUpdate {
	return _u.SetIncidentID(v.ID)
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_u *ChatSessionUpdate) Mutation() *ChatSessionMutation {
	return _u.mutation
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (_u *ChatSessionUpdate) ClearIncident() *ChatSessionUpdate {
	_u.mutation.ClearIncident()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := chatsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChatSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatsession.Table, chatsession.Columns, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(chatsession.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(chatsession.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Messages(); ok {
		_spec.SetField(chatsession.FieldMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldMessages, value)
		})
	}
	if _u.mutation.MessagesCleared() {
		_spec.ClearField(chatsession.FieldMessages, field.TypeJSON)
	}
	if value, ok := _u.mutation.LlmContextHistory(); ok {
		_spec.SetField(chatsession.FieldLlmContextHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLlmContextHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldLlmContextHistory, value)
		})
	}
	if _u.mutation.LlmContextHistoryCleared() {
		_spec.ClearField(chatsession.FieldLlmContextHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.UIState(); ok {
		_spec.SetField(chatsession.FieldUIState, field.TypeJSON, value)
	}
	if _u.mutation.UIStateCleared() {
		_spec.ClearField(chatsession.FieldUIState, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(chatsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerSource(); ok {
		_spec.SetField(chatsession.FieldTriggerSource, field.TypeString, value)
	}
	if _u.mutation.TriggerSourceCleared() {
		_spec.ClearField(chatsession.FieldTriggerSource, field.TypeString)
	}
	if value, ok := _u.mutation.TriggerMetadata(); ok {
		_spec.SetField(chatsession.FieldTriggerMetadata, field.TypeJSON, value)
	}
	if _u.mutation.TriggerMetadataCleared() {
		_spec.ClearField(chatsession.FieldTriggerMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.PendingContext(); ok {
		_spec.SetField(chatsession.FieldPendingContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPendingContext(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldPendingContext, value)
		})
	}
	if _u.mutation.PendingContextCleared() {
		_spec.ClearField(chatsession.FieldPendingContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(chatsession.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PlaceholderWarning(); ok {
		_spec.SetField(chatsession.FieldPlaceholderWarning, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastToolFailure(); ok {
		_spec.SetField(chatsession.FieldLastToolFailure, field.TypeString, value)
	}
	if _u.mutation.LastToolFailureCleared() {
		_spec.ClearField(chatsession.FieldLastToolFailure, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(chatsession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(chatsession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(chatsession.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(chatsession.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IncidentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IncidentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatSessionUpdateOne is the builder for updating a single ChatSession entity.
type ChatSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatSessionMutation
}

// SetTitle sets the "title" field.
func (_u *ChatSessionUpdateOne) SetTitle(v string) *ChatSessionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableTitle(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ChatSessionUpdateOne) ClearTitle() *ChatSessionUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetMessages sets the "messages" field.
func (_u *ChatSessionUpdateOne) SetMessages(v []map[string]interface{}) *ChatSessionUpdateOne {
	_u.mutation.SetMessages(v)
	return _u
}

// AppendMessages appends value to the "messages" field.
func (_u *ChatSessionUpdateOne) AppendMessages(v []map[string]interface{}) *ChatSessionUpdateOne {
	_u.mutation.AppendMessages(v)
	return _u
}

// ClearMessages clears the value of the "messages" field.
func (_u *ChatSessionUpdateOne) ClearMessages() *ChatSessionUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// SetLlmContextHistory sets the "llm_context_history" field.
func (_u *ChatSessionUpdateOne) SetLlmContextHistory(v []map[string]interface{}) *ChatSessionUpdateOne {
	_u.mutation.SetLlmContextHistory(v)
	return _u
}

// AppendLlmContextHistory appends value to the "llm_context_history" field.
func (_u *ChatSessionUpdateOne) AppendLlmContextHistory(v []map[string]interface{}) *ChatSessionUpdateOne {
	_u.mutation.AppendLlmContextHistory(v)
	return _u
}

// ClearLlmContextHistory clears the value of the "llm_context_history" field.
func (_u *ChatSessionUpdateOne) ClearLlmContextHistory() *ChatSessionUpdateOne {
	_u.mutation.ClearLlmContextHistory()
	return _u
}

// SetUIState sets the "ui_state" field.
func (_u *ChatSessionUpdateOne) SetUIState(v map[string]interface{}) *ChatSessionUpdateOne {
	_u.mutation.SetUIState(v)
	return _u
}

// ClearUIState clears the value of the "ui_state" field.
func (_u *ChatSessionUpdateOne) ClearUIState() *ChatSessionUpdateOne {
	_u.mutation.ClearUIState()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChatSessionUpdateOne) SetStatus(v chatsession.Status) *ChatSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableStatus(v *chatsession.Status) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *ChatSessionUpdateOne) SetIncidentID(v string) *ChatSessionUpdateOne {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableIncidentID(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// ClearIncidentID clears the value of the "incident_id" field.
func (_u *ChatSessionUpdateOne) ClearIncidentID() *ChatSessionUpdateOne {
	_u.mutation.ClearIncidentID()
	return _u
}

// SetTriggerSource sets the "trigger_source" field.
func (_u *ChatSessionUpdateOne) SetTriggerSource(v string) *ChatSessionUpdateOne {
	_u.mutation.SetTriggerSource(v)
	return _u
}

// SetNillableTriggerSource sets the "trigger_source" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableTriggerSource(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetTriggerSource(*v)
	}
	return _u
}

// ClearTriggerSource clears the value of the "trigger_source" field.
func (_u *ChatSessionUpdateOne) ClearTriggerSource() *ChatSessionUpdateOne {
	_u.mutation.ClearTriggerSource()
	return _u
}

// SetTriggerMetadata sets the "trigger_metadata" field.
func (_u *ChatSessionUpdateOne) SetTriggerMetadata(v map[string]interface{}) *ChatSessionUpdateOne {
	_u.mutation.SetTriggerMetadata(v)
	return _u
}

// ClearTriggerMetadata clears the value of the "trigger_metadata" field.
func (_u *ChatSessionUpdateOne) ClearTriggerMetadata() *ChatSessionUpdateOne {
	_u.mutation.ClearTriggerMetadata()
	return _u
}

// SetPendingContext sets the "pending_context" field.
func (_u *ChatSessionUpdateOne) SetPendingContext(v []map[string]interface{}) *ChatSessionUpdateOne {
	_u.mutation.SetPendingContext(v)
	return _u
}

// AppendPendingContext appends value to the "pending_context" field.
func (_u *ChatSessionUpdateOne) AppendPendingContext(v []map[string]interface{}) *ChatSessionUpdateOne {
	_u.mutation.AppendPendingContext(v)
	return _u
}

// ClearPendingContext clears the value of the "pending_context" field.
func (_u *ChatSessionUpdateOne) ClearPendingContext() *ChatSessionUpdateOne {
	_u.mutation.ClearPendingContext()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ChatSessionUpdateOne) SetIsActive(v bool) *ChatSessionUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableIsActive(v *bool) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetPlaceholderWarning sets the "placeholder_warning" field.
func (_u *ChatSessionUpdateOne) SetPlaceholderWarning(v bool) *ChatSessionUpdateOne {
	_u.mutation.SetPlaceholderWarning(v)
	return _u
}

// SetNillablePlaceholderWarning sets the "placeholder_warning" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillablePlaceholderWarning(v *bool) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetPlaceholderWarning(*v)
	}
	return _u
}

// SetLastToolFailure sets the "last_tool_failure" field.
func (_u *ChatSessionUpdateOne) SetLastToolFailure(v string) *ChatSessionUpdateOne {
	_u.mutation.SetLastToolFailure(v)
	return _u
}

// SetNillableLastToolFailure sets the "last_tool_failure" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableLastToolFailure(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetLastToolFailure(*v)
	}
	return _u
}

// ClearLastToolFailure clears the value of the "last_tool_failure" field.
func (_u *ChatSessionUpdateOne) ClearLastToolFailure() *ChatSessionUpdateOne {
	_u.mutation.ClearLastToolFailure()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ChatSessionUpdateOne) SetPodID(v string) *ChatSessionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillablePodID(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ChatSessionUpdateOne) ClearPodID() *ChatSessionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *ChatSessionUpdateOne) SetLastInteractionAt(v time.Time) *ChatSessionUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableLastInteractionAt(v *time.Time) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *ChatSessionUpdateOne) ClearLastInteractionAt() *ChatSessionUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatSessionUpdateOne) SetUpdatedAt(v time.Time) *ChatSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIncident sets the "incident" edge to the Incident entity.
func (_u *ChatSessionUpdateOne) SetIncident(v *Incident) *ChatSessionUpdateOne {
	return _u.SetIncidentID(v.ID)
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_u *ChatSessionUpdateOne) Mutation() *ChatSessionMutation {
	return _u.mutation
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (_u *ChatSessionUpdateOne) ClearIncident() *ChatSessionUpdateOne {
	_u.mutation.ClearIncident()
	return _u
}

// Where appends a list predicates to the ChatSessionUpdate builder.
func (_u *ChatSessionUpdateOne) Where(ps ...predicate.ChatSession) *ChatSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatSessionUpdateOne) Select(field string, fields ...string) *ChatSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatSession entity.
func (_u *ChatSessionUpdateOne) Save(ctx context.Context) (*ChatSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSessionUpdateOne) SaveX(ctx context.Context) *ChatSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := chatsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChatSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatSessionUpdateOne) sqlSave(ctx context.Context) (_node *ChatSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatsession.Table, chatsession.Columns, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatsession.FieldID)
		for _, f := range fields {
			if !chatsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatsession.FieldID {
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
		_spec.SetField(chatsession.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(chatsession.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Messages(); ok {
		_spec.SetField(chatsession.FieldMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldMessages, value)
		})
	}
	if _u.mutation.MessagesCleared() {
		_spec.ClearField(chatsession.FieldMessages, field.TypeJSON)
	}
	if value, ok := _u.mutation.LlmContextHistory(); ok {
		_spec.SetField(chatsession.FieldLlmContextHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLlmContextHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldLlmContextHistory, value)
		})
	}
	if _u.mutation.LlmContextHistoryCleared() {
		_spec.ClearField(chatsession.FieldLlmContextHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.UIState(); ok {
		_spec.SetField(chatsession.FieldUIState, field.TypeJSON, value)
	}
	if _u.mutation.UIStateCleared() {
		_spec.ClearField(chatsession.FieldUIState, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(chatsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerSource(); ok {
		_spec.SetField(chatsession.FieldTriggerSource, field.TypeString, value)
	}
	if _u.mutation.TriggerSourceCleared() {
		_spec.ClearField(chatsession.FieldTriggerSource, field.TypeString)
	}
	if value, ok := _u.mutation.TriggerMetadata(); ok {
		_spec.SetField(chatsession.FieldTriggerMetadata, field.TypeJSON, value)
	}
	if _u.mutation.TriggerMetadataCleared() {
		_spec.ClearField(chatsession.FieldTriggerMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.PendingContext(); ok {
		_spec.SetField(chatsession.FieldPendingContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPendingContext(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldPendingContext, value)
		})
	}
	if _u.mutation.PendingContextCleared() {
		_spec.ClearField(chatsession.FieldPendingContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(chatsession.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PlaceholderWarning(); ok {
		_spec.SetField(chatsession.FieldPlaceholderWarning, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastToolFailure(); ok {
		_spec.SetField(chatsession.FieldLastToolFailure, field.TypeString, value)
	}
	if _u.mutation.LastToolFailureCleared() {
		_spec.ClearField(chatsession.FieldLastToolFailure, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(chatsession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(chatsession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(chatsession.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(chatsession.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IncidentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IncidentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ChatSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
