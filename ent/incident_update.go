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
	"github.com/aurora-sre/aurora/ent/incidentalert"
	"github.com/aurora-sre/aurora/ent/incidentcitation"
	"github.com/aurora-sre/aurora/ent/incidentsuggestion"
	"github.com/aurora-sre/aurora/ent/incidentthought"
	"github.com/aurora-sre/aurora/ent/predicate"
)

// IncidentUpdate is the builder for updating Incident entities.
type IncidentUpdate struct {
	config
	hooks    []Hook
	mutation *IncidentMutation
}

// Where appends a list predicates to the IncidentUpdate builder.
func (_u *IncidentUpdate) Where(ps ...predicate.Incident) *IncidentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *IncidentUpdate) SetStatus(v incident.Status) *IncidentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableStatus(v *incident.Status) *IncidentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAuroraStatus sets the "aurora_status" field.
func (_u *IncidentUpdate) SetAuroraStatus(v incident.AuroraStatus) *IncidentUpdate {
	_u.mutation.SetAuroraStatus(v)
	return _u
}

// SetNillableAuroraStatus sets the "aurora_status" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableAuroraStatus(v *incident.AuroraStatus) *IncidentUpdate {
	if v != nil {
		_u.SetAuroraStatus(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *IncidentUpdate) SetSeverity(v string) *IncidentUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableSeverity(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetAlertTitle sets the "alert_title" field.
func (_u *IncidentUpdate) SetAlertTitle(v string) *IncidentUpdate {
	_u.mutation.SetAlertTitle(v)
	return _u
}

// SetNillableAlertTitle sets the "alert_title" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableAlertTitle(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetAlertTitle(*v)
	}
	return _u
}

// SetAlertService sets the "alert_service" field.
func (_u *IncidentUpdate) SetAlertService(v string) *IncidentUpdate {
	_u.mutation.SetAlertService(v)
	return _u
}

// SetNillableAlertService sets the "alert_service" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableAlertService(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetAlertService(*v)
	}
	return _u
}

// ClearAlertService clears the value of the "alert_service" field.
func (_u *IncidentUpdate) ClearAlertService() *IncidentUpdate {
	_u.mutation.ClearAlertService()
	return _u
}

// SetAffectedServices sets the "affected_services" field.
func (_u *IncidentUpdate) SetAffectedServices(v []string) *IncidentUpdate {
	_u.mutation.SetAffectedServices(v)
	return _u
}

// AppendAffectedServices appends value to the "affected_services" field.
func (_u *IncidentUpdate) AppendAffectedServices(v []string) *IncidentUpdate {
	_u.mutation.AppendAffectedServices(v)
	return _u
}

// ClearAffectedServices clears the value of the "affected_services" field.
func (_u *IncidentUpdate) ClearAffectedServices() *IncidentUpdate {
	_u.mutation.ClearAffectedServices()
	return _u
}

// SetCorrelatedAlertCount sets the "correlated_alert_count" field.
func (_u *IncidentUpdate) SetCorrelatedAlertCount(v int) *IncidentUpdate {
	_u.mutation.ResetCorrelatedAlertCount()
	_u.mutation.SetCorrelatedAlertCount(v)
	return _u
}

// SetNillableCorrelatedAlertCount sets the "correlated_alert_count" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableCorrelatedAlertCount(v *int) *IncidentUpdate {
	if v != nil {
		_u.SetCorrelatedAlertCount(*v)
	}
	return _u
}

// AddCorrelatedAlertCount adds value to the "correlated_alert_count" field.
func (_u *IncidentUpdate) AddCorrelatedAlertCount(v int) *IncidentUpdate {
	_u.mutation.AddCorrelatedAlertCount(v)
	return _u
}

// SetAuroraSummary sets the "aurora_summary" field.
func (_u *IncidentUpdate) SetAuroraSummary(v string) *IncidentUpdate {
	_u.mutation.SetAuroraSummary(v)
	return _u
}

// SetNillableAuroraSummary sets the "aurora_summary" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableAuroraSummary(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetAuroraSummary(*v)
	}
	return _u
}

// ClearAuroraSummary clears the value of the "aurora_summary" field.
func (_u *IncidentUpdate) ClearAuroraSummary() *IncidentUpdate {
	_u.mutation.ClearAuroraSummary()
	return _u
}

// SetAuroraChatSessionID sets the "aurora_chat_session_id" field.
func (_u *IncidentUpdate) SetAuroraChatSessionID(v string) *IncidentUpdate {
	_u.mutation.SetAuroraChatSessionID(v)
	return _u
}

// SetNillableAuroraChatSessionID sets the "aurora_chat_session_id" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableAuroraChatSessionID(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetAuroraChatSessionID(*v)
	}
	return _u
}

// ClearAuroraChatSessionID clears the value of the "aurora_chat_session_id" field.
func (_u *IncidentUpdate) ClearAuroraChatSessionID() *IncidentUpdate {
	_u.mutation.ClearAuroraChatSessionID()
	return _u
}

// SetActiveTab sets the "active_tab" field.
func (_u *IncidentUpdate) SetActiveTab(v string) *IncidentUpdate {
	_u.mutation.SetActiveTab(v)
	return _u
}

// SetNillableActiveTab sets the "active_tab" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableActiveTab(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetActiveTab(*v)
	}
	return _u
}

// ClearActiveTab clears the value of the "active_tab" field.
func (_u *IncidentUpdate) ClearActiveTab() *IncidentUpdate {
	_u.mutation.ClearActiveTab()
	return _u
}

// SetAlertMetadata sets the "alert_metadata" field.
func (_u *IncidentUpdate) SetAlertMetadata(v map[string]interface{}) *IncidentUpdate {
	_u.mutation.SetAlertMetadata(v)
	return _u
}

// ClearAlertMetadata clears the value of the "alert_metadata" field.
func (_u *IncidentUpdate) ClearAlertMetadata() *IncidentUpdate {
	_u.mutation.ClearAlertMetadata()
	return _u
}

// SetMergedIntoIncidentID sets the "merged_into_incident_id" field.
func (_u *IncidentUpdate) SetMergedIntoIncidentID(v string) *IncidentUpdate {
	_u.mutation.SetMergedIntoIncidentID(v)
	return _u
}

// SetNillableMergedIntoIncidentID sets the "merged_into_incident_id" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableMergedIntoIncidentID(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetMergedIntoIncidentID(*v)
	}
	return _u
}

// ClearMergedIntoIncidentID clears the value of the "merged_into_incident_id" field.
func (_u *IncidentUpdate) ClearMergedIntoIncidentID() *IncidentUpdate {
	_u.mutation.ClearMergedIntoIncidentID()
	return _u
}

// SetSlackMessageTs sets the "slack_message_ts" field.
func (_u *IncidentUpdate) SetSlackMessageTs(v string) *IncidentUpdate {
	_u.mutation.SetSlackMessageTs(v)
	return _u
}

// SetNillableSlackMessageTs sets the "slack_message_ts" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableSlackMessageTs(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetSlackMessageTs(*v)
	}
	return _u
}

// ClearSlackMessageTs clears the value of the "slack_message_ts" field.
func (_u *IncidentUpdate) ClearSlackMessageTs() *IncidentUpdate {
	_u.mutation.ClearSlackMessageTs()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *IncidentUpdate) SetStartedAt(v time.Time) *IncidentUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableStartedAt(v *time.Time) *IncidentUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IncidentUpdate) SetUpdatedAt(v time.Time) *IncidentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAlertIDs adds the "alerts" edge to the IncidentAlert entity by IDs.
func (_u *IncidentUpdate) AddAlertIDs(ids ...string) *IncidentUpdate {
	_u.mutation.AddAlertIDs(ids...)
	return _u
}

// AddAlerts adds the "alerts" edges to the IncidentAlert entity.
func (_u *IncidentUpdate) AddAlerts(v ...*IncidentAlert) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertIDs(ids...)
}

// AddThoughtIDs adds the "thoughts" edge to the IncidentThought entity by IDs.
func (_u *IncidentUpdate) AddThoughtIDs(ids ...string) *IncidentUpdate {
	_u.mutation.AddThoughtIDs(ids...)
	return _u
}

// AddThoughts adds the "thoughts" edges to the IncidentThought entity.
func (_u *IncidentUpdate) AddThoughts(v ...*IncidentThought) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddThoughtIDs(ids...)
}

// AddCitationIDs adds the "citations" edge to the IncidentCitation entity by IDs.
func (_u *IncidentUpdate) AddCitationIDs(ids ...string) *IncidentUpdate {
	_u.mutation.AddCitationIDs(ids...)
	return _u
}

// AddCitations adds the "citations" edges to the IncidentCitation entity.
func (_u *IncidentUpdate) AddCitations(v ...*IncidentCitation) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCitationIDs(ids...)
}

// AddSuggestionIDs adds the "suggestions" edge to the IncidentSuggestion entity by IDs.
func (_u *IncidentUpdate) AddSuggestionIDs(ids ...string) *IncidentUpdate {
	_u.mutation.AddSuggestionIDs(ids...)
	return _u
}

// AddSuggestions adds the "suggestions" edges to the IncidentSuggestion entity.
func (_u *IncidentUpdate) AddSuggestions(v ...*IncidentSuggestion) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSuggestionIDs(ids...)
}

// AddChatSessionIDs adds the "chat_sessions" edge to the ChatSession entity by IDs.
func (_u *IncidentUpdate) AddChatSessionIDs(ids ...string) *IncidentUpdate {
	_u.mutation.AddChatSessionIDs(ids...)
	return _u
}

// AddChatSessions adds the "chat_sessions" edges to the ChatSession entity.
func (_u *IncidentUpdate) AddChatSessions(v ...*ChatSession) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatSessionIDs(ids...)
}

// Mutation returns the IncidentMutation object of the builder.
func (_u *IncidentUpdate) Mutation() *IncidentMutation {
	return _u.mutation
}

// ClearAlerts clears all "alerts" edges to the IncidentAlert entity.
func (_u *IncidentUpdate) ClearAlerts() *IncidentUpdate {
	_u.mutation.ClearAlerts()
	return _u
}

// RemoveAlertIDs removes the "alerts" edge to IncidentAlert entities by IDs.
func (_u *IncidentUpdate) RemoveAlertIDs(ids ...string) *IncidentUpdate {
	_u.mutation.RemoveAlertIDs(ids...)
	return _u
}

// RemoveAlerts removes "alerts" edges to IncidentAlert entities.
func (_u *IncidentUpdate) RemoveAlerts(v ...*IncidentAlert) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertIDs(ids...)
}

// ClearThoughts clears all "thoughts" edges to the IncidentThought entity.
func (_u *IncidentUpdate) ClearThoughts() *IncidentUpdate {
	_u.mutation.ClearThoughts()
	return _u
}

// RemoveThoughtIDs removes the "thoughts" edge to IncidentThought entities by IDs.
func (_u *IncidentUpdate) RemoveThoughtIDs(ids ...string) *IncidentUpdate {
	_u.mutation.RemoveThoughtIDs(ids...)
	return _u
}

// RemoveThoughts removes "thoughts" edges to IncidentThought entities.
func (_u *IncidentUpdate) RemoveThoughts(v ...*IncidentThought) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveThoughtIDs(ids...)
}

// ClearCitations clears all "citations" edges to the IncidentCitation entity.
func (_u *IncidentUpdate) ClearCitations() *IncidentUpdate {
	_u.mutation.ClearCitations()
	return _u
}

// RemoveCitationIDs removes the "citations" edge to IncidentCitation entities by IDs.
func (_u *IncidentUpdate) RemoveCitationIDs(ids ...string) *IncidentUpdate {
	_u.mutation.RemoveCitationIDs(ids...)
	return _u
}

// RemoveCitations removes "citations" edges to IncidentCitation entities.
func (_u *IncidentUpdate) RemoveCitations(v ...*IncidentCitation) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCitationIDs(ids...)
}

// ClearSuggestions clears all "suggestions" edges to the IncidentSuggestion entity.
func (_u *IncidentUpdate) ClearSuggestions() *IncidentUpdate {
	_u.mutation.ClearSuggestions()
	return _u
}

// RemoveSuggestionIDs removes the "suggestions" edge to IncidentSuggestion entities by IDs.
func (_u *IncidentUpdate) RemoveSuggestionIDs(ids ...string) *IncidentUpdate {
	_u.mutation.RemoveSuggestionIDs(ids...)
	return _u
}

// RemoveSuggestions removes "suggestions" edges to IncidentSuggestion entities.
func (_u *IncidentUpdate) RemoveSuggestions(v ...*IncidentSuggestion) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSuggestionIDs(ids...)
}

// ClearChatSessions clears all "chat_sessions" edges to the ChatSession entity.
func (_u *IncidentUpdate) ClearChatSessions() *IncidentUpdate {
	_u.mutation.ClearChatSessions()
	return _u
}

// RemoveChatSessionIDs removes the "chat_sessions" edge to ChatSession entities by IDs.
func (_u *IncidentUpdate) RemoveChatSessionIDs(ids ...string) *IncidentUpdate {
	_u.mutation.RemoveChatSessionIDs(ids...)
	return _u
}

// RemoveChatSessions removes "chat_sessions" edges to ChatSession entities.
func (_u *IncidentUpdate) RemoveChatSessions(v ...*ChatSession) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatSessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IncidentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IncidentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IncidentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := incident.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := incident.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Incident.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AuroraStatus(); ok {
		if err := incident.AuroraStatusValidator(v); err != nil {
			return &ValidationError{Name: "aurora_status", err: fmt.Errorf(`ent: validator failed for field "Incident.aurora_status": %w`, err)}
		}
	}
	return nil
}

func (_u *IncidentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incident.Table, incident.Columns, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(incident.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AuroraStatus(); ok {
		_spec.SetField(incident.FieldAuroraStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(incident.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.AlertTitle(); ok {
		_spec.SetField(incident.FieldAlertTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.AlertService(); ok {
		_spec.SetField(incident.FieldAlertService, field.TypeString, value)
	}
	if _u.mutation.AlertServiceCleared() {
		_spec.ClearField(incident.FieldAlertService, field.TypeString)
	}
	if value, ok := _u.mutation.AffectedServices(); ok {
		_spec.SetField(incident.FieldAffectedServices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAffectedServices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, incident.FieldAffectedServices, value)
		})
	}
	if _u.mutation.AffectedServicesCleared() {
		_spec.ClearField(incident.FieldAffectedServices, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrelatedAlertCount(); ok {
		_spec.SetField(incident.FieldCorrelatedAlertCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrelatedAlertCount(); ok {
		_spec.AddField(incident.FieldCorrelatedAlertCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AuroraSummary(); ok {
		_spec.SetField(incident.FieldAuroraSummary, field.TypeString, value)
	}
	if _u.mutation.AuroraSummaryCleared() {
		_spec.ClearField(incident.FieldAuroraSummary, field.TypeString)
	}
	if value, ok := _u.mutation.AuroraChatSessionID(); ok {
		_spec.SetField(incident.FieldAuroraChatSessionID, field.TypeString, value)
	}
	if _u.mutation.AuroraChatSessionIDCleared() {
		_spec.ClearField(incident.FieldAuroraChatSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ActiveTab(); ok {
		_spec.SetField(incident.FieldActiveTab, field.TypeString, value)
	}
	if _u.mutation.ActiveTabCleared() {
		_spec.ClearField(incident.FieldActiveTab, field.TypeString)
	}
	if value, ok := _u.mutation.AlertMetadata(); ok {
		_spec.SetField(incident.FieldAlertMetadata, field.TypeJSON, value)
	}
	if _u.mutation.AlertMetadataCleared() {
		_spec.ClearField(incident.FieldAlertMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.MergedIntoIncidentID(); ok {
		_spec.SetField(incident.FieldMergedIntoIncidentID, field.TypeString, value)
	}
	if _u.mutation.MergedIntoIncidentIDCleared() {
		_spec.ClearField(incident.FieldMergedIntoIncidentID, field.TypeString)
	}
	if value, ok := _u.mutation.SlackMessageTs(); ok {
		_spec.SetField(incident.FieldSlackMessageTs, field.TypeString, value)
	}
	if _u.mutation.SlackMessageTsCleared() {
		_spec.ClearField(incident.FieldSlackMessageTs, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(incident.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(incident.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.AlertsTable,
			Columns: []string{incident.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentalert.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertsIDs(); len(nodes) > 0 && !_u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.AlertsTable,
			Columns: []string{incident.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentalert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.AlertsTable,
			Columns: []string{incident.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentalert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ThoughtsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ThoughtsTable,
			Columns: []string{incident.ThoughtsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentthought.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedThoughtsIDs(); len(nodes) > 0 && !_u.mutation.ThoughtsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ThoughtsTable,
			Columns: []string{incident.ThoughtsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentthought.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ThoughtsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ThoughtsTable,
			Columns: []string{incident.ThoughtsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentthought.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CitationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.CitationsTable,
			Columns: []string{incident.CitationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentcitation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCitationsIDs(); len(nodes) > 0 && !_u.mutation.CitationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.CitationsTable,
			Columns: []string{incident.CitationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentcitation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CitationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.CitationsTable,
			Columns: []string{incident.CitationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentcitation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SuggestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.SuggestionsTable,
			Columns: []string{incident.SuggestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentsuggestion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSuggestionsIDs(); len(nodes) > 0 && !_u.mutation.SuggestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.SuggestionsTable,
			Columns: []string{incident.SuggestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentsuggestion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuggestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.SuggestionsTable,
			Columns: []string{incident.SuggestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentsuggestion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ChatSessionsTable,
			Columns: []string{incident.ChatSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatSessionsIDs(); len(nodes) > 0 && !_u.mutation.ChatSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ChatSessionsTable,
			Columns: []string{incident.ChatSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatSessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ChatSessionsTable,
			Columns: []string{incident.ChatSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IncidentUpdateOne is the builder for updating a single Incident entity.
type IncidentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IncidentMutation
}

// SetStatus sets the "status" field.
func (_u *IncidentUpdateOne) SetStatus(v incident.Status) *IncidentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableStatus(v *incident.Status) *IncidentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAuroraStatus sets the "aurora_status" field.
func (_u *IncidentUpdateOne) SetAuroraStatus(v incident.AuroraStatus) *IncidentUpdateOne {
	_u.mutation.SetAuroraStatus(v)
	return _u
}

// SetNillableAuroraStatus sets the "aurora_status" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableAuroraStatus(v *incident.AuroraStatus) *IncidentUpdateOne {
	if v != nil {
		_u.SetAuroraStatus(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *IncidentUpdateOne) SetSeverity(v string) *IncidentUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableSeverity(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetAlertTitle sets the "alert_title" field.
func (_u *IncidentUpdateOne) SetAlertTitle(v string) *IncidentUpdateOne {
	_u.mutation.SetAlertTitle(v)
	return _u
}

// SetNillableAlertTitle sets the "alert_title" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableAlertTitle(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetAlertTitle(*v)
	}
	return _u
}

// SetAlertService sets the "alert_service" field.
func (_u *IncidentUpdateOne) SetAlertService(v string) *IncidentUpdateOne {
	_u.mutation.SetAlertService(v)
	return _u
}

// SetNillableAlertService sets the "alert_service" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableAlertService(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetAlertService(*v)
	}
	return _u
}

// ClearAlertService clears the value of the "alert_service" field.
func (_u *IncidentUpdateOne) ClearAlertService() *IncidentUpdateOne {
	_u.mutation.ClearAlertService()
	return _u
}

// SetAffectedServices sets the "affected_services" field.
func (_u *IncidentUpdateOne) SetAffectedServices(v []string) *IncidentUpdateOne {
	_u.mutation.SetAffectedServices(v)
	return _u
}

// AppendAffectedServices appends value to the "affected_services" field.
func (_u *IncidentUpdateOne) AppendAffectedServices(v []string) *IncidentUpdateOne {
	_u.mutation.AppendAffectedServices(v)
	return _u
}

// ClearAffectedServices clears the value of the "affected_services" field.
func (_u *IncidentUpdateOne) ClearAffectedServices() *IncidentUpdateOne {
	_u.mutation.ClearAffectedServices()
	return _u
}

// SetCorrelatedAlertCount sets the "correlated_alert_count" field.
func (_u *IncidentUpdateOne) SetCorrelatedAlertCount(v int) *IncidentUpdateOne {
	_u.mutation.ResetCorrelatedAlertCount()
	_u.mutation.SetCorrelatedAlertCount(v)
	return _u
}

// SetNillableCorrelatedAlertCount sets the "correlated_alert_count" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableCorrelatedAlertCount(v *int) *IncidentUpdateOne {
	if v != nil {
		_u.SetCorrelatedAlertCount(*v)
	}
	return _u
}

// AddCorrelatedAlertCount adds value to the "correlated_alert_count" field.
func (_u *IncidentUpdateOne) AddCorrelatedAlertCount(v int) *IncidentUpdateOne {
	_u.mutation.AddCorrelatedAlertCount(v)
	return _u
}

// SetAuroraSummary sets the "aurora_summary" field.
func (_u *IncidentUpdateOne) SetAuroraSummary(v string) *IncidentUpdateOne {
	_u.mutation.SetAuroraSummary(v)
	return _u
}

// SetNillableAuroraSummary sets the "aurora_summary" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableAuroraSummary(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetAuroraSummary(*v)
	}
	return _u
}

// ClearAuroraSummary clears the value of the "aurora_summary" field.
func (_u *IncidentUpdateOne) ClearAuroraSummary() *IncidentUpdateOne {
	_u.mutation.ClearAuroraSummary()
	return _u
}

// SetAuroraChatSessionID sets the "aurora_chat_session_id" field.
func (_u *IncidentUpdateOne) SetAuroraChatSessionID(v string) *IncidentUpdateOne {
	_u.mutation.SetAuroraChatSessionID(v)
	return _u
}

// SetNillableAuroraChatSessionID sets the "aurora_chat_session_id" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableAuroraChatSessionID(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetAuroraChatSessionID(*v)
	}
	return _u
}

// ClearAuroraChatSessionID clears the value of the "aurora_chat_session_id" field.
func (_u *IncidentUpdateOne) ClearAuroraChatSessionID() *IncidentUpdateOne {
	_u.mutation.ClearAuroraChatSessionID()
	return _u
}

// SetActiveTab sets the "active_tab" field.
func (_u *IncidentUpdateOne) SetActiveTab(v string) *IncidentUpdateOne {
	_u.mutation.SetActiveTab(v)
	return _u
}

// SetNillableActiveTab sets the "active_tab" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableActiveTab(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetActiveTab(*v)
	}
	return _u
}

// ClearActiveTab clears the value of the "active_tab" field.
func (_u *IncidentUpdateOne) ClearActiveTab() *IncidentUpdateOne {
	_u.mutation.ClearActiveTab()
	return _u
}

// SetAlertMetadata sets the "alert_metadata" field.
func (_u *IncidentUpdateOne) SetAlertMetadata(v map[string]interface{}) *IncidentUpdateOne {
	_u.mutation.SetAlertMetadata(v)
	return _u
}

// ClearAlertMetadata clears the value of the "alert_metadata" field.
func (_u *IncidentUpdateOne) ClearAlertMetadata() *IncidentUpdateOne {
	_u.mutation.ClearAlertMetadata()
	return _u
}

// SetMergedIntoIncidentID sets the "merged_into_incident_id" field.
func (_u *IncidentUpdateOne) SetMergedIntoIncidentID(v string) *IncidentUpdateOne {
	_u.mutation.SetMergedIntoIncidentID(v)
	return _u
}

// SetNillableMergedIntoIncidentID sets the "merged_into_incident_id" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableMergedIntoIncidentID(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetMergedIntoIncidentID(*v)
	}
	return _u
}

// ClearMergedIntoIncidentID clears the value of the "merged_into_incident_id" field.
func (_u *IncidentUpdateOne) ClearMergedIntoIncidentID() *IncidentUpdateOne {
	_u.mutation.ClearMergedIntoIncidentID()
	return _u
}

// SetSlackMessageTs sets the "slack_message_ts" field.
func (_u *IncidentUpdateOne) SetSlackMessageTs(v string) *IncidentUpdateOne {
	_u.mutation.SetSlackMessageTs(v)
	return _u
}

// SetNillableSlackMessageTs sets the "slack_message_ts" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableSlackMessageTs(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetSlackMessageTs(*v)
	}
	return _u
}

// ClearSlackMessageTs clears the value of the "slack_message_ts" field.
func (_u *IncidentUpdateOne) ClearSlackMessageTs() *IncidentUpdateOne {
	_u.mutation.ClearSlackMessageTs()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *IncidentUpdateOne) SetStartedAt(v time.Time) *IncidentUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableStartedAt(v *time.Time) *IncidentUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IncidentUpdateOne) SetUpdatedAt(v time.Time) *IncidentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAlertIDs adds the "alerts" edge to the IncidentAlert entity by IDs.
func (_u *IncidentUpdateOne) AddAlertIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.AddAlertIDs(ids...)
	return _u
}

// AddAlerts adds the "alerts" edges to the IncidentAlert entity.
func (_u *IncidentUpdateOne) AddAlerts(v ...*IncidentAlert) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertIDs(ids...)
}

// AddThoughtIDs adds the "thoughts" edge to the IncidentThought entity by IDs.
func (_u *IncidentUpdateOne) AddThoughtIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.AddThoughtIDs(ids...)
	return _u
}

// AddThoughts adds the "thoughts" edges to the IncidentThought entity.
func (_u *IncidentUpdateOne) AddThoughts(v ...*IncidentThought) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddThoughtIDs(ids...)
}

// AddCitationIDs adds the "citations" edge to the IncidentCitation entity by IDs.
func (_u *IncidentUpdateOne) AddCitationIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.AddCitationIDs(ids...)
	return _u
}

// AddCitations adds the "citations" edges to the IncidentCitation entity.
func (_u *IncidentUpdateOne) AddCitations(v ...*IncidentCitation) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCitationIDs(ids...)
}

// AddSuggestionIDs adds the "suggestions" edge to the IncidentSuggestion entity by IDs.
func (_u *IncidentUpdateOne) AddSuggestionIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.AddSuggestionIDs(ids...)
	return _u
}

// AddSuggestions adds the "suggestions" edges to the IncidentSuggestion entity.
func (_u *IncidentUpdateOne) AddSuggestions(v ...*IncidentSuggestion) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSuggestionIDs(ids...)
}

// AddChatSessionIDs adds the "chat_sessions" edge to the ChatSession entity by IDs.
func (_u *IncidentUpdateOne) AddChatSessionIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.AddChatSessionIDs(ids...)
	return _u
}

// AddChatSessions adds the "chat_sessions" edges to the ChatSession entity.
func (_u *IncidentUpdateOne) AddChatSessions(v ...*ChatSession) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatSessionIDs(ids...)
}

// Mutation returns the IncidentMutation object of the builder.
func (_u *IncidentUpdateOne) Mutation() *IncidentMutation {
	return _u.mutation
}

// ClearAlerts clears all "alerts" edges to the IncidentAlert entity.
func (_u *IncidentUpdateOne) ClearAlerts() *IncidentUpdateOne {
	_u.mutation.ClearAlerts()
	return _u
}

// RemoveAlertIDs removes the "alerts" edge to IncidentAlert entities by IDs.
func (_u *IncidentUpdateOne) RemoveAlertIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.RemoveAlertIDs(ids...)
	return _u
}

// RemoveAlerts removes "alerts" edges to IncidentAlert entities.
func (_u *IncidentUpdateOne) RemoveAlerts(v ...*IncidentAlert) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertIDs(ids...)
}

// ClearThoughts clears all "thoughts" edges to the IncidentThought entity.
func (_u *IncidentUpdateOne) ClearThoughts() *IncidentUpdateOne {
	_u.mutation.ClearThoughts()
	return _u
}

// RemoveThoughtIDs removes the "thoughts" edge to IncidentThought entities by IDs.
func (_u *IncidentUpdateOne) RemoveThoughtIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.RemoveThoughtIDs(ids...)
	return _u
}

// RemoveThoughts removes "thoughts" edges to IncidentThought entities.
func (_u *IncidentUpdateOne) RemoveThoughts(v ...*IncidentThought) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveThoughtIDs(ids...)
}

// ClearCitations clears all "citations" edges to the IncidentCitation entity.
func (_u *IncidentUpdateOne) ClearCitations() *IncidentUpdateOne {
	_u.mutation.ClearCitations()
	return _u
}

// RemoveCitationIDs removes the "citations" edge to IncidentCitation entities by IDs.
func (_u *IncidentUpdateOne) RemoveCitationIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.RemoveCitationIDs(ids...)
	return _u
}

// RemoveCitations removes "citations" edges to IncidentCitation entities.
func (_u *IncidentUpdateOne) RemoveCitations(v ...*IncidentCitation) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCitationIDs(ids...)
}

// ClearSuggestions clears all "suggestions" edges to the IncidentSuggestion entity.
func (_u *IncidentUpdateOne) ClearSuggestions() *IncidentUpdateOne {
	_u.mutation.ClearSuggestions()
	return _u
}

// RemoveSuggestionIDs removes the "suggestions" edge to IncidentSuggestion entities by IDs.
func (_u *IncidentUpdateOne) RemoveSuggestionIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.RemoveSuggestionIDs(ids...)
	return _u
}

// RemoveSuggestions removes "suggestions" edges to IncidentSuggestion entities.
func (_u *IncidentUpdateOne) RemoveSuggestions(v ...*IncidentSuggestion) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSuggestionIDs(ids...)
}

// ClearChatSessions clears all "chat_sessions" edges to the ChatSession entity.
func (_u *IncidentUpdateOne) ClearChatSessions() *IncidentUpdateOne {
	_u.mutation.ClearChatSessions()
	return _u
}

// RemoveChatSessionIDs removes the "chat_sessions" edge to ChatSession entities by IDs.
func (_u *IncidentUpdateOne) RemoveChatSessionIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.RemoveChatSessionIDs(ids...)
	return _u
}

// RemoveChatSessions removes "chat_sessions" edges to ChatSession entities.
func (_u *IncidentUpdateOne) RemoveChatSessions(v ...*ChatSession) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatSessionIDs(ids...)
}

// Where appends a list predicates to the IncidentUpdate builder.
func (_u *IncidentUpdateOne) Where(ps ...predicate.Incident) *IncidentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IncidentUpdateOne) Select(field string, fields ...string) *IncidentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Incident entity.
func (_u *IncidentUpdateOne) Save(ctx context.Context) (*Incident, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentUpdateOne) SaveX(ctx context.Context) *Incident {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IncidentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IncidentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := incident.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := incident.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Incident.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AuroraStatus(); ok {
		if err := incident.AuroraStatusValidator(v); err != nil {
			return &ValidationError{Name: "aurora_status", err: fmt.Errorf(`ent: validator failed for field "Incident.aurora_status": %w`, err)}
		}
	}
	return nil
}

func (_u *IncidentUpdateOne) sqlSave(ctx context.Context) (_node *Incident, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incident.Table, incident.Columns, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Incident.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, incident.FieldID)
		for _, f := range fields {
			if !incident.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != incident.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(incident.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AuroraStatus(); ok {
		_spec.SetField(incident.FieldAuroraStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(incident.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.AlertTitle(); ok {
		_spec.SetField(incident.FieldAlertTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.AlertService(); ok {
		_spec.SetField(incident.FieldAlertService, field.TypeString, value)
	}
	if _u.mutation.AlertServiceCleared() {
		_spec.ClearField(incident.FieldAlertService, field.TypeString)
	}
	if value, ok := _u.mutation.AffectedServices(); ok {
		_spec.SetField(incident.FieldAffectedServices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAffectedServices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, incident.FieldAffectedServices, value)
		})
	}
	if _u.mutation.AffectedServicesCleared() {
		_spec.ClearField(incident.FieldAffectedServices, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrelatedAlertCount(); ok {
		_spec.SetField(incident.FieldCorrelatedAlertCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrelatedAlertCount(); ok {
		_spec.AddField(incident.FieldCorrelatedAlertCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AuroraSummary(); ok {
		_spec.SetField(incident.FieldAuroraSummary, field.TypeString, value)
	}
	if _u.mutation.AuroraSummaryCleared() {
		_spec.ClearField(incident.FieldAuroraSummary, field.TypeString)
	}
	if value, ok := _u.mutation.AuroraChatSessionID(); ok {
		_spec.SetField(incident.FieldAuroraChatSessionID, field.TypeString, value)
	}
	if _u.mutation.AuroraChatSessionIDCleared() {
		_spec.ClearField(incident.FieldAuroraChatSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ActiveTab(); ok {
		_spec.SetField(incident.FieldActiveTab, field.TypeString, value)
	}
	if _u.mutation.ActiveTabCleared() {
		_spec.ClearField(incident.FieldActiveTab, field.TypeString)
	}
	if value, ok := _u.mutation.AlertMetadata(); ok {
		_spec.SetField(incident.FieldAlertMetadata, field.TypeJSON, value)
	}
	if _u.mutation.AlertMetadataCleared() {
		_spec.ClearField(incident.FieldAlertMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.MergedIntoIncidentID(); ok {
		_spec.SetField(incident.FieldMergedIntoIncidentID, field.TypeString, value)
	}
	if _u.mutation.MergedIntoIncidentIDCleared() {
		_spec.ClearField(incident.FieldMergedIntoIncidentID, field.TypeString)
	}
	if value, ok := _u.mutation.SlackMessageTs(); ok {
		_spec.SetField(incident.FieldSlackMessageTs, field.TypeString, value)
	}
	if _u.mutation.SlackMessageTsCleared() {
		_spec.ClearField(incident.FieldSlackMessageTs, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(incident.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(incident.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.AlertsTable,
			Columns: []string{incident.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentalert.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertsIDs(); len(nodes) > 0 && !_u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.AlertsTable,
			Columns: []string{incident.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentalert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.AlertsTable,
			Columns: []string{incident.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentalert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ThoughtsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ThoughtsTable,
			Columns: []string{incident.ThoughtsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentthought.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedThoughtsIDs(); len(nodes) > 0 && !_u.mutation.ThoughtsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ThoughtsTable,
			Columns: []string{incident.ThoughtsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentthought.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ThoughtsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ThoughtsTable,
			Columns: []string{incident.ThoughtsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentthought.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CitationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.CitationsTable,
			Columns: []string{incident.CitationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentcitation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCitationsIDs(); len(nodes) > 0 && !_u.mutation.CitationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.CitationsTable,
			Columns: []string{incident.CitationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentcitation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CitationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.CitationsTable,
			Columns: []string{incident.CitationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentcitation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SuggestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.SuggestionsTable,
			Columns: []string{incident.SuggestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentsuggestion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSuggestionsIDs(); len(nodes) > 0 && !_u.mutation.SuggestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.SuggestionsTable,
			Columns: []string{incident.SuggestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentsuggestion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuggestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.SuggestionsTable,
			Columns: []string{incident.SuggestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incidentsuggestion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ChatSessionsTable,
			Columns: []string{incident.ChatSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatSessionsIDs(); len(nodes) > 0 && !_u.mutation.ChatSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ChatSessionsTable,
			Columns: []string{incident.ChatSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatSessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ChatSessionsTable,
			Columns: []string{incident.ChatSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Incident{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
