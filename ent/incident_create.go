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
	"github.com/aurora-sre/aurora/ent/incidentalert"
	"github.com/aurora-sre/aurora/ent/incidentcitation"
	"github.com/aurora-sre/aurora/ent/incidentsuggestion"
	"github.com/aurora-sre/aurora/ent/incidentthought"
)

// IncidentCreate is the builder for creating a Incident entity.
type IncidentCreate struct {
	config
	mutation *IncidentMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *IncidentCreate) SetUserID(v string) *IncidentCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *IncidentCreate) SetSourceType(v string) *IncidentCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetSourceAlertID sets the "source_alert_id" field.
func (_c *IncidentCreate) SetSourceAlertID(v string) *IncidentCreate {
	_c.mutation.SetSourceAlertID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *IncidentCreate) SetStatus(v incident.Status) *IncidentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableStatus(v *incident.Status) *IncidentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAuroraStatus sets the "aurora_status" field.
func (_c *IncidentCreate) SetAuroraStatus(v incident.AuroraStatus) *IncidentCreate {
	_c.mutation.SetAuroraStatus(v)
	return _c
}

// SetNillableAuroraStatus sets the "aurora_status" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableAuroraStatus(v *incident.AuroraStatus) *IncidentCreate {
	if v != nil {
		_c.SetAuroraStatus(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *IncidentCreate) SetSeverity(v string) *IncidentCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableSeverity(v *string) *IncidentCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetAlertTitle sets the "alert_title" field.
func (_c *IncidentCreate) SetAlertTitle(v string) *IncidentCreate {
	_c.mutation.SetAlertTitle(v)
	return _c
}

// SetAlertService sets the "alert_service" field.
func (_c *IncidentCreate) SetAlertService(v string) *IncidentCreate {
	_c.mutation.SetAlertService(v)
	return _c
}

// SetNillableAlertService sets the "alert_service" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableAlertService(v *string) *IncidentCreate {
	if v != nil {
		_c.SetAlertService(*v)
	}
	return _c
}

// SetAffectedServices sets the "affected_services" field.
func (_c *IncidentCreate) SetAffectedServices(v []string) *IncidentCreate {
	_c.mutation.SetAffectedServices(v)
	return _c
}

// SetCorrelatedAlertCount sets the "correlated_alert_count" field.
func (_c *IncidentCreate) SetCorrelatedAlertCount(v int) *IncidentCreate {
	_c.mutation.SetCorrelatedAlertCount(v)
	return _c
}

// SetNillableCorrelatedAlertCount sets the "correlated_alert_count" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableCorrelatedAlertCount(v *int) *IncidentCreate {
	if v != nil {
		_c.SetCorrelatedAlertCount(*v)
	}
	return _c
}

// SetAuroraSummary sets the "aurora_summary" field.
func (_c *IncidentCreate) SetAuroraSummary(v string) *IncidentCreate {
	_c.mutation.SetAuroraSummary(v)
	return _c
}

// SetNillableAuroraSummary sets the "aurora_summary" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableAuroraSummary(v *string) *IncidentCreate {
	if v != nil {
		_c.SetAuroraSummary(*v)
	}
	return _c
}

// SetAuroraChatSessionID sets the "aurora_chat_session_id" field.
func (_c *IncidentCreate) SetAuroraChatSessionID(v string) *IncidentCreate {
	_c.mutation.SetAuroraChatSessionID(v)
	return _c
}

// SetNillableAuroraChatSessionID sets the "aurora_chat_session_id" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableAuroraChatSessionID(v *string) *IncidentCreate {
	if v != nil {
		_c.SetAuroraChatSessionID(*v)
	}
	return _c
}

// SetActiveTab sets the "active_tab" field.
func (_c *IncidentCreate) SetActiveTab(v string) *IncidentCreate {
	_c.mutation.SetActiveTab(v)
	return _c
}

// SetNillableActiveTab sets the "active_tab" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableActiveTab(v *string) *IncidentCreate {
	if v != nil {
		_c.SetActiveTab(*v)
	}
	return _c
}

// SetAlertMetadata sets the "alert_metadata" field.
func (_c *IncidentCreate) SetAlertMetadata(v map[string]interface{}) *IncidentCreate {
	_c.mutation.SetAlertMetadata(v)
	return _c
}

// SetMergedIntoIncidentID sets the "merged_into_incident_id" field.
func (_c *IncidentCreate) SetMergedIntoIncidentID(v string) *IncidentCreate {
	_c.mutation.SetMergedIntoIncidentID(v)
	return _c
}

// SetNillableMergedIntoIncidentID sets the "merged_into_incident_id" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableMergedIntoIncidentID(v *string) *IncidentCreate {
	if v != nil {
		_c.SetMergedIntoIncidentID(*v)
	}
	return _c
}

// SetSlackMessageTs sets the "slack_message_ts" field.
func (_c *IncidentCreate) SetSlackMessageTs(v string) *IncidentCreate {
	_c.mutation.SetSlackMessageTs(v)
	return _c
}

// SetNillableSlackMessageTs sets the "slack_message_ts" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableSlackMessageTs(v *string) *IncidentCreate {
	if v != nil {
		_c.SetSlackMessageTs(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *IncidentCreate) SetStartedAt(v time.Time) *IncidentCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableStartedAt(v *time.Time) *IncidentCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IncidentCreate) SetCreatedAt(v time.Time) *IncidentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableCreatedAt(v *time.Time) *IncidentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IncidentCreate) SetUpdatedAt(v time.Time) *IncidentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableUpdatedAt(v *time.Time) *IncidentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IncidentCreate) SetID(v string) *IncidentCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddAlertIDs adds the "alerts" edge to the IncidentAlert entity by IDs.
func (_c *IncidentCreate) AddAlertIDs(ids ...string) *IncidentCreate {
	_c.mutation.AddAlertIDs(ids...)
	return _c
}

// AddAlerts adds the "alerts" edges to the IncidentAlert entity.
func (_c *IncidentCreate) AddAlerts(v ...*IncidentAlert) *IncidentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAlertIDs(ids...)
}

// AddThoughtIDs adds the "thoughts" edge to the IncidentThought entity by IDs.
func (_c *IncidentCreate) AddThoughtIDs(ids ...string) *IncidentCreate {
	_c.mutation.AddThoughtIDs(ids...)
	return _c
}

// AddThoughts adds the "thoughts" edges to the IncidentThought entity.
func (_c *IncidentCreate) AddThoughts(v ...*IncidentThought) *IncidentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddThoughtIDs(ids...)
}

// AddCitationIDs adds the "citations" edge to the IncidentCitation entity by IDs.
func (_c *IncidentCreate) AddCitationIDs(ids ...string) *IncidentCreate {
	_c.mutation.AddCitationIDs(ids...)
	return _c
}

// AddCitations adds the "citations" edges to the IncidentCitation entity.
func (_c *IncidentCreate) AddCitations(v ...*IncidentCitation) *IncidentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCitationIDs(ids...)
}

// AddSuggestionIDs adds the "suggestions" edge to the IncidentSuggestion entity by IDs.
func (_c *IncidentCreate) AddSuggestionIDs(ids ...string) *IncidentCreate {
	_c.mutation.AddSuggestionIDs(ids...)
	return _c
}

// AddSuggestions adds the "suggestions" edges to the IncidentSuggestion entity.
func (_c *IncidentCreate) AddSuggestions(v ...*IncidentSuggestion) *IncidentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSuggestionIDs(ids...)
}

// AddChatSessionIDs adds the "chat_sessions" edge to the ChatSession entity by IDs.
func (_c *IncidentCreate) AddChatSessionIDs(ids ...string) *IncidentCreate {
	_c.mutation.AddChatSessionIDs(ids...)
	return _c
}

// AddChatSessions adds the "chat_sessions" edges to the ChatSession entity.
func (_c *IncidentCreate) AddChatSessions(v ...*ChatSession) *IncidentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChatSessionIDs(ids...)
}

// Mutation returns the IncidentMutation object of the builder.
func (_c *IncidentCreate) Mutation() *IncidentMutation {
	return _c.mutation
}

// Save creates the Incident in the database.
func (_c *IncidentCreate) Save(ctx context.Context) (*Incident, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IncidentCreate) SaveX(ctx context.Context) *Incident {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncidentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncidentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IncidentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := incident.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AuroraStatus(); !ok {
		v := incident.DefaultAuroraStatus
		_c.mutation.SetAuroraStatus(v)
	}
	if _, ok := _c.mutation.Severity(); !ok {
		v := incident.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
	if _, ok := _c.mutation.CorrelatedAlertCount(); !ok {
		v := incident.DefaultCorrelatedAlertCount
		_c.mutation.SetCorrelatedAlertCount(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := incident.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := incident.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := incident.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IncidentCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Incident.user_id"`)}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "Incident.source_type"`)}
	}
	if _, ok := _c.mutation.SourceAlertID(); !ok {
		return &ValidationError{Name: "source_alert_id", err: errors.New(`ent: missing required field "Incident.source_alert_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Incident.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := incident.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Incident.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AuroraStatus(); !ok {
		return &ValidationError{Name: "aurora_status", err: errors.New(`ent: missing required field "Incident.aurora_status"`)}
	}
	if v, ok := _c.mutation.AuroraStatus(); ok {
		if err := incident.AuroraStatusValidator(v); err != nil {
			return &ValidationError{Name: "aurora_status", err: fmt.Errorf(`ent: validator failed for field "Incident.aurora_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "Incident.severity"`)}
	}
	if _, ok := _c.mutation.AlertTitle(); !ok {
		return &ValidationError{Name: "alert_title", err: errors.New(`ent: missing required field "Incident.alert_title"`)}
	}
	if _, ok := _c.mutation.CorrelatedAlertCount(); !ok {
		return &ValidationError{Name: "correlated_alert_count", err: errors.New(`ent: missing required field "Incident.correlated_alert_count"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Incident.started_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Incident.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Incident.updated_at"`)}
	}
	return nil
}

func (_c *IncidentCreate) sqlSave(ctx context.Context) (*Incident, error) {
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
			return nil, fmt.Errorf("unexpected Incident.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IncidentCreate) createSpec() (*Incident, *sqlgraph.CreateSpec) {
	var (
		_node = &Incident{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(incident.Table, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(incident.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(incident.FieldSourceType, field.TypeString, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.SourceAlertID(); ok {
		_spec.SetField(incident.FieldSourceAlertID, field.TypeString, value)
		_node.SourceAlertID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(incident.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AuroraStatus(); ok {
		_spec.SetField(incident.FieldAuroraStatus, field.TypeEnum, value)
		_node.AuroraStatus = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(incident.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.AlertTitle(); ok {
		_spec.SetField(incident.FieldAlertTitle, field.TypeString, value)
		_node.AlertTitle = value
	}
	if value, ok := _c.mutation.AlertService(); ok {
		_spec.SetField(incident.FieldAlertService, field.TypeString, value)
		_node.AlertService = value
	}
	if value, ok := _c.mutation.AffectedServices(); ok {
		_spec.SetField(incident.FieldAffectedServices, field.TypeJSON, value)
		_node.AffectedServices = value
	}
	if value, ok := _c.mutation.CorrelatedAlertCount(); ok {
		_spec.SetField(incident.FieldCorrelatedAlertCount, field.TypeInt, value)
		_node.CorrelatedAlertCount = value
	}
	if value, ok := _c.mutation.AuroraSummary(); ok {
		_spec.SetField(incident.FieldAuroraSummary, field.TypeString, value)
		_node.AuroraSummary = &value
	}
	if value, ok := _c.mutation.AuroraChatSessionID(); ok {
		_spec.SetField(incident.FieldAuroraChatSessionID, field.TypeString, value)
		_node.AuroraChatSessionID = &value
	}
	if value, ok := _c.mutation.ActiveTab(); ok {
		_spec.SetField(incident.FieldActiveTab, field.TypeString, value)
		_node.ActiveTab = &value
	}
	if value, ok := _c.mutation.AlertMetadata(); ok {
		_spec.SetField(incident.FieldAlertMetadata, field.TypeJSON, value)
		_node.AlertMetadata = value
	}
	if value, ok := _c.mutation.MergedIntoIncidentID(); ok {
		_spec.SetField(incident.FieldMergedIntoIncidentID, field.TypeString, value)
		_node.MergedIntoIncidentID = &value
	}
	if value, ok := _c.mutation.SlackMessageTs(); ok {
		_spec.SetField(incident.FieldSlackMessageTs, field.TypeString, value)
		_node.SlackMessageTs = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(incident.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(incident.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(incident.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AlertsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ThoughtsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CitationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SuggestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChatSessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// IncidentCreateBulk is the builder for creating many Incident entities in bulk.
type IncidentCreateBulk struct {
	config
	err      error
	builders []*IncidentCreate
}

// Save creates the Incident entities in the database.
func (_c *IncidentCreateBulk) Save(ctx context.Context) ([]*Incident, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Incident, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IncidentMutation)
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
func (_c *IncidentCreateBulk) SaveX(ctx context.Context) []*Incident {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncidentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncidentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
