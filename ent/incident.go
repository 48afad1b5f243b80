// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aurora-sre/aurora/ent/incident"
)

// Incident is the model entity for the Incident schema.
type Incident struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Tenant owner — every query is RLS-filtered on this
	UserID string `json:"user_id,omitempty"`
	// Monitoring source of the primary alert (pagerduty, grafana, ...)
	SourceType string `json:"source_type,omitempty"`
	// External id of the primary alert
	SourceAlertID string `json:"source_alert_id,omitempty"`
	// Status holds the value of the "status" field.
	Status incident.Status `json:"status,omitempty"`
	// RCA agent lifecycle for this incident
	AuroraStatus incident.AuroraStatus `json:"aurora_status,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity string `json:"severity,omitempty"`
	// AlertTitle holds the value of the "alert_title" field.
	AlertTitle string `json:"alert_title,omitempty"`
	// AlertService holds the value of the "alert_service" field.
	AlertService string `json:"alert_service,omitempty"`
	// Set of service names touched by correlated alerts
	AffectedServices []string `json:"affected_services,omitempty"`
	// CorrelatedAlertCount holds the value of the "correlated_alert_count" field.
	CorrelatedAlertCount int `json:"correlated_alert_count,omitempty"`
	// Model-generated incident summary; cleared on merge
	AuroraSummary *string `json:"aurora_summary,omitempty"`
	// Primary RCA chat session
	AuroraChatSessionID *string `json:"aurora_chat_session_id,omitempty"`
	// ActiveTab holds the value of the "active_tab" field.
	ActiveTab *string `json:"active_tab,omitempty"`
	// Provider-specific metadata; customFields.runbook_link lives here
	AlertMetadata map[string]interface{} `json:"alert_metadata,omitempty"`
	// Self-reference set by the manual merge operation
	MergedIntoIncidentID *string `json:"merged_into_incident_id,omitempty"`
	// For Slack threading
	SlackMessageTs *string `json:"slack_message_ts,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IncidentQuery when eager-loading is set.
	Edges        IncidentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IncidentEdges holds the relations/edges for other nodes in the graph.
type IncidentEdges struct {
	// Alerts holds the value of the alerts edge.
	Alerts []*IncidentAlert `json:"alerts,omitempty"`
	// Thoughts holds the value of the thoughts edge.
	Thoughts []*IncidentThought `json:"thoughts,omitempty"`
	// Citations holds the value of the citations edge.
	Citations []*IncidentCitation `json:"citations,omitempty"`
	// Suggestions holds the value of the suggestions edge.
	Suggestions []*IncidentSuggestion `json:"suggestions,omitempty"`
	// ChatSessions holds the value of the chat_sessions edge.
	ChatSessions []*ChatSession `json:"chat_sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// AlertsOrErr returns the Alerts value or an error if the edge
// was not loaded in eager-loading.
func (e IncidentEdges) AlertsOrErr() ([]*IncidentAlert, error) {
	if e.loadedTypes[0] {
		return e.Alerts, nil
	}
	return nil, &NotLoadedError{edge: "alerts"}
}

// ThoughtsOrErr returns the Thoughts value or an error if the edge
// was not loaded in eager-loading.
func (e IncidentEdges) ThoughtsOrErr() ([]*IncidentThought, error) {
	if e.loadedTypes[1] {
		return e.Thoughts, nil
	}
	return nil, &NotLoadedError{edge: "thoughts"}
}

// CitationsOrErr returns the Citations value or an error if the edge
// was not loaded in eager-loading.
func (e IncidentEdges) CitationsOrErr() ([]*IncidentCitation, error) {
	if e.loadedTypes[2] {
		return e.Citations, nil
	}
	return nil, &NotLoadedError{edge: "citations"}
}

// SuggestionsOrErr returns the Suggestions value or an error if the edge
// was not loaded in eager-loading.
func (e IncidentEdges) SuggestionsOrErr() ([]*IncidentSuggestion, error) {
	if e.loadedTypes[3] {
		return e.Suggestions, nil
	}
	return nil, &NotLoadedError{edge: "suggestions"}
}

// ChatSessionsOrErr returns the ChatSessions value or an error if the edge
// was not loaded in eager-loading.
func (e IncidentEdges) ChatSessionsOrErr() ([]*ChatSession, error) {
	if e.loadedTypes[4] {
		return e.ChatSessions, nil
	}
	return nil, &NotLoadedError{edge: "chat_sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Incident) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case incident.FieldAffectedServices, incident.FieldAlertMetadata:
			values[i] = new([]byte)
		case incident.FieldCorrelatedAlertCount:
			values[i] = new(sql.NullInt64)
		case incident.FieldID, incident.FieldUserID, incident.FieldSourceType, incident.FieldSourceAlertID, incident.FieldStatus, incident.FieldAuroraStatus, incident.FieldSeverity, incident.FieldAlertTitle, incident.FieldAlertService, incident.FieldAuroraSummary, incident.FieldAuroraChatSessionID, incident.FieldActiveTab, incident.FieldMergedIntoIncidentID, incident.FieldSlackMessageTs:
			values[i] = new(sql.NullString)
		case incident.FieldStartedAt, incident.FieldCreatedAt, incident.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Incident fields.
func (_m *Incident) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case incident.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case incident.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case incident.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = value.String
			}
		case incident.FieldSourceAlertID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_alert_id", values[i])
			} else if value.Valid {
				_m.SourceAlertID = value.String
			}
		case incident.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = incident.Status(value.String)
			}
		case incident.FieldAuroraStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field aurora_status", values[i])
			} else if value.Valid {
				_m.AuroraStatus = incident.AuroraStatus(value.String)
			}
		case incident.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = value.String
			}
		case incident.FieldAlertTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_title", values[i])
			} else if value.Valid {
				_m.AlertTitle = value.String
			}
		case incident.FieldAlertService:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_service", values[i])
			} else if value.Valid {
				_m.AlertService = value.String
			}
		case incident.FieldAffectedServices:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field affected_services", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AffectedServices); err != nil {
					return fmt.Errorf("unmarshal field affected_services: %w", err)
				}
			}
		case incident.FieldCorrelatedAlertCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correlated_alert_count", values[i])
			} else if value.Valid {
				_m.CorrelatedAlertCount = int(value.Int64)
			}
		case incident.FieldAuroraSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field aurora_summary", values[i])
			} else if value.Valid {
				_m.AuroraSummary = new(string)
				*_m.AuroraSummary = value.String
			}
		case incident.FieldAuroraChatSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field aurora_chat_session_id", values[i])
			} else if value.Valid {
				_m.AuroraChatSessionID = new(string)
				*_m.AuroraChatSessionID = value.String
			}
		case incident.FieldActiveTab:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field active_tab", values[i])
			} else if value.Valid {
				_m.ActiveTab = new(string)
				*_m.ActiveTab = value.String
			}
		case incident.FieldAlertMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field alert_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AlertMetadata); err != nil {
					return fmt.Errorf("unmarshal field alert_metadata: %w", err)
				}
			}
		case incident.FieldMergedIntoIncidentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field merged_into_incident_id", values[i])
			} else if value.Valid {
				_m.MergedIntoIncidentID = new(string)
				*_m.MergedIntoIncidentID = value.String
			}
		case incident.FieldSlackMessageTs:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slack_message_ts", values[i])
			} else if value.Valid {
				_m.SlackMessageTs = new(string)
				*_m.SlackMessageTs = value.String
			}
		case incident.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case incident.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case incident.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Incident.
// This includes values selected through modifiers, order, etc.
func (_m *Incident) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAlerts queries the "alerts" edge of the Incident entity.
func (_m *Incident) QueryAlerts() *IncidentAlertQuery {
	return NewIncidentClient(_m.config).QueryAlerts(_m)
}

// QueryThoughts queries the "thoughts" edge of the Incident entity.
func (_m *Incident) QueryThoughts() *IncidentThoughtQuery {
	return NewIncidentClient(_m.config).QueryThoughts(_m)
}

// QueryCitations queries the "citations" edge of the Incident entity.
func (_m *Incident) QueryCitations() *IncidentCitationQuery {
	return NewIncidentClient(_m.config).QueryCitations(_m)
}

// QuerySuggestions queries the "suggestions" edge of the Incident entity.
func (_m *Incident) QuerySuggestions() *IncidentSuggestionQuery {
	return NewIncidentClient(_m.config).QuerySuggestions(_m)
}

// QueryChatSessions queries the "chat_sessions" edge of the Incident entity.
func (_m *Incident) QueryChatSessions() *ChatSessionQuery {
	return NewIncidentClient(_m.config).QueryChatSessions(_m)
}

// Update returns a builder for updating this Incident.
// Note that you need to call Incident.Unwrap() before calling this method if this Incident
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Incident) Update() *IncidentUpdateOne {
	return NewIncidentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Incident entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Incident) Unwrap() *Incident {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Incident is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Incident) String() string {
	var builder strings.Builder
	builder.WriteString("Incident(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(_m.SourceType)
	builder.WriteString(", ")
	builder.WriteString("source_alert_id=")
	builder.WriteString(_m.SourceAlertID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("aurora_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.AuroraStatus))
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(_m.Severity)
	builder.WriteString(", ")
	builder.WriteString("alert_title=")
	builder.WriteString(_m.AlertTitle)
	builder.WriteString(", ")
	builder.WriteString("alert_service=")
	builder.WriteString(_m.AlertService)
	builder.WriteString(", ")
	builder.WriteString("affected_services=")
	builder.WriteString(fmt.Sprintf("%v", _m.AffectedServices))
	builder.WriteString(", ")
	builder.WriteString("correlated_alert_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrelatedAlertCount))
	builder.WriteString(", ")
	if v := _m.AuroraSummary; v != nil {
		builder.WriteString("aurora_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AuroraChatSessionID; v != nil {
		builder.WriteString("aurora_chat_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ActiveTab; v != nil {
		builder.WriteString("active_tab=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("alert_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.AlertMetadata))
	builder.WriteString(", ")
	if v := _m.MergedIntoIncidentID; v != nil {
		builder.WriteString("merged_into_incident_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SlackMessageTs; v != nil {
		builder.WriteString("slack_message_ts=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Incidents is a parsable slice of Incident.
type Incidents []*Incident
