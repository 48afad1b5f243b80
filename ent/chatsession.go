// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aurora-sre/aurora/ent/chatsession"
	"github.com/aurora-sre/aurora/ent/incident"
)

// ChatSession is the model entity for the ChatSession schema.
type ChatSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// UI-shaped projection; assistant entries keep toolCalls[]
	Messages []map[string]interface{} `json:"messages,omitempty"`
	// Model-shaped context; grows monotonically except via compression
	LlmContextHistory []map[string]interface{} `json:"llm_context_history,omitempty"`
	// UIState holds the value of the "ui_state" field.
	UIState map[string]interface{} `json:"ui_state,omitempty"`
	// Status holds the value of the "status" field.
	Status chatsession.Status `json:"status,omitempty"`
	// IncidentID holds the value of the "incident_id" field.
	IncidentID *string `json:"incident_id,omitempty"`
	// Webhook source that auto-created this session (RCA guard key)
	TriggerSource *string `json:"trigger_source,omitempty"`
	// TriggerMetadata holds the value of the "trigger_metadata" field.
	TriggerMetadata map[string]interface{} `json:"trigger_metadata,omitempty"`
	// Context-only notes queued by other workers (merge updates); drained into llm_context_history before the next turn
	PendingContext []map[string]interface{} `json:"pending_context,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Set when the last turn contained placeholder tokens; next system prompt reinforces tool use
	PlaceholderWarning bool `json:"placeholder_warning,omitempty"`
	// LastToolFailure holds the value of the "last_tool_failure" field.
	LastToolFailure *string `json:"last_tool_failure,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// LastInteractionAt holds the value of the "last_interaction_at" field.
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChatSessionQuery when eager-loading is set.
	Edges        ChatSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChatSessionEdges holds the relations/edges for other nodes in the graph.
type ChatSessionEdges struct {
	// Incident holds the value of the incident edge.
	Incident *Incident `json:"incident,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// IncidentOrErr returns the Incident value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChatSessionEdges) IncidentOrErr() (*Incident, error) {
	if e.Incident != nil {
		return e.Incident, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: incident.Label}
	}
	return nil, &NotLoadedError{edge: "incident"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChatSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chatsession.FieldMessages, chatsession.FieldLlmContextHistory, chatsession.FieldUIState, chatsession.FieldTriggerMetadata, chatsession.FieldPendingContext:
			values[i] = new([]byte)
		case chatsession.FieldIsActive, chatsession.FieldPlaceholderWarning:
			values[i] = new(sql.NullBool)
		case chatsession.FieldID, chatsession.FieldUserID, chatsession.FieldTitle, chatsession.FieldStatus, chatsession.FieldIncidentID, chatsession.FieldTriggerSource, chatsession.FieldLastToolFailure, chatsession.FieldPodID:
			values[i] = new(sql.NullString)
		case chatsession.FieldLastInteractionAt, chatsession.FieldCreatedAt, chatsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChatSession fields.
func (_m *ChatSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chatsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case chatsession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case chatsession.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case chatsession.FieldMessages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field messages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Messages); err != nil {
					return fmt.Errorf("unmarshal field messages: %w", err)
				}
			}
		case chatsession.FieldLlmContextHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field llm_context_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LlmContextHistory); err != nil {
					return fmt.Errorf("unmarshal field llm_context_history: %w", err)
				}
			}
		case chatsession.FieldUIState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ui_state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UIState); err != nil {
					return fmt.Errorf("unmarshal field ui_state: %w", err)
				}
			}
		case chatsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = chatsession.Status(value.String)
			}
		case chatsession.FieldIncidentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field incident_id", values[i])
			} else if value.Valid {
				_m.IncidentID = new(string)
				*_m.IncidentID = value.String
			}
		case chatsession.FieldTriggerSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_source", values[i])
			} else if value.Valid {
				_m.TriggerSource = new(string)
				*_m.TriggerSource = value.String
			}
		case chatsession.FieldTriggerMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TriggerMetadata); err != nil {
					return fmt.Errorf("unmarshal field trigger_metadata: %w", err)
				}
			}
		case chatsession.FieldPendingContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pending_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PendingContext); err != nil {
					return fmt.Errorf("unmarshal field pending_context: %w", err)
				}
			}
		case chatsession.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case chatsession.FieldPlaceholderWarning:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field placeholder_warning", values[i])
			} else if value.Valid {
				_m.PlaceholderWarning = value.Bool
			}
		case chatsession.FieldLastToolFailure:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_tool_failure", values[i])
			} else if value.Valid {
				_m.LastToolFailure = new(string)
				*_m.LastToolFailure = value.String
			}
		case chatsession.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case chatsession.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		case chatsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case chatsession.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ChatSession.
// This includes values selected through modifiers, order, etc.
func (_m *ChatSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryIncident queries the "incident" edge of the ChatSession entity.
func (_m *ChatSession) QueryIncident() *IncidentQuery {
	return NewChatSessionClient(_m.config).QueryIncident(_m)
}

// Update returns a builder for updating this ChatSession.
// Note that you need to call ChatSession.Unwrap() before calling this method if this ChatSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChatSession) Update() *ChatSessionUpdateOne {
	return NewChatSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChatSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChatSession) Unwrap() *ChatSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChatSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChatSession) String() string {
	var builder strings.Builder
	builder.WriteString("ChatSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("messages=")
	builder.WriteString(fmt.Sprintf("%v", _m.Messages))
	builder.WriteString(", ")
	builder.WriteString("llm_context_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.LlmContextHistory))
	builder.WriteString(", ")
	builder.WriteString("ui_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.UIState))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.IncidentID; v != nil {
		builder.WriteString("incident_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TriggerSource; v != nil {
		builder.WriteString("trigger_source=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("trigger_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggerMetadata))
	builder.WriteString(", ")
	builder.WriteString("pending_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.PendingContext))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("placeholder_warning=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlaceholderWarning))
	builder.WriteString(", ")
	if v := _m.LastToolFailure; v != nil {
		builder.WriteString("last_tool_failure=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChatSessions is a parsable slice of ChatSession.
type ChatSessions []*ChatSession
