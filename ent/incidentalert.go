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
	"github.com/aurora-sre/aurora/ent/incidentalert"
)

// IncidentAlert is the model entity for the IncidentAlert schema.
type IncidentAlert struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// IncidentID holds the value of the "incident_id" field.
	IncidentID string `json:"incident_id,omitempty"`
	// AlertEventID holds the value of the "alert_event_id" field.
	AlertEventID string `json:"alert_event_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// CorrelationStrategy holds the value of the "correlation_strategy" field.
	CorrelationStrategy incidentalert.CorrelationStrategy `json:"correlation_strategy,omitempty"`
	// In [0,1]; 1.0 for primary/identity/manual
	CorrelationScore float64 `json:"correlation_score,omitempty"`
	// CorrelationDetails holds the value of the "correlation_details" field.
	CorrelationDetails map[string]interface{} `json:"correlation_details,omitempty"`
	// Copied from the alert event; display ordering within an incident
	ReceivedAt time.Time `json:"received_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IncidentAlertQuery when eager-loading is set.
	Edges        IncidentAlertEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IncidentAlertEdges holds the relations/edges for other nodes in the graph.
type IncidentAlertEdges struct {
	// Incident holds the value of the incident edge.
	Incident *Incident `json:"incident,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// IncidentOrErr returns the Incident value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IncidentAlertEdges) IncidentOrErr() (*Incident, error) {
	if e.Incident != nil {
		return e.Incident, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: incident.Label}
	}
	return nil, &NotLoadedError{edge: "incident"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IncidentAlert) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case incidentalert.FieldCorrelationDetails:
			values[i] = new([]byte)
		case incidentalert.FieldCorrelationScore:
			values[i] = new(sql.NullFloat64)
		case incidentalert.FieldID, incidentalert.FieldIncidentID, incidentalert.FieldAlertEventID, incidentalert.FieldUserID, incidentalert.FieldCorrelationStrategy:
			values[i] = new(sql.NullString)
		case incidentalert.FieldReceivedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IncidentAlert fields.
func (_m *IncidentAlert) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case incidentalert.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case incidentalert.FieldIncidentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field incident_id", values[i])
			} else if value.Valid {
				_m.IncidentID = value.String
			}
		case incidentalert.FieldAlertEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_event_id", values[i])
			} else if value.Valid {
				_m.AlertEventID = value.String
			}
		case incidentalert.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case incidentalert.FieldCorrelationStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_strategy", values[i])
			} else if value.Valid {
				_m.CorrelationStrategy = incidentalert.CorrelationStrategy(value.String)
			}
		case incidentalert.FieldCorrelationScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_score", values[i])
			} else if value.Valid {
				_m.CorrelationScore = value.Float64
			}
		case incidentalert.FieldCorrelationDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CorrelationDetails); err != nil {
					return fmt.Errorf("unmarshal field correlation_details: %w", err)
				}
			}
		case incidentalert.FieldReceivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_at", values[i])
			} else if value.Valid {
				_m.ReceivedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IncidentAlert.
// This includes values selected through modifiers, order, etc.
func (_m *IncidentAlert) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryIncident queries the "incident" edge of the IncidentAlert entity.
func (_m *IncidentAlert) QueryIncident() *IncidentQuery {
	return NewIncidentAlertClient(_m.config).QueryIncident(_m)
}

// Update returns a builder for updating this IncidentAlert.
// Note that you need to call IncidentAlert.Unwrap() before calling this method if this IncidentAlert
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IncidentAlert) Update() *IncidentAlertUpdateOne {
	return NewIncidentAlertClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IncidentAlert entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IncidentAlert) Unwrap() *IncidentAlert {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IncidentAlert is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IncidentAlert) String() string {
	var builder strings.Builder
	builder.WriteString("IncidentAlert(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("incident_id=")
	builder.WriteString(_m.IncidentID)
	builder.WriteString(", ")
	builder.WriteString("alert_event_id=")
	builder.WriteString(_m.AlertEventID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("correlation_strategy=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrelationStrategy))
	builder.WriteString(", ")
	builder.WriteString("correlation_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrelationScore))
	builder.WriteString(", ")
	builder.WriteString("correlation_details=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrelationDetails))
	builder.WriteString(", ")
	builder.WriteString("received_at=")
	builder.WriteString(_m.ReceivedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// IncidentAlerts is a parsable slice of IncidentAlert.
type IncidentAlerts []*IncidentAlert
