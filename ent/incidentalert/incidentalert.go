// Code generated by ent, DO NOT EDIT.

package incidentalert

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the incidentalert type in the database.
	Label = "incident_alert"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "incident_alert_id"
	// FieldIncidentID holds the string denoting the incident_id field in the database.
	FieldIncidentID = "incident_id"
	// FieldAlertEventID holds the string denoting the alert_event_id field in the database.
	FieldAlertEventID = "alert_event_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCorrelationStrategy holds the string denoting the correlation_strategy field in the database.
	FieldCorrelationStrategy = "correlation_strategy"
	// FieldCorrelationScore holds the string denoting the correlation_score field in the database.
	FieldCorrelationScore = "correlation_score"
	// FieldCorrelationDetails holds the string denoting the correlation_details field in the database.
	FieldCorrelationDetails = "correlation_details"
	// FieldReceivedAt holds the string denoting the received_at field in the database.
	FieldReceivedAt = "received_at"
	// EdgeIncident holds the string denoting the incident edge name in mutations.
	EdgeIncident = "incident"
	// IncidentFieldID holds the string denoting the ID field of the Incident.
	IncidentFieldID = "incident_id"
	// Table holds the table name of the incidentalert in the database.
	Table = "incident_alerts"
	// IncidentTable is the table that holds the incident relation/edge.
	IncidentTable = "incident_alerts"
	// IncidentInverseTable is the table name for the Incident entity.
	// It exists in this package in order to avoid circular dependency with the "incident" package.
	IncidentInverseTable = "incidents"
	// IncidentColumn is the table column denoting the incident relation/edge.
	IncidentColumn = "incident_id"
)

// Columns holds all SQL columns for incidentalert fields.
var Columns = []string{
	FieldID,
	FieldIncidentID,
	FieldAlertEventID,
	FieldUserID,
	FieldCorrelationStrategy,
	FieldCorrelationScore,
	FieldCorrelationDetails,
	FieldReceivedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCorrelationScore holds the default value on creation for the "correlation_score" field.
	DefaultCorrelationScore float64
	// DefaultReceivedAt holds the default value on creation for the "received_at" field.
	DefaultReceivedAt func() time.Time
)

// CorrelationStrategy defines the type for the "correlation_strategy" enum field.
type CorrelationStrategy string

// CorrelationStrategy values.
const (
	CorrelationStrategyPrimary            CorrelationStrategy = "primary"
	CorrelationStrategyIdentity           CorrelationStrategy = "identity"
	CorrelationStrategyServiceFingerprint CorrelationStrategy = "service_fingerprint"
	CorrelationStrategyServiceTimeWindow  CorrelationStrategy = "service_time_window"
	CorrelationStrategyManual             CorrelationStrategy = "manual"
)

func (cs CorrelationStrategy) String() string {
	return string(cs)
}

// CorrelationStrategyValidator is a validator for the "correlation_strategy" field enum values. It is called by the builders before save.
func CorrelationStrategyValidator(cs CorrelationStrategy) error {
	switch cs {
	case CorrelationStrategyPrimary, CorrelationStrategyIdentity, CorrelationStrategyServiceFingerprint, CorrelationStrategyServiceTimeWindow, CorrelationStrategyManual:
		return nil
	default:
		return fmt.Errorf("incidentalert: invalid enum value for correlation_strategy field: %q", cs)
	}
}

// OrderOption defines the ordering options for the IncidentAlert queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByIncidentID orders the results by the incident_id field.
func ByIncidentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncidentID, opts...).ToFunc()
}

// ByAlertEventID orders the results by the alert_event_id field.
func ByAlertEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertEventID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCorrelationStrategy orders the results by the correlation_strategy field.
func ByCorrelationStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationStrategy, opts...).ToFunc()
}

// ByCorrelationScore orders the results by the correlation_score field.
func ByCorrelationScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationScore, opts...).ToFunc()
}

// ByReceivedAt orders the results by the received_at field.
func ByReceivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceivedAt, opts...).ToFunc()
}

// ByIncidentField orders the results by incident field.
func ByIncidentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIncidentStep(), sql.OrderByField(field, opts...))
	}
}
func newIncidentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IncidentInverseTable, IncidentFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, IncidentTable, IncidentColumn),
	)
}
