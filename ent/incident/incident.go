// Code generated by ent, DO NOT EDIT.

package incident

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the incident type in the database.
	Label = "incident"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "incident_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldSourceAlertID holds the string denoting the source_alert_id field in the database.
	FieldSourceAlertID = "source_alert_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAuroraStatus holds the string denoting the aurora_status field in the database.
	FieldAuroraStatus = "aurora_status"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldAlertTitle holds the string denoting the alert_title field in the database.
	FieldAlertTitle = "alert_title"
	// FieldAlertService holds the string denoting the alert_service field in the database.
	FieldAlertService = "alert_service"
	// FieldAffectedServices holds the string denoting the affected_services field in the database.
	FieldAffectedServices = "affected_services"
	// FieldCorrelatedAlertCount holds the string denoting the correlated_alert_count field in the database.
	FieldCorrelatedAlertCount = "correlated_alert_count"
	// FieldAuroraSummary holds the string denoting the aurora_summary field in the database.
	FieldAuroraSummary = "aurora_summary"
	// FieldAuroraChatSessionID holds the string denoting the aurora_chat_session_id field in the database.
	FieldAuroraChatSessionID = "aurora_chat_session_id"
	// FieldActiveTab holds the string denoting the active_tab field in the database.
	FieldActiveTab = "active_tab"
	// FieldAlertMetadata holds the string denoting the alert_metadata field in the database.
	FieldAlertMetadata = "alert_metadata"
	// FieldMergedIntoIncidentID holds the string denoting the merged_into_incident_id field in the database.
	FieldMergedIntoIncidentID = "merged_into_incident_id"
	// FieldSlackMessageTs holds the string denoting the slack_message_ts field in the database.
	FieldSlackMessageTs = "slack_message_ts"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAlerts holds the string denoting the alerts edge name in mutations.
	EdgeAlerts = "alerts"
	// EdgeThoughts holds the string denoting the thoughts edge name in mutations.
	EdgeThoughts = "thoughts"
	// EdgeCitations holds the string denoting the citations edge name in mutations.
	EdgeCitations = "citations"
	// EdgeSuggestions holds the string denoting the suggestions edge name in mutations.
	EdgeSuggestions = "suggestions"
	// EdgeChatSessions holds the string denoting the chat_sessions edge name in mutations.
	EdgeChatSessions = "chat_sessions"
	// IncidentAlertFieldID holds the string denoting the ID field of the IncidentAlert.
	IncidentAlertFieldID = "incident_alert_id"
	// IncidentThoughtFieldID holds the string denoting the ID field of the IncidentThought.
	IncidentThoughtFieldID = "thought_id"
	// IncidentCitationFieldID holds the string denoting the ID field of the IncidentCitation.
	IncidentCitationFieldID = "citation_id"
	// IncidentSuggestionFieldID holds the string denoting the ID field of the IncidentSuggestion.
	IncidentSuggestionFieldID = "suggestion_id"
	// ChatSessionFieldID holds the string denoting the ID field of the ChatSession.
	ChatSessionFieldID = "chat_session_id"
	// Table holds the table name of the incident in the database.
	Table = "incidents"
	// AlertsTable is the table that holds the alerts relation/edge.
	AlertsTable = "incident_alerts"
	// AlertsInverseTable is the table name for the IncidentAlert entity.
	// It exists in this package in order to avoid circular dependency with the "incidentalert" package.
	AlertsInverseTable = "incident_alerts"
	// AlertsColumn is the table column denoting the alerts relation/edge.
	AlertsColumn = "incident_id"
	// ThoughtsTable is the table that holds the thoughts relation/edge.
	ThoughtsTable = "incident_thoughts"
	// ThoughtsInverseTable is the table name for the IncidentThought entity.
	// It exists in this package in order to avoid circular dependency with the "incidentthought" package.
	ThoughtsInverseTable = "incident_thoughts"
	// ThoughtsColumn is the table column denoting the thoughts relation/edge.
	ThoughtsColumn = "incident_id"
	// CitationsTable is the table that holds the citations relation/edge.
	CitationsTable = "incident_citations"
	// CitationsInverseTable is the table name for the IncidentCitation entity.
	// It exists in this package in order to avoid circular dependency with the "incidentcitation" package.
	CitationsInverseTable = "incident_citations"
	// CitationsColumn is the table column denoting the citations relation/edge.
	CitationsColumn = "incident_id"
	// SuggestionsTable is the table that holds the suggestions relation/edge.
	SuggestionsTable = "incident_suggestions"
	// SuggestionsInverseTable is the table name for the IncidentSuggestion entity.
	// It exists in this package in order to avoid circular dependency with the "incidentsuggestion" package.
	SuggestionsInverseTable = "incident_suggestions"
	// SuggestionsColumn is the table column denoting the suggestions relation/edge.
	SuggestionsColumn = "incident_id"
	// ChatSessionsTable is the table that holds the chat_sessions relation/edge.
	ChatSessionsTable = "chat_sessions"
	// ChatSessionsInverseTable is the table name for the ChatSession entity.
	// It exists in this package in order to avoid circular dependency with the "chatsession" package.
	ChatSessionsInverseTable = "chat_sessions"
	// ChatSessionsColumn is the table column denoting the chat_sessions relation/edge.
	ChatSessionsColumn = "incident_id"
)

// Columns holds all SQL columns for incident fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSourceType,
	FieldSourceAlertID,
	FieldStatus,
	FieldAuroraStatus,
	FieldSeverity,
	FieldAlertTitle,
	FieldAlertService,
	FieldAffectedServices,
	FieldCorrelatedAlertCount,
	FieldAuroraSummary,
	FieldAuroraChatSessionID,
	FieldActiveTab,
	FieldAlertMetadata,
	FieldMergedIntoIncidentID,
	FieldSlackMessageTs,
	FieldStartedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultSeverity holds the default value on creation for the "severity" field.
	DefaultSeverity string
	// DefaultCorrelatedAlertCount holds the default value on creation for the "correlated_alert_count" field.
	DefaultCorrelatedAlertCount int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusInvestigating is the default value of the Status enum.
const DefaultStatus = StatusInvestigating

// Status values.
const (
	StatusInvestigating Status = "investigating"
	StatusAnalyzed      Status = "analyzed"
	StatusResolved      Status = "resolved"
	StatusMerged        Status = "merged"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusInvestigating, StatusAnalyzed, StatusResolved, StatusMerged:
		return nil
	default:
		return fmt.Errorf("incident: invalid enum value for status field: %q", s)
	}
}

// AuroraStatus defines the type for the "aurora_status" enum field.
type AuroraStatus string

// AuroraStatusIdle is the default value of the AuroraStatus enum.
const DefaultAuroraStatus = AuroraStatusIdle

// AuroraStatus values.
const (
	AuroraStatusIdle     AuroraStatus = "idle"
	AuroraStatusRunning  AuroraStatus = "running"
	AuroraStatusComplete AuroraStatus = "complete"
	AuroraStatusError    AuroraStatus = "error"
)

func (as AuroraStatus) String() string {
	return string(as)
}

// AuroraStatusValidator is a validator for the "aurora_status" field enum values. It is called by the builders before save.
func AuroraStatusValidator(as AuroraStatus) error {
	switch as {
	case AuroraStatusIdle, AuroraStatusRunning, AuroraStatusComplete, AuroraStatusError:
		return nil
	default:
		return fmt.Errorf("incident: invalid enum value for aurora_status field: %q", as)
	}
}

// OrderOption defines the ordering options for the Incident queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// BySourceAlertID orders the results by the source_alert_id field.
func BySourceAlertID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceAlertID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAuroraStatus orders the results by the aurora_status field.
func ByAuroraStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuroraStatus, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByAlertTitle orders the results by the alert_title field.
func ByAlertTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertTitle, opts...).ToFunc()
}

// ByAlertService orders the results by the alert_service field.
func ByAlertService(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertService, opts...).ToFunc()
}

// ByCorrelatedAlertCount orders the results by the correlated_alert_count field.
func ByCorrelatedAlertCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelatedAlertCount, opts...).ToFunc()
}

// ByAuroraSummary orders the results by the aurora_summary field.
func ByAuroraSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuroraSummary, opts...).ToFunc()
}

// ByAuroraChatSessionID orders the results by the aurora_chat_session_id field.
func ByAuroraChatSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuroraChatSessionID, opts...).ToFunc()
}

// ByActiveTab orders the results by the active_tab field.
func ByActiveTab(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveTab, opts...).ToFunc()
}

// ByMergedIntoIncidentID orders the results by the merged_into_incident_id field.
func ByMergedIntoIncidentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMergedIntoIncidentID, opts...).ToFunc()
}

// BySlackMessageTs orders the results by the slack_message_ts field.
func BySlackMessageTs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlackMessageTs, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAlertsCount orders the results by alerts count.
func ByAlertsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAlertsStep(), opts...)
	}
}

// ByAlerts orders the results by alerts terms.
func ByAlerts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAlertsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByThoughtsCount orders the results by thoughts count.
func ByThoughtsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newThoughtsStep(), opts...)
	}
}

// ByThoughts orders the results by thoughts terms.
func ByThoughts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newThoughtsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCitationsCount orders the results by citations count.
func ByCitationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCitationsStep(), opts...)
	}
}

// ByCitations orders the results by citations terms.
func ByCitations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCitationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySuggestionsCount orders the results by suggestions count.
func BySuggestionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSuggestionsStep(), opts...)
	}
}

// BySuggestions orders the results by suggestions terms.
func BySuggestions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSuggestionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByChatSessionsCount orders the results by chat_sessions count.
func ByChatSessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChatSessionsStep(), opts...)
	}
}

// ByChatSessions orders the results by chat_sessions terms.
func ByChatSessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChatSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAlertsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AlertsInverseTable, IncidentAlertFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AlertsTable, AlertsColumn),
	)
}
func newThoughtsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ThoughtsInverseTable, IncidentThoughtFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ThoughtsTable, ThoughtsColumn),
	)
}
func newCitationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CitationsInverseTable, IncidentCitationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CitationsTable, CitationsColumn),
	)
}
func newSuggestionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SuggestionsInverseTable, IncidentSuggestionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SuggestionsTable, SuggestionsColumn),
	)
}
func newChatSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChatSessionsInverseTable, ChatSessionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChatSessionsTable, ChatSessionsColumn),
	)
}
