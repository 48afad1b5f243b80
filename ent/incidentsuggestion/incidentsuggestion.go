// Code generated by ent, DO NOT EDIT.

package incidentsuggestion

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the incidentsuggestion type in the database.
	Label = "incident_suggestion"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "suggestion_id"
	// FieldIncidentID holds the string denoting the incident_id field in the database.
	FieldIncidentID = "incident_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSuggestionType holds the string denoting the suggestion_type field in the database.
	FieldSuggestionType = "suggestion_type"
	// FieldRisk holds the string denoting the risk field in the database.
	FieldRisk = "risk"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCommand holds the string denoting the command field in the database.
	FieldCommand = "command"
	// FieldFilePath holds the string denoting the file_path field in the database.
	FieldFilePath = "file_path"
	// FieldOriginalCode holds the string denoting the original_code field in the database.
	FieldOriginalCode = "original_code"
	// FieldSuggestedCode holds the string denoting the suggested_code field in the database.
	FieldSuggestedCode = "suggested_code"
	// FieldUserEditedCode holds the string denoting the user_edited_code field in the database.
	FieldUserEditedCode = "user_edited_code"
	// FieldRepo holds the string denoting the repo field in the database.
	FieldRepo = "repo"
	// FieldPrURL holds the string denoting the pr_url field in the database.
	FieldPrURL = "pr_url"
	// FieldPrNumber holds the string denoting the pr_number field in the database.
	FieldPrNumber = "pr_number"
	// FieldCreatedBranch holds the string denoting the created_branch field in the database.
	FieldCreatedBranch = "created_branch"
	// FieldAppliedAt holds the string denoting the applied_at field in the database.
	FieldAppliedAt = "applied_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeIncident holds the string denoting the incident edge name in mutations.
	EdgeIncident = "incident"
	// IncidentFieldID holds the string denoting the ID field of the Incident.
	IncidentFieldID = "incident_id"
	// Table holds the table name of the incidentsuggestion in the database.
	Table = "incident_suggestions"
	// IncidentTable is the table that holds the incident relation/edge.
	IncidentTable = "incident_suggestions"
	// IncidentInverseTable is the table name for the Incident entity.
	// It exists in this package in order to avoid circular dependency with the "incident" package.
	IncidentInverseTable = "incidents"
	// IncidentColumn is the table column denoting the incident relation/edge.
	IncidentColumn = "incident_id"
)

// Columns holds all SQL columns for incidentsuggestion fields.
var Columns = []string{
	FieldID,
	FieldIncidentID,
	FieldUserID,
	FieldSuggestionType,
	FieldRisk,
	FieldTitle,
	FieldDescription,
	FieldCommand,
	FieldFilePath,
	FieldOriginalCode,
	FieldSuggestedCode,
	FieldUserEditedCode,
	FieldRepo,
	FieldPrURL,
	FieldPrNumber,
	FieldCreatedBranch,
	FieldAppliedAt,
	FieldCreatedAt,
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
	// DefaultRisk holds the default value on creation for the "risk" field.
	DefaultRisk string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// SuggestionType defines the type for the "suggestion_type" enum field.
type SuggestionType string

// SuggestionType values.
const (
	SuggestionTypeDiagnostic    SuggestionType = "diagnostic"
	SuggestionTypeMitigation    SuggestionType = "mitigation"
	SuggestionTypeCommunication SuggestionType = "communication"
	SuggestionTypeFix           SuggestionType = "fix"
)

func (st SuggestionType) String() string {
	return string(st)
}

// SuggestionTypeValidator is a validator for the "suggestion_type" field enum values. It is called by the builders before save.
func SuggestionTypeValidator(st SuggestionType) error {
	switch st {
	case SuggestionTypeDiagnostic, SuggestionTypeMitigation, SuggestionTypeCommunication, SuggestionTypeFix:
		return nil
	default:
		return fmt.Errorf("incidentsuggestion: invalid enum value for suggestion_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the IncidentSuggestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByIncidentID orders the results by the incident_id field.
func ByIncidentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncidentID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySuggestionType orders the results by the suggestion_type field.
func BySuggestionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuggestionType, opts...).ToFunc()
}

// ByRisk orders the results by the risk field.
func ByRisk(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRisk, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCommand orders the results by the command field.
func ByCommand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommand, opts...).ToFunc()
}

// ByFilePath orders the results by the file_path field.
func ByFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePath, opts...).ToFunc()
}

// ByOriginalCode orders the results by the original_code field.
func ByOriginalCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalCode, opts...).ToFunc()
}

// BySuggestedCode orders the results by the suggested_code field.
func BySuggestedCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuggestedCode, opts...).ToFunc()
}

// ByUserEditedCode orders the results by the user_edited_code field.
func ByUserEditedCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserEditedCode, opts...).ToFunc()
}

// ByRepo orders the results by the repo field.
func ByRepo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepo, opts...).ToFunc()
}

// ByPrURL orders the results by the pr_url field.
func ByPrURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrURL, opts...).ToFunc()
}

// ByPrNumber orders the results by the pr_number field.
func ByPrNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrNumber, opts...).ToFunc()
}

// ByCreatedBranch orders the results by the created_branch field.
func ByCreatedBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBranch, opts...).ToFunc()
}

// ByAppliedAt orders the results by the applied_at field.
func ByAppliedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppliedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
