// Code generated by ent, DO NOT EDIT.

package incidentcitation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/aurora-sre/aurora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldContainsFold(FieldID, id))
}

// IncidentID applies equality check predicate on the "incident_id" field. It's identical to IncidentIDEQ.
func IncidentID(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEQ(FieldIncidentID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEQ(FieldUserID, v))
}

// CitationKey applies equality check predicate on the "citation_key" field. It's identical to CitationKeyEQ.
func CitationKey(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEQ(FieldCitationKey, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEQ(FieldToolName, v))
}

// Command applies equality check predicate on the "command" field. It's identical to CommandEQ.
func Command(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEQ(FieldCommand, v))
}

// Output applies equality check predicate on the "output" field. It's identical to OutputEQ.
func Output(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEQ(FieldOutput, v))
}

// ExecutedAt applies equality check predicate on the "executed_at" field. It's identical to ExecutedAtEQ.
func ExecutedAt(v time.Time) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEQ(FieldExecutedAt, v))
}

// IncidentIDEQ applies the EQ predicate on the "incident_id" field.
func IncidentIDEQ(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEQ(FieldIncidentID, v))
}

// IncidentIDNEQ applies the NEQ predicate on the "incident_id" field.
func IncidentIDNEQ(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldNEQ(FieldIncidentID, v))
}

// IncidentIDIn applies the In predicate on the "incident_id" field.
func IncidentIDIn(vs ...string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldIn(FieldIncidentID, vs...))
}

// IncidentIDNotIn applies the NotIn predicate on the "incident_id" field.
func IncidentIDNotIn(vs ...string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldNotIn(FieldIncidentID, vs...))
}

// IncidentIDGT applies the GT predicate on the "incident_id" field.
func IncidentIDGT(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldGT(FieldIncidentID, v))
}

// IncidentIDGTE applies the GTE predicate on the "incident_id" field.
func IncidentIDGTE(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldGTE(FieldIncidentID, v))
}

// IncidentIDLT applies the LT predicate on the "incident_id" field.
func IncidentIDLT(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldLT(FieldIncidentID, v))
}

// IncidentIDLTE applies the LTE predicate on the "incident_id" field.
func IncidentIDLTE(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldLTE(FieldIncidentID, v))
}

// IncidentIDContains applies the Contains predicate on the "incident_id" field.
func IncidentIDContains(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldContains(FieldIncidentID, v))
}

// IncidentIDHasPrefix applies the HasPrefix predicate on the "incident_id" field.
func IncidentIDHasPrefix(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldHasPrefix(FieldIncidentID, v))
}

// IncidentIDHasSuffix applies the HasSuffix predicate on the "incident_id" field.
func IncidentIDHasSuffix(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldHasSuffix(FieldIncidentID, v))
}

// IncidentIDEqualFold applies the EqualFold predicate on the "incident_id" field.
func IncidentIDEqualFold(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEqualFold(FieldIncidentID, v))
}

// IncidentIDContainsFold applies the ContainsFold predicate on the "incident_id" field.
func IncidentIDContainsFold(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldContainsFold(FieldIncidentID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldContainsFold(FieldUserID, v))
}

// CitationKeyEQ applies the EQ predicate on the "citation_key" field.
func CitationKeyEQ(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEQ(FieldCitationKey, v))
}

// CitationKeyNEQ applies the NEQ predicate on the "citation_key" field.
func CitationKeyNEQ(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldNEQ(FieldCitationKey, v))
}

// CitationKeyIn applies the In predicate on the "citation_key" field.
func CitationKeyIn(vs ...string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldIn(FieldCitationKey, vs...))
}

// CitationKeyNotIn applies the NotIn predicate on the "citation_key" field.
func CitationKeyNotIn(vs ...string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldNotIn(FieldCitationKey, vs...))
}

// CitationKeyGT applies the GT predicate on the "citation_key" field.
func CitationKeyGT(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldGT(FieldCitationKey, v))
}

// CitationKeyGTE applies the GTE predicate on the "citation_key" field.
func CitationKeyGTE(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldGTE(FieldCitationKey, v))
}

// CitationKeyLT applies the LT predicate on the "citation_key" field.
func CitationKeyLT(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldLT(FieldCitationKey, v))
}

// CitationKeyLTE applies the LTE predicate on the "citation_key" field.
func CitationKeyLTE(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldLTE(FieldCitationKey, v))
}

// CitationKeyContains applies the Contains predicate on the "citation_key" field.
func CitationKeyContains(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldContains(FieldCitationKey, v))
}

// CitationKeyHasPrefix applies the HasPrefix predicate on the "citation_key" field.
func CitationKeyHasPrefix(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldHasPrefix(FieldCitationKey, v))
}

// CitationKeyHasSuffix applies the HasSuffix predicate on the "citation_key" field.
func CitationKeyHasSuffix(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldHasSuffix(FieldCitationKey, v))
}

// CitationKeyEqualFold applies the EqualFold predicate on the "citation_key" field.
func CitationKeyEqualFold(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEqualFold(FieldCitationKey, v))
}

// CitationKeyContainsFold applies the ContainsFold predicate on the "citation_key" field.
func CitationKeyContainsFold(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldContainsFold(FieldCitationKey, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldContainsFold(FieldToolName, v))
}

// CommandEQ applies the EQ predicate on the "command" field.
func CommandEQ(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEQ(FieldCommand, v))
}

// CommandNEQ applies the NEQ predicate on the "command" field.
func CommandNEQ(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldNEQ(FieldCommand, v))
}

// CommandIn applies the In predicate on the "command" field.
func CommandIn(vs ...string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldIn(FieldCommand, vs...))
}

// CommandNotIn applies the NotIn predicate on the "command" field.
func CommandNotIn(vs ...string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldNotIn(FieldCommand, vs...))
}

// CommandGT applies the GT predicate on the "command" field.
func CommandGT(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldGT(FieldCommand, v))
}

// CommandGTE applies the GTE predicate on the "command" field.
func CommandGTE(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldGTE(FieldCommand, v))
}

// CommandLT applies the LT predicate on the "command" field.
func CommandLT(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldLT(FieldCommand, v))
}

// CommandLTE applies the LTE predicate on the "command" field.
func CommandLTE(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldLTE(FieldCommand, v))
}

// CommandContains applies the Contains predicate on the "command" field.
func CommandContains(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldContains(FieldCommand, v))
}

// CommandHasPrefix applies the HasPrefix predicate on the "command" field.
func CommandHasPrefix(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldHasPrefix(FieldCommand, v))
}

// CommandHasSuffix applies the HasSuffix predicate on the "command" field.
func CommandHasSuffix(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldHasSuffix(FieldCommand, v))
}

// CommandIsNil applies the IsNil predicate on the "command" field.
func CommandIsNil() predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldIsNull(FieldCommand))
}

// CommandNotNil applies the NotNil predicate on the "command" field.
func CommandNotNil() predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldNotNull(FieldCommand))
}

// CommandEqualFold applies the EqualFold predicate on the "command" field.
func CommandEqualFold(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEqualFold(FieldCommand, v))
}

// CommandContainsFold applies the ContainsFold predicate on the "command" field.
func CommandContainsFold(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldContainsFold(FieldCommand, v))
}

// OutputEQ applies the EQ predicate on the "output" field.
func OutputEQ(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEQ(FieldOutput, v))
}

// OutputNEQ applies the NEQ predicate on the "output" field.
func OutputNEQ(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldNEQ(FieldOutput, v))
}

// OutputIn applies the In predicate on the "output" field.
func OutputIn(vs ...string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldIn(FieldOutput, vs...))
}

// OutputNotIn applies the NotIn predicate on the "output" field.
func OutputNotIn(vs ...string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldNotIn(FieldOutput, vs...))
}

// OutputGT applies the GT predicate on the "output" field.
func OutputGT(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldGT(FieldOutput, v))
}

// OutputGTE applies the GTE predicate on the "output" field.
func OutputGTE(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldGTE(FieldOutput, v))
}

// OutputLT applies the LT predicate on the "output" field.
func OutputLT(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldLT(FieldOutput, v))
}

// OutputLTE applies the LTE predicate on the "output" field.
func OutputLTE(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldLTE(FieldOutput, v))
}

// OutputContains applies the Contains predicate on the "output" field.
func OutputContains(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldContains(FieldOutput, v))
}

// OutputHasPrefix applies the HasPrefix predicate on the "output" field.
func OutputHasPrefix(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldHasPrefix(FieldOutput, v))
}

// OutputHasSuffix applies the HasSuffix predicate on the "output" field.
func OutputHasSuffix(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldHasSuffix(FieldOutput, v))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldNotNull(FieldOutput))
}

// OutputEqualFold applies the EqualFold predicate on the "output" field.
func OutputEqualFold(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEqualFold(FieldOutput, v))
}

// OutputContainsFold applies the ContainsFold predicate on the "output" field.
func OutputContainsFold(v string) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldContainsFold(FieldOutput, v))
}

// ExecutedAtEQ applies the EQ predicate on the "executed_at" field.
func ExecutedAtEQ(v time.Time) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldEQ(FieldExecutedAt, v))
}

// ExecutedAtNEQ applies the NEQ predicate on the "executed_at" field.
func ExecutedAtNEQ(v time.Time) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldNEQ(FieldExecutedAt, v))
}

// ExecutedAtIn applies the In predicate on the "executed_at" field.
func ExecutedAtIn(vs ...time.Time) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldIn(FieldExecutedAt, vs...))
}

// ExecutedAtNotIn applies the NotIn predicate on the "executed_at" field.
func ExecutedAtNotIn(vs ...time.Time) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldNotIn(FieldExecutedAt, vs...))
}

// ExecutedAtGT applies the GT predicate on the "executed_at" field.
func ExecutedAtGT(v time.Time) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldGT(FieldExecutedAt, v))
}

// ExecutedAtGTE applies the GTE predicate on the "executed_at" field.
func ExecutedAtGTE(v time.Time) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldGTE(FieldExecutedAt, v))
}

// ExecutedAtLT applies the LT predicate on the "executed_at" field.
func ExecutedAtLT(v time.Time) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldLT(FieldExecutedAt, v))
}

// ExecutedAtLTE applies the LTE predicate on the "executed_at" field.
func ExecutedAtLTE(v time.Time) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.FieldLTE(FieldExecutedAt, v))
}

// HasIncident applies the HasEdge predicate on the "incident" edge.
func HasIncident() predicate.IncidentCitation {
	return predicate.IncidentCitation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, IncidentTable, IncidentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIncidentWith applies the HasEdge predicate on the "incident" edge with a given conditions (other predicates).
func HasIncidentWith(preds ...predicate.Incident) predicate.IncidentCitation {
	return predicate.IncidentCitation(func(s *sql.Selector) {
		step := newIncidentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IncidentCitation) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IncidentCitation) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IncidentCitation) predicate.IncidentCitation {
	return predicate.IncidentCitation(sql.NotPredicates(p))
}
