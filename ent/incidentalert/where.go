// Code generated by ent, DO NOT EDIT.

package incidentalert

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/aurora-sre/aurora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldContainsFold(FieldID, id))
}

// IncidentID applies equality check predicate on the "incident_id" field. It's identical to IncidentIDEQ.
func IncidentID(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldEQ(FieldIncidentID, v))
}

// AlertEventID applies equality check predicate on the "alert_event_id" field. It's identical to AlertEventIDEQ.
func AlertEventID(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldEQ(FieldAlertEventID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldEQ(FieldUserID, v))
}

// CorrelationScore applies equality check predicate on the "correlation_score" field. It's identical to CorrelationScoreEQ.
func CorrelationScore(v float64) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldEQ(FieldCorrelationScore, v))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldEQ(FieldReceivedAt, v))
}

// IncidentIDEQ applies the EQ predicate on the "incident_id" field.
func IncidentIDEQ(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldEQ(FieldIncidentID, v))
}

// IncidentIDNEQ applies the NEQ predicate on the "incident_id" field.
func IncidentIDNEQ(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldNEQ(FieldIncidentID, v))
}

// IncidentIDIn applies the In predicate on the "incident_id" field.
func IncidentIDIn(vs ...string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldIn(FieldIncidentID, vs...))
}

// IncidentIDNotIn applies the NotIn predicate on the "incident_id" field.
func IncidentIDNotIn(vs ...string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldNotIn(FieldIncidentID, vs...))
}

// IncidentIDGT applies the GT predicate on the "incident_id" field.
func IncidentIDGT(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldGT(FieldIncidentID, v))
}

// IncidentIDGTE applies the GTE predicate on the "incident_id" field.
func IncidentIDGTE(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldGTE(FieldIncidentID, v))
}

// IncidentIDLT applies the LT predicate on the "incident_id" field.
func IncidentIDLT(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldLT(FieldIncidentID, v))
}

// IncidentIDLTE applies the LTE predicate on the "incident_id" field.
func IncidentIDLTE(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldLTE(FieldIncidentID, v))
}

// IncidentIDContains applies the Contains predicate on the "incident_id" field.
func IncidentIDContains(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldContains(FieldIncidentID, v))
}

// IncidentIDHasPrefix applies the HasPrefix predicate on the "incident_id" field.
func IncidentIDHasPrefix(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldHasPrefix(FieldIncidentID, v))
}

// IncidentIDHasSuffix applies the HasSuffix predicate on the "incident_id" field.
func IncidentIDHasSuffix(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldHasSuffix(FieldIncidentID, v))
}

// IncidentIDEqualFold applies the EqualFold predicate on the "incident_id" field.
func IncidentIDEqualFold(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldEqualFold(FieldIncidentID, v))
}

// IncidentIDContainsFold applies the ContainsFold predicate on the "incident_id" field.
func IncidentIDContainsFold(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldContainsFold(FieldIncidentID, v))
}

// AlertEventIDEQ applies the EQ predicate on the "alert_event_id" field.
func AlertEventIDEQ(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldEQ(FieldAlertEventID, v))
}

// AlertEventIDNEQ applies the NEQ predicate on the "alert_event_id" field.
func AlertEventIDNEQ(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldNEQ(FieldAlertEventID, v))
}

// AlertEventIDIn applies the In predicate on the "alert_event_id" field.
func AlertEventIDIn(vs ...string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldIn(FieldAlertEventID, vs...))
}

// AlertEventIDNotIn applies the NotIn predicate on the "alert_event_id" field.
func AlertEventIDNotIn(vs ...string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldNotIn(FieldAlertEventID, vs...))
}

// AlertEventIDGT applies the GT predicate on the "alert_event_id" field.
func AlertEventIDGT(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldGT(FieldAlertEventID, v))
}

// AlertEventIDGTE applies the GTE predicate on the "alert_event_id" field.
func AlertEventIDGTE(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldGTE(FieldAlertEventID, v))
}

// AlertEventIDLT applies the LT predicate on the "alert_event_id" field.
func AlertEventIDLT(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldLT(FieldAlertEventID, v))
}

// AlertEventIDLTE applies the LTE predicate on the "alert_event_id" field.
func AlertEventIDLTE(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldLTE(FieldAlertEventID, v))
}

// AlertEventIDContains applies the Contains predicate on the "alert_event_id" field.
func AlertEventIDContains(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldContains(FieldAlertEventID, v))
}

// AlertEventIDHasPrefix applies the HasPrefix predicate on the "alert_event_id" field.
func AlertEventIDHasPrefix(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldHasPrefix(FieldAlertEventID, v))
}

// AlertEventIDHasSuffix applies the HasSuffix predicate on the "alert_event_id" field.
func AlertEventIDHasSuffix(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldHasSuffix(FieldAlertEventID, v))
}

// AlertEventIDEqualFold applies the EqualFold predicate on the "alert_event_id" field.
func AlertEventIDEqualFold(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldEqualFold(FieldAlertEventID, v))
}

// AlertEventIDContainsFold applies the ContainsFold predicate on the "alert_event_id" field.
func AlertEventIDContainsFold(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldContainsFold(FieldAlertEventID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldContainsFold(FieldUserID, v))
}

// CorrelationStrategyEQ applies the EQ predicate on the "correlation_strategy" field.
func CorrelationStrategyEQ(v CorrelationStrategy) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldEQ(FieldCorrelationStrategy, v))
}

// CorrelationStrategyNEQ applies the NEQ predicate on the "correlation_strategy" field.
func CorrelationStrategyNEQ(v CorrelationStrategy) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldNEQ(FieldCorrelationStrategy, v))
}

// CorrelationStrategyIn applies the In predicate on the "correlation_strategy" field.
func CorrelationStrategyIn(vs ...CorrelationStrategy) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldIn(FieldCorrelationStrategy, vs...))
}

// CorrelationStrategyNotIn applies the NotIn predicate on the "correlation_strategy" field.
func CorrelationStrategyNotIn(vs ...CorrelationStrategy) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldNotIn(FieldCorrelationStrategy, vs...))
}

// CorrelationScoreEQ applies the EQ predicate on the "correlation_score" field.
func CorrelationScoreEQ(v float64) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldEQ(FieldCorrelationScore, v))
}

// CorrelationScoreNEQ applies the NEQ predicate on the "correlation_score" field.
func CorrelationScoreNEQ(v float64) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldNEQ(FieldCorrelationScore, v))
}

// CorrelationScoreIn applies the In predicate on the "correlation_score" field.
func CorrelationScoreIn(vs ...float64) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldIn(FieldCorrelationScore, vs...))
}

// CorrelationScoreNotIn applies the NotIn predicate on the "correlation_score" field.
func CorrelationScoreNotIn(vs ...float64) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldNotIn(FieldCorrelationScore, vs...))
}

// CorrelationScoreGT applies the GT predicate on the "correlation_score" field.
func CorrelationScoreGT(v float64) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldGT(FieldCorrelationScore, v))
}

// CorrelationScoreGTE applies the GTE predicate on the "correlation_score" field.
func CorrelationScoreGTE(v float64) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldGTE(FieldCorrelationScore, v))
}

// CorrelationScoreLT applies the LT predicate on the "correlation_score" field.
func CorrelationScoreLT(v float64) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldLT(FieldCorrelationScore, v))
}

// CorrelationScoreLTE applies the LTE predicate on the "correlation_score" field.
func CorrelationScoreLTE(v float64) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldLTE(FieldCorrelationScore, v))
}

// CorrelationDetailsIsNil applies the IsNil predicate on the "correlation_details" field.
func CorrelationDetailsIsNil() predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldIsNull(FieldCorrelationDetails))
}

// CorrelationDetailsNotNil applies the NotNil predicate on the "correlation_details" field.
func CorrelationDetailsNotNil() predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldNotNull(FieldCorrelationDetails))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.FieldLTE(FieldReceivedAt, v))
}

// HasIncident applies the HasEdge predicate on the "incident" edge.
func HasIncident() predicate.IncidentAlert {
	return predicate.IncidentAlert(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, IncidentTable, IncidentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIncidentWith applies the HasEdge predicate on the "incident" edge with a given conditions (other predicates).
func HasIncidentWith(preds ...predicate.Incident) predicate.IncidentAlert {
	return predicate.IncidentAlert(func(s *sql.Selector) {
		step := newIncidentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IncidentAlert) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IncidentAlert) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IncidentAlert) predicate.IncidentAlert {
	return predicate.IncidentAlert(sql.NotPredicates(p))
}
