// Code generated by ent, DO NOT EDIT.

package incidentthought

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/aurora-sre/aurora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldContainsFold(FieldID, id))
}

// IncidentID applies equality check predicate on the "incident_id" field. It's identical to IncidentIDEQ.
func IncidentID(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldEQ(FieldIncidentID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldEQ(FieldUserID, v))
}

// ThoughtType applies equality check predicate on the "thought_type" field. It's identical to ThoughtTypeEQ.
func ThoughtType(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldEQ(FieldThoughtType, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldEQ(FieldContent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldEQ(FieldCreatedAt, v))
}

// IncidentIDEQ applies the EQ predicate on the "incident_id" field.
func IncidentIDEQ(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldEQ(FieldIncidentID, v))
}

// IncidentIDNEQ applies the NEQ predicate on the "incident_id" field.
func IncidentIDNEQ(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldNEQ(FieldIncidentID, v))
}

// IncidentIDIn applies the In predicate on the "incident_id" field.
func IncidentIDIn(vs ...string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldIn(FieldIncidentID, vs...))
}

// IncidentIDNotIn applies the NotIn predicate on the "incident_id" field.
func IncidentIDNotIn(vs ...string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldNotIn(FieldIncidentID, vs...))
}

// IncidentIDGT applies the GT predicate on the "incident_id" field.
func IncidentIDGT(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldGT(FieldIncidentID, v))
}

// IncidentIDGTE applies the GTE predicate on the "incident_id" field.
func IncidentIDGTE(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldGTE(FieldIncidentID, v))
}

// IncidentIDLT applies the LT predicate on the "incident_id" field.
func IncidentIDLT(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldLT(FieldIncidentID, v))
}

// IncidentIDLTE applies the LTE predicate on the "incident_id" field.
func IncidentIDLTE(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldLTE(FieldIncidentID, v))
}

// IncidentIDContains applies the Contains predicate on the "incident_id" field.
func IncidentIDContains(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldContains(FieldIncidentID, v))
}

// IncidentIDHasPrefix applies the HasPrefix predicate on the "incident_id" field.
func IncidentIDHasPrefix(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldHasPrefix(FieldIncidentID, v))
}

// IncidentIDHasSuffix applies the HasSuffix predicate on the "incident_id" field.
func IncidentIDHasSuffix(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldHasSuffix(FieldIncidentID, v))
}

// IncidentIDEqualFold applies the EqualFold predicate on the "incident_id" field.
func IncidentIDEqualFold(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldEqualFold(FieldIncidentID, v))
}

// IncidentIDContainsFold applies the ContainsFold predicate on the "incident_id" field.
func IncidentIDContainsFold(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldContainsFold(FieldIncidentID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldContainsFold(FieldUserID, v))
}

// ThoughtTypeEQ applies the EQ predicate on the "thought_type" field.
func ThoughtTypeEQ(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldEQ(FieldThoughtType, v))
}

// ThoughtTypeNEQ applies the NEQ predicate on the "thought_type" field.
func ThoughtTypeNEQ(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldNEQ(FieldThoughtType, v))
}

// ThoughtTypeIn applies the In predicate on the "thought_type" field.
func ThoughtTypeIn(vs ...string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldIn(FieldThoughtType, vs...))
}

// ThoughtTypeNotIn applies the NotIn predicate on the "thought_type" field.
func ThoughtTypeNotIn(vs ...string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldNotIn(FieldThoughtType, vs...))
}

// ThoughtTypeGT applies the GT predicate on the "thought_type" field.
func ThoughtTypeGT(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldGT(FieldThoughtType, v))
}

// ThoughtTypeGTE applies the GTE predicate on the "thought_type" field.
func ThoughtTypeGTE(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldGTE(FieldThoughtType, v))
}

// ThoughtTypeLT applies the LT predicate on the "thought_type" field.
func ThoughtTypeLT(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldLT(FieldThoughtType, v))
}

// ThoughtTypeLTE applies the LTE predicate on the "thought_type" field.
func ThoughtTypeLTE(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldLTE(FieldThoughtType, v))
}

// ThoughtTypeContains applies the Contains predicate on the "thought_type" field.
func ThoughtTypeContains(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldContains(FieldThoughtType, v))
}

// ThoughtTypeHasPrefix applies the HasPrefix predicate on the "thought_type" field.
func ThoughtTypeHasPrefix(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldHasPrefix(FieldThoughtType, v))
}

// ThoughtTypeHasSuffix applies the HasSuffix predicate on the "thought_type" field.
func ThoughtTypeHasSuffix(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldHasSuffix(FieldThoughtType, v))
}

// ThoughtTypeEqualFold applies the EqualFold predicate on the "thought_type" field.
func ThoughtTypeEqualFold(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldEqualFold(FieldThoughtType, v))
}

// ThoughtTypeContainsFold applies the ContainsFold predicate on the "thought_type" field.
func ThoughtTypeContainsFold(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldContainsFold(FieldThoughtType, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldContainsFold(FieldContent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.IncidentThought {
	return predicate.IncidentThought(sql.FieldLTE(FieldCreatedAt, v))
}

// HasIncident applies the HasEdge predicate on the "incident" edge.
func HasIncident() predicate.IncidentThought {
	return predicate.IncidentThought(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, IncidentTable, IncidentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIncidentWith applies the HasEdge predicate on the "incident" edge with a given conditions (other predicates).
func HasIncidentWith(preds ...predicate.Incident) predicate.IncidentThought {
	return predicate.IncidentThought(func(s *sql.Selector) {
		step := newIncidentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IncidentThought) predicate.IncidentThought {
	return predicate.IncidentThought(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IncidentThought) predicate.IncidentThought {
	return predicate.IncidentThought(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IncidentThought) predicate.IncidentThought {
	return predicate.IncidentThought(sql.NotPredicates(p))
}
