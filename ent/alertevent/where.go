// Code generated by ent, DO NOT EDIT.

package alertevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aurora-sre/aurora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldUserID, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldSource, v))
}

// ExternalID applies equality check predicate on the "external_id" field. It's identical to ExternalIDEQ.
func ExternalID(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldExternalID, v))
}

// DedupeKey applies equality check predicate on the "dedupe_key" field. It's identical to DedupeKeyEQ.
func DedupeKey(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldDedupeKey, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldTitle, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldSeverity, v))
}

// Service applies equality check predicate on the "service" field. It's identical to ServiceEQ.
func Service(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldService, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldStatus, v))
}

// EventKind applies equality check predicate on the "event_kind" field. It's identical to EventKindEQ.
func EventKind(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldEventKind, v))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldReceivedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldContainsFold(FieldUserID, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldContainsFold(FieldSource, v))
}

// ExternalIDEQ applies the EQ predicate on the "external_id" field.
func ExternalIDEQ(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldExternalID, v))
}

// ExternalIDNEQ applies the NEQ predicate on the "external_id" field.
func ExternalIDNEQ(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNEQ(FieldExternalID, v))
}

// ExternalIDIn applies the In predicate on the "external_id" field.
func ExternalIDIn(vs ...string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldIn(FieldExternalID, vs...))
}

// ExternalIDNotIn applies the NotIn predicate on the "external_id" field.
func ExternalIDNotIn(vs ...string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNotIn(FieldExternalID, vs...))
}

// ExternalIDGT applies the GT predicate on the "external_id" field.
func ExternalIDGT(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGT(FieldExternalID, v))
}

// ExternalIDGTE applies the GTE predicate on the "external_id" field.
func ExternalIDGTE(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGTE(FieldExternalID, v))
}

// ExternalIDLT applies the LT predicate on the "external_id" field.
func ExternalIDLT(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLT(FieldExternalID, v))
}

// ExternalIDLTE applies the LTE predicate on the "external_id" field.
func ExternalIDLTE(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLTE(FieldExternalID, v))
}

// ExternalIDContains applies the Contains predicate on the "external_id" field.
func ExternalIDContains(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldContains(FieldExternalID, v))
}

// ExternalIDHasPrefix applies the HasPrefix predicate on the "external_id" field.
func ExternalIDHasPrefix(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldHasPrefix(FieldExternalID, v))
}

// ExternalIDHasSuffix applies the HasSuffix predicate on the "external_id" field.
func ExternalIDHasSuffix(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldHasSuffix(FieldExternalID, v))
}

// ExternalIDEqualFold applies the EqualFold predicate on the "external_id" field.
func ExternalIDEqualFold(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEqualFold(FieldExternalID, v))
}

// ExternalIDContainsFold applies the ContainsFold predicate on the "external_id" field.
func ExternalIDContainsFold(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldContainsFold(FieldExternalID, v))
}

// DedupeKeyEQ applies the EQ predicate on the "dedupe_key" field.
func DedupeKeyEQ(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldDedupeKey, v))
}

// DedupeKeyNEQ applies the NEQ predicate on the "dedupe_key" field.
func DedupeKeyNEQ(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNEQ(FieldDedupeKey, v))
}

// DedupeKeyIn applies the In predicate on the "dedupe_key" field.
func DedupeKeyIn(vs ...string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldIn(FieldDedupeKey, vs...))
}

// DedupeKeyNotIn applies the NotIn predicate on the "dedupe_key" field.
func DedupeKeyNotIn(vs ...string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNotIn(FieldDedupeKey, vs...))
}

// DedupeKeyGT applies the GT predicate on the "dedupe_key" field.
func DedupeKeyGT(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGT(FieldDedupeKey, v))
}

// DedupeKeyGTE applies the GTE predicate on the "dedupe_key" field.
func DedupeKeyGTE(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGTE(FieldDedupeKey, v))
}

// DedupeKeyLT applies the LT predicate on the "dedupe_key" field.
func DedupeKeyLT(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLT(FieldDedupeKey, v))
}

// DedupeKeyLTE applies the LTE predicate on the "dedupe_key" field.
func DedupeKeyLTE(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLTE(FieldDedupeKey, v))
}

// DedupeKeyContains applies the Contains predicate on the "dedupe_key" field.
func DedupeKeyContains(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldContains(FieldDedupeKey, v))
}

// DedupeKeyHasPrefix applies the HasPrefix predicate on the "dedupe_key" field.
func DedupeKeyHasPrefix(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldHasPrefix(FieldDedupeKey, v))
}

// DedupeKeyHasSuffix applies the HasSuffix predicate on the "dedupe_key" field.
func DedupeKeyHasSuffix(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldHasSuffix(FieldDedupeKey, v))
}

// DedupeKeyEqualFold applies the EqualFold predicate on the "dedupe_key" field.
func DedupeKeyEqualFold(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEqualFold(FieldDedupeKey, v))
}

// DedupeKeyContainsFold applies the ContainsFold predicate on the "dedupe_key" field.
func DedupeKeyContainsFold(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldContainsFold(FieldDedupeKey, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldContainsFold(FieldTitle, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLTE(FieldSeverity, v))
}

// SeverityContains applies the Contains predicate on the "severity" field.
func SeverityContains(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldContains(FieldSeverity, v))
}

// SeverityHasPrefix applies the HasPrefix predicate on the "severity" field.
func SeverityHasPrefix(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldHasPrefix(FieldSeverity, v))
}

// SeverityHasSuffix applies the HasSuffix predicate on the "severity" field.
func SeverityHasSuffix(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldHasSuffix(FieldSeverity, v))
}

// SeverityIsNil applies the IsNil predicate on the "severity" field.
func SeverityIsNil() predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldIsNull(FieldSeverity))
}

// SeverityNotNil applies the NotNil predicate on the "severity" field.
func SeverityNotNil() predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNotNull(FieldSeverity))
}

// SeverityEqualFold applies the EqualFold predicate on the "severity" field.
func SeverityEqualFold(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEqualFold(FieldSeverity, v))
}

// SeverityContainsFold applies the ContainsFold predicate on the "severity" field.
func SeverityContainsFold(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldContainsFold(FieldSeverity, v))
}

// ServiceEQ applies the EQ predicate on the "service" field.
func ServiceEQ(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldService, v))
}

// ServiceNEQ applies the NEQ predicate on the "service" field.
func ServiceNEQ(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNEQ(FieldService, v))
}

// ServiceIn applies the In predicate on the "service" field.
func ServiceIn(vs ...string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldIn(FieldService, vs...))
}

// ServiceNotIn applies the NotIn predicate on the "service" field.
func ServiceNotIn(vs ...string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNotIn(FieldService, vs...))
}

// ServiceGT applies the GT predicate on the "service" field.
func ServiceGT(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGT(FieldService, v))
}

// ServiceGTE applies the GTE predicate on the "service" field.
func ServiceGTE(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGTE(FieldService, v))
}

// ServiceLT applies the LT predicate on the "service" field.
func ServiceLT(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLT(FieldService, v))
}

// ServiceLTE applies the LTE predicate on the "service" field.
func ServiceLTE(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLTE(FieldService, v))
}

// ServiceContains applies the Contains predicate on the "service" field.
func ServiceContains(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldContains(FieldService, v))
}

// ServiceHasPrefix applies the HasPrefix predicate on the "service" field.
func ServiceHasPrefix(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldHasPrefix(FieldService, v))
}

// ServiceHasSuffix applies the HasSuffix predicate on the "service" field.
func ServiceHasSuffix(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldHasSuffix(FieldService, v))
}

// ServiceIsNil applies the IsNil predicate on the "service" field.
func ServiceIsNil() predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldIsNull(FieldService))
}

// ServiceNotNil applies the NotNil predicate on the "service" field.
func ServiceNotNil() predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNotNull(FieldService))
}

// ServiceEqualFold applies the EqualFold predicate on the "service" field.
func ServiceEqualFold(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEqualFold(FieldService, v))
}

// ServiceContainsFold applies the ContainsFold predicate on the "service" field.
func ServiceContainsFold(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldContainsFold(FieldService, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNotNull(FieldStatus))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldContainsFold(FieldStatus, v))
}

// EventKindEQ applies the EQ predicate on the "event_kind" field.
func EventKindEQ(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldEventKind, v))
}

// EventKindNEQ applies the NEQ predicate on the "event_kind" field.
func EventKindNEQ(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNEQ(FieldEventKind, v))
}

// EventKindIn applies the In predicate on the "event_kind" field.
func EventKindIn(vs ...string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldIn(FieldEventKind, vs...))
}

// EventKindNotIn applies the NotIn predicate on the "event_kind" field.
func EventKindNotIn(vs ...string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNotIn(FieldEventKind, vs...))
}

// EventKindGT applies the GT predicate on the "event_kind" field.
func EventKindGT(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGT(FieldEventKind, v))
}

// EventKindGTE applies the GTE predicate on the "event_kind" field.
func EventKindGTE(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGTE(FieldEventKind, v))
}

// EventKindLT applies the LT predicate on the "event_kind" field.
func EventKindLT(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLT(FieldEventKind, v))
}

// EventKindLTE applies the LTE predicate on the "event_kind" field.
func EventKindLTE(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLTE(FieldEventKind, v))
}

// EventKindContains applies the Contains predicate on the "event_kind" field.
func EventKindContains(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldContains(FieldEventKind, v))
}

// EventKindHasPrefix applies the HasPrefix predicate on the "event_kind" field.
func EventKindHasPrefix(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldHasPrefix(FieldEventKind, v))
}

// EventKindHasSuffix applies the HasSuffix predicate on the "event_kind" field.
func EventKindHasSuffix(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldHasSuffix(FieldEventKind, v))
}

// EventKindIsNil applies the IsNil predicate on the "event_kind" field.
func EventKindIsNil() predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldIsNull(FieldEventKind))
}

// EventKindNotNil applies the NotNil predicate on the "event_kind" field.
func EventKindNotNil() predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNotNull(FieldEventKind))
}

// EventKindEqualFold applies the EqualFold predicate on the "event_kind" field.
func EventKindEqualFold(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEqualFold(FieldEventKind, v))
}

// EventKindContainsFold applies the ContainsFold predicate on the "event_kind" field.
func EventKindContainsFold(v string) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldContainsFold(FieldEventKind, v))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.AlertEvent {
	return predicate.AlertEvent(sql.FieldLTE(FieldReceivedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AlertEvent) predicate.AlertEvent {
	return predicate.AlertEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AlertEvent) predicate.AlertEvent {
	return predicate.AlertEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AlertEvent) predicate.AlertEvent {
	return predicate.AlertEvent(sql.NotPredicates(p))
}
