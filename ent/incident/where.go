// Code generated by ent, DO NOT EDIT.

package incident

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/aurora-sre/aurora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldUserID, v))
}

// SourceType applies equality check predicate on the "source_type" field. It's identical to SourceTypeEQ.
func SourceType(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldSourceType, v))
}

// SourceAlertID applies equality check predicate on the "source_alert_id" field. It's identical to SourceAlertIDEQ.
func SourceAlertID(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldSourceAlertID, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldSeverity, v))
}

// AlertTitle applies equality check predicate on the "alert_title" field. It's identical to AlertTitleEQ.
func AlertTitle(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldAlertTitle, v))
}

// AlertService applies equality check predicate on the "alert_service" field. It's identical to AlertServiceEQ.
func AlertService(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldAlertService, v))
}

// CorrelatedAlertCount applies equality check predicate on the "correlated_alert_count" field. It's identical to CorrelatedAlertCountEQ.
func CorrelatedAlertCount(v int) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldCorrelatedAlertCount, v))
}

// AuroraSummary applies equality check predicate on the "aurora_summary" field. It's identical to AuroraSummaryEQ.
func AuroraSummary(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldAuroraSummary, v))
}

// AuroraChatSessionID applies equality check predicate on the "aurora_chat_session_id" field. It's identical to AuroraChatSessionIDEQ.
func AuroraChatSessionID(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldAuroraChatSessionID, v))
}

// ActiveTab applies equality check predicate on the "active_tab" field. It's identical to ActiveTabEQ.
func ActiveTab(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldActiveTab, v))
}

// MergedIntoIncidentID applies equality check predicate on the "merged_into_incident_id" field. It's identical to MergedIntoIncidentIDEQ.
func MergedIntoIncidentID(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldMergedIntoIncidentID, v))
}

// SlackMessageTs applies equality check predicate on the "slack_message_ts" field. It's identical to SlackMessageTsEQ.
func SlackMessageTs(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldSlackMessageTs, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldStartedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldUserID, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceTypeGT applies the GT predicate on the "source_type" field.
func SourceTypeGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldSourceType, v))
}

// SourceTypeGTE applies the GTE predicate on the "source_type" field.
func SourceTypeGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldSourceType, v))
}

// SourceTypeLT applies the LT predicate on the "source_type" field.
func SourceTypeLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldSourceType, v))
}

// SourceTypeLTE applies the LTE predicate on the "source_type" field.
func SourceTypeLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldSourceType, v))
}

// SourceTypeContains applies the Contains predicate on the "source_type" field.
func SourceTypeContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldSourceType, v))
}

// SourceTypeHasPrefix applies the HasPrefix predicate on the "source_type" field.
func SourceTypeHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldSourceType, v))
}

// SourceTypeHasSuffix applies the HasSuffix predicate on the "source_type" field.
func SourceTypeHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldSourceType, v))
}

// SourceTypeEqualFold applies the EqualFold predicate on the "source_type" field.
func SourceTypeEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldSourceType, v))
}

// SourceTypeContainsFold applies the ContainsFold predicate on the "source_type" field.
func SourceTypeContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldSourceType, v))
}

// SourceAlertIDEQ applies the EQ predicate on the "source_alert_id" field.
func SourceAlertIDEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldSourceAlertID, v))
}

// SourceAlertIDNEQ applies the NEQ predicate on the "source_alert_id" field.
func SourceAlertIDNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldSourceAlertID, v))
}

// SourceAlertIDIn applies the In predicate on the "source_alert_id" field.
func SourceAlertIDIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldSourceAlertID, vs...))
}

// SourceAlertIDNotIn applies the NotIn predicate on the "source_alert_id" field.
func SourceAlertIDNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldSourceAlertID, vs...))
}

// SourceAlertIDGT applies the GT predicate on the "source_alert_id" field.
func SourceAlertIDGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldSourceAlertID, v))
}

// SourceAlertIDGTE applies the GTE predicate on the "source_alert_id" field.
func SourceAlertIDGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldSourceAlertID, v))
}

// SourceAlertIDLT applies the LT predicate on the "source_alert_id" field.
func SourceAlertIDLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldSourceAlertID, v))
}

// SourceAlertIDLTE applies the LTE predicate on the "source_alert_id" field.
func SourceAlertIDLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldSourceAlertID, v))
}

// SourceAlertIDContains applies the Contains predicate on the "source_alert_id" field.
func SourceAlertIDContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldSourceAlertID, v))
}

// SourceAlertIDHasPrefix applies the HasPrefix predicate on the "source_alert_id" field.
func SourceAlertIDHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldSourceAlertID, v))
}

// SourceAlertIDHasSuffix applies the HasSuffix predicate on the "source_alert_id" field.
func SourceAlertIDHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldSourceAlertID, v))
}

// SourceAlertIDEqualFold applies the EqualFold predicate on the "source_alert_id" field.
func SourceAlertIDEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldSourceAlertID, v))
}

// SourceAlertIDContainsFold applies the ContainsFold predicate on the "source_alert_id" field.
func SourceAlertIDContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldSourceAlertID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldStatus, vs...))
}

// AuroraStatusEQ applies the EQ predicate on the "aurora_status" field.
func AuroraStatusEQ(v AuroraStatus) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldAuroraStatus, v))
}

// AuroraStatusNEQ applies the NEQ predicate on the "aurora_status" field.
func AuroraStatusNEQ(v AuroraStatus) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldAuroraStatus, v))
}

// AuroraStatusIn applies the In predicate on the "aurora_status" field.
func AuroraStatusIn(vs ...AuroraStatus) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldAuroraStatus, vs...))
}

// AuroraStatusNotIn applies the NotIn predicate on the "aurora_status" field.
func AuroraStatusNotIn(vs ...AuroraStatus) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldAuroraStatus, vs...))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldSeverity, v))
}

// SeverityContains applies the Contains predicate on the "severity" field.
func SeverityContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldSeverity, v))
}

// SeverityHasPrefix applies the HasPrefix predicate on the "severity" field.
func SeverityHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldSeverity, v))
}

// SeverityHasSuffix applies the HasSuffix predicate on the "severity" field.
func SeverityHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldSeverity, v))
}

// SeverityEqualFold applies the EqualFold predicate on the "severity" field.
func SeverityEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldSeverity, v))
}

// SeverityContainsFold applies the ContainsFold predicate on the "severity" field.
func SeverityContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldSeverity, v))
}

// AlertTitleEQ applies the EQ predicate on the "alert_title" field.
func AlertTitleEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldAlertTitle, v))
}

// AlertTitleNEQ applies the NEQ predicate on the "alert_title" field.
func AlertTitleNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldAlertTitle, v))
}

// AlertTitleIn applies the In predicate on the "alert_title" field.
func AlertTitleIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldAlertTitle, vs...))
}

// AlertTitleNotIn applies the NotIn predicate on the "alert_title" field.
func AlertTitleNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldAlertTitle, vs...))
}

// AlertTitleGT applies the GT predicate on the "alert_title" field.
func AlertTitleGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldAlertTitle, v))
}

// AlertTitleGTE applies the GTE predicate on the "alert_title" field.
func AlertTitleGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldAlertTitle, v))
}

// AlertTitleLT applies the LT predicate on the "alert_title" field.
func AlertTitleLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldAlertTitle, v))
}

// AlertTitleLTE applies the LTE predicate on the "alert_title" field.
func AlertTitleLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldAlertTitle, v))
}

// AlertTitleContains applies the Contains predicate on the "alert_title" field.
func AlertTitleContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldAlertTitle, v))
}

// AlertTitleHasPrefix applies the HasPrefix predicate on the "alert_title" field.
func AlertTitleHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldAlertTitle, v))
}

// AlertTitleHasSuffix applies the HasSuffix predicate on the "alert_title" field.
func AlertTitleHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldAlertTitle, v))
}

// AlertTitleEqualFold applies the EqualFold predicate on the "alert_title" field.
func AlertTitleEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldAlertTitle, v))
}

// AlertTitleContainsFold applies the ContainsFold predicate on the "alert_title" field.
func AlertTitleContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldAlertTitle, v))
}

// AlertServiceEQ applies the EQ predicate on the "alert_service" field.
func AlertServiceEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldAlertService, v))
}

// AlertServiceNEQ applies the NEQ predicate on the "alert_service" field.
func AlertServiceNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldAlertService, v))
}

// AlertServiceIn applies the In predicate on the "alert_service" field.
func AlertServiceIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldAlertService, vs...))
}

// AlertServiceNotIn applies the NotIn predicate on the "alert_service" field.
func AlertServiceNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldAlertService, vs...))
}

// AlertServiceGT applies the GT predicate on the "alert_service" field.
func AlertServiceGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldAlertService, v))
}

// AlertServiceGTE applies the GTE predicate on the "alert_service" field.
func AlertServiceGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldAlertService, v))
}

// AlertServiceLT applies the LT predicate on the "alert_service" field.
func AlertServiceLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldAlertService, v))
}

// AlertServiceLTE applies the LTE predicate on the "alert_service" field.
func AlertServiceLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldAlertService, v))
}

// AlertServiceContains applies the Contains predicate on the "alert_service" field.
func AlertServiceContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldAlertService, v))
}

// AlertServiceHasPrefix applies the HasPrefix predicate on the "alert_service" field.
func AlertServiceHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldAlertService, v))
}

// AlertServiceHasSuffix applies the HasSuffix predicate on the "alert_service" field.
func AlertServiceHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldAlertService, v))
}

// AlertServiceIsNil applies the IsNil predicate on the "alert_service" field.
func AlertServiceIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldAlertService))
}

// AlertServiceNotNil applies the NotNil predicate on the "alert_service" field.
func AlertServiceNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldAlertService))
}

// AlertServiceEqualFold applies the EqualFold predicate on the "alert_service" field.
func AlertServiceEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldAlertService, v))
}

// AlertServiceContainsFold applies the ContainsFold predicate on the "alert_service" field.
func AlertServiceContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldAlertService, v))
}

// AffectedServicesIsNil applies the IsNil predicate on the "affected_services" field.
func AffectedServicesIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldAffectedServices))
}

// AffectedServicesNotNil applies the NotNil predicate on the "affected_services" field.
func AffectedServicesNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldAffectedServices))
}

// CorrelatedAlertCountEQ applies the EQ predicate on the "correlated_alert_count" field.
func CorrelatedAlertCountEQ(v int) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldCorrelatedAlertCount, v))
}

// CorrelatedAlertCountNEQ applies the NEQ predicate on the "correlated_alert_count" field.
func CorrelatedAlertCountNEQ(v int) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldCorrelatedAlertCount, v))
}

// CorrelatedAlertCountIn applies the In predicate on the "correlated_alert_count" field.
func CorrelatedAlertCountIn(vs ...int) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldCorrelatedAlertCount, vs...))
}

// CorrelatedAlertCountNotIn applies the NotIn predicate on the "correlated_alert_count" field.
func CorrelatedAlertCountNotIn(vs ...int) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldCorrelatedAlertCount, vs...))
}

// CorrelatedAlertCountGT applies the GT predicate on the "correlated_alert_count" field.
func CorrelatedAlertCountGT(v int) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldCorrelatedAlertCount, v))
}

// CorrelatedAlertCountGTE applies the GTE predicate on the "correlated_alert_count" field.
func CorrelatedAlertCountGTE(v int) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldCorrelatedAlertCount, v))
}

// CorrelatedAlertCountLT applies the LT predicate on the "correlated_alert_count" field.
func CorrelatedAlertCountLT(v int) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldCorrelatedAlertCount, v))
}

// CorrelatedAlertCountLTE applies the LTE predicate on the "correlated_alert_count" field.
func CorrelatedAlertCountLTE(v int) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldCorrelatedAlertCount, v))
}

// AuroraSummaryEQ applies the EQ predicate on the "aurora_summary" field.
func AuroraSummaryEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldAuroraSummary, v))
}

// AuroraSummaryNEQ applies the NEQ predicate on the "aurora_summary" field.
func AuroraSummaryNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldAuroraSummary, v))
}

// AuroraSummaryIn applies the In predicate on the "aurora_summary" field.
func AuroraSummaryIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldAuroraSummary, vs...))
}

// AuroraSummaryNotIn applies the NotIn predicate on the "aurora_summary" field.
func AuroraSummaryNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldAuroraSummary, vs...))
}

// AuroraSummaryGT applies the GT predicate on the "aurora_summary" field.
func AuroraSummaryGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldAuroraSummary, v))
}

// AuroraSummaryGTE applies the GTE predicate on the "aurora_summary" field.
func AuroraSummaryGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldAuroraSummary, v))
}

// AuroraSummaryLT applies the LT predicate on the "aurora_summary" field.
func AuroraSummaryLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldAuroraSummary, v))
}

// AuroraSummaryLTE applies the LTE predicate on the "aurora_summary" field.
func AuroraSummaryLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldAuroraSummary, v))
}

// AuroraSummaryContains applies the Contains predicate on the "aurora_summary" field.
func AuroraSummaryContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldAuroraSummary, v))
}

// AuroraSummaryHasPrefix applies the HasPrefix predicate on the "aurora_summary" field.
func AuroraSummaryHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldAuroraSummary, v))
}

// AuroraSummaryHasSuffix applies the HasSuffix predicate on the "aurora_summary" field.
func AuroraSummaryHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldAuroraSummary, v))
}

// AuroraSummaryIsNil applies the IsNil predicate on the "aurora_summary" field.
func AuroraSummaryIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldAuroraSummary))
}

// AuroraSummaryNotNil applies the NotNil predicate on the "aurora_summary" field.
func AuroraSummaryNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldAuroraSummary))
}

// AuroraSummaryEqualFold applies the EqualFold predicate on the "aurora_summary" field.
func AuroraSummaryEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldAuroraSummary, v))
}

// AuroraSummaryContainsFold applies the ContainsFold predicate on the "aurora_summary" field.
func AuroraSummaryContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldAuroraSummary, v))
}

// AuroraChatSessionIDEQ applies the EQ predicate on the "aurora_chat_session_id" field.
func AuroraChatSessionIDEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldAuroraChatSessionID, v))
}

// AuroraChatSessionIDNEQ applies the NEQ predicate on the "aurora_chat_session_id" field.
func AuroraChatSessionIDNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldAuroraChatSessionID, v))
}

// AuroraChatSessionIDIn applies the In predicate on the "aurora_chat_session_id" field.
func AuroraChatSessionIDIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldAuroraChatSessionID, vs...))
}

// AuroraChatSessionIDNotIn applies the NotIn predicate on the "aurora_chat_session_id" field.
func AuroraChatSessionIDNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldAuroraChatSessionID, vs...))
}

// AuroraChatSessionIDGT applies the GT predicate on the "aurora_chat_session_id" field.
func AuroraChatSessionIDGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldAuroraChatSessionID, v))
}

// AuroraChatSessionIDGTE applies the GTE predicate on the "aurora_chat_session_id" field.
func AuroraChatSessionIDGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldAuroraChatSessionID, v))
}

// AuroraChatSessionIDLT applies the LT predicate on the "aurora_chat_session_id" field.
func AuroraChatSessionIDLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldAuroraChatSessionID, v))
}

// AuroraChatSessionIDLTE applies the LTE predicate on the "aurora_chat_session_id" field.
func AuroraChatSessionIDLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldAuroraChatSessionID, v))
}

// AuroraChatSessionIDContains applies the Contains predicate on the "aurora_chat_session_id" field.
func AuroraChatSessionIDContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldAuroraChatSessionID, v))
}

// AuroraChatSessionIDHasPrefix applies the HasPrefix predicate on the "aurora_chat_session_id" field.
func AuroraChatSessionIDHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldAuroraChatSessionID, v))
}

// AuroraChatSessionIDHasSuffix applies the HasSuffix predicate on the "aurora_chat_session_id" field.
func AuroraChatSessionIDHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldAuroraChatSessionID, v))
}

// AuroraChatSessionIDIsNil applies the IsNil predicate on the "aurora_chat_session_id" field.
func AuroraChatSessionIDIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldAuroraChatSessionID))
}

// AuroraChatSessionIDNotNil applies the NotNil predicate on the "aurora_chat_session_id" field.
func AuroraChatSessionIDNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldAuroraChatSessionID))
}

// AuroraChatSessionIDEqualFold applies the EqualFold predicate on the "aurora_chat_session_id" field.
func AuroraChatSessionIDEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldAuroraChatSessionID, v))
}

// AuroraChatSessionIDContainsFold applies the ContainsFold predicate on the "aurora_chat_session_id" field.
func AuroraChatSessionIDContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldAuroraChatSessionID, v))
}

// ActiveTabEQ applies the EQ predicate on the "active_tab" field.
func ActiveTabEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldActiveTab, v))
}

// ActiveTabNEQ applies the NEQ predicate on the "active_tab" field.
func ActiveTabNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldActiveTab, v))
}

// ActiveTabIn applies the In predicate on the "active_tab" field.
func ActiveTabIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldActiveTab, vs...))
}

// ActiveTabNotIn applies the NotIn predicate on the "active_tab" field.
func ActiveTabNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldActiveTab, vs...))
}

// ActiveTabGT applies the GT predicate on the "active_tab" field.
func ActiveTabGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldActiveTab, v))
}

// ActiveTabGTE applies the GTE predicate on the "active_tab" field.
func ActiveTabGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldActiveTab, v))
}

// ActiveTabLT applies the LT predicate on the "active_tab" field.
func ActiveTabLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldActiveTab, v))
}

// ActiveTabLTE applies the LTE predicate on the "active_tab" field.
func ActiveTabLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldActiveTab, v))
}

// ActiveTabContains applies the Contains predicate on the "active_tab" field.
func ActiveTabContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldActiveTab, v))
}

// ActiveTabHasPrefix applies the HasPrefix predicate on the "active_tab" field.
func ActiveTabHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldActiveTab, v))
}

// ActiveTabHasSuffix applies the HasSuffix predicate on the "active_tab" field.
func ActiveTabHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldActiveTab, v))
}

// ActiveTabIsNil applies the IsNil predicate on the "active_tab" field.
func ActiveTabIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldActiveTab))
}

// ActiveTabNotNil applies the NotNil predicate on the "active_tab" field.
func ActiveTabNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldActiveTab))
}

// ActiveTabEqualFold applies the EqualFold predicate on the "active_tab" field.
func ActiveTabEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldActiveTab, v))
}

// ActiveTabContainsFold applies the ContainsFold predicate on the "active_tab" field.
func ActiveTabContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldActiveTab, v))
}

// AlertMetadataIsNil applies the IsNil predicate on the "alert_metadata" field.
func AlertMetadataIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldAlertMetadata))
}

// AlertMetadataNotNil applies the NotNil predicate on the "alert_metadata" field.
func AlertMetadataNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldAlertMetadata))
}

// MergedIntoIncidentIDEQ applies the EQ predicate on the "merged_into_incident_id" field.
func MergedIntoIncidentIDEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldMergedIntoIncidentID, v))
}

// MergedIntoIncidentIDNEQ applies the NEQ predicate on the "merged_into_incident_id" field.
func MergedIntoIncidentIDNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldMergedIntoIncidentID, v))
}

// MergedIntoIncidentIDIn applies the In predicate on the "merged_into_incident_id" field.
func MergedIntoIncidentIDIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldMergedIntoIncidentID, vs...))
}

// MergedIntoIncidentIDNotIn applies the NotIn predicate on the "merged_into_incident_id" field.
func MergedIntoIncidentIDNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldMergedIntoIncidentID, vs...))
}

// MergedIntoIncidentIDGT applies the GT predicate on the "merged_into_incident_id" field.
func MergedIntoIncidentIDGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldMergedIntoIncidentID, v))
}

// MergedIntoIncidentIDGTE applies the GTE predicate on the "merged_into_incident_id" field.
func MergedIntoIncidentIDGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldMergedIntoIncidentID, v))
}

// MergedIntoIncidentIDLT applies the LT predicate on the "merged_into_incident_id" field.
func MergedIntoIncidentIDLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldMergedIntoIncidentID, v))
}

// MergedIntoIncidentIDLTE applies the LTE predicate on the "merged_into_incident_id" field.
func MergedIntoIncidentIDLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldMergedIntoIncidentID, v))
}

// MergedIntoIncidentIDContains applies the Contains predicate on the "merged_into_incident_id" field.
func MergedIntoIncidentIDContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldMergedIntoIncidentID, v))
}

// MergedIntoIncidentIDHasPrefix applies the HasPrefix predicate on the "merged_into_incident_id" field.
func MergedIntoIncidentIDHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldMergedIntoIncidentID, v))
}

// MergedIntoIncidentIDHasSuffix applies the HasSuffix predicate on the "merged_into_incident_id" field.
func MergedIntoIncidentIDHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldMergedIntoIncidentID, v))
}

// MergedIntoIncidentIDIsNil applies the IsNil predicate on the "merged_into_incident_id" field.
func MergedIntoIncidentIDIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldMergedIntoIncidentID))
}

// MergedIntoIncidentIDNotNil applies the NotNil predicate on the "merged_into_incident_id" field.
func MergedIntoIncidentIDNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldMergedIntoIncidentID))
}

// MergedIntoIncidentIDEqualFold applies the EqualFold predicate on the "merged_into_incident_id" field.
func MergedIntoIncidentIDEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldMergedIntoIncidentID, v))
}

// MergedIntoIncidentIDContainsFold applies the ContainsFold predicate on the "merged_into_incident_id" field.
func MergedIntoIncidentIDContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldMergedIntoIncidentID, v))
}

// SlackMessageTsEQ applies the EQ predicate on the "slack_message_ts" field.
func SlackMessageTsEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldSlackMessageTs, v))
}

// SlackMessageTsNEQ applies the NEQ predicate on the "slack_message_ts" field.
func SlackMessageTsNEQ(v string) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldSlackMessageTs, v))
}

// SlackMessageTsIn applies the In predicate on the "slack_message_ts" field.
func SlackMessageTsIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldSlackMessageTs, vs...))
}

// SlackMessageTsNotIn applies the NotIn predicate on the "slack_message_ts" field.
func SlackMessageTsNotIn(vs ...string) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldSlackMessageTs, vs...))
}

// SlackMessageTsGT applies the GT predicate on the "slack_message_ts" field.
func SlackMessageTsGT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldSlackMessageTs, v))
}

// SlackMessageTsGTE applies the GTE predicate on the "slack_message_ts" field.
func SlackMessageTsGTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldSlackMessageTs, v))
}

// SlackMessageTsLT applies the LT predicate on the "slack_message_ts" field.
func SlackMessageTsLT(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldSlackMessageTs, v))
}

// SlackMessageTsLTE applies the LTE predicate on the "slack_message_ts" field.
func SlackMessageTsLTE(v string) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldSlackMessageTs, v))
}

// SlackMessageTsContains applies the Contains predicate on the "slack_message_ts" field.
func SlackMessageTsContains(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContains(FieldSlackMessageTs, v))
}

// SlackMessageTsHasPrefix applies the HasPrefix predicate on the "slack_message_ts" field.
func SlackMessageTsHasPrefix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasPrefix(FieldSlackMessageTs, v))
}

// SlackMessageTsHasSuffix applies the HasSuffix predicate on the "slack_message_ts" field.
func SlackMessageTsHasSuffix(v string) predicate.Incident {
	return predicate.Incident(sql.FieldHasSuffix(FieldSlackMessageTs, v))
}

// SlackMessageTsIsNil applies the IsNil predicate on the "slack_message_ts" field.
func SlackMessageTsIsNil() predicate.Incident {
	return predicate.Incident(sql.FieldIsNull(FieldSlackMessageTs))
}

// SlackMessageTsNotNil applies the NotNil predicate on the "slack_message_ts" field.
func SlackMessageTsNotNil() predicate.Incident {
	return predicate.Incident(sql.FieldNotNull(FieldSlackMessageTs))
}

// SlackMessageTsEqualFold applies the EqualFold predicate on the "slack_message_ts" field.
func SlackMessageTsEqualFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldEqualFold(FieldSlackMessageTs, v))
}

// SlackMessageTsContainsFold applies the ContainsFold predicate on the "slack_message_ts" field.
func SlackMessageTsContainsFold(v string) predicate.Incident {
	return predicate.Incident(sql.FieldContainsFold(FieldSlackMessageTs, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldStartedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Incident {
	return predicate.Incident(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAlerts applies the HasEdge predicate on the "alerts" edge.
func HasAlerts() predicate.Incident {
	return predicate.Incident(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AlertsTable, AlertsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAlertsWith applies the HasEdge predicate on the "alerts" edge with a given conditions (other predicates).
func HasAlertsWith(preds ...predicate.IncidentAlert) predicate.Incident {
	return predicate.Incident(func(s *sql.Selector) {
		step := newAlertsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasThoughts applies the HasEdge predicate on the "thoughts" edge.
func HasThoughts() predicate.Incident {
	return predicate.Incident(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ThoughtsTable, ThoughtsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasThoughtsWith applies the HasEdge predicate on the "thoughts" edge with a given conditions (other predicates).
func HasThoughtsWith(preds ...predicate.IncidentThought) predicate.Incident {
	return predicate.Incident(func(s *sql.Selector) {
		step := newThoughtsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCitations applies the HasEdge predicate on the "citations" edge.
func HasCitations() predicate.Incident {
	return predicate.Incident(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CitationsTable, CitationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCitationsWith applies the HasEdge predicate on the "citations" edge with a given conditions (other predicates).
func HasCitationsWith(preds ...predicate.IncidentCitation) predicate.Incident {
	return predicate.Incident(func(s *sql.Selector) {
		step := newCitationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSuggestions applies the HasEdge predicate on the "suggestions" edge.
func HasSuggestions() predicate.Incident {
	return predicate.Incident(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SuggestionsTable, SuggestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSuggestionsWith applies the HasEdge predicate on the "suggestions" edge with a given conditions (other predicates).
func HasSuggestionsWith(preds ...predicate.IncidentSuggestion) predicate.Incident {
	return predicate.Incident(func(s *sql.Selector) {
		step := newSuggestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChatSessions applies the HasEdge predicate on the "chat_sessions" edge.
func HasChatSessions() predicate.Incident {
	return predicate.Incident(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChatSessionsTable, ChatSessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatSessionsWith applies the HasEdge predicate on the "chat_sessions" edge with a given conditions (other predicates).
func HasChatSessionsWith(preds ...predicate.ChatSession) predicate.Incident {
	return predicate.Incident(func(s *sql.Selector) {
		step := newChatSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Incident) predicate.Incident {
	return predicate.Incident(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Incident) predicate.Incident {
	return predicate.Incident(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Incident) predicate.Incident {
	return predicate.Incident(sql.NotPredicates(p))
}
