// Code generated by ent, DO NOT EDIT.

package incidentsuggestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/aurora-sre/aurora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContainsFold(FieldID, id))
}

// IncidentID applies equality check predicate on the "incident_id" field. It's identical to IncidentIDEQ.
func IncidentID(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldIncidentID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldUserID, v))
}

// Risk applies equality check predicate on the "risk" field. It's identical to RiskEQ.
func Risk(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldRisk, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldDescription, v))
}

// Command applies equality check predicate on the "command" field. It's identical to CommandEQ.
func Command(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldCommand, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldFilePath, v))
}

// OriginalCode applies equality check predicate on the "original_code" field. It's identical to OriginalCodeEQ.
func OriginalCode(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldOriginalCode, v))
}

// SuggestedCode applies equality check predicate on the "suggested_code" field. It's identical to SuggestedCodeEQ.
func SuggestedCode(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldSuggestedCode, v))
}

// UserEditedCode applies equality check predicate on the "user_edited_code" field. It's identical to UserEditedCodeEQ.
func UserEditedCode(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldUserEditedCode, v))
}

// Repo applies equality check predicate on the "repo" field. It's identical to RepoEQ.
func Repo(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldRepo, v))
}

// PrURL applies equality check predicate on the "pr_url" field. It's identical to PrURLEQ.
func PrURL(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldPrURL, v))
}

// PrNumber applies equality check predicate on the "pr_number" field. It's identical to PrNumberEQ.
func PrNumber(v int) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldPrNumber, v))
}

// CreatedBranch applies equality check predicate on the "created_branch" field. It's identical to CreatedBranchEQ.
func CreatedBranch(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldCreatedBranch, v))
}

// AppliedAt applies equality check predicate on the "applied_at" field. It's identical to AppliedAtEQ.
func AppliedAt(v time.Time) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldAppliedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldCreatedAt, v))
}

// IncidentIDEQ applies the EQ predicate on the "incident_id" field.
func IncidentIDEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldIncidentID, v))
}

// IncidentIDNEQ applies the NEQ predicate on the "incident_id" field.
func IncidentIDNEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNEQ(FieldIncidentID, v))
}

// IncidentIDIn applies the In predicate on the "incident_id" field.
func IncidentIDIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIn(FieldIncidentID, vs...))
}

// IncidentIDNotIn applies the NotIn predicate on the "incident_id" field.
func IncidentIDNotIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotIn(FieldIncidentID, vs...))
}

// IncidentIDGT applies the GT predicate on the "incident_id" field.
func IncidentIDGT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGT(FieldIncidentID, v))
}

// IncidentIDGTE applies the GTE predicate on the "incident_id" field.
func IncidentIDGTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGTE(FieldIncidentID, v))
}

// IncidentIDLT applies the LT predicate on the "incident_id" field.
func IncidentIDLT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLT(FieldIncidentID, v))
}

// IncidentIDLTE applies the LTE predicate on the "incident_id" field.
func IncidentIDLTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLTE(FieldIncidentID, v))
}

// IncidentIDContains applies the Contains predicate on the "incident_id" field.
func IncidentIDContains(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContains(FieldIncidentID, v))
}

// IncidentIDHasPrefix applies the HasPrefix predicate on the "incident_id" field.
func IncidentIDHasPrefix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasPrefix(FieldIncidentID, v))
}

// IncidentIDHasSuffix applies the HasSuffix predicate on the "incident_id" field.
func IncidentIDHasSuffix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasSuffix(FieldIncidentID, v))
}

// IncidentIDEqualFold applies the EqualFold predicate on the "incident_id" field.
func IncidentIDEqualFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEqualFold(FieldIncidentID, v))
}

// IncidentIDContainsFold applies the ContainsFold predicate on the "incident_id" field.
func IncidentIDContainsFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContainsFold(FieldIncidentID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContainsFold(FieldUserID, v))
}

// SuggestionTypeEQ applies the EQ predicate on the "suggestion_type" field.
func SuggestionTypeEQ(v SuggestionType) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldSuggestionType, v))
}

// SuggestionTypeNEQ applies the NEQ predicate on the "suggestion_type" field.
func SuggestionTypeNEQ(v SuggestionType) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNEQ(FieldSuggestionType, v))
}

// SuggestionTypeIn applies the In predicate on the "suggestion_type" field.
func SuggestionTypeIn(vs ...SuggestionType) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIn(FieldSuggestionType, vs...))
}

// SuggestionTypeNotIn applies the NotIn predicate on the "suggestion_type" field.
func SuggestionTypeNotIn(vs ...SuggestionType) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotIn(FieldSuggestionType, vs...))
}

// RiskEQ applies the EQ predicate on the "risk" field.
func RiskEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldRisk, v))
}

// RiskNEQ applies the NEQ predicate on the "risk" field.
func RiskNEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNEQ(FieldRisk, v))
}

// RiskIn applies the In predicate on the "risk" field.
func RiskIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIn(FieldRisk, vs...))
}

// RiskNotIn applies the NotIn predicate on the "risk" field.
func RiskNotIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotIn(FieldRisk, vs...))
}

// RiskGT applies the GT predicate on the "risk" field.
func RiskGT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGT(FieldRisk, v))
}

// RiskGTE applies the GTE predicate on the "risk" field.
func RiskGTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGTE(FieldRisk, v))
}

// RiskLT applies the LT predicate on the "risk" field.
func RiskLT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLT(FieldRisk, v))
}

// RiskLTE applies the LTE predicate on the "risk" field.
func RiskLTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLTE(FieldRisk, v))
}

// RiskContains applies the Contains predicate on the "risk" field.
func RiskContains(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContains(FieldRisk, v))
}

// RiskHasPrefix applies the HasPrefix predicate on the "risk" field.
func RiskHasPrefix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasPrefix(FieldRisk, v))
}

// RiskHasSuffix applies the HasSuffix predicate on the "risk" field.
func RiskHasSuffix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasSuffix(FieldRisk, v))
}

// RiskEqualFold applies the EqualFold predicate on the "risk" field.
func RiskEqualFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEqualFold(FieldRisk, v))
}

// RiskContainsFold applies the ContainsFold predicate on the "risk" field.
func RiskContainsFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContainsFold(FieldRisk, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContainsFold(FieldDescription, v))
}

// CommandEQ applies the EQ predicate on the "command" field.
func CommandEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldCommand, v))
}

// CommandNEQ applies the NEQ predicate on the "command" field.
func CommandNEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNEQ(FieldCommand, v))
}

// CommandIn applies the In predicate on the "command" field.
func CommandIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIn(FieldCommand, vs...))
}

// CommandNotIn applies the NotIn predicate on the "command" field.
func CommandNotIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotIn(FieldCommand, vs...))
}

// CommandGT applies the GT predicate on the "command" field.
func CommandGT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGT(FieldCommand, v))
}

// CommandGTE applies the GTE predicate on the "command" field.
func CommandGTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGTE(FieldCommand, v))
}

// CommandLT applies the LT predicate on the "command" field.
func CommandLT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLT(FieldCommand, v))
}

// CommandLTE applies the LTE predicate on the "command" field.
func CommandLTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLTE(FieldCommand, v))
}

// CommandContains applies the Contains predicate on the "command" field.
func CommandContains(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContains(FieldCommand, v))
}

// CommandHasPrefix applies the HasPrefix predicate on the "command" field.
func CommandHasPrefix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasPrefix(FieldCommand, v))
}

// CommandHasSuffix applies the HasSuffix predicate on the "command" field.
func CommandHasSuffix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasSuffix(FieldCommand, v))
}

// CommandIsNil applies the IsNil predicate on the "command" field.
func CommandIsNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIsNull(FieldCommand))
}

// CommandNotNil applies the NotNil predicate on the "command" field.
func CommandNotNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotNull(FieldCommand))
}

// CommandEqualFold applies the EqualFold predicate on the "command" field.
func CommandEqualFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEqualFold(FieldCommand, v))
}

// CommandContainsFold applies the ContainsFold predicate on the "command" field.
func CommandContainsFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContainsFold(FieldCommand, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathIsNil applies the IsNil predicate on the "file_path" field.
func FilePathIsNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIsNull(FieldFilePath))
}

// FilePathNotNil applies the NotNil predicate on the "file_path" field.
func FilePathNotNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotNull(FieldFilePath))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContainsFold(FieldFilePath, v))
}

// OriginalCodeEQ applies the EQ predicate on the "original_code" field.
func OriginalCodeEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldOriginalCode, v))
}

// OriginalCodeNEQ applies the NEQ predicate on the "original_code" field.
func OriginalCodeNEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNEQ(FieldOriginalCode, v))
}

// OriginalCodeIn applies the In predicate on the "original_code" field.
func OriginalCodeIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIn(FieldOriginalCode, vs...))
}

// OriginalCodeNotIn applies the NotIn predicate on the "original_code" field.
func OriginalCodeNotIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotIn(FieldOriginalCode, vs...))
}

// OriginalCodeGT applies the GT predicate on the "original_code" field.
func OriginalCodeGT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGT(FieldOriginalCode, v))
}

// OriginalCodeGTE applies the GTE predicate on the "original_code" field.
func OriginalCodeGTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGTE(FieldOriginalCode, v))
}

// OriginalCodeLT applies the LT predicate on the "original_code" field.
func OriginalCodeLT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLT(FieldOriginalCode, v))
}

// OriginalCodeLTE applies the LTE predicate on the "original_code" field.
func OriginalCodeLTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLTE(FieldOriginalCode, v))
}

// OriginalCodeContains applies the Contains predicate on the "original_code" field.
func OriginalCodeContains(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContains(FieldOriginalCode, v))
}

// OriginalCodeHasPrefix applies the HasPrefix predicate on the "original_code" field.
func OriginalCodeHasPrefix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasPrefix(FieldOriginalCode, v))
}

// OriginalCodeHasSuffix applies the HasSuffix predicate on the "original_code" field.
func OriginalCodeHasSuffix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasSuffix(FieldOriginalCode, v))
}

// OriginalCodeIsNil applies the IsNil predicate on the "original_code" field.
func OriginalCodeIsNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIsNull(FieldOriginalCode))
}

// OriginalCodeNotNil applies the NotNil predicate on the "original_code" field.
func OriginalCodeNotNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotNull(FieldOriginalCode))
}

// OriginalCodeEqualFold applies the EqualFold predicate on the "original_code" field.
func OriginalCodeEqualFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEqualFold(FieldOriginalCode, v))
}

// OriginalCodeContainsFold applies the ContainsFold predicate on the "original_code" field.
func OriginalCodeContainsFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContainsFold(FieldOriginalCode, v))
}

// SuggestedCodeEQ applies the EQ predicate on the "suggested_code" field.
func SuggestedCodeEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldSuggestedCode, v))
}

// SuggestedCodeNEQ applies the NEQ predicate on the "suggested_code" field.
func SuggestedCodeNEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNEQ(FieldSuggestedCode, v))
}

// SuggestedCodeIn applies the In predicate on the "suggested_code" field.
func SuggestedCodeIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIn(FieldSuggestedCode, vs...))
}

// SuggestedCodeNotIn applies the NotIn predicate on the "suggested_code" field.
func SuggestedCodeNotIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotIn(FieldSuggestedCode, vs...))
}

// SuggestedCodeGT applies the GT predicate on the "suggested_code" field.
func SuggestedCodeGT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGT(FieldSuggestedCode, v))
}

// SuggestedCodeGTE applies the GTE predicate on the "suggested_code" field.
func SuggestedCodeGTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGTE(FieldSuggestedCode, v))
}

// SuggestedCodeLT applies the LT predicate on the "suggested_code" field.
func SuggestedCodeLT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLT(FieldSuggestedCode, v))
}

// SuggestedCodeLTE applies the LTE predicate on the "suggested_code" field.
func SuggestedCodeLTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLTE(FieldSuggestedCode, v))
}

// SuggestedCodeContains applies the Contains predicate on the "suggested_code" field.
func SuggestedCodeContains(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContains(FieldSuggestedCode, v))
}

// SuggestedCodeHasPrefix applies the HasPrefix predicate on the "suggested_code" field.
func SuggestedCodeHasPrefix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasPrefix(FieldSuggestedCode, v))
}

// SuggestedCodeHasSuffix applies the HasSuffix predicate on the "suggested_code" field.
func SuggestedCodeHasSuffix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasSuffix(FieldSuggestedCode, v))
}

// SuggestedCodeIsNil applies the IsNil predicate on the "suggested_code" field.
func SuggestedCodeIsNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIsNull(FieldSuggestedCode))
}

// SuggestedCodeNotNil applies the NotNil predicate on the "suggested_code" field.
func SuggestedCodeNotNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotNull(FieldSuggestedCode))
}

// SuggestedCodeEqualFold applies the EqualFold predicate on the "suggested_code" field.
func SuggestedCodeEqualFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEqualFold(FieldSuggestedCode, v))
}

// SuggestedCodeContainsFold applies the ContainsFold predicate on the "suggested_code" field.
func SuggestedCodeContainsFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContainsFold(FieldSuggestedCode, v))
}

// UserEditedCodeEQ applies the EQ predicate on the "user_edited_code" field.
func UserEditedCodeEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldUserEditedCode, v))
}

// UserEditedCodeNEQ applies the NEQ predicate on the "user_edited_code" field.
func UserEditedCodeNEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNEQ(FieldUserEditedCode, v))
}

// UserEditedCodeIn applies the In predicate on the "user_edited_code" field.
func UserEditedCodeIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIn(FieldUserEditedCode, vs...))
}

// UserEditedCodeNotIn applies the NotIn predicate on the "user_edited_code" field.
func UserEditedCodeNotIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotIn(FieldUserEditedCode, vs...))
}

// UserEditedCodeGT applies the GT predicate on the "user_edited_code" field.
func UserEditedCodeGT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGT(FieldUserEditedCode, v))
}

// UserEditedCodeGTE applies the GTE predicate on the "user_edited_code" field.
func UserEditedCodeGTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGTE(FieldUserEditedCode, v))
}

// UserEditedCodeLT applies the LT predicate on the "user_edited_code" field.
func UserEditedCodeLT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLT(FieldUserEditedCode, v))
}

// UserEditedCodeLTE applies the LTE predicate on the "user_edited_code" field.
func UserEditedCodeLTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLTE(FieldUserEditedCode, v))
}

// UserEditedCodeContains applies the Contains predicate on the "user_edited_code" field.
func UserEditedCodeContains(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContains(FieldUserEditedCode, v))
}

// UserEditedCodeHasPrefix applies the HasPrefix predicate on the "user_edited_code" field.
func UserEditedCodeHasPrefix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasPrefix(FieldUserEditedCode, v))
}

// UserEditedCodeHasSuffix applies the HasSuffix predicate on the "user_edited_code" field.
func UserEditedCodeHasSuffix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasSuffix(FieldUserEditedCode, v))
}

// UserEditedCodeIsNil applies the IsNil predicate on the "user_edited_code" field.
func UserEditedCodeIsNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIsNull(FieldUserEditedCode))
}

// UserEditedCodeNotNil applies the NotNil predicate on the "user_edited_code" field.
func UserEditedCodeNotNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotNull(FieldUserEditedCode))
}

// UserEditedCodeEqualFold applies the EqualFold predicate on the "user_edited_code" field.
func UserEditedCodeEqualFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEqualFold(FieldUserEditedCode, v))
}

// UserEditedCodeContainsFold applies the ContainsFold predicate on the "user_edited_code" field.
func UserEditedCodeContainsFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContainsFold(FieldUserEditedCode, v))
}

// RepoEQ applies the EQ predicate on the "repo" field.
func RepoEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldRepo, v))
}

// RepoNEQ applies the NEQ predicate on the "repo" field.
func RepoNEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNEQ(FieldRepo, v))
}

// RepoIn applies the In predicate on the "repo" field.
func RepoIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIn(FieldRepo, vs...))
}

// RepoNotIn applies the NotIn predicate on the "repo" field.
func RepoNotIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotIn(FieldRepo, vs...))
}

// RepoGT applies the GT predicate on the "repo" field.
func RepoGT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGT(FieldRepo, v))
}

// RepoGTE applies the GTE predicate on the "repo" field.
func RepoGTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGTE(FieldRepo, v))
}

// RepoLT applies the LT predicate on the "repo" field.
func RepoLT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLT(FieldRepo, v))
}

// RepoLTE applies the LTE predicate on the "repo" field.
func RepoLTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLTE(FieldRepo, v))
}

// RepoContains applies the Contains predicate on the "repo" field.
func RepoContains(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContains(FieldRepo, v))
}

// RepoHasPrefix applies the HasPrefix predicate on the "repo" field.
func RepoHasPrefix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasPrefix(FieldRepo, v))
}

// RepoHasSuffix applies the HasSuffix predicate on the "repo" field.
func RepoHasSuffix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasSuffix(FieldRepo, v))
}

// RepoIsNil applies the IsNil predicate on the "repo" field.
func RepoIsNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIsNull(FieldRepo))
}

// RepoNotNil applies the NotNil predicate on the "repo" field.
func RepoNotNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotNull(FieldRepo))
}

// RepoEqualFold applies the EqualFold predicate on the "repo" field.
func RepoEqualFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEqualFold(FieldRepo, v))
}

// RepoContainsFold applies the ContainsFold predicate on the "repo" field.
func RepoContainsFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContainsFold(FieldRepo, v))
}

// PrURLEQ applies the EQ predicate on the "pr_url" field.
func PrURLEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldPrURL, v))
}

// PrURLNEQ applies the NEQ predicate on the "pr_url" field.
func PrURLNEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNEQ(FieldPrURL, v))
}

// PrURLIn applies the In predicate on the "pr_url" field.
func PrURLIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIn(FieldPrURL, vs...))
}

// PrURLNotIn applies the NotIn predicate on the "pr_url" field.
func PrURLNotIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotIn(FieldPrURL, vs...))
}

// PrURLGT applies the GT predicate on the "pr_url" field.
func PrURLGT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGT(FieldPrURL, v))
}

// PrURLGTE applies the GTE predicate on the "pr_url" field.
func PrURLGTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGTE(FieldPrURL, v))
}

// PrURLLT applies the LT predicate on the "pr_url" field.
func PrURLLT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLT(FieldPrURL, v))
}

// PrURLLTE applies the LTE predicate on the "pr_url" field.
func PrURLLTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLTE(FieldPrURL, v))
}

// PrURLContains applies the Contains predicate on the "pr_url" field.
func PrURLContains(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContains(FieldPrURL, v))
}

// PrURLHasPrefix applies the HasPrefix predicate on the "pr_url" field.
func PrURLHasPrefix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasPrefix(FieldPrURL, v))
}

// PrURLHasSuffix applies the HasSuffix predicate on the "pr_url" field.
func PrURLHasSuffix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasSuffix(FieldPrURL, v))
}

// PrURLIsNil applies the IsNil predicate on the "pr_url" field.
func PrURLIsNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIsNull(FieldPrURL))
}

// PrURLNotNil applies the NotNil predicate on the "pr_url" field.
func PrURLNotNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotNull(FieldPrURL))
}

// PrURLEqualFold applies the EqualFold predicate on the "pr_url" field.
func PrURLEqualFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEqualFold(FieldPrURL, v))
}

// PrURLContainsFold applies the ContainsFold predicate on the "pr_url" field.
func PrURLContainsFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContainsFold(FieldPrURL, v))
}

// PrNumberEQ applies the EQ predicate on the "pr_number" field.
func PrNumberEQ(v int) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldPrNumber, v))
}

// PrNumberNEQ applies the NEQ predicate on the "pr_number" field.
func PrNumberNEQ(v int) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNEQ(FieldPrNumber, v))
}

// PrNumberIn applies the In predicate on the "pr_number" field.
func PrNumberIn(vs ...int) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIn(FieldPrNumber, vs...))
}

// PrNumberNotIn applies the NotIn predicate on the "pr_number" field.
func PrNumberNotIn(vs ...int) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotIn(FieldPrNumber, vs...))
}

// PrNumberGT applies the GT predicate on the "pr_number" field.
func PrNumberGT(v int) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGT(FieldPrNumber, v))
}

// PrNumberGTE applies the GTE predicate on the "pr_number" field.
func PrNumberGTE(v int) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGTE(FieldPrNumber, v))
}

// PrNumberLT applies the LT predicate on the "pr_number" field.
func PrNumberLT(v int) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLT(FieldPrNumber, v))
}

// PrNumberLTE applies the LTE predicate on the "pr_number" field.
func PrNumberLTE(v int) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLTE(FieldPrNumber, v))
}

// PrNumberIsNil applies the IsNil predicate on the "pr_number" field.
func PrNumberIsNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIsNull(FieldPrNumber))
}

// PrNumberNotNil applies the NotNil predicate on the "pr_number" field.
func PrNumberNotNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotNull(FieldPrNumber))
}

// CreatedBranchEQ applies the EQ predicate on the "created_branch" field.
func CreatedBranchEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldCreatedBranch, v))
}

// CreatedBranchNEQ applies the NEQ predicate on the "created_branch" field.
func CreatedBranchNEQ(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNEQ(FieldCreatedBranch, v))
}

// CreatedBranchIn applies the In predicate on the "created_branch" field.
func CreatedBranchIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIn(FieldCreatedBranch, vs...))
}

// CreatedBranchNotIn applies the NotIn predicate on the "created_branch" field.
func CreatedBranchNotIn(vs ...string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotIn(FieldCreatedBranch, vs...))
}

// CreatedBranchGT applies the GT predicate on the "created_branch" field.
func CreatedBranchGT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGT(FieldCreatedBranch, v))
}

// CreatedBranchGTE applies the GTE predicate on the "created_branch" field.
func CreatedBranchGTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGTE(FieldCreatedBranch, v))
}

// CreatedBranchLT applies the LT predicate on the "created_branch" field.
func CreatedBranchLT(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLT(FieldCreatedBranch, v))
}

// CreatedBranchLTE applies the LTE predicate on the "created_branch" field.
func CreatedBranchLTE(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLTE(FieldCreatedBranch, v))
}

// CreatedBranchContains applies the Contains predicate on the "created_branch" field.
func CreatedBranchContains(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContains(FieldCreatedBranch, v))
}

// CreatedBranchHasPrefix applies the HasPrefix predicate on the "created_branch" field.
func CreatedBranchHasPrefix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasPrefix(FieldCreatedBranch, v))
}

// CreatedBranchHasSuffix applies the HasSuffix predicate on the "created_branch" field.
func CreatedBranchHasSuffix(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldHasSuffix(FieldCreatedBranch, v))
}

// CreatedBranchIsNil applies the IsNil predicate on the "created_branch" field.
func CreatedBranchIsNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIsNull(FieldCreatedBranch))
}

// CreatedBranchNotNil applies the NotNil predicate on the "created_branch" field.
func CreatedBranchNotNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotNull(FieldCreatedBranch))
}

// CreatedBranchEqualFold applies the EqualFold predicate on the "created_branch" field.
func CreatedBranchEqualFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEqualFold(FieldCreatedBranch, v))
}

// CreatedBranchContainsFold applies the ContainsFold predicate on the "created_branch" field.
func CreatedBranchContainsFold(v string) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldContainsFold(FieldCreatedBranch, v))
}

// AppliedAtEQ applies the EQ predicate on the "applied_at" field.
func AppliedAtEQ(v time.Time) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldAppliedAt, v))
}

// AppliedAtNEQ applies the NEQ predicate on the "applied_at" field.
func AppliedAtNEQ(v time.Time) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNEQ(FieldAppliedAt, v))
}

// AppliedAtIn applies the In predicate on the "applied_at" field.
func AppliedAtIn(vs ...time.Time) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIn(FieldAppliedAt, vs...))
}

// AppliedAtNotIn applies the NotIn predicate on the "applied_at" field.
func AppliedAtNotIn(vs ...time.Time) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotIn(FieldAppliedAt, vs...))
}

// AppliedAtGT applies the GT predicate on the "applied_at" field.
func AppliedAtGT(v time.Time) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGT(FieldAppliedAt, v))
}

// AppliedAtGTE applies the GTE predicate on the "applied_at" field.
func AppliedAtGTE(v time.Time) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGTE(FieldAppliedAt, v))
}

// AppliedAtLT applies the LT predicate on the "applied_at" field.
func AppliedAtLT(v time.Time) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLT(FieldAppliedAt, v))
}

// AppliedAtLTE applies the LTE predicate on the "applied_at" field.
func AppliedAtLTE(v time.Time) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLTE(FieldAppliedAt, v))
}

// AppliedAtIsNil applies the IsNil predicate on the "applied_at" field.
func AppliedAtIsNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIsNull(FieldAppliedAt))
}

// AppliedAtNotNil applies the NotNil predicate on the "applied_at" field.
func AppliedAtNotNil() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotNull(FieldAppliedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.FieldLTE(FieldCreatedAt, v))
}

// HasIncident applies the HasEdge predicate on the "incident" edge.
func HasIncident() predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, IncidentTable, IncidentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIncidentWith applies the HasEdge predicate on the "incident" edge with a given conditions (other predicates).
func HasIncidentWith(preds ...predicate.Incident) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(func(s *sql.Selector) {
		step := newIncidentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IncidentSuggestion) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IncidentSuggestion) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IncidentSuggestion) predicate.IncidentSuggestion {
	return predicate.IncidentSuggestion(sql.NotPredicates(p))
}
