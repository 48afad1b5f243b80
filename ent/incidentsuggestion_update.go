// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aurora-sre/aurora/ent/incidentsuggestion"
	"github.com/aurora-sre/aurora/ent/predicate"
)

// IncidentSuggestionUpdate is the builder for updating IncidentSuggestion entities.
type IncidentSuggestionUpdate struct {
	config
	hooks    []Hook
	mutation *IncidentSuggestionMutation
}

// Where appends a list predicates to the IncidentSuggestionUpdate builder.
func (_u *IncidentSuggestionUpdate) Where(ps ...predicate.IncidentSuggestion) *IncidentSuggestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSuggestionType sets the "suggestion_type" field.
func (_u *IncidentSuggestionUpdate) SetSuggestionType(v incidentsuggestion.SuggestionType) *IncidentSuggestionUpdate {
	_u.mutation.SetSuggestionType(v)
	return _u
}

// SetNillableSuggestionType sets the "suggestion_type" field if the given value is not nil.
func (_u *IncidentSuggestionUpdate) SetNillableSuggestionType(v *incidentsuggestion.SuggestionType) *IncidentSuggestionUpdate {
	if v != nil {
		_u.SetSuggestionType(*v)
	}
	return _u
}

// SetRisk sets the "risk" field.
func (_u *IncidentSuggestionUpdate) SetRisk(v string) *IncidentSuggestionUpdate {
	_u.mutation.SetRisk(v)
	return _u
}

// SetNillableRisk sets the "risk" field if the given value is not nil.
func (_u *IncidentSuggestionUpdate) SetNillableRisk(v *string) *IncidentSuggestionUpdate {
	if v != nil {
		_u.SetRisk(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *IncidentSuggestionUpdate) SetTitle(v string) *IncidentSuggestionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *IncidentSuggestionUpdate) SetNillableTitle(v *string) *IncidentSuggestionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *IncidentSuggestionUpdate) SetDescription(v string) *IncidentSuggestionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *IncidentSuggestionUpdate) SetNillableDescription(v *string) *IncidentSuggestionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *IncidentSuggestionUpdate) ClearDescription() *IncidentSuggestionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetCommand sets the "command" field.
func (_u *IncidentSuggestionUpdate) SetCommand(v string) *IncidentSuggestionUpdate {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *IncidentSuggestionUpdate) SetNillableCommand(v *string) *IncidentSuggestionUpdate {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *IncidentSuggestionUpdate) ClearCommand() *IncidentSuggestionUpdate {
	_u.mutation.ClearCommand()
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *IncidentSuggestionUpdate) SetFilePath(v string) *IncidentSuggestionUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *IncidentSuggestionUpdate) SetNillableFilePath(v *string) *IncidentSuggestionUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// ClearFilePath clears the value of the "file_path" field.
func (_u *IncidentSuggestionUpdate) ClearFilePath() *IncidentSuggestionUpdate {
	_u.mutation.ClearFilePath()
	return _u
}

// SetOriginalCode sets the "original_code" field.
func (_u *IncidentSuggestionUpdate) SetOriginalCode(v string) *IncidentSuggestionUpdate {
	_u.mutation.SetOriginalCode(v)
	return _u
}

// SetNillableOriginalCode sets the "original_code" field if the given value is not nil.
func (_u *IncidentSuggestionUpdate) SetNillableOriginalCode(v *string) *IncidentSuggestionUpdate {
	if v != nil {
		_u.SetOriginalCode(*v)
	}
	return _u
}

// ClearOriginalCode clears the value of the "original_code" field.
func (_u *IncidentSuggestionUpdate) ClearOriginalCode() *IncidentSuggestionUpdate {
	_u.mutation.ClearOriginalCode()
	return _u
}

// SetSuggestedCode sets the "suggested_code" field.
func (_u *IncidentSuggestionUpdate) SetSuggestedCode(v string) *IncidentSuggestionUpdate {
	_u.mutation.SetSuggestedCode(v)
	return _u
}

// SetNillableSuggestedCode sets the "suggested_code" field if the given value is not nil.
func (_u *IncidentSuggestionUpdate) SetNillableSuggestedCode(v *string) *IncidentSuggestionUpdate {
	if v != nil {
		_u.SetSuggestedCode(*v)
	}
	return _u
}

// ClearSuggestedCode clears the value of the "suggested_code" field.
func (_u *IncidentSuggestionUpdate) ClearSuggestedCode() *IncidentSuggestionUpdate {
	_u.mutation.ClearSuggestedCode()
	return _u
}

// SetUserEditedCode sets the "user_edited_code" field.
func (_u *IncidentSuggestionUpdate) SetUserEditedCode(v string) *IncidentSuggestionUpdate {
	_u.mutation.SetUserEditedCode(v)
	return _u
}

// SetNillableUserEditedCode sets the "user_edited_code" field if the given value is not nil.
func (_u *IncidentSuggestionUpdate) SetNillableUserEditedCode(v *string) *IncidentSuggestionUpdate {
	if v != nil {
		_u.SetUserEditedCode(*v)
	}
	return _u
}

// ClearUserEditedCode clears the value of the "user_edited_code" field.
func (_u *IncidentSuggestionUpdate) ClearUserEditedCode() *IncidentSuggestionUpdate {
	_u.mutation.ClearUserEditedCode()
	return _u
}

// SetRepo sets the "repo" field.
func (_u *IncidentSuggestionUpdate) SetRepo(v string) *IncidentSuggestionUpdate {
	_u.mutation.SetRepo(v)
	return _u
}

// SetNillableRepo sets the "repo" field if the given value is not nil.
func (_u *IncidentSuggestionUpdate) SetNillableRepo(v *string) *IncidentSuggestionUpdate {
	if v != nil {
		_u.SetRepo(*v)
	}
	return _u
}

// ClearRepo clears the value of the "repo" field.
func (_u *IncidentSuggestionUpdate) ClearRepo() *IncidentSuggestionUpdate {
	_u.mutation.ClearRepo()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *IncidentSuggestionUpdate) SetPrURL(v string) *IncidentSuggestionUpdate {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *IncidentSuggestionUpdate) SetNillablePrURL(v *string) *IncidentSuggestionUpdate {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *IncidentSuggestionUpdate) ClearPrURL() *IncidentSuggestionUpdate {
	_u.mutation.ClearPrURL()
	return _u
}

// SetPrNumber sets the "pr_number" field.
func (_u *IncidentSuggestionUpdate) SetPrNumber(v int) *IncidentSuggestionUpdate {
	_u.mutation.ResetPrNumber()
	_u.mutation.SetPrNumber(v)
	return _u
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_u *IncidentSuggestionUpdate) SetNillablePrNumber(v *int) *IncidentSuggestionUpdate {
	if v != nil {
		_u.SetPrNumber(*v)
	}
	return _u
}

// AddPrNumber adds value to the "pr_number" field.
func (_u *IncidentSuggestionUpdate) AddPrNumber(v int) *IncidentSuggestionUpdate {
	_u.mutation.AddPrNumber(v)
	return _u
}

// ClearPrNumber clears the value of the "pr_number" field.
func (_u *IncidentSuggestionUpdate) ClearPrNumber() *IncidentSuggestionUpdate {
	_u.mutation.ClearPrNumber()
	return _u
}

// SetCreatedBranch sets the "created_branch" field.
func (_u *IncidentSuggestionUpdate) SetCreatedBranch(v string) *IncidentSuggestionUpdate {
	_u.mutation.SetCreatedBranch(v)
	return _u
}

// SetNillableCreatedBranch sets the "created_branch" field if the given value is not nil.
func (_u *IncidentSuggestionUpdate) SetNillableCreatedBranch(v *string) *IncidentSuggestionUpdate {
	if v != nil {
		_u.SetCreatedBranch(*v)
	}
	return _u
}

// ClearCreatedBranch clears the value of the "created_branch" field.
func (_u *IncidentSuggestionUpdate) ClearCreatedBranch() *IncidentSuggestionUpdate {
	_u.mutation.ClearCreatedBranch()
	return _u
}

// SetAppliedAt sets the "applied_at" field.
func (_u *IncidentSuggestionUpdate) SetAppliedAt(v time.Time) *IncidentSuggestionUpdate {
	_u.mutation.SetAppliedAt(v)
	return _u
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_u *IncidentSuggestionUpdate) SetNillableAppliedAt(v *time.Time) *IncidentSuggestionUpdate {
	if v != nil {
		_u.SetAppliedAt(*v)
	}
	return _u
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (_u *IncidentSuggestionUpdate) ClearAppliedAt() *IncidentSuggestionUpdate {
	_u.mutation.ClearAppliedAt()
	return _u
}

// Mutation returns the IncidentSuggestionMutation object of the builder.
func (_u *IncidentSuggestionUpdate) Mutation() *IncidentSuggestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IncidentSuggestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentSuggestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IncidentSuggestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentSuggestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentSuggestionUpdate) check() error {
	if v, ok := _u.mutation.SuggestionType(); ok {
		if err := incidentsuggestion.SuggestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "suggestion_type", err: fmt.Errorf(`ent: validator failed for field "IncidentSuggestion.suggestion_type": %w`, err)}
		}
	}
	if _u.mutation.IncidentCleared() && len(_u.mutation.IncidentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IncidentSuggestion.incident"`)
	}
	return nil
}

func (_u *IncidentSuggestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incidentsuggestion.Table, incidentsuggestion.Columns, sqlgraph.NewFieldSpec(incidentsuggestion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SuggestionType(); ok {
		_spec.SetField(incidentsuggestion.FieldSuggestionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Risk(); ok {
		_spec.SetField(incidentsuggestion.FieldRisk, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(incidentsuggestion.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(incidentsuggestion.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(incidentsuggestion.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(incidentsuggestion.FieldCommand, field.TypeString, value)
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(incidentsuggestion.FieldCommand, field.TypeString)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(incidentsuggestion.FieldFilePath, field.TypeString, value)
	}
	if _u.mutation.FilePathCleared() {
		_spec.ClearField(incidentsuggestion.FieldFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.OriginalCode(); ok {
		_spec.SetField(incidentsuggestion.FieldOriginalCode, field.TypeString, value)
	}
	if _u.mutation.OriginalCodeCleared() {
		_spec.ClearField(incidentsuggestion.FieldOriginalCode, field.TypeString)
	}
	if value, ok := _u.mutation.SuggestedCode(); ok {
		_spec.SetField(incidentsuggestion.FieldSuggestedCode, field.TypeString, value)
	}
	if _u.mutation.SuggestedCodeCleared() {
		_spec.ClearField(incidentsuggestion.FieldSuggestedCode, field.TypeString)
	}
	if value, ok := _u.mutation.UserEditedCode(); ok {
		_spec.SetField(incidentsuggestion.FieldUserEditedCode, field.TypeString, value)
	}
	if _u.mutation.UserEditedCodeCleared() {
		_spec.ClearField(incidentsuggestion.FieldUserEditedCode, field.TypeString)
	}
	if value, ok := _u.mutation.Repo(); ok {
		_spec.SetField(incidentsuggestion.FieldRepo, field.TypeString, value)
	}
	if _u.mutation.RepoCleared() {
		_spec.ClearField(incidentsuggestion.FieldRepo, field.TypeString)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(incidentsuggestion.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(incidentsuggestion.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.PrNumber(); ok {
		_spec.SetField(incidentsuggestion.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrNumber(); ok {
		_spec.AddField(incidentsuggestion.FieldPrNumber, field.TypeInt, value)
	}
	if _u.mutation.PrNumberCleared() {
		_spec.ClearField(incidentsuggestion.FieldPrNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedBranch(); ok {
		_spec.SetField(incidentsuggestion.FieldCreatedBranch, field.TypeString, value)
	}
	if _u.mutation.CreatedBranchCleared() {
		_spec.ClearField(incidentsuggestion.FieldCreatedBranch, field.TypeString)
	}
	if value, ok := _u.mutation.AppliedAt(); ok {
		_spec.SetField(incidentsuggestion.FieldAppliedAt, field.TypeTime, value)
	}
	if _u.mutation.AppliedAtCleared() {
		_spec.ClearField(incidentsuggestion.FieldAppliedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incidentsuggestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IncidentSuggestionUpdateOne is the builder for updating a single IncidentSuggestion entity.
type IncidentSuggestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IncidentSuggestionMutation
}

// SetSuggestionType sets the "suggestion_type" field.
func (_u *IncidentSuggestionUpdateOne) SetSuggestionType(v incidentsuggestion.SuggestionType) *IncidentSuggestionUpdateOne {
	_u.mutation.SetSuggestionType(v)
	return _u
}

// SetNillableSuggestionType sets the "suggestion_type" field if the given value is not nil.
func (_u *IncidentSuggestionUpdateOne) SetNillableSuggestionType(v *incidentsuggestion.SuggestionType) *IncidentSuggestionUpdateOne {
	if v != nil {
		_u.SetSuggestionType(*v)
	}
	return _u
}

// SetRisk sets the "risk" field.
func (_u *IncidentSuggestionUpdateOne) SetRisk(v string) *IncidentSuggestionUpdateOne {
	_u.mutation.SetRisk(v)
	return _u
}

// SetNillableRisk sets the "risk" field if the given value is not nil.
func (_u *IncidentSuggestionUpdateOne) SetNillableRisk(v *string) *IncidentSuggestionUpdateOne {
	if v != nil {
		_u.SetRisk(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *IncidentSuggestionUpdateOne) SetTitle(v string) *IncidentSuggestionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *IncidentSuggestionUpdateOne) SetNillableTitle(v *string) *IncidentSuggestionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *IncidentSuggestionUpdateOne) SetDescription(v string) *IncidentSuggestionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *IncidentSuggestionUpdateOne) SetNillableDescription(v *string) *IncidentSuggestionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *IncidentSuggestionUpdateOne) ClearDescription() *IncidentSuggestionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetCommand sets the "command" field.
func (_u *IncidentSuggestionUpdateOne) SetCommand(v string) *IncidentSuggestionUpdateOne {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *IncidentSuggestionUpdateOne) SetNillableCommand(v *string) *IncidentSuggestionUpdateOne {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *IncidentSuggestionUpdateOne) ClearCommand() *IncidentSuggestionUpdateOne {
	_u.mutation.ClearCommand()
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *IncidentSuggestionUpdateOne) SetFilePath(v string) *IncidentSuggestionUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *IncidentSuggestionUpdateOne) SetNillableFilePath(v *string) *IncidentSuggestionUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// ClearFilePath clears the value of the "file_path" field.
func (_u *IncidentSuggestionUpdateOne) ClearFilePath() *IncidentSuggestionUpdateOne {
	_u.mutation.ClearFilePath()
	return _u
}

// SetOriginalCode sets the "original_code" field.
func (_u *IncidentSuggestionUpdateOne) SetOriginalCode(v string) *IncidentSuggestionUpdateOne {
	_u.mutation.SetOriginalCode(v)
	return _u
}

// SetNillableOriginalCode sets the "original_code" field if the given value is not nil.
func (_u *IncidentSuggestionUpdateOne) SetNillableOriginalCode(v *string) *IncidentSuggestionUpdateOne {
	if v != nil {
		_u.SetOriginalCode(*v)
	}
	return _u
}

// ClearOriginalCode clears the value of the "original_code" field.
func (_u *IncidentSuggestionUpdateOne) ClearOriginalCode() *IncidentSuggestionUpdateOne {
	_u.mutation.ClearOriginalCode()
	return _u
}

// SetSuggestedCode sets the "suggested_code" field.
func (_u *IncidentSuggestionUpdateOne) SetSuggestedCode(v string) *IncidentSuggestionUpdateOne {
	_u.mutation.SetSuggestedCode(v)
	return _u
}

// SetNillableSuggestedCode sets the "suggested_code" field if the given value is not nil.
func (_u *IncidentSuggestionUpdateOne) SetNillableSuggestedCode(v *string) *IncidentSuggestionUpdateOne {
	if v != nil {
		_u.SetSuggestedCode(*v)
	}
	return _u
}

// ClearSuggestedCode clears the value of the "suggested_code" field.
func (_u *IncidentSuggestionUpdateOne) ClearSuggestedCode() *IncidentSuggestionUpdateOne {
	_u.mutation.ClearSuggestedCode()
	return _u
}

// SetUserEditedCode sets the "user_edited_code" field.
func (_u *IncidentSuggestionUpdateOne) SetUserEditedCode(v string) *IncidentSuggestionUpdateOne {
	_u.mutation.SetUserEditedCode(v)
	return _u
}

// SetNillableUserEditedCode sets the "user_edited_code" field if the given value is not nil.
func (_u *IncidentSuggestionUpdateOne) SetNillableUserEditedCode(v *string) *IncidentSuggestionUpdateOne {
	if v != nil {
		_u.SetUserEditedCode(*v)
	}
	return _u
}

// ClearUserEditedCode clears the value of the "user_edited_code" field.
func (_u *IncidentSuggestionUpdateOne) ClearUserEditedCode() *IncidentSuggestionUpdateOne {
	_u.mutation.ClearUserEditedCode()
	return _u
}

// SetRepo sets the "repo" field.
func (_u *IncidentSuggestionUpdateOne) SetRepo(v string) *IncidentSuggestionUpdateOne {
	_u.mutation.SetRepo(v)
	return _u
}

// SetNillableRepo sets the "repo" field if the given value is not nil.
func (_u *IncidentSuggestionUpdateOne) SetNillableRepo(v *string) *IncidentSuggestionUpdateOne {
	if v != nil {
		_u.SetRepo(*v)
	}
	return _u
}

// ClearRepo clears the value of the "repo" field.
func (_u *IncidentSuggestionUpdateOne) ClearRepo() *IncidentSuggestionUpdateOne {
	_u.mutation.ClearRepo()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *IncidentSuggestionUpdateOne) SetPrURL(v string) *IncidentSuggestionUpdateOne {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *IncidentSuggestionUpdateOne) SetNillablePrURL(v *string) *IncidentSuggestionUpdateOne {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *IncidentSuggestionUpdateOne) ClearPrURL() *IncidentSuggestionUpdateOne {
	_u.mutation.ClearPrURL()
	return _u
}

// SetPrNumber sets the "pr_number" field.
func (_u *IncidentSuggestionUpdateOne) SetPrNumber(v int) *IncidentSuggestionUpdateOne {
	_u.mutation.ResetPrNumber()
	_u.mutation.SetPrNumber(v)
	return _u
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_u *IncidentSuggestionUpdateOne) SetNillablePrNumber(v *int) *IncidentSuggestionUpdateOne {
	if v != nil {
		_u.SetPrNumber(*v)
	}
	return _u
}

// AddPrNumber adds value to the "pr_number" field.
func (_u *IncidentSuggestionUpdateOne) AddPrNumber(v int) *IncidentSuggestionUpdateOne {
	_u.mutation.AddPrNumber(v)
	return _u
}

// ClearPrNumber clears the value of the "pr_number" field.
func (_u *IncidentSuggestionUpdateOne) ClearPrNumber() *IncidentSuggestionUpdateOne {
	_u.mutation.ClearPrNumber()
	return _u
}

// SetCreatedBranch sets the "created_branch" field.
func (_u *IncidentSuggestionUpdateOne) SetCreatedBranch(v string) *IncidentSuggestionUpdateOne {
	_u.mutation.SetCreatedBranch(v)
	return _u
}

// SetNillableCreatedBranch sets the "created_branch" field if the given value is not nil.
func (_u *IncidentSuggestionUpdateOne) SetNillableCreatedBranch(v *string) *IncidentSuggestionUpdateOne {
	if v != nil {
		_u.SetCreatedBranch(*v)
	}
	return _u
}

// ClearCreatedBranch clears the value of the "created_branch" field.
func (_u *IncidentSuggestionUpdateOne) ClearCreatedBranch() *IncidentSuggestionUpdateOne {
	_u.mutation.ClearCreatedBranch()
	return _u
}

// SetAppliedAt sets the "applied_at" field.
func (_u *IncidentSuggestionUpdateOne) SetAppliedAt(v time.Time) *IncidentSuggestionUpdateOne {
	_u.mutation.SetAppliedAt(v)
	return _u
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_u *IncidentSuggestionUpdateOne) SetNillableAppliedAt(v *time.Time) *IncidentSuggestionUpdateOne {
	if v != nil {
		_u.SetAppliedAt(*v)
	}
	return _u
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (_u *IncidentSuggestionUpdateOne) ClearAppliedAt() *IncidentSuggestionUpdateOne {
	_u.mutation.ClearAppliedAt()
	return _u
}

// Mutation returns the IncidentSuggestionMutation object of the builder.
func (_u *IncidentSuggestionUpdateOne) Mutation() *IncidentSuggestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the IncidentSuggestionUpdate builder.
func (_u *IncidentSuggestionUpdateOne) Where(ps ...predicate.IncidentSuggestion) *IncidentSuggestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IncidentSuggestionUpdateOne) Select(field string, fields ...string) *IncidentSuggestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IncidentSuggestion entity.
func (_u *IncidentSuggestionUpdateOne) Save(ctx context.Context) (*IncidentSuggestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentSuggestionUpdateOne) SaveX(ctx context.Context) *IncidentSuggestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IncidentSuggestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentSuggestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentSuggestionUpdateOne) check() error {
	if v, ok := _u.mutation.SuggestionType(); ok {
		if err := incidentsuggestion.SuggestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "suggestion_type", err: fmt.Errorf(`ent: validator failed for field "IncidentSuggestion.suggestion_type": %w`, err)}
		}
	}
	if _u.mutation.IncidentCleared() && len(_u.mutation.IncidentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IncidentSuggestion.incident"`)
	}
	return nil
}

func (_u *IncidentSuggestionUpdateOne) sqlSave(ctx context.Context) (_node *IncidentSuggestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incidentsuggestion.Table, incidentsuggestion.Columns, sqlgraph.NewFieldSpec(incidentsuggestion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IncidentSuggestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, incidentsuggestion.FieldID)
		for _, f := range fields {
			if !incidentsuggestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != incidentsuggestion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SuggestionType(); ok {
		_spec.SetField(incidentsuggestion.FieldSuggestionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Risk(); ok {
		_spec.SetField(incidentsuggestion.FieldRisk, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(incidentsuggestion.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(incidentsuggestion.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(incidentsuggestion.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(incidentsuggestion.FieldCommand, field.TypeString, value)
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(incidentsuggestion.FieldCommand, field.TypeString)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(incidentsuggestion.FieldFilePath, field.TypeString, value)
	}
	if _u.mutation.FilePathCleared() {
		_spec.ClearField(incidentsuggestion.FieldFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.OriginalCode(); ok {
		_spec.SetField(incidentsuggestion.FieldOriginalCode, field.TypeString, value)
	}
	if _u.mutation.OriginalCodeCleared() {
		_spec.ClearField(incidentsuggestion.FieldOriginalCode, field.TypeString)
	}
	if value, ok := _u.mutation.SuggestedCode(); ok {
		_spec.SetField(incidentsuggestion.FieldSuggestedCode, field.TypeString, value)
	}
	if _u.mutation.SuggestedCodeCleared() {
		_spec.ClearField(incidentsuggestion.FieldSuggestedCode, field.TypeString)
	}
	if value, ok := _u.mutation.UserEditedCode(); ok {
		_spec.SetField(incidentsuggestion.FieldUserEditedCode, field.TypeString, value)
	}
	if _u.mutation.UserEditedCodeCleared() {
		_spec.ClearField(incidentsuggestion.FieldUserEditedCode, field.TypeString)
	}
	if value, ok := _u.mutation.Repo(); ok {
		_spec.SetField(incidentsuggestion.FieldRepo, field.TypeString, value)
	}
	if _u.mutation.RepoCleared() {
		_spec.ClearField(incidentsuggestion.FieldRepo, field.TypeString)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(incidentsuggestion.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(incidentsuggestion.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.PrNumber(); ok {
		_spec.SetField(incidentsuggestion.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrNumber(); ok {
		_spec.AddField(incidentsuggestion.FieldPrNumber, field.TypeInt, value)
	}
	if _u.mutation.PrNumberCleared() {
		_spec.ClearField(incidentsuggestion.FieldPrNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedBranch(); ok {
		_spec.SetField(incidentsuggestion.FieldCreatedBranch, field.TypeString, value)
	}
	if _u.mutation.CreatedBranchCleared() {
		_spec.ClearField(incidentsuggestion.FieldCreatedBranch, field.TypeString)
	}
	if value, ok := _u.mutation.AppliedAt(); ok {
		_spec.SetField(incidentsuggestion.FieldAppliedAt, field.TypeTime, value)
	}
	if _u.mutation.AppliedAtCleared() {
		_spec.ClearField(incidentsuggestion.FieldAppliedAt, field.TypeTime)
	}
	_node = &IncidentSuggestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incidentsuggestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
