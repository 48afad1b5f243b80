// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aurora-sre/aurora/ent/incident"
	"github.com/aurora-sre/aurora/ent/incidentsuggestion"
)

// IncidentSuggestion is the model entity for the IncidentSuggestion schema.
type IncidentSuggestion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// IncidentID holds the value of the "incident_id" field.
	IncidentID string `json:"incident_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SuggestionType holds the value of the "suggestion_type" field.
	SuggestionType incidentsuggestion.SuggestionType `json:"suggestion_type,omitempty"`
	// Risk holds the value of the "risk" field.
	Risk string `json:"risk,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Executable command for diagnostic/mitigation suggestions
	Command *string `json:"command,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath *string `json:"file_path,omitempty"`
	// OriginalCode holds the value of the "original_code" field.
	OriginalCode *string `json:"original_code,omitempty"`
	// SuggestedCode holds the value of the "suggested_code" field.
	SuggestedCode *string `json:"suggested_code,omitempty"`
	// UserEditedCode holds the value of the "user_edited_code" field.
	UserEditedCode *string `json:"user_edited_code,omitempty"`
	// Repo holds the value of the "repo" field.
	Repo *string `json:"repo,omitempty"`
	// PrURL holds the value of the "pr_url" field.
	PrURL *string `json:"pr_url,omitempty"`
	// PrNumber holds the value of the "pr_number" field.
	PrNumber *int `json:"pr_number,omitempty"`
	// CreatedBranch holds the value of the "created_branch" field.
	CreatedBranch *string `json:"created_branch,omitempty"`
	// AppliedAt holds the value of the "applied_at" field.
	AppliedAt *time.Time `json:"applied_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IncidentSuggestionQuery when eager-loading is set.
	Edges        IncidentSuggestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IncidentSuggestionEdges holds the relations/edges for other nodes in the graph.
type IncidentSuggestionEdges struct {
	// Incident holds the value of the incident edge.
	Incident *Incident `json:"incident,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// IncidentOrErr returns the Incident value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IncidentSuggestionEdges) IncidentOrErr() (*Incident, error) {
	if e.Incident != nil {
		return e.Incident, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: incident.Label}
	}
	return nil, &NotLoadedError{edge: "incident"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IncidentSuggestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case incidentsuggestion.FieldPrNumber:
			values[i] = new(sql.NullInt64)
		case incidentsuggestion.FieldID, incidentsuggestion.FieldIncidentID, incidentsuggestion.FieldUserID, incidentsuggestion.FieldSuggestionType, incidentsuggestion.FieldRisk, incidentsuggestion.FieldTitle, incidentsuggestion.FieldDescription, incidentsuggestion.FieldCommand, incidentsuggestion.FieldFilePath, incidentsuggestion.FieldOriginalCode, incidentsuggestion.FieldSuggestedCode, incidentsuggestion.FieldUserEditedCode, incidentsuggestion.FieldRepo, incidentsuggestion.FieldPrURL, incidentsuggestion.FieldCreatedBranch:
			values[i] = new(sql.NullString)
		case incidentsuggestion.FieldAppliedAt, incidentsuggestion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IncidentSuggestion fields.
func (_m *IncidentSuggestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case incidentsuggestion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case incidentsuggestion.FieldIncidentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field incident_id", values[i])
			} else if value.Valid {
				_m.IncidentID = value.String
			}
		case incidentsuggestion.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case incidentsuggestion.FieldSuggestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suggestion_type", values[i])
			} else if value.Valid {
				_m.SuggestionType = incidentsuggestion.SuggestionType(value.String)
			}
		case incidentsuggestion.FieldRisk:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk", values[i])
			} else if value.Valid {
				_m.Risk = value.String
			}
		case incidentsuggestion.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case incidentsuggestion.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case incidentsuggestion.FieldCommand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field command", values[i])
			} else if value.Valid {
				_m.Command = new(string)
				*_m.Command = value.String
			}
		case incidentsuggestion.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = new(string)
				*_m.FilePath = value.String
			}
		case incidentsuggestion.FieldOriginalCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_code", values[i])
			} else if value.Valid {
				_m.OriginalCode = new(string)
				*_m.OriginalCode = value.String
			}
		case incidentsuggestion.FieldSuggestedCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suggested_code", values[i])
			} else if value.Valid {
				_m.SuggestedCode = new(string)
				*_m.SuggestedCode = value.String
			}
		case incidentsuggestion.FieldUserEditedCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_edited_code", values[i])
			} else if value.Valid {
				_m.UserEditedCode = new(string)
				*_m.UserEditedCode = value.String
			}
		case incidentsuggestion.FieldRepo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo", values[i])
			} else if value.Valid {
				_m.Repo = new(string)
				*_m.Repo = value.String
			}
		case incidentsuggestion.FieldPrURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pr_url", values[i])
			} else if value.Valid {
				_m.PrURL = new(string)
				*_m.PrURL = value.String
			}
		case incidentsuggestion.FieldPrNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pr_number", values[i])
			} else if value.Valid {
				_m.PrNumber = new(int)
				*_m.PrNumber = int(value.Int64)
			}
		case incidentsuggestion.FieldCreatedBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_branch", values[i])
			} else if value.Valid {
				_m.CreatedBranch = new(string)
				*_m.CreatedBranch = value.String
			}
		case incidentsuggestion.FieldAppliedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field applied_at", values[i])
			} else if value.Valid {
				_m.AppliedAt = new(time.Time)
				*_m.AppliedAt = value.Time
			}
		case incidentsuggestion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IncidentSuggestion.
// This includes values selected through modifiers, order, etc.
func (_m *IncidentSuggestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryIncident queries the "incident" edge of the IncidentSuggestion entity.
func (_m *IncidentSuggestion) QueryIncident() *IncidentQuery {
	return NewIncidentSuggestionClient(_m.config).QueryIncident(_m)
}

// Update returns a builder for updating this IncidentSuggestion.
// Note that you need to call IncidentSuggestion.Unwrap() before calling this method if this IncidentSuggestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IncidentSuggestion) Update() *IncidentSuggestionUpdateOne {
	return NewIncidentSuggestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IncidentSuggestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IncidentSuggestion) Unwrap() *IncidentSuggestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IncidentSuggestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IncidentSuggestion) String() string {
	var builder strings.Builder
	builder.WriteString("IncidentSuggestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("incident_id=")
	builder.WriteString(_m.IncidentID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("suggestion_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuggestionType))
	builder.WriteString(", ")
	builder.WriteString("risk=")
	builder.WriteString(_m.Risk)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	if v := _m.Command; v != nil {
		builder.WriteString("command=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FilePath; v != nil {
		builder.WriteString("file_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OriginalCode; v != nil {
		builder.WriteString("original_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SuggestedCode; v != nil {
		builder.WriteString("suggested_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.UserEditedCode; v != nil {
		builder.WriteString("user_edited_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Repo; v != nil {
		builder.WriteString("repo=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PrURL; v != nil {
		builder.WriteString("pr_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PrNumber; v != nil {
		builder.WriteString("pr_number=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CreatedBranch; v != nil {
		builder.WriteString("created_branch=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AppliedAt; v != nil {
		builder.WriteString("applied_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// IncidentSuggestions is a parsable slice of IncidentSuggestion.
type IncidentSuggestions []*IncidentSuggestion
