package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IncidentSuggestion holds the schema definition for the IncidentSuggestion entity.
// Proposed next action emitted by the RCA agent. Fix-type suggestions carry a
// file patch that can be turned into a PR.
type IncidentSuggestion struct {
	ent.Schema
}

// Fields of the IncidentSuggestion.
func (IncidentSuggestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("suggestion_id").
			Unique().
			Immutable(),
		field.String("incident_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("suggestion_type").
			Values("diagnostic", "mitigation", "communication", "fix"),
		field.String("risk").
			Default("safe"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Text("command").
			Optional().
			Nillable().
			Comment("Executable command for diagnostic/mitigation suggestions"),

		// Fix-type patch fields
		field.String("file_path").
			Optional().
			Nillable(),
		field.Text("original_code").
			Optional().
			Nillable(),
		field.Text("suggested_code").
			Optional().
			Nillable(),
		field.Text("user_edited_code").
			Optional().
			Nillable(),
		field.String("repo").
			Optional().
			Nillable(),
		field.String("pr_url").
			Optional().
			Nillable(),
		field.Int("pr_number").
			Optional().
			Nillable(),
		field.String("created_branch").
			Optional().
			Nillable(),
		field.Time("applied_at").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the IncidentSuggestion.
func (IncidentSuggestion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("incident", Incident.Type).
			Ref("suggestions").
			Field("incident_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the IncidentSuggestion.
func (IncidentSuggestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("incident_id", "created_at"),
		index.Fields("user_id"),
	}
}
