package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IncidentCitation holds the schema definition for the IncidentCitation entity.
// Numbered evidence item produced by tool executions during an RCA.
type IncidentCitation struct {
	ent.Schema
}

// Fields of the IncidentCitation.
func (IncidentCitation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("citation_id").
			Unique().
			Immutable(),
		field.String("incident_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("citation_key").
			Comment("Numeric string; display order is by numeric value"),
		field.String("tool_name"),
		field.Text("command").
			Optional(),
		field.Text("output").
			Optional(),
		field.Time("executed_at").
			Default(time.Now),
	}
}

// Edges of the IncidentCitation.
func (IncidentCitation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("incident", Incident.Type).
			Ref("citations").
			Field("incident_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the IncidentCitation.
func (IncidentCitation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("incident_id", "citation_key").
			Unique(),
		index.Fields("user_id"),
	}
}
