package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IncidentThought holds the schema definition for the IncidentThought entity.
// Append-only investigation trace written while an RCA is running.
type IncidentThought struct {
	ent.Schema
}

// Fields of the IncidentThought.
func (IncidentThought) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("thought_id").
			Unique().
			Immutable(),
		field.String("incident_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("thought_type").
			Default("analysis"),
		field.Text("content"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the IncidentThought.
func (IncidentThought) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("incident", Incident.Type).
			Ref("thoughts").
			Field("incident_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the IncidentThought.
func (IncidentThought) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("incident_id", "created_at"),
		index.Fields("user_id"),
	}
}
