package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IncidentAlert holds the schema definition for the IncidentAlert edge entity.
// Links an Incident to an AlertEvent with the correlation decision that attached it.
type IncidentAlert struct {
	ent.Schema
}

// Fields of the IncidentAlert.
func (IncidentAlert) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("incident_alert_id").
			Unique().
			Immutable(),
		field.String("incident_id").
			Immutable(),
		field.String("alert_event_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("correlation_strategy").
			Values("primary", "identity", "service_fingerprint", "service_time_window", "manual"),
		field.Float("correlation_score").
			Default(1.0).
			Comment("In [0,1]; 1.0 for primary/identity/manual"),
		field.JSON("correlation_details", map[string]interface{}{}).
			Optional(),
		field.Time("received_at").
			Default(time.Now).
			Immutable().
			Comment("Copied from the alert event; display ordering within an incident"),
	}
}

// Edges of the IncidentAlert.
func (IncidentAlert) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("incident", Incident.Type).
			Ref("alerts").
			Field("incident_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the IncidentAlert.
func (IncidentAlert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("incident_id", "alert_event_id").
			Unique(),
		index.Fields("incident_id", "received_at"),
		index.Fields("user_id"),
	}
}
