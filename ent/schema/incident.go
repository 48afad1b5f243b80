package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Incident holds the schema definition for the Incident entity.
// One durable record per ongoing operational problem, aggregating one or more alerts.
type Incident struct {
	ent.Schema
}

// Fields of the Incident.
func (Incident) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("incident_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable().
			Comment("Tenant owner — every query is RLS-filtered on this"),
		field.String("source_type").
			Immutable().
			Comment("Monitoring source of the primary alert (pagerduty, grafana, ...)"),
		field.String("source_alert_id").
			Immutable().
			Comment("External id of the primary alert"),
		field.Enum("status").
			Values("investigating", "analyzed", "resolved", "merged").
			Default("investigating"),
		field.Enum("aurora_status").
			Values("idle", "running", "complete", "error").
			Default("idle").
			Comment("RCA agent lifecycle for this incident"),
		field.String("severity").
			Default("unknown"),
		field.String("alert_title"),
		field.String("alert_service").
			Optional(),
		field.JSON("affected_services", []string{}).
			Optional().
			Comment("Set of service names touched by correlated alerts"),
		field.Int("correlated_alert_count").
			Default(1),
		field.Text("aurora_summary").
			Optional().
			Nillable().
			Comment("Model-generated incident summary; cleared on merge"),
		field.String("aurora_chat_session_id").
			Optional().
			Nillable().
			Comment("Primary RCA chat session"),
		field.String("active_tab").
			Optional().
			Nillable(),
		field.JSON("alert_metadata", map[string]interface{}{}).
			Optional().
			Comment("Provider-specific metadata; customFields.runbook_link lives here"),
		field.String("merged_into_incident_id").
			Optional().
			Nillable().
			Comment("Self-reference set by the manual merge operation"),
		field.String("slack_message_ts").
			Optional().
			Nillable().
			Comment("For Slack threading"),
		field.Time("started_at").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Incident.
func (Incident) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("alerts", IncidentAlert.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("thoughts", IncidentThought.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("citations", IncidentCitation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("suggestions", IncidentSuggestion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("chat_sessions", ChatSession.Type),
	}
}

// Indexes of the Incident.
func (Incident) Indexes() []ent.Index {
	return []ent.Index{
		// Idempotency key for webhook ingestion
		index.Fields("source_type", "source_alert_id", "user_id").
			Unique(),

		index.Fields("user_id", "status"),
		index.Fields("user_id", "started_at"),
		index.Fields("status", "started_at"),
	}
}
