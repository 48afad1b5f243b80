package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AlertEvent holds the schema definition for the AlertEvent entity.
// Immutable raw events as received from monitoring sources. All sources share
// one table; the (source, dedupe_key, user_id) unique index makes duplicate
// webhook deliveries idempotent.
type AlertEvent struct {
	ent.Schema
}

// Fields of the AlertEvent.
func (AlertEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("alert_event_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("source").
			Immutable().
			Comment("pagerduty, grafana, datadog, netdata, splunk, dynatrace, jenkins"),
		field.String("external_id").
			Immutable().
			Comment("Source-assigned incident/alert id"),
		field.String("dedupe_key").
			Immutable().
			Comment("Source-specific idempotency fingerprint (external id + event kind)"),
		field.String("title").
			Optional(),
		field.String("severity").
			Optional(),
		field.String("service").
			Optional(),
		field.String("status").
			Optional().
			Comment("Source status as received, before normalization"),
		field.String("event_kind").
			Optional().
			Comment("Source event kind (incident.triggered, firing, ...)"),
		field.JSON("payload", map[string]interface{}{}).
			Immutable().
			Comment("Full original webhook payload, opaque"),
		field.Time("received_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AlertEvent.
func (AlertEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source", "dedupe_key", "user_id").
			Unique(),
		index.Fields("user_id", "received_at"),
		index.Fields("source", "external_id"),
	}
}
