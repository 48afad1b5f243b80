package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// Database-backed work queue: webhook processing, incident summaries, delayed
// RCA triggers, and merge context updates. Workers claim pending tasks with
// FOR UPDATE SKIP LOCKED ordered by scheduled_at.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("kind").
			Immutable().
			Comment("process_event, incident_summary, rca_trigger, context_update"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed", "cancelled").
			Default("pending"),
		field.String("incident_id").
			Optional().
			Nillable().
			Comment("Set for incident-scoped tasks so merges can cancel them"),
		field.Time("scheduled_at").
			Default(time.Now).
			Comment("Delayed tasks (RCA grace period) schedule into the future"),
		field.String("pod_id").
			Optional().
			Nillable(),
		field.Int("attempts").
			Default(0).
			Comment("Failed tasks requeue with backoff until the retry budget runs out"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "scheduled_at"),
		index.Fields("incident_id", "kind"),
		index.Fields("user_id"),

		// Orphan scan
		index.Fields("status", "last_heartbeat_at").
			Annotations(entsql.IndexWhere("status = 'in_progress'")),
	}
}
