package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatSession holds the schema definition for the ChatSession entity.
// One logical conversation: UI-shaped messages plus the model-shaped context
// history. May be linked to an incident (RCA session or Q&A follow-up).
type ChatSession struct {
	ent.Schema
}

// Fields of the ChatSession.
func (ChatSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("chat_session_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("title").
			Optional(),
		field.JSON("messages", []map[string]interface{}{}).
			Optional().
			Comment("UI-shaped projection; assistant entries keep toolCalls[]"),
		field.JSON("llm_context_history", []map[string]interface{}{}).
			Optional().
			Comment("Model-shaped context; grows monotonically except via compression"),
		field.JSON("ui_state", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("active", "in_progress", "completed", "cancelled").
			Default("active"),
		field.String("incident_id").
			Optional().
			Nillable(),
		field.String("trigger_source").
			Optional().
			Nillable().
			Comment("Webhook source that auto-created this session (RCA guard key)"),
		field.JSON("trigger_metadata", map[string]interface{}{}).
			Optional(),
		field.JSON("pending_context", []map[string]interface{}{}).
			Optional().
			Comment("Context-only notes queued by other workers (merge updates); drained into llm_context_history before the next turn"),
		field.Bool("is_active").
			Default(true),
		field.Bool("placeholder_warning").
			Default(false).
			Comment("Set when the last turn contained placeholder tokens; next system prompt reinforces tool use"),
		field.Text("last_tool_failure").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ChatSession.
func (ChatSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("incident", Incident.Type).
			Ref("chat_sessions").
			Field("incident_id").
			Unique(),
	}
}

// Indexes of the ChatSession.
func (ChatSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "updated_at"),
		index.Fields("incident_id"),
		index.Fields("user_id", "incident_id", "trigger_source"),
		index.Fields("status"),
	}
}
