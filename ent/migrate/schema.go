// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AlertEventsColumns holds the columns for the "alert_events" table.
	AlertEventsColumns = []*schema.Column{
		{Name: "alert_event_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "external_id", Type: field.TypeString},
		{Name: "dedupe_key", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "severity", Type: field.TypeString, Nullable: true},
		{Name: "service", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "event_kind", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "received_at", Type: field.TypeTime},
	}
	// AlertEventsTable holds the schema information for the "alert_events" table.
	AlertEventsTable = &schema.Table{
		Name:       "alert_events",
		Columns:    AlertEventsColumns,
		PrimaryKey: []*schema.Column{AlertEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "alertevent_source_dedupe_key_user_id",
				Unique:  true,
				Columns: []*schema.Column{AlertEventsColumns[2], AlertEventsColumns[4], AlertEventsColumns[1]},
			},
			{
				Name:    "alertevent_user_id_received_at",
				Unique:  false,
				Columns: []*schema.Column{AlertEventsColumns[1], AlertEventsColumns[11]},
			},
			{
				Name:    "alertevent_source_external_id",
				Unique:  false,
				Columns: []*schema.Column{AlertEventsColumns[2], AlertEventsColumns[3]},
			},
		},
	}
	// ChatSessionsColumns holds the columns for the "chat_sessions" table.
	ChatSessionsColumns = []*schema.Column{
		{Name: "chat_session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "messages", Type: field.TypeJSON, Nullable: true},
		{Name: "llm_context_history", Type: field.TypeJSON, Nullable: true},
		{Name: "ui_state", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "in_progress", "completed", "cancelled"}, Default: "active"},
		{Name: "trigger_source", Type: field.TypeString, Nullable: true},
		{Name: "trigger_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "pending_context", Type: field.TypeJSON, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "placeholder_warning", Type: field.TypeBool, Default: false},
		{Name: "last_tool_failure", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "incident_id", Type: field.TypeString, Nullable: true},
	}
	// ChatSessionsTable holds the schema information for the "chat_sessions" table.
	ChatSessionsTable = &schema.Table{
		Name:       "chat_sessions",
		Columns:    ChatSessionsColumns,
		PrimaryKey: []*schema.Column{ChatSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_sessions_incidents_chat_sessions",
				Columns:    []*schema.Column{ChatSessionsColumns[17]},
				RefColumns: []*schema.Column{IncidentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatsession_user_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[1], ChatSessionsColumns[16]},
			},
			{
				Name:    "chatsession_incident_id",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[17]},
			},
			{
				Name:    "chatsession_user_id_incident_id_trigger_source",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[1], ChatSessionsColumns[17], ChatSessionsColumns[7]},
			},
			{
				Name:    "chatsession_status",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[6]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// IncidentsColumns holds the columns for the "incidents" table.
	IncidentsColumns = []*schema.Column{
		{Name: "incident_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "source_type", Type: field.TypeString},
		{Name: "source_alert_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"investigating", "analyzed", "resolved", "merged"}, Default: "investigating"},
		{Name: "aurora_status", Type: field.TypeEnum, Enums: []string{"idle", "running", "complete", "error"}, Default: "idle"},
		{Name: "severity", Type: field.TypeString, Default: "unknown"},
		{Name: "alert_title", Type: field.TypeString},
		{Name: "alert_service", Type: field.TypeString, Nullable: true},
		{Name: "affected_services", Type: field.TypeJSON, Nullable: true},
		{Name: "correlated_alert_count", Type: field.TypeInt, Default: 1},
		{Name: "aurora_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "aurora_chat_session_id", Type: field.TypeString, Nullable: true},
		{Name: "active_tab", Type: field.TypeString, Nullable: true},
		{Name: "alert_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "merged_into_incident_id", Type: field.TypeString, Nullable: true},
		{Name: "slack_message_ts", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// IncidentsTable holds the schema information for the "incidents" table.
	IncidentsTable = &schema.Table{
		Name:       "incidents",
		Columns:    IncidentsColumns,
		PrimaryKey: []*schema.Column{IncidentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "incident_source_type_source_alert_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{IncidentsColumns[2], IncidentsColumns[3], IncidentsColumns[1]},
			},
			{
				Name:    "incident_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[1], IncidentsColumns[4]},
			},
			{
				Name:    "incident_user_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[1], IncidentsColumns[17]},
			},
			{
				Name:    "incident_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[4], IncidentsColumns[17]},
			},
		},
	}
	// IncidentAlertsColumns holds the columns for the "incident_alerts" table.
	IncidentAlertsColumns = []*schema.Column{
		{Name: "incident_alert_id", Type: field.TypeString, Unique: true},
		{Name: "alert_event_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "correlation_strategy", Type: field.TypeEnum, Enums: []string{"primary", "identity", "service_fingerprint", "service_time_window", "manual"}},
		{Name: "correlation_score", Type: field.TypeFloat64, Default: 1},
		{Name: "correlation_details", Type: field.TypeJSON, Nullable: true},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "incident_id", Type: field.TypeString},
	}
	// IncidentAlertsTable holds the schema information for the "incident_alerts" table.
	IncidentAlertsTable = &schema.Table{
		Name:       "incident_alerts",
		Columns:    IncidentAlertsColumns,
		PrimaryKey: []*schema.Column{IncidentAlertsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "incident_alerts_incidents_alerts",
				Columns:    []*schema.Column{IncidentAlertsColumns[7]},
				RefColumns: []*schema.Column{IncidentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "incidentalert_incident_id_alert_event_id",
				Unique:  true,
				Columns: []*schema.Column{IncidentAlertsColumns[7], IncidentAlertsColumns[1]},
			},
			{
				Name:    "incidentalert_incident_id_received_at",
				Unique:  false,
				Columns: []*schema.Column{IncidentAlertsColumns[7], IncidentAlertsColumns[6]},
			},
			{
				Name:    "incidentalert_user_id",
				Unique:  false,
				Columns: []*schema.Column{IncidentAlertsColumns[2]},
			},
		},
	}
	// IncidentCitationsColumns holds the columns for the "incident_citations" table.
	IncidentCitationsColumns = []*schema.Column{
		{Name: "citation_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "citation_key", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "command", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "executed_at", Type: field.TypeTime},
		{Name: "incident_id", Type: field.TypeString},
	}
	// IncidentCitationsTable holds the schema information for the "incident_citations" table.
	IncidentCitationsTable = &schema.Table{
		Name:       "incident_citations",
		Columns:    IncidentCitationsColumns,
		PrimaryKey: []*schema.Column{IncidentCitationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "incident_citations_incidents_citations",
				Columns:    []*schema.Column{IncidentCitationsColumns[7]},
				RefColumns: []*schema.Column{IncidentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "incidentcitation_incident_id_citation_key",
				Unique:  true,
				Columns: []*schema.Column{IncidentCitationsColumns[7], IncidentCitationsColumns[2]},
			},
			{
				Name:    "incidentcitation_user_id",
				Unique:  false,
				Columns: []*schema.Column{IncidentCitationsColumns[1]},
			},
		},
	}
	// IncidentSuggestionsColumns holds the columns for the "incident_suggestions" table.
	IncidentSuggestionsColumns = []*schema.Column{
		{Name: "suggestion_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "suggestion_type", Type: field.TypeEnum, Enums: []string{"diagnostic", "mitigation", "communication", "fix"}},
		{Name: "risk", Type: field.TypeString, Default: "safe"},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "command", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "file_path", Type: field.TypeString, Nullable: true},
		{Name: "original_code", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "suggested_code", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "user_edited_code", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "repo", Type: field.TypeString, Nullable: true},
		{Name: "pr_url", Type: field.TypeString, Nullable: true},
		{Name: "pr_number", Type: field.TypeInt, Nullable: true},
		{Name: "created_branch", Type: field.TypeString, Nullable: true},
		{Name: "applied_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "incident_id", Type: field.TypeString},
	}
	// IncidentSuggestionsTable holds the schema information for the "incident_suggestions" table.
	IncidentSuggestionsTable = &schema.Table{
		Name:       "incident_suggestions",
		Columns:    IncidentSuggestionsColumns,
		PrimaryKey: []*schema.Column{IncidentSuggestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "incident_suggestions_incidents_suggestions",
				Columns:    []*schema.Column{IncidentSuggestionsColumns[17]},
				RefColumns: []*schema.Column{IncidentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "incidentsuggestion_incident_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{IncidentSuggestionsColumns[17], IncidentSuggestionsColumns[16]},
			},
			{
				Name:    "incidentsuggestion_user_id",
				Unique:  false,
				Columns: []*schema.Column{IncidentSuggestionsColumns[1]},
			},
		},
	}
	// IncidentThoughtsColumns holds the columns for the "incident_thoughts" table.
	IncidentThoughtsColumns = []*schema.Column{
		{Name: "thought_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "thought_type", Type: field.TypeString, Default: "analysis"},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "incident_id", Type: field.TypeString},
	}
	// IncidentThoughtsTable holds the schema information for the "incident_thoughts" table.
	IncidentThoughtsTable = &schema.Table{
		Name:       "incident_thoughts",
		Columns:    IncidentThoughtsColumns,
		PrimaryKey: []*schema.Column{IncidentThoughtsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "incident_thoughts_incidents_thoughts",
				Columns:    []*schema.Column{IncidentThoughtsColumns[5]},
				RefColumns: []*schema.Column{IncidentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "incidentthought_incident_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{IncidentThoughtsColumns[5], IncidentThoughtsColumns[4]},
			},
			{
				Name:    "incidentthought_user_id",
				Unique:  false,
				Columns: []*schema.Column{IncidentThoughtsColumns[1]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "incident_id", Type: field.TypeString, Nullable: true},
		{Name: "scheduled_at", Type: field.TypeTime},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4], TasksColumns[6]},
			},
			{
				Name:    "task_incident_id_kind",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5], TasksColumns[2]},
			},
			{
				Name:    "task_user_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1]},
			},
			{
				Name:    "task_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4], TasksColumns[9]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'in_progress'",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AlertEventsTable,
		ChatSessionsTable,
		EventsTable,
		IncidentsTable,
		IncidentAlertsTable,
		IncidentCitationsTable,
		IncidentSuggestionsTable,
		IncidentThoughtsTable,
		TasksTable,
	}
)

func init() {
	ChatSessionsTable.ForeignKeys[0].RefTable = IncidentsTable
	IncidentAlertsTable.ForeignKeys[0].RefTable = IncidentsTable
	IncidentCitationsTable.ForeignKeys[0].RefTable = IncidentsTable
	IncidentSuggestionsTable.ForeignKeys[0].RefTable = IncidentsTable
	IncidentThoughtsTable.ForeignKeys[0].RefTable = IncidentsTable
}
