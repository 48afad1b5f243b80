package events

import "time"

// IncidentCreatedPayload announces a new incident to the tenant channel.
type IncidentCreatedPayload struct {
	Type       string    `json:"type"` // EventTypeIncidentCreated
	EventID    string    `json:"event_id"`
	IncidentID string    `json:"incident_id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Severity   string    `json:"severity"`
	Service    string    `json:"service,omitempty"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"created_at"`
}

// IncidentUpdatePayload carries incident field changes: status transitions,
// correlation attach, merge, summary completion.
type IncidentUpdatePayload struct {
	Type                 string    `json:"type"` // EventTypeIncidentUpdate
	EventID              string    `json:"event_id"`
	IncidentID           string    `json:"incident_id"`
	UserID               string    `json:"user_id"`
	Status               string    `json:"status,omitempty"`
	AuroraStatus         string    `json:"aurora_status,omitempty"`
	Severity             string    `json:"severity,omitempty"`
	CorrelatedAlertCount int       `json:"correlated_alert_count,omitempty"`
	AffectedServices     []string  `json:"affected_services,omitempty"`
	MergedInto           string    `json:"merged_into,omitempty"`
	Reason               string    `json:"reason,omitempty"` // correlation, status_change, merge, summary
	UpdatedAt            time.Time `json:"updated_at"`
}

// SessionStatusPayload reports chat-session lifecycle transitions.
type SessionStatusPayload struct {
	Type       string    `json:"type"` // EventTypeSessionStatus
	EventID    string    `json:"event_id"`
	SessionID  string    `json:"session_id"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	IncidentID string    `json:"incident_id,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IncidentPulsePayload is a transient counter refresh for the active
// incidents panel.
type IncidentPulsePayload struct {
	Type        string `json:"type"` // EventTypeIncidentPulse
	UserID      string `json:"user_id"`
	OpenCount   int    `json:"open_count"`
	RunningRCAs int    `json:"running_rcas"`
}
