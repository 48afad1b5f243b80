package api

import (
	"github.com/aurora-sre/aurora/ent"
	"github.com/aurora-sre/aurora/pkg/models"
)

// WebhookResponse acknowledges an accepted webhook delivery.
type WebhookResponse struct {
	Status string `json:"status"`
	TaskID string `json:"task_id"`
}

// MergeRequest names the incident that absorbs the one in the path.
type MergeRequest struct {
	TargetIncidentID string `json:"target_incident_id"`
}

// MergeResponse reports the outcome of a manual merge.
type MergeResponse struct {
	SourceIncidentID  string `json:"source_incident_id"`
	TargetIncidentID  string `json:"target_incident_id"`
	SessionsCancelled int    `json:"sessions_cancelled"`
	ContextForwarded  bool   `json:"context_forwarded"`
}

// SessionDetailResponse pairs a session row with its UI conversation.
type SessionDetailResponse struct {
	Session  *ent.ChatSession   `json:"session"`
	Messages []models.UIMessage `json:"messages"`
}

// CancelResponse acknowledges a cancellation request.
type CancelResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// HealthCheck is one component's health entry.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}
