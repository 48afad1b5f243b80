// Package slack delivers incident notifications to a Slack channel. The
// incident-created message opens a thread; RCA outcomes land as replies in
// it, keyed by the message timestamp stored on the incident row.
package slack

import (
	"context"
	"log/slog"
	"time"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// IncidentCreatedInput is the payload for a new-incident notification.
type IncidentCreatedInput struct {
	IncidentID string
	Title      string
	Severity   string
	Services   []string
	Source     string

	// Fingerprint, when set, is matched against recent channel history so
	// the notification threads onto an existing conversation about the
	// same alert instead of opening a new one.
	Fingerprint string
}

// RCACompletedInput is the payload for an investigation-outcome reply.
type RCACompletedInput struct {
	IncidentID string
	SessionID  string
	Title      string
	Status     string // completed, error, cancelled
	Summary    string
	ErrorText  string

	// ThreadTS is the incident's stored message timestamp. When empty the
	// fingerprint fallback applies.
	ThreadTS    string
	Fingerprint string
}

// Service handles Slack notification delivery.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new Slack notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NotifyIncidentCreated announces a new incident and returns the thread
// timestamp to store on the incident row for later replies.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyIncidentCreated(ctx context.Context, input IncidentCreatedInput) string {
	if s == nil {
		return ""
	}

	threadTS := ""
	if input.Fingerprint != "" {
		var err error
		threadTS, err = s.client.FindMessageByFingerprint(ctx, input.Fingerprint)
		if err != nil {
			s.logger.Warn("Failed to find Slack thread for fingerprint",
				"incident_id", input.IncidentID,
				"fingerprint", input.Fingerprint,
				"error", err)
		}
	}

	blocks := BuildIncidentCreatedMessage(input, s.dashboardURL)
	ts, err := s.client.PostMessage(ctx, blocks, threadTS, 5*time.Second)
	if err != nil {
		s.logger.Error("Failed to send Slack incident notification",
			"incident_id", input.IncidentID,
			"error", err)
		return ""
	}
	if threadTS != "" {
		// Replies thread onto the original conversation, not onto our reply.
		return threadTS
	}
	return ts
}

// NotifyRCACompleted posts the investigation outcome as a threaded reply.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyRCACompleted(ctx context.Context, input RCACompletedInput) {
	if s == nil {
		return
	}

	threadTS := input.ThreadTS
	if threadTS == "" && input.Fingerprint != "" {
		var err error
		threadTS, err = s.client.FindMessageByFingerprint(ctx, input.Fingerprint)
		if err != nil {
			s.logger.Warn("Failed to find Slack thread for fingerprint",
				"incident_id", input.IncidentID,
				"fingerprint", input.Fingerprint,
				"error", err)
		}
	}

	blocks := BuildRCACompletedMessage(input, s.dashboardURL)
	if _, err := s.client.PostMessage(ctx, blocks, threadTS, 10*time.Second); err != nil {
		s.logger.Error("Failed to send Slack RCA notification",
			"incident_id", input.IncidentID,
			"status", input.Status,
			"error", err)
	}
}
