package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aurora-sre/aurora/ent"
	"github.com/aurora-sre/aurora/ent/incident"
	"github.com/aurora-sre/aurora/pkg/config"
	"github.com/aurora-sre/aurora/pkg/events"
	"github.com/aurora-sre/aurora/pkg/ingest"
	"github.com/aurora-sre/aurora/pkg/llm"
	"github.com/aurora-sre/aurora/pkg/models"
	"github.com/aurora-sre/aurora/pkg/runbook"
	"github.com/aurora-sre/aurora/pkg/services"
)

// Task kind for raw webhook processing; the ingest constants cover the rest.
const TaskProcessEvent = "process_event"

// TaskContextUpdate injects merged-incident context into a running session.
const TaskContextUpdate = "context_update"

// Summarizer produces the one-paragraph incident summary.
type Summarizer interface {
	Summarize(ctx context.Context, inc *ent.Incident) (string, error)
}

// InvestigationLauncher runs the agent workflow for a freshly created RCA
// session. The call blocks until the investigation's first turn finishes.
type InvestigationLauncher interface {
	Launch(ctx context.Context, userID string, session *ent.ChatSession, initialPrompt string) error
}

// Handlers binds the task kinds to their implementations.
type Handlers struct {
	incidents  *services.IncidentService
	sessions   *services.ChatSessionService
	thoughts   *services.ThoughtService
	pipeline   *ingest.Pipeline
	runbooks   *runbook.Fetcher
	summarizer Summarizer
	launcher   InvestigationLauncher
	publisher  *events.Publisher

	podID             string
	automationDefault bool
}

// HandlersConfig wires the handler dependencies. Summarizer, launcher,
// runbooks, and publisher may be nil; the matching behavior is skipped.
type HandlersConfig struct {
	Incidents  *services.IncidentService
	Sessions   *services.ChatSessionService
	Thoughts   *services.ThoughtService
	Pipeline   *ingest.Pipeline
	Runbooks   *runbook.Fetcher
	Summarizer Summarizer
	Launcher   InvestigationLauncher
	Publisher  *events.Publisher

	PodID             string
	AutomationDefault bool
}

// NewHandlers creates the handler set.
func NewHandlers(cfg HandlersConfig) *Handlers {
	return &Handlers{
		incidents:         cfg.Incidents,
		sessions:          cfg.Sessions,
		thoughts:          cfg.Thoughts,
		pipeline:          cfg.Pipeline,
		runbooks:          cfg.Runbooks,
		summarizer:        cfg.Summarizer,
		launcher:          cfg.Launcher,
		publisher:         cfg.Publisher,
		podID:             cfg.PodID,
		automationDefault: cfg.AutomationDefault,
	}
}

// Mux returns a mux with every task kind registered.
func (h *Handlers) Mux() *Mux {
	m := NewMux()
	m.Register(TaskProcessEvent, HandlerFunc(h.HandleProcessEvent))
	m.Register(ingest.TaskIncidentSummary, HandlerFunc(h.HandleIncidentSummary))
	m.Register(ingest.TaskRCATrigger, HandlerFunc(h.HandleRCATrigger))
	m.Register(TaskContextUpdate, HandlerFunc(h.HandleContextUpdate))
	return m
}

// HandleProcessEvent runs one stored webhook delivery through the pipeline.
// Payload: {"source": ..., "body": <raw webhook JSON as string>, "received_at": RFC3339}.
func (h *Handlers) HandleProcessEvent(ctx context.Context, t *ent.Task) error {
	source, _ := t.Payload["source"].(string)
	body, _ := t.Payload["body"].(string)
	if source == "" || body == "" {
		return fmt.Errorf("process_event task %s missing source or body", t.ID)
	}
	receivedAt := t.CreatedAt
	if raw, ok := t.Payload["received_at"].(string); ok {
		if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			receivedAt = ts
		}
	}

	res, err := h.pipeline.Process(ctx, t.UserID, source, []byte(body), receivedAt)
	if err != nil {
		return err
	}
	slog.Debug("webhook event processed",
		"task_id", t.ID, "outcome", res.Outcome, "incident_id", res.IncidentID)
	return nil
}

// HandleIncidentSummary generates the incident's short summary. The incident
// may have merged or vanished since enqueue; both end the task quietly.
func (h *Handlers) HandleIncidentSummary(ctx context.Context, t *ent.Task) error {
	if h.summarizer == nil {
		return nil
	}
	incidentID, _ := t.Payload["incident_id"].(string)
	if incidentID == "" {
		return fmt.Errorf("incident_summary task %s missing incident_id", t.ID)
	}

	inc, err := h.incidents.Get(ctx, t.UserID, incidentID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil
		}
		return err
	}
	if inc.Status == incident.StatusMerged {
		return nil
	}

	summary, err := h.summarizer.Summarize(ctx, inc)
	if err != nil {
		return fmt.Errorf("summarize incident %s: %w", incidentID, err)
	}
	if err := h.incidents.SetSummary(ctx, t.UserID, incidentID, summary); err != nil {
		return err
	}

	h.publishIncidentUpdate(ctx, t.UserID, incidentID, "summary")
	return nil
}

// HandleRCATrigger launches the automated investigation after the grace
// period. Guards: the incident must still be open, automation must be
// enabled, and no earlier trigger may have created a session already.
// The runbook link is read here, at fire time, not at enqueue time —
// PagerDuty delivers custom fields in a separate webhook that usually
// arrives within the grace period.
func (h *Handlers) HandleRCATrigger(ctx context.Context, t *ent.Task) error {
	incidentID, _ := t.Payload["incident_id"].(string)
	if incidentID == "" {
		return fmt.Errorf("rca_trigger task %s missing incident_id", t.ID)
	}
	triggerSource, _ := t.Payload["source"].(string)
	if triggerSource == "" {
		triggerSource = "rca_auto"
	}

	log := slog.With("task_id", t.ID, "incident_id", incidentID)

	inc, err := h.incidents.Get(ctx, t.UserID, incidentID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil
		}
		return err
	}
	if inc.Status != incident.StatusInvestigating {
		log.Info("RCA trigger skipped, incident no longer open", "status", inc.Status)
		return nil
	}
	if !h.automationEnabled(inc) {
		log.Info("RCA trigger skipped, automation disabled")
		return nil
	}
	exists, err := h.sessions.ExistsForTrigger(ctx, t.UserID, incidentID, triggerSource)
	if err != nil {
		return err
	}
	if exists {
		log.Info("RCA trigger skipped, session already exists", "trigger_source", triggerSource)
		return nil
	}

	prompt, err := h.buildRCAPrompt(ctx, t.UserID, inc)
	if err != nil {
		return err
	}

	session, err := h.sessions.Create(ctx, t.UserID, services.CreateSessionInput{
		Title:         "RCA: " + inc.AlertTitle,
		IncidentID:    incidentID,
		TriggerSource: triggerSource,
		TriggerMetadata: map[string]any{
			"task_id":  t.ID,
			"severity": inc.Severity,
		},
		PodID: h.podID,
	})
	if err != nil {
		return err
	}
	if err := h.incidents.SetAuroraStatus(ctx, t.UserID, incidentID, models.AuroraRunning, session.ID); err != nil {
		return err
	}
	h.publishSessionStatus(ctx, t.UserID, session.ID, incidentID, models.SessionInProgress)
	log.Info("RCA session created", "session_id", session.ID)

	if h.launcher == nil {
		return nil
	}
	return h.launcher.Launch(ctx, t.UserID, session, prompt)
}

// HandleContextUpdate queues merged-incident context for a running session.
// Payload: {"session_id": ..., "source_incident_id": ...}.
func (h *Handlers) HandleContextUpdate(ctx context.Context, t *ent.Task) error {
	sessionID, _ := t.Payload["session_id"].(string)
	sourceIncidentID, _ := t.Payload["source_incident_id"].(string)
	if sessionID == "" || sourceIncidentID == "" {
		return fmt.Errorf("context_update task %s missing session_id or source_incident_id", t.ID)
	}

	src, err := h.incidents.Get(ctx, t.UserID, sourceIncidentID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil
		}
		return err
	}
	thoughts, err := h.thoughts.Trailing(ctx, t.UserID, sourceIncidentID, 20)
	if err != nil {
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[CONTEXT UPDATE] Incident %q (severity %s) was merged into the incident you are investigating.",
		src.AlertTitle, src.Severity)
	if len(thoughts) > 0 {
		sb.WriteString(" Notes from its investigation so far:\n")
		for _, th := range thoughts {
			fmt.Fprintf(&sb, "- %s\n", th.Content)
		}
	}
	sb.WriteString("Fold this context into your analysis; do not restart from scratch.")

	err = h.sessions.QueueContextNote(ctx, t.UserID, sessionID, models.ContextMessage{
		ID:        uuid.New().String(),
		Role:      models.RoleHuman,
		Content:   sb.String(),
		Timestamp: time.Now(),
	})
	if err != nil && errors.Is(err, services.ErrNotFound) {
		return nil
	}
	return err
}

// automationEnabled checks the tenant's per-incident override, falling back
// to the deployment default.
func (h *Handlers) automationEnabled(inc *ent.Incident) bool {
	if cf, ok := inc.AlertMetadata["customFields"].(map[string]any); ok {
		switch v := cf["automation_enabled"].(type) {
		case bool:
			return v
		case string:
			if v != "" {
				return v != "false" && v != "disabled"
			}
		}
	}
	return h.automationDefault
}

// buildRCAPrompt assembles the investigation's opening message: the runbook
// (when linked and fetchable) followed by the incident details.
func (h *Handlers) buildRCAPrompt(ctx context.Context, userID string, inc *ent.Incident) (string, error) {
	details, err := h.incidents.IncidentJSON(ctx, userID, inc.ID)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if content := h.fetchRunbook(ctx, inc); content != "" {
		sb.WriteString("=== RUNBOOK ===\n")
		sb.WriteString(content)
		sb.WriteString("\n\n")
	}
	sb.WriteString("=== INCIDENT DETAILS ===\n")
	sb.WriteString(details)
	sb.WriteString("\n\nInvestigate the root cause of this incident. Use the available tools to gather evidence before drawing conclusions.")
	return sb.String(), nil
}

// fetchRunbook re-reads the runbook link from the incident metadata. Fetch
// failures degrade to an investigation without a runbook.
func (h *Handlers) fetchRunbook(ctx context.Context, inc *ent.Incident) string {
	if h.runbooks == nil {
		return ""
	}
	cf, _ := inc.AlertMetadata["customFields"].(map[string]any)
	if cf == nil {
		return ""
	}
	link, _ := cf["runbook_link"].(string)
	if link == "" {
		return ""
	}
	content, err := h.runbooks.Fetch(ctx, link)
	if err != nil {
		slog.Warn("runbook fetch failed, investigating without it",
			"incident_id", inc.ID, "url", link, "error", err)
		return ""
	}
	return content
}

func (h *Handlers) publishIncidentUpdate(ctx context.Context, userID, incidentID, reason string) {
	if h.publisher == nil {
		return
	}
	inc, err := h.incidents.Get(ctx, userID, incidentID)
	if err != nil {
		return
	}
	err = h.publisher.PublishIncidentUpdate(ctx, events.IncidentUpdatePayload{
		EventID:      uuid.New().String(),
		IncidentID:   incidentID,
		UserID:       userID,
		Status:       string(inc.Status),
		AuroraStatus: string(inc.AuroraStatus),
		Severity:     inc.Severity,
		Reason:       reason,
		UpdatedAt:    time.Now(),
	})
	if err != nil {
		slog.Warn("publish incident update failed", "incident_id", incidentID, "error", err)
	}
}

func (h *Handlers) publishSessionStatus(ctx context.Context, userID, sessionID, incidentID, status string) {
	if h.publisher == nil {
		return
	}
	err := h.publisher.PublishSessionStatus(ctx, events.SessionStatusPayload{
		EventID:    uuid.New().String(),
		SessionID:  sessionID,
		UserID:     userID,
		Status:     status,
		IncidentID: incidentID,
		UpdatedAt:  time.Now(),
	})
	if err != nil {
		slog.Warn("publish session status failed", "session_id", sessionID, "error", err)
	}
}

// ModelSummarizer produces summaries with a non-streaming model call.
type ModelSummarizer struct {
	registry *llm.Registry
	cfg      config.LLMConfig
}

// NewModelSummarizer creates a summarizer on the default model.
func NewModelSummarizer(registry *llm.Registry, cfg config.LLMConfig) *ModelSummarizer {
	return &ModelSummarizer{registry: registry, cfg: cfg}
}

// Summarize asks the model for a two-sentence operator-facing summary.
func (m *ModelSummarizer) Summarize(ctx context.Context, inc *ent.Incident) (string, error) {
	provider, model, err := m.registry.Resolve("", m.cfg.Mode, nil)
	if err != nil {
		return "", err
	}

	meta, _ := json.Marshal(inc.AlertMetadata)
	prompt := fmt.Sprintf(
		"Summarize this incident for an on-call engineer in at most two sentences. State what broke and the likely blast radius. Do not speculate about root cause.\n\nTitle: %s\nSeverity: %s\nService: %s\nAffected services: %s\nMetadata: %s",
		inc.AlertTitle, inc.Severity, inc.AlertService,
		strings.Join(inc.AffectedServices, ", "), meta,
	)

	temp := m.cfg.Temperature
	text, _, err := llm.Complete(ctx, provider, llm.ChatRequest{
		Model: model,
		Messages: []models.ContextMessage{
			{Role: models.RoleHuman, Content: prompt, Timestamp: time.Now()},
		},
		Temperature: &temp,
		MaxTokens:   300,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
