package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aurora-sre/aurora/ent"
	"github.com/aurora-sre/aurora/pkg/correlate"
	"github.com/aurora-sre/aurora/pkg/events"
	"github.com/aurora-sre/aurora/pkg/models"
	"github.com/aurora-sre/aurora/pkg/services"
	"github.com/aurora-sre/aurora/pkg/slack"
)

// Task kinds enqueued by the pipeline.
const (
	TaskIncidentSummary = "incident_summary"
	TaskRCATrigger      = "rca_trigger"
)

// DefaultRCAGracePeriod delays the RCA trigger so a follow-up custom-field
// event (runbook link) can land before the agent reads the incident.
const DefaultRCAGracePeriod = 5 * time.Second

// Enqueuer schedules follow-up work. Implemented by the task queue.
type Enqueuer interface {
	Enqueue(ctx context.Context, userID, kind, incidentID string, payload map[string]any, runAt time.Time) (string, error)
}

// EventSink publishes incident lifecycle events to live subscribers.
type EventSink interface {
	PublishIncidentCreated(ctx context.Context, payload events.IncidentCreatedPayload) error
	PublishIncidentUpdate(ctx context.Context, payload events.IncidentUpdatePayload) error
}

// Pipeline drives a raw webhook event through normalization, storage,
// correlation, and incident upsert, then schedules summary and RCA work.
type Pipeline struct {
	alerts     *services.AlertEventService
	incidents  *services.IncidentService
	correlator *correlate.Correlator
	queue      Enqueuer
	sink       EventSink
	notifier   *slack.Service

	rcaGrace time.Duration
}

// PipelineConfig tunes pipeline behavior.
type PipelineConfig struct {
	RCAGracePeriod time.Duration

	// Slack, when non-nil, announces new incidents to the configured channel.
	Slack *slack.Service
}

func NewPipeline(alerts *services.AlertEventService, incidents *services.IncidentService, correlator *correlate.Correlator, queue Enqueuer, sink EventSink, cfg PipelineConfig) *Pipeline {
	if cfg.RCAGracePeriod <= 0 {
		cfg.RCAGracePeriod = DefaultRCAGracePeriod
	}
	return &Pipeline{
		alerts:     alerts,
		incidents:  incidents,
		correlator: correlator,
		queue:      queue,
		sink:       sink,
		notifier:   cfg.Slack,
		rcaGrace:   cfg.RCAGracePeriod,
	}
}

// Pipeline outcomes.
const (
	OutcomeDuplicate      = "duplicate"
	OutcomeMetadataMerged = "metadata_merged"
	OutcomeCorrelated     = "correlated"
	OutcomeCreated        = "created"
	OutcomeUpdated        = "updated"
)

// ProcessResult describes what one event did.
type ProcessResult struct {
	Outcome    string
	IncidentID string
}

// Process runs one webhook event end to end.
func (p *Pipeline) Process(ctx context.Context, userID, source string, body []byte, receivedAt time.Time) (*ProcessResult, error) {
	alert, err := Normalize(source, body, receivedAt)
	if err != nil {
		return nil, err
	}
	return p.ProcessAlert(ctx, userID, alert)
}

// ProcessAlert runs an already-normalized event through the pipeline.
func (p *Pipeline) ProcessAlert(ctx context.Context, userID string, alert models.NormalizedAlert) (*ProcessResult, error) {
	log := slog.With("user_id", userID, "source", alert.Source, "external_id", alert.ExternalID)

	// Store raw event first; a duplicate delivery ends here.
	rec, err := p.alerts.Record(ctx, userID, alert)
	if err != nil {
		return nil, fmt.Errorf("record raw event: %w", err)
	}
	if rec.Duplicate {
		log.Debug("duplicate webhook delivery dropped", "dedupe_key", alert.DedupeKey)
		return &ProcessResult{Outcome: OutcomeDuplicate}, nil
	}

	// Metadata events merge into the existing incident; no correlation.
	if alert.EventKind == models.EventKindMetadata {
		inc, err := p.incidents.MergeMetadata(ctx, userID, alert)
		if err != nil {
			return nil, fmt.Errorf("merge metadata event: %w", err)
		}
		return &ProcessResult{Outcome: OutcomeMetadataMerged, IncidentID: inc.ID}, nil
	}

	status := NormalizeStatus(alert.Source, alert.Status)

	// Only creation events may correlate into an existing incident.
	if alert.IsCreation() {
		res, err := p.correlator.Correlate(ctx, userID, alert)
		if err != nil {
			return nil, fmt.Errorf("correlate alert: %w", err)
		}
		if res.IsCorrelated {
			inc, err := p.incidents.AttachCorrelated(ctx, userID, rec.Event.ID, alert, res)
			if err != nil {
				return nil, fmt.Errorf("attach correlated alert: %w", err)
			}
			log.Info("alert correlated into incident",
				"incident_id", inc.ID, "strategy", res.Strategy, "score", res.Score)
			p.publishUpdate(ctx, userID, inc, "correlation")
			return &ProcessResult{Outcome: OutcomeCorrelated, IncidentID: inc.ID}, nil
		}
	}

	up, err := p.incidents.UpsertFromAlert(ctx, userID, alert, status)
	if err != nil {
		return nil, fmt.Errorf("upsert incident: %w", err)
	}
	if err := p.incidents.RecordPrimaryAlert(ctx, userID, up.Incident.ID, rec.Event.ID, alert.ReceivedAt); err != nil {
		return nil, err
	}

	if !up.Created {
		p.publishUpdate(ctx, userID, up.Incident, "status_change")
		return &ProcessResult{Outcome: OutcomeUpdated, IncidentID: up.Incident.ID}, nil
	}

	log.Info("incident created", "incident_id", up.Incident.ID, "severity", up.Incident.Severity)
	if p.sink != nil {
		err := p.sink.PublishIncidentCreated(ctx, events.IncidentCreatedPayload{
			EventID:    uuid.New().String(),
			IncidentID: up.Incident.ID,
			UserID:     userID,
			Title:      up.Incident.AlertTitle,
			Severity:   up.Incident.Severity,
			Service:    up.Incident.AlertService,
			Source:     alert.Source,
			CreatedAt:  up.Incident.CreatedAt,
		})
		if err != nil {
			log.Error("publish incident.created failed", "error", err)
		}
	}

	if ts := p.notifier.NotifyIncidentCreated(ctx, slack.IncidentCreatedInput{
		IncidentID:  up.Incident.ID,
		Title:       up.Incident.AlertTitle,
		Severity:    up.Incident.Severity,
		Services:    up.Incident.AffectedServices,
		Source:      alert.Source,
		Fingerprint: up.Incident.AlertTitle,
	}); ts != "" {
		if err := p.incidents.SetSlackMessageTS(ctx, userID, up.Incident.ID, ts); err != nil {
			log.Error("store slack thread ts failed", "incident_id", up.Incident.ID, "error", err)
		}
	}

	// Creation events schedule the summary and the delayed RCA trigger.
	if alert.IsCreation() && p.queue != nil {
		if _, err := p.queue.Enqueue(ctx, userID, TaskIncidentSummary, up.Incident.ID, map[string]any{
			"incident_id": up.Incident.ID,
		}, time.Now()); err != nil {
			log.Error("enqueue incident summary failed", "error", err)
		}
		if _, err := p.queue.Enqueue(ctx, userID, TaskRCATrigger, up.Incident.ID, map[string]any{
			"incident_id": up.Incident.ID,
			"source":      alert.Source,
		}, time.Now().Add(p.rcaGrace)); err != nil {
			log.Error("enqueue rca trigger failed", "error", err)
		}
	}
	return &ProcessResult{Outcome: OutcomeCreated, IncidentID: up.Incident.ID}, nil
}

func (p *Pipeline) publishUpdate(ctx context.Context, userID string, inc *ent.Incident, reason string) {
	if p.sink == nil {
		return
	}
	err := p.sink.PublishIncidentUpdate(ctx, events.IncidentUpdatePayload{
		EventID:              uuid.New().String(),
		IncidentID:           inc.ID,
		UserID:               userID,
		Status:               string(inc.Status),
		AuroraStatus:         string(inc.AuroraStatus),
		Severity:             inc.Severity,
		CorrelatedAlertCount: inc.CorrelatedAlertCount,
		AffectedServices:     inc.AffectedServices,
		Reason:               reason,
		UpdatedAt:            time.Now(),
	})
	if err != nil {
		slog.Error("publish incident.update failed", "user_id", userID, "error", err)
	}
}
