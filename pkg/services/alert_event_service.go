package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aurora-sre/aurora/ent"
	"github.com/aurora-sre/aurora/ent/alertevent"
	"github.com/aurora-sre/aurora/ent/incidentalert"
	"github.com/aurora-sre/aurora/pkg/database"
	"github.com/aurora-sre/aurora/pkg/models"
)

// AlertEventService stores raw webhook events. The table is append-only and
// shared by all sources; duplicate deliveries collapse on the
// (source, dedupe_key, user_id) unique index.
type AlertEventService struct {
	db *database.Client
}

func NewAlertEventService(db *database.Client) *AlertEventService {
	if db == nil {
		panic("NewAlertEventService: db must not be nil")
	}
	return &AlertEventService{db: db}
}

// RecordResult is the outcome of recording one webhook delivery.
type RecordResult struct {
	Event     *ent.AlertEvent
	Duplicate bool
}

// Record persists the raw event. A redelivery of the same (source,
// dedupe_key) returns the stored row with Duplicate set, so the pipeline
// can stop without side effects. A concurrent duplicate delivery fails on
// the unique index and is retried by the task queue.
func (s *AlertEventService) Record(ctx context.Context, userID string, alert models.NormalizedAlert) (*RecordResult, error) {
	var result RecordResult
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		existing, err := tx.AlertEvent.Query().
			Where(
				alertevent.SourceEQ(alert.Source),
				alertevent.DedupeKeyEQ(alert.DedupeKey),
			).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("query alert event: %w", err)
		}
		if existing != nil {
			result = RecordResult{Event: existing, Duplicate: true}
			return nil
		}

		created, err := tx.AlertEvent.Create().
			SetID(uuid.New().String()).
			SetUserID(userID).
			SetSource(alert.Source).
			SetExternalID(alert.ExternalID).
			SetDedupeKey(alert.DedupeKey).
			SetTitle(alert.Title).
			SetSeverity(alert.Severity).
			SetService(alert.Service).
			SetStatus(alert.Status).
			SetEventKind(alert.EventKind).
			SetPayload(alert.Payload).
			SetReceivedAt(alert.ReceivedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("record alert event: %w", err)
		}
		result = RecordResult{Event: created}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// EventsForIncident returns every raw event linked to the incident, oldest
// first. Used when building the RCA prompt.
func (s *AlertEventService) EventsForIncident(ctx context.Context, userID, incidentID string) ([]*ent.AlertEvent, error) {
	var events []*ent.AlertEvent
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		edges, err := tx.IncidentAlert.Query().
			Where(incidentalert.IncidentIDEQ(incidentID)).
			Order(ent.Asc(incidentalert.FieldReceivedAt)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("load incident alert edges: %w", err)
		}
		if len(edges) == 0 {
			return nil
		}

		ids := make([]string, 0, len(edges))
		for _, e := range edges {
			ids = append(ids, e.AlertEventID)
		}
		rows, err := tx.AlertEvent.Query().
			Where(alertevent.IDIn(ids...)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("load alert events: %w", err)
		}

		byID := make(map[string]*ent.AlertEvent, len(rows))
		for _, r := range rows {
			byID[r.ID] = r
		}
		events = make([]*ent.AlertEvent, 0, len(edges))
		for _, e := range edges {
			if row, ok := byID[e.AlertEventID]; ok {
				events = append(events, row)
			}
		}
		return nil
	})
	return events, err
}
