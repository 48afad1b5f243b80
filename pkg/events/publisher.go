package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// notifyLimit leaves headroom under PostgreSQL's 8000-byte NOTIFY cap.
const notifyLimit = 7900

// Publisher persists events and broadcasts them over NOTIFY. Persistent
// publishes run INSERT and pg_notify in one transaction, so the broadcast
// fires only when the row is durably committed.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher on the admin pool: event rows are
// written on behalf of the pipeline and workers, not a user transaction.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishIncidentCreated persists and broadcasts to the tenant channel.
func (p *Publisher) PublishIncidentCreated(ctx context.Context, payload IncidentCreatedPayload) error {
	payload.Type = EventTypeIncidentCreated
	return p.persistAndNotify(ctx, payload.UserID, TenantChannel(payload.UserID), payload)
}

// PublishIncidentUpdate persists and broadcasts to the tenant channel.
func (p *Publisher) PublishIncidentUpdate(ctx context.Context, payload IncidentUpdatePayload) error {
	payload.Type = EventTypeIncidentUpdate
	return p.persistAndNotify(ctx, payload.UserID, TenantChannel(payload.UserID), payload)
}

// PublishSessionStatus persists and broadcasts to the session channel.
func (p *Publisher) PublishSessionStatus(ctx context.Context, payload SessionStatusPayload) error {
	payload.Type = EventTypeSessionStatus
	return p.persistAndNotify(ctx, payload.UserID, SessionChannel(payload.SessionID), payload)
}

// PublishIncidentPulse broadcasts a transient counter refresh; nothing is
// persisted and reconnecting clients simply wait for the next pulse.
func (p *Publisher) PublishIncidentPulse(ctx context.Context, payload IncidentPulsePayload) error {
	payload.Type = EventTypeIncidentPulse
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal pulse payload: %w", err)
	}
	return p.notifyOnly(ctx, TenantChannel(payload.UserID), raw)
}

func (p *Publisher) persistAndNotify(ctx context.Context, userID, channel string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (user_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		userID, channel, raw, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("persist event: %w", err)
	}

	notifyPayload, err := injectEventID(raw, eventID)
	if err != nil {
		return err
	}

	// pg_notify is transactional: held until COMMIT.
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit event transaction: %w", err)
	}
	return nil
}

func (p *Publisher) notifyOnly(ctx context.Context, channel string, raw []byte) error {
	notifyPayload, err := truncateIfNeeded(string(raw))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify: %w", err)
	}
	return nil
}

// injectEventID adds the events-table row id to the NOTIFY copy so clients
// can track their catchup cursor, then applies the size cap.
func injectEventID(raw []byte, eventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return "", fmt.Errorf("unmarshal payload for id injection: %w", err)
	}
	m["db_event_id"] = eventID
	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshal enriched payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded replaces oversize payloads with a routing-only envelope.
func truncateIfNeeded(payload string) (string, error) {
	if len(payload) <= notifyLimit {
		return payload, nil
	}
	var routing struct {
		Type      string `json:"type"`
		EventID   string `json:"event_id"`
		UserID    string `json:"user_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal([]byte(payload), &routing); err != nil {
		return "", fmt.Errorf("extract routing fields for truncation: %w", err)
	}
	truncated := map[string]any{
		"type":      routing.Type,
		"event_id":  routing.EventID,
		"user_id":   routing.UserID,
		"truncated": true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}
	out, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("marshal truncated payload: %w", err)
	}
	return string(out), nil
}
