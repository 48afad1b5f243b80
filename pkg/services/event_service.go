package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aurora-sre/aurora/ent"
	"github.com/aurora-sre/aurora/ent/event"
	"github.com/aurora-sre/aurora/pkg/database"
	"github.com/aurora-sre/aurora/pkg/events"
)

// EventService backs WebSocket catchup with the persisted events table.
type EventService struct {
	db *database.Client
}

func NewEventService(db *database.Client) *EventService {
	if db == nil {
		panic("NewEventService: db must not be nil")
	}
	return &EventService{db: db}
}

// GetCatchupEvents returns the tenant's events on a channel after sinceID,
// oldest first. Satisfies the connection manager's catchup interface; the
// tenant transaction keeps one user from replaying another's events even
// with a forged channel name.
func (s *EventService) GetCatchupEvents(ctx context.Context, userID, channel string, sinceID, limit int) ([]events.CatchupEvent, error) {
	var out []events.CatchupEvent
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		rows, err := tx.Event.Query().
			Where(
				event.ChannelEQ(channel),
				event.IDGT(sinceID),
			).
			Order(ent.Asc(event.FieldID)).
			Limit(limit).
			All(ctx)
		if err != nil {
			return fmt.Errorf("query catchup events: %w", err)
		}

		out = make([]events.CatchupEvent, 0, len(rows))
		for _, row := range rows {
			out = append(out, events.CatchupEvent{ID: row.ID, Payload: row.Payload})
		}
		return nil
	})
	return out, err
}

// CleanupOldEvents deletes events older than the TTL. Runs on the admin
// pool across all tenants; the events table is a short-lived buffer, not an
// audit log.
func (s *EventService) CleanupOldEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)
	count, err := s.db.Admin.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("cleanup old events: %w", err)
	}
	return count, nil
}
