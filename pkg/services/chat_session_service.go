package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aurora-sre/aurora/ent"
	"github.com/aurora-sre/aurora/ent/chatsession"
	"github.com/aurora-sre/aurora/pkg/database"
	"github.com/aurora-sre/aurora/pkg/models"
)

// ChatSessionService owns chat sessions: the UI message projection, the
// model-shaped context history, and lifecycle status.
type ChatSessionService struct {
	db *database.Client
}

func NewChatSessionService(db *database.Client) *ChatSessionService {
	if db == nil {
		panic("NewChatSessionService: db must not be nil")
	}
	return &ChatSessionService{db: db}
}

// CreateSessionInput carries the fields for a new session. TriggerSource is
// set for sessions auto-created by the incident pipeline and is the RCA
// duplicate guard key.
type CreateSessionInput struct {
	Title           string
	IncidentID      string
	TriggerSource   string
	TriggerMetadata map[string]any
	PodID           string
}

// Create opens a new session in active status.
func (s *ChatSessionService) Create(ctx context.Context, userID string, input CreateSessionInput) (*ent.ChatSession, error) {
	var session *ent.ChatSession
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		builder := tx.ChatSession.Create().
			SetID(uuid.New().String()).
			SetUserID(userID).
			SetTitle(input.Title).
			SetStatus(chatsession.StatusActive)
		if input.IncidentID != "" {
			builder.SetIncidentID(input.IncidentID)
		}
		if input.TriggerSource != "" {
			builder.SetTriggerSource(input.TriggerSource)
		}
		if input.TriggerMetadata != nil {
			builder.SetTriggerMetadata(input.TriggerMetadata)
		}
		if input.PodID != "" {
			builder.SetPodID(input.PodID)
		}

		var err error
		session, err = builder.Save(ctx)
		if err != nil {
			return fmt.Errorf("create chat session: %w", err)
		}
		return nil
	})
	return session, err
}

// Get loads one session.
func (s *ChatSessionService) Get(ctx context.Context, userID, sessionID string) (*ent.ChatSession, error) {
	var session *ent.ChatSession
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		var err error
		session, err = tx.ChatSession.Get(ctx, sessionID)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: chat session %s", ErrNotFound, sessionID)
			}
			return fmt.Errorf("load chat session: %w", err)
		}
		return nil
	})
	return session, err
}

// SessionOwnedBy reports whether the session belongs to the user. Satisfies
// the dashboard socket's channel authorization check.
func (s *ChatSessionService) SessionOwnedBy(ctx context.Context, sessionID, userID string) (bool, error) {
	var owned bool
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		// RLS scopes the query to the tenant, so existence implies ownership.
		exists, err := tx.ChatSession.Query().
			Where(chatsession.IDEQ(sessionID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check session ownership: %w", err)
		}
		owned = exists
		return nil
	})
	return owned, err
}

// ExistsForTrigger reports whether an auto-created session already exists
// for (incident, trigger source). The delayed RCA task checks this before
// launching a second investigation for the same alert.
func (s *ChatSessionService) ExistsForTrigger(ctx context.Context, userID, incidentID, triggerSource string) (bool, error) {
	var exists bool
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		var err error
		exists, err = tx.ChatSession.Query().
			Where(
				chatsession.IncidentIDEQ(incidentID),
				chatsession.TriggerSourceEQ(triggerSource),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check trigger session: %w", err)
		}
		return nil
	})
	return exists, err
}

// UpdateStatus transitions the session lifecycle.
func (s *ChatSessionService) UpdateStatus(ctx context.Context, userID, sessionID, status string) error {
	return database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		update := tx.ChatSession.UpdateOneID(sessionID).
			SetStatus(chatsession.Status(status))
		if status == models.SessionCancelled || status == models.SessionCompleted {
			update.SetIsActive(false)
		}
		if err := update.Exec(ctx); err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: chat session %s", ErrNotFound, sessionID)
			}
			return fmt.Errorf("update session status: %w", err)
		}
		return nil
	})
}

// SaveConversation persists both projections after an agent turn: the
// UI-shaped messages and the model-shaped context history.
func (s *ChatSessionService) SaveConversation(ctx context.Context, userID, sessionID string, messages []models.UIMessage, history []models.ContextMessage) error {
	uiDocs, err := toJSONMaps(messages)
	if err != nil {
		return fmt.Errorf("encode ui messages: %w", err)
	}
	historyDocs, err := toJSONMaps(history)
	if err != nil {
		return fmt.Errorf("encode context history: %w", err)
	}

	return database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		err := tx.ChatSession.UpdateOneID(sessionID).
			SetMessages(uiDocs).
			SetLlmContextHistory(historyDocs).
			SetLastInteractionAt(time.Now()).
			Exec(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: chat session %s", ErrNotFound, sessionID)
			}
			return fmt.Errorf("save conversation: %w", err)
		}
		return nil
	})
}

// LoadConversation decodes the stored projections back into typed form.
func (s *ChatSessionService) LoadConversation(ctx context.Context, userID, sessionID string) ([]models.UIMessage, []models.ContextMessage, error) {
	session, err := s.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, nil, err
	}
	var messages []models.UIMessage
	if err := fromJSONMaps(session.Messages, &messages); err != nil {
		return nil, nil, fmt.Errorf("decode ui messages: %w", err)
	}
	var history []models.ContextMessage
	if err := fromJSONMaps(session.LlmContextHistory, &history); err != nil {
		return nil, nil, fmt.Errorf("decode context history: %w", err)
	}
	return messages, history, nil
}

// SetPlaceholderWarning flags the session so the next system prompt
// reinforces real tool output over invented values.
func (s *ChatSessionService) SetPlaceholderWarning(ctx context.Context, userID, sessionID string, warn bool) error {
	return database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		if err := tx.ChatSession.UpdateOneID(sessionID).SetPlaceholderWarning(warn).Exec(ctx); err != nil {
			return fmt.Errorf("set placeholder warning: %w", err)
		}
		return nil
	})
}

// SetLastToolFailure records the most recent failed tool output so the next
// turn's prompt can surface it.
func (s *ChatSessionService) SetLastToolFailure(ctx context.Context, userID, sessionID, failure string) error {
	return database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		update := tx.ChatSession.UpdateOneID(sessionID)
		if failure == "" {
			update.ClearLastToolFailure()
		} else {
			update.SetLastToolFailure(failure)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("set last tool failure: %w", err)
		}
		return nil
	})
}

// SetUIState stores opaque dashboard state alongside the session.
func (s *ChatSessionService) SetUIState(ctx context.Context, userID, sessionID string, state map[string]any) error {
	return database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		if err := tx.ChatSession.UpdateOneID(sessionID).SetUIState(state).Exec(ctx); err != nil {
			return fmt.Errorf("set ui state: %w", err)
		}
		return nil
	})
}

// QueueContextNote appends a context-only note for a session that may be
// running on another replica. The workflow drains pending notes into the
// model context before its next turn; the UI projection never sees them.
func (s *ChatSessionService) QueueContextNote(ctx context.Context, userID, sessionID string, note models.ContextMessage) error {
	doc, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("encode context note: %w", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(doc, &entry); err != nil {
		return fmt.Errorf("encode context note: %w", err)
	}

	return database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		session, err := tx.ChatSession.Get(ctx, sessionID)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: chat session %s", ErrNotFound, sessionID)
			}
			return fmt.Errorf("load chat session: %w", err)
		}
		pending := append(session.PendingContext, entry)
		if err := tx.ChatSession.UpdateOneID(sessionID).SetPendingContext(pending).Exec(ctx); err != nil {
			return fmt.Errorf("queue context note: %w", err)
		}
		return nil
	})
}

// DrainPendingContext returns and clears the queued context notes.
func (s *ChatSessionService) DrainPendingContext(ctx context.Context, userID, sessionID string) ([]models.ContextMessage, error) {
	var notes []models.ContextMessage
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		session, err := tx.ChatSession.Get(ctx, sessionID)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: chat session %s", ErrNotFound, sessionID)
			}
			return fmt.Errorf("load chat session: %w", err)
		}
		if len(session.PendingContext) == 0 {
			return nil
		}
		if err := fromJSONMaps(session.PendingContext, &notes); err != nil {
			return fmt.Errorf("decode pending context: %w", err)
		}
		if err := tx.ChatSession.UpdateOneID(sessionID).ClearPendingContext().Exec(ctx); err != nil {
			return fmt.Errorf("clear pending context: %w", err)
		}
		return nil
	})
	return notes, err
}

// CancelForIncident cancels every unfinished session linked to the
// incident. Called by the merge operation for the source incident.
func (s *ChatSessionService) CancelForIncident(ctx context.Context, userID, incidentID string) (int, error) {
	var cancelled int
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		var err error
		cancelled, err = tx.ChatSession.Update().
			Where(
				chatsession.IncidentIDEQ(incidentID),
				chatsession.StatusIn(chatsession.StatusActive, chatsession.StatusInProgress),
			).
			SetStatus(chatsession.StatusCancelled).
			SetIsActive(false).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("cancel incident sessions: %w", err)
		}
		return nil
	})
	return cancelled, err
}

// List returns the tenant's sessions, most recently updated first.
func (s *ChatSessionService) List(ctx context.Context, userID string, limit int) ([]*ent.ChatSession, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var sessions []*ent.ChatSession
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		var err error
		sessions, err = tx.ChatSession.Query().
			Order(ent.Desc(chatsession.FieldUpdatedAt)).
			Limit(limit).
			All(ctx)
		if err != nil {
			return fmt.Errorf("list chat sessions: %w", err)
		}
		return nil
	})
	return sessions, err
}

func toJSONMaps(v any) ([]map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func fromJSONMaps(docs []map[string]any, target any) error {
	if len(docs) == 0 {
		return nil
	}
	raw, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, target)
}
