package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aurora-sre/aurora/ent"
	"github.com/aurora-sre/aurora/pkg/events"
	"github.com/aurora-sre/aurora/pkg/models"
	"github.com/aurora-sre/aurora/pkg/services"
	"github.com/aurora-sre/aurora/pkg/slack"
	"github.com/aurora-sre/aurora/pkg/tools"
)

// StatusPublisher pushes session lifecycle transitions to connected
// dashboards. Satisfied by events.Publisher.
type StatusPublisher interface {
	PublishSessionStatus(ctx context.Context, payload events.SessionStatusPayload) error
}

// Launcher runs automated RCA investigations on behalf of the task queue.
// It drives the engine synchronously inside the worker's task context, so
// the queue's heartbeats, retry budget, and merge-triggered cancellation
// all apply to the investigation itself.
type Launcher struct {
	engine      *Engine
	sessions    *services.ChatSessionService
	incidents   *services.IncidentService
	thoughts    *services.ThoughtService
	citations   *services.CitationService
	suggestions *services.SuggestionService
	publisher   StatusPublisher
	sender      Sender
	notifier    *slack.Service
}

func NewLauncher(engine *Engine, sessions *services.ChatSessionService, incidents *services.IncidentService,
	thoughts *services.ThoughtService, citations *services.CitationService,
	suggestions *services.SuggestionService, publisher StatusPublisher, sender Sender, notifier *slack.Service) *Launcher {
	return &Launcher{
		engine:      engine,
		sessions:    sessions,
		incidents:   incidents,
		thoughts:    thoughts,
		citations:   citations,
		suggestions: suggestions,
		publisher:   publisher,
		sender:      sender,
		notifier:    notifier,
	}
}

// Launch runs one RCA turn for the session and settles its lifecycle:
// completed on a clean finish, cancelled if the task context was cancelled
// mid-run (merge or operator action), error otherwise. The incident's agent
// status mirrors the outcome.
func (l *Launcher) Launch(ctx context.Context, userID string, session *ent.ChatSession, prompt string) error {
	incidentID := ""
	if session.IncidentID != nil {
		incidentID = *session.IncidentID
	}

	st := NewState(userID, session.ID, prompt+SuggestionFormatHint, "", tools.ModeAgent, nil)

	var obs Observer
	if incidentID != "" && l.thoughts != nil {
		obs = NewRCAObserver(userID, incidentID, l.thoughts, l.citations, l.suggestions)
	}

	runErr := l.engine.Run(ctx, st, l.sender, obs)

	// The run context is likely dead on the cancel path; settle state on a
	// fresh one.
	settle := context.Background()
	switch {
	case st.TimedOut:
		l.settleSession(settle, userID, session, incidentID, models.SessionCompleted, models.AuroraError)
		l.notifyOutcome(settle, userID, session.ID, incidentID, "timeout", st, nil)
		return nil
	case st.Cancelled:
		l.settleSession(settle, userID, session, incidentID, models.SessionCancelled, models.AuroraIdle)
		l.notifyOutcome(settle, userID, session.ID, incidentID, "cancelled", st, nil)
		return nil
	case runErr != nil:
		l.settleSession(settle, userID, session, incidentID, models.SessionCompleted, models.AuroraError)
		l.notifyOutcome(settle, userID, session.ID, incidentID, "error", st, runErr)
		return fmt.Errorf("rca investigation: %w", runErr)
	default:
		l.settleSession(settle, userID, session, incidentID, models.SessionCompleted, models.AuroraComplete)
		l.notifyOutcome(settle, userID, session.ID, incidentID, "completed", st, nil)
		return nil
	}
}

// notifyOutcome posts the investigation result as a threaded Slack reply on
// the incident's announcement message.
func (l *Launcher) notifyOutcome(ctx context.Context, userID, sessionID, incidentID, status string, st *State, runErr error) {
	if l.notifier == nil || incidentID == "" {
		return
	}

	input := slack.RCACompletedInput{
		IncidentID: incidentID,
		SessionID:  sessionID,
		Status:     status,
		Summary:    finalAssistantText(st.Messages),
	}
	if runErr != nil {
		input.ErrorText = runErr.Error()
	}
	if inc, err := l.incidents.Get(ctx, userID, incidentID); err == nil {
		input.Title = inc.AlertTitle
		input.Fingerprint = inc.AlertTitle
		if inc.SlackMessageTs != nil {
			input.ThreadTS = *inc.SlackMessageTs
		}
	}
	l.notifier.NotifyRCACompleted(ctx, input)
}

// finalAssistantText returns the content of the last assistant message, the
// closing analysis of the turn.
func finalAssistantText(messages []models.ContextMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == models.RoleAssistant && messages[i].Content != "" {
			return messages[i].Content
		}
	}
	return ""
}

func (l *Launcher) settleSession(ctx context.Context, userID string, session *ent.ChatSession, incidentID, sessionStatus, auroraStatus string) {
	if err := l.sessions.UpdateStatus(ctx, userID, session.ID, sessionStatus); err != nil {
		slog.Warn("settling session status failed", "session_id", session.ID, "error", err)
	}
	if incidentID != "" {
		if err := l.incidents.SetAuroraStatus(ctx, userID, incidentID, auroraStatus, session.ID); err != nil {
			slog.Warn("settling incident agent status failed", "incident_id", incidentID, "error", err)
		}
	}
	if l.publisher != nil {
		err := l.publisher.PublishSessionStatus(ctx, events.SessionStatusPayload{
			SessionID:  session.ID,
			UserID:     userID,
			Status:     sessionStatus,
			IncidentID: incidentID,
		})
		if err != nil {
			slog.Warn("publishing session status failed", "session_id", session.ID, "error", err)
		}
	}
}
