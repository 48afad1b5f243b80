package workflow

import (
	"fmt"
	"time"

	"github.com/aurora-sre/aurora/pkg/llm"
	"github.com/aurora-sre/aurora/pkg/models"
	"github.com/aurora-sre/aurora/pkg/tools"
)

// State is the mutable context of one agent turn. The gateway builds it from
// the query frame; the engine loads prior history into Messages, runs the
// loop, and leaves the consolidated conversation behind for persistence.
type State struct {
	UserID    string
	SessionID string

	Model              string
	Mode               string // tools.ModeAgent or tools.ModeAsk
	ProviderPreference []string

	Messages    []models.ContextMessage
	UI          []models.UIMessage
	Attachments []models.Attachment

	PlaceholderWarning bool
	LastToolFailure    string

	// TotalCost accumulates provider-reported spend across iterations;
	// TotalInputTokens and TotalOutputTokens carry the raw counts it was
	// priced from.
	TotalCost         float64
	TotalInputTokens  int
	TotalOutputTokens int

	// Cancelled is set when the turn ended through the cancel path rather
	// than a model stop. TimedOut is set when the turn ceiling ended it.
	Cancelled bool
	TimedOut  bool
}

// NewState builds a turn state with the user's query appended as the newest
// human message.
func NewState(userID, sessionID, query, model, mode string, preference []string) *State {
	if mode == "" {
		mode = tools.ModeAgent
	}
	st := &State{
		UserID:             userID,
		SessionID:          sessionID,
		Model:              model,
		Mode:               mode,
		ProviderPreference: preference,
	}
	if query != "" {
		st.AppendHuman(query)
	}
	return st
}

// AppendHuman adds a human message to both projections.
func (st *State) AppendHuman(text string) {
	now := time.Now()
	st.Messages = append(st.Messages, models.ContextMessage{
		Role:      models.RoleHuman,
		Content:   text,
		Timestamp: now,
	})
	st.UI = append(st.UI, models.UIMessage{
		Role:      models.RoleHuman,
		Content:   text,
		Timestamp: now,
	})
}

// LatestHumanMessage returns the newest human message content, or "".
func (st *State) LatestHumanMessage() string {
	for i := len(st.Messages) - 1; i >= 0; i-- {
		if st.Messages[i].Role == models.RoleHuman {
			return st.Messages[i].Content
		}
	}
	return ""
}

// ErrTokenBudget is returned when a user message exceeds the per-message
// token ceiling. The gateway rejects the query before any session row is
// written.
type ErrTokenBudget struct {
	Tokens int
	Limit  int
}

func (e *ErrTokenBudget) Error() string {
	return fmt.Sprintf("message is too large: ~%d tokens (limit %d)", e.Tokens, e.Limit)
}

// ValidateTokenBudget estimates the message size and rejects it when it
// exceeds the ceiling.
func ValidateTokenBudget(text string, maxTokens int) error {
	tokens := llm.EstimateTokens(text)
	if tokens > maxTokens {
		return &ErrTokenBudget{Tokens: tokens, Limit: maxTokens}
	}
	return nil
}

// migrateLegacyHistory rebuilds a model-shaped context from a UI-shaped
// message array. Older sessions persisted only the UI projection; this is a
// best-effort lift so they stay resumable.
func migrateLegacyHistory(ui []models.UIMessage) []models.ContextMessage {
	var out []models.ContextMessage
	for _, m := range ui {
		role := m.Role
		switch role {
		case "user":
			role = models.RoleHuman
		case models.RoleHuman, models.RoleAssistant, models.RoleSystem:
		default:
			continue
		}
		msg := models.ContextMessage{
			ID:        m.ID,
			Role:      role,
			Content:   m.Content,
			Timestamp: m.Timestamp,
		}
		for _, tc := range m.ToolCalls {
			msg.ToolCalls = append(msg.ToolCalls, models.ToolCall{
				ID:   tc.ID,
				Name: tc.Name,
				Args: tc.Input,
			})
		}
		out = append(out, msg)
		// Completed tool calls re-emit their outputs so the pairing
		// invariant holds on the migrated history.
		for _, tc := range m.ToolCalls {
			if tc.Output == "" {
				continue
			}
			out = append(out, models.ContextMessage{
				Role:       models.RoleTool,
				Content:    tc.Output,
				ToolCallID: tc.ID,
				Timestamp:  tc.Timestamp,
			})
		}
	}
	return out
}

// foldAttachments appends inline attachment bodies to the message text so
// the model sees the files the user uploaded.
func foldAttachments(text string, attachments []models.Attachment) string {
	for _, a := range attachments {
		if a.FileData == "" {
			continue
		}
		text += fmt.Sprintf("\n\n--- attached file: %s (%s) ---\n%s", a.Filename, a.FileType, a.FileData)
	}
	return text
}
