package workflow

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/aurora-sre/aurora/pkg/models"
)

// Report carries the per-turn flags that consolidation derives from the
// final message sequence. Both feed the next turn's system prompt.
type Report struct {
	PlaceholderWarning bool
	LastToolFailure    string
}

// Literal substrings that betray an invented value where real tool output
// belongs.
var placeholderTokens = []string{
	"<project",
	"your-project",
	"todo",
	"subscription id",
}

// Consolidate repairs and deduplicates a context history before
// persistence: streamed assistant chunks sharing an id coalesce into one
// message, tool-result bindings broken by upstream replays are restored by
// positional matching, and duplicates are dropped by signature.
func Consolidate(messages []models.ContextMessage) ([]models.ContextMessage, Report) {
	coalesced := coalesceAssistantChunks(messages)
	repairToolBindings(coalesced)
	deduped := dedupeMessages(coalesced)

	report := Report{}
	for _, m := range deduped {
		if m.Role != models.RoleAssistant && m.Role != models.RoleTool {
			continue
		}
		if containsPlaceholder(m.Content) {
			report.PlaceholderWarning = true
		}
		if m.Role == models.RoleTool && isErrorResult(m.Content) {
			report.LastToolFailure = m.Content
		}
	}
	return deduped, report
}

func coalesceAssistantChunks(messages []models.ContextMessage) []models.ContextMessage {
	var out []models.ContextMessage
	index := make(map[string]int) // assistant message id → position in out
	for _, m := range messages {
		if m.Role != models.RoleAssistant || m.ID == "" {
			out = append(out, m)
			continue
		}
		at, seen := index[m.ID]
		if !seen {
			index[m.ID] = len(out)
			out = append(out, m)
			continue
		}
		out[at].Content += m.Content
		out[at].ToolCalls = mergeToolCalls(out[at].ToolCalls, m.ToolCalls)
	}
	return out
}

func mergeToolCalls(existing, incoming []models.ToolCall) []models.ToolCall {
	for _, call := range incoming {
		merged := false
		for i := range existing {
			if existing[i].ID == call.ID {
				existing[i].Args = mergeArgs(existing[i].Args, call.Args)
				merged = true
				break
			}
		}
		if !merged {
			existing = append(existing, call)
		}
	}
	return existing
}

// repairToolBindings restores tool_call_id links by positional matching.
// Some replay paths rewrite ids on one side only; when the number of
// committed calls equals the number of results, emission order is the
// ground truth.
func repairToolBindings(messages []models.ContextMessage) {
	var callIDs []string
	known := make(map[string]bool)
	var results []*models.ContextMessage
	for i := range messages {
		switch messages[i].Role {
		case models.RoleAssistant:
			for _, call := range messages[i].ToolCalls {
				callIDs = append(callIDs, call.ID)
				known[call.ID] = true
			}
		case models.RoleTool:
			results = append(results, &messages[i])
		}
	}
	if len(callIDs) != len(results) {
		return
	}
	mismatched := false
	for _, r := range results {
		if !known[r.ToolCallID] {
			mismatched = true
			break
		}
	}
	if !mismatched {
		return
	}
	for i, r := range results {
		r.ToolCallID = callIDs[i]
	}
}

func dedupeMessages(messages []models.ContextMessage) []models.ContextMessage {
	var out []models.ContextMessage
	seen := make(map[string]bool)
	for _, m := range messages {
		// Identical assistant text with tool calls attached is not a
		// duplicate: the calls distinguish it.
		if m.Role == models.RoleAssistant && len(m.ToolCalls) > 0 && m.ID == "" {
			out = append(out, m)
			continue
		}
		sig := m.Signature()
		if seen[sig] {
			continue
		}
		seen[sig] = true
		out = append(out, m)
	}
	return out
}

func containsPlaceholder(content string) bool {
	lower := strings.ToLower(content)
	for _, token := range placeholderTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

func isErrorResult(content string) bool {
	var payload struct {
		Error bool `json:"error"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return false
	}
	return payload.Error
}

// fillMissingToolResults appends a cancelled-shape result for every
// committed tool call that has no result yet. Used on the cancel path so
// the persisted history never leaves a call unanswered.
func fillMissingToolResults(messages []models.ContextMessage, fill string) []models.ContextMessage {
	answered := make(map[string]bool)
	for _, m := range messages {
		if m.Role == models.RoleTool {
			answered[m.ToolCallID] = true
		}
	}
	for _, m := range messages {
		if m.Role != models.RoleAssistant {
			continue
		}
		for _, call := range m.ToolCalls {
			if answered[call.ID] {
				continue
			}
			answered[call.ID] = true
			messages = append(messages, models.ContextMessage{
				Role:       models.RoleTool,
				Content:    fill,
				ToolCallID: call.ID,
				Timestamp:  time.Now(),
			})
		}
	}
	return messages
}

// applyToolResultToUI mutates the matching tool-call entry in the UI
// projection to completed with its output.
func applyToolResultToUI(ui []models.UIMessage, toolCallID, output string) {
	for i := len(ui) - 1; i >= 0; i-- {
		for j := range ui[i].ToolCalls {
			if ui[i].ToolCalls[j].ID == toolCallID {
				ui[i].ToolCalls[j].Status = "completed"
				ui[i].ToolCalls[j].Output = output
				return
			}
		}
	}
}
