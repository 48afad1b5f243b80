package models

import (
	"strings"
	"time"
)

// Message roles used in llm_context_history.
const (
	RoleSystem    = "system"
	RoleHuman     = "human"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ToolCall is a finalized tool invocation committed by the model.
type ToolCall struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// ContextMessage is one entry of a session's llm_context_history. The shape
// mirrors what the providers consume: assistant messages may carry tool
// calls, tool messages bind their output to a prior call via ToolCallID.
type ContextMessage struct {
	ID         string     `json:"id,omitempty"`
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	Timestamp  time.Time  `json:"timestamp,omitempty"`
}

// Signature returns a dedup key for the message. Assistant messages dedupe
// by id when present and by content otherwise; tool messages dedupe by the
// call they answer plus the command that produced them.
func (m ContextMessage) Signature() string {
	switch m.Role {
	case RoleAssistant:
		if m.ID != "" {
			return "assistant:" + m.ID
		}
		return "assistant:" + m.Content
	case RoleTool:
		key := m.ToolCallID
		if cmd := extractCommand(m.Content); cmd != "" {
			key += ":" + cmd
		}
		return "tool:" + key
	default:
		return m.Role + ":" + m.Content + ":" + m.Timestamp.UTC().Format(time.RFC3339)
	}
}

func extractCommand(content string) string {
	idx := strings.Index(content, `"command"`)
	if idx < 0 {
		return ""
	}
	rest := content[idx+len(`"command"`):]
	start := strings.Index(rest, `"`)
	if start < 0 {
		return ""
	}
	rest = rest[start+1:]
	end := strings.Index(rest, `"`)
	if end < 0 {
		return ""
	}
	return rest[:end]
}

// UIToolCall is the UI projection of a tool call. The workflow mutates
// Status and Output in place when the matching tool result arrives.
type UIToolCall struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Input     map[string]any `json:"input"`
	Status    string         `json:"status"`
	Output    string         `json:"output,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// UIMessage is one entry of a session's UI-shaped messages array.
type UIMessage struct {
	ID        string       `json:"id,omitempty"`
	Role      string       `json:"role"`
	Content   string       `json:"content"`
	ToolCalls []UIToolCall `json:"toolCalls,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// Attachment is a user-supplied file forwarded to the model.
type Attachment struct {
	Filename     string `json:"filename"`
	FileType     string `json:"file_type"`
	FileData     string `json:"file_data,omitempty"`
	ServerPath   string `json:"server_path,omitempty"`
	IsServerPath bool   `json:"is_server_path,omitempty"`
}
