package llm

import (
	"github.com/aurora-sre/aurora/pkg/models"
)

// ToolSpec describes one tool offered to the model. Schema is a JSON Schema
// object for the tool's arguments.
type ToolSpec struct {
	Name        string
	Description string
	Schema      map[string]any
}

// ChatRequest is one streaming model invocation.
type ChatRequest struct {
	Model       string // native model name for the target provider
	Messages    []models.ContextMessage
	Tools       []ToolSpec
	Temperature *float32
	MaxTokens   int
	// EnableThinking requests structured reasoning blocks from models that
	// support them. Thinking deltas arrive separately from text deltas.
	EnableThinking bool
}

// ToolCallDelta is one streamed fragment of a tool call. Arguments may
// arrive character by character; ID may be absent on later fragments or
// switch from a placeholder to a stable run id mid-stream.
type ToolCallDelta struct {
	Index     int
	ID        string
	Name      string
	ArgsDelta string
}

// Finish reasons reported on the terminal chunk of a model turn.
const (
	FinishStop      = "stop"
	FinishToolCalls = "tool_calls"
)

// Usage is the provider-reported token accounting for one invocation.
type Usage struct {
	InputTokens  int
	OutputTokens int
	Cost         float64
}

// Chunk is one streamed unit from a provider. Exactly one of the delta
// fields is set per chunk; FinishReason is set only on the terminal chunk.
type Chunk struct {
	TextDelta     string
	ThinkingDelta string
	ToolCall      *ToolCallDelta
	FinishReason  string
	Usage         *Usage
}
