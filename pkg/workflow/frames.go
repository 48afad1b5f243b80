// Package workflow drives one turn of an agent conversation: context
// assembly, streaming model invocation, tool-call aggregation and cleaning,
// confirmed tool execution, consolidation, and persistence.
package workflow

import (
	"context"
	"time"
)

// Frame types sent to the client over the session socket.
const (
	FrameStatus              = "status"
	FrameMessage             = "message"
	FrameToolCall            = "tool_call"
	FrameToolResult          = "tool_result"
	FrameConfirmationRequest = "confirmation_request"
	FrameUsageInfo           = "usage_info"
	FrameError               = "error"
)

// Turn status markers.
const (
	StatusStart = "START"
	StatusEnd   = "END"
)

// Frame is one server → client event.
type Frame struct {
	Type       string         `json:"type"`
	SessionID  string         `json:"session_id,omitempty"`
	Data       map[string]any `json:"data"`
	IsComplete bool           `json:"isComplete,omitempty"`
}

// Sender delivers frames to the client. Implementations must tolerate a gone
// client: a failed send must not error the workflow, only mark the
// connection dead. All sends for one session come from a single goroutine.
type Sender interface {
	Send(ctx context.Context, frame Frame) error
}

func statusFrame(sessionID, status string) Frame {
	f := Frame{
		Type:      FrameStatus,
		SessionID: sessionID,
		Data:      map[string]any{"status": status},
	}
	if status == StatusEnd {
		f.IsComplete = true
	}
	return f
}

func tokenFrame(sessionID, text string) Frame {
	return Frame{
		Type:      FrameMessage,
		SessionID: sessionID,
		Data: map[string]any{
			"text":      text,
			"is_chunk":  true,
			"streaming": true,
		},
	}
}

func messageFrame(sessionID, text string) Frame {
	return Frame{
		Type:      FrameMessage,
		SessionID: sessionID,
		Data:      map[string]any{"text": text},
	}
}

func toolCallFrame(sessionID, id, name string, input map[string]any, ts time.Time) Frame {
	return Frame{
		Type:      FrameToolCall,
		SessionID: sessionID,
		Data: map[string]any{
			"tool_call_id": id,
			"tool_name":    name,
			"input":        input,
			"status":       "running",
			"timestamp":    ts.Format(time.RFC3339Nano),
		},
	}
}

func toolResultFrame(sessionID, id, name, result string) Frame {
	return Frame{
		Type:      FrameToolResult,
		SessionID: sessionID,
		Data: map[string]any{
			"tool_call_id": id,
			"tool_name":    name,
			"result":       result,
			"session_id":   sessionID,
		},
	}
}

func confirmationFrame(sessionID, confirmationID, toolName, message string) Frame {
	return Frame{
		Type:      FrameConfirmationRequest,
		SessionID: sessionID,
		Data: map[string]any{
			"confirmation_id": confirmationID,
			"tool_name":       toolName,
			"message":         message,
		},
	}
}

func usageFrame(sessionID string, totalCost float64, inputTokens, outputTokens int) Frame {
	return Frame{
		Type:      FrameUsageInfo,
		SessionID: sessionID,
		Data: map[string]any{
			"total_cost":    totalCost,
			"input_tokens":  inputTokens,
			"output_tokens": outputTokens,
		},
	}
}

// ErrorFrame builds a user-visible error frame. Exported for the gateway,
// which surfaces pre-turn failures (token ceiling, bad input) without a
// workflow.
func ErrorFrame(sessionID, text, code string) Frame {
	data := map[string]any{"text": text}
	if sessionID != "" {
		data["session_id"] = sessionID
	}
	if code != "" {
		data["code"] = code
	}
	return Frame{
		Type:      FrameError,
		SessionID: sessionID,
		Data:      data,
	}
}
