package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// Modes a tool may be invoked in. Ask mode is read-only; agent mode allows
// mutating tools subject to confirmation.
const (
	ModeAsk   = "ask"
	ModeAgent = "agent"
)

// CodeReadOnlyMode is the error code returned when a mutating tool is
// invoked in ask mode.
const CodeReadOnlyMode = "READ_ONLY_MODE"

// Context carries caller-scoped state into a tool execution.
type Context struct {
	UserID             string
	SessionID          string
	Mode               string
	ProviderPreference []string
	Secrets            SecretReader
}

// SecretReader resolves per-user provider credentials.
type SecretReader interface {
	Get(ctx context.Context, userID, key string) (string, error)
}

// Tool is one named, schema-described operation offered to the agent.
type Tool struct {
	Name                 string
	Description          string
	Schema               map[string]any
	RequiresConfirmation bool
	AllowedModes         []string

	// Execute runs the tool and returns a JSON result string. Returned
	// errors are wrapped into an error-shape result by the registry; they
	// never terminate the turn.
	Execute func(ctx context.Context, args map[string]any, tc Context) (string, error)

	// ConfirmationMessage renders the prompt shown to the user before a
	// destructive execution. Optional; a generic prompt is used when nil.
	ConfirmationMessage func(args map[string]any) string
}

// AllowedIn reports whether the tool may run in the given mode.
func (t *Tool) AllowedIn(mode string) bool {
	if len(t.AllowedModes) == 0 {
		return true
	}
	for _, m := range t.AllowedModes {
		if m == mode {
			return true
		}
	}
	return false
}

// Result helpers. Every tool output is a JSON string in one of three
// canonical shapes.

// OK renders a success result with extra fields.
func OK(fields map[string]any) string {
	out := map[string]any{"ok": true}
	for k, v := range fields {
		out[k] = v
	}
	return mustJSON(out)
}

// Error renders an error result.
func Error(format string, args ...any) string {
	return mustJSON(map[string]any{
		"error":   true,
		"message": fmt.Sprintf(format, args...),
	})
}

// ErrorCode renders an error result with a machine-readable code.
func ErrorCode(code, message string) string {
	return mustJSON(map[string]any{
		"error":   true,
		"code":    code,
		"message": message,
	})
}

// Cancelled renders the success-shaped result used when the user declines a
// confirmation.
func Cancelled() string {
	return mustJSON(map[string]any{
		"success":   true,
		"cancelled": true,
		"message":   "Operation cancelled by user",
	})
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return `{"error":true,"message":"internal: result not serializable"}`
	}
	return string(b)
}
