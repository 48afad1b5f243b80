package workflow

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aurora-sre/aurora/pkg/llm"
	"github.com/aurora-sre/aurora/pkg/models"
)

// Providers stream tool calls in fragments: arguments arrive character by
// character, ids may be absent on later fragments, and some gateways emit a
// placeholder id (prefix "tool_") before switching to the stable run id
// (prefix "run-") mid-stream. The builder accumulates fragments keyed by
// stream index with late id binding and produces clean, deduplicated calls
// on finalize.

const (
	placeholderIDPrefix = "tool_"
	stableIDPrefix      = "run-"
)

type partialCall struct {
	index int
	id    string
	name  string
	args  strings.Builder
}

type callBuilder struct {
	entries []*partialCall
}

func newCallBuilder() *callBuilder {
	return &callBuilder{}
}

// Add folds one streamed fragment into the builder.
func (b *callBuilder) Add(delta llm.ToolCallDelta) {
	entry := b.match(delta)
	if entry == nil {
		entry = &partialCall{index: delta.Index, id: delta.ID, name: delta.Name}
		b.entries = append(b.entries, entry)
	} else {
		if delta.ID != "" && delta.ID != entry.id {
			if entry.id == "" || promotes(entry.id, delta.ID) {
				entry.id = delta.ID
			}
		}
		if delta.Name != "" && entry.name == "" {
			entry.name = delta.Name
		}
	}
	entry.args.WriteString(delta.ArgsDelta)
}

func (b *callBuilder) match(delta llm.ToolCallDelta) *partialCall {
	if delta.ID != "" {
		for _, e := range b.entries {
			if e.id == delta.ID {
				return e
			}
		}
	}
	// Same index merges when either side lacks an id or the ids are the
	// placeholder/stable pair for one call.
	for _, e := range b.entries {
		if e.index != delta.Index {
			continue
		}
		if delta.ID == "" || e.id == "" || promotes(e.id, delta.ID) || promotes(delta.ID, e.id) {
			return e
		}
	}
	return nil
}

// promotes reports whether stable should replace current as the canonical id.
func promotes(current, stable string) bool {
	return strings.HasPrefix(current, placeholderIDPrefix) && strings.HasPrefix(stable, stableIDPrefix)
}

// Finalize parses and cleans the accumulated fragments into committed tool
// calls, in stream order, deduplicated by id.
func (b *callBuilder) Finalize() []models.ToolCall {
	var out []models.ToolCall
	seen := make(map[string]int)
	for i, e := range b.entries {
		if e.name == "" {
			continue
		}
		call := models.ToolCall{
			ID:   e.id,
			Name: e.name,
			Args: parseArgs(e.args.String()),
		}
		if call.ID == "" {
			call.ID = fmt.Sprintf("call_%d", i)
		}
		normalizeCloudArgs(call.Args)
		if at, dup := seen[call.ID]; dup {
			out[at].Args = mergeArgs(out[at].Args, call.Args)
			continue
		}
		seen[call.ID] = len(out)
		out = append(out, call)
	}
	return out
}

// parseArgs turns a streamed argument string into a JSON object. Corrupted
// streams occasionally splice envelope fields (user_id, session_id) or
// trailing garbage into the argument text; those are repaired by carving the
// first balanced JSON object prefix, and anything unsalvageable becomes an
// empty object.
func parseArgs(raw string) map[string]any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string]any{}
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err == nil && !suspicious(args) {
		return args
	}

	if prefix := carveBalancedObject(raw); prefix != "" {
		var carved map[string]any
		if err := json.Unmarshal([]byte(prefix), &carved); err == nil && !suspicious(carved) {
			return carved
		}
	}
	return map[string]any{}
}

// suspicious reports whether the parsed args look like a corrupted stream
// rather than real tool arguments.
func suspicious(args map[string]any) bool {
	_, hasUser := args["user_id"]
	_, hasSession := args["session_id"]
	return hasUser || hasSession
}

// carveBalancedObject returns the first balanced {...} object in s, or "".
func carveBalancedObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// mergeArgs merges two argument maps for the same call id. Maps union
// recursively, strings concatenate (they are fragments of one value), and a
// map beats a string. An earlier non-empty command is preserved when the
// sides disagree: the first committed command is what the model meant.
func mergeArgs(earlier, later map[string]any) map[string]any {
	if earlier == nil {
		return later
	}
	for k, lv := range later {
		ev, ok := earlier[k]
		if !ok {
			earlier[k] = lv
			continue
		}
		switch evt := ev.(type) {
		case map[string]any:
			if lvt, ok := lv.(map[string]any); ok {
				earlier[k] = mergeArgs(evt, lvt)
			}
			// map + string: keep the map
		case string:
			switch lvt := lv.(type) {
			case string:
				if k == "command" && evt != "" && lvt != "" && evt != lvt {
					continue
				}
				if evt != lvt {
					earlier[k] = evt + lvt
				}
			case map[string]any:
				earlier[k] = lvt
			default:
				earlier[k] = lv
			}
		default:
			earlier[k] = lv
		}
	}
	return earlier
}

// normalizeCloudArgs repairs a known model habit: gcp commands emitted
// without the gcloud binary prefix.
func normalizeCloudArgs(args map[string]any) {
	if args == nil {
		return
	}
	provider, _ := args["provider"].(string)
	if provider != "gcp" {
		return
	}
	command, ok := args["command"].(string)
	if !ok || command == "" || strings.HasPrefix(command, "gcloud") {
		return
	}
	args["command"] = "gcloud " + command
}
