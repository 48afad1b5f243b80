package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/aurora-sre/aurora/pkg/llm"
)

// Registry holds the tool catalog. Registration happens at startup; lookups
// and executions are concurrent.
type Registry struct {
	mu       sync.RWMutex
	tools    map[string]*Tool
	schemas  map[string]*jsonschema.Schema
	scrubber Scrubber
}

// Scrubber redacts credential material from tool output before it reaches
// the model or the conversation store. Satisfied by masking.Scrubber.
type Scrubber interface {
	Scrub(content string) string
}

// SetScrubber installs the output scrubber. Call before serving traffic;
// registration-time wiring is not synchronized against Execute.
func (r *Registry) SetScrubber(s Scrubber) {
	r.scrubber = s
}

func NewRegistry() *Registry {
	return &Registry{
		tools:   make(map[string]*Tool),
		schemas: make(map[string]*jsonschema.Schema),
	}
}

// Register adds a tool to the catalog. The argument schema is compiled once
// here so malformed schemas fail at startup, not at call time.
func (r *Registry) Register(t *Tool) error {
	if t.Name == "" {
		return fmt.Errorf("tool has no name")
	}
	if t.Execute == nil {
		return fmt.Errorf("tool %s has no execute function", t.Name)
	}

	var compiled *jsonschema.Schema
	if t.Schema != nil {
		raw, err := json.Marshal(t.Schema)
		if err != nil {
			return fmt.Errorf("tool %s: marshal schema: %w", t.Name, err)
		}
		compiled, err = jsonschema.CompileString(t.Name+".json", string(raw))
		if err != nil {
			return fmt.Errorf("tool %s: compile schema: %w", t.Name, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("tool %s already registered", t.Name)
	}
	r.tools[t.Name] = t
	if compiled != nil {
		r.schemas[t.Name] = compiled
	}
	return nil
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (*Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// Specs returns the catalog as model-facing tool specs, sorted by name for
// stable prompts.
func (r *Registry) Specs() []llm.ToolSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	specs := make([]llm.ToolSpec, 0, len(r.tools))
	for _, t := range r.tools {
		specs = append(specs, llm.ToolSpec{
			Name:        t.Name,
			Description: t.Description,
			Schema:      t.Schema,
		})
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })
	return specs
}

// Execute runs a tool by name with mode enforcement and schema validation.
// The returned string is always a well-formed JSON result; errors never
// escape the tool boundary.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any, tc Context) (result string) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("tool panicked", "tool", name, "panic", rec)
			result = Error("tool %s failed: %v", name, rec)
		}
	}()

	t, ok := r.Get(name)
	if !ok {
		return Error("unknown tool: %s", name)
	}
	if tc.Mode == ModeAsk && !t.AllowedIn(ModeAsk) {
		return ErrorCode(CodeReadOnlyMode,
			fmt.Sprintf("%s modifies external state and is not available in ask mode", name))
	}
	if args == nil {
		args = map[string]any{}
	}
	if schema, ok := r.schema(name); ok {
		if err := schema.Validate(anyMap(args)); err != nil {
			return Error("invalid arguments for %s: %v", name, err)
		}
	}

	out, err := t.Execute(ctx, args, tc)
	if err != nil {
		return Error("%v", err)
	}
	if out == "" {
		return OK(nil)
	}
	if r.scrubber != nil {
		out = r.scrubber.Scrub(out)
	}
	return out
}

func (r *Registry) schema(name string) (*jsonschema.Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[name]
	return s, ok
}

// anyMap round-trips args through JSON so validation sees the same value
// shapes the schema compiler expects (json.Number free, plain interfaces).
func anyMap(args map[string]any) any {
	raw, err := json.Marshal(args)
	if err != nil {
		return args
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return args
	}
	return v
}
