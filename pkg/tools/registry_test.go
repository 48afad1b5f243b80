package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	calls [][]string
	out   string
	err   error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args []string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.out, f.err
}

type fakeSecrets map[string]string

func (f fakeSecrets) Get(ctx context.Context, userID, key string) (string, error) {
	v, ok := f[key]
	if !ok {
		return "", errors.New("no credential for " + key)
	}
	return v, nil
}

type fakeRunbooks struct{ content string }

func (f fakeRunbooks) Fetch(ctx context.Context, url string) (string, error) {
	return f.content, nil
}

type fakeIncidents struct{}

func (fakeIncidents) IncidentJSON(ctx context.Context, userID, incidentID string) (string, error) {
	return `{"ok":true,"incident_id":"` + incidentID + `"}`, nil
}

func newTestRegistry(t *testing.T, runner *fakeRunner) *Registry {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, RegisterBuiltins(r, Deps{
		Runner:    runner,
		Runbooks:  fakeRunbooks{content: "steps"},
		Incidents: fakeIncidents{},
	}))
	return r
}

func decode(t *testing.T, result string) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &out))
	return out
}

func TestAskModeBlocksMutatingTools(t *testing.T) {
	runner := &fakeRunner{}
	r := newTestRegistry(t, runner)

	result := r.Execute(context.Background(), "iac_tool",
		map[string]any{"action": "apply"}, Context{UserID: "u1", Mode: ModeAsk})

	out := decode(t, result)
	assert.Equal(t, true, out["error"])
	assert.Equal(t, CodeReadOnlyMode, out["code"])
	assert.Empty(t, runner.calls, "no external process may be spawned in ask mode")
}

func TestAgentModeRunsIaC(t *testing.T) {
	runner := &fakeRunner{out: "Plan: 2 to add"}
	r := newTestRegistry(t, runner)

	result := r.Execute(context.Background(), "iac_tool",
		map[string]any{"action": "plan"}, Context{UserID: "u1", Mode: ModeAgent})

	out := decode(t, result)
	assert.Equal(t, true, out["ok"])
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "terraform", runner.calls[0][0])
	assert.Equal(t, "plan", runner.calls[0][1])
}

func TestCloudExecRejectsMismatchedBinary(t *testing.T) {
	runner := &fakeRunner{}
	r := newTestRegistry(t, runner)

	result := r.Execute(context.Background(), "cloud_exec",
		map[string]any{"provider": "gcp", "command": "rm -rf /"},
		Context{UserID: "u1", Mode: ModeAgent})

	out := decode(t, result)
	assert.Equal(t, true, out["error"])
	assert.Empty(t, runner.calls)
}

func TestCloudExecRunsGcloud(t *testing.T) {
	runner := &fakeRunner{out: "NAME ZONE STATUS"}
	r := newTestRegistry(t, runner)

	result := r.Execute(context.Background(), "cloud_exec",
		map[string]any{"provider": "gcp", "command": "gcloud compute instances list"},
		Context{UserID: "u1", Mode: ModeAsk})

	out := decode(t, result)
	assert.Equal(t, true, out["ok"])
	assert.Equal(t, "NAME ZONE STATUS", out["output"])
}

func TestSchemaValidationRejectsBadAction(t *testing.T) {
	r := newTestRegistry(t, &fakeRunner{})

	result := r.Execute(context.Background(), "iac_tool",
		map[string]any{"action": "detonate"}, Context{UserID: "u1", Mode: ModeAgent})

	out := decode(t, result)
	assert.Equal(t, true, out["error"])
}

func TestUnknownTool(t *testing.T) {
	r := newTestRegistry(t, &fakeRunner{})
	out := decode(t, r.Execute(context.Background(), "nope", nil, Context{Mode: ModeAgent}))
	assert.Equal(t, true, out["error"])
}

func TestToolErrorNeverEscapes(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&Tool{
		Name: "boom",
		Execute: func(ctx context.Context, args map[string]any, tc Context) (string, error) {
			panic("kaboom")
		},
	}))

	out := decode(t, r.Execute(context.Background(), "boom", nil, Context{Mode: ModeAgent}))
	assert.Equal(t, true, out["error"])
}

func TestResultShapes(t *testing.T) {
	assert.JSONEq(t, `{"ok":true,"x":1}`, OK(map[string]any{"x": 1}))
	assert.JSONEq(t, `{"error":true,"message":"bad thing"}`, Error("bad %s", "thing"))
	assert.JSONEq(t,
		`{"success":true,"cancelled":true,"message":"Operation cancelled by user"}`,
		Cancelled())
}

func TestSpecsSorted(t *testing.T) {
	r := newTestRegistry(t, &fakeRunner{})
	specs := r.Specs()
	require.NotEmpty(t, specs)
	for i := 1; i < len(specs); i++ {
		assert.Less(t, specs[i-1].Name, specs[i].Name)
	}
}

type upperScrubber struct{}

func (upperScrubber) Scrub(content string) string { return strings.ToUpper(content) }

func TestScrubberAppliesToToolOutput(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&Tool{
		Name: "echo",
		Execute: func(ctx context.Context, args map[string]any, tc Context) (string, error) {
			return `{"ok":true,"secret":"hunter"}`, nil
		},
	}))
	r.SetScrubber(upperScrubber{})

	out := r.Execute(context.Background(), "echo", nil, Context{Mode: ModeAgent})
	assert.Contains(t, out, "HUNTER")
}
