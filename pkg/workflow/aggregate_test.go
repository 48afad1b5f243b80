package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-sre/aurora/pkg/llm"
)

func TestBuilderAssemblesFragmentedArguments(t *testing.T) {
	b := newCallBuilder()
	b.Add(llm.ToolCallDelta{Index: 0, ID: "call_A", Name: "kubectl_exec", ArgsDelta: `{"command":"kubectl get ns"}`})
	b.Add(llm.ToolCallDelta{Index: 1, ID: "call_B", Name: "kubectl_exec", ArgsDelta: `{"comma`})
	b.Add(llm.ToolCallDelta{Index: 1, ArgsDelta: `nd":"kubectl get pods"}`})

	calls := b.Finalize()
	require.Len(t, calls, 2)
	assert.Equal(t, "call_A", calls[0].ID)
	assert.Equal(t, map[string]any{"command": "kubectl get ns"}, calls[0].Args)
	assert.Equal(t, "call_B", calls[1].ID)
	assert.Equal(t, map[string]any{"command": "kubectl get pods"}, calls[1].Args)
}

func TestBuilderPromotesPlaceholderToRunID(t *testing.T) {
	b := newCallBuilder()
	b.Add(llm.ToolCallDelta{Index: 0, ID: "tool_0", Name: "cloud_exec", ArgsDelta: `{"provider":`})
	b.Add(llm.ToolCallDelta{Index: 0, ID: "run-abc123", ArgsDelta: `"aws","command":"aws ec2 describe-instances"}`})

	calls := b.Finalize()
	require.Len(t, calls, 1)
	assert.Equal(t, "run-abc123", calls[0].ID)
	assert.Equal(t, "aws ec2 describe-instances", calls[0].Args["command"])
}

func TestBuilderGeneratesIDWhenMissing(t *testing.T) {
	b := newCallBuilder()
	b.Add(llm.ToolCallDelta{Index: 0, Name: "incident_query", ArgsDelta: `{}`})

	calls := b.Finalize()
	require.Len(t, calls, 1)
	assert.NotEmpty(t, calls[0].ID)
}

func TestBuilderDropsNamelessEntries(t *testing.T) {
	b := newCallBuilder()
	b.Add(llm.ToolCallDelta{Index: 3, ArgsDelta: `{"orphan":true}`})
	assert.Empty(t, b.Finalize())
}

func TestParseArgsCarvesCorruptedStream(t *testing.T) {
	// Trailing garbage after a valid object.
	args := parseArgs(`{"command":"ls"}{"user_id":"u1"}`)
	assert.Equal(t, map[string]any{"command": "ls"}, args)

	// Envelope fields spliced in at top level.
	args = parseArgs(`{"user_id":"u1","session_id":"s1"}`)
	assert.Equal(t, map[string]any{}, args)

	// Unsalvageable content.
	args = parseArgs(`not json at all`)
	assert.Equal(t, map[string]any{}, args)

	// Braces inside strings do not break the carve.
	args = parseArgs(`{"command":"echo '{'"} trailing`)
	assert.Equal(t, map[string]any{"command": "echo '{'"}, args)
}

func TestMergeArgsRules(t *testing.T) {
	// Dicts union recursively.
	merged := mergeArgs(
		map[string]any{"opts": map[string]any{"a": "1"}},
		map[string]any{"opts": map[string]any{"b": "2"}},
	)
	assert.Equal(t, map[string]any{"a": "1", "b": "2"}, merged["opts"])

	// Strings concatenate.
	merged = mergeArgs(map[string]any{"query": "kube"}, map[string]any{"query": "ctl"})
	assert.Equal(t, "kubectl", merged["query"])

	// A dict beats a string.
	merged = mergeArgs(map[string]any{"filter": "x"}, map[string]any{"filter": map[string]any{"k": "v"}})
	assert.Equal(t, map[string]any{"k": "v"}, merged["filter"])

	// Differing non-empty commands keep the earlier one.
	merged = mergeArgs(map[string]any{"command": "kubectl get pods"}, map[string]any{"command": "rm -rf /"})
	assert.Equal(t, "kubectl get pods", merged["command"])
}

func TestNormalizeCloudArgsPrependsGcloud(t *testing.T) {
	args := map[string]any{"provider": "gcp", "command": "compute instances list"}
	normalizeCloudArgs(args)
	assert.Equal(t, "gcloud compute instances list", args["command"])

	// Already prefixed: untouched.
	args = map[string]any{"provider": "gcp", "command": "gcloud projects list"}
	normalizeCloudArgs(args)
	assert.Equal(t, "gcloud projects list", args["command"])

	// Other providers: untouched.
	args = map[string]any{"provider": "aws", "command": "s3 ls"}
	normalizeCloudArgs(args)
	assert.Equal(t, "s3 ls", args["command"])
}

func TestBuilderJoinsFragmentsByIDAcrossIndexes(t *testing.T) {
	// Some gateways reset the index mid-call; the id is the join key then.
	b := newCallBuilder()
	b.Add(llm.ToolCallDelta{Index: 0, ID: "run-1", Name: "cloud_exec", ArgsDelta: `{"command":"aws s3 ls"`})
	b.Add(llm.ToolCallDelta{Index: 2, ID: "run-1", ArgsDelta: `,"region":"eu-west-1"}`})

	calls := b.Finalize()
	require.Len(t, calls, 1)
	assert.Equal(t, "aws s3 ls", calls[0].Args["command"])
	assert.Equal(t, "eu-west-1", calls[0].Args["region"])
}
