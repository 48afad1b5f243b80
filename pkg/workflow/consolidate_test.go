package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-sre/aurora/pkg/models"
)

func TestConsolidateCoalescesStreamedChunks(t *testing.T) {
	messages := []models.ContextMessage{
		{Role: models.RoleHuman, Content: "why is checkout slow?", Timestamp: time.Now()},
		{ID: "m1", Role: models.RoleAssistant, Content: "Looking at "},
		{ID: "m1", Role: models.RoleAssistant, Content: "the API metrics now."},
	}

	out, _ := Consolidate(messages)
	require.Len(t, out, 2)
	assert.Equal(t, "Looking at the API metrics now.", out[1].Content)
}

func TestConsolidateRepairsToolBindingsPositionally(t *testing.T) {
	messages := []models.ContextMessage{
		{ID: "m1", Role: models.RoleAssistant, ToolCalls: []models.ToolCall{
			{ID: "call_A", Name: "kubectl_exec", Args: map[string]any{"command": "kubectl get pods"}},
			{ID: "call_B", Name: "cloud_exec", Args: map[string]any{"command": "aws s3 ls"}},
		}},
		// A replay layer rewrote the result ids.
		{Role: models.RoleTool, ToolCallID: "rewritten_1", Content: `{"ok":true,"pods":3}`},
		{Role: models.RoleTool, ToolCallID: "rewritten_2", Content: `{"ok":true}`},
	}

	out, _ := Consolidate(messages)
	require.Len(t, out, 3)
	assert.Equal(t, "call_A", out[1].ToolCallID)
	assert.Equal(t, "call_B", out[2].ToolCallID)
}

func TestConsolidateKeepsIntactBindings(t *testing.T) {
	messages := []models.ContextMessage{
		{ID: "m1", Role: models.RoleAssistant, ToolCalls: []models.ToolCall{
			{ID: "call_A", Name: "kubectl_exec", Args: map[string]any{}},
		}},
		{Role: models.RoleTool, ToolCallID: "call_A", Content: `{"ok":true}`},
	}

	out, _ := Consolidate(messages)
	assert.Equal(t, "call_A", out[1].ToolCallID)
}

func TestConsolidateDeduplicates(t *testing.T) {
	ts := time.Now()
	messages := []models.ContextMessage{
		{Role: models.RoleHuman, Content: "hello", Timestamp: ts},
		{Role: models.RoleHuman, Content: "hello", Timestamp: ts},
		{ID: "m1", Role: models.RoleAssistant, Content: "hi"},
		{ID: "m1", Role: models.RoleAssistant, Content: ""},
		{Role: models.RoleTool, ToolCallID: "call_A", Content: `{"ok":true}`},
		{Role: models.RoleTool, ToolCallID: "call_A", Content: `{"ok":true}`},
	}

	out, _ := Consolidate(messages)
	require.Len(t, out, 3)
	assert.Equal(t, models.RoleHuman, out[0].Role)
	assert.Equal(t, "hi", out[1].Content)
	assert.Equal(t, models.RoleTool, out[2].Role)
}

func TestConsolidateFlagsPlaceholders(t *testing.T) {
	messages := []models.ContextMessage{
		{ID: "m1", Role: models.RoleAssistant, Content: "Run this against YOUR-PROJECT to see the instances."},
	}
	_, report := Consolidate(messages)
	assert.True(t, report.PlaceholderWarning)

	clean := []models.ContextMessage{
		{ID: "m2", Role: models.RoleAssistant, Content: "Instance i-0abc is unhealthy in prod-api."},
	}
	_, report = Consolidate(clean)
	assert.False(t, report.PlaceholderWarning)
}

func TestConsolidateCapturesLastToolFailure(t *testing.T) {
	messages := []models.ContextMessage{
		{Role: models.RoleTool, ToolCallID: "c1", Content: `{"error":true,"message":"first failure"}`},
		{Role: models.RoleTool, ToolCallID: "c2", Content: `{"ok":true}`},
		{Role: models.RoleTool, ToolCallID: "c3", Content: `{"error":true,"message":"second failure"}`},
	}
	_, report := Consolidate(messages)
	assert.Contains(t, report.LastToolFailure, "second failure")
}

func TestFillMissingToolResults(t *testing.T) {
	messages := []models.ContextMessage{
		{ID: "m1", Role: models.RoleAssistant, ToolCalls: []models.ToolCall{
			{ID: "call_A", Name: "kubectl_exec"},
			{ID: "call_B", Name: "cloud_exec"},
		}},
		{Role: models.RoleTool, ToolCallID: "call_A", Content: `{"ok":true}`},
	}

	out := fillMissingToolResults(messages, `{"success":true,"cancelled":true}`)
	require.Len(t, out, 3)
	assert.Equal(t, "call_B", out[2].ToolCallID)
	assert.Contains(t, out[2].Content, "cancelled")
}

func TestApplyToolResultToUI(t *testing.T) {
	ui := []models.UIMessage{
		{Role: models.RoleAssistant, ToolCalls: []models.UIToolCall{
			{ID: "call_A", Name: "kubectl_exec", Status: "running"},
		}},
	}
	applyToolResultToUI(ui, "call_A", `{"ok":true}`)
	assert.Equal(t, "completed", ui[0].ToolCalls[0].Status)
	assert.Equal(t, `{"ok":true}`, ui[0].ToolCalls[0].Output)
}

func TestMigrateLegacyHistory(t *testing.T) {
	ts := time.Now()
	ui := []models.UIMessage{
		{Role: "user", Content: "check the cluster", Timestamp: ts},
		{ID: "m1", Role: models.RoleAssistant, Content: "Checking.", Timestamp: ts, ToolCalls: []models.UIToolCall{
			{ID: "call_A", Name: "kubectl_exec", Input: map[string]any{"command": "kubectl get nodes"}, Status: "completed", Output: `{"ok":true}`},
		}},
	}

	history := migrateLegacyHistory(ui)
	require.Len(t, history, 3)
	assert.Equal(t, models.RoleHuman, history[0].Role)
	require.Len(t, history[1].ToolCalls, 1)
	assert.Equal(t, "call_A", history[1].ToolCalls[0].ID)
	assert.Equal(t, models.RoleTool, history[2].Role)
	assert.Equal(t, "call_A", history[2].ToolCallID)
}
