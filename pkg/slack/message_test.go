package slack

import (
	"strings"
	"testing"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIncidentCreatedMessage(t *testing.T) {
	input := IncidentCreatedInput{
		IncidentID: "inc-1",
		Title:      "High error rate on checkout",
		Severity:   "critical",
		Source:     "grafana",
		Services:   []string{"checkout", "payments"},
	}
	blocks := BuildIncidentCreatedMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 3)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":rotating_light:")
	assert.Contains(t, header.Text.Text, "New incident")
	assert.Contains(t, header.Text.Text, "High error rate on checkout")

	fields := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, fields.Text.Text, "*Severity:* critical")
	assert.Contains(t, fields.Text.Text, "*Source:* grafana")
	assert.Contains(t, fields.Text.Text, "checkout, payments")

	action := blocks[2].(*goslack.ActionBlock)
	require.Len(t, action.Elements.ElementSet, 1)
	btn, ok := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, "View Incident", btn.Text.Text)
	assert.Contains(t, btn.URL, "https://dash.example.com/incidents/inc-1")
}

func TestBuildIncidentCreatedMessage_MinimalInput(t *testing.T) {
	input := IncidentCreatedInput{
		IncidentID: "inc-2",
		Title:      "Disk pressure on node-7",
	}
	blocks := BuildIncidentCreatedMessage(input, "https://dash.example.com")

	// No metadata fields: header and button only.
	require.Len(t, blocks, 2)
	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":bell:")
	assert.Contains(t, header.Text.Text, "Disk pressure on node-7")
}

func TestBuildRCACompletedMessage_Completed(t *testing.T) {
	input := RCACompletedInput{
		IncidentID: "inc-1",
		SessionID:  "sess-1",
		Status:     "completed",
		Summary:    "The pod crashed due to OOM.",
	}
	blocks := BuildRCACompletedMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 3)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":white_check_mark:")
	assert.Contains(t, header.Text.Text, "Root Cause Analysis Complete")

	content := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, content.Text.Text, "The pod crashed due to OOM.")

	action := blocks[2].(*goslack.ActionBlock)
	btn := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	assert.Equal(t, "View Full Analysis", btn.Text.Text)
	assert.Contains(t, btn.URL, "https://dash.example.com/incidents/inc-1")
}

func TestBuildRCACompletedMessage_CompletedNoSummary(t *testing.T) {
	input := RCACompletedInput{
		IncidentID: "inc-3",
		Status:     "completed",
	}
	blocks := BuildRCACompletedMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 2)
	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, "Root Cause Analysis Complete")
}

func TestBuildRCACompletedMessage_Error(t *testing.T) {
	input := RCACompletedInput{
		IncidentID: "inc-4",
		Status:     "error",
		ErrorText:  "timeout waiting for model",
	}
	blocks := BuildRCACompletedMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 3)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":x:")
	assert.Contains(t, header.Text.Text, "Root Cause Analysis Failed")

	content := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, content.Text.Text, "timeout waiting for model")

	action := blocks[2].(*goslack.ActionBlock)
	btn := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	assert.Equal(t, "View Incident", btn.Text.Text)
}

func TestBuildRCACompletedMessage_Cancelled(t *testing.T) {
	input := RCACompletedInput{
		IncidentID: "inc-5",
		Status:     "cancelled",
	}
	blocks := BuildRCACompletedMessage(input, "https://dash.example.com")

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":no_entry_sign:")
	assert.Contains(t, header.Text.Text, "Root Cause Analysis Cancelled")
}

func TestTruncateForSlack(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncateForSlack("hello"))
	})

	t.Run("exact limit unchanged", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength)
		assert.Equal(t, text, truncateForSlack(text))
	})

	t.Run("over limit truncated", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength+100)
		result := truncateForSlack(text)
		assert.True(t, len(result) < len(text))
		assert.Contains(t, result, "truncated")
	})

	t.Run("multi-byte runes not split", func(t *testing.T) {
		text := strings.Repeat("🔥", maxBlockTextLength+10)
		result := truncateForSlack(text)
		assert.Contains(t, result, "truncated")
		assert.True(t, utf8.ValidString(result), "result should be valid UTF-8")
		prefix := strings.Split(result, "\n\n_...")[0]
		assert.Equal(t, maxBlockTextLength, utf8.RuneCountInString(prefix))
	})
}
