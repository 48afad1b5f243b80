package slack

import (
	"fmt"
	"strings"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var severityEmoji = map[string]string{
	"critical": ":rotating_light:",
	"warning":  ":warning:",
	"info":     ":information_source:",
}

var rcaStatusEmoji = map[string]string{
	"completed": ":white_check_mark:",
	"error":     ":x:",
	"cancelled": ":no_entry_sign:",
	"timeout":   ":hourglass_flowing_sand:",
}

var rcaStatusLabel = map[string]string{
	"completed": "Root Cause Analysis Complete",
	"error":     "Root Cause Analysis Failed",
	"cancelled": "Root Cause Analysis Cancelled",
	"timeout":   "Root Cause Analysis Timed Out",
}

func incidentURL(incidentID, dashboardURL string) string {
	return fmt.Sprintf("%s/incidents/%s", dashboardURL, incidentID)
}

// BuildIncidentCreatedMessage creates Block Kit blocks announcing a new
// incident.
func BuildIncidentCreatedMessage(input IncidentCreatedInput, dashboardURL string) []goslack.Block {
	emoji := severityEmoji[input.Severity]
	if emoji == "" {
		emoji = ":bell:"
	}

	header := fmt.Sprintf("%s *New incident:* %s", emoji, truncateForSlack(input.Title))

	var fields []string
	if input.Severity != "" {
		fields = append(fields, "*Severity:* "+input.Severity)
	}
	if input.Source != "" {
		fields = append(fields, "*Source:* "+input.Source)
	}
	if len(input.Services) > 0 {
		fields = append(fields, "*Services:* "+strings.Join(input.Services, ", "))
	}

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, header, false, false),
			nil, nil,
		),
	}
	if len(fields) > 0 {
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, strings.Join(fields, "\n"), false, false),
			nil, nil,
		))
	}

	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, "View Incident", false, false))
	btn.URL = incidentURL(input.IncidentID, dashboardURL)
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

// BuildRCACompletedMessage creates Block Kit blocks for an investigation
// outcome reply.
func BuildRCACompletedMessage(input RCACompletedInput, dashboardURL string) []goslack.Block {
	emoji := rcaStatusEmoji[input.Status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := rcaStatusLabel[input.Status]
	if label == "" {
		label = "Root Cause Analysis " + input.Status
	}

	headerText := fmt.Sprintf("%s *%s*", emoji, label)

	var blocks []goslack.Block
	blocks = append(blocks, goslack.NewSectionBlock(
		goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
		nil, nil,
	))

	switch {
	case input.Status == "completed" && input.Summary != "":
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(input.Summary), false, false),
			nil, nil,
		))
	case input.ErrorText != "":
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, "*Error:*\n"+truncateForSlack(input.ErrorText), false, false),
			nil, nil,
		))
	}

	buttonText := "View Full Analysis"
	if input.Status != "completed" {
		buttonText = "View Incident"
	}
	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, buttonText, false, false))
	btn.URL = incidentURL(input.IncidentID, dashboardURL)
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

func truncateForSlack(text string) string {
	runes := []rune(text)
	if len(runes) <= maxBlockTextLength {
		return text
	}
	return string(runes[:maxBlockTextLength]) + "\n\n_... (truncated — see dashboard for the full text)_"
}
