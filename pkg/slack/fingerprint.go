package slack

import (
	"regexp"
	"strings"

	goslack "github.com/slack-go/slack"
)

// Thread fingerprinting: a new notification for an already-announced alert
// threads onto the existing channel message. The lookup compares a canonical
// form of each recent message's text against the incident fingerprint.

var spaceRun = regexp.MustCompile(`\s+`)

// canonicalize lowercases and collapses whitespace runs so Block Kit
// rendering differences do not break the fingerprint match.
func canonicalize(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(strings.ToLower(s), " "))
}

// messageSurface flattens the searchable text of a channel message: the body
// plus every attachment's text and fallback.
func messageSurface(msg goslack.Message) string {
	parts := make([]string, 0, 1+2*len(msg.Attachments))
	if msg.Text != "" {
		parts = append(parts, msg.Text)
	}
	for _, att := range msg.Attachments {
		if att.Text != "" {
			parts = append(parts, att.Text)
		}
		if att.Fallback != "" {
			parts = append(parts, att.Fallback)
		}
	}
	return strings.Join(parts, " ")
}
