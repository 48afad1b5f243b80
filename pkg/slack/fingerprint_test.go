package slack

import (
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercases", in: "Payments-API High Error Rate", want: "payments-api high error rate"},
		{name: "collapses whitespace runs", in: "disk   pressure\t\ton\n\nnode-7", want: "disk pressure on node-7"},
		{name: "trims edges", in: "  CrashLoopBackOff  ", want: "crashloopbackoff"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalize(tt.in))
		})
	}
}

func TestMessageSurface(t *testing.T) {
	msg := goslack.Message{
		Msg: goslack.Msg{
			Text: ":rotating_light: New Incident",
			Attachments: []goslack.Attachment{
				{Text: "payments-api high error rate", Fallback: "Incident: payments-api"},
				{Fallback: "severity: critical"},
			},
		},
	}

	assert.Equal(t,
		":rotating_light: New Incident payments-api high error rate Incident: payments-api severity: critical",
		messageSurface(msg))
	assert.Empty(t, messageSurface(goslack.Message{}))
}

func TestFingerprintMatchesRenderedNotification(t *testing.T) {
	// The announcement renders the title inside Block Kit markdown with its
	// own casing and spacing; the canonical forms must still line up.
	rendered := goslack.Message{
		Msg: goslack.Msg{
			Attachments: []goslack.Attachment{
				{Fallback: ":rotating_light: New Incident:  Payments-API   High Error Rate"},
			},
		},
	}

	needle := canonicalize("payments-api high error rate")
	assert.Contains(t, canonicalize(messageSurface(rendered)), needle)
}
