package events

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelNaming(t *testing.T) {
	assert.Equal(t, "tenant:u-123", TenantChannel("u-123"))
	assert.Equal(t, "chat:s-456", SessionChannel("s-456"))
}

func TestTruncateIfNeededPassesSmallPayloads(t *testing.T) {
	payload := `{"type":"incident.update","event_id":"e1","user_id":"u1"}`
	out, err := truncateIfNeeded(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestTruncateIfNeededReplacesOversizePayloads(t *testing.T) {
	big := map[string]any{
		"type":     EventTypeIncidentUpdate,
		"event_id": "e1",
		"user_id":  "u1",
		"detail":   strings.Repeat("x", notifyLimit+100),
	}
	raw, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := truncateIfNeeded(string(raw))
	require.NoError(t, err)
	assert.Less(t, len(out), notifyLimit)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, EventTypeIncidentUpdate, envelope["type"])
	assert.Equal(t, "e1", envelope["event_id"])
	assert.Equal(t, "u1", envelope["user_id"])
	assert.Equal(t, true, envelope["truncated"])
	assert.NotContains(t, envelope, "detail")
}

func TestInjectEventIDAddsCursor(t *testing.T) {
	raw := []byte(`{"type":"incident.created","event_id":"e1","user_id":"u1"}`)
	out, err := injectEventID(raw, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(42), m["db_event_id"])
}

func TestInjectEventIDSurvivesTruncation(t *testing.T) {
	big := map[string]any{
		"type":     EventTypeSessionStatus,
		"event_id": "e9",
		"user_id":  "u1",
		"detail":   strings.Repeat("y", notifyLimit+100),
	}
	raw, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := injectEventID(raw, 7)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, true, envelope["truncated"])
	assert.Equal(t, float64(7), envelope["db_event_id"])
}

type fakeSessionAuthorizer struct {
	owned map[string]string // sessionID → userID
}

func (f *fakeSessionAuthorizer) SessionOwnedBy(_ context.Context, sessionID, userID string) (bool, error) {
	return f.owned[sessionID] == userID, nil
}

func TestAuthorizedTenantScoping(t *testing.T) {
	m := NewConnectionManager(nil, &fakeSessionAuthorizer{
		owned: map[string]string{"s-1": "u-1"},
	}, time.Second)
	c := &Connection{ID: "c1", UserID: "u-1", subscriptions: make(map[string]bool)}

	ctx := context.Background()
	assert.True(t, m.authorized(ctx, c, TenantChannel("u-1")))
	assert.False(t, m.authorized(ctx, c, TenantChannel("u-2")))
	assert.True(t, m.authorized(ctx, c, SessionChannel("s-1")))
	assert.False(t, m.authorized(ctx, c, SessionChannel("s-other")))
	assert.False(t, m.authorized(ctx, c, "random-channel"))
}

func TestSubscribeBookkeeping(t *testing.T) {
	m := NewConnectionManager(nil, nil, time.Second)
	a := &Connection{ID: "a", UserID: "u-1", subscriptions: make(map[string]bool)}
	b := &Connection{ID: "b", UserID: "u-1", subscriptions: make(map[string]bool)}
	channel := TenantChannel("u-1")

	require.NoError(t, m.subscribe(a, channel))
	require.NoError(t, m.subscribe(b, channel))
	assert.Equal(t, 2, m.subscriberCount(channel))

	m.unsubscribe(a, channel)
	assert.Equal(t, 1, m.subscriberCount(channel))
	assert.False(t, a.subscriptions[channel])
	assert.True(t, b.subscriptions[channel])

	m.unsubscribe(b, channel)
	assert.Equal(t, 0, m.subscriberCount(channel))
}
