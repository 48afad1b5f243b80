// Package events distributes real-time updates across pods via PostgreSQL
// NOTIFY/LISTEN and fans them out to subscribed WebSocket dashboard clients.
//
// Two delivery classes exist:
//
//   - Persistent events are written to the events table and broadcast in the
//     same transaction. Reconnecting clients replay missed events from the
//     table ("catchup") using the row id as a cursor.
//   - Transient events are NOTIFY-only. Used for high-frequency payloads
//     (live incident counters) where loss on reconnect is acceptable.
//
// NOTIFY payloads above the 8KB limit are replaced with a truncation
// envelope carrying only routing fields; clients fetch the full event from
// the events table by id.
package events

// Persistent event types.
const (
	EventTypeIncidentCreated = "incident.created"
	EventTypeIncidentUpdate  = "incident.update"
	EventTypeSessionStatus   = "chat_session.status"
)

// Transient event types.
const (
	EventTypeIncidentPulse = "incident.pulse"
)

// TenantChannel is the per-tenant channel carrying incident lifecycle
// events. Dashboards subscribe to their own tenant channel only.
func TenantChannel(userID string) string {
	return "tenant:" + userID
}

// SessionChannel carries chat-session status events for one session.
func SessionChannel(sessionID string) string {
	return "chat:" + sessionID
}

// ClientMessage is the client → server frame for the dashboard event socket.
type ClientMessage struct {
	Action      string `json:"action"` // subscribe, unsubscribe, catchup, ping
	Channel     string `json:"channel,omitempty"`
	LastEventID *int   `json:"last_event_id,omitempty"`
}
