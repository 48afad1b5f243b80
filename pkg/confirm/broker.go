// Package confirm implements the human-in-the-loop approval broker for
// destructive tool calls.
package confirm

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Decision is the outcome of one confirmation request.
type Decision struct {
	Approved  bool
	Cancelled bool
}

// Request describes a pending confirmation, published to the session's
// live connection.
type Request struct {
	ConfirmationID string    `json:"confirmation_id"`
	UserID         string    `json:"user_id"`
	SessionID      string    `json:"session_id"`
	ToolName       string    `json:"tool_name"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}

// Publisher delivers a confirmation request to the user. The broker
// registers the pending entry before calling Publish so a racing resolve
// always finds its channel.
type Publisher interface {
	PublishConfirmation(ctx context.Context, req Request) error
}

type pending struct {
	req Request
	ch  chan Decision
}

// Broker is the process-wide confirmation registry. Each pending entry owns
// a single-use resolution channel; late resolves for closed ids are dropped.
type Broker struct {
	mu      sync.Mutex
	pending map[string]*pending
}

func NewBroker() *Broker {
	return &Broker{pending: make(map[string]*pending)}
}

// Request registers a pending confirmation, publishes it through pub, and
// blocks until it is resolved, cancelled, or ctx expires. A hung
// confirmation blocks only its own tool goroutine.
func (b *Broker) Request(ctx context.Context, pub Publisher, userID, sessionID, toolName, message string) (Decision, error) {
	req := Request{
		ConfirmationID: uuid.NewString(),
		UserID:         userID,
		SessionID:      sessionID,
		ToolName:       toolName,
		Message:        message,
		CreatedAt:      time.Now(),
	}
	p := &pending{req: req, ch: make(chan Decision, 1)}

	b.mu.Lock()
	b.pending[req.ConfirmationID] = p
	b.mu.Unlock()

	defer b.remove(req.ConfirmationID)

	if err := pub.PublishConfirmation(ctx, req); err != nil {
		return Decision{}, err
	}

	select {
	case d := <-p.ch:
		return d, nil
	case <-ctx.Done():
		return Decision{Cancelled: true}, ctx.Err()
	}
}

// Resolve delivers a decision for a confirmation id. Idempotent: repeated
// or late resolves are dropped.
func (b *Broker) Resolve(confirmationID string, approved bool) bool {
	b.mu.Lock()
	p, ok := b.pending[confirmationID]
	if ok {
		delete(b.pending, confirmationID)
	}
	b.mu.Unlock()
	if !ok {
		slog.Debug("dropping resolve for unknown confirmation", "confirmation_id", confirmationID)
		return false
	}
	p.ch <- Decision{Approved: approved}
	return true
}

// CancelPendingForSession resolves every pending confirmation for a session
// as denied with the cancelled marker. Returns the number cancelled.
func (b *Broker) CancelPendingForSession(sessionID string) int {
	b.mu.Lock()
	var cancelled []*pending
	for id, p := range b.pending {
		if p.req.SessionID == sessionID {
			cancelled = append(cancelled, p)
			delete(b.pending, id)
		}
	}
	b.mu.Unlock()

	for _, p := range cancelled {
		p.ch <- Decision{Approved: false, Cancelled: true}
	}
	return len(cancelled)
}

// PendingForSession lists pending requests for a session, oldest first.
func (b *Broker) PendingForSession(sessionID string) []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []Request
	for _, p := range b.pending {
		if p.req.SessionID == sessionID {
			out = append(out, p.req)
		}
	}
	return out
}

func (b *Broker) remove(confirmationID string) {
	b.mu.Lock()
	delete(b.pending, confirmationID)
	b.mu.Unlock()
}
