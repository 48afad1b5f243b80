package confirm

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	mu   sync.Mutex
	reqs []Request
}

func (c *capturePublisher) PublishConfirmation(ctx context.Context, req Request) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reqs = append(c.reqs, req)
	return nil
}

func TestRequestResolveApproved(t *testing.T) {
	b := NewBroker()
	pub := &capturePublisher{}

	done := make(chan Decision, 1)
	go func() {
		d, err := b.Request(context.Background(), pub, "u1", "s1", "iac_tool", "apply?")
		require.NoError(t, err)
		done <- d
	}()

	// Wait for the request to be published, then resolve it.
	var id string
	require.Eventually(t, func() bool {
		pub.mu.Lock()
		defer pub.mu.Unlock()
		if len(pub.reqs) == 0 {
			return false
		}
		id = pub.reqs[0].ConfirmationID
		return true
	}, time.Second, 5*time.Millisecond)

	assert.True(t, b.Resolve(id, true))

	d := <-done
	assert.True(t, d.Approved)
	assert.False(t, d.Cancelled)
}

func TestResolveIsIdempotent(t *testing.T) {
	b := NewBroker()
	pub := &capturePublisher{}

	go func() {
		_, _ = b.Request(context.Background(), pub, "u1", "s1", "iac_tool", "apply?")
	}()

	var id string
	require.Eventually(t, func() bool {
		pub.mu.Lock()
		defer pub.mu.Unlock()
		if len(pub.reqs) == 0 {
			return false
		}
		id = pub.reqs[0].ConfirmationID
		return true
	}, time.Second, 5*time.Millisecond)

	assert.True(t, b.Resolve(id, false))
	assert.False(t, b.Resolve(id, true), "second resolve must be dropped")
}

func TestResolveUnknownIDDropped(t *testing.T) {
	b := NewBroker()
	assert.False(t, b.Resolve("never-registered", true))
}

func TestCancelPendingForSession(t *testing.T) {
	b := NewBroker()
	pub := &capturePublisher{}

	results := make(chan Decision, 2)
	for i := 0; i < 2; i++ {
		go func() {
			d, err := b.Request(context.Background(), pub, "u1", "s1", "scm_commit", "commit?")
			require.NoError(t, err)
			results <- d
		}()
	}
	// One request on another session must survive.
	otherDone := make(chan Decision, 1)
	go func() {
		d, err := b.Request(context.Background(), pub, "u1", "s2", "scm_commit", "commit?")
		require.NoError(t, err)
		otherDone <- d
	}()

	require.Eventually(t, func() bool {
		pub.mu.Lock()
		defer pub.mu.Unlock()
		return len(pub.reqs) == 3
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, 2, b.CancelPendingForSession("s1"))

	for i := 0; i < 2; i++ {
		d := <-results
		assert.False(t, d.Approved)
		assert.True(t, d.Cancelled)
	}

	select {
	case <-otherDone:
		t.Fatal("session s2 confirmation must stay pending")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Len(t, b.PendingForSession("s2"), 1)
	b.CancelPendingForSession("s2")
	<-otherDone
}

func TestRequestPublishedAfterRegistration(t *testing.T) {
	// Resolving from inside the publisher must succeed: the pending entry is
	// registered before the request is published.
	b := NewBroker()
	pub := publisherFunc(func(ctx context.Context, req Request) error {
		assert.True(t, b.Resolve(req.ConfirmationID, true))
		return nil
	})

	d, err := b.Request(context.Background(), pub, "u1", "s1", "iac_tool", "apply?")
	require.NoError(t, err)
	assert.True(t, d.Approved)
}

type publisherFunc func(ctx context.Context, req Request) error

func (f publisherFunc) PublishConfirmation(ctx context.Context, req Request) error {
	return f(ctx, req)
}
