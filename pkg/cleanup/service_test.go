package cleanup

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aurora-sre/aurora/pkg/config"
)

type fakeEventPurger struct {
	ttl   time.Duration
	count int
	err   error
	calls atomic.Int32
}

func (f *fakeEventPurger) CleanupOldEvents(_ context.Context, ttl time.Duration) (int, error) {
	f.ttl = ttl
	f.calls.Add(1)
	return f.count, f.err
}

type fakeTaskPurger struct {
	olderThan time.Duration
	count     int
	err       error
	calls     atomic.Int32
}

func (f *fakeTaskPurger) PurgeFinishedTasks(_ context.Context, olderThan time.Duration) (int, error) {
	f.olderThan = olderThan
	f.calls.Add(1)
	return f.count, f.err
}

func testRetention() config.RetentionConfig {
	return config.RetentionConfig{
		EventTTL:      24 * time.Hour,
		TaskRetention: 7 * 24 * time.Hour,
		Interval:      time.Hour,
	}
}

func TestRunOnce_PassesConfiguredWindows(t *testing.T) {
	ev := &fakeEventPurger{count: 3}
	tk := &fakeTaskPurger{count: 5}
	s := NewService(testRetention(), ev, tk)

	s.RunOnce(context.Background())

	assert.Equal(t, 24*time.Hour, ev.ttl)
	assert.Equal(t, 7*24*time.Hour, tk.olderThan)
}

func TestRunOnce_EventFailureStillPurgesTasks(t *testing.T) {
	ev := &fakeEventPurger{err: errors.New("db down")}
	tk := &fakeTaskPurger{}
	s := NewService(testRetention(), ev, tk)

	s.RunOnce(context.Background())

	assert.Equal(t, int32(1), tk.calls.Load())
}

func TestRunOnce_NilPurgersTolerated(t *testing.T) {
	s := NewService(testRetention(), nil, nil)
	s.RunOnce(context.Background())
}

func TestStartStop_RunsImmediateSweep(t *testing.T) {
	ev := &fakeEventPurger{}
	tk := &fakeTaskPurger{}
	cfg := testRetention()
	cfg.Interval = time.Minute
	s := NewService(cfg, ev, tk)

	s.Start(context.Background())
	// The first sweep runs before the ticker; wait for it.
	deadline := time.After(2 * time.Second)
	for ev.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("initial sweep never ran")
		case <-time.After(10 * time.Millisecond):
		}
	}
	s.Stop()

	assert.GreaterOrEqual(t, ev.calls.Load(), int32(1))
	assert.GreaterOrEqual(t, tk.calls.Load(), int32(1))
}

func TestStop_WithoutStartIsNoop(t *testing.T) {
	s := NewService(testRetention(), nil, nil)
	s.Stop()
}

func TestStart_Twice(t *testing.T) {
	s := NewService(testRetention(), &fakeEventPurger{}, &fakeTaskPurger{})
	s.Start(context.Background())
	s.Start(context.Background()) // second call is a no-op
	s.Stop()
}
