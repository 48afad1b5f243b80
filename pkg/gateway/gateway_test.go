package gateway

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/aurora-sre/aurora/pkg/config"
	"github.com/aurora-sre/aurora/pkg/confirm"
	"github.com/aurora-sre/aurora/pkg/services"
	"github.com/aurora-sre/aurora/pkg/tools"
	"github.com/aurora-sre/aurora/pkg/workflow"
	testdb "github.com/aurora-sre/aurora/test/database"
)

const testUser = "user-1"

type sentFrame struct {
	raw any
}

func (f sentFrame) asWorkflowFrame() (workflow.Frame, bool) {
	wf, ok := f.raw.(workflow.Frame)
	return wf, ok
}

type frameRecorder struct {
	mu     sync.Mutex
	frames []sentFrame
}

func (r *frameRecorder) record(_ context.Context, v any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, sentFrame{raw: v})
	return nil
}

func (r *frameRecorder) errorFrames() []workflow.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []workflow.Frame
	for _, f := range r.frames {
		if wf, ok := f.asWorkflowFrame(); ok && wf.Type == workflow.FrameError {
			out = append(out, wf)
		}
	}
	return out
}

func (r *frameRecorder) byType(frameType string) []workflow.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []workflow.Frame
	for _, f := range r.frames {
		if wf, ok := f.asWorkflowFrame(); ok && wf.Type == frameType {
			out = append(out, wf)
		}
	}
	return out
}

func testServerConfig() config.ServerConfig {
	return config.ServerConfig{
		WSWriteTimeout: 5 * time.Second,
		WSRateLimit:    100,
		WSRateBurst:    100,
	}
}

func newTestGateway(t *testing.T, sessions *services.ChatSessionService, toolReg *tools.Registry) (*Gateway, *confirm.Broker) {
	t.Helper()
	if toolReg == nil {
		toolReg = tools.NewRegistry()
	}
	broker := confirm.NewBroker()
	wfCfg := config.WorkflowConfig{MaxMessageTokens: 20000}
	g := New(nil, toolReg, broker, sessions, nil, nil, testServerConfig(), wfCfg)
	return g, broker
}

func newTestClient(rec *frameRecorder) *client {
	return &client{
		id:      "conn-1",
		userID:  testUser,
		limiter: rate.NewLimiter(100, 100),
		send:    rec.record,
	}
}

func TestOversizeQueryRejectedWithoutSessionRow(t *testing.T) {
	db := testdb.NewTestClient(t)
	sessions := services.NewChatSessionService(db)
	g, _ := newTestGateway(t, sessions, nil)

	rec := &frameRecorder{}
	c := newTestClient(rec)

	huge := strings.Repeat("stacktrace ", 10000) // ~27k tokens
	closeConn := g.handleFrame(context.Background(), c, &clientFrame{
		Type:  frameQuery,
		Query: huge,
	})
	assert.False(t, closeConn)

	errs := rec.errorFrames()
	require.Len(t, errs, 1)
	assert.Equal(t, workflow.CodeTokenLimit, errs[0].Data["code"])

	count, err := db.Admin.ChatSession.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count, "no session row may be written for a rejected query")
}

func TestCrossTenantFrameClosesSocket(t *testing.T) {
	g, _ := newTestGateway(t, nil, nil)
	rec := &frameRecorder{}
	c := newTestClient(rec)

	closeConn := g.handleFrame(context.Background(), c, &clientFrame{
		Type:   frameQuery,
		UserID: "someone-else",
		Query:  "show me their incidents",
	})
	assert.True(t, closeConn)

	errs := rec.errorFrames()
	require.Len(t, errs, 1)
	assert.Equal(t, CodeAuth, errs[0].Data["code"])
}

func TestRateLimitedFrameDropped(t *testing.T) {
	g, _ := newTestGateway(t, nil, nil)
	rec := &frameRecorder{}
	c := newTestClient(rec)
	c.limiter = rate.NewLimiter(1, 1)

	ctx := context.Background()
	g.handleFrame(ctx, c, &clientFrame{Type: frameInit})
	g.handleFrame(ctx, c, &clientFrame{Type: frameInit})

	errs := rec.errorFrames()
	require.Len(t, errs, 1)
	assert.Equal(t, CodeRateLimited, errs[0].Data["code"])
}

func TestDirectToolCallBypassesAgent(t *testing.T) {
	reg := tools.NewRegistry()
	require.NoError(t, reg.Register(&tools.Tool{
		Name:        "incident_query",
		Description: "read incidents",
		Execute: func(context.Context, map[string]any, tools.Context) (string, error) {
			return tools.OK(map[string]any{"incidents": []string{"inc-1"}}), nil
		},
	}))
	g, _ := newTestGateway(t, nil, reg)
	rec := &frameRecorder{}
	c := newTestClient(rec)

	g.handleFrame(context.Background(), c, &clientFrame{
		Type:      frameQuery,
		SessionID: "sess-1",
		DirectToolCall: &directToolCall{
			ToolName:   "incident_query",
			Parameters: map[string]any{"status": "investigating"},
		},
	})

	results := rec.byType("tool_result")
	require.Len(t, results, 1)
	assert.Equal(t, "incident_query", results[0].Data["tool_name"])
	assert.Contains(t, results[0].Data["result"].(string), "inc-1")
}

func TestDirectToolCallHonorsAskMode(t *testing.T) {
	reg := tools.NewRegistry()
	require.NoError(t, reg.Register(&tools.Tool{
		Name:         "scm_commit",
		Description:  "commit a file",
		AllowedModes: []string{tools.ModeAgent},
		Execute: func(context.Context, map[string]any, tools.Context) (string, error) {
			t.Fatal("must not execute in ask mode")
			return "", nil
		},
	}))
	g, _ := newTestGateway(t, nil, reg)
	rec := &frameRecorder{}
	c := newTestClient(rec)

	g.handleFrame(context.Background(), c, &clientFrame{
		Type:      frameQuery,
		SessionID: "sess-1",
		Mode:      tools.ModeAsk,
		DirectToolCall: &directToolCall{
			ToolName:   "scm_commit",
			Parameters: map[string]any{"path": "main.tf"},
		},
	})

	results := rec.byType("tool_result")
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Data["result"].(string), tools.CodeReadOnlyMode)
}

func TestCancelControlStopsWorkflowAndConfirmations(t *testing.T) {
	g, broker := newTestGateway(t, nil, nil)
	rec := &frameRecorder{}
	c := newTestClient(rec)

	ctx, cancel := context.WithCancel(context.Background())
	g.registerCancel("sess-1", cancel)

	// A pending confirmation for the session resolves as cancelled.
	decisionCh := make(chan confirm.Decision, 1)
	go func() {
		d, _ := broker.Request(context.Background(), nopPublisher{}, testUser, "sess-1", "iac_tool", "apply?")
		decisionCh <- d
	}()
	waitForPending(t, broker, "sess-1")

	g.handleFrame(context.Background(), c, &clientFrame{
		Type:      frameControl,
		Action:    "cancel",
		SessionID: "sess-1",
	})

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("workflow context was not cancelled")
	}
	select {
	case d := <-decisionCh:
		assert.True(t, d.Cancelled)
		assert.False(t, d.Approved)
	case <-time.After(time.Second):
		t.Fatal("pending confirmation was not released")
	}
}

func TestConfirmationResponseRebindsSender(t *testing.T) {
	g, broker := newTestGateway(t, nil, nil)

	oldRec := &frameRecorder{}
	oldClient := newTestClient(oldRec)
	g.bind("sess-1", oldClient)

	decisionCh := make(chan confirm.Decision, 1)
	var confirmationID string
	idCh := make(chan string, 1)
	go func() {
		d, _ := broker.Request(context.Background(), publisherFunc(func(_ context.Context, req confirm.Request) error {
			idCh <- req.ConfirmationID
			return nil
		}), testUser, "sess-1", "pipeline_ctl", "stop the job?")
		decisionCh <- d
	}()
	confirmationID = <-idCh

	newRec := &frameRecorder{}
	newClient := newTestClient(newRec)
	g.handleFrame(context.Background(), newClient, &clientFrame{
		Type:           frameConfirmationResponse,
		SessionID:      "sess-1",
		ConfirmationID: confirmationID,
		Approved:       true,
	})

	select {
	case d := <-decisionCh:
		assert.True(t, d.Approved)
	case <-time.After(time.Second):
		t.Fatal("confirmation was not resolved")
	}

	// Subsequent workflow frames go to the new connection.
	sender := &sessionSender{g: g, sessionID: "sess-1"}
	require.NoError(t, sender.Send(context.Background(), workflow.Frame{Type: "message", Data: map[string]any{"text": "done"}}))
	assert.Empty(t, oldRec.byType("message"))
	assert.Len(t, newRec.byType("message"), 1)
}

func TestSenderDropsFramesWithoutBinding(t *testing.T) {
	g, _ := newTestGateway(t, nil, nil)
	sender := &sessionSender{g: g, sessionID: "sess-unbound"}
	require.NoError(t, sender.Send(context.Background(), workflow.Frame{Type: "message"}))
}

type nopPublisher struct{}

func (nopPublisher) PublishConfirmation(context.Context, confirm.Request) error { return nil }

type publisherFunc func(context.Context, confirm.Request) error

func (f publisherFunc) PublishConfirmation(ctx context.Context, req confirm.Request) error {
	return f(ctx, req)
}

func waitForPending(t *testing.T, broker *confirm.Broker, sessionID string) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if len(broker.PendingForSession(sessionID)) > 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("confirmation never registered")
}
