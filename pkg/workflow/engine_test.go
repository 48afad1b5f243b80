package workflow

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-sre/aurora/pkg/config"
	"github.com/aurora-sre/aurora/pkg/confirm"
	"github.com/aurora-sre/aurora/pkg/llm"
	"github.com/aurora-sre/aurora/pkg/models"
	"github.com/aurora-sre/aurora/pkg/services"
	"github.com/aurora-sre/aurora/pkg/tools"
	testdb "github.com/aurora-sre/aurora/test/database"
)

const testUser = "user-1"

// scriptedProvider replays one chunk script per invocation.
type scriptedProvider struct {
	mu       sync.Mutex
	scripts  [][]llm.Chunk
	requests []llm.ChatRequest
}

func (p *scriptedProvider) Name() string    { return "scripted" }
func (p *scriptedProvider) Available() bool { return true }

func (p *scriptedProvider) Stream(ctx context.Context, req llm.ChatRequest) (<-chan llm.Chunk, <-chan error) {
	p.mu.Lock()
	idx := len(p.requests)
	p.requests = append(p.requests, req)
	var script []llm.Chunk
	if idx < len(p.scripts) {
		script = p.scripts[idx]
	}
	p.mu.Unlock()

	chunks := make(chan llm.Chunk)
	errs := make(chan error, 1)
	go func() {
		defer close(chunks)
		defer close(errs)
		if ctx.Err() != nil {
			errs <- ctx.Err()
			return
		}
		for _, c := range script {
			select {
			case chunks <- c:
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}
	}()
	return chunks, errs
}

type fakeResolver struct{ p llm.Provider }

func (r fakeResolver) Resolve(string, config.ProviderMode, []string) (llm.Provider, string, error) {
	return r.p, "scripted-model", nil
}

type recordingSender struct {
	mu     sync.Mutex
	frames []Frame
}

func (s *recordingSender) Send(_ context.Context, f Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, f)
	return nil
}

func (s *recordingSender) byType(frameType string) []Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Frame
	for _, f := range s.frames {
		if f.Type == frameType {
			out = append(out, f)
		}
	}
	return out
}

func (s *recordingSender) waitFor(frameType string, timeout time.Duration) (Frame, bool) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if frames := s.byType(frameType); len(frames) > 0 {
			return frames[0], true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return Frame{}, false
}

func testWorkflowConfig() config.WorkflowConfig {
	return config.WorkflowConfig{
		TurnTimeout:        time.Minute,
		MaxIterations:      5,
		MaxMessageTokens:   20000,
		CancelDrainTimeout: 2 * time.Second,
		CancelDrainPoll:    10 * time.Millisecond,
	}
}

func newTestEngine(t *testing.T, provider llm.Provider, toolReg *tools.Registry, sessions *services.ChatSessionService) (*Engine, *confirm.Broker) {
	t.Helper()
	if toolReg == nil {
		toolReg = tools.NewRegistry()
	}
	broker := confirm.NewBroker()
	engine := NewEngine(fakeResolver{p: provider}, toolReg, broker, sessions, nil,
		testWorkflowConfig(), config.LLMConfig{Temperature: 0.2})
	return engine, broker
}

func textChunk(s string) llm.Chunk { return llm.Chunk{TextDelta: s} }

func toolChunk(index int, id, name, args string) llm.Chunk {
	return llm.Chunk{ToolCall: &llm.ToolCallDelta{Index: index, ID: id, Name: name, ArgsDelta: args}}
}

func finishChunk(reason string) llm.Chunk { return llm.Chunk{FinishReason: reason} }

// assertToolPairing checks that every committed tool call is answered by
// exactly one tool message later in the history.
func assertToolPairing(t *testing.T, history []models.ContextMessage) {
	t.Helper()
	for i, m := range history {
		if m.Role != models.RoleAssistant {
			continue
		}
		for _, call := range m.ToolCalls {
			matches := 0
			for _, later := range history[i+1:] {
				if later.Role == models.RoleTool && later.ToolCallID == call.ID {
					matches++
				}
			}
			assert.Equalf(t, 1, matches, "tool call %s should have exactly one result after it", call.ID)
		}
	}
}

func TestRunStreamsTextAndEndsTurn(t *testing.T) {
	provider := &scriptedProvider{scripts: [][]llm.Chunk{
		{textChunk("All "), textChunk("clear."),
			{FinishReason: llm.FinishStop, Usage: &llm.Usage{InputTokens: 120, OutputTokens: 40, Cost: 0.01}}},
	}}
	engine, _ := newTestEngine(t, provider, nil, nil)
	sender := &recordingSender{}

	st := NewState(testUser, "", "any alerts?", "", tools.ModeAsk, nil)
	require.NoError(t, engine.Run(context.Background(), st, sender, nil))

	statuses := sender.byType(FrameStatus)
	require.Len(t, statuses, 2)
	assert.Equal(t, StatusStart, statuses[0].Data["status"])
	assert.Equal(t, StatusEnd, statuses[1].Data["status"])
	assert.True(t, statuses[1].IsComplete)

	messages := sender.byType(FrameMessage)
	require.Len(t, messages, 3) // two streamed chunks plus the final message
	assert.Equal(t, true, messages[0].Data["is_chunk"])
	assert.Equal(t, "All clear.", messages[2].Data["text"])

	usage := sender.byType(FrameUsageInfo)
	require.Len(t, usage, 1)
	assert.InDelta(t, 0.01, usage[0].Data["total_cost"].(float64), 1e-9)
	assert.Equal(t, 120, usage[0].Data["input_tokens"])
	assert.Equal(t, 40, usage[0].Data["output_tokens"])

	// System prompt leads, assistant message trails.
	assert.Equal(t, models.RoleSystem, st.Messages[0].Role)
	assert.Equal(t, "All clear.", st.Messages[len(st.Messages)-1].Content)
}

func TestRunExecutesFragmentedToolCallsInOrder(t *testing.T) {
	var executed []string
	var execMu sync.Mutex
	reg := tools.NewRegistry()
	require.NoError(t, reg.Register(&tools.Tool{
		Name:        "kubectl_exec",
		Description: "run kubectl",
		Execute: func(_ context.Context, args map[string]any, _ tools.Context) (string, error) {
			execMu.Lock()
			executed = append(executed, args["command"].(string))
			execMu.Unlock()
			return tools.OK(map[string]any{"stdout": "ok"}), nil
		},
	}))

	provider := &scriptedProvider{scripts: [][]llm.Chunk{
		{
			textChunk("Checking the cluster."),
			toolChunk(0, "call_A", "kubectl_exec", `{"command":"kubectl get ns"}`),
			toolChunk(1, "call_B", "kubectl_exec", `{"comma`),
			toolChunk(1, "", "", `nd":"kubectl get pods"}`),
			finishChunk(llm.FinishToolCalls),
		},
		{textChunk("Both look healthy."), finishChunk(llm.FinishStop)},
	}}
	engine, _ := newTestEngine(t, provider, reg, nil)
	sender := &recordingSender{}

	st := NewState(testUser, "", "inspect the cluster", "", tools.ModeAgent, nil)
	require.NoError(t, engine.Run(context.Background(), st, sender, nil))

	// Fragmented args were reassembled before execution.
	assert.Equal(t, []string{"kubectl get ns", "kubectl get pods"}, executed)

	// Every tool_call frame precedes its tool_result frame, in [A, B] order.
	callFrames := sender.byType(FrameToolCall)
	resultFrames := sender.byType(FrameToolResult)
	require.Len(t, callFrames, 2)
	require.Len(t, resultFrames, 2)
	assert.Equal(t, "call_A", callFrames[0].Data["tool_call_id"])
	assert.Equal(t, "call_B", callFrames[1].Data["tool_call_id"])
	assert.Equal(t, "call_A", resultFrames[0].Data["tool_call_id"])
	assert.Equal(t, "call_B", resultFrames[1].Data["tool_call_id"])

	assertToolPairing(t, st.Messages)

	// UI projection: both calls completed with output, in emission order.
	var uiCalls []models.UIToolCall
	for _, m := range st.UI {
		if len(m.ToolCalls) > 0 {
			uiCalls = m.ToolCalls
		}
	}
	require.Len(t, uiCalls, 2)
	assert.Equal(t, "call_A", uiCalls[0].ID)
	assert.Equal(t, "call_B", uiCalls[1].ID)
	assert.Equal(t, map[string]any{"command": "kubectl get pods"}, uiCalls[1].Input)
	for _, c := range uiCalls {
		assert.Equal(t, "completed", c.Status)
		assert.NotEmpty(t, c.Output)
	}

	// The second invocation saw the tool results in context.
	require.Len(t, provider.requests, 2)
	lastReq := provider.requests[1].Messages
	assert.Equal(t, models.RoleTool, lastReq[len(lastReq)-1].Role)
}

func TestAskModeBlocksMutatingTool(t *testing.T) {
	var applied atomic.Bool
	reg := tools.NewRegistry()
	require.NoError(t, reg.Register(&tools.Tool{
		Name:         "iac_tool",
		Description:  "terraform operations",
		AllowedModes: []string{tools.ModeAgent},
		Execute: func(context.Context, map[string]any, tools.Context) (string, error) {
			applied.Store(true)
			return tools.OK(nil), nil
		},
	}))

	provider := &scriptedProvider{scripts: [][]llm.Chunk{
		{toolChunk(0, "call_apply", "iac_tool", `{"action":"apply"}`), finishChunk(llm.FinishToolCalls)},
		{textChunk("I cannot apply changes in ask mode."), finishChunk(llm.FinishStop)},
	}}
	engine, _ := newTestEngine(t, provider, reg, nil)
	sender := &recordingSender{}

	st := NewState(testUser, "", "apply the terraform plan", "", tools.ModeAsk, nil)
	require.NoError(t, engine.Run(context.Background(), st, sender, nil))

	assert.False(t, applied.Load(), "no IaC process may be spawned in ask mode")

	results := sender.byType(FrameToolResult)
	require.Len(t, results, 1)
	result := results[0].Data["result"].(string)
	assert.Contains(t, result, `"error":true`)
	assert.Contains(t, result, tools.CodeReadOnlyMode)

	// The workflow still reached a final assistant message.
	final := st.Messages[len(st.Messages)-1]
	assert.Equal(t, models.RoleAssistant, final.Role)
	assert.Equal(t, "I cannot apply changes in ask mode.", final.Content)
	assertToolPairing(t, st.Messages)
}

func TestDeclinedConfirmationSkipsExecution(t *testing.T) {
	var ran atomic.Bool
	reg := tools.NewRegistry()
	require.NoError(t, reg.Register(&tools.Tool{
		Name:                 "pipeline_ctl",
		Description:          "jenkins control",
		RequiresConfirmation: true,
		Execute: func(context.Context, map[string]any, tools.Context) (string, error) {
			ran.Store(true)
			return tools.OK(nil), nil
		},
		ConfirmationMessage: func(args map[string]any) string {
			return "Stop the deploy job?"
		},
	}))

	provider := &scriptedProvider{scripts: [][]llm.Chunk{
		{toolChunk(0, "call_stop", "pipeline_ctl", `{"action":"stop","job":"deploy"}`), finishChunk(llm.FinishToolCalls)},
		{textChunk("Understood, leaving the job running."), finishChunk(llm.FinishStop)},
	}}
	engine, broker := newTestEngine(t, provider, reg, nil)
	sender := &recordingSender{}

	go func() {
		frame, ok := sender.waitFor(FrameConfirmationRequest, 2*time.Second)
		if !ok {
			return
		}
		broker.Resolve(frame.Data["confirmation_id"].(string), false)
	}()

	st := NewState(testUser, "sess-confirm", "stop the deploy", "", tools.ModeAgent, nil)
	require.NoError(t, engine.Run(context.Background(), st, sender, nil))

	assert.False(t, ran.Load())

	confirmations := sender.byType(FrameConfirmationRequest)
	require.Len(t, confirmations, 1)
	assert.Equal(t, "Stop the deploy job?", confirmations[0].Data["message"])

	results := sender.byType(FrameToolResult)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Data["result"].(string), "cancelled")
	assertToolPairing(t, st.Messages)
}

func TestTokenBudgetRejectedBeforeTurnStarts(t *testing.T) {
	engine, _ := newTestEngine(t, &scriptedProvider{}, nil, nil)
	engine.cfg.MaxMessageTokens = 10
	sender := &recordingSender{}

	st := NewState(testUser, "", strings.Repeat("logs ", 100), "", tools.ModeAgent, nil)
	err := engine.Run(context.Background(), st, sender, nil)

	var budgetErr *ErrTokenBudget
	require.ErrorAs(t, err, &budgetErr)
	assert.Equal(t, 10, budgetErr.Limit)

	require.Len(t, sender.byType(FrameError), 1)
	assert.Equal(t, CodeTokenLimit, sender.byType(FrameError)[0].Data["code"])
	assert.Empty(t, sender.byType(FrameStatus), "the turn must not start")
}

func TestCancellationPersistsContextAndKeepsToolResults(t *testing.T) {
	db := testdb.NewTestClient(t)
	sessions := services.NewChatSessionService(db)
	ctx := context.Background()

	session, err := sessions.Create(ctx, testUser, services.CreateSessionInput{Title: "log tail"})
	require.NoError(t, err)

	reg := tools.NewRegistry()
	require.NoError(t, reg.Register(&tools.Tool{
		Name:        "watch_logs",
		Description: "tail logs",
		Execute: func(toolCtx context.Context, _ map[string]any, _ tools.Context) (string, error) {
			// Runs until the turn is cancelled, then reports what it saw.
			<-toolCtx.Done()
			return tools.OK(map[string]any{"lines": 12}), nil
		},
	}))

	provider := &scriptedProvider{scripts: [][]llm.Chunk{
		{
			textChunk("Tailing the error logs."),
			toolChunk(0, "call_logs", "watch_logs", `{"query":"errors"}`),
			finishChunk(llm.FinishToolCalls),
		},
	}}
	engine, _ := newTestEngine(t, provider, reg, sessions)
	sender := &recordingSender{}

	runCtx, cancelTurn := context.WithCancel(ctx)
	defer cancelTurn()
	go func() {
		if _, ok := sender.waitFor(FrameToolCall, 2*time.Second); ok {
			cancelTurn()
		}
	}()

	st := NewState(testUser, session.ID, "tail the error logs", "", tools.ModeAgent, nil)
	require.NoError(t, engine.Run(runCtx, st, sender, nil))
	assert.True(t, st.Cancelled)

	_, history, err := sessions.LoadConversation(ctx, testUser, session.ID)
	require.NoError(t, err)
	require.NotEmpty(t, history)

	last := history[len(history)-1]
	assert.Equal(t, models.RoleHuman, last.Role)
	assert.Contains(t, last.Content, "[URGENT CANCELLATION]")

	// The result of the tool call emitted before cancellation survived.
	var toolResult *models.ContextMessage
	for i := range history {
		if history[i].Role == models.RoleTool && history[i].ToolCallID == "call_logs" {
			toolResult = &history[i]
		}
	}
	require.NotNil(t, toolResult, "tool result must not be lost on cancel")
	assertToolPairing(t, history[:len(history)-1])

	statuses := sender.byType(FrameStatus)
	require.NotEmpty(t, statuses)
	assert.Equal(t, StatusEnd, statuses[len(statuses)-1].Data["status"])
}

func TestTurnCeilingEmitsTimeoutNotice(t *testing.T) {
	reg := tools.NewRegistry()
	require.NoError(t, reg.Register(&tools.Tool{
		Name:        "watch_logs",
		Description: "tail logs",
		Execute: func(toolCtx context.Context, _ map[string]any, _ tools.Context) (string, error) {
			// Outlives the turn ceiling; returns once the turn is torn down.
			<-toolCtx.Done()
			return tools.OK(map[string]any{"lines": 3}), nil
		},
	}))

	provider := &scriptedProvider{scripts: [][]llm.Chunk{
		{
			textChunk("Watching the logs."),
			toolChunk(0, "call_watch", "watch_logs", `{"query":"errors"}`),
			finishChunk(llm.FinishToolCalls),
		},
	}}
	engine, _ := newTestEngine(t, provider, reg, nil)
	engine.cfg.TurnTimeout = 100 * time.Millisecond
	sender := &recordingSender{}

	st := NewState(testUser, "", "tail the error logs", "", tools.ModeAgent, nil)
	require.NoError(t, engine.Run(context.Background(), st, sender, nil))

	// The ceiling is not a user cancellation.
	assert.True(t, st.TimedOut)
	assert.False(t, st.Cancelled)

	// A user-visible timeout notice precedes END.
	errFrames := sender.byType(FrameError)
	require.Len(t, errFrames, 1)
	assert.Equal(t, CodeTimeout, errFrames[0].Data["code"])
	assert.Contains(t, errFrames[0].Data["text"], "ceiling")

	statuses := sender.byType(FrameStatus)
	require.NotEmpty(t, statuses)
	assert.Equal(t, StatusEnd, statuses[len(statuses)-1].Data["status"])

	// Model context carries the timeout note, not the cancellation one, and
	// the drained tool result survived.
	last := st.Messages[len(st.Messages)-1]
	assert.Equal(t, models.RoleHuman, last.Role)
	assert.Contains(t, last.Content, "[TURN TIMEOUT]")
	assertToolPairing(t, st.Messages[:len(st.Messages)-1])
}

func TestModelTransportErrorSurfaces(t *testing.T) {
	provider := &errorProvider{err: errors.New("upstream 529")}
	engine, _ := newTestEngine(t, provider, nil, nil)
	sender := &recordingSender{}

	st := NewState(testUser, "", "hello", "", tools.ModeAgent, nil)
	err := engine.Run(context.Background(), st, sender, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream 529")

	frames := sender.byType(FrameError)
	require.Len(t, frames, 1)
	assert.Equal(t, CodeModelError, frames[0].Data["code"])
}

type errorProvider struct{ err error }

func (p *errorProvider) Name() string    { return "broken" }
func (p *errorProvider) Available() bool { return true }

func (p *errorProvider) Stream(context.Context, llm.ChatRequest) (<-chan llm.Chunk, <-chan error) {
	chunks := make(chan llm.Chunk)
	errs := make(chan error, 1)
	errs <- p.err
	close(chunks)
	close(errs)
	return chunks, errs
}
