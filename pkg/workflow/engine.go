package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aurora-sre/aurora/pkg/config"
	"github.com/aurora-sre/aurora/pkg/confirm"
	"github.com/aurora-sre/aurora/pkg/llm"
	"github.com/aurora-sre/aurora/pkg/models"
	"github.com/aurora-sre/aurora/pkg/services"
	"github.com/aurora-sre/aurora/pkg/tools"
)

// Error codes on frames surfaced to the client.
const (
	CodeTokenLimit = "TOKEN_LIMIT"
	CodeModelError = "MODEL_ERROR"
	CodeTimeout    = "TIMEOUT"
)

const cancellationNotice = "[URGENT CANCELLATION] The previous request has been cancelled. " +
	"Abandon the previous plan, do not continue any in-flight work for it, and wait for the user's next instruction."

const timeoutNotice = "[TURN TIMEOUT] The previous turn was stopped at the time ceiling. " +
	"Do not resume the interrupted plan unprompted; summarize what was found so far when the user asks."

// ProviderResolver selects a provider and native model name for a turn.
// Satisfied by llm.Registry.
type ProviderResolver interface {
	Resolve(model string, mode config.ProviderMode, preference []string) (llm.Provider, string, error)
}

// Engine runs agent turns. It is safe for concurrent use; each Run owns its
// own State and emitter.
type Engine struct {
	providers ProviderResolver
	tools     *tools.Registry
	broker    *confirm.Broker
	sessions  *services.ChatSessionService
	secrets   tools.SecretReader
	cfg       config.WorkflowConfig
	llmCfg    config.LLMConfig
}

func NewEngine(providers ProviderResolver, toolReg *tools.Registry, broker *confirm.Broker,
	sessions *services.ChatSessionService, secrets tools.SecretReader,
	cfg config.WorkflowConfig, llmCfg config.LLMConfig) *Engine {
	return &Engine{
		providers: providers,
		tools:     toolReg,
		broker:    broker,
		sessions:  sessions,
		secrets:   secrets,
		cfg:       cfg,
		llmCfg:    llmCfg,
	}
}

// Run executes one agent turn: load context, stream the model, execute tool
// calls (with confirmation for destructive ones), iterate until the model
// stops, then consolidate and persist. Cancelling the caller's context
// triggers the cancel path; hitting the turn ceiling emits a user-visible
// timeout notice instead. Either way the turn consolidates and persists
// before returning.
func (e *Engine) Run(parent context.Context, st *State, sender Sender, obs Observer) error {
	ctx, cancel := context.WithTimeout(parent, e.cfg.TurnTimeout)
	defer cancel()

	em := &emitter{sender: sender}

	if query := st.LatestHumanMessage(); query != "" {
		if err := ValidateTokenBudget(query, e.cfg.MaxMessageTokens); err != nil {
			em.send(ctx, ErrorFrame(st.SessionID, err.Error(), CodeTokenLimit))
			return err
		}
	}

	if err := e.loadContext(ctx, st); err != nil {
		em.send(ctx, ErrorFrame(st.SessionID, "failed to load conversation history", ""))
		return err
	}

	em.send(ctx, statusFrame(st.SessionID, StatusStart))

	capture := newToolCapture()
	var finalText string

	for iter := 0; iter < e.cfg.MaxIterations; iter++ {
		e.drainContextNotes(ctx, st)

		text, calls, err := e.streamModel(ctx, st, em, obs)
		if err != nil {
			if ctx.Err() != nil {
				e.appendAssistant(st, text, calls)
				return e.finishAborted(parent, st, em, capture)
			}
			em.send(ctx, ErrorFrame(st.SessionID, err.Error(), CodeModelError))
			e.persist(st)
			return fmt.Errorf("model invocation: %w", err)
		}

		e.appendAssistant(st, text, calls)
		finalText = text

		if len(calls) == 0 {
			break
		}

		for _, call := range calls {
			em.send(ctx, toolCallFrame(st.SessionID, call.ID, call.Name, call.Args, time.Now()))
			entry := capture.start(call)
			go e.executeCall(ctx, st, em, call, entry)

			select {
			case output := <-entry.done:
				capture.finish(call.ID)
				e.appendToolResult(st, call, output)
				em.send(ctx, toolResultFrame(st.SessionID, call.ID, call.Name, output))
				if obs != nil {
					obs.OnToolResult(ctx, call, output)
				}
			case <-ctx.Done():
				return e.finishAborted(parent, st, em, capture)
			}
		}
	}

	consolidated, report := Consolidate(st.Messages)
	st.Messages = consolidated
	st.PlaceholderWarning = report.PlaceholderWarning
	st.LastToolFailure = report.LastToolFailure

	if obs != nil && finalText != "" {
		obs.OnFinal(ctx, finalText)
	}
	e.persist(st)

	if finalText != "" {
		em.send(ctx, messageFrame(st.SessionID, finalText))
	}
	em.send(ctx, usageFrame(st.SessionID, st.TotalCost, st.TotalInputTokens, st.TotalOutputTokens))
	em.send(ctx, statusFrame(st.SessionID, StatusEnd))
	return nil
}

// streamModel runs one streaming invocation, emitting token frames as text
// arrives and accumulating tool-call fragments. It returns the partial text
// and finalized calls even on error so the cancel path can keep them.
func (e *Engine) streamModel(ctx context.Context, st *State, em *emitter, obs Observer) (string, []models.ToolCall, error) {
	provider, native, err := e.providers.Resolve(st.Model, "", st.ProviderPreference)
	if err != nil {
		return "", nil, err
	}

	temp := e.llmCfg.Temperature
	req := llm.ChatRequest{
		Model:          native,
		Messages:       st.Messages,
		Tools:          e.tools.Specs(),
		Temperature:    &temp,
		EnableThinking: !e.llmCfg.DisableThinking,
	}

	chunks, errs := provider.Stream(ctx, req)
	builder := newCallBuilder()
	var text strings.Builder

	for chunks != nil || errs != nil {
		select {
		case c, ok := <-chunks:
			if !ok {
				chunks = nil
				continue
			}
			switch {
			case c.TextDelta != "":
				text.WriteString(c.TextDelta)
				em.send(ctx, tokenFrame(st.SessionID, c.TextDelta))
			case c.ThinkingDelta != "":
				if obs != nil {
					obs.OnThinking(ctx, c.ThinkingDelta)
				}
			case c.ToolCall != nil:
				builder.Add(*c.ToolCall)
			}
			if c.Usage != nil {
				st.TotalCost += c.Usage.Cost
				st.TotalInputTokens += c.Usage.InputTokens
				st.TotalOutputTokens += c.Usage.OutputTokens
			}
		case streamErr, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			if streamErr != nil {
				return text.String(), builder.Finalize(), streamErr
			}
		case <-ctx.Done():
			return text.String(), builder.Finalize(), ctx.Err()
		}
	}
	return text.String(), builder.Finalize(), nil
}

// executeCall runs one tool call on its own goroutine. Destructive tools
// block here awaiting confirmation; the result lands on entry.done either
// way, so a cancelled turn can still drain it.
func (e *Engine) executeCall(ctx context.Context, st *State, em *emitter, call models.ToolCall, entry *captureEntry) {
	tc := tools.Context{
		UserID:             st.UserID,
		SessionID:          st.SessionID,
		Mode:               st.Mode,
		ProviderPreference: st.ProviderPreference,
		Secrets:            e.secrets,
	}

	if t, ok := e.tools.Get(call.Name); ok && t.RequiresConfirmation && t.AllowedIn(st.Mode) {
		message := fmt.Sprintf("Allow %s to run?", call.Name)
		if t.ConfirmationMessage != nil {
			message = t.ConfirmationMessage(call.Args)
		}
		decision, err := e.broker.Request(ctx, em, st.UserID, st.SessionID, call.Name, message)
		if err != nil || !decision.Approved {
			entry.done <- tools.Cancelled()
			return
		}
	}

	entry.done <- e.tools.Execute(ctx, call.Name, call.Args, tc)
}

// finishAborted runs the shared abort path for user cancellation and the
// turn ceiling: release pending confirmations, wait a bounded interval for
// in-flight tools, keep their results, consolidate, persist, and end the
// turn. A dead parent means the caller cancelled; a live parent means the
// engine's own deadline fired. The turn ctx is already dead either way;
// persistence and final frames use a fresh one.
func (e *Engine) finishAborted(parent context.Context, st *State, em *emitter, capture *toolCapture) error {
	timedOut := parent.Err() == nil
	if timedOut {
		st.TimedOut = true
	} else {
		st.Cancelled = true
	}
	e.broker.CancelPendingForSession(st.SessionID)

	bg, cancel := context.WithTimeout(context.Background(), e.cfg.CancelDrainTimeout+10*time.Second)
	defer cancel()

	for _, res := range capture.drain(e.cfg.CancelDrainTimeout, e.cfg.CancelDrainPoll) {
		e.appendToolResult(st, res.call, res.output)
		em.send(bg, toolResultFrame(st.SessionID, res.call.ID, res.call.Name, res.output))
	}
	st.Messages = fillMissingToolResults(st.Messages, tools.Cancelled())

	consolidated, report := Consolidate(st.Messages)
	st.Messages = consolidated
	st.PlaceholderWarning = report.PlaceholderWarning
	st.LastToolFailure = report.LastToolFailure

	// A cancellation notice goes to the model context only; the UI saw the
	// cancel happen and needs no synthetic message. A timeout the user did
	// not ask for gets both the model note and a visible error frame.
	notice := cancellationNotice
	if timedOut {
		notice = timeoutNotice
	}
	st.Messages = append(st.Messages, models.ContextMessage{
		Role:      models.RoleHuman,
		Content:   notice,
		Timestamp: time.Now(),
	})

	e.persist(st)
	if timedOut {
		em.send(bg, ErrorFrame(st.SessionID,
			fmt.Sprintf("Investigation stopped: the %s turn ceiling was reached. Partial results were saved.", e.cfg.TurnTimeout),
			CodeTimeout))
	}
	em.send(bg, statusFrame(st.SessionID, StatusEnd))
	return nil
}

// loadContext merges the persisted conversation into the turn state:
// history first, this turn's new messages after, system prompt in front.
func (e *Engine) loadContext(ctx context.Context, st *State) error {
	if st.SessionID == "" || e.sessions == nil {
		e.ensureSystemPrompt(st)
		return nil
	}

	session, err := e.sessions.Get(ctx, st.UserID, st.SessionID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			e.ensureSystemPrompt(st)
			return nil
		}
		return err
	}
	st.PlaceholderWarning = session.PlaceholderWarning
	if session.LastToolFailure != nil {
		st.LastToolFailure = *session.LastToolFailure
	}

	ui, history, err := e.sessions.LoadConversation(ctx, st.UserID, st.SessionID)
	if err != nil {
		return err
	}
	if len(history) == 0 && len(ui) > 0 {
		history = migrateLegacyHistory(ui)
	}

	if len(st.Attachments) == 0 {
		st.Attachments = attachmentsFromUIState(session.UIState)
	}
	if len(st.Attachments) > 0 {
		for i := len(st.Messages) - 1; i >= 0; i-- {
			if st.Messages[i].Role == models.RoleHuman {
				st.Messages[i].Content = foldAttachments(st.Messages[i].Content, st.Attachments)
				break
			}
		}
	}

	st.Messages = append(history, st.Messages...)
	st.UI = append(ui, st.UI...)
	e.ensureSystemPrompt(st)
	return nil
}

// drainContextNotes pulls notes queued by other workers (merge updates from
// another replica) into the model context before the next model call.
func (e *Engine) drainContextNotes(ctx context.Context, st *State) {
	if st.SessionID == "" || e.sessions == nil {
		return
	}
	notes, err := e.sessions.DrainPendingContext(ctx, st.UserID, st.SessionID)
	if err != nil {
		slog.Warn("draining pending context failed", "session_id", st.SessionID, "error", err)
		return
	}
	st.Messages = append(st.Messages, notes...)
}

func (e *Engine) ensureSystemPrompt(st *State) {
	if len(st.Messages) > 0 && st.Messages[0].Role == models.RoleSystem {
		return
	}
	st.Messages = append([]models.ContextMessage{{
		Role:      models.RoleSystem,
		Content:   buildSystemPrompt(st),
		Timestamp: time.Now(),
	}}, st.Messages...)
}

func buildSystemPrompt(st *State) string {
	var b strings.Builder
	b.WriteString("You are Aurora, an SRE incident-response agent. ")
	b.WriteString("Use the available tools to gather real data before drawing conclusions.\n")
	if st.Mode == tools.ModeAsk {
		b.WriteString("You are in ask mode: answer questions using read-only tools; do not attempt any change to external systems.\n")
	} else {
		b.WriteString("You may execute operational commands; destructive operations require user confirmation.\n")
	}
	if st.PlaceholderWarning {
		b.WriteString("Your previous answer contained placeholder values. Never invent identifiers; run tools to obtain real ones.\n")
	}
	if st.LastToolFailure != "" {
		b.WriteString("The most recent tool failure was: " + st.LastToolFailure + "\n")
	}
	return b.String()
}

// appendAssistant records the model's message on both projections. Tool
// calls enter the UI as running entries; results mutate them later.
func (e *Engine) appendAssistant(st *State, text string, calls []models.ToolCall) {
	if text == "" && len(calls) == 0 {
		return
	}
	now := time.Now()
	id := uuid.NewString()
	st.Messages = append(st.Messages, models.ContextMessage{
		ID:        id,
		Role:      models.RoleAssistant,
		Content:   text,
		ToolCalls: calls,
		Timestamp: now,
	})

	uiMsg := models.UIMessage{
		ID:        id,
		Role:      models.RoleAssistant,
		Content:   text,
		Timestamp: now,
	}
	for _, call := range calls {
		uiMsg.ToolCalls = append(uiMsg.ToolCalls, models.UIToolCall{
			ID:        call.ID,
			Name:      call.Name,
			Input:     call.Args,
			Status:    "running",
			Timestamp: now,
		})
	}
	st.UI = append(st.UI, uiMsg)
}

func (e *Engine) appendToolResult(st *State, call models.ToolCall, output string) {
	st.Messages = append(st.Messages, models.ContextMessage{
		Role:       models.RoleTool,
		Content:    output,
		ToolCallID: call.ID,
		Timestamp:  time.Now(),
	})
	applyToolResultToUI(st.UI, call.ID, output)
}

// persist writes both projections and the derived prompt flags. Runs on a
// fresh context so a cancelled turn still lands.
func (e *Engine) persist(st *State) {
	if st.SessionID == "" || e.sessions == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.sessions.SaveConversation(ctx, st.UserID, st.SessionID, st.UI, st.Messages); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			// Throwaway session ids run unpersisted.
			return
		}
		slog.Error("persisting conversation failed", "session_id", st.SessionID, "error", err)
		return
	}
	if err := e.sessions.SetPlaceholderWarning(ctx, st.UserID, st.SessionID, st.PlaceholderWarning); err != nil {
		slog.Warn("persisting placeholder flag failed", "session_id", st.SessionID, "error", err)
	}
	if err := e.sessions.SetLastToolFailure(ctx, st.UserID, st.SessionID, st.LastToolFailure); err != nil {
		slog.Warn("persisting tool failure failed", "session_id", st.SessionID, "error", err)
	}
}

func attachmentsFromUIState(uiState map[string]any) []models.Attachment {
	raw, ok := uiState["attachments"].([]any)
	if !ok {
		return nil
	}
	var out []models.Attachment
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		a := models.Attachment{}
		a.Filename, _ = m["filename"].(string)
		a.FileType, _ = m["file_type"].(string)
		a.FileData, _ = m["file_data"].(string)
		a.ServerPath, _ = m["server_path"].(string)
		a.IsServerPath, _ = m["is_server_path"].(bool)
		if a.Filename != "" {
			out = append(out, a)
		}
	}
	return out
}

// emitter serializes frame delivery for one turn. A failed send marks the
// client gone; the turn keeps running and persists normally.
type emitter struct {
	mu     sync.Mutex
	sender Sender
	dead   bool
}

func (em *emitter) send(ctx context.Context, f Frame) {
	em.mu.Lock()
	defer em.mu.Unlock()
	if em.dead || em.sender == nil {
		return
	}
	if err := em.sender.Send(ctx, f); err != nil {
		slog.Warn("frame delivery failed, dropping remaining frames", "type", f.Type, "error", err)
		em.dead = true
	}
}

// PublishConfirmation lets the emitter serve as the broker's publisher: the
// confirmation prompt travels the same serialized frame path as everything
// else.
func (em *emitter) PublishConfirmation(ctx context.Context, req confirm.Request) error {
	em.send(ctx, confirmationFrame(req.SessionID, req.ConfirmationID, req.ToolName, req.Message))
	return nil
}

// toolCapture tracks in-flight tool executions so a cancelled turn can wait
// for them and keep their results.
type toolCapture struct {
	mu       sync.Mutex
	inflight map[string]*captureEntry
}

type captureEntry struct {
	call  models.ToolCall
	start time.Time
	done  chan string
}

type capturedResult struct {
	call   models.ToolCall
	output string
}

func newToolCapture() *toolCapture {
	return &toolCapture{inflight: make(map[string]*captureEntry)}
}

func (c *toolCapture) start(call models.ToolCall) *captureEntry {
	entry := &captureEntry{call: call, start: time.Now(), done: make(chan string, 1)}
	c.mu.Lock()
	c.inflight[call.ID] = entry
	c.mu.Unlock()
	return entry
}

func (c *toolCapture) finish(id string) {
	c.mu.Lock()
	delete(c.inflight, id)
	c.mu.Unlock()
}

// drain polls the in-flight set until every tool has produced a result or
// the deadline passes. Tools are not interrupted; they finish on their own.
func (c *toolCapture) drain(timeout, poll time.Duration) []capturedResult {
	if poll <= 0 {
		poll = 500 * time.Millisecond
	}
	deadline := time.Now().Add(timeout)
	var out []capturedResult
	for {
		c.mu.Lock()
		for id, entry := range c.inflight {
			select {
			case output := <-entry.done:
				out = append(out, capturedResult{call: entry.call, output: output})
				delete(c.inflight, id)
			default:
			}
		}
		remaining := len(c.inflight)
		c.mu.Unlock()

		if remaining == 0 || time.Now().After(deadline) {
			return out
		}
		time.Sleep(poll)
	}
}
