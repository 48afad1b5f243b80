// Package gateway implements the live agent-session WebSocket protocol:
// client init, query, cancel, and confirmation-response frames in; streamed
// workflow frames out. A session's outbound sender follows the most recent
// connection that spoke for it, which is what makes reconnects work.
package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/aurora-sre/aurora/pkg/config"
	"github.com/aurora-sre/aurora/pkg/confirm"
	"github.com/aurora-sre/aurora/pkg/models"
	"github.com/aurora-sre/aurora/pkg/services"
	"github.com/aurora-sre/aurora/pkg/tools"
	"github.com/aurora-sre/aurora/pkg/workflow"
)

// Client frame types.
const (
	frameInit                 = "init"
	frameControl              = "control"
	frameConfirmationResponse = "confirmation_response"
	frameQuery                = "query"
)

// Error codes surfaced on gateway error frames.
const (
	CodeAuth        = "AUTH_ERROR"
	CodeBadRequest  = "VALIDATION_ERROR"
	CodeRateLimited = "RATE_LIMITED"
)

// CacheWarmer prefetches per-user state (provider credentials) on init.
type CacheWarmer interface {
	Warm(ctx context.Context, userID string)
}

// clientFrame is the union of all client → server messages.
type clientFrame struct {
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`

	// control
	Action string `json:"action"`

	// confirmation_response
	ConfirmationID string `json:"confirmation_id"`
	Approved       bool   `json:"approved"`

	// query
	Query              string              `json:"query"`
	Model              string              `json:"model"`
	Mode               string              `json:"mode"`
	ProviderPreference []string            `json:"provider_preference"`
	Attachments        []models.Attachment `json:"attachments"`
	DirectToolCall     *directToolCall     `json:"direct_tool_call"`
	UIState            map[string]any      `json:"ui_state"`
}

type directToolCall struct {
	ToolName   string         `json:"tool_name"`
	Parameters map[string]any `json:"parameters"`
}

// client is one socket. userID comes from the authenticated HTTP request;
// frames claiming another user are rejected and the socket closed.
type client struct {
	id      string
	userID  string
	limiter *rate.Limiter
	send    func(ctx context.Context, v any) error
}

// Gateway routes session frames between clients and workflows.
type Gateway struct {
	engine   *workflow.Engine
	tools    *tools.Registry
	broker   *confirm.Broker
	sessions *services.ChatSessionService
	secrets  tools.SecretReader
	warmer   CacheWarmer
	cfg      config.ServerConfig
	wfCfg    config.WorkflowConfig

	mu      sync.Mutex
	binding map[string]*client            // session id → current outbound client
	cancels map[string]context.CancelFunc // session id → running workflow cancel
}

func New(engine *workflow.Engine, toolReg *tools.Registry, broker *confirm.Broker,
	sessions *services.ChatSessionService, secrets tools.SecretReader, warmer CacheWarmer,
	cfg config.ServerConfig, wfCfg config.WorkflowConfig) *Gateway {
	return &Gateway{
		engine:   engine,
		tools:    toolReg,
		broker:   broker,
		sessions: sessions,
		secrets:  secrets,
		warmer:   warmer,
		cfg:      cfg,
		wfCfg:    wfCfg,
		binding:  make(map[string]*client),
		cancels:  make(map[string]context.CancelFunc),
	}
}

// HandleConnection runs the read loop for one authenticated socket until it
// closes. Workflows spawned from it keep running after the socket is gone;
// a reconnecting client re-binds the sender and keeps receiving frames.
func (g *Gateway) HandleConnection(ctx context.Context, conn *websocket.Conn, userID string) {
	c := &client{
		id:      uuid.NewString(),
		userID:  userID,
		limiter: rate.NewLimiter(rate.Limit(g.cfg.WSRateLimit), g.cfg.WSRateBurst),
		send: func(sendCtx context.Context, v any) error {
			data, err := json.Marshal(v)
			if err != nil {
				return err
			}
			writeCtx, cancel := context.WithTimeout(sendCtx, g.cfg.WSWriteTimeout)
			defer cancel()
			return conn.Write(writeCtx, websocket.MessageText, data)
		},
	}
	defer g.unbindClient(c)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var frame clientFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			g.sendError(ctx, c, "", "malformed frame", CodeBadRequest)
			continue
		}
		if closeConn := g.handleFrame(ctx, c, &frame); closeConn {
			_ = conn.Close(websocket.StatusPolicyViolation, "unauthorized")
			return
		}
	}
}

// handleFrame dispatches one client frame. Returns true when the socket
// must be closed (cross-tenant frames).
func (g *Gateway) handleFrame(ctx context.Context, c *client, frame *clientFrame) bool {
	if frame.UserID != "" && frame.UserID != c.userID {
		g.sendError(ctx, c, frame.SessionID, "frame user does not match the authenticated user", CodeAuth)
		return true
	}
	if !c.limiter.Allow() {
		g.sendError(ctx, c, frame.SessionID, "too many messages, slow down", CodeRateLimited)
		return false
	}

	switch frame.Type {
	case frameInit:
		g.handleInit(ctx, c)
	case frameControl:
		g.handleControl(ctx, c, frame)
	case frameConfirmationResponse:
		g.handleConfirmation(c, frame)
	case frameQuery:
		g.handleQuery(ctx, c, frame)
	default:
		g.sendError(ctx, c, frame.SessionID, "unknown frame type: "+frame.Type, CodeBadRequest)
	}
	return false
}

func (g *Gateway) handleInit(ctx context.Context, c *client) {
	if g.warmer != nil {
		go g.warmer.Warm(context.WithoutCancel(ctx), c.userID)
	}
	_ = c.send(ctx, map[string]any{
		"type": "init",
		"data": map[string]any{"status": "ready", "connection_id": c.id},
	})
}

func (g *Gateway) handleControl(ctx context.Context, c *client, frame *clientFrame) {
	if frame.Action != "cancel" || frame.SessionID == "" {
		g.sendError(ctx, c, frame.SessionID, "control supports action=cancel with a session_id", CodeBadRequest)
		return
	}
	g.CancelSession(frame.SessionID)
}

// CancelSession cancels the running workflow for a session, if any, and
// releases its pending confirmations. Safe to call for idle sessions.
func (g *Gateway) CancelSession(sessionID string) {
	g.mu.Lock()
	cancel := g.cancels[sessionID]
	g.mu.Unlock()

	g.broker.CancelPendingForSession(sessionID)
	if cancel != nil {
		cancel()
	}
}

// handleConfirmation resolves the pending confirmation and re-binds the
// session's outbound sender to this connection, so a client that reconnected
// mid-confirmation keeps receiving the rest of the turn.
func (g *Gateway) handleConfirmation(c *client, frame *clientFrame) {
	if frame.SessionID != "" {
		g.bind(frame.SessionID, c)
	}
	g.broker.Resolve(frame.ConfirmationID, frame.Approved)
}

func (g *Gateway) handleQuery(ctx context.Context, c *client, frame *clientFrame) {
	sessionID := frame.SessionID
	if sessionID == "" {
		// No session: the turn runs against a throwaway id and is not
		// persisted.
		sessionID = "temp-" + uuid.NewString()
	}
	g.bind(sessionID, c)

	if frame.DirectToolCall != nil {
		g.runDirectToolCall(ctx, c, sessionID, frame)
		return
	}

	if frame.Query == "" {
		g.sendError(ctx, c, sessionID, "query text is required", CodeBadRequest)
		return
	}
	// Early budget check: an oversize message never starts a workflow and
	// never touches the session row.
	if err := workflow.ValidateTokenBudget(frame.Query, g.wfCfg.MaxMessageTokens); err != nil {
		g.sendError(ctx, c, sessionID, err.Error(), workflow.CodeTokenLimit)
		return
	}

	if frame.UIState != nil && frame.SessionID != "" {
		if err := g.sessions.SetUIState(ctx, c.userID, frame.SessionID, frame.UIState); err != nil {
			slog.Warn("storing ui state failed", "session_id", frame.SessionID, "error", err)
		}
	}

	st := workflow.NewState(c.userID, sessionID, frame.Query, frame.Model, frame.Mode, frame.ProviderPreference)
	st.Attachments = frame.Attachments

	go g.runWorkflow(st)
}

// runDirectToolCall executes one tool without invoking the agent. The
// explicit user action stands in for a confirmation.
func (g *Gateway) runDirectToolCall(ctx context.Context, c *client, sessionID string, frame *clientFrame) {
	mode := frame.Mode
	if mode == "" {
		mode = tools.ModeAgent
	}
	tc := tools.Context{
		UserID:             c.userID,
		SessionID:          sessionID,
		Mode:               mode,
		ProviderPreference: frame.ProviderPreference,
		Secrets:            g.secrets,
	}
	result := g.tools.Execute(ctx, frame.DirectToolCall.ToolName, frame.DirectToolCall.Parameters, tc)

	_ = c.send(ctx, workflow.Frame{
		Type:      "tool_result",
		SessionID: sessionID,
		Data: map[string]any{
			"tool_call_id": "direct-" + uuid.NewString(),
			"tool_name":    frame.DirectToolCall.ToolName,
			"result":       result,
			"session_id":   sessionID,
		},
	})
}

// runWorkflow drives one turn on its own goroutine. The read loop returned
// to the client immediately; frames flow through the session binding.
func (g *Gateway) runWorkflow(st *workflow.State) {
	ctx, cancel := context.WithCancel(context.Background())
	g.registerCancel(st.SessionID, cancel)
	defer g.unregisterCancel(st.SessionID)

	persisted := !isTempSession(st.SessionID)
	if persisted {
		g.setSessionStatus(st.UserID, st.SessionID, models.SessionInProgress)
	}

	err := g.engine.Run(ctx, st, &sessionSender{g: g, sessionID: st.SessionID}, nil)

	if persisted {
		status := models.SessionCompleted
		if st.Cancelled {
			status = models.SessionCancelled
		}
		g.setSessionStatus(st.UserID, st.SessionID, status)
	}
	if err != nil {
		slog.Warn("workflow turn failed", "session_id", st.SessionID, "error", err)
	}
}

func (g *Gateway) setSessionStatus(userID, sessionID, status string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := g.sessions.UpdateStatus(ctx, userID, sessionID, status); err != nil {
		slog.Warn("updating session status failed", "session_id", sessionID, "error", err)
	}
}

func isTempSession(sessionID string) bool {
	return len(sessionID) > 5 && sessionID[:5] == "temp-"
}

func (g *Gateway) sendError(ctx context.Context, c *client, sessionID, text, code string) {
	if err := c.send(ctx, workflow.ErrorFrame(sessionID, text, code)); err != nil {
		slog.Warn("error frame delivery failed", "connection_id", c.id, "error", err)
	}
}

// bind makes this client the session's outbound target.
func (g *Gateway) bind(sessionID string, c *client) {
	g.mu.Lock()
	g.binding[sessionID] = c
	g.mu.Unlock()
}

// unbindClient drops every binding pointing at a closed client. Running
// workflows keep going; their frames are dropped until a reconnect re-binds.
func (g *Gateway) unbindClient(c *client) {
	g.mu.Lock()
	for sessionID, bound := range g.binding {
		if bound == c {
			delete(g.binding, sessionID)
		}
	}
	g.mu.Unlock()
}

func (g *Gateway) registerCancel(sessionID string, cancel context.CancelFunc) {
	g.mu.Lock()
	g.cancels[sessionID] = cancel
	g.mu.Unlock()
}

func (g *Gateway) unregisterCancel(sessionID string) {
	g.mu.Lock()
	delete(g.cancels, sessionID)
	g.mu.Unlock()
}

// Send implements workflow.Sender for workflows the gateway did not start,
// such as queue-launched RCA runs. Frames reach whichever client is bound
// to the frame's session; with no client bound they are dropped and the
// persisted conversation covers catch-up.
func (g *Gateway) Send(ctx context.Context, frame workflow.Frame) error {
	return (&sessionSender{g: g, sessionID: frame.SessionID}).Send(ctx, frame)
}

// sessionSender delivers workflow frames to whichever client currently owns
// the session. No client means the frames are dropped without failing the
// workflow; the conversation is still persisted and a reconnect catches up
// from the session row.
type sessionSender struct {
	g         *Gateway
	sessionID string
}

func (s *sessionSender) Send(ctx context.Context, frame workflow.Frame) error {
	s.g.mu.Lock()
	c := s.g.binding[s.sessionID]
	s.g.mu.Unlock()
	if c == nil {
		return nil
	}
	if err := c.send(ctx, frame); err != nil {
		slog.Warn("session frame delivery failed", "session_id", s.sessionID, "error", err)
		s.g.unbindClient(c)
	}
	return nil
}
