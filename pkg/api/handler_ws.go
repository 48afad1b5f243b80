package api

import (
	"net/http"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// dashboardWSHandler upgrades GET /ws and delegates to the events
// ConnectionManager for channel subscriptions and catch-up replay.
func (s *Server) dashboardWSHandler(c *echo.Context) error {
	if s.connManager == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "WebSocket not available")
	}

	conn, err := s.acceptWS(c)
	if err != nil {
		return err
	}

	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request().Context(), conn, extractUserID(c))
	return nil
}

// sessionWSHandler upgrades GET /ws/session and delegates to the interactive
// session gateway.
func (s *Server) sessionWSHandler(c *echo.Context) error {
	if s.gateway == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "WebSocket not available")
	}

	conn, err := s.acceptWS(c)
	if err != nil {
		return err
	}

	s.gateway.HandleConnection(c.Request().Context(), conn, extractUserID(c))
	return nil
}

// acceptWS upgrades the connection. Cross-origin upgrades are rejected unless
// the origin is on the configured allowlist; an empty allowlist means
// same-origin only.
func (s *Server) acceptWS(c *echo.Context) (*websocket.Conn, error) {
	return websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		OriginPatterns: s.cfg.CORSAllowedOrigins,
	})
}
