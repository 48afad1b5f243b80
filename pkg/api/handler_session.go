package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/aurora-sre/aurora/pkg/models"
)

// listSessionsHandler handles GET /api/v1/sessions.
func (s *Server) listSessionsHandler(c *echo.Context) error {
	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 500 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be 1-500")
		}
		limit = n
	}

	sessions, err := s.sessions.List(c.Request().Context(), extractUserID(c), limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, sessions)
}

// getSessionHandler handles GET /api/v1/sessions/:id.
// Returns the session row plus its UI conversation projection.
func (s *Server) getSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	ctx := c.Request().Context()
	userID := extractUserID(c)

	session, err := s.sessions.Get(ctx, userID, sessionID)
	if err != nil {
		return mapServiceError(err)
	}
	ui, _, err := s.sessions.LoadConversation(ctx, userID, sessionID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &SessionDetailResponse{
		Session:  session,
		Messages: ui,
	})
}

// cancelSessionHandler handles POST /api/v1/sessions/:id/cancel.
// Cancels the workflow running on this pod (if any) and marks the session
// cancelled. A session running on another replica is only marked; its pod
// observes the status change through the queue heartbeat path.
func (s *Server) cancelSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	ctx := c.Request().Context()
	userID := extractUserID(c)

	owned, err := s.sessions.SessionOwnedBy(ctx, sessionID, userID)
	if err != nil {
		return mapServiceError(err)
	}
	if !owned {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}

	if s.gateway != nil {
		s.gateway.CancelSession(sessionID)
	}
	if err := s.sessions.UpdateStatus(ctx, userID, sessionID, models.SessionCancelled); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &CancelResponse{
		SessionID: sessionID,
		Message:   "Session cancellation requested",
	})
}
