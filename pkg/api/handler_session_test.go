package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-sre/aurora/pkg/models"
	"github.com/aurora-sre/aurora/pkg/services"
	testdb "github.com/aurora-sre/aurora/test/database"
)

func TestListSessionsHandler_Validation(t *testing.T) {
	s := &Server{}

	t.Run("invalid limit", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions?limit=-3", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := s.listSessionsHandler(c)
		if assert.Error(t, err) {
			he, ok := err.(*echo.HTTPError)
			if assert.True(t, ok, "expected echo.HTTPError") {
				assert.Equal(t, http.StatusBadRequest, he.Code)
				assert.Contains(t, he.Message, "invalid limit")
			}
		}
	})
}

func newSessionTestServer(t *testing.T) (*Server, *services.ChatSessionService) {
	t.Helper()
	db := testdb.NewTestClient(t)
	sessions := services.NewChatSessionService(db)
	return NewServer(ServerDeps{
		DB:       db,
		Sessions: sessions,
	}), sessions
}

func TestGetSessionHandler_ReturnsConversation(t *testing.T) {
	s, sessions := newSessionTestServer(t)
	ctx := context.Background()

	session, err := sessions.Create(ctx, testUser, services.CreateSessionInput{
		Title:         "debug checkout",
		TriggerSource: "manual",
	})
	require.NoError(t, err)

	err = sessions.SaveConversation(ctx, testUser, session.ID,
		[]models.UIMessage{{ID: "m1", Role: models.RoleHuman, Content: "why is checkout slow?"}},
		[]models.ContextMessage{{ID: "m1", Role: models.RoleHuman, Content: "why is checkout slow?"}})
	require.NoError(t, err)

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+session.ID, nil))
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "why is checkout slow?")
	assert.Contains(t, rec.Body.String(), session.ID)
}

func TestCancelSessionHandler_UnknownSession(t *testing.T) {
	s, _ := newSessionTestServer(t)

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/v1/sessions/missing/cancel", nil))
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelSessionHandler_MarksCancelled(t *testing.T) {
	s, sessions := newSessionTestServer(t)
	ctx := context.Background()

	session, err := sessions.Create(ctx, testUser, services.CreateSessionInput{
		Title:         "long investigation",
		TriggerSource: "manual",
	})
	require.NoError(t, err)

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+session.ID+"/cancel", nil))
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got, err := sessions.Get(ctx, testUser, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCancelled, string(got.Status))
	assert.False(t, got.IsActive)
}