package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-sre/aurora/ent/chatsession"
	"github.com/aurora-sre/aurora/pkg/models"
	testdb "github.com/aurora-sre/aurora/test/database"
)

func TestChatSessionTriggerGuard(t *testing.T) {
	db := testdb.NewTestClient(t)
	incidents := NewIncidentService(db)
	sessions := NewChatSessionService(db)
	ctx := context.Background()

	inc, err := incidents.UpsertFromAlert(ctx, testUser, pdAlert("PD-20", "rca guard"), models.IncidentInvestigating)
	require.NoError(t, err)

	exists, err := sessions.ExistsForTrigger(ctx, testUser, inc.Incident.ID, models.SourcePagerDuty)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = sessions.Create(ctx, testUser, CreateSessionInput{
		Title:         "RCA: rca guard",
		IncidentID:    inc.Incident.ID,
		TriggerSource: models.SourcePagerDuty,
		TriggerMetadata: map[string]any{
			"source":      models.SourcePagerDuty,
			"incident_id": inc.Incident.ID,
		},
	})
	require.NoError(t, err)

	exists, err = sessions.ExistsForTrigger(ctx, testUser, inc.Incident.ID, models.SourcePagerDuty)
	require.NoError(t, err)
	assert.True(t, exists)

	// A different source may still trigger its own session.
	exists, err = sessions.ExistsForTrigger(ctx, testUser, inc.Incident.ID, models.SourceGrafana)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestChatSessionConversationRoundTrip(t *testing.T) {
	sessions := NewChatSessionService(testdb.NewTestClient(t))
	ctx := context.Background()

	session, err := sessions.Create(ctx, testUser, CreateSessionInput{Title: "ad hoc"})
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	ui := []models.UIMessage{
		{ID: "m1", Role: models.RoleHuman, Content: "why is checkout down?", Timestamp: now},
		{ID: "m2", Role: models.RoleAssistant, Content: "checking", Timestamp: now, ToolCalls: []models.UIToolCall{
			{ID: "run-1", Name: "kubectl_exec", Input: map[string]any{"command": "kubectl get pods"}, Status: "completed"},
		}},
	}
	history := []models.ContextMessage{
		{ID: "m1", Role: models.RoleHuman, Content: "why is checkout down?", Timestamp: now},
		{ID: "m2", Role: models.RoleAssistant, Content: "checking", Timestamp: now, ToolCalls: []models.ToolCall{
			{ID: "run-1", Name: "kubectl_exec", Args: map[string]any{"command": "kubectl get pods"}},
		}},
		{ID: "m3", Role: models.RoleTool, Content: `{"ok":true}`, ToolCallID: "run-1", Timestamp: now},
	}

	require.NoError(t, sessions.SaveConversation(ctx, testUser, session.ID, ui, history))

	gotUI, gotHistory, err := sessions.LoadConversation(ctx, testUser, session.ID)
	require.NoError(t, err)
	require.Len(t, gotUI, 2)
	require.Len(t, gotHistory, 3)
	assert.Equal(t, "kubectl_exec", gotUI[1].ToolCalls[0].Name)
	assert.Equal(t, "run-1", gotHistory[2].ToolCallID)
}

func TestChatSessionStatusTransitions(t *testing.T) {
	sessions := NewChatSessionService(testdb.NewTestClient(t))
	ctx := context.Background()

	session, err := sessions.Create(ctx, testUser, CreateSessionInput{Title: "lifecycle"})
	require.NoError(t, err)
	assert.Equal(t, chatsession.StatusActive, session.Status)

	require.NoError(t, sessions.UpdateStatus(ctx, testUser, session.ID, models.SessionInProgress))
	require.NoError(t, sessions.UpdateStatus(ctx, testUser, session.ID, models.SessionCompleted))

	got, err := sessions.Get(ctx, testUser, session.ID)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StatusCompleted, got.Status)
	assert.False(t, got.IsActive)
}

func TestCancelForIncident(t *testing.T) {
	db := testdb.NewTestClient(t)
	incidents := NewIncidentService(db)
	sessions := NewChatSessionService(db)
	ctx := context.Background()

	inc, err := incidents.UpsertFromAlert(ctx, testUser, pdAlert("PD-21", "merge source"), models.IncidentInvestigating)
	require.NoError(t, err)

	running, err := sessions.Create(ctx, testUser, CreateSessionInput{Title: "RCA", IncidentID: inc.Incident.ID})
	require.NoError(t, err)
	require.NoError(t, sessions.UpdateStatus(ctx, testUser, running.ID, models.SessionInProgress))

	done, err := sessions.Create(ctx, testUser, CreateSessionInput{Title: "Q&A", IncidentID: inc.Incident.ID})
	require.NoError(t, err)
	require.NoError(t, sessions.UpdateStatus(ctx, testUser, done.ID, models.SessionCompleted))

	cancelled, err := sessions.CancelForIncident(ctx, testUser, inc.Incident.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, cancelled)

	got, err := sessions.Get(ctx, testUser, running.ID)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StatusCancelled, got.Status)

	got, err = sessions.Get(ctx, testUser, done.ID)
	require.NoError(t, err)
	assert.Equal(t, chatsession.StatusCompleted, got.Status)
}

func TestSessionOwnedBy(t *testing.T) {
	sessions := NewChatSessionService(testdb.NewTestClient(t))
	ctx := context.Background()

	session, err := sessions.Create(ctx, testUser, CreateSessionInput{Title: "ownership"})
	require.NoError(t, err)

	owned, err := sessions.SessionOwnedBy(ctx, session.ID, testUser)
	require.NoError(t, err)
	assert.True(t, owned)

	owned, err = sessions.SessionOwnedBy(ctx, "missing-session", testUser)
	require.NoError(t, err)
	assert.False(t, owned)
}

func TestThoughtTrailingOrder(t *testing.T) {
	db := testdb.NewTestClient(t)
	incidents := NewIncidentService(db)
	thoughts := NewThoughtService(db)
	ctx := context.Background()

	inc, err := incidents.UpsertFromAlert(ctx, testUser, pdAlert("PD-22", "thoughts"), models.IncidentInvestigating)
	require.NoError(t, err)

	for _, content := range []string{"first", "second", "third"} {
		_, err := thoughts.Append(ctx, testUser, inc.Incident.ID, "analysis", content)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	trailing, err := thoughts.Trailing(ctx, testUser, inc.Incident.ID, 2)
	require.NoError(t, err)
	require.Len(t, trailing, 2)
	assert.Equal(t, "second", trailing[0].Content)
	assert.Equal(t, "third", trailing[1].Content)
}

func TestCitationRecordRefreshesExistingKey(t *testing.T) {
	db := testdb.NewTestClient(t)
	incidents := NewIncidentService(db)
	citations := NewCitationService(db)
	ctx := context.Background()

	inc, err := incidents.UpsertFromAlert(ctx, testUser, pdAlert("PD-23", "citations"), models.IncidentInvestigating)
	require.NoError(t, err)

	_, err = citations.Record(ctx, testUser, inc.Incident.ID, CitationInput{
		CitationKey: "1", ToolName: "kubectl_exec", Command: "kubectl get pods", Output: "old",
	})
	require.NoError(t, err)
	_, err = citations.Record(ctx, testUser, inc.Incident.ID, CitationInput{
		CitationKey: "1", ToolName: "kubectl_exec", Command: "kubectl get pods", Output: "new",
	})
	require.NoError(t, err)
	_, err = citations.Record(ctx, testUser, inc.Incident.ID, CitationInput{
		CitationKey: "10", ToolName: "cloud_exec", Command: "gcloud compute instances list", Output: "x",
	})
	require.NoError(t, err)
	_, err = citations.Record(ctx, testUser, inc.Incident.ID, CitationInput{
		CitationKey: "2", ToolName: "cloud_exec", Command: "gcloud logging read", Output: "y",
	})
	require.NoError(t, err)

	list, err := citations.List(ctx, testUser, inc.Incident.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// Numeric ordering, not lexicographic: 1, 2, 10.
	assert.Equal(t, []string{"1", "2", "10"}, []string{list[0].CitationKey, list[1].CitationKey, list[2].CitationKey})
	assert.Equal(t, "new", list[0].Output)
}
