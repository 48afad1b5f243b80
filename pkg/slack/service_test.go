package slack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	t.Run("NotifyIncidentCreated is no-op", func(t *testing.T) {
		ts := s.NotifyIncidentCreated(context.Background(), IncidentCreatedInput{
			IncidentID: "inc-1",
			Title:      "High error rate",
		})
		assert.Empty(t, ts)
	})

	t.Run("NotifyRCACompleted is no-op", func(_ *testing.T) {
		// Should not panic
		s.NotifyRCACompleted(context.Background(), RCACompletedInput{
			IncidentID: "inc-1",
			Status:     "completed",
		})
	})
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when token empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "", Channel: "C123"})
		assert.Nil(t, svc)
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "xoxb-test", Channel: ""})
		assert.Nil(t, svc)
	})

	t.Run("returns service when configured", func(t *testing.T) {
		svc := NewService(ServiceConfig{
			Token:        "xoxb-test",
			Channel:      "C123",
			DashboardURL: "https://example.com",
		})
		assert.NotNil(t, svc)
	})
}
