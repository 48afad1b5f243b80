// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/aurora-sre/aurora/ent/alertevent"
	"github.com/aurora-sre/aurora/ent/chatsession"
	"github.com/aurora-sre/aurora/ent/event"
	"github.com/aurora-sre/aurora/ent/incident"
	"github.com/aurora-sre/aurora/ent/incidentalert"
	"github.com/aurora-sre/aurora/ent/incidentcitation"
	"github.com/aurora-sre/aurora/ent/incidentsuggestion"
	"github.com/aurora-sre/aurora/ent/incidentthought"
	"github.com/aurora-sre/aurora/ent/schema"
	"github.com/aurora-sre/aurora/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	alerteventFields := schema.AlertEvent{}.Fields()
	_ = alerteventFields
	// alerteventDescReceivedAt is the schema descriptor for received_at field.
	alerteventDescReceivedAt := alerteventFields[11].Descriptor()
	// alertevent.DefaultReceivedAt holds the default value on creation for the received_at field.
	alertevent.DefaultReceivedAt = alerteventDescReceivedAt.Default.(func() time.Time)
	chatsessionFields := schema.ChatSession{}.Fields()
	_ = chatsessionFields
	// chatsessionDescIsActive is the schema descriptor for is_active field.
	chatsessionDescIsActive := chatsessionFields[11].Descriptor()
	// chatsession.DefaultIsActive holds the default value on creation for the is_active field.
	chatsession.DefaultIsActive = chatsessionDescIsActive.Default.(bool)
	// chatsessionDescPlaceholderWarning is the schema descriptor for placeholder_warning field.
	chatsessionDescPlaceholderWarning := chatsessionFields[12].Descriptor()
	// chatsession.DefaultPlaceholderWarning holds the default value on creation for the placeholder_warning field.
	chatsession.DefaultPlaceholderWarning = chatsessionDescPlaceholderWarning.Default.(bool)
	// chatsessionDescCreatedAt is the schema descriptor for created_at field.
	chatsessionDescCreatedAt := chatsessionFields[16].Descriptor()
	// chatsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatsession.DefaultCreatedAt = chatsessionDescCreatedAt.Default.(func() time.Time)
	// chatsessionDescUpdatedAt is the schema descriptor for updated_at field.
	chatsessionDescUpdatedAt := chatsessionFields[17].Descriptor()
	// chatsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatsession.DefaultUpdatedAt = chatsessionDescUpdatedAt.Default.(func() time.Time)
	// chatsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chatsession.UpdateDefaultUpdatedAt = chatsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	incidentFields := schema.Incident{}.Fields()
	_ = incidentFields
	// incidentDescSeverity is the schema descriptor for severity field.
	incidentDescSeverity := incidentFields[6].Descriptor()
	// incident.DefaultSeverity holds the default value on creation for the severity field.
	incident.DefaultSeverity = incidentDescSeverity.Default.(string)
	// incidentDescCorrelatedAlertCount is the schema descriptor for correlated_alert_count field.
	incidentDescCorrelatedAlertCount := incidentFields[10].Descriptor()
	// incident.DefaultCorrelatedAlertCount holds the default value on creation for the correlated_alert_count field.
	incident.DefaultCorrelatedAlertCount = incidentDescCorrelatedAlertCount.Default.(int)
	// incidentDescStartedAt is the schema descriptor for started_at field.
	incidentDescStartedAt := incidentFields[17].Descriptor()
	// incident.DefaultStartedAt holds the default value on creation for the started_at field.
	incident.DefaultStartedAt = incidentDescStartedAt.Default.(func() time.Time)
	// incidentDescCreatedAt is the schema descriptor for created_at field.
	incidentDescCreatedAt := incidentFields[18].Descriptor()
	// incident.DefaultCreatedAt holds the default value on creation for the created_at field.
	incident.DefaultCreatedAt = incidentDescCreatedAt.Default.(func() time.Time)
	// incidentDescUpdatedAt is the schema descriptor for updated_at field.
	incidentDescUpdatedAt := incidentFields[19].Descriptor()
	// incident.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	incident.DefaultUpdatedAt = incidentDescUpdatedAt.Default.(func() time.Time)
	// incident.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	incident.UpdateDefaultUpdatedAt = incidentDescUpdatedAt.UpdateDefault.(func() time.Time)
	incidentalertFields := schema.IncidentAlert{}.Fields()
	_ = incidentalertFields
	// incidentalertDescCorrelationScore is the schema descriptor for correlation_score field.
	incidentalertDescCorrelationScore := incidentalertFields[5].Descriptor()
	// incidentalert.DefaultCorrelationScore holds the default value on creation for the correlation_score field.
	incidentalert.DefaultCorrelationScore = incidentalertDescCorrelationScore.Default.(float64)
	// incidentalertDescReceivedAt is the schema descriptor for received_at field.
	incidentalertDescReceivedAt := incidentalertFields[7].Descriptor()
	// incidentalert.DefaultReceivedAt holds the default value on creation for the received_at field.
	incidentalert.DefaultReceivedAt = incidentalertDescReceivedAt.Default.(func() time.Time)
	incidentcitationFields := schema.IncidentCitation{}.Fields()
	_ = incidentcitationFields
	// incidentcitationDescExecutedAt is the schema descriptor for executed_at field.
	incidentcitationDescExecutedAt := incidentcitationFields[7].Descriptor()
	// incidentcitation.DefaultExecutedAt holds the default value on creation for the executed_at field.
	incidentcitation.DefaultExecutedAt = incidentcitationDescExecutedAt.Default.(func() time.Time)
	incidentsuggestionFields := schema.IncidentSuggestion{}.Fields()
	_ = incidentsuggestionFields
	// incidentsuggestionDescRisk is the schema descriptor for risk field.
	incidentsuggestionDescRisk := incidentsuggestionFields[4].Descriptor()
	// incidentsuggestion.DefaultRisk holds the default value on creation for the risk field.
	incidentsuggestion.DefaultRisk = incidentsuggestionDescRisk.Default.(string)
	// incidentsuggestionDescCreatedAt is the schema descriptor for created_at field.
	incidentsuggestionDescCreatedAt := incidentsuggestionFields[17].Descriptor()
	// incidentsuggestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	incidentsuggestion.DefaultCreatedAt = incidentsuggestionDescCreatedAt.Default.(func() time.Time)
	incidentthoughtFields := schema.IncidentThought{}.Fields()
	_ = incidentthoughtFields
	// incidentthoughtDescThoughtType is the schema descriptor for thought_type field.
	incidentthoughtDescThoughtType := incidentthoughtFields[3].Descriptor()
	// incidentthought.DefaultThoughtType holds the default value on creation for the thought_type field.
	incidentthought.DefaultThoughtType = incidentthoughtDescThoughtType.Default.(string)
	// incidentthoughtDescCreatedAt is the schema descriptor for created_at field.
	incidentthoughtDescCreatedAt := incidentthoughtFields[5].Descriptor()
	// incidentthought.DefaultCreatedAt holds the default value on creation for the created_at field.
	incidentthought.DefaultCreatedAt = incidentthoughtDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescScheduledAt is the schema descriptor for scheduled_at field.
	taskDescScheduledAt := taskFields[6].Descriptor()
	// task.DefaultScheduledAt holds the default value on creation for the scheduled_at field.
	task.DefaultScheduledAt = taskDescScheduledAt.Default.(func() time.Time)
	// taskDescAttempts is the schema descriptor for attempts field.
	taskDescAttempts := taskFields[8].Descriptor()
	// task.DefaultAttempts holds the default value on creation for the attempts field.
	task.DefaultAttempts = taskDescAttempts.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[11].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
}
