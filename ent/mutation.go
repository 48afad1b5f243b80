// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aurora-sre/aurora/ent/alertevent"
	"github.com/aurora-sre/aurora/ent/chatsession"
	"github.com/aurora-sre/aurora/ent/event"
	"github.com/aurora-sre/aurora/ent/incident"
	"github.com/aurora-sre/aurora/ent/incidentalert"
	"github.com/aurora-sre/aurora/ent/incidentcitation"
	"github.com/aurora-sre/aurora/ent/incidentsuggestion"
	"github.com/aurora-sre/aurora/ent/incidentthought"
	"github.com/aurora-sre/aurora/ent/predicate"
	"github.com/aurora-sre/aurora/ent/task"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAlertEvent         = "AlertEvent"
	TypeChatSession        = "ChatSession"
	TypeEvent              = "Event"
	TypeIncident           = "Incident"
	TypeIncidentAlert      = "IncidentAlert"
	TypeIncidentCitation   = "IncidentCitation"
	TypeIncidentSuggestion = "IncidentSuggestion"
	TypeIncidentThought    = "IncidentThought"
	TypeTask               = "Task"
)

// AlertEventMutation represents an operation that mutates the AlertEvent nodes in the graph.
type AlertEventMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	source        *string
	external_id   *string
	dedupe_key    *string
	title         *string
	severity      *string
	service       *string
	status        *string
	event_kind    *string
	payload       *map[string]interface{}
	received_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AlertEvent, error)
	predicates    []predicate.AlertEvent
}

var _ ent.Mutation = (*AlertEventMutation)(nil)

// alerteventOption allows management of the mutation configuration using functional options.
type alerteventOption func(*AlertEventMutation)

// newAlertEventMutation creates new mutation for the AlertEvent entity.
func newAlertEventMutation(c config, op Op, opts ...alerteventOption) *AlertEventMutation {
	m := &AlertEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAlertEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlertEventID sets the ID field of the mutation.
func withAlertEventID(id string) alerteventOption {
	return func(m *AlertEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AlertEvent
		)
		m.oldValue = func(ctx context.Context) (*AlertEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AlertEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlertEvent sets the old AlertEvent of the mutation.
func withAlertEvent(node *AlertEvent) alerteventOption {
	return func(m *AlertEventMutation) {
		m.oldValue = func(context.Context) (*AlertEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlertEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlertEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AlertEvent entities.
func (m *AlertEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlertEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlertEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AlertEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AlertEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AlertEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AlertEvent entity.
// If the AlertEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AlertEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetSource sets the "source" field.
func (m *AlertEventMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *AlertEventMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the AlertEvent entity.
// If the AlertEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertEventMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *AlertEventMutation) ResetSource() {
	m.source = nil
}

// SetExternalID sets the "external_id" field.
func (m *AlertEventMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *AlertEventMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the AlertEvent entity.
// If the AlertEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertEventMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *AlertEventMutation) ResetExternalID() {
	m.external_id = nil
}

// SetDedupeKey sets the "dedupe_key" field.
func (m *AlertEventMutation) SetDedupeKey(s string) {
	m.dedupe_key = &s
}

// DedupeKey returns the value of the "dedupe_key" field in the mutation.
func (m *AlertEventMutation) DedupeKey() (r string, exists bool) {
	v := m.dedupe_key
	if v == nil {
		return
	}
	return *v, true
}

// OldDedupeKey returns the old "dedupe_key" field's value of the AlertEvent entity.
// If the AlertEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertEventMutation) OldDedupeKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDedupeKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDedupeKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDedupeKey: %w", err)
	}
	return oldValue.DedupeKey, nil
}

// ResetDedupeKey resets all changes to the "dedupe_key" field.
func (m *AlertEventMutation) ResetDedupeKey() {
	m.dedupe_key = nil
}

// SetTitle sets the "title" field.
func (m *AlertEventMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *AlertEventMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the AlertEvent entity.
// If the AlertEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertEventMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *AlertEventMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[alertevent.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *AlertEventMutation) TitleCleared() bool {
	_, ok := m.clearedFields[alertevent.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *AlertEventMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, alertevent.FieldTitle)
}

// SetSeverity sets the "severity" field.
func (m *AlertEventMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *AlertEventMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the AlertEvent entity.
// If the AlertEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertEventMutation) OldSeverity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ClearSeverity clears the value of the "severity" field.
func (m *AlertEventMutation) ClearSeverity() {
	m.severity = nil
	m.clearedFields[alertevent.FieldSeverity] = struct{}{}
}

// SeverityCleared returns if the "severity" field was cleared in this mutation.
func (m *AlertEventMutation) SeverityCleared() bool {
	_, ok := m.clearedFields[alertevent.FieldSeverity]
	return ok
}

// ResetSeverity resets all changes to the "severity" field.
func (m *AlertEventMutation) ResetSeverity() {
	m.severity = nil
	delete(m.clearedFields, alertevent.FieldSeverity)
}

// SetService sets the "service" field.
func (m *AlertEventMutation) SetService(s string) {
	m.service = &s
}

// Service returns the value of the "service" field in the mutation.
func (m *AlertEventMutation) Service() (r string, exists bool) {
	v := m.service
	if v == nil {
		return
	}
	return *v, true
}

// OldService returns the old "service" field's value of the AlertEvent entity.
// If the AlertEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertEventMutation) OldService(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldService is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldService requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldService: %w", err)
	}
	return oldValue.Service, nil
}

// ClearService clears the value of the "service" field.
func (m *AlertEventMutation) ClearService() {
	m.service = nil
	m.clearedFields[alertevent.FieldService] = struct{}{}
}

// ServiceCleared returns if the "service" field was cleared in this mutation.
func (m *AlertEventMutation) ServiceCleared() bool {
	_, ok := m.clearedFields[alertevent.FieldService]
	return ok
}

// ResetService resets all changes to the "service" field.
func (m *AlertEventMutation) ResetService() {
	m.service = nil
	delete(m.clearedFields, alertevent.FieldService)
}

// SetStatus sets the "status" field.
func (m *AlertEventMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AlertEventMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AlertEvent entity.
// If the AlertEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertEventMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *AlertEventMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[alertevent.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *AlertEventMutation) StatusCleared() bool {
	_, ok := m.clearedFields[alertevent.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *AlertEventMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, alertevent.FieldStatus)
}

// SetEventKind sets the "event_kind" field.
func (m *AlertEventMutation) SetEventKind(s string) {
	m.event_kind = &s
}

// EventKind returns the value of the "event_kind" field in the mutation.
func (m *AlertEventMutation) EventKind() (r string, exists bool) {
	v := m.event_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldEventKind returns the old "event_kind" field's value of the AlertEvent entity.
// If the AlertEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertEventMutation) OldEventKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventKind: %w", err)
	}
	return oldValue.EventKind, nil
}

// ClearEventKind clears the value of the "event_kind" field.
func (m *AlertEventMutation) ClearEventKind() {
	m.event_kind = nil
	m.clearedFields[alertevent.FieldEventKind] = struct{}{}
}

// EventKindCleared returns if the "event_kind" field was cleared in this mutation.
func (m *AlertEventMutation) EventKindCleared() bool {
	_, ok := m.clearedFields[alertevent.FieldEventKind]
	return ok
}

// ResetEventKind resets all changes to the "event_kind" field.
func (m *AlertEventMutation) ResetEventKind() {
	m.event_kind = nil
	delete(m.clearedFields, alertevent.FieldEventKind)
}

// SetPayload sets the "payload" field.
func (m *AlertEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *AlertEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the AlertEvent entity.
// If the AlertEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *AlertEventMutation) ResetPayload() {
	m.payload = nil
}

// SetReceivedAt sets the "received_at" field.
func (m *AlertEventMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *AlertEventMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the AlertEvent entity.
// If the AlertEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertEventMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *AlertEventMutation) ResetReceivedAt() {
	m.received_at = nil
}

// Where appends a list predicates to the AlertEventMutation builder.
func (m *AlertEventMutation) Where(ps ...predicate.AlertEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlertEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlertEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AlertEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlertEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlertEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AlertEvent).
func (m *AlertEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlertEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.user_id != nil {
		fields = append(fields, alertevent.FieldUserID)
	}
	if m.source != nil {
		fields = append(fields, alertevent.FieldSource)
	}
	if m.external_id != nil {
		fields = append(fields, alertevent.FieldExternalID)
	}
	if m.dedupe_key != nil {
		fields = append(fields, alertevent.FieldDedupeKey)
	}
	if m.title != nil {
		fields = append(fields, alertevent.FieldTitle)
	}
	if m.severity != nil {
		fields = append(fields, alertevent.FieldSeverity)
	}
	if m.service != nil {
		fields = append(fields, alertevent.FieldService)
	}
	if m.status != nil {
		fields = append(fields, alertevent.FieldStatus)
	}
	if m.event_kind != nil {
		fields = append(fields, alertevent.FieldEventKind)
	}
	if m.payload != nil {
		fields = append(fields, alertevent.FieldPayload)
	}
	if m.received_at != nil {
		fields = append(fields, alertevent.FieldReceivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlertEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alertevent.FieldUserID:
		return m.UserID()
	case alertevent.FieldSource:
		return m.Source()
	case alertevent.FieldExternalID:
		return m.ExternalID()
	case alertevent.FieldDedupeKey:
		return m.DedupeKey()
	case alertevent.FieldTitle:
		return m.Title()
	case alertevent.FieldSeverity:
		return m.Severity()
	case alertevent.FieldService:
		return m.Service()
	case alertevent.FieldStatus:
		return m.Status()
	case alertevent.FieldEventKind:
		return m.EventKind()
	case alertevent.FieldPayload:
		return m.Payload()
	case alertevent.FieldReceivedAt:
		return m.ReceivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlertEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alertevent.FieldUserID:
		return m.OldUserID(ctx)
	case alertevent.FieldSource:
		return m.OldSource(ctx)
	case alertevent.FieldExternalID:
		return m.OldExternalID(ctx)
	case alertevent.FieldDedupeKey:
		return m.OldDedupeKey(ctx)
	case alertevent.FieldTitle:
		return m.OldTitle(ctx)
	case alertevent.FieldSeverity:
		return m.OldSeverity(ctx)
	case alertevent.FieldService:
		return m.OldService(ctx)
	case alertevent.FieldStatus:
		return m.OldStatus(ctx)
	case alertevent.FieldEventKind:
		return m.OldEventKind(ctx)
	case alertevent.FieldPayload:
		return m.OldPayload(ctx)
	case alertevent.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AlertEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alertevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case alertevent.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case alertevent.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case alertevent.FieldDedupeKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDedupeKey(v)
		return nil
	case alertevent.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case alertevent.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case alertevent.FieldService:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetService(v)
		return nil
	case alertevent.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case alertevent.FieldEventKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventKind(v)
		return nil
	case alertevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case alertevent.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AlertEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlertEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlertEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AlertEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlertEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(alertevent.FieldTitle) {
		fields = append(fields, alertevent.FieldTitle)
	}
	if m.FieldCleared(alertevent.FieldSeverity) {
		fields = append(fields, alertevent.FieldSeverity)
	}
	if m.FieldCleared(alertevent.FieldService) {
		fields = append(fields, alertevent.FieldService)
	}
	if m.FieldCleared(alertevent.FieldStatus) {
		fields = append(fields, alertevent.FieldStatus)
	}
	if m.FieldCleared(alertevent.FieldEventKind) {
		fields = append(fields, alertevent.FieldEventKind)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlertEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlertEventMutation) ClearField(name string) error {
	switch name {
	case alertevent.FieldTitle:
		m.ClearTitle()
		return nil
	case alertevent.FieldSeverity:
		m.ClearSeverity()
		return nil
	case alertevent.FieldService:
		m.ClearService()
		return nil
	case alertevent.FieldStatus:
		m.ClearStatus()
		return nil
	case alertevent.FieldEventKind:
		m.ClearEventKind()
		return nil
	}
	return fmt.Errorf("unknown AlertEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlertEventMutation) ResetField(name string) error {
	switch name {
	case alertevent.FieldUserID:
		m.ResetUserID()
		return nil
	case alertevent.FieldSource:
		m.ResetSource()
		return nil
	case alertevent.FieldExternalID:
		m.ResetExternalID()
		return nil
	case alertevent.FieldDedupeKey:
		m.ResetDedupeKey()
		return nil
	case alertevent.FieldTitle:
		m.ResetTitle()
		return nil
	case alertevent.FieldSeverity:
		m.ResetSeverity()
		return nil
	case alertevent.FieldService:
		m.ResetService()
		return nil
	case alertevent.FieldStatus:
		m.ResetStatus()
		return nil
	case alertevent.FieldEventKind:
		m.ResetEventKind()
		return nil
	case alertevent.FieldPayload:
		m.ResetPayload()
		return nil
	case alertevent.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	}
	return fmt.Errorf("unknown AlertEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlertEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlertEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlertEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlertEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlertEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlertEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlertEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AlertEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlertEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AlertEvent edge %s", name)
}

// ChatSessionMutation represents an operation that mutates the ChatSession nodes in the graph.
type ChatSessionMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	user_id                   *string
	title                     *string
	messages                  *[]map[string]interface{}
	appendmessages            []map[string]interface{}
	llm_context_history       *[]map[string]interface{}
	appendllm_context_history []map[string]interface{}
	ui_state                  *map[string]interface{}
	status                    *chatsession.Status
	trigger_source            *string
	trigger_metadata          *map[string]interface{}
	pending_context           *[]map[string]interface{}
	appendpending_context     []map[string]interface{}
	is_active                 *bool
	placeholder_warning       *bool
	last_tool_failure         *string
	pod_id                    *string
	last_interaction_at       *time.Time
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	incident                  *string
	clearedincident           bool
	done                      bool
	oldValue                  func(context.Context) (*ChatSession, error)
	predicates                []predicate.ChatSession
}

var _ ent.Mutation = (*ChatSessionMutation)(nil)

// chatsessionOption allows management of the mutation configuration using functional options.
type chatsessionOption func(*ChatSessionMutation)

// newChatSessionMutation creates new mutation for the ChatSession entity.
func newChatSessionMutation(c config, op Op, opts ...chatsessionOption) *ChatSessionMutation {
	m := &ChatSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeChatSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatSessionID sets the ID field of the mutation.
func withChatSessionID(id string) chatsessionOption {
	return func(m *ChatSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatSession
		)
		m.oldValue = func(ctx context.Context) (*ChatSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatSession sets the old ChatSession of the mutation.
func withChatSession(node *ChatSession) chatsessionOption {
	return func(m *ChatSessionMutation) {
		m.oldValue = func(context.Context) (*ChatSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatSession entities.
func (m *ChatSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ChatSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ChatSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ChatSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetTitle sets the "title" field.
func (m *ChatSessionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ChatSessionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ChatSessionMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[chatsession.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ChatSessionMutation) TitleCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ChatSessionMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, chatsession.FieldTitle)
}

// SetMessages sets the "messages" field.
func (m *ChatSessionMutation) SetMessages(value []map[string]interface{}) {
	m.messages = &value
	m.appendmessages = nil
}

// Messages returns the value of the "messages" field in the mutation.
func (m *ChatSessionMutation) Messages() (r []map[string]interface{}, exists bool) {
	v := m.messages
	if v == nil {
		return
	}
	return *v, true
}

// OldMessages returns the old "messages" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldMessages(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessages: %w", err)
	}
	return oldValue.Messages, nil
}

// AppendMessages adds value to the "messages" field.
func (m *ChatSessionMutation) AppendMessages(value []map[string]interface{}) {
	m.appendmessages = append(m.appendmessages, value...)
}

// AppendedMessages returns the list of values that were appended to the "messages" field in this mutation.
func (m *ChatSessionMutation) AppendedMessages() ([]map[string]interface{}, bool) {
	if len(m.appendmessages) == 0 {
		return nil, false
	}
	return m.appendmessages, true
}

// ClearMessages clears the value of the "messages" field.
func (m *ChatSessionMutation) ClearMessages() {
	m.messages = nil
	m.appendmessages = nil
	m.clearedFields[chatsession.FieldMessages] = struct{}{}
}

// MessagesCleared returns if the "messages" field was cleared in this mutation.
func (m *ChatSessionMutation) MessagesCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldMessages]
	return ok
}

// ResetMessages resets all changes to the "messages" field.
func (m *ChatSessionMutation) ResetMessages() {
	m.messages = nil
	m.appendmessages = nil
	delete(m.clearedFields, chatsession.FieldMessages)
}

// SetLlmContextHistory sets the "llm_context_history" field.
func (m *ChatSessionMutation) SetLlmContextHistory(value []map[string]interface{}) {
	m.llm_context_history = &value
	m.appendllm_context_history = nil
}

// LlmContextHistory returns the value of the "llm_context_history" field in the mutation.
func (m *ChatSessionMutation) LlmContextHistory() (r []map[string]interface{}, exists bool) {
	v := m.llm_context_history
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmContextHistory returns the old "llm_context_history" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldLlmContextHistory(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmContextHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmContextHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmContextHistory: %w", err)
	}
	return oldValue.LlmContextHistory, nil
}

// AppendLlmContextHistory adds value to the "llm_context_history" field.
func (m *ChatSessionMutation) AppendLlmContextHistory(value []map[string]interface{}) {
	m.appendllm_context_history = append(m.appendllm_context_history, value...)
}

// AppendedLlmContextHistory returns the list of values that were appended to the "llm_context_history" field in this mutation.
func (m *ChatSessionMutation) AppendedLlmContextHistory() ([]map[string]interface{}, bool) {
	if len(m.appendllm_context_history) == 0 {
		return nil, false
	}
	return m.appendllm_context_history, true
}

// ClearLlmContextHistory clears the value of the "llm_context_history" field.
func (m *ChatSessionMutation) ClearLlmContextHistory() {
	m.llm_context_history = nil
	m.appendllm_context_history = nil
	m.clearedFields[chatsession.FieldLlmContextHistory] = struct{}{}
}

// LlmContextHistoryCleared returns if the "llm_context_history" field was cleared in this mutation.
func (m *ChatSessionMutation) LlmContextHistoryCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldLlmContextHistory]
	return ok
}

// ResetLlmContextHistory resets all changes to the "llm_context_history" field.
func (m *ChatSessionMutation) ResetLlmContextHistory() {
	m.llm_context_history = nil
	m.appendllm_context_history = nil
	delete(m.clearedFields, chatsession.FieldLlmContextHistory)
}

// SetUIState sets the "ui_state" field.
func (m *ChatSessionMutation) SetUIState(value map[string]interface{}) {
	m.ui_state = &value
}

// UIState returns the value of the "ui_state" field in the mutation.
func (m *ChatSessionMutation) UIState() (r map[string]interface{}, exists bool) {
	v := m.ui_state
	if v == nil {
		return
	}
	return *v, true
}

// OldUIState returns the old "ui_state" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldUIState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUIState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUIState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUIState: %w", err)
	}
	return oldValue.UIState, nil
}

// ClearUIState clears the value of the "ui_state" field.
func (m *ChatSessionMutation) ClearUIState() {
	m.ui_state = nil
	m.clearedFields[chatsession.FieldUIState] = struct{}{}
}

// UIStateCleared returns if the "ui_state" field was cleared in this mutation.
func (m *ChatSessionMutation) UIStateCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldUIState]
	return ok
}

// ResetUIState resets all changes to the "ui_state" field.
func (m *ChatSessionMutation) ResetUIState() {
	m.ui_state = nil
	delete(m.clearedFields, chatsession.FieldUIState)
}

// SetStatus sets the "status" field.
func (m *ChatSessionMutation) SetStatus(c chatsession.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ChatSessionMutation) Status() (r chatsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldStatus(ctx context.Context) (v chatsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ChatSessionMutation) ResetStatus() {
	m.status = nil
}

// SetIncidentID sets the "incident_id" field.
func (m *ChatSessionMutation) SetIncidentID(s string) {
	m.incident = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *ChatSessionMutation) IncidentID() (r string, exists bool) {
	v := m.incident
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldIncidentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ClearIncidentID clears the value of the "incident_id" field.
func (m *ChatSessionMutation) ClearIncidentID() {
	m.incident = nil
	m.clearedFields[chatsession.FieldIncidentID] = struct{}{}
}

// IncidentIDCleared returns if the "incident_id" field was cleared in this mutation.
func (m *ChatSessionMutation) IncidentIDCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldIncidentID]
	return ok
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *ChatSessionMutation) ResetIncidentID() {
	m.incident = nil
	delete(m.clearedFields, chatsession.FieldIncidentID)
}

// SetTriggerSource sets the "trigger_source" field.
func (m *ChatSessionMutation) SetTriggerSource(s string) {
	m.trigger_source = &s
}

// TriggerSource returns the value of the "trigger_source" field in the mutation.
func (m *ChatSessionMutation) TriggerSource() (r string, exists bool) {
	v := m.trigger_source
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerSource returns the old "trigger_source" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldTriggerSource(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerSource: %w", err)
	}
	return oldValue.TriggerSource, nil
}

// ClearTriggerSource clears the value of the "trigger_source" field.
func (m *ChatSessionMutation) ClearTriggerSource() {
	m.trigger_source = nil
	m.clearedFields[chatsession.FieldTriggerSource] = struct{}{}
}

// TriggerSourceCleared returns if the "trigger_source" field was cleared in this mutation.
func (m *ChatSessionMutation) TriggerSourceCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldTriggerSource]
	return ok
}

// ResetTriggerSource resets all changes to the "trigger_source" field.
func (m *ChatSessionMutation) ResetTriggerSource() {
	m.trigger_source = nil
	delete(m.clearedFields, chatsession.FieldTriggerSource)
}

// SetTriggerMetadata sets the "trigger_metadata" field.
func (m *ChatSessionMutation) SetTriggerMetadata(value map[string]interface{}) {
	m.trigger_metadata = &value
}

// TriggerMetadata returns the value of the "trigger_metadata" field in the mutation.
func (m *ChatSessionMutation) TriggerMetadata() (r map[string]interface{}, exists bool) {
	v := m.trigger_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerMetadata returns the old "trigger_metadata" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldTriggerMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerMetadata: %w", err)
	}
	return oldValue.TriggerMetadata, nil
}

// ClearTriggerMetadata clears the value of the "trigger_metadata" field.
func (m *ChatSessionMutation) ClearTriggerMetadata() {
	m.trigger_metadata = nil
	m.clearedFields[chatsession.FieldTriggerMetadata] = struct{}{}
}

// TriggerMetadataCleared returns if the "trigger_metadata" field was cleared in this mutation.
func (m *ChatSessionMutation) TriggerMetadataCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldTriggerMetadata]
	return ok
}

// ResetTriggerMetadata resets all changes to the "trigger_metadata" field.
func (m *ChatSessionMutation) ResetTriggerMetadata() {
	m.trigger_metadata = nil
	delete(m.clearedFields, chatsession.FieldTriggerMetadata)
}

// SetPendingContext sets the "pending_context" field.
func (m *ChatSessionMutation) SetPendingContext(value []map[string]interface{}) {
	m.pending_context = &value
	m.appendpending_context = nil
}

// PendingContext returns the value of the "pending_context" field in the mutation.
func (m *ChatSessionMutation) PendingContext() (r []map[string]interface{}, exists bool) {
	v := m.pending_context
	if v == nil {
		return
	}
	return *v, true
}

// OldPendingContext returns the old "pending_context" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldPendingContext(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPendingContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPendingContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPendingContext: %w", err)
	}
	return oldValue.PendingContext, nil
}

// AppendPendingContext adds value to the "pending_context" field.
func (m *ChatSessionMutation) AppendPendingContext(value []map[string]interface{}) {
	m.appendpending_context = append(m.appendpending_context, value...)
}

// AppendedPendingContext returns the list of values that were appended to the "pending_context" field in this mutation.
func (m *ChatSessionMutation) AppendedPendingContext() ([]map[string]interface{}, bool) {
	if len(m.appendpending_context) == 0 {
		return nil, false
	}
	return m.appendpending_context, true
}

// ClearPendingContext clears the value of the "pending_context" field.
func (m *ChatSessionMutation) ClearPendingContext() {
	m.pending_context = nil
	m.appendpending_context = nil
	m.clearedFields[chatsession.FieldPendingContext] = struct{}{}
}

// PendingContextCleared returns if the "pending_context" field was cleared in this mutation.
func (m *ChatSessionMutation) PendingContextCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldPendingContext]
	return ok
}

// ResetPendingContext resets all changes to the "pending_context" field.
func (m *ChatSessionMutation) ResetPendingContext() {
	m.pending_context = nil
	m.appendpending_context = nil
	delete(m.clearedFields, chatsession.FieldPendingContext)
}

// SetIsActive sets the "is_active" field.
func (m *ChatSessionMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ChatSessionMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ChatSessionMutation) ResetIsActive() {
	m.is_active = nil
}

// SetPlaceholderWarning sets the "placeholder_warning" field.
func (m *ChatSessionMutation) SetPlaceholderWarning(b bool) {
	m.placeholder_warning = &b
}

// PlaceholderWarning returns the value of the "placeholder_warning" field in the mutation.
func (m *ChatSessionMutation) PlaceholderWarning() (r bool, exists bool) {
	v := m.placeholder_warning
	if v == nil {
		return
	}
	return *v, true
}

// OldPlaceholderWarning returns the old "placeholder_warning" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldPlaceholderWarning(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlaceholderWarning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlaceholderWarning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlaceholderWarning: %w", err)
	}
	return oldValue.PlaceholderWarning, nil
}

// ResetPlaceholderWarning resets all changes to the "placeholder_warning" field.
func (m *ChatSessionMutation) ResetPlaceholderWarning() {
	m.placeholder_warning = nil
}

// SetLastToolFailure sets the "last_tool_failure" field.
func (m *ChatSessionMutation) SetLastToolFailure(s string) {
	m.last_tool_failure = &s
}

// LastToolFailure returns the value of the "last_tool_failure" field in the mutation.
func (m *ChatSessionMutation) LastToolFailure() (r string, exists bool) {
	v := m.last_tool_failure
	if v == nil {
		return
	}
	return *v, true
}

// OldLastToolFailure returns the old "last_tool_failure" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldLastToolFailure(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastToolFailure is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastToolFailure requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastToolFailure: %w", err)
	}
	return oldValue.LastToolFailure, nil
}

// ClearLastToolFailure clears the value of the "last_tool_failure" field.
func (m *ChatSessionMutation) ClearLastToolFailure() {
	m.last_tool_failure = nil
	m.clearedFields[chatsession.FieldLastToolFailure] = struct{}{}
}

// LastToolFailureCleared returns if the "last_tool_failure" field was cleared in this mutation.
func (m *ChatSessionMutation) LastToolFailureCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldLastToolFailure]
	return ok
}

// ResetLastToolFailure resets all changes to the "last_tool_failure" field.
func (m *ChatSessionMutation) ResetLastToolFailure() {
	m.last_tool_failure = nil
	delete(m.clearedFields, chatsession.FieldLastToolFailure)
}

// SetPodID sets the "pod_id" field.
func (m *ChatSessionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *ChatSessionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *ChatSessionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[chatsession.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *ChatSessionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *ChatSessionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, chatsession.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *ChatSessionMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *ChatSessionMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *ChatSessionMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[chatsession.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *ChatSessionMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *ChatSessionMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, chatsession.FieldLastInteractionAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChatSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChatSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChatSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (m *ChatSessionMutation) ClearIncident() {
	m.clearedincident = true
	m.clearedFields[chatsession.FieldIncidentID] = struct{}{}
}

// IncidentCleared reports if the "incident" edge to the Incident entity was cleared.
func (m *ChatSessionMutation) IncidentCleared() bool {
	return m.IncidentIDCleared() || m.clearedincident
}

// IncidentIDs returns the "incident" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IncidentID instead. It exists only for internal usage by the builders.
func (m *ChatSessionMutation) IncidentIDs() (ids []string) {
	if id := m.incident; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIncident resets all changes to the "incident" edge.
func (m *ChatSessionMutation) ResetIncident() {
	m.incident = nil
	m.clearedincident = false
}

// Where appends a list predicates to the ChatSessionMutation builder.
func (m *ChatSessionMutation) Where(ps ...predicate.ChatSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatSession).
func (m *ChatSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatSessionMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.user_id != nil {
		fields = append(fields, chatsession.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, chatsession.FieldTitle)
	}
	if m.messages != nil {
		fields = append(fields, chatsession.FieldMessages)
	}
	if m.llm_context_history != nil {
		fields = append(fields, chatsession.FieldLlmContextHistory)
	}
	if m.ui_state != nil {
		fields = append(fields, chatsession.FieldUIState)
	}
	if m.status != nil {
		fields = append(fields, chatsession.FieldStatus)
	}
	if m.incident != nil {
		fields = append(fields, chatsession.FieldIncidentID)
	}
	if m.trigger_source != nil {
		fields = append(fields, chatsession.FieldTriggerSource)
	}
	if m.trigger_metadata != nil {
		fields = append(fields, chatsession.FieldTriggerMetadata)
	}
	if m.pending_context != nil {
		fields = append(fields, chatsession.FieldPendingContext)
	}
	if m.is_active != nil {
		fields = append(fields, chatsession.FieldIsActive)
	}
	if m.placeholder_warning != nil {
		fields = append(fields, chatsession.FieldPlaceholderWarning)
	}
	if m.last_tool_failure != nil {
		fields = append(fields, chatsession.FieldLastToolFailure)
	}
	if m.pod_id != nil {
		fields = append(fields, chatsession.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, chatsession.FieldLastInteractionAt)
	}
	if m.created_at != nil {
		fields = append(fields, chatsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chatsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatsession.FieldUserID:
		return m.UserID()
	case chatsession.FieldTitle:
		return m.Title()
	case chatsession.FieldMessages:
		return m.Messages()
	case chatsession.FieldLlmContextHistory:
		return m.LlmContextHistory()
	case chatsession.FieldUIState:
		return m.UIState()
	case chatsession.FieldStatus:
		return m.Status()
	case chatsession.FieldIncidentID:
		return m.IncidentID()
	case chatsession.FieldTriggerSource:
		return m.TriggerSource()
	case chatsession.FieldTriggerMetadata:
		return m.TriggerMetadata()
	case chatsession.FieldPendingContext:
		return m.PendingContext()
	case chatsession.FieldIsActive:
		return m.IsActive()
	case chatsession.FieldPlaceholderWarning:
		return m.PlaceholderWarning()
	case chatsession.FieldLastToolFailure:
		return m.LastToolFailure()
	case chatsession.FieldPodID:
		return m.PodID()
	case chatsession.FieldLastInteractionAt:
		return m.LastInteractionAt()
	case chatsession.FieldCreatedAt:
		return m.CreatedAt()
	case chatsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatsession.FieldUserID:
		return m.OldUserID(ctx)
	case chatsession.FieldTitle:
		return m.OldTitle(ctx)
	case chatsession.FieldMessages:
		return m.OldMessages(ctx)
	case chatsession.FieldLlmContextHistory:
		return m.OldLlmContextHistory(ctx)
	case chatsession.FieldUIState:
		return m.OldUIState(ctx)
	case chatsession.FieldStatus:
		return m.OldStatus(ctx)
	case chatsession.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case chatsession.FieldTriggerSource:
		return m.OldTriggerSource(ctx)
	case chatsession.FieldTriggerMetadata:
		return m.OldTriggerMetadata(ctx)
	case chatsession.FieldPendingContext:
		return m.OldPendingContext(ctx)
	case chatsession.FieldIsActive:
		return m.OldIsActive(ctx)
	case chatsession.FieldPlaceholderWarning:
		return m.OldPlaceholderWarning(ctx)
	case chatsession.FieldLastToolFailure:
		return m.OldLastToolFailure(ctx)
	case chatsession.FieldPodID:
		return m.OldPodID(ctx)
	case chatsession.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	case chatsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chatsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatsession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case chatsession.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case chatsession.FieldMessages:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessages(v)
		return nil
	case chatsession.FieldLlmContextHistory:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmContextHistory(v)
		return nil
	case chatsession.FieldUIState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUIState(v)
		return nil
	case chatsession.FieldStatus:
		v, ok := value.(chatsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case chatsession.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case chatsession.FieldTriggerSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerSource(v)
		return nil
	case chatsession.FieldTriggerMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerMetadata(v)
		return nil
	case chatsession.FieldPendingContext:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPendingContext(v)
		return nil
	case chatsession.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case chatsession.FieldPlaceholderWarning:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlaceholderWarning(v)
		return nil
	case chatsession.FieldLastToolFailure:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastToolFailure(v)
		return nil
	case chatsession.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case chatsession.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	case chatsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chatsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatsession.FieldTitle) {
		fields = append(fields, chatsession.FieldTitle)
	}
	if m.FieldCleared(chatsession.FieldMessages) {
		fields = append(fields, chatsession.FieldMessages)
	}
	if m.FieldCleared(chatsession.FieldLlmContextHistory) {
		fields = append(fields, chatsession.FieldLlmContextHistory)
	}
	if m.FieldCleared(chatsession.FieldUIState) {
		fields = append(fields, chatsession.FieldUIState)
	}
	if m.FieldCleared(chatsession.FieldIncidentID) {
		fields = append(fields, chatsession.FieldIncidentID)
	}
	if m.FieldCleared(chatsession.FieldTriggerSource) {
		fields = append(fields, chatsession.FieldTriggerSource)
	}
	if m.FieldCleared(chatsession.FieldTriggerMetadata) {
		fields = append(fields, chatsession.FieldTriggerMetadata)
	}
	if m.FieldCleared(chatsession.FieldPendingContext) {
		fields = append(fields, chatsession.FieldPendingContext)
	}
	if m.FieldCleared(chatsession.FieldLastToolFailure) {
		fields = append(fields, chatsession.FieldLastToolFailure)
	}
	if m.FieldCleared(chatsession.FieldPodID) {
		fields = append(fields, chatsession.FieldPodID)
	}
	if m.FieldCleared(chatsession.FieldLastInteractionAt) {
		fields = append(fields, chatsession.FieldLastInteractionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatSessionMutation) ClearField(name string) error {
	switch name {
	case chatsession.FieldTitle:
		m.ClearTitle()
		return nil
	case chatsession.FieldMessages:
		m.ClearMessages()
		return nil
	case chatsession.FieldLlmContextHistory:
		m.ClearLlmContextHistory()
		return nil
	case chatsession.FieldUIState:
		m.ClearUIState()
		return nil
	case chatsession.FieldIncidentID:
		m.ClearIncidentID()
		return nil
	case chatsession.FieldTriggerSource:
		m.ClearTriggerSource()
		return nil
	case chatsession.FieldTriggerMetadata:
		m.ClearTriggerMetadata()
		return nil
	case chatsession.FieldPendingContext:
		m.ClearPendingContext()
		return nil
	case chatsession.FieldLastToolFailure:
		m.ClearLastToolFailure()
		return nil
	case chatsession.FieldPodID:
		m.ClearPodID()
		return nil
	case chatsession.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown ChatSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatSessionMutation) ResetField(name string) error {
	switch name {
	case chatsession.FieldUserID:
		m.ResetUserID()
		return nil
	case chatsession.FieldTitle:
		m.ResetTitle()
		return nil
	case chatsession.FieldMessages:
		m.ResetMessages()
		return nil
	case chatsession.FieldLlmContextHistory:
		m.ResetLlmContextHistory()
		return nil
	case chatsession.FieldUIState:
		m.ResetUIState()
		return nil
	case chatsession.FieldStatus:
		m.ResetStatus()
		return nil
	case chatsession.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case chatsession.FieldTriggerSource:
		m.ResetTriggerSource()
		return nil
	case chatsession.FieldTriggerMetadata:
		m.ResetTriggerMetadata()
		return nil
	case chatsession.FieldPendingContext:
		m.ResetPendingContext()
		return nil
	case chatsession.FieldIsActive:
		m.ResetIsActive()
		return nil
	case chatsession.FieldPlaceholderWarning:
		m.ResetPlaceholderWarning()
		return nil
	case chatsession.FieldLastToolFailure:
		m.ResetLastToolFailure()
		return nil
	case chatsession.FieldPodID:
		m.ResetPodID()
		return nil
	case chatsession.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	case chatsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chatsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.incident != nil {
		edges = append(edges, chatsession.EdgeIncident)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatsession.EdgeIncident:
		if id := m.incident; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedincident {
		edges = append(edges, chatsession.EdgeIncident)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case chatsession.EdgeIncident:
		return m.clearedincident
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatSessionMutation) ClearEdge(name string) error {
	switch name {
	case chatsession.EdgeIncident:
		m.ClearIncident()
		return nil
	}
	return fmt.Errorf("unknown ChatSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatSessionMutation) ResetEdge(name string) error {
	switch name {
	case chatsession.EdgeIncident:
		m.ResetIncident()
		return nil
	}
	return fmt.Errorf("unknown ChatSession edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *EventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *EventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *EventMutation) ResetUserID() {
	m.user_id = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, event.FieldUserID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldUserID:
		return m.UserID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldUserID:
		return m.OldUserID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldUserID:
		m.ResetUserID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// IncidentMutation represents an operation that mutates the Incident nodes in the graph.
type IncidentMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	user_id                   *string
	source_type               *string
	source_alert_id           *string
	status                    *incident.Status
	aurora_status             *incident.AuroraStatus
	severity                  *string
	alert_title               *string
	alert_service             *string
	affected_services         *[]string
	appendaffected_services   []string
	correlated_alert_count    *int
	addcorrelated_alert_count *int
	aurora_summary            *string
	aurora_chat_session_id    *string
	active_tab                *string
	alert_metadata            *map[string]interface{}
	merged_into_incident_id   *string
	slack_message_ts          *string
	started_at                *time.Time
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	alerts                    map[string]struct{}
	removedalerts             map[string]struct{}
	clearedalerts             bool
	thoughts                  map[string]struct{}
	removedthoughts           map[string]struct{}
	clearedthoughts           bool
	citations                 map[string]struct{}
	removedcitations          map[string]struct{}
	clearedcitations          bool
	suggestions               map[string]struct{}
	removedsuggestions        map[string]struct{}
	clearedsuggestions        bool
	chat_sessions             map[string]struct{}
	removedchat_sessions      map[string]struct{}
	clearedchat_sessions      bool
	done                      bool
	oldValue                  func(context.Context) (*Incident, error)
	predicates                []predicate.Incident
}

var _ ent.Mutation = (*IncidentMutation)(nil)

// incidentOption allows management of the mutation configuration using functional options.
type incidentOption func(*IncidentMutation)

// newIncidentMutation creates new mutation for the Incident entity.
func newIncidentMutation(c config, op Op, opts ...incidentOption) *IncidentMutation {
	m := &IncidentMutation{
		config:        c,
		op:            op,
		typ:           TypeIncident,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIncidentID sets the ID field of the mutation.
func withIncidentID(id string) incidentOption {
	return func(m *IncidentMutation) {
		var (
			err   error
			once  sync.Once
			value *Incident
		)
		m.oldValue = func(ctx context.Context) (*Incident, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Incident.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIncident sets the old Incident of the mutation.
func withIncident(node *Incident) incidentOption {
	return func(m *IncidentMutation) {
		m.oldValue = func(context.Context) (*Incident, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IncidentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IncidentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Incident entities.
func (m *IncidentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IncidentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IncidentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Incident.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *IncidentMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *IncidentMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *IncidentMutation) ResetUserID() {
	m.user_id = nil
}

// SetSourceType sets the "source_type" field.
func (m *IncidentMutation) SetSourceType(s string) {
	m.source_type = &s
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *IncidentMutation) SourceType() (r string, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldSourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *IncidentMutation) ResetSourceType() {
	m.source_type = nil
}

// SetSourceAlertID sets the "source_alert_id" field.
func (m *IncidentMutation) SetSourceAlertID(s string) {
	m.source_alert_id = &s
}

// SourceAlertID returns the value of the "source_alert_id" field in the mutation.
func (m *IncidentMutation) SourceAlertID() (r string, exists bool) {
	v := m.source_alert_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceAlertID returns the old "source_alert_id" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldSourceAlertID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceAlertID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceAlertID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceAlertID: %w", err)
	}
	return oldValue.SourceAlertID, nil
}

// ResetSourceAlertID resets all changes to the "source_alert_id" field.
func (m *IncidentMutation) ResetSourceAlertID() {
	m.source_alert_id = nil
}

// SetStatus sets the "status" field.
func (m *IncidentMutation) SetStatus(i incident.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *IncidentMutation) Status() (r incident.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldStatus(ctx context.Context) (v incident.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IncidentMutation) ResetStatus() {
	m.status = nil
}

// SetAuroraStatus sets the "aurora_status" field.
func (m *IncidentMutation) SetAuroraStatus(is incident.AuroraStatus) {
	m.aurora_status = &is
}

// AuroraStatus returns the value of the "aurora_status" field in the mutation.
func (m *IncidentMutation) AuroraStatus() (r incident.AuroraStatus, exists bool) {
	v := m.aurora_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAuroraStatus returns the old "aurora_status" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldAuroraStatus(ctx context.Context) (v incident.AuroraStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuroraStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuroraStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuroraStatus: %w", err)
	}
	return oldValue.AuroraStatus, nil
}

// ResetAuroraStatus resets all changes to the "aurora_status" field.
func (m *IncidentMutation) ResetAuroraStatus() {
	m.aurora_status = nil
}

// SetSeverity sets the "severity" field.
func (m *IncidentMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *IncidentMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldSeverity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *IncidentMutation) ResetSeverity() {
	m.severity = nil
}

// SetAlertTitle sets the "alert_title" field.
func (m *IncidentMutation) SetAlertTitle(s string) {
	m.alert_title = &s
}

// AlertTitle returns the value of the "alert_title" field in the mutation.
func (m *IncidentMutation) AlertTitle() (r string, exists bool) {
	v := m.alert_title
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertTitle returns the old "alert_title" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldAlertTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertTitle: %w", err)
	}
	return oldValue.AlertTitle, nil
}

// ResetAlertTitle resets all changes to the "alert_title" field.
func (m *IncidentMutation) ResetAlertTitle() {
	m.alert_title = nil
}

// SetAlertService sets the "alert_service" field.
func (m *IncidentMutation) SetAlertService(s string) {
	m.alert_service = &s
}

// AlertService returns the value of the "alert_service" field in the mutation.
func (m *IncidentMutation) AlertService() (r string, exists bool) {
	v := m.alert_service
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertService returns the old "alert_service" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldAlertService(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertService is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertService requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertService: %w", err)
	}
	return oldValue.AlertService, nil
}

// ClearAlertService clears the value of the "alert_service" field.
func (m *IncidentMutation) ClearAlertService() {
	m.alert_service = nil
	m.clearedFields[incident.FieldAlertService] = struct{}{}
}

// AlertServiceCleared returns if the "alert_service" field was cleared in this mutation.
func (m *IncidentMutation) AlertServiceCleared() bool {
	_, ok := m.clearedFields[incident.FieldAlertService]
	return ok
}

// ResetAlertService resets all changes to the "alert_service" field.
func (m *IncidentMutation) ResetAlertService() {
	m.alert_service = nil
	delete(m.clearedFields, incident.FieldAlertService)
}

// SetAffectedServices sets the "affected_services" field.
func (m *IncidentMutation) SetAffectedServices(s []string) {
	m.affected_services = &s
	m.appendaffected_services = nil
}

// AffectedServices returns the value of the "affected_services" field in the mutation.
func (m *IncidentMutation) AffectedServices() (r []string, exists bool) {
	v := m.affected_services
	if v == nil {
		return
	}
	return *v, true
}

// OldAffectedServices returns the old "affected_services" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldAffectedServices(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffectedServices is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffectedServices requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffectedServices: %w", err)
	}
	return oldValue.AffectedServices, nil
}

// AppendAffectedServices adds s to the "affected_services" field.
func (m *IncidentMutation) AppendAffectedServices(s []string) {
	m.appendaffected_services = append(m.appendaffected_services, s...)
}

// AppendedAffectedServices returns the list of values that were appended to the "affected_services" field in this mutation.
func (m *IncidentMutation) AppendedAffectedServices() ([]string, bool) {
	if len(m.appendaffected_services) == 0 {
		return nil, false
	}
	return m.appendaffected_services, true
}

// ClearAffectedServices clears the value of the "affected_services" field.
func (m *IncidentMutation) ClearAffectedServices() {
	m.affected_services = nil
	m.appendaffected_services = nil
	m.clearedFields[incident.FieldAffectedServices] = struct{}{}
}

// AffectedServicesCleared returns if the "affected_services" field was cleared in this mutation.
func (m *IncidentMutation) AffectedServicesCleared() bool {
	_, ok := m.clearedFields[incident.FieldAffectedServices]
	return ok
}

// ResetAffectedServices resets all changes to the "affected_services" field.
func (m *IncidentMutation) ResetAffectedServices() {
	m.affected_services = nil
	m.appendaffected_services = nil
	delete(m.clearedFields, incident.FieldAffectedServices)
}

// SetCorrelatedAlertCount sets the "correlated_alert_count" field.
func (m *IncidentMutation) SetCorrelatedAlertCount(i int) {
	m.correlated_alert_count = &i
	m.addcorrelated_alert_count = nil
}

// CorrelatedAlertCount returns the value of the "correlated_alert_count" field in the mutation.
func (m *IncidentMutation) CorrelatedAlertCount() (r int, exists bool) {
	v := m.correlated_alert_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelatedAlertCount returns the old "correlated_alert_count" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldCorrelatedAlertCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelatedAlertCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelatedAlertCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelatedAlertCount: %w", err)
	}
	return oldValue.CorrelatedAlertCount, nil
}

// AddCorrelatedAlertCount adds i to the "correlated_alert_count" field.
func (m *IncidentMutation) AddCorrelatedAlertCount(i int) {
	if m.addcorrelated_alert_count != nil {
		*m.addcorrelated_alert_count += i
	} else {
		m.addcorrelated_alert_count = &i
	}
}

// AddedCorrelatedAlertCount returns the value that was added to the "correlated_alert_count" field in this mutation.
func (m *IncidentMutation) AddedCorrelatedAlertCount() (r int, exists bool) {
	v := m.addcorrelated_alert_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrelatedAlertCount resets all changes to the "correlated_alert_count" field.
func (m *IncidentMutation) ResetCorrelatedAlertCount() {
	m.correlated_alert_count = nil
	m.addcorrelated_alert_count = nil
}

// SetAuroraSummary sets the "aurora_summary" field.
func (m *IncidentMutation) SetAuroraSummary(s string) {
	m.aurora_summary = &s
}

// AuroraSummary returns the value of the "aurora_summary" field in the mutation.
func (m *IncidentMutation) AuroraSummary() (r string, exists bool) {
	v := m.aurora_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldAuroraSummary returns the old "aurora_summary" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldAuroraSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuroraSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuroraSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuroraSummary: %w", err)
	}
	return oldValue.AuroraSummary, nil
}

// ClearAuroraSummary clears the value of the "aurora_summary" field.
func (m *IncidentMutation) ClearAuroraSummary() {
	m.aurora_summary = nil
	m.clearedFields[incident.FieldAuroraSummary] = struct{}{}
}

// AuroraSummaryCleared returns if the "aurora_summary" field was cleared in this mutation.
func (m *IncidentMutation) AuroraSummaryCleared() bool {
	_, ok := m.clearedFields[incident.FieldAuroraSummary]
	return ok
}

// ResetAuroraSummary resets all changes to the "aurora_summary" field.
func (m *IncidentMutation) ResetAuroraSummary() {
	m.aurora_summary = nil
	delete(m.clearedFields, incident.FieldAuroraSummary)
}

// SetAuroraChatSessionID sets the "aurora_chat_session_id" field.
func (m *IncidentMutation) SetAuroraChatSessionID(s string) {
	m.aurora_chat_session_id = &s
}

// AuroraChatSessionID returns the value of the "aurora_chat_session_id" field in the mutation.
func (m *IncidentMutation) AuroraChatSessionID() (r string, exists bool) {
	v := m.aurora_chat_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAuroraChatSessionID returns the old "aurora_chat_session_id" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldAuroraChatSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuroraChatSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuroraChatSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuroraChatSessionID: %w", err)
	}
	return oldValue.AuroraChatSessionID, nil
}

// ClearAuroraChatSessionID clears the value of the "aurora_chat_session_id" field.
func (m *IncidentMutation) ClearAuroraChatSessionID() {
	m.aurora_chat_session_id = nil
	m.clearedFields[incident.FieldAuroraChatSessionID] = struct{}{}
}

// AuroraChatSessionIDCleared returns if the "aurora_chat_session_id" field was cleared in this mutation.
func (m *IncidentMutation) AuroraChatSessionIDCleared() bool {
	_, ok := m.clearedFields[incident.FieldAuroraChatSessionID]
	return ok
}

// ResetAuroraChatSessionID resets all changes to the "aurora_chat_session_id" field.
func (m *IncidentMutation) ResetAuroraChatSessionID() {
	m.aurora_chat_session_id = nil
	delete(m.clearedFields, incident.FieldAuroraChatSessionID)
}

// SetActiveTab sets the "active_tab" field.
func (m *IncidentMutation) SetActiveTab(s string) {
	m.active_tab = &s
}

// ActiveTab returns the value of the "active_tab" field in the mutation.
func (m *IncidentMutation) ActiveTab() (r string, exists bool) {
	v := m.active_tab
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveTab returns the old "active_tab" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldActiveTab(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveTab is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveTab requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveTab: %w", err)
	}
	return oldValue.ActiveTab, nil
}

// ClearActiveTab clears the value of the "active_tab" field.
func (m *IncidentMutation) ClearActiveTab() {
	m.active_tab = nil
	m.clearedFields[incident.FieldActiveTab] = struct{}{}
}

// ActiveTabCleared returns if the "active_tab" field was cleared in this mutation.
func (m *IncidentMutation) ActiveTabCleared() bool {
	_, ok := m.clearedFields[incident.FieldActiveTab]
	return ok
}

// ResetActiveTab resets all changes to the "active_tab" field.
func (m *IncidentMutation) ResetActiveTab() {
	m.active_tab = nil
	delete(m.clearedFields, incident.FieldActiveTab)
}

// SetAlertMetadata sets the "alert_metadata" field.
func (m *IncidentMutation) SetAlertMetadata(value map[string]interface{}) {
	m.alert_metadata = &value
}

// AlertMetadata returns the value of the "alert_metadata" field in the mutation.
func (m *IncidentMutation) AlertMetadata() (r map[string]interface{}, exists bool) {
	v := m.alert_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertMetadata returns the old "alert_metadata" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldAlertMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertMetadata: %w", err)
	}
	return oldValue.AlertMetadata, nil
}

// ClearAlertMetadata clears the value of the "alert_metadata" field.
func (m *IncidentMutation) ClearAlertMetadata() {
	m.alert_metadata = nil
	m.clearedFields[incident.FieldAlertMetadata] = struct{}{}
}

// AlertMetadataCleared returns if the "alert_metadata" field was cleared in this mutation.
func (m *IncidentMutation) AlertMetadataCleared() bool {
	_, ok := m.clearedFields[incident.FieldAlertMetadata]
	return ok
}

// ResetAlertMetadata resets all changes to the "alert_metadata" field.
func (m *IncidentMutation) ResetAlertMetadata() {
	m.alert_metadata = nil
	delete(m.clearedFields, incident.FieldAlertMetadata)
}

// SetMergedIntoIncidentID sets the "merged_into_incident_id" field.
func (m *IncidentMutation) SetMergedIntoIncidentID(s string) {
	m.merged_into_incident_id = &s
}

// MergedIntoIncidentID returns the value of the "merged_into_incident_id" field in the mutation.
func (m *IncidentMutation) MergedIntoIncidentID() (r string, exists bool) {
	v := m.merged_into_incident_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMergedIntoIncidentID returns the old "merged_into_incident_id" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldMergedIntoIncidentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMergedIntoIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMergedIntoIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMergedIntoIncidentID: %w", err)
	}
	return oldValue.MergedIntoIncidentID, nil
}

// ClearMergedIntoIncidentID clears the value of the "merged_into_incident_id" field.
func (m *IncidentMutation) ClearMergedIntoIncidentID() {
	m.merged_into_incident_id = nil
	m.clearedFields[incident.FieldMergedIntoIncidentID] = struct{}{}
}

// MergedIntoIncidentIDCleared returns if the "merged_into_incident_id" field was cleared in this mutation.
func (m *IncidentMutation) MergedIntoIncidentIDCleared() bool {
	_, ok := m.clearedFields[incident.FieldMergedIntoIncidentID]
	return ok
}

// ResetMergedIntoIncidentID resets all changes to the "merged_into_incident_id" field.
func (m *IncidentMutation) ResetMergedIntoIncidentID() {
	m.merged_into_incident_id = nil
	delete(m.clearedFields, incident.FieldMergedIntoIncidentID)
}

// SetSlackMessageTs sets the "slack_message_ts" field.
func (m *IncidentMutation) SetSlackMessageTs(s string) {
	m.slack_message_ts = &s
}

// SlackMessageTs returns the value of the "slack_message_ts" field in the mutation.
func (m *IncidentMutation) SlackMessageTs() (r string, exists bool) {
	v := m.slack_message_ts
	if v == nil {
		return
	}
	return *v, true
}

// OldSlackMessageTs returns the old "slack_message_ts" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldSlackMessageTs(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlackMessageTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlackMessageTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlackMessageTs: %w", err)
	}
	return oldValue.SlackMessageTs, nil
}

// ClearSlackMessageTs clears the value of the "slack_message_ts" field.
func (m *IncidentMutation) ClearSlackMessageTs() {
	m.slack_message_ts = nil
	m.clearedFields[incident.FieldSlackMessageTs] = struct{}{}
}

// SlackMessageTsCleared returns if the "slack_message_ts" field was cleared in this mutation.
func (m *IncidentMutation) SlackMessageTsCleared() bool {
	_, ok := m.clearedFields[incident.FieldSlackMessageTs]
	return ok
}

// ResetSlackMessageTs resets all changes to the "slack_message_ts" field.
func (m *IncidentMutation) ResetSlackMessageTs() {
	m.slack_message_ts = nil
	delete(m.clearedFields, incident.FieldSlackMessageTs)
}

// SetStartedAt sets the "started_at" field.
func (m *IncidentMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *IncidentMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *IncidentMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IncidentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IncidentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IncidentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IncidentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IncidentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IncidentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAlertIDs adds the "alerts" edge to the IncidentAlert entity by ids.
func (m *IncidentMutation) AddAlertIDs(ids ...string) {
	if m.alerts == nil {
		m.alerts = make(map[string]struct{})
	}
	for i := range ids {
		m.alerts[ids[i]] = struct{}{}
	}
}

// ClearAlerts clears the "alerts" edge to the IncidentAlert entity.
func (m *IncidentMutation) ClearAlerts() {
	m.clearedalerts = true
}

// AlertsCleared reports if the "alerts" edge to the IncidentAlert entity was cleared.
func (m *IncidentMutation) AlertsCleared() bool {
	return m.clearedalerts
}

// RemoveAlertIDs removes the "alerts" edge to the IncidentAlert entity by IDs.
func (m *IncidentMutation) RemoveAlertIDs(ids ...string) {
	if m.removedalerts == nil {
		m.removedalerts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.alerts, ids[i])
		m.removedalerts[ids[i]] = struct{}{}
	}
}

// RemovedAlerts returns the removed IDs of the "alerts" edge to the IncidentAlert entity.
func (m *IncidentMutation) RemovedAlertsIDs() (ids []string) {
	for id := range m.removedalerts {
		ids = append(ids, id)
	}
	return
}

// AlertsIDs returns the "alerts" edge IDs in the mutation.
func (m *IncidentMutation) AlertsIDs() (ids []string) {
	for id := range m.alerts {
		ids = append(ids, id)
	}
	return
}

// ResetAlerts resets all changes to the "alerts" edge.
func (m *IncidentMutation) ResetAlerts() {
	m.alerts = nil
	m.clearedalerts = false
	m.removedalerts = nil
}

// AddThoughtIDs adds the "thoughts" edge to the IncidentThought entity by ids.
func (m *IncidentMutation) AddThoughtIDs(ids ...string) {
	if m.thoughts == nil {
		m.thoughts = make(map[string]struct{})
	}
	for i := range ids {
		m.thoughts[ids[i]] = struct{}{}
	}
}

// ClearThoughts clears the "thoughts" edge to the IncidentThought entity.
func (m *IncidentMutation) ClearThoughts() {
	m.clearedthoughts = true
}

// ThoughtsCleared reports if the "thoughts" edge to the IncidentThought entity was cleared.
func (m *IncidentMutation) ThoughtsCleared() bool {
	return m.clearedthoughts
}

// RemoveThoughtIDs removes the "thoughts" edge to the IncidentThought entity by IDs.
func (m *IncidentMutation) RemoveThoughtIDs(ids ...string) {
	if m.removedthoughts == nil {
		m.removedthoughts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.thoughts, ids[i])
		m.removedthoughts[ids[i]] = struct{}{}
	}
}

// RemovedThoughts returns the removed IDs of the "thoughts" edge to the IncidentThought entity.
func (m *IncidentMutation) RemovedThoughtsIDs() (ids []string) {
	for id := range m.removedthoughts {
		ids = append(ids, id)
	}
	return
}

// ThoughtsIDs returns the "thoughts" edge IDs in the mutation.
func (m *IncidentMutation) ThoughtsIDs() (ids []string) {
	for id := range m.thoughts {
		ids = append(ids, id)
	}
	return
}

// ResetThoughts resets all changes to the "thoughts" edge.
func (m *IncidentMutation) ResetThoughts() {
	m.thoughts = nil
	m.clearedthoughts = false
	m.removedthoughts = nil
}

// AddCitationIDs adds the "citations" edge to the IncidentCitation entity by ids.
func (m *IncidentMutation) AddCitationIDs(ids ...string) {
	if m.citations == nil {
		m.citations = make(map[string]struct{})
	}
	for i := range ids {
		m.citations[ids[i]] = struct{}{}
	}
}

// ClearCitations clears the "citations" edge to the IncidentCitation entity.
func (m *IncidentMutation) ClearCitations() {
	m.clearedcitations = true
}

// CitationsCleared reports if the "citations" edge to the IncidentCitation entity was cleared.
func (m *IncidentMutation) CitationsCleared() bool {
	return m.clearedcitations
}

// RemoveCitationIDs removes the "citations" edge to the IncidentCitation entity by IDs.
func (m *IncidentMutation) RemoveCitationIDs(ids ...string) {
	if m.removedcitations == nil {
		m.removedcitations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.citations, ids[i])
		m.removedcitations[ids[i]] = struct{}{}
	}
}

// RemovedCitations returns the removed IDs of the "citations" edge to the IncidentCitation entity.
func (m *IncidentMutation) RemovedCitationsIDs() (ids []string) {
	for id := range m.removedcitations {
		ids = append(ids, id)
	}
	return
}

// CitationsIDs returns the "citations" edge IDs in the mutation.
func (m *IncidentMutation) CitationsIDs() (ids []string) {
	for id := range m.citations {
		ids = append(ids, id)
	}
	return
}

// ResetCitations resets all changes to the "citations" edge.
func (m *IncidentMutation) ResetCitations() {
	m.citations = nil
	m.clearedcitations = false
	m.removedcitations = nil
}

// AddSuggestionIDs adds the "suggestions" edge to the IncidentSuggestion entity by ids.
func (m *IncidentMutation) AddSuggestionIDs(ids ...string) {
	if m.suggestions == nil {
		m.suggestions = make(map[string]struct{})
	}
	for i := range ids {
		m.suggestions[ids[i]] = struct{}{}
	}
}

// ClearSuggestions clears the "suggestions" edge to the IncidentSuggestion entity.
func (m *IncidentMutation) ClearSuggestions() {
	m.clearedsuggestions = true
}

// SuggestionsCleared reports if the "suggestions" edge to the IncidentSuggestion entity was cleared.
func (m *IncidentMutation) SuggestionsCleared() bool {
	return m.clearedsuggestions
}

// RemoveSuggestionIDs removes the "suggestions" edge to the IncidentSuggestion entity by IDs.
func (m *IncidentMutation) RemoveSuggestionIDs(ids ...string) {
	if m.removedsuggestions == nil {
		m.removedsuggestions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.suggestions, ids[i])
		m.removedsuggestions[ids[i]] = struct{}{}
	}
}

// RemovedSuggestions returns the removed IDs of the "suggestions" edge to the IncidentSuggestion entity.
func (m *IncidentMutation) RemovedSuggestionsIDs() (ids []string) {
	for id := range m.removedsuggestions {
		ids = append(ids, id)
	}
	return
}

// SuggestionsIDs returns the "suggestions" edge IDs in the mutation.
func (m *IncidentMutation) SuggestionsIDs() (ids []string) {
	for id := range m.suggestions {
		ids = append(ids, id)
	}
	return
}

// ResetSuggestions resets all changes to the "suggestions" edge.
func (m *IncidentMutation) ResetSuggestions() {
	m.suggestions = nil
	m.clearedsuggestions = false
	m.removedsuggestions = nil
}

// AddChatSessionIDs adds the "chat_sessions" edge to the ChatSession entity by ids.
func (m *IncidentMutation) AddChatSessionIDs(ids ...string) {
	if m.chat_sessions == nil {
		m.chat_sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.chat_sessions[ids[i]] = struct{}{}
	}
}

// ClearChatSessions clears the "chat_sessions" edge to the ChatSession entity.
func (m *IncidentMutation) ClearChatSessions() {
	m.clearedchat_sessions = true
}

// ChatSessionsCleared reports if the "chat_sessions" edge to the ChatSession entity was cleared.
func (m *IncidentMutation) ChatSessionsCleared() bool {
	return m.clearedchat_sessions
}

// RemoveChatSessionIDs removes the "chat_sessions" edge to the ChatSession entity by IDs.
func (m *IncidentMutation) RemoveChatSessionIDs(ids ...string) {
	if m.removedchat_sessions == nil {
		m.removedchat_sessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chat_sessions, ids[i])
		m.removedchat_sessions[ids[i]] = struct{}{}
	}
}

// RemovedChatSessions returns the removed IDs of the "chat_sessions" edge to the ChatSession entity.
func (m *IncidentMutation) RemovedChatSessionsIDs() (ids []string) {
	for id := range m.removedchat_sessions {
		ids = append(ids, id)
	}
	return
}

// ChatSessionsIDs returns the "chat_sessions" edge IDs in the mutation.
func (m *IncidentMutation) ChatSessionsIDs() (ids []string) {
	for id := range m.chat_sessions {
		ids = append(ids, id)
	}
	return
}

// ResetChatSessions resets all changes to the "chat_sessions" edge.
func (m *IncidentMutation) ResetChatSessions() {
	m.chat_sessions = nil
	m.clearedchat_sessions = false
	m.removedchat_sessions = nil
}

// Where appends a list predicates to the IncidentMutation builder.
func (m *IncidentMutation) Where(ps ...predicate.Incident) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IncidentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IncidentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Incident, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IncidentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IncidentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Incident).
func (m *IncidentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IncidentMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.user_id != nil {
		fields = append(fields, incident.FieldUserID)
	}
	if m.source_type != nil {
		fields = append(fields, incident.FieldSourceType)
	}
	if m.source_alert_id != nil {
		fields = append(fields, incident.FieldSourceAlertID)
	}
	if m.status != nil {
		fields = append(fields, incident.FieldStatus)
	}
	if m.aurora_status != nil {
		fields = append(fields, incident.FieldAuroraStatus)
	}
	if m.severity != nil {
		fields = append(fields, incident.FieldSeverity)
	}
	if m.alert_title != nil {
		fields = append(fields, incident.FieldAlertTitle)
	}
	if m.alert_service != nil {
		fields = append(fields, incident.FieldAlertService)
	}
	if m.affected_services != nil {
		fields = append(fields, incident.FieldAffectedServices)
	}
	if m.correlated_alert_count != nil {
		fields = append(fields, incident.FieldCorrelatedAlertCount)
	}
	if m.aurora_summary != nil {
		fields = append(fields, incident.FieldAuroraSummary)
	}
	if m.aurora_chat_session_id != nil {
		fields = append(fields, incident.FieldAuroraChatSessionID)
	}
	if m.active_tab != nil {
		fields = append(fields, incident.FieldActiveTab)
	}
	if m.alert_metadata != nil {
		fields = append(fields, incident.FieldAlertMetadata)
	}
	if m.merged_into_incident_id != nil {
		fields = append(fields, incident.FieldMergedIntoIncidentID)
	}
	if m.slack_message_ts != nil {
		fields = append(fields, incident.FieldSlackMessageTs)
	}
	if m.started_at != nil {
		fields = append(fields, incident.FieldStartedAt)
	}
	if m.created_at != nil {
		fields = append(fields, incident.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, incident.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IncidentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case incident.FieldUserID:
		return m.UserID()
	case incident.FieldSourceType:
		return m.SourceType()
	case incident.FieldSourceAlertID:
		return m.SourceAlertID()
	case incident.FieldStatus:
		return m.Status()
	case incident.FieldAuroraStatus:
		return m.AuroraStatus()
	case incident.FieldSeverity:
		return m.Severity()
	case incident.FieldAlertTitle:
		return m.AlertTitle()
	case incident.FieldAlertService:
		return m.AlertService()
	case incident.FieldAffectedServices:
		return m.AffectedServices()
	case incident.FieldCorrelatedAlertCount:
		return m.CorrelatedAlertCount()
	case incident.FieldAuroraSummary:
		return m.AuroraSummary()
	case incident.FieldAuroraChatSessionID:
		return m.AuroraChatSessionID()
	case incident.FieldActiveTab:
		return m.ActiveTab()
	case incident.FieldAlertMetadata:
		return m.AlertMetadata()
	case incident.FieldMergedIntoIncidentID:
		return m.MergedIntoIncidentID()
	case incident.FieldSlackMessageTs:
		return m.SlackMessageTs()
	case incident.FieldStartedAt:
		return m.StartedAt()
	case incident.FieldCreatedAt:
		return m.CreatedAt()
	case incident.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IncidentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case incident.FieldUserID:
		return m.OldUserID(ctx)
	case incident.FieldSourceType:
		return m.OldSourceType(ctx)
	case incident.FieldSourceAlertID:
		return m.OldSourceAlertID(ctx)
	case incident.FieldStatus:
		return m.OldStatus(ctx)
	case incident.FieldAuroraStatus:
		return m.OldAuroraStatus(ctx)
	case incident.FieldSeverity:
		return m.OldSeverity(ctx)
	case incident.FieldAlertTitle:
		return m.OldAlertTitle(ctx)
	case incident.FieldAlertService:
		return m.OldAlertService(ctx)
	case incident.FieldAffectedServices:
		return m.OldAffectedServices(ctx)
	case incident.FieldCorrelatedAlertCount:
		return m.OldCorrelatedAlertCount(ctx)
	case incident.FieldAuroraSummary:
		return m.OldAuroraSummary(ctx)
	case incident.FieldAuroraChatSessionID:
		return m.OldAuroraChatSessionID(ctx)
	case incident.FieldActiveTab:
		return m.OldActiveTab(ctx)
	case incident.FieldAlertMetadata:
		return m.OldAlertMetadata(ctx)
	case incident.FieldMergedIntoIncidentID:
		return m.OldMergedIntoIncidentID(ctx)
	case incident.FieldSlackMessageTs:
		return m.OldSlackMessageTs(ctx)
	case incident.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case incident.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case incident.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Incident field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case incident.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case incident.FieldSourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case incident.FieldSourceAlertID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceAlertID(v)
		return nil
	case incident.FieldStatus:
		v, ok := value.(incident.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case incident.FieldAuroraStatus:
		v, ok := value.(incident.AuroraStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuroraStatus(v)
		return nil
	case incident.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case incident.FieldAlertTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertTitle(v)
		return nil
	case incident.FieldAlertService:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertService(v)
		return nil
	case incident.FieldAffectedServices:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffectedServices(v)
		return nil
	case incident.FieldCorrelatedAlertCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelatedAlertCount(v)
		return nil
	case incident.FieldAuroraSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuroraSummary(v)
		return nil
	case incident.FieldAuroraChatSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuroraChatSessionID(v)
		return nil
	case incident.FieldActiveTab:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveTab(v)
		return nil
	case incident.FieldAlertMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertMetadata(v)
		return nil
	case incident.FieldMergedIntoIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMergedIntoIncidentID(v)
		return nil
	case incident.FieldSlackMessageTs:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlackMessageTs(v)
		return nil
	case incident.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case incident.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case incident.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Incident field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IncidentMutation) AddedFields() []string {
	var fields []string
	if m.addcorrelated_alert_count != nil {
		fields = append(fields, incident.FieldCorrelatedAlertCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IncidentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case incident.FieldCorrelatedAlertCount:
		return m.AddedCorrelatedAlertCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case incident.FieldCorrelatedAlertCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrelatedAlertCount(v)
		return nil
	}
	return fmt.Errorf("unknown Incident numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IncidentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(incident.FieldAlertService) {
		fields = append(fields, incident.FieldAlertService)
	}
	if m.FieldCleared(incident.FieldAffectedServices) {
		fields = append(fields, incident.FieldAffectedServices)
	}
	if m.FieldCleared(incident.FieldAuroraSummary) {
		fields = append(fields, incident.FieldAuroraSummary)
	}
	if m.FieldCleared(incident.FieldAuroraChatSessionID) {
		fields = append(fields, incident.FieldAuroraChatSessionID)
	}
	if m.FieldCleared(incident.FieldActiveTab) {
		fields = append(fields, incident.FieldActiveTab)
	}
	if m.FieldCleared(incident.FieldAlertMetadata) {
		fields = append(fields, incident.FieldAlertMetadata)
	}
	if m.FieldCleared(incident.FieldMergedIntoIncidentID) {
		fields = append(fields, incident.FieldMergedIntoIncidentID)
	}
	if m.FieldCleared(incident.FieldSlackMessageTs) {
		fields = append(fields, incident.FieldSlackMessageTs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IncidentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IncidentMutation) ClearField(name string) error {
	switch name {
	case incident.FieldAlertService:
		m.ClearAlertService()
		return nil
	case incident.FieldAffectedServices:
		m.ClearAffectedServices()
		return nil
	case incident.FieldAuroraSummary:
		m.ClearAuroraSummary()
		return nil
	case incident.FieldAuroraChatSessionID:
		m.ClearAuroraChatSessionID()
		return nil
	case incident.FieldActiveTab:
		m.ClearActiveTab()
		return nil
	case incident.FieldAlertMetadata:
		m.ClearAlertMetadata()
		return nil
	case incident.FieldMergedIntoIncidentID:
		m.ClearMergedIntoIncidentID()
		return nil
	case incident.FieldSlackMessageTs:
		m.ClearSlackMessageTs()
		return nil
	}
	return fmt.Errorf("unknown Incident nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IncidentMutation) ResetField(name string) error {
	switch name {
	case incident.FieldUserID:
		m.ResetUserID()
		return nil
	case incident.FieldSourceType:
		m.ResetSourceType()
		return nil
	case incident.FieldSourceAlertID:
		m.ResetSourceAlertID()
		return nil
	case incident.FieldStatus:
		m.ResetStatus()
		return nil
	case incident.FieldAuroraStatus:
		m.ResetAuroraStatus()
		return nil
	case incident.FieldSeverity:
		m.ResetSeverity()
		return nil
	case incident.FieldAlertTitle:
		m.ResetAlertTitle()
		return nil
	case incident.FieldAlertService:
		m.ResetAlertService()
		return nil
	case incident.FieldAffectedServices:
		m.ResetAffectedServices()
		return nil
	case incident.FieldCorrelatedAlertCount:
		m.ResetCorrelatedAlertCount()
		return nil
	case incident.FieldAuroraSummary:
		m.ResetAuroraSummary()
		return nil
	case incident.FieldAuroraChatSessionID:
		m.ResetAuroraChatSessionID()
		return nil
	case incident.FieldActiveTab:
		m.ResetActiveTab()
		return nil
	case incident.FieldAlertMetadata:
		m.ResetAlertMetadata()
		return nil
	case incident.FieldMergedIntoIncidentID:
		m.ResetMergedIntoIncidentID()
		return nil
	case incident.FieldSlackMessageTs:
		m.ResetSlackMessageTs()
		return nil
	case incident.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case incident.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case incident.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Incident field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IncidentMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.alerts != nil {
		edges = append(edges, incident.EdgeAlerts)
	}
	if m.thoughts != nil {
		edges = append(edges, incident.EdgeThoughts)
	}
	if m.citations != nil {
		edges = append(edges, incident.EdgeCitations)
	}
	if m.suggestions != nil {
		edges = append(edges, incident.EdgeSuggestions)
	}
	if m.chat_sessions != nil {
		edges = append(edges, incident.EdgeChatSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IncidentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case incident.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.alerts))
		for id := range m.alerts {
			ids = append(ids, id)
		}
		return ids
	case incident.EdgeThoughts:
		ids := make([]ent.Value, 0, len(m.thoughts))
		for id := range m.thoughts {
			ids = append(ids, id)
		}
		return ids
	case incident.EdgeCitations:
		ids := make([]ent.Value, 0, len(m.citations))
		for id := range m.citations {
			ids = append(ids, id)
		}
		return ids
	case incident.EdgeSuggestions:
		ids := make([]ent.Value, 0, len(m.suggestions))
		for id := range m.suggestions {
			ids = append(ids, id)
		}
		return ids
	case incident.EdgeChatSessions:
		ids := make([]ent.Value, 0, len(m.chat_sessions))
		for id := range m.chat_sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IncidentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedalerts != nil {
		edges = append(edges, incident.EdgeAlerts)
	}
	if m.removedthoughts != nil {
		edges = append(edges, incident.EdgeThoughts)
	}
	if m.removedcitations != nil {
		edges = append(edges, incident.EdgeCitations)
	}
	if m.removedsuggestions != nil {
		edges = append(edges, incident.EdgeSuggestions)
	}
	if m.removedchat_sessions != nil {
		edges = append(edges, incident.EdgeChatSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IncidentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case incident.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.removedalerts))
		for id := range m.removedalerts {
			ids = append(ids, id)
		}
		return ids
	case incident.EdgeThoughts:
		ids := make([]ent.Value, 0, len(m.removedthoughts))
		for id := range m.removedthoughts {
			ids = append(ids, id)
		}
		return ids
	case incident.EdgeCitations:
		ids := make([]ent.Value, 0, len(m.removedcitations))
		for id := range m.removedcitations {
			ids = append(ids, id)
		}
		return ids
	case incident.EdgeSuggestions:
		ids := make([]ent.Value, 0, len(m.removedsuggestions))
		for id := range m.removedsuggestions {
			ids = append(ids, id)
		}
		return ids
	case incident.EdgeChatSessions:
		ids := make([]ent.Value, 0, len(m.removedchat_sessions))
		for id := range m.removedchat_sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IncidentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedalerts {
		edges = append(edges, incident.EdgeAlerts)
	}
	if m.clearedthoughts {
		edges = append(edges, incident.EdgeThoughts)
	}
	if m.clearedcitations {
		edges = append(edges, incident.EdgeCitations)
	}
	if m.clearedsuggestions {
		edges = append(edges, incident.EdgeSuggestions)
	}
	if m.clearedchat_sessions {
		edges = append(edges, incident.EdgeChatSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IncidentMutation) EdgeCleared(name string) bool {
	switch name {
	case incident.EdgeAlerts:
		return m.clearedalerts
	case incident.EdgeThoughts:
		return m.clearedthoughts
	case incident.EdgeCitations:
		return m.clearedcitations
	case incident.EdgeSuggestions:
		return m.clearedsuggestions
	case incident.EdgeChatSessions:
		return m.clearedchat_sessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IncidentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Incident unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IncidentMutation) ResetEdge(name string) error {
	switch name {
	case incident.EdgeAlerts:
		m.ResetAlerts()
		return nil
	case incident.EdgeThoughts:
		m.ResetThoughts()
		return nil
	case incident.EdgeCitations:
		m.ResetCitations()
		return nil
	case incident.EdgeSuggestions:
		m.ResetSuggestions()
		return nil
	case incident.EdgeChatSessions:
		m.ResetChatSessions()
		return nil
	}
	return fmt.Errorf("unknown Incident edge %s", name)
}

// IncidentAlertMutation represents an operation that mutates the IncidentAlert nodes in the graph.
type IncidentAlertMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	alert_event_id       *string
	user_id              *string
	correlation_strategy *incidentalert.CorrelationStrategy
	correlation_score    *float64
	addcorrelation_score *float64
	correlation_details  *map[string]interface{}
	received_at          *time.Time
	clearedFields        map[string]struct{}
	incident             *string
	clearedincident      bool
	done                 bool
	oldValue             func(context.Context) (*IncidentAlert, error)
	predicates           []predicate.IncidentAlert
}

var _ ent.Mutation = (*IncidentAlertMutation)(nil)

// incidentalertOption allows management of the mutation configuration using functional options.
type incidentalertOption func(*IncidentAlertMutation)

// newIncidentAlertMutation creates new mutation for the IncidentAlert entity.
func newIncidentAlertMutation(c config, op Op, opts ...incidentalertOption) *IncidentAlertMutation {
	m := &IncidentAlertMutation{
		config:        c,
		op:            op,
		typ:           TypeIncidentAlert,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIncidentAlertID sets the ID field of the mutation.
func withIncidentAlertID(id string) incidentalertOption {
	return func(m *IncidentAlertMutation) {
		var (
			err   error
			once  sync.Once
			value *IncidentAlert
		)
		m.oldValue = func(ctx context.Context) (*IncidentAlert, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IncidentAlert.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIncidentAlert sets the old IncidentAlert of the mutation.
func withIncidentAlert(node *IncidentAlert) incidentalertOption {
	return func(m *IncidentAlertMutation) {
		m.oldValue = func(context.Context) (*IncidentAlert, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IncidentAlertMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IncidentAlertMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IncidentAlert entities.
func (m *IncidentAlertMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IncidentAlertMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IncidentAlertMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IncidentAlert.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIncidentID sets the "incident_id" field.
func (m *IncidentAlertMutation) SetIncidentID(s string) {
	m.incident = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *IncidentAlertMutation) IncidentID() (r string, exists bool) {
	v := m.incident
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the IncidentAlert entity.
// If the IncidentAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentAlertMutation) OldIncidentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *IncidentAlertMutation) ResetIncidentID() {
	m.incident = nil
}

// SetAlertEventID sets the "alert_event_id" field.
func (m *IncidentAlertMutation) SetAlertEventID(s string) {
	m.alert_event_id = &s
}

// AlertEventID returns the value of the "alert_event_id" field in the mutation.
func (m *IncidentAlertMutation) AlertEventID() (r string, exists bool) {
	v := m.alert_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertEventID returns the old "alert_event_id" field's value of the IncidentAlert entity.
// If the IncidentAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentAlertMutation) OldAlertEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertEventID: %w", err)
	}
	return oldValue.AlertEventID, nil
}

// ResetAlertEventID resets all changes to the "alert_event_id" field.
func (m *IncidentAlertMutation) ResetAlertEventID() {
	m.alert_event_id = nil
}

// SetUserID sets the "user_id" field.
func (m *IncidentAlertMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *IncidentAlertMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the IncidentAlert entity.
// If the IncidentAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentAlertMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *IncidentAlertMutation) ResetUserID() {
	m.user_id = nil
}

// SetCorrelationStrategy sets the "correlation_strategy" field.
func (m *IncidentAlertMutation) SetCorrelationStrategy(is incidentalert.CorrelationStrategy) {
	m.correlation_strategy = &is
}

// CorrelationStrategy returns the value of the "correlation_strategy" field in the mutation.
func (m *IncidentAlertMutation) CorrelationStrategy() (r incidentalert.CorrelationStrategy, exists bool) {
	v := m.correlation_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationStrategy returns the old "correlation_strategy" field's value of the IncidentAlert entity.
// If the IncidentAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentAlertMutation) OldCorrelationStrategy(ctx context.Context) (v incidentalert.CorrelationStrategy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationStrategy: %w", err)
	}
	return oldValue.CorrelationStrategy, nil
}

// ResetCorrelationStrategy resets all changes to the "correlation_strategy" field.
func (m *IncidentAlertMutation) ResetCorrelationStrategy() {
	m.correlation_strategy = nil
}

// SetCorrelationScore sets the "correlation_score" field.
func (m *IncidentAlertMutation) SetCorrelationScore(f float64) {
	m.correlation_score = &f
	m.addcorrelation_score = nil
}

// CorrelationScore returns the value of the "correlation_score" field in the mutation.
func (m *IncidentAlertMutation) CorrelationScore() (r float64, exists bool) {
	v := m.correlation_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationScore returns the old "correlation_score" field's value of the IncidentAlert entity.
// If the IncidentAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentAlertMutation) OldCorrelationScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationScore: %w", err)
	}
	return oldValue.CorrelationScore, nil
}

// AddCorrelationScore adds f to the "correlation_score" field.
func (m *IncidentAlertMutation) AddCorrelationScore(f float64) {
	if m.addcorrelation_score != nil {
		*m.addcorrelation_score += f
	} else {
		m.addcorrelation_score = &f
	}
}

// AddedCorrelationScore returns the value that was added to the "correlation_score" field in this mutation.
func (m *IncidentAlertMutation) AddedCorrelationScore() (r float64, exists bool) {
	v := m.addcorrelation_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrelationScore resets all changes to the "correlation_score" field.
func (m *IncidentAlertMutation) ResetCorrelationScore() {
	m.correlation_score = nil
	m.addcorrelation_score = nil
}

// SetCorrelationDetails sets the "correlation_details" field.
func (m *IncidentAlertMutation) SetCorrelationDetails(value map[string]interface{}) {
	m.correlation_details = &value
}

// CorrelationDetails returns the value of the "correlation_details" field in the mutation.
func (m *IncidentAlertMutation) CorrelationDetails() (r map[string]interface{}, exists bool) {
	v := m.correlation_details
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationDetails returns the old "correlation_details" field's value of the IncidentAlert entity.
// If the IncidentAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentAlertMutation) OldCorrelationDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationDetails: %w", err)
	}
	return oldValue.CorrelationDetails, nil
}

// ClearCorrelationDetails clears the value of the "correlation_details" field.
func (m *IncidentAlertMutation) ClearCorrelationDetails() {
	m.correlation_details = nil
	m.clearedFields[incidentalert.FieldCorrelationDetails] = struct{}{}
}

// CorrelationDetailsCleared returns if the "correlation_details" field was cleared in this mutation.
func (m *IncidentAlertMutation) CorrelationDetailsCleared() bool {
	_, ok := m.clearedFields[incidentalert.FieldCorrelationDetails]
	return ok
}

// ResetCorrelationDetails resets all changes to the "correlation_details" field.
func (m *IncidentAlertMutation) ResetCorrelationDetails() {
	m.correlation_details = nil
	delete(m.clearedFields, incidentalert.FieldCorrelationDetails)
}

// SetReceivedAt sets the "received_at" field.
func (m *IncidentAlertMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *IncidentAlertMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the IncidentAlert entity.
// If the IncidentAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentAlertMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *IncidentAlertMutation) ResetReceivedAt() {
	m.received_at = nil
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (m *IncidentAlertMutation) ClearIncident() {
	m.clearedincident = true
	m.clearedFields[incidentalert.FieldIncidentID] = struct{}{}
}

// IncidentCleared reports if the "incident" edge to the Incident entity was cleared.
func (m *IncidentAlertMutation) IncidentCleared() bool {
	return m.clearedincident
}

// IncidentIDs returns the "incident" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IncidentID instead. It exists only for internal usage by the builders.
func (m *IncidentAlertMutation) IncidentIDs() (ids []string) {
	if id := m.incident; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIncident resets all changes to the "incident" edge.
func (m *IncidentAlertMutation) ResetIncident() {
	m.incident = nil
	m.clearedincident = false
}

// Where appends a list predicates to the IncidentAlertMutation builder.
func (m *IncidentAlertMutation) Where(ps ...predicate.IncidentAlert) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IncidentAlertMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IncidentAlertMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IncidentAlert, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IncidentAlertMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IncidentAlertMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IncidentAlert).
func (m *IncidentAlertMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IncidentAlertMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.incident != nil {
		fields = append(fields, incidentalert.FieldIncidentID)
	}
	if m.alert_event_id != nil {
		fields = append(fields, incidentalert.FieldAlertEventID)
	}
	if m.user_id != nil {
		fields = append(fields, incidentalert.FieldUserID)
	}
	if m.correlation_strategy != nil {
		fields = append(fields, incidentalert.FieldCorrelationStrategy)
	}
	if m.correlation_score != nil {
		fields = append(fields, incidentalert.FieldCorrelationScore)
	}
	if m.correlation_details != nil {
		fields = append(fields, incidentalert.FieldCorrelationDetails)
	}
	if m.received_at != nil {
		fields = append(fields, incidentalert.FieldReceivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IncidentAlertMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case incidentalert.FieldIncidentID:
		return m.IncidentID()
	case incidentalert.FieldAlertEventID:
		return m.AlertEventID()
	case incidentalert.FieldUserID:
		return m.UserID()
	case incidentalert.FieldCorrelationStrategy:
		return m.CorrelationStrategy()
	case incidentalert.FieldCorrelationScore:
		return m.CorrelationScore()
	case incidentalert.FieldCorrelationDetails:
		return m.CorrelationDetails()
	case incidentalert.FieldReceivedAt:
		return m.ReceivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IncidentAlertMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case incidentalert.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case incidentalert.FieldAlertEventID:
		return m.OldAlertEventID(ctx)
	case incidentalert.FieldUserID:
		return m.OldUserID(ctx)
	case incidentalert.FieldCorrelationStrategy:
		return m.OldCorrelationStrategy(ctx)
	case incidentalert.FieldCorrelationScore:
		return m.OldCorrelationScore(ctx)
	case incidentalert.FieldCorrelationDetails:
		return m.OldCorrelationDetails(ctx)
	case incidentalert.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IncidentAlert field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentAlertMutation) SetField(name string, value ent.Value) error {
	switch name {
	case incidentalert.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case incidentalert.FieldAlertEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertEventID(v)
		return nil
	case incidentalert.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case incidentalert.FieldCorrelationStrategy:
		v, ok := value.(incidentalert.CorrelationStrategy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationStrategy(v)
		return nil
	case incidentalert.FieldCorrelationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationScore(v)
		return nil
	case incidentalert.FieldCorrelationDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationDetails(v)
		return nil
	case incidentalert.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IncidentAlert field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IncidentAlertMutation) AddedFields() []string {
	var fields []string
	if m.addcorrelation_score != nil {
		fields = append(fields, incidentalert.FieldCorrelationScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IncidentAlertMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case incidentalert.FieldCorrelationScore:
		return m.AddedCorrelationScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentAlertMutation) AddField(name string, value ent.Value) error {
	switch name {
	case incidentalert.FieldCorrelationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrelationScore(v)
		return nil
	}
	return fmt.Errorf("unknown IncidentAlert numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IncidentAlertMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(incidentalert.FieldCorrelationDetails) {
		fields = append(fields, incidentalert.FieldCorrelationDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IncidentAlertMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IncidentAlertMutation) ClearField(name string) error {
	switch name {
	case incidentalert.FieldCorrelationDetails:
		m.ClearCorrelationDetails()
		return nil
	}
	return fmt.Errorf("unknown IncidentAlert nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IncidentAlertMutation) ResetField(name string) error {
	switch name {
	case incidentalert.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case incidentalert.FieldAlertEventID:
		m.ResetAlertEventID()
		return nil
	case incidentalert.FieldUserID:
		m.ResetUserID()
		return nil
	case incidentalert.FieldCorrelationStrategy:
		m.ResetCorrelationStrategy()
		return nil
	case incidentalert.FieldCorrelationScore:
		m.ResetCorrelationScore()
		return nil
	case incidentalert.FieldCorrelationDetails:
		m.ResetCorrelationDetails()
		return nil
	case incidentalert.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	}
	return fmt.Errorf("unknown IncidentAlert field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IncidentAlertMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.incident != nil {
		edges = append(edges, incidentalert.EdgeIncident)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IncidentAlertMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case incidentalert.EdgeIncident:
		if id := m.incident; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IncidentAlertMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IncidentAlertMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IncidentAlertMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedincident {
		edges = append(edges, incidentalert.EdgeIncident)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IncidentAlertMutation) EdgeCleared(name string) bool {
	switch name {
	case incidentalert.EdgeIncident:
		return m.clearedincident
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IncidentAlertMutation) ClearEdge(name string) error {
	switch name {
	case incidentalert.EdgeIncident:
		m.ClearIncident()
		return nil
	}
	return fmt.Errorf("unknown IncidentAlert unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IncidentAlertMutation) ResetEdge(name string) error {
	switch name {
	case incidentalert.EdgeIncident:
		m.ResetIncident()
		return nil
	}
	return fmt.Errorf("unknown IncidentAlert edge %s", name)
}

// IncidentCitationMutation represents an operation that mutates the IncidentCitation nodes in the graph.
type IncidentCitationMutation struct {
	config
	op              Op
	typ             string
	id              *string
	user_id         *string
	citation_key    *string
	tool_name       *string
	command         *string
	output          *string
	executed_at     *time.Time
	clearedFields   map[string]struct{}
	incident        *string
	clearedincident bool
	done            bool
	oldValue        func(context.Context) (*IncidentCitation, error)
	predicates      []predicate.IncidentCitation
}

var _ ent.Mutation = (*IncidentCitationMutation)(nil)

// incidentcitationOption allows management of the mutation configuration using functional options.
type incidentcitationOption func(*IncidentCitationMutation)

// newIncidentCitationMutation creates new mutation for the IncidentCitation entity.
func newIncidentCitationMutation(c config, op Op, opts ...incidentcitationOption) *IncidentCitationMutation {
	m := &IncidentCitationMutation{
		config:        c,
		op:            op,
		typ:           TypeIncidentCitation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIncidentCitationID sets the ID field of the mutation.
func withIncidentCitationID(id string) incidentcitationOption {
	return func(m *IncidentCitationMutation) {
		var (
			err   error
			once  sync.Once
			value *IncidentCitation
		)
		m.oldValue = func(ctx context.Context) (*IncidentCitation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IncidentCitation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIncidentCitation sets the old IncidentCitation of the mutation.
func withIncidentCitation(node *IncidentCitation) incidentcitationOption {
	return func(m *IncidentCitationMutation) {
		m.oldValue = func(context.Context) (*IncidentCitation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IncidentCitationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IncidentCitationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IncidentCitation entities.
func (m *IncidentCitationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IncidentCitationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IncidentCitationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IncidentCitation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIncidentID sets the "incident_id" field.
func (m *IncidentCitationMutation) SetIncidentID(s string) {
	m.incident = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *IncidentCitationMutation) IncidentID() (r string, exists bool) {
	v := m.incident
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the IncidentCitation entity.
// If the IncidentCitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentCitationMutation) OldIncidentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *IncidentCitationMutation) ResetIncidentID() {
	m.incident = nil
}

// SetUserID sets the "user_id" field.
func (m *IncidentCitationMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *IncidentCitationMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the IncidentCitation entity.
// If the IncidentCitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentCitationMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *IncidentCitationMutation) ResetUserID() {
	m.user_id = nil
}

// SetCitationKey sets the "citation_key" field.
func (m *IncidentCitationMutation) SetCitationKey(s string) {
	m.citation_key = &s
}

// CitationKey returns the value of the "citation_key" field in the mutation.
func (m *IncidentCitationMutation) CitationKey() (r string, exists bool) {
	v := m.citation_key
	if v == nil {
		return
	}
	return *v, true
}

// OldCitationKey returns the old "citation_key" field's value of the IncidentCitation entity.
// If the IncidentCitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentCitationMutation) OldCitationKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCitationKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCitationKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCitationKey: %w", err)
	}
	return oldValue.CitationKey, nil
}

// ResetCitationKey resets all changes to the "citation_key" field.
func (m *IncidentCitationMutation) ResetCitationKey() {
	m.citation_key = nil
}

// SetToolName sets the "tool_name" field.
func (m *IncidentCitationMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *IncidentCitationMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the IncidentCitation entity.
// If the IncidentCitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentCitationMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *IncidentCitationMutation) ResetToolName() {
	m.tool_name = nil
}

// SetCommand sets the "command" field.
func (m *IncidentCitationMutation) SetCommand(s string) {
	m.command = &s
}

// Command returns the value of the "command" field in the mutation.
func (m *IncidentCitationMutation) Command() (r string, exists bool) {
	v := m.command
	if v == nil {
		return
	}
	return *v, true
}

// OldCommand returns the old "command" field's value of the IncidentCitation entity.
// If the IncidentCitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentCitationMutation) OldCommand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommand: %w", err)
	}
	return oldValue.Command, nil
}

// ClearCommand clears the value of the "command" field.
func (m *IncidentCitationMutation) ClearCommand() {
	m.command = nil
	m.clearedFields[incidentcitation.FieldCommand] = struct{}{}
}

// CommandCleared returns if the "command" field was cleared in this mutation.
func (m *IncidentCitationMutation) CommandCleared() bool {
	_, ok := m.clearedFields[incidentcitation.FieldCommand]
	return ok
}

// ResetCommand resets all changes to the "command" field.
func (m *IncidentCitationMutation) ResetCommand() {
	m.command = nil
	delete(m.clearedFields, incidentcitation.FieldCommand)
}

// SetOutput sets the "output" field.
func (m *IncidentCitationMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *IncidentCitationMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the IncidentCitation entity.
// If the IncidentCitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentCitationMutation) OldOutput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *IncidentCitationMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[incidentcitation.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *IncidentCitationMutation) OutputCleared() bool {
	_, ok := m.clearedFields[incidentcitation.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *IncidentCitationMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, incidentcitation.FieldOutput)
}

// SetExecutedAt sets the "executed_at" field.
func (m *IncidentCitationMutation) SetExecutedAt(t time.Time) {
	m.executed_at = &t
}

// ExecutedAt returns the value of the "executed_at" field in the mutation.
func (m *IncidentCitationMutation) ExecutedAt() (r time.Time, exists bool) {
	v := m.executed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutedAt returns the old "executed_at" field's value of the IncidentCitation entity.
// If the IncidentCitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentCitationMutation) OldExecutedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutedAt: %w", err)
	}
	return oldValue.ExecutedAt, nil
}

// ResetExecutedAt resets all changes to the "executed_at" field.
func (m *IncidentCitationMutation) ResetExecutedAt() {
	m.executed_at = nil
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (m *IncidentCitationMutation) ClearIncident() {
	m.clearedincident = true
	m.clearedFields[incidentcitation.FieldIncidentID] = struct{}{}
}

// IncidentCleared reports if the "incident" edge to the Incident entity was cleared.
func (m *IncidentCitationMutation) IncidentCleared() bool {
	return m.clearedincident
}

// IncidentIDs returns the "incident" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IncidentID instead. It exists only for internal usage by the builders.
func (m *IncidentCitationMutation) IncidentIDs() (ids []string) {
	if id := m.incident; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIncident resets all changes to the "incident" edge.
func (m *IncidentCitationMutation) ResetIncident() {
	m.incident = nil
	m.clearedincident = false
}

// Where appends a list predicates to the IncidentCitationMutation builder.
func (m *IncidentCitationMutation) Where(ps ...predicate.IncidentCitation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IncidentCitationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IncidentCitationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IncidentCitation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IncidentCitationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IncidentCitationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IncidentCitation).
func (m *IncidentCitationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IncidentCitationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.incident != nil {
		fields = append(fields, incidentcitation.FieldIncidentID)
	}
	if m.user_id != nil {
		fields = append(fields, incidentcitation.FieldUserID)
	}
	if m.citation_key != nil {
		fields = append(fields, incidentcitation.FieldCitationKey)
	}
	if m.tool_name != nil {
		fields = append(fields, incidentcitation.FieldToolName)
	}
	if m.command != nil {
		fields = append(fields, incidentcitation.FieldCommand)
	}
	if m.output != nil {
		fields = append(fields, incidentcitation.FieldOutput)
	}
	if m.executed_at != nil {
		fields = append(fields, incidentcitation.FieldExecutedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IncidentCitationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case incidentcitation.FieldIncidentID:
		return m.IncidentID()
	case incidentcitation.FieldUserID:
		return m.UserID()
	case incidentcitation.FieldCitationKey:
		return m.CitationKey()
	case incidentcitation.FieldToolName:
		return m.ToolName()
	case incidentcitation.FieldCommand:
		return m.Command()
	case incidentcitation.FieldOutput:
		return m.Output()
	case incidentcitation.FieldExecutedAt:
		return m.ExecutedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IncidentCitationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case incidentcitation.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case incidentcitation.FieldUserID:
		return m.OldUserID(ctx)
	case incidentcitation.FieldCitationKey:
		return m.OldCitationKey(ctx)
	case incidentcitation.FieldToolName:
		return m.OldToolName(ctx)
	case incidentcitation.FieldCommand:
		return m.OldCommand(ctx)
	case incidentcitation.FieldOutput:
		return m.OldOutput(ctx)
	case incidentcitation.FieldExecutedAt:
		return m.OldExecutedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IncidentCitation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentCitationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case incidentcitation.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case incidentcitation.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case incidentcitation.FieldCitationKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCitationKey(v)
		return nil
	case incidentcitation.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case incidentcitation.FieldCommand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommand(v)
		return nil
	case incidentcitation.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case incidentcitation.FieldExecutedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IncidentCitation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IncidentCitationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IncidentCitationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentCitationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown IncidentCitation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IncidentCitationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(incidentcitation.FieldCommand) {
		fields = append(fields, incidentcitation.FieldCommand)
	}
	if m.FieldCleared(incidentcitation.FieldOutput) {
		fields = append(fields, incidentcitation.FieldOutput)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IncidentCitationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IncidentCitationMutation) ClearField(name string) error {
	switch name {
	case incidentcitation.FieldCommand:
		m.ClearCommand()
		return nil
	case incidentcitation.FieldOutput:
		m.ClearOutput()
		return nil
	}
	return fmt.Errorf("unknown IncidentCitation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IncidentCitationMutation) ResetField(name string) error {
	switch name {
	case incidentcitation.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case incidentcitation.FieldUserID:
		m.ResetUserID()
		return nil
	case incidentcitation.FieldCitationKey:
		m.ResetCitationKey()
		return nil
	case incidentcitation.FieldToolName:
		m.ResetToolName()
		return nil
	case incidentcitation.FieldCommand:
		m.ResetCommand()
		return nil
	case incidentcitation.FieldOutput:
		m.ResetOutput()
		return nil
	case incidentcitation.FieldExecutedAt:
		m.ResetExecutedAt()
		return nil
	}
	return fmt.Errorf("unknown IncidentCitation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IncidentCitationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.incident != nil {
		edges = append(edges, incidentcitation.EdgeIncident)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IncidentCitationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case incidentcitation.EdgeIncident:
		if id := m.incident; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IncidentCitationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IncidentCitationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IncidentCitationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedincident {
		edges = append(edges, incidentcitation.EdgeIncident)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IncidentCitationMutation) EdgeCleared(name string) bool {
	switch name {
	case incidentcitation.EdgeIncident:
		return m.clearedincident
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IncidentCitationMutation) ClearEdge(name string) error {
	switch name {
	case incidentcitation.EdgeIncident:
		m.ClearIncident()
		return nil
	}
	return fmt.Errorf("unknown IncidentCitation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IncidentCitationMutation) ResetEdge(name string) error {
	switch name {
	case incidentcitation.EdgeIncident:
		m.ResetIncident()
		return nil
	}
	return fmt.Errorf("unknown IncidentCitation edge %s", name)
}

// IncidentSuggestionMutation represents an operation that mutates the IncidentSuggestion nodes in the graph.
type IncidentSuggestionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	user_id          *string
	suggestion_type  *incidentsuggestion.SuggestionType
	risk             *string
	title            *string
	description      *string
	command          *string
	file_path        *string
	original_code    *string
	suggested_code   *string
	user_edited_code *string
	repo             *string
	pr_url           *string
	pr_number        *int
	addpr_number     *int
	created_branch   *string
	applied_at       *time.Time
	created_at       *time.Time
	clearedFields    map[string]struct{}
	incident         *string
	clearedincident  bool
	done             bool
	oldValue         func(context.Context) (*IncidentSuggestion, error)
	predicates       []predicate.IncidentSuggestion
}

var _ ent.Mutation = (*IncidentSuggestionMutation)(nil)

// incidentsuggestionOption allows management of the mutation configuration using functional options.
type incidentsuggestionOption func(*IncidentSuggestionMutation)

// newIncidentSuggestionMutation creates new mutation for the IncidentSuggestion entity.
func newIncidentSuggestionMutation(c config, op Op, opts ...incidentsuggestionOption) *IncidentSuggestionMutation {
	m := &IncidentSuggestionMutation{
		config:        c,
		op:            op,
		typ:           TypeIncidentSuggestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIncidentSuggestionID sets the ID field of the mutation.
func withIncidentSuggestionID(id string) incidentsuggestionOption {
	return func(m *IncidentSuggestionMutation) {
		var (
			err   error
			once  sync.Once
			value *IncidentSuggestion
		)
		m.oldValue = func(ctx context.Context) (*IncidentSuggestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IncidentSuggestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIncidentSuggestion sets the old IncidentSuggestion of the mutation.
func withIncidentSuggestion(node *IncidentSuggestion) incidentsuggestionOption {
	return func(m *IncidentSuggestionMutation) {
		m.oldValue = func(context.Context) (*IncidentSuggestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IncidentSuggestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IncidentSuggestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IncidentSuggestion entities.
func (m *IncidentSuggestionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IncidentSuggestionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IncidentSuggestionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IncidentSuggestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIncidentID sets the "incident_id" field.
func (m *IncidentSuggestionMutation) SetIncidentID(s string) {
	m.incident = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *IncidentSuggestionMutation) IncidentID() (r string, exists bool) {
	v := m.incident
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the IncidentSuggestion entity.
// If the IncidentSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentSuggestionMutation) OldIncidentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *IncidentSuggestionMutation) ResetIncidentID() {
	m.incident = nil
}

// SetUserID sets the "user_id" field.
func (m *IncidentSuggestionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *IncidentSuggestionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the IncidentSuggestion entity.
// If the IncidentSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentSuggestionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *IncidentSuggestionMutation) ResetUserID() {
	m.user_id = nil
}

// SetSuggestionType sets the "suggestion_type" field.
func (m *IncidentSuggestionMutation) SetSuggestionType(it incidentsuggestion.SuggestionType) {
	m.suggestion_type = &it
}

// SuggestionType returns the value of the "suggestion_type" field in the mutation.
func (m *IncidentSuggestionMutation) SuggestionType() (r incidentsuggestion.SuggestionType, exists bool) {
	v := m.suggestion_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestionType returns the old "suggestion_type" field's value of the IncidentSuggestion entity.
// If the IncidentSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentSuggestionMutation) OldSuggestionType(ctx context.Context) (v incidentsuggestion.SuggestionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestionType: %w", err)
	}
	return oldValue.SuggestionType, nil
}

// ResetSuggestionType resets all changes to the "suggestion_type" field.
func (m *IncidentSuggestionMutation) ResetSuggestionType() {
	m.suggestion_type = nil
}

// SetRisk sets the "risk" field.
func (m *IncidentSuggestionMutation) SetRisk(s string) {
	m.risk = &s
}

// Risk returns the value of the "risk" field in the mutation.
func (m *IncidentSuggestionMutation) Risk() (r string, exists bool) {
	v := m.risk
	if v == nil {
		return
	}
	return *v, true
}

// OldRisk returns the old "risk" field's value of the IncidentSuggestion entity.
// If the IncidentSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentSuggestionMutation) OldRisk(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRisk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRisk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRisk: %w", err)
	}
	return oldValue.Risk, nil
}

// ResetRisk resets all changes to the "risk" field.
func (m *IncidentSuggestionMutation) ResetRisk() {
	m.risk = nil
}

// SetTitle sets the "title" field.
func (m *IncidentSuggestionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *IncidentSuggestionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the IncidentSuggestion entity.
// If the IncidentSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentSuggestionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *IncidentSuggestionMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *IncidentSuggestionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *IncidentSuggestionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the IncidentSuggestion entity.
// If the IncidentSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentSuggestionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *IncidentSuggestionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[incidentsuggestion.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *IncidentSuggestionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[incidentsuggestion.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *IncidentSuggestionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, incidentsuggestion.FieldDescription)
}

// SetCommand sets the "command" field.
func (m *IncidentSuggestionMutation) SetCommand(s string) {
	m.command = &s
}

// Command returns the value of the "command" field in the mutation.
func (m *IncidentSuggestionMutation) Command() (r string, exists bool) {
	v := m.command
	if v == nil {
		return
	}
	return *v, true
}

// OldCommand returns the old "command" field's value of the IncidentSuggestion entity.
// If the IncidentSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentSuggestionMutation) OldCommand(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommand: %w", err)
	}
	return oldValue.Command, nil
}

// ClearCommand clears the value of the "command" field.
func (m *IncidentSuggestionMutation) ClearCommand() {
	m.command = nil
	m.clearedFields[incidentsuggestion.FieldCommand] = struct{}{}
}

// CommandCleared returns if the "command" field was cleared in this mutation.
func (m *IncidentSuggestionMutation) CommandCleared() bool {
	_, ok := m.clearedFields[incidentsuggestion.FieldCommand]
	return ok
}

// ResetCommand resets all changes to the "command" field.
func (m *IncidentSuggestionMutation) ResetCommand() {
	m.command = nil
	delete(m.clearedFields, incidentsuggestion.FieldCommand)
}

// SetFilePath sets the "file_path" field.
func (m *IncidentSuggestionMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *IncidentSuggestionMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the IncidentSuggestion entity.
// If the IncidentSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentSuggestionMutation) OldFilePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ClearFilePath clears the value of the "file_path" field.
func (m *IncidentSuggestionMutation) ClearFilePath() {
	m.file_path = nil
	m.clearedFields[incidentsuggestion.FieldFilePath] = struct{}{}
}

// FilePathCleared returns if the "file_path" field was cleared in this mutation.
func (m *IncidentSuggestionMutation) FilePathCleared() bool {
	_, ok := m.clearedFields[incidentsuggestion.FieldFilePath]
	return ok
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *IncidentSuggestionMutation) ResetFilePath() {
	m.file_path = nil
	delete(m.clearedFields, incidentsuggestion.FieldFilePath)
}

// SetOriginalCode sets the "original_code" field.
func (m *IncidentSuggestionMutation) SetOriginalCode(s string) {
	m.original_code = &s
}

// OriginalCode returns the value of the "original_code" field in the mutation.
func (m *IncidentSuggestionMutation) OriginalCode() (r string, exists bool) {
	v := m.original_code
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalCode returns the old "original_code" field's value of the IncidentSuggestion entity.
// If the IncidentSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentSuggestionMutation) OldOriginalCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalCode: %w", err)
	}
	return oldValue.OriginalCode, nil
}

// ClearOriginalCode clears the value of the "original_code" field.
func (m *IncidentSuggestionMutation) ClearOriginalCode() {
	m.original_code = nil
	m.clearedFields[incidentsuggestion.FieldOriginalCode] = struct{}{}
}

// OriginalCodeCleared returns if the "original_code" field was cleared in this mutation.
func (m *IncidentSuggestionMutation) OriginalCodeCleared() bool {
	_, ok := m.clearedFields[incidentsuggestion.FieldOriginalCode]
	return ok
}

// ResetOriginalCode resets all changes to the "original_code" field.
func (m *IncidentSuggestionMutation) ResetOriginalCode() {
	m.original_code = nil
	delete(m.clearedFields, incidentsuggestion.FieldOriginalCode)
}

// SetSuggestedCode sets the "suggested_code" field.
func (m *IncidentSuggestionMutation) SetSuggestedCode(s string) {
	m.suggested_code = &s
}

// SuggestedCode returns the value of the "suggested_code" field in the mutation.
func (m *IncidentSuggestionMutation) SuggestedCode() (r string, exists bool) {
	v := m.suggested_code
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestedCode returns the old "suggested_code" field's value of the IncidentSuggestion entity.
// If the IncidentSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentSuggestionMutation) OldSuggestedCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestedCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestedCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestedCode: %w", err)
	}
	return oldValue.SuggestedCode, nil
}

// ClearSuggestedCode clears the value of the "suggested_code" field.
func (m *IncidentSuggestionMutation) ClearSuggestedCode() {
	m.suggested_code = nil
	m.clearedFields[incidentsuggestion.FieldSuggestedCode] = struct{}{}
}

// SuggestedCodeCleared returns if the "suggested_code" field was cleared in this mutation.
func (m *IncidentSuggestionMutation) SuggestedCodeCleared() bool {
	_, ok := m.clearedFields[incidentsuggestion.FieldSuggestedCode]
	return ok
}

// ResetSuggestedCode resets all changes to the "suggested_code" field.
func (m *IncidentSuggestionMutation) ResetSuggestedCode() {
	m.suggested_code = nil
	delete(m.clearedFields, incidentsuggestion.FieldSuggestedCode)
}

// SetUserEditedCode sets the "user_edited_code" field.
func (m *IncidentSuggestionMutation) SetUserEditedCode(s string) {
	m.user_edited_code = &s
}

// UserEditedCode returns the value of the "user_edited_code" field in the mutation.
func (m *IncidentSuggestionMutation) UserEditedCode() (r string, exists bool) {
	v := m.user_edited_code
	if v == nil {
		return
	}
	return *v, true
}

// OldUserEditedCode returns the old "user_edited_code" field's value of the IncidentSuggestion entity.
// If the IncidentSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentSuggestionMutation) OldUserEditedCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserEditedCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserEditedCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserEditedCode: %w", err)
	}
	return oldValue.UserEditedCode, nil
}

// ClearUserEditedCode clears the value of the "user_edited_code" field.
func (m *IncidentSuggestionMutation) ClearUserEditedCode() {
	m.user_edited_code = nil
	m.clearedFields[incidentsuggestion.FieldUserEditedCode] = struct{}{}
}

// UserEditedCodeCleared returns if the "user_edited_code" field was cleared in this mutation.
func (m *IncidentSuggestionMutation) UserEditedCodeCleared() bool {
	_, ok := m.clearedFields[incidentsuggestion.FieldUserEditedCode]
	return ok
}

// ResetUserEditedCode resets all changes to the "user_edited_code" field.
func (m *IncidentSuggestionMutation) ResetUserEditedCode() {
	m.user_edited_code = nil
	delete(m.clearedFields, incidentsuggestion.FieldUserEditedCode)
}

// SetRepo sets the "repo" field.
func (m *IncidentSuggestionMutation) SetRepo(s string) {
	m.repo = &s
}

// Repo returns the value of the "repo" field in the mutation.
func (m *IncidentSuggestionMutation) Repo() (r string, exists bool) {
	v := m.repo
	if v == nil {
		return
	}
	return *v, true
}

// OldRepo returns the old "repo" field's value of the IncidentSuggestion entity.
// If the IncidentSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentSuggestionMutation) OldRepo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepo: %w", err)
	}
	return oldValue.Repo, nil
}

// ClearRepo clears the value of the "repo" field.
func (m *IncidentSuggestionMutation) ClearRepo() {
	m.repo = nil
	m.clearedFields[incidentsuggestion.FieldRepo] = struct{}{}
}

// RepoCleared returns if the "repo" field was cleared in this mutation.
func (m *IncidentSuggestionMutation) RepoCleared() bool {
	_, ok := m.clearedFields[incidentsuggestion.FieldRepo]
	return ok
}

// ResetRepo resets all changes to the "repo" field.
func (m *IncidentSuggestionMutation) ResetRepo() {
	m.repo = nil
	delete(m.clearedFields, incidentsuggestion.FieldRepo)
}

// SetPrURL sets the "pr_url" field.
func (m *IncidentSuggestionMutation) SetPrURL(s string) {
	m.pr_url = &s
}

// PrURL returns the value of the "pr_url" field in the mutation.
func (m *IncidentSuggestionMutation) PrURL() (r string, exists bool) {
	v := m.pr_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPrURL returns the old "pr_url" field's value of the IncidentSuggestion entity.
// If the IncidentSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentSuggestionMutation) OldPrURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrURL: %w", err)
	}
	return oldValue.PrURL, nil
}

// ClearPrURL clears the value of the "pr_url" field.
func (m *IncidentSuggestionMutation) ClearPrURL() {
	m.pr_url = nil
	m.clearedFields[incidentsuggestion.FieldPrURL] = struct{}{}
}

// PrURLCleared returns if the "pr_url" field was cleared in this mutation.
func (m *IncidentSuggestionMutation) PrURLCleared() bool {
	_, ok := m.clearedFields[incidentsuggestion.FieldPrURL]
	return ok
}

// ResetPrURL resets all changes to the "pr_url" field.
func (m *IncidentSuggestionMutation) ResetPrURL() {
	m.pr_url = nil
	delete(m.clearedFields, incidentsuggestion.FieldPrURL)
}

// SetPrNumber sets the "pr_number" field.
func (m *IncidentSuggestionMutation) SetPrNumber(i int) {
	m.pr_number = &i
	m.addpr_number = nil
}

// PrNumber returns the value of the "pr_number" field in the mutation.
func (m *IncidentSuggestionMutation) PrNumber() (r int, exists bool) {
	v := m.pr_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPrNumber returns the old "pr_number" field's value of the IncidentSuggestion entity.
// If the IncidentSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentSuggestionMutation) OldPrNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrNumber: %w", err)
	}
	return oldValue.PrNumber, nil
}

// AddPrNumber adds i to the "pr_number" field.
func (m *IncidentSuggestionMutation) AddPrNumber(i int) {
	if m.addpr_number != nil {
		*m.addpr_number += i
	} else {
		m.addpr_number = &i
	}
}

// AddedPrNumber returns the value that was added to the "pr_number" field in this mutation.
func (m *IncidentSuggestionMutation) AddedPrNumber() (r int, exists bool) {
	v := m.addpr_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearPrNumber clears the value of the "pr_number" field.
func (m *IncidentSuggestionMutation) ClearPrNumber() {
	m.pr_number = nil
	m.addpr_number = nil
	m.clearedFields[incidentsuggestion.FieldPrNumber] = struct{}{}
}

// PrNumberCleared returns if the "pr_number" field was cleared in this mutation.
func (m *IncidentSuggestionMutation) PrNumberCleared() bool {
	_, ok := m.clearedFields[incidentsuggestion.FieldPrNumber]
	return ok
}

// ResetPrNumber resets all changes to the "pr_number" field.
func (m *IncidentSuggestionMutation) ResetPrNumber() {
	m.pr_number = nil
	m.addpr_number = nil
	delete(m.clearedFields, incidentsuggestion.FieldPrNumber)
}

// SetCreatedBranch sets the "created_branch" field.
func (m *IncidentSuggestionMutation) SetCreatedBranch(s string) {
	m.created_branch = &s
}

// CreatedBranch returns the value of the "created_branch" field in the mutation.
func (m *IncidentSuggestionMutation) CreatedBranch() (r string, exists bool) {
	v := m.created_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBranch returns the old "created_branch" field's value of the IncidentSuggestion entity.
// If the IncidentSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentSuggestionMutation) OldCreatedBranch(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBranch: %w", err)
	}
	return oldValue.CreatedBranch, nil
}

// ClearCreatedBranch clears the value of the "created_branch" field.
func (m *IncidentSuggestionMutation) ClearCreatedBranch() {
	m.created_branch = nil
	m.clearedFields[incidentsuggestion.FieldCreatedBranch] = struct{}{}
}

// CreatedBranchCleared returns if the "created_branch" field was cleared in this mutation.
func (m *IncidentSuggestionMutation) CreatedBranchCleared() bool {
	_, ok := m.clearedFields[incidentsuggestion.FieldCreatedBranch]
	return ok
}

// ResetCreatedBranch resets all changes to the "created_branch" field.
func (m *IncidentSuggestionMutation) ResetCreatedBranch() {
	m.created_branch = nil
	delete(m.clearedFields, incidentsuggestion.FieldCreatedBranch)
}

// SetAppliedAt sets the "applied_at" field.
func (m *IncidentSuggestionMutation) SetAppliedAt(t time.Time) {
	m.applied_at = &t
}

// AppliedAt returns the value of the "applied_at" field in the mutation.
func (m *IncidentSuggestionMutation) AppliedAt() (r time.Time, exists bool) {
	v := m.applied_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliedAt returns the old "applied_at" field's value of the IncidentSuggestion entity.
// If the IncidentSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentSuggestionMutation) OldAppliedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliedAt: %w", err)
	}
	return oldValue.AppliedAt, nil
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (m *IncidentSuggestionMutation) ClearAppliedAt() {
	m.applied_at = nil
	m.clearedFields[incidentsuggestion.FieldAppliedAt] = struct{}{}
}

// AppliedAtCleared returns if the "applied_at" field was cleared in this mutation.
func (m *IncidentSuggestionMutation) AppliedAtCleared() bool {
	_, ok := m.clearedFields[incidentsuggestion.FieldAppliedAt]
	return ok
}

// ResetAppliedAt resets all changes to the "applied_at" field.
func (m *IncidentSuggestionMutation) ResetAppliedAt() {
	m.applied_at = nil
	delete(m.clearedFields, incidentsuggestion.FieldAppliedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *IncidentSuggestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IncidentSuggestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IncidentSuggestion entity.
// If the IncidentSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentSuggestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IncidentSuggestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (m *IncidentSuggestionMutation) ClearIncident() {
	m.clearedincident = true
	m.clearedFields[incidentsuggestion.FieldIncidentID] = struct{}{}
}

// IncidentCleared reports if the "incident" edge to the Incident entity was cleared.
func (m *IncidentSuggestionMutation) IncidentCleared() bool {
	return m.clearedincident
}

// IncidentIDs returns the "incident" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IncidentID instead. It exists only for internal usage by the builders.
func (m *IncidentSuggestionMutation) IncidentIDs() (ids []string) {
	if id := m.incident; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIncident resets all changes to the "incident" edge.
func (m *IncidentSuggestionMutation) ResetIncident() {
	m.incident = nil
	m.clearedincident = false
}

// Where appends a list predicates to the IncidentSuggestionMutation builder.
func (m *IncidentSuggestionMutation) Where(ps ...predicate.IncidentSuggestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IncidentSuggestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IncidentSuggestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IncidentSuggestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IncidentSuggestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IncidentSuggestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IncidentSuggestion).
func (m *IncidentSuggestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IncidentSuggestionMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.incident != nil {
		fields = append(fields, incidentsuggestion.FieldIncidentID)
	}
	if m.user_id != nil {
		fields = append(fields, incidentsuggestion.FieldUserID)
	}
	if m.suggestion_type != nil {
		fields = append(fields, incidentsuggestion.FieldSuggestionType)
	}
	if m.risk != nil {
		fields = append(fields, incidentsuggestion.FieldRisk)
	}
	if m.title != nil {
		fields = append(fields, incidentsuggestion.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, incidentsuggestion.FieldDescription)
	}
	if m.command != nil {
		fields = append(fields, incidentsuggestion.FieldCommand)
	}
	if m.file_path != nil {
		fields = append(fields, incidentsuggestion.FieldFilePath)
	}
	if m.original_code != nil {
		fields = append(fields, incidentsuggestion.FieldOriginalCode)
	}
	if m.suggested_code != nil {
		fields = append(fields, incidentsuggestion.FieldSuggestedCode)
	}
	if m.user_edited_code != nil {
		fields = append(fields, incidentsuggestion.FieldUserEditedCode)
	}
	if m.repo != nil {
		fields = append(fields, incidentsuggestion.FieldRepo)
	}
	if m.pr_url != nil {
		fields = append(fields, incidentsuggestion.FieldPrURL)
	}
	if m.pr_number != nil {
		fields = append(fields, incidentsuggestion.FieldPrNumber)
	}
	if m.created_branch != nil {
		fields = append(fields, incidentsuggestion.FieldCreatedBranch)
	}
	if m.applied_at != nil {
		fields = append(fields, incidentsuggestion.FieldAppliedAt)
	}
	if m.created_at != nil {
		fields = append(fields, incidentsuggestion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IncidentSuggestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case incidentsuggestion.FieldIncidentID:
		return m.IncidentID()
	case incidentsuggestion.FieldUserID:
		return m.UserID()
	case incidentsuggestion.FieldSuggestionType:
		return m.SuggestionType()
	case incidentsuggestion.FieldRisk:
		return m.Risk()
	case incidentsuggestion.FieldTitle:
		return m.Title()
	case incidentsuggestion.FieldDescription:
		return m.Description()
	case incidentsuggestion.FieldCommand:
		return m.Command()
	case incidentsuggestion.FieldFilePath:
		return m.FilePath()
	case incidentsuggestion.FieldOriginalCode:
		return m.OriginalCode()
	case incidentsuggestion.FieldSuggestedCode:
		return m.SuggestedCode()
	case incidentsuggestion.FieldUserEditedCode:
		return m.UserEditedCode()
	case incidentsuggestion.FieldRepo:
		return m.Repo()
	case incidentsuggestion.FieldPrURL:
		return m.PrURL()
	case incidentsuggestion.FieldPrNumber:
		return m.PrNumber()
	case incidentsuggestion.FieldCreatedBranch:
		return m.CreatedBranch()
	case incidentsuggestion.FieldAppliedAt:
		return m.AppliedAt()
	case incidentsuggestion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IncidentSuggestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case incidentsuggestion.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case incidentsuggestion.FieldUserID:
		return m.OldUserID(ctx)
	case incidentsuggestion.FieldSuggestionType:
		return m.OldSuggestionType(ctx)
	case incidentsuggestion.FieldRisk:
		return m.OldRisk(ctx)
	case incidentsuggestion.FieldTitle:
		return m.OldTitle(ctx)
	case incidentsuggestion.FieldDescription:
		return m.OldDescription(ctx)
	case incidentsuggestion.FieldCommand:
		return m.OldCommand(ctx)
	case incidentsuggestion.FieldFilePath:
		return m.OldFilePath(ctx)
	case incidentsuggestion.FieldOriginalCode:
		return m.OldOriginalCode(ctx)
	case incidentsuggestion.FieldSuggestedCode:
		return m.OldSuggestedCode(ctx)
	case incidentsuggestion.FieldUserEditedCode:
		return m.OldUserEditedCode(ctx)
	case incidentsuggestion.FieldRepo:
		return m.OldRepo(ctx)
	case incidentsuggestion.FieldPrURL:
		return m.OldPrURL(ctx)
	case incidentsuggestion.FieldPrNumber:
		return m.OldPrNumber(ctx)
	case incidentsuggestion.FieldCreatedBranch:
		return m.OldCreatedBranch(ctx)
	case incidentsuggestion.FieldAppliedAt:
		return m.OldAppliedAt(ctx)
	case incidentsuggestion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IncidentSuggestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentSuggestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case incidentsuggestion.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case incidentsuggestion.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case incidentsuggestion.FieldSuggestionType:
		v, ok := value.(incidentsuggestion.SuggestionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestionType(v)
		return nil
	case incidentsuggestion.FieldRisk:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRisk(v)
		return nil
	case incidentsuggestion.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case incidentsuggestion.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case incidentsuggestion.FieldCommand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommand(v)
		return nil
	case incidentsuggestion.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case incidentsuggestion.FieldOriginalCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalCode(v)
		return nil
	case incidentsuggestion.FieldSuggestedCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestedCode(v)
		return nil
	case incidentsuggestion.FieldUserEditedCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserEditedCode(v)
		return nil
	case incidentsuggestion.FieldRepo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepo(v)
		return nil
	case incidentsuggestion.FieldPrURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrURL(v)
		return nil
	case incidentsuggestion.FieldPrNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrNumber(v)
		return nil
	case incidentsuggestion.FieldCreatedBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBranch(v)
		return nil
	case incidentsuggestion.FieldAppliedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliedAt(v)
		return nil
	case incidentsuggestion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IncidentSuggestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IncidentSuggestionMutation) AddedFields() []string {
	var fields []string
	if m.addpr_number != nil {
		fields = append(fields, incidentsuggestion.FieldPrNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IncidentSuggestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case incidentsuggestion.FieldPrNumber:
		return m.AddedPrNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentSuggestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case incidentsuggestion.FieldPrNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrNumber(v)
		return nil
	}
	return fmt.Errorf("unknown IncidentSuggestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IncidentSuggestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(incidentsuggestion.FieldDescription) {
		fields = append(fields, incidentsuggestion.FieldDescription)
	}
	if m.FieldCleared(incidentsuggestion.FieldCommand) {
		fields = append(fields, incidentsuggestion.FieldCommand)
	}
	if m.FieldCleared(incidentsuggestion.FieldFilePath) {
		fields = append(fields, incidentsuggestion.FieldFilePath)
	}
	if m.FieldCleared(incidentsuggestion.FieldOriginalCode) {
		fields = append(fields, incidentsuggestion.FieldOriginalCode)
	}
	if m.FieldCleared(incidentsuggestion.FieldSuggestedCode) {
		fields = append(fields, incidentsuggestion.FieldSuggestedCode)
	}
	if m.FieldCleared(incidentsuggestion.FieldUserEditedCode) {
		fields = append(fields, incidentsuggestion.FieldUserEditedCode)
	}
	if m.FieldCleared(incidentsuggestion.FieldRepo) {
		fields = append(fields, incidentsuggestion.FieldRepo)
	}
	if m.FieldCleared(incidentsuggestion.FieldPrURL) {
		fields = append(fields, incidentsuggestion.FieldPrURL)
	}
	if m.FieldCleared(incidentsuggestion.FieldPrNumber) {
		fields = append(fields, incidentsuggestion.FieldPrNumber)
	}
	if m.FieldCleared(incidentsuggestion.FieldCreatedBranch) {
		fields = append(fields, incidentsuggestion.FieldCreatedBranch)
	}
	if m.FieldCleared(incidentsuggestion.FieldAppliedAt) {
		fields = append(fields, incidentsuggestion.FieldAppliedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IncidentSuggestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IncidentSuggestionMutation) ClearField(name string) error {
	switch name {
	case incidentsuggestion.FieldDescription:
		m.ClearDescription()
		return nil
	case incidentsuggestion.FieldCommand:
		m.ClearCommand()
		return nil
	case incidentsuggestion.FieldFilePath:
		m.ClearFilePath()
		return nil
	case incidentsuggestion.FieldOriginalCode:
		m.ClearOriginalCode()
		return nil
	case incidentsuggestion.FieldSuggestedCode:
		m.ClearSuggestedCode()
		return nil
	case incidentsuggestion.FieldUserEditedCode:
		m.ClearUserEditedCode()
		return nil
	case incidentsuggestion.FieldRepo:
		m.ClearRepo()
		return nil
	case incidentsuggestion.FieldPrURL:
		m.ClearPrURL()
		return nil
	case incidentsuggestion.FieldPrNumber:
		m.ClearPrNumber()
		return nil
	case incidentsuggestion.FieldCreatedBranch:
		m.ClearCreatedBranch()
		return nil
	case incidentsuggestion.FieldAppliedAt:
		m.ClearAppliedAt()
		return nil
	}
	return fmt.Errorf("unknown IncidentSuggestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IncidentSuggestionMutation) ResetField(name string) error {
	switch name {
	case incidentsuggestion.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case incidentsuggestion.FieldUserID:
		m.ResetUserID()
		return nil
	case incidentsuggestion.FieldSuggestionType:
		m.ResetSuggestionType()
		return nil
	case incidentsuggestion.FieldRisk:
		m.ResetRisk()
		return nil
	case incidentsuggestion.FieldTitle:
		m.ResetTitle()
		return nil
	case incidentsuggestion.FieldDescription:
		m.ResetDescription()
		return nil
	case incidentsuggestion.FieldCommand:
		m.ResetCommand()
		return nil
	case incidentsuggestion.FieldFilePath:
		m.ResetFilePath()
		return nil
	case incidentsuggestion.FieldOriginalCode:
		m.ResetOriginalCode()
		return nil
	case incidentsuggestion.FieldSuggestedCode:
		m.ResetSuggestedCode()
		return nil
	case incidentsuggestion.FieldUserEditedCode:
		m.ResetUserEditedCode()
		return nil
	case incidentsuggestion.FieldRepo:
		m.ResetRepo()
		return nil
	case incidentsuggestion.FieldPrURL:
		m.ResetPrURL()
		return nil
	case incidentsuggestion.FieldPrNumber:
		m.ResetPrNumber()
		return nil
	case incidentsuggestion.FieldCreatedBranch:
		m.ResetCreatedBranch()
		return nil
	case incidentsuggestion.FieldAppliedAt:
		m.ResetAppliedAt()
		return nil
	case incidentsuggestion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown IncidentSuggestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IncidentSuggestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.incident != nil {
		edges = append(edges, incidentsuggestion.EdgeIncident)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IncidentSuggestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case incidentsuggestion.EdgeIncident:
		if id := m.incident; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IncidentSuggestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IncidentSuggestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IncidentSuggestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedincident {
		edges = append(edges, incidentsuggestion.EdgeIncident)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IncidentSuggestionMutation) EdgeCleared(name string) bool {
	switch name {
	case incidentsuggestion.EdgeIncident:
		return m.clearedincident
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IncidentSuggestionMutation) ClearEdge(name string) error {
	switch name {
	case incidentsuggestion.EdgeIncident:
		m.ClearIncident()
		return nil
	}
	return fmt.Errorf("unknown IncidentSuggestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IncidentSuggestionMutation) ResetEdge(name string) error {
	switch name {
	case incidentsuggestion.EdgeIncident:
		m.ResetIncident()
		return nil
	}
	return fmt.Errorf("unknown IncidentSuggestion edge %s", name)
}

// IncidentThoughtMutation represents an operation that mutates the IncidentThought nodes in the graph.
type IncidentThoughtMutation struct {
	config
	op              Op
	typ             string
	id              *string
	user_id         *string
	thought_type    *string
	content         *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	incident        *string
	clearedincident bool
	done            bool
	oldValue        func(context.Context) (*IncidentThought, error)
	predicates      []predicate.IncidentThought
}

var _ ent.Mutation = (*IncidentThoughtMutation)(nil)

// incidentthoughtOption allows management of the mutation configuration using functional options.
type incidentthoughtOption func(*IncidentThoughtMutation)

// newIncidentThoughtMutation creates new mutation for the IncidentThought entity.
func newIncidentThoughtMutation(c config, op Op, opts ...incidentthoughtOption) *IncidentThoughtMutation {
	m := &IncidentThoughtMutation{
		config:        c,
		op:            op,
		typ:           TypeIncidentThought,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIncidentThoughtID sets the ID field of the mutation.
func withIncidentThoughtID(id string) incidentthoughtOption {
	return func(m *IncidentThoughtMutation) {
		var (
			err   error
			once  sync.Once
			value *IncidentThought
		)
		m.oldValue = func(ctx context.Context) (*IncidentThought, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IncidentThought.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIncidentThought sets the old IncidentThought of the mutation.
func withIncidentThought(node *IncidentThought) incidentthoughtOption {
	return func(m *IncidentThoughtMutation) {
		m.oldValue = func(context.Context) (*IncidentThought, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IncidentThoughtMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IncidentThoughtMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IncidentThought entities.
func (m *IncidentThoughtMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IncidentThoughtMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IncidentThoughtMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IncidentThought.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIncidentID sets the "incident_id" field.
func (m *IncidentThoughtMutation) SetIncidentID(s string) {
	m.incident = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *IncidentThoughtMutation) IncidentID() (r string, exists bool) {
	v := m.incident
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the IncidentThought entity.
// If the IncidentThought object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentThoughtMutation) OldIncidentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *IncidentThoughtMutation) ResetIncidentID() {
	m.incident = nil
}

// SetUserID sets the "user_id" field.
func (m *IncidentThoughtMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *IncidentThoughtMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the IncidentThought entity.
// If the IncidentThought object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentThoughtMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *IncidentThoughtMutation) ResetUserID() {
	m.user_id = nil
}

// SetThoughtType sets the "thought_type" field.
func (m *IncidentThoughtMutation) SetThoughtType(s string) {
	m.thought_type = &s
}

// ThoughtType returns the value of the "thought_type" field in the mutation.
func (m *IncidentThoughtMutation) ThoughtType() (r string, exists bool) {
	v := m.thought_type
	if v == nil {
		return
	}
	return *v, true
}

// OldThoughtType returns the old "thought_type" field's value of the IncidentThought entity.
// If the IncidentThought object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentThoughtMutation) OldThoughtType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThoughtType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThoughtType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThoughtType: %w", err)
	}
	return oldValue.ThoughtType, nil
}

// ResetThoughtType resets all changes to the "thought_type" field.
func (m *IncidentThoughtMutation) ResetThoughtType() {
	m.thought_type = nil
}

// SetContent sets the "content" field.
func (m *IncidentThoughtMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *IncidentThoughtMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the IncidentThought entity.
// If the IncidentThought object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentThoughtMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *IncidentThoughtMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IncidentThoughtMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IncidentThoughtMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IncidentThought entity.
// If the IncidentThought object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentThoughtMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IncidentThoughtMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (m *IncidentThoughtMutation) ClearIncident() {
	m.clearedincident = true
	m.clearedFields[incidentthought.FieldIncidentID] = struct{}{}
}

// IncidentCleared reports if the "incident" edge to the Incident entity was cleared.
func (m *IncidentThoughtMutation) IncidentCleared() bool {
	return m.clearedincident
}

// IncidentIDs returns the "incident" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IncidentID instead. It exists only for internal usage by the builders.
func (m *IncidentThoughtMutation) IncidentIDs() (ids []string) {
	if id := m.incident; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIncident resets all changes to the "incident" edge.
func (m *IncidentThoughtMutation) ResetIncident() {
	m.incident = nil
	m.clearedincident = false
}

// Where appends a list predicates to the IncidentThoughtMutation builder.
func (m *IncidentThoughtMutation) Where(ps ...predicate.IncidentThought) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IncidentThoughtMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IncidentThoughtMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IncidentThought, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IncidentThoughtMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IncidentThoughtMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IncidentThought).
func (m *IncidentThoughtMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IncidentThoughtMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.incident != nil {
		fields = append(fields, incidentthought.FieldIncidentID)
	}
	if m.user_id != nil {
		fields = append(fields, incidentthought.FieldUserID)
	}
	if m.thought_type != nil {
		fields = append(fields, incidentthought.FieldThoughtType)
	}
	if m.content != nil {
		fields = append(fields, incidentthought.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, incidentthought.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IncidentThoughtMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case incidentthought.FieldIncidentID:
		return m.IncidentID()
	case incidentthought.FieldUserID:
		return m.UserID()
	case incidentthought.FieldThoughtType:
		return m.ThoughtType()
	case incidentthought.FieldContent:
		return m.Content()
	case incidentthought.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IncidentThoughtMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case incidentthought.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case incidentthought.FieldUserID:
		return m.OldUserID(ctx)
	case incidentthought.FieldThoughtType:
		return m.OldThoughtType(ctx)
	case incidentthought.FieldContent:
		return m.OldContent(ctx)
	case incidentthought.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IncidentThought field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentThoughtMutation) SetField(name string, value ent.Value) error {
	switch name {
	case incidentthought.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case incidentthought.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case incidentthought.FieldThoughtType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThoughtType(v)
		return nil
	case incidentthought.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case incidentthought.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IncidentThought field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IncidentThoughtMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IncidentThoughtMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentThoughtMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown IncidentThought numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IncidentThoughtMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IncidentThoughtMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IncidentThoughtMutation) ClearField(name string) error {
	return fmt.Errorf("unknown IncidentThought nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IncidentThoughtMutation) ResetField(name string) error {
	switch name {
	case incidentthought.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case incidentthought.FieldUserID:
		m.ResetUserID()
		return nil
	case incidentthought.FieldThoughtType:
		m.ResetThoughtType()
		return nil
	case incidentthought.FieldContent:
		m.ResetContent()
		return nil
	case incidentthought.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown IncidentThought field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IncidentThoughtMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.incident != nil {
		edges = append(edges, incidentthought.EdgeIncident)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IncidentThoughtMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case incidentthought.EdgeIncident:
		if id := m.incident; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IncidentThoughtMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IncidentThoughtMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IncidentThoughtMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedincident {
		edges = append(edges, incidentthought.EdgeIncident)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IncidentThoughtMutation) EdgeCleared(name string) bool {
	switch name {
	case incidentthought.EdgeIncident:
		return m.clearedincident
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IncidentThoughtMutation) ClearEdge(name string) error {
	switch name {
	case incidentthought.EdgeIncident:
		m.ClearIncident()
		return nil
	}
	return fmt.Errorf("unknown IncidentThought unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IncidentThoughtMutation) ResetEdge(name string) error {
	switch name {
	case incidentthought.EdgeIncident:
		m.ResetIncident()
		return nil
	}
	return fmt.Errorf("unknown IncidentThought edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                Op
	typ               string
	id                *string
	user_id           *string
	kind              *string
	payload           *map[string]interface{}
	status            *task.Status
	incident_id       *string
	scheduled_at      *time.Time
	pod_id            *string
	attempts          *int
	addattempts       *int
	last_heartbeat_at *time.Time
	error_message     *string
	created_at        *time.Time
	completed_at      *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Task, error)
	predicates        []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TaskMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TaskMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TaskMutation) ResetUserID() {
	m.user_id = nil
}

// SetKind sets the "kind" field.
func (m *TaskMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *TaskMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *TaskMutation) ResetKind() {
	m.kind = nil
}

// SetPayload sets the "payload" field.
func (m *TaskMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *TaskMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *TaskMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[task.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *TaskMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[task.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *TaskMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, task.FieldPayload)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetIncidentID sets the "incident_id" field.
func (m *TaskMutation) SetIncidentID(s string) {
	m.incident_id = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *TaskMutation) IncidentID() (r string, exists bool) {
	v := m.incident_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldIncidentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ClearIncidentID clears the value of the "incident_id" field.
func (m *TaskMutation) ClearIncidentID() {
	m.incident_id = nil
	m.clearedFields[task.FieldIncidentID] = struct{}{}
}

// IncidentIDCleared returns if the "incident_id" field was cleared in this mutation.
func (m *TaskMutation) IncidentIDCleared() bool {
	_, ok := m.clearedFields[task.FieldIncidentID]
	return ok
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *TaskMutation) ResetIncidentID() {
	m.incident_id = nil
	delete(m.clearedFields, task.FieldIncidentID)
}

// SetScheduledAt sets the "scheduled_at" field.
func (m *TaskMutation) SetScheduledAt(t time.Time) {
	m.scheduled_at = &t
}

// ScheduledAt returns the value of the "scheduled_at" field in the mutation.
func (m *TaskMutation) ScheduledAt() (r time.Time, exists bool) {
	v := m.scheduled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledAt returns the old "scheduled_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldScheduledAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledAt: %w", err)
	}
	return oldValue.ScheduledAt, nil
}

// ResetScheduledAt resets all changes to the "scheduled_at" field.
func (m *TaskMutation) ResetScheduledAt() {
	m.scheduled_at = nil
}

// SetPodID sets the "pod_id" field.
func (m *TaskMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *TaskMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *TaskMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[task.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *TaskMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[task.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *TaskMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, task.FieldPodID)
}

// SetAttempts sets the "attempts" field.
func (m *TaskMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *TaskMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *TaskMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *TaskMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *TaskMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *TaskMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *TaskMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *TaskMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[task.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *TaskMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[task.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *TaskMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, task.FieldLastHeartbeatAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[task.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, task.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.user_id != nil {
		fields = append(fields, task.FieldUserID)
	}
	if m.kind != nil {
		fields = append(fields, task.FieldKind)
	}
	if m.payload != nil {
		fields = append(fields, task.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.incident_id != nil {
		fields = append(fields, task.FieldIncidentID)
	}
	if m.scheduled_at != nil {
		fields = append(fields, task.FieldScheduledAt)
	}
	if m.pod_id != nil {
		fields = append(fields, task.FieldPodID)
	}
	if m.attempts != nil {
		fields = append(fields, task.FieldAttempts)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, task.FieldLastHeartbeatAt)
	}
	if m.error_message != nil {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldUserID:
		return m.UserID()
	case task.FieldKind:
		return m.Kind()
	case task.FieldPayload:
		return m.Payload()
	case task.FieldStatus:
		return m.Status()
	case task.FieldIncidentID:
		return m.IncidentID()
	case task.FieldScheduledAt:
		return m.ScheduledAt()
	case task.FieldPodID:
		return m.PodID()
	case task.FieldAttempts:
		return m.Attempts()
	case task.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case task.FieldErrorMessage:
		return m.ErrorMessage()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldUserID:
		return m.OldUserID(ctx)
	case task.FieldKind:
		return m.OldKind(ctx)
	case task.FieldPayload:
		return m.OldPayload(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case task.FieldScheduledAt:
		return m.OldScheduledAt(ctx)
	case task.FieldPodID:
		return m.OldPodID(ctx)
	case task.FieldAttempts:
		return m.OldAttempts(ctx)
	case task.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case task.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case task.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case task.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case task.FieldScheduledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledAt(v)
		return nil
	case task.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case task.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case task.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case task.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, task.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldPayload) {
		fields = append(fields, task.FieldPayload)
	}
	if m.FieldCleared(task.FieldIncidentID) {
		fields = append(fields, task.FieldIncidentID)
	}
	if m.FieldCleared(task.FieldPodID) {
		fields = append(fields, task.FieldPodID)
	}
	if m.FieldCleared(task.FieldLastHeartbeatAt) {
		fields = append(fields, task.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(task.FieldErrorMessage) {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldPayload:
		m.ClearPayload()
		return nil
	case task.FieldIncidentID:
		m.ClearIncidentID()
		return nil
	case task.FieldPodID:
		m.ClearPodID()
		return nil
	case task.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case task.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldUserID:
		m.ResetUserID()
		return nil
	case task.FieldKind:
		m.ResetKind()
		return nil
	case task.FieldPayload:
		m.ResetPayload()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case task.FieldScheduledAt:
		m.ResetScheduledAt()
		return nil
	case task.FieldPodID:
		m.ResetPodID()
		return nil
	case task.FieldAttempts:
		m.ResetAttempts()
		return nil
	case task.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case task.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Task edge %s", name)
}
