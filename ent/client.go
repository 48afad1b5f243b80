// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/aurora-sre/aurora/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/aurora-sre/aurora/ent/alertevent"
	"github.com/aurora-sre/aurora/ent/chatsession"
	"github.com/aurora-sre/aurora/ent/event"
	"github.com/aurora-sre/aurora/ent/incident"
	"github.com/aurora-sre/aurora/ent/incidentalert"
	"github.com/aurora-sre/aurora/ent/incidentcitation"
	"github.com/aurora-sre/aurora/ent/incidentsuggestion"
	"github.com/aurora-sre/aurora/ent/incidentthought"
	"github.com/aurora-sre/aurora/ent/task"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AlertEvent is the client for interacting with the AlertEvent builders.
	AlertEvent *AlertEventClient
	// ChatSession is the client for interacting with the ChatSession builders.
	ChatSession *ChatSessionClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Incident is the client for interacting with the Incident builders.
	Incident *IncidentClient
	// IncidentAlert is the client for interacting with the IncidentAlert builders.
	IncidentAlert *IncidentAlertClient
	// IncidentCitation is the client for interacting with the IncidentCitation builders.
	IncidentCitation *IncidentCitationClient
	// IncidentSuggestion is the client for interacting with the IncidentSuggestion builders.
	IncidentSuggestion *IncidentSuggestionClient
	// IncidentThought is the client for interacting with the IncidentThought builders.
	IncidentThought *IncidentThoughtClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AlertEvent = NewAlertEventClient(c.config)
	c.ChatSession = NewChatSessionClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Incident = NewIncidentClient(c.config)
	c.IncidentAlert = NewIncidentAlertClient(c.config)
	c.IncidentCitation = NewIncidentCitationClient(c.config)
	c.IncidentSuggestion = NewIncidentSuggestionClient(c.config)
	c.IncidentThought = NewIncidentThoughtClient(c.config)
	c.Task = NewTaskClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		AlertEvent:         NewAlertEventClient(cfg),
		ChatSession:        NewChatSessionClient(cfg),
		Event:              NewEventClient(cfg),
		Incident:           NewIncidentClient(cfg),
		IncidentAlert:      NewIncidentAlertClient(cfg),
		IncidentCitation:   NewIncidentCitationClient(cfg),
		IncidentSuggestion: NewIncidentSuggestionClient(cfg),
		IncidentThought:    NewIncidentThoughtClient(cfg),
		Task:               NewTaskClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		AlertEvent:         NewAlertEventClient(cfg),
		ChatSession:        NewChatSessionClient(cfg),
		Event:              NewEventClient(cfg),
		Incident:           NewIncidentClient(cfg),
		IncidentAlert:      NewIncidentAlertClient(cfg),
		IncidentCitation:   NewIncidentCitationClient(cfg),
		IncidentSuggestion: NewIncidentSuggestionClient(cfg),
		IncidentThought:    NewIncidentThoughtClient(cfg),
		Task:               NewTaskClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AlertEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AlertEvent, c.ChatSession, c.Event, c.Incident, c.IncidentAlert,
		c.IncidentCitation, c.IncidentSuggestion, c.IncidentThought, c.Task,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AlertEvent, c.ChatSession, c.Event, c.Incident, c.IncidentAlert,
		c.IncidentCitation, c.IncidentSuggestion, c.IncidentThought, c.Task,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AlertEventMutation:
		return c.AlertEvent.mutate(ctx, m)
	case *ChatSessionMutation:
		return c.ChatSession.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *IncidentMutation:
		return c.Incident.mutate(ctx, m)
	case *IncidentAlertMutation:
		return c.IncidentAlert.mutate(ctx, m)
	case *IncidentCitationMutation:
		return c.IncidentCitation.mutate(ctx, m)
	case *IncidentSuggestionMutation:
		return c.IncidentSuggestion.mutate(ctx, m)
	case *IncidentThoughtMutation:
		return c.IncidentThought.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AlertEventClient is a client for the AlertEvent schema.
type AlertEventClient struct {
	config
}

// NewAlertEventClient returns a client for the AlertEvent from the given config.
func NewAlertEventClient(c config) *AlertEventClient {
	return &AlertEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `alertevent.Hooks(f(g(h())))`.
func (c *AlertEventClient) Use(hooks ...Hook) {
	c.hooks.AlertEvent = append(c.hooks.AlertEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `alertevent.Intercept(f(g(h())))`.
func (c *AlertEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AlertEvent = append(c.inters.AlertEvent, interceptors...)
}

// Create returns a builder for creating a AlertEvent entity.
func (c *AlertEventClient) Create() *AlertEventCreate {
	mutation := newAlertEventMutation(c.config, OpCreate)
	return &AlertEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AlertEvent entities.
func (c *AlertEventClient) CreateBulk(builders ...*AlertEventCreate) *AlertEventCreateBulk {
	return &AlertEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AlertEventClient) MapCreateBulk(slice any, setFunc func(*AlertEventCreate, int)) *AlertEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AlertEventCreateBulk{err: fmt.Errorf("calling to AlertEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AlertEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AlertEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AlertEvent.
func (c *AlertEventClient) Update() *AlertEventUpdate {
	mutation := newAlertEventMutation(c.config, OpUpdate)
	return &AlertEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AlertEventClient) UpdateOne(_m *AlertEvent) *AlertEventUpdateOne {
	mutation := newAlertEventMutation(c.config, OpUpdateOne, withAlertEvent(_m))
	return &AlertEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AlertEventClient) UpdateOneID(id string) *AlertEventUpdateOne {
	mutation := newAlertEventMutation(c.config, OpUpdateOne, withAlertEventID(id))
	return &AlertEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AlertEvent.
func (c *AlertEventClient) Delete() *AlertEventDelete {
	mutation := newAlertEventMutation(c.config, OpDelete)
	return &AlertEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AlertEventClient) DeleteOne(_m *AlertEvent) *AlertEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AlertEventClient) DeleteOneID(id string) *AlertEventDeleteOne {
	builder := c.Delete().Where(alertevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AlertEventDeleteOne{builder}
}

// Query returns a query builder for AlertEvent.
func (c *AlertEventClient) Query() *AlertEventQuery {
	return &AlertEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAlertEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AlertEvent entity by its id.
func (c *AlertEventClient) Get(ctx context.Context, id string) (*AlertEvent, error) {
	return c.Query().Where(alertevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AlertEventClient) GetX(ctx context.Context, id string) *AlertEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AlertEventClient) Hooks() []Hook {
	return c.hooks.AlertEvent
}

// Interceptors returns the client interceptors.
func (c *AlertEventClient) Interceptors() []Interceptor {
	return c.inters.AlertEvent
}

func (c *AlertEventClient) mutate(ctx context.Context, m *AlertEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AlertEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AlertEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AlertEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AlertEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AlertEvent mutation op: %q", m.Op())
	}
}

// ChatSessionClient is a client for the ChatSession schema.
type ChatSessionClient struct {
	config
}

// NewChatSessionClient returns a client for the ChatSession from the given config.
func NewChatSessionClient(c config) *ChatSessionClient {
	return &ChatSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatsession.Hooks(f(g(h())))`.
func (c *ChatSessionClient) Use(hooks ...Hook) {
	c.hooks.ChatSession = append(c.hooks.ChatSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatsession.Intercept(f(g(h())))`.
func (c *ChatSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatSession = append(c.inters.ChatSession, interceptors...)
}

// Create returns a builder for creating a ChatSession entity.
func (c *ChatSessionClient) Create() *ChatSessionCreate {
	mutation := newChatSessionMutation(c.config, OpCreate)
	return &ChatSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatSession entities.
func (c *ChatSessionClient) CreateBulk(builders ...*ChatSessionCreate) *ChatSessionCreateBulk {
	return &ChatSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatSessionClient) MapCreateBulk(slice any, setFunc func(*ChatSessionCreate, int)) *ChatSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatSessionCreateBulk{err: fmt.Errorf("calling to ChatSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatSession.
func (c *ChatSessionClient) Update() *ChatSessionUpdate {
	mutation := newChatSessionMutation(c.config, OpUpdate)
	return &ChatSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatSessionClient) UpdateOne(_m *ChatSession) *ChatSessionUpdateOne {
	mutation := newChatSessionMutation(c.config, OpUpdateOne, withChatSession(_m))
	return &ChatSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatSessionClient) UpdateOneID(id string) *ChatSessionUpdateOne {
	mutation := newChatSessionMutation(c.config, OpUpdateOne, withChatSessionID(id))
	return &ChatSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatSession.
func (c *ChatSessionClient) Delete() *ChatSessionDelete {
	mutation := newChatSessionMutation(c.config, OpDelete)
	return &ChatSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatSessionClient) DeleteOne(_m *ChatSession) *ChatSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatSessionClient) DeleteOneID(id string) *ChatSessionDeleteOne {
	builder := c.Delete().Where(chatsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatSessionDeleteOne{builder}
}

// Query returns a query builder for ChatSession.
func (c *ChatSessionClient) Query() *ChatSessionQuery {
	return &ChatSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatSession entity by its id.
func (c *ChatSessionClient) Get(ctx context.Context, id string) (*ChatSession, error) {
	return c.Query().Where(chatsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatSessionClient) GetX(ctx context.Context, id string) *ChatSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIncident queries the incident edge of a ChatSession.
func (c *ChatSessionClient) QueryIncident(_m *ChatSession) *IncidentQuery {
	query := (&IncidentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chatsession.Table, chatsession.FieldID, id),
			sqlgraph.To(incident.Table, incident.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chatsession.IncidentTable, chatsession.IncidentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChatSessionClient) Hooks() []Hook {
	return c.hooks.ChatSession
}

// Interceptors returns the client interceptors.
func (c *ChatSessionClient) Interceptors() []Interceptor {
	return c.inters.ChatSession
}

func (c *ChatSessionClient) mutate(ctx context.Context, m *ChatSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatSession mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// IncidentClient is a client for the Incident schema.
type IncidentClient struct {
	config
}

// NewIncidentClient returns a client for the Incident from the given config.
func NewIncidentClient(c config) *IncidentClient {
	return &IncidentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `incident.Hooks(f(g(h())))`.
func (c *IncidentClient) Use(hooks ...Hook) {
	c.hooks.Incident = append(c.hooks.Incident, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `incident.Intercept(f(g(h())))`.
func (c *IncidentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Incident = append(c.inters.Incident, interceptors...)
}

// Create returns a builder for creating a Incident entity.
func (c *IncidentClient) Create() *IncidentCreate {
	mutation := newIncidentMutation(c.config, OpCreate)
	return &IncidentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Incident entities.
func (c *IncidentClient) CreateBulk(builders ...*IncidentCreate) *IncidentCreateBulk {
	return &IncidentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IncidentClient) MapCreateBulk(slice any, setFunc func(*IncidentCreate, int)) *IncidentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IncidentCreateBulk{err: fmt.Errorf("calling to IncidentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IncidentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IncidentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Incident.
func (c *IncidentClient) Update() *IncidentUpdate {
	mutation := newIncidentMutation(c.config, OpUpdate)
	return &IncidentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IncidentClient) UpdateOne(_m *Incident) *IncidentUpdateOne {
	mutation := newIncidentMutation(c.config, OpUpdateOne, withIncident(_m))
	return &IncidentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IncidentClient) UpdateOneID(id string) *IncidentUpdateOne {
	mutation := newIncidentMutation(c.config, OpUpdateOne, withIncidentID(id))
	return &IncidentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Incident.
func (c *IncidentClient) Delete() *IncidentDelete {
	mutation := newIncidentMutation(c.config, OpDelete)
	return &IncidentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IncidentClient) DeleteOne(_m *Incident) *IncidentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IncidentClient) DeleteOneID(id string) *IncidentDeleteOne {
	builder := c.Delete().Where(incident.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IncidentDeleteOne{builder}
}

// Query returns a query builder for Incident.
func (c *IncidentClient) Query() *IncidentQuery {
	return &IncidentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIncident},
		inters: c.Interceptors(),
	}
}

// Get returns a Incident entity by its id.
func (c *IncidentClient) Get(ctx context.Context, id string) (*Incident, error) {
	return c.Query().Where(incident.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IncidentClient) GetX(ctx context.Context, id string) *Incident {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAlerts queries the alerts edge of a Incident.
func (c *IncidentClient) QueryAlerts(_m *Incident) *IncidentAlertQuery {
	query := (&IncidentAlertClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(incident.Table, incident.FieldID, id),
			sqlgraph.To(incidentalert.Table, incidentalert.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, incident.AlertsTable, incident.AlertsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryThoughts queries the thoughts edge of a Incident.
func (c *IncidentClient) QueryThoughts(_m *Incident) *IncidentThoughtQuery {
	query := (&IncidentThoughtClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(incident.Table, incident.FieldID, id),
			sqlgraph.To(incidentthought.Table, incidentthought.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, incident.ThoughtsTable, incident.ThoughtsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCitations queries the citations edge of a Incident.
func (c *IncidentClient) QueryCitations(_m *Incident) *IncidentCitationQuery {
	query := (&IncidentCitationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(incident.Table, incident.FieldID, id),
			sqlgraph.To(incidentcitation.Table, incidentcitation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, incident.CitationsTable, incident.CitationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySuggestions queries the suggestions edge of a Incident.
func (c *IncidentClient) QuerySuggestions(_m *Incident) *IncidentSuggestionQuery {
	query := (&IncidentSuggestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(incident.Table, incident.FieldID, id),
			sqlgraph.To(incidentsuggestion.Table, incidentsuggestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, incident.SuggestionsTable, incident.SuggestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChatSessions queries the chat_sessions edge of a Incident.
func (c *IncidentClient) QueryChatSessions(_m *Incident) *ChatSessionQuery {
	query := (&ChatSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(incident.Table, incident.FieldID, id),
			sqlgraph.To(chatsession.Table, chatsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, incident.ChatSessionsTable, incident.ChatSessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IncidentClient) Hooks() []Hook {
	return c.hooks.Incident
}

// Interceptors returns the client interceptors.
func (c *IncidentClient) Interceptors() []Interceptor {
	return c.inters.Incident
}

func (c *IncidentClient) mutate(ctx context.Context, m *IncidentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IncidentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IncidentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IncidentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IncidentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Incident mutation op: %q", m.Op())
	}
}

// IncidentAlertClient is a client for the IncidentAlert schema.
type IncidentAlertClient struct {
	config
}

// NewIncidentAlertClient returns a client for the IncidentAlert from the given config.
func NewIncidentAlertClient(c config) *IncidentAlertClient {
	return &IncidentAlertClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `incidentalert.Hooks(f(g(h())))`.
func (c *IncidentAlertClient) Use(hooks ...Hook) {
	c.hooks.IncidentAlert = append(c.hooks.IncidentAlert, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `incidentalert.Intercept(f(g(h())))`.
func (c *IncidentAlertClient) Intercept(interceptors ...Interceptor) {
	c.inters.IncidentAlert = append(c.inters.IncidentAlert, interceptors...)
}

// Create returns a builder for creating a IncidentAlert entity.
func (c *IncidentAlertClient) Create() *IncidentAlertCreate {
	mutation := newIncidentAlertMutation(c.config, OpCreate)
	return &IncidentAlertCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IncidentAlert entities.
func (c *IncidentAlertClient) CreateBulk(builders ...*IncidentAlertCreate) *IncidentAlertCreateBulk {
	return &IncidentAlertCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IncidentAlertClient) MapCreateBulk(slice any, setFunc func(*IncidentAlertCreate, int)) *IncidentAlertCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IncidentAlertCreateBulk{err: fmt.Errorf("calling to IncidentAlertClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IncidentAlertCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IncidentAlertCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IncidentAlert.
func (c *IncidentAlertClient) Update() *IncidentAlertUpdate {
	mutation := newIncidentAlertMutation(c.config, OpUpdate)
	return &IncidentAlertUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IncidentAlertClient) UpdateOne(_m *IncidentAlert) *IncidentAlertUpdateOne {
	mutation := newIncidentAlertMutation(c.config, OpUpdateOne, withIncidentAlert(_m))
	return &IncidentAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IncidentAlertClient) UpdateOneID(id string) *IncidentAlertUpdateOne {
	mutation := newIncidentAlertMutation(c.config, OpUpdateOne, withIncidentAlertID(id))
	return &IncidentAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IncidentAlert.
func (c *IncidentAlertClient) Delete() *IncidentAlertDelete {
	mutation := newIncidentAlertMutation(c.config, OpDelete)
	return &IncidentAlertDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IncidentAlertClient) DeleteOne(_m *IncidentAlert) *IncidentAlertDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IncidentAlertClient) DeleteOneID(id string) *IncidentAlertDeleteOne {
	builder := c.Delete().Where(incidentalert.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IncidentAlertDeleteOne{builder}
}

// Query returns a query builder for IncidentAlert.
func (c *IncidentAlertClient) Query() *IncidentAlertQuery {
	return &IncidentAlertQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIncidentAlert},
		inters: c.Interceptors(),
	}
}

// Get returns a IncidentAlert entity by its id.
func (c *IncidentAlertClient) Get(ctx context.Context, id string) (*IncidentAlert, error) {
	return c.Query().Where(incidentalert.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IncidentAlertClient) GetX(ctx context.Context, id string) *IncidentAlert {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIncident queries the incident edge of a IncidentAlert.
func (c *IncidentAlertClient) QueryIncident(_m *IncidentAlert) *IncidentQuery {
	query := (&IncidentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(incidentalert.Table, incidentalert.FieldID, id),
			sqlgraph.To(incident.Table, incident.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, incidentalert.IncidentTable, incidentalert.IncidentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IncidentAlertClient) Hooks() []Hook {
	return c.hooks.IncidentAlert
}

// Interceptors returns the client interceptors.
func (c *IncidentAlertClient) Interceptors() []Interceptor {
	return c.inters.IncidentAlert
}

func (c *IncidentAlertClient) mutate(ctx context.Context, m *IncidentAlertMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IncidentAlertCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IncidentAlertUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IncidentAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IncidentAlertDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IncidentAlert mutation op: %q", m.Op())
	}
}

// IncidentCitationClient is a client for the IncidentCitation schema.
type IncidentCitationClient struct {
	config
}

// NewIncidentCitationClient returns a client for the IncidentCitation from the given config.
func NewIncidentCitationClient(c config) *IncidentCitationClient {
	return &IncidentCitationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `incidentcitation.Hooks(f(g(h())))`.
func (c *IncidentCitationClient) Use(hooks ...Hook) {
	c.hooks.IncidentCitation = append(c.hooks.IncidentCitation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `incidentcitation.Intercept(f(g(h())))`.
func (c *IncidentCitationClient) Intercept(interceptors ...Interceptor) {
	c.inters.IncidentCitation = append(c.inters.IncidentCitation, interceptors...)
}

// Create returns a builder for creating a IncidentCitation entity.
func (c *IncidentCitationClient) Create() *IncidentCitationCreate {
	mutation := newIncidentCitationMutation(c.config, OpCreate)
	return &IncidentCitationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IncidentCitation entities.
func (c *IncidentCitationClient) CreateBulk(builders ...*IncidentCitationCreate) *IncidentCitationCreateBulk {
	return &IncidentCitationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IncidentCitationClient) MapCreateBulk(slice any, setFunc func(*IncidentCitationCreate, int)) *IncidentCitationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IncidentCitationCreateBulk{err: fmt.Errorf("calling to IncidentCitationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IncidentCitationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IncidentCitationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IncidentCitation.
func (c *IncidentCitationClient) Update() *IncidentCitationUpdate {
	mutation := newIncidentCitationMutation(c.config, OpUpdate)
	return &IncidentCitationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IncidentCitationClient) UpdateOne(_m *IncidentCitation) *IncidentCitationUpdateOne {
	mutation := newIncidentCitationMutation(c.config, OpUpdateOne, withIncidentCitation(_m))
	return &IncidentCitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IncidentCitationClient) UpdateOneID(id string) *IncidentCitationUpdateOne {
	mutation := newIncidentCitationMutation(c.config, OpUpdateOne, withIncidentCitationID(id))
	return &IncidentCitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IncidentCitation.
func (c *IncidentCitationClient) Delete() *IncidentCitationDelete {
	mutation := newIncidentCitationMutation(c.config, OpDelete)
	return &IncidentCitationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IncidentCitationClient) DeleteOne(_m *IncidentCitation) *IncidentCitationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IncidentCitationClient) DeleteOneID(id string) *IncidentCitationDeleteOne {
	builder := c.Delete().Where(incidentcitation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IncidentCitationDeleteOne{builder}
}

// Query returns a query builder for IncidentCitation.
func (c *IncidentCitationClient) Query() *IncidentCitationQuery {
	return &IncidentCitationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIncidentCitation},
		inters: c.Interceptors(),
	}
}

// Get returns a IncidentCitation entity by its id.
func (c *IncidentCitationClient) Get(ctx context.Context, id string) (*IncidentCitation, error) {
	return c.Query().Where(incidentcitation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IncidentCitationClient) GetX(ctx context.Context, id string) *IncidentCitation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIncident queries the incident edge of a IncidentCitation.
func (c *IncidentCitationClient) QueryIncident(_m *IncidentCitation) *IncidentQuery {
	query := (&IncidentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(incidentcitation.Table, incidentcitation.FieldID, id),
			sqlgraph.To(incident.Table, incident.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, incidentcitation.IncidentTable, incidentcitation.IncidentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IncidentCitationClient) Hooks() []Hook {
	return c.hooks.IncidentCitation
}

// Interceptors returns the client interceptors.
func (c *IncidentCitationClient) Interceptors() []Interceptor {
	return c.inters.IncidentCitation
}

func (c *IncidentCitationClient) mutate(ctx context.Context, m *IncidentCitationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IncidentCitationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IncidentCitationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IncidentCitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IncidentCitationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IncidentCitation mutation op: %q", m.Op())
	}
}

// IncidentSuggestionClient is a client for the IncidentSuggestion schema.
type IncidentSuggestionClient struct {
	config
}

// NewIncidentSuggestionClient returns a client for the IncidentSuggestion from the given config.
func NewIncidentSuggestionClient(c config) *IncidentSuggestionClient {
	return &IncidentSuggestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `incidentsuggestion.Hooks(f(g(h())))`.
func (c *IncidentSuggestionClient) Use(hooks ...Hook) {
	c.hooks.IncidentSuggestion = append(c.hooks.IncidentSuggestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `incidentsuggestion.Intercept(f(g(h())))`.
func (c *IncidentSuggestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.IncidentSuggestion = append(c.inters.IncidentSuggestion, interceptors...)
}

// Create returns a builder for creating a IncidentSuggestion entity.
func (c *IncidentSuggestionClient) Create() *IncidentSuggestionCreate {
	mutation := newIncidentSuggestionMutation(c.config, OpCreate)
	return &IncidentSuggestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IncidentSuggestion entities.
func (c *IncidentSuggestionClient) CreateBulk(builders ...*IncidentSuggestionCreate) *IncidentSuggestionCreateBulk {
	return &IncidentSuggestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IncidentSuggestionClient) MapCreateBulk(slice any, setFunc func(*IncidentSuggestionCreate, int)) *IncidentSuggestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IncidentSuggestionCreateBulk{err: fmt.Errorf("calling to IncidentSuggestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IncidentSuggestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IncidentSuggestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IncidentSuggestion.
func (c *IncidentSuggestionClient) Update() *IncidentSuggestionUpdate {
	mutation := newIncidentSuggestionMutation(c.config, OpUpdate)
	return &IncidentSuggestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IncidentSuggestionClient) UpdateOne(_m *IncidentSuggestion) *IncidentSuggestionUpdateOne {
	mutation := newIncidentSuggestionMutation(c.config, OpUpdateOne, withIncidentSuggestion(_m))
	return &IncidentSuggestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IncidentSuggestionClient) UpdateOneID(id string) *IncidentSuggestionUpdateOne {
	mutation := newIncidentSuggestionMutation(c.config, OpUpdateOne, withIncidentSuggestionID(id))
	return &IncidentSuggestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IncidentSuggestion.
func (c *IncidentSuggestionClient) Delete() *IncidentSuggestionDelete {
	mutation := newIncidentSuggestionMutation(c.config, OpDelete)
	return &IncidentSuggestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IncidentSuggestionClient) DeleteOne(_m *IncidentSuggestion) *IncidentSuggestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IncidentSuggestionClient) DeleteOneID(id string) *IncidentSuggestionDeleteOne {
	builder := c.Delete().Where(incidentsuggestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IncidentSuggestionDeleteOne{builder}
}

// Query returns a query builder for IncidentSuggestion.
func (c *IncidentSuggestionClient) Query() *IncidentSuggestionQuery {
	return &IncidentSuggestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIncidentSuggestion},
		inters: c.Interceptors(),
	}
}

// Get returns a IncidentSuggestion entity by its id.
func (c *IncidentSuggestionClient) Get(ctx context.Context, id string) (*IncidentSuggestion, error) {
	return c.Query().Where(incidentsuggestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IncidentSuggestionClient) GetX(ctx context.Context, id string) *IncidentSuggestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIncident queries the incident edge of a IncidentSuggestion.
func (c *IncidentSuggestionClient) QueryIncident(_m *IncidentSuggestion) *IncidentQuery {
	query := (&IncidentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(incidentsuggestion.Table, incidentsuggestion.FieldID, id),
			sqlgraph.To(incident.Table, incident.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, incidentsuggestion.IncidentTable, incidentsuggestion.IncidentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IncidentSuggestionClient) Hooks() []Hook {
	return c.hooks.IncidentSuggestion
}

// Interceptors returns the client interceptors.
func (c *IncidentSuggestionClient) Interceptors() []Interceptor {
	return c.inters.IncidentSuggestion
}

func (c *IncidentSuggestionClient) mutate(ctx context.Context, m *IncidentSuggestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IncidentSuggestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IncidentSuggestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IncidentSuggestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IncidentSuggestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IncidentSuggestion mutation op: %q", m.Op())
	}
}

// IncidentThoughtClient is a client for the IncidentThought schema.
type IncidentThoughtClient struct {
	config
}

// NewIncidentThoughtClient returns a client for the IncidentThought from the given config.
func NewIncidentThoughtClient(c config) *IncidentThoughtClient {
	return &IncidentThoughtClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `incidentthought.Hooks(f(g(h())))`.
func (c *IncidentThoughtClient) Use(hooks ...Hook) {
	c.hooks.IncidentThought = append(c.hooks.IncidentThought, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `incidentthought.Intercept(f(g(h())))`.
func (c *IncidentThoughtClient) Intercept(interceptors ...Interceptor) {
	c.inters.IncidentThought = append(c.inters.IncidentThought, interceptors...)
}

// Create returns a builder for creating a IncidentThought entity.
func (c *IncidentThoughtClient) Create() *IncidentThoughtCreate {
	mutation := newIncidentThoughtMutation(c.config, OpCreate)
	return &IncidentThoughtCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IncidentThought entities.
func (c *IncidentThoughtClient) CreateBulk(builders ...*IncidentThoughtCreate) *IncidentThoughtCreateBulk {
	return &IncidentThoughtCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IncidentThoughtClient) MapCreateBulk(slice any, setFunc func(*IncidentThoughtCreate, int)) *IncidentThoughtCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IncidentThoughtCreateBulk{err: fmt.Errorf("calling to IncidentThoughtClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IncidentThoughtCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IncidentThoughtCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IncidentThought.
func (c *IncidentThoughtClient) Update() *IncidentThoughtUpdate {
	mutation := newIncidentThoughtMutation(c.config, OpUpdate)
	return &IncidentThoughtUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IncidentThoughtClient) UpdateOne(_m *IncidentThought) *IncidentThoughtUpdateOne {
	mutation := newIncidentThoughtMutation(c.config, OpUpdateOne, withIncidentThought(_m))
	return &IncidentThoughtUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IncidentThoughtClient) UpdateOneID(id string) *IncidentThoughtUpdateOne {
	mutation := newIncidentThoughtMutation(c.config, OpUpdateOne, withIncidentThoughtID(id))
	return &IncidentThoughtUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IncidentThought.
func (c *IncidentThoughtClient) Delete() *IncidentThoughtDelete {
	mutation := newIncidentThoughtMutation(c.config, OpDelete)
	return &IncidentThoughtDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IncidentThoughtClient) DeleteOne(_m *IncidentThought) *IncidentThoughtDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IncidentThoughtClient) DeleteOneID(id string) *IncidentThoughtDeleteOne {
	builder := c.Delete().Where(incidentthought.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IncidentThoughtDeleteOne{builder}
}

// Query returns a query builder for IncidentThought.
func (c *IncidentThoughtClient) Query() *IncidentThoughtQuery {
	return &IncidentThoughtQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIncidentThought},
		inters: c.Interceptors(),
	}
}

// Get returns a IncidentThought entity by its id.
func (c *IncidentThoughtClient) Get(ctx context.Context, id string) (*IncidentThought, error) {
	return c.Query().Where(incidentthought.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IncidentThoughtClient) GetX(ctx context.Context, id string) *IncidentThought {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIncident queries the incident edge of a IncidentThought.
func (c *IncidentThoughtClient) QueryIncident(_m *IncidentThought) *IncidentQuery {
	query := (&IncidentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(incidentthought.Table, incidentthought.FieldID, id),
			sqlgraph.To(incident.Table, incident.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, incidentthought.IncidentTable, incidentthought.IncidentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IncidentThoughtClient) Hooks() []Hook {
	return c.hooks.IncidentThought
}

// Interceptors returns the client interceptors.
func (c *IncidentThoughtClient) Interceptors() []Interceptor {
	return c.inters.IncidentThought
}

func (c *IncidentThoughtClient) mutate(ctx context.Context, m *IncidentThoughtMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IncidentThoughtCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IncidentThoughtUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IncidentThoughtUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IncidentThoughtDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IncidentThought mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AlertEvent, ChatSession, Event, Incident, IncidentAlert, IncidentCitation,
		IncidentSuggestion, IncidentThought, Task []ent.Hook
	}
	inters struct {
		AlertEvent, ChatSession, Event, Incident, IncidentAlert, IncidentCitation,
		IncidentSuggestion, IncidentThought, Task []ent.Interceptor
	}
)

// ExecContext allows calling the underlying ExecContext method of the driver if it is supported by it.
// See, database/sql#DB.ExecContext for more information.
func (c *config) ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error) {
	ex, ok := c.driver.(interface {
		ExecContext(context.Context, string, ...any) (stdsql.Result, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.ExecContext is not supported")
	}
	return ex.ExecContext(ctx, query, args...)
}

// QueryContext allows calling the underlying QueryContext method of the driver if it is supported by it.
// See, database/sql#DB.QueryContext for more information.
func (c *config) QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error) {
	q, ok := c.driver.(interface {
		QueryContext(context.Context, string, ...any) (*stdsql.Rows, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.QueryContext is not supported")
	}
	return q.QueryContext(ctx, query, args...)
}
