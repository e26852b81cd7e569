// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/cyberpath/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cyberpath/ent/mentorevent"
	"github.com/abhisek/cyberpath/ent/statesnapshot"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// MentorEvent is the client for interacting with the MentorEvent builders.
	MentorEvent *MentorEventClient
	// StateSnapshot is the client for interacting with the StateSnapshot builders.
	StateSnapshot *StateSnapshotClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.MentorEvent = NewMentorEventClient(c.config)
	c.StateSnapshot = NewStateSnapshotClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		MentorEvent:   NewMentorEventClient(cfg),
		StateSnapshot: NewStateSnapshotClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		MentorEvent:   NewMentorEventClient(cfg),
		StateSnapshot: NewStateSnapshotClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		MentorEvent.
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
	c.MentorEvent.Use(hooks...)
	c.StateSnapshot.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.MentorEvent.Intercept(interceptors...)
	c.StateSnapshot.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *MentorEventMutation:
		return c.MentorEvent.mutate(ctx, m)
	case *StateSnapshotMutation:
		return c.StateSnapshot.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// MentorEventClient is a client for the MentorEvent schema.
type MentorEventClient struct {
	config
}

// NewMentorEventClient returns a client for the MentorEvent from the given config.
func NewMentorEventClient(c config) *MentorEventClient {
	return &MentorEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mentorevent.Hooks(f(g(h())))`.
func (c *MentorEventClient) Use(hooks ...Hook) {
	c.hooks.MentorEvent = append(c.hooks.MentorEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mentorevent.Intercept(f(g(h())))`.
func (c *MentorEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.MentorEvent = append(c.inters.MentorEvent, interceptors...)
}

// Create returns a builder for creating a MentorEvent entity.
func (c *MentorEventClient) Create() *MentorEventCreate {
	mutation := newMentorEventMutation(c.config, OpCreate)
	return &MentorEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MentorEvent entities.
func (c *MentorEventClient) CreateBulk(builders ...*MentorEventCreate) *MentorEventCreateBulk {
	return &MentorEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MentorEventClient) MapCreateBulk(slice any, setFunc func(*MentorEventCreate, int)) *MentorEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MentorEventCreateBulk{err: fmt.Errorf("calling to MentorEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MentorEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MentorEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MentorEvent.
func (c *MentorEventClient) Update() *MentorEventUpdate {
	mutation := newMentorEventMutation(c.config, OpUpdate)
	return &MentorEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MentorEventClient) UpdateOne(_m *MentorEvent) *MentorEventUpdateOne {
	mutation := newMentorEventMutation(c.config, OpUpdateOne, withMentorEvent(_m))
	return &MentorEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MentorEventClient) UpdateOneID(id int) *MentorEventUpdateOne {
	mutation := newMentorEventMutation(c.config, OpUpdateOne, withMentorEventID(id))
	return &MentorEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MentorEvent.
func (c *MentorEventClient) Delete() *MentorEventDelete {
	mutation := newMentorEventMutation(c.config, OpDelete)
	return &MentorEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MentorEventClient) DeleteOne(_m *MentorEvent) *MentorEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MentorEventClient) DeleteOneID(id int) *MentorEventDeleteOne {
	builder := c.Delete().Where(mentorevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MentorEventDeleteOne{builder}
}

// Query returns a query builder for MentorEvent.
func (c *MentorEventClient) Query() *MentorEventQuery {
	return &MentorEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMentorEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a MentorEvent entity by its id.
func (c *MentorEventClient) Get(ctx context.Context, id int) (*MentorEvent, error) {
	return c.Query().Where(mentorevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MentorEventClient) GetX(ctx context.Context, id int) *MentorEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MentorEventClient) Hooks() []Hook {
	return c.hooks.MentorEvent
}

// Interceptors returns the client interceptors.
func (c *MentorEventClient) Interceptors() []Interceptor {
	return c.inters.MentorEvent
}

func (c *MentorEventClient) mutate(ctx context.Context, m *MentorEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MentorEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MentorEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MentorEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MentorEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MentorEvent mutation op: %q", m.Op())
	}
}

// StateSnapshotClient is a client for the StateSnapshot schema.
type StateSnapshotClient struct {
	config
}

// NewStateSnapshotClient returns a client for the StateSnapshot from the given config.
func NewStateSnapshotClient(c config) *StateSnapshotClient {
	return &StateSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `statesnapshot.Hooks(f(g(h())))`.
func (c *StateSnapshotClient) Use(hooks ...Hook) {
	c.hooks.StateSnapshot = append(c.hooks.StateSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `statesnapshot.Intercept(f(g(h())))`.
func (c *StateSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.StateSnapshot = append(c.inters.StateSnapshot, interceptors...)
}

// Create returns a builder for creating a StateSnapshot entity.
func (c *StateSnapshotClient) Create() *StateSnapshotCreate {
	mutation := newStateSnapshotMutation(c.config, OpCreate)
	return &StateSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StateSnapshot entities.
func (c *StateSnapshotClient) CreateBulk(builders ...*StateSnapshotCreate) *StateSnapshotCreateBulk {
	return &StateSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StateSnapshotClient) MapCreateBulk(slice any, setFunc func(*StateSnapshotCreate, int)) *StateSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StateSnapshotCreateBulk{err: fmt.Errorf("calling to StateSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StateSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StateSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StateSnapshot.
func (c *StateSnapshotClient) Update() *StateSnapshotUpdate {
	mutation := newStateSnapshotMutation(c.config, OpUpdate)
	return &StateSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StateSnapshotClient) UpdateOne(_m *StateSnapshot) *StateSnapshotUpdateOne {
	mutation := newStateSnapshotMutation(c.config, OpUpdateOne, withStateSnapshot(_m))
	return &StateSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StateSnapshotClient) UpdateOneID(id int) *StateSnapshotUpdateOne {
	mutation := newStateSnapshotMutation(c.config, OpUpdateOne, withStateSnapshotID(id))
	return &StateSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StateSnapshot.
func (c *StateSnapshotClient) Delete() *StateSnapshotDelete {
	mutation := newStateSnapshotMutation(c.config, OpDelete)
	return &StateSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StateSnapshotClient) DeleteOne(_m *StateSnapshot) *StateSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StateSnapshotClient) DeleteOneID(id int) *StateSnapshotDeleteOne {
	builder := c.Delete().Where(statesnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StateSnapshotDeleteOne{builder}
}

// Query returns a query builder for StateSnapshot.
func (c *StateSnapshotClient) Query() *StateSnapshotQuery {
	return &StateSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStateSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a StateSnapshot entity by its id.
func (c *StateSnapshotClient) Get(ctx context.Context, id int) (*StateSnapshot, error) {
	return c.Query().Where(statesnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StateSnapshotClient) GetX(ctx context.Context, id int) *StateSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StateSnapshotClient) Hooks() []Hook {
	return c.hooks.StateSnapshot
}

// Interceptors returns the client interceptors.
func (c *StateSnapshotClient) Interceptors() []Interceptor {
	return c.inters.StateSnapshot
}

func (c *StateSnapshotClient) mutate(ctx context.Context, m *StateSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StateSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StateSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StateSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StateSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StateSnapshot mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		MentorEvent, StateSnapshot []ent.Hook
	}
	inters struct {
		MentorEvent, StateSnapshot []ent.Interceptor
	}
)
