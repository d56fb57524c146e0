// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/agentkube/investigator/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentkube/investigator/ent/subtask"
	"github.com/agentkube/investigator/ent/task"
	"github.com/agentkube/investigator/ent/taskevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// SubTask is the client for interacting with the SubTask builders.
	SubTask *SubTaskClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TaskEvent is the client for interacting with the TaskEvent builders.
	TaskEvent *TaskEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.SubTask = NewSubTaskClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TaskEvent = NewTaskEventClient(c.config)
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
		ctx:       ctx,
		config:    cfg,
		SubTask:   NewSubTaskClient(cfg),
		Task:      NewTaskClient(cfg),
		TaskEvent: NewTaskEventClient(cfg),
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
		ctx:       ctx,
		config:    cfg,
		SubTask:   NewSubTaskClient(cfg),
		Task:      NewTaskClient(cfg),
		TaskEvent: NewTaskEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		SubTask.
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
	c.SubTask.Use(hooks...)
	c.Task.Use(hooks...)
	c.TaskEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.SubTask.Intercept(interceptors...)
	c.Task.Intercept(interceptors...)
	c.TaskEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *SubTaskMutation:
		return c.SubTask.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TaskEventMutation:
		return c.TaskEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// SubTaskClient is a client for the SubTask schema.
type SubTaskClient struct {
	config
}

// NewSubTaskClient returns a client for the SubTask from the given config.
func NewSubTaskClient(c config) *SubTaskClient {
	return &SubTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subtask.Hooks(f(g(h())))`.
func (c *SubTaskClient) Use(hooks ...Hook) {
	c.hooks.SubTask = append(c.hooks.SubTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subtask.Intercept(f(g(h())))`.
func (c *SubTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubTask = append(c.inters.SubTask, interceptors...)
}

// Create returns a builder for creating a SubTask entity.
func (c *SubTaskClient) Create() *SubTaskCreate {
	mutation := newSubTaskMutation(c.config, OpCreate)
	return &SubTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubTask entities.
func (c *SubTaskClient) CreateBulk(builders ...*SubTaskCreate) *SubTaskCreateBulk {
	return &SubTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubTaskClient) MapCreateBulk(slice any, setFunc func(*SubTaskCreate, int)) *SubTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubTaskCreateBulk{err: fmt.Errorf("calling to SubTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubTask.
func (c *SubTaskClient) Update() *SubTaskUpdate {
	mutation := newSubTaskMutation(c.config, OpUpdate)
	return &SubTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubTaskClient) UpdateOne(_m *SubTask) *SubTaskUpdateOne {
	mutation := newSubTaskMutation(c.config, OpUpdateOne, withSubTask(_m))
	return &SubTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubTaskClient) UpdateOneID(id string) *SubTaskUpdateOne {
	mutation := newSubTaskMutation(c.config, OpUpdateOne, withSubTaskID(id))
	return &SubTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubTask.
func (c *SubTaskClient) Delete() *SubTaskDelete {
	mutation := newSubTaskMutation(c.config, OpDelete)
	return &SubTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubTaskClient) DeleteOne(_m *SubTask) *SubTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubTaskClient) DeleteOneID(id string) *SubTaskDeleteOne {
	builder := c.Delete().Where(subtask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubTaskDeleteOne{builder}
}

// Query returns a query builder for SubTask.
func (c *SubTaskClient) Query() *SubTaskQuery {
	return &SubTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubTask},
		inters: c.Interceptors(),
	}
}

// Get returns a SubTask entity by its id.
func (c *SubTaskClient) Get(ctx context.Context, id string) (*SubTask, error) {
	return c.Query().Where(subtask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubTaskClient) GetX(ctx context.Context, id string) *SubTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a SubTask.
func (c *SubTaskClient) QueryTask(_m *SubTask) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subtask.Table, subtask.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, subtask.TaskTable, subtask.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubTaskClient) Hooks() []Hook {
	return c.hooks.SubTask
}

// Interceptors returns the client interceptors.
func (c *SubTaskClient) Interceptors() []Interceptor {
	return c.inters.SubTask
}

func (c *SubTaskClient) mutate(ctx context.Context, m *SubTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubTask mutation op: %q", m.Op())
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

// QueryEvents queries the events edge of a Task.
func (c *TaskClient) QueryEvents(_m *Task) *TaskEventQuery {
	query := (&TaskEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(taskevent.Table, taskevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.EventsTable, task.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubtasks queries the subtasks edge of a Task.
func (c *TaskClient) QuerySubtasks(_m *Task) *SubTaskQuery {
	query := (&SubTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(subtask.Table, subtask.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.SubtasksTable, task.SubtasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
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

// TaskEventClient is a client for the TaskEvent schema.
type TaskEventClient struct {
	config
}

// NewTaskEventClient returns a client for the TaskEvent from the given config.
func NewTaskEventClient(c config) *TaskEventClient {
	return &TaskEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskevent.Hooks(f(g(h())))`.
func (c *TaskEventClient) Use(hooks ...Hook) {
	c.hooks.TaskEvent = append(c.hooks.TaskEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskevent.Intercept(f(g(h())))`.
func (c *TaskEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskEvent = append(c.inters.TaskEvent, interceptors...)
}

// Create returns a builder for creating a TaskEvent entity.
func (c *TaskEventClient) Create() *TaskEventCreate {
	mutation := newTaskEventMutation(c.config, OpCreate)
	return &TaskEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskEvent entities.
func (c *TaskEventClient) CreateBulk(builders ...*TaskEventCreate) *TaskEventCreateBulk {
	return &TaskEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskEventClient) MapCreateBulk(slice any, setFunc func(*TaskEventCreate, int)) *TaskEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskEventCreateBulk{err: fmt.Errorf("calling to TaskEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskEvent.
func (c *TaskEventClient) Update() *TaskEventUpdate {
	mutation := newTaskEventMutation(c.config, OpUpdate)
	return &TaskEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskEventClient) UpdateOne(_m *TaskEvent) *TaskEventUpdateOne {
	mutation := newTaskEventMutation(c.config, OpUpdateOne, withTaskEvent(_m))
	return &TaskEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskEventClient) UpdateOneID(id int) *TaskEventUpdateOne {
	mutation := newTaskEventMutation(c.config, OpUpdateOne, withTaskEventID(id))
	return &TaskEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskEvent.
func (c *TaskEventClient) Delete() *TaskEventDelete {
	mutation := newTaskEventMutation(c.config, OpDelete)
	return &TaskEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskEventClient) DeleteOne(_m *TaskEvent) *TaskEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskEventClient) DeleteOneID(id int) *TaskEventDeleteOne {
	builder := c.Delete().Where(taskevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskEventDeleteOne{builder}
}

// Query returns a query builder for TaskEvent.
func (c *TaskEventClient) Query() *TaskEventQuery {
	return &TaskEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskEvent entity by its id.
func (c *TaskEventClient) Get(ctx context.Context, id int) (*TaskEvent, error) {
	return c.Query().Where(taskevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskEventClient) GetX(ctx context.Context, id int) *TaskEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a TaskEvent.
func (c *TaskEventClient) QueryTask(_m *TaskEvent) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskevent.Table, taskevent.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskevent.TaskTable, taskevent.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskEventClient) Hooks() []Hook {
	return c.hooks.TaskEvent
}

// Interceptors returns the client interceptors.
func (c *TaskEventClient) Interceptors() []Interceptor {
	return c.inters.TaskEvent
}

func (c *TaskEventClient) mutate(ctx context.Context, m *TaskEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		SubTask, Task, TaskEvent []ent.Hook
	}
	inters struct {
		SubTask, Task, TaskEvent []ent.Interceptor
	}
)
