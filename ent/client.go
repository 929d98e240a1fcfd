// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/studymesh/cpaprep/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/studymesh/cpaprep/ent/answeredindex"
	"github.com/studymesh/cpaprep/ent/itemhistory"
	"github.com/studymesh/cpaprep/ent/lessonprogress"
	"github.com/studymesh/cpaprep/ent/simtaskhistory"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnsweredIndex is the client for interacting with the AnsweredIndex builders.
	AnsweredIndex *AnsweredIndexClient
	// ItemHistory is the client for interacting with the ItemHistory builders.
	ItemHistory *ItemHistoryClient
	// LessonProgress is the client for interacting with the LessonProgress builders.
	LessonProgress *LessonProgressClient
	// SimTaskHistory is the client for interacting with the SimTaskHistory builders.
	SimTaskHistory *SimTaskHistoryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnsweredIndex = NewAnsweredIndexClient(c.config)
	c.ItemHistory = NewItemHistoryClient(c.config)
	c.LessonProgress = NewLessonProgressClient(c.config)
	c.SimTaskHistory = NewSimTaskHistoryClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		AnsweredIndex:  NewAnsweredIndexClient(cfg),
		ItemHistory:    NewItemHistoryClient(cfg),
		LessonProgress: NewLessonProgressClient(cfg),
		SimTaskHistory: NewSimTaskHistoryClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		AnsweredIndex:  NewAnsweredIndexClient(cfg),
		ItemHistory:    NewItemHistoryClient(cfg),
		LessonProgress: NewLessonProgressClient(cfg),
		SimTaskHistory: NewSimTaskHistoryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnsweredIndex.
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
	c.AnsweredIndex.Use(hooks...)
	c.ItemHistory.Use(hooks...)
	c.LessonProgress.Use(hooks...)
	c.SimTaskHistory.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnsweredIndex.Intercept(interceptors...)
	c.ItemHistory.Intercept(interceptors...)
	c.LessonProgress.Intercept(interceptors...)
	c.SimTaskHistory.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnsweredIndexMutation:
		return c.AnsweredIndex.mutate(ctx, m)
	case *ItemHistoryMutation:
		return c.ItemHistory.mutate(ctx, m)
	case *LessonProgressMutation:
		return c.LessonProgress.mutate(ctx, m)
	case *SimTaskHistoryMutation:
		return c.SimTaskHistory.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnsweredIndexClient is a client for the AnsweredIndex schema.
type AnsweredIndexClient struct {
	config
}

// NewAnsweredIndexClient returns a client for the AnsweredIndex from the given config.
func NewAnsweredIndexClient(c config) *AnsweredIndexClient {
	return &AnsweredIndexClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answeredindex.Hooks(f(g(h())))`.
func (c *AnsweredIndexClient) Use(hooks ...Hook) {
	c.hooks.AnsweredIndex = append(c.hooks.AnsweredIndex, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answeredindex.Intercept(f(g(h())))`.
func (c *AnsweredIndexClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnsweredIndex = append(c.inters.AnsweredIndex, interceptors...)
}

// Create returns a builder for creating a AnsweredIndex entity.
func (c *AnsweredIndexClient) Create() *AnsweredIndexCreate {
	mutation := newAnsweredIndexMutation(c.config, OpCreate)
	return &AnsweredIndexCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnsweredIndex entities.
func (c *AnsweredIndexClient) CreateBulk(builders ...*AnsweredIndexCreate) *AnsweredIndexCreateBulk {
	return &AnsweredIndexCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnsweredIndexClient) MapCreateBulk(slice any, setFunc func(*AnsweredIndexCreate, int)) *AnsweredIndexCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnsweredIndexCreateBulk{err: fmt.Errorf("calling to AnsweredIndexClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnsweredIndexCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnsweredIndexCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnsweredIndex.
func (c *AnsweredIndexClient) Update() *AnsweredIndexUpdate {
	mutation := newAnsweredIndexMutation(c.config, OpUpdate)
	return &AnsweredIndexUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnsweredIndexClient) UpdateOne(ai *AnsweredIndex) *AnsweredIndexUpdateOne {
	mutation := newAnsweredIndexMutation(c.config, OpUpdateOne, withAnsweredIndex(ai))
	return &AnsweredIndexUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnsweredIndexClient) UpdateOneID(id int) *AnsweredIndexUpdateOne {
	mutation := newAnsweredIndexMutation(c.config, OpUpdateOne, withAnsweredIndexID(id))
	return &AnsweredIndexUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnsweredIndex.
func (c *AnsweredIndexClient) Delete() *AnsweredIndexDelete {
	mutation := newAnsweredIndexMutation(c.config, OpDelete)
	return &AnsweredIndexDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnsweredIndexClient) DeleteOne(ai *AnsweredIndex) *AnsweredIndexDeleteOne {
	return c.DeleteOneID(ai.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnsweredIndexClient) DeleteOneID(id int) *AnsweredIndexDeleteOne {
	builder := c.Delete().Where(answeredindex.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnsweredIndexDeleteOne{builder}
}

// Query returns a query builder for AnsweredIndex.
func (c *AnsweredIndexClient) Query() *AnsweredIndexQuery {
	return &AnsweredIndexQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnsweredIndex},
		inters: c.Interceptors(),
	}
}

// Get returns a AnsweredIndex entity by its id.
func (c *AnsweredIndexClient) Get(ctx context.Context, id int) (*AnsweredIndex, error) {
	return c.Query().Where(answeredindex.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnsweredIndexClient) GetX(ctx context.Context, id int) *AnsweredIndex {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnsweredIndexClient) Hooks() []Hook {
	return c.hooks.AnsweredIndex
}

// Interceptors returns the client interceptors.
func (c *AnsweredIndexClient) Interceptors() []Interceptor {
	return c.inters.AnsweredIndex
}

func (c *AnsweredIndexClient) mutate(ctx context.Context, m *AnsweredIndexMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnsweredIndexCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnsweredIndexUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnsweredIndexUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnsweredIndexDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnsweredIndex mutation op: %q", m.Op())
	}
}

// ItemHistoryClient is a client for the ItemHistory schema.
type ItemHistoryClient struct {
	config
}

// NewItemHistoryClient returns a client for the ItemHistory from the given config.
func NewItemHistoryClient(c config) *ItemHistoryClient {
	return &ItemHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `itemhistory.Hooks(f(g(h())))`.
func (c *ItemHistoryClient) Use(hooks ...Hook) {
	c.hooks.ItemHistory = append(c.hooks.ItemHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `itemhistory.Intercept(f(g(h())))`.
func (c *ItemHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ItemHistory = append(c.inters.ItemHistory, interceptors...)
}

// Create returns a builder for creating a ItemHistory entity.
func (c *ItemHistoryClient) Create() *ItemHistoryCreate {
	mutation := newItemHistoryMutation(c.config, OpCreate)
	return &ItemHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ItemHistory entities.
func (c *ItemHistoryClient) CreateBulk(builders ...*ItemHistoryCreate) *ItemHistoryCreateBulk {
	return &ItemHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ItemHistoryClient) MapCreateBulk(slice any, setFunc func(*ItemHistoryCreate, int)) *ItemHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ItemHistoryCreateBulk{err: fmt.Errorf("calling to ItemHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ItemHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ItemHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ItemHistory.
func (c *ItemHistoryClient) Update() *ItemHistoryUpdate {
	mutation := newItemHistoryMutation(c.config, OpUpdate)
	return &ItemHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ItemHistoryClient) UpdateOne(ih *ItemHistory) *ItemHistoryUpdateOne {
	mutation := newItemHistoryMutation(c.config, OpUpdateOne, withItemHistory(ih))
	return &ItemHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ItemHistoryClient) UpdateOneID(id int) *ItemHistoryUpdateOne {
	mutation := newItemHistoryMutation(c.config, OpUpdateOne, withItemHistoryID(id))
	return &ItemHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ItemHistory.
func (c *ItemHistoryClient) Delete() *ItemHistoryDelete {
	mutation := newItemHistoryMutation(c.config, OpDelete)
	return &ItemHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ItemHistoryClient) DeleteOne(ih *ItemHistory) *ItemHistoryDeleteOne {
	return c.DeleteOneID(ih.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ItemHistoryClient) DeleteOneID(id int) *ItemHistoryDeleteOne {
	builder := c.Delete().Where(itemhistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ItemHistoryDeleteOne{builder}
}

// Query returns a query builder for ItemHistory.
func (c *ItemHistoryClient) Query() *ItemHistoryQuery {
	return &ItemHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeItemHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a ItemHistory entity by its id.
func (c *ItemHistoryClient) Get(ctx context.Context, id int) (*ItemHistory, error) {
	return c.Query().Where(itemhistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ItemHistoryClient) GetX(ctx context.Context, id int) *ItemHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ItemHistoryClient) Hooks() []Hook {
	return c.hooks.ItemHistory
}

// Interceptors returns the client interceptors.
func (c *ItemHistoryClient) Interceptors() []Interceptor {
	return c.inters.ItemHistory
}

func (c *ItemHistoryClient) mutate(ctx context.Context, m *ItemHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ItemHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ItemHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ItemHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ItemHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ItemHistory mutation op: %q", m.Op())
	}
}

// LessonProgressClient is a client for the LessonProgress schema.
type LessonProgressClient struct {
	config
}

// NewLessonProgressClient returns a client for the LessonProgress from the given config.
func NewLessonProgressClient(c config) *LessonProgressClient {
	return &LessonProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lessonprogress.Hooks(f(g(h())))`.
func (c *LessonProgressClient) Use(hooks ...Hook) {
	c.hooks.LessonProgress = append(c.hooks.LessonProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lessonprogress.Intercept(f(g(h())))`.
func (c *LessonProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.LessonProgress = append(c.inters.LessonProgress, interceptors...)
}

// Create returns a builder for creating a LessonProgress entity.
func (c *LessonProgressClient) Create() *LessonProgressCreate {
	mutation := newLessonProgressMutation(c.config, OpCreate)
	return &LessonProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LessonProgress entities.
func (c *LessonProgressClient) CreateBulk(builders ...*LessonProgressCreate) *LessonProgressCreateBulk {
	return &LessonProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonProgressClient) MapCreateBulk(slice any, setFunc func(*LessonProgressCreate, int)) *LessonProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonProgressCreateBulk{err: fmt.Errorf("calling to LessonProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LessonProgress.
func (c *LessonProgressClient) Update() *LessonProgressUpdate {
	mutation := newLessonProgressMutation(c.config, OpUpdate)
	return &LessonProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonProgressClient) UpdateOne(lp *LessonProgress) *LessonProgressUpdateOne {
	mutation := newLessonProgressMutation(c.config, OpUpdateOne, withLessonProgress(lp))
	return &LessonProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonProgressClient) UpdateOneID(id int) *LessonProgressUpdateOne {
	mutation := newLessonProgressMutation(c.config, OpUpdateOne, withLessonProgressID(id))
	return &LessonProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LessonProgress.
func (c *LessonProgressClient) Delete() *LessonProgressDelete {
	mutation := newLessonProgressMutation(c.config, OpDelete)
	return &LessonProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonProgressClient) DeleteOne(lp *LessonProgress) *LessonProgressDeleteOne {
	return c.DeleteOneID(lp.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonProgressClient) DeleteOneID(id int) *LessonProgressDeleteOne {
	builder := c.Delete().Where(lessonprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonProgressDeleteOne{builder}
}

// Query returns a query builder for LessonProgress.
func (c *LessonProgressClient) Query() *LessonProgressQuery {
	return &LessonProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLessonProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a LessonProgress entity by its id.
func (c *LessonProgressClient) Get(ctx context.Context, id int) (*LessonProgress, error) {
	return c.Query().Where(lessonprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonProgressClient) GetX(ctx context.Context, id int) *LessonProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonProgressClient) Hooks() []Hook {
	return c.hooks.LessonProgress
}

// Interceptors returns the client interceptors.
func (c *LessonProgressClient) Interceptors() []Interceptor {
	return c.inters.LessonProgress
}

func (c *LessonProgressClient) mutate(ctx context.Context, m *LessonProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LessonProgress mutation op: %q", m.Op())
	}
}

// SimTaskHistoryClient is a client for the SimTaskHistory schema.
type SimTaskHistoryClient struct {
	config
}

// NewSimTaskHistoryClient returns a client for the SimTaskHistory from the given config.
func NewSimTaskHistoryClient(c config) *SimTaskHistoryClient {
	return &SimTaskHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `simtaskhistory.Hooks(f(g(h())))`.
func (c *SimTaskHistoryClient) Use(hooks ...Hook) {
	c.hooks.SimTaskHistory = append(c.hooks.SimTaskHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `simtaskhistory.Intercept(f(g(h())))`.
func (c *SimTaskHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SimTaskHistory = append(c.inters.SimTaskHistory, interceptors...)
}

// Create returns a builder for creating a SimTaskHistory entity.
func (c *SimTaskHistoryClient) Create() *SimTaskHistoryCreate {
	mutation := newSimTaskHistoryMutation(c.config, OpCreate)
	return &SimTaskHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SimTaskHistory entities.
func (c *SimTaskHistoryClient) CreateBulk(builders ...*SimTaskHistoryCreate) *SimTaskHistoryCreateBulk {
	return &SimTaskHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SimTaskHistoryClient) MapCreateBulk(slice any, setFunc func(*SimTaskHistoryCreate, int)) *SimTaskHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SimTaskHistoryCreateBulk{err: fmt.Errorf("calling to SimTaskHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SimTaskHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SimTaskHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SimTaskHistory.
func (c *SimTaskHistoryClient) Update() *SimTaskHistoryUpdate {
	mutation := newSimTaskHistoryMutation(c.config, OpUpdate)
	return &SimTaskHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SimTaskHistoryClient) UpdateOne(sth *SimTaskHistory) *SimTaskHistoryUpdateOne {
	mutation := newSimTaskHistoryMutation(c.config, OpUpdateOne, withSimTaskHistory(sth))
	return &SimTaskHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SimTaskHistoryClient) UpdateOneID(id int) *SimTaskHistoryUpdateOne {
	mutation := newSimTaskHistoryMutation(c.config, OpUpdateOne, withSimTaskHistoryID(id))
	return &SimTaskHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SimTaskHistory.
func (c *SimTaskHistoryClient) Delete() *SimTaskHistoryDelete {
	mutation := newSimTaskHistoryMutation(c.config, OpDelete)
	return &SimTaskHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SimTaskHistoryClient) DeleteOne(sth *SimTaskHistory) *SimTaskHistoryDeleteOne {
	return c.DeleteOneID(sth.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SimTaskHistoryClient) DeleteOneID(id int) *SimTaskHistoryDeleteOne {
	builder := c.Delete().Where(simtaskhistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SimTaskHistoryDeleteOne{builder}
}

// Query returns a query builder for SimTaskHistory.
func (c *SimTaskHistoryClient) Query() *SimTaskHistoryQuery {
	return &SimTaskHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSimTaskHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a SimTaskHistory entity by its id.
func (c *SimTaskHistoryClient) Get(ctx context.Context, id int) (*SimTaskHistory, error) {
	return c.Query().Where(simtaskhistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SimTaskHistoryClient) GetX(ctx context.Context, id int) *SimTaskHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SimTaskHistoryClient) Hooks() []Hook {
	return c.hooks.SimTaskHistory
}

// Interceptors returns the client interceptors.
func (c *SimTaskHistoryClient) Interceptors() []Interceptor {
	return c.inters.SimTaskHistory
}

func (c *SimTaskHistoryClient) mutate(ctx context.Context, m *SimTaskHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SimTaskHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SimTaskHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SimTaskHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SimTaskHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SimTaskHistory mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnsweredIndex, ItemHistory, LessonProgress, SimTaskHistory []ent.Hook
	}
	inters struct {
		AnsweredIndex, ItemHistory, LessonProgress, SimTaskHistory []ent.Interceptor
	}
)
