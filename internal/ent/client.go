// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"mockview/internal/ent/migrate"

	"mockview/internal/ent/company"
	"mockview/internal/ent/companyreview"
	"mockview/internal/ent/interviewevaluation"
	"mockview/internal/ent/interviewqa"
	"mockview/internal/ent/interviewsession"
	"mockview/internal/ent/member"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Company is the client for interacting with the Company builders.
	Company *CompanyClient
	// CompanyReview is the client for interacting with the CompanyReview builders.
	CompanyReview *CompanyReviewClient
	// InterviewEvaluation is the client for interacting with the InterviewEvaluation builders.
	InterviewEvaluation *InterviewEvaluationClient
	// InterviewQA is the client for interacting with the InterviewQA builders.
	InterviewQA *InterviewQAClient
	// InterviewSession is the client for interacting with the InterviewSession builders.
	InterviewSession *InterviewSessionClient
	// Member is the client for interacting with the Member builders.
	Member *MemberClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Company = NewCompanyClient(c.config)
	c.CompanyReview = NewCompanyReviewClient(c.config)
	c.InterviewEvaluation = NewInterviewEvaluationClient(c.config)
	c.InterviewQA = NewInterviewQAClient(c.config)
	c.InterviewSession = NewInterviewSessionClient(c.config)
	c.Member = NewMemberClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		Company:             NewCompanyClient(cfg),
		CompanyReview:       NewCompanyReviewClient(cfg),
		InterviewEvaluation: NewInterviewEvaluationClient(cfg),
		InterviewQA:         NewInterviewQAClient(cfg),
		InterviewSession:    NewInterviewSessionClient(cfg),
		Member:              NewMemberClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		Company:             NewCompanyClient(cfg),
		CompanyReview:       NewCompanyReviewClient(cfg),
		InterviewEvaluation: NewInterviewEvaluationClient(cfg),
		InterviewQA:         NewInterviewQAClient(cfg),
		InterviewSession:    NewInterviewSessionClient(cfg),
		Member:              NewMemberClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Company.
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
		c.Company, c.CompanyReview, c.InterviewEvaluation, c.InterviewQA,
		c.InterviewSession, c.Member,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Company, c.CompanyReview, c.InterviewEvaluation, c.InterviewQA,
		c.InterviewSession, c.Member,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CompanyMutation:
		return c.Company.mutate(ctx, m)
	case *CompanyReviewMutation:
		return c.CompanyReview.mutate(ctx, m)
	case *InterviewEvaluationMutation:
		return c.InterviewEvaluation.mutate(ctx, m)
	case *InterviewQAMutation:
		return c.InterviewQA.mutate(ctx, m)
	case *InterviewSessionMutation:
		return c.InterviewSession.mutate(ctx, m)
	case *MemberMutation:
		return c.Member.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CompanyClient is a client for the Company schema.
type CompanyClient struct {
	config
}

// NewCompanyClient returns a client for the Company from the given config.
func NewCompanyClient(c config) *CompanyClient {
	return &CompanyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `company.Hooks(f(g(h())))`.
func (c *CompanyClient) Use(hooks ...Hook) {
	c.hooks.Company = append(c.hooks.Company, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `company.Intercept(f(g(h())))`.
func (c *CompanyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Company = append(c.inters.Company, interceptors...)
}

// Create returns a builder for creating a Company entity.
func (c *CompanyClient) Create() *CompanyCreate {
	mutation := newCompanyMutation(c.config, OpCreate)
	return &CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Company entities.
func (c *CompanyClient) CreateBulk(builders ...*CompanyCreate) *CompanyCreateBulk {
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompanyClient) MapCreateBulk(slice any, setFunc func(*CompanyCreate, int)) *CompanyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompanyCreateBulk{err: fmt.Errorf("calling to CompanyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompanyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Company.
func (c *CompanyClient) Update() *CompanyUpdate {
	mutation := newCompanyMutation(c.config, OpUpdate)
	return &CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompanyClient) UpdateOne(_m *Company) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompany(_m))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompanyClient) UpdateOneID(id string) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompanyID(id))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Company.
func (c *CompanyClient) Delete() *CompanyDelete {
	mutation := newCompanyMutation(c.config, OpDelete)
	return &CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompanyClient) DeleteOne(_m *Company) *CompanyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompanyClient) DeleteOneID(id string) *CompanyDeleteOne {
	builder := c.Delete().Where(company.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompanyDeleteOne{builder}
}

// Query returns a query builder for Company.
func (c *CompanyClient) Query() *CompanyQuery {
	return &CompanyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompany},
		inters: c.Interceptors(),
	}
}

// Get returns a Company entity by its id.
func (c *CompanyClient) Get(ctx context.Context, id string) (*Company, error) {
	return c.Query().Where(company.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompanyClient) GetX(ctx context.Context, id string) *Company {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CompanyClient) Hooks() []Hook {
	return c.hooks.Company
}

// Interceptors returns the client interceptors.
func (c *CompanyClient) Interceptors() []Interceptor {
	return c.inters.Company
}

func (c *CompanyClient) mutate(ctx context.Context, m *CompanyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Company mutation op: %q", m.Op())
	}
}

// CompanyReviewClient is a client for the CompanyReview schema.
type CompanyReviewClient struct {
	config
}

// NewCompanyReviewClient returns a client for the CompanyReview from the given config.
func NewCompanyReviewClient(c config) *CompanyReviewClient {
	return &CompanyReviewClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `companyreview.Hooks(f(g(h())))`.
func (c *CompanyReviewClient) Use(hooks ...Hook) {
	c.hooks.CompanyReview = append(c.hooks.CompanyReview, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `companyreview.Intercept(f(g(h())))`.
func (c *CompanyReviewClient) Intercept(interceptors ...Interceptor) {
	c.inters.CompanyReview = append(c.inters.CompanyReview, interceptors...)
}

// Create returns a builder for creating a CompanyReview entity.
func (c *CompanyReviewClient) Create() *CompanyReviewCreate {
	mutation := newCompanyReviewMutation(c.config, OpCreate)
	return &CompanyReviewCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CompanyReview entities.
func (c *CompanyReviewClient) CreateBulk(builders ...*CompanyReviewCreate) *CompanyReviewCreateBulk {
	return &CompanyReviewCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompanyReviewClient) MapCreateBulk(slice any, setFunc func(*CompanyReviewCreate, int)) *CompanyReviewCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompanyReviewCreateBulk{err: fmt.Errorf("calling to CompanyReviewClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompanyReviewCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompanyReviewCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CompanyReview.
func (c *CompanyReviewClient) Update() *CompanyReviewUpdate {
	mutation := newCompanyReviewMutation(c.config, OpUpdate)
	return &CompanyReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompanyReviewClient) UpdateOne(_m *CompanyReview) *CompanyReviewUpdateOne {
	mutation := newCompanyReviewMutation(c.config, OpUpdateOne, withCompanyReview(_m))
	return &CompanyReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompanyReviewClient) UpdateOneID(id int) *CompanyReviewUpdateOne {
	mutation := newCompanyReviewMutation(c.config, OpUpdateOne, withCompanyReviewID(id))
	return &CompanyReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CompanyReview.
func (c *CompanyReviewClient) Delete() *CompanyReviewDelete {
	mutation := newCompanyReviewMutation(c.config, OpDelete)
	return &CompanyReviewDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompanyReviewClient) DeleteOne(_m *CompanyReview) *CompanyReviewDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompanyReviewClient) DeleteOneID(id int) *CompanyReviewDeleteOne {
	builder := c.Delete().Where(companyreview.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompanyReviewDeleteOne{builder}
}

// Query returns a query builder for CompanyReview.
func (c *CompanyReviewClient) Query() *CompanyReviewQuery {
	return &CompanyReviewQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompanyReview},
		inters: c.Interceptors(),
	}
}

// Get returns a CompanyReview entity by its id.
func (c *CompanyReviewClient) Get(ctx context.Context, id int) (*CompanyReview, error) {
	return c.Query().Where(companyreview.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompanyReviewClient) GetX(ctx context.Context, id int) *CompanyReview {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CompanyReviewClient) Hooks() []Hook {
	return c.hooks.CompanyReview
}

// Interceptors returns the client interceptors.
func (c *CompanyReviewClient) Interceptors() []Interceptor {
	return c.inters.CompanyReview
}

func (c *CompanyReviewClient) mutate(ctx context.Context, m *CompanyReviewMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompanyReviewCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompanyReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompanyReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompanyReviewDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CompanyReview mutation op: %q", m.Op())
	}
}

// InterviewEvaluationClient is a client for the InterviewEvaluation schema.
type InterviewEvaluationClient struct {
	config
}

// NewInterviewEvaluationClient returns a client for the InterviewEvaluation from the given config.
func NewInterviewEvaluationClient(c config) *InterviewEvaluationClient {
	return &InterviewEvaluationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interviewevaluation.Hooks(f(g(h())))`.
func (c *InterviewEvaluationClient) Use(hooks ...Hook) {
	c.hooks.InterviewEvaluation = append(c.hooks.InterviewEvaluation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interviewevaluation.Intercept(f(g(h())))`.
func (c *InterviewEvaluationClient) Intercept(interceptors ...Interceptor) {
	c.inters.InterviewEvaluation = append(c.inters.InterviewEvaluation, interceptors...)
}

// Create returns a builder for creating a InterviewEvaluation entity.
func (c *InterviewEvaluationClient) Create() *InterviewEvaluationCreate {
	mutation := newInterviewEvaluationMutation(c.config, OpCreate)
	return &InterviewEvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InterviewEvaluation entities.
func (c *InterviewEvaluationClient) CreateBulk(builders ...*InterviewEvaluationCreate) *InterviewEvaluationCreateBulk {
	return &InterviewEvaluationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InterviewEvaluationClient) MapCreateBulk(slice any, setFunc func(*InterviewEvaluationCreate, int)) *InterviewEvaluationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InterviewEvaluationCreateBulk{err: fmt.Errorf("calling to InterviewEvaluationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InterviewEvaluationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InterviewEvaluationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InterviewEvaluation.
func (c *InterviewEvaluationClient) Update() *InterviewEvaluationUpdate {
	mutation := newInterviewEvaluationMutation(c.config, OpUpdate)
	return &InterviewEvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InterviewEvaluationClient) UpdateOne(_m *InterviewEvaluation) *InterviewEvaluationUpdateOne {
	mutation := newInterviewEvaluationMutation(c.config, OpUpdateOne, withInterviewEvaluation(_m))
	return &InterviewEvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InterviewEvaluationClient) UpdateOneID(id int) *InterviewEvaluationUpdateOne {
	mutation := newInterviewEvaluationMutation(c.config, OpUpdateOne, withInterviewEvaluationID(id))
	return &InterviewEvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InterviewEvaluation.
func (c *InterviewEvaluationClient) Delete() *InterviewEvaluationDelete {
	mutation := newInterviewEvaluationMutation(c.config, OpDelete)
	return &InterviewEvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InterviewEvaluationClient) DeleteOne(_m *InterviewEvaluation) *InterviewEvaluationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InterviewEvaluationClient) DeleteOneID(id int) *InterviewEvaluationDeleteOne {
	builder := c.Delete().Where(interviewevaluation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InterviewEvaluationDeleteOne{builder}
}

// Query returns a query builder for InterviewEvaluation.
func (c *InterviewEvaluationClient) Query() *InterviewEvaluationQuery {
	return &InterviewEvaluationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInterviewEvaluation},
		inters: c.Interceptors(),
	}
}

// Get returns a InterviewEvaluation entity by its id.
func (c *InterviewEvaluationClient) Get(ctx context.Context, id int) (*InterviewEvaluation, error) {
	return c.Query().Where(interviewevaluation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InterviewEvaluationClient) GetX(ctx context.Context, id int) *InterviewEvaluation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InterviewEvaluationClient) Hooks() []Hook {
	return c.hooks.InterviewEvaluation
}

// Interceptors returns the client interceptors.
func (c *InterviewEvaluationClient) Interceptors() []Interceptor {
	return c.inters.InterviewEvaluation
}

func (c *InterviewEvaluationClient) mutate(ctx context.Context, m *InterviewEvaluationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InterviewEvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InterviewEvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InterviewEvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InterviewEvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InterviewEvaluation mutation op: %q", m.Op())
	}
}

// InterviewQAClient is a client for the InterviewQA schema.
type InterviewQAClient struct {
	config
}

// NewInterviewQAClient returns a client for the InterviewQA from the given config.
func NewInterviewQAClient(c config) *InterviewQAClient {
	return &InterviewQAClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interviewqa.Hooks(f(g(h())))`.
func (c *InterviewQAClient) Use(hooks ...Hook) {
	c.hooks.InterviewQA = append(c.hooks.InterviewQA, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interviewqa.Intercept(f(g(h())))`.
func (c *InterviewQAClient) Intercept(interceptors ...Interceptor) {
	c.inters.InterviewQA = append(c.inters.InterviewQA, interceptors...)
}

// Create returns a builder for creating a InterviewQA entity.
func (c *InterviewQAClient) Create() *InterviewQACreate {
	mutation := newInterviewQAMutation(c.config, OpCreate)
	return &InterviewQACreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InterviewQA entities.
func (c *InterviewQAClient) CreateBulk(builders ...*InterviewQACreate) *InterviewQACreateBulk {
	return &InterviewQACreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InterviewQAClient) MapCreateBulk(slice any, setFunc func(*InterviewQACreate, int)) *InterviewQACreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InterviewQACreateBulk{err: fmt.Errorf("calling to InterviewQAClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InterviewQACreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InterviewQACreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InterviewQA.
func (c *InterviewQAClient) Update() *InterviewQAUpdate {
	mutation := newInterviewQAMutation(c.config, OpUpdate)
	return &InterviewQAUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InterviewQAClient) UpdateOne(_m *InterviewQA) *InterviewQAUpdateOne {
	mutation := newInterviewQAMutation(c.config, OpUpdateOne, withInterviewQA(_m))
	return &InterviewQAUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InterviewQAClient) UpdateOneID(id int) *InterviewQAUpdateOne {
	mutation := newInterviewQAMutation(c.config, OpUpdateOne, withInterviewQAID(id))
	return &InterviewQAUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InterviewQA.
func (c *InterviewQAClient) Delete() *InterviewQADelete {
	mutation := newInterviewQAMutation(c.config, OpDelete)
	return &InterviewQADelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InterviewQAClient) DeleteOne(_m *InterviewQA) *InterviewQADeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InterviewQAClient) DeleteOneID(id int) *InterviewQADeleteOne {
	builder := c.Delete().Where(interviewqa.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InterviewQADeleteOne{builder}
}

// Query returns a query builder for InterviewQA.
func (c *InterviewQAClient) Query() *InterviewQAQuery {
	return &InterviewQAQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInterviewQA},
		inters: c.Interceptors(),
	}
}

// Get returns a InterviewQA entity by its id.
func (c *InterviewQAClient) Get(ctx context.Context, id int) (*InterviewQA, error) {
	return c.Query().Where(interviewqa.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InterviewQAClient) GetX(ctx context.Context, id int) *InterviewQA {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InterviewQAClient) Hooks() []Hook {
	return c.hooks.InterviewQA
}

// Interceptors returns the client interceptors.
func (c *InterviewQAClient) Interceptors() []Interceptor {
	return c.inters.InterviewQA
}

func (c *InterviewQAClient) mutate(ctx context.Context, m *InterviewQAMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InterviewQACreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InterviewQAUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InterviewQAUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InterviewQADelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InterviewQA mutation op: %q", m.Op())
	}
}

// InterviewSessionClient is a client for the InterviewSession schema.
type InterviewSessionClient struct {
	config
}

// NewInterviewSessionClient returns a client for the InterviewSession from the given config.
func NewInterviewSessionClient(c config) *InterviewSessionClient {
	return &InterviewSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interviewsession.Hooks(f(g(h())))`.
func (c *InterviewSessionClient) Use(hooks ...Hook) {
	c.hooks.InterviewSession = append(c.hooks.InterviewSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interviewsession.Intercept(f(g(h())))`.
func (c *InterviewSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.InterviewSession = append(c.inters.InterviewSession, interceptors...)
}

// Create returns a builder for creating a InterviewSession entity.
func (c *InterviewSessionClient) Create() *InterviewSessionCreate {
	mutation := newInterviewSessionMutation(c.config, OpCreate)
	return &InterviewSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InterviewSession entities.
func (c *InterviewSessionClient) CreateBulk(builders ...*InterviewSessionCreate) *InterviewSessionCreateBulk {
	return &InterviewSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InterviewSessionClient) MapCreateBulk(slice any, setFunc func(*InterviewSessionCreate, int)) *InterviewSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InterviewSessionCreateBulk{err: fmt.Errorf("calling to InterviewSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InterviewSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InterviewSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InterviewSession.
func (c *InterviewSessionClient) Update() *InterviewSessionUpdate {
	mutation := newInterviewSessionMutation(c.config, OpUpdate)
	return &InterviewSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InterviewSessionClient) UpdateOne(_m *InterviewSession) *InterviewSessionUpdateOne {
	mutation := newInterviewSessionMutation(c.config, OpUpdateOne, withInterviewSession(_m))
	return &InterviewSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InterviewSessionClient) UpdateOneID(id string) *InterviewSessionUpdateOne {
	mutation := newInterviewSessionMutation(c.config, OpUpdateOne, withInterviewSessionID(id))
	return &InterviewSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InterviewSession.
func (c *InterviewSessionClient) Delete() *InterviewSessionDelete {
	mutation := newInterviewSessionMutation(c.config, OpDelete)
	return &InterviewSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InterviewSessionClient) DeleteOne(_m *InterviewSession) *InterviewSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InterviewSessionClient) DeleteOneID(id string) *InterviewSessionDeleteOne {
	builder := c.Delete().Where(interviewsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InterviewSessionDeleteOne{builder}
}

// Query returns a query builder for InterviewSession.
func (c *InterviewSessionClient) Query() *InterviewSessionQuery {
	return &InterviewSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInterviewSession},
		inters: c.Interceptors(),
	}
}

// Get returns a InterviewSession entity by its id.
func (c *InterviewSessionClient) Get(ctx context.Context, id string) (*InterviewSession, error) {
	return c.Query().Where(interviewsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InterviewSessionClient) GetX(ctx context.Context, id string) *InterviewSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InterviewSessionClient) Hooks() []Hook {
	return c.hooks.InterviewSession
}

// Interceptors returns the client interceptors.
func (c *InterviewSessionClient) Interceptors() []Interceptor {
	return c.inters.InterviewSession
}

func (c *InterviewSessionClient) mutate(ctx context.Context, m *InterviewSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InterviewSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InterviewSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InterviewSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InterviewSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InterviewSession mutation op: %q", m.Op())
	}
}

// MemberClient is a client for the Member schema.
type MemberClient struct {
	config
}

// NewMemberClient returns a client for the Member from the given config.
func NewMemberClient(c config) *MemberClient {
	return &MemberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `member.Hooks(f(g(h())))`.
func (c *MemberClient) Use(hooks ...Hook) {
	c.hooks.Member = append(c.hooks.Member, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `member.Intercept(f(g(h())))`.
func (c *MemberClient) Intercept(interceptors ...Interceptor) {
	c.inters.Member = append(c.inters.Member, interceptors...)
}

// Create returns a builder for creating a Member entity.
func (c *MemberClient) Create() *MemberCreate {
	mutation := newMemberMutation(c.config, OpCreate)
	return &MemberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Member entities.
func (c *MemberClient) CreateBulk(builders ...*MemberCreate) *MemberCreateBulk {
	return &MemberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MemberClient) MapCreateBulk(slice any, setFunc func(*MemberCreate, int)) *MemberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MemberCreateBulk{err: fmt.Errorf("calling to MemberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MemberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MemberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Member.
func (c *MemberClient) Update() *MemberUpdate {
	mutation := newMemberMutation(c.config, OpUpdate)
	return &MemberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MemberClient) UpdateOne(_m *Member) *MemberUpdateOne {
	mutation := newMemberMutation(c.config, OpUpdateOne, withMember(_m))
	return &MemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MemberClient) UpdateOneID(id string) *MemberUpdateOne {
	mutation := newMemberMutation(c.config, OpUpdateOne, withMemberID(id))
	return &MemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Member.
func (c *MemberClient) Delete() *MemberDelete {
	mutation := newMemberMutation(c.config, OpDelete)
	return &MemberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MemberClient) DeleteOne(_m *Member) *MemberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MemberClient) DeleteOneID(id string) *MemberDeleteOne {
	builder := c.Delete().Where(member.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MemberDeleteOne{builder}
}

// Query returns a query builder for Member.
func (c *MemberClient) Query() *MemberQuery {
	return &MemberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMember},
		inters: c.Interceptors(),
	}
}

// Get returns a Member entity by its id.
func (c *MemberClient) Get(ctx context.Context, id string) (*Member, error) {
	return c.Query().Where(member.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MemberClient) GetX(ctx context.Context, id string) *Member {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MemberClient) Hooks() []Hook {
	return c.hooks.Member
}

// Interceptors returns the client interceptors.
func (c *MemberClient) Interceptors() []Interceptor {
	return c.inters.Member
}

func (c *MemberClient) mutate(ctx context.Context, m *MemberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MemberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MemberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MemberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Member mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Company, CompanyReview, InterviewEvaluation, InterviewQA, InterviewSession,
		Member []ent.Hook
	}
	inters struct {
		Company, CompanyReview, InterviewEvaluation, InterviewQA, InterviewSession,
		Member []ent.Interceptor
	}
)
