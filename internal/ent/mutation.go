// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"mockview/internal/ent/company"
	"mockview/internal/ent/companyreview"
	"mockview/internal/ent/interviewevaluation"
	"mockview/internal/ent/interviewqa"
	"mockview/internal/ent/interviewsession"
	"mockview/internal/ent/member"
	"mockview/internal/ent/predicate"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCompany             = "Company"
	TypeCompanyReview       = "CompanyReview"
	TypeInterviewEvaluation = "InterviewEvaluation"
	TypeInterviewQA         = "InterviewQA"
	TypeInterviewSession    = "InterviewSession"
	TypeMember              = "Member"
)

// CompanyMutation represents an operation that mutates the Company nodes in the graph.
type CompanyMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Company, error)
	predicates    []predicate.Company
}

var _ ent.Mutation = (*CompanyMutation)(nil)

// companyOption allows management of the mutation configuration using functional options.
type companyOption func(*CompanyMutation)

// newCompanyMutation creates new mutation for the Company entity.
func newCompanyMutation(c config, op Op, opts ...companyOption) *CompanyMutation {
	m := &CompanyMutation{
		config:        c,
		op:            op,
		typ:           TypeCompany,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyID sets the ID field of the mutation.
func withCompanyID(id string) companyOption {
	return func(m *CompanyMutation) {
		var (
			err   error
			once  sync.Once
			value *Company
		)
		m.oldValue = func(ctx context.Context) (*Company, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Company.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompany sets the old Company of the mutation.
func withCompany(node *Company) companyOption {
	return func(m *CompanyMutation) {
		m.oldValue = func(context.Context) (*Company, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Company entities.
func (m *CompanyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Company.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CompanyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompanyMutation) ResetName() {
	m.name = nil
}

// Where appends a list predicates to the CompanyMutation builder.
func (m *CompanyMutation) Where(ps ...predicate.Company) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Company, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Company).
func (m *CompanyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyMutation) Fields() []string {
	fields := make([]string, 0, 1)
	if m.name != nil {
		fields = append(fields, company.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case company.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case company.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Company field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case company.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Company numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Company nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyMutation) ResetField(name string) error {
	switch name {
	case company.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Company unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Company edge %s", name)
}

// CompanyReviewMutation represents an operation that mutates the CompanyReview nodes in the graph.
type CompanyReviewMutation struct {
	config
	op             Op
	typ            string
	id             *int
	company_id     *string
	field          *string
	difficulty     *string
	questions_text *string
	summary_text   *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*CompanyReview, error)
	predicates     []predicate.CompanyReview
}

var _ ent.Mutation = (*CompanyReviewMutation)(nil)

// companyreviewOption allows management of the mutation configuration using functional options.
type companyreviewOption func(*CompanyReviewMutation)

// newCompanyReviewMutation creates new mutation for the CompanyReview entity.
func newCompanyReviewMutation(c config, op Op, opts ...companyreviewOption) *CompanyReviewMutation {
	m := &CompanyReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeCompanyReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyReviewID sets the ID field of the mutation.
func withCompanyReviewID(id int) companyreviewOption {
	return func(m *CompanyReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *CompanyReview
		)
		m.oldValue = func(ctx context.Context) (*CompanyReview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CompanyReview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompanyReview sets the old CompanyReview of the mutation.
func withCompanyReview(node *CompanyReview) companyreviewOption {
	return func(m *CompanyReviewMutation) {
		m.oldValue = func(context.Context) (*CompanyReview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CompanyReview entities.
func (m *CompanyReviewMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyReviewMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyReviewMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CompanyReview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *CompanyReviewMutation) SetCompanyID(s string) {
	m.company_id = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *CompanyReviewMutation) CompanyID() (r string, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the CompanyReview entity.
// If the CompanyReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyReviewMutation) OldCompanyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *CompanyReviewMutation) ResetCompanyID() {
	m.company_id = nil
}

// SetFieldField sets the "field" field.
func (m *CompanyReviewMutation) SetFieldField(s string) {
	m.field = &s
}

// GetField returns the value of the "field" field in the mutation.
func (m *CompanyReviewMutation) GetField() (r string, exists bool) {
	v := m.field
	if v == nil {
		return
	}
	return *v, true
}

// GetOldField returns the old "field" field's value of the CompanyReview entity.
// If the CompanyReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyReviewMutation) GetOldField(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("GetOldField is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("GetOldField requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for GetOldField: %w", err)
	}
	return oldValue.Field, nil
}

// ResetFieldField resets all changes to the "field" field.
func (m *CompanyReviewMutation) ResetFieldField() {
	m.field = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *CompanyReviewMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *CompanyReviewMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the CompanyReview entity.
// If the CompanyReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyReviewMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *CompanyReviewMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetQuestionsText sets the "questions_text" field.
func (m *CompanyReviewMutation) SetQuestionsText(s string) {
	m.questions_text = &s
}

// QuestionsText returns the value of the "questions_text" field in the mutation.
func (m *CompanyReviewMutation) QuestionsText() (r string, exists bool) {
	v := m.questions_text
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsText returns the old "questions_text" field's value of the CompanyReview entity.
// If the CompanyReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyReviewMutation) OldQuestionsText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsText: %w", err)
	}
	return oldValue.QuestionsText, nil
}

// ResetQuestionsText resets all changes to the "questions_text" field.
func (m *CompanyReviewMutation) ResetQuestionsText() {
	m.questions_text = nil
}

// SetSummaryText sets the "summary_text" field.
func (m *CompanyReviewMutation) SetSummaryText(s string) {
	m.summary_text = &s
}

// SummaryText returns the value of the "summary_text" field in the mutation.
func (m *CompanyReviewMutation) SummaryText() (r string, exists bool) {
	v := m.summary_text
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryText returns the old "summary_text" field's value of the CompanyReview entity.
// If the CompanyReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyReviewMutation) OldSummaryText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryText: %w", err)
	}
	return oldValue.SummaryText, nil
}

// ResetSummaryText resets all changes to the "summary_text" field.
func (m *CompanyReviewMutation) ResetSummaryText() {
	m.summary_text = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyReviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyReviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CompanyReview entity.
// If the CompanyReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyReviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CompanyReviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CompanyReviewMutation builder.
func (m *CompanyReviewMutation) Where(ps ...predicate.CompanyReview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CompanyReview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CompanyReview).
func (m *CompanyReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyReviewMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.company_id != nil {
		fields = append(fields, companyreview.FieldCompanyID)
	}
	if m.field != nil {
		fields = append(fields, companyreview.FieldField)
	}
	if m.difficulty != nil {
		fields = append(fields, companyreview.FieldDifficulty)
	}
	if m.questions_text != nil {
		fields = append(fields, companyreview.FieldQuestionsText)
	}
	if m.summary_text != nil {
		fields = append(fields, companyreview.FieldSummaryText)
	}
	if m.created_at != nil {
		fields = append(fields, companyreview.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case companyreview.FieldCompanyID:
		return m.CompanyID()
	case companyreview.FieldField:
		return m.GetField()
	case companyreview.FieldDifficulty:
		return m.Difficulty()
	case companyreview.FieldQuestionsText:
		return m.QuestionsText()
	case companyreview.FieldSummaryText:
		return m.SummaryText()
	case companyreview.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case companyreview.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case companyreview.FieldField:
		return m.GetOldField(ctx)
	case companyreview.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case companyreview.FieldQuestionsText:
		return m.OldQuestionsText(ctx)
	case companyreview.FieldSummaryText:
		return m.OldSummaryText(ctx)
	case companyreview.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CompanyReview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case companyreview.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case companyreview.FieldField:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldField(v)
		return nil
	case companyreview.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case companyreview.FieldQuestionsText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsText(v)
		return nil
	case companyreview.FieldSummaryText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryText(v)
		return nil
	case companyreview.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CompanyReview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyReviewMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyReviewMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CompanyReview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyReviewMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyReviewMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CompanyReview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyReviewMutation) ResetField(name string) error {
	switch name {
	case companyreview.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case companyreview.FieldField:
		m.ResetFieldField()
		return nil
	case companyreview.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case companyreview.FieldQuestionsText:
		m.ResetQuestionsText()
		return nil
	case companyreview.FieldSummaryText:
		m.ResetSummaryText()
		return nil
	case companyreview.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CompanyReview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyReviewMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyReviewMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyReviewMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CompanyReview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyReviewMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CompanyReview edge %s", name)
}

// InterviewEvaluationMutation represents an operation that mutates the InterviewEvaluation nodes in the graph.
type InterviewEvaluationMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	session_id               *string
	total_score              *int
	addtotal_score           *int
	technical_score          *int
	addtechnical_score       *int
	collaboration_score      *int
	addcollaboration_score   *int
	problem_solving_score    *int
	addproblem_solving_score *int
	growth_score             *int
	addgrowth_score          *int
	summary                  *string
	strengths                *string
	improvements             *string
	created_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*InterviewEvaluation, error)
	predicates               []predicate.InterviewEvaluation
}

var _ ent.Mutation = (*InterviewEvaluationMutation)(nil)

// interviewevaluationOption allows management of the mutation configuration using functional options.
type interviewevaluationOption func(*InterviewEvaluationMutation)

// newInterviewEvaluationMutation creates new mutation for the InterviewEvaluation entity.
func newInterviewEvaluationMutation(c config, op Op, opts ...interviewevaluationOption) *InterviewEvaluationMutation {
	m := &InterviewEvaluationMutation{
		config:        c,
		op:            op,
		typ:           TypeInterviewEvaluation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInterviewEvaluationID sets the ID field of the mutation.
func withInterviewEvaluationID(id int) interviewevaluationOption {
	return func(m *InterviewEvaluationMutation) {
		var (
			err   error
			once  sync.Once
			value *InterviewEvaluation
		)
		m.oldValue = func(ctx context.Context) (*InterviewEvaluation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InterviewEvaluation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInterviewEvaluation sets the old InterviewEvaluation of the mutation.
func withInterviewEvaluation(node *InterviewEvaluation) interviewevaluationOption {
	return func(m *InterviewEvaluationMutation) {
		m.oldValue = func(context.Context) (*InterviewEvaluation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InterviewEvaluationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InterviewEvaluationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InterviewEvaluation entities.
func (m *InterviewEvaluationMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InterviewEvaluationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InterviewEvaluationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InterviewEvaluation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *InterviewEvaluationMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *InterviewEvaluationMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the InterviewEvaluation entity.
// If the InterviewEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewEvaluationMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *InterviewEvaluationMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTotalScore sets the "total_score" field.
func (m *InterviewEvaluationMutation) SetTotalScore(i int) {
	m.total_score = &i
	m.addtotal_score = nil
}

// TotalScore returns the value of the "total_score" field in the mutation.
func (m *InterviewEvaluationMutation) TotalScore() (r int, exists bool) {
	v := m.total_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalScore returns the old "total_score" field's value of the InterviewEvaluation entity.
// If the InterviewEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewEvaluationMutation) OldTotalScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalScore: %w", err)
	}
	return oldValue.TotalScore, nil
}

// AddTotalScore adds i to the "total_score" field.
func (m *InterviewEvaluationMutation) AddTotalScore(i int) {
	if m.addtotal_score != nil {
		*m.addtotal_score += i
	} else {
		m.addtotal_score = &i
	}
}

// AddedTotalScore returns the value that was added to the "total_score" field in this mutation.
func (m *InterviewEvaluationMutation) AddedTotalScore() (r int, exists bool) {
	v := m.addtotal_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalScore resets all changes to the "total_score" field.
func (m *InterviewEvaluationMutation) ResetTotalScore() {
	m.total_score = nil
	m.addtotal_score = nil
}

// SetTechnicalScore sets the "technical_score" field.
func (m *InterviewEvaluationMutation) SetTechnicalScore(i int) {
	m.technical_score = &i
	m.addtechnical_score = nil
}

// TechnicalScore returns the value of the "technical_score" field in the mutation.
func (m *InterviewEvaluationMutation) TechnicalScore() (r int, exists bool) {
	v := m.technical_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTechnicalScore returns the old "technical_score" field's value of the InterviewEvaluation entity.
// If the InterviewEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewEvaluationMutation) OldTechnicalScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTechnicalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTechnicalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTechnicalScore: %w", err)
	}
	return oldValue.TechnicalScore, nil
}

// AddTechnicalScore adds i to the "technical_score" field.
func (m *InterviewEvaluationMutation) AddTechnicalScore(i int) {
	if m.addtechnical_score != nil {
		*m.addtechnical_score += i
	} else {
		m.addtechnical_score = &i
	}
}

// AddedTechnicalScore returns the value that was added to the "technical_score" field in this mutation.
func (m *InterviewEvaluationMutation) AddedTechnicalScore() (r int, exists bool) {
	v := m.addtechnical_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTechnicalScore resets all changes to the "technical_score" field.
func (m *InterviewEvaluationMutation) ResetTechnicalScore() {
	m.technical_score = nil
	m.addtechnical_score = nil
}

// SetCollaborationScore sets the "collaboration_score" field.
func (m *InterviewEvaluationMutation) SetCollaborationScore(i int) {
	m.collaboration_score = &i
	m.addcollaboration_score = nil
}

// CollaborationScore returns the value of the "collaboration_score" field in the mutation.
func (m *InterviewEvaluationMutation) CollaborationScore() (r int, exists bool) {
	v := m.collaboration_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCollaborationScore returns the old "collaboration_score" field's value of the InterviewEvaluation entity.
// If the InterviewEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewEvaluationMutation) OldCollaborationScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollaborationScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollaborationScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollaborationScore: %w", err)
	}
	return oldValue.CollaborationScore, nil
}

// AddCollaborationScore adds i to the "collaboration_score" field.
func (m *InterviewEvaluationMutation) AddCollaborationScore(i int) {
	if m.addcollaboration_score != nil {
		*m.addcollaboration_score += i
	} else {
		m.addcollaboration_score = &i
	}
}

// AddedCollaborationScore returns the value that was added to the "collaboration_score" field in this mutation.
func (m *InterviewEvaluationMutation) AddedCollaborationScore() (r int, exists bool) {
	v := m.addcollaboration_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetCollaborationScore resets all changes to the "collaboration_score" field.
func (m *InterviewEvaluationMutation) ResetCollaborationScore() {
	m.collaboration_score = nil
	m.addcollaboration_score = nil
}

// SetProblemSolvingScore sets the "problem_solving_score" field.
func (m *InterviewEvaluationMutation) SetProblemSolvingScore(i int) {
	m.problem_solving_score = &i
	m.addproblem_solving_score = nil
}

// ProblemSolvingScore returns the value of the "problem_solving_score" field in the mutation.
func (m *InterviewEvaluationMutation) ProblemSolvingScore() (r int, exists bool) {
	v := m.problem_solving_score
	if v == nil {
		return
	}
	return *v, true
}

// OldProblemSolvingScore returns the old "problem_solving_score" field's value of the InterviewEvaluation entity.
// If the InterviewEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewEvaluationMutation) OldProblemSolvingScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProblemSolvingScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProblemSolvingScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProblemSolvingScore: %w", err)
	}
	return oldValue.ProblemSolvingScore, nil
}

// AddProblemSolvingScore adds i to the "problem_solving_score" field.
func (m *InterviewEvaluationMutation) AddProblemSolvingScore(i int) {
	if m.addproblem_solving_score != nil {
		*m.addproblem_solving_score += i
	} else {
		m.addproblem_solving_score = &i
	}
}

// AddedProblemSolvingScore returns the value that was added to the "problem_solving_score" field in this mutation.
func (m *InterviewEvaluationMutation) AddedProblemSolvingScore() (r int, exists bool) {
	v := m.addproblem_solving_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetProblemSolvingScore resets all changes to the "problem_solving_score" field.
func (m *InterviewEvaluationMutation) ResetProblemSolvingScore() {
	m.problem_solving_score = nil
	m.addproblem_solving_score = nil
}

// SetGrowthScore sets the "growth_score" field.
func (m *InterviewEvaluationMutation) SetGrowthScore(i int) {
	m.growth_score = &i
	m.addgrowth_score = nil
}

// GrowthScore returns the value of the "growth_score" field in the mutation.
func (m *InterviewEvaluationMutation) GrowthScore() (r int, exists bool) {
	v := m.growth_score
	if v == nil {
		return
	}
	return *v, true
}

// OldGrowthScore returns the old "growth_score" field's value of the InterviewEvaluation entity.
// If the InterviewEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewEvaluationMutation) OldGrowthScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrowthScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrowthScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrowthScore: %w", err)
	}
	return oldValue.GrowthScore, nil
}

// AddGrowthScore adds i to the "growth_score" field.
func (m *InterviewEvaluationMutation) AddGrowthScore(i int) {
	if m.addgrowth_score != nil {
		*m.addgrowth_score += i
	} else {
		m.addgrowth_score = &i
	}
}

// AddedGrowthScore returns the value that was added to the "growth_score" field in this mutation.
func (m *InterviewEvaluationMutation) AddedGrowthScore() (r int, exists bool) {
	v := m.addgrowth_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetGrowthScore resets all changes to the "growth_score" field.
func (m *InterviewEvaluationMutation) ResetGrowthScore() {
	m.growth_score = nil
	m.addgrowth_score = nil
}

// SetSummary sets the "summary" field.
func (m *InterviewEvaluationMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *InterviewEvaluationMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the InterviewEvaluation entity.
// If the InterviewEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewEvaluationMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *InterviewEvaluationMutation) ResetSummary() {
	m.summary = nil
}

// SetStrengths sets the "strengths" field.
func (m *InterviewEvaluationMutation) SetStrengths(s string) {
	m.strengths = &s
}

// Strengths returns the value of the "strengths" field in the mutation.
func (m *InterviewEvaluationMutation) Strengths() (r string, exists bool) {
	v := m.strengths
	if v == nil {
		return
	}
	return *v, true
}

// OldStrengths returns the old "strengths" field's value of the InterviewEvaluation entity.
// If the InterviewEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewEvaluationMutation) OldStrengths(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrengths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrengths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrengths: %w", err)
	}
	return oldValue.Strengths, nil
}

// ResetStrengths resets all changes to the "strengths" field.
func (m *InterviewEvaluationMutation) ResetStrengths() {
	m.strengths = nil
}

// SetImprovements sets the "improvements" field.
func (m *InterviewEvaluationMutation) SetImprovements(s string) {
	m.improvements = &s
}

// Improvements returns the value of the "improvements" field in the mutation.
func (m *InterviewEvaluationMutation) Improvements() (r string, exists bool) {
	v := m.improvements
	if v == nil {
		return
	}
	return *v, true
}

// OldImprovements returns the old "improvements" field's value of the InterviewEvaluation entity.
// If the InterviewEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewEvaluationMutation) OldImprovements(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImprovements is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImprovements requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImprovements: %w", err)
	}
	return oldValue.Improvements, nil
}

// ResetImprovements resets all changes to the "improvements" field.
func (m *InterviewEvaluationMutation) ResetImprovements() {
	m.improvements = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InterviewEvaluationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InterviewEvaluationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InterviewEvaluation entity.
// If the InterviewEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewEvaluationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *InterviewEvaluationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the InterviewEvaluationMutation builder.
func (m *InterviewEvaluationMutation) Where(ps ...predicate.InterviewEvaluation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InterviewEvaluationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InterviewEvaluationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InterviewEvaluation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InterviewEvaluationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InterviewEvaluationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InterviewEvaluation).
func (m *InterviewEvaluationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InterviewEvaluationMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.session_id != nil {
		fields = append(fields, interviewevaluation.FieldSessionID)
	}
	if m.total_score != nil {
		fields = append(fields, interviewevaluation.FieldTotalScore)
	}
	if m.technical_score != nil {
		fields = append(fields, interviewevaluation.FieldTechnicalScore)
	}
	if m.collaboration_score != nil {
		fields = append(fields, interviewevaluation.FieldCollaborationScore)
	}
	if m.problem_solving_score != nil {
		fields = append(fields, interviewevaluation.FieldProblemSolvingScore)
	}
	if m.growth_score != nil {
		fields = append(fields, interviewevaluation.FieldGrowthScore)
	}
	if m.summary != nil {
		fields = append(fields, interviewevaluation.FieldSummary)
	}
	if m.strengths != nil {
		fields = append(fields, interviewevaluation.FieldStrengths)
	}
	if m.improvements != nil {
		fields = append(fields, interviewevaluation.FieldImprovements)
	}
	if m.created_at != nil {
		fields = append(fields, interviewevaluation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InterviewEvaluationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interviewevaluation.FieldSessionID:
		return m.SessionID()
	case interviewevaluation.FieldTotalScore:
		return m.TotalScore()
	case interviewevaluation.FieldTechnicalScore:
		return m.TechnicalScore()
	case interviewevaluation.FieldCollaborationScore:
		return m.CollaborationScore()
	case interviewevaluation.FieldProblemSolvingScore:
		return m.ProblemSolvingScore()
	case interviewevaluation.FieldGrowthScore:
		return m.GrowthScore()
	case interviewevaluation.FieldSummary:
		return m.Summary()
	case interviewevaluation.FieldStrengths:
		return m.Strengths()
	case interviewevaluation.FieldImprovements:
		return m.Improvements()
	case interviewevaluation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InterviewEvaluationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interviewevaluation.FieldSessionID:
		return m.OldSessionID(ctx)
	case interviewevaluation.FieldTotalScore:
		return m.OldTotalScore(ctx)
	case interviewevaluation.FieldTechnicalScore:
		return m.OldTechnicalScore(ctx)
	case interviewevaluation.FieldCollaborationScore:
		return m.OldCollaborationScore(ctx)
	case interviewevaluation.FieldProblemSolvingScore:
		return m.OldProblemSolvingScore(ctx)
	case interviewevaluation.FieldGrowthScore:
		return m.OldGrowthScore(ctx)
	case interviewevaluation.FieldSummary:
		return m.OldSummary(ctx)
	case interviewevaluation.FieldStrengths:
		return m.OldStrengths(ctx)
	case interviewevaluation.FieldImprovements:
		return m.OldImprovements(ctx)
	case interviewevaluation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InterviewEvaluation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterviewEvaluationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interviewevaluation.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case interviewevaluation.FieldTotalScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalScore(v)
		return nil
	case interviewevaluation.FieldTechnicalScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTechnicalScore(v)
		return nil
	case interviewevaluation.FieldCollaborationScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollaborationScore(v)
		return nil
	case interviewevaluation.FieldProblemSolvingScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProblemSolvingScore(v)
		return nil
	case interviewevaluation.FieldGrowthScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrowthScore(v)
		return nil
	case interviewevaluation.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case interviewevaluation.FieldStrengths:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrengths(v)
		return nil
	case interviewevaluation.FieldImprovements:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImprovements(v)
		return nil
	case interviewevaluation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InterviewEvaluation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InterviewEvaluationMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_score != nil {
		fields = append(fields, interviewevaluation.FieldTotalScore)
	}
	if m.addtechnical_score != nil {
		fields = append(fields, interviewevaluation.FieldTechnicalScore)
	}
	if m.addcollaboration_score != nil {
		fields = append(fields, interviewevaluation.FieldCollaborationScore)
	}
	if m.addproblem_solving_score != nil {
		fields = append(fields, interviewevaluation.FieldProblemSolvingScore)
	}
	if m.addgrowth_score != nil {
		fields = append(fields, interviewevaluation.FieldGrowthScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InterviewEvaluationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case interviewevaluation.FieldTotalScore:
		return m.AddedTotalScore()
	case interviewevaluation.FieldTechnicalScore:
		return m.AddedTechnicalScore()
	case interviewevaluation.FieldCollaborationScore:
		return m.AddedCollaborationScore()
	case interviewevaluation.FieldProblemSolvingScore:
		return m.AddedProblemSolvingScore()
	case interviewevaluation.FieldGrowthScore:
		return m.AddedGrowthScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterviewEvaluationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case interviewevaluation.FieldTotalScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalScore(v)
		return nil
	case interviewevaluation.FieldTechnicalScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTechnicalScore(v)
		return nil
	case interviewevaluation.FieldCollaborationScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCollaborationScore(v)
		return nil
	case interviewevaluation.FieldProblemSolvingScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProblemSolvingScore(v)
		return nil
	case interviewevaluation.FieldGrowthScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrowthScore(v)
		return nil
	}
	return fmt.Errorf("unknown InterviewEvaluation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InterviewEvaluationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InterviewEvaluationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InterviewEvaluationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown InterviewEvaluation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InterviewEvaluationMutation) ResetField(name string) error {
	switch name {
	case interviewevaluation.FieldSessionID:
		m.ResetSessionID()
		return nil
	case interviewevaluation.FieldTotalScore:
		m.ResetTotalScore()
		return nil
	case interviewevaluation.FieldTechnicalScore:
		m.ResetTechnicalScore()
		return nil
	case interviewevaluation.FieldCollaborationScore:
		m.ResetCollaborationScore()
		return nil
	case interviewevaluation.FieldProblemSolvingScore:
		m.ResetProblemSolvingScore()
		return nil
	case interviewevaluation.FieldGrowthScore:
		m.ResetGrowthScore()
		return nil
	case interviewevaluation.FieldSummary:
		m.ResetSummary()
		return nil
	case interviewevaluation.FieldStrengths:
		m.ResetStrengths()
		return nil
	case interviewevaluation.FieldImprovements:
		m.ResetImprovements()
		return nil
	case interviewevaluation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown InterviewEvaluation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InterviewEvaluationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InterviewEvaluationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InterviewEvaluationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InterviewEvaluationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InterviewEvaluationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InterviewEvaluationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InterviewEvaluationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InterviewEvaluation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InterviewEvaluationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InterviewEvaluation edge %s", name)
}

// InterviewQAMutation represents an operation that mutates the InterviewQA nodes in the graph.
type InterviewQAMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	session_id         *string
	main_order         *int
	addmain_order      *int
	follow_up_order    *int
	addfollow_up_order *int
	question_text      *string
	answer_text        *string
	audio_ref          *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*InterviewQA, error)
	predicates         []predicate.InterviewQA
}

var _ ent.Mutation = (*InterviewQAMutation)(nil)

// interviewqaOption allows management of the mutation configuration using functional options.
type interviewqaOption func(*InterviewQAMutation)

// newInterviewQAMutation creates new mutation for the InterviewQA entity.
func newInterviewQAMutation(c config, op Op, opts ...interviewqaOption) *InterviewQAMutation {
	m := &InterviewQAMutation{
		config:        c,
		op:            op,
		typ:           TypeInterviewQA,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInterviewQAID sets the ID field of the mutation.
func withInterviewQAID(id int) interviewqaOption {
	return func(m *InterviewQAMutation) {
		var (
			err   error
			once  sync.Once
			value *InterviewQA
		)
		m.oldValue = func(ctx context.Context) (*InterviewQA, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InterviewQA.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInterviewQA sets the old InterviewQA of the mutation.
func withInterviewQA(node *InterviewQA) interviewqaOption {
	return func(m *InterviewQAMutation) {
		m.oldValue = func(context.Context) (*InterviewQA, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InterviewQAMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InterviewQAMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InterviewQA entities.
func (m *InterviewQAMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InterviewQAMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InterviewQAMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InterviewQA.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *InterviewQAMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *InterviewQAMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the InterviewQA entity.
// If the InterviewQA object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewQAMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *InterviewQAMutation) ResetSessionID() {
	m.session_id = nil
}

// SetMainOrder sets the "main_order" field.
func (m *InterviewQAMutation) SetMainOrder(i int) {
	m.main_order = &i
	m.addmain_order = nil
}

// MainOrder returns the value of the "main_order" field in the mutation.
func (m *InterviewQAMutation) MainOrder() (r int, exists bool) {
	v := m.main_order
	if v == nil {
		return
	}
	return *v, true
}

// OldMainOrder returns the old "main_order" field's value of the InterviewQA entity.
// If the InterviewQA object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewQAMutation) OldMainOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMainOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMainOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMainOrder: %w", err)
	}
	return oldValue.MainOrder, nil
}

// AddMainOrder adds i to the "main_order" field.
func (m *InterviewQAMutation) AddMainOrder(i int) {
	if m.addmain_order != nil {
		*m.addmain_order += i
	} else {
		m.addmain_order = &i
	}
}

// AddedMainOrder returns the value that was added to the "main_order" field in this mutation.
func (m *InterviewQAMutation) AddedMainOrder() (r int, exists bool) {
	v := m.addmain_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetMainOrder resets all changes to the "main_order" field.
func (m *InterviewQAMutation) ResetMainOrder() {
	m.main_order = nil
	m.addmain_order = nil
}

// SetFollowUpOrder sets the "follow_up_order" field.
func (m *InterviewQAMutation) SetFollowUpOrder(i int) {
	m.follow_up_order = &i
	m.addfollow_up_order = nil
}

// FollowUpOrder returns the value of the "follow_up_order" field in the mutation.
func (m *InterviewQAMutation) FollowUpOrder() (r int, exists bool) {
	v := m.follow_up_order
	if v == nil {
		return
	}
	return *v, true
}

// OldFollowUpOrder returns the old "follow_up_order" field's value of the InterviewQA entity.
// If the InterviewQA object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewQAMutation) OldFollowUpOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFollowUpOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFollowUpOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFollowUpOrder: %w", err)
	}
	return oldValue.FollowUpOrder, nil
}

// AddFollowUpOrder adds i to the "follow_up_order" field.
func (m *InterviewQAMutation) AddFollowUpOrder(i int) {
	if m.addfollow_up_order != nil {
		*m.addfollow_up_order += i
	} else {
		m.addfollow_up_order = &i
	}
}

// AddedFollowUpOrder returns the value that was added to the "follow_up_order" field in this mutation.
func (m *InterviewQAMutation) AddedFollowUpOrder() (r int, exists bool) {
	v := m.addfollow_up_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetFollowUpOrder resets all changes to the "follow_up_order" field.
func (m *InterviewQAMutation) ResetFollowUpOrder() {
	m.follow_up_order = nil
	m.addfollow_up_order = nil
}

// SetQuestionText sets the "question_text" field.
func (m *InterviewQAMutation) SetQuestionText(s string) {
	m.question_text = &s
}

// QuestionText returns the value of the "question_text" field in the mutation.
func (m *InterviewQAMutation) QuestionText() (r string, exists bool) {
	v := m.question_text
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionText returns the old "question_text" field's value of the InterviewQA entity.
// If the InterviewQA object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewQAMutation) OldQuestionText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionText: %w", err)
	}
	return oldValue.QuestionText, nil
}

// ResetQuestionText resets all changes to the "question_text" field.
func (m *InterviewQAMutation) ResetQuestionText() {
	m.question_text = nil
}

// SetAnswerText sets the "answer_text" field.
func (m *InterviewQAMutation) SetAnswerText(s string) {
	m.answer_text = &s
}

// AnswerText returns the value of the "answer_text" field in the mutation.
func (m *InterviewQAMutation) AnswerText() (r string, exists bool) {
	v := m.answer_text
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerText returns the old "answer_text" field's value of the InterviewQA entity.
// If the InterviewQA object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewQAMutation) OldAnswerText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerText: %w", err)
	}
	return oldValue.AnswerText, nil
}

// ClearAnswerText clears the value of the "answer_text" field.
func (m *InterviewQAMutation) ClearAnswerText() {
	m.answer_text = nil
	m.clearedFields[interviewqa.FieldAnswerText] = struct{}{}
}

// AnswerTextCleared returns if the "answer_text" field was cleared in this mutation.
func (m *InterviewQAMutation) AnswerTextCleared() bool {
	_, ok := m.clearedFields[interviewqa.FieldAnswerText]
	return ok
}

// ResetAnswerText resets all changes to the "answer_text" field.
func (m *InterviewQAMutation) ResetAnswerText() {
	m.answer_text = nil
	delete(m.clearedFields, interviewqa.FieldAnswerText)
}

// SetAudioRef sets the "audio_ref" field.
func (m *InterviewQAMutation) SetAudioRef(s string) {
	m.audio_ref = &s
}

// AudioRef returns the value of the "audio_ref" field in the mutation.
func (m *InterviewQAMutation) AudioRef() (r string, exists bool) {
	v := m.audio_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldAudioRef returns the old "audio_ref" field's value of the InterviewQA entity.
// If the InterviewQA object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewQAMutation) OldAudioRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudioRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudioRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudioRef: %w", err)
	}
	return oldValue.AudioRef, nil
}

// ResetAudioRef resets all changes to the "audio_ref" field.
func (m *InterviewQAMutation) ResetAudioRef() {
	m.audio_ref = nil
}

// Where appends a list predicates to the InterviewQAMutation builder.
func (m *InterviewQAMutation) Where(ps ...predicate.InterviewQA) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InterviewQAMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InterviewQAMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InterviewQA, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InterviewQAMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InterviewQAMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InterviewQA).
func (m *InterviewQAMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InterviewQAMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session_id != nil {
		fields = append(fields, interviewqa.FieldSessionID)
	}
	if m.main_order != nil {
		fields = append(fields, interviewqa.FieldMainOrder)
	}
	if m.follow_up_order != nil {
		fields = append(fields, interviewqa.FieldFollowUpOrder)
	}
	if m.question_text != nil {
		fields = append(fields, interviewqa.FieldQuestionText)
	}
	if m.answer_text != nil {
		fields = append(fields, interviewqa.FieldAnswerText)
	}
	if m.audio_ref != nil {
		fields = append(fields, interviewqa.FieldAudioRef)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InterviewQAMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interviewqa.FieldSessionID:
		return m.SessionID()
	case interviewqa.FieldMainOrder:
		return m.MainOrder()
	case interviewqa.FieldFollowUpOrder:
		return m.FollowUpOrder()
	case interviewqa.FieldQuestionText:
		return m.QuestionText()
	case interviewqa.FieldAnswerText:
		return m.AnswerText()
	case interviewqa.FieldAudioRef:
		return m.AudioRef()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InterviewQAMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interviewqa.FieldSessionID:
		return m.OldSessionID(ctx)
	case interviewqa.FieldMainOrder:
		return m.OldMainOrder(ctx)
	case interviewqa.FieldFollowUpOrder:
		return m.OldFollowUpOrder(ctx)
	case interviewqa.FieldQuestionText:
		return m.OldQuestionText(ctx)
	case interviewqa.FieldAnswerText:
		return m.OldAnswerText(ctx)
	case interviewqa.FieldAudioRef:
		return m.OldAudioRef(ctx)
	}
	return nil, fmt.Errorf("unknown InterviewQA field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterviewQAMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interviewqa.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case interviewqa.FieldMainOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMainOrder(v)
		return nil
	case interviewqa.FieldFollowUpOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFollowUpOrder(v)
		return nil
	case interviewqa.FieldQuestionText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionText(v)
		return nil
	case interviewqa.FieldAnswerText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerText(v)
		return nil
	case interviewqa.FieldAudioRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudioRef(v)
		return nil
	}
	return fmt.Errorf("unknown InterviewQA field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InterviewQAMutation) AddedFields() []string {
	var fields []string
	if m.addmain_order != nil {
		fields = append(fields, interviewqa.FieldMainOrder)
	}
	if m.addfollow_up_order != nil {
		fields = append(fields, interviewqa.FieldFollowUpOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InterviewQAMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case interviewqa.FieldMainOrder:
		return m.AddedMainOrder()
	case interviewqa.FieldFollowUpOrder:
		return m.AddedFollowUpOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterviewQAMutation) AddField(name string, value ent.Value) error {
	switch name {
	case interviewqa.FieldMainOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMainOrder(v)
		return nil
	case interviewqa.FieldFollowUpOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFollowUpOrder(v)
		return nil
	}
	return fmt.Errorf("unknown InterviewQA numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InterviewQAMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(interviewqa.FieldAnswerText) {
		fields = append(fields, interviewqa.FieldAnswerText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InterviewQAMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InterviewQAMutation) ClearField(name string) error {
	switch name {
	case interviewqa.FieldAnswerText:
		m.ClearAnswerText()
		return nil
	}
	return fmt.Errorf("unknown InterviewQA nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InterviewQAMutation) ResetField(name string) error {
	switch name {
	case interviewqa.FieldSessionID:
		m.ResetSessionID()
		return nil
	case interviewqa.FieldMainOrder:
		m.ResetMainOrder()
		return nil
	case interviewqa.FieldFollowUpOrder:
		m.ResetFollowUpOrder()
		return nil
	case interviewqa.FieldQuestionText:
		m.ResetQuestionText()
		return nil
	case interviewqa.FieldAnswerText:
		m.ResetAnswerText()
		return nil
	case interviewqa.FieldAudioRef:
		m.ResetAudioRef()
		return nil
	}
	return fmt.Errorf("unknown InterviewQA field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InterviewQAMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InterviewQAMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InterviewQAMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InterviewQAMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InterviewQAMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InterviewQAMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InterviewQAMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InterviewQA unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InterviewQAMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InterviewQA edge %s", name)
}

// InterviewSessionMutation represents an operation that mutates the InterviewSession nodes in the graph.
type InterviewSessionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	member_id     *string
	company_id    *string
	field         *string
	status        *string
	started_at    *time.Time
	completed_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*InterviewSession, error)
	predicates    []predicate.InterviewSession
}

var _ ent.Mutation = (*InterviewSessionMutation)(nil)

// interviewsessionOption allows management of the mutation configuration using functional options.
type interviewsessionOption func(*InterviewSessionMutation)

// newInterviewSessionMutation creates new mutation for the InterviewSession entity.
func newInterviewSessionMutation(c config, op Op, opts ...interviewsessionOption) *InterviewSessionMutation {
	m := &InterviewSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeInterviewSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInterviewSessionID sets the ID field of the mutation.
func withInterviewSessionID(id string) interviewsessionOption {
	return func(m *InterviewSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *InterviewSession
		)
		m.oldValue = func(ctx context.Context) (*InterviewSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InterviewSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInterviewSession sets the old InterviewSession of the mutation.
func withInterviewSession(node *InterviewSession) interviewsessionOption {
	return func(m *InterviewSessionMutation) {
		m.oldValue = func(context.Context) (*InterviewSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InterviewSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InterviewSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InterviewSession entities.
func (m *InterviewSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InterviewSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InterviewSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InterviewSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMemberID sets the "member_id" field.
func (m *InterviewSessionMutation) SetMemberID(s string) {
	m.member_id = &s
}

// MemberID returns the value of the "member_id" field in the mutation.
func (m *InterviewSessionMutation) MemberID() (r string, exists bool) {
	v := m.member_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberID returns the old "member_id" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldMemberID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberID: %w", err)
	}
	return oldValue.MemberID, nil
}

// ResetMemberID resets all changes to the "member_id" field.
func (m *InterviewSessionMutation) ResetMemberID() {
	m.member_id = nil
}

// SetCompanyID sets the "company_id" field.
func (m *InterviewSessionMutation) SetCompanyID(s string) {
	m.company_id = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *InterviewSessionMutation) CompanyID() (r string, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldCompanyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *InterviewSessionMutation) ResetCompanyID() {
	m.company_id = nil
}

// SetFieldField sets the "field" field.
func (m *InterviewSessionMutation) SetFieldField(s string) {
	m.field = &s
}

// GetField returns the value of the "field" field in the mutation.
func (m *InterviewSessionMutation) GetField() (r string, exists bool) {
	v := m.field
	if v == nil {
		return
	}
	return *v, true
}

// GetOldField returns the old "field" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) GetOldField(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("GetOldField is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("GetOldField requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for GetOldField: %w", err)
	}
	return oldValue.Field, nil
}

// ResetFieldField resets all changes to the "field" field.
func (m *InterviewSessionMutation) ResetFieldField() {
	m.field = nil
}

// SetStatus sets the "status" field.
func (m *InterviewSessionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *InterviewSessionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *InterviewSessionMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *InterviewSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *InterviewSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *InterviewSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *InterviewSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *InterviewSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *InterviewSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[interviewsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *InterviewSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[interviewsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *InterviewSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, interviewsession.FieldCompletedAt)
}

// Where appends a list predicates to the InterviewSessionMutation builder.
func (m *InterviewSessionMutation) Where(ps ...predicate.InterviewSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InterviewSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InterviewSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InterviewSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InterviewSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InterviewSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InterviewSession).
func (m *InterviewSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InterviewSessionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.member_id != nil {
		fields = append(fields, interviewsession.FieldMemberID)
	}
	if m.company_id != nil {
		fields = append(fields, interviewsession.FieldCompanyID)
	}
	if m.field != nil {
		fields = append(fields, interviewsession.FieldField)
	}
	if m.status != nil {
		fields = append(fields, interviewsession.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, interviewsession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, interviewsession.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InterviewSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interviewsession.FieldMemberID:
		return m.MemberID()
	case interviewsession.FieldCompanyID:
		return m.CompanyID()
	case interviewsession.FieldField:
		return m.GetField()
	case interviewsession.FieldStatus:
		return m.Status()
	case interviewsession.FieldStartedAt:
		return m.StartedAt()
	case interviewsession.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InterviewSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interviewsession.FieldMemberID:
		return m.OldMemberID(ctx)
	case interviewsession.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case interviewsession.FieldField:
		return m.GetOldField(ctx)
	case interviewsession.FieldStatus:
		return m.OldStatus(ctx)
	case interviewsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case interviewsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InterviewSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterviewSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interviewsession.FieldMemberID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberID(v)
		return nil
	case interviewsession.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case interviewsession.FieldField:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldField(v)
		return nil
	case interviewsession.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case interviewsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case interviewsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InterviewSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InterviewSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InterviewSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterviewSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InterviewSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InterviewSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(interviewsession.FieldCompletedAt) {
		fields = append(fields, interviewsession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InterviewSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InterviewSessionMutation) ClearField(name string) error {
	switch name {
	case interviewsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown InterviewSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InterviewSessionMutation) ResetField(name string) error {
	switch name {
	case interviewsession.FieldMemberID:
		m.ResetMemberID()
		return nil
	case interviewsession.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case interviewsession.FieldField:
		m.ResetFieldField()
		return nil
	case interviewsession.FieldStatus:
		m.ResetStatus()
		return nil
	case interviewsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case interviewsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown InterviewSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InterviewSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InterviewSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InterviewSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InterviewSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InterviewSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InterviewSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InterviewSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InterviewSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InterviewSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InterviewSession edge %s", name)
}

// MemberMutation represents an operation that mutates the Member nodes in the graph.
type MemberMutation struct {
	config
	op              Op
	typ             string
	id              *string
	email           *string
	name            *string
	job_field       *string
	preferred_field *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Member, error)
	predicates      []predicate.Member
}

var _ ent.Mutation = (*MemberMutation)(nil)

// memberOption allows management of the mutation configuration using functional options.
type memberOption func(*MemberMutation)

// newMemberMutation creates new mutation for the Member entity.
func newMemberMutation(c config, op Op, opts ...memberOption) *MemberMutation {
	m := &MemberMutation{
		config:        c,
		op:            op,
		typ:           TypeMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemberID sets the ID field of the mutation.
func withMemberID(id string) memberOption {
	return func(m *MemberMutation) {
		var (
			err   error
			once  sync.Once
			value *Member
		)
		m.oldValue = func(ctx context.Context) (*Member, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Member.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMember sets the old Member of the mutation.
func withMember(node *Member) memberOption {
	return func(m *MemberMutation) {
		m.oldValue = func(context.Context) (*Member, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Member entities.
func (m *MemberMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemberMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemberMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Member.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *MemberMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *MemberMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *MemberMutation) ResetEmail() {
	m.email = nil
}

// SetName sets the "name" field.
func (m *MemberMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MemberMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MemberMutation) ResetName() {
	m.name = nil
}

// SetJobField sets the "job_field" field.
func (m *MemberMutation) SetJobField(s string) {
	m.job_field = &s
}

// JobField returns the value of the "job_field" field in the mutation.
func (m *MemberMutation) JobField() (r string, exists bool) {
	v := m.job_field
	if v == nil {
		return
	}
	return *v, true
}

// OldJobField returns the old "job_field" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldJobField(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobField is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobField requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobField: %w", err)
	}
	return oldValue.JobField, nil
}

// ResetJobField resets all changes to the "job_field" field.
func (m *MemberMutation) ResetJobField() {
	m.job_field = nil
}

// SetPreferredField sets the "preferred_field" field.
func (m *MemberMutation) SetPreferredField(s string) {
	m.preferred_field = &s
}

// PreferredField returns the value of the "preferred_field" field in the mutation.
func (m *MemberMutation) PreferredField() (r string, exists bool) {
	v := m.preferred_field
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredField returns the old "preferred_field" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldPreferredField(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredField is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredField requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredField: %w", err)
	}
	return oldValue.PreferredField, nil
}

// ResetPreferredField resets all changes to the "preferred_field" field.
func (m *MemberMutation) ResetPreferredField() {
	m.preferred_field = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MemberMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MemberMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MemberMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the MemberMutation builder.
func (m *MemberMutation) Where(ps ...predicate.Member) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Member, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Member).
func (m *MemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemberMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.email != nil {
		fields = append(fields, member.FieldEmail)
	}
	if m.name != nil {
		fields = append(fields, member.FieldName)
	}
	if m.job_field != nil {
		fields = append(fields, member.FieldJobField)
	}
	if m.preferred_field != nil {
		fields = append(fields, member.FieldPreferredField)
	}
	if m.created_at != nil {
		fields = append(fields, member.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case member.FieldEmail:
		return m.Email()
	case member.FieldName:
		return m.Name()
	case member.FieldJobField:
		return m.JobField()
	case member.FieldPreferredField:
		return m.PreferredField()
	case member.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case member.FieldEmail:
		return m.OldEmail(ctx)
	case member.FieldName:
		return m.OldName(ctx)
	case member.FieldJobField:
		return m.OldJobField(ctx)
	case member.FieldPreferredField:
		return m.OldPreferredField(ctx)
	case member.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Member field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case member.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case member.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case member.FieldJobField:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobField(v)
		return nil
	case member.FieldPreferredField:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredField(v)
		return nil
	case member.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Member field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemberMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemberMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Member numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemberMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemberMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Member nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemberMutation) ResetField(name string) error {
	switch name {
	case member.FieldEmail:
		m.ResetEmail()
		return nil
	case member.FieldName:
		m.ResetName()
		return nil
	case member.FieldJobField:
		m.ResetJobField()
		return nil
	case member.FieldPreferredField:
		m.ResetPreferredField()
		return nil
	case member.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Member field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemberMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemberMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemberMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Member unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemberMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Member edge %s", name)
}
