// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"mockview/internal/ent/companyreview"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CompanyReviewCreate is the builder for creating a CompanyReview entity.
type CompanyReviewCreate struct {
	config
	mutation *CompanyReviewMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *CompanyReviewCreate) SetCompanyID(v string) *CompanyReviewCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetField sets the "field" field.
func (_c *CompanyReviewCreate) SetField(v string) *CompanyReviewCreate {
	_c.mutation.SetFieldField(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *CompanyReviewCreate) SetDifficulty(v string) *CompanyReviewCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *CompanyReviewCreate) SetNillableDifficulty(v *string) *CompanyReviewCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetQuestionsText sets the "questions_text" field.
func (_c *CompanyReviewCreate) SetQuestionsText(v string) *CompanyReviewCreate {
	_c.mutation.SetQuestionsText(v)
	return _c
}

// SetNillableQuestionsText sets the "questions_text" field if the given value is not nil.
func (_c *CompanyReviewCreate) SetNillableQuestionsText(v *string) *CompanyReviewCreate {
	if v != nil {
		_c.SetQuestionsText(*v)
	}
	return _c
}

// SetSummaryText sets the "summary_text" field.
func (_c *CompanyReviewCreate) SetSummaryText(v string) *CompanyReviewCreate {
	_c.mutation.SetSummaryText(v)
	return _c
}

// SetNillableSummaryText sets the "summary_text" field if the given value is not nil.
func (_c *CompanyReviewCreate) SetNillableSummaryText(v *string) *CompanyReviewCreate {
	if v != nil {
		_c.SetSummaryText(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CompanyReviewCreate) SetCreatedAt(v time.Time) *CompanyReviewCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CompanyReviewCreate) SetNillableCreatedAt(v *time.Time) *CompanyReviewCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CompanyReviewCreate) SetID(v int) *CompanyReviewCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CompanyReviewMutation object of the builder.
func (_c *CompanyReviewCreate) Mutation() *CompanyReviewMutation {
	return _c.mutation
}

// Save creates the CompanyReview in the database.
func (_c *CompanyReviewCreate) Save(ctx context.Context) (*CompanyReview, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompanyReviewCreate) SaveX(ctx context.Context) *CompanyReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyReviewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyReviewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompanyReviewCreate) defaults() {
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := companyreview.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.QuestionsText(); !ok {
		v := companyreview.DefaultQuestionsText
		_c.mutation.SetQuestionsText(v)
	}
	if _, ok := _c.mutation.SummaryText(); !ok {
		v := companyreview.DefaultSummaryText
		_c.mutation.SetSummaryText(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := companyreview.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompanyReviewCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "CompanyReview.company_id"`)}
	}
	if v, ok := _c.mutation.CompanyID(); ok {
		if err := companyreview.CompanyIDValidator(v); err != nil {
			return &ValidationError{Name: "company_id", err: fmt.Errorf(`ent: validator failed for field "CompanyReview.company_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetField(); !ok {
		return &ValidationError{Name: "field", err: errors.New(`ent: missing required field "CompanyReview.field"`)}
	}
	if v, ok := _c.mutation.GetField(); ok {
		if err := companyreview.FieldValidator(v); err != nil {
			return &ValidationError{Name: "field", err: fmt.Errorf(`ent: validator failed for field "CompanyReview.field": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "CompanyReview.difficulty"`)}
	}
	if _, ok := _c.mutation.QuestionsText(); !ok {
		return &ValidationError{Name: "questions_text", err: errors.New(`ent: missing required field "CompanyReview.questions_text"`)}
	}
	if _, ok := _c.mutation.SummaryText(); !ok {
		return &ValidationError{Name: "summary_text", err: errors.New(`ent: missing required field "CompanyReview.summary_text"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CompanyReview.created_at"`)}
	}
	return nil
}

func (_c *CompanyReviewCreate) sqlSave(ctx context.Context) (*CompanyReview, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CompanyReviewCreate) createSpec() (*CompanyReview, *sqlgraph.CreateSpec) {
	var (
		_node = &CompanyReview{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(companyreview.Table, sqlgraph.NewFieldSpec(companyreview.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(companyreview.FieldCompanyID, field.TypeString, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.GetField(); ok {
		_spec.SetField(companyreview.FieldField, field.TypeString, value)
		_node.Field = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(companyreview.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.QuestionsText(); ok {
		_spec.SetField(companyreview.FieldQuestionsText, field.TypeString, value)
		_node.QuestionsText = value
	}
	if value, ok := _c.mutation.SummaryText(); ok {
		_spec.SetField(companyreview.FieldSummaryText, field.TypeString, value)
		_node.SummaryText = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(companyreview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CompanyReviewCreateBulk is the builder for creating many CompanyReview entities in bulk.
type CompanyReviewCreateBulk struct {
	config
	err      error
	builders []*CompanyReviewCreate
}

// Save creates the CompanyReview entities in the database.
func (_c *CompanyReviewCreateBulk) Save(ctx context.Context) ([]*CompanyReview, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompanyReview, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompanyReviewMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CompanyReviewCreateBulk) SaveX(ctx context.Context) []*CompanyReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyReviewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
