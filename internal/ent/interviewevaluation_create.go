// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"mockview/internal/ent/interviewevaluation"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// InterviewEvaluationCreate is the builder for creating a InterviewEvaluation entity.
type InterviewEvaluationCreate struct {
	config
	mutation *InterviewEvaluationMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *InterviewEvaluationCreate) SetSessionID(v string) *InterviewEvaluationCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTotalScore sets the "total_score" field.
func (_c *InterviewEvaluationCreate) SetTotalScore(v int) *InterviewEvaluationCreate {
	_c.mutation.SetTotalScore(v)
	return _c
}

// SetTechnicalScore sets the "technical_score" field.
func (_c *InterviewEvaluationCreate) SetTechnicalScore(v int) *InterviewEvaluationCreate {
	_c.mutation.SetTechnicalScore(v)
	return _c
}

// SetCollaborationScore sets the "collaboration_score" field.
func (_c *InterviewEvaluationCreate) SetCollaborationScore(v int) *InterviewEvaluationCreate {
	_c.mutation.SetCollaborationScore(v)
	return _c
}

// SetProblemSolvingScore sets the "problem_solving_score" field.
func (_c *InterviewEvaluationCreate) SetProblemSolvingScore(v int) *InterviewEvaluationCreate {
	_c.mutation.SetProblemSolvingScore(v)
	return _c
}

// SetGrowthScore sets the "growth_score" field.
func (_c *InterviewEvaluationCreate) SetGrowthScore(v int) *InterviewEvaluationCreate {
	_c.mutation.SetGrowthScore(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *InterviewEvaluationCreate) SetSummary(v string) *InterviewEvaluationCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *InterviewEvaluationCreate) SetNillableSummary(v *string) *InterviewEvaluationCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetStrengths sets the "strengths" field.
func (_c *InterviewEvaluationCreate) SetStrengths(v string) *InterviewEvaluationCreate {
	_c.mutation.SetStrengths(v)
	return _c
}

// SetNillableStrengths sets the "strengths" field if the given value is not nil.
func (_c *InterviewEvaluationCreate) SetNillableStrengths(v *string) *InterviewEvaluationCreate {
	if v != nil {
		_c.SetStrengths(*v)
	}
	return _c
}

// SetImprovements sets the "improvements" field.
func (_c *InterviewEvaluationCreate) SetImprovements(v string) *InterviewEvaluationCreate {
	_c.mutation.SetImprovements(v)
	return _c
}

// SetNillableImprovements sets the "improvements" field if the given value is not nil.
func (_c *InterviewEvaluationCreate) SetNillableImprovements(v *string) *InterviewEvaluationCreate {
	if v != nil {
		_c.SetImprovements(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InterviewEvaluationCreate) SetCreatedAt(v time.Time) *InterviewEvaluationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InterviewEvaluationCreate) SetNillableCreatedAt(v *time.Time) *InterviewEvaluationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InterviewEvaluationCreate) SetID(v int) *InterviewEvaluationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the InterviewEvaluationMutation object of the builder.
func (_c *InterviewEvaluationCreate) Mutation() *InterviewEvaluationMutation {
	return _c.mutation
}

// Save creates the InterviewEvaluation in the database.
func (_c *InterviewEvaluationCreate) Save(ctx context.Context) (*InterviewEvaluation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterviewEvaluationCreate) SaveX(ctx context.Context) *InterviewEvaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewEvaluationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewEvaluationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterviewEvaluationCreate) defaults() {
	if _, ok := _c.mutation.Summary(); !ok {
		v := interviewevaluation.DefaultSummary
		_c.mutation.SetSummary(v)
	}
	if _, ok := _c.mutation.Strengths(); !ok {
		v := interviewevaluation.DefaultStrengths
		_c.mutation.SetStrengths(v)
	}
	if _, ok := _c.mutation.Improvements(); !ok {
		v := interviewevaluation.DefaultImprovements
		_c.mutation.SetImprovements(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := interviewevaluation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterviewEvaluationCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "InterviewEvaluation.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := interviewevaluation.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterviewEvaluation.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		return &ValidationError{Name: "total_score", err: errors.New(`ent: missing required field "InterviewEvaluation.total_score"`)}
	}
	if _, ok := _c.mutation.TechnicalScore(); !ok {
		return &ValidationError{Name: "technical_score", err: errors.New(`ent: missing required field "InterviewEvaluation.technical_score"`)}
	}
	if _, ok := _c.mutation.CollaborationScore(); !ok {
		return &ValidationError{Name: "collaboration_score", err: errors.New(`ent: missing required field "InterviewEvaluation.collaboration_score"`)}
	}
	if _, ok := _c.mutation.ProblemSolvingScore(); !ok {
		return &ValidationError{Name: "problem_solving_score", err: errors.New(`ent: missing required field "InterviewEvaluation.problem_solving_score"`)}
	}
	if _, ok := _c.mutation.GrowthScore(); !ok {
		return &ValidationError{Name: "growth_score", err: errors.New(`ent: missing required field "InterviewEvaluation.growth_score"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "InterviewEvaluation.summary"`)}
	}
	if _, ok := _c.mutation.Strengths(); !ok {
		return &ValidationError{Name: "strengths", err: errors.New(`ent: missing required field "InterviewEvaluation.strengths"`)}
	}
	if _, ok := _c.mutation.Improvements(); !ok {
		return &ValidationError{Name: "improvements", err: errors.New(`ent: missing required field "InterviewEvaluation.improvements"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InterviewEvaluation.created_at"`)}
	}
	return nil
}

func (_c *InterviewEvaluationCreate) sqlSave(ctx context.Context) (*InterviewEvaluation, error) {
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

func (_c *InterviewEvaluationCreate) createSpec() (*InterviewEvaluation, *sqlgraph.CreateSpec) {
	var (
		_node = &InterviewEvaluation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interviewevaluation.Table, sqlgraph.NewFieldSpec(interviewevaluation.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(interviewevaluation.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TotalScore(); ok {
		_spec.SetField(interviewevaluation.FieldTotalScore, field.TypeInt, value)
		_node.TotalScore = value
	}
	if value, ok := _c.mutation.TechnicalScore(); ok {
		_spec.SetField(interviewevaluation.FieldTechnicalScore, field.TypeInt, value)
		_node.TechnicalScore = value
	}
	if value, ok := _c.mutation.CollaborationScore(); ok {
		_spec.SetField(interviewevaluation.FieldCollaborationScore, field.TypeInt, value)
		_node.CollaborationScore = value
	}
	if value, ok := _c.mutation.ProblemSolvingScore(); ok {
		_spec.SetField(interviewevaluation.FieldProblemSolvingScore, field.TypeInt, value)
		_node.ProblemSolvingScore = value
	}
	if value, ok := _c.mutation.GrowthScore(); ok {
		_spec.SetField(interviewevaluation.FieldGrowthScore, field.TypeInt, value)
		_node.GrowthScore = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(interviewevaluation.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Strengths(); ok {
		_spec.SetField(interviewevaluation.FieldStrengths, field.TypeString, value)
		_node.Strengths = value
	}
	if value, ok := _c.mutation.Improvements(); ok {
		_spec.SetField(interviewevaluation.FieldImprovements, field.TypeString, value)
		_node.Improvements = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(interviewevaluation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// InterviewEvaluationCreateBulk is the builder for creating many InterviewEvaluation entities in bulk.
type InterviewEvaluationCreateBulk struct {
	config
	err      error
	builders []*InterviewEvaluationCreate
}

// Save creates the InterviewEvaluation entities in the database.
func (_c *InterviewEvaluationCreateBulk) Save(ctx context.Context) ([]*InterviewEvaluation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InterviewEvaluation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterviewEvaluationMutation)
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
func (_c *InterviewEvaluationCreateBulk) SaveX(ctx context.Context) []*InterviewEvaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewEvaluationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewEvaluationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
