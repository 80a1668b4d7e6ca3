// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"mockview/internal/ent/interviewqa"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// InterviewQACreate is the builder for creating a InterviewQA entity.
type InterviewQACreate struct {
	config
	mutation *InterviewQAMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *InterviewQACreate) SetSessionID(v string) *InterviewQACreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetMainOrder sets the "main_order" field.
func (_c *InterviewQACreate) SetMainOrder(v int) *InterviewQACreate {
	_c.mutation.SetMainOrder(v)
	return _c
}

// SetFollowUpOrder sets the "follow_up_order" field.
func (_c *InterviewQACreate) SetFollowUpOrder(v int) *InterviewQACreate {
	_c.mutation.SetFollowUpOrder(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *InterviewQACreate) SetQuestionText(v string) *InterviewQACreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetAnswerText sets the "answer_text" field.
func (_c *InterviewQACreate) SetAnswerText(v string) *InterviewQACreate {
	_c.mutation.SetAnswerText(v)
	return _c
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_c *InterviewQACreate) SetNillableAnswerText(v *string) *InterviewQACreate {
	if v != nil {
		_c.SetAnswerText(*v)
	}
	return _c
}

// SetAudioRef sets the "audio_ref" field.
func (_c *InterviewQACreate) SetAudioRef(v string) *InterviewQACreate {
	_c.mutation.SetAudioRef(v)
	return _c
}

// SetNillableAudioRef sets the "audio_ref" field if the given value is not nil.
func (_c *InterviewQACreate) SetNillableAudioRef(v *string) *InterviewQACreate {
	if v != nil {
		_c.SetAudioRef(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InterviewQACreate) SetID(v int) *InterviewQACreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the InterviewQAMutation object of the builder.
func (_c *InterviewQACreate) Mutation() *InterviewQAMutation {
	return _c.mutation
}

// Save creates the InterviewQA in the database.
func (_c *InterviewQACreate) Save(ctx context.Context) (*InterviewQA, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterviewQACreate) SaveX(ctx context.Context) *InterviewQA {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewQACreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewQACreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterviewQACreate) defaults() {
	if _, ok := _c.mutation.AudioRef(); !ok {
		v := interviewqa.DefaultAudioRef
		_c.mutation.SetAudioRef(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterviewQACreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "InterviewQA.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := interviewqa.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterviewQA.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MainOrder(); !ok {
		return &ValidationError{Name: "main_order", err: errors.New(`ent: missing required field "InterviewQA.main_order"`)}
	}
	if v, ok := _c.mutation.MainOrder(); ok {
		if err := interviewqa.MainOrderValidator(v); err != nil {
			return &ValidationError{Name: "main_order", err: fmt.Errorf(`ent: validator failed for field "InterviewQA.main_order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FollowUpOrder(); !ok {
		return &ValidationError{Name: "follow_up_order", err: errors.New(`ent: missing required field "InterviewQA.follow_up_order"`)}
	}
	if v, ok := _c.mutation.FollowUpOrder(); ok {
		if err := interviewqa.FollowUpOrderValidator(v); err != nil {
			return &ValidationError{Name: "follow_up_order", err: fmt.Errorf(`ent: validator failed for field "InterviewQA.follow_up_order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "InterviewQA.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := interviewqa.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "InterviewQA.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AudioRef(); !ok {
		return &ValidationError{Name: "audio_ref", err: errors.New(`ent: missing required field "InterviewQA.audio_ref"`)}
	}
	return nil
}

func (_c *InterviewQACreate) sqlSave(ctx context.Context) (*InterviewQA, error) {
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

func (_c *InterviewQACreate) createSpec() (*InterviewQA, *sqlgraph.CreateSpec) {
	var (
		_node = &InterviewQA{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interviewqa.Table, sqlgraph.NewFieldSpec(interviewqa.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(interviewqa.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.MainOrder(); ok {
		_spec.SetField(interviewqa.FieldMainOrder, field.TypeInt, value)
		_node.MainOrder = value
	}
	if value, ok := _c.mutation.FollowUpOrder(); ok {
		_spec.SetField(interviewqa.FieldFollowUpOrder, field.TypeInt, value)
		_node.FollowUpOrder = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(interviewqa.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.AnswerText(); ok {
		_spec.SetField(interviewqa.FieldAnswerText, field.TypeString, value)
		_node.AnswerText = &value
	}
	if value, ok := _c.mutation.AudioRef(); ok {
		_spec.SetField(interviewqa.FieldAudioRef, field.TypeString, value)
		_node.AudioRef = value
	}
	return _node, _spec
}

// InterviewQACreateBulk is the builder for creating many InterviewQA entities in bulk.
type InterviewQACreateBulk struct {
	config
	err      error
	builders []*InterviewQACreate
}

// Save creates the InterviewQA entities in the database.
func (_c *InterviewQACreateBulk) Save(ctx context.Context) ([]*InterviewQA, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InterviewQA, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterviewQAMutation)
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
func (_c *InterviewQACreateBulk) SaveX(ctx context.Context) []*InterviewQA {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewQACreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewQACreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
