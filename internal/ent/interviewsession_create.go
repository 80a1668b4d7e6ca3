// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"mockview/internal/ent/interviewsession"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// InterviewSessionCreate is the builder for creating a InterviewSession entity.
type InterviewSessionCreate struct {
	config
	mutation *InterviewSessionMutation
	hooks    []Hook
}

// SetMemberID sets the "member_id" field.
func (_c *InterviewSessionCreate) SetMemberID(v string) *InterviewSessionCreate {
	_c.mutation.SetMemberID(v)
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *InterviewSessionCreate) SetCompanyID(v string) *InterviewSessionCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetField sets the "field" field.
func (_c *InterviewSessionCreate) SetField(v string) *InterviewSessionCreate {
	_c.mutation.SetFieldField(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *InterviewSessionCreate) SetStatus(v string) *InterviewSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InterviewSessionCreate) SetNillableStatus(v *string) *InterviewSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *InterviewSessionCreate) SetStartedAt(v time.Time) *InterviewSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *InterviewSessionCreate) SetCompletedAt(v time.Time) *InterviewSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *InterviewSessionCreate) SetNillableCompletedAt(v *time.Time) *InterviewSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InterviewSessionCreate) SetID(v string) *InterviewSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the InterviewSessionMutation object of the builder.
func (_c *InterviewSessionCreate) Mutation() *InterviewSessionMutation {
	return _c.mutation
}

// Save creates the InterviewSession in the database.
func (_c *InterviewSessionCreate) Save(ctx context.Context) (*InterviewSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterviewSessionCreate) SaveX(ctx context.Context) *InterviewSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterviewSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := interviewsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterviewSessionCreate) check() error {
	if _, ok := _c.mutation.MemberID(); !ok {
		return &ValidationError{Name: "member_id", err: errors.New(`ent: missing required field "InterviewSession.member_id"`)}
	}
	if v, ok := _c.mutation.MemberID(); ok {
		if err := interviewsession.MemberIDValidator(v); err != nil {
			return &ValidationError{Name: "member_id", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.member_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "InterviewSession.company_id"`)}
	}
	if v, ok := _c.mutation.CompanyID(); ok {
		if err := interviewsession.CompanyIDValidator(v); err != nil {
			return &ValidationError{Name: "company_id", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.company_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetField(); !ok {
		return &ValidationError{Name: "field", err: errors.New(`ent: missing required field "InterviewSession.field"`)}
	}
	if v, ok := _c.mutation.GetField(); ok {
		if err := interviewsession.FieldValidator(v); err != nil {
			return &ValidationError{Name: "field", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.field": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "InterviewSession.status"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "InterviewSession.started_at"`)}
	}
	return nil
}

func (_c *InterviewSessionCreate) sqlSave(ctx context.Context) (*InterviewSession, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected InterviewSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InterviewSessionCreate) createSpec() (*InterviewSession, *sqlgraph.CreateSpec) {
	var (
		_node = &InterviewSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interviewsession.Table, sqlgraph.NewFieldSpec(interviewsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.MemberID(); ok {
		_spec.SetField(interviewsession.FieldMemberID, field.TypeString, value)
		_node.MemberID = value
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(interviewsession.FieldCompanyID, field.TypeString, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.GetField(); ok {
		_spec.SetField(interviewsession.FieldField, field.TypeString, value)
		_node.Field = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(interviewsession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(interviewsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(interviewsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// InterviewSessionCreateBulk is the builder for creating many InterviewSession entities in bulk.
type InterviewSessionCreateBulk struct {
	config
	err      error
	builders []*InterviewSessionCreate
}

// Save creates the InterviewSession entities in the database.
func (_c *InterviewSessionCreateBulk) Save(ctx context.Context) ([]*InterviewSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InterviewSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterviewSessionMutation)
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
func (_c *InterviewSessionCreateBulk) SaveX(ctx context.Context) []*InterviewSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
