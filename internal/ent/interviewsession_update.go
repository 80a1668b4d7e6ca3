// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"mockview/internal/ent/interviewsession"
	"mockview/internal/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// InterviewSessionUpdate is the builder for updating InterviewSession entities.
type InterviewSessionUpdate struct {
	config
	hooks    []Hook
	mutation *InterviewSessionMutation
}

// Where appends a list predicates to the InterviewSessionUpdate builder.
func (_u *InterviewSessionUpdate) Where(ps ...predicate.InterviewSession) *InterviewSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMemberID sets the "member_id" field.
func (_u *InterviewSessionUpdate) SetMemberID(v string) *InterviewSessionUpdate {
	_u.mutation.SetMemberID(v)
	return _u
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableMemberID(v *string) *InterviewSessionUpdate {
	if v != nil {
		_u.SetMemberID(*v)
	}
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *InterviewSessionUpdate) SetCompanyID(v string) *InterviewSessionUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableCompanyID(v *string) *InterviewSessionUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetField sets the "field" field.
func (_u *InterviewSessionUpdate) SetField(v string) *InterviewSessionUpdate {
	_u.mutation.SetFieldField(v)
	return _u
}

// SetNillableField sets the "field" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableField(v *string) *InterviewSessionUpdate {
	if v != nil {
		_u.SetField(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InterviewSessionUpdate) SetStatus(v string) *InterviewSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableStatus(v *string) *InterviewSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *InterviewSessionUpdate) SetStartedAt(v time.Time) *InterviewSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableStartedAt(v *time.Time) *InterviewSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *InterviewSessionUpdate) SetCompletedAt(v time.Time) *InterviewSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableCompletedAt(v *time.Time) *InterviewSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *InterviewSessionUpdate) ClearCompletedAt() *InterviewSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the InterviewSessionMutation object of the builder.
func (_u *InterviewSessionUpdate) Mutation() *InterviewSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterviewSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterviewSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewSessionUpdate) check() error {
	if v, ok := _u.mutation.MemberID(); ok {
		if err := interviewsession.MemberIDValidator(v); err != nil {
			return &ValidationError{Name: "member_id", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.member_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompanyID(); ok {
		if err := interviewsession.CompanyIDValidator(v); err != nil {
			return &ValidationError{Name: "company_id", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.company_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetField(); ok {
		if err := interviewsession.FieldValidator(v); err != nil {
			return &ValidationError{Name: "field", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.field": %w`, err)}
		}
	}
	return nil
}

func (_u *InterviewSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewsession.Table, interviewsession.Columns, sqlgraph.NewFieldSpec(interviewsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MemberID(); ok {
		_spec.SetField(interviewsession.FieldMemberID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(interviewsession.FieldCompanyID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetField(); ok {
		_spec.SetField(interviewsession.FieldField, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(interviewsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(interviewsession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(interviewsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(interviewsession.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterviewSessionUpdateOne is the builder for updating a single InterviewSession entity.
type InterviewSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterviewSessionMutation
}

// SetMemberID sets the "member_id" field.
func (_u *InterviewSessionUpdateOne) SetMemberID(v string) *InterviewSessionUpdateOne {
	_u.mutation.SetMemberID(v)
	return _u
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableMemberID(v *string) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetMemberID(*v)
	}
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *InterviewSessionUpdateOne) SetCompanyID(v string) *InterviewSessionUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableCompanyID(v *string) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetField sets the "field" field.
func (_u *InterviewSessionUpdateOne) SetField(v string) *InterviewSessionUpdateOne {
	_u.mutation.SetFieldField(v)
	return _u
}

// SetNillableField sets the "field" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableField(v *string) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetField(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InterviewSessionUpdateOne) SetStatus(v string) *InterviewSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableStatus(v *string) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *InterviewSessionUpdateOne) SetStartedAt(v time.Time) *InterviewSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableStartedAt(v *time.Time) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *InterviewSessionUpdateOne) SetCompletedAt(v time.Time) *InterviewSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *InterviewSessionUpdateOne) ClearCompletedAt() *InterviewSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the InterviewSessionMutation object of the builder.
func (_u *InterviewSessionUpdateOne) Mutation() *InterviewSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the InterviewSessionUpdate builder.
func (_u *InterviewSessionUpdateOne) Where(ps ...predicate.InterviewSession) *InterviewSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterviewSessionUpdateOne) Select(field string, fields ...string) *InterviewSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InterviewSession entity.
func (_u *InterviewSessionUpdateOne) Save(ctx context.Context) (*InterviewSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewSessionUpdateOne) SaveX(ctx context.Context) *InterviewSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterviewSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewSessionUpdateOne) check() error {
	if v, ok := _u.mutation.MemberID(); ok {
		if err := interviewsession.MemberIDValidator(v); err != nil {
			return &ValidationError{Name: "member_id", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.member_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompanyID(); ok {
		if err := interviewsession.CompanyIDValidator(v); err != nil {
			return &ValidationError{Name: "company_id", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.company_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetField(); ok {
		if err := interviewsession.FieldValidator(v); err != nil {
			return &ValidationError{Name: "field", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.field": %w`, err)}
		}
	}
	return nil
}

func (_u *InterviewSessionUpdateOne) sqlSave(ctx context.Context) (_node *InterviewSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewsession.Table, interviewsession.Columns, sqlgraph.NewFieldSpec(interviewsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InterviewSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interviewsession.FieldID)
		for _, f := range fields {
			if !interviewsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interviewsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MemberID(); ok {
		_spec.SetField(interviewsession.FieldMemberID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(interviewsession.FieldCompanyID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetField(); ok {
		_spec.SetField(interviewsession.FieldField, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(interviewsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(interviewsession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(interviewsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(interviewsession.FieldCompletedAt, field.TypeTime)
	}
	_node = &InterviewSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
