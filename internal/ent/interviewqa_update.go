// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"mockview/internal/ent/interviewqa"
	"mockview/internal/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// InterviewQAUpdate is the builder for updating InterviewQA entities.
type InterviewQAUpdate struct {
	config
	hooks    []Hook
	mutation *InterviewQAMutation
}

// Where appends a list predicates to the InterviewQAUpdate builder.
func (_u *InterviewQAUpdate) Where(ps ...predicate.InterviewQA) *InterviewQAUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InterviewQAUpdate) SetSessionID(v string) *InterviewQAUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InterviewQAUpdate) SetNillableSessionID(v *string) *InterviewQAUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetMainOrder sets the "main_order" field.
func (_u *InterviewQAUpdate) SetMainOrder(v int) *InterviewQAUpdate {
	_u.mutation.ResetMainOrder()
	_u.mutation.SetMainOrder(v)
	return _u
}

// SetNillableMainOrder sets the "main_order" field if the given value is not nil.
func (_u *InterviewQAUpdate) SetNillableMainOrder(v *int) *InterviewQAUpdate {
	if v != nil {
		_u.SetMainOrder(*v)
	}
	return _u
}

// AddMainOrder adds value to the "main_order" field.
func (_u *InterviewQAUpdate) AddMainOrder(v int) *InterviewQAUpdate {
	_u.mutation.AddMainOrder(v)
	return _u
}

// SetFollowUpOrder sets the "follow_up_order" field.
func (_u *InterviewQAUpdate) SetFollowUpOrder(v int) *InterviewQAUpdate {
	_u.mutation.ResetFollowUpOrder()
	_u.mutation.SetFollowUpOrder(v)
	return _u
}

// SetNillableFollowUpOrder sets the "follow_up_order" field if the given value is not nil.
func (_u *InterviewQAUpdate) SetNillableFollowUpOrder(v *int) *InterviewQAUpdate {
	if v != nil {
		_u.SetFollowUpOrder(*v)
	}
	return _u
}

// AddFollowUpOrder adds value to the "follow_up_order" field.
func (_u *InterviewQAUpdate) AddFollowUpOrder(v int) *InterviewQAUpdate {
	_u.mutation.AddFollowUpOrder(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *InterviewQAUpdate) SetQuestionText(v string) *InterviewQAUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *InterviewQAUpdate) SetNillableQuestionText(v *string) *InterviewQAUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetAnswerText sets the "answer_text" field.
func (_u *InterviewQAUpdate) SetAnswerText(v string) *InterviewQAUpdate {
	_u.mutation.SetAnswerText(v)
	return _u
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_u *InterviewQAUpdate) SetNillableAnswerText(v *string) *InterviewQAUpdate {
	if v != nil {
		_u.SetAnswerText(*v)
	}
	return _u
}

// ClearAnswerText clears the value of the "answer_text" field.
func (_u *InterviewQAUpdate) ClearAnswerText() *InterviewQAUpdate {
	_u.mutation.ClearAnswerText()
	return _u
}

// SetAudioRef sets the "audio_ref" field.
func (_u *InterviewQAUpdate) SetAudioRef(v string) *InterviewQAUpdate {
	_u.mutation.SetAudioRef(v)
	return _u
}

// SetNillableAudioRef sets the "audio_ref" field if the given value is not nil.
func (_u *InterviewQAUpdate) SetNillableAudioRef(v *string) *InterviewQAUpdate {
	if v != nil {
		_u.SetAudioRef(*v)
	}
	return _u
}

// Mutation returns the InterviewQAMutation object of the builder.
func (_u *InterviewQAUpdate) Mutation() *InterviewQAMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterviewQAUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewQAUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterviewQAUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewQAUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewQAUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := interviewqa.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterviewQA.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MainOrder(); ok {
		if err := interviewqa.MainOrderValidator(v); err != nil {
			return &ValidationError{Name: "main_order", err: fmt.Errorf(`ent: validator failed for field "InterviewQA.main_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FollowUpOrder(); ok {
		if err := interviewqa.FollowUpOrderValidator(v); err != nil {
			return &ValidationError{Name: "follow_up_order", err: fmt.Errorf(`ent: validator failed for field "InterviewQA.follow_up_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := interviewqa.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "InterviewQA.question_text": %w`, err)}
		}
	}
	return nil
}

func (_u *InterviewQAUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewqa.Table, interviewqa.Columns, sqlgraph.NewFieldSpec(interviewqa.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interviewqa.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MainOrder(); ok {
		_spec.SetField(interviewqa.FieldMainOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMainOrder(); ok {
		_spec.AddField(interviewqa.FieldMainOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FollowUpOrder(); ok {
		_spec.SetField(interviewqa.FieldFollowUpOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFollowUpOrder(); ok {
		_spec.AddField(interviewqa.FieldFollowUpOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(interviewqa.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerText(); ok {
		_spec.SetField(interviewqa.FieldAnswerText, field.TypeString, value)
	}
	if _u.mutation.AnswerTextCleared() {
		_spec.ClearField(interviewqa.FieldAnswerText, field.TypeString)
	}
	if value, ok := _u.mutation.AudioRef(); ok {
		_spec.SetField(interviewqa.FieldAudioRef, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewqa.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterviewQAUpdateOne is the builder for updating a single InterviewQA entity.
type InterviewQAUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterviewQAMutation
}

// SetSessionID sets the "session_id" field.
func (_u *InterviewQAUpdateOne) SetSessionID(v string) *InterviewQAUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InterviewQAUpdateOne) SetNillableSessionID(v *string) *InterviewQAUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetMainOrder sets the "main_order" field.
func (_u *InterviewQAUpdateOne) SetMainOrder(v int) *InterviewQAUpdateOne {
	_u.mutation.ResetMainOrder()
	_u.mutation.SetMainOrder(v)
	return _u
}

// SetNillableMainOrder sets the "main_order" field if the given value is not nil.
func (_u *InterviewQAUpdateOne) SetNillableMainOrder(v *int) *InterviewQAUpdateOne {
	if v != nil {
		_u.SetMainOrder(*v)
	}
	return _u
}

// AddMainOrder adds value to the "main_order" field.
func (_u *InterviewQAUpdateOne) AddMainOrder(v int) *InterviewQAUpdateOne {
	_u.mutation.AddMainOrder(v)
	return _u
}

// SetFollowUpOrder sets the "follow_up_order" field.
func (_u *InterviewQAUpdateOne) SetFollowUpOrder(v int) *InterviewQAUpdateOne {
	_u.mutation.ResetFollowUpOrder()
	_u.mutation.SetFollowUpOrder(v)
	return _u
}

// SetNillableFollowUpOrder sets the "follow_up_order" field if the given value is not nil.
func (_u *InterviewQAUpdateOne) SetNillableFollowUpOrder(v *int) *InterviewQAUpdateOne {
	if v != nil {
		_u.SetFollowUpOrder(*v)
	}
	return _u
}

// AddFollowUpOrder adds value to the "follow_up_order" field.
func (_u *InterviewQAUpdateOne) AddFollowUpOrder(v int) *InterviewQAUpdateOne {
	_u.mutation.AddFollowUpOrder(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *InterviewQAUpdateOne) SetQuestionText(v string) *InterviewQAUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *InterviewQAUpdateOne) SetNillableQuestionText(v *string) *InterviewQAUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetAnswerText sets the "answer_text" field.
func (_u *InterviewQAUpdateOne) SetAnswerText(v string) *InterviewQAUpdateOne {
	_u.mutation.SetAnswerText(v)
	return _u
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_u *InterviewQAUpdateOne) SetNillableAnswerText(v *string) *InterviewQAUpdateOne {
	if v != nil {
		_u.SetAnswerText(*v)
	}
	return _u
}

// ClearAnswerText clears the value of the "answer_text" field.
func (_u *InterviewQAUpdateOne) ClearAnswerText() *InterviewQAUpdateOne {
	_u.mutation.ClearAnswerText()
	return _u
}

// SetAudioRef sets the "audio_ref" field.
func (_u *InterviewQAUpdateOne) SetAudioRef(v string) *InterviewQAUpdateOne {
	_u.mutation.SetAudioRef(v)
	return _u
}

// SetNillableAudioRef sets the "audio_ref" field if the given value is not nil.
func (_u *InterviewQAUpdateOne) SetNillableAudioRef(v *string) *InterviewQAUpdateOne {
	if v != nil {
		_u.SetAudioRef(*v)
	}
	return _u
}

// Mutation returns the InterviewQAMutation object of the builder.
func (_u *InterviewQAUpdateOne) Mutation() *InterviewQAMutation {
	return _u.mutation
}

// Where appends a list predicates to the InterviewQAUpdate builder.
func (_u *InterviewQAUpdateOne) Where(ps ...predicate.InterviewQA) *InterviewQAUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterviewQAUpdateOne) Select(field string, fields ...string) *InterviewQAUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InterviewQA entity.
func (_u *InterviewQAUpdateOne) Save(ctx context.Context) (*InterviewQA, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewQAUpdateOne) SaveX(ctx context.Context) *InterviewQA {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterviewQAUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewQAUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewQAUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := interviewqa.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterviewQA.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MainOrder(); ok {
		if err := interviewqa.MainOrderValidator(v); err != nil {
			return &ValidationError{Name: "main_order", err: fmt.Errorf(`ent: validator failed for field "InterviewQA.main_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FollowUpOrder(); ok {
		if err := interviewqa.FollowUpOrderValidator(v); err != nil {
			return &ValidationError{Name: "follow_up_order", err: fmt.Errorf(`ent: validator failed for field "InterviewQA.follow_up_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := interviewqa.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "InterviewQA.question_text": %w`, err)}
		}
	}
	return nil
}

func (_u *InterviewQAUpdateOne) sqlSave(ctx context.Context) (_node *InterviewQA, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewqa.Table, interviewqa.Columns, sqlgraph.NewFieldSpec(interviewqa.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InterviewQA.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interviewqa.FieldID)
		for _, f := range fields {
			if !interviewqa.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interviewqa.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interviewqa.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MainOrder(); ok {
		_spec.SetField(interviewqa.FieldMainOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMainOrder(); ok {
		_spec.AddField(interviewqa.FieldMainOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FollowUpOrder(); ok {
		_spec.SetField(interviewqa.FieldFollowUpOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFollowUpOrder(); ok {
		_spec.AddField(interviewqa.FieldFollowUpOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(interviewqa.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerText(); ok {
		_spec.SetField(interviewqa.FieldAnswerText, field.TypeString, value)
	}
	if _u.mutation.AnswerTextCleared() {
		_spec.ClearField(interviewqa.FieldAnswerText, field.TypeString)
	}
	if value, ok := _u.mutation.AudioRef(); ok {
		_spec.SetField(interviewqa.FieldAudioRef, field.TypeString, value)
	}
	_node = &InterviewQA{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewqa.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
