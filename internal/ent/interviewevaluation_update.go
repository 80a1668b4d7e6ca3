// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"mockview/internal/ent/interviewevaluation"
	"mockview/internal/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// InterviewEvaluationUpdate is the builder for updating InterviewEvaluation entities.
type InterviewEvaluationUpdate struct {
	config
	hooks    []Hook
	mutation *InterviewEvaluationMutation
}

// Where appends a list predicates to the InterviewEvaluationUpdate builder.
func (_u *InterviewEvaluationUpdate) Where(ps ...predicate.InterviewEvaluation) *InterviewEvaluationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InterviewEvaluationUpdate) SetSessionID(v string) *InterviewEvaluationUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InterviewEvaluationUpdate) SetNillableSessionID(v *string) *InterviewEvaluationUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *InterviewEvaluationUpdate) SetTotalScore(v int) *InterviewEvaluationUpdate {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *InterviewEvaluationUpdate) SetNillableTotalScore(v *int) *InterviewEvaluationUpdate {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *InterviewEvaluationUpdate) AddTotalScore(v int) *InterviewEvaluationUpdate {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetTechnicalScore sets the "technical_score" field.
func (_u *InterviewEvaluationUpdate) SetTechnicalScore(v int) *InterviewEvaluationUpdate {
	_u.mutation.ResetTechnicalScore()
	_u.mutation.SetTechnicalScore(v)
	return _u
}

// SetNillableTechnicalScore sets the "technical_score" field if the given value is not nil.
func (_u *InterviewEvaluationUpdate) SetNillableTechnicalScore(v *int) *InterviewEvaluationUpdate {
	if v != nil {
		_u.SetTechnicalScore(*v)
	}
	return _u
}

// AddTechnicalScore adds value to the "technical_score" field.
func (_u *InterviewEvaluationUpdate) AddTechnicalScore(v int) *InterviewEvaluationUpdate {
	_u.mutation.AddTechnicalScore(v)
	return _u
}

// SetCollaborationScore sets the "collaboration_score" field.
func (_u *InterviewEvaluationUpdate) SetCollaborationScore(v int) *InterviewEvaluationUpdate {
	_u.mutation.ResetCollaborationScore()
	_u.mutation.SetCollaborationScore(v)
	return _u
}

// SetNillableCollaborationScore sets the "collaboration_score" field if the given value is not nil.
func (_u *InterviewEvaluationUpdate) SetNillableCollaborationScore(v *int) *InterviewEvaluationUpdate {
	if v != nil {
		_u.SetCollaborationScore(*v)
	}
	return _u
}

// AddCollaborationScore adds value to the "collaboration_score" field.
func (_u *InterviewEvaluationUpdate) AddCollaborationScore(v int) *InterviewEvaluationUpdate {
	_u.mutation.AddCollaborationScore(v)
	return _u
}

// SetProblemSolvingScore sets the "problem_solving_score" field.
func (_u *InterviewEvaluationUpdate) SetProblemSolvingScore(v int) *InterviewEvaluationUpdate {
	_u.mutation.ResetProblemSolvingScore()
	_u.mutation.SetProblemSolvingScore(v)
	return _u
}

// SetNillableProblemSolvingScore sets the "problem_solving_score" field if the given value is not nil.
func (_u *InterviewEvaluationUpdate) SetNillableProblemSolvingScore(v *int) *InterviewEvaluationUpdate {
	if v != nil {
		_u.SetProblemSolvingScore(*v)
	}
	return _u
}

// AddProblemSolvingScore adds value to the "problem_solving_score" field.
func (_u *InterviewEvaluationUpdate) AddProblemSolvingScore(v int) *InterviewEvaluationUpdate {
	_u.mutation.AddProblemSolvingScore(v)
	return _u
}

// SetGrowthScore sets the "growth_score" field.
func (_u *InterviewEvaluationUpdate) SetGrowthScore(v int) *InterviewEvaluationUpdate {
	_u.mutation.ResetGrowthScore()
	_u.mutation.SetGrowthScore(v)
	return _u
}

// SetNillableGrowthScore sets the "growth_score" field if the given value is not nil.
func (_u *InterviewEvaluationUpdate) SetNillableGrowthScore(v *int) *InterviewEvaluationUpdate {
	if v != nil {
		_u.SetGrowthScore(*v)
	}
	return _u
}

// AddGrowthScore adds value to the "growth_score" field.
func (_u *InterviewEvaluationUpdate) AddGrowthScore(v int) *InterviewEvaluationUpdate {
	_u.mutation.AddGrowthScore(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *InterviewEvaluationUpdate) SetSummary(v string) *InterviewEvaluationUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *InterviewEvaluationUpdate) SetNillableSummary(v *string) *InterviewEvaluationUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *InterviewEvaluationUpdate) SetStrengths(v string) *InterviewEvaluationUpdate {
	_u.mutation.SetStrengths(v)
	return _u
}

// SetNillableStrengths sets the "strengths" field if the given value is not nil.
func (_u *InterviewEvaluationUpdate) SetNillableStrengths(v *string) *InterviewEvaluationUpdate {
	if v != nil {
		_u.SetStrengths(*v)
	}
	return _u
}

// SetImprovements sets the "improvements" field.
func (_u *InterviewEvaluationUpdate) SetImprovements(v string) *InterviewEvaluationUpdate {
	_u.mutation.SetImprovements(v)
	return _u
}

// SetNillableImprovements sets the "improvements" field if the given value is not nil.
func (_u *InterviewEvaluationUpdate) SetNillableImprovements(v *string) *InterviewEvaluationUpdate {
	if v != nil {
		_u.SetImprovements(*v)
	}
	return _u
}

// Mutation returns the InterviewEvaluationMutation object of the builder.
func (_u *InterviewEvaluationUpdate) Mutation() *InterviewEvaluationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterviewEvaluationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewEvaluationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterviewEvaluationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewEvaluationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewEvaluationUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := interviewevaluation.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterviewEvaluation.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *InterviewEvaluationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewevaluation.Table, interviewevaluation.Columns, sqlgraph.NewFieldSpec(interviewevaluation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interviewevaluation.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(interviewevaluation.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(interviewevaluation.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TechnicalScore(); ok {
		_spec.SetField(interviewevaluation.FieldTechnicalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTechnicalScore(); ok {
		_spec.AddField(interviewevaluation.FieldTechnicalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CollaborationScore(); ok {
		_spec.SetField(interviewevaluation.FieldCollaborationScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCollaborationScore(); ok {
		_spec.AddField(interviewevaluation.FieldCollaborationScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProblemSolvingScore(); ok {
		_spec.SetField(interviewevaluation.FieldProblemSolvingScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemSolvingScore(); ok {
		_spec.AddField(interviewevaluation.FieldProblemSolvingScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GrowthScore(); ok {
		_spec.SetField(interviewevaluation.FieldGrowthScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrowthScore(); ok {
		_spec.AddField(interviewevaluation.FieldGrowthScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(interviewevaluation.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(interviewevaluation.FieldStrengths, field.TypeString, value)
	}
	if value, ok := _u.mutation.Improvements(); ok {
		_spec.SetField(interviewevaluation.FieldImprovements, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewevaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterviewEvaluationUpdateOne is the builder for updating a single InterviewEvaluation entity.
type InterviewEvaluationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterviewEvaluationMutation
}

// SetSessionID sets the "session_id" field.
func (_u *InterviewEvaluationUpdateOne) SetSessionID(v string) *InterviewEvaluationUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InterviewEvaluationUpdateOne) SetNillableSessionID(v *string) *InterviewEvaluationUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *InterviewEvaluationUpdateOne) SetTotalScore(v int) *InterviewEvaluationUpdateOne {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *InterviewEvaluationUpdateOne) SetNillableTotalScore(v *int) *InterviewEvaluationUpdateOne {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *InterviewEvaluationUpdateOne) AddTotalScore(v int) *InterviewEvaluationUpdateOne {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetTechnicalScore sets the "technical_score" field.
func (_u *InterviewEvaluationUpdateOne) SetTechnicalScore(v int) *InterviewEvaluationUpdateOne {
	_u.mutation.ResetTechnicalScore()
	_u.mutation.SetTechnicalScore(v)
	return _u
}

// SetNillableTechnicalScore sets the "technical_score" field if the given value is not nil.
func (_u *InterviewEvaluationUpdateOne) SetNillableTechnicalScore(v *int) *InterviewEvaluationUpdateOne {
	if v != nil {
		_u.SetTechnicalScore(*v)
	}
	return _u
}

// AddTechnicalScore adds value to the "technical_score" field.
func (_u *InterviewEvaluationUpdateOne) AddTechnicalScore(v int) *InterviewEvaluationUpdateOne {
	_u.mutation.AddTechnicalScore(v)
	return _u
}

// SetCollaborationScore sets the "collaboration_score" field.
func (_u *InterviewEvaluationUpdateOne) SetCollaborationScore(v int) *InterviewEvaluationUpdateOne {
	_u.mutation.ResetCollaborationScore()
	_u.mutation.SetCollaborationScore(v)
	return _u
}

// SetNillableCollaborationScore sets the "collaboration_score" field if the given value is not nil.
func (_u *InterviewEvaluationUpdateOne) SetNillableCollaborationScore(v *int) *InterviewEvaluationUpdateOne {
	if v != nil {
		_u.SetCollaborationScore(*v)
	}
	return _u
}

// AddCollaborationScore adds value to the "collaboration_score" field.
func (_u *InterviewEvaluationUpdateOne) AddCollaborationScore(v int) *InterviewEvaluationUpdateOne {
	_u.mutation.AddCollaborationScore(v)
	return _u
}

// SetProblemSolvingScore sets the "problem_solving_score" field.
func (_u *InterviewEvaluationUpdateOne) SetProblemSolvingScore(v int) *InterviewEvaluationUpdateOne {
	_u.mutation.ResetProblemSolvingScore()
	_u.mutation.SetProblemSolvingScore(v)
	return _u
}

// SetNillableProblemSolvingScore sets the "problem_solving_score" field if the given value is not nil.
func (_u *InterviewEvaluationUpdateOne) SetNillableProblemSolvingScore(v *int) *InterviewEvaluationUpdateOne {
	if v != nil {
		_u.SetProblemSolvingScore(*v)
	}
	return _u
}

// AddProblemSolvingScore adds value to the "problem_solving_score" field.
func (_u *InterviewEvaluationUpdateOne) AddProblemSolvingScore(v int) *InterviewEvaluationUpdateOne {
	_u.mutation.AddProblemSolvingScore(v)
	return _u
}

// SetGrowthScore sets the "growth_score" field.
func (_u *InterviewEvaluationUpdateOne) SetGrowthScore(v int) *InterviewEvaluationUpdateOne {
	_u.mutation.ResetGrowthScore()
	_u.mutation.SetGrowthScore(v)
	return _u
}

// SetNillableGrowthScore sets the "growth_score" field if the given value is not nil.
func (_u *InterviewEvaluationUpdateOne) SetNillableGrowthScore(v *int) *InterviewEvaluationUpdateOne {
	if v != nil {
		_u.SetGrowthScore(*v)
	}
	return _u
}

// AddGrowthScore adds value to the "growth_score" field.
func (_u *InterviewEvaluationUpdateOne) AddGrowthScore(v int) *InterviewEvaluationUpdateOne {
	_u.mutation.AddGrowthScore(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *InterviewEvaluationUpdateOne) SetSummary(v string) *InterviewEvaluationUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *InterviewEvaluationUpdateOne) SetNillableSummary(v *string) *InterviewEvaluationUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *InterviewEvaluationUpdateOne) SetStrengths(v string) *InterviewEvaluationUpdateOne {
	_u.mutation.SetStrengths(v)
	return _u
}

// SetNillableStrengths sets the "strengths" field if the given value is not nil.
func (_u *InterviewEvaluationUpdateOne) SetNillableStrengths(v *string) *InterviewEvaluationUpdateOne {
	if v != nil {
		_u.SetStrengths(*v)
	}
	return _u
}

// SetImprovements sets the "improvements" field.
func (_u *InterviewEvaluationUpdateOne) SetImprovements(v string) *InterviewEvaluationUpdateOne {
	_u.mutation.SetImprovements(v)
	return _u
}

// SetNillableImprovements sets the "improvements" field if the given value is not nil.
func (_u *InterviewEvaluationUpdateOne) SetNillableImprovements(v *string) *InterviewEvaluationUpdateOne {
	if v != nil {
		_u.SetImprovements(*v)
	}
	return _u
}

// Mutation returns the InterviewEvaluationMutation object of the builder.
func (_u *InterviewEvaluationUpdateOne) Mutation() *InterviewEvaluationMutation {
	return _u.mutation
}

// Where appends a list predicates to the InterviewEvaluationUpdate builder.
func (_u *InterviewEvaluationUpdateOne) Where(ps ...predicate.InterviewEvaluation) *InterviewEvaluationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterviewEvaluationUpdateOne) Select(field string, fields ...string) *InterviewEvaluationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InterviewEvaluation entity.
func (_u *InterviewEvaluationUpdateOne) Save(ctx context.Context) (*InterviewEvaluation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewEvaluationUpdateOne) SaveX(ctx context.Context) *InterviewEvaluation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterviewEvaluationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewEvaluationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewEvaluationUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := interviewevaluation.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterviewEvaluation.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *InterviewEvaluationUpdateOne) sqlSave(ctx context.Context) (_node *InterviewEvaluation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewevaluation.Table, interviewevaluation.Columns, sqlgraph.NewFieldSpec(interviewevaluation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InterviewEvaluation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interviewevaluation.FieldID)
		for _, f := range fields {
			if !interviewevaluation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interviewevaluation.FieldID {
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
		_spec.SetField(interviewevaluation.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(interviewevaluation.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(interviewevaluation.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TechnicalScore(); ok {
		_spec.SetField(interviewevaluation.FieldTechnicalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTechnicalScore(); ok {
		_spec.AddField(interviewevaluation.FieldTechnicalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CollaborationScore(); ok {
		_spec.SetField(interviewevaluation.FieldCollaborationScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCollaborationScore(); ok {
		_spec.AddField(interviewevaluation.FieldCollaborationScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProblemSolvingScore(); ok {
		_spec.SetField(interviewevaluation.FieldProblemSolvingScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemSolvingScore(); ok {
		_spec.AddField(interviewevaluation.FieldProblemSolvingScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GrowthScore(); ok {
		_spec.SetField(interviewevaluation.FieldGrowthScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrowthScore(); ok {
		_spec.AddField(interviewevaluation.FieldGrowthScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(interviewevaluation.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(interviewevaluation.FieldStrengths, field.TypeString, value)
	}
	if value, ok := _u.mutation.Improvements(); ok {
		_spec.SetField(interviewevaluation.FieldImprovements, field.TypeString, value)
	}
	_node = &InterviewEvaluation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewevaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
