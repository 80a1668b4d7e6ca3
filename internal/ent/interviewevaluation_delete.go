// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"mockview/internal/ent/interviewevaluation"
	"mockview/internal/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// InterviewEvaluationDelete is the builder for deleting a InterviewEvaluation entity.
type InterviewEvaluationDelete struct {
	config
	hooks    []Hook
	mutation *InterviewEvaluationMutation
}

// Where appends a list predicates to the InterviewEvaluationDelete builder.
func (_d *InterviewEvaluationDelete) Where(ps ...predicate.InterviewEvaluation) *InterviewEvaluationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InterviewEvaluationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InterviewEvaluationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InterviewEvaluationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(interviewevaluation.Table, sqlgraph.NewFieldSpec(interviewevaluation.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// InterviewEvaluationDeleteOne is the builder for deleting a single InterviewEvaluation entity.
type InterviewEvaluationDeleteOne struct {
	_d *InterviewEvaluationDelete
}

// Where appends a list predicates to the InterviewEvaluationDelete builder.
func (_d *InterviewEvaluationDeleteOne) Where(ps ...predicate.InterviewEvaluation) *InterviewEvaluationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InterviewEvaluationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{interviewevaluation.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InterviewEvaluationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
