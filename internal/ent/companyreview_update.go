// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"mockview/internal/ent/companyreview"
	"mockview/internal/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CompanyReviewUpdate is the builder for updating CompanyReview entities.
type CompanyReviewUpdate struct {
	config
	hooks    []Hook
	mutation *CompanyReviewMutation
}

// Where appends a list predicates to the CompanyReviewUpdate builder.
func (_u *CompanyReviewUpdate) Where(ps ...predicate.CompanyReview) *CompanyReviewUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *CompanyReviewUpdate) SetCompanyID(v string) *CompanyReviewUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *CompanyReviewUpdate) SetNillableCompanyID(v *string) *CompanyReviewUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetField sets the "field" field.
func (_u *CompanyReviewUpdate) SetField(v string) *CompanyReviewUpdate {
	_u.mutation.SetFieldField(v)
	return _u
}

// SetNillableField sets the "field" field if the given value is not nil.
func (_u *CompanyReviewUpdate) SetNillableField(v *string) *CompanyReviewUpdate {
	if v != nil {
		_u.SetField(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CompanyReviewUpdate) SetDifficulty(v string) *CompanyReviewUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CompanyReviewUpdate) SetNillableDifficulty(v *string) *CompanyReviewUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestionsText sets the "questions_text" field.
func (_u *CompanyReviewUpdate) SetQuestionsText(v string) *CompanyReviewUpdate {
	_u.mutation.SetQuestionsText(v)
	return _u
}

// SetNillableQuestionsText sets the "questions_text" field if the given value is not nil.
func (_u *CompanyReviewUpdate) SetNillableQuestionsText(v *string) *CompanyReviewUpdate {
	if v != nil {
		_u.SetQuestionsText(*v)
	}
	return _u
}

// SetSummaryText sets the "summary_text" field.
func (_u *CompanyReviewUpdate) SetSummaryText(v string) *CompanyReviewUpdate {
	_u.mutation.SetSummaryText(v)
	return _u
}

// SetNillableSummaryText sets the "summary_text" field if the given value is not nil.
func (_u *CompanyReviewUpdate) SetNillableSummaryText(v *string) *CompanyReviewUpdate {
	if v != nil {
		_u.SetSummaryText(*v)
	}
	return _u
}

// Mutation returns the CompanyReviewMutation object of the builder.
func (_u *CompanyReviewUpdate) Mutation() *CompanyReviewMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompanyReviewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompanyReviewUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyReviewUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyReviewUpdate) check() error {
	if v, ok := _u.mutation.CompanyID(); ok {
		if err := companyreview.CompanyIDValidator(v); err != nil {
			return &ValidationError{Name: "company_id", err: fmt.Errorf(`ent: validator failed for field "CompanyReview.company_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetField(); ok {
		if err := companyreview.FieldValidator(v); err != nil {
			return &ValidationError{Name: "field", err: fmt.Errorf(`ent: validator failed for field "CompanyReview.field": %w`, err)}
		}
	}
	return nil
}

func (_u *CompanyReviewUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(companyreview.Table, companyreview.Columns, sqlgraph.NewFieldSpec(companyreview.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(companyreview.FieldCompanyID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetField(); ok {
		_spec.SetField(companyreview.FieldField, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(companyreview.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsText(); ok {
		_spec.SetField(companyreview.FieldQuestionsText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SummaryText(); ok {
		_spec.SetField(companyreview.FieldSummaryText, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{companyreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompanyReviewUpdateOne is the builder for updating a single CompanyReview entity.
type CompanyReviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompanyReviewMutation
}

// SetCompanyID sets the "company_id" field.
func (_u *CompanyReviewUpdateOne) SetCompanyID(v string) *CompanyReviewUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *CompanyReviewUpdateOne) SetNillableCompanyID(v *string) *CompanyReviewUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetField sets the "field" field.
func (_u *CompanyReviewUpdateOne) SetField(v string) *CompanyReviewUpdateOne {
	_u.mutation.SetFieldField(v)
	return _u
}

// SetNillableField sets the "field" field if the given value is not nil.
func (_u *CompanyReviewUpdateOne) SetNillableField(v *string) *CompanyReviewUpdateOne {
	if v != nil {
		_u.SetField(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CompanyReviewUpdateOne) SetDifficulty(v string) *CompanyReviewUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CompanyReviewUpdateOne) SetNillableDifficulty(v *string) *CompanyReviewUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestionsText sets the "questions_text" field.
func (_u *CompanyReviewUpdateOne) SetQuestionsText(v string) *CompanyReviewUpdateOne {
	_u.mutation.SetQuestionsText(v)
	return _u
}

// SetNillableQuestionsText sets the "questions_text" field if the given value is not nil.
func (_u *CompanyReviewUpdateOne) SetNillableQuestionsText(v *string) *CompanyReviewUpdateOne {
	if v != nil {
		_u.SetQuestionsText(*v)
	}
	return _u
}

// SetSummaryText sets the "summary_text" field.
func (_u *CompanyReviewUpdateOne) SetSummaryText(v string) *CompanyReviewUpdateOne {
	_u.mutation.SetSummaryText(v)
	return _u
}

// SetNillableSummaryText sets the "summary_text" field if the given value is not nil.
func (_u *CompanyReviewUpdateOne) SetNillableSummaryText(v *string) *CompanyReviewUpdateOne {
	if v != nil {
		_u.SetSummaryText(*v)
	}
	return _u
}

// Mutation returns the CompanyReviewMutation object of the builder.
func (_u *CompanyReviewUpdateOne) Mutation() *CompanyReviewMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompanyReviewUpdate builder.
func (_u *CompanyReviewUpdateOne) Where(ps ...predicate.CompanyReview) *CompanyReviewUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompanyReviewUpdateOne) Select(field string, fields ...string) *CompanyReviewUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompanyReview entity.
func (_u *CompanyReviewUpdateOne) Save(ctx context.Context) (*CompanyReview, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyReviewUpdateOne) SaveX(ctx context.Context) *CompanyReview {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompanyReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyReviewUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyReviewUpdateOne) check() error {
	if v, ok := _u.mutation.CompanyID(); ok {
		if err := companyreview.CompanyIDValidator(v); err != nil {
			return &ValidationError{Name: "company_id", err: fmt.Errorf(`ent: validator failed for field "CompanyReview.company_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetField(); ok {
		if err := companyreview.FieldValidator(v); err != nil {
			return &ValidationError{Name: "field", err: fmt.Errorf(`ent: validator failed for field "CompanyReview.field": %w`, err)}
		}
	}
	return nil
}

func (_u *CompanyReviewUpdateOne) sqlSave(ctx context.Context) (_node *CompanyReview, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(companyreview.Table, companyreview.Columns, sqlgraph.NewFieldSpec(companyreview.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompanyReview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, companyreview.FieldID)
		for _, f := range fields {
			if !companyreview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != companyreview.FieldID {
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
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(companyreview.FieldCompanyID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetField(); ok {
		_spec.SetField(companyreview.FieldField, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(companyreview.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsText(); ok {
		_spec.SetField(companyreview.FieldQuestionsText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SummaryText(); ok {
		_spec.SetField(companyreview.FieldSummaryText, field.TypeString, value)
	}
	_node = &CompanyReview{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{companyreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
