// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"mockview/internal/ent/companyreview"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// CompanyReview is the model entity for the CompanyReview schema.
type CompanyReview struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID string `json:"company_id,omitempty"`
	// Field holds the value of the "field" field.
	Field string `json:"field,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty string `json:"difficulty,omitempty"`
	// QuestionsText holds the value of the "questions_text" field.
	QuestionsText string `json:"questions_text,omitempty"`
	// SummaryText holds the value of the "summary_text" field.
	SummaryText string `json:"summary_text,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CompanyReview) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case companyreview.FieldID:
			values[i] = new(sql.NullInt64)
		case companyreview.FieldCompanyID, companyreview.FieldField, companyreview.FieldDifficulty, companyreview.FieldQuestionsText, companyreview.FieldSummaryText:
			values[i] = new(sql.NullString)
		case companyreview.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CompanyReview fields.
func (_m *CompanyReview) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case companyreview.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case companyreview.FieldCompanyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = value.String
			}
		case companyreview.FieldField:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field", values[i])
			} else if value.Valid {
				_m.Field = value.String
			}
		case companyreview.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case companyreview.FieldQuestionsText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field questions_text", values[i])
			} else if value.Valid {
				_m.QuestionsText = value.String
			}
		case companyreview.FieldSummaryText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary_text", values[i])
			} else if value.Valid {
				_m.SummaryText = value.String
			}
		case companyreview.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CompanyReview.
// This includes values selected through modifiers, order, etc.
func (_m *CompanyReview) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CompanyReview.
// Note that you need to call CompanyReview.Unwrap() before calling this method if this CompanyReview
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CompanyReview) Update() *CompanyReviewUpdateOne {
	return NewCompanyReviewClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CompanyReview entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CompanyReview) Unwrap() *CompanyReview {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CompanyReview is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CompanyReview) String() string {
	var builder strings.Builder
	builder.WriteString("CompanyReview(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(_m.CompanyID)
	builder.WriteString(", ")
	builder.WriteString("field=")
	builder.WriteString(_m.Field)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("questions_text=")
	builder.WriteString(_m.QuestionsText)
	builder.WriteString(", ")
	builder.WriteString("summary_text=")
	builder.WriteString(_m.SummaryText)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CompanyReviews is a parsable slice of CompanyReview.
type CompanyReviews []*CompanyReview
