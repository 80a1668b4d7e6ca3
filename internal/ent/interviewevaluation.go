// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"mockview/internal/ent/interviewevaluation"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// InterviewEvaluation is the model entity for the InterviewEvaluation schema.
type InterviewEvaluation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// TotalScore holds the value of the "total_score" field.
	TotalScore int `json:"total_score,omitempty"`
	// TechnicalScore holds the value of the "technical_score" field.
	TechnicalScore int `json:"technical_score,omitempty"`
	// CollaborationScore holds the value of the "collaboration_score" field.
	CollaborationScore int `json:"collaboration_score,omitempty"`
	// ProblemSolvingScore holds the value of the "problem_solving_score" field.
	ProblemSolvingScore int `json:"problem_solving_score,omitempty"`
	// GrowthScore holds the value of the "growth_score" field.
	GrowthScore int `json:"growth_score,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// Strengths holds the value of the "strengths" field.
	Strengths string `json:"strengths,omitempty"`
	// Improvements holds the value of the "improvements" field.
	Improvements string `json:"improvements,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InterviewEvaluation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interviewevaluation.FieldID, interviewevaluation.FieldTotalScore, interviewevaluation.FieldTechnicalScore, interviewevaluation.FieldCollaborationScore, interviewevaluation.FieldProblemSolvingScore, interviewevaluation.FieldGrowthScore:
			values[i] = new(sql.NullInt64)
		case interviewevaluation.FieldSessionID, interviewevaluation.FieldSummary, interviewevaluation.FieldStrengths, interviewevaluation.FieldImprovements:
			values[i] = new(sql.NullString)
		case interviewevaluation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InterviewEvaluation fields.
func (_m *InterviewEvaluation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interviewevaluation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case interviewevaluation.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case interviewevaluation.FieldTotalScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_score", values[i])
			} else if value.Valid {
				_m.TotalScore = int(value.Int64)
			}
		case interviewevaluation.FieldTechnicalScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field technical_score", values[i])
			} else if value.Valid {
				_m.TechnicalScore = int(value.Int64)
			}
		case interviewevaluation.FieldCollaborationScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field collaboration_score", values[i])
			} else if value.Valid {
				_m.CollaborationScore = int(value.Int64)
			}
		case interviewevaluation.FieldProblemSolvingScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field problem_solving_score", values[i])
			} else if value.Valid {
				_m.ProblemSolvingScore = int(value.Int64)
			}
		case interviewevaluation.FieldGrowthScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field growth_score", values[i])
			} else if value.Valid {
				_m.GrowthScore = int(value.Int64)
			}
		case interviewevaluation.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case interviewevaluation.FieldStrengths:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strengths", values[i])
			} else if value.Valid {
				_m.Strengths = value.String
			}
		case interviewevaluation.FieldImprovements:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field improvements", values[i])
			} else if value.Valid {
				_m.Improvements = value.String
			}
		case interviewevaluation.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the InterviewEvaluation.
// This includes values selected through modifiers, order, etc.
func (_m *InterviewEvaluation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InterviewEvaluation.
// Note that you need to call InterviewEvaluation.Unwrap() before calling this method if this InterviewEvaluation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InterviewEvaluation) Update() *InterviewEvaluationUpdateOne {
	return NewInterviewEvaluationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InterviewEvaluation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InterviewEvaluation) Unwrap() *InterviewEvaluation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InterviewEvaluation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InterviewEvaluation) String() string {
	var builder strings.Builder
	builder.WriteString("InterviewEvaluation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("total_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalScore))
	builder.WriteString(", ")
	builder.WriteString("technical_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TechnicalScore))
	builder.WriteString(", ")
	builder.WriteString("collaboration_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.CollaborationScore))
	builder.WriteString(", ")
	builder.WriteString("problem_solving_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProblemSolvingScore))
	builder.WriteString(", ")
	builder.WriteString("growth_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.GrowthScore))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("strengths=")
	builder.WriteString(_m.Strengths)
	builder.WriteString(", ")
	builder.WriteString("improvements=")
	builder.WriteString(_m.Improvements)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InterviewEvaluations is a parsable slice of InterviewEvaluation.
type InterviewEvaluations []*InterviewEvaluation
