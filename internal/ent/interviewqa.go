// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"mockview/internal/ent/interviewqa"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// InterviewQA is the model entity for the InterviewQA schema.
type InterviewQA struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// MainOrder holds the value of the "main_order" field.
	MainOrder int `json:"main_order,omitempty"`
	// FollowUpOrder holds the value of the "follow_up_order" field.
	FollowUpOrder int `json:"follow_up_order,omitempty"`
	// QuestionText holds the value of the "question_text" field.
	QuestionText string `json:"question_text,omitempty"`
	// AnswerText holds the value of the "answer_text" field.
	AnswerText *string `json:"answer_text,omitempty"`
	// AudioRef holds the value of the "audio_ref" field.
	AudioRef     string `json:"audio_ref,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InterviewQA) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interviewqa.FieldID, interviewqa.FieldMainOrder, interviewqa.FieldFollowUpOrder:
			values[i] = new(sql.NullInt64)
		case interviewqa.FieldSessionID, interviewqa.FieldQuestionText, interviewqa.FieldAnswerText, interviewqa.FieldAudioRef:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InterviewQA fields.
func (_m *InterviewQA) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interviewqa.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case interviewqa.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case interviewqa.FieldMainOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field main_order", values[i])
			} else if value.Valid {
				_m.MainOrder = int(value.Int64)
			}
		case interviewqa.FieldFollowUpOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field follow_up_order", values[i])
			} else if value.Valid {
				_m.FollowUpOrder = int(value.Int64)
			}
		case interviewqa.FieldQuestionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_text", values[i])
			} else if value.Valid {
				_m.QuestionText = value.String
			}
		case interviewqa.FieldAnswerText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer_text", values[i])
			} else if value.Valid {
				_m.AnswerText = new(string)
				*_m.AnswerText = value.String
			}
		case interviewqa.FieldAudioRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audio_ref", values[i])
			} else if value.Valid {
				_m.AudioRef = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InterviewQA.
// This includes values selected through modifiers, order, etc.
func (_m *InterviewQA) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InterviewQA.
// Note that you need to call InterviewQA.Unwrap() before calling this method if this InterviewQA
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InterviewQA) Update() *InterviewQAUpdateOne {
	return NewInterviewQAClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InterviewQA entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InterviewQA) Unwrap() *InterviewQA {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InterviewQA is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InterviewQA) String() string {
	var builder strings.Builder
	builder.WriteString("InterviewQA(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("main_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.MainOrder))
	builder.WriteString(", ")
	builder.WriteString("follow_up_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.FollowUpOrder))
	builder.WriteString(", ")
	builder.WriteString("question_text=")
	builder.WriteString(_m.QuestionText)
	builder.WriteString(", ")
	if v := _m.AnswerText; v != nil {
		builder.WriteString("answer_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("audio_ref=")
	builder.WriteString(_m.AudioRef)
	builder.WriteByte(')')
	return builder.String()
}

// InterviewQAs is a parsable slice of InterviewQA.
type InterviewQAs []*InterviewQA
