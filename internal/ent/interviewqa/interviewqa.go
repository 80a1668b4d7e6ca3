// Code generated by ent, DO NOT EDIT.

package interviewqa

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the interviewqa type in the database.
	Label = "interview_qa"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldMainOrder holds the string denoting the main_order field in the database.
	FieldMainOrder = "main_order"
	// FieldFollowUpOrder holds the string denoting the follow_up_order field in the database.
	FieldFollowUpOrder = "follow_up_order"
	// FieldQuestionText holds the string denoting the question_text field in the database.
	FieldQuestionText = "question_text"
	// FieldAnswerText holds the string denoting the answer_text field in the database.
	FieldAnswerText = "answer_text"
	// FieldAudioRef holds the string denoting the audio_ref field in the database.
	FieldAudioRef = "audio_ref"
	// Table holds the table name of the interviewqa in the database.
	Table = "interview_qas"
)

// Columns holds all SQL columns for interviewqa fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldMainOrder,
	FieldFollowUpOrder,
	FieldQuestionText,
	FieldAnswerText,
	FieldAudioRef,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// MainOrderValidator is a validator for the "main_order" field. It is called by the builders before save.
	MainOrderValidator func(int) error
	// FollowUpOrderValidator is a validator for the "follow_up_order" field. It is called by the builders before save.
	FollowUpOrderValidator func(int) error
	// QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	QuestionTextValidator func(string) error
	// DefaultAudioRef holds the default value on creation for the "audio_ref" field.
	DefaultAudioRef string
)

// OrderOption defines the ordering options for the InterviewQA queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByMainOrder orders the results by the main_order field.
func ByMainOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMainOrder, opts...).ToFunc()
}

// ByFollowUpOrder orders the results by the follow_up_order field.
func ByFollowUpOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFollowUpOrder, opts...).ToFunc()
}

// ByQuestionText orders the results by the question_text field.
func ByQuestionText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionText, opts...).ToFunc()
}

// ByAnswerText orders the results by the answer_text field.
func ByAnswerText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerText, opts...).ToFunc()
}

// ByAudioRef orders the results by the audio_ref field.
func ByAudioRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioRef, opts...).ToFunc()
}
