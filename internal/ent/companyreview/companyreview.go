// Code generated by ent, DO NOT EDIT.

package companyreview

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the companyreview type in the database.
	Label = "company_review"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldField holds the string denoting the field field in the database.
	FieldField = "field"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldQuestionsText holds the string denoting the questions_text field in the database.
	FieldQuestionsText = "questions_text"
	// FieldSummaryText holds the string denoting the summary_text field in the database.
	FieldSummaryText = "summary_text"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the companyreview in the database.
	Table = "company_reviews"
)

// Columns holds all SQL columns for companyreview fields.
var Columns = []string{
	FieldID,
	FieldCompanyID,
	FieldField,
	FieldDifficulty,
	FieldQuestionsText,
	FieldSummaryText,
	FieldCreatedAt,
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
	// CompanyIDValidator is a validator for the "company_id" field. It is called by the builders before save.
	CompanyIDValidator func(string) error
	// FieldValidator is a validator for the "field" field. It is called by the builders before save.
	FieldValidator func(string) error
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty string
	// DefaultQuestionsText holds the default value on creation for the "questions_text" field.
	DefaultQuestionsText string
	// DefaultSummaryText holds the default value on creation for the "summary_text" field.
	DefaultSummaryText string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the CompanyReview queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByField orders the results by the field field.
func ByField(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldField, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByQuestionsText orders the results by the questions_text field.
func ByQuestionsText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsText, opts...).ToFunc()
}

// BySummaryText orders the results by the summary_text field.
func BySummaryText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryText, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
