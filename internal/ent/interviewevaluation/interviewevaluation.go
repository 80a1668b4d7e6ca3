// Code generated by ent, DO NOT EDIT.

package interviewevaluation

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the interviewevaluation type in the database.
	Label = "interview_evaluation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTotalScore holds the string denoting the total_score field in the database.
	FieldTotalScore = "total_score"
	// FieldTechnicalScore holds the string denoting the technical_score field in the database.
	FieldTechnicalScore = "technical_score"
	// FieldCollaborationScore holds the string denoting the collaboration_score field in the database.
	FieldCollaborationScore = "collaboration_score"
	// FieldProblemSolvingScore holds the string denoting the problem_solving_score field in the database.
	FieldProblemSolvingScore = "problem_solving_score"
	// FieldGrowthScore holds the string denoting the growth_score field in the database.
	FieldGrowthScore = "growth_score"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldStrengths holds the string denoting the strengths field in the database.
	FieldStrengths = "strengths"
	// FieldImprovements holds the string denoting the improvements field in the database.
	FieldImprovements = "improvements"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the interviewevaluation in the database.
	Table = "interview_evaluations"
)

// Columns holds all SQL columns for interviewevaluation fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldTotalScore,
	FieldTechnicalScore,
	FieldCollaborationScore,
	FieldProblemSolvingScore,
	FieldGrowthScore,
	FieldSummary,
	FieldStrengths,
	FieldImprovements,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultSummary holds the default value on creation for the "summary" field.
	DefaultSummary string
	// DefaultStrengths holds the default value on creation for the "strengths" field.
	DefaultStrengths string
	// DefaultImprovements holds the default value on creation for the "improvements" field.
	DefaultImprovements string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the InterviewEvaluation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTotalScore orders the results by the total_score field.
func ByTotalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalScore, opts...).ToFunc()
}

// ByTechnicalScore orders the results by the technical_score field.
func ByTechnicalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTechnicalScore, opts...).ToFunc()
}

// ByCollaborationScore orders the results by the collaboration_score field.
func ByCollaborationScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollaborationScore, opts...).ToFunc()
}

// ByProblemSolvingScore orders the results by the problem_solving_score field.
func ByProblemSolvingScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemSolvingScore, opts...).ToFunc()
}

// ByGrowthScore orders the results by the growth_score field.
func ByGrowthScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrowthScore, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByStrengths orders the results by the strengths field.
func ByStrengths(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrengths, opts...).ToFunc()
}

// ByImprovements orders the results by the improvements field.
func ByImprovements(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImprovements, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
