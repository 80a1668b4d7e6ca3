// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// CompanyReview is the predicate function for companyreview builders.
type CompanyReview func(*sql.Selector)

// InterviewEvaluation is the predicate function for interviewevaluation builders.
type InterviewEvaluation func(*sql.Selector)

// InterviewQA is the predicate function for interviewqa builders.
type InterviewQA func(*sql.Selector)

// InterviewSession is the predicate function for interviewsession builders.
type InterviewSession func(*sql.Selector)

// Member is the predicate function for member builders.
type Member func(*sql.Selector)
