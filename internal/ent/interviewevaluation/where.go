// Code generated by ent, DO NOT EDIT.

package interviewevaluation

import (
	"mockview/internal/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldSessionID, v))
}

// TotalScore applies equality check predicate on the "total_score" field. It's identical to TotalScoreEQ.
func TotalScore(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldTotalScore, v))
}

// TechnicalScore applies equality check predicate on the "technical_score" field. It's identical to TechnicalScoreEQ.
func TechnicalScore(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldTechnicalScore, v))
}

// CollaborationScore applies equality check predicate on the "collaboration_score" field. It's identical to CollaborationScoreEQ.
func CollaborationScore(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldCollaborationScore, v))
}

// ProblemSolvingScore applies equality check predicate on the "problem_solving_score" field. It's identical to ProblemSolvingScoreEQ.
func ProblemSolvingScore(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldProblemSolvingScore, v))
}

// GrowthScore applies equality check predicate on the "growth_score" field. It's identical to GrowthScoreEQ.
func GrowthScore(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldGrowthScore, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldSummary, v))
}

// Strengths applies equality check predicate on the "strengths" field. It's identical to StrengthsEQ.
func Strengths(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldStrengths, v))
}

// Improvements applies equality check predicate on the "improvements" field. It's identical to ImprovementsEQ.
func Improvements(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldImprovements, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldContainsFold(FieldSessionID, v))
}

// TotalScoreEQ applies the EQ predicate on the "total_score" field.
func TotalScoreEQ(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldTotalScore, v))
}

// TotalScoreNEQ applies the NEQ predicate on the "total_score" field.
func TotalScoreNEQ(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNEQ(FieldTotalScore, v))
}

// TotalScoreIn applies the In predicate on the "total_score" field.
func TotalScoreIn(vs ...int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldIn(FieldTotalScore, vs...))
}

// TotalScoreNotIn applies the NotIn predicate on the "total_score" field.
func TotalScoreNotIn(vs ...int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNotIn(FieldTotalScore, vs...))
}

// TotalScoreGT applies the GT predicate on the "total_score" field.
func TotalScoreGT(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGT(FieldTotalScore, v))
}

// TotalScoreGTE applies the GTE predicate on the "total_score" field.
func TotalScoreGTE(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGTE(FieldTotalScore, v))
}

// TotalScoreLT applies the LT predicate on the "total_score" field.
func TotalScoreLT(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLT(FieldTotalScore, v))
}

// TotalScoreLTE applies the LTE predicate on the "total_score" field.
func TotalScoreLTE(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLTE(FieldTotalScore, v))
}

// TechnicalScoreEQ applies the EQ predicate on the "technical_score" field.
func TechnicalScoreEQ(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldTechnicalScore, v))
}

// TechnicalScoreNEQ applies the NEQ predicate on the "technical_score" field.
func TechnicalScoreNEQ(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNEQ(FieldTechnicalScore, v))
}

// TechnicalScoreIn applies the In predicate on the "technical_score" field.
func TechnicalScoreIn(vs ...int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldIn(FieldTechnicalScore, vs...))
}

// TechnicalScoreNotIn applies the NotIn predicate on the "technical_score" field.
func TechnicalScoreNotIn(vs ...int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNotIn(FieldTechnicalScore, vs...))
}

// TechnicalScoreGT applies the GT predicate on the "technical_score" field.
func TechnicalScoreGT(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGT(FieldTechnicalScore, v))
}

// TechnicalScoreGTE applies the GTE predicate on the "technical_score" field.
func TechnicalScoreGTE(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGTE(FieldTechnicalScore, v))
}

// TechnicalScoreLT applies the LT predicate on the "technical_score" field.
func TechnicalScoreLT(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLT(FieldTechnicalScore, v))
}

// TechnicalScoreLTE applies the LTE predicate on the "technical_score" field.
func TechnicalScoreLTE(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLTE(FieldTechnicalScore, v))
}

// CollaborationScoreEQ applies the EQ predicate on the "collaboration_score" field.
func CollaborationScoreEQ(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldCollaborationScore, v))
}

// CollaborationScoreNEQ applies the NEQ predicate on the "collaboration_score" field.
func CollaborationScoreNEQ(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNEQ(FieldCollaborationScore, v))
}

// CollaborationScoreIn applies the In predicate on the "collaboration_score" field.
func CollaborationScoreIn(vs ...int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldIn(FieldCollaborationScore, vs...))
}

// CollaborationScoreNotIn applies the NotIn predicate on the "collaboration_score" field.
func CollaborationScoreNotIn(vs ...int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNotIn(FieldCollaborationScore, vs...))
}

// CollaborationScoreGT applies the GT predicate on the "collaboration_score" field.
func CollaborationScoreGT(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGT(FieldCollaborationScore, v))
}

// CollaborationScoreGTE applies the GTE predicate on the "collaboration_score" field.
func CollaborationScoreGTE(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGTE(FieldCollaborationScore, v))
}

// CollaborationScoreLT applies the LT predicate on the "collaboration_score" field.
func CollaborationScoreLT(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLT(FieldCollaborationScore, v))
}

// CollaborationScoreLTE applies the LTE predicate on the "collaboration_score" field.
func CollaborationScoreLTE(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLTE(FieldCollaborationScore, v))
}

// ProblemSolvingScoreEQ applies the EQ predicate on the "problem_solving_score" field.
func ProblemSolvingScoreEQ(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldProblemSolvingScore, v))
}

// ProblemSolvingScoreNEQ applies the NEQ predicate on the "problem_solving_score" field.
func ProblemSolvingScoreNEQ(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNEQ(FieldProblemSolvingScore, v))
}

// ProblemSolvingScoreIn applies the In predicate on the "problem_solving_score" field.
func ProblemSolvingScoreIn(vs ...int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldIn(FieldProblemSolvingScore, vs...))
}

// ProblemSolvingScoreNotIn applies the NotIn predicate on the "problem_solving_score" field.
func ProblemSolvingScoreNotIn(vs ...int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNotIn(FieldProblemSolvingScore, vs...))
}

// ProblemSolvingScoreGT applies the GT predicate on the "problem_solving_score" field.
func ProblemSolvingScoreGT(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGT(FieldProblemSolvingScore, v))
}

// ProblemSolvingScoreGTE applies the GTE predicate on the "problem_solving_score" field.
func ProblemSolvingScoreGTE(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGTE(FieldProblemSolvingScore, v))
}

// ProblemSolvingScoreLT applies the LT predicate on the "problem_solving_score" field.
func ProblemSolvingScoreLT(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLT(FieldProblemSolvingScore, v))
}

// ProblemSolvingScoreLTE applies the LTE predicate on the "problem_solving_score" field.
func ProblemSolvingScoreLTE(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLTE(FieldProblemSolvingScore, v))
}

// GrowthScoreEQ applies the EQ predicate on the "growth_score" field.
func GrowthScoreEQ(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldGrowthScore, v))
}

// GrowthScoreNEQ applies the NEQ predicate on the "growth_score" field.
func GrowthScoreNEQ(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNEQ(FieldGrowthScore, v))
}

// GrowthScoreIn applies the In predicate on the "growth_score" field.
func GrowthScoreIn(vs ...int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldIn(FieldGrowthScore, vs...))
}

// GrowthScoreNotIn applies the NotIn predicate on the "growth_score" field.
func GrowthScoreNotIn(vs ...int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNotIn(FieldGrowthScore, vs...))
}

// GrowthScoreGT applies the GT predicate on the "growth_score" field.
func GrowthScoreGT(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGT(FieldGrowthScore, v))
}

// GrowthScoreGTE applies the GTE predicate on the "growth_score" field.
func GrowthScoreGTE(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGTE(FieldGrowthScore, v))
}

// GrowthScoreLT applies the LT predicate on the "growth_score" field.
func GrowthScoreLT(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLT(FieldGrowthScore, v))
}

// GrowthScoreLTE applies the LTE predicate on the "growth_score" field.
func GrowthScoreLTE(v int) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLTE(FieldGrowthScore, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldContainsFold(FieldSummary, v))
}

// StrengthsEQ applies the EQ predicate on the "strengths" field.
func StrengthsEQ(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldStrengths, v))
}

// StrengthsNEQ applies the NEQ predicate on the "strengths" field.
func StrengthsNEQ(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNEQ(FieldStrengths, v))
}

// StrengthsIn applies the In predicate on the "strengths" field.
func StrengthsIn(vs ...string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldIn(FieldStrengths, vs...))
}

// StrengthsNotIn applies the NotIn predicate on the "strengths" field.
func StrengthsNotIn(vs ...string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNotIn(FieldStrengths, vs...))
}

// StrengthsGT applies the GT predicate on the "strengths" field.
func StrengthsGT(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGT(FieldStrengths, v))
}

// StrengthsGTE applies the GTE predicate on the "strengths" field.
func StrengthsGTE(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGTE(FieldStrengths, v))
}

// StrengthsLT applies the LT predicate on the "strengths" field.
func StrengthsLT(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLT(FieldStrengths, v))
}

// StrengthsLTE applies the LTE predicate on the "strengths" field.
func StrengthsLTE(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLTE(FieldStrengths, v))
}

// StrengthsContains applies the Contains predicate on the "strengths" field.
func StrengthsContains(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldContains(FieldStrengths, v))
}

// StrengthsHasPrefix applies the HasPrefix predicate on the "strengths" field.
func StrengthsHasPrefix(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldHasPrefix(FieldStrengths, v))
}

// StrengthsHasSuffix applies the HasSuffix predicate on the "strengths" field.
func StrengthsHasSuffix(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldHasSuffix(FieldStrengths, v))
}

// StrengthsEqualFold applies the EqualFold predicate on the "strengths" field.
func StrengthsEqualFold(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEqualFold(FieldStrengths, v))
}

// StrengthsContainsFold applies the ContainsFold predicate on the "strengths" field.
func StrengthsContainsFold(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldContainsFold(FieldStrengths, v))
}

// ImprovementsEQ applies the EQ predicate on the "improvements" field.
func ImprovementsEQ(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldImprovements, v))
}

// ImprovementsNEQ applies the NEQ predicate on the "improvements" field.
func ImprovementsNEQ(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNEQ(FieldImprovements, v))
}

// ImprovementsIn applies the In predicate on the "improvements" field.
func ImprovementsIn(vs ...string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldIn(FieldImprovements, vs...))
}

// ImprovementsNotIn applies the NotIn predicate on the "improvements" field.
func ImprovementsNotIn(vs ...string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNotIn(FieldImprovements, vs...))
}

// ImprovementsGT applies the GT predicate on the "improvements" field.
func ImprovementsGT(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGT(FieldImprovements, v))
}

// ImprovementsGTE applies the GTE predicate on the "improvements" field.
func ImprovementsGTE(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGTE(FieldImprovements, v))
}

// ImprovementsLT applies the LT predicate on the "improvements" field.
func ImprovementsLT(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLT(FieldImprovements, v))
}

// ImprovementsLTE applies the LTE predicate on the "improvements" field.
func ImprovementsLTE(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLTE(FieldImprovements, v))
}

// ImprovementsContains applies the Contains predicate on the "improvements" field.
func ImprovementsContains(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldContains(FieldImprovements, v))
}

// ImprovementsHasPrefix applies the HasPrefix predicate on the "improvements" field.
func ImprovementsHasPrefix(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldHasPrefix(FieldImprovements, v))
}

// ImprovementsHasSuffix applies the HasSuffix predicate on the "improvements" field.
func ImprovementsHasSuffix(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldHasSuffix(FieldImprovements, v))
}

// ImprovementsEqualFold applies the EqualFold predicate on the "improvements" field.
func ImprovementsEqualFold(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEqualFold(FieldImprovements, v))
}

// ImprovementsContainsFold applies the ContainsFold predicate on the "improvements" field.
func ImprovementsContainsFold(v string) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldContainsFold(FieldImprovements, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InterviewEvaluation) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InterviewEvaluation) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InterviewEvaluation) predicate.InterviewEvaluation {
	return predicate.InterviewEvaluation(sql.NotPredicates(p))
}
