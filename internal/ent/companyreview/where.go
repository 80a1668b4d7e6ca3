// Code generated by ent, DO NOT EDIT.

package companyreview

import (
	"mockview/internal/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldLTE(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldEQ(FieldCompanyID, v))
}

// Field applies equality check predicate on the "field" field. It's identical to FieldEQ.
func Field(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldEQ(FieldField, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldEQ(FieldDifficulty, v))
}

// QuestionsText applies equality check predicate on the "questions_text" field. It's identical to QuestionsTextEQ.
func QuestionsText(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldEQ(FieldQuestionsText, v))
}

// SummaryText applies equality check predicate on the "summary_text" field. It's identical to SummaryTextEQ.
func SummaryText(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldEQ(FieldSummaryText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldEQ(FieldCreatedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDContains applies the Contains predicate on the "company_id" field.
func CompanyIDContains(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldContains(FieldCompanyID, v))
}

// CompanyIDHasPrefix applies the HasPrefix predicate on the "company_id" field.
func CompanyIDHasPrefix(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldHasPrefix(FieldCompanyID, v))
}

// CompanyIDHasSuffix applies the HasSuffix predicate on the "company_id" field.
func CompanyIDHasSuffix(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldHasSuffix(FieldCompanyID, v))
}

// CompanyIDEqualFold applies the EqualFold predicate on the "company_id" field.
func CompanyIDEqualFold(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldEqualFold(FieldCompanyID, v))
}

// CompanyIDContainsFold applies the ContainsFold predicate on the "company_id" field.
func CompanyIDContainsFold(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldContainsFold(FieldCompanyID, v))
}

// FieldEQ applies the EQ predicate on the "field" field.
func FieldEQ(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldEQ(FieldField, v))
}

// FieldNEQ applies the NEQ predicate on the "field" field.
func FieldNEQ(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldNEQ(FieldField, v))
}

// FieldIn applies the In predicate on the "field" field.
func FieldIn(vs ...string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldIn(FieldField, vs...))
}

// FieldNotIn applies the NotIn predicate on the "field" field.
func FieldNotIn(vs ...string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldNotIn(FieldField, vs...))
}

// FieldGT applies the GT predicate on the "field" field.
func FieldGT(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldGT(FieldField, v))
}

// FieldGTE applies the GTE predicate on the "field" field.
func FieldGTE(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldGTE(FieldField, v))
}

// FieldLT applies the LT predicate on the "field" field.
func FieldLT(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldLT(FieldField, v))
}

// FieldLTE applies the LTE predicate on the "field" field.
func FieldLTE(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldLTE(FieldField, v))
}

// FieldContains applies the Contains predicate on the "field" field.
func FieldContains(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldContains(FieldField, v))
}

// FieldHasPrefix applies the HasPrefix predicate on the "field" field.
func FieldHasPrefix(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldHasPrefix(FieldField, v))
}

// FieldHasSuffix applies the HasSuffix predicate on the "field" field.
func FieldHasSuffix(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldHasSuffix(FieldField, v))
}

// FieldEqualFold applies the EqualFold predicate on the "field" field.
func FieldEqualFold(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldEqualFold(FieldField, v))
}

// FieldContainsFold applies the ContainsFold predicate on the "field" field.
func FieldContainsFold(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldContainsFold(FieldField, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldContainsFold(FieldDifficulty, v))
}

// QuestionsTextEQ applies the EQ predicate on the "questions_text" field.
func QuestionsTextEQ(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldEQ(FieldQuestionsText, v))
}

// QuestionsTextNEQ applies the NEQ predicate on the "questions_text" field.
func QuestionsTextNEQ(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldNEQ(FieldQuestionsText, v))
}

// QuestionsTextIn applies the In predicate on the "questions_text" field.
func QuestionsTextIn(vs ...string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldIn(FieldQuestionsText, vs...))
}

// QuestionsTextNotIn applies the NotIn predicate on the "questions_text" field.
func QuestionsTextNotIn(vs ...string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldNotIn(FieldQuestionsText, vs...))
}

// QuestionsTextGT applies the GT predicate on the "questions_text" field.
func QuestionsTextGT(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldGT(FieldQuestionsText, v))
}

// QuestionsTextGTE applies the GTE predicate on the "questions_text" field.
func QuestionsTextGTE(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldGTE(FieldQuestionsText, v))
}

// QuestionsTextLT applies the LT predicate on the "questions_text" field.
func QuestionsTextLT(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldLT(FieldQuestionsText, v))
}

// QuestionsTextLTE applies the LTE predicate on the "questions_text" field.
func QuestionsTextLTE(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldLTE(FieldQuestionsText, v))
}

// QuestionsTextContains applies the Contains predicate on the "questions_text" field.
func QuestionsTextContains(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldContains(FieldQuestionsText, v))
}

// QuestionsTextHasPrefix applies the HasPrefix predicate on the "questions_text" field.
func QuestionsTextHasPrefix(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldHasPrefix(FieldQuestionsText, v))
}

// QuestionsTextHasSuffix applies the HasSuffix predicate on the "questions_text" field.
func QuestionsTextHasSuffix(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldHasSuffix(FieldQuestionsText, v))
}

// QuestionsTextEqualFold applies the EqualFold predicate on the "questions_text" field.
func QuestionsTextEqualFold(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldEqualFold(FieldQuestionsText, v))
}

// QuestionsTextContainsFold applies the ContainsFold predicate on the "questions_text" field.
func QuestionsTextContainsFold(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldContainsFold(FieldQuestionsText, v))
}

// SummaryTextEQ applies the EQ predicate on the "summary_text" field.
func SummaryTextEQ(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldEQ(FieldSummaryText, v))
}

// SummaryTextNEQ applies the NEQ predicate on the "summary_text" field.
func SummaryTextNEQ(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldNEQ(FieldSummaryText, v))
}

// SummaryTextIn applies the In predicate on the "summary_text" field.
func SummaryTextIn(vs ...string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldIn(FieldSummaryText, vs...))
}

// SummaryTextNotIn applies the NotIn predicate on the "summary_text" field.
func SummaryTextNotIn(vs ...string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldNotIn(FieldSummaryText, vs...))
}

// SummaryTextGT applies the GT predicate on the "summary_text" field.
func SummaryTextGT(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldGT(FieldSummaryText, v))
}

// SummaryTextGTE applies the GTE predicate on the "summary_text" field.
func SummaryTextGTE(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldGTE(FieldSummaryText, v))
}

// SummaryTextLT applies the LT predicate on the "summary_text" field.
func SummaryTextLT(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldLT(FieldSummaryText, v))
}

// SummaryTextLTE applies the LTE predicate on the "summary_text" field.
func SummaryTextLTE(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldLTE(FieldSummaryText, v))
}

// SummaryTextContains applies the Contains predicate on the "summary_text" field.
func SummaryTextContains(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldContains(FieldSummaryText, v))
}

// SummaryTextHasPrefix applies the HasPrefix predicate on the "summary_text" field.
func SummaryTextHasPrefix(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldHasPrefix(FieldSummaryText, v))
}

// SummaryTextHasSuffix applies the HasSuffix predicate on the "summary_text" field.
func SummaryTextHasSuffix(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldHasSuffix(FieldSummaryText, v))
}

// SummaryTextEqualFold applies the EqualFold predicate on the "summary_text" field.
func SummaryTextEqualFold(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldEqualFold(FieldSummaryText, v))
}

// SummaryTextContainsFold applies the ContainsFold predicate on the "summary_text" field.
func SummaryTextContainsFold(v string) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldContainsFold(FieldSummaryText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CompanyReview {
	return predicate.CompanyReview(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CompanyReview) predicate.CompanyReview {
	return predicate.CompanyReview(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CompanyReview) predicate.CompanyReview {
	return predicate.CompanyReview(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CompanyReview) predicate.CompanyReview {
	return predicate.CompanyReview(sql.NotPredicates(p))
}
