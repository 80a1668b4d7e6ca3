// Code generated by ent, DO NOT EDIT.

package interviewqa

import (
	"mockview/internal/ent/predicate"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldEQ(FieldSessionID, v))
}

// MainOrder applies equality check predicate on the "main_order" field. It's identical to MainOrderEQ.
func MainOrder(v int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldEQ(FieldMainOrder, v))
}

// FollowUpOrder applies equality check predicate on the "follow_up_order" field. It's identical to FollowUpOrderEQ.
func FollowUpOrder(v int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldEQ(FieldFollowUpOrder, v))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldEQ(FieldQuestionText, v))
}

// AnswerText applies equality check predicate on the "answer_text" field. It's identical to AnswerTextEQ.
func AnswerText(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldEQ(FieldAnswerText, v))
}

// AudioRef applies equality check predicate on the "audio_ref" field. It's identical to AudioRefEQ.
func AudioRef(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldEQ(FieldAudioRef, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldContainsFold(FieldSessionID, v))
}

// MainOrderEQ applies the EQ predicate on the "main_order" field.
func MainOrderEQ(v int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldEQ(FieldMainOrder, v))
}

// MainOrderNEQ applies the NEQ predicate on the "main_order" field.
func MainOrderNEQ(v int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldNEQ(FieldMainOrder, v))
}

// MainOrderIn applies the In predicate on the "main_order" field.
func MainOrderIn(vs ...int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldIn(FieldMainOrder, vs...))
}

// MainOrderNotIn applies the NotIn predicate on the "main_order" field.
func MainOrderNotIn(vs ...int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldNotIn(FieldMainOrder, vs...))
}

// MainOrderGT applies the GT predicate on the "main_order" field.
func MainOrderGT(v int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldGT(FieldMainOrder, v))
}

// MainOrderGTE applies the GTE predicate on the "main_order" field.
func MainOrderGTE(v int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldGTE(FieldMainOrder, v))
}

// MainOrderLT applies the LT predicate on the "main_order" field.
func MainOrderLT(v int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldLT(FieldMainOrder, v))
}

// MainOrderLTE applies the LTE predicate on the "main_order" field.
func MainOrderLTE(v int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldLTE(FieldMainOrder, v))
}

// FollowUpOrderEQ applies the EQ predicate on the "follow_up_order" field.
func FollowUpOrderEQ(v int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldEQ(FieldFollowUpOrder, v))
}

// FollowUpOrderNEQ applies the NEQ predicate on the "follow_up_order" field.
func FollowUpOrderNEQ(v int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldNEQ(FieldFollowUpOrder, v))
}

// FollowUpOrderIn applies the In predicate on the "follow_up_order" field.
func FollowUpOrderIn(vs ...int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldIn(FieldFollowUpOrder, vs...))
}

// FollowUpOrderNotIn applies the NotIn predicate on the "follow_up_order" field.
func FollowUpOrderNotIn(vs ...int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldNotIn(FieldFollowUpOrder, vs...))
}

// FollowUpOrderGT applies the GT predicate on the "follow_up_order" field.
func FollowUpOrderGT(v int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldGT(FieldFollowUpOrder, v))
}

// FollowUpOrderGTE applies the GTE predicate on the "follow_up_order" field.
func FollowUpOrderGTE(v int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldGTE(FieldFollowUpOrder, v))
}

// FollowUpOrderLT applies the LT predicate on the "follow_up_order" field.
func FollowUpOrderLT(v int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldLT(FieldFollowUpOrder, v))
}

// FollowUpOrderLTE applies the LTE predicate on the "follow_up_order" field.
func FollowUpOrderLTE(v int) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldLTE(FieldFollowUpOrder, v))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldContainsFold(FieldQuestionText, v))
}

// AnswerTextEQ applies the EQ predicate on the "answer_text" field.
func AnswerTextEQ(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldEQ(FieldAnswerText, v))
}

// AnswerTextNEQ applies the NEQ predicate on the "answer_text" field.
func AnswerTextNEQ(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldNEQ(FieldAnswerText, v))
}

// AnswerTextIn applies the In predicate on the "answer_text" field.
func AnswerTextIn(vs ...string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldIn(FieldAnswerText, vs...))
}

// AnswerTextNotIn applies the NotIn predicate on the "answer_text" field.
func AnswerTextNotIn(vs ...string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldNotIn(FieldAnswerText, vs...))
}

// AnswerTextGT applies the GT predicate on the "answer_text" field.
func AnswerTextGT(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldGT(FieldAnswerText, v))
}

// AnswerTextGTE applies the GTE predicate on the "answer_text" field.
func AnswerTextGTE(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldGTE(FieldAnswerText, v))
}

// AnswerTextLT applies the LT predicate on the "answer_text" field.
func AnswerTextLT(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldLT(FieldAnswerText, v))
}

// AnswerTextLTE applies the LTE predicate on the "answer_text" field.
func AnswerTextLTE(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldLTE(FieldAnswerText, v))
}

// AnswerTextContains applies the Contains predicate on the "answer_text" field.
func AnswerTextContains(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldContains(FieldAnswerText, v))
}

// AnswerTextHasPrefix applies the HasPrefix predicate on the "answer_text" field.
func AnswerTextHasPrefix(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldHasPrefix(FieldAnswerText, v))
}

// AnswerTextHasSuffix applies the HasSuffix predicate on the "answer_text" field.
func AnswerTextHasSuffix(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldHasSuffix(FieldAnswerText, v))
}

// AnswerTextIsNil applies the IsNil predicate on the "answer_text" field.
func AnswerTextIsNil() predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldIsNull(FieldAnswerText))
}

// AnswerTextNotNil applies the NotNil predicate on the "answer_text" field.
func AnswerTextNotNil() predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldNotNull(FieldAnswerText))
}

// AnswerTextEqualFold applies the EqualFold predicate on the "answer_text" field.
func AnswerTextEqualFold(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldEqualFold(FieldAnswerText, v))
}

// AnswerTextContainsFold applies the ContainsFold predicate on the "answer_text" field.
func AnswerTextContainsFold(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldContainsFold(FieldAnswerText, v))
}

// AudioRefEQ applies the EQ predicate on the "audio_ref" field.
func AudioRefEQ(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldEQ(FieldAudioRef, v))
}

// AudioRefNEQ applies the NEQ predicate on the "audio_ref" field.
func AudioRefNEQ(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldNEQ(FieldAudioRef, v))
}

// AudioRefIn applies the In predicate on the "audio_ref" field.
func AudioRefIn(vs ...string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldIn(FieldAudioRef, vs...))
}

// AudioRefNotIn applies the NotIn predicate on the "audio_ref" field.
func AudioRefNotIn(vs ...string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldNotIn(FieldAudioRef, vs...))
}

// AudioRefGT applies the GT predicate on the "audio_ref" field.
func AudioRefGT(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldGT(FieldAudioRef, v))
}

// AudioRefGTE applies the GTE predicate on the "audio_ref" field.
func AudioRefGTE(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldGTE(FieldAudioRef, v))
}

// AudioRefLT applies the LT predicate on the "audio_ref" field.
func AudioRefLT(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldLT(FieldAudioRef, v))
}

// AudioRefLTE applies the LTE predicate on the "audio_ref" field.
func AudioRefLTE(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldLTE(FieldAudioRef, v))
}

// AudioRefContains applies the Contains predicate on the "audio_ref" field.
func AudioRefContains(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldContains(FieldAudioRef, v))
}

// AudioRefHasPrefix applies the HasPrefix predicate on the "audio_ref" field.
func AudioRefHasPrefix(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldHasPrefix(FieldAudioRef, v))
}

// AudioRefHasSuffix applies the HasSuffix predicate on the "audio_ref" field.
func AudioRefHasSuffix(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldHasSuffix(FieldAudioRef, v))
}

// AudioRefEqualFold applies the EqualFold predicate on the "audio_ref" field.
func AudioRefEqualFold(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldEqualFold(FieldAudioRef, v))
}

// AudioRefContainsFold applies the ContainsFold predicate on the "audio_ref" field.
func AudioRefContainsFold(v string) predicate.InterviewQA {
	return predicate.InterviewQA(sql.FieldContainsFold(FieldAudioRef, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InterviewQA) predicate.InterviewQA {
	return predicate.InterviewQA(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InterviewQA) predicate.InterviewQA {
	return predicate.InterviewQA(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InterviewQA) predicate.InterviewQA {
	return predicate.InterviewQA(sql.NotPredicates(p))
}
