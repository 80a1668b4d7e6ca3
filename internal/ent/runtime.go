// Code generated by ent, DO NOT EDIT.

package ent

import (
	"mockview/internal/ent/company"
	"mockview/internal/ent/companyreview"
	"mockview/internal/ent/interviewevaluation"
	"mockview/internal/ent/interviewqa"
	"mockview/internal/ent/interviewsession"
	"mockview/internal/ent/member"
	"mockview/internal/ent/schema"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[1].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = companyDescName.Validators[0].(func(string) error)
	companyreviewFields := schema.CompanyReview{}.Fields()
	_ = companyreviewFields
	// companyreviewDescCompanyID is the schema descriptor for company_id field.
	companyreviewDescCompanyID := companyreviewFields[1].Descriptor()
	// companyreview.CompanyIDValidator is a validator for the "company_id" field. It is called by the builders before save.
	companyreview.CompanyIDValidator = companyreviewDescCompanyID.Validators[0].(func(string) error)
	// companyreviewDescField is the schema descriptor for field field.
	companyreviewDescField := companyreviewFields[2].Descriptor()
	// companyreview.FieldValidator is a validator for the "field" field. It is called by the builders before save.
	companyreview.FieldValidator = companyreviewDescField.Validators[0].(func(string) error)
	// companyreviewDescDifficulty is the schema descriptor for difficulty field.
	companyreviewDescDifficulty := companyreviewFields[3].Descriptor()
	// companyreview.DefaultDifficulty holds the default value on creation for the difficulty field.
	companyreview.DefaultDifficulty = companyreviewDescDifficulty.Default.(string)
	// companyreviewDescQuestionsText is the schema descriptor for questions_text field.
	companyreviewDescQuestionsText := companyreviewFields[4].Descriptor()
	// companyreview.DefaultQuestionsText holds the default value on creation for the questions_text field.
	companyreview.DefaultQuestionsText = companyreviewDescQuestionsText.Default.(string)
	// companyreviewDescSummaryText is the schema descriptor for summary_text field.
	companyreviewDescSummaryText := companyreviewFields[5].Descriptor()
	// companyreview.DefaultSummaryText holds the default value on creation for the summary_text field.
	companyreview.DefaultSummaryText = companyreviewDescSummaryText.Default.(string)
	// companyreviewDescCreatedAt is the schema descriptor for created_at field.
	companyreviewDescCreatedAt := companyreviewFields[6].Descriptor()
	// companyreview.DefaultCreatedAt holds the default value on creation for the created_at field.
	companyreview.DefaultCreatedAt = companyreviewDescCreatedAt.Default.(func() time.Time)
	interviewevaluationFields := schema.InterviewEvaluation{}.Fields()
	_ = interviewevaluationFields
	// interviewevaluationDescSessionID is the schema descriptor for session_id field.
	interviewevaluationDescSessionID := interviewevaluationFields[1].Descriptor()
	// interviewevaluation.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	interviewevaluation.SessionIDValidator = interviewevaluationDescSessionID.Validators[0].(func(string) error)
	// interviewevaluationDescSummary is the schema descriptor for summary field.
	interviewevaluationDescSummary := interviewevaluationFields[7].Descriptor()
	// interviewevaluation.DefaultSummary holds the default value on creation for the summary field.
	interviewevaluation.DefaultSummary = interviewevaluationDescSummary.Default.(string)
	// interviewevaluationDescStrengths is the schema descriptor for strengths field.
	interviewevaluationDescStrengths := interviewevaluationFields[8].Descriptor()
	// interviewevaluation.DefaultStrengths holds the default value on creation for the strengths field.
	interviewevaluation.DefaultStrengths = interviewevaluationDescStrengths.Default.(string)
	// interviewevaluationDescImprovements is the schema descriptor for improvements field.
	interviewevaluationDescImprovements := interviewevaluationFields[9].Descriptor()
	// interviewevaluation.DefaultImprovements holds the default value on creation for the improvements field.
	interviewevaluation.DefaultImprovements = interviewevaluationDescImprovements.Default.(string)
	// interviewevaluationDescCreatedAt is the schema descriptor for created_at field.
	interviewevaluationDescCreatedAt := interviewevaluationFields[10].Descriptor()
	// interviewevaluation.DefaultCreatedAt holds the default value on creation for the created_at field.
	interviewevaluation.DefaultCreatedAt = interviewevaluationDescCreatedAt.Default.(func() time.Time)
	interviewqaFields := schema.InterviewQA{}.Fields()
	_ = interviewqaFields
	// interviewqaDescSessionID is the schema descriptor for session_id field.
	interviewqaDescSessionID := interviewqaFields[1].Descriptor()
	// interviewqa.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	interviewqa.SessionIDValidator = interviewqaDescSessionID.Validators[0].(func(string) error)
	// interviewqaDescMainOrder is the schema descriptor for main_order field.
	interviewqaDescMainOrder := interviewqaFields[2].Descriptor()
	// interviewqa.MainOrderValidator is a validator for the "main_order" field. It is called by the builders before save.
	interviewqa.MainOrderValidator = interviewqaDescMainOrder.Validators[0].(func(int) error)
	// interviewqaDescFollowUpOrder is the schema descriptor for follow_up_order field.
	interviewqaDescFollowUpOrder := interviewqaFields[3].Descriptor()
	// interviewqa.FollowUpOrderValidator is a validator for the "follow_up_order" field. It is called by the builders before save.
	interviewqa.FollowUpOrderValidator = interviewqaDescFollowUpOrder.Validators[0].(func(int) error)
	// interviewqaDescQuestionText is the schema descriptor for question_text field.
	interviewqaDescQuestionText := interviewqaFields[4].Descriptor()
	// interviewqa.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	interviewqa.QuestionTextValidator = interviewqaDescQuestionText.Validators[0].(func(string) error)
	// interviewqaDescAudioRef is the schema descriptor for audio_ref field.
	interviewqaDescAudioRef := interviewqaFields[6].Descriptor()
	// interviewqa.DefaultAudioRef holds the default value on creation for the audio_ref field.
	interviewqa.DefaultAudioRef = interviewqaDescAudioRef.Default.(string)
	interviewsessionFields := schema.InterviewSession{}.Fields()
	_ = interviewsessionFields
	// interviewsessionDescMemberID is the schema descriptor for member_id field.
	interviewsessionDescMemberID := interviewsessionFields[1].Descriptor()
	// interviewsession.MemberIDValidator is a validator for the "member_id" field. It is called by the builders before save.
	interviewsession.MemberIDValidator = interviewsessionDescMemberID.Validators[0].(func(string) error)
	// interviewsessionDescCompanyID is the schema descriptor for company_id field.
	interviewsessionDescCompanyID := interviewsessionFields[2].Descriptor()
	// interviewsession.CompanyIDValidator is a validator for the "company_id" field. It is called by the builders before save.
	interviewsession.CompanyIDValidator = interviewsessionDescCompanyID.Validators[0].(func(string) error)
	// interviewsessionDescField is the schema descriptor for field field.
	interviewsessionDescField := interviewsessionFields[3].Descriptor()
	// interviewsession.FieldValidator is a validator for the "field" field. It is called by the builders before save.
	interviewsession.FieldValidator = interviewsessionDescField.Validators[0].(func(string) error)
	// interviewsessionDescStatus is the schema descriptor for status field.
	interviewsessionDescStatus := interviewsessionFields[4].Descriptor()
	// interviewsession.DefaultStatus holds the default value on creation for the status field.
	interviewsession.DefaultStatus = interviewsessionDescStatus.Default.(string)
	memberFields := schema.Member{}.Fields()
	_ = memberFields
	// memberDescEmail is the schema descriptor for email field.
	memberDescEmail := memberFields[1].Descriptor()
	// member.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	member.EmailValidator = memberDescEmail.Validators[0].(func(string) error)
	// memberDescName is the schema descriptor for name field.
	memberDescName := memberFields[2].Descriptor()
	// member.DefaultName holds the default value on creation for the name field.
	member.DefaultName = memberDescName.Default.(string)
	// memberDescJobField is the schema descriptor for job_field field.
	memberDescJobField := memberFields[3].Descriptor()
	// member.DefaultJobField holds the default value on creation for the job_field field.
	member.DefaultJobField = memberDescJobField.Default.(string)
	// memberDescPreferredField is the schema descriptor for preferred_field field.
	memberDescPreferredField := memberFields[4].Descriptor()
	// member.DefaultPreferredField holds the default value on creation for the preferred_field field.
	member.DefaultPreferredField = memberDescPreferredField.Default.(string)
	// memberDescCreatedAt is the schema descriptor for created_at field.
	memberDescCreatedAt := memberFields[5].Descriptor()
	// member.DefaultCreatedAt holds the default value on creation for the created_at field.
	member.DefaultCreatedAt = memberDescCreatedAt.Default.(func() time.Time)
}
