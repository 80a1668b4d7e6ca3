// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
	}
	// CompanyReviewsColumns holds the columns for the "company_reviews" table.
	CompanyReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "company_id", Type: field.TypeString},
		{Name: "field", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "questions_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "summary_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CompanyReviewsTable holds the schema information for the "company_reviews" table.
	CompanyReviewsTable = &schema.Table{
		Name:       "company_reviews",
		Columns:    CompanyReviewsColumns,
		PrimaryKey: []*schema.Column{CompanyReviewsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "companyreview_company_id_field",
				Unique:  false,
				Columns: []*schema.Column{CompanyReviewsColumns[1], CompanyReviewsColumns[2]},
			},
		},
	}
	// InterviewEvaluationsColumns holds the columns for the "interview_evaluations" table.
	InterviewEvaluationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "total_score", Type: field.TypeInt},
		{Name: "technical_score", Type: field.TypeInt},
		{Name: "collaboration_score", Type: field.TypeInt},
		{Name: "problem_solving_score", Type: field.TypeInt},
		{Name: "growth_score", Type: field.TypeInt},
		{Name: "summary", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "strengths", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "improvements", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// InterviewEvaluationsTable holds the schema information for the "interview_evaluations" table.
	InterviewEvaluationsTable = &schema.Table{
		Name:       "interview_evaluations",
		Columns:    InterviewEvaluationsColumns,
		PrimaryKey: []*schema.Column{InterviewEvaluationsColumns[0]},
	}
	// InterviewQasColumns holds the columns for the "interview_qas" table.
	InterviewQasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "main_order", Type: field.TypeInt},
		{Name: "follow_up_order", Type: field.TypeInt},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647},
		{Name: "answer_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "audio_ref", Type: field.TypeString, Default: ""},
	}
	// InterviewQasTable holds the schema information for the "interview_qas" table.
	InterviewQasTable = &schema.Table{
		Name:       "interview_qas",
		Columns:    InterviewQasColumns,
		PrimaryKey: []*schema.Column{InterviewQasColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interviewqa_session_id_main_order_follow_up_order",
				Unique:  true,
				Columns: []*schema.Column{InterviewQasColumns[1], InterviewQasColumns[2], InterviewQasColumns[3]},
			},
			{
				Name:    "interviewqa_session_id",
				Unique:  false,
				Columns: []*schema.Column{InterviewQasColumns[1]},
			},
		},
	}
	// InterviewSessionsColumns holds the columns for the "interview_sessions" table.
	InterviewSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "member_id", Type: field.TypeString},
		{Name: "company_id", Type: field.TypeString},
		{Name: "field", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "IN_PROGRESS"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// InterviewSessionsTable holds the schema information for the "interview_sessions" table.
	InterviewSessionsTable = &schema.Table{
		Name:       "interview_sessions",
		Columns:    InterviewSessionsColumns,
		PrimaryKey: []*schema.Column{InterviewSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interviewsession_member_id",
				Unique:  false,
				Columns: []*schema.Column{InterviewSessionsColumns[1]},
			},
		},
	}
	// MembersColumns holds the columns for the "members" table.
	MembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "job_field", Type: field.TypeString, Default: ""},
		{Name: "preferred_field", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MembersTable holds the schema information for the "members" table.
	MembersTable = &schema.Table{
		Name:       "members",
		Columns:    MembersColumns,
		PrimaryKey: []*schema.Column{MembersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CompaniesTable,
		CompanyReviewsTable,
		InterviewEvaluationsTable,
		InterviewQasTable,
		InterviewSessionsTable,
		MembersTable,
	}
)

func init() {
}
