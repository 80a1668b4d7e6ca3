package interview

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Policy fixes the interview shape. It is injected at construction and never
// tuned by callers.
type Policy struct {
	MaxMainQuestions int
	MaxFollowUps     int
	ReviewSampleSize int
}

func DefaultPolicy() Policy {
	return Policy{
		MaxMainQuestions: 3,
		MaxFollowUps:     1,
		ReviewSampleSize: 20,
	}
}

// Service drives interview sessions: question sequencing, follow-up
// decisions, closing, and the one-time evaluation. All operations on the
// same session id execute serially.
type Service struct {
	members   MemberDirectory
	companies CompanyDirectory
	reviews   ReviewSampler
	store     Store
	gen       Generator
	policy    Policy
	locks     *sessionLocks
	now       func() time.Time
}

func NewService(members MemberDirectory, companies CompanyDirectory, reviews ReviewSampler, store Store, gen Generator, policy Policy) *Service {
	return &Service{
		members:   members,
		companies: companies,
		reviews:   reviews,
		store:     store,
		gen:       gen,
		policy:    policy,
		locks:     newSessionLocks(),
		now:       time.Now,
	}
}

type StartResult struct {
	SessionID string
	Question  string
}

type AdvanceResult struct {
	Question string
	Finished bool
}

// StartSession resolves member and company, seeds the main questions from a
// generated plan, and returns the first question.
func (s *Service) StartSession(ctx context.Context, memberID, companyName string, field FieldCategory) (*StartResult, error) {
	member, err := s.members.FindMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	company, err := s.companies.FindCompany(ctx, companyName)
	if err != nil {
		return nil, err
	}

	session := NewSession(member.ID, company.ID, field, s.now())
	release := s.locks.acquire(session.ID)
	defer release()

	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	// From here on the session row exists. A failed step must take it back
	// out, or it would linger as an unplayable IN_PROGRESS orphan.
	fail := func(err error) (*StartResult, error) {
		if derr := s.store.DeleteSession(context.WithoutCancel(ctx), session.ID); derr != nil {
			log.Printf("interview: session %s cleanup failed: %v", session.ID, derr)
		}
		return nil, err
	}

	reviews, err := s.reviews.SampleReviews(ctx, company.Name, field, s.policy.ReviewSampleSize)
	if err != nil {
		return fail(fmt.Errorf("sample reviews: %w", err))
	}

	raw, err := s.gen.Generate(ctx, mainQuestionsPrompt(reviews, field, s.policy.MaxMainQuestions))
	if err != nil {
		return fail(err)
	}
	questions, err := parseQuestionList(raw)
	if err != nil {
		return fail(err)
	}
	if len(questions) > s.policy.MaxMainQuestions {
		questions = questions[:s.policy.MaxMainQuestions]
	}

	for i, q := range questions {
		record := &QARecord{
			SessionID:     session.ID,
			MainOrder:     i + 1,
			FollowUpOrder: 0,
			Question:      q,
		}
		if err := s.store.CreateRecord(ctx, record); err != nil {
			return fail(fmt.Errorf("seed question %d: %w", i+1, err))
		}
	}
	log.Printf("interview: session %s started with %d main questions", session.ID, len(questions))

	return &StartResult{SessionID: session.ID, Question: questions[0]}, nil
}

// AdvanceSession records the answer to the current open question and decides
// what comes next: a follow-up, the next main question, or the closing
// remark that completes the session.
func (s *Service) AdvanceSession(ctx context.Context, sessionID, callerMemberID, answerText, audioRef string) (*AdvanceResult, error) {
	release := s.locks.acquire(sessionID)
	defer release()

	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.MemberID != callerMemberID {
		return nil, fmt.Errorf("%w: session %s", ErrNotOwner, sessionID)
	}

	records, err := s.store.ListRecords(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	current := firstUnanswered(records)
	if current == nil {
		return nil, fmt.Errorf("%w: session %s", ErrNoOpenQuestion, sessionID)
	}

	current.Answer = answerText
	current.AudioRef = audioRef
	current.Answered = true
	if err := s.store.AnswerRecord(ctx, current); err != nil {
		return nil, fmt.Errorf("record answer: %w", err)
	}

	// The answer is persisted. Every failure below must take it back out, so
	// a retry replays this same step instead of landing on the next record.
	revert := func(err error) (*AdvanceResult, error) {
		if rerr := s.store.UnanswerRecord(context.WithoutCancel(ctx), current); rerr != nil {
			log.Printf("interview: session %s answer revert failed: %v", sessionID, rerr)
		}
		return nil, err
	}

	history := flattenTranscript(records)

	if current.FollowUpOrder < s.policy.MaxFollowUps {
		needed, err := s.shouldFollowUp(ctx, history)
		if err != nil {
			return revert(err)
		}
		if needed {
			text, err := s.gen.Generate(ctx, followUpPrompt(history))
			if err != nil {
				return revert(err)
			}
			followUp := &QARecord{
				SessionID:     sessionID,
				MainOrder:     current.MainOrder,
				FollowUpOrder: current.FollowUpOrder + 1,
				Question:      text,
			}
			if err := s.store.CreateRecord(ctx, followUp); err != nil {
				return revert(fmt.Errorf("create follow-up: %w", err))
			}
			return &AdvanceResult{Question: text, Finished: false}, nil
		}
	}

	next := current.MainOrder + 1
	if next > s.policy.MaxMainQuestions {
		remark, err := s.gen.Generate(ctx, closingPrompt(history))
		if err != nil {
			return revert(err)
		}
		session.Complete(s.now())
		if err := s.store.CompleteSession(ctx, session); err != nil {
			return revert(fmt.Errorf("complete session: %w", err))
		}
		log.Printf("interview: session %s completed", sessionID)
		return &AdvanceResult{Question: remark, Finished: true}, nil
	}

	for _, r := range records {
		if r.MainOrder == next && r.FollowUpOrder == 0 {
			return &AdvanceResult{Question: r.Question, Finished: false}, nil
		}
	}
	return revert(fmt.Errorf("%w: main question %d missing", ErrInconsistent, next))
}

// firstUnanswered returns the open question: the smallest-ordered record
// whose answer is still unset. Records arrive already ordered.
func firstUnanswered(records []*QARecord) *QARecord {
	for _, r := range records {
		if !r.Answered {
			return r
		}
	}
	return nil
}
