package interview

import (
	"fmt"
	"strings"
)

const noReviewData = "No interview review data is available for this company."

// Sentinel phrases the answer-judgement prompt asks the model to emit.
// Anything other than the follow-up sentinel counts as "move on".
const (
	verdictFollowUp = "FOLLOW_UP_NEEDED"
	verdictNext     = "NEXT_QUESTION"
)

func formatReviewContext(reviews []Review) string {
	if len(reviews) == 0 {
		return noReviewData
	}
	lines := make([]string, 0, len(reviews))
	for _, r := range reviews {
		lines = append(lines, fmt.Sprintf("- difficulty: %s, questions: [%s], review: %s",
			strings.TrimSpace(r.Difficulty),
			flattenLine(r.Questions),
			flattenLine(r.Summary)))
	}
	return strings.Join(lines, "\n")
}

func flattenLine(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
	if s == "" {
		return "N/A"
	}
	return s
}

func mainQuestionsPrompt(reviews []Review, field FieldCategory, count int) string {
	return fmt.Sprintf(`You are a technical interviewer for the %s field.
The target company has the interview review data below. Match the company's
interview style (difficulty, question types) when you conduct the interview.

Generate %d essential main questions that together assess the candidate's
technical skill, project experience, problem solving, collaboration, and
growth potential.

IMPORTANT: respond with a pure JSON array of strings and nothing else, no
explanation and no markdown fence.

[response format example]
["first question text", "second question text"]

[company interview data]
%s
`, field, count, formatReviewContext(reviews))
}

func answerJudgementPrompt(history []string) string {
	lastQuestion := history[len(history)-2]
	lastAnswer := history[len(history)-1]
	return fmt.Sprintf(`You are an interviewer judging a candidate's answer.
[question]: %s
[answer]: %s
If the answer is concrete, grounded in experience, and sufficiently detailed,
reply with exactly "%s".
If the answer is abstract, too short, or leaves a technical term worth digging
into, reply with exactly "%s".
Reply with exactly one of the two phrases and nothing else.
`, lastQuestion, lastAnswer, verdictNext, verdictFollowUp)
}

func followUpPrompt(history []string) string {
	return fmt.Sprintf(`You are a technical interviewer. Below is the
conversation so far.
[conversation]:
%s
Generate exactly one follow-up question that probes the candidate's most
recent answer for more concrete detail. Keep it short and unambiguous.
`, formatTranscript(history))
}

func closingPrompt(history []string) string {
	return fmt.Sprintf(`You are an interviewer who has just finished a
technical interview. Based on the full conversation below, produce a natural
closing remark: thank the candidate and ask whether they have any final
questions.
[full conversation]:
%s
`, formatTranscript(history))
}

func evaluationPrompt(history []string) string {
	return fmt.Sprintf(`You are a seasoned interviewer at an IT company
evaluating a candidate strictly against the rubric below. Score each of the
four areas from 1 to 5 based only on what the candidate actually said; never
invent experience the candidate did not mention.

Areas: problem solving, technical expertise, collaboration & communication,
growth potential. totalScore is the floor of the average of the four area
scores. Keep the summary under 500 characters; it should cover the overall
impression, the candidate's strengths and weaknesses, and a hiring
recommendation. Also return the strengths and the concrete improvement points
as separate fields.

IMPORTANT: respond with pure JSON and nothing else, no explanation and no
markdown fence.

[response format example]
{
  "totalScore": 4,
  "problemSolvingScore": 4,
  "technicalExpertiseScore": 5,
  "collaborationCommunicationScore": 4,
  "growthPotentialScore": 3,
  "summary": "overall assessment in under 500 characters",
  "strengths": "what the candidate did well",
  "improvements": "what the candidate should work on"
}

[full conversation]:
%s
`, formatTranscript(history))
}
