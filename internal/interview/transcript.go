package interview

import "strings"

// flattenTranscript turns ordered records into an alternating
// question/answer list. Unanswered or empty answers are omitted, so the
// slice may end on a question.
func flattenTranscript(records []*QARecord) []string {
	history := make([]string, 0, len(records)*2)
	for _, r := range records {
		history = append(history, r.Question)
		if r.Answered && r.Answer != "" {
			history = append(history, r.Answer)
		}
	}
	return history
}

// formatTranscript renders the flattened history as a "Q: / A:" dialogue.
// Even indexes are questions, odd indexes answers.
func formatTranscript(history []string) string {
	var b strings.Builder
	for i, line := range history {
		if i%2 == 0 {
			b.WriteString("Q: ")
			b.WriteString(line)
			b.WriteString("\n")
		} else {
			b.WriteString("A: ")
			b.WriteString(line)
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
