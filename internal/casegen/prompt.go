package casegen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a medical educator writing board-style practice cases for medical students.

Rules:
- Write a single clinical vignette appropriate for the given specialty and difficulty.
- Follow the one-best-answer format: a patient presentation, a focused lead-in question, and 4 or 5 answer options where exactly one is correct.
- The demographics line must start with "A " or "An " (e.g. "A 54-year-old woman").
- Always include vital signs with units: BP, HR, RR, and Temp.
- Include labs or imaging only when they change the answer; otherwise leave labs empty.
- Distractors must be plausible diagnoses or actions a student might reach for, not throwaway options.
- The explanation must say why the correct answer is right and name the concept being tested.
- Use plain ASCII text. No markdown, no abbreviations a third-year student would not know.
- Do not repeat any case from the "already asked" list.`

// buildUserMessage constructs the user message from DraftInput and Config limits.
func buildUserMessage(input DraftInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Specialty: %s\n", input.Specialty)
	fmt.Fprintf(&b, "Difficulty: %d\n", input.Difficulty)

	if input.SpecialtyAccuracy > 0 {
		fmt.Fprintf(&b, "Student accuracy in this specialty so far: %.0f%%\n", input.SpecialtyAccuracy*100)
	}

	b.WriteString("\nAlready asked recently:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildRetryMessage tells the model everything wrong with its last draft.
func buildRetryMessage(defects []string) string {
	var b strings.Builder
	b.WriteString("That case failed validation. Fix every problem below and send the corrected case:\n")
	for _, d := range defects {
		fmt.Fprintf(&b, "- %s\n", d)
	}
	return strings.TrimRight(b.String(), "\n")
}

// buildDedup formats prior questions for the prompt, respecting the max limit.
// Returns "None" if there are no prior questions.
func buildDedup(priorQuestions []string, max int) string {
	if len(priorQuestions) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(priorQuestions) > max {
		priorQuestions = priorQuestions[:max]
	}

	var b strings.Builder
	for i, q := range priorQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
