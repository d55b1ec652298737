package casegen

import (
	"context"

	"github.com/blackstar-game/blackstar/internal/caserecord"
)

// Drafter produces case records using an LLM provider.
type Drafter interface {
	// Draft produces a single validated case record for the given input.
	Draft(ctx context.Context, input DraftInput) (*caserecord.CaseRecord, error)
}

// DraftInput holds all context needed to draft a case.
type DraftInput struct {
	// Specialty is the target specialty for the case.
	Specialty caserecord.Specialty

	// Difficulty is the requested difficulty (1-5).
	Difficulty int

	// PriorQuestions contains lead-in questions from recently answered
	// cases. Used for deduplication in the prompt.
	PriorQuestions []string

	// SpecialtyAccuracy is the player's historical accuracy in this
	// specialty (0 when unknown). Included in the prompt so the model
	// can pitch distractors against observed weaknesses.
	SpecialtyAccuracy float64
}
