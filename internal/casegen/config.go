package casegen

// Config controls the behavior of the LLMDrafter.
type Config struct {
	// MaxTokens is the token budget for the LLM response. Case records
	// run long: a full vignette with explanation is around 600 tokens.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorQuestions is the maximum number of prior questions
	// to include in the prompt for deduplication.
	MaxPriorQuestions int

	// MaxAttempts bounds how many drafts are tried before giving up.
	// After a failed draft the validator's error list is fed back to
	// the model on the next attempt.
	MaxAttempts int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:         2048,
		Temperature:       0.8,
		MaxPriorQuestions: 8,
		MaxAttempts:       3,
	}
}
