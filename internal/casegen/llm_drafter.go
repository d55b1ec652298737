package casegen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/blackstar-game/blackstar/internal/caserecord"
	"github.com/blackstar-game/blackstar/internal/llm"
)

// DraftError reports a drafted case that failed record validation. The
// accumulated defects are carried so the caller can show all of them.
type DraftError struct {
	CaseID  string
	Defects []string
}

func (e *DraftError) Error() string {
	return fmt.Sprintf("drafted case %q failed validation: %s",
		e.CaseID, strings.Join(e.Defects, "; "))
}

// LLMDrafter implements Drafter using the LLM provider.
type LLMDrafter struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMDrafter with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMDrafter {
	return &LLMDrafter{provider: provider, config: cfg}
}

// Draft produces a single case record for the given input context. The
// response is schema-checked by the provider and then run through record
// validation, so a returned case is always playable. A draft that fails
// validation is retried with the accumulated error list fed back to the
// model, up to Config.MaxAttempts.
func (d *LLMDrafter) Draft(ctx context.Context, input DraftInput) (*caserecord.CaseRecord, error) {
	ctx = llm.WithPurpose(ctx, "case-draft")

	attempts := d.config.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	messages := []llm.Message{
		{Role: llm.RoleUser, Content: buildUserMessage(input, d.config)},
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		req := llm.Request{
			System:      systemPrompt,
			Messages:    messages,
			Schema:      CaseSchema,
			MaxTokens:   d.config.MaxTokens,
			Temperature: d.config.Temperature,
		}

		resp, err := d.provider.Generate(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("LLM drafting failed: %w", err)
		}

		var record caserecord.CaseRecord
		if err := json.Unmarshal(resp.Content, &record); err != nil {
			return nil, fmt.Errorf("failed to parse LLM response: %w", err)
		}

		res := caserecord.Validate(&record)
		if res.OK {
			return &record, nil
		}
		lastErr = &DraftError{CaseID: record.ID, Defects: res.Errors}

		// Carry the rejected draft and the full defect list into the
		// next attempt.
		messages = append(messages,
			llm.Message{Role: llm.RoleAssistant, Content: string(resp.Content)},
			llm.Message{Role: llm.RoleUser, Content: buildRetryMessage(res.Errors)},
		)
	}

	return nil, lastErr
}
