package casegen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/blackstar-game/blackstar/internal/caserecord"
	"github.com/blackstar-game/blackstar/internal/llm"
)

const draftedCaseJSON = `{
	"id": "im-dyspnea-007",
	"specialty": "internal_medicine",
	"difficulty": 3,
	"vignette": {
		"demographics": "A 67-year-old man",
		"presentation": "presents with progressive exertional dyspnea and orthopnea over 3 weeks. He has bilateral lower extremity edema and jugular venous distension.",
		"vitals": {"BP": "148/92 mmHg", "HR": "104/min", "RR": "22/min", "Temp": "36.9 C"},
		"labs": "BNP 1450 pg/mL; creatinine 1.3 mg/dL"
	},
	"question": "Which of the following is the most likely diagnosis?",
	"choices": [
		{"id": "A", "text": "Decompensated heart failure", "correct": true},
		{"id": "B", "text": "Pulmonary embolism", "correct": false},
		{"id": "C", "text": "Community-acquired pneumonia", "correct": false},
		{"id": "D", "text": "Nephrotic syndrome", "correct": false}
	],
	"explanation": {
		"correct": "Orthopnea, edema, JVD, and a markedly elevated BNP point to decompensated heart failure.",
		"concepts": "Recognizing the clinical syndrome of heart failure."
	},
	"metadata": {"high_yield": true, "tested_frequency": "very_high"}
}`

func TestDraft_ReturnsValidatedCase(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(draftedCaseJSON),
	})
	drafter := New(provider, DefaultConfig())

	record, err := drafter.Draft(context.Background(), DraftInput{
		Specialty:  caserecord.SpecialtyInternalMedicine,
		Difficulty: 3,
	})
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}

	if record.ID != "im-dyspnea-007" {
		t.Errorf("id = %s", record.ID)
	}
	if record.Specialty != caserecord.SpecialtyInternalMedicine {
		t.Errorf("specialty = %s", record.Specialty)
	}
	if ch, ok := record.CorrectChoice(); !ok || ch.ID != caserecord.ChoiceA {
		t.Errorf("correct choice = %v, %v", ch, ok)
	}
}

func TestDraft_RejectsInvalidRecordAfterRetries(t *testing.T) {
	// Two choices marked correct: schema-conformant but not a valid record.
	bad := strings.Replace(draftedCaseJSON,
		`{"id": "B", "text": "Pulmonary embolism", "correct": false}`,
		`{"id": "B", "text": "Pulmonary embolism", "correct": true}`, 1)

	provider := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(bad)},
		llm.MockResponse{Content: json.RawMessage(bad)},
		llm.MockResponse{Content: json.RawMessage(bad)},
	)
	drafter := New(provider, DefaultConfig())

	_, err := drafter.Draft(context.Background(), DraftInput{
		Specialty:  caserecord.SpecialtyInternalMedicine,
		Difficulty: 3,
	})

	var derr *DraftError
	if !errors.As(err, &derr) {
		t.Fatalf("Draft = %v, want DraftError", err)
	}
	if derr.CaseID != "im-dyspnea-007" {
		t.Errorf("case ID = %s", derr.CaseID)
	}
	found := false
	for _, d := range derr.Defects {
		if strings.Contains(d, "got 2") {
			found = true
		}
	}
	if !found {
		t.Errorf("defects %v should report the correct-choice count", derr.Defects)
	}
	if provider.CallCount() != 3 {
		t.Errorf("got %d attempts, want 3", provider.CallCount())
	}
}

func TestDraft_RetryCarriesDefectFeedback(t *testing.T) {
	bad := strings.Replace(draftedCaseJSON,
		`{"id": "B", "text": "Pulmonary embolism", "correct": false}`,
		`{"id": "B", "text": "Pulmonary embolism", "correct": true}`, 1)

	provider := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(bad)},
		llm.MockResponse{Content: json.RawMessage(draftedCaseJSON)},
	)
	drafter := New(provider, DefaultConfig())

	record, err := drafter.Draft(context.Background(), DraftInput{
		Specialty:  caserecord.SpecialtyInternalMedicine,
		Difficulty: 3,
	})
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if record.ID != "im-dyspnea-007" {
		t.Errorf("id = %s", record.ID)
	}

	if provider.CallCount() != 2 {
		t.Fatalf("got %d attempts, want 2", provider.CallCount())
	}
	retry := provider.Calls[1]
	if len(retry.Messages) != 3 {
		t.Fatalf("retry carried %d messages, want 3", len(retry.Messages))
	}
	if retry.Messages[1].Role != llm.RoleAssistant {
		t.Errorf("rejected draft should be echoed as the assistant turn")
	}
	if !strings.Contains(retry.Messages[2].Content, "failed validation") {
		t.Errorf("retry prompt missing defect feedback:\n%s", retry.Messages[2].Content)
	}
}

func TestDraft_ProviderErrorPropagates(t *testing.T) {
	provider := llm.NewMockProvider() // empty queue returns unavailable
	drafter := New(provider, DefaultConfig())

	_, err := drafter.Draft(context.Background(), DraftInput{
		Specialty:  caserecord.SpecialtySurgery,
		Difficulty: 2,
	})

	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("Draft = %v, want ErrProviderUnavailable", err)
	}
}

func TestDraft_PromptCarriesContext(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(draftedCaseJSON),
	})
	drafter := New(provider, DefaultConfig())

	_, err := drafter.Draft(context.Background(), DraftInput{
		Specialty:         caserecord.SpecialtyPediatrics,
		Difficulty:        4,
		PriorQuestions:    []string{"Which of the following is the most appropriate initial treatment?"},
		SpecialtyAccuracy: 0.62,
	})
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}

	if len(provider.Calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(provider.Calls))
	}
	req := provider.Calls[0]

	if req.Schema != CaseSchema {
		t.Error("request should carry the case schema")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{
		"Specialty: pediatrics",
		"Difficulty: 4",
		"accuracy in this specialty so far: 62%",
		"most appropriate initial treatment",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildDedup_LimitsAndFormats(t *testing.T) {
	if got := buildDedup(nil, 8); got != "None" {
		t.Errorf("empty dedup = %q, want None", got)
	}

	qs := []string{"q1", "q2", "q3"}
	got := buildDedup(qs, 2)
	if strings.Contains(got, "q3") {
		t.Errorf("dedup should keep only the first 2 entries: %q", got)
	}
	if !strings.HasPrefix(got, "1. q1") {
		t.Errorf("dedup formatting: %q", got)
	}
}
