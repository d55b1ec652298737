package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// caseSchemaSlice mirrors the top of the case-record schema: enough structure
// to exercise required fields, ranges, enums and type checks.
func caseSchemaSlice() *Schema {
	return &Schema{
		Name:        "case-record",
		Description: "A board-style patient case",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question":   map[string]any{"type": "string"},
				"difficulty": map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
				"specialty": map[string]any{
					"type": "string",
					"enum": []any{"internal_medicine", "surgery", "pediatrics"},
				},
			},
			"required": []any{"question", "difficulty"},
		},
	}
}

func TestValidateResponse_ValidCase(t *testing.T) {
	raw := json.RawMessage(`{"question":"Which of the following is the most likely diagnosis?","difficulty":3,"specialty":"surgery"}`)
	if err := validateResponse(caseSchemaSlice(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"question":"Which of the following is the best next step?","difficulty":2}`)
	if err := validateResponse(caseSchemaSlice(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing required", `{"question":"Which of the following?"}`},
		{"wrong type", `{"question":"Which of the following?","difficulty":"hard"}`},
		{"out of range", `{"question":"Which of the following?","difficulty":9}`},
		{"unknown specialty", `{"question":"Which of the following?","difficulty":3,"specialty":"astrology"}`},
		{"malformed JSON", `{not json}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(caseSchemaSlice(), json.RawMessage(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got: %T", err)
			}
		})
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	if err := validateResponse(caseSchemaSlice(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "case-vignette",
		Description: "Vignette with choices",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"vignette": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"demographics": map[string]any{"type": "string"},
					},
					"required": []any{"demographics"},
				},
				"choices": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"id":   map[string]any{"type": "string"},
							"text": map[string]any{"type": "string"},
						},
						"required": []any{"id", "text"},
					},
				},
			},
			"required": []any{"vignette", "choices"},
		},
	}

	valid := json.RawMessage(`{"vignette":{"demographics":"A 54-year-old woman"},"choices":[{"id":"A","text":"Pulmonary embolism"},{"id":"B","text":"Pneumothorax"}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"vignette":{"demographics":"A 54-year-old woman"},"choices":["not","objects"]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
