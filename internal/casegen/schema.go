package casegen

import "github.com/blackstar-game/blackstar/internal/llm"

// CaseSchema defines the JSON schema for LLM case drafting responses. It
// mirrors the on-disk case record shape, so a conforming response can be
// unmarshaled directly.
var CaseSchema = &llm.Schema{
	Name:        "case-record",
	Description: "A single board-style clinical vignette with one best answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":        "string",
				"description": "Kebab-case unique identifier, e.g. em-chest-pain-014",
			},
			"specialty": map[string]any{
				"type": "string",
				"enum": []any{
					"internal_medicine", "surgery", "pediatrics", "obgyn",
					"psychiatry", "emergency_medicine", "radiology", "pathology",
				},
				"description": "The specialty this case belongs to",
			},
			"difficulty": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "Difficulty from 1 (easy) to 5 (hard)",
			},
			"vignette": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"demographics": map[string]any{
						"type":        "string",
						"description": "Patient descriptor starting with 'A ' or 'An ', e.g. 'A 54-year-old woman'",
					},
					"presentation": map[string]any{
						"type":        "string",
						"description": "Chief complaint, history, and exam findings",
					},
					"vitals": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"BP":   map[string]any{"type": "string"},
							"HR":   map[string]any{"type": "string"},
							"RR":   map[string]any{"type": "string"},
							"Temp": map[string]any{"type": "string"},
						},
						"required":    []any{"BP", "HR", "RR", "Temp"},
						"description": "Vital signs with units",
					},
					"labs": map[string]any{
						"type":        "string",
						"description": "Relevant lab or imaging results. Empty string when none.",
					},
				},
				"required": []any{"demographics", "presentation", "vitals"},
			},
			"question": map[string]any{
				"type":        "string",
				"description": "The lead-in, e.g. 'Which of the following is the most likely diagnosis?'",
			},
			"choices": map[string]any{
				"type":     "array",
				"minItems": 4,
				"maxItems": 5,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type": "string",
							"enum": []any{"A", "B", "C", "D", "E"},
						},
						"text": map[string]any{
							"type":      "string",
							"minLength": 3,
						},
						"correct": map[string]any{"type": "boolean"},
					},
					"required": []any{"id", "text", "correct"},
				},
				"description": "4 or 5 answer options, exactly one with correct=true",
			},
			"explanation": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"correct": map[string]any{
						"type":        "string",
						"minLength":   20,
						"description": "Why the correct answer is right",
					},
					"concepts": map[string]any{
						"type":        "string",
						"minLength":   10,
						"description": "The tested concept, stated plainly",
					},
					"distractors": map[string]any{
						"type":                 "object",
						"additionalProperties": map[string]any{"type": "string"},
						"description":          "Optional per-choice notes on why each distractor is wrong",
					},
				},
				"required": []any{"correct", "concepts"},
			},
			"metadata": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"high_yield": map[string]any{"type": "boolean"},
					"tested_frequency": map[string]any{
						"type": "string",
						"enum": []any{"very_high", "high", "medium", "low"},
					},
				},
				"required": []any{"high_yield", "tested_frequency"},
			},
		},
		"required": []any{
			"id", "specialty", "difficulty", "vignette",
			"question", "choices", "explanation", "metadata",
		},
		"additionalProperties": false,
	},
}
