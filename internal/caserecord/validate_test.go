package caserecord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validCase returns a record that passes every check.
func validCase() *CaseRecord {
	return &CaseRecord{
		ID:         "im-chest-pain-001",
		Specialty:  SpecialtyInternalMedicine,
		Difficulty: 3,
		Vignette: Vignette{
			Demographics: "A 54-year-old man",
			Presentation: "presents with crushing substernal chest pain radiating to the left arm for 45 minutes.",
			Vitals: map[string]string{
				"BP":   "158/94 mmHg",
				"HR":   "104/min",
				"RR":   "22/min",
				"Temp": "37.1 C",
			},
			Labs: "Troponin I 2.4 ng/mL (elevated)",
		},
		Question: "Which of the following is the most appropriate next step in management?",
		Choices: []Choice{
			{ID: ChoiceA, Text: "Aspirin and urgent cardiac catheterization", Correct: true},
			{ID: ChoiceB, Text: "Outpatient stress testing", Correct: false},
			{ID: ChoiceC, Text: "Empiric proton pump inhibitor trial", Correct: false},
			{ID: ChoiceD, Text: "CT pulmonary angiography", Correct: false},
		},
		Explanation: Explanation{
			Correct:  "Elevated troponin with ischemic chest pain indicates NSTEMI; antiplatelet therapy and early invasive management are indicated.",
			Concepts: "Acute coronary syndrome recognition and initial management.",
		},
		Metadata: Metadata{HighYield: true, TestedFrequency: FrequencyVeryHigh},
	}
}

func TestValidate_SoundRecord(t *testing.T) {
	res := Validate(validCase())
	require.True(t, res.OK, "expected valid record, got errors: %v", res.Errors)
	assert.Empty(t, res.Errors)
}

func TestValidate_FiveChoices(t *testing.T) {
	c := validCase()
	c.Choices = append(c.Choices, Choice{ID: ChoiceE, Text: "Observation only", Correct: false})

	res := Validate(c)
	assert.True(t, res.OK, "five choices should be allowed: %v", res.Errors)
}

func TestValidate_NoCorrectChoice(t *testing.T) {
	c := validCase()
	c.Choices[0].Correct = false

	res := Validate(c)
	require.False(t, res.OK)
	assert.Contains(t, strings.Join(res.Errors, "\n"), "got 0")
}

func TestValidate_TwoCorrectChoices(t *testing.T) {
	c := validCase()
	c.Choices[1].Correct = true

	res := Validate(c)
	require.False(t, res.OK)
	assert.Contains(t, strings.Join(res.Errors, "\n"), "got 2")
}

func TestValidate_AccumulatesAllDefects(t *testing.T) {
	c := validCase()
	c.ID = ""
	c.Difficulty = 9
	c.Specialty = "dermatology"
	c.Vignette.Demographics = "54-year-old man"
	delete(c.Vignette.Vitals, "Temp")
	c.Choices[0].Correct = false

	res := Validate(c)
	require.False(t, res.OK)
	// One error per defect — a single call reports everything.
	assert.Len(t, res.Errors, 6)
}

func TestValidate_DuplicateChoiceIDs(t *testing.T) {
	c := validCase()
	c.Choices[1].ID = ChoiceA

	res := Validate(c)
	require.False(t, res.OK)
	assert.Contains(t, strings.Join(res.Errors, "\n"), "duplicated")
}

func TestValidate_ChoiceIDOutsideEnum(t *testing.T) {
	c := validCase()
	c.Choices[2].ID = "F"

	res := Validate(c)
	assert.False(t, res.OK)
}

func TestValidate_ShortChoiceText(t *testing.T) {
	c := validCase()
	c.Choices[3].Text = "CT"

	res := Validate(c)
	require.False(t, res.OK)
	assert.Contains(t, strings.Join(res.Errors, "\n"), "at least 3 characters")
}

func TestValidate_DemographicsPrefix(t *testing.T) {
	tests := []struct {
		demographics string
		ok           bool
	}{
		{"A 54-year-old man", true},
		{"An 81-year-old woman", true},
		{"54-year-old man", false},
		{"The patient", false},
	}

	for _, tt := range tests {
		c := validCase()
		c.Vignette.Demographics = tt.demographics
		res := Validate(c)
		assert.Equal(t, tt.ok, res.OK, "demographics %q", tt.demographics)
	}
}

func TestValidate_ExplanationLengths(t *testing.T) {
	c := validCase()
	c.Explanation.Correct = "Too short."
	c.Explanation.Concepts = "ACS."

	res := Validate(c)
	require.False(t, res.OK)
	assert.Len(t, res.Errors, 2)
}

func TestValidate_TestedFrequencyEnum(t *testing.T) {
	c := validCase()
	c.Metadata.TestedFrequency = "sometimes"

	res := Validate(c)
	require.False(t, res.OK)
	assert.Contains(t, strings.Join(res.Errors, "\n"), "tested_frequency")
}

func TestCorrectChoice(t *testing.T) {
	c := validCase()

	ch, ok := c.CorrectChoice()
	require.True(t, ok)
	assert.Equal(t, ChoiceA, ch.ID)

	c.Choices[0].Correct = false
	_, ok = c.CorrectChoice()
	assert.False(t, ok)

	c.Choices[0].Correct = true
	c.Choices[1].Correct = true
	_, ok = c.CorrectChoice()
	assert.False(t, ok)
}
