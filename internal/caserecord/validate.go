package caserecord

import (
	"fmt"
	"strings"
)

// requiredVitals are the vital signs every vignette must report.
var requiredVitals = []string{"BP", "HR", "RR", "Temp"}

const (
	minChoices           = 4
	maxChoices           = 5
	minChoiceTextLen     = 3
	minCorrectExplainLen = 20
	minConceptsLen       = 10
)

// Result reports the outcome of validating a case record.
// Errors holds every defect found, not just the first.
type Result struct {
	OK     bool
	Errors []string
}

func (r Result) String() string {
	if r.OK {
		return "ok"
	}
	return strings.Join(r.Errors, "; ")
}

// Validate checks a decoded case record against the content schema.
// It is pure and deterministic, and accumulates all failures so a single
// call reports every defect in the record. A record may enter the case
// pool only when the result's OK is true.
func Validate(c *CaseRecord) Result {
	var errs []string
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	// Top-level required fields.
	if c.ID == "" {
		fail("id is empty")
	}
	if c.Question == "" {
		fail("question is empty")
	}

	if c.Difficulty < 1 || c.Difficulty > 5 {
		fail("difficulty must be between 1 and 5, got %d", c.Difficulty)
	}

	if !validSpecialty(c.Specialty) {
		fail("specialty %q is not a recognized specialty", c.Specialty)
	}

	validateVignette(&c.Vignette, fail)
	validateChoices(c.Choices, fail)
	validateExplanation(&c.Explanation, fail)

	if !validFrequency(c.Metadata.TestedFrequency) {
		fail("metadata.tested_frequency %q must be one of very_high, high, medium, low", c.Metadata.TestedFrequency)
	}

	return Result{OK: len(errs) == 0, Errors: errs}
}

func validateVignette(v *Vignette, fail func(string, ...any)) {
	if v.Demographics == "" {
		fail("vignette.demographics is empty")
	} else if !strings.HasPrefix(v.Demographics, "A ") && !strings.HasPrefix(v.Demographics, "An ") {
		fail("vignette.demographics must begin with \"A \" or \"An \"")
	}
	if v.Presentation == "" {
		fail("vignette.presentation is empty")
	}
	for _, name := range requiredVitals {
		if v.Vitals[name] == "" {
			fail("vignette.vitals is missing %s", name)
		}
	}
}

func validateChoices(choices []Choice, fail func(string, ...any)) {
	if len(choices) < minChoices || len(choices) > maxChoices {
		fail("choices must have %d or %d entries, got %d", minChoices, maxChoices, len(choices))
	}

	seen := make(map[ChoiceID]bool, len(choices))
	correct := 0
	for i, ch := range choices {
		if !validChoiceID(ch.ID) {
			fail("choices[%d].id %q must be one of A-E", i, ch.ID)
		} else if seen[ch.ID] {
			fail("choices[%d].id %q is duplicated", i, ch.ID)
		}
		seen[ch.ID] = true

		if len(ch.Text) < minChoiceTextLen {
			fail("choices[%d].text must be at least %d characters", i, minChoiceTextLen)
		}
		if ch.Correct {
			correct++
		}
	}

	if correct != 1 {
		fail("exactly one choice must be correct, got %d", correct)
	}
}

func validateExplanation(e *Explanation, fail func(string, ...any)) {
	if len(e.Correct) < minCorrectExplainLen {
		fail("explanation.correct must be at least %d characters, got %d", minCorrectExplainLen, len(e.Correct))
	}
	if len(e.Concepts) < minConceptsLen {
		fail("explanation.concepts must be at least %d characters, got %d", minConceptsLen, len(e.Concepts))
	}
}

func validSpecialty(s Specialty) bool {
	for _, known := range Specialties {
		if s == known {
			return true
		}
	}
	return false
}

func validFrequency(f TestedFrequency) bool {
	switch f {
	case FrequencyVeryHigh, FrequencyHigh, FrequencyMedium, FrequencyLow:
		return true
	}
	return false
}

func validChoiceID(id ChoiceID) bool {
	for _, known := range ChoiceIDs {
		if id == known {
			return true
		}
	}
	return false
}
