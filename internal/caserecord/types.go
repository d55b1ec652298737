package caserecord

// CaseRecord is one patient vignette plus its multiple-choice question,
// the atomic unit of game content. A record is immutable once it has
// passed Validate; nothing downstream mutates it.
type CaseRecord struct {
	// ID is unique within its source file. Global uniqueness is not enforced.
	ID string `json:"id"`

	// Specialty is the clinical specialty the case belongs to.
	Specialty Specialty `json:"specialty"`

	// Difficulty is 1 (straightforward) to 5 (hard).
	Difficulty int `json:"difficulty"`

	Vignette Vignette `json:"vignette"`

	// Question is the lead-in, e.g. "Which of the following is the most
	// likely diagnosis?"
	Question string `json:"question"`

	// Choices holds 4 or 5 options, exactly one of which is correct.
	Choices []Choice `json:"choices"`

	Explanation Explanation `json:"explanation"`
	Metadata    Metadata    `json:"metadata"`
}

// Vignette is the clinical presentation shown before the question.
type Vignette struct {
	// Demographics opens the vignette NBME-style and must start with
	// "A " or "An ", e.g. "A 54-year-old man".
	Demographics string `json:"demographics"`

	// Presentation is the history of present illness.
	Presentation string `json:"presentation"`

	// Vitals maps vital-sign labels to display strings. BP, HR, RR and
	// Temp are required; anything else (SpO2, etc.) is allowed.
	Vitals map[string]string `json:"vitals"`

	// Labs is optional free-text laboratory findings.
	Labs string `json:"labs,omitempty"`
}

// ChoiceID identifies an answer option. Closed set A through E.
type ChoiceID string

const (
	ChoiceA ChoiceID = "A"
	ChoiceB ChoiceID = "B"
	ChoiceC ChoiceID = "C"
	ChoiceD ChoiceID = "D"
	ChoiceE ChoiceID = "E"
)

// ChoiceIDs lists the valid choice identifiers in display order.
var ChoiceIDs = []ChoiceID{ChoiceA, ChoiceB, ChoiceC, ChoiceD, ChoiceE}

// Choice is one answer option within a case.
type Choice struct {
	ID      ChoiceID `json:"id"`
	Text    string   `json:"text"`
	Correct bool     `json:"correct"`
}

// Explanation is the teaching content shown after the player answers.
type Explanation struct {
	// Correct explains why the correct choice is right.
	Correct string `json:"correct"`

	// Concepts summarizes the high-yield concepts the case tests.
	Concepts string `json:"concepts"`

	// Distractors optionally explains why individual wrong choices are wrong.
	Distractors map[ChoiceID]string `json:"distractors,omitempty"`
}

// Metadata carries exam-relevance tags used for display and filtering.
type Metadata struct {
	HighYield       bool            `json:"high_yield"`
	TestedFrequency TestedFrequency `json:"tested_frequency"`
}

// Specialty is the clinical specialty of a case. Closed enumeration;
// unknown values fail validation.
type Specialty string

const (
	SpecialtyInternalMedicine  Specialty = "internal_medicine"
	SpecialtySurgery           Specialty = "surgery"
	SpecialtyPediatrics        Specialty = "pediatrics"
	SpecialtyObGyn             Specialty = "obgyn"
	SpecialtyPsychiatry        Specialty = "psychiatry"
	SpecialtyEmergencyMedicine Specialty = "emergency_medicine"
	SpecialtyRadiology         Specialty = "radiology"
	SpecialtyPathology         Specialty = "pathology"
)

// Specialties lists all valid specialties.
var Specialties = []Specialty{
	SpecialtyInternalMedicine,
	SpecialtySurgery,
	SpecialtyPediatrics,
	SpecialtyObGyn,
	SpecialtyPsychiatry,
	SpecialtyEmergencyMedicine,
	SpecialtyRadiology,
	SpecialtyPathology,
}

// TestedFrequency tags how often the case's concept appears on exams.
type TestedFrequency string

const (
	FrequencyVeryHigh TestedFrequency = "very_high"
	FrequencyHigh     TestedFrequency = "high"
	FrequencyMedium   TestedFrequency = "medium"
	FrequencyLow      TestedFrequency = "low"
)

// CorrectChoice returns the single correct choice. The second return is
// false when the record has zero or multiple correct choices, which a
// validated record never does.
func (c *CaseRecord) CorrectChoice() (Choice, bool) {
	var found Choice
	count := 0
	for _, ch := range c.Choices {
		if ch.Correct {
			found = ch
			count++
		}
	}
	return found, count == 1
}
