package casepool

import "github.com/blackstar-game/blackstar/internal/caserecord"

// SampleCases returns the built-in fallback cases, in a fixed order. They
// are the only sanctioned way the game tolerates a missing or corrupt case
// source, so each must pass validation — the provider tests enforce that.
func SampleCases() []caserecord.CaseRecord {
	return []caserecord.CaseRecord{
		{
			ID:         "sample-em-001",
			Specialty:  caserecord.SpecialtyEmergencyMedicine,
			Difficulty: 2,
			Vignette: caserecord.Vignette{
				Demographics: "A 62-year-old woman",
				Presentation: "is brought to the emergency department with sudden-onset right-sided weakness and slurred speech that began 70 minutes ago. She takes lisinopril for hypertension.",
				Vitals: map[string]string{
					"BP":   "182/98 mmHg",
					"HR":   "88/min",
					"RR":   "16/min",
					"Temp": "36.9 C",
				},
				Labs: "Glucose 104 mg/dL; platelets 240,000/mm3; INR 1.0",
			},
			Question: "Which of the following is the most appropriate next step in management?",
			Choices: []caserecord.Choice{
				{ID: caserecord.ChoiceA, Text: "Noncontrast CT of the head", Correct: true},
				{ID: caserecord.ChoiceB, Text: "Intravenous alteplase now", Correct: false},
				{ID: caserecord.ChoiceC, Text: "MRI of the brain with contrast", Correct: false},
				{ID: caserecord.ChoiceD, Text: "Aspirin and admission for observation", Correct: false},
			},
			Explanation: caserecord.Explanation{
				Correct:  "Suspected acute stroke requires noncontrast head CT before any thrombolytic to exclude hemorrhage, even within the alteplase window.",
				Concepts: "Acute ischemic stroke workup: imaging precedes thrombolysis.",
				Distractors: map[caserecord.ChoiceID]string{
					caserecord.ChoiceB: "Alteplase before imaging risks catastrophic worsening of an intracranial hemorrhage.",
				},
			},
			Metadata: caserecord.Metadata{HighYield: true, TestedFrequency: caserecord.FrequencyVeryHigh},
		},
		{
			ID:         "sample-im-001",
			Specialty:  caserecord.SpecialtyInternalMedicine,
			Difficulty: 3,
			Vignette: caserecord.Vignette{
				Demographics: "A 48-year-old man",
				Presentation: "comes to the clinic for a routine visit. He has a 20-pack-year smoking history and reports a productive cough most mornings for the past 2 years. He denies fever or weight loss.",
				Vitals: map[string]string{
					"BP":   "134/82 mmHg",
					"HR":   "76/min",
					"RR":   "14/min",
					"Temp": "36.8 C",
				},
			},
			Question: "Which of the following is the most likely diagnosis?",
			Choices: []caserecord.Choice{
				{ID: caserecord.ChoiceA, Text: "Asthma", Correct: false},
				{ID: caserecord.ChoiceB, Text: "Chronic bronchitis", Correct: true},
				{ID: caserecord.ChoiceC, Text: "Bronchiectasis", Correct: false},
				{ID: caserecord.ChoiceD, Text: "Pulmonary tuberculosis", Correct: false},
				{ID: caserecord.ChoiceE, Text: "Gastroesophageal reflux disease", Correct: false},
			},
			Explanation: caserecord.Explanation{
				Correct:  "Productive cough on most days for at least 3 months in 2 consecutive years in a smoker defines chronic bronchitis clinically.",
				Concepts: "COPD phenotypes and the clinical definition of chronic bronchitis.",
			},
			Metadata: caserecord.Metadata{HighYield: true, TestedFrequency: caserecord.FrequencyHigh},
		},
		{
			ID:         "sample-peds-001",
			Specialty:  caserecord.SpecialtyPediatrics,
			Difficulty: 2,
			Vignette: caserecord.Vignette{
				Demographics: "An 18-month-old boy",
				Presentation: "is brought in with a barking cough, hoarseness, and inspiratory stridor that worsens when he cries. Symptoms started after two days of rhinorrhea and low-grade fever.",
				Vitals: map[string]string{
					"BP":   "96/58 mmHg",
					"HR":   "132/min",
					"RR":   "32/min",
					"Temp": "38.2 C",
				},
			},
			Question: "Which of the following is the most appropriate initial treatment?",
			Choices: []caserecord.Choice{
				{ID: caserecord.ChoiceA, Text: "Intramuscular ceftriaxone", Correct: false},
				{ID: caserecord.ChoiceB, Text: "Nebulized albuterol", Correct: false},
				{ID: caserecord.ChoiceC, Text: "Single dose of oral dexamethasone", Correct: true},
				{ID: caserecord.ChoiceD, Text: "Immediate endotracheal intubation", Correct: false},
			},
			Explanation: caserecord.Explanation{
				Correct:  "Barking cough with stridor after a viral prodrome is croup; corticosteroids reduce airway edema and are first-line even in mild disease.",
				Concepts: "Croup recognition and steroid-first management.",
				Distractors: map[caserecord.ChoiceID]string{
					caserecord.ChoiceD: "Intubation is reserved for impending respiratory failure, not moderate croup.",
				},
			},
			Metadata: caserecord.Metadata{HighYield: false, TestedFrequency: caserecord.FrequencyMedium},
		},
	}
}
