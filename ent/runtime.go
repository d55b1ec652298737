// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/blackstar-game/blackstar/ent/answerevent"
	"github.com/blackstar-game/blackstar/ent/llmrequestevent"
	"github.com/blackstar-game/blackstar/ent/schema"
	"github.com/blackstar-game/blackstar/ent/shiftevent"
	"github.com/blackstar-game/blackstar/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescShiftID is the schema descriptor for shift_id field.
	answereventDescShiftID := answereventFields[0].Descriptor()
	// answerevent.ShiftIDValidator is a validator for the "shift_id" field. It is called by the builders before save.
	answerevent.ShiftIDValidator = answereventDescShiftID.Validators[0].(func(string) error)
	// answereventDescCaseID is the schema descriptor for case_id field.
	answereventDescCaseID := answereventFields[1].Descriptor()
	// answerevent.CaseIDValidator is a validator for the "case_id" field. It is called by the builders before save.
	answerevent.CaseIDValidator = answereventDescCaseID.Validators[0].(func(string) error)
	// answereventDescSpecialty is the schema descriptor for specialty field.
	answereventDescSpecialty := answereventFields[2].Descriptor()
	// answerevent.SpecialtyValidator is a validator for the "specialty" field. It is called by the builders before save.
	answerevent.SpecialtyValidator = answereventDescSpecialty.Validators[0].(func(string) error)
	// answereventDescQuestion is the schema descriptor for question field.
	answereventDescQuestion := answereventFields[4].Descriptor()
	// answerevent.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	answerevent.QuestionValidator = answereventDescQuestion.Validators[0].(func(string) error)
	// answereventDescChosenChoice is the schema descriptor for chosen_choice field.
	answereventDescChosenChoice := answereventFields[5].Descriptor()
	// answerevent.ChosenChoiceValidator is a validator for the "chosen_choice" field. It is called by the builders before save.
	answerevent.ChosenChoiceValidator = answereventDescChosenChoice.Validators[0].(func(string) error)
	// answereventDescCorrectChoice is the schema descriptor for correct_choice field.
	answereventDescCorrectChoice := answereventFields[6].Descriptor()
	// answerevent.CorrectChoiceValidator is a validator for the "correct_choice" field. It is called by the builders before save.
	answerevent.CorrectChoiceValidator = answereventDescCorrectChoice.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	shifteventMixin := schema.ShiftEvent{}.Mixin()
	shifteventMixinFields0 := shifteventMixin[0].Fields()
	_ = shifteventMixinFields0
	shifteventFields := schema.ShiftEvent{}.Fields()
	_ = shifteventFields
	// shifteventDescTimestamp is the schema descriptor for timestamp field.
	shifteventDescTimestamp := shifteventMixinFields0[1].Descriptor()
	// shiftevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	shiftevent.DefaultTimestamp = shifteventDescTimestamp.Default.(func() time.Time)
	// shifteventDescShiftID is the schema descriptor for shift_id field.
	shifteventDescShiftID := shifteventFields[0].Descriptor()
	// shiftevent.ShiftIDValidator is a validator for the "shift_id" field. It is called by the builders before save.
	shiftevent.ShiftIDValidator = shifteventDescShiftID.Validators[0].(func(string) error)
	// shifteventDescAction is the schema descriptor for action field.
	shifteventDescAction := shifteventFields[1].Descriptor()
	// shiftevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	shiftevent.ActionValidator = shifteventDescAction.Validators[0].(func(string) error)
	// shifteventDescCaseCount is the schema descriptor for case_count field.
	shifteventDescCaseCount := shifteventFields[2].Descriptor()
	// shiftevent.DefaultCaseCount holds the default value on creation for the case_count field.
	shiftevent.DefaultCaseCount = shifteventDescCaseCount.Default.(int)
	// shifteventDescPatientsTreated is the schema descriptor for patients_treated field.
	shifteventDescPatientsTreated := shifteventFields[3].Descriptor()
	// shiftevent.DefaultPatientsTreated holds the default value on creation for the patients_treated field.
	shiftevent.DefaultPatientsTreated = shifteventDescPatientsTreated.Default.(int)
	// shifteventDescCorrectDiagnoses is the schema descriptor for correct_diagnoses field.
	shifteventDescCorrectDiagnoses := shifteventFields[4].Descriptor()
	// shiftevent.DefaultCorrectDiagnoses holds the default value on creation for the correct_diagnoses field.
	shiftevent.DefaultCorrectDiagnoses = shifteventDescCorrectDiagnoses.Default.(int)
	// shifteventDescDurationSecs is the schema descriptor for duration_secs field.
	shifteventDescDurationSecs := shifteventFields[5].Descriptor()
	// shiftevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	shiftevent.DefaultDurationSecs = shifteventDescDurationSecs.Default.(int)
	// shifteventDescRemainingSecs is the schema descriptor for remaining_secs field.
	shifteventDescRemainingSecs := shifteventFields[6].Descriptor()
	// shiftevent.DefaultRemainingSecs holds the default value on creation for the remaining_secs field.
	shiftevent.DefaultRemainingSecs = shifteventDescRemainingSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
