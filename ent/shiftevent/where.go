// Code generated by ent, DO NOT EDIT.

package shiftevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/blackstar-game/blackstar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ShiftID applies equality check predicate on the "shift_id" field. It's identical to ShiftIDEQ.
func ShiftID(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldShiftID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldAction, v))
}

// CaseCount applies equality check predicate on the "case_count" field. It's identical to CaseCountEQ.
func CaseCount(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldCaseCount, v))
}

// PatientsTreated applies equality check predicate on the "patients_treated" field. It's identical to PatientsTreatedEQ.
func PatientsTreated(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldPatientsTreated, v))
}

// CorrectDiagnoses applies equality check predicate on the "correct_diagnoses" field. It's identical to CorrectDiagnosesEQ.
func CorrectDiagnoses(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldCorrectDiagnoses, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// RemainingSecs applies equality check predicate on the "remaining_secs" field. It's identical to RemainingSecsEQ.
func RemainingSecs(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldRemainingSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ShiftIDEQ applies the EQ predicate on the "shift_id" field.
func ShiftIDEQ(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldShiftID, v))
}

// ShiftIDNEQ applies the NEQ predicate on the "shift_id" field.
func ShiftIDNEQ(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNEQ(FieldShiftID, v))
}

// ShiftIDIn applies the In predicate on the "shift_id" field.
func ShiftIDIn(vs ...string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldIn(FieldShiftID, vs...))
}

// ShiftIDNotIn applies the NotIn predicate on the "shift_id" field.
func ShiftIDNotIn(vs ...string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNotIn(FieldShiftID, vs...))
}

// ShiftIDGT applies the GT predicate on the "shift_id" field.
func ShiftIDGT(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGT(FieldShiftID, v))
}

// ShiftIDGTE applies the GTE predicate on the "shift_id" field.
func ShiftIDGTE(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGTE(FieldShiftID, v))
}

// ShiftIDLT applies the LT predicate on the "shift_id" field.
func ShiftIDLT(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLT(FieldShiftID, v))
}

// ShiftIDLTE applies the LTE predicate on the "shift_id" field.
func ShiftIDLTE(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLTE(FieldShiftID, v))
}

// ShiftIDContains applies the Contains predicate on the "shift_id" field.
func ShiftIDContains(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldContains(FieldShiftID, v))
}

// ShiftIDHasPrefix applies the HasPrefix predicate on the "shift_id" field.
func ShiftIDHasPrefix(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldHasPrefix(FieldShiftID, v))
}

// ShiftIDHasSuffix applies the HasSuffix predicate on the "shift_id" field.
func ShiftIDHasSuffix(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldHasSuffix(FieldShiftID, v))
}

// ShiftIDEqualFold applies the EqualFold predicate on the "shift_id" field.
func ShiftIDEqualFold(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEqualFold(FieldShiftID, v))
}

// ShiftIDContainsFold applies the ContainsFold predicate on the "shift_id" field.
func ShiftIDContainsFold(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldContainsFold(FieldShiftID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldContainsFold(FieldAction, v))
}

// CaseCountEQ applies the EQ predicate on the "case_count" field.
func CaseCountEQ(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldCaseCount, v))
}

// CaseCountNEQ applies the NEQ predicate on the "case_count" field.
func CaseCountNEQ(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNEQ(FieldCaseCount, v))
}

// CaseCountIn applies the In predicate on the "case_count" field.
func CaseCountIn(vs ...int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldIn(FieldCaseCount, vs...))
}

// CaseCountNotIn applies the NotIn predicate on the "case_count" field.
func CaseCountNotIn(vs ...int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNotIn(FieldCaseCount, vs...))
}

// CaseCountGT applies the GT predicate on the "case_count" field.
func CaseCountGT(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGT(FieldCaseCount, v))
}

// CaseCountGTE applies the GTE predicate on the "case_count" field.
func CaseCountGTE(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGTE(FieldCaseCount, v))
}

// CaseCountLT applies the LT predicate on the "case_count" field.
func CaseCountLT(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLT(FieldCaseCount, v))
}

// CaseCountLTE applies the LTE predicate on the "case_count" field.
func CaseCountLTE(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLTE(FieldCaseCount, v))
}

// PatientsTreatedEQ applies the EQ predicate on the "patients_treated" field.
func PatientsTreatedEQ(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldPatientsTreated, v))
}

// PatientsTreatedNEQ applies the NEQ predicate on the "patients_treated" field.
func PatientsTreatedNEQ(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNEQ(FieldPatientsTreated, v))
}

// PatientsTreatedIn applies the In predicate on the "patients_treated" field.
func PatientsTreatedIn(vs ...int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldIn(FieldPatientsTreated, vs...))
}

// PatientsTreatedNotIn applies the NotIn predicate on the "patients_treated" field.
func PatientsTreatedNotIn(vs ...int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNotIn(FieldPatientsTreated, vs...))
}

// PatientsTreatedGT applies the GT predicate on the "patients_treated" field.
func PatientsTreatedGT(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGT(FieldPatientsTreated, v))
}

// PatientsTreatedGTE applies the GTE predicate on the "patients_treated" field.
func PatientsTreatedGTE(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGTE(FieldPatientsTreated, v))
}

// PatientsTreatedLT applies the LT predicate on the "patients_treated" field.
func PatientsTreatedLT(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLT(FieldPatientsTreated, v))
}

// PatientsTreatedLTE applies the LTE predicate on the "patients_treated" field.
func PatientsTreatedLTE(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLTE(FieldPatientsTreated, v))
}

// CorrectDiagnosesEQ applies the EQ predicate on the "correct_diagnoses" field.
func CorrectDiagnosesEQ(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldCorrectDiagnoses, v))
}

// CorrectDiagnosesNEQ applies the NEQ predicate on the "correct_diagnoses" field.
func CorrectDiagnosesNEQ(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNEQ(FieldCorrectDiagnoses, v))
}

// CorrectDiagnosesIn applies the In predicate on the "correct_diagnoses" field.
func CorrectDiagnosesIn(vs ...int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldIn(FieldCorrectDiagnoses, vs...))
}

// CorrectDiagnosesNotIn applies the NotIn predicate on the "correct_diagnoses" field.
func CorrectDiagnosesNotIn(vs ...int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNotIn(FieldCorrectDiagnoses, vs...))
}

// CorrectDiagnosesGT applies the GT predicate on the "correct_diagnoses" field.
func CorrectDiagnosesGT(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGT(FieldCorrectDiagnoses, v))
}

// CorrectDiagnosesGTE applies the GTE predicate on the "correct_diagnoses" field.
func CorrectDiagnosesGTE(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGTE(FieldCorrectDiagnoses, v))
}

// CorrectDiagnosesLT applies the LT predicate on the "correct_diagnoses" field.
func CorrectDiagnosesLT(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLT(FieldCorrectDiagnoses, v))
}

// CorrectDiagnosesLTE applies the LTE predicate on the "correct_diagnoses" field.
func CorrectDiagnosesLTE(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLTE(FieldCorrectDiagnoses, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLTE(FieldDurationSecs, v))
}

// RemainingSecsEQ applies the EQ predicate on the "remaining_secs" field.
func RemainingSecsEQ(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldRemainingSecs, v))
}

// RemainingSecsNEQ applies the NEQ predicate on the "remaining_secs" field.
func RemainingSecsNEQ(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNEQ(FieldRemainingSecs, v))
}

// RemainingSecsIn applies the In predicate on the "remaining_secs" field.
func RemainingSecsIn(vs ...int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldIn(FieldRemainingSecs, vs...))
}

// RemainingSecsNotIn applies the NotIn predicate on the "remaining_secs" field.
func RemainingSecsNotIn(vs ...int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNotIn(FieldRemainingSecs, vs...))
}

// RemainingSecsGT applies the GT predicate on the "remaining_secs" field.
func RemainingSecsGT(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGT(FieldRemainingSecs, v))
}

// RemainingSecsGTE applies the GTE predicate on the "remaining_secs" field.
func RemainingSecsGTE(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGTE(FieldRemainingSecs, v))
}

// RemainingSecsLT applies the LT predicate on the "remaining_secs" field.
func RemainingSecsLT(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLT(FieldRemainingSecs, v))
}

// RemainingSecsLTE applies the LTE predicate on the "remaining_secs" field.
func RemainingSecsLTE(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLTE(FieldRemainingSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ShiftEvent) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ShiftEvent) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ShiftEvent) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.NotPredicates(p))
}
