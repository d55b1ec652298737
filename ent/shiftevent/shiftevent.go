// Code generated by ent, DO NOT EDIT.

package shiftevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the shiftevent type in the database.
	Label = "shift_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldShiftID holds the string denoting the shift_id field in the database.
	FieldShiftID = "shift_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldCaseCount holds the string denoting the case_count field in the database.
	FieldCaseCount = "case_count"
	// FieldPatientsTreated holds the string denoting the patients_treated field in the database.
	FieldPatientsTreated = "patients_treated"
	// FieldCorrectDiagnoses holds the string denoting the correct_diagnoses field in the database.
	FieldCorrectDiagnoses = "correct_diagnoses"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// FieldRemainingSecs holds the string denoting the remaining_secs field in the database.
	FieldRemainingSecs = "remaining_secs"
	// Table holds the table name of the shiftevent in the database.
	Table = "shift_events"
)

// Columns holds all SQL columns for shiftevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldShiftID,
	FieldAction,
	FieldCaseCount,
	FieldPatientsTreated,
	FieldCorrectDiagnoses,
	FieldDurationSecs,
	FieldRemainingSecs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// ShiftIDValidator is a validator for the "shift_id" field. It is called by the builders before save.
	ShiftIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultCaseCount holds the default value on creation for the "case_count" field.
	DefaultCaseCount int
	// DefaultPatientsTreated holds the default value on creation for the "patients_treated" field.
	DefaultPatientsTreated int
	// DefaultCorrectDiagnoses holds the default value on creation for the "correct_diagnoses" field.
	DefaultCorrectDiagnoses int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
	// DefaultRemainingSecs holds the default value on creation for the "remaining_secs" field.
	DefaultRemainingSecs int
)

// OrderOption defines the ordering options for the ShiftEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByShiftID orders the results by the shift_id field.
func ByShiftID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShiftID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByCaseCount orders the results by the case_count field.
func ByCaseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseCount, opts...).ToFunc()
}

// ByPatientsTreated orders the results by the patients_treated field.
func ByPatientsTreated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientsTreated, opts...).ToFunc()
}

// ByCorrectDiagnoses orders the results by the correct_diagnoses field.
func ByCorrectDiagnoses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectDiagnoses, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}

// ByRemainingSecs orders the results by the remaining_secs field.
func ByRemainingSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemainingSecs, opts...).ToFunc()
}
