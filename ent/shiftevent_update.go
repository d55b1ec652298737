// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/blackstar-game/blackstar/ent/predicate"
	"github.com/blackstar-game/blackstar/ent/shiftevent"
)

// ShiftEventUpdate is the builder for updating ShiftEvent entities.
type ShiftEventUpdate struct {
	config
	hooks    []Hook
	mutation *ShiftEventMutation
}

// Where appends a list predicates to the ShiftEventUpdate builder.
func (_u *ShiftEventUpdate) Where(ps ...predicate.ShiftEvent) *ShiftEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetShiftID sets the "shift_id" field.
func (_u *ShiftEventUpdate) SetShiftID(v string) *ShiftEventUpdate {
	_u.mutation.SetShiftID(v)
	return _u
}

// SetNillableShiftID sets the "shift_id" field if the given value is not nil.
func (_u *ShiftEventUpdate) SetNillableShiftID(v *string) *ShiftEventUpdate {
	if v != nil {
		_u.SetShiftID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ShiftEventUpdate) SetAction(v string) *ShiftEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ShiftEventUpdate) SetNillableAction(v *string) *ShiftEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCaseCount sets the "case_count" field.
func (_u *ShiftEventUpdate) SetCaseCount(v int) *ShiftEventUpdate {
	_u.mutation.ResetCaseCount()
	_u.mutation.SetCaseCount(v)
	return _u
}

// SetNillableCaseCount sets the "case_count" field if the given value is not nil.
func (_u *ShiftEventUpdate) SetNillableCaseCount(v *int) *ShiftEventUpdate {
	if v != nil {
		_u.SetCaseCount(*v)
	}
	return _u
}

// AddCaseCount adds value to the "case_count" field.
func (_u *ShiftEventUpdate) AddCaseCount(v int) *ShiftEventUpdate {
	_u.mutation.AddCaseCount(v)
	return _u
}

// SetPatientsTreated sets the "patients_treated" field.
func (_u *ShiftEventUpdate) SetPatientsTreated(v int) *ShiftEventUpdate {
	_u.mutation.ResetPatientsTreated()
	_u.mutation.SetPatientsTreated(v)
	return _u
}

// SetNillablePatientsTreated sets the "patients_treated" field if the given value is not nil.
func (_u *ShiftEventUpdate) SetNillablePatientsTreated(v *int) *ShiftEventUpdate {
	if v != nil {
		_u.SetPatientsTreated(*v)
	}
	return _u
}

// AddPatientsTreated adds value to the "patients_treated" field.
func (_u *ShiftEventUpdate) AddPatientsTreated(v int) *ShiftEventUpdate {
	_u.mutation.AddPatientsTreated(v)
	return _u
}

// SetCorrectDiagnoses sets the "correct_diagnoses" field.
func (_u *ShiftEventUpdate) SetCorrectDiagnoses(v int) *ShiftEventUpdate {
	_u.mutation.ResetCorrectDiagnoses()
	_u.mutation.SetCorrectDiagnoses(v)
	return _u
}

// SetNillableCorrectDiagnoses sets the "correct_diagnoses" field if the given value is not nil.
func (_u *ShiftEventUpdate) SetNillableCorrectDiagnoses(v *int) *ShiftEventUpdate {
	if v != nil {
		_u.SetCorrectDiagnoses(*v)
	}
	return _u
}

// AddCorrectDiagnoses adds value to the "correct_diagnoses" field.
func (_u *ShiftEventUpdate) AddCorrectDiagnoses(v int) *ShiftEventUpdate {
	_u.mutation.AddCorrectDiagnoses(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ShiftEventUpdate) SetDurationSecs(v int) *ShiftEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ShiftEventUpdate) SetNillableDurationSecs(v *int) *ShiftEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ShiftEventUpdate) AddDurationSecs(v int) *ShiftEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetRemainingSecs sets the "remaining_secs" field.
func (_u *ShiftEventUpdate) SetRemainingSecs(v int) *ShiftEventUpdate {
	_u.mutation.ResetRemainingSecs()
	_u.mutation.SetRemainingSecs(v)
	return _u
}

// SetNillableRemainingSecs sets the "remaining_secs" field if the given value is not nil.
func (_u *ShiftEventUpdate) SetNillableRemainingSecs(v *int) *ShiftEventUpdate {
	if v != nil {
		_u.SetRemainingSecs(*v)
	}
	return _u
}

// AddRemainingSecs adds value to the "remaining_secs" field.
func (_u *ShiftEventUpdate) AddRemainingSecs(v int) *ShiftEventUpdate {
	_u.mutation.AddRemainingSecs(v)
	return _u
}

// Mutation returns the ShiftEventMutation object of the builder.
func (_u *ShiftEventUpdate) Mutation() *ShiftEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ShiftEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ShiftEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ShiftEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ShiftEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ShiftEventUpdate) check() error {
	if v, ok := _u.mutation.ShiftID(); ok {
		if err := shiftevent.ShiftIDValidator(v); err != nil {
			return &ValidationError{Name: "shift_id", err: fmt.Errorf(`ent: validator failed for field "ShiftEvent.shift_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := shiftevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ShiftEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ShiftEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(shiftevent.Table, shiftevent.Columns, sqlgraph.NewFieldSpec(shiftevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ShiftID(); ok {
		_spec.SetField(shiftevent.FieldShiftID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(shiftevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseCount(); ok {
		_spec.SetField(shiftevent.FieldCaseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCaseCount(); ok {
		_spec.AddField(shiftevent.FieldCaseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PatientsTreated(); ok {
		_spec.SetField(shiftevent.FieldPatientsTreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPatientsTreated(); ok {
		_spec.AddField(shiftevent.FieldPatientsTreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectDiagnoses(); ok {
		_spec.SetField(shiftevent.FieldCorrectDiagnoses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectDiagnoses(); ok {
		_spec.AddField(shiftevent.FieldCorrectDiagnoses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(shiftevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(shiftevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RemainingSecs(); ok {
		_spec.SetField(shiftevent.FieldRemainingSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemainingSecs(); ok {
		_spec.AddField(shiftevent.FieldRemainingSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shiftevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ShiftEventUpdateOne is the builder for updating a single ShiftEvent entity.
type ShiftEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ShiftEventMutation
}

// SetShiftID sets the "shift_id" field.
func (_u *ShiftEventUpdateOne) SetShiftID(v string) *ShiftEventUpdateOne {
	_u.mutation.SetShiftID(v)
	return _u
}

// SetNillableShiftID sets the "shift_id" field if the given value is not nil.
func (_u *ShiftEventUpdateOne) SetNillableShiftID(v *string) *ShiftEventUpdateOne {
	if v != nil {
		_u.SetShiftID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ShiftEventUpdateOne) SetAction(v string) *ShiftEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ShiftEventUpdateOne) SetNillableAction(v *string) *ShiftEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCaseCount sets the "case_count" field.
func (_u *ShiftEventUpdateOne) SetCaseCount(v int) *ShiftEventUpdateOne {
	_u.mutation.ResetCaseCount()
	_u.mutation.SetCaseCount(v)
	return _u
}

// SetNillableCaseCount sets the "case_count" field if the given value is not nil.
func (_u *ShiftEventUpdateOne) SetNillableCaseCount(v *int) *ShiftEventUpdateOne {
	if v != nil {
		_u.SetCaseCount(*v)
	}
	return _u
}

// AddCaseCount adds value to the "case_count" field.
func (_u *ShiftEventUpdateOne) AddCaseCount(v int) *ShiftEventUpdateOne {
	_u.mutation.AddCaseCount(v)
	return _u
}

// SetPatientsTreated sets the "patients_treated" field.
func (_u *ShiftEventUpdateOne) SetPatientsTreated(v int) *ShiftEventUpdateOne {
	_u.mutation.ResetPatientsTreated()
	_u.mutation.SetPatientsTreated(v)
	return _u
}

// SetNillablePatientsTreated sets the "patients_treated" field if the given value is not nil.
func (_u *ShiftEventUpdateOne) SetNillablePatientsTreated(v *int) *ShiftEventUpdateOne {
	if v != nil {
		_u.SetPatientsTreated(*v)
	}
	return _u
}

// AddPatientsTreated adds value to the "patients_treated" field.
func (_u *ShiftEventUpdateOne) AddPatientsTreated(v int) *ShiftEventUpdateOne {
	_u.mutation.AddPatientsTreated(v)
	return _u
}

// SetCorrectDiagnoses sets the "correct_diagnoses" field.
func (_u *ShiftEventUpdateOne) SetCorrectDiagnoses(v int) *ShiftEventUpdateOne {
	_u.mutation.ResetCorrectDiagnoses()
	_u.mutation.SetCorrectDiagnoses(v)
	return _u
}

// SetNillableCorrectDiagnoses sets the "correct_diagnoses" field if the given value is not nil.
func (_u *ShiftEventUpdateOne) SetNillableCorrectDiagnoses(v *int) *ShiftEventUpdateOne {
	if v != nil {
		_u.SetCorrectDiagnoses(*v)
	}
	return _u
}

// AddCorrectDiagnoses adds value to the "correct_diagnoses" field.
func (_u *ShiftEventUpdateOne) AddCorrectDiagnoses(v int) *ShiftEventUpdateOne {
	_u.mutation.AddCorrectDiagnoses(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ShiftEventUpdateOne) SetDurationSecs(v int) *ShiftEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ShiftEventUpdateOne) SetNillableDurationSecs(v *int) *ShiftEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ShiftEventUpdateOne) AddDurationSecs(v int) *ShiftEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetRemainingSecs sets the "remaining_secs" field.
func (_u *ShiftEventUpdateOne) SetRemainingSecs(v int) *ShiftEventUpdateOne {
	_u.mutation.ResetRemainingSecs()
	_u.mutation.SetRemainingSecs(v)
	return _u
}

// SetNillableRemainingSecs sets the "remaining_secs" field if the given value is not nil.
func (_u *ShiftEventUpdateOne) SetNillableRemainingSecs(v *int) *ShiftEventUpdateOne {
	if v != nil {
		_u.SetRemainingSecs(*v)
	}
	return _u
}

// AddRemainingSecs adds value to the "remaining_secs" field.
func (_u *ShiftEventUpdateOne) AddRemainingSecs(v int) *ShiftEventUpdateOne {
	_u.mutation.AddRemainingSecs(v)
	return _u
}

// Mutation returns the ShiftEventMutation object of the builder.
func (_u *ShiftEventUpdateOne) Mutation() *ShiftEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ShiftEventUpdate builder.
func (_u *ShiftEventUpdateOne) Where(ps ...predicate.ShiftEvent) *ShiftEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ShiftEventUpdateOne) Select(field string, fields ...string) *ShiftEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ShiftEvent entity.
func (_u *ShiftEventUpdateOne) Save(ctx context.Context) (*ShiftEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ShiftEventUpdateOne) SaveX(ctx context.Context) *ShiftEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ShiftEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ShiftEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ShiftEventUpdateOne) check() error {
	if v, ok := _u.mutation.ShiftID(); ok {
		if err := shiftevent.ShiftIDValidator(v); err != nil {
			return &ValidationError{Name: "shift_id", err: fmt.Errorf(`ent: validator failed for field "ShiftEvent.shift_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := shiftevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ShiftEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ShiftEventUpdateOne) sqlSave(ctx context.Context) (_node *ShiftEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(shiftevent.Table, shiftevent.Columns, sqlgraph.NewFieldSpec(shiftevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ShiftEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, shiftevent.FieldID)
		for _, f := range fields {
			if !shiftevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != shiftevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ShiftID(); ok {
		_spec.SetField(shiftevent.FieldShiftID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(shiftevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseCount(); ok {
		_spec.SetField(shiftevent.FieldCaseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCaseCount(); ok {
		_spec.AddField(shiftevent.FieldCaseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PatientsTreated(); ok {
		_spec.SetField(shiftevent.FieldPatientsTreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPatientsTreated(); ok {
		_spec.AddField(shiftevent.FieldPatientsTreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectDiagnoses(); ok {
		_spec.SetField(shiftevent.FieldCorrectDiagnoses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectDiagnoses(); ok {
		_spec.AddField(shiftevent.FieldCorrectDiagnoses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(shiftevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(shiftevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RemainingSecs(); ok {
		_spec.SetField(shiftevent.FieldRemainingSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemainingSecs(); ok {
		_spec.AddField(shiftevent.FieldRemainingSecs, field.TypeInt, value)
	}
	_node = &ShiftEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shiftevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
