// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/blackstar-game/blackstar/ent/answerevent"
	"github.com/blackstar-game/blackstar/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetShiftID sets the "shift_id" field.
func (_u *AnswerEventUpdate) SetShiftID(v string) *AnswerEventUpdate {
	_u.mutation.SetShiftID(v)
	return _u
}

// SetNillableShiftID sets the "shift_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableShiftID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetShiftID(*v)
	}
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *AnswerEventUpdate) SetCaseID(v string) *AnswerEventUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCaseID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *AnswerEventUpdate) SetSpecialty(v string) *AnswerEventUpdate {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSpecialty(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerEventUpdate) SetDifficulty(v int) *AnswerEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableDifficulty(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *AnswerEventUpdate) AddDifficulty(v int) *AnswerEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *AnswerEventUpdate) SetQuestion(v string) *AnswerEventUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestion(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetChosenChoice sets the "chosen_choice" field.
func (_u *AnswerEventUpdate) SetChosenChoice(v string) *AnswerEventUpdate {
	_u.mutation.SetChosenChoice(v)
	return _u
}

// SetNillableChosenChoice sets the "chosen_choice" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableChosenChoice(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetChosenChoice(*v)
	}
	return _u
}

// SetCorrectChoice sets the "correct_choice" field.
func (_u *AnswerEventUpdate) SetCorrectChoice(v string) *AnswerEventUpdate {
	_u.mutation.SetCorrectChoice(v)
	return _u
}

// SetNillableCorrectChoice sets the "correct_choice" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrectChoice(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrectChoice(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdate) SetTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTimeMs(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdate) AddTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.ShiftID(); ok {
		if err := answerevent.ShiftIDValidator(v); err != nil {
			return &ValidationError{Name: "shift_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.shift_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaseID(); ok {
		if err := answerevent.CaseIDValidator(v); err != nil {
			return &ValidationError{Name: "case_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.case_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialty(); ok {
		if err := answerevent.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.specialty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := answerevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChosenChoice(); ok {
		if err := answerevent.ChosenChoiceValidator(v); err != nil {
			return &ValidationError{Name: "chosen_choice", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.chosen_choice": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectChoice(); ok {
		if err := answerevent.CorrectChoiceValidator(v); err != nil {
			return &ValidationError{Name: "correct_choice", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.correct_choice": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ShiftID(); ok {
		_spec.SetField(answerevent.FieldShiftID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(answerevent.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(answerevent.FieldSpecialty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(answerevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(answerevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChosenChoice(); ok {
		_spec.SetField(answerevent.FieldChosenChoice, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectChoice(); ok {
		_spec.SetField(answerevent.FieldCorrectChoice, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetShiftID sets the "shift_id" field.
func (_u *AnswerEventUpdateOne) SetShiftID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetShiftID(v)
	return _u
}

// SetNillableShiftID sets the "shift_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableShiftID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetShiftID(*v)
	}
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *AnswerEventUpdateOne) SetCaseID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCaseID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *AnswerEventUpdateOne) SetSpecialty(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSpecialty(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerEventUpdateOne) SetDifficulty(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableDifficulty(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *AnswerEventUpdateOne) AddDifficulty(v int) *AnswerEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *AnswerEventUpdateOne) SetQuestion(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestion(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetChosenChoice sets the "chosen_choice" field.
func (_u *AnswerEventUpdateOne) SetChosenChoice(v string) *AnswerEventUpdateOne {
	_u.mutation.SetChosenChoice(v)
	return _u
}

// SetNillableChosenChoice sets the "chosen_choice" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableChosenChoice(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetChosenChoice(*v)
	}
	return _u
}

// SetCorrectChoice sets the "correct_choice" field.
func (_u *AnswerEventUpdateOne) SetCorrectChoice(v string) *AnswerEventUpdateOne {
	_u.mutation.SetCorrectChoice(v)
	return _u
}

// SetNillableCorrectChoice sets the "correct_choice" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrectChoice(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrectChoice(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdateOne) SetTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTimeMs(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdateOne) AddTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.ShiftID(); ok {
		if err := answerevent.ShiftIDValidator(v); err != nil {
			return &ValidationError{Name: "shift_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.shift_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaseID(); ok {
		if err := answerevent.CaseIDValidator(v); err != nil {
			return &ValidationError{Name: "case_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.case_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialty(); ok {
		if err := answerevent.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.specialty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := answerevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChosenChoice(); ok {
		if err := answerevent.ChosenChoiceValidator(v); err != nil {
			return &ValidationError{Name: "chosen_choice", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.chosen_choice": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectChoice(); ok {
		if err := answerevent.CorrectChoiceValidator(v); err != nil {
			return &ValidationError{Name: "correct_choice", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.correct_choice": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
		_spec.SetField(answerevent.FieldShiftID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(answerevent.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(answerevent.FieldSpecialty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(answerevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(answerevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChosenChoice(); ok {
		_spec.SetField(answerevent.FieldChosenChoice, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectChoice(); ok {
		_spec.SetField(answerevent.FieldCorrectChoice, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
