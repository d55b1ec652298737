package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ShiftEvent records shift lifecycle events (start/end).
type ShiftEvent struct {
	ent.Schema
}

func (ShiftEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ShiftEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("shift_id").
			NotEmpty().
			Comment("UUID grouping events in a shift"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("case_count").
			Default(0).
			Comment("Configured caseload (on start only)"),
		field.Int("patients_treated").
			Default(0).
			Comment("Cases answered (on end only)"),
		field.Int("correct_diagnoses").
			Default(0).
			Comment("Correct answers (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Configured shift length in seconds"),
		field.Int("remaining_secs").
			Default(0).
			Comment("Time left on the clock (on end only)"),
	}
}

func (ShiftEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("shift_id"),
		index.Fields("action"),
	}
}
