package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered case within a shift.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("shift_id").
			NotEmpty().
			Comment("Links to ShiftEvent"),
		field.String("case_id").
			NotEmpty().
			Comment("Case record answered"),
		field.String("specialty").
			NotEmpty().
			Comment("Specialty of the case"),
		field.Int("difficulty").
			Comment("Case difficulty, 1-5"),
		field.String("question").
			NotEmpty().
			Comment("The lead-in question shown"),
		field.String("chosen_choice").
			NotEmpty().
			Comment("Choice ID the player selected"),
		field.String("correct_choice").
			NotEmpty().
			Comment("Choice ID of the correct answer"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("shift_id"),
		index.Fields("case_id"),
		index.Fields("specialty"),
		index.Fields("correct"),
	}
}
