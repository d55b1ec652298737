package store

import (
	"context"
	"fmt"

	"github.com/blackstar-game/blackstar/ent"
	"github.com/blackstar-game/blackstar/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetShiftID(data.ShiftID).
		SetCaseID(data.CaseID).
		SetSpecialty(data.Specialty).
		SetDifficulty(data.Difficulty).
		SetQuestion(data.Question).
		SetChosenChoice(data.ChosenChoice).
		SetCorrectChoice(data.CorrectChoice).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) SpecialtyAccuracy(ctx context.Context, specialty string) (float64, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.Specialty(specialty)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query specialty accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}

func (r *eventRepo) RecentCaseQuestions(ctx context.Context, limit int) ([]string, error) {
	q := r.client.AnswerEvent.Query().
		Order(ent.Desc(answerevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent case questions: %w", err)
	}

	questions := make([]string, 0, len(events))
	seen := make(map[string]bool)
	for _, e := range events {
		if seen[e.Question] {
			continue
		}
		seen[e.Question] = true
		questions = append(questions, e.Question)
	}
	return questions, nil
}
