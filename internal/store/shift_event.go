package store

import (
	"context"
	"fmt"

	"github.com/blackstar-game/blackstar/ent"
	"github.com/blackstar-game/blackstar/ent/shiftevent"
)

func (r *eventRepo) AppendShiftEvent(ctx context.Context, data ShiftEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ShiftEvent.Create().
		SetSequence(seqNum).
		SetShiftID(data.ShiftID).
		SetAction(data.Action).
		SetCaseCount(data.CaseCount).
		SetPatientsTreated(data.PatientsTreated).
		SetCorrectDiagnoses(data.CorrectDiagnoses).
		SetDurationSecs(data.DurationSecs).
		SetRemainingSecs(data.RemainingSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save shift event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentShifts(ctx context.Context, limit int) ([]ShiftSummary, error) {
	q := r.client.ShiftEvent.Query().
		Where(shiftevent.Action(ActionEnd)).
		Order(ent.Desc(shiftevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent shifts: %w", err)
	}

	summaries := make([]ShiftSummary, 0, len(events))
	for _, e := range events {
		s := ShiftSummary{
			ShiftID:          e.ShiftID,
			Timestamp:        e.Timestamp,
			PatientsTreated:  e.PatientsTreated,
			CorrectDiagnoses: e.CorrectDiagnoses,
			DurationSecs:     e.DurationSecs,
		}
		if s.PatientsTreated > 0 {
			s.Accuracy = float64(s.CorrectDiagnoses) / float64(s.PatientsTreated)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

func (r *eventRepo) CareerStats(ctx context.Context) (CareerStats, error) {
	stats := CareerStats{BySpecialty: make(map[string]SpecialtyStats)}

	ends, err := r.client.ShiftEvent.Query().
		Where(shiftevent.Action(ActionEnd)).
		All(ctx)
	if err != nil {
		return stats, fmt.Errorf("query shift ends: %w", err)
	}
	stats.ShiftsCompleted = len(ends)

	answers, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return stats, fmt.Errorf("query answers: %w", err)
	}

	for _, a := range answers {
		stats.PatientsTreated++
		sp := stats.BySpecialty[a.Specialty]
		sp.Treated++
		if a.Correct {
			stats.CorrectDiagnoses++
			sp.Correct++
		}
		stats.BySpecialty[a.Specialty] = sp
	}

	if stats.PatientsTreated > 0 {
		stats.Accuracy = float64(stats.CorrectDiagnoses) / float64(stats.PatientsTreated)
	}
	for name, sp := range stats.BySpecialty {
		if sp.Treated > 0 {
			sp.Accuracy = float64(sp.Correct) / float64(sp.Treated)
			stats.BySpecialty[name] = sp
		}
	}
	return stats, nil
}
