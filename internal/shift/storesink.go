package shift

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/blackstar-game/blackstar/internal/caserecord"
	"github.com/blackstar-game/blackstar/internal/store"
)

// StoreSink persists shift events to the event log. Persistence failures
// are warned and swallowed; a broken database must not interrupt a shift.
type StoreSink struct {
	repo     store.EventRepo
	snapRepo store.SnapshotRepo

	// now is replaceable in tests.
	now func() time.Time

	duration  time.Duration
	caseShown time.Time
}

// snapshotKeep bounds how many career snapshots survive pruning.
const snapshotKeep = 10

// NewStoreSink creates a sink appending to repo.
func NewStoreSink(repo store.EventRepo) *StoreSink {
	return &StoreSink{repo: repo, now: time.Now}
}

// WithSnapshots makes the sink roll the career snapshot forward at the end
// of every shift, so the home screen can show totals without scanning the
// event log.
func (s *StoreSink) WithSnapshots(snapRepo store.SnapshotRepo) *StoreSink {
	s.snapRepo = snapRepo
	return s
}

func (s *StoreSink) ShiftStarted(shiftID string, caseCount int, duration time.Duration) {
	s.duration = duration
	err := s.repo.AppendShiftEvent(context.Background(), store.ShiftEventData{
		ShiftID:      shiftID,
		Action:       store.ActionStart,
		CaseCount:    caseCount,
		DurationSecs: int(duration.Seconds()),
	})
	warnPersist(err)
}

func (s *StoreSink) CaseReady(string, int, caserecord.CaseRecord) {
	s.caseShown = s.now()
}

func (s *StoreSink) AnswerScored(shiftID string, record caserecord.CaseRecord, chosen caserecord.ChoiceID, correct bool, _ Statistics) {
	correctID := ""
	if ch, ok := record.CorrectChoice(); ok {
		correctID = string(ch.ID)
	}

	err := s.repo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
		ShiftID:       shiftID,
		CaseID:        record.ID,
		Specialty:     string(record.Specialty),
		Difficulty:    record.Difficulty,
		Question:      record.Question,
		ChosenChoice:  string(chosen),
		CorrectChoice: correctID,
		Correct:       correct,
		TimeMs:        int(s.now().Sub(s.caseShown).Milliseconds()),
	})
	warnPersist(err)
}

func (s *StoreSink) TimeUpdated(time.Duration) {}

func (s *StoreSink) ShiftEnded(shiftID string, stats Statistics) {
	err := s.repo.AppendShiftEvent(context.Background(), store.ShiftEventData{
		ShiftID:          shiftID,
		Action:           store.ActionEnd,
		PatientsTreated:  stats.PatientsTreated,
		CorrectDiagnoses: stats.CorrectDiagnoses,
		DurationSecs:     int(s.duration.Seconds()),
		RemainingSecs:    int(stats.TimeRemaining.Seconds()),
	})
	warnPersist(err)

	s.rollSnapshot(stats)
}

// rollSnapshot folds the finished shift into the latest career snapshot.
func (s *StoreSink) rollSnapshot(stats Statistics) {
	if s.snapRepo == nil {
		return
	}
	ctx := context.Background()

	data := store.SnapshotData{Version: 1}
	if prev, err := s.snapRepo.Latest(ctx); err == nil && prev != nil {
		data = prev.Data
	}

	data.ShiftsCompleted++
	data.PatientsTreated += stats.PatientsTreated
	data.CorrectDiagnoses += stats.CorrectDiagnoses

	warnPersist(s.snapRepo.Save(ctx, &store.Snapshot{
		Timestamp: s.now(),
		Data:      data,
	}))
	warnPersist(s.snapRepo.Prune(ctx, snapshotKeep))
}

func warnPersist(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: persist shift event: %v\n", err)
	}
}
