package shift

import (
	"context"
	"testing"
	"time"

	"github.com/blackstar-game/blackstar/internal/caserecord"
	"github.com/blackstar-game/blackstar/internal/store"
)

type fakeEventRepo struct {
	shiftEvents  []store.ShiftEventData
	answerEvents []store.AnswerEventData
}

func (f *fakeEventRepo) AppendShiftEvent(_ context.Context, data store.ShiftEventData) error {
	f.shiftEvents = append(f.shiftEvents, data)
	return nil
}

func (f *fakeEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	f.answerEvents = append(f.answerEvents, data)
	return nil
}

func (f *fakeEventRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (f *fakeEventRepo) RecentShifts(context.Context, int) ([]store.ShiftSummary, error) {
	return nil, nil
}

func (f *fakeEventRepo) SpecialtyAccuracy(context.Context, string) (float64, error) {
	return 0, nil
}

func (f *fakeEventRepo) RecentCaseQuestions(context.Context, int) ([]string, error) {
	return nil, nil
}

func (f *fakeEventRepo) CareerStats(context.Context) (store.CareerStats, error) {
	return store.CareerStats{}, nil
}

func (f *fakeEventRepo) RecentLLMEvents(context.Context, int) ([]store.LLMEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) GetLLMEvent(context.Context, int) (*store.LLMEventRecord, error) {
	return nil, nil
}

type fakeSnapshotRepo struct {
	snapshots []*store.Snapshot
	pruned    int
}

func (f *fakeSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	f.snapshots = append(f.snapshots, snap)
	return nil
}

func (f *fakeSnapshotRepo) Latest(context.Context) (*store.Snapshot, error) {
	if len(f.snapshots) == 0 {
		return nil, nil
	}
	return f.snapshots[len(f.snapshots)-1], nil
}

func (f *fakeSnapshotRepo) Prune(_ context.Context, keep int) error {
	f.pruned = keep
	return nil
}

func TestStoreSink_PersistsShiftLifecycle(t *testing.T) {
	repo := &fakeEventRepo{}
	sink := NewStoreSink(repo)

	clock := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	sink.now = func() time.Time { return clock }

	sink.ShiftStarted("shift-1", 3, 480*time.Second)
	sink.CaseReady("shift-1", 0, testCase("c1", caserecord.ChoiceA))
	clock = clock.Add(2500 * time.Millisecond)
	sink.AnswerScored("shift-1", testCase("c1", caserecord.ChoiceA), caserecord.ChoiceB, false, Statistics{PatientsTreated: 1})
	sink.ShiftEnded("shift-1", Statistics{PatientsTreated: 1, TimeRemaining: 30 * time.Second})

	if len(repo.shiftEvents) != 2 {
		t.Fatalf("got %d shift events, want 2", len(repo.shiftEvents))
	}
	start, end := repo.shiftEvents[0], repo.shiftEvents[1]
	if start.Action != store.ActionStart || start.CaseCount != 3 || start.DurationSecs != 480 {
		t.Errorf("start event = %+v", start)
	}
	if end.Action != store.ActionEnd || end.DurationSecs != 480 || end.RemainingSecs != 30 {
		t.Errorf("end event = %+v", end)
	}

	if len(repo.answerEvents) != 1 {
		t.Fatalf("got %d answer events, want 1", len(repo.answerEvents))
	}
	ans := repo.answerEvents[0]
	if ans.CaseID != "c1" || ans.ChosenChoice != "B" || ans.CorrectChoice != "A" || ans.Correct {
		t.Errorf("answer event = %+v", ans)
	}
	if ans.TimeMs != 2500 {
		t.Errorf("time_ms = %d, want 2500", ans.TimeMs)
	}
}

func TestStoreSink_RollsCareerSnapshot(t *testing.T) {
	repo := &fakeEventRepo{}
	snaps := &fakeSnapshotRepo{}
	sink := NewStoreSink(repo).WithSnapshots(snaps)

	sink.ShiftStarted("shift-1", 3, 480*time.Second)
	sink.ShiftEnded("shift-1", Statistics{PatientsTreated: 3, CorrectDiagnoses: 2})

	sink.ShiftStarted("shift-2", 3, 480*time.Second)
	sink.ShiftEnded("shift-2", Statistics{PatientsTreated: 2, CorrectDiagnoses: 2})

	if len(snaps.snapshots) != 2 {
		t.Fatalf("got %d snapshots, want 2", len(snaps.snapshots))
	}
	latest := snaps.snapshots[1].Data
	if latest.ShiftsCompleted != 2 {
		t.Errorf("shifts completed = %d, want 2", latest.ShiftsCompleted)
	}
	if latest.PatientsTreated != 5 || latest.CorrectDiagnoses != 4 {
		t.Errorf("totals = %d treated / %d correct, want 5/4",
			latest.PatientsTreated, latest.CorrectDiagnoses)
	}
	if snaps.pruned != snapshotKeep {
		t.Errorf("prune keep = %d, want %d", snaps.pruned, snapshotKeep)
	}
}
