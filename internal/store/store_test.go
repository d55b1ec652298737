package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestShiftEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendShiftEvent(ctx, ShiftEventData{
		ShiftID:      "shift-1",
		Action:       ActionStart,
		CaseCount:    5,
		DurationSecs: 480,
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	err = repo.AppendShiftEvent(ctx, ShiftEventData{
		ShiftID:          "shift-1",
		Action:           ActionEnd,
		CaseCount:        5,
		PatientsTreated:  5,
		CorrectDiagnoses: 4,
		DurationSecs:     480,
		RemainingSecs:    30,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	shifts, err := repo.RecentShifts(ctx, 10)
	if err != nil {
		t.Fatalf("recent shifts: %v", err)
	}
	if len(shifts) != 1 {
		t.Fatalf("got %d shifts, want 1 (start events excluded)", len(shifts))
	}
	if shifts[0].ShiftID != "shift-1" {
		t.Errorf("shift ID = %s, want shift-1", shifts[0].ShiftID)
	}
	if shifts[0].Accuracy != 0.8 {
		t.Errorf("accuracy = %v, want 0.8", shifts[0].Accuracy)
	}
}

func TestRecentShifts_NewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendShiftEvent(ctx, ShiftEventData{
			ShiftID:         "shift-" + string(rune('a'+i)),
			Action:          ActionEnd,
			PatientsTreated: i + 1,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	shifts, err := repo.RecentShifts(ctx, 2)
	if err != nil {
		t.Fatalf("recent shifts: %v", err)
	}
	if len(shifts) != 2 {
		t.Fatalf("got %d shifts, want 2", len(shifts))
	}
	if shifts[0].ShiftID != "shift-c" {
		t.Errorf("newest shift = %s, want shift-c", shifts[0].ShiftID)
	}
}

func appendAnswer(t *testing.T, repo EventRepo, specialty, question string, correct bool) {
	t.Helper()
	err := repo.AppendAnswerEvent(context.Background(), AnswerEventData{
		ShiftID:       "shift-1",
		CaseID:        "case-1",
		Specialty:     specialty,
		Difficulty:    2,
		Question:      question,
		ChosenChoice:  "A",
		CorrectChoice: "A",
		Correct:       correct,
		TimeMs:        1200,
	})
	if err != nil {
		t.Fatalf("append answer: %v", err)
	}
}

func TestSpecialtyAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// No answers yet.
	acc, err := repo.SpecialtyAccuracy(ctx, "pediatrics")
	if err != nil {
		t.Fatalf("specialty accuracy (empty): %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy = %v, want 0 with no answers", acc)
	}

	appendAnswer(t, repo, "pediatrics", "q1", true)
	appendAnswer(t, repo, "pediatrics", "q2", false)
	appendAnswer(t, repo, "surgery", "q3", false)

	acc, err = repo.SpecialtyAccuracy(ctx, "pediatrics")
	if err != nil {
		t.Fatalf("specialty accuracy: %v", err)
	}
	if acc != 0.5 {
		t.Errorf("pediatrics accuracy = %v, want 0.5", acc)
	}
}

func TestRecentCaseQuestions_DedupesNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendAnswer(t, repo, "surgery", "first question", true)
	appendAnswer(t, repo, "surgery", "second question", true)
	appendAnswer(t, repo, "surgery", "first question", false)

	questions, err := repo.RecentCaseQuestions(ctx, 10)
	if err != nil {
		t.Fatalf("recent case questions: %v", err)
	}
	want := []string{"first question", "second question"}
	if len(questions) != len(want) {
		t.Fatalf("got %v, want %v", questions, want)
	}
	for i := range want {
		if questions[i] != want[i] {
			t.Errorf("questions[%d] = %q, want %q", i, questions[i], want[i])
		}
	}
}

func TestCareerStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendShiftEvent(ctx, ShiftEventData{ShiftID: "shift-1", Action: ActionEnd})
	if err != nil {
		t.Fatalf("append shift: %v", err)
	}
	appendAnswer(t, repo, "pediatrics", "q1", true)
	appendAnswer(t, repo, "pediatrics", "q2", true)
	appendAnswer(t, repo, "surgery", "q3", false)
	appendAnswer(t, repo, "surgery", "q4", true)

	stats, err := repo.CareerStats(ctx)
	if err != nil {
		t.Fatalf("career stats: %v", err)
	}
	if stats.ShiftsCompleted != 1 {
		t.Errorf("shifts = %d, want 1", stats.ShiftsCompleted)
	}
	if stats.PatientsTreated != 4 || stats.CorrectDiagnoses != 3 {
		t.Errorf("treated/correct = %d/%d, want 4/3", stats.PatientsTreated, stats.CorrectDiagnoses)
	}
	if stats.Accuracy != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", stats.Accuracy)
	}
	if got := stats.BySpecialty["pediatrics"]; got.Treated != 2 || got.Accuracy != 1.0 {
		t.Errorf("pediatrics = %+v, want 2 treated at 1.0", got)
	}
	if got := stats.BySpecialty["surgery"]; got.Treated != 2 || got.Accuracy != 0.5 {
		t.Errorf("surgery = %+v, want 2 treated at 0.5", got)
	}
}

func TestLLMRequestEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock-model",
		Purpose:      "case-draft",
		InputTokens:  120,
		OutputTokens: 480,
		LatencyMs:    850,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append LLM request: %v", err)
	}

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("LLM events = %d, want 1", count)
	}
}

func TestLLMEventReadBack(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"case-draft", "case-draft", "probe"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 400,
			LatencyMs:    900,
			Success:      true,
			RequestBody:  "req",
			ResponseBody: "resp",
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.RecentLLMEvents(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Purpose != "probe" {
		t.Errorf("newest first: got %q", events[0].Purpose)
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.RequestBody != "req" || e.ResponseBody != "resp" {
		t.Errorf("event = %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 999999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("missing event = %+v, want nil", missing)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:          1,
			ShiftsCompleted:  3,
			PatientsTreated:  24,
			CorrectDiagnoses: 18,
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.PatientsTreated != 24 {
		t.Errorf("patients treated = %d, want 24", snap.Data.PatientsTreated)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}
