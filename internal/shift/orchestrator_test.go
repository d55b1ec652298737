package shift

import (
	"errors"
	"testing"
	"time"

	"github.com/blackstar-game/blackstar/internal/caserecord"
	"github.com/blackstar-game/blackstar/internal/countdown"
)

// stubProvider cycles a fixed pool to the requested count, mirroring the
// queue provider's contract.
type stubProvider struct {
	pool []caserecord.CaseRecord
	err  error
}

func (p *stubProvider) LoadQueue(count int) ([]caserecord.CaseRecord, error) {
	if p.err != nil {
		return nil, p.err
	}
	queue := make([]caserecord.CaseRecord, count)
	for i := range queue {
		queue[i] = p.pool[i%len(p.pool)]
	}
	return queue, nil
}

// recordingSink keeps the order of emitted events for assertions.
type recordingSink struct {
	events     []string
	shiftEnded int
	finalStats Statistics
	remaining  []time.Duration
}

func (s *recordingSink) ShiftStarted(string, int, time.Duration) {
	s.events = append(s.events, "shift_started")
}

func (s *recordingSink) CaseReady(string, int, caserecord.CaseRecord) {
	s.events = append(s.events, "case_ready")
}

func (s *recordingSink) AnswerScored(_ string, _ caserecord.CaseRecord, _ caserecord.ChoiceID, _ bool, _ Statistics) {
	s.events = append(s.events, "answer_scored")
}

func (s *recordingSink) TimeUpdated(r time.Duration) {
	s.remaining = append(s.remaining, r)
}

func (s *recordingSink) ShiftEnded(_ string, stats Statistics) {
	s.events = append(s.events, "shift_ended")
	s.shiftEnded++
	s.finalStats = stats
}

func testCase(id string, correct caserecord.ChoiceID) caserecord.CaseRecord {
	choices := make([]caserecord.Choice, 0, 4)
	for _, cid := range []caserecord.ChoiceID{caserecord.ChoiceA, caserecord.ChoiceB, caserecord.ChoiceC, caserecord.ChoiceD} {
		choices = append(choices, caserecord.Choice{ID: cid, Text: "Option " + string(cid), Correct: cid == correct})
	}
	return caserecord.CaseRecord{
		ID:         id,
		Specialty:  caserecord.SpecialtyEmergencyMedicine,
		Difficulty: 2,
		Question:   "Which of the following is the most appropriate next step?",
		Choices:    choices,
	}
}

func newTestOrchestrator(pool []caserecord.CaseRecord) (*Orchestrator, *recordingSink, *countdown.Timer) {
	sink := &recordingSink{}
	timer := countdown.New()
	o := New(&stubProvider{pool: pool}, timer, sink)
	return o, sink, timer
}

func TestStartShift_EmitsStartedBeforeFirstCase(t *testing.T) {
	o, sink, _ := newTestOrchestrator([]caserecord.CaseRecord{testCase("c1", caserecord.ChoiceA)})

	if err := o.StartShift(Config{Duration: time.Minute, CaseCount: 2}); err != nil {
		t.Fatalf("StartShift: %v", err)
	}

	if len(sink.events) < 2 || sink.events[0] != "shift_started" || sink.events[1] != "case_ready" {
		t.Errorf("events = %v, want shift_started then case_ready", sink.events)
	}
	if !o.Active() {
		t.Error("shift should be active")
	}
	if o.ShiftID() == "" {
		t.Error("shift ID should be set")
	}
}

func TestStartShift_WhileActive(t *testing.T) {
	o, _, _ := newTestOrchestrator([]caserecord.CaseRecord{testCase("c1", caserecord.ChoiceA)})

	if err := o.StartShift(Config{Duration: time.Minute, CaseCount: 2}); err != nil {
		t.Fatalf("StartShift: %v", err)
	}
	if err := o.StartShift(Config{Duration: time.Minute, CaseCount: 2}); !errors.Is(err, ErrAlreadyActive) {
		t.Errorf("second StartShift = %v, want ErrAlreadyActive", err)
	}
}

func TestStartShift_InvalidConfig(t *testing.T) {
	o, _, _ := newTestOrchestrator([]caserecord.CaseRecord{testCase("c1", caserecord.ChoiceA)})

	if err := o.StartShift(Config{Duration: -time.Second, CaseCount: 2}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("StartShift = %v, want ErrInvalidConfig", err)
	}
	if err := o.StartShift(Config{Duration: time.Minute, CaseCount: -1}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("StartShift = %v, want ErrInvalidConfig", err)
	}
	if o.Active() {
		t.Error("failed start must not leave the shift active")
	}
}

func TestStartShift_ZeroConfigUsesDefaults(t *testing.T) {
	o, _, timer := newTestOrchestrator([]caserecord.CaseRecord{testCase("c1", caserecord.ChoiceA)})

	if err := o.StartShift(Config{}); err != nil {
		t.Fatalf("StartShift: %v", err)
	}
	if timer.Total() != DefaultDuration {
		t.Errorf("timer total = %v, want %v", timer.Total(), DefaultDuration)
	}
}

func TestStartShift_ProviderError(t *testing.T) {
	sink := &recordingSink{}
	o := New(&stubProvider{err: errors.New("no cases")}, countdown.New(), sink)

	if err := o.StartShift(Config{Duration: time.Minute, CaseCount: 2}); err == nil {
		t.Fatal("StartShift should propagate provider errors")
	}
	if o.Active() {
		t.Error("shift must not be active after a failed start")
	}
	if len(sink.events) != 0 {
		t.Errorf("no events should fire on a failed start, got %v", sink.events)
	}
}

func TestSubmitAnswer_Scoring(t *testing.T) {
	o, _, _ := newTestOrchestrator([]caserecord.CaseRecord{
		testCase("c1", caserecord.ChoiceA),
		testCase("c2", caserecord.ChoiceC),
	})

	if err := o.StartShift(Config{Duration: time.Minute, CaseCount: 2}); err != nil {
		t.Fatalf("StartShift: %v", err)
	}

	correct, err := o.SubmitAnswer(caserecord.ChoiceA)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !correct {
		t.Error("choice A should score correct on c1")
	}

	if err := o.AdvanceToNextCase(); err != nil {
		t.Fatalf("AdvanceToNextCase: %v", err)
	}

	correct, err = o.SubmitAnswer(caserecord.ChoiceB)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if correct {
		t.Error("choice B should score incorrect on c2")
	}

	stats := o.Statistics()
	if stats.PatientsTreated != 2 || stats.CorrectDiagnoses != 1 {
		t.Errorf("stats = %+v, want 2 treated, 1 correct", stats)
	}
	if stats.Accuracy != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", stats.Accuracy)
	}
}

func TestSubmitAnswer_NoAutoAdvance(t *testing.T) {
	o, sink, _ := newTestOrchestrator([]caserecord.CaseRecord{testCase("c1", caserecord.ChoiceA)})

	if err := o.StartShift(Config{Duration: time.Minute, CaseCount: 3}); err != nil {
		t.Fatalf("StartShift: %v", err)
	}
	if _, err := o.SubmitAnswer(caserecord.ChoiceA); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	// Still on the answered case until the caller advances.
	want := []string{"shift_started", "case_ready", "answer_scored"}
	if len(sink.events) != len(want) {
		t.Fatalf("events = %v, want %v", sink.events, want)
	}

	// The answered case no longer accepts answers.
	if _, err := o.SubmitAnswer(caserecord.ChoiceB); !errors.Is(err, ErrNoActiveCase) {
		t.Errorf("second SubmitAnswer = %v, want ErrNoActiveCase", err)
	}
}

func TestSubmitAnswer_NoShift(t *testing.T) {
	o, _, _ := newTestOrchestrator([]caserecord.CaseRecord{testCase("c1", caserecord.ChoiceA)})

	if _, err := o.SubmitAnswer(caserecord.ChoiceA); !errors.Is(err, ErrNoActiveShift) {
		t.Errorf("SubmitAnswer = %v, want ErrNoActiveShift", err)
	}
}

func TestSubmitAnswer_UnknownChoice(t *testing.T) {
	o, _, _ := newTestOrchestrator([]caserecord.CaseRecord{testCase("c1", caserecord.ChoiceA)})

	if err := o.StartShift(Config{Duration: time.Minute, CaseCount: 1}); err != nil {
		t.Fatalf("StartShift: %v", err)
	}

	// The fixture has four choices, so E is not on the card.
	if _, err := o.SubmitAnswer(caserecord.ChoiceE); !errors.Is(err, ErrUnknownChoice) {
		t.Errorf("SubmitAnswer(E) = %v, want ErrUnknownChoice", err)
	}

	// A rejected answer must not count as treated.
	if stats := o.Statistics(); stats.PatientsTreated != 0 {
		t.Errorf("patients treated = %d, want 0", stats.PatientsTreated)
	}
}

func TestShift_EndsAfterCaseload(t *testing.T) {
	// 8-minute shift, 3 cases, pool of one record: the case repeats.
	o, sink, _ := newTestOrchestrator([]caserecord.CaseRecord{testCase("c1", caserecord.ChoiceA)})

	if err := o.StartShift(Config{Duration: 480 * time.Second, CaseCount: 3}); err != nil {
		t.Fatalf("StartShift: %v", err)
	}

	for i := 0; i < 3; i++ {
		cur, err := o.CurrentCase()
		if err != nil {
			t.Fatalf("CurrentCase %d: %v", i, err)
		}
		if cur.ID != "c1" {
			t.Errorf("case %d = %s, want repeated c1", i, cur.ID)
		}
		if _, err := o.SubmitAnswer(caserecord.ChoiceA); err != nil {
			t.Fatalf("SubmitAnswer %d: %v", i, err)
		}
		if err := o.AdvanceToNextCase(); err != nil {
			t.Fatalf("AdvanceToNextCase %d: %v", i, err)
		}
	}

	if o.Active() {
		t.Error("shift should end after the caseload is treated")
	}
	if sink.shiftEnded != 1 {
		t.Errorf("ShiftEnded fired %d times, want 1", sink.shiftEnded)
	}
	if sink.finalStats.PatientsTreated != 3 || sink.finalStats.CorrectDiagnoses != 3 {
		t.Errorf("final stats = %+v, want 3 treated, 3 correct", sink.finalStats)
	}
	if sink.finalStats.Accuracy != 1.0 {
		t.Errorf("accuracy = %v, want 1.0", sink.finalStats.Accuracy)
	}
}

func TestEndShift_Idempotent(t *testing.T) {
	o, sink, _ := newTestOrchestrator([]caserecord.CaseRecord{testCase("c1", caserecord.ChoiceA)})

	if err := o.StartShift(Config{Duration: time.Minute, CaseCount: 2}); err != nil {
		t.Fatalf("StartShift: %v", err)
	}

	if err := o.EndShift(); err != nil {
		t.Fatalf("EndShift: %v", err)
	}
	if err := o.EndShift(); err != nil {
		t.Fatalf("second EndShift: %v", err)
	}
	if err := o.EndShift(); err != nil {
		t.Fatalf("third EndShift: %v", err)
	}

	if sink.shiftEnded != 1 {
		t.Errorf("ShiftEnded fired %d times, want 1", sink.shiftEnded)
	}
}

func TestEndShift_AccuracyZeroWhenUntreated(t *testing.T) {
	o, sink, _ := newTestOrchestrator([]caserecord.CaseRecord{testCase("c1", caserecord.ChoiceA)})

	if err := o.StartShift(Config{Duration: time.Minute, CaseCount: 2}); err != nil {
		t.Fatalf("StartShift: %v", err)
	}
	if err := o.EndShift(); err != nil {
		t.Fatalf("EndShift: %v", err)
	}

	if sink.finalStats.PatientsTreated != 0 {
		t.Errorf("patients treated = %d, want 0", sink.finalStats.PatientsTreated)
	}
	if sink.finalStats.Accuracy != 0 {
		t.Errorf("accuracy = %v, want 0 with no patients treated", sink.finalStats.Accuracy)
	}
}

func TestTimerExpiry_EndsShift(t *testing.T) {
	o, sink, timer := newTestOrchestrator([]caserecord.CaseRecord{testCase("c1", caserecord.ChoiceA)})

	if err := o.StartShift(Config{Duration: 10 * time.Second, CaseCount: 5}); err != nil {
		t.Fatalf("StartShift: %v", err)
	}
	if _, err := o.SubmitAnswer(caserecord.ChoiceA); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	for i := 0; i < 10; i++ {
		timer.Tick(time.Second)
	}

	if o.Active() {
		t.Error("expiry should end the shift")
	}
	if sink.shiftEnded != 1 {
		t.Errorf("ShiftEnded fired %d times, want 1", sink.shiftEnded)
	}
	if sink.finalStats.TimeRemaining != 0 {
		t.Errorf("time remaining = %v, want 0", sink.finalStats.TimeRemaining)
	}

	if _, err := o.SubmitAnswer(caserecord.ChoiceA); !errors.Is(err, ErrNoActiveShift) {
		t.Errorf("SubmitAnswer after expiry = %v, want ErrNoActiveShift", err)
	}
	if err := o.AdvanceToNextCase(); !errors.Is(err, ErrNoActiveShift) {
		t.Errorf("AdvanceToNextCase after expiry = %v, want ErrNoActiveShift", err)
	}
}

func TestTimeUpdates_ReachSink(t *testing.T) {
	o, sink, timer := newTestOrchestrator([]caserecord.CaseRecord{testCase("c1", caserecord.ChoiceA)})

	if err := o.StartShift(Config{Duration: 5 * time.Second, CaseCount: 1}); err != nil {
		t.Fatalf("StartShift: %v", err)
	}
	timer.Tick(time.Second)
	timer.Tick(time.Second)

	// Start notifies once, each tick notifies once.
	if len(sink.remaining) != 3 {
		t.Fatalf("got %d time updates, want 3", len(sink.remaining))
	}
	if sink.remaining[2] != 3*time.Second {
		t.Errorf("last update = %v, want 3s", sink.remaining[2])
	}
}

func TestPauseResume(t *testing.T) {
	o, _, timer := newTestOrchestrator([]caserecord.CaseRecord{testCase("c1", caserecord.ChoiceA)})

	if err := o.PauseShift(); !errors.Is(err, ErrNoActiveShift) {
		t.Errorf("PauseShift = %v, want ErrNoActiveShift", err)
	}

	if err := o.StartShift(Config{Duration: time.Minute, CaseCount: 1}); err != nil {
		t.Fatalf("StartShift: %v", err)
	}

	if err := o.PauseShift(); err != nil {
		t.Fatalf("PauseShift: %v", err)
	}
	timer.Tick(30 * time.Second)
	if got := timer.Remaining(); got != time.Minute {
		t.Errorf("remaining = %v, want held at 1m while paused", got)
	}

	if err := o.ResumeShift(); err != nil {
		t.Fatalf("ResumeShift: %v", err)
	}
	timer.Tick(10 * time.Second)
	if got := timer.Remaining(); got != 50*time.Second {
		t.Errorf("remaining = %v, want 50s after resume", got)
	}
}

func TestRestart_AfterEnd(t *testing.T) {
	o, sink, _ := newTestOrchestrator([]caserecord.CaseRecord{testCase("c1", caserecord.ChoiceA)})

	if err := o.StartShift(Config{Duration: time.Minute, CaseCount: 1}); err != nil {
		t.Fatalf("first StartShift: %v", err)
	}
	first := o.ShiftID()
	if err := o.EndShift(); err != nil {
		t.Fatalf("EndShift: %v", err)
	}

	if err := o.StartShift(Config{Duration: time.Minute, CaseCount: 1}); err != nil {
		t.Fatalf("second StartShift: %v", err)
	}
	if o.ShiftID() == first {
		t.Error("a new shift must get a new ID")
	}
	if stats := o.Statistics(); stats.PatientsTreated != 0 || stats.CorrectDiagnoses != 0 {
		t.Errorf("stats = %+v, want counters reset", stats)
	}
	if sink.shiftEnded != 1 {
		t.Errorf("ShiftEnded fired %d times, want 1", sink.shiftEnded)
	}
}
