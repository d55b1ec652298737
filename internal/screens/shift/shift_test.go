package shift

import (
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/blackstar-game/blackstar/internal/caserecord"
	"github.com/blackstar-game/blackstar/internal/countdown"
	"github.com/blackstar-game/blackstar/internal/router"
	"github.com/blackstar-game/blackstar/internal/screen"
	"github.com/blackstar-game/blackstar/internal/screens/summary"
	shiftsvc "github.com/blackstar-game/blackstar/internal/shift"
)

// stubProvider implements shiftsvc.QueueProvider for testing.
type stubProvider struct {
	queue []caserecord.CaseRecord
}

func (p *stubProvider) LoadQueue(count int) ([]caserecord.CaseRecord, error) {
	out := make([]caserecord.CaseRecord, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, p.queue[i%len(p.queue)])
	}
	return out, nil
}

func testCase(id string) caserecord.CaseRecord {
	return caserecord.CaseRecord{
		ID:         id,
		Specialty:  caserecord.SpecialtyEmergencyMedicine,
		Difficulty: 3,
		Vignette: caserecord.Vignette{
			Demographics: "A 54-year-old woman",
			Presentation: "presents with acute dyspnea after a long-haul flight.",
			Vitals:       map[string]string{"BP": "110/70", "HR": "112", "RR": "24", "Temp": "37.1C"},
		},
		Question: "Which of the following is the most likely diagnosis?",
		Choices: []caserecord.Choice{
			{ID: caserecord.ChoiceA, Text: "Pulmonary embolism", Correct: true},
			{ID: caserecord.ChoiceB, Text: "Pneumothorax"},
			{ID: caserecord.ChoiceC, Text: "Aortic dissection"},
			{ID: caserecord.ChoiceD, Text: "Pericarditis"},
		},
		Explanation: caserecord.Explanation{
			Correct:  "Acute dyspnea with tachycardia after immobilization points to PE.",
			Concepts: "Virchow triad and pretest probability.",
		},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// startedShiftScreen builds a ShiftScreen and plays the start message so the
// first case is already dealt.
func startedShiftScreen(t *testing.T, cfg shiftsvc.Config) *ShiftScreen {
	t.Helper()

	provider := &stubProvider{queue: []caserecord.CaseRecord{testCase("em-001"), testCase("em-002")}}
	s := New(provider, nil, nil, cfg)

	msg := s.Init()()
	scr, _ := s.Update(msg)
	ss := scr.(*ShiftScreen)
	if ss.errMsg != "" {
		t.Fatalf("shift failed to start: %s", ss.errMsg)
	}
	return ss
}

func defaultTestConfig() shiftsvc.Config {
	return shiftsvc.Config{Duration: time.Minute, CaseCount: 3}
}

func TestShiftScreen_Title(t *testing.T) {
	s := startedShiftScreen(t, defaultTestConfig())
	if s.Title() != "Night Shift" {
		t.Errorf("Title = %q, want %q", s.Title(), "Night Shift")
	}
}

func TestShiftScreen_DealsFirstCase(t *testing.T) {
	s := startedShiftScreen(t, defaultTestConfig())

	if s.current == nil {
		t.Fatal("expected a case after start")
	}
	if s.caseIndex != 0 {
		t.Errorf("caseIndex = %d, want 0", s.caseIndex)
	}
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty case view")
	}
}

func TestShiftScreen_CorrectAnswerShowsFeedback(t *testing.T) {
	s := startedShiftScreen(t, defaultTestConfig())

	// Choice A is the correct diagnosis; the letter key both selects
	// and submits.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('a'))
	ss := scr.(*ShiftScreen)

	if !ss.showingFeedback {
		t.Error("expected feedback after submit")
	}
	if !ss.lastCorrect {
		t.Error("expected choice A to score correct")
	}
	if ss.stats.PatientsTreated != 1 || ss.stats.CorrectDiagnoses != 1 {
		t.Errorf("stats = %d treated / %d correct, want 1/1",
			ss.stats.PatientsTreated, ss.stats.CorrectDiagnoses)
	}
	if view := ss.View(80, 24); view == "" {
		t.Error("expected non-empty feedback view")
	}
}

func TestShiftScreen_WrongAnswerScoresZero(t *testing.T) {
	s := startedShiftScreen(t, defaultTestConfig())

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('b'))
	ss := scr.(*ShiftScreen)

	if !ss.showingFeedback {
		t.Error("expected feedback after submit")
	}
	if ss.lastCorrect {
		t.Error("expected choice B to score incorrect")
	}
	if ss.stats.PatientsTreated != 1 || ss.stats.CorrectDiagnoses != 0 {
		t.Errorf("stats = %d treated / %d correct, want 1/0",
			ss.stats.PatientsTreated, ss.stats.CorrectDiagnoses)
	}
}

func TestShiftScreen_FeedbackDismissAdvances(t *testing.T) {
	s := startedShiftScreen(t, defaultTestConfig())

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('a'))
	scr, _ = scr.Update(keyPress(' ')) // Any key moves on.
	ss := scr.(*ShiftScreen)

	if ss.showingFeedback {
		t.Error("expected feedback to be dismissed")
	}
	if ss.caseIndex != 1 {
		t.Errorf("caseIndex = %d, want 1", ss.caseIndex)
	}
	if ss.current == nil || ss.current.ID != "em-002" {
		t.Error("expected the next patient to be dealt")
	}
}

func TestShiftScreen_QuitConfirm(t *testing.T) {
	s := startedShiftScreen(t, defaultTestConfig())

	// Esc pauses the clock and asks for confirmation.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*ShiftScreen)
	if !ss.showingQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}
	if ss.timer.State() != countdown.StatePaused {
		t.Error("expected countdown paused during quit confirm")
	}

	// N keeps the shift going.
	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*ShiftScreen)
	if ss.showingQuitConfirm {
		t.Error("expected quit confirmation dismissed")
	}
	if ss.ended {
		t.Error("expected shift still active after declining")
	}
}

func TestShiftScreen_QuitConfirm_YesEndsShift(t *testing.T) {
	s := startedShiftScreen(t, defaultTestConfig())

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))

	if !s.ended {
		t.Error("expected shift ended after confirmation")
	}
	if cmd == nil {
		t.Fatal("expected a hand-off command after ending")
	}
	rmsg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := rmsg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", rmsg.Screen)
	}
}

func TestShiftScreen_ExpiryDuringFeedback(t *testing.T) {
	cfg := shiftsvc.Config{Duration: 2 * time.Second, CaseCount: 3}
	s := startedShiftScreen(t, cfg)

	// Answer the first patient and stay on the feedback overlay while the
	// clock runs out.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('a'))

	scr, _ = scr.Update(timerTickMsg(time.Now()))
	scr, cmd := scr.Update(timerTickMsg(time.Now()))
	ss := scr.(*ShiftScreen)

	if !ss.ended {
		t.Fatal("expected shift ended on expiry")
	}
	if ss.finalStats.PatientsTreated != 1 || ss.finalStats.CorrectDiagnoses != 1 {
		t.Errorf("final stats = %d treated / %d correct, want 1/1",
			ss.finalStats.PatientsTreated, ss.finalStats.CorrectDiagnoses)
	}
	if cmd == nil {
		t.Fatal("expected a hand-off command on expiry")
	}
	rmsg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := rmsg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", rmsg.Screen)
	}

	// Later ticks after the hand-off stay quiet.
	if _, cmd := ss.Update(timerTickMsg(time.Now())); cmd != nil {
		t.Error("expected no further commands after the shift ended")
	}
}

func TestShiftScreen_StartFailureShowsError(t *testing.T) {
	s := New(failingProvider{}, nil, nil, defaultTestConfig())
	msg := s.Init()()
	scr, _ := s.Update(msg)
	ss := scr.(*ShiftScreen)

	if ss.errMsg == "" {
		t.Fatal("expected an error message")
	}
	if view := ss.View(80, 24); view == "" {
		t.Error("expected non-empty error view")
	}

	// Any key backs out.
	_, cmd := ss.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command to leave the shift")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

type failingProvider struct{}

func (failingProvider) LoadQueue(int) ([]caserecord.CaseRecord, error) {
	return nil, errors.New("case source offline")
}

func TestShiftScreen_KeyHints(t *testing.T) {
	s := startedShiftScreen(t, defaultTestConfig())

	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints while a case is up")
	}

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('a'))
	ss := scr.(*ShiftScreen)
	hints := ss.KeyHints()
	if len(hints) != 1 {
		t.Errorf("feedback hints = %d, want 1", len(hints))
	}
}
