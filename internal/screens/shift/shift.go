package shift

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/blackstar-game/blackstar/internal/caserecord"
	"github.com/blackstar-game/blackstar/internal/countdown"
	"github.com/blackstar-game/blackstar/internal/router"
	"github.com/blackstar-game/blackstar/internal/screen"
	"github.com/blackstar-game/blackstar/internal/screens/summary"
	shiftsvc "github.com/blackstar-game/blackstar/internal/shift"
	"github.com/blackstar-game/blackstar/internal/store"
	"github.com/blackstar-game/blackstar/internal/ui/components"
	"github.com/blackstar-game/blackstar/internal/ui/layout"
)

// ShiftScreen implements screen.Screen for an active shift. It drives the
// orchestrator from the Bubble Tea event loop and doubles as the UI-facing
// event sink: orchestrator calls happen inside Update handlers, so sink
// callbacks land synchronously before the handler returns.
type ShiftScreen struct {
	orch  *shiftsvc.Orchestrator
	timer *countdown.Timer
	cfg   shiftsvc.Config

	current   *caserecord.CaseRecord
	caseIndex int
	caseCount int
	choices   components.MultiChoice
	stats     shiftsvc.Statistics
	remaining time.Duration

	lastChosen  caserecord.ChoiceID
	lastCorrect bool

	started            bool
	showingFeedback    bool
	showingQuitConfirm bool
	ended              bool
	finalStats         shiftsvc.Statistics
	errMsg             string
}

var _ screen.Screen = (*ShiftScreen)(nil)
var _ screen.KeyHintProvider = (*ShiftScreen)(nil)
var _ shiftsvc.EventSink = (*ShiftScreen)(nil)

// New creates a ShiftScreen over the given case provider. A nil eventRepo
// disables persistence but not play.
func New(provider shiftsvc.QueueProvider, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, cfg shiftsvc.Config) *ShiftScreen {
	s := &ShiftScreen{
		cfg:       cfg,
		caseIndex: -1,
	}
	s.timer = countdown.New()

	sink := shiftsvc.MultiSink{s}
	if eventRepo != nil {
		storeSink := shiftsvc.NewStoreSink(eventRepo)
		if snapRepo != nil {
			storeSink.WithSnapshots(snapRepo)
		}
		sink = append(sink, storeSink)
	}
	s.orch = shiftsvc.New(provider, s.timer, sink)
	return s
}

func (s *ShiftScreen) Init() tea.Cmd {
	return s.startShift()
}

func (s *ShiftScreen) Title() string {
	return "Night Shift"
}

func (s *ShiftScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End shift"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Next patient"},
		}
	}
	return []layout.KeyHint{
		{Key: "A-E", Description: "Answer"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "End shift"},
	}
}

func (s *ShiftScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case shiftStartedMsg:
		return s.handleStarted(msg)
	case timerTickMsg:
		return s.handleTick()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// startShift begins the shift. The orchestrator deals the first case
// synchronously, so by the time the message arrives the sink has already
// populated the screen.
func (s *ShiftScreen) startShift() tea.Cmd {
	return func() tea.Msg {
		return shiftStartedMsg{Err: s.orch.StartShift(s.cfg)}
	}
}

func (s *ShiftScreen) handleStarted(msg shiftStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.started = true
	if s.ended {
		return s, s.finish()
	}
	return s, tickCmd()
}

func (s *ShiftScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.ended || s.errMsg != "" {
		return s, nil
	}

	// A paused countdown ignores the tick but the cadence keeps going so
	// resuming needs no re-arm.
	s.timer.Tick(time.Second)

	if s.ended {
		return s, s.finish()
	}
	return s, tickCmd()
}

func (s *ShiftScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if !s.started || s.ended {
		return s, nil
	}

	// Quit confirmation dialog.
	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			s.orch.EndShift()
			return s, s.finish()
		case "n", "N", "esc":
			s.showingQuitConfirm = false
			s.orch.ResumeShift()
		}
		return s, nil
	}

	// Feedback overlay: any key moves to the next patient.
	if s.showingFeedback {
		s.showingFeedback = false
		s.orch.AdvanceToNextCase()
		if s.ended {
			return s, s.finish()
		}
		return s, nil
	}

	if key == "esc" {
		s.showingQuitConfirm = true
		s.orch.PauseShift()
		return s, nil
	}

	// Forward everything else to the choice selector.
	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	if s.choices.Submitted {
		s.submitAnswer()
	}
	return s, cmd
}

// submitAnswer scores the selected choice.
func (s *ShiftScreen) submitAnswer() {
	if s.current == nil || s.choices.ChosenIndex < 0 {
		return
	}

	chosen := s.current.Choices[s.choices.ChosenIndex].ID
	if _, err := s.orch.SubmitAnswer(chosen); err != nil {
		s.errMsg = err.Error()
		return
	}
	// lastChosen and lastCorrect were set by the AnswerScored callback.
	s.showingFeedback = true
}

// finish hands the stack position over to the summary screen.
func (s *ShiftScreen) finish() tea.Cmd {
	stats := s.finalStats
	duration := s.timer.Total()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(stats, duration)}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// EventSink implementation. The orchestrator is only ever called from this
// screen's handlers, so these run on the event loop goroutine.

func (s *ShiftScreen) ShiftStarted(_ string, caseCount int, duration time.Duration) {
	s.caseCount = caseCount
	s.remaining = duration
}

func (s *ShiftScreen) CaseReady(_ string, index int, record caserecord.CaseRecord) {
	s.current = &record
	s.caseIndex = index

	opts := make([]components.Option, len(record.Choices))
	correctIdx := 0
	for i, ch := range record.Choices {
		opts[i] = components.Option{Label: string(ch.ID), Text: ch.Text}
		if ch.Correct {
			correctIdx = i
		}
	}
	s.choices = components.NewMultiChoice(opts, correctIdx)
}

func (s *ShiftScreen) AnswerScored(_ string, _ caserecord.CaseRecord, chosen caserecord.ChoiceID, correct bool, stats shiftsvc.Statistics) {
	s.lastChosen = chosen
	s.lastCorrect = correct
	s.stats = stats
}

func (s *ShiftScreen) TimeUpdated(remaining time.Duration) {
	s.remaining = remaining
}

func (s *ShiftScreen) ShiftEnded(_ string, stats shiftsvc.Statistics) {
	s.ended = true
	s.finalStats = stats
}

// Treated returns running counters for the header.
func (s *ShiftScreen) Treated() (treated, correct int) {
	if s.ended {
		return s.finalStats.PatientsTreated, s.finalStats.CorrectDiagnoses
	}
	return s.stats.PatientsTreated, s.stats.CorrectDiagnoses
}
