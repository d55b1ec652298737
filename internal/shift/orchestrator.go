// Package shift runs a single emergency-department shift: it deals cases
// from the queue, scores answers against the one correct choice, and ends
// the shift when the caseload is treated, the queue runs dry, or the
// countdown expires.
package shift

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blackstar-game/blackstar/internal/caserecord"
	"github.com/blackstar-game/blackstar/internal/countdown"
)

var (
	// ErrAlreadyActive is returned by StartShift while a shift is running.
	ErrAlreadyActive = errors.New("shift: a shift is already active")

	// ErrNoActiveShift is returned by operations that need a running shift.
	ErrNoActiveShift = errors.New("shift: no active shift")

	// ErrNoActiveCase is returned by SubmitAnswer between cases, including
	// after the current case has already been answered.
	ErrNoActiveCase = errors.New("shift: no active case")

	// ErrUnknownChoice is returned when the submitted choice ID does not
	// belong to the current case.
	ErrUnknownChoice = errors.New("shift: choice not in current case")

	// ErrInvalidConfig is returned by StartShift for a non-positive
	// duration or case count.
	ErrInvalidConfig = errors.New("shift: invalid config")
)

// Default shift parameters, applied when Config fields are zero.
const (
	DefaultDuration  = 8 * time.Minute
	DefaultCaseCount = 10
)

// Config sets the parameters of one shift.
type Config struct {
	// Duration is the length of the countdown. Zero means DefaultDuration.
	Duration time.Duration

	// CaseCount is the number of patients on the shift. Zero means
	// DefaultCaseCount.
	CaseCount int
}

func (c Config) withDefaults() Config {
	if c.Duration == 0 {
		c.Duration = DefaultDuration
	}
	if c.CaseCount == 0 {
		c.CaseCount = DefaultCaseCount
	}
	return c
}

func (c Config) validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration %v", ErrInvalidConfig, c.Duration)
	}
	if c.CaseCount <= 0 {
		return fmt.Errorf("%w: case count %d", ErrInvalidConfig, c.CaseCount)
	}
	return nil
}

// Statistics is a snapshot of shift performance.
type Statistics struct {
	PatientsTreated  int
	CorrectDiagnoses int

	// Accuracy is CorrectDiagnoses/PatientsTreated, or 0 before any
	// patient has been treated.
	Accuracy float64

	TimeRemaining time.Duration
	Active        bool
}

// QueueProvider supplies the validated case queue for a shift.
type QueueProvider interface {
	LoadQueue(count int) ([]caserecord.CaseRecord, error)
}

// Orchestrator drives one shift at a time. It is not safe for concurrent
// use; all calls must come from the host's single event loop.
type Orchestrator struct {
	provider QueueProvider
	timer    *countdown.Timer
	sink     EventSink

	shiftID string
	cfg     Config
	queue   []caserecord.CaseRecord

	// currentIndex is -1 before the first case is dealt.
	currentIndex int
	caseActive   bool
	active       bool

	patientsTreated  int
	correctDiagnoses int
}

// New creates an orchestrator over the given queue provider, timer, and
// sink. A nil sink discards events. The timer's callbacks are claimed by
// the orchestrator: expiry ends the shift, updates flow to the sink.
func New(provider QueueProvider, timer *countdown.Timer, sink EventSink) *Orchestrator {
	if sink == nil {
		sink = NopSink{}
	}
	o := &Orchestrator{
		provider:     provider,
		timer:        timer,
		sink:         sink,
		currentIndex: -1,
	}
	timer.OnUpdate = func(remaining time.Duration) {
		o.sink.TimeUpdated(remaining)
	}
	timer.OnExpire = func() {
		o.EndShift()
	}
	return o
}

// StartShift begins a new shift with cfg, dealing the first case. Only one
// shift may be active at a time.
func (o *Orchestrator) StartShift(cfg Config) error {
	if o.active {
		return ErrAlreadyActive
	}

	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return err
	}

	queue, err := o.provider.LoadQueue(cfg.CaseCount)
	if err != nil {
		return fmt.Errorf("load case queue: %w", err)
	}

	o.shiftID = uuid.New().String()
	o.cfg = cfg
	o.queue = queue
	o.currentIndex = -1
	o.caseActive = false
	o.patientsTreated = 0
	o.correctDiagnoses = 0
	o.active = true

	o.sink.ShiftStarted(o.shiftID, cfg.CaseCount, cfg.Duration)

	if err := o.timer.Start(cfg.Duration); err != nil {
		o.active = false
		return err
	}

	return o.AdvanceToNextCase()
}

// CurrentCase returns the case awaiting an answer.
func (o *Orchestrator) CurrentCase() (*caserecord.CaseRecord, error) {
	if !o.active {
		return nil, ErrNoActiveShift
	}
	if !o.caseActive {
		return nil, ErrNoActiveCase
	}
	return &o.queue[o.currentIndex], nil
}

// SubmitAnswer scores chosen against the current case's correct choice and
// updates the running statistics. The shift does not advance; the caller
// decides when to move on, typically after showing feedback.
func (o *Orchestrator) SubmitAnswer(chosen caserecord.ChoiceID) (bool, error) {
	if !o.active {
		return false, ErrNoActiveShift
	}
	if !o.caseActive {
		return false, ErrNoActiveCase
	}

	record := o.queue[o.currentIndex]
	known := false
	for _, ch := range record.Choices {
		if ch.ID == chosen {
			known = true
			break
		}
	}
	if !known {
		return false, fmt.Errorf("%w: %s", ErrUnknownChoice, chosen)
	}

	correctChoice, ok := record.CorrectChoice()
	correct := ok && chosen == correctChoice.ID

	o.patientsTreated++
	if correct {
		o.correctDiagnoses++
	}
	o.caseActive = false

	o.sink.AnswerScored(o.shiftID, record, chosen, correct, o.Statistics())
	return correct, nil
}

// AdvanceToNextCase deals the next case, or ends the shift when the
// caseload is complete, the queue is exhausted, or the countdown expired.
func (o *Orchestrator) AdvanceToNextCase() error {
	if !o.active {
		return ErrNoActiveShift
	}

	if o.patientsTreated >= o.cfg.CaseCount ||
		o.currentIndex+1 >= len(o.queue) ||
		o.timer.State() == countdown.StateExpired {
		return o.EndShift()
	}

	o.currentIndex++
	o.caseActive = true
	o.sink.CaseReady(o.shiftID, o.currentIndex, o.queue[o.currentIndex])
	return nil
}

// EndShift finishes the active shift, stopping the countdown and emitting
// the final statistics. Ending an inactive shift is a no-op.
func (o *Orchestrator) EndShift() error {
	if !o.active {
		return nil
	}

	o.active = false
	o.caseActive = false
	stats := o.Statistics()
	o.timer.Stop()

	o.sink.ShiftEnded(o.shiftID, stats)
	return nil
}

// PauseShift suspends the countdown.
func (o *Orchestrator) PauseShift() error {
	if !o.active {
		return ErrNoActiveShift
	}
	o.timer.Pause()
	return nil
}

// ResumeShift continues a paused countdown.
func (o *Orchestrator) ResumeShift() error {
	if !o.active {
		return ErrNoActiveShift
	}
	o.timer.Resume()
	return nil
}

// Active reports whether a shift is in progress.
func (o *Orchestrator) Active() bool { return o.active }

// ShiftID returns the identifier of the current or most recent shift.
func (o *Orchestrator) ShiftID() string { return o.shiftID }

// Statistics returns a snapshot of the running (or final) shift stats.
func (o *Orchestrator) Statistics() Statistics {
	stats := Statistics{
		PatientsTreated:  o.patientsTreated,
		CorrectDiagnoses: o.correctDiagnoses,
		TimeRemaining:    o.timer.Remaining(),
		Active:           o.active,
	}
	if o.patientsTreated > 0 {
		stats.Accuracy = float64(o.correctDiagnoses) / float64(o.patientsTreated)
	}
	return stats
}
