// Package countdown implements the restartable shift countdown.
//
// The timer does not schedule itself: the host loop (the Bubble Tea tick
// in the TUI, or a test) calls Tick with the elapsed interval. Any tick
// cadence at or below one second preserves the timer's guarantees.
package countdown

import (
	"errors"
	"fmt"
	"os"
	"time"
)

var (
	// ErrInvalidDuration is returned by Start for non-positive durations.
	ErrInvalidDuration = errors.New("countdown: duration must be positive")

	// ErrInvalidAmount is returned by AddTime and SubtractTime for
	// non-positive amounts.
	ErrInvalidAmount = errors.New("countdown: amount must be positive")
)

// State is the timer's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateExpired:
		return "expired"
	default:
		return "idle"
	}
}

// Warning thresholds, as fractions of the total duration remaining.
const (
	WarningFraction  = 0.25
	CriticalFraction = 0.10
)

// Timer is a restartable countdown with pause/resume. It is not safe for
// concurrent use; all calls must come from the host's single event loop.
type Timer struct {
	// OnUpdate, when set, is called after every change to the remaining
	// time with the new value.
	OnUpdate func(remaining time.Duration)

	// OnExpire, when set, is called exactly once per run when the
	// countdown reaches zero.
	OnExpire func()

	total     time.Duration
	remaining time.Duration
	state     State
}

// New creates an idle timer.
func New() *Timer {
	return &Timer{}
}

// Start begins a fresh countdown of d. If the timer is already running or
// paused it is implicitly stopped first; that is logged, not fatal.
func (t *Timer) Start(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, d)
	}

	if t.state == StateRunning || t.state == StatePaused {
		fmt.Fprintln(os.Stderr, "warning: countdown started while running; restarting")
		t.Stop()
	}

	t.total = d
	t.remaining = d
	t.state = StateRunning
	t.notify()
	return nil
}

// Pause suspends the countdown. No-op unless the timer is running.
func (t *Timer) Pause() {
	if t.state == StateRunning {
		t.state = StatePaused
	}
}

// Resume continues a paused countdown. No-op unless the timer is paused.
func (t *Timer) Resume() {
	if t.state == StatePaused {
		t.state = StateRunning
	}
}

// Stop returns the timer to idle unconditionally. No expiry fires.
func (t *Timer) Stop() {
	t.state = StateIdle
}

// Tick advances the countdown by the elapsed interval. Ticks are ignored
// unless the timer is running; a paused timer holds its remaining time.
func (t *Timer) Tick(elapsed time.Duration) {
	if t.state != StateRunning || elapsed <= 0 {
		return
	}

	t.remaining -= elapsed
	if t.remaining <= 0 {
		t.remaining = 0
		t.notify()
		t.expire()
		return
	}
	t.notify()
}

// AddTime extends the remaining time, clamped to the original duration.
// Ignored with a warning when the timer is not counting down.
func (t *Timer) AddTime(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, d)
	}
	if t.state != StateRunning && t.state != StatePaused {
		fmt.Fprintln(os.Stderr, "warning: countdown AddTime ignored; timer not running")
		return nil
	}

	t.remaining += d
	if t.remaining > t.total {
		t.remaining = t.total
	}
	t.notify()
	return nil
}

// SubtractTime shortens the remaining time, clamped to zero. Reaching zero
// expires the timer immediately, same as a natural countdown to zero.
func (t *Timer) SubtractTime(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, d)
	}
	if t.state != StateRunning && t.state != StatePaused {
		fmt.Fprintln(os.Stderr, "warning: countdown SubtractTime ignored; timer not running")
		return nil
	}

	t.remaining -= d
	if t.remaining <= 0 {
		t.remaining = 0
		t.notify()
		t.expire()
		return nil
	}
	t.notify()
	return nil
}

// State returns the current lifecycle state.
func (t *Timer) State() State { return t.state }

// Running reports whether a countdown is in progress, paused or not.
func (t *Timer) Running() bool {
	return t.state == StateRunning || t.state == StatePaused
}

// Remaining returns the time left on the countdown.
func (t *Timer) Remaining() time.Duration { return t.remaining }

// Total returns the duration the countdown was started with.
func (t *Timer) Total() time.Duration { return t.total }

// ProgressFraction returns elapsed progress in [0, 1].
func (t *Timer) ProgressFraction() float64 {
	if t.total <= 0 {
		return 0
	}
	return float64(t.total-t.remaining) / float64(t.total)
}

// InWarning reports whether 25% or less of the duration remains.
func (t *Timer) InWarning() bool {
	return t.thresholdReached(WarningFraction)
}

// InCritical reports whether 10% or less of the duration remains.
func (t *Timer) InCritical() bool {
	return t.thresholdReached(CriticalFraction)
}

func (t *Timer) thresholdReached(fraction float64) bool {
	if t.total <= 0 || !t.Running() {
		return false
	}
	return float64(t.remaining) <= fraction*float64(t.total)
}

// expire transitions to Expired and fires OnExpire once per run.
func (t *Timer) expire() {
	if t.state == StateExpired {
		return
	}
	t.state = StateExpired
	if t.OnExpire != nil {
		t.OnExpire()
	}
}

func (t *Timer) notify() {
	if t.OnUpdate != nil {
		t.OnUpdate(t.remaining)
	}
}
