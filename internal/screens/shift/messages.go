package shift

import "time"

// shiftStartedMsg is sent when the orchestrator has started (or failed to
// start) the shift.
type shiftStartedMsg struct {
	Err error
}

// timerTickMsg is sent every second to advance the countdown.
type timerTickMsg time.Time
