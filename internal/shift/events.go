package shift

import (
	"time"

	"github.com/blackstar-game/blackstar/internal/caserecord"
)

// EventSink receives lifecycle notifications from the orchestrator. The TUI
// renders from them and the store persists them; the orchestrator itself
// never touches either directly.
type EventSink interface {
	// ShiftStarted fires once per shift, before the first case is dealt.
	ShiftStarted(shiftID string, caseCount int, duration time.Duration)

	// CaseReady fires when a case becomes the active one. index counts
	// from zero within the shift.
	CaseReady(shiftID string, index int, record caserecord.CaseRecord)

	// AnswerScored fires after each submitted answer with the running
	// statistics. It does not imply the shift advanced.
	AnswerScored(shiftID string, record caserecord.CaseRecord, chosen caserecord.ChoiceID, correct bool, stats Statistics)

	// TimeUpdated fires whenever the countdown's remaining time changes.
	TimeUpdated(remaining time.Duration)

	// ShiftEnded fires exactly once per shift with the final statistics.
	ShiftEnded(shiftID string, stats Statistics)
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) ShiftStarted(string, int, time.Duration)                                           {}
func (NopSink) CaseReady(string, int, caserecord.CaseRecord)                                      {}
func (NopSink) AnswerScored(string, caserecord.CaseRecord, caserecord.ChoiceID, bool, Statistics) {}
func (NopSink) TimeUpdated(time.Duration)                                                         {}
func (NopSink) ShiftEnded(string, Statistics)                                                     {}

// MultiSink fans every event out to each sink in order.
type MultiSink []EventSink

func (m MultiSink) ShiftStarted(shiftID string, caseCount int, duration time.Duration) {
	for _, s := range m {
		s.ShiftStarted(shiftID, caseCount, duration)
	}
}

func (m MultiSink) CaseReady(shiftID string, index int, record caserecord.CaseRecord) {
	for _, s := range m {
		s.CaseReady(shiftID, index, record)
	}
}

func (m MultiSink) AnswerScored(shiftID string, record caserecord.CaseRecord, chosen caserecord.ChoiceID, correct bool, stats Statistics) {
	for _, s := range m {
		s.AnswerScored(shiftID, record, chosen, correct, stats)
	}
}

func (m MultiSink) TimeUpdated(remaining time.Duration) {
	for _, s := range m {
		s.TimeUpdated(remaining)
	}
}

func (m MultiSink) ShiftEnded(shiftID string, stats Statistics) {
	for _, s := range m {
		s.ShiftEnded(shiftID, stats)
	}
}
