package store

import (
	"context"
	"time"
)

// Shift event actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the career aggregates at a point in time.
type SnapshotData struct {
	Version          int `json:"version"`
	ShiftsCompleted  int `json:"shifts_completed"`
	PatientsTreated  int `json:"patients_treated"`
	CorrectDiagnoses int `json:"correct_diagnoses"`
}

// Snapshot represents a point-in-time capture of career state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages career state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// ShiftEventData captures a shift lifecycle event.
type ShiftEventData struct {
	ShiftID          string
	Action           string // ActionStart or ActionEnd
	CaseCount        int
	PatientsTreated  int
	CorrectDiagnoses int
	DurationSecs     int
	RemainingSecs    int
}

// AnswerEventData captures one answered case.
type AnswerEventData struct {
	ShiftID       string
	CaseID        string
	Specialty     string
	Difficulty    int
	Question      string
	ChosenChoice  string
	CorrectChoice string
	Correct       bool
	TimeMs        int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is one logged LLM call, as read back from the event log.
type LLMEventRecord struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// ShiftSummary is one completed shift, as read back from the event log.
type ShiftSummary struct {
	ShiftID          string
	Timestamp        time.Time
	PatientsTreated  int
	CorrectDiagnoses int
	Accuracy         float64
	DurationSecs     int
}

// SpecialtyStats aggregates answers within one specialty.
type SpecialtyStats struct {
	Treated  int
	Correct  int
	Accuracy float64
}

// CareerStats aggregates the whole event log.
type CareerStats struct {
	ShiftsCompleted  int
	PatientsTreated  int
	CorrectDiagnoses int
	Accuracy         float64
	BySpecialty      map[string]SpecialtyStats
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendShiftEvent records a shift start or end.
	AppendShiftEvent(ctx context.Context, data ShiftEventData) error

	// AppendAnswerEvent records one answered case.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentShifts returns the most recent completed shifts, newest first.
	RecentShifts(ctx context.Context, limit int) ([]ShiftSummary, error)

	// SpecialtyAccuracy returns the historical accuracy for a specialty,
	// or 0 when no cases of that specialty have been answered.
	SpecialtyAccuracy(ctx context.Context, specialty string) (float64, error)

	// RecentCaseQuestions returns the lead-in questions answered most
	// recently, newest first. Used to steer drafting away from repeats.
	RecentCaseQuestions(ctx context.Context, limit int) ([]string, error)

	// CareerStats aggregates every completed shift and answered case.
	CareerStats(ctx context.Context) (CareerStats, error)

	// RecentLLMEvents returns the most recent LLM calls, newest first.
	RecentLLMEvents(ctx context.Context, limit int) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM call by ID, or nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)
}
