package countdown

import (
	"errors"
	"testing"
	"time"
)

func TestStart_InvalidDuration(t *testing.T) {
	tm := New()

	if err := tm.Start(0); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("Start(0) = %v, want ErrInvalidDuration", err)
	}
	if err := tm.Start(-5 * time.Second); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("Start(-5s) = %v, want ErrInvalidDuration", err)
	}
	if tm.State() != StateIdle {
		t.Errorf("state = %v, want idle after failed starts", tm.State())
	}
}

func TestStart_SetsRunning(t *testing.T) {
	tm := New()
	if err := tm.Start(2 * time.Minute); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if tm.State() != StateRunning {
		t.Errorf("state = %v, want running", tm.State())
	}
	if tm.Remaining() != 2*time.Minute {
		t.Errorf("remaining = %v, want 2m", tm.Remaining())
	}
	if tm.Total() != 2*time.Minute {
		t.Errorf("total = %v, want 2m", tm.Total())
	}
}

func TestStart_WhileRunningRestarts(t *testing.T) {
	tm := New()
	if err := tm.Start(time.Minute); err != nil {
		t.Fatalf("first start: %v", err)
	}
	tm.Tick(30 * time.Second)

	if err := tm.Start(2 * time.Minute); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if tm.Remaining() != 2*time.Minute {
		t.Errorf("remaining = %v, want fresh 2m", tm.Remaining())
	}
}

func TestTick_NeverNegative(t *testing.T) {
	tm := New()
	tm.Start(3 * time.Second)

	for i := 0; i < 10; i++ {
		tm.Tick(time.Second)
		if tm.Remaining() < 0 {
			t.Fatalf("remaining went negative: %v", tm.Remaining())
		}
	}
	if tm.Remaining() != 0 {
		t.Errorf("remaining = %v, want 0", tm.Remaining())
	}
}

func TestExpiry_FiresExactlyOnce(t *testing.T) {
	tm := New()
	expiries := 0
	tm.OnExpire = func() { expiries++ }

	tm.Start(125 * time.Second)
	for i := 0; i < 125; i++ {
		tm.Tick(time.Second)
	}

	if tm.Remaining() != 0 {
		t.Errorf("remaining = %v, want 0 after 125 ticks", tm.Remaining())
	}
	if expiries != 1 {
		t.Errorf("expiry fired %d times, want 1", expiries)
	}

	// Ticks after expiry do nothing.
	tm.Tick(time.Second)
	if expiries != 1 {
		t.Errorf("expiry fired %d times after extra tick, want 1", expiries)
	}
	if tm.State() != StateExpired {
		t.Errorf("state = %v, want expired", tm.State())
	}
}

func TestPauseResume(t *testing.T) {
	tm := New()
	tm.Start(time.Minute)
	tm.Tick(10 * time.Second)

	tm.Pause()
	if tm.State() != StatePaused {
		t.Fatalf("state = %v, want paused", tm.State())
	}
	if !tm.Running() {
		t.Error("paused timer should still report Running")
	}

	// Ticks while paused are ignored.
	tm.Tick(20 * time.Second)
	if got := tm.Remaining(); got != 50*time.Second {
		t.Errorf("remaining = %v, want 50s (paused holds)", got)
	}

	tm.Resume()
	tm.Tick(5 * time.Second)
	if got := tm.Remaining(); got != 45*time.Second {
		t.Errorf("remaining = %v, want 45s after resume", got)
	}
}

func TestPauseResume_NoOpOutsideState(t *testing.T) {
	tm := New()

	tm.Pause() // idle: no-op
	if tm.State() != StateIdle {
		t.Errorf("state = %v, want idle", tm.State())
	}

	tm.Start(time.Minute)
	tm.Resume() // running, not paused: no-op
	if tm.State() != StateRunning {
		t.Errorf("state = %v, want running", tm.State())
	}
}

func TestStop(t *testing.T) {
	tm := New()
	expiries := 0
	tm.OnExpire = func() { expiries++ }

	tm.Start(time.Minute)
	tm.Stop()

	if tm.State() != StateIdle {
		t.Errorf("state = %v, want idle", tm.State())
	}
	if expiries != 0 {
		t.Error("stop must not fire expiry")
	}
}

func TestAddTime_ClampedToTotal(t *testing.T) {
	tm := New()
	tm.Start(time.Minute)
	tm.Tick(20 * time.Second)

	if err := tm.AddTime(45 * time.Second); err != nil {
		t.Fatalf("AddTime: %v", err)
	}
	if got := tm.Remaining(); got != time.Minute {
		t.Errorf("remaining = %v, want clamped to 1m", got)
	}
}

func TestAddTime_InvalidAmount(t *testing.T) {
	tm := New()
	tm.Start(time.Minute)

	if err := tm.AddTime(0); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("AddTime(0) = %v, want ErrInvalidAmount", err)
	}
}

func TestAddTime_IgnoredWhenIdle(t *testing.T) {
	tm := New()

	if err := tm.AddTime(time.Second); err != nil {
		t.Errorf("AddTime while idle = %v, want nil (warned no-op)", err)
	}
	if tm.Remaining() != 0 {
		t.Errorf("remaining = %v, want 0", tm.Remaining())
	}
}

func TestSubtractTime_ExpiresAtZero(t *testing.T) {
	tm := New()
	expiries := 0
	tm.OnExpire = func() { expiries++ }

	tm.Start(30 * time.Second)
	if err := tm.SubtractTime(time.Minute); err != nil {
		t.Fatalf("SubtractTime: %v", err)
	}

	if tm.Remaining() != 0 {
		t.Errorf("remaining = %v, want 0", tm.Remaining())
	}
	if expiries != 1 {
		t.Errorf("expiry fired %d times, want 1", expiries)
	}
}

func TestOnUpdate_ReportsRemaining(t *testing.T) {
	tm := New()
	var updates []time.Duration
	tm.OnUpdate = func(r time.Duration) { updates = append(updates, r) }

	tm.Start(3 * time.Second)
	tm.Tick(time.Second)
	tm.Tick(time.Second)

	want := []time.Duration{3 * time.Second, 2 * time.Second, time.Second}
	if len(updates) != len(want) {
		t.Fatalf("got %d updates, want %d", len(updates), len(want))
	}
	for i := range want {
		if updates[i] != want[i] {
			t.Errorf("updates[%d] = %v, want %v", i, updates[i], want[i])
		}
	}
}

func TestProgressAndThresholds(t *testing.T) {
	tm := New()
	tm.Start(100 * time.Second)

	if got := tm.ProgressFraction(); got != 0 {
		t.Errorf("progress = %v, want 0", got)
	}
	if tm.InWarning() || tm.InCritical() {
		t.Error("fresh timer should not be in warning or critical")
	}

	tm.Tick(75 * time.Second) // 25s remaining
	if !tm.InWarning() {
		t.Error("expected warning at 25% remaining")
	}
	if tm.InCritical() {
		t.Error("not yet critical at 25% remaining")
	}
	if got := tm.ProgressFraction(); got != 0.75 {
		t.Errorf("progress = %v, want 0.75", got)
	}

	tm.Tick(15 * time.Second) // 10s remaining
	if !tm.InCritical() {
		t.Error("expected critical at 10% remaining")
	}
}
