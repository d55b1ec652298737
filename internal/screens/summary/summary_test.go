package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/blackstar-game/blackstar/internal/router"
	"github.com/blackstar-game/blackstar/internal/shift"
)

func testStats() shift.Statistics {
	return shift.Statistics{
		PatientsTreated:  9,
		CorrectDiagnoses: 7,
		Accuracy:         float64(7) / float64(9),
		TimeRemaining:    90 * time.Second,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testStats(), 8*time.Minute)
	if s.Title() != "Shift Report" {
		t.Errorf("Title = %q, want %q", s.Title(), "Shift Report")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testStats(), 8*time.Minute)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "Patients treated: 9") {
		t.Errorf("view missing patient count:\n%s", view)
	}
	// 8:00 scheduled minus 1:30 remaining.
	if !strings.Contains(view, "6:30") {
		t.Errorf("view missing time on the floor:\n%s", view)
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testStats(), 8*time.Minute)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter (pop)")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on Enter")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testStats(), 8*time.Minute)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc (pop)")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on Esc")
	}
}

func TestSummaryScreen_Rating(t *testing.T) {
	tests := []struct {
		name  string
		stats shift.Statistics
		want  string
	}{
		{"no patients", shift.Statistics{}, "No patients seen"},
		{"outstanding", shift.Statistics{PatientsTreated: 10, CorrectDiagnoses: 9, Accuracy: 0.9}, "Outstanding"},
		{"solid", shift.Statistics{PatientsTreated: 10, CorrectDiagnoses: 7, Accuracy: 0.7}, "Solid shift"},
		{"rough", shift.Statistics{PatientsTreated: 10, CorrectDiagnoses: 5, Accuracy: 0.5}, "Rough night"},
		{"poor", shift.Statistics{PatientsTreated: 10, CorrectDiagnoses: 2, Accuracy: 0.2}, "wants a word"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := performanceRating(tt.stats)
			if !strings.Contains(got, tt.want) {
				t.Errorf("performanceRating = %q, want substring %q", got, tt.want)
			}
		})
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testStats(), 8*time.Minute)
	if len(s.KeyHints()) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(s.KeyHints()))
	}
}
