package summary

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/blackstar-game/blackstar/internal/router"
	"github.com/blackstar-game/blackstar/internal/screen"
	"github.com/blackstar-game/blackstar/internal/shift"
	"github.com/blackstar-game/blackstar/internal/ui/layout"
	"github.com/blackstar-game/blackstar/internal/ui/theme"
)

// SummaryScreen displays the end-of-shift report.
type SummaryScreen struct {
	stats    shift.Statistics
	duration time.Duration
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen from the final statistics and the duration
// the shift was scheduled for.
func New(stats shift.Statistics, duration time.Duration) *SummaryScreen {
	return &SummaryScreen{stats: stats, duration: duration}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Shift Report"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to the board"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Shift complete!"))
	b.WriteString("\n\n")

	worked := s.duration - s.stats.TimeRemaining
	if worked < 0 {
		worked = 0
	}
	mins := int(worked.Minutes())
	secs := int(worked.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Time on the floor: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Patients treated: %d        Correct diagnoses: %d        Accuracy: %.0f%%",
		s.stats.PatientsTreated, s.stats.CorrectDiagnoses, s.stats.Accuracy*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	rating, style := performanceRating(s.stats)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(style).
		Bold(true).
		Render(rating))
	b.WriteString("\n")

	return b.String()
}

// performanceRating maps the shift outcome to an attending's verdict.
func performanceRating(stats shift.Statistics) (string, color.Color) {
	if stats.PatientsTreated == 0 {
		return "No patients seen. The waiting room noticed.", theme.TextDim
	}
	switch {
	case stats.Accuracy >= 0.9:
		return "Outstanding. The attending is impressed.", theme.Success
	case stats.Accuracy >= 0.7:
		return "Solid shift. Keep reading.", theme.Primary
	case stats.Accuracy >= 0.5:
		return "Rough night. Review the cases you missed.", theme.Accent
	default:
		return "The attending wants a word.", theme.Error
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
