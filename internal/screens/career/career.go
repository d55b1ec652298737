package career

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/blackstar-game/blackstar/internal/router"
	"github.com/blackstar-game/blackstar/internal/screen"
	"github.com/blackstar-game/blackstar/internal/store"
	"github.com/blackstar-game/blackstar/internal/ui/layout"
	"github.com/blackstar-game/blackstar/internal/ui/theme"
)

// recentShiftLimit caps the shift list; older shifts stay in the log.
const recentShiftLimit = 20

type careerLoadedMsg struct {
	Stats  store.CareerStats
	Shifts []store.ShiftSummary
	Err    error
}

// CareerScreen displays lifetime stats and recent shifts from the event log.
type CareerScreen struct {
	eventRepo store.EventRepo
	stats     store.CareerStats
	shifts    []store.ShiftSummary
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*CareerScreen)(nil)
var _ screen.KeyHintProvider = (*CareerScreen)(nil)

// New creates a new CareerScreen.
func New(eventRepo store.EventRepo) *CareerScreen {
	return &CareerScreen{eventRepo: eventRepo}
}

func (s *CareerScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		stats, err := s.eventRepo.CareerStats(ctx)
		if err != nil {
			return careerLoadedMsg{Err: err}
		}
		shifts, err := s.eventRepo.RecentShifts(ctx, recentShiftLimit)
		if err != nil {
			return careerLoadedMsg{Stats: stats}
		}
		return careerLoadedMsg{Stats: stats, Shifts: shifts}
	}
}

func (s *CareerScreen) Title() string {
	return "Career"
}

func (s *CareerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CareerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case careerLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.stats = msg.Stats
			s.shifts = msg.Shifts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.shifts)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *CareerScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Pulling your record...")
	}
	if s.stats.ShiftsCompleted == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No shifts on record yet. The board is waiting.")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Lifetime totals.
	totals := fmt.Sprintf("Shifts: %d    Patients: %d    Correct: %d    Accuracy: %.0f%%",
		s.stats.ShiftsCompleted, s.stats.PatientsTreated,
		s.stats.CorrectDiagnoses, s.stats.Accuracy*100)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(totals)))
	b.WriteString("\n\n")

	// Per-specialty breakdown, weakest first.
	if len(s.stats.BySpecialty) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("By specialty")))
		b.WriteString("\n")

		for _, name := range sortedSpecialties(s.stats.BySpecialty) {
			st := s.stats.BySpecialty[name]
			line := fmt.Sprintf("%-20s  %3d treated   %.0f%%",
				strings.ReplaceAll(name, "_", " "), st.Treated, st.Accuracy*100)

			style := lipgloss.NewStyle().Foreground(theme.Text)
			if st.Accuracy < 0.6 {
				style = style.Foreground(theme.Accent)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Recent shifts.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Recent shifts")))
	b.WriteString("\n")

	for i, sh := range s.shifts {
		dateStr := sh.Timestamp.Format("Jan 02, 2006")
		mins := sh.DurationSecs / 60
		secs := sh.DurationSecs % 60

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %d:%02d  %d patients  %.0f%% accuracy",
			prefix, dateStr, mins, secs, sh.PatientsTreated, sh.Accuracy*100)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// sortedSpecialties orders specialties by ascending accuracy so weak spots
// sit at the top.
func sortedSpecialties(m map[string]store.SpecialtyStats) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := m[names[i]], m[names[j]]
		if a.Accuracy != b.Accuracy {
			return a.Accuracy < b.Accuracy
		}
		return names[i] < names[j]
	})
	return names
}
