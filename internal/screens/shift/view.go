package shift

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/blackstar-game/blackstar/internal/ui/components"
	"github.com/blackstar-game/blackstar/internal/ui/theme"
)

func (s *ShiftScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if !s.started || s.current == nil {
		return renderLoading(width)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}
	return s.renderCaseView(width)
}

// renderCaseView renders the active patient: status line, countdown bar,
// vignette, and choices.
func (s *ShiftScreen) renderCaseView(width int) string {
	rec := s.current
	var b strings.Builder

	// Status line: patient counter left, score and clock right.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Patient %d/%d  %s", s.caseIndex+1, s.caseCount, specialtyLabel(string(rec.Specialty))))

	timerStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.timer.InCritical() {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	} else if s.timer.InWarning() {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	}

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d/%d  ",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.stats.CorrectDiagnoses,
			s.stats.PatientsTreated,
		)) + timerStyle.Render(formatClock(s.remaining))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")

	// Countdown bar, shifting color as time drains.
	bar := components.NewProgressBar("", 1-s.timer.ProgressFraction(), false, width-6)
	if s.timer.InCritical() {
		bar.Fill = theme.ProgressCritical
	} else if s.timer.InWarning() {
		bar.Fill = theme.ProgressWarning
	}
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	// Vignette.
	vignetteWidth := min(width-8, 76)
	vignette := rec.Vignette.Demographics + " " + rec.Vignette.Presentation
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(vignetteWidth).Foreground(theme.Text).Render(vignette)))
	b.WriteString("\n\n")

	// Vitals and labs.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(vignetteWidth).Foreground(theme.Secondary).Render(formatVitals(rec.Vignette.Vitals))))
	b.WriteString("\n")
	if rec.Vignette.Labs != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(vignetteWidth).Foreground(theme.TextDim).Render("Labs: "+rec.Vignette.Labs)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Lead-in question.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(rec.Question))
	b.WriteString("\n\n")

	// Choices.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))

	hint := fmt.Sprintf("\nSelect (A-%s) or use arrows + Enter",
		rec.Choices[len(rec.Choices)-1].ID)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(hint))

	return b.String()
}

// renderFeedback renders the post-answer overlay: verdict, the colored
// choice list, and the teaching explanation.
func (s *ShiftScreen) renderFeedback(width int) string {
	rec := s.current
	var b strings.Builder
	b.WriteString("\n")

	if s.lastCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))
	b.WriteString("\n")

	expWidth := min(width-8, 70)
	expStyle := lipgloss.NewStyle().Width(expWidth).Foreground(theme.Text)

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		expStyle.Render(rec.Explanation.Correct)))
	b.WriteString("\n\n")

	// Why the chosen distractor was wrong, when the record explains it.
	if !s.lastCorrect {
		if why, ok := rec.Explanation.Distractors[s.lastChosen]; ok {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Width(expWidth).Foreground(theme.TextDim).
					Render(fmt.Sprintf("Your answer (%s): %s", s.lastChosen, why))))
			b.WriteString("\n\n")
		}
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(expWidth).Foreground(theme.Accent).Italic(true).
			Render("Concept: "+rec.Explanation.Concepts)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key for the next patient..."))

	return b.String()
}

// renderQuitConfirm renders the end-shift confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Clock out early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("The clock is paused. Treated patients are already on your record."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end the shift"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, back to the patient"))

	return b.String()
}

// renderLoading renders the pre-shift state.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Clocking in...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

// vitalOrder fixes the display order of the required vitals; extras follow
// alphabetically.
var vitalOrder = []string{"BP", "HR", "RR", "Temp"}

func formatVitals(vitals map[string]string) string {
	var parts []string
	seen := make(map[string]bool)
	for _, k := range vitalOrder {
		if v, ok := vitals[k]; ok {
			parts = append(parts, fmt.Sprintf("%s %s", k, v))
			seen[k] = true
		}
	}
	var extras []string
	for k := range vitals {
		if !seen[k] {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	for _, k := range extras {
		parts = append(parts, fmt.Sprintf("%s %s", k, vitals[k]))
	}
	return strings.Join(parts, "   ")
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

func specialtyLabel(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
