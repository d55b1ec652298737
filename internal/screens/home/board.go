package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/blackstar-game/blackstar/internal/ui/theme"
)

const boardTitleFull = ` ██████╗ ██╗      █████╗  ██████╗██╗  ██╗███████╗████████╗ █████╗ ██████╗
 ██╔══██╗██║     ██╔══██╗██╔════╝██║ ██╔╝██╔════╝╚══██╔══╝██╔══██╗██╔══██╗
 ██████╔╝██║     ███████║██║     █████╔╝ ███████╗   ██║   ███████║██████╔╝
 ██╔══██╗██║     ██╔══██║██║     ██╔═██╗ ╚════██║   ██║   ██╔══██║██╔══██╗
 ██████╔╝███████╗██║  ██║╚██████╗██║  ██╗███████║   ██║   ██║  ██║██║  ██║
 ╚═════╝ ╚══════╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚══════╝   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝`

const boardTitleCompact = "B · L · A · C · K · S · T · A · R"

const boardSubtitle = "EMERGENCY DEPARTMENT — NIGHT SHIFT"

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for board border (2) + inner padding (4)
	w := frameWidth - 6
	// Cap so it doesn't stretch absurdly wide
	if w > 78 {
		w = 78
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := boardTitleFull
	if compact || cw < 76 {
		title = boardTitleCompact
	}

	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(boardSubtitle)

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title) + "\n" + sub)
}

// renderStatsBar renders the career stats in a bordered box matching content width.
func renderStatsBar(shifts, patients int, accuracy float64, cw int, compact bool) string {
	shiftStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	patientStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			shiftStyle.Render(fmt.Sprintf("⏱%d", shifts)),
			patientStyle.Render(fmt.Sprintf("⚕%d", patients)),
			accuracyText(patients, accuracy, true, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			shiftStyle.Render(fmt.Sprintf("⏱ %d SHIFTS", shifts)),
			patientStyle.Render(fmt.Sprintf("⚕ %d PATIENTS", patients)),
			accuracyText(patients, accuracy, false, dimStyle),
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func accuracyText(patients int, accuracy float64, compact bool, dim lipgloss.Style) string {
	if patients == 0 {
		if compact {
			return dim.Render("✓ —")
		}
		return dim.Render("✓ NO RECORD YET")
	}
	style := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	if compact {
		return style.Render(fmt.Sprintf("✓%.0f%%", accuracy*100))
	}
	return style.Render(fmt.Sprintf("✓ %.0f%% ACCURACY", accuracy*100))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderBoardMenu renders each menu item as a fixed-width button.
func renderBoardMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	disabledBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if disabled[i] {
			buttons = append(buttons, disabledBtn.Render(label))
		} else if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderLLMBanner renders a note when no LLM API key is configured; the
// game still runs on bundled case packs.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ No LLM API key set — playing from bundled case packs (see blackstar --help)")
}

// renderBoardFrame wraps content in a double-border frame, centering
// vertically and horizontally within the given dimensions.
func renderBoardFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
