package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/blackstar-game/blackstar/internal/router"
	"github.com/blackstar-game/blackstar/internal/screen"
	"github.com/blackstar-game/blackstar/internal/screens/career"
	shiftscreen "github.com/blackstar-game/blackstar/internal/screens/shift"
	shiftsvc "github.com/blackstar-game/blackstar/internal/shift"
	"github.com/blackstar-game/blackstar/internal/store"
	"github.com/blackstar-game/blackstar/internal/ui/components"
)

// HomeScreen is the department board: start a shift, review the career
// record, or clock out of the program entirely.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	disabled   map[int]bool

	shiftsCompleted int
	patientsTreated int
	accuracy        float64
	llmConfigured   bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The snapshot gives the stats bar without a
// full event-log scan; no snapshot yet means a fresh career.
func New(provider shiftsvc.QueueProvider, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, cfg shiftsvc.Config, llmConfigured bool) *HomeScreen {
	var snap *store.Snapshot
	if snapRepo != nil {
		snap, _ = snapRepo.Latest(context.Background())
	}

	var shifts, patients int
	var accuracy float64
	if snap != nil {
		shifts = snap.Data.ShiftsCompleted
		patients = snap.Data.PatientsTreated
		if patients > 0 {
			accuracy = float64(snap.Data.CorrectDiagnoses) / float64(patients)
		}
	}

	menuLabels := []string{"START SHIFT", "CAREER RECORD", "CLOCK OUT"}
	disabled := map[int]bool{
		1: eventRepo == nil,
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: shiftscreen.New(provider, eventRepo, snapRepo, cfg),
				}
			}
		}},
		{Label: menuLabels[1], Disabled: disabled[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: career.New(eventRepo)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:            components.NewMenu(items),
		menuLabels:      menuLabels,
		disabled:        disabled,
		shiftsCompleted: shifts,
		patientsTreated: patients,
		accuracy:        accuracy,
		llmConfigured:   llmConfigured,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	sections = append(sections, renderStatsBar(
		h.shiftsCompleted, h.patientsTreated, h.accuracy, cw, compact))

	if !h.llmConfigured {
		sections = append(sections, renderLLMBanner(cw))
	}

	sections = append(sections, renderBoardMenu(
		h.menuLabels, h.menu.Selected, cw, h.disabled))

	content := strings.Join(sections, "\n\n")

	return renderBoardFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Department Board"
}
