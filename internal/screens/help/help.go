package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/drillz/internal/drill"
	"github.com/abhisek/drillz/internal/screen"
	"github.com/abhisek/drillz/internal/ui/components"
	"github.com/abhisek/drillz/internal/ui/theme"
)

// HelpScreen explains both games.
type HelpScreen struct{}

var _ screen.Screen = (*HelpScreen)(nil)

// New creates a new HelpScreen.
func New() *HelpScreen {
	return &HelpScreen{}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	text := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var drills strings.Builder
	for _, k := range drill.Kinds {
		drills.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(k.String()))
		drills.WriteString(dim.Render("  " + k.Description()))
		drills.WriteString("\n")
	}

	fractions := text.Render("Three lives. A wrong answer or a timeout costs one; "+
		"Bigger/Smaller ends the moment its clock runs out. "+
		"Faster answers and streaks score more.") + "\n\n" + drills.String()

	ouroboros := text.Render("Twelve multiplication problems sit in a ring. " +
		"Answer the current one before its clock empties or the game ends. " +
		"A wrong answer locks input for a moment. " +
		"Land on the tail of answered problems while it is still alive for a bonus.")

	content := components.ArcadeCard("FRACTIONS", fractions, cw) + "\n" +
		components.ArcadeCard("OUROBOROS", ouroboros, cw) + "\n\n" +
		dim.Render("Esc pauses a game. Q ends it while paused.")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HelpScreen) Title() string {
	return "Help"
}
