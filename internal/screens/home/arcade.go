package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/drillz/internal/ui/theme"
)

// Block-letter title.
const arcadeTitleFull = `██████╗ ██████╗ ██╗██╗     ██╗     ███████╗
██╔══██╗██╔══██╗██║██║     ██║     ╚══███╔╝
██║  ██║██████╔╝██║██║     ██║       ███╔╝
██║  ██║██╔══██╗██║██║     ██║      ███╔╝
██████╔╝██║  ██║██║███████╗███████╗███████╗
╚═════╝ ╚═╝  ╚═╝╚═╝╚══════╝╚══════╝╚══════╝`

const arcadeTitleCompact = "D · R · I · L · L · Z"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(title))
}

// homeStats is the dashboard shown above the menu.
type homeStats struct {
	fractionsHigh int
	ouroborosHigh int
	games         int
}

// renderStatsBar renders the dashboard in a double border matching the
// content width.
func renderStatsBar(st homeStats, cw int, compact bool) string {
	fracStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	ringStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	gameStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	format := "%s  %s  %s"
	frac, ring, games := fmt.Sprintf("½ %d BEST", st.fractionsHigh),
		fmt.Sprintf("◯ %d BEST", st.ouroborosHigh),
		fmt.Sprintf("▶ %d PLAYED", st.games)
	if compact {
		format = "%s %s %s"
		frac, ring, games = fmt.Sprintf("½%d", st.fractionsHigh),
			fmt.Sprintf("◯%d", st.ouroborosHigh),
			fmt.Sprintf("▶%d", st.games)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(fmt.Sprintf(format, fracStyle.Render(frac), ringStyle.Render(ring), gameStyle.Render(games)))
}

// renderMascotBox renders the mascot centred at content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
