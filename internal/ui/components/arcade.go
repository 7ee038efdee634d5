package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/drillz/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all arcade sections
// so boxes stacked in one frame line up.
func ContentWidth(frameWidth int) int {
	// cabinet border (2) + inner padding (4)
	return min(60, max(20, frameWidth-6))
}

// CabinetFrame wraps content in a double-border frame in the given colour,
// centred in width x height.
func CabinetFrame(content string, border color.Color, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(border).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded card cw wide with an optional
// heading line.
func ArcadeCard(heading, content string, cw int) string {
	if heading != "" {
		content = lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).Render(heading) +
			"\n\n" + content
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// StatRow renders "label  value" pairs on one line.
func StatRow(pairs ...string) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, label.Render(pairs[i])+" "+value.Render(pairs[i+1]))
	}
	return strings.Join(parts, "   ")
}

// ButtonWidth is the fixed width of ArcadeButton.
const ButtonWidth = 22

// ArcadeButton renders one bordered button.
func ArcadeButton(label string, selected bool) string {
	if selected {
		return lipgloss.NewStyle().
			Width(ButtonWidth).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.ArcadeYellow).
			Padding(0, 1).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Width(ButtonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(label)
}

// ButtonColumn stacks a button per label, centred in cw. compact drops the
// borders for short terminals.
func ButtonColumn(labels []string, selected, cw int, compact bool) string {
	lines := make([]string, 0, len(labels))
	for i, label := range labels {
		switch {
		case !compact:
			lines = append(lines, ArcadeButton(label, i == selected))
		case i == selected:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ "+label+" "))
		default:
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render("   "+label))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
