package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/drillz/internal/ouroboros"
	"github.com/abhisek/drillz/internal/ui/theme"
)

// BandColor maps a countdown band to its bar colour.
func BandColor(b ouroboros.Band) color.Color {
	switch b {
	case ouroboros.BandCritical:
		return theme.Error
	case ouroboros.BandWarning:
		return theme.Warning
	default:
		return theme.Success
	}
}

// FractionColor is BandColor for a share of time left in [0, 1].
func FractionColor(f float64) color.Color {
	return BandColor(ouroboros.BandFor(f * 100))
}

// TimerBar displays a countdown as a shrinking horizontal bar.
type TimerBar struct {
	Label string
	// Fraction is the share of time left, clamped to [0, 1].
	Fraction float64
	// Seconds is printed after the bar when not negative.
	Seconds int
	Color   color.Color
	Width   int
}

// NewTimerBar creates a bar for the given share of time left.
func NewTimerBar(label string, fraction float64, seconds int, c color.Color, width int) TimerBar {
	return TimerBar{
		Label:    label,
		Fraction: fraction,
		Seconds:  seconds,
		Color:    c,
		Width:    width,
	}
}

// View renders the bar.
func (p TimerBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	secondsStr := ""
	if p.Seconds >= 0 {
		secondsStr = fmt.Sprintf("  %2ds", p.Seconds)
	}

	barWidth := p.Width - lipgloss.Width(result) - len(secondsStr)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth)*min(1, max(0, p.Fraction)) + 0.5)
	empty := barWidth - filled

	fill := p.Color
	if fill == nil {
		fill = theme.Secondary
	}
	result += lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	if secondsStr != "" {
		result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(secondsStr)
	}
	return result
}
