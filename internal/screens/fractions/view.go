package fractions

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/drillz/internal/drill"
	"github.com/abhisek/drillz/internal/fraction"
	"github.com/abhisek/drillz/internal/session"
	"github.com/abhisek/drillz/internal/ui/components"
	"github.com/abhisek/drillz/internal/ui/layout"
	"github.com/abhisek/drillz/internal/ui/theme"
)

func headerInfo(snap session.FractionsSnapshot) string {
	lives := strings.Repeat("♥", max(0, snap.Lives)) +
		strings.Repeat("♡", max(0, session.StartingLives-snap.Lives))
	return fmt.Sprintf("%s  Lv %d  Score %d", lives, snap.Level, snap.Score)
}

func drillHints(d drill.Display) []layout.KeyHint {
	switch d.Kind {
	case drill.Ordering:
		return []layout.KeyHint{
			{Key: "1-5", Description: "Pick next"},
			{Key: "⌫", Description: "Undo"},
		}
	case drill.BiggerSmaller:
		return []layout.KeyHint{
			{Key: "←/A", Description: "Left"},
			{Key: "→/D", Description: "Right"},
		}
	case drill.InchesToFeet:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Switch field"},
			{Key: "Enter", Description: "Submit"},
		}
	}
	return []layout.KeyHint{{Key: "Enter", Description: "Submit"}}
}

var (
	centered = lipgloss.NewStyle().Align(lipgloss.Center)
	bold     = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	dim      = lipgloss.NewStyle().Foreground(theme.TextDim)
	answer   = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
)

func renderGame(snap session.FractionsSnapshot, last session.Outcome, width, height int) string {
	if snap.Phase == session.PhaseReady {
		return ""
	}
	cw := components.ContentWidth(width)
	d := snap.Drill

	sections := []string{
		components.StatRow(
			"Streak", strconv.Itoa(snap.Streak),
			"Best", strconv.Itoa(snap.BestStreak),
			"Level", strconv.Itoa(d.Level),
		),
		components.NewTimerBar("", d.TimeFraction(), d.TimeRemaining,
			components.FractionColor(d.TimeFraction()), cw).View(),
		bold.Render(d.Kind.Description()),
		renderTask(d),
	}
	if fb := renderFeedback(d, last); fb != "" {
		sections = append(sections, fb)
	}
	if snap.LevelUp {
		sections = append(sections, theme.Banner.Render(fmt.Sprintf("LEVEL UP! Level %d", snap.Level)))
	}

	content := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(joinSections(sections, height))
	if snap.Phase == session.PhasePaused {
		content = renderPaused(cw)
	}
	return components.CabinetFrame(content, theme.ArcadeYellow, width, height)
}

// joinSections stacks the play sections, without blank lines between them
// on short terminals.
func joinSections(sections []string, height int) string {
	gap := "\n\n"
	if layout.IsCompactHeight(height) {
		gap = "\n"
	}
	return strings.Join(sections, gap)
}

func renderPaused(cw int) string {
	return components.ArcadeCard("PAUSED",
		dim.Render("Esc to resume, Q to end the game"), cw)
}

func renderTask(d drill.Display) string {
	switch t := d.Task.(type) {
	case *drill.OrderingTask:
		return renderOrdering(t)
	case *drill.CompareTask:
		return renderCompare(t)
	case *drill.DecimalTask:
		return bold.Render(t.Fraction.String()+" = ") + inputLine(d.Input)
	case *drill.BetweenTask:
		return renderTape(t.Low, t.High) + "\n\n" + bold.Render("Halfway = ") + inputLine(d.Input)
	case *drill.ArithmeticTask:
		return bold.Render(fmt.Sprintf("%s %s %s = ", t.A, t.Op, t.B)) + inputLine(d.Input)
	case *drill.MixedTask:
		return bold.Render(fmt.Sprintf("%d %d/%d = ", t.Mixed.Whole, t.Mixed.Num, t.Mixed.Den)) +
			inputLine(d.Input)
	case *drill.DifferenceTask:
		return renderTape(t.Smaller, t.Larger) + "\n\n" +
			bold.Render(fmt.Sprintf("%s - %s = ", t.Larger, t.Smaller)) + inputLine(d.Input)
	case *drill.InchesTask:
		return renderInches(t)
	}
	return ""
}

func inputLine(s string) string {
	return answer.Render(s + "_")
}

func renderOrdering(t *drill.OrderingTask) string {
	picked := make(map[int]int, len(t.Selected))
	for pos, idx := range t.Selected {
		picked[idx] = pos + 1
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ArcadeCyan).
		Foreground(theme.Text).
		Width(7).
		Align(lipgloss.Center)
	cards := make([]string, len(t.Fractions))
	for i, f := range t.Fractions {
		if pos, ok := picked[i]; ok {
			cards[i] = card.BorderForeground(theme.Border).Foreground(theme.TextDim).
				Render(fmt.Sprintf("#%d\n%s", pos, f))
			continue
		}
		cards[i] = card.Render(fmt.Sprintf("%d\n%s", i+1, f))
	}

	order := make([]string, len(t.Selected))
	for i, idx := range t.Selected {
		order[i] = t.Fractions[idx].String()
	}
	line := dim.Render("Smallest first: ") + answer.Render(strings.Join(order, " < "))
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n\n" + line
}

func renderCompare(t *drill.CompareTask) string {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ArcadeCyan).
		Foreground(theme.Text).
		Bold(true).
		Padding(1, 4)
	return lipgloss.JoinHorizontal(lipgloss.Center,
		card.Render(t.Left.String()),
		dim.Render("  or  "),
		card.Render(t.Right.String()),
	)
}

// renderTape draws a short ruler between two marks with a gap for the
// answer in the middle.
func renderTape(low, high fraction.Fraction) string {
	tape := lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.ArcadeYellow)
	ruler := "├────┼────┼──?─┼────┼────┤"
	return tape.Render(ruler) + "\n" +
		bold.Render(fmt.Sprintf("%-13s%13s", low, high))
}

func renderInches(t *drill.InchesTask) string {
	field := func(v string, active bool) string {
		s := lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			Width(6).
			Align(lipgloss.Center)
		if active {
			s = s.BorderForeground(theme.ArcadeYellow)
			v += "_"
		}
		return s.Render(v)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		bold.Render(fmt.Sprintf("%d in = ", t.Total)),
		field(t.Feet, t.Field == drill.FeetField), bold.Render(" ft "),
		field(t.Inches, t.Field == drill.InchesField), bold.Render(" in"),
	)
}

func renderFeedback(d drill.Display, last session.Outcome) string {
	fb := d.Feedback
	if fb == nil {
		return ""
	}
	if fb.Correct {
		msg := "Correct!"
		if last.Correct && last.Points > 0 {
			msg = fmt.Sprintf("Correct! +%d", last.Points)
		}
		return theme.Correct.Render(msg)
	}
	lines := []string{theme.Incorrect.Render("Not quite")}
	if len(fb.CorrectOrder) > 0 {
		order := make([]string, len(fb.CorrectOrder))
		for i, f := range fb.CorrectOrder {
			order[i] = f.String()
		}
		lines = append(lines, dim.Render("Correct order: ")+answer.Render(strings.Join(order, " < ")))
	} else if fb.CorrectAnswer != "" {
		lines = append(lines, dim.Render("Answer: ")+answer.Render(fb.CorrectAnswer))
	}
	return centered.Render(strings.Join(lines, "\n"))
}
