package ouroboros

import (
	"fmt"
	"image"
	"strconv"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	ring "github.com/abhisek/drillz/internal/ouroboros"
	"github.com/abhisek/drillz/internal/session"
	"github.com/abhisek/drillz/internal/ui/components"
	"github.com/abhisek/drillz/internal/ui/layout"
	"github.com/abhisek/drillz/internal/ui/theme"
)

func headerInfo(snap session.OuroborosSnapshot) string {
	return fmt.Sprintf("Lv %d  Score %d  High %d", snap.Level, snap.Score, max(snap.High, snap.Score))
}

// centreWidth is the width of the panel inside the ring.
const centreWidth = 30

func renderGame(snap session.OuroborosSnapshot, now time.Time, input string, last *session.Outcome, width, height int) string {
	if snap.Phase == session.PhaseReady || width == 0 || height == 0 {
		return ""
	}

	compact := layout.IsCompactWidth(width) || layout.IsCompactHeight(height)
	centre := renderCentre(snap, input, last, compact)
	if snap.Phase == session.PhasePaused {
		centre = components.ArcadeCard("PAUSED",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Esc to resume\nQ to end the game"),
			centreWidth)
	}

	cw, ch := lipgloss.Width(centre), lipgloss.Height(centre)
	blocks := []layout.Block{{
		At:      image.Pt(max(0, (width-cw)/2), max(0, (height-ch)/2)),
		Content: centre,
	}}
	return layout.Compose(width, height, append(blocks, ringBlocks(snap, now, width, height)...))
}

// renderCentre draws the panel inside the ring. Compact panels drop the
// spacer under the stats.
func renderCentre(snap session.OuroborosSnapshot, input string, last *session.Outcome, compact bool) string {
	lines := []string{
		components.StatRow("Streak", strconv.Itoa(snap.Streak), "Acc", fmt.Sprintf("%d%%", snap.Accuracy)),
	}
	if !compact {
		lines = append(lines, "")
	}
	lines = append(lines,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(snap.Current.String()+" = ") + input,
		components.NewTimerBar("", snap.Percent/100, -1, components.BandColor(snap.Band), centreWidth).View(),
	)

	switch {
	case snap.LockedOut:
		lines = append(lines, theme.Incorrect.Render(
			fmt.Sprintf("Locked %.1fs", snap.LockoutIn.Seconds())))
	case last != nil && last.Correct:
		lines = append(lines, theme.Correct.Render(fmt.Sprintf("+%d", last.Points)))
	case last != nil:
		lines = append(lines, theme.Incorrect.Render("It was "+last.CorrectAnswer))
	case snap.OnTail:
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Tail ahead!"))
	default:
		lines = append(lines, "")
	}
	if snap.LevelUp {
		lines = append(lines, theme.Banner.Render(fmt.Sprintf("LEVEL UP! Level %d", snap.Level)))
	} else if snap.OnStreak {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render("Streak x1.2"))
	}

	return lipgloss.NewStyle().Width(centreWidth).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
}

// ringBlocks renders one cell per slot. Slots that are not visible show a
// dot; positions come from the ring layout, or a fresh one for this area.
func ringBlocks(snap session.OuroborosSnapshot, now time.Time, width, height int) []layout.Block {
	visible := make(map[int]ring.Slot, len(snap.Visible))
	for _, v := range snap.Visible {
		visible[v.Index] = v
	}
	fallback := layout.Circle(width, height, len(snap.Slots), cellWidth, cellHeight)

	blocks := make([]layout.Block, 0, len(snap.Slots))
	for i, c := range snap.Slots {
		at, ok := c.Position()
		if !ok {
			at = fallback[i]
		}
		blocks = append(blocks, layout.Block{At: at, Content: renderCell(snap, now, i, visible)})
	}
	return blocks
}

func renderCell(snap session.OuroborosSnapshot, now time.Time, i int, visible map[int]ring.Slot) string {
	style := theme.CellExpired
	label := "·"
	switch v, ok := visible[i]; {
	case i == snap.CurrentIndex:
		style, label = theme.CellActive, snap.Current.String()
	case !ok:
	case i == snap.TailAt:
		style, label = theme.CellTail, v.Challenge.String()
	case v.Ahead:
		style, label = theme.Cell, v.Challenge.String()
	case v.Challenge.IsExpired(now):
		label = v.Challenge.String()
	case v.Challenge.Answered:
		style, label = theme.CellAnswered, v.Challenge.String()
	}
	return style.Width(cellWidth).Render(label)
}
