package layout

import (
	"cmp"
	"image"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
)

// Block is rendered content anchored at a top-left cell.
type Block struct {
	At      image.Point
	Content string
}

type span struct {
	x, w int
	s    string
}

// Compose draws blocks onto a width x height area of spaces. Blocks are
// placed in order and a block that would run off the area or overlap an
// earlier one is dropped whole. Content may carry ANSI styling.
func Compose(width, height int, blocks []Block) string {
	rows := make([][]span, max(0, height))
	for _, b := range blocks {
		lines := strings.Split(b.Content, "\n")
		if !fits(rows, b.At, lines, width) {
			continue
		}
		for i, line := range lines {
			y := b.At.Y + i
			rows[y] = append(rows[y], span{x: b.At.X, w: lipgloss.Width(line), s: line})
		}
	}

	var sb strings.Builder
	for y, row := range rows {
		slices.SortFunc(row, func(a, b span) int { return cmp.Compare(a.x, b.x) })
		col := 0
		for _, sp := range row {
			sb.WriteString(strings.Repeat(" ", sp.x-col))
			sb.WriteString(sp.s)
			col = sp.x + sp.w
		}
		sb.WriteString(strings.Repeat(" ", max(0, width-col)))
		if y < len(rows)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func fits(rows [][]span, at image.Point, lines []string, width int) bool {
	if at.X < 0 || at.Y < 0 || at.Y+len(lines) > len(rows) {
		return false
	}
	for i, line := range lines {
		w := lipgloss.Width(line)
		if at.X+w > width {
			return false
		}
		for _, sp := range rows[at.Y+i] {
			if at.X < sp.x+sp.w && sp.x < at.X+w {
				return false
			}
		}
	}
	return true
}
