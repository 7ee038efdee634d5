package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/drillz/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Tape out, ready
	MascotCelebrating                      // Star eyes, last game set a record
	MascotSleepy                           // Tape rolled up, nothing played yet
)

const mascotIdle = `╭─────╮
│ ◉ ◉ ├━━┯━━┯━━┯
│  ▽  │  ¼  ½  ¾
╰─────╯`

const mascotCelebrating = `╭─────╮  ★
│ ★ ★ ├━━┯━━┯━━┯
│  ▿  │  ¼  ½  ¾
╰─────╯`

const mascotSleepy = `╭─────╮
│ - - ├┤ z
│  ▵  │
╰─────╯`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.ArcadeYellow
	switch v {
	case MascotCelebrating:
		art, fg = mascotCelebrating, theme.Accent
	case MascotSleepy:
		art, fg = mascotSleepy, theme.TextDim
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
