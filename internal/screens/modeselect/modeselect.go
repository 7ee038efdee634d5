// Package modeselect lists the fraction drills to start a game with.
package modeselect

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/drillz/internal/drill"
	"github.com/abhisek/drillz/internal/router"
	"github.com/abhisek/drillz/internal/screen"
	"github.com/abhisek/drillz/internal/screens/fractions"
	"github.com/abhisek/drillz/internal/session"
	"github.com/abhisek/drillz/internal/ui/components"
	"github.com/abhisek/drillz/internal/ui/layout"
	"github.com/abhisek/drillz/internal/ui/theme"
)

// ModeSelectScreen picks Random or one of the eight drills.
type ModeSelectScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*ModeSelectScreen)(nil)
var _ screen.KeyHintProvider = (*ModeSelectScreen)(nil)

// New creates the mode list. Choosing a mode pushes a fractions game.
func New(deps screen.Deps) *ModeSelectScreen {
	play := func(mode string) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: fractions.New(mode, deps)}
			}
		}
	}

	items := []components.MenuItem{{
		Label:  session.RandomModeName,
		Hint:   "A different drill every round",
		Action: play(""),
	}}
	for _, k := range drill.Kinds {
		items = append(items, components.MenuItem{
			Label:  k.String(),
			Hint:   k.Description(),
			Action: play(k.String()),
		})
	}
	return &ModeSelectScreen{menu: components.NewMenu(items)}
}

func (m *ModeSelectScreen) Init() tea.Cmd {
	return nil
}

func (m *ModeSelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *ModeSelectScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	list := lipgloss.NewStyle().Width(cw).Render(m.menu.View())
	return components.CabinetFrame(
		components.ArcadeCard("CHOOSE A DRILL", list, cw),
		theme.ArcadeYellow, width, height)
}

func (m *ModeSelectScreen) Title() string {
	return "Fractions"
}

func (m *ModeSelectScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "Esc", Description: "Back"},
	}
}
