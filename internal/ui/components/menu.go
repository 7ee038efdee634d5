package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/drillz/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label string
	// Hint is shown under the list while the item is selected.
	Hint   string
	Action func() tea.Cmd
}

// Menu is a vertical navigation menu. Selection wraps at both ends and the
// digits 1-9 jump straight to an item and activate it.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k", "w":
		m.Selected = (m.Selected - 1 + len(m.Items)) % len(m.Items)
	case "down", "j", "s":
		m.Selected = (m.Selected + 1) % len(m.Items)
	case "enter", "space":
		return m, m.activate()
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Items) {
			m.Selected = n - 1
			return m, m.activate()
		}
	}
	return m, nil
}

func (m Menu) activate() tea.Cmd {
	if item := m.Items[m.Selected]; item.Action != nil {
		return item.Action()
	}
	return nil
}

// Current returns the selected item.
func (m Menu) Current() MenuItem {
	if len(m.Items) == 0 {
		return MenuItem{}
	}
	return m.Items[m.Selected]
}

// View renders the menu as a numbered list.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		label := strconv.Itoa(i+1) + ". " + item.Label
		if i == m.Selected {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.ArcadeYellow).
				Bold(true).
				Render("  ▸ " + label))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    " + label))
		}
		b.WriteString("\n")
	}
	if hint := m.Current().Hint; hint != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  " + hint))
	}
	return b.String()
}
