package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/drillz/internal/ui/theme"
)

type picked string

func testMenu() Menu {
	item := func(label string) MenuItem {
		return MenuItem{Label: label, Hint: label + " hint", Action: func() tea.Cmd {
			return func() tea.Msg { return picked(label) }
		}}
	}
	return NewMenu([]MenuItem{item("alpha"), item("beta"), item("gamma")})
}

func runeKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenu_NavigationWraps(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 2, m.Selected)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 0, m.Selected)
	m, _ = m.Update(runeKey('j'))
	assert.Equal(t, 1, m.Selected)
	assert.Equal(t, "beta", m.Current().Label)
}

func TestMenu_EnterActivates(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, picked("beta"), cmd())
}

func TestMenu_DigitJumps(t *testing.T) {
	m := testMenu()
	m, cmd := m.Update(runeKey('3'))
	assert.Equal(t, 2, m.Selected)
	require.NotNil(t, cmd)
	assert.Equal(t, picked("gamma"), cmd())

	m, cmd = m.Update(runeKey('9'))
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.Selected)
}

func TestMenu_View(t *testing.T) {
	view := testMenu().View()
	assert.Contains(t, view, "1. alpha")
	assert.Contains(t, view, "3. gamma")
	assert.Contains(t, view, "alpha hint")
	assert.NotContains(t, view, "beta hint")
}

func TestTimerBar_Width(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		seconds  int
	}{
		{"full", 1, 30},
		{"half", 0.5, 15},
		{"empty", 0, 0},
		{"overfull", 1.7, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewTimerBar("", tt.fraction, tt.seconds, theme.Success, 40)
			assert.Equal(t, 40, lipgloss.Width(bar.View()))
		})
	}
}

func TestTimerBar_Seconds(t *testing.T) {
	assert.Contains(t, NewTimerBar("T", 0.5, 7, nil, 30).View(), " 7s")
	assert.NotContains(t, NewTimerBar("T", 0.5, -1, nil, 30).View(), "s")
}

func TestAnswerInput_FiltersKeys(t *testing.T) {
	in := NewAnswerInput("?", 3, Digits)
	for _, r := range "4x2" {
		in, _ = in.Update(runeKey(r))
	}
	assert.Equal(t, "42", in.Value())

	in, _ = in.Update(runeKey('7'))
	in, _ = in.Update(runeKey('1'))
	assert.Equal(t, "427", in.Value(), "limited to three characters")

	in.Reset()
	assert.Empty(t, in.Value())
}

func TestContentWidth(t *testing.T) {
	assert.Equal(t, 20, ContentWidth(10))
	assert.Equal(t, 54, ContentWidth(60))
	assert.Equal(t, 60, ContentWidth(200))
}

func TestButtonColumn(t *testing.T) {
	full := ButtonColumn([]string{"PLAY", "EXIT"}, 1, 40, false)
	assert.Contains(t, full, "▸ EXIT")
	assert.Equal(t, 6, lipgloss.Height(full), "two bordered buttons")

	compact := ButtonColumn([]string{"PLAY", "EXIT"}, 0, 40, true)
	assert.Contains(t, compact, "▸ PLAY")
	assert.Equal(t, 2, lipgloss.Height(compact))
}

func TestStatRow(t *testing.T) {
	row := StatRow("Score", "120", "Level", "3", "dangling")
	assert.Contains(t, row, "Score")
	assert.Contains(t, row, "120")
	assert.Contains(t, row, "Level")
	assert.NotContains(t, row, "dangling")
}

func TestFractionColor(t *testing.T) {
	assert.Equal(t, theme.Success, FractionColor(0.9))
	assert.Equal(t, theme.Warning, FractionColor(0.3))
	assert.Equal(t, theme.Error, FractionColor(0.1))
}

func TestTable(t *testing.T) {
	out := Table([]string{"Mode", "Best"}, [][]string{{"Ordering", "410"}, {"Random", "95"}})
	for _, want := range []string{"Mode", "Best", "Ordering", "410", "Random", "95"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 6, lipgloss.Height(out), "border, header, rule, two rows, border")
}
