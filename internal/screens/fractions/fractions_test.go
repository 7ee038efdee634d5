package fractions

import (
	"math/rand/v2"
	"strconv"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/drillz/internal/drill"
	"github.com/abhisek/drillz/internal/router"
	"github.com/abhisek/drillz/internal/screen"
	"github.com/abhisek/drillz/internal/session"
)

var t0 = time.Date(2026, 4, 2, 16, 0, 0, 0, time.UTC)

// testScreen starts a game whose clock is *now.
func testScreen(t *testing.T, mode string) (*FractionsScreen, *time.Time) {
	t.Helper()
	now := t0
	deps := screen.Deps{
		Game: session.Options{RNG: rand.New(rand.NewPCG(7, 11))},
		Tick: 50 * time.Millisecond,
		Now:  func() time.Time { return now },
	}
	s := New(mode, deps)
	require.NotNil(t, s.Init())
	return s, &now
}

func press(s *FractionsScreen, keys string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range keys {
		_, cmd = s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return cmd
}

func replaced(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected a ReplaceScreenMsg")
	return msg.Screen
}

func TestFractionsScreen_Start(t *testing.T) {
	s, _ := testScreen(t, "To Decimal")
	assert.Equal(t, "Fractions: To Decimal", s.Title())
	assert.True(t, s.CapturesEscape())
	assert.Contains(t, s.HeaderInfo(), "♥♥♥")
	assert.Contains(t, s.View(80, 18), "Type the decimal equivalent")
}

func TestFractionsScreen_StaleTickIgnored(t *testing.T) {
	s, _ := testScreen(t, "To Decimal")

	_, cmd := s.Update(tickMsg{id: s.tickID + 100})
	assert.Nil(t, cmd)

	_, cmd = s.Update(tickMsg{id: s.tickID})
	assert.NotNil(t, cmd, "own tick reschedules")
}

func TestFractionsScreen_CorrectDecimal(t *testing.T) {
	s, now := testScreen(t, "To Decimal")
	*now = t0.Add(time.Second)

	task, ok := s.game.Snapshot(*now).Drill.Task.(*drill.DecimalTask)
	require.True(t, ok)
	press(s, strconv.FormatFloat(task.Fraction.Decimal(), 'f', -1, 64))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.True(t, s.last.Correct)
	assert.Contains(t, s.View(80, 18), "Correct! +")
	assert.Greater(t, s.game.Snapshot(*now).Score, 0)
}

func TestFractionsScreen_PauseAndQuit(t *testing.T) {
	s, now := testScreen(t, "Ordering")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.Equal(t, session.PhasePaused, s.game.Phase())
	assert.Contains(t, s.View(80, 18), "PAUSED")
	assert.Equal(t, "Resume", s.KeyHints()[0].Description)

	*now = t0.Add(5 * time.Second)
	next := replaced(t, press(s, "q"))
	assert.Equal(t, "Game Over", next.Title())
	assert.False(t, s.CapturesEscape())
}

func TestFractionsScreen_SurvivalTimeoutEnds(t *testing.T) {
	s, now := testScreen(t, "Bigger/Smaller")

	*now = t0.Add(11 * time.Second)
	_, cmd := s.Update(tickMsg{id: s.tickID})
	require.NotNil(t, cmd)

	*now = t0.Add(12 * time.Second)
	_, cmd = s.Update(tickMsg{id: s.tickID})
	assert.Equal(t, "Game Over", replaced(t, cmd).Title())

	_, cmd = s.Update(tickMsg{id: s.tickID})
	assert.Nil(t, cmd, "no ticks after the game ends")
}

func TestFractionsScreen_ClickPicksSide(t *testing.T) {
	s, now := testScreen(t, "Bigger/Smaller")
	s.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	*now = t0.Add(time.Second)

	task, ok := s.game.Snapshot(*now).Drill.Task.(*drill.CompareTask)
	require.True(t, ok)
	x := 70
	if task.Left.Compare(task.Right) > 0 {
		x = 10
	}
	s.Update(tea.MouseClickMsg{X: x, Y: 5, Button: tea.MouseLeft})

	assert.True(t, s.last.Correct)
	assert.Equal(t, 1, s.game.Snapshot(*now).Streak)
}

func TestFractionsScreen_KeyHintsPerDrill(t *testing.T) {
	s, _ := testScreen(t, "Inches to Feet")
	hints := s.KeyHints()
	assert.Equal(t, "Tab", hints[0].Key)
	assert.Equal(t, "Pause", hints[len(hints)-1].Description)
}

func TestJoinSections(t *testing.T) {
	sections := []string{"a", "b", "c"}
	assert.Equal(t, "a\nb\nc", joinSections(sections, 18))
	assert.Equal(t, "a\n\nb\n\nc", joinSections(sections, 40))
}
