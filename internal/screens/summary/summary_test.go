package summary

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/drillz/internal/router"
	"github.com/abhisek/drillz/internal/screen"
	"github.com/abhisek/drillz/internal/screens/help"
	"github.com/abhisek/drillz/internal/session"
)

func testSummary() session.Summary {
	return session.Summary{
		Game:           session.GameFractions,
		Mode:           "To Decimal",
		Score:          615,
		Level:          2,
		BestStreak:     3,
		TotalQuestions: 4,
		CorrectAnswers: 3,
		Accuracy:       75,
		Duration:       95 * time.Second,
		HighScore:      615,
		NewHigh:        true,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), nil)
	if s.Title() != "Game Over" {
		t.Errorf("Title = %q, want %q", s.Title(), "Game Over")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	view := New(testSummary(), nil).View(80, 18)
	for _, want := range []string{"NEW HIGH SCORE!", "Fractions: To Decimal", "615", "75%", "3/4", "1:35"} {
		assert.Contains(t, view, want)
	}

	sum := testSummary()
	sum.Game, sum.Mode, sum.NewHigh = session.GameOuroboros, "", false
	view = New(sum, nil).View(80, 18)
	assert.Contains(t, view, "GAME OVER")
	assert.Contains(t, view, "Ouroboros")
}

func TestSummaryScreen_PlayAgain(t *testing.T) {
	next := help.New()
	s := New(testSummary(), func() screen.Screen { return next })

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Same(t, next, msg.Screen)
}

func TestSummaryScreen_EnterWithoutAgainPops(t *testing.T) {
	_, cmd := New(testSummary(), nil).Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary(), func() screen.Screen { return help.New() })
	if hints := s.KeyHints(); len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
	if hints := New(testSummary(), nil).KeyHints(); len(hints) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(hints))
	}
}
