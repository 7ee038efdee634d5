// Package fractions is the play screen for the fraction drills.
package fractions

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/drillz/internal/drill"
	"github.com/abhisek/drillz/internal/router"
	"github.com/abhisek/drillz/internal/screen"
	"github.com/abhisek/drillz/internal/screens/summary"
	"github.com/abhisek/drillz/internal/session"
	"github.com/abhisek/drillz/internal/ui/layout"
)

var tickIDs atomic.Int64

// tickMsg drives the game clock. Ticks from a replaced screen carry a stale
// id and are ignored.
type tickMsg struct {
	id int64
}

// FractionsScreen plays one fractions game.
type FractionsScreen struct {
	deps   screen.Deps
	mode   string
	game   *session.FractionsGame
	tickID int64
	width  int

	// last is the outcome of the most recent answer, shown as feedback.
	last session.Outcome
}

var _ screen.Screen = (*FractionsScreen)(nil)
var _ screen.KeyHintProvider = (*FractionsScreen)(nil)
var _ screen.InfoProvider = (*FractionsScreen)(nil)
var _ screen.EscapeCapturer = (*FractionsScreen)(nil)

// New creates a screen for the named drill; an empty mode plays random
// drills.
func New(mode string, deps screen.Deps) *FractionsScreen {
	return &FractionsScreen{
		deps:   deps,
		mode:   mode,
		game:   session.NewFractions(mode, deps.Game),
		tickID: tickIDs.Add(1),
	}
}

func (s *FractionsScreen) Init() tea.Cmd {
	s.game.Start(s.deps.Clock())
	return s.tick()
}

func (s *FractionsScreen) tick() tea.Cmd {
	id := s.tickID
	return tea.Tick(s.deps.TickEvery(), func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

func (s *FractionsScreen) Title() string {
	return "Fractions: " + s.game.Mode()
}

func (s *FractionsScreen) CapturesEscape() bool {
	return !s.game.Over()
}

func (s *FractionsScreen) HeaderInfo() string {
	return headerInfo(s.game.Snapshot(s.deps.Clock()))
}

func (s *FractionsScreen) KeyHints() []layout.KeyHint {
	snap := s.game.Snapshot(s.deps.Clock())
	if snap.Phase == session.PhasePaused {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Resume"},
			{Key: "Q", Description: "End game"},
		}
	}
	hints := drillHints(snap.Drill)
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Pause"})
}

func (s *FractionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		return s, nil

	case tickMsg:
		if msg.id != s.tickID || s.game.Over() {
			return s, nil
		}
		s.game.Update(s.deps.Clock())
		if s.game.Over() {
			return s, s.finish()
		}
		return s, s.tick()

	case tea.MouseClickMsg:
		if s.width == 0 {
			return s, nil
		}
		side := drill.Left
		if msg.Mouse().X >= s.width/2 {
			side = drill.Right
		}
		return s, s.record(s.game.HandleTouch(side, s.deps.Clock()))

	case tea.KeyMsg:
		return s, s.handleKey(msg.String())
	}
	return s, nil
}

func (s *FractionsScreen) handleKey(key string) tea.Cmd {
	now := s.deps.Clock()
	if s.game.Phase() == session.PhasePaused && (key == "q" || key == "Q") {
		s.game.Quit(now)
		return s.finish()
	}
	return s.record(s.game.HandleKey(key, now))
}

func (s *FractionsScreen) record(out session.Outcome) tea.Cmd {
	if out.Answered {
		s.last = out
	}
	if out.GameOver || s.game.Over() {
		return s.finish()
	}
	return nil
}

// finish swaps this screen for the game summary.
func (s *FractionsScreen) finish() tea.Cmd {
	sum, ok := s.game.Summary()
	if !ok {
		return nil
	}
	mode, deps := s.mode, s.deps
	again := func() screen.Screen { return New(mode, deps) }
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum, again)}
	}
}

func (s *FractionsScreen) View(width, height int) string {
	return renderGame(s.game.Snapshot(s.deps.Clock()), s.last, width, height)
}
