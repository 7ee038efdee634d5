// Package ouroboros is the play screen for the multiplication ring.
package ouroboros

import (
	"image"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"

	ring "github.com/abhisek/drillz/internal/ouroboros"
	"github.com/abhisek/drillz/internal/router"
	"github.com/abhisek/drillz/internal/screen"
	"github.com/abhisek/drillz/internal/screens/summary"
	"github.com/abhisek/drillz/internal/session"
	"github.com/abhisek/drillz/internal/ui/components"
	"github.com/abhisek/drillz/internal/ui/layout"
)

const (
	// cellWidth fits "10 × 10" with a space either side.
	cellWidth  = 9
	cellHeight = 1

	// feedbackFor is how long the last answer stays on screen.
	feedbackFor = 1500 * time.Millisecond
)

var tickIDs atomic.Int64

type tickMsg struct {
	id int64
}

// OuroborosScreen plays one ouroboros game.
type OuroborosScreen struct {
	deps   screen.Deps
	game   *session.OuroborosGame
	input  components.AnswerInput
	tickID int64

	// area is the content size the ring was last laid out for.
	area image.Point

	last   session.Outcome
	lastAt time.Time
}

var _ screen.Screen = (*OuroborosScreen)(nil)
var _ screen.KeyHintProvider = (*OuroborosScreen)(nil)
var _ screen.InfoProvider = (*OuroborosScreen)(nil)
var _ screen.EscapeCapturer = (*OuroborosScreen)(nil)

// New creates a screen for a fresh game.
func New(deps screen.Deps) *OuroborosScreen {
	return &OuroborosScreen{
		deps:   deps,
		game:   session.NewOuroboros(deps.Game),
		input:  components.NewAnswerInput("?", 3, components.Digits),
		tickID: tickIDs.Add(1),
	}
}

func (s *OuroborosScreen) Init() tea.Cmd {
	s.game.Start(s.deps.Clock())
	s.place()
	return tea.Batch(s.tick(), s.input.Init())
}

func (s *OuroborosScreen) tick() tea.Cmd {
	id := s.tickID
	return tea.Tick(s.deps.TickEvery(), func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

// place lays the ring out for the current area. Slots refilled since the
// last call pick up their positions here.
func (s *OuroborosScreen) place() {
	if s.area.X == 0 || s.area.Y == 0 {
		return
	}
	s.game.Place(layout.Circle(s.area.X, s.area.Y, ring.Capacity, cellWidth, cellHeight))
}

func (s *OuroborosScreen) Title() string {
	return "Ouroboros"
}

func (s *OuroborosScreen) CapturesEscape() bool {
	return !s.game.Over()
}

func (s *OuroborosScreen) HeaderInfo() string {
	return headerInfo(s.game.Snapshot(s.deps.Clock()))
}

func (s *OuroborosScreen) KeyHints() []layout.KeyHint {
	if s.game.Phase() == session.PhasePaused {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Resume"},
			{Key: "Q", Description: "End game"},
		}
	}
	return []layout.KeyHint{
		{Key: "0-9", Description: "Answer"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Pause"},
	}
}

func (s *OuroborosScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.area = image.Pt(msg.Width, layout.ContentHeight(msg.Height))
		s.place()
		return s, nil

	case tickMsg:
		if msg.id != s.tickID || s.game.Over() {
			return s, nil
		}
		s.game.Update(s.deps.Clock())
		if s.game.Over() {
			return s, s.finish()
		}
		s.place()
		return s, s.tick()

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *OuroborosScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	now := s.deps.Clock()
	key := msg.String()

	if s.game.Phase() == session.PhasePaused && (key == "q" || key == "Q") {
		s.game.Quit(now)
		return s.finish()
	}
	if key == "enter" {
		return s.submit(now)
	}

	k := s.game.HandleKey(key, now)
	if k.Input != "" || k.Backspace {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	}
	return nil
}

func (s *OuroborosScreen) submit(now time.Time) tea.Cmd {
	out := s.game.Submit(s.input.Value(), now)
	if !out.Handled {
		return nil
	}
	s.input.Reset()
	s.last, s.lastAt = out, now
	s.place()
	if s.game.Over() {
		return s.finish()
	}
	return nil
}

func (s *OuroborosScreen) finish() tea.Cmd {
	sum, ok := s.game.Summary()
	if !ok {
		return nil
	}
	deps := s.deps
	again := func() screen.Screen { return New(deps) }
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum, again)}
	}
}

func (s *OuroborosScreen) View(width, height int) string {
	now := s.deps.Clock()
	var last *session.Outcome
	if s.last.Answered && now.Sub(s.lastAt) < feedbackFor {
		last = &s.last
	}
	return renderGame(s.game.Snapshot(now), now, s.input.View(), last, width, height)
}
