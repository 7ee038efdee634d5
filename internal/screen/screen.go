package screen

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/drillz/internal/session"
	"github.com/abhisek/drillz/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InfoProvider is an optional interface for screens that show a status
// line on the right of the header.
type InfoProvider interface {
	HeaderInfo() string
}

// EscapeCapturer is an optional interface for screens that handle Esc
// themselves instead of letting the app pop them.
type EscapeCapturer interface {
	CapturesEscape() bool
}

// Resumer is an optional interface for screens that refresh when a screen
// above them is popped.
type Resumer interface {
	Resume() tea.Cmd
}

// Deps is what game screens need from the application.
type Deps struct {
	Game session.Options
	// Tick is the interval between game updates.
	Tick time.Duration
	// Now reads the clock. Nil means time.Now.
	Now func() time.Time
}

// Clock returns the current instant.
func (d Deps) Clock() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// TickEvery returns the tick interval, 100ms if unset.
func (d Deps) TickEvery() time.Duration {
	if d.Tick <= 0 {
		return 100 * time.Millisecond
	}
	return d.Tick
}
