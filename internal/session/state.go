// Package session runs one game of fractions or ouroboros: it owns the
// active drill or ring, aggregates score, and records the result when the
// game ends.
//
// Controllers never read the clock. Every call takes the instant it
// happens at, so the driver reads time.Now once per tick.
package session

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/abhisek/drillz/internal/records"
)

// Game names used in the event log.
const (
	GameFractions = "fractions"
	GameOuroboros = "ouroboros"
)

// LevelUpBanner is how long a level up stays flagged on snapshots.
const LevelUpBanner = 667 * time.Millisecond

// Phase represents the current phase of a game.
type Phase int

const (
	PhaseReady  Phase = iota // Created, not started
	PhaseActive              // Playing
	PhasePaused              // Clocks stopped
	PhaseOver                // Finished and recorded
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseActive:
		return "active"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	}
	return "unknown"
}

// Options are the collaborators a controller needs.
type Options struct {
	// RNG drives every generated question.
	RNG *rand.Rand

	// Book records results. Nil means results are not kept.
	Book *records.Book

	// Log receives diagnostics. Nil discards them.
	Log *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.RNG == nil {
		o.RNG = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if o.Log == nil {
		o.Log = slog.New(slog.DiscardHandler)
	}
	return o
}

// Outcome is what one input event did to the game.
type Outcome struct {
	Handled bool

	// Paused is the pause state after an "esc".
	Paused bool

	// Answered is set when the input submitted an answer.
	Answered bool
	Correct  bool
	Points   int

	// CorrectAnswer is shown after a wrong answer.
	CorrectAnswer string

	LevelUp  bool
	GameOver bool
}

// clock tracks play time with pauses discounted.
type clock struct {
	startedAt  time.Time
	pauseStart time.Time
	totalPause time.Duration
}

func (c *clock) start(now time.Time) {
	*c = clock{startedAt: now}
}

func (c *clock) pause(now time.Time) {
	c.pauseStart = now
}

// resume returns the length of the pause that just ended.
func (c *clock) resume(now time.Time) time.Duration {
	d := max(0, now.Sub(c.pauseStart))
	c.totalPause += d
	c.pauseStart = time.Time{}
	return d
}

func (c *clock) played(now time.Time) time.Duration {
	d := now.Sub(c.startedAt) - c.totalPause
	if !c.pauseStart.IsZero() {
		d -= now.Sub(c.pauseStart)
	}
	return max(0, d)
}

func accuracy(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
