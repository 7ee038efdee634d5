package session

import (
	"context"
	"image"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/drillz/internal/ouroboros"
)

// OuroborosSnapshot is the read-only view of an ouroboros game for one
// frame.
type OuroborosSnapshot struct {
	Phase      Phase
	Score      int
	Level      int
	Streak     int
	BestStreak int
	Accuracy   int

	// High is the stored high score when the game started.
	High int

	Current      ouroboros.Challenge
	CurrentIndex int
	Percent      float64
	Band         ouroboros.Band

	LockedOut bool
	LockoutIn time.Duration

	OnTail   bool
	OnStreak bool
	TailAt   int // -1 without a tail
	LevelUp  bool

	Slots   []ouroboros.Challenge
	Visible []ouroboros.Slot
}

// OuroborosGame wraps a Ring with session bookkeeping. It is not safe for
// concurrent use.
type OuroborosGame struct {
	opts Options
	ring *ouroboros.Ring

	phase        Phase
	sessionID    string
	clock        clock
	high         int
	levelUpUntil time.Time
	summary      *Summary
}

// NewOuroboros creates a game that has not started.
func NewOuroboros(opts Options) *OuroborosGame {
	opts = opts.withDefaults()
	return &OuroborosGame{opts: opts, ring: ouroboros.NewRing(opts.RNG)}
}

// Start fills the ring and starts the first countdown.
func (g *OuroborosGame) Start(now time.Time) {
	g.ring.Start(now)
	g.phase = PhaseActive
	g.sessionID = uuid.NewString()
	g.clock.start(now)
	g.levelUpUntil = time.Time{}
	g.summary = nil
	g.high = 0
	if g.opts.Book != nil {
		g.high = g.opts.Book.OuroborosHighScore(context.Background())
	}
}

// Update runs one ring tick and ends the game when the current challenge
// expires.
func (g *OuroborosGame) Update(now time.Time) {
	if g.phase != PhaseActive {
		return
	}
	g.ring.Update(now)
	if g.ring.Over() {
		g.end(now)
	}
}

// HandleKey routes a key. Digits and Backspace come back as edits for the
// caller's input buffer; "esc" toggles pause.
func (g *OuroborosGame) HandleKey(key string, now time.Time) ouroboros.Key {
	if g.phase != PhaseActive && g.phase != PhasePaused {
		return ouroboros.Key{}
	}
	k := g.ring.HandleKey(key, now)
	g.syncPause(now)
	return k
}

// TogglePause pauses or resumes the ring.
func (g *OuroborosGame) TogglePause(now time.Time) {
	if g.phase != PhaseActive && g.phase != PhasePaused {
		return
	}
	g.ring.TogglePause(now)
	g.syncPause(now)
}

func (g *OuroborosGame) syncPause(now time.Time) {
	switch {
	case g.ring.Paused() && g.phase == PhaseActive:
		g.phase = PhasePaused
		g.clock.pause(now)
	case !g.ring.Paused() && g.phase == PhasePaused:
		d := g.clock.resume(now)
		if !g.levelUpUntil.IsZero() {
			g.levelUpUntil = g.levelUpUntil.Add(d)
		}
		g.phase = PhaseActive
	}
}

// Submit checks text against the current challenge.
func (g *OuroborosGame) Submit(text string, now time.Time) Outcome {
	if g.phase != PhaseActive {
		return Outcome{}
	}
	ans := g.ring.SubmitAnswer(text, now)
	if ans.Blocked {
		return Outcome{}
	}
	out := Outcome{
		Handled:  ans.Handled,
		Answered: ans.Handled,
		Correct:  ans.Correct,
		Points:   ans.Score,
		LevelUp:  ans.LevelUp,
	}
	if ans.Tail != nil {
		out.Points += ans.Tail.Bonus
	}
	if ans.Handled && !ans.Correct {
		out.CorrectAnswer = strconv.Itoa(ans.CorrectAnswer)
	}
	if ans.LevelUp {
		g.levelUpUntil = now.Add(LevelUpBanner)
	}
	return out
}

// Place assigns terminal cells to the ring slots.
func (g *OuroborosGame) Place(points []image.Point) { g.ring.Place(points) }

// Quit ends the game early and records it.
func (g *OuroborosGame) Quit(now time.Time) {
	if g.phase == PhaseActive || g.phase == PhasePaused {
		g.end(now)
	}
}

func (g *OuroborosGame) end(now time.Time) {
	if g.phase == PhaseOver {
		return
	}
	if g.phase == PhasePaused {
		g.clock.resume(now)
	}
	g.phase = PhaseOver

	s := &Summary{
		SessionID:      g.sessionID,
		Game:           GameOuroboros,
		Score:          g.ring.Score(),
		Level:          g.ring.Level(),
		BestStreak:     g.ring.BestStreak(),
		TotalQuestions: g.ring.Total(),
		CorrectAnswers: g.ring.Correct(),
		Accuracy:       g.ring.Accuracy(),
		Duration:       g.clock.played(now),
	}
	s.record(context.Background(), g.opts.Book, "", now)
	g.summary = s
	g.opts.Log.Info("game over", "game", GameOuroboros, "score", s.Score, "level", s.Level)
}

// Phase returns the current phase.
func (g *OuroborosGame) Phase() Phase { return g.phase }

// Over reports whether the game has ended.
func (g *OuroborosGame) Over() bool { return g.phase == PhaseOver }

// Summary returns the result once the game is over.
func (g *OuroborosGame) Summary() (Summary, bool) {
	if g.summary == nil {
		return Summary{}, false
	}
	return *g.summary, true
}

// Snapshot returns the state to render at now.
func (g *OuroborosGame) Snapshot(now time.Time) OuroborosSnapshot {
	snap := OuroborosSnapshot{
		Phase:        g.phase,
		Score:        g.ring.Score(),
		Level:        g.ring.Level(),
		Streak:       g.ring.Streak(),
		BestStreak:   g.ring.BestStreak(),
		Accuracy:     g.ring.Accuracy(),
		High:         g.high,
		CurrentIndex: g.ring.CurrentIndex(),
		LockedOut:    g.ring.LockedOut(now),
		OnTail:       g.ring.IsOnTail(now),
		OnStreak:     g.ring.IsOnStreak(),
		TailAt:       -1,
		LevelUp:      !g.levelUpUntil.IsZero() && now.Before(g.levelUpUntil),
		Slots:        g.ring.Slots(),
		Visible:      g.ring.Visible(now),
	}
	if snap.LockedOut {
		snap.LockoutIn = g.ring.LockoutEnd().Sub(now)
	}
	if cur, ok := g.ring.Current(); ok {
		snap.Current = cur
		snap.Percent = cur.Percent(now)
		snap.Band = ouroboros.BandFor(snap.Percent)
	}
	if idx, _, ok := g.ring.Tail(now); ok {
		snap.TailAt = idx
	}
	return snap
}
