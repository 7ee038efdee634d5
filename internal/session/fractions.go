package session

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/drillz/internal/deferred"
	"github.com/abhisek/drillz/internal/difficulty"
	"github.com/abhisek/drillz/internal/drill"
)

const (
	// StartingLives is the number of misses a fractions game survives.
	StartingLives = 3

	// CorrectDelay and WrongDelay are how long feedback stays up before the
	// next drill. Wrong answers leave time to read the correct answer.
	CorrectDelay = 1500 * time.Millisecond
	WrongDelay   = 4000 * time.Millisecond
)

// RandomModeName is shown when drills are picked at random.
const RandomModeName = "Random"

type fractionsStep int

const nextDrill fractionsStep = 1

// FractionsSnapshot is the read-only view of a fractions game for one frame.
type FractionsSnapshot struct {
	Phase      Phase
	Mode       string
	Score      int
	Level      int
	Lives      int
	Streak     int
	BestStreak int

	// LevelUp is set for LevelUpBanner after the level changes.
	LevelUp bool

	// Waiting is set while feedback is shown before the next drill.
	Waiting bool

	Drill drill.Display
}

// FractionsGame is one game of fraction drills with lives. It is not safe
// for concurrent use.
type FractionsGame struct {
	opts   Options
	fixed  drill.Kind
	random bool

	phase     Phase
	sessionID string
	clock     clock

	score            int
	level            int
	lives            int
	streak           int
	bestStreak       int
	correct          int
	total            int
	answersThisLevel int
	levelUpUntil     time.Time

	drill   *drill.Drill
	pending deferred.Action[fractionsStep]
	summary *Summary
}

// NewFractions creates a game of the named drill. An empty or unknown name
// picks a random drill each time.
func NewFractions(mode string, opts Options) *FractionsGame {
	g := &FractionsGame{opts: opts.withDefaults(), level: 1, lives: StartingLives}
	if k, ok := drill.ByName(mode); ok {
		g.fixed = k
	} else {
		g.random = true
	}
	return g
}

// Mode returns the drill name or RandomModeName.
func (g *FractionsGame) Mode() string {
	if g.random {
		return RandomModeName
	}
	return g.fixed.String()
}

// Start resets the game and serves the first drill.
func (g *FractionsGame) Start(now time.Time) {
	g.phase = PhaseActive
	g.sessionID = uuid.NewString()
	g.clock.start(now)
	g.score = 0
	g.level = 1
	g.lives = StartingLives
	g.streak = 0
	g.bestStreak = 0
	g.correct = 0
	g.total = 0
	g.answersThisLevel = 0
	g.levelUpUntil = time.Time{}
	g.summary = nil
	g.pending.Cancel()
	g.startDrill(now)
}

func (g *FractionsGame) startDrill(now time.Time) {
	if g.drill != nil {
		g.drill.End()
	}
	kind := g.fixed
	if g.random {
		kind = drill.Random(g.opts.RNG)
	}
	g.drill = drill.New(kind, g.opts.RNG)
	g.drill.Start(g.level, timeLimit(kind, g.level), now)
	g.opts.Log.Debug("drill started", "kind", kind.String(), "level", g.level)
}

func timeLimit(kind drill.Kind, level int) time.Duration {
	if kind == drill.BiggerSmaller {
		return difficulty.SurvivalStart
	}
	return time.Duration(difficulty.TimeLimit(kind, level)) * time.Second
}

// Update runs one tick at now: the pending next drill fires, or the drill
// clock advances and may time out.
func (g *FractionsGame) Update(now time.Time) {
	if g.phase != PhaseActive || g.drill == nil {
		return
	}
	if _, ok := g.pending.Due(now); ok {
		g.startDrill(now)
		return
	}
	if !g.drill.Update(now) {
		g.timeout(now)
	}
}

// timeout handles a drill clock reaching zero. Bigger/Smaller is a survival
// round, so its clock running out ends the game.
func (g *FractionsGame) timeout(now time.Time) {
	g.streak = 0
	if g.drill.Kind() == drill.BiggerSmaller {
		g.end(now)
		return
	}
	g.loseLife(now)
	if g.phase == PhaseActive {
		g.startDrill(now)
	}
}

// HandleKey routes a key press. "esc" toggles pause.
func (g *FractionsGame) HandleKey(key string, now time.Time) Outcome {
	if g.phase == PhaseReady || g.phase == PhaseOver {
		return Outcome{}
	}
	if key == "esc" {
		g.TogglePause(now)
		return Outcome{Handled: true, Paused: g.phase == PhasePaused}
	}
	if g.phase == PhasePaused {
		return Outcome{}
	}
	return g.apply(g.drill.HandleInput(key, now), now)
}

// HandleTouch answers a Bigger/Smaller pair by side.
func (g *FractionsGame) HandleTouch(side drill.Side, now time.Time) Outcome {
	if g.phase != PhaseActive {
		return Outcome{}
	}
	return g.apply(g.drill.HandleTouch(side, now), now)
}

func (g *FractionsGame) apply(res drill.Result, now time.Time) Outcome {
	out := Outcome{Handled: res.Handled}
	if !res.Handled || !(res.Complete || res.Continue) {
		return out
	}
	out.Answered = true
	out.Correct = res.Correct
	out.CorrectAnswer = res.CorrectAnswer
	out.Points, out.LevelUp = g.answer(res, now)

	if res.Complete && g.phase == PhaseActive {
		delay := WrongDelay
		if res.Correct {
			delay = CorrectDelay
		}
		g.pending.Schedule(nextDrill, now.Add(delay))
	}
	out.GameOver = g.phase == PhaseOver
	return out
}

// answer scores one submitted answer and reports the points added and
// whether the level changed.
func (g *FractionsGame) answer(res drill.Result, now time.Time) (int, bool) {
	g.total++
	if !res.Correct {
		g.loseLife(now)
		g.streak = 0
		return 0, false
	}

	points := int(math.Floor(float64(res.Score)*difficulty.LevelMultiplier(g.level))) +
		difficulty.StreakBonus(g.streak)
	g.score += points
	g.streak++
	g.bestStreak = max(g.bestStreak, g.streak)
	g.correct++
	g.answersThisLevel++

	if g.answersThisLevel >= difficulty.AnswersPerLevel(g.drill.Kind(), g.level) {
		g.level++
		g.answersThisLevel = 0
		g.levelUpUntil = now.Add(LevelUpBanner)
		g.opts.Log.Debug("level up", "level", g.level)
		return points, true
	}
	return points, false
}

func (g *FractionsGame) loseLife(now time.Time) {
	g.lives--
	if g.lives <= 0 {
		g.end(now)
	}
}

// TogglePause pauses, or resumes and pushes every clock back by the paused
// time.
func (g *FractionsGame) TogglePause(now time.Time) {
	switch g.phase {
	case PhaseActive:
		g.phase = PhasePaused
		g.clock.pause(now)
	case PhasePaused:
		d := g.clock.resume(now)
		g.drill.Shift(d)
		g.pending.Shift(d)
		if !g.levelUpUntil.IsZero() {
			g.levelUpUntil = g.levelUpUntil.Add(d)
		}
		g.phase = PhaseActive
	}
}

// Quit ends the game early. The result is recorded like any other.
func (g *FractionsGame) Quit(now time.Time) {
	if g.phase == PhaseActive || g.phase == PhasePaused {
		g.end(now)
	}
}

// end finishes the game once. Later calls are no-ops.
func (g *FractionsGame) end(now time.Time) {
	if g.phase == PhaseOver {
		return
	}
	if g.phase == PhasePaused {
		g.clock.resume(now)
	}
	g.phase = PhaseOver
	g.pending.Cancel()
	if g.drill != nil {
		g.drill.End()
	}

	s := &Summary{
		SessionID:      g.sessionID,
		Game:           GameFractions,
		Mode:           g.Mode(),
		Score:          g.score,
		Level:          g.level,
		BestStreak:     g.bestStreak,
		TotalQuestions: g.total,
		CorrectAnswers: g.correct,
		Accuracy:       accuracy(g.correct, g.total),
		Duration:       g.clock.played(now),
	}
	mode := ""
	if !g.random {
		mode = g.fixed.String()
	}
	s.record(context.Background(), g.opts.Book, mode, now)
	g.summary = s
	g.opts.Log.Info("game over",
		"game", GameFractions, "mode", s.Mode, "score", s.Score, "level", s.Level)
}

// Phase returns the current phase.
func (g *FractionsGame) Phase() Phase { return g.phase }

// Over reports whether the game has ended.
func (g *FractionsGame) Over() bool { return g.phase == PhaseOver }

// Summary returns the result once the game is over.
func (g *FractionsGame) Summary() (Summary, bool) {
	if g.summary == nil {
		return Summary{}, false
	}
	return *g.summary, true
}

// Snapshot returns the state to render at now.
func (g *FractionsGame) Snapshot(now time.Time) FractionsSnapshot {
	snap := FractionsSnapshot{
		Phase:      g.phase,
		Mode:       g.Mode(),
		Score:      g.score,
		Level:      g.level,
		Lives:      g.lives,
		Streak:     g.streak,
		BestStreak: g.bestStreak,
		LevelUp:    !g.levelUpUntil.IsZero() && now.Before(g.levelUpUntil),
		Waiting:    g.pending.Pending(),
	}
	if g.drill != nil {
		snap.Drill = g.drill.Display()
	}
	return snap
}
