package session

import (
	"context"
	"image"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/drillz/internal/ouroboros"
	"github.com/abhisek/drillz/internal/records"
)

func startOuroboros(t *testing.T) *OuroborosGame {
	t.Helper()
	opts, _ := testOptions(t)
	g := NewOuroboros(opts)
	g.Start(t0)
	require.Equal(t, PhaseActive, g.Phase())
	return g
}

func currentAnswer(g *OuroborosGame, now time.Time) string {
	return strconv.Itoa(g.Snapshot(now).Current.Answer)
}

func TestOuroboros_Start(t *testing.T) {
	g := startOuroboros(t)
	snap := g.Snapshot(t0)

	assert.Len(t, snap.Slots, ouroboros.Capacity)
	assert.Equal(t, 0, snap.CurrentIndex)
	assert.True(t, snap.Current.Started())
	assert.InDelta(t, 100, snap.Percent, 0.001)
	assert.Equal(t, ouroboros.BandOK, snap.Band)
	assert.Equal(t, -1, snap.TailAt)
}

func TestOuroboros_CorrectAnswer(t *testing.T) {
	g := startOuroboros(t)
	now := t0.Add(time.Second)

	// floor((10 + floor(17s * 2)) * 1.0).
	out := g.Submit(currentAnswer(g, now), now)
	assert.True(t, out.Answered)
	assert.True(t, out.Correct)
	assert.Equal(t, 44, out.Points)

	snap := g.Snapshot(now)
	assert.Equal(t, 1, snap.CurrentIndex)
	assert.Equal(t, 44, snap.Score)
	assert.Equal(t, 0, snap.TailAt, "the answered challenge is the tail")
}

func TestOuroboros_BlankAndWrong(t *testing.T) {
	g := startOuroboros(t)

	assert.Equal(t, Outcome{}, g.Submit("  ", t0))

	now := t0.Add(time.Second)
	want := currentAnswer(g, now)
	out := g.Submit("999", now)
	assert.True(t, out.Answered)
	assert.False(t, out.Correct)
	assert.Equal(t, want, out.CorrectAnswer)

	snap := g.Snapshot(now)
	assert.True(t, snap.LockedOut)
	assert.Equal(t, 2300*time.Millisecond, snap.LockoutIn)

	// Digits and answers are ignored until the lockout ends.
	assert.False(t, g.HandleKey("4", now.Add(time.Second)).Handled)
	assert.False(t, g.Submit(want, now.Add(2*time.Second)).Handled)

	g.Update(now.Add(2300 * time.Millisecond))
	assert.True(t, g.HandleKey("4", now.Add(2300*time.Millisecond)).Handled)
}

func TestOuroboros_ExpiryEndsAndRecords(t *testing.T) {
	opts, mem := testOptions(t)
	g := NewOuroboros(opts)
	g.Start(t0)

	now := t0.Add(time.Second)
	g.Submit(currentAnswer(g, now), now)

	// Slot 1 started counting at 1s.
	g.Update(t0.Add(18 * time.Second))
	assert.False(t, g.Over())
	g.Update(t0.Add(19 * time.Second))
	require.True(t, g.Over())

	sum, ok := g.Summary()
	require.True(t, ok)
	assert.Equal(t, GameOuroboros, sum.Game)
	assert.Equal(t, 44, sum.Score)
	assert.Equal(t, 1, sum.BestStreak)
	assert.Equal(t, 100, sum.Accuracy)
	assert.True(t, sum.NewHigh)
	assert.Equal(t, 19*time.Second, sum.Duration)

	book := records.NewBook(mem, nil)
	ctx := context.Background()
	assert.Equal(t, 44, book.OuroborosHighScore(ctx))
	assert.Equal(t, 1, book.OuroborosStats(ctx).TotalGames)

	// Repeated ticks do not record again.
	g.Update(t0.Add(20 * time.Second))
	games, _ := mem.RecentGames(ctx, 10)
	assert.Len(t, games, 1)

	// A second game sees the stored high score.
	g2 := NewOuroboros(opts)
	g2.Start(t0)
	assert.Equal(t, 44, g2.Snapshot(t0).High)
}

func TestOuroboros_PauseKeepsDeadlines(t *testing.T) {
	g := startOuroboros(t)

	k := g.HandleKey("esc", t0.Add(5*time.Second))
	assert.True(t, k.Paused)
	assert.Equal(t, PhasePaused, g.Phase())
	assert.False(t, g.Submit(currentAnswer(g, t0), t0.Add(6*time.Second)).Handled)

	g.Update(t0.Add(time.Minute))
	assert.False(t, g.Over())

	g.TogglePause(t0.Add(65 * time.Second))
	assert.Equal(t, PhaseActive, g.Phase())
	remaining := g.Snapshot(t0.Add(65 * time.Second)).Current.TimeRemaining(t0.Add(65 * time.Second))
	assert.Equal(t, 13*time.Second, remaining)

	g.Quit(t0.Add(70 * time.Second))
	sum, _ := g.Summary()
	assert.Equal(t, 10*time.Second, sum.Duration)
}

func TestOuroboros_LevelUpFlag(t *testing.T) {
	g := startOuroboros(t)
	now := t0
	var out Outcome
	for range 8 {
		now = now.Add(500 * time.Millisecond)
		out = g.Submit(currentAnswer(g, now), now)
		require.True(t, out.Correct)
	}
	assert.True(t, out.LevelUp)
	snap := g.Snapshot(now)
	assert.Equal(t, 2, snap.Level)
	assert.True(t, snap.LevelUp)
	assert.False(t, g.Snapshot(now.Add(LevelUpBanner)).LevelUp)
}

func TestOuroboros_Place(t *testing.T) {
	g := startOuroboros(t)
	pts := make([]image.Point, ouroboros.Capacity)
	for i := range pts {
		pts[i] = image.Pt(i, i*2)
	}
	g.Place(pts)

	for i, c := range g.Snapshot(t0).Slots {
		p, ok := c.Position()
		require.True(t, ok)
		assert.Equal(t, pts[i], p)
	}
}

func TestOuroboros_IgnoredBeforeStart(t *testing.T) {
	opts, _ := testOptions(t)
	g := NewOuroboros(opts)

	assert.Equal(t, ouroboros.Key{}, g.HandleKey("esc", t0))
	assert.Equal(t, Outcome{}, g.Submit("4", t0))
	g.Update(t0)
	assert.Equal(t, PhaseReady, g.Phase())
}
