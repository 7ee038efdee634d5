// Package ouroboros implements the circular multiplication game: timed
// challenges held in a fixed ring of slots with a moving cursor.
package ouroboros

import (
	"fmt"
	"image"
	"math/rand/v2"
	"time"
)

// Challenge is one multiplication question with its own clock.
//
// The deadline stays unset until StartExpiration, so a challenge can wait in
// the ring with a known duration and only count down once it is current.
type Challenge struct {
	Multiplicand int
	Multiplier   int
	Answer       int
	SpawnedAt    time.Time
	Answered     bool

	duration  time.Duration
	expiresAt time.Time
	position  image.Point
	placed    bool
}

// Generate draws a new challenge for level. Up to level 3 the multiplicand
// comes from 2-10 four times in five, otherwise from 0-10. The multiplier is
// always 0-10.
func Generate(rng *rand.Rand, level int) *Challenge {
	var a int
	if level <= 3 && rng.Float64() >= 0.2 {
		a = rng.IntN(9) + 2
	} else {
		a = rng.IntN(11)
	}
	b := rng.IntN(11)
	return &Challenge{Multiplicand: a, Multiplier: b, Answer: a * b}
}

// Spawn stamps the creation time and assigns the countdown duration.
func (c *Challenge) Spawn(now time.Time, d time.Duration) {
	if c.SpawnedAt.IsZero() {
		c.SpawnedAt = now
	}
	c.duration = d
}

// StartExpiration sets the deadline to now plus the duration. Later calls do
// nothing.
func (c *Challenge) StartExpiration(now time.Time) {
	if c.expiresAt.IsZero() && c.duration > 0 {
		c.expiresAt = now.Add(c.duration)
	}
}

// Started reports whether the countdown is running.
func (c Challenge) Started() bool { return !c.expiresAt.IsZero() }

// ExpiresAt returns the deadline, zero if not started.
func (c Challenge) ExpiresAt() time.Time { return c.expiresAt }

// Duration returns the assigned countdown length.
func (c Challenge) Duration() time.Duration { return c.duration }

// TimeRemaining is the full duration before the countdown starts and the
// non-negative time to the deadline afterwards.
func (c Challenge) TimeRemaining(now time.Time) time.Duration {
	if c.expiresAt.IsZero() {
		return c.duration
	}
	return max(0, c.expiresAt.Sub(now))
}

// IsExpired is false until the countdown starts.
func (c Challenge) IsExpired(now time.Time) bool {
	return !c.expiresAt.IsZero() && !now.Before(c.expiresAt)
}

// Percent is the remaining share of the duration, 0-100.
func (c Challenge) Percent(now time.Time) float64 {
	if c.duration <= 0 {
		return 0
	}
	return max(0, c.TimeRemaining(now).Seconds()/c.duration.Seconds()*100)
}

// RecalculateExpiresAt swaps in a new duration after a level change. A
// running countdown keeps its remaining time; only future percentages use
// the new duration.
func (c *Challenge) RecalculateExpiresAt(d time.Duration, now time.Time) {
	c.duration = d
	if c.expiresAt.IsZero() {
		return
	}
	c.expiresAt = now.Add(c.TimeRemaining(now))
}

// Shift moves a running deadline by d.
func (c *Challenge) Shift(d time.Duration) {
	if !c.expiresAt.IsZero() {
		c.expiresAt = c.expiresAt.Add(d)
	}
}

// SetPosition records the layout position. Only the first call counts.
func (c *Challenge) SetPosition(p image.Point) {
	if c.placed {
		return
	}
	c.position = p
	c.placed = true
}

// Position returns the layout position and whether one was set.
func (c Challenge) Position() (image.Point, bool) { return c.position, c.placed }

func (c Challenge) String() string {
	return fmt.Sprintf("%d × %d", c.Multiplicand, c.Multiplier)
}

// Band classifies a time-bar percentage.
type Band int

const (
	BandOK Band = iota
	BandWarning
	BandCritical
)

// BandFor returns the band for pct: critical below 20, warning below 40.
func BandFor(pct float64) Band {
	switch {
	case pct < 20:
		return BandCritical
	case pct < 40:
		return BandWarning
	}
	return BandOK
}
