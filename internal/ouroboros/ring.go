package ouroboros

import (
	"image"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/drillz/internal/difficulty"
)

// Capacity is the fixed number of slots in the ring.
const Capacity = 12

// Answer is the outcome of SubmitAnswer.
type Answer struct {
	Handled bool
	Blocked bool
	Correct bool
	Score   int

	// CorrectAnswer and Lockout are set on a wrong answer.
	CorrectAnswer int
	Lockout       time.Duration

	// Tail is non-nil when the move caught the tail.
	Tail    *TailBonus
	LevelUp bool
}

// TailBonus is awarded for landing on the tail before it expires.
type TailBonus struct {
	Index int
	Bonus int
}

// Key is the outcome of HandleKey. Digits and Backspace are edits to an
// answer buffer owned by the caller.
type Key struct {
	Handled   bool
	Paused    bool
	Input     string
	Backspace bool
}

// Slot is a challenge with its ring index, as returned by Visible.
type Slot struct {
	Index     int
	Challenge Challenge
	Ahead     bool
}

// Ring is the rotating challenge buffer and the game state scored on it. It
// is not safe for concurrent use.
type Ring struct {
	rng   *rand.Rand
	slots []*Challenge
	cur   int

	level            int
	answersThisLevel int
	score            int
	streak           int
	bestStreak       int
	consecutive      int
	correct          int
	total            int

	over       bool
	paused     bool
	pauseStart time.Time
	totalPause time.Duration

	lockedOut  bool
	lockoutEnd time.Time
}

// NewRing creates an empty ring drawing challenges from rng.
func NewRing(rng *rand.Rand) *Ring {
	return &Ring{rng: rng, level: 1}
}

// Start resets the game and fills every slot. Only slot 0 starts counting
// down.
func (r *Ring) Start(now time.Time) {
	*r = Ring{rng: r.rng, level: 1}
	r.slots = make([]*Challenge, Capacity)
	for i := range r.slots {
		r.slots[i] = r.spawn(now)
	}
	r.slots[0].StartExpiration(now)
}

func (r *Ring) spawn(now time.Time) *Challenge {
	c := Generate(r.rng, r.level)
	c.Spawn(now, difficulty.Expiration(r.level))
	return c
}

// Update runs one tick at now.
func (r *Ring) Update(now time.Time) {
	if r.over || r.paused {
		return
	}
	if r.lockedOut && !now.Before(r.lockoutEnd) {
		r.lockedOut = false
	}
	if r.lockedOut {
		return
	}
	for len(r.slots) < Capacity {
		r.slots = append(r.slots, r.spawn(now))
	}
	cur := r.current()
	if cur == nil {
		return
	}
	cur.StartExpiration(now)
	if cur.IsExpired(now) {
		r.over = true
		return
	}
	for i, c := range r.slots {
		if i == r.cur || c == nil {
			continue
		}
		// Unanswered slots never expire while they wait.
		if c.Answered && c.IsExpired(now) {
			r.slots[i] = r.spawn(now)
		}
	}
}

func (r *Ring) current() *Challenge {
	if r.cur < 0 || r.cur >= len(r.slots) {
		return nil
	}
	return r.slots[r.cur]
}

// HandleKey routes a key. While the game is over or locked out only "esc"
// (pause) is handled.
func (r *Ring) HandleKey(key string, now time.Time) Key {
	if key == "esc" {
		r.TogglePause(now)
		return Key{Handled: true, Paused: r.paused}
	}
	if r.over || r.LockedOut(now) || r.paused || r.current() == nil {
		return Key{}
	}
	switch {
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		return Key{Handled: true, Input: key}
	case key == "backspace":
		return Key{Handled: true, Backspace: true}
	}
	return Key{}
}

// SubmitAnswer checks text against the current challenge. Blank input is
// blocked and not counted.
func (r *Ring) SubmitAnswer(text string, now time.Time) Answer {
	text = strings.TrimSpace(text)
	if text == "" {
		return Answer{Blocked: true}
	}
	cur := r.current()
	if r.over || r.paused || r.LockedOut(now) || cur == nil {
		return Answer{}
	}

	got, err := strconv.Atoi(text)
	r.total++
	if err != nil || got != cur.Answer {
		return r.wrong(cur, now)
	}

	cur.Answered = true
	res := Answer{Handled: true, Correct: true, Score: r.points(cur, now)}
	r.score += res.Score
	r.streak++
	r.consecutive++
	r.bestStreak = max(r.bestStreak, r.streak)
	r.correct++
	r.answersThisLevel++
	if r.answersThisLevel >= difficulty.OuroborosAnswersPerLevel {
		r.levelUp(now)
		res.LevelUp = true
	}

	r.cur = (r.cur + 1) % Capacity
	res.Tail = r.eatTail(now)

	// Landing on a slot answered a lap ago replaces it; a fresh one is kept
	// so the player can plan ahead.
	if r.slots[r.cur].Answered {
		r.slots[r.cur] = r.spawn(now)
	}
	r.slots[r.cur].StartExpiration(now)
	return res
}

// points scores a correct answer on c using the streak before this answer.
func (r *Ring) points(c *Challenge, now time.Time) int {
	speed := int(math.Floor(c.TimeRemaining(now).Seconds() * 2))
	streakBonus := min(r.streak, 50)
	levelMult := 1 + float64(r.level-1)*0.05
	streakMult := 1.0
	if r.IsOnStreak() {
		streakMult = 1.2
	}
	return int(math.Floor(float64(10+speed+streakBonus) * levelMult * streakMult))
}

func (r *Ring) wrong(cur *Challenge, now time.Time) Answer {
	lock := difficulty.Lockout(r.level)
	r.lockedOut = true
	r.lockoutEnd = now.Add(lock)
	r.streak = 0
	r.consecutive = 0
	return Answer{
		Handled:       true,
		CorrectAnswer: cur.Answer,
		Lockout:       lock,
	}
}

func (r *Ring) eatTail(now time.Time) *TailBonus {
	idx, tail, ok := r.Tail(now)
	if !ok || idx != r.cur || !now.Before(tail.ExpiresAt()) {
		return nil
	}
	bonus := 50 + int(math.Floor(tail.TimeRemaining(now).Seconds()*5))
	r.score += bonus
	fresh := r.spawn(now)
	r.slots[idx] = fresh
	fresh.StartExpiration(now)
	return &TailBonus{Index: idx, Bonus: bonus}
}

func (r *Ring) levelUp(now time.Time) {
	r.level++
	r.answersThisLevel = 0
	d := difficulty.Expiration(r.level)
	for _, c := range r.slots {
		if c != nil {
			c.RecalculateExpiresAt(d, now)
		}
	}
}

// TogglePause pauses, or resumes and pushes every running deadline back by
// the paused time.
func (r *Ring) TogglePause(now time.Time) {
	r.paused = !r.paused
	if r.paused {
		r.pauseStart = now
		return
	}
	if r.pauseStart.IsZero() {
		return
	}
	d := now.Sub(r.pauseStart)
	r.totalPause += d
	r.pauseStart = time.Time{}
	for _, c := range r.slots {
		if c != nil {
			c.Shift(d)
		}
	}
	if r.lockedOut {
		r.lockoutEnd = r.lockoutEnd.Add(d)
	}
}

// Tail returns the oldest answered challenge that has not expired. Ties on
// SpawnedAt go to the lowest index.
func (r *Ring) Tail(now time.Time) (int, Challenge, bool) {
	idx := -1
	for i, c := range r.slots {
		if c == nil || !c.Answered || c.IsExpired(now) {
			continue
		}
		if idx < 0 || c.SpawnedAt.Before(r.slots[idx].SpawnedAt) {
			idx = i
		}
	}
	if idx < 0 {
		return -1, Challenge{}, false
	}
	return idx, *r.slots[idx], true
}

// IsOnTail reports whether the cursor is at most one step before a live
// tail.
func (r *Ring) IsOnTail(now time.Time) bool {
	idx, tail, ok := r.Tail(now)
	if !ok || !now.Before(tail.ExpiresAt()) {
		return false
	}
	dist := idx - r.cur
	if dist < 0 {
		dist += Capacity
	}
	return dist <= 1
}

// IsOnStreak reports whether the consecutive-correct count is a positive
// multiple of 10.
func (r *Ring) IsOnStreak() bool {
	return r.consecutive > 0 && r.consecutive%10 == 0
}

// StreakRange returns the window of the last ten consecutive answers.
func (r *Ring) StreakRange() (start, end int, ok bool) {
	if r.consecutive == 0 {
		return 0, 0, false
	}
	return max(0, r.consecutive-10), r.consecutive, true
}

// Visible returns the three challenges ahead of the cursor, then answered
// ones behind it: unexpired first, then at most five expired.
func (r *Ring) Visible(now time.Time) []Slot {
	if len(r.slots) == 0 {
		return nil
	}
	var out []Slot
	for i := 1; i <= 3; i++ {
		idx := (r.cur + i) % Capacity
		if c := r.slots[idx]; c != nil {
			out = append(out, Slot{Index: idx, Challenge: *c, Ahead: true})
		}
	}
	var live, expired []Slot
	for i := 1; i <= 10; i++ {
		idx := (r.cur - i + Capacity) % Capacity
		c := r.slots[idx]
		if c == nil || !c.Answered {
			continue
		}
		if c.IsExpired(now) {
			expired = append(expired, Slot{Index: idx, Challenge: *c})
		} else {
			live = append(live, Slot{Index: idx, Challenge: *c})
		}
	}
	out = append(out, live...)
	if len(expired) > 5 {
		expired = expired[:5]
	}
	return append(out, expired...)
}

// Place assigns layout positions to slots that have none.
func (r *Ring) Place(points []image.Point) {
	for i, c := range r.slots {
		if c != nil && i < len(points) {
			c.SetPosition(points[i])
		}
	}
}

// Slots returns copies of every slot in index order.
func (r *Ring) Slots() []Challenge {
	out := make([]Challenge, len(r.slots))
	for i, c := range r.slots {
		if c != nil {
			out[i] = *c
		}
	}
	return out
}

// Current returns a copy of the current challenge.
func (r *Ring) Current() (Challenge, bool) {
	c := r.current()
	if c == nil {
		return Challenge{}, false
	}
	return *c, true
}

// LockedOut reports whether a wrong-answer lockout is still running at now.
func (r *Ring) LockedOut(now time.Time) bool {
	return r.lockedOut && now.Before(r.lockoutEnd)
}

// Accuracy is the rounded percentage of correct submissions.
func (r *Ring) Accuracy() int {
	if r.total == 0 {
		return 0
	}
	return int(math.Round(float64(r.correct) / float64(r.total) * 100))
}

func (r *Ring) CurrentIndex() int { return r.cur }
func (r *Ring) Level() int { return r.level }
func (r *Ring) Score() int { return r.score }
func (r *Ring) Streak() int { return r.streak }
func (r *Ring) BestStreak() int { return r.bestStreak }
func (r *Ring) ConsecutiveCorrect() int { return r.consecutive }
func (r *Ring) Correct() int { return r.correct }
func (r *Ring) Total() int { return r.total }
func (r *Ring) Over() bool { return r.over }
func (r *Ring) Paused() bool { return r.paused }
func (r *Ring) LockoutEnd() time.Time { return r.lockoutEnd }
func (r *Ring) TotalPause() time.Duration { return r.totalPause }
func (r *Ring) AnswersThisLevel() int { return r.answersThisLevel }
