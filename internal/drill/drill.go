// Package drill implements the single-question state machine shared by the
// eight fraction drills.
//
// A Drill moves inactive -> active -> completed -> inactive. Start is the only
// way in; a submission completes it and later input is rejected until the
// next Start. Bigger/Smaller never completes: it keeps serving new pairs on a
// survival clock until the clock runs out.
package drill

import (
	"math"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/abhisek/drillz/internal/deferred"
	"github.com/abhisek/drillz/internal/fraction"
)

const (
	// DecimalTolerance is the accepted error for typed decimal answers.
	DecimalTolerance = 0.001

	// FeedbackDelay is the Bigger/Smaller debounce after an answer and the
	// delay before a new pair follows a correct one.
	FeedbackDelay = 200 * time.Millisecond

	// WrongPairDelay is how long a wrong Bigger/Smaller answer stays on
	// screen before a new pair.
	WrongPairDelay = 4 * time.Second

	// SurvivalMax caps the Bigger/Smaller remaining time.
	SurvivalMax = 15 * time.Second
)

// Side is a Bigger/Smaller choice.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Result reports what an input event did.
type Result struct {
	Handled  bool
	Update   bool
	Complete bool
	Continue bool
	Correct  bool
	Score    int

	// CorrectAnswer is set on every submission.
	CorrectAnswer string
}

// Feedback describes the last submission.
type Feedback struct {
	Correct       bool
	CorrectAnswer string
	PlayerAnswer  string

	// Ordering only.
	CorrectOrder []fraction.Fraction
	PlayerOrder  []fraction.Fraction
}

// Display is a read-only snapshot for renderers.
type Display struct {
	Kind          Kind
	Level         int
	TimeLimit     time.Duration
	Remaining     time.Duration
	TimeRemaining int // whole seconds, rounded up
	Input         string
	Completed     bool
	Feedback      *Feedback
	Task          Task
}

// TimeFraction is the remaining share of the clock in [0, 1]. The survival
// clock is measured against SurvivalMax.
func (d Display) TimeFraction() float64 {
	total := d.TimeLimit
	if d.Kind == BiggerSmaller {
		total = SurvivalMax
	}
	if total <= 0 {
		return 0
	}
	return min(1, max(0, d.Remaining.Seconds()/total.Seconds()))
}

type step int

const regeneratePair step = 1

// Drill is one timed question. It is not safe for concurrent use.
type Drill struct {
	kind Kind
	gen  *fraction.Generator

	active    bool
	completed bool
	level     int
	startedAt time.Time
	limit     time.Duration
	remaining time.Duration
	input     string
	feedback  *Feedback
	task      Task

	lastAnswer   time.Time
	correctCount int
	pending      deferred.Action[step]
}

// New creates an inactive drill of kind drawing from rng.
func New(kind Kind, rng *rand.Rand) *Drill {
	return &Drill{kind: kind, gen: fraction.NewGenerator(rng)}
}

// Kind returns the drill kind.
func (d *Drill) Kind() Kind { return d.kind }

// Active reports whether the drill has been started and not ended.
func (d *Drill) Active() bool { return d.active }

// Completed reports whether an answer has been submitted.
func (d *Drill) Completed() bool { return d.completed }

// Remaining returns the time left as of the last Update or input.
func (d *Drill) Remaining() time.Duration { return d.remaining }

// Start generates a new question and starts the clock at now.
func (d *Drill) Start(level int, limit time.Duration, now time.Time) {
	d.active = true
	d.completed = false
	d.level = level
	d.startedAt = now
	d.limit = limit
	d.remaining = limit
	d.input = ""
	d.feedback = nil
	d.lastAnswer = time.Time{}
	d.correctCount = 0
	d.pending.Cancel()
	d.task = newTask(d.kind, d.gen, level)
}

// Update advances the clock to now and reports whether time is left.
// Inactive and completed drills never run out of time.
func (d *Drill) Update(now time.Time) bool {
	if !d.active {
		return true
	}
	if _, ok := d.pending.Due(now); ok {
		d.task = newTask(d.kind, d.gen, d.level)
		d.feedback = nil
	}
	if d.completed {
		return true
	}
	d.tick(now)
	return d.remaining > 0
}

// End deactivates the drill and drops any pending pair change.
func (d *Drill) End() {
	d.active = false
	d.pending.Cancel()
}

// Shift moves every clock reference forward by paused.
func (d *Drill) Shift(paused time.Duration) {
	d.startedAt = d.startedAt.Add(paused)
	if !d.lastAnswer.IsZero() {
		d.lastAnswer = d.lastAnswer.Add(paused)
	}
	d.pending.Shift(paused)
}

func (d *Drill) tick(now time.Time) {
	d.remaining = max(0, d.limit-now.Sub(d.startedAt))
}

// HandleInput routes a key. Keys use terminal names: "enter", "backspace",
// "tab", "left", "right", or a single character.
func (d *Drill) HandleInput(key string, now time.Time) Result {
	if !d.active {
		return Result{}
	}
	if t, ok := d.task.(*CompareTask); ok {
		return d.inputCompare(t, key, now)
	}
	if d.completed {
		return Result{}
	}
	switch t := d.task.(type) {
	case *OrderingTask:
		return d.inputOrdering(t, key, now)
	case *InchesTask:
		return d.inputInches(t, key, now)
	case *DecimalTask, *BetweenTask, *ArithmeticTask, *MixedTask, *DifferenceTask:
		return d.inputText(key, now)
	}
	return Result{}
}

// HandleTouch answers a Bigger/Smaller pair by side. Other drills ignore it.
func (d *Drill) HandleTouch(side Side, now time.Time) Result {
	t, ok := d.task.(*CompareTask)
	if !d.active || !ok || d.debounced(now) {
		return Result{}
	}
	return d.answerCompare(t, side, now)
}

// Display returns a snapshot of the drill.
func (d *Drill) Display() Display {
	var fb *Feedback
	if d.feedback != nil {
		c := *d.feedback
		fb = &c
	}
	return Display{
		Kind:          d.kind,
		Level:         d.level,
		TimeLimit:     d.limit,
		Remaining:     d.remaining,
		TimeRemaining: int(math.Ceil(d.remaining.Seconds())),
		Input:         d.input,
		Completed:     d.completed,
		Feedback:      fb,
		Task:          snapshot(d.task),
	}
}

// score is the base points plus the time bonus for the current clock.
func (d *Drill) score() int {
	factor := 10 - d.level
	if d.kind == BiggerSmaller {
		factor /= 2
	}
	factor = max(0, factor)
	return d.kind.BasePoints() + int(math.Floor(d.remaining.Seconds()*float64(factor)))
}

func (d *Drill) finish(correct bool, fb *Feedback) Result {
	d.completed = true
	d.feedback = fb
	res := Result{
		Handled:       true,
		Complete:      true,
		Correct:       correct,
		CorrectAnswer: fb.CorrectAnswer,
	}
	if correct {
		res.Score = d.score()
	}
	return res
}

func (d *Drill) inputOrdering(t *OrderingTask, key string, now time.Time) Result {
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(t.Fractions) {
		idx := n - 1
		if !slices.Contains(t.Selected, idx) {
			t.Selected = append(t.Selected, idx)
			d.feedback = nil
			if len(t.Selected) == len(t.Fractions) {
				return d.submitOrdering(t, now)
			}
			return Result{Handled: true, Update: true}
		}
	}
	switch {
	case key == "enter" && len(t.Selected) == len(t.Fractions):
		return d.submitOrdering(t, now)
	case key == "backspace" && len(t.Selected) > 0:
		t.Selected = t.Selected[:len(t.Selected)-1]
		d.feedback = nil
		return Result{Handled: true, Update: true}
	}
	return Result{}
}

func (d *Drill) submitOrdering(t *OrderingTask, now time.Time) Result {
	d.tick(now)
	ordered := make([]fraction.Fraction, len(t.Selected))
	for i, idx := range t.Selected {
		ordered[i] = t.Fractions[idx]
	}
	sorted := fraction.Sorted(t.Fractions)
	correct := fraction.IsAscending(ordered)
	return d.finish(correct, &Feedback{
		Correct:       correct,
		CorrectAnswer: joinFractions(sorted),
		PlayerAnswer:  joinFractions(ordered),
		CorrectOrder:  sorted,
		PlayerOrder:   ordered,
	})
}

func (d *Drill) debounced(now time.Time) bool {
	return !d.lastAnswer.IsZero() && now.Sub(d.lastAnswer) < FeedbackDelay
}

func (d *Drill) inputCompare(t *CompareTask, key string, now time.Time) Result {
	if d.debounced(now) {
		return Result{}
	}
	switch key {
	case "left", "a", "A":
		return d.answerCompare(t, Left, now)
	case "right", "d", "D":
		return d.answerCompare(t, Right, now)
	}
	return Result{}
}

func (d *Drill) answerCompare(t *CompareTask, side Side, now time.Time) Result {
	bigger := Right
	if t.Left.Compare(t.Right) > 0 {
		bigger = Left
	}
	correct := side == bigger
	d.feedback = &Feedback{
		Correct:       correct,
		CorrectAnswer: bigger.String(),
		PlayerAnswer:  side.String(),
	}
	d.lastAnswer = now
	d.tick(now)

	res := Result{
		Handled:       true,
		Continue:      true,
		Correct:       correct,
		CorrectAnswer: bigger.String(),
	}
	delay := WrongPairDelay
	if correct {
		res.Score = d.score()
		d.addSurvivalTime(now)
		d.correctCount++
		delay = FeedbackDelay
	}
	// A newer answer always replaces the pending pair change.
	d.pending.Schedule(regeneratePair, now.Add(delay))
	return res
}

// SurvivalBonus is the time a correct Bigger/Smaller answer adds after
// prior correct answers: 1.2s decaying by 0.85 each time, at least 0.3s.
func SurvivalBonus(prior int) time.Duration {
	secs := math.Max(0.3, 1.2*math.Pow(0.85, float64(prior)))
	return time.Duration(math.Round(secs*1000)) * time.Millisecond
}

func (d *Drill) addSurvivalTime(now time.Time) {
	d.limit += SurvivalBonus(d.correctCount)
	elapsed := now.Sub(d.startedAt)
	if d.limit-elapsed > SurvivalMax {
		d.limit = elapsed + SurvivalMax
	}
	d.tick(now)
}

// accepts reports whether ch may be typed into the answer of kind.
func accepts(kind Kind, ch byte) bool {
	if ch >= '0' && ch <= '9' {
		return true
	}
	switch kind {
	case ToDecimal:
		return ch == '.'
	case BetweenMarks:
		return ch == '/' || ch == '.'
	case AddSubtract:
		return ch == '/' || ch == '-'
	case MixedToImproper, Difference:
		return ch == '/'
	}
	return false
}

func (d *Drill) inputText(key string, now time.Time) Result {
	switch {
	case len(key) == 1 && accepts(d.kind, key[0]):
		d.input += key
		d.feedback = nil
		return Result{Handled: true, Update: true}
	case key == "backspace" && d.input != "":
		d.input = d.input[:len(d.input)-1]
		d.feedback = nil
		return Result{Handled: true, Update: true}
	case key == "enter" && d.input != "":
		return d.submitText(now)
	}
	return Result{}
}

func (d *Drill) submitText(now time.Time) Result {
	d.tick(now)
	var (
		correct bool
		answer  string
	)
	switch t := d.task.(type) {
	case *DecimalTask:
		want := t.Fraction.Decimal()
		got, err := strconv.ParseFloat(d.input, 64)
		correct = err == nil && math.Abs(got-want) < DecimalTolerance
		answer = decimal.NewFromFloat(want).StringFixed(4)
	case *BetweenTask:
		want := fraction.Between(t.Low, t.High)
		correct = matchesFractionOrDecimal(d.input, want)
		answer = want.Simplified().String()
	case *ArithmeticTask:
		want := fraction.Add(t.A, t.B)
		if t.Op == OpSubtract {
			want = fraction.Sub(t.A, t.B)
		}
		correct = matchesFraction(d.input, want)
		answer = want.Simplified().String()
	case *MixedTask:
		want := t.Mixed.Improper()
		correct = matchesFraction(d.input, want)
		answer = want.String()
	case *DifferenceTask:
		want := fraction.Sub(t.Larger, t.Smaller)
		correct = matchesFraction(d.input, want)
		answer = want.Simplified().String()
	}
	return d.finish(correct, &Feedback{
		Correct:       correct,
		CorrectAnswer: answer,
		PlayerAnswer:  d.input,
	})
}

func (d *Drill) inputInches(t *InchesTask, key string, now time.Time) Result {
	field := &t.Feet
	if t.Field == InchesField {
		field = &t.Inches
	}
	switch {
	case key == "tab":
		if t.Field == FeetField {
			t.Field = InchesField
		} else {
			t.Field = FeetField
		}
		return Result{Handled: true, Update: true}
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		*field += key
		d.feedback = nil
		return Result{Handled: true, Update: true}
	case key == "backspace":
		if *field != "" {
			*field = (*field)[:len(*field)-1]
		}
		d.feedback = nil
		return Result{Handled: true, Update: true}
	case key == "enter" && t.Feet != "" && t.Inches != "":
		return d.submitInches(t, now)
	}
	return Result{}
}

func (d *Drill) submitInches(t *InchesTask, now time.Time) Result {
	d.tick(now)
	wantFeet, wantInches := fraction.InchesToFeet(t.Total)
	feet, errFeet := strconv.Atoi(t.Feet)
	inches, errInches := strconv.Atoi(t.Inches)
	correct := errFeet == nil && errInches == nil && feet == wantFeet && inches == wantInches
	return d.finish(correct, &Feedback{
		Correct:       correct,
		CorrectAnswer: strconv.Itoa(wantFeet) + " ft " + strconv.Itoa(wantInches) + " in",
		PlayerAnswer:  t.Feet + " ft " + t.Inches + " in",
	})
}

// parseAnswer reads "n/d" or a bare integer.
func parseAnswer(s string) (fraction.Fraction, bool) {
	if strings.Contains(s, "/") {
		f, err := fraction.Parse(s)
		return f, err == nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fraction.Fraction{}, false
	}
	return fraction.New(n, 1), true
}

func matchesFraction(input string, want fraction.Fraction) bool {
	got, ok := parseAnswer(input)
	return ok && got.Equals(want)
}

func matchesFractionOrDecimal(input string, want fraction.Fraction) bool {
	if strings.Contains(input, "/") {
		return matchesFraction(input, want)
	}
	v, err := strconv.ParseFloat(input, 64)
	return err == nil && math.Abs(v-want.Decimal()) < DecimalTolerance
}

func joinFractions(fs []fraction.Fraction) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.String()
	}
	return strings.Join(parts, ", ")
}
