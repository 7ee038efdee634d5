package drill

import (
	"slices"

	"github.com/abhisek/drillz/internal/fraction"
)

// Task is the kind-specific payload of a drill. The concrete types below are
// the only implementations.
type Task interface {
	task()
}

// OrderingTask holds five fractions and the indices picked so far.
type OrderingTask struct {
	Fractions []fraction.Fraction
	Selected  []int
}

// CompareTask is a Bigger/Smaller pair.
type CompareTask struct {
	Left, Right fraction.Fraction
}

// DecimalTask asks for the decimal value of Fraction.
type DecimalTask struct {
	Fraction fraction.Fraction
}

// BetweenTask asks for the midpoint of Low and High.
type BetweenTask struct {
	Low, High fraction.Fraction
}

// Op is the operation of an ArithmeticTask.
type Op int

const (
	OpAdd Op = iota
	OpSubtract
)

func (o Op) String() string {
	if o == OpSubtract {
		return "-"
	}
	return "+"
}

// ArithmeticTask asks for A Op B.
type ArithmeticTask struct {
	A, B fraction.Fraction
	Op   Op
}

// MixedTask asks for Mixed as an improper fraction.
type MixedTask struct {
	Mixed fraction.Mixed
}

// DifferenceTask asks for Larger - Smaller.
type DifferenceTask struct {
	Larger, Smaller fraction.Fraction
}

// Field selects which Inches to Feet entry receives digits.
type Field int

const (
	FeetField Field = iota
	InchesField
)

// InchesTask asks to split Total inches into feet and inches.
type InchesTask struct {
	Total  int
	Feet   string
	Inches string
	Field  Field
}

func (*OrderingTask) task()   {}
func (*CompareTask) task()    {}
func (*DecimalTask) task()    {}
func (*BetweenTask) task()    {}
func (*ArithmeticTask) task() {}
func (*MixedTask) task()      {}
func (*DifferenceTask) task() {}
func (*InchesTask) task()     {}

// newTask generates a fresh payload for kind.
func newTask(kind Kind, gen *fraction.Generator, level int) Task {
	switch kind {
	case Ordering:
		return &OrderingTask{Fractions: gen.Unique(5, level)}
	case BiggerSmaller:
		a, b := gen.Pair(level, true, true)
		return &CompareTask{Left: a, Right: b}
	case ToDecimal:
		return &DecimalTask{Fraction: gen.RandomProper(level)}
	case BetweenMarks:
		a, b := gen.Pair(level, false, false)
		if a.Compare(b) > 0 {
			a, b = b, a
		}
		return &BetweenTask{Low: a, High: b}
	case AddSubtract:
		a, b := gen.Pair(level, false, false)
		op := OpAdd
		if gen.Coin() {
			op = OpSubtract
		}
		return &ArithmeticTask{A: a, B: b, Op: op}
	case MixedToImproper:
		return &MixedTask{Mixed: gen.MixedNumber(level)}
	case Difference:
		a, b := gen.Pair(level, false, false)
		if a.Compare(b) < 0 {
			a, b = b, a
		}
		return &DifferenceTask{Larger: a, Smaller: b}
	case InchesToFeet:
		return &InchesTask{Total: gen.Inches()}
	}
	return nil
}

// snapshot returns a copy of t that shares no memory with the drill.
func snapshot(t Task) Task {
	switch t := t.(type) {
	case *OrderingTask:
		return &OrderingTask{
			Fractions: slices.Clone(t.Fractions),
			Selected:  slices.Clone(t.Selected),
		}
	case *CompareTask:
		c := *t
		return &c
	case *DecimalTask:
		c := *t
		return &c
	case *BetweenTask:
		c := *t
		return &c
	case *ArithmeticTask:
		c := *t
		return &c
	case *MixedTask:
		c := *t
		return &c
	case *DifferenceTask:
		c := *t
		return &c
	case *InchesTask:
		c := *t
		return &c
	}
	return nil
}
