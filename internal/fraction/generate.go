package fraction

import (
	"math"
	"math/rand/v2"
)

// Denominators are the tape-measure marks a generated fraction can land on.
var Denominators = []int{1, 2, 4, 8, 16, 32, 64}

// maxAttempts bounds every retry loop in this file. When a loop runs out of
// attempts the last candidate is accepted as-is, even if it breaks the
// constraint being retried for.
const maxAttempts = 50

// Generator produces random fractions for drills. It is not safe for
// concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// MaxDenominator returns the largest denominator allowed at level.
func MaxDenominator(level int) int {
	switch {
	case level <= 3:
		return 16
	case level <= 6:
		return 32
	default:
		return 64
	}
}

// MinUniqueGap returns the minimum decimal distance between fractions in a
// generated set at level.
func MinUniqueGap(level int) float64 {
	switch {
	case level <= 3:
		return 0.01
	case level <= 6:
		return 0.005
	default:
		return 0.0025
	}
}

func denominatorsUpTo(max int) []int {
	out := make([]int, 0, len(Denominators))
	for _, d := range Denominators {
		if d <= max {
			out = append(out, d)
		}
	}
	return out
}

// pick draws a fraction with a denominator from dens and a numerator in
// 1..den-1. Denominator 1 has no proper numerator and yields 1/1.
func (g *Generator) pick(dens []int, excludeWhole bool) Fraction {
	var num, den int
	for attempt := 0; attempt < maxAttempts; attempt++ {
		den = dens[g.rng.IntN(len(dens))]
		num = 1
		if den > 1 {
			num = g.rng.IntN(den-1) + 1
		}
		if !excludeWhole || num != den {
			break
		}
	}
	return New(num, den)
}

// Random returns a fraction constrained by the level's maximum denominator.
func (g *Generator) Random(level int, excludeWhole bool) Fraction {
	return g.pick(denominatorsUpTo(MaxDenominator(level)), excludeWhole)
}

// RandomProper returns a fraction whose denominator is not 1.
func (g *Generator) RandomProper(level int) Fraction {
	f := g.Random(level, false)
	for attempt := 1; f.Denominator() == 1 && attempt < maxAttempts; attempt++ {
		f = g.Random(level, false)
	}
	return f
}

// Unique returns count fractions whose pairwise decimal gaps are at least
// MinUniqueGap(level). Each slot retries up to maxAttempts candidates; if
// none fits, the last candidate is used and the set may contain near
// duplicates.
func (g *Generator) Unique(count, level int) []Fraction {
	gap := MinUniqueGap(level)
	out := make([]Fraction, 0, count)
	for len(out) < count {
		var candidate Fraction
		for attempt := 0; attempt < maxAttempts*4; attempt++ {
			candidate = g.Random(level, false)
			if farFromAll(candidate, out, gap) {
				break
			}
		}
		out = append(out, candidate)
	}
	return out
}

func farFromAll(f Fraction, set []Fraction, gap float64) bool {
	for _, existing := range set {
		if math.Abs(existing.Decimal()-f.Decimal()) < gap {
			return false
		}
	}
	return true
}

// Pair returns two fractions with different decimal values. When include32nds
// is set the denominators are fixed to 32 and below regardless of level.
// Above level 3 the pair must also differ by at least 0.01 (levels 4-6) or
// 0.005 (7+). After maxAttempts the last pair is returned unchecked.
func (g *Generator) Pair(level int, include32nds, excludeWhole bool) (Fraction, Fraction) {
	var a, b Fraction
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if include32nds {
			dens := denominatorsUpTo(32)
			a = g.pick(dens, excludeWhole)
			b = g.pick(dens, excludeWhole)
		} else {
			a = g.Random(level, excludeWhole)
			b = g.Random(level, excludeWhole)
		}
		if a.Equals(b) {
			continue
		}
		if level > 3 {
			minDiff := 0.01
			if level > 6 {
				minDiff = 0.005
			}
			if math.Abs(a.Decimal()-b.Decimal()) < minDiff {
				continue
			}
		}
		break
	}
	return a, b
}

// Mixed is a mixed number: Whole and Num/Den.
type Mixed struct {
	Whole int
	Num   int
	Den   int
}

// Improper converts the mixed number to an improper fraction.
func (m Mixed) Improper() Fraction {
	return MixedToImproper(m.Whole, m.Num, m.Den)
}

// MixedNumber returns 1-3 wholes plus a proper fraction (never x/1).
func (g *Generator) MixedNumber(level int) Mixed {
	whole := g.rng.IntN(3) + 1
	f := g.RandomProper(level)
	return Mixed{Whole: whole, Num: f.Numerator(), Den: f.Denominator()}
}

// Inches returns a length between 13 and 47 inches.
func (g *Generator) Inches() int {
	return g.rng.IntN(35) + 13
}

// Coin returns true with probability one half.
func (g *Generator) Coin() bool {
	return g.rng.IntN(2) == 0
}
