package fraction

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrZeroDenominator is returned by Parse for inputs like "3/0".
var ErrZeroDenominator = errors.New("zero denominator")

// Fraction is an immutable numerator/denominator pair. The denominator is
// never zero. Equality and ordering compare decimal values, not exact
// rationals.
type Fraction struct {
	num        int
	den        int
	simplified [2]int
}

// New creates a fraction. A zero denominator is replaced with 1 so the
// value stays usable; callers that parse user input should use Parse.
func New(num, den int) Fraction {
	if den == 0 {
		den = 1
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := GCD(abs(num), den)
	return Fraction{
		num:        num,
		den:        den,
		simplified: [2]int{num / g, den / g},
	}
}

// Numerator returns the numerator as constructed.
func (f Fraction) Numerator() int { return f.num }

// Denominator returns the denominator as constructed.
func (f Fraction) Denominator() int { return f.den }

// Simplified returns the fraction reduced to lowest terms.
func (f Fraction) Simplified() Fraction {
	return Fraction{
		num:        f.simplified[0],
		den:        f.simplified[1],
		simplified: f.simplified,
	}
}

// Decimal returns the floating-point value.
func (f Fraction) Decimal() float64 {
	return float64(f.num) / float64(f.den)
}

// String renders "n/d", or just "n" for whole denominators.
func (f Fraction) String() string {
	if f.den == 1 {
		return strconv.Itoa(f.num)
	}
	return fmt.Sprintf("%d/%d", f.num, f.den)
}

// Equals reports whether the decimal values are identical.
func (f Fraction) Equals(other Fraction) bool {
	return f.Decimal() == other.Decimal()
}

// Compare returns -1, 0 or 1 by decimal value.
func (f Fraction) Compare(other Fraction) int {
	diff := f.Decimal() - other.Decimal()
	switch {
	case diff < 0:
		return -1
	case diff > 0:
		return 1
	}
	return 0
}

// Add returns a + b over the least common denominator (not reduced).
func Add(a, b Fraction) Fraction {
	common := LCM(a.den, b.den)
	return New(a.num*(common/a.den)+b.num*(common/b.den), common)
}

// Sub returns a - b over the least common denominator (not reduced).
func Sub(a, b Fraction) Fraction {
	common := LCM(a.den, b.den)
	return New(a.num*(common/a.den)-b.num*(common/b.den), common)
}

// Between returns the midpoint of a and b.
func Between(a, b Fraction) Fraction {
	sum := Add(a, b)
	return New(sum.num, sum.den*2)
}

// MixedToImproper converts whole n/d to an improper fraction.
func MixedToImproper(whole, num, den int) Fraction {
	return New(whole*den+num, den)
}

// InchesToFeet splits a length in inches into whole feet and leftover inches.
func InchesToFeet(totalInches int) (feet, inches int) {
	return totalInches / 12, totalInches % 12
}

// Sorted returns a copy of fs in ascending order.
func Sorted(fs []Fraction) []Fraction {
	out := make([]Fraction, len(fs))
	copy(out, fs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Compare(out[j]) < 0
	})
	return out
}

// IsAscending reports whether fs is in non-decreasing order.
func IsAscending(fs []Fraction) bool {
	for i := 0; i < len(fs)-1; i++ {
		if fs[i].Compare(fs[i+1]) > 0 {
			return false
		}
	}
	return true
}

// Parse reads "n/d" with optional surrounding whitespace. Both parts must be
// integers and the denominator must be non-zero.
func Parse(s string) (Fraction, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return Fraction{}, fmt.Errorf("invalid fraction format: %q", s)
	}
	num, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Fraction{}, fmt.Errorf("invalid numerator: %w", err)
	}
	den, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Fraction{}, fmt.Errorf("invalid denominator: %w", err)
	}
	if den == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	return New(num, den), nil
}

// GCD returns the greatest common divisor. Both a and b must be non-negative.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// LCM returns the least common multiple of two positive integers.
func LCM(a, b int) int {
	return a / GCD(a, b) * b
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
