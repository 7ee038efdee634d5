package drill

import "math/rand/v2"

// Kind identifies one of the eight fraction drills.
type Kind int

const (
	Ordering Kind = iota
	BiggerSmaller
	ToDecimal
	BetweenMarks
	AddSubtract
	MixedToImproper
	Difference
	InchesToFeet
)

// Kinds lists every drill in menu order.
var Kinds = []Kind{
	Ordering,
	BiggerSmaller,
	ToDecimal,
	BetweenMarks,
	AddSubtract,
	MixedToImproper,
	Difference,
	InchesToFeet,
}

var kindNames = map[Kind]string{
	Ordering:        "Ordering",
	BiggerSmaller:   "Bigger/Smaller",
	ToDecimal:       "To Decimal",
	BetweenMarks:    "Between Marks",
	AddSubtract:     "Add/Subtract",
	MixedToImproper: "Mixed to Improper",
	Difference:      "Difference",
	InchesToFeet:    "Inches to Feet",
}

var kindPoints = map[Kind]int{
	Ordering:        100,
	BiggerSmaller:   25,
	ToDecimal:       60,
	BetweenMarks:    80,
	AddSubtract:     70,
	MixedToImproper: 70,
	Difference:      75,
	InchesToFeet:    65,
}

var kindDescriptions = map[Kind]string{
	Ordering:        "Arrange 5 fractions from smallest to largest",
	BiggerSmaller:   "Pick the bigger fraction before the clock runs out",
	ToDecimal:       "Type the decimal equivalent",
	BetweenMarks:    "Find the fraction halfway between two marks",
	AddSubtract:     "Add or subtract two fractions",
	MixedToImproper: "Convert a mixed number to an improper fraction",
	Difference:      "Find the difference between two fractions",
	InchesToFeet:    "Convert inches to feet and inches",
}

// String returns the display name, e.g. "Bigger/Smaller".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// BasePoints is the score for a correct answer before the time bonus.
func (k Kind) BasePoints() int { return kindPoints[k] }

// Description is a one-line summary for menus.
func (k Kind) Description() string { return kindDescriptions[k] }

// ByName looks up a drill by its display name.
func ByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Pick returns the named drill, or a random one when name is unknown.
func Pick(rng *rand.Rand, name string) Kind {
	if k, ok := ByName(name); ok {
		return k
	}
	return Random(rng)
}

// Random returns a uniformly chosen drill.
func Random(rng *rand.Rand) Kind {
	return Kinds[rng.IntN(len(Kinds))]
}
