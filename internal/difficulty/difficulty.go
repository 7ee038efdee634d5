// Package difficulty maps a level to time limits and pacing for both games.
// Every function here is pure.
package difficulty

import (
	"math"
	"time"

	"github.com/abhisek/drillz/internal/drill"
)

const (
	// OuroborosAnswersPerLevel is the number of correct answers per level in
	// the ouroboros game.
	OuroborosAnswersPerLevel = 8

	// FractionsAnswersPerLevel is the default number of correct answers per
	// level in the fractions game.
	FractionsAnswersPerLevel = 3

	// SurvivalStart is the initial Bigger/Smaller survival clock.
	SurvivalStart = 12 * time.Second
)

// ExpirationSeconds returns how long the current ouroboros challenge may
// stay unanswered at level.
func ExpirationSeconds(level int) float64 {
	switch {
	case level <= 1:
		return 18
	case level == 2:
		return 14
	case level <= 7:
		return 10 - float64(level-3)
	}
	return math.Max(6-2*float64(level-7), 2.5)
}

// Expiration is ExpirationSeconds as a duration.
func Expiration(level int) time.Duration {
	return seconds(ExpirationSeconds(level))
}

// Lockout returns the input lockout after a wrong ouroboros answer.
func Lockout(level int) time.Duration {
	return seconds(2 + float64(level)*0.3)
}

// TimeLimit returns the drill clock for kind at level, in whole seconds.
func TimeLimit(kind drill.Kind, level int) int {
	switch kind {
	case drill.Ordering:
		limit := 8 - (level-4)*4
		switch level {
		case 1:
			limit = 20
		case 2:
			limit = 16
		case 3:
			limit = 12
		case 4:
			limit = 8
		}
		return max(limit, 4)
	case drill.BiggerSmaller:
		return int(SurvivalStart / time.Second)
	case drill.MixedToImproper:
		return step(level, 25, 12, 10, 8, 7)
	case drill.Difference:
		return step(level, 25, 15, 10, 7, 5, 4)
	case drill.ToDecimal:
		return step(level, 20, 15, 8, 6, 5, 4)
	case drill.InchesToFeet:
		return step(level, 20, 12, 8, 6, 5, 4)
	}
	base := baseTime(kind)
	minTime := 20
	if base <= 25 {
		minTime = 10
	}
	return max(base-(level-1)*2, minTime)
}

// AnswersPerLevel returns how many correct fractions answers are needed to
// leave level while playing kind.
func AnswersPerLevel(kind drill.Kind, level int) int {
	if kind == drill.MixedToImproper && level == 1 {
		return 1
	}
	return FractionsAnswersPerLevel
}

// LevelMultiplier is the fractions score multiplier at level.
func LevelMultiplier(level int) float64 {
	return 1 + float64(level-1)*0.1
}

// StreakBonus is the flat fractions bonus for a streak before the answer.
func StreakBonus(streak int) int {
	return min(streak*5, 50)
}

// baseTime is the nominal clock used by drills without their own table.
func baseTime(kind drill.Kind) int {
	switch kind {
	case drill.Ordering, drill.InchesToFeet:
		return 30
	case drill.BiggerSmaller:
		return 12
	case drill.ToDecimal:
		return 20
	}
	return 25
}

// step returns table[level-1], holding the last entry for higher levels.
func step(level int, table ...int) int {
	i := min(max(level-1, 0), len(table)-1)
	return table[i]
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s*1000)) * time.Millisecond
}
