// Package records keeps high scores, lifetime statistics, and the game
// history on top of a store.Backend.
//
// Storage failures never reach the caller. They are logged and the book
// answers with zero values, so a broken database degrades to a game that
// simply forgets scores.
package records

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/abhisek/drillz/internal/store"
)

// Record keys. The values keep the formats of the browser versions of the
// games so exported data stays readable.
const (
	FractionsScoresKey = "tapeMeasureHighScores"
	FractionsStatsKey  = "tapeMeasureStats"
	OuroborosScoreKey  = "ouroborosHighScore"
	OuroborosStatsKey  = "ouroborosStats"
)

// Overall is the fractions high score entry covering every mode.
const Overall = "overall"

// RandomMode is the mode key used when drills are picked at random.
const RandomMode = "random"

// Stats are lifetime statistics for one game.
type Stats struct {
	BestStreak int `json:"bestStreak"`
	TotalGames int `json:"totalGames"`

	// Accuracy is the rounded percentage of the most recent game.
	Accuracy int `json:"accuracy,omitempty"`
}

// Result is a finished game as the book records it.
type Result struct {
	// Mode is the fractions drill name, or empty for random drills.
	// Ignored for ouroboros.
	Mode       string
	Score      int
	BestStreak int
	Accuracy   int
}

// Outcome is what a save reports back for the game over screen.
type Outcome struct {
	// HighScore is the stored high score for the mode after saving.
	HighScore int
	NewHigh   bool
}

// Book reads and writes records. It is safe for concurrent use when the
// backend is.
type Book struct {
	backend store.Backend
	log     *slog.Logger
}

// NewBook creates a book over backend. A nil logger discards output.
func NewBook(backend store.Backend, log *slog.Logger) *Book {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Book{backend: backend, log: log}
}

// ModeKey normalizes a drill name into its high score key:
// "Bigger/Smaller" becomes "biggersmaller".
func ModeKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FractionsHighScores returns every stored fractions high score keyed by
// mode key. The Overall entry is always present.
func (b *Book) FractionsHighScores(ctx context.Context) map[string]int {
	scores := map[string]int{}
	b.loadJSON(ctx, FractionsScoresKey, &scores)
	// A stored null decodes to a nil map.
	if scores == nil {
		scores = map[string]int{}
	}
	if _, ok := scores[Overall]; !ok {
		scores[Overall] = 0
	}
	return scores
}

// FractionsHighScore returns the high score for a drill name. An empty name
// returns the overall high score.
func (b *Book) FractionsHighScore(ctx context.Context, mode string) int {
	key := Overall
	if mode != "" {
		key = ModeKey(mode)
	}
	return b.FractionsHighScores(ctx)[key]
}

// FractionsStats returns lifetime fractions statistics.
func (b *Book) FractionsStats(ctx context.Context) Stats {
	var s Stats
	b.loadJSON(ctx, FractionsStatsKey, &s)
	return s
}

// SaveFractions folds a finished fractions game into the high scores and
// statistics.
func (b *Book) SaveFractions(ctx context.Context, r Result) Outcome {
	scores := b.FractionsHighScores(ctx)
	key := RandomMode
	if r.Mode != "" {
		key = ModeKey(r.Mode)
	}
	scores[key] = max(scores[key], r.Score)
	scores[Overall] = max(scores[Overall], r.Score)
	b.saveJSON(ctx, FractionsScoresKey, scores)

	stats := b.FractionsStats(ctx)
	stats.BestStreak = max(stats.BestStreak, r.BestStreak)
	stats.TotalGames++
	stats.Accuracy = r.Accuracy
	b.saveJSON(ctx, FractionsStatsKey, stats)

	high := scores[key]
	if r.Mode == "" {
		high = scores[Overall]
	}
	return Outcome{HighScore: high, NewHigh: r.Score >= high}
}

// OuroborosHighScore returns the ouroboros high score.
func (b *Book) OuroborosHighScore(ctx context.Context) int {
	v, ok := b.load(ctx, OuroborosScoreKey)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		b.log.Warn("malformed record", "key", OuroborosScoreKey, "value", v)
		return 0
	}
	return n
}

// OuroborosStats returns lifetime ouroboros statistics.
func (b *Book) OuroborosStats(ctx context.Context) Stats {
	var s Stats
	b.loadJSON(ctx, OuroborosStatsKey, &s)
	return s
}

// SaveOuroboros folds a finished ouroboros game into the records.
func (b *Book) SaveOuroboros(ctx context.Context, r Result) Outcome {
	high := b.OuroborosHighScore(ctx)
	if r.Score > high {
		high = r.Score
		b.save(ctx, OuroborosScoreKey, strconv.Itoa(high))
	}

	stats := b.OuroborosStats(ctx)
	stats.BestStreak = max(stats.BestStreak, r.BestStreak)
	stats.TotalGames++
	stats.Accuracy = r.Accuracy
	b.saveJSON(ctx, OuroborosStatsKey, stats)

	return Outcome{HighScore: high, NewHigh: r.Score >= high}
}

// LogGame appends a finished game to the history.
func (b *Book) LogGame(ctx context.Context, e store.GameEvent) {
	if err := b.backend.AppendGameEvent(ctx, e); err != nil {
		b.log.Warn("could not log game", "game", e.Game, "error", err)
	}
}

// RecentGames returns up to limit games, newest first.
func (b *Book) RecentGames(ctx context.Context, limit int) []store.GameEvent {
	games, err := b.backend.RecentGames(ctx, limit)
	if err != nil {
		b.log.Warn("could not read game history", "error", err)
		return nil
	}
	return games
}

// Reset clears every record and the game history.
func (b *Book) Reset(ctx context.Context) error {
	return b.backend.Reset(ctx)
}

func (b *Book) load(ctx context.Context, key string) (string, bool) {
	v, ok, err := b.backend.Load(ctx, key)
	if err != nil {
		b.log.Warn("could not load record", "key", key, "error", err)
		return "", false
	}
	return v, ok
}

func (b *Book) loadJSON(ctx context.Context, key string, into any) {
	v, ok := b.load(ctx, key)
	if !ok {
		return
	}
	if err := json.Unmarshal([]byte(v), into); err != nil {
		b.log.Warn("malformed record", "key", key, "error", err)
	}
}

func (b *Book) save(ctx context.Context, key, value string) {
	if err := b.backend.Save(ctx, key, value); err != nil {
		b.log.Warn("could not save record", "key", key, "error", err)
	}
}

func (b *Book) saveJSON(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		b.log.Warn("could not encode record", "key", key, "error", err)
		return
	}
	b.save(ctx, key, string(data))
}
