package session

import (
	"context"
	"time"

	"github.com/abhisek/drillz/internal/records"
	"github.com/abhisek/drillz/internal/store"
)

// Summary holds the data displayed on the game over screen.
type Summary struct {
	SessionID string
	Game      string

	// Mode is the drill name, "Random", or empty for ouroboros.
	Mode string

	Score          int
	Level          int
	BestStreak     int
	TotalQuestions int
	CorrectAnswers int
	Accuracy       int // rounded percent
	Duration       time.Duration

	// HighScore is the high score for Mode after this game was saved.
	HighScore int
	NewHigh   bool
}

// record saves s to book at now and fills in the high score fields. Without
// a book the game is its own high score.
func (s *Summary) record(ctx context.Context, book *records.Book, mode string, now time.Time) {
	if book == nil {
		s.HighScore = s.Score
		s.NewHigh = true
		return
	}
	res := records.Result{
		Mode:       mode,
		Score:      s.Score,
		BestStreak: s.BestStreak,
		Accuracy:   s.Accuracy,
	}
	var out records.Outcome
	if s.Game == GameOuroboros {
		out = book.SaveOuroboros(ctx, res)
	} else {
		out = book.SaveFractions(ctx, res)
	}
	s.HighScore = out.HighScore
	s.NewHigh = out.NewHigh

	book.LogGame(ctx, store.GameEvent{
		Timestamp:      now,
		SessionID:      s.SessionID,
		Game:           s.Game,
		Mode:           s.Mode,
		Score:          s.Score,
		Level:          s.Level,
		BestStreak:     s.BestStreak,
		TotalQuestions: s.TotalQuestions,
		CorrectAnswers: s.CorrectAnswers,
		Duration:       s.Duration,
	})
}
