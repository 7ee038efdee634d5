package records

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/drillz/internal/records"
	"github.com/abhisek/drillz/internal/store"
)

func testBook(t *testing.T) *records.Book {
	t.Helper()
	ctx := context.Background()
	book := records.NewBook(store.NewMemory(), nil)
	book.SaveFractions(ctx, records.Result{Mode: "Ordering", Score: 410, BestStreak: 4, Accuracy: 80})
	book.SaveFractions(ctx, records.Result{Score: 95, BestStreak: 1, Accuracy: 50})
	book.SaveOuroboros(ctx, records.Result{Score: 230, BestStreak: 6})
	book.LogGame(ctx, store.GameEvent{
		Timestamp: time.Date(2026, 4, 2, 16, 0, 0, 0, time.UTC),
		Game:      "ouroboros", Score: 230, Level: 2,
		TotalQuestions: 7, CorrectAnswers: 6, Duration: 83 * time.Second,
	})
	return book
}

func TestBoard_HighScoreRows(t *testing.T) {
	b := Load(context.Background(), testBook(t))
	rows := b.HighScoreRows()
	require.Len(t, rows, 10)
	assert.Equal(t, []string{"Overall", "410"}, rows[0])
	assert.Equal(t, []string{"Random", "95"}, rows[1])
	assert.Equal(t, []string{"Ordering", "410"}, rows[2])
	assert.Equal(t, []string{"Inches to Feet", "0"}, rows[9])
}

func TestBoard_RecentRows(t *testing.T) {
	rows := Load(context.Background(), testBook(t)).RecentRows()
	require.Len(t, rows, 1)
	assert.Equal(t, "ouroboros", rows[0][1])
	assert.Equal(t, "-", rows[0][2])
	assert.Equal(t, "230", rows[0][3])
	assert.Equal(t, "6/7", rows[0][5])
	assert.Equal(t, "1m23s", rows[0][6])
}

func TestRecordsScreen_View(t *testing.T) {
	s := New(testBook(t))
	view := s.View(100, 40)
	for _, want := range []string{"Overall", "410", "High score", "230", "ouroboros"} {
		assert.Contains(t, view, want)
	}
	assert.Len(t, s.KeyHints(), 2)
}

func TestRecordsScreen_NoBook(t *testing.T) {
	s := New(nil)
	assert.Contains(t, s.View(100, 40), "No games yet.")
	assert.Equal(t, "0", s.board.HighScoreRows()[0][1])
}
