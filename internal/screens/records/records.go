// Package records shows high scores, totals and the latest games.
package records

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/drillz/internal/drill"
	"github.com/abhisek/drillz/internal/records"
	"github.com/abhisek/drillz/internal/screen"
	"github.com/abhisek/drillz/internal/store"
	"github.com/abhisek/drillz/internal/ui/components"
	"github.com/abhisek/drillz/internal/ui/layout"
	"github.com/abhisek/drillz/internal/ui/theme"
)

// RecentLimit is how many games the screen lists.
const RecentLimit = 10

// Board is everything the records views show, read once from a book.
type Board struct {
	Fractions      map[string]int
	FractionsStats records.Stats
	Ouroboros      int
	OuroborosStats records.Stats
	Recent         []store.GameEvent
}

// Load reads a Board. A nil book yields an empty one.
func Load(ctx context.Context, book *records.Book) Board {
	if book == nil {
		return Board{Fractions: map[string]int{records.Overall: 0}}
	}
	return Board{
		Fractions:      book.FractionsHighScores(ctx),
		FractionsStats: book.FractionsStats(ctx),
		Ouroboros:      book.OuroborosHighScore(ctx),
		OuroborosStats: book.OuroborosStats(ctx),
		Recent:         book.RecentGames(ctx, RecentLimit),
	}
}

// HighScoreRows lists overall, random and every drill in menu order.
func (b Board) HighScoreRows() [][]string {
	rows := [][]string{
		{"Overall", strconv.Itoa(b.Fractions[records.Overall])},
		{"Random", strconv.Itoa(b.Fractions[records.RandomMode])},
	}
	for _, k := range drill.Kinds {
		rows = append(rows, []string{k.String(), strconv.Itoa(b.Fractions[records.ModeKey(k.String())])})
	}
	return rows
}

// RecentRows lists the latest games, newest first.
func (b Board) RecentRows() [][]string {
	rows := make([][]string, 0, len(b.Recent))
	for _, g := range b.Recent {
		mode := g.Mode
		if mode == "" {
			mode = "-"
		}
		rows = append(rows, []string{
			g.Timestamp.Local().Format("Jan 2 15:04"),
			g.Game,
			mode,
			strconv.Itoa(g.Score),
			strconv.Itoa(g.Level),
			fmt.Sprintf("%d/%d", g.CorrectAnswers, g.TotalQuestions),
			g.Duration.Round(time.Second).String(),
		})
	}
	return rows
}

// RecordsScreen displays a Board.
type RecordsScreen struct {
	book  *records.Book
	board Board
}

var _ screen.Screen = (*RecordsScreen)(nil)
var _ screen.KeyHintProvider = (*RecordsScreen)(nil)

// New creates the screen and loads the board from book.
func New(book *records.Book) *RecordsScreen {
	return &RecordsScreen{book: book, board: Load(context.Background(), book)}
}

func (r *RecordsScreen) Init() tea.Cmd {
	return nil
}

func (r *RecordsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "r" {
		r.board = Load(context.Background(), r.book)
	}
	return r, nil
}

func (r *RecordsScreen) View(width, height int) string {
	b := r.board
	fractions := components.Table([]string{"Fractions", "Best"}, b.HighScoreRows()) + "\n" +
		components.StatRow(
			"Games", strconv.Itoa(b.FractionsStats.TotalGames),
			"Streak", strconv.Itoa(b.FractionsStats.BestStreak),
			"Last acc", fmt.Sprintf("%d%%", b.FractionsStats.Accuracy),
		)
	ouroboros := components.Table([]string{"Ouroboros", "Best"},
		[][]string{{"High score", strconv.Itoa(b.Ouroboros)}}) + "\n" +
		components.StatRow(
			"Games", strconv.Itoa(b.OuroborosStats.TotalGames),
			"Streak", strconv.Itoa(b.OuroborosStats.BestStreak),
		)

	top := lipgloss.JoinHorizontal(lipgloss.Top, fractions, "    ", ouroboros)

	recent := lipgloss.NewStyle().Foreground(theme.TextDim).Render("No games yet.")
	if rows := b.RecentRows(); len(rows) > 0 {
		recent = components.Table(
			[]string{"When", "Game", "Mode", "Score", "Lv", "Correct", "Time"}, rows)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Render(strings.Join([]string{top, recent}, "\n\n"))
}

func (r *RecordsScreen) Title() string {
	return "Records"
}

func (r *RecordsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Reload"},
		{Key: "Esc", Description: "Back"},
	}
}
