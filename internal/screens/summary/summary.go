package summary

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/drillz/internal/router"
	"github.com/abhisek/drillz/internal/screen"
	"github.com/abhisek/drillz/internal/session"
	"github.com/abhisek/drillz/internal/ui/components"
	"github.com/abhisek/drillz/internal/ui/layout"
	"github.com/abhisek/drillz/internal/ui/theme"
)

// SummaryScreen displays the result of a finished game.
type SummaryScreen struct {
	summary session.Summary
	again   func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. again builds a fresh game for "play again";
// nil hides the option.
func New(summary session.Summary, again func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: summary, again: again}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Game Over"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if s.again == nil {
		return []layout.KeyHint{{Key: "Enter/Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "r":
			if s.again != nil {
				next := s.again()
				return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			}
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	cw := components.ContentWidth(width)

	heading := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("GAME OVER")
	if sum.NewHigh {
		heading = theme.Banner.Render("NEW HIGH SCORE!")
	}

	name := "Ouroboros"
	if sum.Game == session.GameFractions {
		name = "Fractions: " + sum.Mode
	}

	score := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
		Render(strconv.Itoa(sum.Score))

	stats := strings.Join([]string{
		components.StatRow("High score", strconv.Itoa(sum.HighScore), "Level", strconv.Itoa(sum.Level)),
		components.StatRow(
			"Accuracy", fmt.Sprintf("%d%%", sum.Accuracy),
			"Correct", fmt.Sprintf("%d/%d", sum.CorrectAnswers, sum.TotalQuestions),
		),
		components.StatRow("Best streak", strconv.Itoa(sum.BestStreak), "Time", clock(sum.Duration)),
	}, "\n")

	sections := []string{
		heading,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(name),
		components.ArcadeCard("SCORE", score, cw),
		stats,
	}
	content := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(strings.Join(sections, "\n\n"))
	return components.CabinetFrame(content, theme.Primary, width, height)
}

func clock(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
