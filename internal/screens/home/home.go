package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/drillz/internal/records"
	"github.com/abhisek/drillz/internal/router"
	"github.com/abhisek/drillz/internal/screen"
	"github.com/abhisek/drillz/internal/screens/help"
	"github.com/abhisek/drillz/internal/screens/modeselect"
	"github.com/abhisek/drillz/internal/screens/ouroboros"
	recordsscreen "github.com/abhisek/drillz/internal/screens/records"
	"github.com/abhisek/drillz/internal/session"
	"github.com/abhisek/drillz/internal/ui/components"
	"github.com/abhisek/drillz/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	deps       screen.Deps
	menu       components.Menu
	menuLabels []string
	stats      homeStats
	mascot     MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates the home screen. Stats come from deps.Game.Book when set.
func New(deps screen.Deps) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: build()} }
		}
	}

	menuLabels := []string{"FRACTIONS", "OUROBOROS", "RECORDS", "HELP", "EXIT"}
	items := []components.MenuItem{
		{Label: menuLabels[0], Action: push(func() screen.Screen { return modeselect.New(deps) })},
		{Label: menuLabels[1], Action: push(func() screen.Screen { return ouroboros.New(deps) })},
		{Label: menuLabels[2], Action: push(func() screen.Screen { return recordsscreen.New(deps.Game.Book) })},
		{Label: menuLabels[3], Action: push(func() screen.Screen { return help.New() })},
		{Label: menuLabels[4], Action: func() tea.Cmd { return tea.Quit }},
	}

	h := &HomeScreen{
		deps:       deps,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
	h.refresh()
	return h
}

// refresh reloads the dashboard from the record book.
func (h *HomeScreen) refresh() {
	book := h.deps.Game.Book
	if book == nil {
		h.stats, h.mascot = homeStats{}, MascotSleepy
		return
	}
	ctx := context.Background()
	fs, ous := book.FractionsStats(ctx), book.OuroborosStats(ctx)
	h.stats = homeStats{
		fractionsHigh: book.FractionsHighScore(ctx, ""),
		ouroborosHigh: book.OuroborosHighScore(ctx),
		games:         fs.TotalGames + ous.TotalGames,
	}
	h.mascot = mascotFor(ctx, book)
}

// mascotFor celebrates when the latest game holds its mode's record.
func mascotFor(ctx context.Context, book *records.Book) MascotVariant {
	recent := book.RecentGames(ctx, 1)
	if len(recent) == 0 {
		return MascotSleepy
	}
	last := recent[0]
	high := book.OuroborosHighScore(ctx)
	if last.Game == session.GameFractions {
		high = book.FractionsHighScore(ctx, last.Mode)
	}
	if last.Score > 0 && last.Score >= high {
		return MascotCelebrating
	}
	return MascotIdle
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Resume() tea.Cmd {
	h.refresh()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 36 || width < 100
	cw := components.ContentWidth(width)

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot, cw))
	}
	sections = append(sections,
		renderStatsBar(h.stats, cw, compact),
		components.ButtonColumn(h.menuLabels, h.menu.Selected, cw, compact),
	)

	return components.CabinetFrame(strings.Join(sections, "\n\n"), theme.Primary, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
