package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/drillz/internal/records"
	recordsscreen "github.com/abhisek/drillz/internal/screens/records"
	"github.com/abhisek/drillz/internal/ui/components"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show high scores and recent games",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := open(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		board := recordsscreen.Load(cmd.Context(), rt.book)
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Fractions high scores")
		fmt.Fprintln(out, components.Table([]string{"Mode", "Best"}, board.HighScoreRows()))

		fmt.Fprintln(out, "Totals")
		fmt.Fprintln(out, components.Table(
			[]string{"Game", "Best", "Best streak", "Games", "Last accuracy"},
			[][]string{
				{"Fractions", strconv.Itoa(board.Fractions[records.Overall]), strconv.Itoa(board.FractionsStats.BestStreak),
					strconv.Itoa(board.FractionsStats.TotalGames), strconv.Itoa(board.FractionsStats.Accuracy) + "%"},
				{"Ouroboros", strconv.Itoa(board.Ouroboros), strconv.Itoa(board.OuroborosStats.BestStreak),
					strconv.Itoa(board.OuroborosStats.TotalGames), strconv.Itoa(board.OuroborosStats.Accuracy) + "%"},
			},
		))

		if len(board.Recent) == 0 {
			fmt.Fprintln(out, "No games played yet.")
			return nil
		}
		fmt.Fprintln(out, "Recent games")
		fmt.Fprintln(out, components.Table(
			[]string{"When", "Game", "Mode", "Score", "Level", "Correct", "Time"},
			board.RecentRows(),
		))
		return nil
	},
}
