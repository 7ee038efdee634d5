package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/drillz/internal/drill"
	"github.com/abhisek/drillz/internal/screen"
	"github.com/abhisek/drillz/internal/screens/fractions"
	"github.com/abhisek/drillz/internal/screens/ouroboros"
	"github.com/abhisek/drillz/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game directly",
}

var playFractionsCmd = &cobra.Command{
	Use:   "fractions",
	Short: "Play fraction drills",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, _ := cmd.Flags().GetString("mode")
		mode, err := resolveMode(mode)
		if err != nil {
			return err
		}
		return runApp(cmd, func(deps screen.Deps) screen.Screen {
			return fractions.New(mode, deps)
		})
	},
}

var playOuroborosCmd = &cobra.Command{
	Use:   "ouroboros",
	Short: "Play the times-table ring",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, func(deps screen.Deps) screen.Screen {
			return ouroboros.New(deps)
		})
	},
}

// resolveMode maps a flag value to a drill name. Empty and "random" pick
// drills at random.
func resolveMode(mode string) (string, error) {
	if mode == "" || strings.EqualFold(mode, session.RandomModeName) {
		return "", nil
	}
	for _, k := range drill.Kinds {
		if strings.EqualFold(mode, k.String()) {
			return k.String(), nil
		}
	}
	names := make([]string, 0, len(drill.Kinds)+1)
	names = append(names, session.RandomModeName)
	for _, k := range drill.Kinds {
		names = append(names, k.String())
	}
	return "", fmt.Errorf("unknown mode %q (want one of: %s)", mode, strings.Join(names, ", "))
}

func init() {
	playFractionsCmd.Flags().String("mode", "", `Drill to play, e.g. "To Decimal" (default random)`)

	playCmd.AddCommand(playFractionsCmd)
	playCmd.AddCommand(playOuroborosCmd)
}
