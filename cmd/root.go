package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/drillz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "drillz",
	Short: "Arcade math drills in the terminal",
	Long:  "Drillz is a terminal arcade of fraction drills and a ring of times-table challenges.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DRILLZ_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then DRILLZ_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured func() (string, error)) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	p, err := configured()
	if err != nil {
		return "", err
	}
	return p, store.EnsureDir(p)
}
