package cmd

import (
	"github.com/spf13/cobra"

	"github.com/blackstar-game/blackstar/internal/casepool"
	"github.com/blackstar-game/blackstar/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "blackstar",
	Short: "Night-shift diagnosis game for medical students",
	Long:  "Blackstar — a terminal game that deals board-style clinical cases against a shift clock.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BLACKSTAR_DB env var)")
	rootCmd.PersistentFlags().String("cases", "", "Directory of case-pack JSON files (overrides BLACKSTAR_CASES env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then BLACKSTAR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveCaseDir returns the case-pack directory using --cases flag, then
// BLACKSTAR_CASES env var, then the default XDG path.
func resolveCaseDir(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("cases"); p != "" {
		return p, nil
	}
	return casepool.DefaultCaseDir()
}
