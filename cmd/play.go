package cmd

import (
	"github.com/spf13/cobra"

	"github.com/blackstar-game/blackstar/internal/shift"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Clock in for a shift",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().Duration("shift-duration", shift.DefaultDuration,
		"Length of the shift clock (e.g. 8m, 90s)")
	rootCmd.PersistentFlags().Int("patients", shift.DefaultCaseCount,
		"Number of patients on the shift")
}
