package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackstar-game/blackstar/internal/app"
	"github.com/blackstar-game/blackstar/internal/casepool"
	"github.com/blackstar-game/blackstar/internal/llm"
	"github.com/blackstar-game/blackstar/internal/shift"
	"github.com/blackstar-game/blackstar/internal/store"
)

// runApp opens the store, builds the case provider, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	caseDir, err := resolveCaseDir(cmd)
	if err != nil {
		return fmt.Errorf("resolve case directory: %w", err)
	}

	duration, _ := cmd.Flags().GetDuration("shift-duration")
	patients, _ := cmd.Flags().GetInt("patients")

	opts := app.Options{
		CaseProvider: casepool.New(casepool.NewDirSource(caseDir)),
		EventRepo:    st.EventRepo(),
		SnapshotRepo: st.SnapshotRepo(),
		ShiftConfig: shift.Config{
			Duration:  duration,
			CaseCount: patients,
		},
	}

	// The game runs fine without an LLM; drafting is the only feature
	// that needs one.
	if _, err := llm.NewProviderFromEnv(ctx, st.EventRepo()); err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Playing from local case packs; `blackstar draft` needs an API key.")
	} else {
		opts.LLMConfigured = true
	}

	return app.Run(opts)
}
