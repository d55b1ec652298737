package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackstar-game/blackstar/internal/casegen"
	"github.com/blackstar-game/blackstar/internal/casepool"
	"github.com/blackstar-game/blackstar/internal/caserecord"
	"github.com/blackstar-game/blackstar/internal/llm"
	"github.com/blackstar-game/blackstar/internal/store"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Draft new cases with an LLM and add them to the case directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		specialtyArg, _ := cmd.Flags().GetString("specialty")
		difficulty, _ := cmd.Flags().GetInt("difficulty")
		count, _ := cmd.Flags().GetInt("count")

		specialty, err := parseSpecialty(specialtyArg)
		if err != nil {
			return err
		}
		if difficulty < 1 || difficulty > 5 {
			return fmt.Errorf("difficulty %d out of range 1-5", difficulty)
		}
		if count < 1 {
			return fmt.Errorf("count must be positive")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		repo := st.EventRepo()

		provider, err := llm.NewProviderFromEnv(ctx, repo)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}
		drafter := casegen.New(provider, casegen.DefaultConfig())

		// Steer drafting away from questions the player has already seen.
		prior, err := repo.RecentCaseQuestions(ctx, 20)
		if err != nil {
			return fmt.Errorf("load recent questions: %w", err)
		}
		accuracy, err := repo.SpecialtyAccuracy(ctx, string(specialty))
		if err != nil {
			return fmt.Errorf("load specialty accuracy: %w", err)
		}

		var records []caserecord.CaseRecord
		for i := 0; i < count; i++ {
			rec, err := drafter.Draft(ctx, casegen.DraftInput{
				Specialty:         specialty,
				Difficulty:        difficulty,
				PriorQuestions:    prior,
				SpecialtyAccuracy: accuracy,
			})
			if err != nil {
				return fmt.Errorf("draft case %d of %d: %w", i+1, count, err)
			}
			records = append(records, *rec)
			prior = append([]string{rec.Question}, prior...)
			fmt.Printf("Drafted %s (%s, difficulty %d)\n", rec.ID, rec.Specialty, rec.Difficulty)
		}

		caseDir, err := resolveCaseDir(cmd)
		if err != nil {
			return fmt.Errorf("resolve case directory: %w", err)
		}
		path := filepath.Join(caseDir,
			fmt.Sprintf("drafted-%s-%s.json", specialty, time.Now().Format("20060102-150405")))
		if err := casepool.WritePack(path, records); err != nil {
			return err
		}

		fmt.Printf("Wrote %d cases to %s\n", len(records), path)
		return nil
	},
}

// parseSpecialty matches the flag value against the closed specialty set.
func parseSpecialty(s string) (caserecord.Specialty, error) {
	for _, sp := range caserecord.Specialties {
		if string(sp) == s {
			return sp, nil
		}
	}
	return "", fmt.Errorf("unknown specialty %q (one of %v)", s, caserecord.Specialties)
}

func init() {
	draftCmd.Flags().StringP("specialty", "s", string(caserecord.SpecialtyEmergencyMedicine), "Specialty to draft for")
	draftCmd.Flags().IntP("difficulty", "d", 3, "Difficulty 1-5")
	draftCmd.Flags().IntP("count", "n", 5, "Number of cases to draft")
}
