package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackstar-game/blackstar/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show career statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		stats, err := repo.CareerStats(ctx)
		if err != nil {
			return fmt.Errorf("career stats: %w", err)
		}

		if stats.ShiftsCompleted == 0 {
			fmt.Println("No shifts on record yet.")
			return nil
		}

		fmt.Printf("Shifts completed:   %d\n", stats.ShiftsCompleted)
		fmt.Printf("Patients treated:   %d\n", stats.PatientsTreated)
		fmt.Printf("Correct diagnoses:  %d\n", stats.CorrectDiagnoses)
		fmt.Printf("Accuracy:           %.0f%%\n", stats.Accuracy*100)

		if len(stats.BySpecialty) > 0 {
			fmt.Println()
			fmt.Println("By specialty")
			fmt.Println(strings.Repeat("─", 44))

			names := make([]string, 0, len(stats.BySpecialty))
			for name := range stats.BySpecialty {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				sp := stats.BySpecialty[name]
				fmt.Printf("%-20s  %4d treated  %4.0f%%\n",
					strings.ReplaceAll(name, "_", " "), sp.Treated, sp.Accuracy*100)
			}
		}

		shifts, err := repo.RecentShifts(ctx, 10)
		if err != nil {
			return fmt.Errorf("recent shifts: %w", err)
		}
		if len(shifts) > 0 {
			fmt.Println()
			fmt.Println("Recent shifts")
			fmt.Println(strings.Repeat("─", 44))
			for _, sh := range shifts {
				fmt.Printf("%s  %2d patients  %3.0f%%\n",
					sh.Timestamp.Local().Format("2006-01-02 15:04"),
					sh.PatientsTreated, sh.Accuracy*100)
			}
		}

		return nil
	},
}
