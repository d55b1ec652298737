package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackstar-game/blackstar/internal/casepool"
	"github.com/blackstar-game/blackstar/internal/caserecord"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|dir> [...]",
	Short: "Validate case-pack files",
	Long: "Runs every case record through the validator and prints the full " +
		"list of problems per record. Exits non-zero if any record is invalid.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var paths []string
		for _, arg := range args {
			expanded, err := expandPackPaths(arg)
			if err != nil {
				return err
			}
			paths = append(paths, expanded...)
		}
		if len(paths) == 0 {
			return fmt.Errorf("no case-pack files found")
		}

		total, bad := 0, 0
		for _, path := range paths {
			records, err := casepool.LoadPack(path)
			if err != nil {
				fmt.Printf("%s: %v\n", path, err)
				bad++
				continue
			}

			for i := range records {
				total++
				res := caserecord.Validate(&records[i])
				if res.OK {
					continue
				}
				bad++
				fmt.Printf("%s: case %q:\n", path, records[i].ID)
				for _, e := range res.Errors {
					fmt.Printf("  - %s\n", e)
				}
			}
		}

		if bad > 0 {
			return fmt.Errorf("%d of %d records invalid", bad, total)
		}
		fmt.Printf("All %d records valid.\n", total)
		return nil
	},
}

// expandPackPaths resolves an argument to the pack files it names: the
// file itself, or every .json file in a directory.
func expandPackPaths(arg string) ([]string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", arg, err)
	}
	if !info.IsDir() {
		return []string{arg}, nil
	}

	entries, err := os.ReadDir(arg)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", arg, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(arg, entry.Name()))
	}
	return paths, nil
}
