package main

import (
	"fmt"
	"path/filepath"

	"github.com/jonathan/load-organizer/internal/optimizer"
	"github.com/jonathan/load-organizer/internal/roster"
	"github.com/jonathan/load-organizer/internal/schemas"
	"github.com/jonathan/load-organizer/internal/types"
	"github.com/spf13/cobra"
)

// defaultRecordAltitude is the exit altitude used for stored records, which do not carry one.
const defaultRecordAltitude = 13500

var exitOrderCmd = &cobra.Command{
	Use:   "exit-order <roster-file>...",
	Short: "Compute the exit order for one or more loads",
	Long: `Compute the optimized exit order, jump groups, total time and safety recommendations
for each roster file. Several files are optimized concurrently.

With --records the files hold stored jump records instead of rosters, and the output
is the records renumbered in exit order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExitOrder,
}

var (
	exitOrderOutput   string
	exitOrderRecords  bool
	exitOrderAltitude int
)

func init() {
	exitOrderCmd.Flags().StringVarP(&exitOrderOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	exitOrderCmd.Flags().BoolVar(&exitOrderRecords, "records", false, "Treat inputs as stored jump records and renumber them")
	exitOrderCmd.Flags().IntVar(&exitOrderAltitude, "altitude", defaultRecordAltitude, "Exit altitude in feet for --records input")

	rootCmd.AddCommand(exitOrderCmd)
}

func runExitOrder(cmd *cobra.Command, args []string) error {
	rosters := make([][]types.RosterEntry, len(args))
	records := make([][]roster.JumpRecord, len(args))

	for i, path := range args {
		if exitOrderRecords {
			recs, err := roster.LoadRecords(path)
			if err != nil {
				return err
			}
			records[i] = recs
			rosters[i] = roster.FromJumpRecords(recs, exitOrderAltitude)
			continue
		}

		f, err := roster.LoadFile(path)
		if err != nil {
			return err
		}
		if err := schemas.ValidateRoster(f.Entries); err != nil {
			return fmt.Errorf("roster file %s: %w", path, err)
		}
		rosters[i] = f.Entries
	}

	logger.Debug().Int("rosters", len(rosters)).Int("concurrency", appConfig.Server.BatchConcurrency).Msg("computing exit orders")
	loads, err := optimizer.ComputeBatch(cmd.Context(), rosters, appConfig.Server.BatchConcurrency)
	if err != nil {
		return fmt.Errorf("failed to compute exit orders: %w", err)
	}

	if p := reporter(cmd); p != nil {
		for i, load := range loads {
			p.PrintOptimizedLoad(filepath.Base(args[i]), load)
		}
	}

	if exitOrderRecords {
		renumbered := make([][]roster.JumpRecord, len(loads))
		for i, load := range loads {
			renumbered[i], err = roster.ApplyExitOrder(records[i], load)
			if err != nil {
				return fmt.Errorf("records file %s: %w", args[i], err)
			}
		}
		return writeOutput(cmd, exitOrderOutput, single(renumbered))
	}
	return writeOutput(cmd, exitOrderOutput, single(loads))
}

// single unwraps a one-element result so a single input yields a single document.
func single[T any](results []T) any {
	if len(results) == 1 {
		return results[0]
	}
	return results
}
