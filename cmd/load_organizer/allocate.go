package main

import (
	"fmt"

	"github.com/jonathan/load-organizer/internal/allocation"
	"github.com/jonathan/load-organizer/internal/roster"
	"github.com/jonathan/load-organizer/internal/schemas"
	"github.com/spf13/cobra"
)

var allocateCmd = &cobra.Command{
	Use:   "allocate <candidates-file>",
	Short: "Allocate limited seats among candidates by priority",
	Long: `Rank candidates by priority (jump type, instructor requirement, experience) and
admit the highest ranked up to the seat count. The rest form the waiting list.

The seat count comes from --seats or, failing that, from the file's "seats" field.`,
	Args: cobra.ExactArgs(1),
	RunE: runAllocate,
}

var (
	allocateSeats  int
	allocateOutput string
)

func init() {
	allocateCmd.Flags().IntVarP(&allocateSeats, "seats", "s", 0, "Number of available seats (overrides the file)")
	allocateCmd.Flags().StringVarP(&allocateOutput, "out", "o", "", "Path to output JSON file (default stdout)")

	rootCmd.AddCommand(allocateCmd)
}

func runAllocate(cmd *cobra.Command, args []string) error {
	f, err := roster.LoadFile(args[0])
	if err != nil {
		return err
	}
	if err := schemas.ValidateRoster(f.Entries); err != nil {
		return fmt.Errorf("candidates file %s: %w", args[0], err)
	}

	seats := f.Seats
	switch {
	case cmd.Flags().Changed("seats"):
		seats = allocateSeats
	case !f.HasSeats:
		return fmt.Errorf("seat count required: pass --seats or set \"seats\" in %s", args[0])
	}

	result, err := allocation.Allocate(seats, f.Jumpers())
	if err != nil {
		return fmt.Errorf("failed to allocate seats: %w", err)
	}
	logger.Debug().
		Int("seats", seats).
		Int("selected", len(result.SelectedJumpers)).
		Int("waiting", len(result.WaitingList)).
		Msg("allocated seats")

	if p := reporter(cmd); p != nil {
		p.PrintAllocation(seats, result)
	}
	return writeOutput(cmd, allocateOutput, result)
}
