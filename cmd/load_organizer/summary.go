package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jonathan/load-organizer/internal/analytics"
	"github.com/jonathan/load-organizer/internal/roster"
	"github.com/jonathan/load-organizer/internal/schemas"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <roster-file>...",
	Short: "Summarize load composition, utilization and revenue",
	Long: `Count jumpers by type, compute seat utilization and estimate revenue for each
roster file, then aggregate seat usage across all files as one day's loads.

Capacity comes from --capacity or, failing that, from the file's "capacity" field.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSummary,
}

var (
	summaryCapacity int
	summaryOutput   string
)

func init() {
	summaryCmd.Flags().IntVar(&summaryCapacity, "capacity", 0, "Aircraft seat capacity (overrides the file)")
	summaryCmd.Flags().StringVarP(&summaryOutput, "out", "o", "", "Path to output JSON file (default stdout)")

	rootCmd.AddCommand(summaryCmd)
}

// loadSummary is one file's summary in the summary command output.
type loadSummary struct {
	Load string `json:"load"`
	analytics.LoadSummary
}

type summaryReport struct {
	Loads []loadSummary                 `json:"loads"`
	Daily analytics.DailyCapacityReport `json:"daily"`
}

func runSummary(cmd *cobra.Command, args []string) error {
	report := summaryReport{Loads: make([]loadSummary, 0, len(args))}
	usage := make([]analytics.LoadUsage, 0, len(args))

	for _, path := range args {
		f, err := roster.LoadFile(path)
		if err != nil {
			return err
		}
		if err := schemas.ValidateRoster(f.Entries); err != nil {
			return fmt.Errorf("roster file %s: %w", path, err)
		}

		capacity := f.Capacity
		if cmd.Flags().Changed("capacity") {
			capacity = summaryCapacity
		}

		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		s := analytics.Summarize(f.Jumpers(), capacity)
		report.Loads = append(report.Loads, loadSummary{Load: name, LoadSummary: s})
		usage = append(usage, analytics.LoadUsage{LoadID: name, Capacity: capacity, Used: s.TotalJumpers})
	}
	report.Daily = analytics.DailyCapacity(usage)
	logger.Debug().Int("loads", len(usage)).Float64("utilization", report.Daily.OverallUtilization).Msg("summarized loads")

	if p := reporter(cmd); p != nil {
		for _, l := range report.Loads {
			p.PrintSummary(l.LoadSummary)
		}
		p.PrintDailyCapacity(report.Daily)
	}
	return writeOutput(cmd, summaryOutput, report)
}
