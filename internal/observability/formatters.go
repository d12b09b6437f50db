// Package observability renders human-readable load reports for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/load-organizer/internal/allocation"
	"github.com/jonathan/load-organizer/internal/analytics"
	"github.com/jonathan/load-organizer/internal/types"
)

const (
	// boxWidth is the width of every report box
	boxWidth = 60
	// maxItemsToShow caps per-group jumper listings
	maxItemsToShow = 5
)

// Printer writes boxed reports.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer that writes to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width-3]) + "..."
}

// formatDuration renders seconds as "20m 00s".
func formatDuration(seconds int) string {
	return fmt.Sprintf("%dm %02ds", seconds/60, seconds%60)
}

// PrintOptimizedLoad outputs the exit order group by group with timing and advisories.
func (p *Printer) PrintOptimizedLoad(title string, load *types.OptimizedLoad) {
	if load == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Jumpers: %d   Groups: %d   Total: %s\n",
		len(load.ExitOrder), len(load.Groups), formatDuration(load.TotalTime)))

	if len(load.Groups) > 0 {
		sb.WriteString("\n")
	}
	position := 1
	for i, g := range load.Groups {
		sb.WriteString(fmt.Sprintf("Group %d  %s  (%d, %ds)\n", i+1, g.GroupType, len(g.Jumpers), g.EstimatedTime))
		count := min(len(g.Jumpers), maxItemsToShow)
		for k := 0; k < count; k++ {
			j := g.Jumpers[k]
			line := fmt.Sprintf("  %2d. %s", position+k, j.Name)
			if j.RequiresInstructor {
				line += " [instructor]"
			}
			sb.WriteString(line + "\n")
		}
		if len(g.Jumpers) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(g.Jumpers)-maxItemsToShow))
		}
		position += len(g.Jumpers)
	}

	if len(load.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range load.Recommendations {
			sb.WriteString(fmt.Sprintf("  ! %s\n", rec))
		}
	}

	if title == "" {
		title = "EXIT ORDER"
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAllocation outputs who got a seat, who waits, and each candidate's priority.
func (p *Printer) PrintAllocation(seats int, result *types.CapacityAllocationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Seats: %d   Filled: %d   Utilization: %.1f%%\n",
		seats, len(result.SelectedJumpers), result.UtilizationScore))

	writeList := func(label string, jumpers []types.Jumper) {
		sb.WriteString(fmt.Sprintf("\n%s (%d):\n", label, len(jumpers)))
		for _, j := range jumpers {
			b := allocation.Explain(j)
			sb.WriteString(fmt.Sprintf("  • %-24s %-10s %3d\n", j.Name, j.JumpType, b.Total))
		}
	}
	writeList("Selected", result.SelectedJumpers)
	if len(result.WaitingList) > 0 {
		writeList("Waiting list", result.WaitingList)
	}

	p.printBox("CAPACITY ALLOCATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs jump-type counts, utilization and the revenue estimate for a load.
func (p *Printer) PrintSummary(summary analytics.LoadSummary) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Jumpers:      %d\n", summary.TotalJumpers))
	sb.WriteString(fmt.Sprintf("Tandem:       %d\n", summary.TandemCount))
	sb.WriteString(fmt.Sprintf("AFF:          %d\n", summary.AFFCount))
	sb.WriteString(fmt.Sprintf("Fun jumpers:  %d\n", summary.FunJumperCount))
	sb.WriteString(fmt.Sprintf("Coach jumps:  %d\n", summary.CoachJumpCount))

	var other []string
	for jt, n := range summary.TypeCounts {
		if _, known := analytics.RevenueRates[jt]; !known {
			other = append(other, fmt.Sprintf("%s=%d", jt, n))
		}
	}
	if len(other) > 0 {
		sort.Strings(other)
		sb.WriteString(fmt.Sprintf("Other:        %s\n", strings.Join(other, ", ")))
	}

	if len(summary.InstructorWorkload) > 0 {
		sb.WriteString("\nInstructors:\n")
		for _, w := range summary.InstructorWorkload {
			sb.WriteString(fmt.Sprintf("  • %-24s %2d jumps (%d tandem, %d aff)\n", w.InstructorID, w.Jumps, w.Tandem, w.AFF))
		}
	}

	sb.WriteString(fmt.Sprintf("\nUtilization:  %.1f%%\n", summary.CapacityUtilization))
	sb.WriteString(fmt.Sprintf("Revenue:      $%.2f", summary.RevenueEstimate))

	p.printBox("LOAD SUMMARY", sb.String())
}

// PrintDailyCapacity outputs per-load and overall seat usage.
func (p *Printer) PrintDailyCapacity(report analytics.DailyCapacityReport) {
	var sb strings.Builder
	for _, l := range report.Loads {
		sb.WriteString(fmt.Sprintf("%-20s %3d/%-3d %6.1f%%\n", l.LoadID, l.Used, l.Capacity, l.Utilization))
	}
	if len(report.Loads) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("Total: %d/%d seats  %.1f%%", report.TotalUsed, report.TotalCapacity, report.OverallUtilization))

	p.printBox("DAILY CAPACITY", sb.String())
}
