package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/load-organizer/internal/analytics"
	"github.com/jonathan/load-organizer/internal/optimizer"
	"github.com/jonathan/load-organizer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintOptimizedLoad(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	load := optimizer.ComputeExitOrder([]types.RosterEntry{
		{"id": "f1", "name": "Riley", "jumpType": "fun_jump", "exitAltitude": 13000},
		{"id": "t1", "name": "Sam", "jumpType": "tandem"},
	})
	p.PrintOptimizedLoad("", load)
	output := buf.String()

	assert.Contains(t, output, "EXIT ORDER")
	assert.Contains(t, output, "Jumpers: 2   Groups: 2")
	assert.Contains(t, output, "Total: 22m 30s")
	assert.Contains(t, output, "Group 1  tandem-14000")
	assert.Contains(t, output, " 1. Sam [instructor]")
	assert.Contains(t, output, " 2. Riley")
	assert.Contains(t, output, "! "+optimizer.RecInstructorCapacity[:20])
	assert.Less(t, strings.Index(output, "Sam"), strings.Index(output, "Riley"))
}

func TestPrintOptimizedLoad_LargeGroupTruncated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	roster := make([]types.RosterEntry, 7)
	for i := range roster {
		roster[i] = types.RosterEntry{"jumpType": "fun_jump"}
	}
	p.PrintOptimizedLoad("LOAD 4", optimizer.ComputeExitOrder(roster))
	output := buf.String()

	assert.Contains(t, output, "LOAD 4")
	assert.Contains(t, output, "... and 2 more")
	assert.NotContains(t, output, "Recommendations")
}

func TestPrintOptimizedLoad_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintOptimizedLoad("x", nil)
	assert.Empty(t, buf.String())
}

func TestPrintAllocation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.CapacityAllocationResult{
		SelectedJumpers: []types.Jumper{
			{ID: "a1", Name: "Avery", JumpType: types.JumpTypeAFF, ExperienceLevel: types.ExperienceBeginner, RequiresInstructor: true},
		},
		WaitingList: []types.Jumper{
			{ID: "f1", Name: "Jordan", JumpType: types.JumpTypeFunJump, ExperienceLevel: types.ExperienceExpert},
		},
		UtilizationScore: 100,
	}
	p.PrintAllocation(1, result)
	output := buf.String()

	assert.Contains(t, output, "CAPACITY ALLOCATION")
	assert.Contains(t, output, "Seats: 1   Filled: 1   Utilization: 100.0%")
	assert.Contains(t, output, "Selected (1):")
	assert.Contains(t, output, "Waiting list (1):")
	assert.Contains(t, output, "Avery")
	assert.Contains(t, output, "115")
	assert.Contains(t, output, " 40")
}

func TestPrintAllocation_NoWaitingList(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAllocation(2, &types.CapacityAllocationResult{UtilizationScore: 0})

	assert.Contains(t, buf.String(), "Selected (0):")
	assert.NotContains(t, buf.String(), "Waiting list")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	summary := analytics.Summarize([]types.Jumper{
		{JumpType: types.JumpTypeTandem, InstructorID: "kim"},
		{JumpType: types.JumpTypeAFF, InstructorID: "kim"},
		{JumpType: "wingsuit"},
	}, 10)
	p.PrintSummary(summary)
	output := buf.String()

	assert.Contains(t, output, "LOAD SUMMARY")
	assert.Contains(t, output, "Jumpers:      3")
	assert.Contains(t, output, "Other:        wingsuit=1")
	assert.Contains(t, output, "kim")
	assert.Contains(t, output, " 2 jumps (1 tandem, 1 aff)")
	assert.Contains(t, output, "Utilization:  30.0%")
	assert.Contains(t, output, "Revenue:      $600.00")
}

func TestPrintDailyCapacity(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDailyCapacity(analytics.DailyCapacity([]analytics.LoadUsage{
		{LoadID: "load-1", Capacity: 14, Used: 14},
		{LoadID: "load-2", Capacity: 14, Used: 7},
	}))
	output := buf.String()

	assert.Contains(t, output, "DAILY CAPACITY")
	assert.Contains(t, output, "load-1")
	assert.Contains(t, output, "100.0%")
	assert.Contains(t, output, "Total: 21/28 seats  75.0%")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("T", strings.Repeat("x", 100))
	assert.Contains(t, buf.String(), strings.Repeat("x", boxWidth-7)+"...")
}

func TestPrintBox_TruncatesMultiByteByRune(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("T", "  • "+strings.Repeat("Ø", 80))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.True(t, utf8.ValidString(line), line)
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), line)
	}
	assert.Contains(t, buf.String(), "  • "+strings.Repeat("Ø", boxWidth-11)+"...")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Zoë Ång...", truncate("Zoë Ångström", 10))
	assert.Equal(t, "exactly10!", truncate("exactly10!", 10))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "20m 00s", formatDuration(1200))
	assert.Equal(t, "0m 05s", formatDuration(5))
}
