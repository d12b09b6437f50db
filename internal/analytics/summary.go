// Package analytics provides load statistics: seat utilization, jump-type mix and revenue estimates.
package analytics

import (
	"math"
	"sort"

	"github.com/jonathan/load-organizer/internal/types"
)

// RevenueRates maps each jump type to its ticket price in dollars.
var RevenueRates = map[types.JumpType]float64{
	types.JumpTypeTandem:    250.0,
	types.JumpTypeAFF:       350.0,
	types.JumpTypeFunJump:   25.0,
	types.JumpTypeCoachJump: 25.0,
}

// LoadSummary describes the composition of a single load.
type LoadSummary struct {
	TotalJumpers        int                    `json:"total_jumpers"`
	TypeCounts          map[types.JumpType]int `json:"type_counts"`
	TandemCount         int                    `json:"tandem_count"`
	AFFCount            int                    `json:"aff_count"`
	FunJumperCount      int                    `json:"fun_jumper_count"`
	CoachJumpCount      int                    `json:"coach_jump_count"`
	CapacityUtilization float64                `json:"capacity_utilization"`
	RevenueEstimate     float64                `json:"revenue_estimate"`
	InstructorWorkload  []InstructorWorkload   `json:"instructor_workload"`
}

// InstructorWorkload counts the jumpers one instructor accompanies on a load.
type InstructorWorkload struct {
	InstructorID string `json:"instructor_id"`
	Jumps        int    `json:"jumps"`
	Tandem       int    `json:"tandem"`
	AFF          int    `json:"aff"`
}

// Summarize counts jumpers by type, reports seat utilization against capacity
// (rounded to one decimal, 0 when capacity is not positive) and estimates revenue.
func Summarize(jumpers []types.Jumper, capacity int) LoadSummary {
	s := LoadSummary{
		TotalJumpers: len(jumpers),
		TypeCounts:   make(map[types.JumpType]int),
	}

	for _, j := range jumpers {
		s.TypeCounts[j.JumpType]++
		s.RevenueEstimate += RevenueRates[j.JumpType]
	}
	s.TandemCount = s.TypeCounts[types.JumpTypeTandem]
	s.AFFCount = s.TypeCounts[types.JumpTypeAFF]
	s.FunJumperCount = s.TypeCounts[types.JumpTypeFunJump]
	s.CoachJumpCount = s.TypeCounts[types.JumpTypeCoachJump]
	s.CapacityUtilization = round1(percent(len(jumpers), capacity))
	s.InstructorWorkload = InstructorWorkloads(jumpers)

	return s
}

// InstructorWorkloads counts jumpers per assigned instructor, busiest first with ties
// broken by instructor id. Jumpers without an instructor are skipped.
func InstructorWorkloads(jumpers []types.Jumper) []InstructorWorkload {
	byID := make(map[string]*InstructorWorkload)
	for _, j := range jumpers {
		if j.InstructorID == "" {
			continue
		}
		w, ok := byID[j.InstructorID]
		if !ok {
			w = &InstructorWorkload{InstructorID: j.InstructorID}
			byID[j.InstructorID] = w
		}
		w.Jumps++
		switch j.JumpType {
		case types.JumpTypeTandem:
			w.Tandem++
		case types.JumpTypeAFF:
			w.AFF++
		}
	}

	out := make([]InstructorWorkload, 0, len(byID))
	for _, w := range byID {
		out = append(out, *w)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Jumps != out[b].Jumps {
			return out[a].Jumps > out[b].Jumps
		}
		return out[a].InstructorID < out[b].InstructorID
	})
	return out
}

// LoadUsage is one load's seat usage for a day.
type LoadUsage struct {
	LoadID   string `json:"load_id"`
	Aircraft string `json:"aircraft"`
	Capacity int    `json:"capacity"`
	Used     int    `json:"used"`
}

// LoadUtilization is a LoadUsage with its utilization percentage.
type LoadUtilization struct {
	LoadUsage
	Utilization float64 `json:"utilization"`
}

// DailyCapacityReport aggregates seat usage across loads.
type DailyCapacityReport struct {
	TotalCapacity      int               `json:"total_capacity"`
	TotalUsed          int               `json:"total_used"`
	OverallUtilization float64           `json:"overall_utilization"`
	Loads              []LoadUtilization `json:"loads"`
}

// DailyCapacity sums capacity and used seats over loads. Overall utilization is 0
// when there is no capacity at all.
func DailyCapacity(loads []LoadUsage) DailyCapacityReport {
	report := DailyCapacityReport{Loads: make([]LoadUtilization, 0, len(loads))}
	for _, l := range loads {
		report.TotalCapacity += l.Capacity
		report.TotalUsed += l.Used
		report.Loads = append(report.Loads, LoadUtilization{
			LoadUsage:   l,
			Utilization: round1(percent(l.Used, l.Capacity)),
		})
	}
	report.OverallUtilization = percent(report.TotalUsed, report.TotalCapacity)
	return report
}

func percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
