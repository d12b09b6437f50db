package optimizer

import (
	"github.com/jonathan/load-organizer/internal/types"
)

// Advisory thresholds. Each check fires only when the count strictly exceeds its limit.
const (
	maxTandemsPerLoad      = 6
	maxAFFPerLoad          = 4
	maxGroupsPerLoad       = 5
	jumpersPerInstructor   = 2
	maxAverageWeightPounds = 200.0
)

// Advisory messages, in evaluation order.
const (
	RecSplitTandems       = "Consider splitting tandem jumpers across multiple loads"
	RecAFFInstructorCover = "High number of AFF students - ensure adequate instructor coverage"
	RecConsolidateGroups  = "Multiple altitude changes - consider consolidating groups"
	RecInstructorCapacity = "Instructor capacity may be exceeded - verify instructor assignments"
	RecWeightAndBalance   = "Average jumper weight is high - verify aircraft weight and balance limits"
)

// Recommend inspects a roster and its groups and returns advisory messages.
// The result is never nil; an empty slice means no issues were found.
func Recommend(jumpers []types.Jumper, groups []types.JumpGroup) []string {
	recs := make([]string, 0)

	if countType(jumpers, types.JumpTypeTandem) > maxTandemsPerLoad {
		recs = append(recs, RecSplitTandems)
	}
	if countType(jumpers, types.JumpTypeAFF) > maxAFFPerLoad {
		recs = append(recs, RecAFFInstructorCover)
	}
	if len(groups) > maxGroupsPerLoad {
		recs = append(recs, RecConsolidateGroups)
	}
	if instructorCapacityExceeded(jumpers) {
		recs = append(recs, RecInstructorCapacity)
	}
	if avg, ok := averageWeight(jumpers); ok && avg > maxAverageWeightPounds {
		recs = append(recs, RecWeightAndBalance)
	}

	return recs
}

func countType(jumpers []types.Jumper, t types.JumpType) int {
	n := 0
	for _, j := range jumpers {
		if j.JumpType == t {
			n++
		}
	}
	return n
}

// instructorCapacityExceeded is a coarse ratio test: more than two instructor-bound
// jumpers per distinct assigned instructor. An unassigned cohort always trips it.
func instructorCapacityExceeded(jumpers []types.Jumper) bool {
	required := 0
	instructors := make(map[string]struct{})
	for _, j := range jumpers {
		if !j.RequiresInstructor {
			continue
		}
		required++
		if j.InstructorID != "" {
			instructors[j.InstructorID] = struct{}{}
		}
	}
	return required > jumpersPerInstructor*len(instructors)
}

// averageWeight returns the mean weight, or false for an empty roster.
func averageWeight(jumpers []types.Jumper) (float64, bool) {
	if len(jumpers) == 0 {
		return 0, false
	}
	total := 0.0
	for _, j := range jumpers {
		total += j.Weight
	}
	return total / float64(len(jumpers)), true
}
