package optimizer

import (
	"fmt"

	"github.com/jonathan/load-organizer/internal/types"
)

// MaxGroupSize caps how many jumpers may exit together, regardless of aircraft size.
const MaxGroupSize = 8

// groupKey is the composite key that keeps jumpers in the same group.
func groupKey(j types.Jumper) string {
	return fmt.Sprintf("%s-%d", j.JumpType, j.ExitAltitude)
}

// AssembleGroups splits an exit-ordered sequence into contiguous groups.
// A new group starts when jump type or exit altitude changes, or when the
// current group is full. Concatenating the groups reproduces ordered exactly.
func AssembleGroups(ordered []types.Jumper) []types.JumpGroup {
	groups := make([]types.JumpGroup, 0)
	var current []types.Jumper
	currentKey := ""

	flush := func() {
		if len(current) == 0 {
			return
		}
		groups = append(groups, types.JumpGroup{
			Jumpers:       current,
			ExitAltitude:  current[0].ExitAltitude,
			GroupType:     currentKey,
			EstimatedTime: GroupTime(len(current)),
		})
		current = nil
	}

	for _, j := range ordered {
		key := groupKey(j)
		if len(current) > 0 && (key != currentKey || len(current) >= MaxGroupSize) {
			flush()
		}
		if len(current) == 0 {
			currentKey = key
			current = make([]types.Jumper, 0, MaxGroupSize)
		}
		current = append(current, j)
	}
	flush()

	return groups
}
