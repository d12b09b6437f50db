package optimizer

import "github.com/jonathan/load-organizer/internal/types"

// Timing constants, in seconds.
const (
	ClimbTime           = 1200 // takeoff to jump altitude
	GroupBaseTime       = 60   // exit window for the first jumper of a group
	PerJumperTime       = 10   // each additional jumper in the same group
	GroupTransitionTime = 30   // repositioning between groups
)

// GroupTime returns the seconds needed for a group of n jumpers to exit.
func GroupTime(n int) int {
	if n <= 0 {
		return 0
	}
	return GroupBaseTime + PerJumperTime*(n-1)
}

// TotalTime returns the seconds from takeoff to the last exit.
func TotalTime(groups []types.JumpGroup) int {
	total := ClimbTime
	for _, g := range groups {
		total += g.EstimatedTime
	}
	if len(groups) > 1 {
		total += GroupTransitionTime * (len(groups) - 1)
	}
	return total
}
