package optimizer

import (
	"sort"

	"github.com/jonathan/load-organizer/internal/types"
)

// exitClass returns the jump-type priority class: tandems, then AFF students, then everyone else.
func exitClass(t types.JumpType) int {
	switch t {
	case types.JumpTypeTandem:
		return 0
	case types.JumpTypeAFF:
		return 1
	default:
		return 2
	}
}

// exitsBefore reports whether a must leave the aircraft ahead of b:
// 1. Tandems before everyone else
// 2. AFF before fun and coach jumps
// 3. Higher exit altitude first
// 4. Lower fall rate first
// Remaining ties keep roster order (the caller sorts stably).
func exitsBefore(a, b types.Jumper) bool {
	if ca, cb := exitClass(a.JumpType), exitClass(b.JumpType); ca != cb {
		return ca < cb
	}
	if a.ExitAltitude != b.ExitAltitude {
		return a.ExitAltitude > b.ExitAltitude
	}
	return FallRate(a) < FallRate(b)
}

// SortExitOrder returns a new slice holding jumpers in exit order.
// The input slice is left untouched.
func SortExitOrder(jumpers []types.Jumper) []types.Jumper {
	ordered := make([]types.Jumper, len(jumpers))
	copy(ordered, jumpers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return exitsBefore(ordered[i], ordered[j])
	})
	return ordered
}
