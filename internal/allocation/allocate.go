package allocation

import (
	"sort"

	"github.com/jonathan/load-organizer/internal/optimizer"
	"github.com/jonathan/load-organizer/internal/types"
)

// Allocate admits up to seats candidates by descending priority and waitlists the rest.
// Ties keep candidate order. Candidates are normalized first, so missing fields get the
// same defaults as on the exit-order path. Negative seat counts are rejected.
func Allocate(seats int, candidates []types.Jumper) (*types.CapacityAllocationResult, error) {
	if seats < 0 {
		return nil, &Error{Message: "invalid seat request", Cause: ErrNegativeSeats}
	}

	ranked := optimizer.NormalizeJumpers(candidates)
	priorities := make([]int, len(ranked))
	order := make([]int, len(ranked))
	for i, j := range ranked {
		order[i] = i
		priorities[i] = Priority(j)
	}
	sort.SliceStable(order, func(a, b int) bool {
		return priorities[order[a]] > priorities[order[b]]
	})

	admitted := min(seats, len(ranked))
	selected := make([]types.Jumper, 0, admitted)
	waiting := make([]types.Jumper, 0, len(ranked)-admitted)
	for pos, idx := range order {
		if pos < admitted {
			selected = append(selected, ranked[idx])
		} else {
			waiting = append(waiting, ranked[idx])
		}
	}

	return &types.CapacityAllocationResult{
		SelectedJumpers:  selected,
		WaitingList:      waiting,
		UtilizationScore: utilization(len(selected), seats),
	}, nil
}

// utilization returns the percentage of seats filled, 0 for no seats and never above 100.
func utilization(selected, seats int) float64 {
	if seats <= 0 {
		return 0
	}
	return min(100*float64(selected)/float64(seats), 100)
}
