package server

import (
	"github.com/jonathan/load-organizer/internal/allocation"
	"github.com/jonathan/load-organizer/internal/types"
)

// ExitOrderRequest carries one raw roster.
type ExitOrderRequest struct {
	Jumpers []types.RosterEntry `json:"jumpers" validate:"max=200"`
}

// BatchExitOrderRequest carries several independent rosters.
type BatchExitOrderRequest struct {
	Loads []ExitOrderRequest `json:"loads" validate:"required,min=1,max=50,dive"`
}

// BatchExitOrderResponse holds one optimized load per requested roster, in order.
type BatchExitOrderResponse struct {
	Results []*types.OptimizedLoad `json:"results"`
}

// AllocateRequest asks for seats to be filled from a candidate pool.
// Negative seat counts are rejected by the allocator itself.
type AllocateRequest struct {
	Seats      int                 `json:"seats" validate:"lte=50"`
	Candidates []types.RosterEntry `json:"candidates" validate:"max=500"`
}

// AllocateResponse is the allocation result plus how each candidate was scored.
type AllocateResponse struct {
	*types.CapacityAllocationResult
	Priorities []allocation.Breakdown `json:"priorities"`
}

// SummaryRequest asks for statistics about one load. A zero capacity skips utilization.
type SummaryRequest struct {
	Capacity int                 `json:"capacity" validate:"omitempty,min=2,max=50"`
	Jumpers  []types.RosterEntry `json:"jumpers" validate:"max=200"`
}
