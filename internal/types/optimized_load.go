// Package types provides type definitions for structured data used throughout the load organizer.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JumpGroup is a contiguous run of jumpers in the exit order that leave together.
type JumpGroup struct {
	Jumpers       []Jumper `json:"jumpers"`
	ExitAltitude  int      `json:"exitAltitude"`
	GroupType     string   `json:"groupType"`     // "<jumpType>-<exitAltitude>"
	EstimatedTime int      `json:"estimatedTime"` // seconds
}

// OptimizedLoad is the result of exit-order optimization for one load.
type OptimizedLoad struct {
	ExitOrder       []Jumper    `json:"exitOrder"`
	Groups          []JumpGroup `json:"groups"`
	TotalTime       int         `json:"totalTime"` // seconds from takeoff to last exit
	Recommendations []string    `json:"recommendations"`
}

// CapacityAllocationResult is the admission decision for a pool of candidates.
type CapacityAllocationResult struct {
	SelectedJumpers  []Jumper `json:"selectedJumpers"`
	WaitingList      []Jumper `json:"waitingList"`
	UtilizationScore float64  `json:"utilizationScore"` // percent of requested seats filled
}
