package optimizer

import "github.com/jonathan/load-organizer/internal/types"

// Freefall speeds in mph used when a jumper has no measured fall rate.
const (
	tandemFallRate    = 120.0
	affFallRate       = 110.0
	funJumpFallRate   = 130.0
	expertFunFallRate = 140.0
	coachJumpFallRate = 125.0
	fallbackFallRate  = 130.0
)

// FallRate returns the jumper's fall rate, deriving it from jump type and
// experience when none was supplied.
func FallRate(j types.Jumper) float64 {
	if j.FallRate != nil {
		return *j.FallRate
	}
	switch j.JumpType {
	case types.JumpTypeTandem:
		return tandemFallRate
	case types.JumpTypeAFF:
		return affFallRate
	case types.JumpTypeFunJump:
		if j.ExperienceLevel == types.ExperienceExpert {
			return expertFunFallRate
		}
		return funJumpFallRate
	case types.JumpTypeCoachJump:
		return coachJumpFallRate
	default:
		return fallbackFallRate
	}
}
