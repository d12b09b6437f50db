// Package types provides type definitions for structured data used throughout the load organizer.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JumpType identifies the kind of jump a jumper is making.
type JumpType string

const (
	JumpTypeTandem    JumpType = "tandem"
	JumpTypeAFF       JumpType = "aff"
	JumpTypeFunJump   JumpType = "fun_jump"
	JumpTypeCoachJump JumpType = "coach_jump"
)

// JumpTypes lists the recognized jump types in exit priority order.
var JumpTypes = []JumpType{JumpTypeTandem, JumpTypeAFF, JumpTypeFunJump, JumpTypeCoachJump}

// Valid reports whether t is one of the recognized jump types.
func (t JumpType) Valid() bool {
	switch t {
	case JumpTypeTandem, JumpTypeAFF, JumpTypeFunJump, JumpTypeCoachJump:
		return true
	}
	return false
}

// NeedsInstructor reports whether jumps of this type must be accompanied by an instructor.
func (t JumpType) NeedsInstructor() bool {
	return t == JumpTypeTandem || t == JumpTypeAFF
}

// ExperienceLevel describes how experienced a jumper is.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
	ExperienceExpert       ExperienceLevel = "expert"
)

// Valid reports whether l is one of the recognized experience levels.
func (l ExperienceLevel) Valid() bool {
	switch l {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced, ExperienceExpert:
		return true
	}
	return false
}

// Jumper is a single person on (or waiting for) a load.
// Values are treated as immutable once built; every stage returns new slices.
type Jumper struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	JumpType           JumpType        `json:"jumpType"`
	ExperienceLevel    ExperienceLevel `json:"experienceLevel"`
	Weight             float64         `json:"weight"`       // pounds
	ExitAltitude       int             `json:"exitAltitude"` // feet
	FallRate           *float64        `json:"fallRate,omitempty"`
	RequiresInstructor bool            `json:"requiresInstructor"`
	InstructorID       string          `json:"instructorId,omitempty"`
}

// RosterEntry is a loosely typed roster record as supplied by callers.
// Keys may be missing or use alternate spellings; see optimizer.Normalize.
type RosterEntry map[string]any
