package allocation

import "github.com/jonathan/load-organizer/internal/types"

// jumpTypeBase favors higher-revenue jump types. Unlisted types score 0.
var jumpTypeBase = map[types.JumpType]int{
	types.JumpTypeTandem:    100,
	types.JumpTypeAFF:       80,
	types.JumpTypeCoachJump: 60,
	types.JumpTypeFunJump:   40,
}

// experienceBonus favors jumpers who need the practice. Unlisted levels score 0.
var experienceBonus = map[types.ExperienceLevel]int{
	types.ExperienceBeginner:     15,
	types.ExperienceIntermediate: 10,
	types.ExperienceAdvanced:     5,
	types.ExperienceExpert:       0,
}

const instructorBonus = 20

// Breakdown lists each contribution to a candidate's priority.
type Breakdown struct {
	JumperID   string `json:"jumperId"`
	JumpType   int    `json:"jumpType"`
	Instructor int    `json:"instructor"`
	Experience int    `json:"experience"`
	Total      int    `json:"total"`
}

// JumpTypeScore returns the base priority for a jump type.
func JumpTypeScore(t types.JumpType) int {
	return jumpTypeBase[t]
}

// InstructorScore returns the bonus for jumpers who fly with an instructor.
func InstructorScore(requiresInstructor bool) int {
	if requiresInstructor {
		return instructorBonus
	}
	return 0
}

// ExperienceScore returns the bonus for an experience level.
func ExperienceScore(l types.ExperienceLevel) int {
	return experienceBonus[l]
}

// Priority returns the admission priority of a candidate. Higher is admitted first.
func Priority(j types.Jumper) int {
	return Explain(j).Total
}

// Explain returns the individual contributions behind Priority.
func Explain(j types.Jumper) Breakdown {
	b := Breakdown{
		JumperID:   j.ID,
		JumpType:   JumpTypeScore(j.JumpType),
		Instructor: InstructorScore(j.RequiresInstructor),
		Experience: ExperienceScore(j.ExperienceLevel),
	}
	b.Total = b.JumpType + b.Instructor + b.Experience
	return b
}
