// Package optimizer computes exit orders, jump groups, timing and safety advice for aircraft loads.
package optimizer

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/load-organizer/internal/types"
)

// Defaults applied to roster entries that omit a field.
const (
	DefaultJumpType        = types.JumpTypeFunJump
	DefaultExperienceLevel = types.ExperienceIntermediate
	DefaultWeight          = 180.0
	DefaultExitAltitude    = 14000
)

// Accepted spellings for each canonical field, checked in order.
var (
	idKeys           = []string{"id"}
	nameKeys         = []string{"name", "jumper_name", "jumperName"}
	jumpTypeKeys     = []string{"jumpType", "jump_type", "type"}
	experienceKeys   = []string{"experienceLevel", "experience_level", "experience"}
	weightKeys       = []string{"weight"}
	exitAltitudeKeys = []string{"exitAltitude", "exit_altitude", "altitude"}
	fallRateKeys     = []string{"fallRate", "fall_rate"}
	instructorIDKeys = []string{"instructorId", "instructor_id", "instructorID"}
)

// jumpTypeAliases maps spellings used by stored jump records onto canonical jump types.
var jumpTypeAliases = map[string]types.JumpType{
	"fun_jumper": types.JumpTypeFunJump,
	"fun":        types.JumpTypeFunJump,
	"coach":      types.JumpTypeCoachJump,
}

// Normalize converts loosely typed roster entries into canonical jumpers.
// The result has the same length and order as entries. It never fails: missing or
// unreadable fields fall back to defaults, and unknown enum values are kept as given.
func Normalize(entries []types.RosterEntry) []types.Jumper {
	jumpers := make([]types.Jumper, len(entries))
	for i, entry := range entries {
		jumpers[i] = normalizeEntry(i, entry)
	}
	return jumpers
}

// NormalizeJumpers applies the same defaulting rules to already typed jumpers.
// The input slice is not modified.
func NormalizeJumpers(in []types.Jumper) []types.Jumper {
	jumpers := make([]types.Jumper, len(in))
	for i, j := range in {
		if j.ID == "" {
			j.ID = fmt.Sprintf("jumper-%d", i)
		}
		if j.Name == "" {
			j.Name = fmt.Sprintf("Jumper %d", i+1)
		}
		if j.JumpType == "" {
			j.JumpType = DefaultJumpType
		} else if alias, ok := jumpTypeAliases[string(j.JumpType)]; ok {
			j.JumpType = alias
		}
		if j.ExperienceLevel == "" {
			j.ExperienceLevel = DefaultExperienceLevel
		}
		if j.Weight == 0 {
			j.Weight = DefaultWeight
		}
		if j.ExitAltitude == 0 {
			j.ExitAltitude = DefaultExitAltitude
		}
		if j.FallRate != nil {
			rate := *j.FallRate
			j.FallRate = &rate
		}
		j.RequiresInstructor = j.JumpType.NeedsInstructor()
		jumpers[i] = j
	}
	return jumpers
}

func normalizeEntry(index int, entry types.RosterEntry) types.Jumper {
	j := types.Jumper{
		ID:              fmt.Sprintf("jumper-%d", index),
		Name:            fmt.Sprintf("Jumper %d", index+1),
		JumpType:        DefaultJumpType,
		ExperienceLevel: DefaultExperienceLevel,
		Weight:          DefaultWeight,
		ExitAltitude:    DefaultExitAltitude,
	}

	if id, ok := lookupString(entry, idKeys); ok {
		j.ID = id
	}
	if name, ok := lookupString(entry, nameKeys); ok {
		j.Name = name
	}
	if jt, ok := lookupString(entry, jumpTypeKeys); ok {
		j.JumpType = canonicalJumpType(jt)
	}
	if lvl, ok := lookupString(entry, experienceKeys); ok {
		j.ExperienceLevel = types.ExperienceLevel(strings.ToLower(lvl))
	}
	if w, ok := lookupNumber(entry, weightKeys); ok {
		j.Weight = w
	}
	if alt, ok := lookupNumber(entry, exitAltitudeKeys); ok {
		j.ExitAltitude = int(math.Round(alt))
	}
	if rate, ok := lookupNumber(entry, fallRateKeys); ok {
		j.FallRate = &rate
	}
	if instructor, ok := lookupString(entry, instructorIDKeys); ok {
		j.InstructorID = instructor
	}

	j.RequiresInstructor = j.JumpType.NeedsInstructor()
	return j
}

func canonicalJumpType(raw string) types.JumpType {
	v := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := jumpTypeAliases[v]; ok {
		return alias
	}
	return types.JumpType(v)
}

// lookupString returns the first non-empty string-like value stored under one of keys.
// Numbers are accepted and formatted, so numeric ids survive.
func lookupString(entry types.RosterEntry, keys []string) (string, bool) {
	for _, key := range keys {
		raw, ok := entry[key]
		if !ok || raw == nil {
			continue
		}
		var s string
		switch v := raw.(type) {
		case string:
			s = strings.TrimSpace(v)
		case json.Number:
			s = v.String()
		case int:
			s = strconv.Itoa(v)
		case int64:
			s = strconv.FormatInt(v, 10)
		case float64:
			s = strconv.FormatFloat(v, 'f', -1, 64)
		case fmt.Stringer:
			s = v.String()
		default:
			continue
		}
		if s != "" {
			return s, true
		}
	}
	return "", false
}

// lookupNumber returns the first finite numeric value stored under one of keys.
// Numeric strings are parsed; anything else, NaN and infinities count as missing.
func lookupNumber(entry types.RosterEntry, keys []string) (float64, bool) {
	for _, key := range keys {
		raw, ok := entry[key]
		if !ok || raw == nil {
			continue
		}
		if f, ok := asNumber(raw); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f, true
		}
	}
	return 0, false
}

func asNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f, true
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
