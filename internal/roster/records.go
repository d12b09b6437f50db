// Package roster turns stored jump records and roster files into engine input,
// and maps an optimized exit order back onto the stored records.
package roster

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/load-organizer/internal/types"
)

var (
	// ErrUnknownJumper is returned when an exit order names a jumper that has no record.
	ErrUnknownJumper = errors.New("jumper not found in load records")
	// ErrMissingRecordID is returned for a record without an id.
	ErrMissingRecordID = errors.New("jump record has no id")
	// ErrDuplicateRecordID is returned when two records share an id.
	ErrDuplicateRecordID = errors.New("duplicate jump record id")
)

// AFFLevel is a student's stage in the Accelerated Free Fall program.
type AFFLevel string

const (
	AFFLevel1        AFFLevel = "level_1"
	AFFLevel2        AFFLevel = "level_2"
	AFFLevel3        AFFLevel = "level_3"
	AFFLevel4        AFFLevel = "level_4"
	AFFLevel5        AFFLevel = "level_5"
	AFFLevel6        AFFLevel = "level_6"
	AFFLevel7        AFFLevel = "level_7"
	AFFLevelGraduate AFFLevel = "graduate"
)

// affExperience maps AFF progression onto the engine's experience scale.
var affExperience = map[AFFLevel]types.ExperienceLevel{
	AFFLevel1:        types.ExperienceBeginner,
	AFFLevel2:        types.ExperienceBeginner,
	AFFLevel3:        types.ExperienceBeginner,
	AFFLevel4:        types.ExperienceIntermediate,
	AFFLevel5:        types.ExperienceIntermediate,
	AFFLevel6:        types.ExperienceIntermediate,
	AFFLevel7:        types.ExperienceIntermediate,
	AFFLevelGraduate: types.ExperienceAdvanced,
}

// JumpRecord is a jump row as the system of record stores it.
type JumpRecord struct {
	ID            uuid.UUID  `json:"id" yaml:"id"`
	LoadID        uuid.UUID  `json:"load_id" yaml:"load_id"`
	JumperName    string     `json:"jumper_name" yaml:"jumper_name"`
	JumpType      string     `json:"jump_type" yaml:"jump_type"` // tandem, aff or fun_jumper
	ExitOrder     int        `json:"exit_order" yaml:"exit_order"`
	InstructorID  *uuid.UUID `json:"instructor_id,omitempty" yaml:"instructor_id,omitempty"`
	AFFLevel      AFFLevel   `json:"aff_level,omitempty" yaml:"aff_level,omitempty"`
	CustomerEmail string     `json:"customer_email,omitempty" yaml:"customer_email,omitempty"`
	Notes         string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at" yaml:"created_at"`
}

// FromJumpRecords converts stored jump records into roster entries for a load flown
// at altitude feet. Records are not reordered. Fields the records do not carry, such
// as weight, are left for the normalizer to default.
func FromJumpRecords(records []JumpRecord, altitude int) []types.RosterEntry {
	entries := make([]types.RosterEntry, 0, len(records))
	for _, r := range records {
		entry := types.RosterEntry{
			"id":              r.ID.String(),
			"name":            r.JumperName,
			"jump_type":       r.JumpType,
			"experienceLevel": string(experienceFor(r)),
			"exitAltitude":    altitude,
		}
		if r.InstructorID != nil {
			entry["instructorId"] = r.InstructorID.String()
		}
		entries = append(entries, entry)
	}
	return entries
}

// CheckRecordIDs reports the first record whose id is missing or repeated.
// Records are matched to the exit order by id, so both would misplace jumpers.
func CheckRecordIDs(records []JumpRecord) error {
	seen := make(map[uuid.UUID]int, len(records))
	for i, r := range records {
		if r.ID == uuid.Nil {
			return fmt.Errorf("record %d (%q): %w", i, r.JumperName, ErrMissingRecordID)
		}
		if first, ok := seen[r.ID]; ok {
			return fmt.Errorf("records %d and %d share id %s: %w", first, i, r.ID, ErrDuplicateRecordID)
		}
		seen[r.ID] = i
	}
	return nil
}

func experienceFor(r JumpRecord) types.ExperienceLevel {
	if lvl, ok := affExperience[r.AFFLevel]; ok {
		return lvl
	}
	if r.JumpType == string(types.JumpTypeTandem) {
		return types.ExperienceBeginner
	}
	return types.ExperienceIntermediate
}

// ApplyExitOrder returns copies of records with ExitOrder renumbered from 1 following
// the optimized order. Records the load does not mention keep their relative order and
// are numbered after it. Persisting the result is the caller's job.
func ApplyExitOrder(records []JumpRecord, load *types.OptimizedLoad) ([]JumpRecord, error) {
	if err := CheckRecordIDs(records); err != nil {
		return nil, err
	}
	byID := make(map[string]int, len(records))
	for i, r := range records {
		byID[r.ID.String()] = i
	}

	out := make([]JumpRecord, 0, len(records))
	placed := make(map[int]bool, len(records))
	for _, j := range load.ExitOrder {
		idx, ok := byID[j.ID]
		if !ok {
			return nil, fmt.Errorf("apply exit order for %q: %w", j.ID, ErrUnknownJumper)
		}
		if placed[idx] {
			continue
		}
		placed[idx] = true
		rec := records[idx]
		rec.ExitOrder = len(out) + 1
		out = append(out, rec)
	}

	for i, r := range records {
		if placed[i] {
			continue
		}
		r.ExitOrder = len(out) + 1
		out = append(out, r)
	}

	return out, nil
}
