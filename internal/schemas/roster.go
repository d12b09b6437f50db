package schemas

import (
	_ "embed"
	"sync"

	"github.com/jonathan/load-organizer/internal/types"
)

//go:embed roster.schema.json
var rosterSchemaJSON string

var (
	rosterOnce   sync.Once
	rosterSchema *Schema
	rosterErr    error
)

// rosterSchemaCompiled returns the compiled roster schema.
func rosterSchemaCompiled() (*Schema, error) {
	rosterOnce.Do(func() {
		rosterSchema, rosterErr = Compile("roster", rosterSchemaJSON)
	})
	return rosterSchema, rosterErr
}

// ValidateRoster checks that every entry is an object with correctly typed known fields.
// Unknown fields are allowed.
func ValidateRoster(entries []types.RosterEntry) error {
	s, err := rosterSchemaCompiled()
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []types.RosterEntry{}
	}
	return s.Validate(entries)
}
