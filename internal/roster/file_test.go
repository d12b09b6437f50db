package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/load-organizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile_JSONList(t *testing.T) {
	path := writeFile(t, "roster.json", `[
		{"id": "t1", "jumpType": "tandem", "exitAltitude": 14000},
		{"name": "No ID"}
	]`)

	f, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, f.Entries, 2)
	assert.False(t, f.HasSeats)

	jumpers := f.Jumpers()
	assert.Equal(t, "t1", jumpers[0].ID)
	assert.Equal(t, types.JumpTypeTandem, jumpers[0].JumpType)
	assert.Equal(t, "jumper-1", jumpers[1].ID)
	assert.Equal(t, "No ID", jumpers[1].Name)
}

func TestLoadFile_YAMLCandidates(t *testing.T) {
	path := writeFile(t, "pool.yaml", `
seats: 3
capacity: 14
candidates:
  - id: a1
    jump_type: aff
    experience_level: beginner
    weight: 165
  - id: f1
    jump_type: fun_jumper
`)

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, f.HasSeats)
	assert.Equal(t, 3, f.Seats)
	assert.Equal(t, 14, f.Capacity)

	jumpers := f.Jumpers()
	require.Len(t, jumpers, 2)
	assert.Equal(t, types.JumpTypeAFF, jumpers[0].JumpType)
	assert.Equal(t, types.ExperienceBeginner, jumpers[0].ExperienceLevel)
	assert.Equal(t, 165.0, jumpers[0].Weight)
	assert.Equal(t, types.JumpTypeFunJump, jumpers[1].JumpType)
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		errMsg  string
	}{
		{"unsupported extension", "roster.txt", "[]", "unsupported roster format"},
		{"invalid json", "roster.json", "{", "failed to parse roster file"},
		{"scalar document", "roster.json", "42", "expected a list of jumpers or an object"},
		{"non-object jumper", "roster.json", `["tandem"]`, "jumper 0: expected an object"},
		{"jumpers not a list", "roster.yml", "jumpers: nope", "jumpers must be a list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read roster file")
}

func TestLoadRecords(t *testing.T) {
	path := writeFile(t, "records.yaml", `
- id: 6f1c2b1e-3a7d-4c55-9a51-0c1f5b8d2e01
  load_id: 0b8e5f7a-94c2-4e33-8d7e-5a6b1c2d3e4f
  jumper_name: Casey
  jump_type: aff
  aff_level: level_5
  exit_order: 2
  created_at: 2024-05-04T09:30:00Z
- id: 8d2e4a6c-1b3f-4d5e-9f70-a1b2c3d4e5f6
  load_id: 0b8e5f7a-94c2-4e33-8d7e-5a6b1c2d3e4f
  jumper_name: Morgan
  jump_type: fun_jumper
  exit_order: 1
  created_at: 2024-05-04T09:31:00Z
`)

	records, err := LoadRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Casey", records[0].JumperName)
	assert.Equal(t, AFFLevel5, records[0].AFFLevel)
	assert.Equal(t, "6f1c2b1e-3a7d-4c55-9a51-0c1f5b8d2e01", records[0].ID.String())
	assert.Equal(t, 1, records[1].ExitOrder)
	assert.Equal(t, 2024, records[1].CreatedAt.Year())

	entries := FromJumpRecords(records, 13500)
	assert.Equal(t, "Casey", entries[0]["name"])
}

func TestLoadRecords_Errors(t *testing.T) {
	_, err := LoadRecords(writeFile(t, "records.json", `{"id": "x"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse roster file")

	_, err = LoadRecords(writeFile(t, "records.csv", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported roster format")

	_, err = LoadRecords(writeFile(t, "records.yaml", `
- jumper_name: Tandem A
  jump_type: tandem
- jumper_name: Fun B
  jump_type: fun_jumper
`))
	require.ErrorIs(t, err, ErrMissingRecordID)
	assert.Contains(t, err.Error(), "records file")
}
