package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/load-organizer/internal/optimizer"
	"github.com/jonathan/load-organizer/internal/types"
	"gopkg.in/yaml.v3"
)

// File is a roster read from disk. Seats and Capacity are zero when the file omits them.
type File struct {
	Entries  []types.RosterEntry
	Seats    int
	HasSeats bool
	Capacity int
}

// LoadFile reads a roster from a .json, .yaml or .yml file. The document may be a bare
// list of jumper objects, or an object holding the list under "jumpers" or "candidates"
// with optional "seats" and "capacity" numbers.
func LoadFile(path string) (*File, error) {
	var doc any
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}

	f, err := fromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("roster file %s: %w", path, err)
	}
	return f, nil
}

// LoadRecords reads stored jump records from a .json, .yaml or .yml file holding a list.
// Every record must carry a unique id.
func LoadRecords(path string) ([]JumpRecord, error) {
	var records []JumpRecord
	if err := decodeFile(path, &records); err != nil {
		return nil, err
	}
	if err := CheckRecordIDs(records); err != nil {
		return nil, fmt.Errorf("records file %s: %w", path, err)
	}
	return records, nil
}

func decodeFile(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read roster file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, dst)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, dst)
	default:
		return fmt.Errorf("unsupported roster format: %s", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to parse roster file %s: %w", path, err)
	}
	return nil
}

func fromDocument(doc any) (*File, error) {
	switch v := doc.(type) {
	case []any:
		entries, err := toEntries(v)
		if err != nil {
			return nil, err
		}
		return &File{Entries: entries}, nil
	case map[string]any:
		f := &File{}
		list, ok := v["jumpers"]
		if !ok {
			list, ok = v["candidates"]
		}
		if ok && list != nil {
			items, isList := list.([]any)
			if !isList {
				return nil, fmt.Errorf("jumpers must be a list")
			}
			entries, err := toEntries(items)
			if err != nil {
				return nil, err
			}
			f.Entries = entries
		}
		if seats, ok := asInt(v["seats"]); ok {
			f.Seats = seats
			f.HasSeats = true
		}
		if capacity, ok := asInt(v["capacity"]); ok {
			f.Capacity = capacity
		}
		return f, nil
	default:
		return nil, fmt.Errorf("expected a list of jumpers or an object, got %T", doc)
	}
}

func toEntries(items []any) ([]types.RosterEntry, error) {
	entries := make([]types.RosterEntry, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("jumper %d: expected an object, got %T", i, item)
		}
		entries = append(entries, types.RosterEntry(m))
	}
	return entries, nil
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}

// Jumpers returns the entries as normalized jumpers, the allocator's input.
func (f *File) Jumpers() []types.Jumper {
	return optimizer.Normalize(f.Entries)
}
