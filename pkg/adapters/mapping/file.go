package mapping

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/cardforge/pkg/core"
)

// record mirrors one mapping entry. Pointers let us tell a missing key from a zero value.
type record struct {
	Name          *string  `json:"name"`
	LocalizedName *string  `json:"fr_name"`
	FontChar      *string  `json:"font_char"`
	StaffPosition *float64 `json:"staff_position"`
}

// ReadNotes parses a mapping file. Note names must be unique under core.NoteKey.
func ReadNotes(path string) ([]core.Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseNotes(data)
}

// ParseNotes decodes mapping records from raw JSON.
func ParseNotes(data []byte) ([]core.Note, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("invalid mapping json: %w", err)
	}

	notes := make([]core.Note, 0, len(records))
	seen := make(map[string]int, len(records))
	for i, rec := range records {
		switch {
		case rec.Name == nil:
			return nil, fmt.Errorf("record %d: missing %q", i, "name")
		case rec.LocalizedName == nil:
			return nil, fmt.Errorf("record %d: missing %q", i, "fr_name")
		case rec.FontChar == nil:
			return nil, fmt.Errorf("record %d: missing %q", i, "font_char")
		case rec.StaffPosition == nil:
			return nil, fmt.Errorf("record %d: missing %q", i, "staff_position")
		}

		n := core.Note{
			Name:          *rec.Name,
			LocalizedName: *rec.LocalizedName,
			FontChar:      *rec.FontChar,
			StaffPosition: *rec.StaffPosition,
		}
		key := core.NoteKey(n.Name)
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("record %d: duplicate note name %q (first at record %d)", i, n.Name, prev)
		}
		seen[key] = i
		notes = append(notes, n)
	}
	return notes, nil
}

// Save writes notes as a mapping file, creating parent directories as needed.
func Save(path string, notes []core.Note) error {
	if notes == nil {
		notes = []core.Note{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(notes); err != nil {
		return fmt.Errorf("failed to encode mapping: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create mapping directory: %w", err)
	}
	return writeFileAtomic(path, buf.Bytes(), 0644)
}
