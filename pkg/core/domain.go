// Package core holds the card domain: instruments, notes and the render jobs derived from them.
package core

import "fmt"

// Note is one fingering card candidate.
type Note struct {
	// Name is the canonical note identifier (e.g. "C", "F#", "A#²").
	Name string `json:"name"`
	// LocalizedName is the alternate display name (e.g. "Do", "Fa#").
	LocalizedName string `json:"fr_name"`
	// FontChar selects the fingering glyph in the diagram font.
	// Empty means the fingering has not been mapped yet and the note is never rendered.
	FontChar string `json:"font_char"`
	// StaffPosition places the staff indicator, in half staff lines.
	StaffPosition float64 `json:"staff_position"`
}

// Eligible reports whether the note has a glyph and can become a card.
func (n Note) Eligible() bool {
	return n.FontChar != ""
}

// OcarinaDefinition describes one instrument variant.
type OcarinaDefinition struct {
	// ID names the output folder; it must be filesystem-safe.
	ID       string
	Label    string
	FontName string
	Notes    []Note
}

// RenderJob pairs a variant with one of its eligible notes.
type RenderJob struct {
	Variant OcarinaDefinition
	Note    Note
}

// String implements fmt.Stringer.
func (j RenderJob) String() string {
	return j.Variant.ID + "/" + j.Note.Name
}

// Part selects which geometry the template emits.
type Part string

const (
	PartAll    Part = "all"
	PartBase   Part = "base"
	PartRelief Part = "relief"
)

// Mode selects how many jobs a run plans.
type Mode string

const (
	// ModeFull renders every eligible note.
	ModeFull Mode = "full"
	// ModeSingle renders the reference note only.
	ModeSingle Mode = "single"
	// ModeRepresentative renders one note per sharp/octave combination.
	ModeRepresentative Mode = "representative"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeFull, ModeSingle, ModeRepresentative:
		return m, nil
	case "":
		return ModeFull, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}
