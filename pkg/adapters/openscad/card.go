package openscad

import "github.com/aretw0/cardforge/pkg/core"

// Card is the full parameter set the card template expects on every render.
type Card struct {
	NoteLetter      string
	NoteLocalized   string
	InstrumentLabel string
	FontChar        string
	FontName        string
	StaffPosition   float64

	Width     float64
	Height    float64
	Thickness float64
	Relief    float64
	Scale     float64

	ColorBase   string
	ColorRelief string

	Part core.Part
}

// Params returns the template defines. is_sharp is derived from the note letter.
func (c Card) Params() core.Params {
	part := c.Part
	if part == "" {
		part = core.PartAll
	}
	return core.Params{
		{Name: "note_letter", Value: c.NoteLetter},
		{Name: "note_fr", Value: c.NoteLocalized},
		{Name: "instrument_label", Value: c.InstrumentLabel},
		{Name: "ocarina_font_char", Value: c.FontChar},
		{Name: "ocarina_font_name", Value: c.FontName},
		{Name: "staff_note_position", Value: c.StaffPosition},
		{Name: "base_width", Value: c.Width},
		{Name: "base_height", Value: c.Height},
		{Name: "base_thickness", Value: c.Thickness},
		{Name: "base_relief", Value: c.Relief},
		{Name: "scale_factor", Value: c.Scale},
		{Name: "color_base", Value: c.ColorBase},
		{Name: "color_relief", Value: c.ColorRelief},
		{Name: "is_sharp", Value: core.IsSharp(c.NoteLetter)},
		{Name: "part_type", Value: string(part)},
	}
}
