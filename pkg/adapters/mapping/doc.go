// Package mapping builds the instrument registry from persisted note mappings.
//
// A mapping is a JSON array of records produced by the interactive mapper:
//
//	[{"name": "A#²", "fr_name": "La#²", "font_char": "h", "staff_position": 1.5}]
//
// Loading never fails: a missing, empty or malformed mapping degrades to a single
// built-in placeholder note so a fresh checkout can still render a card.
package mapping
