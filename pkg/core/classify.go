package core

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	// SharpMarker flags a sharp note in its name.
	SharpMarker = "#"
	// HighMarker flags the upper octave in a note name.
	HighMarker = "²"
)

var nameReplacer = strings.NewReplacer(SharpMarker, "_sharp", HighMarker, "_high")

// IsSharp reports whether the note name carries the sharp marker.
func IsSharp(name string) bool {
	return strings.Contains(name, SharpMarker)
}

// IsHigh reports whether the note name carries the high octave marker.
func IsHigh(name string) bool {
	return strings.Contains(name, HighMarker)
}

// SanitizeNoteName turns a note name into a file name stem.
// "A#²" becomes "A_sharp_high".
func SanitizeNoteName(name string) string {
	return nameReplacer.Replace(name)
}

// NoteKey is the comparison form of a note name. Names typed in composed and
// decomposed Unicode share a key.
func NoteKey(name string) string {
	return norm.NFC.String(name)
}
