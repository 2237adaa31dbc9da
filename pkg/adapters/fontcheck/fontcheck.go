// Package fontcheck verifies that the fingering font actually contains the glyphs a mapping refers to.
package fontcheck

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/aretw0/cardforge/pkg/core"
)

// Font is a parsed TrueType/OpenType font.
type Font struct {
	font   *opentype.Font
	family string
}

// Load reads and parses a font file.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	return Parse(data)
}

// Parse parses font bytes.
func Parse(data []byte) (*Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	family, _ := f.Name(nil, sfnt.NameIDFamily)
	return &Font{font: f, family: family}, nil
}

// Family returns the font family name, or "" when the font has none.
func (f *Font) Family() string {
	return f.family
}

// Has reports whether the font maps r to a real glyph.
func (f *Font) Has(r rune) bool {
	idx, err := f.font.GlyphIndex(nil, r)
	return err == nil && idx != 0
}

// Issue is one problem found in a variant.
type Issue struct {
	Variant string
	Note    string
	Reason  string
}

func (i Issue) String() string {
	if i.Note == "" {
		return i.Variant + ": " + i.Reason
	}
	return i.Variant + "/" + i.Note + ": " + i.Reason
}

// Check reports eligible notes whose glyph is missing from the font, and variants
// whose font name does not match the font's family. Ineligible notes are skipped.
func Check(f *Font, variants []core.OcarinaDefinition) []Issue {
	var issues []Issue
	for _, v := range variants {
		if f.family != "" && !strings.EqualFold(f.family, v.FontName) {
			issues = append(issues, Issue{
				Variant: v.ID,
				Reason:  fmt.Sprintf("font name %q does not match font family %q", v.FontName, f.family),
			})
		}
		for _, n := range v.Notes {
			if !n.Eligible() {
				continue
			}
			for _, r := range n.FontChar {
				if !f.Has(r) {
					issues = append(issues, Issue{
						Variant: v.ID,
						Note:    n.Name,
						Reason:  fmt.Sprintf("no glyph for %q (U+%04X)", r, r),
					})
				}
			}
		}
	}
	return issues
}
