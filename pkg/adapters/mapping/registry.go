package mapping

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/aretw0/cardforge/pkg/core"
)

// Built-in variant used when no catalog is configured.
const (
	DefaultVariantID    = "12H_AltoC"
	DefaultVariantLabel = "12-Hole Alto C"
	DefaultFontName     = "Open 12 Hole Ocarina 1"
)

// FallbackNotes is the placeholder note set used when no mapping is available.
func FallbackNotes() []core.Note {
	return []core.Note{
		{Name: "C", LocalizedName: "Do", FontChar: "c", StaffPosition: -1.0},
	}
}

// Registry is the ordered, read-only set of instrument variants.
type Registry struct {
	variants []core.OcarinaDefinition
}

// New creates a registry from explicit variants.
func New(variants ...core.OcarinaDefinition) *Registry {
	r := &Registry{}
	for _, v := range variants {
		r.variants = append(r.variants, cloneVariant(v))
	}
	return r
}

// Load builds the default single-variant registry, filling its notes from the mapping at path.
func Load(path string, logger *slog.Logger) *Registry {
	return New(core.OcarinaDefinition{
		ID:       DefaultVariantID,
		Label:    DefaultVariantLabel,
		FontName: DefaultFontName,
		Notes:    LoadNotes(path, logger),
	})
}

// LoadNotes reads the mapping at path, falling back to FallbackNotes when it is
// absent, empty or unreadable. Read and parse failures are logged as warnings.
func LoadNotes(path string, logger *slog.Logger) []core.Note {
	if logger == nil {
		logger = slog.Default()
	}

	notes, err := ReadNotes(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("no mapping file, using fallback notes", "path", path)
		return FallbackNotes()
	case err != nil:
		logger.Warn("failed to load mapping, using fallback notes", "path", path, "error", err)
		return FallbackNotes()
	case len(notes) == 0:
		logger.Debug("mapping is empty, using fallback notes", "path", path)
		return FallbackNotes()
	}

	logger.Debug("loaded mapping", "path", path, "notes", len(notes))
	return notes
}

// Variants returns every variant in registry order.
func (r *Registry) Variants() []core.OcarinaDefinition {
	out := make([]core.OcarinaDefinition, 0, len(r.variants))
	for _, v := range r.variants {
		out = append(out, cloneVariant(v))
	}
	return out
}

// Len returns the number of variants.
func (r *Registry) Len() int {
	return len(r.variants)
}

func cloneVariant(v core.OcarinaDefinition) core.OcarinaDefinition {
	v.Notes = append([]core.Note(nil), v.Notes...)
	return v
}
