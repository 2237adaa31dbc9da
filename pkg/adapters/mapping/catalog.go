package mapping

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/cardforge/pkg/core"
)

var variantIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Catalog is the on-disk description of several instrument variants.
type Catalog struct {
	Variants []CatalogEntry `yaml:"variants"`
}

// CatalogEntry describes one variant. Mapping is resolved relative to the catalog file.
type CatalogEntry struct {
	ID       string `yaml:"id"`
	Label    string `yaml:"label"`
	FontName string `yaml:"font_name"`
	Mapping  string `yaml:"mapping"`
}

// LoadCatalog reads a YAML catalog and loads every variant's mapping with the
// usual fallback rule. Unlike mappings, a bad catalog is a configuration error.
func LoadCatalog(path string, logger *slog.Logger) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	base := filepath.Dir(path)
	variants := make([]core.OcarinaDefinition, 0, len(cat.Variants))
	for _, entry := range cat.Variants {
		mappingPath := entry.Mapping
		if mappingPath != "" && !filepath.IsAbs(mappingPath) {
			mappingPath = filepath.Join(base, mappingPath)
		}

		var notes []core.Note
		if mappingPath == "" {
			notes = FallbackNotes()
		} else {
			notes = LoadNotes(mappingPath, logger)
		}

		variants = append(variants, core.OcarinaDefinition{
			ID:       entry.ID,
			Label:    entry.Label,
			FontName: entry.FontName,
			Notes:    notes,
		})
	}
	return New(variants...), nil
}

// Validate checks ids are present, filesystem-safe and unique.
func (c Catalog) Validate() error {
	if len(c.Variants) == 0 {
		return fmt.Errorf("%w: catalog has no variants", core.ErrInvalidVariant)
	}

	seen := make(map[string]bool, len(c.Variants))
	for i, v := range c.Variants {
		if !variantIDPattern.MatchString(v.ID) {
			return fmt.Errorf("%w: variant %d: id %q must match %s", core.ErrInvalidVariant, i, v.ID, variantIDPattern)
		}
		if seen[v.ID] {
			return fmt.Errorf("%w: duplicate variant id %q", core.ErrInvalidVariant, v.ID)
		}
		seen[v.ID] = true
	}
	return nil
}
