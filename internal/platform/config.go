// Package platform resolves where a run happens and with which settings.
package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/cardforge/pkg/adapters/openscad"
	"github.com/aretw0/cardforge/pkg/generator"
	"github.com/aretw0/cardforge/pkg/planner"
)

// Config is the content of cards.yaml. Relative paths are resolved against the file's directory.
type Config struct {
	OutputDir     string             `yaml:"output_dir"`
	Template      string             `yaml:"template"`
	Mapping       string             `yaml:"mapping"`
	Catalog       string             `yaml:"catalog"`
	Renderer      string             `yaml:"renderer"`
	ReferenceNote string             `yaml:"reference_note"`
	FontFile      string             `yaml:"font_file"`
	Card          generator.CardSpec `yaml:"card"`
}

// DefaultMapping is the mapping file produced by the mapper tool.
const DefaultMapping = "mapping.json"

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		OutputDir:     generator.DefaultOutputDir,
		Template:      generator.DefaultTemplate,
		Mapping:       DefaultMapping,
		Renderer:      openscad.DefaultBinary,
		ReferenceNote: planner.DefaultReferenceNote,
		Card:          generator.DefaultCard(),
	}
}

// LoadConfig reads a cards.yaml over the defaults. Keys absent from the file keep their default.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	cfg.resolve(filepath.Dir(path))
	return cfg, nil
}

// Discover finds cards.yaml above startDir and loads it. With no project root it
// returns the defaults unchanged. path is empty when no file was read.
func Discover(startDir string) (cfg Config, path string, err error) {
	root, err := FindRoot(startDir)
	if err != nil {
		return DefaultConfig(), "", nil
	}

	path = filepath.Join(root, ConfigFileName)
	cfg, err = LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		// Root found through the template only.
		cfg = DefaultConfig()
		cfg.resolve(root)
		return cfg, "", nil
	}
	return cfg, path, err
}

func (c *Config) resolve(base string) {
	for _, p := range []*string{&c.OutputDir, &c.Template, &c.Mapping, &c.Catalog, &c.FontFile} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
}
