package cardforge

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/cardforge/internal/platform"
	"github.com/aretw0/cardforge/pkg/adapters/fontcheck"
	"github.com/aretw0/cardforge/pkg/adapters/mapping"
	"github.com/aretw0/cardforge/pkg/adapters/openscad"
	"github.com/aretw0/cardforge/pkg/core"
	"github.com/aretw0/cardforge/pkg/generator"
	"github.com/aretw0/cardforge/pkg/planner"
)

// --- Configuration ---

// Config holds every setting of a run. See cards.yaml.
type Config = platform.Config

// CardSpec holds the physical card settings.
type CardSpec = generator.CardSpec

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return platform.DefaultConfig()
}

// LoadConfig reads a cards.yaml file over the defaults.
func LoadConfig(path string) (Config, error) {
	return platform.LoadConfig(path)
}

// DiscoverConfig finds cards.yaml above dir. path is empty when none was found.
func DiscoverConfig(dir string) (cfg Config, path string, err error) {
	return platform.Discover(dir)
}

// --- Factory ---

// App wires the registry, planner, renderer and generator for one configuration.
type App struct {
	Config    Config
	Registry  *mapping.Registry
	Renderer  *openscad.Client
	Planner   *planner.Planner
	Generator *generator.Generator
}

// New builds an App. The registry is loaded here, once: from the catalog when one is
// configured, otherwise the built-in variant with the mapping file.
func New(cfg Config, logger *slog.Logger, opts ...generator.Option) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var reg *mapping.Registry
	if cfg.Catalog != "" {
		var err error
		reg, err = mapping.LoadCatalog(cfg.Catalog, logger)
		if err != nil {
			return nil, err
		}
	} else {
		reg = mapping.Load(cfg.Mapping, logger)
	}

	client := openscad.NewClient(openscad.WithBinary(cfg.Renderer), openscad.WithLogger(logger))
	p := planner.New(planner.WithReferenceNote(cfg.ReferenceNote), planner.WithLogger(logger))

	genOpts := []generator.Option{
		generator.WithTemplate(cfg.Template),
		generator.WithOutputDir(cfg.OutputDir),
		generator.WithCard(cfg.Card),
		generator.WithPlanner(p),
		generator.WithLogger(logger),
	}
	gen := generator.New(client, append(genOpts, opts...)...)

	return &App{
		Config:    cfg,
		Registry:  reg,
		Renderer:  client,
		Planner:   p,
		Generator: gen,
	}, nil
}

// Plan previews a run without touching the renderer.
func (a *App) Plan(mode core.Mode) planner.Plan {
	return a.Generator.Plan(a.Registry, mode)
}

// Generate renders every planned base and relief.
func (a *App) Generate(mode core.Mode) (generator.Result, error) {
	return a.Generator.Run(a.Registry, mode)
}

// CheckFont compares the registry against the font file at path.
func (a *App) CheckFont(path string) ([]fontcheck.Issue, error) {
	f, err := fontcheck.Load(path)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", path, err)
	}
	return fontcheck.Check(f, a.Registry.Variants()), nil
}
