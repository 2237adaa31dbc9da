package generator

import (
	"log/slog"

	"github.com/aretw0/cardforge/pkg/planner"
)

// Defaults for a run.
const (
	DefaultTemplate  = "templates/card.scad"
	DefaultOutputDir = "output"
)

// CardSpec holds the physical card settings shared by every render.
type CardSpec struct {
	Width       float64 `yaml:"width" json:"width"`
	Height      float64 `yaml:"height" json:"height"`
	Thickness   float64 `yaml:"thickness" json:"thickness"`
	Relief      float64 `yaml:"relief" json:"relief"`
	Scale       float64 `yaml:"scale" json:"scale"`
	ColorBase   string  `yaml:"color_base" json:"color_base"`
	ColorRelief string  `yaml:"color_relief" json:"color_relief"`
}

// DefaultCard returns the 70x100mm card the template was designed for.
func DefaultCard() CardSpec {
	return CardSpec{
		Width:       70.0,
		Height:      100.0,
		Thickness:   2.0,
		Relief:      1.0,
		Scale:       1.0,
		ColorBase:   "Blue",
		ColorRelief: "Yellow",
	}
}

// Progress describes one relief about to be rendered.
type Progress struct {
	Index  int
	Total  int
	Job    string
	Output string
}

// Option configures a Generator.
type Option func(*Generator)

// WithTemplate sets the CAD template path.
func WithTemplate(path string) Option {
	return func(g *Generator) {
		g.template = path
	}
}

// WithOutputDir sets the directory receiving one folder per variant.
func WithOutputDir(dir string) Option {
	return func(g *Generator) {
		g.outputDir = dir
	}
}

// WithCard sets the physical card settings.
func WithCard(card CardSpec) Option {
	return func(g *Generator) {
		g.card = card
	}
}

// WithPlanner replaces the default planner.
func WithPlanner(p *planner.Planner) Option {
	return func(g *Generator) {
		g.planner = p
	}
}

// WithLogger sets the logger for the generator.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithProgress registers a callback invoked before each relief render.
// Without one, progress is logged at info level.
func WithProgress(fn func(Progress)) Option {
	return func(g *Generator) {
		g.progress = fn
	}
}
