// Package cardforge is the composition root of the card generator.
//
// It turns a table of ocarina fingerings into 3D-printable flashcards. Geometry is
// built by OpenSCAD, driven as a subprocess: one shared base per instrument variant,
// then one relief per note that has a fingering glyph.
//
// Layers:
//
//   - pkg/core: notes, variants, render jobs and the name classification rules.
//   - pkg/adapters/mapping: the registry, loaded from the mapper's JSON or a YAML catalog.
//   - pkg/adapters/openscad: parameter encoding and the renderer subprocess.
//   - pkg/planner: which renders a run needs (full, single sample, representative sample).
//   - pkg/generator: the two render phases.
//
// Usage:
//
//	cfg, _, err := cardforge.DiscoverConfig(".")
//	app, err := cardforge.New(cfg, slog.Default())
//	res, err := app.Generate(core.ModeRepresentative)
package cardforge
