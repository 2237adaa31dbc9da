// Package generator runs the two render phases for a planned card set.
//
// Phase one renders one shared base per instrument variant touched by the plan.
// Phase two renders one relief per planned note. Renders are strictly sequential
// and the first failure stops the run.
//
// Usage:
//
//	gen := generator.New(openscad.NewClient(),
//		generator.WithTemplate("templates/card.scad"),
//		generator.WithOutputDir("output"),
//	)
//	res, err := gen.Run(registry, core.ModeFull)
package generator
