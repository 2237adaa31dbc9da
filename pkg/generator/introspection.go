package generator

import "github.com/aretw0/introspection"

const (
	phaseIdle      = "idle"
	phasePreflight = "preflight"
	phaseBases     = "bases"
	phaseReliefs   = "reliefs"
	phaseDone      = "done"
	phaseFailed    = "failed"
)

// GeneratorState exposes run progress for observability.
type GeneratorState struct {
	Phase     string   `json:"phase"`
	Template  string   `json:"template"`
	OutputDir string   `json:"output_dir"`
	Card      CardSpec `json:"card"`
	Bases     int      `json:"bases"`
	Reliefs   int      `json:"reliefs"`
	Planner   any      `json:"planner,omitempty"`
	Renderer  any      `json:"renderer,omitempty"`
}

// State implements introspection.Introspectable.
func (g *Generator) State() any {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GeneratorState{
		Phase:     g.phase,
		Template:  g.template,
		OutputDir: g.outputDir,
		Card:      g.card,
		Bases:     g.last.Bases,
		Reliefs:   g.last.Reliefs,
		Planner:   g.planner.State(),
	}
	if intro, ok := g.renderer.(introspection.Introspectable); ok {
		st.Renderer = intro.State()
	}
	return st
}

// ComponentType implements introspection.Component.
func (g *Generator) ComponentType() string {
	return "generator"
}

var _ introspection.Introspectable = (*Generator)(nil)
var _ introspection.Component = (*Generator)(nil)
