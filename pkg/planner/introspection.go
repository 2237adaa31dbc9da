package planner

import "github.com/aretw0/introspection"

// PlannerState exposes planner settings for observability.
type PlannerState struct {
	ReferenceNote string `json:"reference_note"`
}

// State implements introspection.Introspectable.
func (p *Planner) State() any {
	return PlannerState{ReferenceNote: p.reference}
}

// ComponentType implements introspection.Component.
func (p *Planner) ComponentType() string {
	return "planner"
}

var _ introspection.Introspectable = (*Planner)(nil)
var _ introspection.Component = (*Planner)(nil)
