// Package planner turns the instrument registry into the minimal list of renders a run needs.
package planner

import (
	"log/slog"

	"github.com/aretw0/cardforge/pkg/core"
)

// DefaultReferenceNote is the note single-sample runs look for first.
const DefaultReferenceNote = "A#²"

// Source provides the variants to plan over.
type Source interface {
	Variants() []core.OcarinaDefinition
}

// Plan is the outcome of planning: which bases to render and which reliefs.
type Plan struct {
	Mode core.Mode
	// Variants lists each variant touched by Jobs once, in first-seen order.
	Variants []core.OcarinaDefinition
	Jobs     []core.RenderJob
	// Candidates counts every (variant, note) pair before eligibility filtering.
	Candidates int
	// Eligible counts the pairs with a glyph, before mode filtering.
	Eligible int
}

// Empty reports whether there is nothing to render.
func (p Plan) Empty() bool {
	return len(p.Jobs) == 0
}

// Planner builds plans. It holds no state between calls.
type Planner struct {
	reference string
	logger    *slog.Logger
}

// Option configures a Planner.
type Option func(*Planner)

// WithReferenceNote sets the note single-sample mode prefers.
// It matches note names in any Unicode normalization form.
func WithReferenceNote(name string) Option {
	return func(p *Planner) {
		if name != "" {
			p.reference = core.NoteKey(name)
		}
	}
}

// WithLogger sets the logger for the planner.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) {
		p.logger = logger
	}
}

// New creates a Planner.
func New(opts ...Option) *Planner {
	p := &Planner{reference: DefaultReferenceNote}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// ReferenceNote returns the note single-sample mode looks for.
func (p *Planner) ReferenceNote() string {
	return p.reference
}

// Plan builds the job list for mode. It never fails: an unknown mode plans a full run,
// and an empty result is a valid plan.
func (p *Planner) Plan(src Source, mode core.Mode) Plan {
	all := CrossProduct(src.Variants())
	eligible := Eligible(all)

	var jobs []core.RenderJob
	switch mode {
	case core.ModeSingle:
		jobs = p.single(eligible)
	case core.ModeRepresentative:
		jobs = Representative(eligible)
	default:
		mode = core.ModeFull
		jobs = eligible
	}

	return Plan{
		Mode:       mode,
		Variants:   DistinctVariants(jobs),
		Jobs:       jobs,
		Candidates: len(all),
		Eligible:   len(eligible),
	}
}

func (p *Planner) single(jobs []core.RenderJob) []core.RenderJob {
	for _, j := range jobs {
		if core.NoteKey(j.Note.Name) == p.reference {
			return []core.RenderJob{j}
		}
	}
	if len(jobs) == 0 {
		return nil
	}
	p.logger.Warn("reference note not found, falling back to first available card",
		"reference", p.reference, "fallback", jobs[0].String())
	return jobs[:1]
}
