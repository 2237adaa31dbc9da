package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/aretw0/cardforge/pkg/adapters/openscad"
	"github.com/aretw0/cardforge/pkg/core"
	"github.com/aretw0/cardforge/pkg/planner"
)

// BaseFileName is the shared base geometry file in each variant folder.
const BaseFileName = "base.stl"

// The base is note-independent; these values only satisfy the template.
var baseNote = core.Note{Name: "C", LocalizedName: "Do", FontChar: "c", StaffPosition: 0}

// Renderer produces one geometry file per call.
type Renderer interface {
	// Check reports whether the renderer can run at all.
	Check() error
	Render(templatePath, outputPath string, params core.Params) error
}

// Result summarizes a run.
type Result struct {
	Bases   int
	Reliefs int
	Files   []string
}

// Generator orchestrates a full render run.
type Generator struct {
	renderer  Renderer
	planner   *planner.Planner
	template  string
	outputDir string
	card      CardSpec
	logger    *slog.Logger
	progress  func(Progress)

	mu    sync.RWMutex
	phase string
	last  Result
}

// New creates a Generator rendering through r.
func New(r Renderer, opts ...Option) *Generator {
	g := &Generator{
		renderer:  r,
		template:  DefaultTemplate,
		outputDir: DefaultOutputDir,
		card:      DefaultCard(),
		phase:     phaseIdle,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	if g.planner == nil {
		g.planner = planner.New(planner.WithLogger(g.logger))
	}
	return g
}

// Preflight checks the renderer and the template before any work is done.
func (g *Generator) Preflight() error {
	if err := g.renderer.Check(); err != nil {
		return err
	}
	info, err := os.Stat(g.template)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w at %s", core.ErrTemplateNotFound, g.template)
		}
		return fmt.Errorf("failed to stat template: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", core.ErrTemplateNotFound, g.template)
	}
	return nil
}

// Plan runs the planner without rendering.
func (g *Generator) Plan(src planner.Source, mode core.Mode) planner.Plan {
	return g.planner.Plan(src, mode)
}

// Run checks preconditions, plans, and renders bases then reliefs.
func (g *Generator) Run(src planner.Source, mode core.Mode) (Result, error) {
	g.setPhase(phasePreflight)
	if err := g.Preflight(); err != nil {
		g.setPhase(phaseFailed)
		return Result{}, err
	}

	plan := g.planner.Plan(src, mode)
	g.logger.Info("planned cards",
		"mode", plan.Mode, "candidates", plan.Candidates, "eligible", plan.Eligible,
		"reliefs", len(plan.Jobs), "bases", len(plan.Variants))
	if g.card.Scale != 1.0 {
		g.logger.Info("applying scale factor",
			"scale", g.card.Scale,
			"final_size", fmt.Sprintf("%.1fx%.1fmm", g.card.Width*g.card.Scale, g.card.Height*g.card.Scale))
	}

	return g.Execute(plan)
}

// Execute renders a plan: every base first, then every relief. It stops at the first failure
// and returns what was rendered so far alongside the error.
func (g *Generator) Execute(plan planner.Plan) (Result, error) {
	var res Result

	g.setPhase(phaseBases)
	for _, v := range plan.Variants {
		out := BasePath(g.outputDir, v)
		g.logger.Info("generating base", "variant", v.Label, "output", out)

		if err := g.renderer.Render(g.template, out, g.cardFor(v, baseNote, core.PartBase).Params()); err != nil {
			return g.finish(res, fmt.Errorf("base for %s: %w", v.ID, err))
		}
		res.Bases++
		res.Files = append(res.Files, out)
	}

	g.setPhase(phaseReliefs)
	for i, job := range plan.Jobs {
		out := ReliefPath(g.outputDir, job)
		g.report(Progress{Index: i + 1, Total: len(plan.Jobs), Job: job.String(), Output: out})

		if err := g.renderer.Render(g.template, out, g.cardFor(job.Variant, job.Note, core.PartRelief).Params()); err != nil {
			return g.finish(res, fmt.Errorf("relief %s: %w", job, err))
		}
		res.Reliefs++
		res.Files = append(res.Files, out)
	}

	return g.finish(res, nil)
}

func (g *Generator) cardFor(v core.OcarinaDefinition, n core.Note, part core.Part) openscad.Card {
	return openscad.Card{
		NoteLetter:      n.Name,
		NoteLocalized:   n.LocalizedName,
		InstrumentLabel: v.Label,
		FontChar:        n.FontChar,
		FontName:        v.FontName,
		StaffPosition:   n.StaffPosition,
		Width:           g.card.Width,
		Height:          g.card.Height,
		Thickness:       g.card.Thickness,
		Relief:          g.card.Relief,
		Scale:           g.card.Scale,
		ColorBase:       g.card.ColorBase,
		ColorRelief:     g.card.ColorRelief,
		Part:            part,
	}
}

func (g *Generator) report(p Progress) {
	if g.progress != nil {
		g.progress(p)
		return
	}
	g.logger.Info("generating relief", "n", p.Index, "total", p.Total, "job", p.Job)
}

func (g *Generator) finish(res Result, err error) (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.last = res
	if err != nil {
		g.phase = phaseFailed
		return res, err
	}
	g.phase = phaseDone
	return res, nil
}

func (g *Generator) setPhase(p string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.phase = p
}

// BasePath is where a variant's shared base is written.
func BasePath(outputDir string, v core.OcarinaDefinition) string {
	return filepath.Join(outputDir, v.ID, BaseFileName)
}

// ReliefPath is where a job's relief is written.
func ReliefPath(outputDir string, job core.RenderJob) string {
	return filepath.Join(outputDir, job.Variant.ID, core.SanitizeNoteName(job.Note.Name)+".stl")
}
