package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/cardforge"
	"github.com/aretw0/cardforge/pkg/generator"
	"github.com/aretw0/cardforge/pkg/planner"
)

type baseView struct {
	Variant string `json:"variant"`
	Label   string `json:"label"`
	Output  string `json:"output"`
}

type reliefView struct {
	Variant       string  `json:"variant"`
	Note          string  `json:"note"`
	LocalizedName string  `json:"localized_name"`
	Glyph         string  `json:"glyph"`
	StaffPosition float64 `json:"staff_position"`
	Output        string  `json:"output"`
}

type planView struct {
	Mode       string       `json:"mode"`
	Candidates int          `json:"candidates"`
	Eligible   int          `json:"eligible"`
	Bases      []baseView   `json:"bases"`
	Reliefs    []reliefView `json:"reliefs"`
}

func newPlanView(plan planner.Plan, outputDir string) planView {
	view := planView{
		Mode:       string(plan.Mode),
		Candidates: plan.Candidates,
		Eligible:   plan.Eligible,
		Bases:      []baseView{},
		Reliefs:    []reliefView{},
	}
	for _, v := range plan.Variants {
		view.Bases = append(view.Bases, baseView{Variant: v.ID, Label: v.Label, Output: generator.BasePath(outputDir, v)})
	}
	for _, j := range plan.Jobs {
		view.Reliefs = append(view.Reliefs, reliefView{
			Variant:       j.Variant.ID,
			Note:          j.Note.Name,
			LocalizedName: j.Note.LocalizedName,
			Glyph:         j.Note.FontChar,
			StaffPosition: j.Note.StaffPosition,
			Output:        generator.ReliefPath(outputDir, j),
		})
	}
	return view
}

func newPlanCmd(o *rootOptions) *cobra.Command {
	var (
		modes  modeFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show which files a generate run would render",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := modes.mode()
			if err != nil {
				return err
			}

			app, err := cardforge.New(o.cfg, o.logger)
			if err != nil {
				return err
			}

			view := newPlanView(app.Plan(mode), o.cfg.OutputDir)

			if asJSON {
				enc := json.NewEncoder(o.out)
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}

			fmt.Fprintf(o.out, "Found %d potential cards, %d with a fingering (mode: %s)\n",
				view.Candidates, view.Eligible, view.Mode)
			fmt.Fprintln(o.out, "Bases:")
			for _, b := range view.Bases {
				fmt.Fprintf(o.out, "  %s -> %s\n", b.Label, b.Output)
			}
			fmt.Fprintln(o.out, "Reliefs:")
			for _, r := range view.Reliefs {
				fmt.Fprintf(o.out, "  %s/%s (%s) glyph %q -> %s\n", r.Variant, r.Note, r.LocalizedName, r.Glyph, r.Output)
			}
			return nil
		},
	}

	modes.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
