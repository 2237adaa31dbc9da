package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/cardforge"
	"github.com/aretw0/cardforge/pkg/core"
	"github.com/aretw0/cardforge/pkg/generator"
)

func newGenerateCmd(o *rootOptions) *cobra.Command {
	var (
		modes     modeFlags
		fontFile  string
		showState bool
	)
	card := generator.DefaultCard()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the base and relief STL files",
		Long: `Generate renders one common base per instrument variant and one relief
per mapped note. Notes without a fingering glyph are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := o.cfg
			applyCardFlags(cmd, &cfg.Card, card)
			if cmd.Flags().Changed("font-file") {
				cfg.FontFile = fontFile
			}

			mode, err := modes.mode()
			if err != nil {
				return err
			}

			app, err := cardforge.New(cfg, o.logger, generator.WithProgress(func(p generator.Progress) {
				fmt.Fprintf(o.out, "[%d/%d] %s\n", p.Index, p.Total, p.Job)
			}))
			if err != nil {
				return err
			}

			switch mode {
			case core.ModeSingle:
				fmt.Fprintf(o.out, "TEST MODE: generating only the %s card.\n", cfg.ReferenceNote)
			case core.ModeRepresentative:
				fmt.Fprintln(o.out, "TEST FULL MODE: generating 4 representative cards.")
			}

			if cfg.FontFile != "" {
				warnFontIssues(o, app, cfg.FontFile)
			}

			res, err := app.Generate(mode)
			if err != nil {
				return err
			}

			fmt.Fprintf(o.out, "Success! Generated %d relief files + %d common bases in %s\n",
				res.Reliefs, res.Bases, cfg.OutputDir)

			if showState {
				enc := json.NewEncoder(o.out)
				enc.SetIndent("", "  ")
				return enc.Encode(app.Generator.State())
			}
			return nil
		},
	}

	modes.register(cmd)
	f := cmd.Flags()
	f.Float64Var(&card.Width, "width", card.Width, "Base card width in mm")
	f.Float64Var(&card.Height, "height", card.Height, "Base card height in mm")
	f.Float64Var(&card.Thickness, "thickness", card.Thickness, "Base card thickness in mm")
	f.Float64Var(&card.Relief, "relief", card.Relief, "Relief thickness in mm")
	f.Float64Var(&card.Scale, "scale", card.Scale, "Global scaling factor (multiplies all dimensions)")
	f.StringVar(&card.ColorBase, "color-base", card.ColorBase, "Color of the card base")
	f.StringVar(&card.ColorRelief, "color-relief", card.ColorRelief, "Color of the text and relief")
	f.StringVar(&fontFile, "font-file", "", "Fingering font file; missing glyphs are reported before rendering")
	f.BoolVar(&showState, "state", false, "Print the generator state as JSON after the run")

	return cmd
}

// applyCardFlags copies only the card flags the user actually set.
func applyCardFlags(cmd *cobra.Command, dst *cardforge.CardSpec, src cardforge.CardSpec) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		dst.Width = src.Width
	}
	if flags.Changed("height") {
		dst.Height = src.Height
	}
	if flags.Changed("thickness") {
		dst.Thickness = src.Thickness
	}
	if flags.Changed("relief") {
		dst.Relief = src.Relief
	}
	if flags.Changed("scale") {
		dst.Scale = src.Scale
	}
	if flags.Changed("color-base") {
		dst.ColorBase = src.ColorBase
	}
	if flags.Changed("color-relief") {
		dst.ColorRelief = src.ColorRelief
	}
}

func warnFontIssues(o *rootOptions, app *cardforge.App, fontFile string) {
	issues, err := app.CheckFont(fontFile)
	if err != nil {
		o.logger.Warn("skipping glyph check", "error", err)
		return
	}
	for _, issue := range issues {
		o.logger.Warn("glyph check", "issue", issue.String())
	}
}
