package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/cardforge"
)

func newCheckCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [font-file]",
		Short: "Verify the fingering font has a glyph for every mapped note",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fontFile := o.cfg.FontFile
			if len(args) == 1 {
				fontFile = args[0]
			}
			if fontFile == "" {
				return errors.New("no font file given (argument or font_file in cards.yaml)")
			}

			app, err := cardforge.New(o.cfg, o.logger)
			if err != nil {
				return err
			}

			issues, err := app.CheckFont(fontFile)
			if err != nil {
				return err
			}
			if len(issues) == 0 {
				fmt.Fprintln(o.out, "All glyphs found.")
				return nil
			}

			for _, issue := range issues {
				fmt.Fprintln(o.out, issue.String())
			}
			return fmt.Errorf("%d glyph problem(s) found", len(issues))
		},
	}
}
