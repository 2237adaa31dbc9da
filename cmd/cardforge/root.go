package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/cardforge"
	"github.com/aretw0/cardforge/pkg/core"
)

// rootOptions is shared by every subcommand.
type rootOptions struct {
	verbose    bool
	configPath string

	outputDir     string
	template      string
	mapping       string
	catalog       string
	renderer      string
	referenceNote string

	cfg    cardforge.Config
	logger *slog.Logger
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	o := &rootOptions{out: out, errOut: errOut}

	cmd := &cobra.Command{
		Use:   "cardforge",
		Short: "Generate 3D printable ocarina fingering cards",
		Long: `cardforge turns a table of ocarina fingerings into printable flashcards.
It renders one common base per instrument and one relief per note with OpenSCAD.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if o.verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			o.logger = slog.New(slog.NewTextHandler(o.errOut, opts))
			slog.SetDefault(o.logger)

			return o.loadConfig(cmd)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.StringVar(&o.configPath, "config", "", "Path to cards.yaml (default: searched upwards from the working directory)")
	pf.StringVar(&o.outputDir, "output-dir", "", "Directory receiving one folder per instrument")
	pf.StringVar(&o.template, "template", "", "OpenSCAD card template")
	pf.StringVar(&o.mapping, "mapping", "", "Note mapping JSON produced by the mapper")
	pf.StringVar(&o.catalog, "catalog", "", "YAML catalog of instrument variants (overrides --mapping)")
	pf.StringVar(&o.renderer, "renderer", "", "OpenSCAD executable")
	pf.StringVar(&o.referenceNote, "reference-note", "", "Note rendered by --test")

	cmd.AddCommand(
		newGenerateCmd(o),
		newPlanCmd(o),
		newListCmd(o),
		newCheckCmd(o),
		newVersionCmd(o),
	)
	return cmd
}

// loadConfig layers defaults, cards.yaml and explicitly set flags.
func (o *rootOptions) loadConfig(cmd *cobra.Command) error {
	if o.configPath != "" {
		cfg, err := cardforge.LoadConfig(o.configPath)
		if err != nil {
			return err
		}
		o.cfg = cfg
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		cfg, path, err := cardforge.DiscoverConfig(cwd)
		if err != nil {
			return err
		}
		if path != "" {
			o.logger.Debug("using config", "path", path)
		}
		o.cfg = cfg
	}

	flags := cmd.Flags()
	override := func(name string, dst *string, val string) {
		if flags.Changed(name) {
			*dst = val
		}
	}
	override("output-dir", &o.cfg.OutputDir, o.outputDir)
	override("template", &o.cfg.Template, o.template)
	override("mapping", &o.cfg.Mapping, o.mapping)
	override("catalog", &o.cfg.Catalog, o.catalog)
	override("renderer", &o.cfg.Renderer, o.renderer)
	override("reference-note", &o.cfg.ReferenceNote, o.referenceNote)
	return nil
}

// modeFlags are the mutually exclusive sampling switches of generate and plan.
type modeFlags struct {
	test     bool
	testFull bool
	name     string
}

func (m *modeFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&m.test, "test", "t", false, "Generate only the reference note card")
	cmd.Flags().BoolVar(&m.testFull, "test-full", false, "Generate 4 representative cards (natural, sharp, high, high sharp)")
	cmd.Flags().StringVar(&m.name, "mode", "", "Run mode: full, single or representative")
	cmd.MarkFlagsMutuallyExclusive("test", "test-full", "mode")
}

func (m *modeFlags) mode() (core.Mode, error) {
	switch {
	case m.testFull:
		return core.ModeRepresentative, nil
	case m.test:
		return core.ModeSingle, nil
	}
	return core.ParseMode(m.name)
}
