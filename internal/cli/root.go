// Package cli implements the cardgen command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/youruser/cardforge/internal/batch"
	"github.com/youruser/cardforge/internal/cards"
	"github.com/youruser/cardforge/internal/config"
	"github.com/youruser/cardforge/internal/generator"
	"github.com/youruser/cardforge/internal/logging"
	"github.com/youruser/cardforge/internal/style"
)

// app is the state shared by subcommands, filled in before any of them run.
type app struct {
	configPath string
	fontDir    string
	logLevel   string

	cfg config.Config
	gen *generator.Generator
}

// NewRootCommand builds the cardgen command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "cardgen",
		Short:        "Render business cards from contact data",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (default $CONFIG_PATH or config.yaml)")
	root.PersistentFlags().StringVar(&a.fontDir, "font-dir", "", "directory holding the TTF fonts")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(
		newRenderCommand(a),
		newBatchCommand(a),
		newCSVTemplateCommand(),
		newCatalogCommand(a),
	)
	return root
}

func (a *app) setup() error {
	if a.configPath != "" {
		a.cfg = config.LoadFrom(a.configPath)
	} else {
		a.cfg = config.Load()
	}
	if a.fontDir != "" {
		a.cfg.Render.FontDir = a.fontDir
	}
	if a.logLevel != "" {
		a.cfg.Logger.Level = a.logLevel
	}
	logging.Init(a.cfg.Logger.Options())

	a.gen = generator.New(style.NewCatalog(a.cfg.Render.FontDir), a.cfg.Render.ArtifactTTL)
	return nil
}

func (a *app) driver(workers int) *batch.Driver {
	if workers <= 0 {
		workers = a.cfg.Render.BatchWorkers
	}
	return batch.NewDriver(a.gen, workers)
}

// styleFlags are shared by render and batch. Empty values fall back to the
// configured defaults.
type styleFlags struct {
	template, palette, font, format string
	qr                              bool
}

func (f *styleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.template, "template", "t", "", "layout template")
	cmd.Flags().StringVarP(&f.palette, "color-scheme", "c", "", "color palette id")
	cmd.Flags().StringVar(&f.font, "font", "", "headline font role")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "png, jpg, pdf or html")
	cmd.Flags().BoolVar(&f.qr, "qr", false, "add a vCard QR code")
}

func (f *styleFlags) resolve(cfg config.RenderConfig) (string, cards.Style) {
	or := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return or(f.format, cfg.DefaultFormat), cards.Style{
		Template:  or(f.template, cfg.DefaultTemplate),
		Palette:   or(f.palette, cfg.DefaultPalette),
		Font:      or(f.font, cfg.DefaultFont),
		IncludeQR: f.qr,
	}
}
