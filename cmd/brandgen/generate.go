package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lumina-ai/brandgen"
	"github.com/lumina-ai/brandgen/config"
	"github.com/lumina-ai/brandgen/utils"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	out           string
	seed          int64
	quality       int
	font          string
	noFont        bool
	manifest      bool
	missionFormat string
}

func (a *app) generateCommand() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:       "generate [category...]",
		Short:     "Draw the images of the given categories (all by default)",
		ValidArgs: categoryNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := parseCategories(args)
			if err != nil {
				return err
			}
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			flags.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return a.generate(cfg, cats)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.out, "out", "o", "", "output directory")
	f.Int64Var(&flags.seed, "seed", 0, "seed of the tech background (0 uses the clock)")
	f.IntVarP(&flags.quality, "quality", "q", brandgen.DefaultQuality, "JPEG and WebP quality")
	f.StringVar(&flags.font, "font", "", "font file name or path used for labels")
	f.BoolVar(&flags.noFont, "no-font", false, "draw the images without labels")
	f.BoolVar(&flags.manifest, "manifest", false, "write "+brandgen.ManifestName+" next to the images")
	f.StringVar(&flags.missionFormat, "mission-format", "", "format of the mission illustration (png, jpg, bmp, webp)")

	return cmd
}

// apply overrides the configuration with the flags set on the command line.
func (fl *generateFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("out") {
		cfg.OutputDir = fl.out
	}
	if changed("seed") {
		cfg.Seed = fl.seed
	}
	if changed("quality") {
		cfg.Quality = fl.quality
	}
	if changed("font") {
		cfg.Font.Name = fl.font
	}
	if changed("no-font") {
		cfg.Font.Disabled = fl.noFont
	}
	if changed("manifest") {
		cfg.Manifest = fl.manifest
	}
	if changed("mission-format") {
		cfg.Mission.Format = fl.missionFormat
	}
}

func (a *app) generate(cfg *config.Config, cats []brandgen.Category) error {
	ops := &brandgen.Ops{
		Dst:      cfg.OutputDir,
		Quality:  cfg.Quality,
		Manifest: cfg.Manifest,
	}

	// The spinner and the per-file log lines share stderr, so only one of
	// them is shown.
	logger := a.logger
	if !a.verbose && a.stderr == os.Stderr && utils.IsTerminal(os.Stderr) {
		ops.Spinner = utils.NewSpinner(fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ BRANDGEN", utils.StatusMessage),
			utils.DecorateText("⇢ drawing images...", utils.DefaultMessage),
		), 80*time.Millisecond)
		logger = a.logger.With()
		logger.SetLevel(log.WarnLevel)
	}

	opts, err := cfg.Options(logger)
	if err != nil {
		return err
	}
	g := brandgen.NewGenerator(opts)
	if !g.HasText() && !cfg.Font.Disabled {
		a.logger.Warn("no usable font found, labels are skipped", "font", cfg.Font.Name)
	}

	now := time.Now()
	written, err := g.Execute(ops, cats...)
	if err != nil {
		return fmt.Errorf("generating images: %w", err)
	}

	fmt.Fprintf(a.stderr, "%s %s %s\n",
		utils.DecorateText("⚡ BRANDGEN", utils.StatusMessage),
		utils.DecorateText("⇢ "+utils.Plural(len(written), "image")+" saved in", utils.DefaultMessage),
		utils.DecorateText(cfg.OutputDir+" ✔", utils.SuccessMessage),
	)
	fmt.Fprintf(a.stderr, "Execution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	return nil
}
