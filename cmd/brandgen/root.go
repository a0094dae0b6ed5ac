package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lumina-ai/brandgen"
	"github.com/lumina-ai/brandgen/config"
	"github.com/spf13/cobra"
)

// app holds the state shared by every command.
type app struct {
	stdout, stderr io.Writer
	logger         *log.Logger

	configPath string
	verbose    bool
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		logger: log.NewWithOptions(stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           log.InfoLevel,
		}),
	}
}

// rootCommand creates the root command with all subcommands registered.
func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "brandgen",
		Short:         "Generate the Lumina AI brand images",
		Long:          fmt.Sprintf(HelpBanner, Version) + "Draws the logo, backgrounds, icons and illustrations of the website into one directory.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				a.logger.SetLevel(log.DebugLevel)
			}
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "configuration file (yaml or toml, default "+config.DefaultFile+" if present)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(a.generateCommand())
	root.AddCommand(a.listCommand())
	root.AddCommand(a.verifyCommand())
	root.AddCommand(a.configCommand())
	return root
}

// loadConfig reads the configuration selected by --config.
func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("configuration loaded", "file", a.configPath, "output", cfg.OutputDir)
	return cfg, nil
}

// parseCategories resolves the category arguments; none means all of them.
func parseCategories(args []string) ([]brandgen.Category, error) {
	cats := make([]brandgen.Category, 0, len(args))
	for _, arg := range args {
		c, err := brandgen.ParseCategory(arg)
		if err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, nil
}

// categoryNames lists the accepted category arguments, used for shell completion.
func categoryNames() []string {
	var names []string
	for _, c := range brandgen.Categories() {
		names = append(names, c.String())
	}
	return names
}
