package main

import (
	"fmt"
	"os"

	"github.com/lumina-ai/brandgen/utils"
)

// HelpBanner is printed above the usage of the root command.
const HelpBanner = `
┌┐ ┬─┐┌─┐┌┐┌┌┬┐┌─┐┌─┐┌┐┌
├┴┐├┬┘├─┤│││ │││ ┬├┤ │││
└─┘┴└─┴ ┴┘└┘─┴┘└─┘└─┘┘└┘

Brand image generator for the Lumina AI website.
    Version: %s

`

// Version indicates the current build version.
var Version string

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, utils.DecorateText("✘ "+err.Error(), utils.ErrorMessage))
		os.Exit(1)
	}
}
