/*
Package brandgen draws the fixed set of raster images used by the Lumina AI website:
the logo, the tech background, the feature icons, the office illustrations,
the team placeholders, the investor logos and the mission illustration.

The package provides a command line interface. To check the supported commands type:

	$ brandgen --help

In case you wish to render the images from your own program here is a simple example:

	package main

	import (
		"fmt"

		"github.com/lumina-ai/brandgen"
	)

	func main() {
		g := brandgen.NewGenerator(brandgen.DefaultOptions())

		files, err := g.Execute(&brandgen.Ops{Dst: "images", Quality: 90})
		if err != nil {
			fmt.Printf("Error generating images: %s", err.Error())
		}
		fmt.Println(len(files), "images written")
	}

Text labels need a font. Set Options.Typeface (see LoadTypeface) to enable
them; without one the images are drawn without text.
*/
package brandgen
