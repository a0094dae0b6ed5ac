package brandgen

import (
	"fmt"
	"path/filepath"

	"github.com/lumina-ai/brandgen/utils"
)

// Ops holds the options of a generation run.
type Ops struct {
	Dst      string // output directory, created if absent
	Quality  int    // JPEG and WebP quality
	Manifest bool   // write manifest.yaml next to the images
	// Spinner, when set, is animated while the images are produced.
	Spinner *utils.Spinner
}

// Written describes a file produced by Execute.
type Written struct {
	Path     string `yaml:"file"`
	Category string `yaml:"category"`
	Format   string `yaml:"format"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
}

// Execute renders the given categories, or all of them when none are given,
// one after the other and saves them into op.Dst. The first error aborts the
// run; files already written are left in place.
func (g *Generator) Execute(op *Ops, categories ...Category) ([]Written, error) {
	if len(categories) == 0 {
		categories = Categories()
	}
	if op.Spinner != nil {
		op.Spinner.Start()
		defer op.Spinner.Stop()
	}

	var written []Written
	for _, c := range categories {
		if op.Spinner != nil {
			op.Spinner.SetMessage(fmt.Sprintf("%s %s",
				utils.DecorateText("⚡ BRANDGEN", utils.StatusMessage),
				utils.DecorateText("⇢ drawing "+c.String()+"...", utils.DefaultMessage),
			))
		}
		assets, err := g.Render(c)
		if err != nil {
			return written, err
		}
		for _, a := range assets {
			path, err := Save(op.Dst, a, op.Quality)
			if err != nil {
				return written, err
			}
			b := a.Image.Bounds()
			written = append(written, Written{
				Path:     path,
				Category: c.String(),
				Format:   a.Format.String(),
				Width:    b.Dx(),
				Height:   b.Dy(),
			})
			g.logger.Info("created", "file", filepath.Base(path), "category", c)
		}
	}

	if op.Manifest {
		path, err := WriteManifest(op.Dst, written)
		if err != nil {
			return written, err
		}
		g.logger.Debug("manifest written", "file", path)
	}
	return written, nil
}
