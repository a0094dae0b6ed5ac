package brandgen

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/lumina-ai/brandgen/utils"
)

// Verify checks that every planned file exists in dir, is an image of the
// planned format and has the planned dimensions. All problems are reported
// together.
func Verify(dir string, plan []Planned) error {
	var errs []error
	for _, p := range plan {
		if err := verifyFile(filepath.Join(dir, p.Name), p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func verifyFile(path string, p Planned) error {
	ok, err := utils.IsImageContent(path)
	if err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	if !ok {
		return fmt.Errorf("%s: not an image", p.Name)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	defer f.Close()

	cfg, name, err := image.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("%s: decoding: %w", p.Name, err)
	}
	if name != p.Format.decoderName() {
		return fmt.Errorf("%s: format is %s, want %s", p.Name, name, p.Format.decoderName())
	}
	if cfg.Width != p.Width || cfg.Height != p.Height {
		return fmt.Errorf("%s: size is %dx%d, want %dx%d", p.Name, cfg.Width, cfg.Height, p.Width, p.Height)
	}
	return nil
}
