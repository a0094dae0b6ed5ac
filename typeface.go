package brandgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// DefaultFontName is the font file looked up on the system for labels.
const DefaultFontName = "DejaVuSans.ttf"

// labelDPI makes one point equal one pixel, so sizes match the pixel sizes of the artwork.
const labelDPI = 72

// Typeface is a parsed font able to produce faces at arbitrary sizes.
// It is backed either by an OpenType parser or, when that fails, by the
// freetype TrueType parser.
type Typeface struct {
	Name string
	Path string

	otf *opentype.Font
	ttf *truetype.Font
}

// LoadTypeface locates and parses a font. nameOrPath is either a path to a
// font file or a bare file name (e.g. "DejaVuSans.ttf") searched for in the
// system font directories.
func LoadTypeface(nameOrPath string) (*Typeface, error) {
	if nameOrPath == "" {
		nameOrPath = DefaultFontName
	}
	path := nameOrPath
	if _, err := os.Stat(path); err != nil {
		if strings.ContainsRune(nameOrPath, os.PathSeparator) {
			return nil, fmt.Errorf("font file %s: %w", nameOrPath, err)
		}
		path, err = findfont.Find(nameOrPath)
		if err != nil {
			return nil, fmt.Errorf("looking up font %s: %w", nameOrPath, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font %s: %w", path, err)
	}
	tf, err := ParseTypeface(filepath.Base(path), data)
	if err != nil {
		return nil, err
	}
	tf.Path = path
	return tf, nil
}

// ParseTypeface parses raw font data. Collections (.ttc) contribute their first font.
func ParseTypeface(name string, data []byte) (*Typeface, error) {
	tf := &Typeface{Name: name}

	otf, otfErr := opentype.Parse(data)
	if otfErr != nil {
		if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
			otf, otfErr = coll.Font(0)
		}
	}
	if otfErr == nil {
		tf.otf = otf
		return tf, nil
	}

	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", name, otfErr)
	}
	tf.ttf = ttf
	return tf, nil
}

// Face returns a face rendering the typeface at the given size in points.
func (t *Typeface) Face(points float64) (font.Face, error) {
	if t == nil {
		return nil, fmt.Errorf("no typeface loaded")
	}
	if t.otf != nil {
		return opentype.NewFace(t.otf, &opentype.FaceOptions{
			Size:    points,
			DPI:     labelDPI,
			Hinting: font.HintingFull,
		})
	}
	return truetype.NewFace(t.ttf, &truetype.Options{
		Size:    points,
		DPI:     labelDPI,
		Hinting: font.HintingFull,
	}), nil
}
