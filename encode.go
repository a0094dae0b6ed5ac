package brandgen

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/webp"
)

// DefaultQuality is the JPEG and WebP quality used when none is configured.
const DefaultQuality = 90

// Format is an output file format.
type Format int

// Supported output formats.
const (
	PNG Format = iota
	JPEG
	BMP
	WebP
	formatCount
)

var formatExts = [formatCount]string{
	PNG:  "png",
	JPEG: "jpg",
	BMP:  "bmp",
	WebP: "webp",
}

// Ext returns the file extension of the format, without the leading dot.
func (f Format) Ext() string {
	if f < 0 || f >= formatCount {
		return ""
	}
	return formatExts[f]
}

func (f Format) String() string {
	if f < 0 || f >= formatCount {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatExts[f]
}

// decoderName returns the name registered with the image package for the format.
func (f Format) decoderName() string {
	if f == JPEG {
		return "jpeg"
	}
	return f.Ext()
}

// ParseFormat resolves a format from its name or file extension.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	if s == "jpeg" {
		return JPEG, nil
	}
	for f, ext := range formatExts {
		if ext == s {
			return Format(f), nil
		}
	}
	return PNG, fmt.Errorf("unsupported image format %q", s)
}

// Encode writes img to w in the given format. Quality applies to JPEG and
// WebP only; values outside [1, 100] fall back to DefaultQuality.
func Encode(w io.Writer, img image.Image, format Format, quality int) error {
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}
	switch format {
	case PNG:
		return imaging.Encode(w, img, imaging.PNG)
	case JPEG:
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality))
	case BMP:
		return imaging.Encode(w, img, imaging.BMP)
	case WebP:
		if err := webp.Encode(w, img, webp.Options{Quality: quality}); err != nil {
			return fmt.Errorf("encoding webp: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unsupported image format %v", format)
}

// Save encodes the asset into dir, creating the directory if needed, and
// returns the path of the written file.
func Save(dir string, a Asset, quality int) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, a.Name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", a.Name, err)
	}
	if err := Encode(f, a.Image, a.Format, quality); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding %s: %w", a.Name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", a.Name, err)
	}
	return path, nil
}
