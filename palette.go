package brandgen

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/lumina-ai/brandgen/utils"
)

// Palette is the fixed set of named brand colors shared by every generator.
// It is a plain value: generators receive a copy and never mutate it.
type Palette struct {
	Primary   color.RGBA
	Secondary color.RGBA
	Accent    color.RGBA
	Dark      color.RGBA
	Light     color.RGBA
	White     color.RGBA
	Black     color.RGBA
}

// DefaultPalette returns the Lumina AI brand colors.
func DefaultPalette() Palette {
	return Palette{
		Primary:   color.RGBA{R: 41, G: 128, B: 185, A: 255},  // blue
		Secondary: color.RGBA{R: 26, G: 188, B: 156, A: 255},  // teal
		Accent:    color.RGBA{R: 155, G: 89, B: 182, A: 255},  // purple
		Dark:      color.RGBA{R: 44, G: 62, B: 80, A: 255},    // dark blue
		Light:     color.RGBA{R: 236, G: 240, B: 241, A: 255}, // light gray
		White:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Black:     color.RGBA{R: 0, G: 0, B: 0, A: 255},
	}
}

// field returns a pointer to the named entry of p, or nil for unknown names.
func (p *Palette) field(name string) *color.RGBA {
	switch strings.ToLower(name) {
	case "primary":
		return &p.Primary
	case "secondary":
		return &p.Secondary
	case "accent":
		return &p.Accent
	case "dark":
		return &p.Dark
	case "light":
		return &p.Light
	case "white":
		return &p.White
	case "black":
		return &p.Black
	}
	return nil
}

// Named returns the color registered under name.
func (p Palette) Named(name string) (color.RGBA, bool) {
	c := p.field(name)
	if c == nil {
		return color.RGBA{}, false
	}
	return *c, true
}

// WithOverrides returns a copy of p where every entry of overrides
// (palette name to "#rrggbb") replaces the matching color.
func (p Palette) WithOverrides(overrides map[string]string) (Palette, error) {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		hex := strings.TrimSpace(overrides[name])
		if hex == "" {
			continue
		}
		dst := p.field(name)
		if dst == nil {
			return p, fmt.Errorf("unknown palette color %q", name)
		}
		c, err := ParseHex(hex)
		if err != nil {
			return p, fmt.Errorf("palette color %q: %w", name, err)
		}
		*dst = c
	}
	return p, nil
}

// ParseHex converts a "#rrggbb" (or "#rgb") string into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lerp interpolates linearly between a and b. The weight t is clamped to
// [0, 1] and channels are truncated toward zero, so the result never leaves
// the range spanned by the two endpoints.
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = utils.Clamp(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-t) + float64(y)*t)
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}
