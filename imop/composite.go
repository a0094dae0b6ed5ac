// Package imop implements the Porter-Duff composition operations and the
// separable blend modes used for mixing a graphic layer with its backdrop.
// The image/draw core package implements only source-over and source;
// this package adds layer opacity and the remaining operators needed to lay
// translucent artwork onto an opaque backdrop.
package imop

import (
	"image"
	"image/color"
)

// Op is a Porter-Duff composition operator.
type Op int

// Supported composition operators.
const (
	SrcOver Op = iota
	DstOver
	SrcIn
	DstIn
	SrcAtop
	Xor
)

// Composite describes how a source layer is laid onto a backdrop.
type Composite struct {
	Op      Op
	Blend   Blend
	Opacity float64 // multiplies the source alpha; values outside [0,1] are clamped
}

// Draw composites src onto dst and returns the result as a new image with
// the bounds of dst. Pixels of src outside dst are ignored.
func (c Composite) Draw(dst, src *image.NRGBA) *image.NRGBA {
	bounds := dst.Bounds()
	out := image.NewNRGBA(bounds)
	opacity := clamp01(c.Opacity)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			b := dst.NRGBAAt(x, y)
			var s color.NRGBA
			if (image.Point{X: x, Y: y}).In(src.Bounds()) {
				s = src.NRGBAAt(x, y)
			}
			out.SetNRGBA(x, y, c.pixel(b, s, opacity))
		}
	}
	return out
}

// pixel composites a single source pixel s over the backdrop pixel b.
func (c Composite) pixel(b, s color.NRGBA, opacity float64) color.NRGBA {
	ab := float64(b.A) / 255
	as := float64(s.A) / 255 * opacity

	cb := [3]float64{float64(b.R) / 255, float64(b.G) / 255, float64(b.B) / 255}
	cs := [3]float64{float64(s.R) / 255, float64(s.G) / 255, float64(s.B) / 255}

	// The blended source color depends on how much backdrop lies beneath it.
	if c.Blend != Normal {
		for i := range cs {
			cs[i] = (1-ab)*cs[i] + ab*c.Blend.mix(cb[i], cs[i])
		}
	}

	var ao float64
	var co [3]float64
	for i := range co {
		// Premultiplied result of the operator.
		var p float64
		switch c.Op {
		case SrcOver:
			p = as*cs[i] + ab*cb[i]*(1-as)
			ao = as + ab*(1-as)
		case DstOver:
			p = as*cs[i]*(1-ab) + ab*cb[i]
			ao = as*(1-ab) + ab
		case SrcIn:
			p = as * cs[i] * ab
			ao = as * ab
		case DstIn:
			p = ab * cb[i] * as
			ao = ab * as
		case SrcAtop:
			p = as*cs[i]*ab + (1-as)*ab*cb[i]
			ao = ab
		case Xor:
			p = as*cs[i]*(1-ab) + ab*cb[i]*(1-as)
			ao = as*(1-ab) + ab*(1-as)
		}
		co[i] = p
	}
	if ao <= 0 {
		return color.NRGBA{}
	}
	return color.NRGBA{
		R: channel(co[0] / ao),
		G: channel(co[1] / ao),
		B: channel(co[2] / ao),
		A: channel(ao),
	}
}

// channel converts a normalized value to 8 bits, truncating like the
// reference renderings the blend modes were checked against.
func channel(v float64) uint8 {
	return uint8(clamp01(v)*255 + 1e-9)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
