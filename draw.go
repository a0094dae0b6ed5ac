package brandgen

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Mode is the color mode of a canvas.
type Mode int

const (
	// ModeRGB canvases are opaque: the background color is forced to full alpha.
	ModeRGB Mode = iota
	// ModeRGBA canvases start fully transparent.
	ModeRGBA
)

// Point is a canvas coordinate.
type Point struct {
	X, Y float64
}

// pt is shorthand for building a Point from literal coordinates.
func pt(x, y float64) Point { return Point{X: x, Y: y} }

// Box is a bounding box given by its top-left and bottom-right corners.
type Box struct {
	X0, Y0, X1, Y1 float64
}

// box is shorthand for building a Box from literal coordinates.
func box(x0, y0, x1, y1 float64) Box { return Box{X0: x0, Y0: y0, X1: x1, Y1: y1} }

// Center returns the center of the box.
func (b Box) Center() Point {
	return Point{X: (b.X0 + b.X1) / 2, Y: (b.Y0 + b.Y1) / 2}
}

// inset shrinks the box by d on every side.
func (b Box) inset(d float64) Box {
	return Box{X0: b.X0 + d, Y0: b.Y0 + d, X1: b.X1 - d, Y1: b.Y1 - d}
}

// Canvas is an in-memory pixel buffer of fixed size for a single output image.
type Canvas struct {
	dc   *gg.Context
	mode Mode
}

// NewCanvas allocates a width x height canvas. RGB canvases are filled with bg;
// RGBA canvases ignore bg and start transparent.
func NewCanvas(width, height int, mode Mode, bg color.Color) *Canvas {
	c := &Canvas{dc: gg.NewContext(width, height), mode: mode}
	c.dc.SetLineCap(gg.LineCapButt)
	if mode == ModeRGB {
		r, g, b, _ := bg.RGBA()
		c.dc.SetColor(color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xff})
		c.dc.Clear()
	}
	return c
}

// newCanvasFrom wraps a copy of img into a canvas so that further shapes can be drawn on top of it.
func newCanvasFrom(img image.Image, mode Mode) *Canvas {
	c := &Canvas{dc: gg.NewContextForImage(img), mode: mode}
	c.dc.SetLineCap(gg.LineCapButt)
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// Mode returns the color mode the canvas was created with.
func (c *Canvas) Mode() Mode { return c.mode }

// Image returns the underlying pixel buffer.
func (c *Canvas) Image() *image.RGBA {
	return c.dc.Image().(*image.RGBA)
}

// Ellipse fills the ellipse inscribed in b.
func (c *Canvas) Ellipse(b Box, fill color.Color) {
	center := b.Center()
	c.dc.DrawEllipse(center.X, center.Y, (b.X1-b.X0)/2, (b.Y1-b.Y0)/2)
	c.dc.SetColor(fill)
	c.dc.Fill()
}

// EllipseOutline strokes the ellipse inscribed in b. The stroke lies inside the box.
func (c *Canvas) EllipseOutline(b Box, stroke color.Color, width float64) {
	c.Arc(b, 0, 360, stroke, width)
}

// Arc strokes the part of the ellipse inscribed in b between the start and
// end angles, in degrees, measured clockwise from three o'clock.
func (c *Canvas) Arc(b Box, start, end float64, stroke color.Color, width float64) {
	b = b.inset(width / 2)
	center := b.Center()
	c.dc.NewSubPath()
	c.dc.DrawEllipticalArc(center.X, center.Y, (b.X1-b.X0)/2, (b.Y1-b.Y0)/2, gg.Radians(start), gg.Radians(end))
	if end-start >= 360 {
		c.dc.ClosePath()
	}
	c.stroke(stroke, width)
}

// Rect fills the rectangle b.
func (c *Canvas) Rect(b Box, fill color.Color) {
	c.dc.DrawRectangle(b.X0, b.Y0, b.X1-b.X0, b.Y1-b.Y0)
	c.dc.SetColor(fill)
	c.dc.Fill()
}

// RectOutline strokes the rectangle b. The stroke lies inside the box.
func (c *Canvas) RectOutline(b Box, stroke color.Color, width float64) {
	b = b.inset(width / 2)
	c.dc.DrawRectangle(b.X0, b.Y0, b.X1-b.X0, b.Y1-b.Y0)
	c.stroke(stroke, width)
}

// Polygon fills the closed polygon through pts.
func (c *Canvas) Polygon(pts []Point, fill color.Color) {
	c.path(pts, true)
	c.dc.SetColor(fill)
	c.dc.Fill()
}

// PolygonOutline strokes the closed polygon through pts.
func (c *Canvas) PolygonOutline(pts []Point, stroke color.Color, width float64) {
	c.path(pts, true)
	c.stroke(stroke, width)
}

// Line strokes the open poly-line through pts.
func (c *Canvas) Line(pts []Point, stroke color.Color, width float64) {
	c.path(pts, false)
	c.stroke(stroke, width)
}

// FillRow paints the whole pixel row y with col, bypassing anti-aliasing.
func (c *Canvas) FillRow(y int, col color.Color) {
	img := c.Image()
	row := image.Rect(0, y, img.Bounds().Dx(), y+1)
	draw.Draw(img, row, image.NewUniform(col), image.Point{}, draw.Src)
}

// Dot paints the solid square of side 2r+1 centered on pixel (x, y),
// without anti-aliasing.
func (c *Canvas) Dot(x, y, r int, col color.Color) {
	block := image.Rect(x-r, y-r, x+r+1, y+r+1)
	draw.Draw(c.Image(), block, image.NewUniform(col), image.Point{}, draw.Over)
}

// Label draws text centered both horizontally and vertically on at.
func (c *Canvas) Label(text string, at Point, face font.Face, col color.Color) {
	c.dc.SetFontFace(face)
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(text, at.X, at.Y, 0.5, 0.5)
}

func (c *Canvas) path(pts []Point, closed bool) {
	c.dc.NewSubPath()
	for i, p := range pts {
		if i == 0 {
			c.dc.MoveTo(p.X, p.Y)
			continue
		}
		c.dc.LineTo(p.X, p.Y)
	}
	if closed {
		c.dc.ClosePath()
	}
}

func (c *Canvas) stroke(col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.Stroke()
}
