package brandgen

import (
	"fmt"
	"math"
	"strings"
)

const (
	officeWidth  = 400
	officeHeight = 250

	officeLabelSize = 24
)

// Office identifies one of the company locations.
type Office int

// The office locations, in output order.
const (
	OfficeSanFrancisco Office = iota
	OfficeLondon
	OfficeSingapore
	officeCount
)

var officeIDs = [officeCount]string{
	OfficeSanFrancisco: "sf",
	OfficeLondon:       "london",
	OfficeSingapore:    "singapore",
}

// String returns the office identifier used in file names.
func (o Office) String() string {
	if o < 0 || o >= officeCount {
		return fmt.Sprintf("Office(%d)", int(o))
	}
	return officeIDs[o]
}

// FileName returns the name the illustration is saved under.
func (o Office) FileName() string { return fmt.Sprintf("office-%s.jpg", o) }

// Label returns the caption printed above the skyline.
func (o Office) Label() string { return strings.ToUpper(o.String()) }

// Offices returns all office locations in output order.
func Offices() []Office {
	all := make([]Office, officeCount)
	for i := range all {
		all[i] = Office(i)
	}
	return all
}

var officeSkylines = [officeCount]func(c *Canvas, p Palette){
	OfficeSanFrancisco: drawBridgeSkyline,
	OfficeLondon:       drawTowerAndWheelSkyline,
	OfficeSingapore:    drawTriadSkyline,
}

// OfficeImage draws the skyline of a single office. Unknown values are rejected.
func (g *Generator) OfficeImage(o Office) (Asset, error) {
	if o < 0 || o >= officeCount {
		return Asset{}, fmt.Errorf("unknown office %d", int(o))
	}
	return g.officeImage(o), nil
}

func (g *Generator) officeImage(o Office) Asset {
	p := g.opts.Palette
	c := NewCanvas(officeWidth, officeHeight, ModeRGB, p.Light)
	officeSkylines[o](c, p)
	if !g.label(c, o.Label(), pt(officeWidth/2, 20), officeLabelSize, p.Dark) {
		g.logger.Debug("office caption skipped", "office", o)
	}
	return Asset{Name: o.FileName(), Category: CategoryOffices, Format: JPEG, Image: c.Image()}
}

// OfficeImages draws every office.
func (g *Generator) OfficeImages() []Asset {
	assets := make([]Asset, 0, officeCount)
	for _, o := range Offices() {
		assets = append(assets, g.officeImage(o))
	}
	return assets
}

// drawBridgeSkyline draws a windowed block next to a suspension bridge.
func drawBridgeSkyline(c *Canvas, p Palette) {
	c.Rect(box(100, 50, 300, 220), p.Primary)
	for y := 70.0; y < 200; y += 30 {
		for x := 120.0; x < 280; x += 40 {
			c.Rect(box(x, y, x+20, y+20), p.Light)
		}
	}
	c.Line([]Point{pt(0, 100), pt(100, 50)}, p.Accent, 10)
	c.Line([]Point{pt(officeWidth, 100), pt(300, 50)}, p.Accent, 10)
	c.Line([]Point{pt(0, 100), pt(officeWidth, 100)}, p.Accent, 5)
}

// drawTowerAndWheelSkyline draws a block, a clock tower and an observation wheel.
func drawTowerAndWheelSkyline(c *Canvas, p Palette) {
	c.Rect(box(100, 70, 200, 220), p.Primary)
	for y := 90.0; y < 200; y += 30 {
		for x := 120.0; x < 180; x += 30 {
			c.Rect(box(x, y, x+15, y+20), p.Light)
		}
	}

	c.Rect(box(220, 30, 270, 220), p.Secondary)
	c.Rect(box(235, 40, 255, 70), p.Light)

	c.EllipseOutline(box(300, 50, 380, 200), p.Accent, 5)
	for angle := 0.0; angle < 360; angle += 30 {
		rad := angle * math.Pi / 180
		x := 340 + 40*math.Cos(rad)
		y := 125 + 40*math.Sin(rad)
		c.Ellipse(box(x-5, y-5, x+5, y+5), p.Light)
	}
}

// drawTriadSkyline draws three towers joined by a roof deck, and a statue.
func drawTriadSkyline(c *Canvas, p Palette) {
	for i := 0.0; i < 3; i++ {
		dx := i * 70
		c.Rect(box(100+dx, 70, 150+dx, 180), p.Primary)
		for y := 90.0; y < 170; y += 20 {
			c.Rect(box(110+dx, y, 140+dx, y+10), p.Light)
		}
	}
	c.Rect(box(100, 50, 290, 70), p.Secondary)

	c.Ellipse(box(50, 120, 80, 150), p.Accent)
	c.Polygon([]Point{pt(65, 150), pt(50, 220), pt(80, 220)}, p.Accent)
}
