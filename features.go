package brandgen

import "fmt"

const iconSize = 200

// Feature identifies one of the product features illustrated by an icon.
type Feature int

// The product features, in output order.
const (
	FeatureMultiAgent Feature = iota
	FeatureWorkflow
	FeatureDeployment
	FeatureIntegration
	FeatureGovernance
	FeatureEndUser
	featureCount
)

var featureIDs = [featureCount]string{
	FeatureMultiAgent:  "multi-agent",
	FeatureWorkflow:    "workflow",
	FeatureDeployment:  "deployment",
	FeatureIntegration: "integration",
	FeatureGovernance:  "governance",
	FeatureEndUser:     "enduser",
}

// String returns the feature identifier used in file names.
func (f Feature) String() string {
	if f < 0 || f >= featureCount {
		return fmt.Sprintf("Feature(%d)", int(f))
	}
	return featureIDs[f]
}

// FileName returns the name the icon is saved under.
func (f Feature) FileName() string { return fmt.Sprintf("feature-%s.png", f) }

// Features returns all features in output order.
func Features() []Feature {
	all := make([]Feature, featureCount)
	for i := range all {
		all[i] = Feature(i)
	}
	return all
}

// iconBadge is the circular background shared by every feature icon.
var iconBadge = box(10, 10, 190, 190)

// featureGlyphs draws the symbol of each feature on top of the badge.
var featureGlyphs = [featureCount]func(c *Canvas, p Palette){
	FeatureMultiAgent:  drawConnectedAgents,
	FeatureWorkflow:    drawFlowchart,
	FeatureDeployment:  drawServerRack,
	FeatureIntegration: drawPuzzle,
	FeatureGovernance:  drawShield,
	FeatureEndUser:     drawAppWindow,
}

// FeatureIcon draws the transparent icon of a single feature. Unknown values are rejected.
func (g *Generator) FeatureIcon(f Feature) (Asset, error) {
	if f < 0 || f >= featureCount {
		return Asset{}, fmt.Errorf("unknown feature %d", int(f))
	}
	return g.featureIcon(f), nil
}

func (g *Generator) featureIcon(f Feature) Asset {
	p := g.opts.Palette
	c := NewCanvas(iconSize, iconSize, ModeRGBA, nil)
	c.Ellipse(iconBadge, p.Primary)
	featureGlyphs[f](c, p)
	return Asset{Name: f.FileName(), Category: CategoryFeatures, Format: PNG, Image: c.Image()}
}

// FeatureIcons draws the icon of every feature.
func (g *Generator) FeatureIcons() []Asset {
	assets := make([]Asset, 0, featureCount)
	for _, f := range Features() {
		assets = append(assets, g.featureIcon(f))
	}
	return assets
}

// drawConnectedAgents draws four agents on a square, linked along its sides and one diagonal.
func drawConnectedAgents(c *Canvas, p Palette) {
	agents := []Point{pt(60, 60), pt(140, 60), pt(60, 140), pt(140, 140)}
	for _, a := range agents {
		c.Ellipse(box(a.X-20, a.Y-20, a.X+20, a.Y+20), p.White)
	}
	c.Line([]Point{pt(60, 60), pt(140, 60), pt(140, 140), pt(60, 140), pt(60, 60)}, p.White, 5)
	c.Line([]Point{pt(60, 60), pt(140, 140)}, p.White, 5)
}

func drawFlowchart(c *Canvas, p Palette) {
	for _, y := range []float64{40, 90, 140} {
		c.Rect(box(50, y, 150, y+30), p.White)
	}
	for _, y := range []float64{70, 120} {
		c.Line([]Point{pt(100, y), pt(100, y+20)}, p.White, 5)
		c.Polygon([]Point{pt(90, y+15), pt(100, y+25), pt(110, y+15)}, p.White)
	}
}

func drawServerRack(c *Canvas, p Palette) {
	c.Rect(box(60, 40, 140, 160), p.White)
	for y := 60.0; y <= 135; y += 25 {
		c.Rect(box(70, y, 130, y+15), p.Primary)
		c.Ellipse(box(120, y+5, 125, y+10), p.Secondary)
	}
}

// drawPuzzle draws four tiles joined by round tabs.
func drawPuzzle(c *Canvas, p Palette) {
	for _, b := range []Box{box(50, 50, 100, 100), box(100, 50, 150, 100), box(50, 100, 100, 150), box(100, 100, 150, 150)} {
		c.Rect(b, p.White)
	}
	for _, b := range []Box{box(90, 70, 110, 90), box(70, 90, 90, 110), box(110, 90, 130, 110), box(90, 110, 110, 130)} {
		c.Ellipse(b, p.Primary)
	}
}

func drawShield(c *Canvas, p Palette) {
	c.Polygon([]Point{pt(100, 40), pt(160, 60), pt(140, 150), pt(100, 170), pt(60, 150), pt(40, 60)}, p.White)
	c.Line([]Point{pt(70, 100), pt(90, 130), pt(130, 80)}, p.Primary, 8)
}

// drawAppWindow draws a window with a header bar, text lines and a user avatar.
func drawAppWindow(c *Canvas, p Palette) {
	c.Rect(box(50, 50, 150, 150), p.White)
	c.Rect(box(50, 50, 150, 70), p.Secondary)
	for y := 85.0; y <= 130; y += 15 {
		c.Line([]Point{pt(60, y), pt(140, y)}, p.Light, 4)
	}
	c.Ellipse(box(90, 100, 110, 120), p.Primary)
	c.Rect(box(85, 120, 115, 140), p.Primary)
}
