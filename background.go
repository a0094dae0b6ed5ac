package brandgen

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/lumina-ai/brandgen/imop"
)

const (
	backgroundName   = "tech_background.jpg"
	backgroundWidth  = 1200
	backgroundHeight = 600

	nodePadding    = 50
	nodeMinSize    = 5
	nodeMaxSize    = 15
	connectorSteps = 50 // t advances by 0.02 from 0 to 0.98
	connectorDot   = 1
)

// BlendMode selects how the connector layer mixes with the backdrop.
type BlendMode = imop.Blend

// Blend modes accepted by BackgroundOptions.
const (
	BlendNormal   = imop.Normal
	BlendDarken   = imop.Darken
	BlendLighten  = imop.Lighten
	BlendMultiply = imop.Multiply
	BlendScreen   = imop.Screen
	BlendOverlay  = imop.Overlay
)

// Node is a circular marker of a network illustration.
type Node struct {
	X, Y float64
	Size float64 // radius
}

// Box returns the bounding box of the node's disc.
func (n Node) Box() Box {
	return box(n.X-n.Size, n.Y-n.Size, n.X+n.Size, n.Y+n.Size)
}

// connector is a straight gradient link between two nodes.
type connector struct {
	from, to Node
}

// sampleNodes places n nodes uniformly inside the padded canvas. A
// non-positive n yields no nodes.
func (g *Generator) sampleNodes(n, width, height int) []Node {
	if n <= 0 {
		return nil
	}
	nodes := make([]Node, 0, n)
	for i := 0; i < n; i++ {
		x := nodePadding + g.rng.Intn(width-2*nodePadding+1)
		y := nodePadding + g.rng.Intn(height-2*nodePadding+1)
		size := nodeMinSize + g.rng.Intn(nodeMaxSize-nodeMinSize+1)
		nodes = append(nodes, Node{X: float64(x), Y: float64(y), Size: float64(size)})
	}
	return nodes
}

// sampleConnectors decides independently for every unordered pair of nodes
// whether it is linked.
func (g *Generator) sampleConnectors(nodes []Node, p float64) []connector {
	var links []connector
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			if g.rng.Float64() < p {
				links = append(links, connector{from: nodes[i], to: nodes[j]})
			}
		}
	}
	return links
}

// drawConnector approximates a gradient line by stamping small opaque dots
// while interpolating both position and color between the two ends.
func drawConnector(c *Canvas, l connector, from, to color.RGBA) {
	for step := 0; step < connectorSteps; step++ {
		t := float64(step) / connectorSteps
		x := int(l.from.X*(1-t) + l.to.X*t)
		y := int(l.from.Y*(1-t) + l.to.Y*t)
		c.Dot(x, y, connectorDot, Lerp(from, to, t))
	}
}

// TechBackground draws a randomized network of glowing nodes on the dark
// brand color. It is the only generator whose output changes between runs,
// unless a seed is configured.
func (g *Generator) TechBackground() Asset {
	p := g.opts.Palette
	opts := g.opts.Background

	nodes := g.sampleNodes(opts.Nodes, backgroundWidth, backgroundHeight)
	links := g.sampleConnectors(nodes, opts.ConnectProbability)

	layer := NewCanvas(backgroundWidth, backgroundHeight, ModeRGBA, nil)
	for _, l := range links {
		drawConnector(layer, l, p.Primary, p.Secondary)
	}

	backdrop := imaging.New(backgroundWidth, backgroundHeight, p.Dark)
	comp := imop.Composite{Op: imop.SrcOver, Blend: opts.Blend, Opacity: opts.ConnectorOpacity}
	merged := comp.Draw(backdrop, imaging.Clone(layer.Image()))

	c := newCanvasFrom(merged, ModeRGB)
	choices := []color.RGBA{p.Primary, p.Secondary, p.Accent}
	for _, n := range nodes {
		c.Ellipse(n.Box(), choices[g.rng.Intn(len(choices))])
	}

	var img image.Image = c.Image()
	if opts.BlurSigma > 0 {
		img = imaging.Blur(img, opts.BlurSigma)
	}
	return Asset{Name: backgroundName, Category: CategoryBackground, Format: JPEG, Image: img}
}
