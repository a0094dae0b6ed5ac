package brandgen

import "math"

const (
	missionName   = "mission-illustration"
	missionWidth  = 500
	missionHeight = 300

	missionRadius     = 100 // distance of the satellites from the center
	missionSatellites = 6
	missionHubSize    = 30
	missionNodeSize   = 20
	missionSpokeWidth = 3
	missionRingWidth  = 2
)

// MissionLayout returns the central node and the satellites placed evenly
// on a circle around it, starting at three o'clock and turning clockwise.
func MissionLayout() (Node, []Node) {
	hub := Node{X: missionWidth / 2, Y: missionHeight / 2, Size: missionHubSize}
	satellites := make([]Node, missionSatellites)
	for i := range satellites {
		angle := float64(i) * 2 * math.Pi / missionSatellites
		satellites[i] = Node{
			X:    hub.X + missionRadius*math.Cos(angle),
			Y:    hub.Y + missionRadius*math.Sin(angle),
			Size: missionNodeSize,
		}
	}
	return hub, satellites
}

// Mission draws a network of agents: a hub linked to six satellites which
// are also linked to their neighbors. Links are drawn first so that every
// node is painted whole on top of them.
func (g *Generator) Mission() Asset {
	p := g.opts.Palette
	c := NewCanvas(missionWidth, missionHeight, ModeRGB, p.White)
	hub, satellites := MissionLayout()

	for _, s := range satellites {
		c.Line([]Point{pt(hub.X, hub.Y), pt(s.X, s.Y)}, p.Dark, missionSpokeWidth)
	}
	for i, s := range satellites {
		next := satellites[(i+1)%len(satellites)]
		c.Line([]Point{pt(s.X, s.Y), pt(next.X, next.Y)}, p.Dark, missionRingWidth)
	}

	c.Ellipse(hub.Box(), p.Primary)
	for i, s := range satellites {
		fill := p.Secondary
		if i%2 == 1 {
			fill = p.Accent
		}
		c.Ellipse(s.Box(), fill)
	}

	format := g.opts.MissionFormat
	return Asset{Name: missionName + "." + format.Ext(), Category: CategoryMission, Format: format, Image: c.Image()}
}
