package brandgen

import (
	"fmt"
	"image/color"
)

const teamSize = 300

// Role identifies one of the executive team members.
type Role int

// The team roles, in output order.
const (
	RoleCEO Role = iota
	RoleCTO
	RoleCPO
	RoleCSO
	roleCount
)

var roleIDs = [roleCount]string{
	RoleCEO: "ceo",
	RoleCTO: "cto",
	RoleCPO: "cpo",
	RoleCSO: "cso",
}

// String returns the role identifier used in file names.
func (r Role) String() string {
	if r < 0 || r >= roleCount {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleIDs[r]
}

// FileName returns the name the portrait is saved under.
func (r Role) FileName() string { return fmt.Sprintf("team-%s.jpg", r) }

// Roles returns all roles in output order.
func Roles() []Role {
	all := make([]Role, roleCount)
	for i := range all {
		all[i] = Role(i)
	}
	return all
}

var (
	teamHead = box(100, 50, 200, 150)
	teamBody = []Point{pt(120, 150), pt(180, 150), pt(200, 300), pt(100, 300)}
)

// roleEmblems draws the symbol floating above each silhouette.
var roleEmblems = [roleCount]func(c *Canvas, p Palette){
	RoleCEO: func(c *Canvas, p Palette) {
		c.Polygon([]Point{pt(150, 20), pt(180, 40), pt(120, 40)}, p.Accent)
	},
	RoleCTO: func(c *Canvas, p Palette) {
		for i := 0.0; i < 3; i++ {
			c.Rect(box(120+i*20, 20, 130+i*20, 40), p.Secondary)
		}
	},
	RoleCPO: func(c *Canvas, p Palette) {
		c.Rect(box(120, 20, 180, 40), p.Secondary)
		c.Line([]Point{pt(130, 30), pt(170, 30)}, p.White, 2)
		c.Line([]Point{pt(150, 20), pt(150, 40)}, p.White, 2)
	},
	RoleCSO: func(c *Canvas, p Palette) {
		c.Ellipse(box(130, 20, 170, 40), p.Accent)
		c.Ellipse(box(140, 25, 160, 35), p.White)
	},
}

// verticalGradient paints every row of c with the color between top and
// bottom at the row's relative height.
func verticalGradient(c *Canvas, top, bottom color.RGBA) {
	h := c.Height()
	for y := 0; y < h; y++ {
		c.FillRow(y, Lerp(top, bottom, float64(y)/float64(h)))
	}
}

// TeamImage draws the placeholder portrait of a single role. Unknown values are rejected.
func (g *Generator) TeamImage(r Role) (Asset, error) {
	if r < 0 || r >= roleCount {
		return Asset{}, fmt.Errorf("unknown role %d", int(r))
	}
	return g.teamImage(r), nil
}

func (g *Generator) teamImage(r Role) Asset {
	p := g.opts.Palette
	c := NewCanvas(teamSize, teamSize, ModeRGB, p.Light)
	verticalGradient(c, p.Light, p.Primary)

	c.Ellipse(teamHead, p.Dark)
	c.Polygon(teamBody, p.Dark)
	roleEmblems[r](c, p)

	return Asset{Name: r.FileName(), Category: CategoryTeam, Format: JPEG, Image: c.Image()}
}

// TeamImages draws every role.
func (g *Generator) TeamImages() []Asset {
	assets := make([]Asset, 0, roleCount)
	for _, r := range Roles() {
		assets = append(assets, g.teamImage(r))
	}
	return assets
}
