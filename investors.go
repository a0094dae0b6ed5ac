package brandgen

import "fmt"

const (
	investorWidth  = 200
	investorHeight = 100
)

// Investor identifies one of the backing firms.
type Investor int

// The investors, in output order.
const (
	InvestorHorizon Investor = iota
	InvestorInnovation
	InvestorFuture
	InvestorTechPioneers
	InvestorGlobal
	InvestorEnterprise
	investorCount
)

var investorNames = [investorCount]string{
	InvestorHorizon:      "Horizon Ventures",
	InvestorInnovation:   "Innovation Capital",
	InvestorFuture:       "Future Fund",
	InvestorTechPioneers: "Tech Pioneers",
	InvestorGlobal:       "Global Ventures",
	InvestorEnterprise:   "Enterprise Partners",
}

// ID returns the one-based number used in the file name.
func (i Investor) ID() string { return fmt.Sprint(int(i) + 1) }

// Name returns the firm's display name.
func (i Investor) Name() string {
	if i < 0 || i >= investorCount {
		return fmt.Sprintf("Investor(%d)", int(i))
	}
	return investorNames[i]
}

func (i Investor) String() string { return i.ID() }

// FileName returns the name the logo is saved under.
func (i Investor) FileName() string { return fmt.Sprintf("investor-%s.png", i.ID()) }

// Investors returns all investors in output order.
func Investors() []Investor {
	all := make([]Investor, investorCount)
	for i := range all {
		all[i] = Investor(i)
	}
	return all
}

// investorMarks draw each logo. The text of the first three logos is
// optional and is left out when no typeface is available.
var investorMarks = [investorCount]func(g *Generator, c *Canvas, p Palette){
	InvestorHorizon: func(g *Generator, c *Canvas, p Palette) {
		c.RectOutline(box(50, 30, 150, 70), p.Primary, 3)
		g.label(c, "HORIZON", pt(100, 50), 16, p.Primary)
	},
	InvestorInnovation: func(g *Generator, c *Canvas, p Palette) {
		c.EllipseOutline(box(60, 25, 140, 75), p.Secondary, 3)
		g.label(c, "INNOVATION", pt(100, 50), 14, p.Secondary)
	},
	InvestorFuture: func(g *Generator, c *Canvas, p Palette) {
		c.PolygonOutline([]Point{pt(100, 20), pt(150, 80), pt(50, 80)}, p.Accent, 3)
		g.label(c, "FUTURE", pt(100, 60), 14, p.Accent)
	},
	InvestorTechPioneers: func(_ *Generator, c *Canvas, p Palette) {
		c.Rect(box(50, 30, 150, 70), p.Dark)
		for i := 0.0; i < 5; i++ {
			x := 60 + i*20
			c.Line([]Point{pt(x, 30), pt(x, 70)}, p.Light, 2)
		}
		for i := 0.0; i < 3; i++ {
			y := 40 + i*15
			c.Line([]Point{pt(50, y), pt(150, y)}, p.Light, 2)
		}
	},
	InvestorGlobal: func(_ *Generator, c *Canvas, p Palette) {
		globe := box(70, 20, 130, 80)
		c.EllipseOutline(globe, p.Primary, 3)
		c.Arc(globe, 0, 180, p.Primary, 2)
		c.Arc(globe, 180, 360, p.Primary, 2)
		c.Line([]Point{pt(70, 50), pt(130, 50)}, p.Primary, 2)
	},
	InvestorEnterprise: func(_ *Generator, c *Canvas, p Palette) {
		for i := 0.0; i < 3; i++ {
			for j := 0.0; j < 2; j++ {
				c.RectOutline(box(60+i*30, 30+j*25, 80+i*30, 50+j*25), p.Secondary, 2)
			}
		}
	},
}

// InvestorLogo draws the transparent logo of a single investor. Unknown values are rejected.
func (g *Generator) InvestorLogo(i Investor) (Asset, error) {
	if i < 0 || i >= investorCount {
		return Asset{}, fmt.Errorf("unknown investor %d", int(i))
	}
	return g.investorLogo(i), nil
}

func (g *Generator) investorLogo(i Investor) Asset {
	c := NewCanvas(investorWidth, investorHeight, ModeRGBA, nil)
	investorMarks[i](g, c, g.opts.Palette)
	return Asset{Name: i.FileName(), Category: CategoryInvestors, Format: PNG, Image: c.Image()}
}

// InvestorLogos draws every investor logo.
func (g *Generator) InvestorLogos() []Asset {
	assets := make([]Asset, 0, investorCount)
	for _, i := range Investors() {
		assets = append(assets, g.investorLogo(i))
	}
	return assets
}
