package brandgen

const (
	logoName = "lumina_ai_logo.png"
	logoSize = 200
)

// Logo geometry, exported for callers that want to probe the artwork.
var (
	LogoOuter = box(20, 20, 180, 180)
	LogoInner = box(40, 40, 160, 160)
)

// logoMark is the stylized "L" drawn over the two discs.
var logoMark = []Point{pt(60, 70), pt(90, 70), pt(90, 130), pt(140, 130), pt(140, 150), pt(60, 150)}

// Logo draws the transparent brand mark: two concentric discs and a white "L".
func (g *Generator) Logo() Asset {
	p := g.opts.Palette
	c := NewCanvas(logoSize, logoSize, ModeRGBA, nil)

	c.Ellipse(LogoOuter, p.Primary)
	c.Ellipse(LogoInner, p.Secondary)
	c.Polygon(logoMark, p.White)

	return Asset{Name: logoName, Category: CategoryLogo, Format: PNG, Image: c.Image()}
}
