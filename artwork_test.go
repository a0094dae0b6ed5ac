package brandgen

import (
	"bytes"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureIcons(t *testing.T) {
	g := newTestGenerator()
	p := g.Palette()
	icons := g.FeatureIcons()
	require.Len(t, icons, 6)

	names := []string{
		"feature-multi-agent.png",
		"feature-workflow.png",
		"feature-deployment.png",
		"feature-integration.png",
		"feature-governance.png",
		"feature-enduser.png",
	}
	for i, icon := range icons {
		assert.Equal(t, names[i], icon.Name)
		assert.Equal(t, p.Primary, rgbaAt(icon.Image, 15, 100), "%s badge", icon.Name)
		assert.Equal(t, color.RGBA{}, rgbaAt(icon.Image, 2, 2), "%s corner", icon.Name)
	}

	shield := icons[FeatureGovernance].Image
	assert.Equal(t, p.White, rgbaAt(shield, 100, 60))
	rack := icons[FeatureDeployment].Image
	assert.Equal(t, p.Primary, rgbaAt(rack, 80, 65))
	assert.Equal(t, p.White, rgbaAt(rack, 100, 155))
}

func TestOfficeImages(t *testing.T) {
	g := newTestGenerator()
	p := g.Palette()
	offices := g.OfficeImages()
	require.Len(t, offices, 3)

	for i, o := range Offices() {
		a := offices[i]
		assert.Equal(t, "office-"+o.String()+".jpg", a.Name)
		assert.Equal(t, p.Light, rgbaAt(a.Image, 395, 245), "%s background", a.Name)
	}
	assert.Equal(t, "SINGAPORE", OfficeSingapore.Label())

	sf := offices[OfficeSanFrancisco].Image
	assert.Equal(t, p.Primary, rgbaAt(sf, 110, 60))
	assert.Equal(t, p.Light, rgbaAt(sf, 130, 80), "window")

	london := offices[OfficeLondon].Image
	assert.Equal(t, p.Secondary, rgbaAt(london, 245, 150), "clock tower")
	assert.Equal(t, p.Light, rgbaAt(london, 245, 50), "clock face")

	singapore := offices[OfficeSingapore].Image
	assert.Equal(t, p.Secondary, rgbaAt(singapore, 200, 60), "roof deck")
	assert.Equal(t, p.Accent, rgbaAt(singapore, 65, 200), "statue")
}

func TestOfficeImages_Caption(t *testing.T) {
	plain := mustAsset(t)(newTestGenerator().OfficeImage(OfficeLondon)).Image
	captioned := mustAsset(t)(newTextGenerator(t).OfficeImage(OfficeLondon)).Image

	changed := 0
	for y := 5; y < 35; y++ {
		for x := 100; x < 300; x++ {
			if rgbaAt(plain, x, y) != rgbaAt(captioned, x, y) {
				changed++
			}
		}
	}
	assert.Positive(t, changed, "caption should be drawn around the top center")
	assert.Equal(t, rgbaAt(plain, 150, 200), rgbaAt(captioned, 150, 200))
}

func TestTeamImages(t *testing.T) {
	g := newTestGenerator()
	p := g.Palette()
	team := g.TeamImages()
	require.Len(t, team, 4)

	for i, r := range Roles() {
		img := team[i].Image
		assert.Equal(t, "team-"+r.String()+".jpg", team[i].Name)
		assert.Equal(t, p.Dark, rgbaAt(img, 150, 100), "%s head", r)
		assert.Equal(t, p.Dark, rgbaAt(img, 150, 250), "%s body", r)
	}
	assert.Equal(t, p.Accent, rgbaAt(team[RoleCEO].Image, 150, 35))
	assert.Equal(t, p.Secondary, rgbaAt(team[RoleCTO].Image, 125, 30))
	assert.Equal(t, p.White, rgbaAt(team[RoleCPO].Image, 150, 30))
	assert.Equal(t, p.White, rgbaAt(team[RoleCSO].Image, 150, 30))
}

func TestTeamImages_Gradient(t *testing.T) {
	g := newTestGenerator()
	p := g.Palette()
	img := mustAsset(t)(g.TeamImage(RoleCTO)).Image

	top := averageRow(img, 0, 0, teamSize)
	assert.InDelta(t, float64(p.Light.R), top[0], 1)
	assert.InDelta(t, float64(p.Light.G), top[1], 1)
	assert.InDelta(t, float64(p.Light.B), top[2], 1)

	// The silhouette covers the middle of the last row.
	bottom := averageRow(img, teamSize-1, 0, 90)
	assert.InDelta(t, float64(p.Primary.R), bottom[0], 2)
	assert.InDelta(t, float64(p.Primary.G), bottom[1], 2)
	assert.InDelta(t, float64(p.Primary.B), bottom[2], 2)

	prev := rgbaAt(img, 10, 0)
	for y := 1; y < teamSize; y++ {
		cur := rgbaAt(img, 10, y)
		require.LessOrEqual(t, cur.R, prev.R, "row %d", y)
		require.LessOrEqual(t, cur.G, prev.G, "row %d", y)
		require.LessOrEqual(t, cur.B, prev.B, "row %d", y)
		prev = cur
	}
}

func averageRow(img interface {
	At(x, y int) color.Color
}, y, x0, x1 int) [3]float64 {
	var sum [3]float64
	for x := x0; x < x1; x++ {
		c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
		sum[0] += float64(c.R)
		sum[1] += float64(c.G)
		sum[2] += float64(c.B)
	}
	n := float64(x1 - x0)
	return [3]float64{sum[0] / n, sum[1] / n, sum[2] / n}
}

func TestInvestorLogos(t *testing.T) {
	g := newTestGenerator()
	p := g.Palette()
	logos := g.InvestorLogos()
	require.Len(t, logos, 6)

	for i, inv := range Investors() {
		assert.Equal(t, "investor-"+inv.ID()+".png", logos[i].Name)
		assert.Equal(t, color.RGBA{}, rgbaAt(logos[i].Image, 2, 2), inv.Name())
	}
	assert.Equal(t, "Tech Pioneers", InvestorTechPioneers.Name())
	assert.Equal(t, "6", InvestorEnterprise.ID())

	assert.Equal(t, p.Primary, rgbaAt(logos[InvestorHorizon].Image, 51, 50))
	assert.Equal(t, color.RGBA{}, rgbaAt(logos[InvestorHorizon].Image, 100, 50), "no text without a typeface")
	assert.Equal(t, p.Dark, rgbaAt(logos[InvestorTechPioneers].Image, 55, 35))
	assert.Equal(t, p.Light, rgbaAt(logos[InvestorTechPioneers].Image, 100, 45))
	assert.Equal(t, p.Secondary, rgbaAt(logos[InvestorEnterprise].Image, 60, 40))
	assert.Equal(t, color.RGBA{}, rgbaAt(logos[InvestorEnterprise].Image, 70, 40))
}

func TestInvestorLogos_Labels(t *testing.T) {
	plain := mustAsset(t)(newTestGenerator().InvestorLogo(InvestorFuture)).Image
	labelled := mustAsset(t)(newTextGenerator(t).InvestorLogo(InvestorFuture)).Image
	assert.NotEqual(t, plain, labelled)

	plain = mustAsset(t)(newTestGenerator().InvestorLogo(InvestorGlobal)).Image
	labelled = mustAsset(t)(newTextGenerator(t).InvestorLogo(InvestorGlobal)).Image
	assert.Equal(t, plain, labelled, "the globe has no text")
}

func TestMission_Layout(t *testing.T) {
	hub, satellites := MissionLayout()
	require.Len(t, satellites, 6)
	assert.Equal(t, Node{X: 250, Y: 150, Size: 30}, hub)

	for i, s := range satellites {
		dx, dy := s.X-hub.X, s.Y-hub.Y
		assert.InDelta(t, 100, math.Hypot(dx, dy), 1e-9)

		angle := math.Atan2(dy, dx) * 180 / math.Pi
		if angle < 0 {
			angle += 360
		}
		assert.InDelta(t, float64(i*60), angle, 1e-6)
		assert.Equal(t, 20.0, s.Size)
	}
}

func TestMission_Nodes(t *testing.T) {
	g := newTestGenerator()
	p := g.Palette()
	a := g.Mission()
	assert.Equal(t, "mission-illustration.png", a.Name)

	hub, satellites := MissionLayout()
	assert.Equal(t, p.Primary, rgbaAt(a.Image, int(hub.X), int(hub.Y)))

	nodes := 1
	for i, s := range satellites {
		want := p.Secondary
		if i%2 == 1 {
			want = p.Accent
		}
		if assert.Equal(t, want, rgbaAt(a.Image, int(math.Round(s.X)), int(math.Round(s.Y))), "satellite %d", i) {
			nodes++
		}
	}
	assert.Equal(t, 7, nodes)
	assert.Equal(t, p.White, rgbaAt(a.Image, 10, 10))

	// Midway along the spoke to the first satellite.
	assert.Equal(t, p.Dark, rgbaAt(a.Image, 310, 150))
}

func TestGenerator_DeterministicOutputs(t *testing.T) {
	encodeAll := func(g *Generator) map[string][]byte {
		out := make(map[string][]byte)
		for _, c := range Categories() {
			if c == CategoryBackground {
				continue
			}
			assets, err := g.Render(c)
			require.NoError(t, err)
			for _, a := range assets {
				var buf bytes.Buffer
				require.NoError(t, Encode(&buf, a.Image, a.Format, DefaultQuality))
				out[a.Name] = buf.Bytes()
			}
		}
		return out
	}

	first := encodeAll(NewGenerator(DefaultOptions()))
	second := encodeAll(NewGenerator(DefaultOptions()))
	require.Len(t, first, 21)
	for name, data := range first {
		assert.True(t, bytes.Equal(data, second[name]), name)
	}
}

func TestGenerator_RejectsUnknownValues(t *testing.T) {
	g := newTestGenerator()

	_, err := g.FeatureIcon(Feature(9))
	assert.ErrorContains(t, err, "unknown feature 9")
	_, err = g.FeatureIcon(Feature(-1))
	assert.Error(t, err)

	_, err = g.OfficeImage(officeCount)
	assert.ErrorContains(t, err, "unknown office")
	_, err = g.TeamImage(Role(4))
	assert.ErrorContains(t, err, "unknown role")
	_, err = g.InvestorLogo(Investor(6))
	assert.ErrorContains(t, err, "unknown investor")

	a, err := g.FeatureIcon(FeatureGovernance)
	require.NoError(t, err)
	assert.Equal(t, "feature-governance.png", a.Name)
}
