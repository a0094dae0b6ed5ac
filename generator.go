package brandgen

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font"
)

// Category is one of the independent groups of generated images.
type Category int

// The categories, in the order a full run produces them.
const (
	CategoryLogo Category = iota
	CategoryBackground
	CategoryFeatures
	CategoryOffices
	CategoryTeam
	CategoryInvestors
	CategoryMission
	categoryCount
)

var categoryNames = [categoryCount]string{
	CategoryLogo:       "logo",
	CategoryBackground: "background",
	CategoryFeatures:   "features",
	CategoryOffices:    "offices",
	CategoryTeam:       "team",
	CategoryInvestors:  "investors",
	CategoryMission:    "mission",
}

// String returns the lowercase category name used on the command line.
func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Categories returns every category in run order.
func Categories() []Category {
	all := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		all = append(all, c)
	}
	return all
}

// ParseCategory resolves a command line category name.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range categoryNames {
		if name == s {
			return Category(c), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q (valid: %s)", s, strings.Join(categoryNames[:], ", "))
}

// Asset is one rendered image together with the file name it is saved under.
type Asset struct {
	Name     string
	Category Category
	Format   Format
	Image    image.Image
}

// Planned describes an output file without rendering it.
type Planned struct {
	Name     string
	Category Category
	Format   Format
	Width    int
	Height   int
}

// BackgroundOptions tune the randomized network drawn by the tech background.
type BackgroundOptions struct {
	Nodes              int     // number of nodes
	ConnectProbability float64 // chance that a pair of nodes gets a connector
	BlurSigma          float64 // gaussian blur applied last; 0 disables it
	ConnectorOpacity   float64 // opacity of the connector layer
	Blend              BlendMode
}

// DefaultBackgroundOptions returns the settings of the published background.
func DefaultBackgroundOptions() BackgroundOptions {
	return BackgroundOptions{
		Nodes:              30,
		ConnectProbability: 0.2,
		BlurSigma:          1,
		ConnectorOpacity:   0.5,
		Blend:              BlendNormal,
	}
}

// Options configure a Generator.
type Options struct {
	Palette Palette
	// Seed drives the tech background. Zero seeds from the clock.
	Seed int64
	// Typeface is optional. Without it every text label is skipped.
	Typeface      *Typeface
	Background    BackgroundOptions
	MissionFormat Format
	Logger        *log.Logger
}

// DefaultOptions returns the options producing the stock artwork.
func DefaultOptions() Options {
	return Options{
		Palette:       DefaultPalette(),
		Background:    DefaultBackgroundOptions(),
		MissionFormat: PNG,
	}
}

// Generator renders the brand images. It holds no state besides its options,
// a random source for the background and a cache of font faces.
type Generator struct {
	opts   Options
	rng    *rand.Rand
	logger *log.Logger
	faces  map[float64]font.Face
}

// NewGenerator creates a generator from opts.
func NewGenerator(opts Options) *Generator {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{
		opts:   opts,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
		faces:  make(map[float64]font.Face),
	}
}

// Palette returns the palette the generator draws with.
func (g *Generator) Palette() Palette { return g.opts.Palette }

// HasText reports whether labels can be rendered, i.e. whether a typeface is available.
func (g *Generator) HasText() bool { return g.opts.Typeface != nil }

// face returns a cached face at the given size, or false when text is unavailable.
func (g *Generator) face(points float64) (font.Face, bool) {
	if !g.HasText() {
		return nil, false
	}
	if f, ok := g.faces[points]; ok {
		return f, f != nil
	}
	f, err := g.opts.Typeface.Face(points)
	if err != nil {
		g.logger.Debug("font face unavailable, skipping labels", "font", g.opts.Typeface.Name, "size", points, "err", err)
		f = nil
	}
	g.faces[points] = f
	return f, f != nil
}

// label draws text when a typeface is available and reports whether it did.
func (g *Generator) label(c *Canvas, text string, at Point, points float64, col color.Color) bool {
	f, ok := g.face(points)
	if !ok {
		return false
	}
	c.Label(text, at, f, col)
	return true
}

// renderer produces the assets of one category.
type renderer func(g *Generator) []Asset

var renderers = [categoryCount]renderer{
	CategoryLogo:       func(g *Generator) []Asset { return []Asset{g.Logo()} },
	CategoryBackground: func(g *Generator) []Asset { return []Asset{g.TechBackground()} },
	CategoryFeatures:   (*Generator).FeatureIcons,
	CategoryOffices:    (*Generator).OfficeImages,
	CategoryTeam:       (*Generator).TeamImages,
	CategoryInvestors:  (*Generator).InvestorLogos,
	CategoryMission:    func(g *Generator) []Asset { return []Asset{g.Mission()} },
}

// Render produces every asset of category c.
func (g *Generator) Render(c Category) ([]Asset, error) {
	if c < 0 || c >= categoryCount {
		return nil, fmt.Errorf("unknown category %d", int(c))
	}
	return renderers[c](g), nil
}

// Plan lists the files produced for the given categories (all of them when
// none are given) without rendering anything.
func Plan(missionFormat Format, categories ...Category) []Planned {
	if len(categories) == 0 {
		categories = Categories()
	}
	var plan []Planned
	for _, c := range categories {
		switch c {
		case CategoryLogo:
			plan = append(plan, Planned{logoName, c, PNG, logoSize, logoSize})
		case CategoryBackground:
			plan = append(plan, Planned{backgroundName, c, JPEG, backgroundWidth, backgroundHeight})
		case CategoryFeatures:
			for _, f := range Features() {
				plan = append(plan, Planned{f.FileName(), c, PNG, iconSize, iconSize})
			}
		case CategoryOffices:
			for _, o := range Offices() {
				plan = append(plan, Planned{o.FileName(), c, JPEG, officeWidth, officeHeight})
			}
		case CategoryTeam:
			for _, r := range Roles() {
				plan = append(plan, Planned{r.FileName(), c, JPEG, teamSize, teamSize})
			}
		case CategoryInvestors:
			for _, i := range Investors() {
				plan = append(plan, Planned{i.FileName(), c, PNG, investorWidth, investorHeight})
			}
		case CategoryMission:
			plan = append(plan, Planned{missionName + "." + missionFormat.Ext(), c, missionFormat, missionWidth, missionHeight})
		}
	}
	return plan
}
